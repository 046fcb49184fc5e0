// Package webhook 상품 ID를 JSON으로 POST하는 알림 채널을 구현합니다.
package webhook

import (
	"context"

	"github.com/google/uuid"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
	"github.com/darkkaiser/catalog-insight/internal/service/fetcher"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
)

const component = "notification.notifier.webhook"

// ID Webhook 채널의 NotifierID
const ID notifier.NotifierID = "webhook"

// RequestIDHeader 요청 추적용 헤더 이름
const RequestIDHeader = "X-Request-ID"

// Payload 수신 측에 전달되는 본문입니다. 상품 ID 외의 정보는 보내지 않습니다.
type Payload struct {
	ProductID catalog.ProductID `json:"product_id"`
}

// Notifier 알림 수신 Webhook으로 상품 ID를 전달합니다. 2xx 응답이면 성공입니다.
type Notifier struct {
	url     string
	fetcher fetcher.Fetcher

	newRequestID func() string
}

var _ notifier.Notifier = (*Notifier)(nil)

// New 새로운 Webhook Notifier를 생성합니다.
func New(url string, f fetcher.Fetcher) *Notifier {
	return &Notifier{
		url:          url,
		fetcher:      f,
		newRequestID: uuid.NewString,
	}
}

func (n *Notifier) ID() notifier.NotifierID {
	return ID
}

func (n *Notifier) Notify(ctx context.Context, alert notifier.Alert) error {
	requestID := n.newRequestID()

	err := fetcher.PostJSON(ctx, n.fetcher, n.url, map[string]string{RequestIDHeader: requestID}, Payload{ProductID: alert.ProductID})
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"product_id": alert.ProductID,
			"request_id": requestID,
			"error":      err,
		}).Warn("발송 실패: Webhook 호출에서 오류가 발생했습니다")
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"product_id": alert.ProductID,
		"request_id": requestID,
	}).Info("발송 성공: Webhook으로 알림이 전달되었습니다")

	return nil
}
