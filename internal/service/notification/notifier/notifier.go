// Package notifier 프로모션 알림을 외부 채널로 발송하는 Notifier의 공통 타입을 정의합니다.
package notifier

import (
	"context"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/darkkaiser/catalog-insight/internal/catalog"
)

// NotifierID 알림 채널 식별자입니다. 설정 파일의 표기와 무관하게 snake_case로 정규화됩니다.
type NotifierID string

// NewNotifierID "Marketing Team", "marketingTeam" 등을 "marketing_team"으로 정규화합니다.
func NewNotifierID(raw string) NotifierID {
	return NotifierID(strcase.ToSnake(strings.TrimSpace(raw)))
}

func (id NotifierID) String() string {
	return string(id)
}

// Alert 발송할 알림 한 건입니다.
// Product는 현재 스냅샷에서 찾은 상품 정보이며, 찾지 못한 경우 nil입니다.
type Alert struct {
	ProductID catalog.ProductID
	Product   *catalog.Product
}

// Notifier 알림 채널입니다. Notify가 nil을 반환하면 상대 시스템이 수신을 확인한 것입니다.
type Notifier interface {
	ID() NotifierID
	Notify(ctx context.Context, alert Alert) error
}
