// Package telegram 텔레그램 봇으로 프로모션 메시지를 발송하는 알림 채널을 구현합니다.
package telegram

import (
	"context"
	"errors"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
	"github.com/darkkaiser/catalog-insight/internal/service/fetcher"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/darkkaiser/catalog-insight/pkg/strutil"
)

const component = "notification.notifier.telegram"

const (
	// defaultHTTPTimeout 텔레그램 API 호출 한 번의 최대 시간
	defaultHTTPTimeout = 30 * time.Second

	// defaultRateLimit 동일 채팅방으로의 초당 발송 수. 텔레그램은 채팅방당 초당 1건 정도를 권장한다.
	defaultRateLimit = 1
	defaultRateBurst = 5

	maxAttempts       = 3
	defaultRetryDelay = time.Second
)

// botClient 텔레그램 봇 API 중 사용하는 기능만 추린 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Params 텔레그램 Notifier 생성 설정입니다.
type Params struct {
	ID       string
	BotToken string
	ChatID   int64
	Debug    bool
}

// Notifier 프로모션 메시지를 텔레그램 채팅방으로 발송합니다.
type Notifier struct {
	id     notifier.NotifierID
	chatID int64

	client  botClient
	limiter *rate.Limiter

	retryDelay time.Duration
}

var _ notifier.Notifier = (*Notifier)(nil)

// New 봇 토큰을 검증(getMe)하고 Notifier를 생성합니다.
func New(p Params) (*Notifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": p.ID,
		"bot_token":   strutil.Mask(p.BotToken),
		"chat_id":     p.ChatID,
	}).Debug("텔레그램 봇 API 클라이언트를 초기화합니다")

	// 봇 API 클라이언트는 Do(*http.Request)만 요구하므로 Fetcher를 그대로 주입한다.
	// sendMessage는 POST이므로 재시도 체인 없이 타임아웃만 건다.
	client := fetcher.NewHTTPFetcher(fetcher.WithTimeout(defaultHTTPTimeout))

	bot, err := tgbotapi.NewBotAPIWithClient(p.BotToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요 (notifier: %s)", p.ID)
	}
	bot.Debug = p.Debug

	return newWithBot(p, bot), nil
}

func newWithBot(p Params, client botClient) *Notifier {
	return &Notifier{
		id:         notifier.NewNotifierID(p.ID),
		chatID:     p.ChatID,
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
		retryDelay: defaultRetryDelay,
	}
}

func (n *Notifier) ID() notifier.NotifierID {
	return n.id
}

// Notify 프로모션 메시지를 HTML 모드로 발송합니다.
// 일시적 오류(429, 5xx, 네트워크)는 최대 3회까지 재시도하고, 429 응답의 retry_after를 따릅니다.
func (n *Notifier) Notify(ctx context.Context, alert notifier.Alert) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.Timeout, "발송 대기 중 요청이 취소되었습니다")
	}

	msg := tgbotapi.NewMessage(n.chatID, buildMessage(alert))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, n.retryDelayFor(lastErr)); err != nil {
				return apperrors.Wrap(err, apperrors.Timeout, "재시도 대기 중 요청이 취소되었습니다")
			}
		}

		_, err := n.client.Send(msg)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": n.id,
				"chat_id":     n.chatID,
				"product_id":  alert.ProductID,
				"attempt":     attempt,
			}).Info("발송 성공: 텔레그램 API로 메시지가 정상 전송되었습니다")
			return nil
		}

		lastErr = err
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.id,
			"chat_id":     n.chatID,
			"product_id":  alert.ProductID,
			"attempt":     attempt,
			"error":       err,
		}).Warn("발송 실패: 텔레그램 API 호출에서 오류가 발생했습니다")

		if !isRetriable(err) {
			break
		}
	}

	return apperrors.Wrapf(lastErr, apperrors.Unavailable, "텔레그램(%s) 메시지 발송에 실패했습니다", n.id)
}

func (n *Notifier) retryDelayFor(err error) time.Duration {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
		return time.Duration(apiErr.RetryAfter) * time.Second
	}
	return n.retryDelay
}

// isRetriable 4xx 응답(429 제외)은 요청 자체의 문제이므로 재시도하지 않습니다.
func isRetriable(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return true
		}
		return apiErr.Code >= 500 || apiErr.Code == 0
	}
	return !errors.Is(err, context.Canceled)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
