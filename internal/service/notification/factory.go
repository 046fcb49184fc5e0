package notification

import (
	"github.com/darkkaiser/catalog-insight/internal/config"
	"github.com/darkkaiser/catalog-insight/internal/service/fetcher"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier/telegram"
	"github.com/darkkaiser/catalog-insight/internal/service/notification/notifier/webhook"
)

// telegramConstructor 테스트에서 실제 봇 API 호출 없이 생성할 수 있도록 교체 가능합니다.
var telegramConstructor = func(p telegram.Params) (notifier.Notifier, error) {
	return telegram.New(p)
}

// NewNotifiers 설정에 따라 알림 채널을 생성합니다. Webhook 호출에는 f를 사용합니다.
func NewNotifiers(cfg config.AlertConfig, f fetcher.Fetcher, debug bool) ([]notifier.Notifier, error) {
	var notifiers []notifier.Notifier

	if cfg.Webhook.Enabled {
		notifiers = append(notifiers, webhook.New(cfg.Webhook.URL, f))
	}

	for _, t := range cfg.Telegrams {
		n, err := telegramConstructor(telegram.Params{
			ID:       t.ID,
			BotToken: t.BotToken,
			ChatID:   t.ChatID,
			Debug:    debug,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	return notifiers, nil
}
