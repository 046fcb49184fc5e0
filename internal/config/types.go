package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/darkkaiser/catalog-insight/internal/alert"
	apperrors "github.com/darkkaiser/catalog-insight/internal/pkg/errors"
)

const (
	DefaultMaxRetries     = 3
	DefaultRetryDelay     = 2 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultRefreshSpec    = "0 */5 * * * *"
	DefaultListenPort     = 2553
)

// AppConfig 애플리케이션 전체 설정입니다.
type AppConfig struct {
	Debug        bool               `json:"debug"`
	HTTPRetry    HTTPRetryConfig    `json:"http_retry"`
	Catalog      CatalogConfig      `json:"catalog"`
	Alert        AlertConfig        `json:"alert"`
	AnalyticsAPI AnalyticsAPIConfig `json:"analytics_api"`
}

// NewDefaultConfig 설정 파일에 값이 없을 때 사용되는 기본 설정입니다.
func NewDefaultConfig() AppConfig {
	return AppConfig{
		HTTPRetry: HTTPRetryConfig{
			MaxRetries: DefaultMaxRetries,
			RetryDelay: DefaultRetryDelay,
		},
		Catalog: CatalogConfig{
			RequestTimeout: DefaultRequestTimeout,
			Refresh: RefreshConfig{
				Runnable: true,
				TimeSpec: DefaultRefreshSpec,
			},
		},
		Alert: AlertConfig{
			Cooldown: alert.DefaultCooldown,
		},
		AnalyticsAPI: AnalyticsAPIConfig{
			WS:   WSConfig{ListenPort: DefaultListenPort},
			CORS: CORSConfig{AllowOrigins: []string{"*"}},
		},
	}
}

// Validate 각 설정 항목의 정합성을 검사합니다. 첫 번째로 발견된 문제만 보고합니다.
func (c *AppConfig) Validate() error {
	v := newValidator()

	if err := checkStruct(v, c.HTTPRetry, "HTTP 재시도 설정"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Catalog, "카탈로그 설정"); err != nil {
		return err
	}
	if err := c.Alert.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.AnalyticsAPI.WS, "웹 서버 설정"); err != nil {
		return err
	}
	if err := c.AnalyticsAPI.CORS.validate(v); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 동작에는 문제가 없지만 권장되지 않는 설정에 대한 경고 목록입니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.AnalyticsAPI.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.AnalyticsAPI.WS.ListenPort))
	}
	if !c.Alert.Webhook.Enabled && len(c.Alert.Telegrams) == 0 {
		warnings = append(warnings, "알림 채널(webhook, telegrams)이 하나도 설정되지 않았습니다. 모든 알림 발송 요청이 실패합니다")
	}
	if !c.Catalog.Refresh.Runnable {
		warnings = append(warnings, "카탈로그 주기적 갱신이 비활성화되어 있습니다. 시작 시 한 번만 조회합니다")
	}

	return warnings
}

// HTTPRetryConfig 외부 HTTP 호출(카탈로그 조회, 알림 발송)의 재시도 정책입니다.
type HTTPRetryConfig struct {
	MaxRetries int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay time.Duration `json:"retry_delay" validate:"gt=0"`
}

// CatalogConfig 카탈로그 서비스 연동 설정입니다.
type CatalogConfig struct {
	ProductsURL    string        `json:"products_url" validate:"required,http_url"`
	CategoriesURL  string        `json:"categories_url" validate:"omitempty,http_url"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
	Refresh        RefreshConfig `json:"refresh"`
}

// RefreshConfig 카탈로그 주기적 갱신 스케줄입니다. TimeSpec은 초 단위를 포함한 6필드 Cron 표현식입니다.
type RefreshConfig struct {
	Runnable bool   `json:"runnable"`
	TimeSpec string `json:"time_spec" validate:"required_if=Runnable true,omitempty,cron_spec"`
}

// AlertConfig 프로모션 알림 발송 설정입니다.
type AlertConfig struct {
	Cooldown  time.Duration    `json:"cooldown" validate:"gt=0"`
	Webhook   WebhookConfig    `json:"webhook" validate:"-"`
	Telegrams []TelegramConfig `json:"telegrams" validate:"unique=ID"`
}

func (c *AlertConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "알림 설정"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Webhook, "Webhook 알림 설정"); err != nil {
		return err
	}
	for _, t := range c.Telegrams {
		if err := checkStruct(v, t, fmt.Sprintf("텔레그램 알림 채널['%s']", t.ID)); err != nil {
			return err
		}
	}
	return nil
}

// WebhookConfig 상품 ID를 JSON으로 POST하는 알림 채널입니다.
type WebhookConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url" validate:"required_if=Enabled true,omitempty,http_url"`
}

// TelegramConfig 텔레그램 봇 알림 채널입니다.
type TelegramConfig struct {
	ID       string `json:"id" validate:"required"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}

// AnalyticsAPIConfig 분석 API 웹 서버 설정입니다.
type AnalyticsAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

// WSConfig 웹 서버의 포트와 TLS(HTTPS) 설정입니다.
type WSConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
}

// CORSConfig 브라우저 대시보드의 교차 출처 요청 허용 목록입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return checkStruct(v, c, "CORS 설정")
}
