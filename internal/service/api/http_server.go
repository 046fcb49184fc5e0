package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/catalog-insight/internal/service/api/middleware"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// hstsMaxAge HTTPS 서버에서 Strict-Transport-Security 헤더에 사용할 max-age (1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS HTTPS로 서비스할 때 HSTS 헤더를 추가할지 여부
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 대시보드가 다른 출처에서 호출하므로 운영 환경에서는 대시보드 도메인만 명시합니다.
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 30초)
	RequestTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러와 이후 미들웨어의 panic을 복구하고 스택과 함께 로깅
//  2. RequestID - 요청마다 X-Request-ID를 부여 (로깅보다 먼저 적용)
//  3. ServerHeader - 응답의 Server 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅 (민감한 쿼리 파라미터는 마스킹)
//  5. RateLimit - IP별 요청 제한 (초과 시 429)
//  6. BodyLimit - 요청 본문 크기 제한 (초과 시 413)
//  7. Timeout - 요청 처리 시간 제한 (초과 시 503)
//  8. CORS - 대시보드의 교차 출처 GET/POST 요청 허용
//  9. Secure - 보안 헤더 추가, HTTPS이면 HSTS 포함
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거로 출력합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// RateLimit/Timeout 이전에 위치하여 429/503 응답도 기록한다.
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
