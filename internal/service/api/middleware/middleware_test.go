package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/darkkaiser/catalog-insight/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-insight/internal/service/api/model/response"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.Use(mw...)
	return e
}

// =============================================================================
// Rate Limit
// =============================================================================

func TestNewIPRateLimiter_WhiteBox(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Empty(t, limiter.limiters)
}

func TestRateLimit_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestsPerSecond int
		burst             int
		expectPanic       bool
	}{
		{"성공: 정상값 입력", 10, 20, false},
		{"실패: RPS 0 입력", 0, 20, true},
		{"실패: RPS 음수 입력", -1, 20, true},
		{"실패: Burst 0 입력", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.expectPanic {
				assert.Panics(t, func() { RateLimit(tt.requestsPerSecond, tt.burst) })
			} else {
				assert.NotPanics(t, func() { RateLimit(tt.requestsPerSecond, tt.burst) })
			}
		})
	}
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	t.Parallel()

	e := newTestEcho(RateLimit(1, 2))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)

	rec := do("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, retryAfterSeconds, rec.Header().Get(retryAfter))

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.ResultCode)

	// 다른 IP는 독립적으로 제한된다.
	assert.Equal(t, http.StatusOK, do("10.0.0.2").Code)
}

func TestIPRateLimiter_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(1, 1)
	for i := 0; i < maxIPRateLimiters; i++ {
		limiter.limiters[strconv.Itoa(i)] = rate.NewLimiter(1, 1)
	}

	limiter.getLimiter("new-ip")

	assert.Len(t, limiter.limiters, maxIPRateLimiters)
	assert.Contains(t, limiter.limiters, "new-ip")
}

// =============================================================================
// Panic Recovery
// =============================================================================

func TestPanicRecovery(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	tests := []struct {
		name    string
		payload any
		wantErr string
	}{
		{"문자열 패닉", "치명적인 오류 발생", "치명적인 오류 발생"},
		{"에러 패닉", errors.New("db down"), "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			e := newTestEcho(PanicRecovery())
			e.GET("/panic", func(c echo.Context) error { panic(tt.payload) })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var found bool
			for _, entry := range hook.AllEntries() {
				if entry.Message == "PANIC RECOVERED" {
					found = true
					assert.Equal(t, applog.ErrorLevel, entry.Level)
					assert.Contains(t, entry.Data["error"].(error).Error(), tt.wantErr)
					assert.NotEmpty(t, entry.Data["stack"])
				}
			}
			assert.True(t, found, "패닉 복구 로그가 기록되어야 합니다")
		})
	}
}

func TestPanicRecovery_AbortHandlerPropagates(t *testing.T) {
	t.Parallel()

	h := PanicRecovery()(func(c echo.Context) error { panic(http.ErrAbortHandler) })
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) })
}

// =============================================================================
// Content-Type
// =============================================================================

func TestValidateContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{"JSON", "application/json", `{}`, http.StatusOK},
		{"charset 파라미터 허용", "application/json; charset=UTF-8", `{}`, http.StatusOK},
		{"대소문자 무시", "Application/JSON", `{}`, http.StatusOK},
		{"본문 없음은 검증 생략", "", "", http.StatusOK},
		{"text/plain 거부", "text/plain", `{}`, http.StatusUnsupportedMediaType},
		{"헤더 누락 거부", "", `{}`, http.StatusUnsupportedMediaType},
		{"유사 타입 거부", "application/jsonp", `{}`, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEcho()
			e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, ValidateContentType(echo.MIMEApplicationJSON))

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// =============================================================================
// HTTP Logging
// =============================================================================

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"민감 정보 없음", "/api/v1/products?sort=price", "/api/v1/products?sort=price"},
		{"token 마스킹", "/api/v1/products?token=secret123&sort=price", "/api/v1/products?sort=price&token=secr%2A%2A%2A"},
		{"쿼리 없음", "/health", "/health"},
		{"파싱 실패 시 원본", "%zz", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger_RecordsErrorStatus(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	e := newTestEcho(HTTPLogger())
	e.GET("/missing", func(c echo.Context) error { return httputil.NewNotFoundError("없음") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?token=secret123", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var entry *logrus.Entry
	for _, en := range hook.AllEntries() {
		if en.Message == "HTTP 요청" {
			entry = en
		}
	}
	require.NotNil(t, entry, "HTTP 요청 로그가 기록되어야 합니다")

	// 에러 핸들러가 먼저 실행되므로 로그에는 실제 응답 상태 코드가 남는다.
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, "/missing", entry.Data["path"])
	assert.NotContains(t, entry.Data["uri"], "secret123")
}

// =============================================================================
// Logger Adapter
// =============================================================================

func TestLogger_LevelMapping(t *testing.T) {
	t.Parallel()

	l := Logger{Logger: logrus.New()}

	tests := []struct {
		echoLevel log.Lvl
		appLevel  applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}

	for _, tt := range tests {
		l.SetLevel(tt.echoLevel)
		assert.Equal(t, tt.appLevel, l.Logger.GetLevel())
		assert.Equal(t, tt.echoLevel, l.Level())
	}

	// 대응하는 레벨이 없으면 변경하지 않는다.
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.ErrorLevel, l.Logger.GetLevel())

	l.Logger.SetLevel(applog.TraceLevel)
	assert.Equal(t, log.OFF, l.Level())
}
