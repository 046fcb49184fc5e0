package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewHTTPServer_Configuration_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  HTTPServerConfig
	}{
		{"디버그 모드", HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}}},
		{"운영 모드", HTTPServerConfig{Debug: false, AllowOrigins: []string{"https://dashboard.example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewHTTPServer(tt.cfg)

			assert.Equal(t, tt.cfg.Debug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			assert.NotNil(t, e.HTTPErrorHandler)

			assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
			assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
			assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
			assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
		})
	}
}

// =============================================================================
// Middleware Tests
// =============================================================================

func TestNewHTTPServer_CORSMiddleware_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		allowOrigins      []string
		requestOrigin     string
		requestMethod     string
		expectStatus      int
		expectAllowOrigin string
	}{
		{"와일드카드 - Preflight", []string{"*"}, "http://example.com", http.MethodOptions, http.StatusNoContent, "*"},
		{"허용된 Origin - GET", []string{"http://example.com"}, "http://example.com", http.MethodGet, http.StatusOK, "http://example.com"},
		{"허용되지 않은 Origin - GET", []string{"http://trusted.com"}, "http://evil.com", http.MethodGet, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins})
			e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
			e.OPTIONS("/test", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

			req := httptest.NewRequest(tt.requestMethod, "/test", nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)
			if tt.requestMethod == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}

			rec := serve(e, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			if tt.requestMethod == http.MethodOptions {
				allowMethods := rec.Header().Get(echo.HeaderAccessControlAllowMethods)
				assert.Contains(t, allowMethods, http.MethodGet)
				assert.Contains(t, allowMethods, http.MethodPost)
				assert.NotContains(t, allowMethods, http.MethodDelete)
			}
		})
	}
}

func TestNewHTTPServer_StandardHeaders(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), "Request ID가 부여되어야 함")
	assert.Empty(t, rec.Header().Get(echo.HeaderServer), "Server 헤더는 노출되지 않아야 함")
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Empty(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "HTTP 서버는 HSTS를 설정하지 않아야 함")
}

func TestNewHTTPServer_HSTS(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{EnableHSTS: true, AllowOrigins: []string{"*"}})
	e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(echo.HeaderXForwardedProto, "https")

	rec := serve(e, req)

	assert.Contains(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "max-age=31536000")
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.POST("/test", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	body := `{"product_id": "` + strings.Repeat("x", 32*1024) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(e, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewHTTPServer_NotFoundUsesErrorResponse(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.ResultCode)
	assert.Equal(t, constants.ErrMsgNotFound, resp.Message)
}

// 전역 로거 훅을 사용하므로 병렬로 실행하지 않는다.
func TestNewHTTPServer_PanicRecoveryMiddleware(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	var rec *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rec = serve(e, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var recovered bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == constants.LogMsgPanicRecovered {
			recovered = true
			assert.Equal(t, logrus.ErrorLevel, entry.Level)
		}
	}
	assert.True(t, recovered, "패닉 복구 로그가 기록되어야 함")
}
