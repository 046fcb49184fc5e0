package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/catalog-insight/internal/pkg/version"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealth struct{ err error }

func (s stubHealth) Health() error { return s.err }

func TestNewHandler_PanicsWithoutHealthChecker(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgHealthCheckerRequired, func() {
		NewHandler(nil, version.Info{})
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		healthErr  error
		wantStatus string
	}{
		{"정상", nil, constants.HealthStatusHealthy},
		{"카탈로그 갱신 실패", errors.New("카탈로그 조회 실패"), constants.HealthStatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(stubHealth{err: tt.healthErr}, version.Info{})

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, h.HealthCheckHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))

			dep, ok := resp.Dependencies[constants.DependencyCatalogService]
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, dep.Status)
			if tt.healthErr != nil {
				assert.Equal(t, tt.healthErr.Error(), dep.Message)
			}
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	info := version.Info{
		Version:     "v1.2.0",
		Commit:      "abc1234",
		BuildDate:   "2026-10-01T14:00:00Z",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
	}
	h := NewHandler(stubHealth{}, info)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)

	require.NoError(t, h.VersionHandler(c))

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, system.VersionResponse{
		Version:     "v1.2.0",
		Commit:      "abc1234",
		BuildDate:   "2026-10-01T14:00:00Z",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
	}, resp)
}
