package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/catalog-insight/internal/pkg/version"
	"github.com/darkkaiser/catalog-insight/internal/service/api/handler/system"
	systemmodel "github.com/darkkaiser/catalog-insight/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthyCatalog struct{}

func (healthyCatalog) Health() error { return nil }

func newRoutedEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	RegisterRoutes(e, system.NewHandler(healthyCatalog{}, version.Info{Version: "1.2.3", Commit: "abc1234"}))
	return e
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := newRoutedEcho(t)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /health", "GET /version", "GET /swagger/*"} {
		assert.True(t, registered[want], "%s 라우트가 등록되어야 함", want)
	}
}

func TestRegisterRoutes_SystemEndpoints(t *testing.T) {
	t.Parallel()

	e := newRoutedEcho(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp systemmodel.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
	})

	t.Run("version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp systemmodel.VersionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1.2.3", resp.Version)
		assert.Equal(t, "abc1234", resp.Commit)
	})
}

func TestRegisterRoutes_SwaggerDocument(t *testing.T) {
	t.Parallel()

	e := newRoutedEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc.Paths, "/api/v1/products")
	assert.Contains(t, doc.Paths, "/api/v1/alerts")
	assert.Contains(t, doc.Paths, "/health")
}
