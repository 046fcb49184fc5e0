// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/catalog-insight/internal/pkg/version"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/model/system"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 헬스체크 대상 의존성입니다. nil 에러는 정상을 의미합니다.
type HealthChecker interface {
	Health() error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	catalog HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(catalog HealthChecker, buildInfo version.Info) *Handler {
	if catalog == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		catalog: catalog,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 카탈로그 서비스의 상태를 확인합니다.
// @Description 카탈로그를 한 번도 조회하지 못했거나 마지막 갱신이 실패하면 unhealthy입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
	if err := h.catalog.Health(); err != nil {
		dep = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       dep.Status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{constants.DependencyCatalogService: dep},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 애플리케이션 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
