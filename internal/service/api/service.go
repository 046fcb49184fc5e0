package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/catalog-insight/docs"
	"github.com/darkkaiser/catalog-insight/internal/config"
	"github.com/darkkaiser/catalog-insight/internal/pkg/version"
	"github.com/darkkaiser/catalog-insight/internal/service/api/constants"
	"github.com/darkkaiser/catalog-insight/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/catalog-insight/internal/service/api/v1"
	v1handler "github.com/darkkaiser/catalog-insight/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/labstack/echo/v4"
)

// CatalogService API가 사용하는 카탈로그 서비스의 기능입니다. 조회와 상태 확인을 함께 제공해야 합니다.
type CatalogService interface {
	v1handler.CatalogReader
	system.HealthChecker
}

// Service 카탈로그 분석 API 서버의 생명주기를 관리하는 서비스입니다.
//
// 이 서비스는 다음과 같은 역할을 수행합니다:
//   - Echo 기반 HTTP/HTTPS 서버 시작 및 종료
//   - 미들웨어 체인과 전역 에러 핸들러 설정
//   - 시스템(/health, /version), Swagger UI, v1 API 라우트 등록
//   - Graceful Shutdown 지원 (5초 타임아웃)
//
// 서비스는 고루틴으로 실행되며, context를 통해 종료 신호를 받습니다.
type Service struct {
	appConfig *config.AppConfig

	catalog CatalogService
	alerts  v1handler.AlertTracker

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, catalog CatalogService, alerts v1handler.AlertTracker, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogReaderRequired)
	}
	if alerts == nil {
		panic(constants.PanicMsgAlertTrackerRequired)
	}

	return &Service{
		appConfig: appConfig,

		catalog: catalog,
		alerts:  alerts,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// serviceStopCtx가 취소되면 서버를 종료한 뒤 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버 인스턴스를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.catalog, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.catalog, s.alerts)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   s.appConfig.AnalyticsAPI.WS.TLSServer,
		AllowOrigins: s.appConfig.AnalyticsAPI.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다. 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.AnalyticsAPI.WS
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	address := fmt.Sprintf(":%d", ws.ListenPort)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
// http.ErrServerClosed는 정상 종료이며, 그 외의 에러(포트 바인딩 실패 등)는 Error 레벨로 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.AnalyticsAPI.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
// 서버가 먼저 종료된 경우(포트 바인딩 실패 등)에는 Shutdown 호출 없이 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
