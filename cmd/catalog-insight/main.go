package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/catalog-insight/internal/alert"
	"github.com/darkkaiser/catalog-insight/internal/config"
	"github.com/darkkaiser/catalog-insight/internal/pkg/version"
	"github.com/darkkaiser/catalog-insight/internal/service"
	"github.com/darkkaiser/catalog-insight/internal/service/api"
	"github.com/darkkaiser/catalog-insight/internal/service/catalog"
	"github.com/darkkaiser/catalog-insight/internal/service/fetcher"
	"github.com/darkkaiser/catalog-insight/internal/service/notification"
	"github.com/darkkaiser/catalog-insight/internal/service/scheduler"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
	"github.com/joho/godotenv"
)

// @title Catalog Insight API
// @version 1.0.0
// @description 상품 카탈로그 서비스의 데이터를 주기적으로 조회하여 가격 구간 분석, 가격 조정 추천, 요약 지표를 제공하고
// @description 상품별 프로모션 알림을 Webhook과 텔레그램으로 발송하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 상품 목록 필터링, 검색, 정렬
// @description - 가격 구간별 점유율과 판매량 분포
// @description - 가격 인상/인하 후보 및 적정 가격 상품 추천
// @description - 상품별 프로모션 알림 발송 (발송 성공 후 쿨다운 동안 중복 발송 차단)

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const banner = `
   ____      _        _               ___           _       _     _
  / ___|__ _| |_ __ _| | ___   __ _  |_ _|_ __  ___(_) __ _| |__ | |_
 | |   / _' | __/ _' | |/ _ \ / _' |  | || '_ \/ __| |/ _' | '_ \| __|
 | |__| (_| | || (_| | | (_) | (_| |  | || | | \__ \ | (_| | | | | |_
  \____\__,_|\__\__,_|_|\___/ \__, | |___|_| |_|___/_|\__, |_| |_|\__|
                              |___/                   |___/      %s
--------------------------------------------------------------------------------
`

func main() {
	// 0. .env 파일이 있으면 환경 변수로 먼저 올린다 (CATALOG_ 접두사 설정 덮어쓰기용)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "[FATAL] .env 파일 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패로 프로그램을 종료합니다")

		appLogCloser.Close()
		os.Exit(1)
	}
}

func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	// 서비스를 생성하고 초기화한다.
	httpFetcher := fetcher.New(fetcher.Config{
		Timeout:       appConfig.Catalog.RequestTimeout,
		MaxRetries:    appConfig.HTTPRetry.MaxRetries,
		MinRetryDelay: appConfig.HTTPRetry.RetryDelay,
	})

	catalogService := catalog.NewService(appConfig.Catalog, httpFetcher)

	notifiers, err := notification.NewNotifiers(appConfig.Alert, httpFetcher, appConfig.Debug)
	if err != nil {
		return err
	}
	notificationService := notification.NewService(notifiers, catalogService)

	alertTracker := alert.NewTracker(notificationService, appConfig.Alert.Cooldown)
	defer alertTracker.Close()

	schedulerService := scheduler.NewService(appConfig.Catalog.Refresh, catalogService)
	apiService := api.NewService(appConfig, catalogService, alertTracker, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 카탈로그 서비스가 최초 조회를 마친 뒤 스케줄러와 API 서버를 시작한다.
	services := []service.Service{catalogService, schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신했습니다")
	cancel()
	serviceStopWG.Wait()

	return nil
}
