// Package scheduler 설정된 Cron 스케줄에 맞춰 카탈로그 갱신 작업을 주기적으로 실행합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/darkkaiser/catalog-insight/internal/config"
	"github.com/darkkaiser/catalog-insight/pkg/cronx"
	applog "github.com/darkkaiser/catalog-insight/pkg/log"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// refreshJobName 카탈로그 갱신 작업의 이름
const refreshJobName = "catalog.refresh"

// defaultJobTimeout 작업 한 번의 최대 실행 시간
const defaultJobTimeout = 2 * time.Minute

// Refresher 주기적으로 갱신되는 대상입니다.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler 카탈로그 갱신 작업을 Cron 스케줄에 따라 실행하는 서비스입니다.
type Scheduler struct {
	refreshConfig config.RefreshConfig
	refresher     Refresher

	jobTimeout time.Duration

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(refreshConfig config.RefreshConfig, refresher Refresher) *Scheduler {
	if refresher == nil {
		panic("Refresher는 필수입니다")
	}

	return &Scheduler{
		refreshConfig: refreshConfig,
		refresher:     refresher,
		jobTimeout:    defaultJobTimeout,
	}
}

// Start 스케줄러를 시작하고 실행 가능한 작업을 Cron 엔진에 등록합니다.
// 잘못된 Cron 표현식은 설정 검증 단계에서 걸러지지만, 등록에 실패하면 에러를 반환합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	// 2. 작업 등록
	if err := s.registerJobs(); err != nil {
		s.cron = nil
		serviceStopWG.Done()
		return err
	}

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 중지하고 실행 중인 작업이 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// registerJobs 실행 가능(Runnable)으로 설정된 작업만 등록합니다.
func (s *Scheduler) registerJobs() error {
	if !s.refreshConfig.Runnable {
		applog.WithComponent(component).Info("카탈로그 주기적 갱신이 비활성화되어 있어 작업을 등록하지 않습니다")
		return nil
	}

	timeSpec := s.refreshConfig.TimeSpec
	if _, err := s.cron.AddFunc(timeSpec, s.runRefresh); err != nil {
		return newErrInvalidCronSpec(refreshJobName, timeSpec, err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"job":       refreshJobName,
		"time_spec": timeSpec,
	}).Debug("작업이 스케줄에 등록됨")

	return nil
}

// runRefresh 갱신 작업을 한 번 실행합니다.
//
// 작업의 생명주기는 서비스 종료 신호와 분리됩니다. Stop()은 실행 중인 작업의 완료를 기다리므로
// 작업 도중 컨텍스트가 취소되어 불완전하게 끝나는 일이 없으며, 무한 대기는 타임아웃으로 막습니다.
func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	started := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"job":   refreshJobName,
			"error": err,
		}).Error("작업 실행 실패: 카탈로그 갱신 중 오류가 발생했습니다")
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"job":     refreshJobName,
		"elapsed": time.Since(started).String(),
	}).Debug("작업 실행 완료")
}
