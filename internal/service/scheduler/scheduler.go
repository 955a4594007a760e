// Package scheduler 기사 수집 작업의 실행을 담당하는 서비스입니다.
//
// 설정된 Cron 스케줄에 따른 주기 실행과 API 요청(Trigger)에 따른 즉시 실행을 모두 처리하며,
// 어느 경로로 실행되든 기사 수집 작업은 한 번에 하나만 실행됩니다.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/darkkaiser/trends-engine/internal/ingestion"
	"github.com/darkkaiser/trends-engine/pkg/cronx"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

const (
	runByScheduler = "scheduler"
	runByAPI       = "api"
)

// Job 기사 수집 작업 한 번을 실행합니다.
type Job interface {
	Run(ctx context.Context) (ingestion.Report, error)
}

// Scheduler 기사 수집 작업을 Cron 스케줄 또는 요청에 따라 백그라운드에서 실행하는 서비스입니다.
type Scheduler struct {
	// timeSpec 주기 실행 스케줄, 비어 있으면 요청이 있을 때만 실행합니다.
	timeSpec string

	job Job

	cron *cron.Cron

	// jobMu 실행 중인 작업이 잡고 있습니다. (중복 실행 방지)
	jobMu sync.Mutex

	// jobCtx 서비스가 중지되면 취소되어 실행 중인 작업을 중단시킵니다.
	jobCtx    context.Context
	jobCancel context.CancelFunc

	// jobsWG Trigger로 시작된 작업의 종료 대기용
	jobsWG sync.WaitGroup

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(timeSpec string, job Job) *Scheduler {
	if job == nil {
		panic("Job은 필수입니다")
	}

	return &Scheduler{
		timeSpec: timeSpec,

		job: job,
	}
}

// Start 스케줄러를 시작합니다. 스케줄이 설정되어 있으면 Cron 엔진에 기사 수집 작업을 등록합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: Cron 표현식이 올바르지 않은 경우
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// Recover: 작업 중 Panic이 발생해도 다음 실행에 영향을 주지 않음
	// SkipIfStillRunning: 이전 실행이 끝나지 않았으면 이번 실행을 건너뜀
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	jobCtx, jobCancel := context.WithCancel(context.Background())

	if s.timeSpec != "" {
		if _, err := c.AddFunc(s.timeSpec, func() { s.runScheduled(jobCtx) }); err != nil {
			jobCancel()
			serviceStopWG.Done()

			applog.WithComponentAndFields(component, applog.Fields{
				"time_spec": s.timeSpec,
				"error":     err.Error(),
			}).Error("스케줄 등록 실패: 잘못된 Cron 표현식입니다")

			return NewErrInvalidCronSpec(s.timeSpec, err)
		}
	}

	s.cron = c
	s.jobCtx = jobCtx
	s.jobCancel = jobCancel

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec":            s.timeSpec,
		"registered_schedules": len(s.cron.Entries()),
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 작업을 취소하고 끝날 때까지 기다린 뒤 스케줄러를 중지합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	s.jobCancel()

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	s.jobsWG.Wait()

	s.cron = nil
	s.jobCtx = nil
	s.jobCancel = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// Running 서비스가 실행 중인지 여부를 반환합니다.
func (s *Scheduler) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}

// Trigger 기사 수집 작업을 백그라운드에서 즉시 실행합니다. 작업 완료를 기다리지 않고 반환합니다.
//
// 반환값:
//   - ErrNotRunning: 서비스가 실행 중이 아닌 경우
//   - ErrJobAlreadyRunning: 이전 작업이 아직 실행 중인 경우
func (s *Scheduler) Trigger() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return ErrNotRunning
	}
	if !s.jobMu.TryLock() {
		return ErrJobAlreadyRunning
	}

	ctx := s.jobCtx

	s.jobsWG.Add(1)
	go func() {
		defer s.jobsWG.Done()
		defer s.jobMu.Unlock()

		s.execute(ctx, runByAPI)
	}()

	applog.WithComponentAndFields(component, applog.Fields{
		"run_by": runByAPI,
	}).Info("기사 수집 작업 실행 요청을 접수했습니다")

	return nil
}

func (s *Scheduler) runScheduled(ctx context.Context) {
	if !s.jobMu.TryLock() {
		applog.WithComponentAndFields(component, applog.Fields{
			"run_by": runByScheduler,
		}).Warn("이전 기사 수집 작업이 아직 실행 중이므로 이번 스케줄을 건너뜁니다")
		return
	}
	defer s.jobMu.Unlock()

	s.execute(ctx, runByScheduler)
}

// execute 작업을 실행하고 결과를 기록합니다. 작업의 Panic은 여기서 복구됩니다.
func (s *Scheduler) execute(ctx context.Context, runBy string) {
	logger := applog.WithComponentAndFields(component, applog.Fields{"run_by": runBy})

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", fmt.Sprint(r)).Error("기사 수집 작업 중 예기치 못한 오류가 발생했습니다")
		}
	}()

	report, err := s.job.Run(ctx)
	if err != nil {
		logger.WithFields(applog.Fields{
			"fetched": report.Fetched,
			"total":   report.Total,
			"error":   err.Error(),
		}).Warn("기사 수집 작업이 중단되었습니다")
		return
	}

	logger.WithFields(applog.Fields{
		"fetched": report.Fetched,
		"total":   report.Total,
	}).Info("기사 수집 작업이 완료되었습니다")
}
