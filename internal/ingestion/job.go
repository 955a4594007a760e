package ingestion

import (
	"context"
	"fmt"
	"slices"
	"time"

	applog "github.com/darkkaiser/trends-engine/pkg/log"
)

// JobConfig Job 구성 값입니다.
type JobConfig struct {
	Sources []string

	// Delay 소스 사이의 대기 시간 (마지막 소스 뒤에는 기다리지 않음)
	Delay time.Duration
}

// Job 설정된 뉴스 소스 전체를 한 번 수집합니다.
type Job struct {
	reader    ArticleReader
	processor Processor

	sources []string
	delay   time.Duration

	// sleep 소스 사이의 대기 (테스트에서 교체)
	sleep func(ctx context.Context, d time.Duration) error
}

// NewJob processor가 nil이면 LoggingProcessor를 사용합니다.
func NewJob(reader ArticleReader, processor Processor, cfg JobConfig) *Job {
	if reader == nil {
		panic("ArticleReader는 필수입니다")
	}
	if processor == nil {
		processor = LoggingProcessor{}
	}

	return &Job{
		reader:    reader,
		processor: processor,

		sources: slices.Clone(cfg.Sources),
		delay:   cfg.Delay,

		sleep: sleepContext,
	}
}

// Sources 수집 대상 소스 목록을 반환합니다.
func (j *Job) Sources() []string {
	return slices.Clone(j.sources)
}

// Run 소스를 순서대로 수집합니다. 소스 하나의 실패(에러, 빈 본문, 패닉)는 기록 후 건너뜁니다.
// ctx가 취소되면 남은 소스를 수집하지 않고 그때까지의 결과와 ctx 에러를 반환합니다.
func (j *Job) Run(ctx context.Context) (Report, error) {
	report := Report{Total: len(j.sources)}

	applog.WithComponentAndFields(component, applog.Fields{
		"sources": report.Total,
	}).Info("기사 수집 시작")

	for i, source := range j.sources {
		if err := ctx.Err(); err != nil {
			return report, j.interrupted(report, err)
		}

		if j.fetchOne(ctx, source) {
			report.Fetched++
		}

		if i < len(j.sources)-1 && j.delay > 0 {
			applog.WithComponentAndFields(component, applog.Fields{
				"delay": j.delay.String(),
			}).Debug("다음 소스 수집 전 대기")

			if err := j.sleep(ctx, j.delay); err != nil {
				return report, j.interrupted(report, err)
			}
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"fetched": report.Fetched,
		"total":   report.Total,
	}).Infof("기사 수집 완료: %d/%d 소스 수집", report.Fetched, report.Total)

	return report, nil
}

// fetchOne 소스 하나를 가져와 처리합니다. 처리까지 마쳤으면 true를 반환합니다.
func (j *Job) fetchOne(ctx context.Context, source string) (ok bool) {
	logger := applog.WithComponentAndFields(component, applog.Fields{"url": source})

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", fmt.Sprint(r)).Error("소스 수집 중 예기치 못한 오류가 발생했습니다")
			ok = false
		}
	}()

	logger.Info("소스 수집")

	content, err := j.reader.Read(ctx, source)
	if err != nil || content == "" {
		// 실패 원인은 reader가 기록한다.
		logger.Warn("소스에서 본문을 가져오지 못했습니다")
		return false
	}

	logger.WithField("length", len(content)).Info("소스 본문 수집 성공")

	if err := j.processor.Process(ctx, Article{URL: source, Content: content}); err != nil {
		logger.WithField("error", err.Error()).Error("기사 본문 처리 실패")
		return false
	}
	return true
}

func (j *Job) interrupted(report Report, err error) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"fetched": report.Fetched,
		"total":   report.Total,
		"error":   err.Error(),
	}).Warn("기사 수집 중단")
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
