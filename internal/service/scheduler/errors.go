package scheduler

import (
	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
)

var (
	// ErrNotRunning 서비스가 시작되지 않았거나 이미 종료된 상태에서 작업 실행을 요청했을 때 반환하는 에러입니다.
	ErrNotRunning = apperrors.New(apperrors.Unavailable, "Scheduler 서비스가 실행 중이 아닙니다")

	// ErrJobAlreadyRunning 이전 기사 수집 작업이 아직 끝나지 않았을 때 반환하는 에러입니다.
	ErrJobAlreadyRunning = apperrors.New(apperrors.Unavailable, "기사 수집 작업이 이미 실행 중입니다")
)

// NewErrInvalidCronSpec Cron 표현식이 올바르지 않아 스케줄 등록에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidCronSpec(timeSpec string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "스케줄 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec='%s')", timeSpec)
}
