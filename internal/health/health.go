// Package health 백엔드의 GET {base}/health 엔드포인트를 호출하고 그 결과를 해석합니다.
package health

import (
	"context"
)

// Path 백엔드 상태 조회 경로
const Path = "/health"

// Result 2xx 응답 본문에서 읽어낸 백엔드 상태입니다.
type Result struct {
	Status  string `json:"status" validate:"required"`
	Version string `json:"version" validate:"required"`
}

// Checker 백엔드 상태를 한 번 조회합니다.
//
// 실패 시 반환되는 에러의 Error() 값은 화면에 표시할 수 있는 문구여야 합니다.
// Client는 *HTTPStatusError, *TransportError, *DecodeError 중 하나를 반환합니다.
type Checker interface {
	Check(ctx context.Context, baseURL string) (Result, error)
}

// CheckerFunc 일반 함수를 Checker로 사용할 수 있게 합니다.
type CheckerFunc func(ctx context.Context, baseURL string) (Result, error)

func (f CheckerFunc) Check(ctx context.Context, baseURL string) (Result, error) {
	return f(ctx, baseURL)
}
