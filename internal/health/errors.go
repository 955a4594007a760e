package health

import (
	"fmt"
)

// 아래 에러들의 Error() 값은 상태 페이지에 그대로 표시되는 문구입니다.

// HTTPStatusError 백엔드가 2xx 이외의 상태 코드로 응답했습니다.
type HTTPStatusError struct {
	StatusCode int
	Reason     string
	URL        string

	cause error
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("Failed to fetch status: %d %s", e.StatusCode, e.Reason)
}

func (e *HTTPStatusError) Unwrap() error { return e.cause }

// TransportError 응답을 받지 못했습니다. (연결 실패, DNS, 타임아웃, 요청 생성 실패 등)
type TransportError struct {
	Err error

	// cause 표시 문구와 별개로 보존하는 원래 에러 (로그용)
	cause error
}

// Error 원인 에러의 설명을 그대로 반환합니다. 원인이 없으면 빈 문자열입니다.
func (e *TransportError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.Err
}

// DecodeError 2xx 응답의 본문을 상태 정보로 해석하지 못했습니다.
type DecodeError struct {
	Err error

	// cause 표시 문구와 별개로 보존하는 원래 에러 (로그용)
	cause error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "Failed to decode backend status."
	}
	return "Failed to decode backend status: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.Err
}
