package errors

import "strconv"

// ErrorType 에러의 성격을 분류하는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 디스크, 소켓 등 시스템 수준의 오류
	System

	// InvalidInput 잘못된 입력값 또는 설정값
	InvalidInput

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// ExecutionFailed 외부 호출 또는 작업 수행 실패
	ExecutionFailed

	// ParsingFailed 응답 본문의 파싱 또는 디코딩 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 대상 서비스가 일시적으로 응답할 수 없음
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
