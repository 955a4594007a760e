package fetcher

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/darkkaiser/trends-engine/pkg/strutil"
)

// HTTPStatusError 허용되지 않은 상태 코드로 응답을 받았을 때의 에러입니다.
type HTTPStatusError struct {
	StatusCode int

	// Status 응답 상태 줄 그대로의 값입니다. (예: "503 Service Unavailable")
	Status string

	// URL 민감 정보가 가려진 요청 주소
	URL string

	Header      http.Header
	BodySnippet string

	// Cause 상태 코드에 따른 분류 (5xx, 429, 408: Unavailable / 그 외: ExecutionFailed)
	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += " URL: " + e.URL
	}
	if e.BodySnippet != "" {
		msg += ", Body: " + e.BodySnippet
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// Reason 상태 줄의 사유 문구를 반환합니다. 서버가 보내지 않았으면(HTTP/2 등) 표준 문구를 사용합니다.
func (e *HTTPStatusError) Reason() string {
	reason := strings.TrimPrefix(strings.TrimSpace(e.Status), strconv.Itoa(e.StatusCode))
	if reason = strutil.NormalizeSpaces(reason); reason != "" {
		return reason
	}
	return http.StatusText(e.StatusCode)
}
