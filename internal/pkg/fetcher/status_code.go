package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"unicode/utf8"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/darkkaiser/trends-engine/pkg/strutil"
)

// maxBodySnippetBytes 진단용으로 남기는 에러 응답 본문의 최대 크기
const maxBodySnippetBytes = 512

// StatusCodeFetcher 허용되지 않은 상태 코드의 응답을 *HTTPStatusError로 바꿉니다.
type StatusCodeFetcher struct {
	delegate           Fetcher
	allowedStatusCodes []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 2xx 응답만 허용합니다.
func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate}
}

// NewStatusCodeFetcherWithOptions 지정한 상태 코드만 허용합니다.
func NewStatusCodeFetcherWithOptions(delegate Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate, allowedStatusCodes: allowedStatusCodes}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowedStatusCodes...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}
	return resp, nil
}

// CheckResponseStatus 상태 코드가 허용 범위에 있으면 nil을, 아니면 *HTTPStatusError를 반환합니다.
// allowed가 비어 있으면 2xx 전체를 허용합니다. 에러인 경우 본문 앞부분을 읽어 BodySnippet에 담습니다.
func CheckResponseStatus(resp *http.Response, allowed ...int) error {
	if len(allowed) == 0 {
		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			return nil
		}
	} else if slices.Contains(allowed, resp.StatusCode) {
		return nil
	}

	errType := apperrors.ExecutionFailed
	switch {
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode == http.StatusRequestTimeout:
		errType = apperrors.Unavailable
	case resp.StatusCode == http.StatusNotFound:
		errType = apperrors.NotFound
	}

	var url string
	if resp.Request != nil {
		url = redactURL(resp.Request.URL)
	}

	var snippet string
	if resp.Body != nil {
		if b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes)); err == nil && utf8.Valid(b) {
			snippet = strutil.NormalizeSpaces(string(b))
		}
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         url,
		Header:      redactHeaders(resp.Header),
		BodySnippet: snippet,
		Cause:       apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %d", resp.StatusCode)),
	}
}
