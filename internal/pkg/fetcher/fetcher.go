// Package fetcher 백엔드 상태 조회와 기사 수집에 쓰이는 HTTP 요청 파이프라인을 제공합니다.
//
// 각 Fetcher는 다른 Fetcher를 감싸는 데코레이터이며 다음 순서로 조립됩니다.
//
//	UserAgentFetcher -> LoggingFetcher -> [RetryFetcher] -> MaxBytesFetcher -> StatusCodeFetcher -> HTTPFetcher
//
// 상태 코드 검사가 크기 검사보다 먼저 수행되므로 본문이 큰 에러 응답도 *HTTPStatusError가 됩니다.
// RetryFetcher는 Options.MaxRetries가 1 이상일 때만 조립됩니다. 백엔드 상태 조회는 재시도하지 않습니다.
package fetcher

import (
	"context"
	"net/http"
	"time"
)

const component = "fetcher"

// Fetcher HTTP 요청 하나를 수행합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get ctx에 묶인 JSON GET 요청을 f로 수행합니다. 에러와 함께 응답이 반환되면 본문을 정리합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	return GetWithHeader(ctx, f, url, http.Header{"Accept": []string{"application/json"}})
}

// GetWithHeader header를 그대로 실어 GET 요청을 수행합니다.
func GetWithHeader(ctx context.Context, f Fetcher, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}
	return resp, nil
}

// Options 기본 파이프라인 구성 값입니다.
type Options struct {
	UserAgent string
	MaxBytes  int64
	Timeout   time.Duration

	// MaxRetries 0 이면 재시도하지 않습니다.
	MaxRetries    int
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// Client 지정하면 Timeout 대신 이 클라이언트를 그대로 사용합니다. (테스트 서버 등)
	Client *http.Client
}

// New 기본 파이프라인을 조립합니다.
func New(opts Options) Fetcher {
	var base Fetcher
	if opts.Client != nil {
		base = NewHTTPFetcherWithClient(opts.Client)
	} else {
		base = NewHTTPFetcher(opts.Timeout)
	}

	var f Fetcher = NewStatusCodeFetcher(base)
	f = NewMaxBytesFetcher(f, opts.MaxBytes)
	if opts.MaxRetries > 0 {
		f = NewRetryFetcher(f, opts.MaxRetries, opts.MinRetryDelay, opts.MaxRetryDelay)
	}
	f = NewLoggingFetcher(f)
	return NewUserAgentFetcher(f, opts.UserAgent)
}
