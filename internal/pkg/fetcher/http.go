package fetcher

import (
	"net/http"
	"time"
)

// DefaultTimeout 요청 전체(연결, 헤더, 본문 수신)에 허용되는 기본 시간입니다.
const DefaultTimeout = 30 * time.Second

// HTTPFetcher 실제 네트워크 요청을 수행하는 최하단 Fetcher 입니다.
type HTTPFetcher struct {
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher timeout이 0 이하이면 DefaultTimeout을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func NewHTTPFetcherWithClient(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
