package fetcher

import (
	"net/http"
)

// UserAgentFetcher 요청에 User-Agent가 없으면 지정된 값을 설정합니다.
type UserAgentFetcher struct {
	delegate  Fetcher
	userAgent string
}

var _ Fetcher = (*UserAgentFetcher)(nil)

func NewUserAgentFetcher(delegate Fetcher, userAgent string) *UserAgentFetcher {
	return &UserAgentFetcher{delegate: delegate, userAgent: userAgent}
}

func (f *UserAgentFetcher) Do(req *http.Request) (*http.Response, error) {
	if f.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return f.delegate.Do(req)
	}

	// 호출자의 요청 객체는 수정하지 않는다.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", f.userAgent)

	return f.delegate.Do(cloned)
}
