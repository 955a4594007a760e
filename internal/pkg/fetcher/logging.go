package fetcher

import (
	"errors"
	"net/http"
	"time"

	applog "github.com/darkkaiser/trends-engine/pkg/log"
)

// LoggingFetcher 요청 결과와 소요 시간을 기록합니다. 성공은 Debug, 실패는 Error 레벨입니다.
type LoggingFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*LoggingFetcher)(nil)

func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{delegate: delegate}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      redactURL(req.URL),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status"] = resp.Status
		fields["status_code"] = resp.StatusCode
	}

	entry := applog.WithComponentAndFields(component, fields).WithContext(req.Context())

	if err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			entry = entry.WithFields(applog.Fields{
				"status":       statusErr.Status,
				"status_code":  statusErr.StatusCode,
				"body_snippet": statusErr.BodySnippet,
			})
		}
		entry.WithField("error", err.Error()).Error("HTTP 요청 실패")
		return resp, err
	}

	entry.Debug("HTTP 요청 성공")
	return resp, nil
}
