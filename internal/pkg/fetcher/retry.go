package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
)

const (
	maxAllowedRetries = 10

	defaultMinRetryDelay = 1 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// ErrMaxRetriesExceeded 모든 재시도가 실패했을 때 에러 체인에 포함됩니다.
var ErrMaxRetriesExceeded = errors.New("max retries exceeded")

func newErrMaxRetriesExceeded(maxRetries int, cause error) error {
	if cause == nil {
		cause = ErrMaxRetriesExceeded
	} else {
		cause = errors.Join(ErrMaxRetriesExceeded, cause)
	}
	return apperrors.Wrapf(cause, apperrors.Unavailable, "최대 재시도 횟수(%d회)를 초과하였습니다", maxRetries)
}

func newErrRetryAfterExceeded(retryAfter, maxDelay time.Duration) error {
	return apperrors.Newf(apperrors.Unavailable, "서버가 요청한 재시도 대기 시간(%s)이 허용된 최대 대기 시간(%s)을 초과하여 재시도를 중단합니다", retryAfter, maxDelay)
}

// RetryFetcher 일시적인 오류(네트워크 오류, 5xx, 429, 408)가 발생하면 지수 백오프로 요청을 다시 보냅니다.
//
// 대기 시간은 minRetryDelay * 2^(n-1) 을 상한(maxRetryDelay)으로 자른 뒤 지터(Full Jitter)를 적용합니다.
// 응답에 Retry-After 헤더가 있으면 그 값을 우선하며, 상한을 넘으면 재시도를 중단합니다.
// 멱등하지 않은 메서드(POST 등)는 재시도하지 않습니다.
type RetryFetcher struct {
	delegate Fetcher

	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	minRetryDelay, maxRetryDelay = normalizeRetryDelays(minRetryDelay, maxRetryDelay)

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    normalizeMaxRetries(maxRetries),
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	maxRetries := f.maxRetries
	if !isIdempotentMethod(req.Method) {
		maxRetries = 0
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil && maxRetries > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"url":    redactURL(req.URL),
			"method": req.Method,
		}).Warn("재시도 비활성화: 요청 본문을 다시 만들 수 없습니다 (GetBody nil)")
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, apperrors.Wrap(err, apperrors.Internal, "재시도 요청 본문 생성에 실패했습니다")
				}
				req = req.Clone(req.Context())
				req.Body = body
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil && resp != nil && isRetriableStatus(resp.StatusCode) {
			err = CheckResponseStatus(resp)
			drainAndCloseBody(resp.Body)
			resp = nil
		}
		if err == nil {
			return resp, nil
		}
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		// 호출자의 컨텍스트가 끝났으면 더 기다리지 않는다.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, err
		}
		if !isRetriable(err) {
			return nil, err
		}

		lastErr = err
		if attempt >= maxRetries {
			break
		}

		delay, err := f.nextDelay(attempt+1, lastErr)
		if err != nil {
			return nil, err
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"url":               redactURL(req.URL),
			"retry":             attempt + 1,
			"max_retries":       maxRetries,
			"remaining_retries": maxRetries - attempt - 1,
			"delay":             delay.String(),
			"error":             lastErr.Error(),
		}).WithContext(req.Context()).Warn("재시도 대기 중: 일시적 오류로 인해 요청 재시도를 준비합니다")

		if err := sleepContext(req.Context(), delay); err != nil {
			return nil, err
		}
	}

	if maxRetries == 0 {
		return nil, lastErr
	}
	return nil, newErrMaxRetriesExceeded(maxRetries, lastErr)
}

// nextDelay retry번째 재시도 전에 기다릴 시간을 계산합니다.
func (f *RetryFetcher) nextDelay(retry int, lastErr error) (time.Duration, error) {
	var statusErr *HTTPStatusError
	if errors.As(lastErr, &statusErr) && statusErr.Header != nil {
		if d, ok := parseRetryAfter(statusErr.Header.Get("Retry-After")); ok {
			if d > f.maxRetryDelay {
				return 0, newErrRetryAfterExceeded(d, f.maxRetryDelay)
			}
			return d, nil
		}
	}

	delay := f.minRetryDelay << (retry - 1)
	if delay <= 0 || delay > f.maxRetryDelay {
		delay = f.maxRetryDelay
	}
	delay = time.Duration(rand.Int64N(int64(delay) + 1))
	if delay < f.minRetryDelay/2 {
		delay = f.minRetryDelay / 2
	}
	return delay, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeMaxRetries(maxRetries int) int {
	return min(max(maxRetries, 0), maxAllowedRetries)
}

func normalizeRetryDelays(minRetryDelay, maxRetryDelay time.Duration) (time.Duration, time.Duration) {
	if minRetryDelay <= 0 {
		minRetryDelay = defaultMinRetryDelay
	}
	if maxRetryDelay <= 0 {
		maxRetryDelay = defaultMaxRetryDelay
	}
	if maxRetryDelay < minRetryDelay {
		maxRetryDelay = minRetryDelay
	}
	return minRetryDelay, maxRetryDelay
}

func isRetriableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}
	return code >= 500
}

// isRetriable 다시 보내면 성공할 가능성이 있는 에러인지 판단합니다.
func isRetriable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return isRetriableStatus(statusErr.StatusCode)
	}

	// 본문 크기 초과는 다시 보내도 같다.
	if errors.Is(err, ErrResponseBodyTooLarge) {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if strings.Contains(urlErr.Error(), "unsupported protocol scheme") ||
			strings.Contains(urlErr.Error(), "stopped after") ||
			strings.Contains(urlErr.Error(), "invalid control character in URL") {
			return false
		}
	}

	var hostnameErr x509.HostnameError
	var unknownAuthorityErr x509.UnknownAuthorityError
	var certInvalidErr x509.CertificateInvalidError
	if errors.As(err, &hostnameErr) || errors.As(err, &unknownAuthorityErr) || errors.As(err, &certInvalidErr) {
		return false
	}

	if apperrors.Is(err, apperrors.InvalidInput) || apperrors.Is(err, apperrors.NotFound) || apperrors.Is(err, apperrors.ExecutionFailed) {
		return false
	}

	return true
}

func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// parseRetryAfter 초 단위 숫자 또는 HTTP 날짜 형식의 Retry-After 값을 해석합니다.
func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}

	if date, err := http.ParseTime(value); err == nil {
		return max(time.Until(date), 0), true
	}

	return 0, false
}
