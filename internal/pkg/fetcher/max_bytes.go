package fetcher

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
)

const (
	// DefaultMaxBytes 상태 응답 본문의 기본 최대 크기입니다. 상태 응답은 작은 JSON 객체 하나입니다.
	DefaultMaxBytes = 64 * 1024

	// NoLimit 본문 크기를 제한하지 않습니다.
	NoLimit = -1
)

// ErrResponseBodyTooLarge 본문 크기 제한 초과 에러들의 공통 원인입니다. errors.Is 로 판별합니다.
var ErrResponseBodyTooLarge = errors.New("response body too large")

// NewErrResponseBodyTooLarge 본문을 읽는 도중 제한을 넘었을 때의 에러입니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.ParsingFailed, "응답 본문이 허용된 최대 크기(%d bytes)를 초과했습니다", limit)
}

// NewErrResponseBodyTooLargeByContentLength Content-Length 만으로 제한 초과가 확인된 경우의 에러입니다.
func NewErrResponseBodyTooLargeByContentLength(length, limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.ParsingFailed, "응답 본문 크기(%d bytes)가 허용된 최대 크기(%d bytes)를 초과했습니다", length, limit)
}

type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	var maxErr *http.MaxBytesError
	if err != nil && errors.As(err, &maxErr) {
		return n, NewErrResponseBodyTooLarge(r.limit)
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher 응답 본문의 크기를 제한합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher limit이 NoLimit 이면 delegate를 그대로, 0 이하이면 DefaultMaxBytes를 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	if limit == NoLimit {
		return delegate
	}
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, NewErrResponseBodyTooLargeByContentLength(resp.ContentLength, f.limit)
	}

	if resp.Body != nil {
		resp.Body = &maxBytesReader{
			rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
			limit: f.limit,
		}
	}
	return resp, nil
}
