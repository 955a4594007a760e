package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/darkkaiser/trends-engine/internal/pkg/fetcher"
	"github.com/darkkaiser/trends-engine/pkg/maputil"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html/charset"
)

var (
	errBodyTooLarge    = errors.New("response body is too large")
	errPipelineFailure = errors.New("request to backend failed")
)

// Client HTTP로 백엔드 상태를 조회하는 Checker 구현입니다.
type Client struct {
	fetcher  fetcher.Fetcher
	validate *validator.Validate
}

var _ Checker = (*Client)(nil)

func NewClient(f fetcher.Fetcher) *Client {
	return &Client{
		fetcher:  f,
		validate: validator.New(),
	}
}

// NewDefaultClient 기본 요청 파이프라인(fetcher.New)을 사용하는 Client를 만듭니다.
func NewDefaultClient(userAgent string, timeout time.Duration) *Client {
	return NewClient(fetcher.New(fetcher.Options{
		UserAgent: userAgent,
		Timeout:   timeout,
		MaxBytes:  fetcher.DefaultMaxBytes,
	}))
}

// URL 기준 주소 뒤에 /health 를 붙입니다. 기준 주소 끝의 '/'는 하나로 합쳐집니다.
func URL(baseURL string) string {
	return strings.TrimSuffix(strings.TrimSpace(baseURL), "/") + Path
}

// Check GET {baseURL}/health 를 한 번 호출합니다.
func (c *Client) Check(ctx context.Context, baseURL string) (Result, error) {
	resp, err := fetcher.Get(ctx, c.fetcher, URL(baseURL))
	if err != nil {
		var statusErr *fetcher.HTTPStatusError
		if errors.As(err, &statusErr) {
			return Result{}, &HTTPStatusError{
				StatusCode: statusErr.StatusCode,
				Reason:     statusErr.Reason(),
				URL:        statusErr.URL,
				cause:      err,
			}
		}
		if errors.Is(err, fetcher.ErrResponseBodyTooLarge) {
			return Result{}, &DecodeError{Err: errBodyTooLarge, cause: err}
		}
		// 파이프라인 데코레이터가 만든 AppError의 문구는 화면에 내보내지 않는다.
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return Result{}, &TransportError{Err: errPipelineFailure, cause: err}
		}
		return Result{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// 파이프라인에 상태 코드 검사가 없는 경우를 위해 한 번 더 확인한다.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return Result{}, &HTTPStatusError{StatusCode: resp.StatusCode, Reason: reason}
	}

	result, err := c.decode(resp)
	if err != nil {
		if errors.Is(err, fetcher.ErrResponseBodyTooLarge) {
			return Result{}, &DecodeError{Err: errBodyTooLarge, cause: err}
		}
		return Result{}, &DecodeError{Err: err}
	}
	return result, nil
}

func (c *Client) decode(resp *http.Response) (Result, error) {
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return Result{}, fmt.Errorf("unsupported charset: %w", err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	if !gjson.ValidBytes(body) {
		return Result{}, errors.New("response body is not valid JSON")
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return Result{}, errors.New("response body is not a JSON object")
	}

	fields, _ := parsed.Value().(map[string]any)
	result, err := maputil.Decode[Result](fields)
	if err != nil {
		return Result{}, errors.New("unexpected field type in response body")
	}

	if err := c.validate.Struct(result); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Result{}, fmt.Errorf("missing %q in response body", strings.ToLower(verrs[0].Field()))
		}
		return Result{}, err
	}

	return *result, nil
}
