package ingestion

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/darkkaiser/trends-engine/internal/pkg/fetcher"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"golang.org/x/net/html/charset"
)

// ErrEmptyURL 빈 기사 주소로 Read를 호출했습니다.
var ErrEmptyURL = apperrors.New(apperrors.InvalidInput, "기사 주소가 비어 있습니다")

// ReaderConfig Reader 구성 값입니다. 0 값 필드는 기본값을 사용합니다.
type ReaderConfig struct {
	BaseURL  string
	Timeout  time.Duration
	MaxBytes int64

	MaxRetries    int
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// Client 지정하면 Timeout 대신 이 클라이언트를 사용합니다. (테스트 서버 등)
	Client *http.Client
}

// Reader Reader API(r.jina.ai)로 기사 본문을 텍스트로 가져옵니다.
type Reader struct {
	baseURL string
	fetcher fetcher.Fetcher
}

var _ ArticleReader = (*Reader)(nil)

func NewReader(cfg ReaderConfig) *Reader {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultReaderBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return NewReaderWithFetcher(cfg.BaseURL, fetcher.New(fetcher.Options{
		UserAgent:     UserAgent,
		MaxBytes:      cfg.MaxBytes,
		Timeout:       cfg.Timeout,
		MaxRetries:    cfg.MaxRetries,
		MinRetryDelay: cfg.MinRetryDelay,
		MaxRetryDelay: cfg.MaxRetryDelay,
		Client:        cfg.Client,
	}))
}

// NewReaderWithFetcher 요청 파이프라인을 직접 지정합니다.
func NewReaderWithFetcher(baseURL string, f fetcher.Fetcher) *Reader {
	return &Reader{baseURL: baseURL, fetcher: f}
}

// ReaderURL 기사 주소 전체를 경로 한 칸으로 인코딩하여 기준 주소 뒤에 붙입니다.
// 영문자, 숫자, '-', '_', '.', '~' 를 제외한 모든 문자('/', ':' 포함)가 %XX로 바뀝니다.
func ReaderURL(baseURL, articleURL string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + strings.ReplaceAll(url.QueryEscape(articleURL), "+", "%20")
}

// Read 기사 본문을 텍스트로 가져옵니다. 실패 원인은 여기서 기록되며, 호출자는 에러 여부만 확인하면 됩니다.
func (r *Reader) Read(ctx context.Context, articleURL string) (string, error) {
	if articleURL == "" {
		applog.WithComponent(component).Warn("빈 기사 주소로 본문 요청이 호출되었습니다")
		return "", ErrEmptyURL
	}

	readerURL := ReaderURL(r.baseURL, articleURL)
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"url":        articleURL,
		"reader_url": readerURL,
	}).WithContext(ctx)

	logger.Info("Reader API로 기사 본문을 요청합니다")

	resp, err := fetcher.GetWithHeader(ctx, r.fetcher, readerURL, http.Header{
		"Accept":     []string{"text/plain"},
		"User-Agent": []string{UserAgent},
	})
	if err != nil {
		var statusErr *fetcher.HTTPStatusError
		if errors.As(err, &statusErr) {
			logger.WithFields(applog.Fields{
				"status_code":  statusErr.StatusCode,
				"body_snippet": statusErr.BodySnippet,
			}).Error("기사 본문 요청 실패: Reader API가 오류 상태 코드로 응답했습니다")
		} else {
			logger.WithField("error", err.Error()).Error("기사 본문 요청 실패: 응답을 받지 못했습니다")
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := readText(resp)
	if err != nil {
		logger.WithField("error", err.Error()).Error("기사 본문 요청 실패: 응답 본문을 읽지 못했습니다")
		return "", err
	}

	logger.WithField("length", len(body)).Info("기사 본문을 가져왔습니다")
	return body, nil
}

func readText(resp *http.Response) (string, error) {
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ParsingFailed, "지원하지 않는 문자 집합입니다")
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
