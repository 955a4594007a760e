package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/trends-engine/internal/health"
	"github.com/darkkaiser/trends-engine/internal/page"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service/api"
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingChecker 호출 횟수를 세는 Checker 입니다.
type countingChecker struct {
	calls atomic.Int32
	fn    health.CheckerFunc
}

func (c *countingChecker) Check(ctx context.Context, baseURL string) (health.Result, error) {
	c.calls.Add(1)
	return c.fn(ctx, baseURL)
}

func newTestEcho(h *Handler) *echo.Echo {
	e := api.NewHTTPServer(api.HTTPServerConfig{})
	e.Renderer = page.MustNewRenderer()
	RegisterRoutes(e, h, system.NewHandler(Product, "v0.1.0", version.Info{Version: "v0.1.0"}))
	return e
}

func get(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndexHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		apiURL    string
		fn        health.CheckerFunc
		wantState string
		wantCalls int32
		wantText  []string
		wantNone  []string
	}{
		{
			name:      "백엔드 주소 없음",
			apiURL:    "  ",
			wantState: "config_error",
			wantCalls: 0,
			wantText:  []string{"Error connecting to backend: Backend API URL is not configured."},
			wantNone:  []string{"Version:", "Loading backend status..."},
		},
		{
			name:   "정상 응답",
			apiURL: "http://backend:8000",
			fn: func(context.Context, string) (health.Result, error) {
				return health.Result{Status: "healthy", Version: "0.1.0"}, nil
			},
			wantState: "success",
			wantCalls: 1,
			wantText:  []string{"Status: healthy", "Version: 0.1.0"},
			wantNone:  []string{"Error connecting to backend:", "Loading backend status..."},
		},
		{
			name:   "HTTP 오류",
			apiURL: "http://backend:8000",
			fn: func(context.Context, string) (health.Result, error) {
				return health.Result{}, &health.HTTPStatusError{StatusCode: 500, Reason: "Internal Server Error"}
			},
			wantState: "fetch_error",
			wantCalls: 1,
			wantText:  []string{"Error connecting to backend: Failed to fetch status: 500 Internal Server Error"},
			wantNone:  []string{"Version:", "Loading backend status..."},
		},
		{
			name:   "네트워크 오류",
			apiURL: "http://backend:8000",
			fn: func(context.Context, string) (health.Result, error) {
				return health.Result{}, &health.TransportError{Err: errors.New("Network failed")}
			},
			wantState: "fetch_error",
			wantCalls: 1,
			wantText:  []string{"Error connecting to backend: Network failed"},
			wantNone:  []string{"Version:", "Loading backend status..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := &countingChecker{fn: tt.fn}
			e := newTestEcho(NewHandler(tt.apiURL, checker, time.Second))

			rec := get(t, e, "/")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
			require.NoError(t, err)

			state, _ := doc.Find(".status-card").Attr("data-state")
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, "Mailchimp Trends Engine - Frontend", doc.Find("h1").Text())

			card := doc.Find(".status-card").Text()
			for _, text := range tt.wantText {
				assert.Contains(t, card, text)
			}
			for _, text := range tt.wantNone {
				assert.NotContains(t, card, text)
			}

			// 오류 문구, 상태/버전, 로딩 문구 중 정확히 하나의 블록만 표시된다.
			blocks := 0
			for _, sel := range []string{".error", ".status", ".loading"} {
				if doc.Find(sel).Length() > 0 {
					blocks++
				}
			}
			assert.Equal(t, 1, blocks)
			assert.Equal(t, doc.Find(".status").Length(), doc.Find(".version").Length())
			assert.Equal(t, tt.wantCalls, checker.calls.Load())
		})
	}
}

func TestIndexHandler_EachRequestMountsOnce(t *testing.T) {
	t.Parallel()

	checker := &countingChecker{fn: func(context.Context, string) (health.Result, error) {
		return health.Result{Status: "healthy", Version: "0.1.0"}, nil
	}}
	e := newTestEcho(NewHandler("http://backend:8000", checker, time.Second))

	for i := 1; i <= 3; i++ {
		require.Equal(t, http.StatusOK, get(t, e, "/").Code)
		assert.Equal(t, int32(i), checker.calls.Load(), "요청마다 정확히 한 번 조회해야 합니다")
	}
}

func TestIndexHandler_RenderWaitElapsed(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	checker := &countingChecker{fn: func(ctx context.Context, _ string) (health.Result, error) {
		select {
		case <-release:
		case <-ctx.Done():
			return health.Result{}, ctx.Err()
		}
		return health.Result{Status: "healthy", Version: "0.1.0"}, nil
	}}
	defer close(release)

	e := newTestEcho(NewHandler("http://backend:8000", checker, 20*time.Millisecond))

	rec := get(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading backend status...")
	assert.NotContains(t, rec.Body.String(), `class="status"`)
}

func TestIndexHandler_NoRenderWait(t *testing.T) {
	t.Parallel()

	checker := &countingChecker{fn: func(ctx context.Context, _ string) (health.Result, error) {
		<-ctx.Done()
		return health.Result{}, ctx.Err()
	}}

	e := newTestEcho(NewHandler("http://backend:8000", checker, 0))

	rec := get(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading backend status...")
}

func TestViewStateHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		apiURL   string
		fn       health.CheckerFunc
		wantJSON string
	}{
		{
			name:     "설정 오류",
			apiURL:   "",
			wantJSON: `{"state":"config_error","message":"Backend API URL is not configured."}`,
		},
		{
			name:   "성공",
			apiURL: "http://backend:8000",
			fn: func(context.Context, string) (health.Result, error) {
				return health.Result{Status: "healthy", Version: "0.1.0"}, nil
			},
			wantJSON: `{"state":"success","status":"healthy","version":"0.1.0"}`,
		},
		{
			name:   "조회 실패",
			apiURL: "http://backend:8000",
			fn: func(context.Context, string) (health.Result, error) {
				return health.Result{}, &health.HTTPStatusError{StatusCode: 404, Reason: "Not Found"}
			},
			wantJSON: `{"state":"fetch_error","message":"Failed to fetch status: 404 Not Found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEcho(NewHandler(tt.apiURL, &countingChecker{fn: tt.fn}, time.Second))

			rec := get(t, e, "/api/view-state")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantJSON, rec.Body.String())
		})
	}
}

func TestVersionRoute(t *testing.T) {
	t.Parallel()

	e := newTestEcho(NewHandler("", &countingChecker{}, 0))

	rec := get(t, e, "/version")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"app_name":"trends-frontend"`)
	assert.Contains(t, rec.Body.String(), `"app_version":"v0.1.0"`)
}
