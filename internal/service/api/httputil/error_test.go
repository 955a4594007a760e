package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 전역 로거를 사용하므로 병렬로 실행하지 않는다.
func TestErrorHandler(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	tests := []struct {
		name         string
		method       string
		err          error
		committed    bool
		wantStatus   int
		wantJSON     string
		wantLogLevel logrus.Level
		wantNoLog    bool
	}{
		{
			name:         "404 기본 메시지",
			method:       http.MethodGet,
			err:          echo.ErrNotFound,
			wantStatus:   http.StatusNotFound,
			wantJSON:     `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			wantLogLevel: logrus.WarnLevel,
		},
		{
			name:         "404 커스텀 메시지 유지",
			method:       http.MethodGet,
			err:          echo.NewHTTPError(http.StatusNotFound, "Custom Check"),
			wantStatus:   http.StatusNotFound,
			wantJSON:     `{"result_code":404,"message":"Custom Check"}`,
			wantLogLevel: logrus.WarnLevel,
		},
		{
			name:         "ErrorResponse 메시지",
			method:       http.MethodGet,
			err:          NewTooManyRequestsError(constants.ErrMsgTooManyRequests),
			wantStatus:   http.StatusTooManyRequests,
			wantJSON:     `{"result_code":429,"message":"요청이 너무 많습니다. 잠시 후 다시 시도해주세요"}`,
			wantLogLevel: logrus.WarnLevel,
		},
		{
			name:         "413 기본 메시지",
			method:       http.MethodPost,
			err:          echo.ErrStatusRequestEntityTooLarge,
			wantStatus:   http.StatusRequestEntityTooLarge,
			wantJSON:     `{"result_code":413,"message":"요청 본문이 너무 큽니다"}`,
			wantLogLevel: logrus.WarnLevel,
		},
		{
			name:         "일반 에러는 500",
			method:       http.MethodGet,
			err:          errors.New("db down"),
			wantStatus:   http.StatusInternalServerError,
			wantJSON:     `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			wantLogLevel: logrus.ErrorLevel,
		},
		{
			name:         "503 ErrorResponse",
			method:       http.MethodGet,
			err:          NewServiceUnavailableError("점검 중"),
			wantStatus:   http.StatusServiceUnavailable,
			wantJSON:     `{"result_code":503,"message":"점검 중"}`,
			wantLogLevel: logrus.ErrorLevel,
		},
		{
			name:         "HEAD 요청은 본문 없음",
			method:       http.MethodHead,
			err:          NewBadRequestError("bad"),
			wantStatus:   http.StatusBadRequest,
			wantLogLevel: logrus.WarnLevel,
		},
		{
			name:       "3xx 는 로그 없음",
			method:     http.MethodGet,
			err:        echo.NewHTTPError(http.StatusNotModified, "not modified"),
			wantStatus: http.StatusNotModified,
			wantJSON:   `{"result_code":304,"message":"not modified"}`,
			wantNoLog:  true,
		},
		{
			name:         "이미 응답한 경우",
			method:       http.MethodGet,
			err:          NewInternalServerError("x"),
			committed:    true,
			wantStatus:   http.StatusOK,
			wantLogLevel: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/path", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if tt.committed {
				require.NoError(t, c.NoContent(http.StatusOK))
			}

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantJSON != "" {
				assert.JSONEq(t, tt.wantJSON, rec.Body.String())
			} else {
				assert.Empty(t, rec.Body.String())
			}

			if tt.wantNoLog {
				assert.Empty(t, hook.AllEntries())
				return
			}

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLogLevel, entry.Level)
			assert.Equal(t, constants.ComponentErrorHandler, entry.Data["component"])
			assert.Equal(t, "/path", entry.Data["path"])
		})
	}
}

func TestNewHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code int
	}{
		{NewBadRequestError("m"), http.StatusBadRequest},
		{NewNotFoundError("m"), http.StatusNotFound},
		{NewConflictError("m"), http.StatusConflict},
		{NewTooManyRequestsError("m"), http.StatusTooManyRequests},
		{NewInternalServerError("m"), http.StatusInternalServerError},
		{NewServiceUnavailableError("m"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		var he *echo.HTTPError
		require.ErrorAs(t, tt.err, &he)
		assert.Equal(t, tt.code, he.Code)
	}
}
