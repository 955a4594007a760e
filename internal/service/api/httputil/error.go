package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/service/api/model/response"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 5xx 는 Error, 4xx 는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		// echo 기본 문구는 서비스 공통 문구로 바꾼다.
		switch {
		case code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound):
			message = constants.ErrMsgNotFound
		case code == http.StatusRequestEntityTooLarge && message == http.StatusText(http.StatusRequestEntityTooLarge):
			message = constants.ErrMsgRequestEntityTooLarge
		case code == http.StatusServiceUnavailable && message == http.StatusText(http.StatusServiceUnavailable):
			message = constants.ErrMsgServiceUnavailable
		}
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이중 응답 방지
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 응답
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
