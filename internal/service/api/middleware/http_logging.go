package middleware

import (
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/darkkaiser/trends-engine/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록되는 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, URI, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 처리 시간 (마이크로초 및 사람이 읽기 쉬운 형식)
//
// 민감한 쿼리 파라미터(constants.SensitiveQueryParams)는 마스킹됩니다.
// 핸들러 에러는 이 미들웨어에서 c.Error()로 처리하여 로그에 최종 상태 코드가 남도록 합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			defer func() {
				stop := time.Now()
				latency := stop.Sub(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithFields(applog.Fields{
					"time_rfc3339": stop.Format(time.RFC3339),

					"method":   req.Method,
					"path":     path,
					"uri":      maskSensitiveQueryParams(req.RequestURI),
					"host":     req.Host,
					"protocol": req.Proto,

					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),
					"referer":    req.Referer(),

					"status":    res.Status,
					"bytes_in":  bytesIn,
					"bytes_out": strconv.FormatInt(res.Size, 10),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": res.Header().Get(echo.HeaderXRequestID),
				}).Info(constants.LogMsgHTTPRequest)
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// URI 파싱에 실패하면 원본을 반환합니다.
//
//	입력: "/health?token=secret123456&id=100"
//	출력: "/health?id=100&token=secr***"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for key, values := range q {
		if !slices.Contains(constants.SensitiveQueryParams, key) {
			continue
		}
		for i, v := range values {
			values[i] = strutil.MaskSensitiveData(v)
		}
		masked = true
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
