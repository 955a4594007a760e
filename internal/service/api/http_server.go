package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/trends-engine/internal/service/api/middleware"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	// 비어 있으면 CORS 미들웨어를 적용하지 않습니다. (프론트엔드는 같은 Origin 에서만 호출됨)
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (기본값: 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 공통 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
// 프론트엔드와 백엔드 서비스가 함께 사용합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어의 panic 까지 복구하도록 가장 먼저 적용
//  2. RequestID - 이후 로그에 request_id 가 포함되도록 로깅보다 먼저 적용
//  3. HideServerHeader - 응답의 Server 헤더 제거
//  4. HTTPLogger - 429/503 응답도 기록되도록 RateLimiting, Timeout 보다 먼저 적용
//  5. RateLimiting - IP별 초당 요청 수 제한 (20 req/s, 버스트 40)
//  6. BodyLimit - 요청 본문 크기 제한 (128KB)
//  7. Timeout - 요청 처리 시간 제한 (기본 60초, 초과 시 503)
//  8. CORS - AllowOrigins 가 설정된 경우에만
//  9. Secure - 보안 헤더
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거로 출력한다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.HideServerHeader())
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		}))
	}
	e.Use(middleware.Secure())

	return e
}
