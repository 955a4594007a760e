// Package constants HTTP 서비스(프론트엔드, 백엔드)에서 공통으로 사용하는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	// ComponentService 백엔드 서비스 컴포넌트 이름
	ComponentService = "api.service"

	// ComponentHandler 핸들러 컴포넌트 이름
	ComponentHandler = "api.handler"

	// ComponentMiddleware 미들웨어 컴포넌트 이름
	ComponentMiddleware = "api.middleware"

	// ComponentErrorHandler 에러 핸들러 컴포넌트 이름
	ComponentErrorHandler = "api.error_handler"
)

// 서비스 이름입니다. 생명주기 로그 메시지에 사용됩니다.
const (
	ServiceNameAPI = "API"
)

// 헬스체크 상태
const (
	HealthStatusHealthy = "healthy"
)

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 프론트엔드는 요청 처리 중 백엔드 상태 조회를 기다리므로 그보다 길어야 합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)

// 보안 관련 상수입니다.
const (
	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	// 본문을 받는 엔드포인트가 없으므로 작게 유지합니다.
	DefaultMaxBodySize = "128K"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout 요청 읽기 최대 대기 시간
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout 응답 쓰기 최대 대기 시간
	// DefaultRequestTimeout 보다 길어야 타임아웃 응답(503)을 보낼 수 있습니다.
	DefaultWriteTimeout = DefaultRequestTimeout + 5*time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 제한
	DefaultIdleTimeout = 120 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
