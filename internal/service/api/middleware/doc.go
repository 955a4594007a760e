// Package middleware 프론트엔드와 백엔드 HTTP 서비스가 공유하는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - HideServerHeader: Server 응답 헤더 제거
//   - HTTPLogger: HTTP 요청/응답 로깅 (민감 정보 마스킹)
//   - RateLimiting: IP 기반 요청 속도 제한
//   - Logger: Echo 로거를 애플리케이션 로거로 연결하는 어댑터
//
// 사용 예시:
//
//	e := echo.New()
//	e.Use(middleware.PanicRecovery())
//	e.Use(middleware.HTTPLogger())
//	e.Use(middleware.RateLimiting(20, 40))
package middleware
