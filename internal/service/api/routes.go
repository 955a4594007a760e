package api

import (
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/ingestion"
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 백엔드 서비스의 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: 상태 확인(/health), 버전 정보(/version)
//   - 기사 수집: 작업 실행(/api/v1/data-ingestion/trigger-fetch), ih 가 nil 이면 등록하지 않음
//   - API 문서: Swagger UI (/swagger/*)
func RegisterRoutes(e *echo.Echo, h *system.Handler, ih *ingestion.Handler) {
	registerSystemRoutes(e, h)
	if ih != nil {
		registerIngestionRoutes(e.Group("/api/v1"), ih)
	}
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

func registerIngestionRoutes(g *echo.Group, h *ingestion.Handler) {
	g.POST("/data-ingestion/trigger-fetch", h.TriggerFetchHandler)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		// 태그 목록만 펼친 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
