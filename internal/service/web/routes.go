package web

import (
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes 프론트엔드 서비스의 라우트를 등록합니다.
//
//   - 상태 페이지: / (HTML), /api/view-state (JSON)
//   - 버전 정보: /version
func RegisterRoutes(e *echo.Echo, h *Handler, sh *system.Handler) {
	e.GET("/", h.IndexHandler)
	e.GET("/api/view-state", h.ViewStateHandler)
	e.GET("/version", sh.VersionHandler)
}
