// Package system 헬스체크, 버전 정보 등 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"

	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/service/api/model/system"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	appName    string
	appVersion string

	buildInfo version.Info
}

// NewHandler appVersion 은 /health 응답의 version 값으로 그대로 사용됩니다.
func NewHandler(appName, appVersion string, buildInfo version.Info) *Handler {
	return &Handler{
		appName:    appName,
		appVersion: appVersion,

		buildInfo: buildInfo,
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 상태와 애플리케이션 버전을 반환합니다.
// @Description 프론트엔드 상태 페이지가 이 응답의 status, version 값을 표시합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:  constants.HealthStatusHealthy,
		Version: h.appVersion,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 애플리케이션 이름과 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		AppName:     h.appName,
		AppVersion:  h.appVersion,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
