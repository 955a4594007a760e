package api

import (
	"context"
	"sync"

	_ "github.com/darkkaiser/trends-engine/docs"
	"github.com/darkkaiser/trends-engine/internal/config"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/ingestion"
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/system"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 백엔드 API 서버입니다.
//
// 프론트엔드 상태 페이지가 조회하는 /health 엔드포인트와 /version, 기사 수집 실행 엔드포인트, Swagger UI 를 제공합니다.
// 생명주기(시작, Graceful Shutdown)는 Server 가 담당합니다.
type Service struct {
	appConfig *config.AppConfig

	// trigger 기사 수집 작업 실행기, nil 이면 기사 수집 엔드포인트를 등록하지 않습니다.
	trigger ingestion.JobTrigger

	buildInfo version.Info

	server *Server
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, trigger ingestion.JobTrigger, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	s := &Service{
		appConfig: appConfig,

		trigger: trigger,

		buildInfo: buildInfo,
	}
	s.server = NewServer(ServerConfig{
		Name:      constants.ServiceNameAPI,
		Component: constants.ComponentService,
		Port:      appConfig.Backend.WS.ListenPort,
		Setup:     s.setupServer,
		OnStopped: s.logShutdown,
	})

	return s
}

// Start API 서비스를 시작합니다. 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	return s.server.Start(serviceStopCtx, serviceStopWG)
}

// Running 서비스가 실행 중인지 여부를 반환합니다.
func (s *Service) Running() bool {
	return s.server.Running()
}

func (s *Service) setupServer() *echo.Echo {
	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.Backend.CORS.AllowOrigins,
	})

	var ih *ingestion.Handler
	if s.trigger != nil {
		ih = ingestion.NewHandler(s.trigger)
	}

	RegisterRoutes(e, system.NewHandler(s.appConfig.Backend.AppName, s.appConfig.Backend.AppVersion, s.buildInfo), ih)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"app_name":    s.appConfig.Backend.AppName,
		"app_version": s.appConfig.Backend.AppVersion,
		"port":        s.appConfig.Backend.WS.ListenPort,
	}).Info(constants.LogMsgApplicationStartup)

	return e
}

func (s *Service) logShutdown() {
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"app_name": s.appConfig.Backend.AppName,
	}).Info(constants.LogMsgApplicationShutdown)
}

