// Package web 백엔드 상태를 보여주는 프론트엔드 HTTP 서비스를 제공합니다.
package web

import (
	"context"
	"sync"

	"github.com/darkkaiser/trends-engine/internal/config"
	"github.com/darkkaiser/trends-engine/internal/health"
	"github.com/darkkaiser/trends-engine/internal/page"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service/api"
	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/service/api/handler/system"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 프론트엔드 서비스입니다.
type Service struct {
	appConfig *config.AppConfig

	checker  health.Checker
	renderer *page.Renderer

	buildInfo version.Info

	server *api.Server
}

// NewService Service 인스턴스를 생성합니다.
// checker가 nil이면 frontend.request_timeout 을 사용하는 기본 HTTP 클라이언트를 사용합니다.
func NewService(appConfig *config.AppConfig, checker health.Checker, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if checker == nil {
		checker = health.NewDefaultClient(version.UserAgent(Product), appConfig.Frontend.RequestTimeout)
	}

	s := &Service{
		appConfig: appConfig,

		checker:  checker,
		renderer: page.MustNewRenderer(),

		buildInfo: buildInfo,
	}
	s.server = api.NewServer(api.ServerConfig{
		Name:      ServiceName,
		Component: ComponentService,
		Port:      appConfig.Frontend.WS.ListenPort,
		Setup:     s.setupServer,
	})

	return s
}

// Start 프론트엔드 서비스를 시작합니다. 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	return s.server.Start(serviceStopCtx, serviceStopWG)
}

// Running 서비스가 실행 중인지 여부를 반환합니다.
func (s *Service) Running() bool {
	return s.server.Running()
}

func (s *Service) setupServer() *echo.Echo {
	cfg := s.appConfig.Frontend

	e := api.NewHTTPServer(api.HTTPServerConfig{
		Debug: s.appConfig.Debug,
		// 상태 조회를 기다리는 동안 요청이 끊기지 않도록 조회 제한 시간보다 길게 잡는다.
		RequestTimeout: max(constants.DefaultRequestTimeout, cfg.RequestTimeout+cfg.RenderWait),
	})
	e.Renderer = s.renderer

	RegisterRoutes(e,
		NewHandler(cfg.APIURL, s.checker, cfg.RenderWait),
		system.NewHandler(Product, s.buildInfo.Version, s.buildInfo),
	)

	applog.WithComponentAndFields(ComponentService, applog.Fields{
		"api_url_configured": cfg.APIURLConfigured(),
		"render_wait":        cfg.RenderWait.String(),
		"port":               cfg.WS.ListenPort,
	}).Info(constants.LogMsgApplicationStartup)

	return e
}
