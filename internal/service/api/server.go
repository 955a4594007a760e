package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/darkkaiser/trends-engine/pkg/validation"
	"github.com/labstack/echo/v4"
)

// ServerConfig Server 생성에 필요한 설정입니다.
type ServerConfig struct {
	// Name 로그 메시지에 표시되는 서비스 이름 (예: "API", "Web")
	Name string

	// Component 로그의 component 필드 값
	Component string

	// Port 서버가 바인딩할 포트
	Port int

	// Setup 미들웨어와 라우트가 모두 구성된 Echo 인스턴스를 반환합니다.
	// 서비스가 시작될 때마다 호출됩니다.
	Setup func() *echo.Echo

	// OnStopped 서비스가 완전히 종료된 뒤 호출됩니다. (선택)
	OnStopped func()
}

// Server Echo 기반 HTTP 서버 하나의 생명주기(시작, Graceful Shutdown)를 관리합니다.
//
// 프론트엔드와 백엔드 서비스가 같은 생명주기를 공유하며, 서비스마다 달라지는 부분은
// ServerConfig.Setup 으로 주입됩니다.
type Server struct {
	cfg ServerConfig

	running   bool
	runningMu sync.Mutex
}

// NewServer Server 인스턴스를 생성합니다.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Setup == nil {
		panic(constants.PanicMsgSetupRequired)
	}
	if cfg.Component == "" {
		cfg.Component = constants.ComponentService
	}

	return &Server{cfg: cfg}
}

// Start 서버를 시작합니다.
//
// 서버는 별도의 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
// serviceStopCtx가 취소되면 Graceful Shutdown(최대 5초)을 수행한 뒤 serviceStopWG.Done()을 호출합니다.
// 포트가 올바르지 않으면 서버를 띄우지 않고 에러를 반환하며, 이 경우에도 serviceStopWG.Done()은 호출됩니다.
func (s *Server) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	s.logger().Info(s.msg(constants.LogMsgServiceStarting))

	if s.running {
		defer serviceStopWG.Done()
		s.logger().Warn(s.msg(constants.LogMsgServiceAlreadyStarted))
		return nil
	}

	if err := validation.ValidatePort(s.cfg.Port); err != nil {
		defer serviceStopWG.Done()
		return apperrors.Wrapf(ErrInvalidListenPort, apperrors.InvalidInput, "%s 서비스를 시작할 수 없습니다: %v", s.cfg.Name, err)
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	s.logger().Info(s.msg(constants.LogMsgServiceStarted))

	return nil
}

// Running 서버가 실행 중인지 여부를 반환합니다.
func (s *Server) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}

func (s *Server) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.cfg.Setup()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Server) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	applog.WithComponentAndFields(s.cfg.Component, applog.Fields{
		"port": s.cfg.Port,
	}).Debug(s.msg(constants.LogMsgServiceHTTPServerStarting))

	s.handleServerError(e.Start(fmt.Sprintf(":%d", s.cfg.Port)))
}

func (s *Server) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		s.logger().Info(s.msg(constants.LogMsgServiceHTTPServerStopped))
		return
	}

	applog.WithComponentAndFields(s.cfg.Component, applog.Fields{
		"port":  s.cfg.Port,
		"error": err,
	}).Error(s.msg(constants.LogMsgServiceHTTPServerFatalError))
}

func (s *Server) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		s.logger().Info(s.msg(constants.LogMsgServiceStopping))

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 이미 종료되었으므로 Shutdown 없이 정리만 한다.
		s.logger().Error(s.msg(constants.LogMsgServiceUnexpectedExit))

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(s.cfg.Component, applog.Fields{
			"error": err,
		}).Error(s.msg(constants.LogMsgServiceHTTPServerShutdownError))
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Server) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	if s.cfg.OnStopped != nil {
		s.cfg.OnStopped()
	}

	s.logger().Info(s.msg(constants.LogMsgServiceStopped))
}

func (s *Server) logger() *applog.Entry {
	return applog.WithComponent(s.cfg.Component)
}

func (s *Server) msg(format string) string {
	return fmt.Sprintf(format, s.cfg.Name)
}
