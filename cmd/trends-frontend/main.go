package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/trends-engine/internal/config"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service/web"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	log "github.com/sirupsen/logrus"
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(web.Product)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(web.Product)
	} else if lvl, err := applog.ParseLevel(appConfig.LogLevel); err == nil {
		logOpts.Level = lvl
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)
	if !appConfig.Debug {
		_ = applog.SetLevel(appConfig.LogLevel)
	}

	buildInfo := version.Get()

	applog.WithComponentAndFields("main", log.Fields{
		"build":              buildInfo.ToMap(),
		"api_url_configured": appConfig.Frontend.APIURLConfigured(),
	}).Info("서버 초기화 시작")

	// 백엔드 주소가 없어도 서버는 기동하며, 상태 페이지에 설정 오류가 표시된다.
	for _, w := range appConfig.Frontend.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	webService := web.NewService(appConfig, nil, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	if err := webService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()

		log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()
}
