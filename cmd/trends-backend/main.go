package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/trends-engine/internal/config"
	"github.com/darkkaiser/trends-engine/internal/ingestion"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service"
	"github.com/darkkaiser/trends-engine/internal/service/api"
	"github.com/darkkaiser/trends-engine/internal/service/scheduler"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Mailchimp Trends Engine API
// @version 0.1.0
// @description Trends Engine 백엔드의 REST API입니다. 프론트엔드 상태 페이지가 /health 응답을 조회하여 화면에 표시하며, 기사 수집 작업을 요청으로 실행할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const appName = "trends-backend"

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(appName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(appName)
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
		// 검증을 통과한 값이므로 실패하지 않는다.
		_ = applog.SetLevel(appConfig.LogLevel)
	}

	buildInfo := version.Get()

	applog.WithComponentAndFields("main", log.Fields{
		"build": buildInfo.ToMap(),
		"env":   map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	ingestionConfig := appConfig.Backend.Ingestion
	reader := ingestion.NewReader(ingestion.ReaderConfig{
		BaseURL:    ingestionConfig.ReaderBaseURL,
		Timeout:    ingestionConfig.RequestTimeout,
		MaxBytes:   ingestionConfig.MaxContentBytes,
		MaxRetries: ingestionConfig.MaxRetries,
	})
	job := ingestion.NewJob(reader, nil, ingestion.JobConfig{
		Sources: ingestionConfig.NewsSources,
		Delay:   ingestionConfig.FetchDelay,
	})

	schedulerService := scheduler.NewService(ingestionConfig.Schedule, job)
	apiService := api.NewService(appConfig, schedulerService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 스케줄러가 먼저 실행 중이어야 API 요청으로 작업을 실행할 수 있다.
	services := []service.Service{schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()
}
