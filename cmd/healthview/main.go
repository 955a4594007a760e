// healthview 백엔드 상태를 한 번 조회하여 상태 페이지와 같은 문구로 출력합니다.
//
// 종료 코드는 Success 상태이면 0, 그 외 상태(설정 오류, 조회 실패)이면 1, 사용법/설정 파일 오류이면 2 입니다.
//
//	healthview -url http://localhost:8000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/trends-engine/internal/config"
	"github.com/darkkaiser/trends-engine/internal/health"
	"github.com/darkkaiser/trends-engine/internal/health/view"
	"github.com/darkkaiser/trends-engine/internal/page"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
)

const product = "healthview"

const (
	exitSuccess   = 0
	exitUnhealthy = 1
	exitUsage     = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(product, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", config.DefaultFilename, "설정 파일 경로 (파일이 없으면 기본값과 환경 변수만 사용)")
	apiURL := fs.String("url", "", "백엔드 기준 주소 (설정 파일과 환경 변수보다 우선)")
	verbose := fs.Bool("v", false, "디버그 로그를 표준 에러로 출력")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitSuccess
		}
		return exitUsage
	}

	logger := applog.StandardLogger()
	logger.SetOutput(stderr)
	logger.SetLevel(applog.WarnLevel)
	if *verbose {
		logger.SetLevel(applog.DebugLevel)
	}

	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "환경설정 로드 실패: %v\n", err)
		return exitUsage
	}

	baseURL := appConfig.Frontend.APIURL
	if *apiURL != "" {
		baseURL = *apiURL
	}

	checker := health.NewDefaultClient(version.UserAgent(product), appConfig.Frontend.RequestTimeout)

	v := view.Mount(ctx, baseURL, checker)
	defer v.Unmount()

	// 조회 시간은 request_timeout 으로 제한되므로 별도의 대기 제한을 두지 않는다.
	state, _ := v.Wait(ctx)

	if err := page.RenderText(stdout, state); err != nil {
		fmt.Fprintf(stderr, "출력 실패: %v\n", err)
		return exitUnhealthy
	}

	if state.Kind() != view.Success {
		return exitUnhealthy
	}
	return exitSuccess
}
