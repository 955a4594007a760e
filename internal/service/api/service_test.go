package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/darkkaiser/trends-engine/internal/config"
	"github.com/darkkaiser/trends-engine/internal/pkg/version"
	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppConfig(port int) *config.AppConfig {
	appConfig := &config.AppConfig{Debug: true}
	appConfig.Backend.AppName = "Mailchimp Trends Engine"
	appConfig.Backend.AppVersion = "0.1.0"
	appConfig.Backend.WS.ListenPort = port
	appConfig.Backend.CORS.AllowOrigins = []string{"http://localhost:3000"}
	return appConfig
}

func TestNewService_NilConfig(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
		NewService(nil, nil, version.Info{})
	})
}

func TestNewService(t *testing.T) {
	t.Parallel()

	s := NewService(newTestAppConfig(8000), nil, version.Info{Version: "v0.1.0"})

	assert.Equal(t, constants.ServiceNameAPI, s.server.cfg.Name)
	assert.Equal(t, 8000, s.server.cfg.Port)
	assert.False(t, s.Running())
}

// 전역 로거에 훅을 연결하므로 병렬로 실행하지 않는다.
func TestService_Lifecycle(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	port := testutil.FreePort(t)

	var triggered atomic.Int32
	trigger := triggerFunc(func() error {
		triggered.Add(1)
		return nil
	})

	s := NewService(newTestAppConfig(port), trigger, version.Info{Version: "v0.1.0", Commit: "abc1234"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	testutil.WaitForServer(t, port)
	assert.True(t, s.Running())

	resp, err := newTestClient().Get(fmt.Sprintf("http://localhost:%d/health", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","version":"0.1.0"}`, string(body))

	resp, err = newTestClient().Post(fmt.Sprintf("http://localhost:%d/api/v1/data-ingestion/trigger-fetch", port), "", nil)
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Article fetching job has been scheduled successfully."}`, string(body))
	assert.EqualValues(t, 1, triggered.Load())

	cancel()
	wg.Wait()
	assert.False(t, s.Running())

	var started, shutdown bool
	for _, entry := range hook.AllEntries() {
		switch entry.Message {
		case constants.LogMsgApplicationStartup:
			started = true
			assert.Equal(t, "Mailchimp Trends Engine", entry.Data["app_name"])
			assert.Equal(t, "0.1.0", entry.Data["app_version"])
		case constants.LogMsgApplicationShutdown:
			shutdown = true
		}
	}
	assert.True(t, started, "기동 로그가 기록되어야 합니다")
	assert.True(t, shutdown, "종료 로그가 기록되어야 합니다")
}
