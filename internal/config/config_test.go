package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== Test Helpers =====

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// clearDeployEnvs 테스트 실행 환경에 NEXT_PUBLIC_API_URL, LOG_LEVEL 등이 설정되어 있어도 영향을 받지 않도록 한다.
func clearDeployEnvs(t *testing.T) {
	t.Helper()

	for _, de := range deployEnvs {
		if v, ok := os.LookupEnv(de.name); ok {
			require.NoError(t, os.Unsetenv(de.name))
			t.Cleanup(func() { _ = os.Setenv(de.name, v) })
		}
	}
}

// ===== Loading =====

func TestLoadWithFile_DefaultsWhenFileMissing(t *testing.T) {
	clearDeployEnvs(t)

	cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Frontend.APIURL)
	assert.False(t, cfg.Frontend.APIURLConfigured())
	assert.Equal(t, DefaultRequestTimeout, cfg.Frontend.RequestTimeout)
	assert.Equal(t, DefaultRenderWait, cfg.Frontend.RenderWait)
	assert.Equal(t, DefaultFrontendPort, cfg.Frontend.WS.ListenPort)
	assert.Equal(t, DefaultBackendAppName, cfg.Backend.AppName)
	assert.Equal(t, DefaultBackendAppVersion, cfg.Backend.AppVersion)
	assert.Equal(t, DefaultBackendPort, cfg.Backend.WS.ListenPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Backend.CORS.AllowOrigins)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)

	ing := cfg.Backend.Ingestion
	assert.Equal(t, DefaultNewsSources, ing.NewsSources)
	assert.Equal(t, DefaultFetchDelay, ing.FetchDelay)
	assert.Empty(t, ing.Schedule, "기본값은 수동 실행만")
	assert.Equal(t, DefaultReaderBaseURL, ing.ReaderBaseURL)
	assert.Equal(t, DefaultReaderTimeout, ing.RequestTimeout)
	assert.Equal(t, DefaultIngestionMaxRetries, ing.MaxRetries)
	assert.EqualValues(t, DefaultIngestionMaxContentSize, ing.MaxContentBytes)
}

func TestLoadWithFile_Ingestion(t *testing.T) {
	clearDeployEnvs(t)

	path := writeFile(t, "trends-engine.json", `{
		"log_level": "WARN",
		"backend": {
			"ingestion": {
				"news_sources": ["https://example.com/news"],
				"fetch_delay": "250ms",
				"schedule": "0 0 */6 * * *",
				"max_retries": 0
			}
		}
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, []string{"https://example.com/news"}, cfg.Backend.Ingestion.NewsSources)
	assert.Equal(t, 250*time.Millisecond, cfg.Backend.Ingestion.FetchDelay)
	assert.Equal(t, "0 0 */6 * * *", cfg.Backend.Ingestion.Schedule)
	assert.Equal(t, 0, cfg.Backend.Ingestion.MaxRetries)
	assert.Equal(t, DefaultReaderBaseURL, cfg.Backend.Ingestion.ReaderBaseURL, "파일에 없는 값은 기본값 유지")
}

func TestLoadWithFile_IngestionEnvOverrides(t *testing.T) {
	clearDeployEnvs(t)

	t.Setenv("TRENDS_LOG_LEVEL", "debug")
	t.Setenv("TRENDS_BACKEND__INGESTION__NEWS_SOURCES", "https://a.com/news, https://b.com/latest")
	t.Setenv("TRENDS_BACKEND__INGESTION__FETCH_DELAY", "1s")
	t.Setenv("TRENDS_BACKEND__INGESTION__SCHEDULE", "@every 1h")

	cfg, err := LoadWithFile("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.com/news", "https://b.com/latest"}, cfg.Backend.Ingestion.NewsSources)
	assert.Equal(t, time.Second, cfg.Backend.Ingestion.FetchDelay)
	assert.Equal(t, "@every 1h", cfg.Backend.Ingestion.Schedule)
}

func TestLoadWithFile_DeployEnvs(t *testing.T) {
	clearDeployEnvs(t)

	t.Run("쉼표 목록과 초 단위 대기 시간", func(t *testing.T) {
		t.Setenv(LogLevelEnv, "DEBUG")
		t.Setenv(NewsSourcesEnv, "https://a.com/news, https://b.com/latest")
		t.Setenv(FetchDelaySecondsEnv, "0.5")
		t.Setenv("TRENDS_BACKEND__INGESTION__FETCH_DELAY", "10s")

		cfg, err := LoadWithFile("")
		require.NoError(t, err)

		assert.Equal(t, "DEBUG", cfg.LogLevel)
		assert.Equal(t, []string{"https://a.com/news", "https://b.com/latest"}, cfg.Backend.Ingestion.NewsSources)
		assert.Equal(t, 500*time.Millisecond, cfg.Backend.Ingestion.FetchDelay, "배포 환경 변수가 TRENDS_ 환경 변수보다 우선")
	})

	t.Run("JSON 배열", func(t *testing.T) {
		t.Setenv(NewsSourcesEnv, `["https://a.com/news", "https://c.com/"]`)
		t.Setenv(FetchDelaySecondsEnv, "4")

		cfg, err := LoadWithFile("")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://a.com/news", "https://c.com/"}, cfg.Backend.Ingestion.NewsSources)
		assert.Equal(t, 4*time.Second, cfg.Backend.Ingestion.FetchDelay)
	})

	t.Run("숫자가 아닌 대기 시간", func(t *testing.T) {
		t.Setenv(FetchDelaySecondsEnv, "four")

		_, err := LoadWithFile("")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.Contains(t, err.Error(), FetchDelaySecondsEnv)
	})

	t.Run("음수 대기 시간은 검증 실패", func(t *testing.T) {
		t.Setenv(FetchDelaySecondsEnv, "-1")

		_, err := LoadWithFile("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch_delay")
	})

	t.Run("잘못된 JSON 배열", func(t *testing.T) {
		t.Setenv(NewsSourcesEnv, `["https://a.com"`)

		_, err := LoadWithFile("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), NewsSourcesEnv)
	})
}

func TestLoadWithFile_JSON(t *testing.T) {
	clearDeployEnvs(t)

	path := writeFile(t, "trends-engine.json", `{
		"debug": true,
		"frontend": {
			"api_url": "http://localhost:8000",
			"request_timeout": "3s",
			"render_wait": "500ms",
			"ws": { "listen_port": 3100 }
		},
		"backend": {
			"app_version": "0.2.0",
			"cors": { "allow_origins": ["*"] }
		}
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://localhost:8000", cfg.Frontend.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Frontend.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Frontend.RenderWait)
	assert.Equal(t, 3100, cfg.Frontend.WS.ListenPort)
	assert.Equal(t, DefaultBackendAppName, cfg.Backend.AppName, "파일에 없는 값은 기본값 유지")
	assert.Equal(t, "0.2.0", cfg.Backend.AppVersion)
	assert.Equal(t, []string{"*"}, cfg.Backend.CORS.AllowOrigins)
}

func TestLoadWithFile_YAML(t *testing.T) {
	clearDeployEnvs(t)

	path := writeFile(t, "trends-engine.yaml", `
frontend:
  api_url: "http://backend.internal:8000"
  request_timeout: 10s
backend:
  ws:
    listen_port: 9000
`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal:8000", cfg.Frontend.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Frontend.RequestTimeout)
	assert.Equal(t, 9000, cfg.Backend.WS.ListenPort)
}

func TestLoadWithFile_EnvOverrides(t *testing.T) {
	path := writeFile(t, "trends-engine.json", `{"frontend": {"api_url": "http://from-file:8000"}}`)

	t.Setenv("TRENDS_DEBUG", "true")
	t.Setenv("TRENDS_FRONTEND__REQUEST_TIMEOUT", "7s")
	t.Setenv("TRENDS_BACKEND__CORS__ALLOW_ORIGINS", "http://a.com, https://b.com")
	t.Setenv(APIURLEnv, "http://from-env:8000")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 7*time.Second, cfg.Frontend.RequestTimeout)
	assert.Equal(t, []string{"http://a.com", "https://b.com"}, cfg.Backend.CORS.AllowOrigins)
	assert.Equal(t, "http://from-env:8000", cfg.Frontend.APIURL, "NEXT_PUBLIC_API_URL 이 가장 우선한다")
}

func TestLoadWithFile_APIURLUnset(t *testing.T) {
	clearDeployEnvs(t)

	path := writeFile(t, "trends-engine.json", `{"frontend": {"request_timeout": "3s"}}`)

	for _, filename := range []string{"", filepath.Join(t.TempDir(), "does-not-exist.json"), path} {
		cfg, err := LoadWithFile(filename)
		require.NoError(t, err)
		assert.Empty(t, cfg.Frontend.APIURL, "기본 백엔드 주소는 없다")
		assert.False(t, cfg.Frontend.APIURLConfigured())
	}
}

func TestLoadWithFile_EmptyAPIURLIsNotAnError(t *testing.T) {
	t.Setenv(APIURLEnv, "   ")

	cfg, err := LoadWithFile("")
	require.NoError(t, err, "백엔드 주소가 없어도 기동은 가능해야 한다")
	assert.False(t, cfg.Frontend.APIURLConfigured())
	assert.NotEmpty(t, cfg.VerifyRecommendations())
}

func TestLoadWithFile_Errors(t *testing.T) {
	clearDeployEnvs(t)

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "잘못된 JSON", content: `{"debug": `, wantMsg: "설정 파일 로드 중 오류"},
		{name: "알 수 없는 키", content: `{"unknown_key": 1}`, wantMsg: "구조체로 변환하는데 실패"},
		{name: "잘못된 Duration", content: `{"frontend": {"request_timeout": "soon"}}`, wantMsg: "구조체로 변환하는데 실패"},
		{name: "0 이하의 타임아웃", content: `{"frontend": {"request_timeout": "0s"}}`, wantMsg: "request_timeout"},
		{name: "잘못된 포트", content: `{"backend": {"ws": {"listen_port": 70000}}}`, wantMsg: "listen_port"},
		{name: "앱 이름 누락", content: `{"backend": {"app_name": ""}}`, wantMsg: "app_name 설정은 필수"},
		{name: "CORS 형식 오류", content: `{"backend": {"cors": {"allow_origins": ["localhost"]}}}`, wantMsg: "CORS Origin 형식"},
		{name: "CORS 와일드카드 혼용", content: `{"backend": {"cors": {"allow_origins": ["*", "http://a.com"]}}}`, wantMsg: "와일드카드"},
		{name: "CORS 빈 목록", content: `{"backend": {"cors": {"allow_origins": []}}}`, wantMsg: "비어있습니다"},
		{name: "잘못된 로그 레벨", content: `{"log_level": "loud"}`, wantMsg: "log_level"},
		{name: "잘못된 Cron 표현식", content: `{"backend": {"ingestion": {"schedule": "*/5 * * * *"}}}`, wantMsg: "Cron 표현식"},
		{name: "잘못된 수집 대상 주소", content: `{"backend": {"ingestion": {"news_sources": ["not a url"]}}}`, wantMsg: "news_sources"},
		{name: "음수 수집 간격", content: `{"backend": {"ingestion": {"fetch_delay": "-1s"}}}`, wantMsg: "fetch_delay"},
		{name: "재시도 횟수 초과", content: `{"backend": {"ingestion": {"max_retries": 11}}}`, wantMsg: "max_retries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "trends-engine.json", tt.content)

			cfg, err := LoadWithFile(path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// ===== Recommendations =====

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()
	warnings := cfg.VerifyRecommendations()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "설정되지 않았습니다")

	cfg.Frontend.APIURL = "http://localhost:8000"
	assert.Empty(t, cfg.VerifyRecommendations())

	cfg.Backend.Ingestion.FetchDelay = 0
	warnings = cfg.VerifyRecommendations()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "fetch_delay")
	cfg.Backend.Ingestion.FetchDelay = DefaultFetchDelay

	cfg.Frontend.APIURL = "not a url"
	cfg.Frontend.RenderWait = time.Minute
	cfg.Backend.WS.ListenPort = 80

	warnings = cfg.VerifyRecommendations()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "백엔드 API URL")
	assert.Contains(t, warnings[1], "render_wait")
	assert.Contains(t, warnings[2], "시스템 예약 포트")
}

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"TRENDS_DEBUG", "debug"},
		{"TRENDS_FRONTEND__API_URL", "frontend.api_url"},
		{"TRENDS_BACKEND__CORS__ALLOW_ORIGINS", "backend.cors.allow_origins"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeEnvKey(tt.input))
	}
}
