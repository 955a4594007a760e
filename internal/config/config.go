// Package config 설정 기본값, 설정 파일, 환경 변수를 순서대로 병합하여 AppConfig를 만듭니다.
package config

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/darkkaiser/trends-engine/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	AppName = "trends-engine"

	// DefaultFilename 기본 설정 파일 이름입니다. 파일이 없으면 기본값과 환경 변수만 사용합니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정 키를 덮어쓰는 환경 변수 접두사입니다.
	// 중첩 키는 "__"로 구분합니다. (예: TRENDS_FRONTEND__REQUEST_TIMEOUT=10s)
	EnvPrefix = "TRENDS_"

	// APIURLEnv 백엔드 주소를 지정하는 배포 환경 변수입니다. 설정되어 있으면 frontend.api_url보다 우선합니다.
	APIURLEnv = "NEXT_PUBLIC_API_URL"

	// NewsSourcesEnv 기사 수집 대상 목록 (JSON 배열 또는 쉼표 구분)
	NewsSourcesEnv = "NEWS_SOURCES"

	// FetchDelaySecondsEnv 수집 대상 사이의 대기 시간 (초 단위, 소수 허용)
	FetchDelaySecondsEnv = "JINA_FETCH_DELAY_SECONDS"

	// LogLevelEnv 로그 레벨 (debug, info, warn, error 등)
	LogLevelEnv = "LOG_LEVEL"
)

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRenderWait     = 5 * time.Second
	DefaultFrontendPort   = 3000

	DefaultBackendAppName    = "Mailchimp Trends Engine"
	DefaultBackendAppVersion = "0.1.0"
	DefaultBackendPort       = 8000

	DefaultLogLevel = "info"

	DefaultReaderBaseURL           = "https://r.jina.ai/"
	DefaultReaderTimeout           = 30 * time.Second
	DefaultFetchDelay              = 4 * time.Second
	DefaultIngestionMaxRetries     = 2
	DefaultIngestionMaxContentSize = 5 * 1024 * 1024
)

// DefaultNewsSources 기사 수집 대상 페이지의 기본 목록입니다.
var DefaultNewsSources = []string{
	"https://www.wired.com/most-recent/",
	"https://www.technologyreview.com/latest/",
	"https://www.marketingdive.com/",
}

// newDefaultConfig 설정 파일과 환경 변수가 모두 없을 때 사용되는 기본 설정입니다.
// 백엔드 주소는 기본값이 없습니다. 지정되지 않으면 상태 페이지가 설정 오류를 표시합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		LogLevel: DefaultLogLevel,
		Frontend: FrontendConfig{
			RequestTimeout: DefaultRequestTimeout,
			RenderWait:     DefaultRenderWait,
			WS:             WSConfig{ListenPort: DefaultFrontendPort},
		},
		Backend: BackendConfig{
			AppName:    DefaultBackendAppName,
			AppVersion: DefaultBackendAppVersion,
			WS:         WSConfig{ListenPort: DefaultBackendPort},
			CORS:       CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
			Ingestion: IngestionConfig{
				NewsSources:     slices.Clone(DefaultNewsSources),
				FetchDelay:      DefaultFetchDelay,
				ReaderBaseURL:   DefaultReaderBaseURL,
				RequestTimeout:  DefaultReaderTimeout,
				MaxRetries:      DefaultIngestionMaxRetries,
				MaxContentBytes: DefaultIngestionMaxContentSize,
			},
		},
	}
}

// Load 기본 설정 파일(trends-engine.json)을 사용하여 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 다음 순서로 설정을 병합합니다. 뒤의 값이 앞의 값을 덮어씁니다.
//
//  1. 기본값
//  2. 설정 파일 (.json, .yaml, .yml / 파일이 없으면 건너뜀)
//  3. TRENDS_ 접두사 환경 변수
//  4. 배포 환경 변수 (NEXT_PUBLIC_API_URL, NEWS_SOURCES, JINA_FETCH_DELAY_SECONDS, LOG_LEVEL)
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	if filename != "" {
		if err := k.Load(file.Provider(filename), parserFor(filename)); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	for _, de := range deployEnvs {
		v, ok := os.LookupEnv(de.name)
		if !ok {
			continue
		}

		var value any = v
		if de.convert != nil {
			converted, err := de.convert(v)
			if err != nil {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 환경 변수 값이 올바르지 않습니다: '%s'", de.name, v))
			}
			value = converted
		}

		if err := k.Set(de.key, value); err != nil {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("%s 환경 변수 적용에 실패했습니다", de.name))
		}
	}

	var cfg AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &cfg, nil
}

func parserFor(filename string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yamlParser{}
	default:
		return json.Parser()
	}
}

// deployEnvs 접두사 없이 쓰는 배포 환경 변수와 설정 키의 대응입니다.
var deployEnvs = []struct {
	name    string
	key     string
	convert func(string) (any, error)
}{
	{name: APIURLEnv, key: "frontend.api_url"},
	{name: NewsSourcesEnv, key: "backend.ingestion.news_sources", convert: parseList},
	{name: FetchDelaySecondsEnv, key: "backend.ingestion.fetch_delay", convert: parseSeconds},
	{name: LogLevelEnv, key: "log_level"},
}

// parseList `["a", "b"]` 형태의 JSON 배열 또는 쉼표로 구분된 목록을 해석합니다.
func parseList(v string) (any, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "[") {
		var list []string
		if err := stdjson.Unmarshal([]byte(v), &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return strutil.SplitAndTrim(v, ","), nil
}

// parseSeconds "4", "0.5" 같은 초 단위 값을 time.Duration으로 변환합니다.
func parseSeconds(v string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil, err
	}
	return time.Duration(f * float64(time.Second)), nil
}

// listKeys 쉼표로 구분된 목록으로 해석하는 설정 키입니다.
var listKeys = []string{
	"backend.cors.allow_origins",
	"backend.ingestion.news_sources",
}

// envKeyValue TRENDS_BACKEND__CORS__ALLOW_ORIGINS 형태의 환경 변수를 backend.cors.allow_origins 키로 변환합니다.
// 목록 값은 쉼표로 구분합니다.
func envKeyValue(key, value string) (string, any) {
	k := normalizeEnvKey(key)
	if slices.Contains(listKeys, k) {
		return k, strutil.SplitAndTrim(value, ",")
	}
	return k, value
}

func normalizeEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
