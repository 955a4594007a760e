package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/darkkaiser/trends-engine/pkg/validation"
)

// AppConfig 프론트엔드와 백엔드가 공유하는 설정 파일의 최상위 구조입니다.
type AppConfig struct {
	Debug bool `json:"debug"`

	// LogLevel debug가 꺼져 있을 때 사용할 로그 레벨 (trace, debug, info, warn, error)
	LogLevel string `json:"log_level"`

	Frontend FrontendConfig `json:"frontend"`
	Backend  BackendConfig  `json:"backend"`
}

func (c *AppConfig) validate() error {
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("log_level 설정이 올바르지 않습니다: '%s' (trace, debug, info, warn, error 중 하나)", c.LogLevel))
	}
	if err := c.Frontend.validate(); err != nil {
		return err
	}
	return c.Backend.validate()
}

// VerifyRecommendations 기동은 가능하지만 확인이 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string
	warnings = append(warnings, c.Frontend.VerifyRecommendations()...)
	warnings = append(warnings, c.Backend.WS.VerifyRecommendations()...)
	warnings = append(warnings, c.Backend.Ingestion.VerifyRecommendations()...)
	return warnings
}

// FrontendConfig 프론트엔드(상태 페이지) 설정입니다.
type FrontendConfig struct {
	// APIURL 백엔드 기준 주소입니다. 비어 있거나 공백뿐이면 "설정 없음"으로 취급되며,
	// 이 경우 백엔드 호출 없이 설정 오류 상태가 표시됩니다.
	APIURL string `json:"api_url"`

	// RequestTimeout 백엔드 상태 조회 요청 하나에 허용되는 최대 시간
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`

	// RenderWait 페이지 응답 전에 상태 조회 결과를 기다리는 최대 시간 (0: 기다리지 않음)
	RenderWait time.Duration `json:"render_wait" validate:"gte=0"`

	WS WSConfig `json:"ws"`
}

// APIURLConfigured 백엔드 주소가 설정되어 있는지 여부를 반환합니다.
func (c *FrontendConfig) APIURLConfigured() bool {
	return strings.TrimSpace(c.APIURL) != ""
}

func (c *FrontendConfig) validate() error {
	if err := checkStruct(c, "frontend"); err != nil {
		return err
	}
	return c.WS.validate("frontend")
}

func (c *FrontendConfig) VerifyRecommendations() []string {
	var warnings []string

	if !c.APIURLConfigured() {
		warnings = append(warnings, "백엔드 API URL(frontend.api_url 또는 NEXT_PUBLIC_API_URL)이 설정되지 않았습니다. 상태 페이지에 설정 오류가 표시됩니다")
	} else if err := validation.ValidateBackendURL(c.APIURL); err != nil {
		warnings = append(warnings, fmt.Sprintf("백엔드 API URL(%q)이 올바르지 않아 상태 조회가 실패할 수 있습니다: %v", c.APIURL, err))
	}

	if c.RenderWait > c.RequestTimeout {
		warnings = append(warnings, fmt.Sprintf("render_wait(%s)가 request_timeout(%s)보다 깁니다. 요청 시간 초과가 먼저 발생합니다", c.RenderWait, c.RequestTimeout))
	}

	warnings = append(warnings, c.WS.VerifyRecommendations()...)
	return warnings
}

// BackendConfig 백엔드 API 서버 설정입니다.
type BackendConfig struct {
	AppName    string          `json:"app_name" validate:"required"`
	AppVersion string          `json:"app_version" validate:"required"`
	WS         WSConfig        `json:"ws"`
	CORS       CORSConfig      `json:"cors"`
	Ingestion  IngestionConfig `json:"ingestion"`
}

func (c *BackendConfig) validate() error {
	if err := checkStruct(c, "backend"); err != nil {
		return err
	}
	if err := c.WS.validate("backend"); err != nil {
		return err
	}
	if err := c.CORS.validate(); err != nil {
		return err
	}
	return c.Ingestion.validate()
}

// IngestionConfig 기사 수집 작업 설정입니다.
type IngestionConfig struct {
	// NewsSources 수집 대상 페이지 주소 목록입니다. 목록 순서대로 하나씩 가져옵니다.
	NewsSources []string `json:"news_sources" validate:"dive,http_url"`

	// FetchDelay 수집 대상 사이의 대기 시간입니다. 마지막 대상 뒤에는 기다리지 않습니다.
	FetchDelay time.Duration `json:"fetch_delay" validate:"gte=0"`

	// Schedule 주기 실행 Cron 표현식(초 포함 6필드 또는 @every 등)입니다. 비어 있으면 수동 실행만 가능합니다.
	Schedule string `json:"schedule" validate:"cron_spec"`

	ReaderBaseURL  string        `json:"reader_base_url" validate:"required,http_url"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
	MaxRetries     int           `json:"max_retries" validate:"min=0,max=10"`

	// MaxContentBytes 기사 본문의 최대 크기 (0 이하: 기본값)
	MaxContentBytes int64 `json:"max_content_bytes"`
}

func (c *IngestionConfig) validate() error {
	return checkStruct(c, "backend.ingestion")
}

func (c *IngestionConfig) VerifyRecommendations() []string {
	if len(c.NewsSources) > 1 && c.FetchDelay == 0 {
		return []string{"fetch_delay가 0입니다. 수집 대상 사이에 대기 없이 요청하므로 Reader API의 요청 제한에 걸릴 수 있습니다"}
	}
	return nil
}

// WSConfig 웹 서버 설정입니다.
type WSConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate(owner string) error {
	if err := validate.Struct(c); err != nil {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다 (현재값: %d)", owner, c.ListenPort))
	}
	return nil
}

func (c *WSConfig) VerifyRecommendations() []string {
	if c.ListenPort < 1024 {
		return []string{fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort)}
	}
	return nil
}

// CORSConfig 백엔드 API의 CORS 설정입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
		}
	}
	return checkStruct(c, "backend.cors")
}
