package view

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/darkkaiser/trends-engine/internal/health"
	"github.com/iancoleman/strcase"
)

const (
	// ConfigErrorMessage 백엔드 주소가 설정되지 않았을 때 표시되는 문구
	ConfigErrorMessage = "Backend API URL is not configured."

	// UnknownErrorMessage 실패 원인이 설명을 가지고 있지 않을 때 표시되는 문구
	UnknownErrorMessage = "An unknown error occurred while fetching backend status."
)

// Kind 뷰 상태의 종류
type Kind int

const (
	Loading Kind = iota
	ConfigError
	FetchError
	Success
)

var kindNames = [...]string{
	Loading:     "Loading",
	ConfigError: "ConfigError",
	FetchError:  "FetchError",
	Success:     "Success",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Name JSON 응답과 HTML class 에 사용되는 snake_case 이름을 반환합니다. (예: "config_error")
func (k Kind) Name() string {
	return strcase.ToSnake(k.String())
}

// State 화면에 표시할 뷰 상태입니다.
//
// 종류별로 채워지는 값이 정해져 있으며 아래 생성 함수로만 만들 수 있습니다.
// 에러 문구와 status/version 이 동시에 채워지는 경우는 없습니다.
type State struct {
	kind    Kind
	message string
	status  string
	version string
}

func LoadingState() State {
	return State{kind: Loading}
}

func ConfigErrorState() State {
	return State{kind: ConfigError, message: ConfigErrorMessage}
}

// FetchErrorState 빈 문구는 UnknownErrorMessage로 대체됩니다.
func FetchErrorState(message string) State {
	if strings.TrimSpace(message) == "" {
		message = UnknownErrorMessage
	}
	return State{kind: FetchError, message: message}
}

func SuccessState(status, version string) State {
	return State{kind: Success, status: status, version: version}
}

func (s State) Kind() Kind { return s.kind }

// Message ConfigError, FetchError 상태의 에러 문구
func (s State) Message() string { return s.message }

func (s State) Status() string { return s.status }

func (s State) Version() string { return s.version }

// IsError 에러 문구를 표시하는 상태인지 여부
func (s State) IsError() bool {
	return s.kind == ConfigError || s.kind == FetchError
}

func (s State) String() string {
	switch s.kind {
	case ConfigError, FetchError:
		return fmt.Sprintf("%s(%s)", s.kind, s.message)
	case Success:
		return fmt.Sprintf("%s(status=%s, version=%s)", s.kind, s.status, s.version)
	default:
		return s.kind.String()
	}
}

type stateJSON struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
	Version string `json:"version,omitempty"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		State:   s.kind.Name(),
		Message: s.message,
		Status:  s.status,
		Version: s.version,
	})
}

// Resolve 상태 조회 결과를 뷰 상태로 변환합니다.
//
//   - err == nil: Success(result.Status, result.Version)
//   - err 가 설명을 가지고 있으면 FetchError(err.Error())
//   - 그 외: FetchError(UnknownErrorMessage)
//
// 상태 코드 에러는 health.HTTPStatusError 의 문구("Failed to fetch status: 500 Internal Server Error")가
// 그대로 사용됩니다.
func Resolve(result health.Result, err error) State {
	if err == nil {
		return SuccessState(result.Status, result.Version)
	}
	return FetchErrorState(describe(err))
}

// describe Error() 호출 중 패닉이 발생하면(nil 포인터 리시버 등) 빈 문자열을 반환합니다.
func describe(err error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = ""
		}
	}()
	return err.Error()
}
