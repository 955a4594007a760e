// Package maputil 느슨한 타입의 맵 데이터(JSON 디코딩 결과 등)를 구조체로 변환합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode input을 새로 할당한 T로 디코딩합니다.
//
// 기본 동작:
//   - json 태그를 사용합니다.
//   - 약한 타입 변환을 허용합니다. (예: 숫자 1 -> "1")
//   - 정의되지 않은 키는 무시합니다.
func Decode[T any](input any, opts ...Option) (*T, error) {
	out := new(T)
	if err := DecodeTo(input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeTo 이미 존재하는 output에 input을 병합하여 디코딩합니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
		squash:           true,
		trimSpace:        true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		Squash:           cfg.squash,
		Metadata:         cfg.metadata,
		DecodeHook:       cfg.decodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}
	return nil
}

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	squash           bool
	trimSpace        bool

	metadata   *mapstructure.Metadata
	extraHooks []mapstructure.DecodeHookFunc
}

func (c *decodingConfig) decodeHook() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(c.extraHooks)+3)
	hooks = append(hooks, c.extraHooks...)
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		stringToDurationHookFunc(),
		stringToSliceHookFunc(c.trimSpace),
	)
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// Option 디코딩 동작을 조정합니다.
type Option func(*decodingConfig)

func WithTagName(tagName string) Option {
	return func(c *decodingConfig) { c.tagName = tagName }
}

func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) { c.weaklyTypedInput = enable }
}

// WithErrorUnused 구조체에 없는 키가 있으면 에러를 반환합니다.
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) { c.errorUnused = enable }
}

// WithDecodeHook 기본 훅보다 먼저 실행될 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) { c.extraHooks = append(c.extraHooks, hooks...) }
}

// WithMetadata 디코딩된 키와 사용되지 않은 키 목록을 md에 기록합니다.
func WithMetadata(md *mapstructure.Metadata) Option {
	return func(c *decodingConfig) { c.metadata = md }
}

func WithTrimSpace(enable bool) Option {
	return func(c *decodingConfig) { c.trimSpace = enable }
}
