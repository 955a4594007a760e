package maputil

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

var durationType = reflect.TypeOf(time.Duration(0))

// stringToDurationHookFunc "10s" 형식의 문자열을 time.Duration으로 변환합니다.
// 파싱할 수 없으면 원본을 그대로 넘겨 이후 단계에서 에러가 나도록 합니다.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		d, err := time.ParseDuration(strings.TrimSpace(reflect.ValueOf(data).String()))
		if err != nil {
			return data, nil
		}
		return d, nil
	}
}

// stringToSliceHookFunc "a,b" 형식의 문자열을 []string 으로 변환합니다.
func stringToSliceHookFunc(trimSpace bool) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, ",")
		if trimSpace {
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
		}
		return parts, nil
	}
}
