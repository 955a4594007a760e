package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/darkkaiser/trends-engine/pkg/cronx"
	"github.com/darkkaiser/trends-engine/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 설정 파일의 키 이름이 나오도록 json 태그를 필드명으로 사용한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	}); err != nil {
		panic(fmt.Sprintf("'cors_origin' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	if err := v.RegisterValidation("cron_spec", func(fl validator.FieldLevel) bool {
		return cronx.Validate(fl.Field().String()) == nil
	}); err != nil {
		panic(fmt.Sprintf("'cron_spec' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// checkStruct 구조체를 검증하고, 실패 시 첫 번째 위반 항목을 설명하는 InvalidInput 에러를 반환합니다.
func checkStruct(s any, section string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 검증에 실패했습니다", section))
	}

	first := verrs[0]
	switch first.Tag() {
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s.%s 설정은 필수입니다", section, first.Field()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s.%s 의 Cron 표현식이 올바르지 않습니다: '%v' (형식: 초 분 시 일 월 요일, 예: 0 0 */6 * * *)", section, first.Field(), first.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", first.Value()))
	default:
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s.%s 설정이 올바르지 않습니다: '%v' (조건: %s)", section, first.Field(), first.Value(), first.Tag()))
	}
}
