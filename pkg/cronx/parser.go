// Package cronx 애플리케이션 공통의 Cron 표현식 파서와 검증 함수를 제공합니다.
package cronx

import (
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 형식과 Descriptor(@hourly, @every 1h 등)를 지원하는 파서를 반환합니다.
// 표준 5필드 형식은 지원하지 않습니다.
//
//   - "0 0 */6 * * *" : 6시간마다 정각
//   - "@every 30m"    : 30분 간격
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec을 StandardParser로 해석할 수 있는지 확인합니다. 빈 문자열은 "스케줄 없음"으로 허용합니다.
func Validate(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	_, err := StandardParser().Parse(spec)
	return err
}
