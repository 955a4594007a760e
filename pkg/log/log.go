// Package log logrus 기반의 전역 로거를 구성하고 컴포넌트 단위 로깅 헬퍼를 제공합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// SetDebugMode 디버그 모드면 Trace, 아니면 Info 레벨로 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// StandardLogger 전역 로거를 반환합니다. (echo 로거 어댑터 등에서 사용)
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithComponent component 필드가 설정된 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

func WithError(err error) *Entry {
	return logrus.WithError(err)
}

func Debug(args ...any) { logrus.Debug(args...) }

func Info(args ...any) { logrus.Info(args...) }

func Warn(args ...any) { logrus.Warn(args...) }

func Error(args ...any) { logrus.Error(args...) }

func Infof(format string, args ...any) { logrus.Infof(format, args...) }

// ParseLevel "info", "WARN" 같은 레벨 이름을 해석합니다. 대소문자를 구분하지 않습니다.
func ParseLevel(level string) (Level, error) {
	return logrus.ParseLevel(level)
}

// SetLevel 전역 로거의 레벨을 이름으로 설정합니다.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
