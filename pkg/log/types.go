package log

import "github.com/sirupsen/logrus"

// 호출하는 쪽에서 logrus를 직접 import 하지 않도록 자주 쓰는 타입과 상수를 다시 노출합니다.

type (
	Level     = logrus.Level
	Fields    = logrus.Fields
	Entry     = logrus.Entry
	Hook      = logrus.Hook
	Logger    = logrus.Logger
	Formatter = logrus.Formatter

	TextFormatter = logrus.TextFormatter
	JSONFormatter = logrus.JSONFormatter
)

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// AllLevels 모든 로그 레벨
var AllLevels = logrus.AllLevels
