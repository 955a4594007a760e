package ingestion

import (
	"context"

	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/darkkaiser/trends-engine/pkg/strutil"
)

// snippetRunes Debug 로그에 남기는 본문 앞부분의 최대 길이
const snippetRunes = 200

// LoggingProcessor 가져온 기사의 길이와 본문 앞부분을 기록만 합니다. 저장소가 붙기 전까지의 기본 Processor 입니다.
type LoggingProcessor struct{}

var _ Processor = LoggingProcessor{}

func (LoggingProcessor) Process(ctx context.Context, article Article) error {
	entry := applog.WithComponentAndFields(component, applog.Fields{
		"url":    article.URL,
		"length": len(article.Content),
	}).WithContext(ctx)

	entry.Info("기사 본문 처리")
	entry.WithField("snippet", strutil.Truncate(strutil.NormalizeSpaces(article.Content), snippetRunes)).Debug("기사 본문 앞부분")
	return nil
}
