// Package ingestion 뉴스 소스 페이지의 본문을 Reader API(r.jina.ai)로 가져오는 기사 수집 작업을 제공합니다.
//
// 수집 한 번(Job.Run)은 설정된 소스를 순서대로 하나씩 가져오며, 소스 사이에는 정해진 시간만큼 기다립니다.
// 실패한 소스는 기록만 하고 다음 소스로 넘어갑니다.
package ingestion

import (
	"context"
	"time"
)

const component = "ingestion"

const (
	// DefaultReaderBaseURL 기사 주소를 경로 뒤에 붙여 호출하는 Reader API의 기준 주소입니다.
	DefaultReaderBaseURL = "https://r.jina.ai/"

	// UserAgent Reader API 요청에 사용하는 User-Agent 입니다.
	UserAgent = "MailchimpTrendsEngine/1.0"

	// DefaultTimeout Reader API 요청 하나에 허용되는 기본 시간입니다.
	DefaultTimeout = 30 * time.Second
)

// Article 수집된 기사 하나입니다.
type Article struct {
	URL     string
	Content string
}

// ArticleReader 기사 주소의 본문 텍스트를 가져옵니다.
type ArticleReader interface {
	Read(ctx context.Context, articleURL string) (string, error)
}

// Processor 가져온 기사를 처리합니다.
type Processor interface {
	Process(ctx context.Context, article Article) error
}

// ProcessorFunc 함수를 Processor로 사용합니다.
type ProcessorFunc func(ctx context.Context, article Article) error

func (f ProcessorFunc) Process(ctx context.Context, article Article) error {
	return f(ctx, article)
}

// Report 수집 한 번의 결과입니다.
type Report struct {
	// Fetched 본문을 가져와 처리까지 마친 소스 수
	Fetched int

	// Total 설정된 소스 수
	Total int
}
