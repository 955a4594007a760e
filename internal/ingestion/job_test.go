package ingestion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader 주소별로 정해진 본문, 에러, 패닉을 돌려줍니다.
type fakeReader struct {
	mu      sync.Mutex
	calls   []string
	content map[string]string
	errs    map[string]error
	panics  map[string]bool

	// onRead 호출될 때마다 실행 (ctx 취소 등)
	onRead func(url string)
}

func (r *fakeReader) Read(_ context.Context, url string) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, url)
	r.mu.Unlock()

	if r.onRead != nil {
		r.onRead(url)
	}
	if r.panics[url] {
		panic("reader exploded")
	}
	if err := r.errs[url]; err != nil {
		return "", err
	}
	return r.content[url], nil
}

func (r *fakeReader) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type recordingProcessor struct {
	articles []Article
	err      error
}

func (p *recordingProcessor) Process(_ context.Context, a Article) error {
	if p.err != nil {
		return p.err
	}
	p.articles = append(p.articles, a)
	return nil
}

func newTestJob(r ArticleReader, p Processor, sources []string, delay time.Duration) (*Job, *[]time.Duration) {
	var sleeps []time.Duration
	j := NewJob(r, p, JobConfig{Sources: sources, Delay: delay})
	j.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return ctx.Err()
	}
	return j, &sleeps
}

func TestNewJob(t *testing.T) {
	t.Parallel()

	t.Run("reader 필수", func(t *testing.T) {
		assert.PanicsWithValue(t, "ArticleReader는 필수입니다", func() {
			NewJob(nil, nil, JobConfig{})
		})
	})

	t.Run("processor 기본값과 소스 복사", func(t *testing.T) {
		sources := []string{"https://a.example.com"}
		j := NewJob(&fakeReader{}, nil, JobConfig{Sources: sources})

		assert.IsType(t, LoggingProcessor{}, j.processor)

		sources[0] = "changed"
		assert.Equal(t, []string{"https://a.example.com"}, j.Sources())
	})
}

func TestJob_Run(t *testing.T) {
	t.Parallel()

	const (
		a = "https://a.example.com"
		b = "https://b.example.com"
		c = "https://c.example.com"
	)

	tests := []struct {
		name       string
		reader     *fakeReader
		sources    []string
		delay      time.Duration
		wantReport Report
		wantSleeps int
		wantURLs   []string
	}{
		{
			name:       "모든 소스 성공",
			reader:     &fakeReader{content: map[string]string{a: "A", b: "B"}},
			sources:    []string{a, b},
			delay:      time.Second,
			wantReport: Report{Fetched: 2, Total: 2},
			wantSleeps: 1,
			wantURLs:   []string{a, b},
		},
		{
			name: "일부 실패는 건너뜀",
			reader: &fakeReader{
				content: map[string]string{a: "A", c: "C"},
				errs:    map[string]error{b: errors.New("404 Not Found")},
			},
			sources:    []string{a, b, c},
			delay:      time.Second,
			wantReport: Report{Fetched: 2, Total: 3},
			wantSleeps: 2,
			wantURLs:   []string{a, c},
		},
		{
			name:       "빈 본문은 실패",
			reader:     &fakeReader{content: map[string]string{a: ""}},
			sources:    []string{a},
			delay:      time.Second,
			wantReport: Report{Fetched: 0, Total: 1},
			wantSleeps: 0,
		},
		{
			name: "패닉도 다음 소스로 진행",
			reader: &fakeReader{
				content: map[string]string{b: "B"},
				panics:  map[string]bool{a: true},
			},
			sources:    []string{a, b},
			delay:      time.Second,
			wantReport: Report{Fetched: 1, Total: 2},
			wantSleeps: 1,
			wantURLs:   []string{b},
		},
		{
			name:       "소스 없음",
			reader:     &fakeReader{},
			wantReport: Report{},
		},
		{
			name:       "대기 시간 0",
			reader:     &fakeReader{content: map[string]string{a: "A", b: "B"}},
			sources:    []string{a, b},
			wantReport: Report{Fetched: 2, Total: 2},
			wantURLs:   []string{a, b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingProcessor{}
			j, sleeps := newTestJob(tt.reader, p, tt.sources, tt.delay)

			report, err := j.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantReport, report)
			assert.Len(t, *sleeps, tt.wantSleeps)
			for _, d := range *sleeps {
				assert.Equal(t, tt.delay, d)
			}
			assert.Equal(t, tt.sources, nilIfEmpty(tt.reader.Calls()))

			var urls []string
			for _, a := range p.articles {
				urls = append(urls, a.URL)
			}
			assert.Equal(t, tt.wantURLs, urls)
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestJob_Run_ProcessorError(t *testing.T) {
	t.Parallel()

	r := &fakeReader{content: map[string]string{"https://a.example.com": "A"}}
	j, _ := newTestJob(r, &recordingProcessor{err: errors.New("store down")}, []string{"https://a.example.com"}, 0)

	report, err := j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Fetched: 0, Total: 1}, report)
}

func TestJob_Run_ProcessorFunc(t *testing.T) {
	t.Parallel()

	var got []Article
	p := ProcessorFunc(func(_ context.Context, a Article) error {
		got = append(got, a)
		return nil
	})
	r := &fakeReader{content: map[string]string{"https://a.example.com": "본문"}}
	j, _ := newTestJob(r, p, []string{"https://a.example.com"}, 0)

	_, err := j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Article{{URL: "https://a.example.com", Content: "본문"}}, got)
}

func TestJob_Run_Canceled(t *testing.T) {
	t.Parallel()

	t.Run("시작 전에 취소", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := &fakeReader{}
		j, _ := newTestJob(r, nil, []string{"https://a.example.com"}, time.Second)

		report, err := j.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, Report{Total: 1}, report)
		assert.Empty(t, r.Calls())
	})

	t.Run("대기 중 취소", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		r := &fakeReader{
			content: map[string]string{"https://a.example.com": "A", "https://b.example.com": "B"},
			onRead:  func(string) { cancel() },
		}
		j, sleeps := newTestJob(r, &recordingProcessor{}, []string{"https://a.example.com", "https://b.example.com"}, time.Second)

		report, err := j.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, Report{Fetched: 1, Total: 2}, report)
		assert.Len(t, *sleeps, 1)
		assert.Equal(t, []string{"https://a.example.com"}, r.Calls())
	})

	t.Run("실제 대기도 취소에 반응", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		r := &fakeReader{content: map[string]string{"https://a.example.com": "A", "https://b.example.com": "B"}}
		j := NewJob(r, &recordingProcessor{}, JobConfig{
			Sources: []string{"https://a.example.com", "https://b.example.com"},
			Delay:   time.Minute,
		})

		start := time.Now()
		_, err := j.Run(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 10*time.Second)
	})
}

// 전역 로거를 사용하므로 병렬로 실행하지 않는다.
func TestJob_Run_LogsSummary(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	r := &fakeReader{
		content: map[string]string{"https://a.example.com": "A"},
		errs:    map[string]error{"https://b.example.com": errors.New("boom")},
	}
	j, _ := newTestJob(r, &recordingProcessor{}, []string{"https://a.example.com", "https://b.example.com"}, 0)

	_, err := j.Run(context.Background())
	require.NoError(t, err)

	var summary, warn *logrus.Entry
	for _, e := range hook.AllEntries() {
		switch {
		case e.Message == "기사 수집 완료: 1/2 소스 수집":
			summary = e
		case e.Level == logrus.WarnLevel && e.Data["url"] == "https://b.example.com":
			warn = e
		}
	}
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Data["fetched"])
	assert.Equal(t, 2, summary.Data["total"])
	assert.Equal(t, "ingestion", summary.Data["component"])
	require.NotNil(t, warn)
}

// 전역 로거를 사용하므로 병렬로 실행하지 않는다.
func TestLoggingProcessor(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	err := LoggingProcessor{}.Process(context.Background(), Article{URL: "https://a.example.com", Content: "본문 내용"})
	require.NoError(t, err)

	var found *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "기사 본문 처리" {
			found = e
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "https://a.example.com", found.Data["url"])
	assert.Equal(t, len("본문 내용"), found.Data["length"])
}
