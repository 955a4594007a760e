// Package mocks fetcher.Fetcher의 testify 기반 Mock 구현을 제공합니다.
package mocks

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/darkkaiser/trends-engine/internal/pkg/fetcher"
	"github.com/stretchr/testify/mock"
)

var _ fetcher.Fetcher = (*MockFetcher)(nil)

// MockFetcher 호출 인자와 횟수를 검증할 수 있는 Fetcher 입니다.
type MockFetcher struct {
	mock.Mock
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockResponse body와 상태 코드를 가진 응답을 만듭니다. Status는 "코드 표준문구" 형식입니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode:    statusCode,
		Status:        strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
		Header:        make(http.Header),
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// NewMockResponseWithJSON Content-Type이 application/json 인 응답을 만듭니다.
func NewMockResponseWithJSON(body string, statusCode int) *http.Response {
	resp := NewMockResponse(body, statusCode)
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
