// Package page 뷰 상태를 상태 페이지(HTML, 텍스트)로 출력합니다.
package page

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/darkkaiser/trends-engine/internal/health/view"
	apperrors "github.com/darkkaiser/trends-engine/internal/pkg/errors"
	"github.com/labstack/echo/v4"
)

// 화면에 표시되는 고정 문구입니다. 상태 블록의 접두어는 외부에서 검색(grep)할 수 있도록 바뀌지 않아야 합니다.
const (
	Title    = "Mailchimp Trends Engine"
	Heading  = "Mailchimp Trends Engine - Frontend"
	Subtitle = "The frontend application is running."
	Section  = "Backend Status:"

	LoadingText   = "Loading backend status..."
	ErrorPrefix   = "Error connecting to backend: "
	StatusPrefix  = "Status: "
	VersionPrefix = "Version: "
)

// TemplateName echo.Context.Render 에 전달하는 상태 페이지 템플릿 이름
const TemplateName = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// Model 상태 페이지 템플릿에 전달되는 값입니다.
type Model struct {
	Title    string
	Heading  string
	Subtitle string
	Section  string

	LoadingText   string
	ErrorPrefix   string
	StatusPrefix  string
	VersionPrefix string

	State view.State
}

func NewModel(s view.State) Model {
	return Model{
		Title:    Title,
		Heading:  Heading,
		Subtitle: Subtitle,
		Section:  Section,

		LoadingText:   LoadingText,
		ErrorPrefix:   ErrorPrefix,
		StatusPrefix:  StatusPrefix,
		VersionPrefix: VersionPrefix,

		State: s,
	}
}

// StatusLines 상태 블록에 표시되는 줄을 반환합니다. Success는 두 줄, 그 외는 한 줄입니다.
func StatusLines(s view.State) []string {
	switch s.Kind() {
	case view.ConfigError, view.FetchError:
		return []string{ErrorPrefix + s.Message()}
	case view.Success:
		return []string{StatusPrefix + s.Status(), VersionPrefix + s.Version()}
	default:
		return []string{LoadingText}
	}
}

// RenderText 상태 페이지를 일반 텍스트로 출력합니다.
func RenderText(w io.Writer, s view.State) error {
	var sb strings.Builder
	sb.WriteString(Heading)
	sb.WriteString("\n")
	sb.WriteString(Subtitle)
	sb.WriteString("\n\n")
	sb.WriteString(Section)
	sb.WriteString("\n")
	for _, line := range StatusLines(s) {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Renderer 내장된 HTML 템플릿을 사용하는 echo.Renderer 구현입니다.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "상태 페이지 템플릿을 불러오지 못했습니다")
	}
	return &Renderer{templates: t}, nil
}

// MustNewRenderer 템플릿을 불러오지 못하면 패닉이 발생합니다.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render data 는 Model 또는 view.State 이어야 합니다.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	switch d := data.(type) {
	case view.State:
		data = NewModel(d)
	case Model:
	default:
		return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 템플릿 데이터 타입입니다: %T", data)
	}
	return r.templates.ExecuteTemplate(w, name, data)
}
