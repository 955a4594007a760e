package web

import (
	"context"
	"net/http"
	"time"

	"github.com/darkkaiser/trends-engine/internal/health"
	"github.com/darkkaiser/trends-engine/internal/health/view"
	"github.com/darkkaiser/trends-engine/internal/page"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 상태 페이지 핸들러입니다.
//
// 요청 하나가 화면 하나의 마운트에 대응합니다. 요청마다 새 View를 마운트하고,
// 응답을 보낸 뒤 언마운트합니다. 이전 요청의 결과는 재사용하지 않습니다.
type Handler struct {
	apiURL  string
	checker health.Checker

	// renderWait 응답 전에 상태가 결정되기를 기다리는 최대 시간
	renderWait time.Duration
}

func NewHandler(apiURL string, checker health.Checker, renderWait time.Duration) *Handler {
	return &Handler{
		apiURL:     apiURL,
		checker:    checker,
		renderWait: renderWait,
	}
}

// IndexHandler 상태 페이지(HTML)를 렌더링합니다.
func (h *Handler) IndexHandler(c echo.Context) error {
	return c.Render(http.StatusOK, page.TemplateName, h.resolve(c))
}

// ViewStateHandler 상태 페이지와 같은 방식으로 결정한 뷰 상태를 JSON으로 반환합니다.
func (h *Handler) ViewStateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.resolve(c))
}

// resolve 뷰를 마운트하고 상태가 결정되거나 대기 시간이 지날 때까지 기다린 뒤 그 시점의 상태를 반환합니다.
func (h *Handler) resolve(c echo.Context) view.State {
	ctx := c.Request().Context()

	v := view.Mount(ctx, h.apiURL, h.checker)
	defer v.Unmount()

	state := v.State()
	if h.renderWait > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, h.renderWait)
		defer cancel()

		var err error
		if state, err = v.Wait(waitCtx); err != nil {
			applog.WithComponentAndFields(ComponentHandler, applog.Fields{
				"path":        c.Request().URL.Path,
				"render_wait": h.renderWait.String(),
				"error":       err,
			}).Warn(logMsgViewPending)
		}
	}

	applog.WithComponentAndFields(ComponentHandler, applog.Fields{
		"path":  c.Request().URL.Path,
		"state": state.Kind().Name(),
	}).Debug(logMsgViewResolved)

	return state
}
