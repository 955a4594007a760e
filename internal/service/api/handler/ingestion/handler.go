// Package ingestion 기사 수집 작업 실행 엔드포인트 핸들러를 제공합니다.
package ingestion

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/trends-engine/internal/service/api/constants"
	"github.com/darkkaiser/trends-engine/internal/service/api/httputil"
	"github.com/darkkaiser/trends-engine/internal/service/api/model/ingestion"
	"github.com/darkkaiser/trends-engine/internal/service/scheduler"
	applog "github.com/darkkaiser/trends-engine/pkg/log"
	"github.com/labstack/echo/v4"
)

// JobTrigger 기사 수집 작업을 백그라운드에서 실행합니다.
type JobTrigger interface {
	Trigger() error
}

// Handler 기사 수집 엔드포인트 핸들러
type Handler struct {
	trigger JobTrigger
}

func NewHandler(trigger JobTrigger) *Handler {
	if trigger == nil {
		panic(constants.PanicMsgJobTriggerRequired)
	}

	return &Handler{trigger: trigger}
}

// TriggerFetchHandler godoc
// @Summary 기사 수집 작업 실행
// @Description 설정된 뉴스 소스 전체의 기사 수집 작업을 백그라운드에서 실행하도록 예약합니다.
// @Description 작업 완료를 기다리지 않고 즉시 202를 반환하며, 이미 실행 중인 작업이 있으면 409를 반환합니다.
// @Tags Ingestion
// @Produce json
// @Success 202 {object} ingestion.TriggerFetchResponse "작업 예약 성공"
// @Failure 409 {object} response.ErrorResponse "이미 실행 중인 작업이 있음"
// @Failure 500 {object} response.ErrorResponse "작업 예약 실패"
// @Router /api/v1/data-ingestion/trigger-fetch [post]
func (h *Handler) TriggerFetchHandler(c echo.Context) error {
	logger := applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	})
	logger.Info(constants.LogMsgTriggerFetch)

	if err := h.trigger.Trigger(); err != nil {
		if errors.Is(err, scheduler.ErrJobAlreadyRunning) {
			return httputil.NewConflictError(constants.ErrMsgIngestionJobAlreadyRunning)
		}

		logger.WithField("error", err.Error()).Error(constants.ErrMsgIngestionScheduleFailed)
		return httputil.NewInternalServerError(constants.ErrMsgIngestionScheduleFailed)
	}

	return c.JSON(http.StatusAccepted, ingestion.TriggerFetchResponse{
		Message: constants.MsgIngestionJobScheduled,
	})
}
