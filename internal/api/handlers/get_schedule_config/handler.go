package get_schedule_config

import (
	"net/http"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/schedule/models"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GetSchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule-config - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := models.FromDomainSchedule(schedule)

	h.logger.Info("GET /schedule-config - Schedule retrieved successfully: open=%s, close=%s, step=%d",
		response.OpenTime, response.CloseTime, response.StepMinutes)
	handlers.RespondJSON(w, http.StatusOK, response)
}
