package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/middleware"
	createAppointment "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/usecase/create_appointment"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotInPast         = "выбранное время уже прошло"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
	metrics *metrics.Metrics
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		metrics: m,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Клиент берется из контекста (middleware Auth), а не из тела запроса
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.StartTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%s, service_id=%d, start=%s",
				userID, req.ServiceID, req.StartTime)
			if h.metrics != nil {
				h.metrics.IncBookingConflict()
			}
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in past: user_id=%s, start=%s", userID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: user_id=%s, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, service_id=%d, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if h.metrics != nil {
		h.metrics.IncAppointmentCreated()
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%s, service_id=%d",
		result.ID, userID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
