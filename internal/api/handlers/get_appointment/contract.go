package get_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
