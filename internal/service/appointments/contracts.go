package appointments

import (
	"context"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByUser(ctx context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
