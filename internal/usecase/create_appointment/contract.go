package create_appointment

import (
	"context"
	"time"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetBusyIntervals собирает busy-интервалы неотмененных записей,
	// начинающихся в [dayStart, dayEnd); внутри транзакции блокирует строки (FOR UPDATE)
	GetBusyIntervals(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.TimeInterval, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ScheduleProvider интерфейс получения действующего расписания салона
type ScheduleProvider interface {
	GetSchedule(ctx context.Context) (domain.DaySchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомления о созданной записи
// Вызывается fire-and-forget после успешного коммита: его ошибка
// не откатывает и не блокирует бронирование
type Notifier interface {
	NotifyAppointmentCreated(ctx context.Context, appt *domain.Appointment) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
