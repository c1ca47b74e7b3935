package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus статус записи в салон
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment запись клиента на услугу
// Создается один раз при бронировании; меняется только статус (отмена)
type Appointment struct {
	ID        int64
	UserID    uuid.UUID
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time // StartTime + Service.DurationMinutes
	Status    AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// Interval возвращает занимаемый записью интервал [StartTime, EndTime)
func (a *Appointment) Interval() (TimeInterval, error) {
	return NewTimeInterval(a.StartTime, a.EndTime)
}

// UserAppointmentsFilter фильтр для получения записей пользователя
type UserAppointmentsFilter struct {
	UserID          uuid.UUID
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные записи
}
