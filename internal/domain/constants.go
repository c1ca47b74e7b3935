package domain

import "github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"

// Default schedule values
const (
	DefaultOpenTime     types.TimeString = "08:00"
	DefaultCloseTime    types.TimeString = "18:00"
	DefaultStepMinutes                   = 30
	DefaultGraceMinutes                  = 60
	DefaultTimezone                      = "America/Sao_Paulo"
)

// Business validation constants
const (
	MinStepMinutes       = 5
	MaxStepMinutes       = 240
	MinGraceMinutes      = 0
	MaxGraceMinutes      = 240
	MinServiceDuration   = 0
	MaxServiceDuration   = 480 // 8 hours
	MaxServiceNameLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы записей, занимающих слоты
// Используется при сборе busy-интервалов дня
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
}

// InactiveStatuses статусы записей, не занимающих слоты
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}
