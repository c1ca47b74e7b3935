package get_schedule_config

import (
	"context"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context) (domain.DaySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
