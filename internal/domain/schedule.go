package domain

import (
	"fmt"
	"time"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// DaySchedule конфигурация сетки рабочего дня салона
// Производная (не хранится как сущность): собирается из настроек и дефолтов
type DaySchedule struct {
	OpenTime     types.TimeString // Время открытия, например "08:00"
	CloseTime    types.TimeString // Время закрытия, например "18:00"
	StepMinutes  int              // Шаг сетки слотов в минутах
	GraceMinutes int              // Допустимое время завершения услуги после закрытия
	Timezone     string           // Таймзона салона, например "America/Sao_Paulo"
}

// Validate проверяет корректность конфигурации расписания
func (s *DaySchedule) Validate() error {
	if err := s.OpenTime.Validate(); err != nil {
		return fmt.Errorf("invalid open time: %w", err)
	}
	if err := s.CloseTime.Validate(); err != nil {
		return fmt.Errorf("invalid close time: %w", err)
	}
	if !s.OpenTime.IsBefore(s.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", s.OpenTime, s.CloseTime)
	}
	if s.StepMinutes < MinStepMinutes || s.StepMinutes > MaxStepMinutes {
		return fmt.Errorf("step minutes must be between %d and %d, got %d",
			MinStepMinutes, MaxStepMinutes, s.StepMinutes)
	}
	if s.GraceMinutes < MinGraceMinutes || s.GraceMinutes > MaxGraceMinutes {
		return fmt.Errorf("grace minutes must be between %d and %d, got %d",
			MinGraceMinutes, MaxGraceMinutes, s.GraceMinutes)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %v", s.Timezone, err)
	}
	return nil
}

// Location возвращает таймзону салона
func (s *DaySchedule) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load salon timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// OpenAt возвращает момент открытия салона в указанную дату
func (s *DaySchedule) OpenAt(date time.Time, loc *time.Location) (time.Time, error) {
	return s.OpenTime.OnDate(date, loc)
}

// CloseAt возвращает момент закрытия салона в указанную дату
func (s *DaySchedule) CloseAt(date time.Time, loc *time.Location) (time.Time, error) {
	return s.CloseTime.OnDate(date, loc)
}

// DefaultDaySchedule возвращает расписание с дефолтными значениями
func DefaultDaySchedule() DaySchedule {
	return DaySchedule{
		OpenTime:     DefaultOpenTime,
		CloseTime:    DefaultCloseTime,
		StepMinutes:  DefaultStepMinutes,
		GraceMinutes: DefaultGraceMinutes,
		Timezone:     DefaultTimezone,
	}
}
