package models

import "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"

// UpdateScheduleRequest запрос на изменение расписания салона
// nil-поля не изменяются
type UpdateScheduleRequest struct {
	OpenTime     *string `json:"openTime,omitempty"`     // "08:00"
	CloseTime    *string `json:"closeTime,omitempty"`    // "18:00"
	StepMinutes  *int    `json:"stepMinutes,omitempty"`  // Шаг сетки слотов
	GraceMinutes *int    `json:"graceMinutes,omitempty"` // Grace-окно после закрытия
	Timezone     *string `json:"timezone,omitempty"`     // Таймзона салона
}

// HasChanges возвращает true, если запрос содержит хотя бы одно изменение
func (r *UpdateScheduleRequest) HasChanges() bool {
	return r.OpenTime != nil || r.CloseTime != nil || r.StepMinutes != nil ||
		r.GraceMinutes != nil || r.Timezone != nil
}

// ScheduleResponse действующее расписание салона
type ScheduleResponse struct {
	OpenTime     string `json:"openTime"`
	CloseTime    string `json:"closeTime"`
	StepMinutes  int    `json:"stepMinutes"`
	GraceMinutes int    `json:"graceMinutes"`
	Timezone     string `json:"timezone"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s domain.DaySchedule) *ScheduleResponse {
	return &ScheduleResponse{
		OpenTime:     s.OpenTime.String(),
		CloseTime:    s.CloseTime.String(),
		StepMinutes:  s.StepMinutes,
		GraceMinutes: s.GraceMinutes,
		Timezone:     s.Timezone,
	}
}
