package update_schedule_config

import "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/schedule/models"

// UpdateScheduleConfigRequest HTTP request model
// nil-поля не изменяются
type UpdateScheduleConfigRequest struct {
	OpenTime     *string `json:"openTime,omitempty"`
	CloseTime    *string `json:"closeTime,omitempty"`
	StepMinutes  *int    `json:"stepMinutes,omitempty"`
	GraceMinutes *int    `json:"graceMinutes,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleConfigRequest) ToServiceRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		OpenTime:     r.OpenTime,
		CloseTime:    r.CloseTime,
		StepMinutes:  r.StepMinutes,
		GraceMinutes: r.GraceMinutes,
		Timezone:     r.Timezone,
	}
}
