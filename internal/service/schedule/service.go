package schedule

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/settings"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/schedule/models"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// Service сервис расписания салона
// Собирает действующее DaySchedule из таблицы настроек поверх дефолтов
// конфигурации; администратор переопределяет отдельные ключи
type Service struct {
	settingsRepo SettingsRepository
	defaults     domain.DaySchedule
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(settingsRepo SettingsRepository, defaults domain.DaySchedule, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// GetSchedule возвращает действующее расписание салона
// Некорректные значения в таблице настроек логируются и игнорируются -
// для таких ключей действует дефолт
func (s *Service) GetSchedule(ctx context.Context) (domain.DaySchedule, error) {
	values, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to load settings: %v", err)
		return domain.DaySchedule{}, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	result := s.defaults

	if v, ok := values[settings.KeyOpenTime]; ok {
		if parsed, err := types.NewTimeStringFromString(v); err == nil {
			result.OpenTime = parsed
		} else {
			s.logger.Warn("GetSchedule: ignoring invalid open_time setting %q: %v", v, err)
		}
	}

	if v, ok := values[settings.KeyCloseTime]; ok {
		if parsed, err := types.NewTimeStringFromString(v); err == nil {
			result.CloseTime = parsed
		} else {
			s.logger.Warn("GetSchedule: ignoring invalid close_time setting %q: %v", v, err)
		}
	}

	if v, ok := values[settings.KeyStepMinutes]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			result.StepMinutes = parsed
		} else {
			s.logger.Warn("GetSchedule: ignoring invalid step_minutes setting %q: %v", v, err)
		}
	}

	if v, ok := values[settings.KeyGraceMinutes]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			result.GraceMinutes = parsed
		} else {
			s.logger.Warn("GetSchedule: ignoring invalid grace_minutes setting %q: %v", v, err)
		}
	}

	if v, ok := values[settings.KeyTimezone]; ok {
		result.Timezone = v
	}

	if err := result.Validate(); err != nil {
		s.logger.Warn("GetSchedule: stored settings produce invalid schedule (%v), falling back to defaults", err)
		return s.defaults, nil
	}

	return result, nil
}

// UpdateSchedule сохраняет переопределения расписания
// Итоговое расписание валидируется целиком перед записью
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	if !req.HasChanges() {
		s.logger.Warn("UpdateSchedule: empty update request")
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	current, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}

	updated := current
	changes := make(map[string]string)

	if req.OpenTime != nil {
		parsed, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
		}
		updated.OpenTime = parsed
		changes[settings.KeyOpenTime] = parsed.String()
	}

	if req.CloseTime != nil {
		parsed, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
		}
		updated.CloseTime = parsed
		changes[settings.KeyCloseTime] = parsed.String()
	}

	if req.StepMinutes != nil {
		updated.StepMinutes = *req.StepMinutes
		changes[settings.KeyStepMinutes] = strconv.Itoa(*req.StepMinutes)
	}

	if req.GraceMinutes != nil {
		updated.GraceMinutes = *req.GraceMinutes
		changes[settings.KeyGraceMinutes] = strconv.Itoa(*req.GraceMinutes)
	}

	if req.Timezone != nil {
		updated.Timezone = *req.Timezone
		changes[settings.KeyTimezone] = *req.Timezone
	}

	if err := updated.Validate(); err != nil {
		s.logger.Warn("UpdateSchedule: rejected invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for key, value := range changes {
		if err := s.settingsRepo.Set(ctx, key, value); err != nil {
			s.logger.Error("UpdateSchedule: failed to save setting %s: %v", key, err)
			return nil, fmt.Errorf("%w: failed to save setting %s: %v", ErrInternal, key, err)
		}
	}

	s.logger.Info("UpdateSchedule: schedule updated, %d keys changed", len(changes))
	return models.FromDomainSchedule(updated), nil
}
