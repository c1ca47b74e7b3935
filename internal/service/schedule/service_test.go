package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/settings"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/schedule/models"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/ptr"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (f *fakeSettingsRepo) GetAll(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSchedule_DefaultsWhenNoSettings(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, domain.DefaultDaySchedule(), nopLogger{})

	schedule, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDaySchedule(), schedule)
}

func TestGetSchedule_SettingsOverrideDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{
		settings.KeyOpenTime:    "09:00",
		settings.KeyStepMinutes: "15",
	}}

	svc := NewService(repo, domain.DefaultDaySchedule(), nopLogger{})

	schedule, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "09:00", schedule.OpenTime.String())
	assert.Equal(t, 15, schedule.StepMinutes)
	// Непереопределенные ключи остаются дефолтными
	assert.Equal(t, domain.DefaultCloseTime, schedule.CloseTime)
	assert.Equal(t, domain.DefaultTimezone, schedule.Timezone)
}

func TestGetSchedule_InvalidValuesIgnored(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{
		settings.KeyOpenTime:     "nonsense",
		settings.KeyGraceMinutes: "a lot",
	}}

	svc := NewService(repo, domain.DefaultDaySchedule(), nopLogger{})

	schedule, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDaySchedule(), schedule)
}

func TestGetSchedule_InvalidCombinationFallsBackToDefaults(t *testing.T) {
	// Каждое значение по отдельности валидно, но открытие позже закрытия
	repo := &fakeSettingsRepo{values: map[string]string{
		settings.KeyOpenTime:  "19:00",
		settings.KeyCloseTime: "09:00",
	}}

	svc := NewService(repo, domain.DefaultDaySchedule(), nopLogger{})

	schedule, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDaySchedule(), schedule)
}

func TestUpdateSchedule(t *testing.T) {
	t.Run("persists changed keys", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewService(repo, domain.DefaultDaySchedule(), nopLogger{})

		resp, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			CloseTime:   ptr.Ptr("19:00"),
			StepMinutes: ptr.Ptr(15),
		})
		require.NoError(t, err)

		assert.Equal(t, "19:00", resp.CloseTime)
		assert.Equal(t, 15, resp.StepMinutes)
		assert.Equal(t, "19:00", repo.values[settings.KeyCloseTime])
		assert.Equal(t, "15", repo.values[settings.KeyStepMinutes])

		// Изменения видны при следующем чтении
		schedule, err := svc.GetSchedule(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "19:00", schedule.CloseTime.String())
	})

	t.Run("empty request rejected", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, domain.DefaultDaySchedule(), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid combination rejected before persisting", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewService(repo, domain.DefaultDaySchedule(), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			OpenTime: ptr.Ptr("20:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, repo.values)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		svc := NewService(&fakeSettingsRepo{}, domain.DefaultDaySchedule(), nopLogger{})

		_, err := svc.UpdateSchedule(context.Background(), &models.UpdateScheduleRequest{
			OpenTime: ptr.Ptr("8am"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
