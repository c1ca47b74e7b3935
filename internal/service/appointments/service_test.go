package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	appointmentRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/appointment"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/appointments/models"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID      map[int64]*domain.Appointment
	cancelled []int64
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByUser(_ context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.byID {
		if a.UserID != filter.UserID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeInactive && a.Status == domain.StatusCancelled {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64) error {
	appt, ok := f.byID[id]
	if !ok || appt.Status == domain.StatusCancelled {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	f.cancelled = append(f.cancelled, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newAppointment(id int64, userID uuid.UUID, status domain.AppointmentStatus) *domain.Appointment {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:           id,
		UserID:       userID,
		ServiceID:    1,
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
		Status:       status,
		ServiceName:  "Corte de cabelo",
		ServicePrice: 45,
		CreatedAt:    start.Add(-24 * time.Hour),
		UpdatedAt:    start.Add(-24 * time.Hour),
	}
}

func TestGetByID(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: newAppointment(1, owner, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("owner can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "10:30", resp.EndTime)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, stranger)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing appointment", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, owner)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetUserAppointments(t *testing.T) {
	owner := uuid.New()

	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: newAppointment(1, owner, domain.StatusConfirmed),
		2: newAppointment(2, owner, domain.StatusCancelled),
		3: newAppointment(3, uuid.New(), domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("active only by default", func(t *testing.T) {
		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{UserID: owner})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, int64(1), resp.Appointments[0].ID)
	})

	t.Run("include inactive", func(t *testing.T) {
		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID:          owner,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID: owner,
			Status: ptr.Ptr(string(domain.StatusCancelled)),
		})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, int64(2), resp.Appointments[0].ID)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
			UserID: owner,
			Status: ptr.Ptr("PENDING"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	owner := uuid.New()

	newRepo := func() *fakeAppointmentRepo {
		return &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
			1: newAppointment(1, owner, domain.StatusConfirmed),
			2: newAppointment(2, owner, domain.StatusCancelled),
		}}
	}

	t.Run("owner cancels confirmed appointment", func(t *testing.T) {
		repo := newRepo()
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: owner})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := newRepo()
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: uuid.New()})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := newRepo()
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 2, &models.CancelAppointmentRequest{UserID: owner})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("missing appointment", func(t *testing.T) {
		repo := newRepo()
		svc := NewService(repo, nopLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: owner})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
