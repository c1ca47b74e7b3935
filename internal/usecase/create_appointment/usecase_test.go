package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	serviceRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/service"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// fakeAppointmentRepo хранит записи в памяти, имитируя поведение
// репозитория внутри транзакции
type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.items = append(f.items, &created)

	result := created
	return &result, nil
}

func (f *fakeAppointmentRepo) GetBusyIntervals(_ context.Context, dayStart, dayEnd time.Time) ([]domain.TimeInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var busy []domain.TimeInterval
	for _, a := range f.items {
		if a.Status == domain.StatusCancelled {
			continue
		}
		if a.StartTime.Before(dayStart) || !a.StartTime.Before(dayEnd) {
			continue
		}
		if a.EndTime.After(a.StartTime) {
			busy = append(busy, domain.TimeInterval{Start: a.StartTime, End: a.EndTime})
		}
	}
	return busy, nil
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return s.service, s.err
}

type stubScheduleProvider struct {
	schedule domain.DaySchedule
}

func (s *stubScheduleProvider) GetSchedule(_ context.Context) (domain.DaySchedule, error) {
	return s.schedule, nil
}

// serialTxManager исполняет транзакции строго по одной, имитируя
// сериализуемый уровень изоляции
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []int64
	done  chan struct{}
}

func (n *recordingNotifier) NotifyAppointmentCreated(_ context.Context, appt *domain.Appointment) error {
	n.mu.Lock()
	n.calls = append(n.calls, appt.ID)
	n.mu.Unlock()
	if n.done != nil {
		close(n.done)
	}
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func salonLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func haircut() *domain.Service {
	return &domain.Service{ID: 1, Name: "Corte de cabelo", Price: 45, DurationMinutes: 30}
}

func newTestUseCase(repo *fakeAppointmentRepo, service *domain.Service, notifier Notifier, now time.Time) *UseCase {
	uc := NewUseCase(
		repo,
		&stubServiceRepo{service: service},
		&stubScheduleProvider{schedule: domain.DefaultDaySchedule()},
		&serialTxManager{},
		notifier,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    uuid.New(),
		ServiceID: 1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, haircut(), nil, now)

	req := validRequest()
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, req.UserID, resp.UserID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Corte de cabelo", resp.ServiceName)
	assert.Equal(t, 45.0, resp.ServicePrice)

	// Момент начала восстановлен в таймзоне салона
	assert.Equal(t, 10, resp.StartTime.Hour())
	assert.Equal(t, loc.String(), resp.StartTime.Location().String())
	assert.Equal(t, 30*time.Minute, resp.EndTime.Sub(resp.StartTime))
}

func TestExecute_SlotTakenOnExactCollision(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, haircut(), nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotTakenOnOverlap(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	// Услуга на час: запись 10:00-11:00 конфликтует со стартом 10:30
	long := &domain.Service{ID: 2, Name: "Corte + Barba", Price: 65, DurationMinutes: 60}

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, long, nil, now)

	first := validRequest()
	first.ServiceID = 2
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.ServiceID = 2
	second.StartTime = types.TimeString("10:30")
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Впритык после окончания - свободно
	third := validRequest()
	third.ServiceID = 2
	third.StartTime = types.TimeString("11:00")
	_, err = uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestExecute_BackToBackSlotsDoNotConflict(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, haircut(), nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	next := validRequest()
	next.StartTime = types.TimeString("10:30")
	_, err = uc.Execute(context.Background(), next)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentBookingOnlyOneWins(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, haircut(), nil, now)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotTaken)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, repo.items, 1)
}

func TestExecute_SlotInPast(t *testing.T) {
	loc := salonLocation(t)

	t.Run("past date", func(t *testing.T) {
		now := time.Date(2026, 9, 16, 9, 0, 0, 0, loc)
		uc := newTestUseCase(&fakeAppointmentRepo{}, haircut(), nil, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotInPast)
	})

	t.Run("elapsed slot today", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 11, 0, 0, 0, loc)
		uc := newTestUseCase(&fakeAppointmentRepo{}, haircut(), nil, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotInPast)
	})

	t.Run("future slot today is allowed", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 9, 0, 0, 0, loc)
		uc := newTestUseCase(&fakeAppointmentRepo{}, haircut(), nil, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	tests := []struct {
		name      string
		startTime types.TimeString
		duration  int
	}{
		{"before opening", "07:30", 30},
		{"after closing", "18:30", 30},
		{"off the grid", "10:15", 30},
		{"ends after grace window", "18:00", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := haircut()
			service.DurationMinutes = tt.duration

			uc := newTestUseCase(&fakeAppointmentRepo{}, service, nil, now)

			req := validRequest()
			req.StartTime = tt.startTime
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}

	t.Run("closing slot within grace window is allowed", func(t *testing.T) {
		service := haircut()
		service.DurationMinutes = 60

		uc := newTestUseCase(&fakeAppointmentRepo{}, service, nil, now)

		req := validRequest()
		req.StartTime = types.TimeString("18:00")
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_ZeroDurationService(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	instant := &domain.Service{ID: 4, Name: "Avaliação", Price: 0, DurationMinutes: 0}

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo, instant, nil, now)

	req := validRequest()
	req.ServiceID = 4
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.EndTime.Equal(resp.StartTime))
}

func TestExecute_ServiceNotFound(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&stubServiceRepo{err: serviceRepo.ErrServiceNotFound},
		&stubScheduleProvider{schedule: domain.DefaultDaySchedule()},
		&serialTxManager{},
		nil,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, haircut(), nil, time.Now())

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing user", func(r *Request) { r.UserID = uuid.Nil }},
		{"zero service id", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "10am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotifiesAfterCommit(t *testing.T) {
	loc := salonLocation(t)
	now := time.Date(2026, 9, 14, 20, 0, 0, 0, loc)

	notifier := &recordingNotifier{done: make(chan struct{})}
	uc := newTestUseCase(&fakeAppointmentRepo{}, haircut(), notifier, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, resp.ID, notifier.calls[0])
}
