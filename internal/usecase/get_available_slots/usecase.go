package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	serviceRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/service"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	schedule        ScheduleProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	schedule ScheduleProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		schedule:        schedule,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Busy-набор дня собирается заново на каждый запрос, чтобы отражать
// только что созданные записи. Результат - чистая функция от
// (сетка, услуга, busy-набор, now): повторный вызов с теми же входами
// дает тот же ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем действующее расписание салона
	schedule, err := uc.schedule.GetSchedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	loc, err := schedule.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Текущее время в таймзоне салона - все сравнения "слот в прошлом"
	// ведутся по часам салона, а не клиента
	now := uc.timeProvider.Now().In(loc)

	// 5. Дата целиком в прошлом - свободных слотов нет, это не ошибка
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, no slots",
			req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service), nil
	}

	// 6. Генерируем сетку кандидатов
	grid, err := generateSlotGrid(req.Date, schedule, loc)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}

	// 7. Собираем busy-интервалы дня (все неотмененные записи, независимо
	// от владельца - коллизии бронирования глобальные)
	dayStart, dayEnd := dayBounds(req.Date, loc)
	busy, err := uc.appointmentRepo.GetBusyIntervals(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
	}

	// 8. Фильтруем сетку по занятости, прошедшему времени и grace-окну
	closeAt, err := schedule.CloseAt(req.Date, loc)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute closing time: %v", err)
		return nil, fmt.Errorf("%w: failed to compute closing time: %v", ErrInternal, err)
	}

	available := filterAvailableSlots(
		grid,
		service.DurationMinutes,
		busy,
		now,
		closeAt,
		schedule.GraceMinutes,
		req.Date,
	)

	slots := make([]Slot, len(available))
	for i, s := range available {
		slots[i] = Slot{
			StartTime: types.NewTimeString(s),
			StartsAt:  s,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for service=%d, date=%s",
		len(slots), len(grid), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, service *domain.Service) *Response {
	return &Response{
		Date:            req.Date,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           []Slot{},
	}
}
