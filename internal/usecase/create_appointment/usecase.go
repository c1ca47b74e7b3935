package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
	appointmentRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/appointment"
	serviceRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/service"
)

// notifyTimeout ограничивает фоновую отправку уведомления
const notifyTimeout = 10 * time.Second

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	schedule        ScheduleProvider
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	schedule ScheduleProvider,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		schedule:        schedule,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Проверка доступности и вставка выполняются в ОДНОЙ сериализуемой
// транзакции: busy-интервалы дня перечитываются с блокировкой FOR UPDATE,
// затем заново проверяются коллизия и прошедшее время. Две конкурентные
// попытки занять пересекающиеся слоты не могут завершиться успехом обе:
// проигравшая получает ErrSlotTaken. Exclusion constraint на таблице
// appointments дублирует эту гарантию на уровне БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (каталог неизменен в процессе бронирования)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем действующее расписание салона
		schedule, err := uc.schedule.GetSchedule(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		loc, err := schedule.Location()
		if err != nil {
			uc.logger.Error("CreateAppointment: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		now := uc.timeProvider.Now().In(loc)

		// 3.2. Восстанавливаем момент начала в таймзоне салона
		startAt, err := req.StartTime.OnDate(req.Date, loc)
		if err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

		// 3.3. Слот должен лежать на сетке и укладываться в grace-окно
		if err := validateSlotOnGrid(startAt, endAt, req.Date, schedule, loc); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 3.4. Повторная проверка прошедшего времени на момент коммита:
		// слот мог истечь, пока клиент выбирал
		if err := validateSlotNotInPast(startAt, req.Date, now); err != nil {
			uc.logger.Warn("CreateAppointment: slot %s is in the past", req.StartTime)
			return err
		}

		// 3.5. Перечитываем busy-интервалы дня с блокировкой строк
		dayStart, dayEnd := dayBounds(req.Date, loc)
		busy, err := uc.appointmentRepo.GetBusyIntervals(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get busy intervals: %v", err)
			return fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
		}

		// 3.6. Повторная проверка коллизии: между запросом доступности и
		// коммитом могла появиться новая запись
		if hasCollision(busy, startAt, endAt) {
			uc.logger.Warn("CreateAppointment: slot %s %s collides with existing appointment",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}

		// 3.7. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			UserID:       req.UserID,
			ServiceID:    service.ID,
			StartTime:    startAt,
			EndTime:      endAt,
			Status:       domain.StatusConfirmed,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: exclusion constraint rejected slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Сбой сериализации - тоже проигранная гонка за слот
		if appointmentRepo.IsSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization failure, treating as slot conflict")
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 4. Уведомление после коммита: fire-and-forget, ошибка не влияет
	// на результат бронирования
	if uc.notifier != nil {
		appt := *result
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()

			if err := uc.notifier.NotifyAppointmentCreated(notifyCtx, &appt); err != nil {
				uc.logger.Warn("CreateAppointment: notification for appointment id=%d failed: %v", appt.ID, err)
			}
		}()
	}

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		ServiceID:    result.ServiceID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
