package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlotOnGrid проверяет, что слот лежит на сетке рабочего дня:
// начало в [open, close], выровнено по шагу сетки, и услуга успевает
// завершиться не позже close+grace
func validateSlotOnGrid(
	startAt, endAt time.Time,
	date time.Time,
	schedule domain.DaySchedule,
	loc *time.Location,
) error {
	open, err := schedule.OpenAt(date, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	close, err := schedule.CloseAt(date, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if startAt.Before(open) || startAt.After(close) {
		return fmt.Errorf("%w: start %s is outside business hours %s-%s",
			ErrInvalidTimeSlot, startAt.Format(domain.TimeFormat), schedule.OpenTime, schedule.CloseTime)
	}

	step := time.Duration(schedule.StepMinutes) * time.Minute
	if startAt.Sub(open)%step != 0 {
		return fmt.Errorf("%w: start %s is not aligned to %d-minute grid",
			ErrInvalidTimeSlot, startAt.Format(domain.TimeFormat), schedule.StepMinutes)
	}

	latestEnd := close.Add(time.Duration(schedule.GraceMinutes) * time.Minute)
	if endAt.After(latestEnd) {
		return fmt.Errorf("%w: service would end at %s, after the %d-minute grace window",
			ErrInvalidTimeSlot, endAt.Format(domain.TimeFormat), schedule.GraceMinutes)
	}

	return nil
}

// validateSlotNotInPast проверяет по часам салона, что слот еще не прошел
func validateSlotNotInPast(startAt time.Time, date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrSlotInPast
	}

	if isSameDay(date, now) && !startAt.After(now) {
		return ErrSlotInPast
	}

	return nil
}

// hasCollision проверяет пересечение слота [startAt, endAt) с busy-интервалами
// Для услуг нулевой длительности достаточно, чтобы момент начала не попадал
// внутрь существующей записи
func hasCollision(busy []domain.TimeInterval, startAt, endAt time.Time) bool {
	if domain.AnyContains(busy, startAt) {
		return true
	}

	if endAt.After(startAt) {
		span := domain.TimeInterval{Start: startAt, End: endAt}
		if domain.AnyOverlaps(busy, span) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// dayBounds возвращает границы календарного дня [start, end) в таймзоне салона
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
