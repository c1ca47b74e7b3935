package get_available_slots

import (
	"time"

	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/domain"
)

// generateSlotGrid генерирует сетку кандидатов на день: от открытия до
// закрытия ВКЛЮЧИТЕЛЬНО с фиксированным шагом StepMinutes.
// Слот, начинающийся ровно во время закрытия, допустим - услуга может
// завершиться в grace-окне после закрытия.
//
// Чистая функция от (date, schedule): детерминированная и конечная.
// Инвариант цикла: current <= close
func generateSlotGrid(date time.Time, schedule domain.DaySchedule, loc *time.Location) ([]time.Time, error) {
	open, err := schedule.OpenAt(date, loc)
	if err != nil {
		return nil, err
	}

	close, err := schedule.CloseAt(date, loc)
	if err != nil {
		return nil, err
	}

	step := time.Duration(schedule.StepMinutes) * time.Minute

	grid := make([]time.Time, 0)
	for current := open; !current.After(close); current = current.Add(step) {
		grid = append(grid, current)
	}

	return grid, nil
}

// filterAvailableSlots фильтрует сетку кандидатов, оставляя слоты, способные
// вместить услугу длительностью durationMinutes. Проверки на каждый слот s:
//
//  1. Прошедшее время: если запрошенная дата - сегодня (по таймзоне салона),
//     отбрасываем s <= now. Сравнение всегда в таймзоне салона, а не клиента.
//  2. Занятое начало: s не должен попадать внутрь busy-интервала
//     (покрывает и услуги нулевой длительности).
//  3. Пересечение: [s, s+duration) не должен пересекаться ни с одним
//     busy-интервалом. Интервалы полуоткрытые: записи, граничащие
//     точно по краям, пересечением не считаются.
//  4. Grace-окно: s+duration не должен выходить за close+grace.
//
// Порядок входа сохраняется; пустой результат - валидный ответ
// ("нет свободных слотов"), а не ошибка
func filterAvailableSlots(
	grid []time.Time,
	durationMinutes int,
	busy []domain.TimeInterval,
	now time.Time,
	closeAt time.Time,
	graceMinutes int,
	requestDate time.Time,
) []time.Time {
	duration := time.Duration(durationMinutes) * time.Minute
	latestEnd := closeAt.Add(time.Duration(graceMinutes) * time.Minute)
	isToday := isSameDay(requestDate, now)

	available := make([]time.Time, 0, len(grid))

	for _, s := range grid {
		if isToday && !s.After(now) {
			continue
		}

		if domain.AnyContains(busy, s) {
			continue
		}

		if durationMinutes > 0 {
			end := s.Add(duration)
			if end.After(latestEnd) {
				continue
			}

			span := domain.TimeInterval{Start: s, End: end}
			if domain.AnyOverlaps(busy, span) {
				continue
			}
		}

		available = append(available, s)
	}

	return available
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dayBounds возвращает границы календарного дня [start, end) в таймзоне салона
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
