package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrInvalidInterval возвращается при попытке создать интервал с start >= end
	ErrInvalidInterval = errors.New("invalid time interval: start must be before end")
)

// TimeInterval полуоткрытый временной интервал [Start, End)
// Immutable value type: создается только через NewTimeInterval
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval создает интервал, проверяя инвариант Start < End
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start=%s end=%s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Граничные случаи (конец одного == начало другого) пересечением НЕ считаются
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains проверяет, что момент t попадает в интервал: Start <= t < End
func (iv TimeInterval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Duration возвращает длительность интервала
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// SortIntervals сортирует интервалы по времени начала (по возрастанию)
func SortIntervals(intervals []TimeInterval) {
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
}

// AnyOverlaps возвращает true, если iv пересекается хотя бы с одним интервалом из busy
func AnyOverlaps(busy []TimeInterval, iv TimeInterval) bool {
	for _, b := range busy {
		if b.Overlaps(iv) {
			return true
		}
	}
	return false
}

// AnyContains возвращает true, если момент t попадает хотя бы в один интервал из busy
func AnyContains(busy []TimeInterval, t time.Time) bool {
	for _, b := range busy {
		if b.Contains(t) {
			return true
		}
	}
	return false
}
