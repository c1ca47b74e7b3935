package domain

import "time"

// Service услуга салона (стрижка, окрашивание и т.д.)
// Управляется администратором; в процессе бронирования неизменна
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsInstant returns true for zero-duration services (e.g. consultations)
// Такая услуга занимает только сам момент начала
func (s *Service) IsInstant() bool {
	return s.DurationMinutes == 0
}
