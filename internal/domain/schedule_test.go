package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySchedule_Validate(t *testing.T) {
	valid := DefaultDaySchedule()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(s *DaySchedule)
	}{
		{"open after close", func(s *DaySchedule) { s.OpenTime = "19:00" }},
		{"open equals close", func(s *DaySchedule) { s.OpenTime = s.CloseTime }},
		{"malformed open time", func(s *DaySchedule) { s.OpenTime = "8am" }},
		{"step too small", func(s *DaySchedule) { s.StepMinutes = 1 }},
		{"step too large", func(s *DaySchedule) { s.StepMinutes = 500 }},
		{"negative grace", func(s *DaySchedule) { s.GraceMinutes = -10 }},
		{"unknown timezone", func(s *DaySchedule) { s.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultDaySchedule()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestDaySchedule_OpenCloseAt(t *testing.T) {
	s := DefaultDaySchedule()

	loc, err := s.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	open, err := s.OpenAt(date, loc)
	require.NoError(t, err)
	assert.Equal(t, 8, open.Hour())
	assert.Equal(t, 0, open.Minute())
	assert.Equal(t, loc, open.Location())

	close, err := s.CloseAt(date, loc)
	require.NoError(t, err)
	assert.Equal(t, 18, close.Hour())
	assert.True(t, open.Before(close))
}
