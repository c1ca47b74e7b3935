package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()

	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	iv, err := NewTimeInterval(s, e)
	require.NoError(t, err)
	return iv
}

func TestNewTimeInterval(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		iv, err := NewTimeInterval(now, now.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, iv.Duration())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewTimeInterval(now, now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewTimeInterval(now.Add(time.Hour), now)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestTimeInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "identical intervals",
			a:    mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z"),
			b:    mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z"),
			b:    mustInterval(t, "2026-09-15T10:30:00Z", "2026-09-15T11:30:00Z"),
			want: true,
		},
		{
			name: "one contains the other",
			a:    mustInterval(t, "2026-09-15T09:00:00Z", "2026-09-15T12:00:00Z"),
			b:    mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z"),
			want: true,
		},
		{
			name: "back to back does not overlap",
			a:    mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T10:30:00Z"),
			b:    mustInterval(t, "2026-09-15T10:30:00Z", "2026-09-15T11:00:00Z"),
			want: false,
		},
		{
			name: "disjoint intervals",
			a:    mustInterval(t, "2026-09-15T08:00:00Z", "2026-09-15T09:00:00Z"),
			b:    mustInterval(t, "2026-09-15T12:00:00Z", "2026-09-15T13:00:00Z"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeInterval_Contains(t *testing.T) {
	iv := mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z")

	tests := []struct {
		name string
		at   string
		want bool
	}{
		{"start is inclusive", "2026-09-15T10:00:00Z", true},
		{"middle", "2026-09-15T10:30:00Z", true},
		{"end is exclusive", "2026-09-15T11:00:00Z", false},
		{"before start", "2026-09-15T09:59:59Z", false},
		{"after end", "2026-09-15T11:00:01Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := time.Parse(time.RFC3339, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, iv.Contains(at))
		})
	}
}

func TestSortIntervals(t *testing.T) {
	intervals := []TimeInterval{
		mustInterval(t, "2026-09-15T14:00:00Z", "2026-09-15T15:00:00Z"),
		mustInterval(t, "2026-09-15T08:00:00Z", "2026-09-15T09:00:00Z"),
		mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z"),
	}

	SortIntervals(intervals)

	for i := 1; i < len(intervals); i++ {
		assert.True(t, intervals[i-1].Start.Before(intervals[i].Start))
	}
}

func TestAnyOverlaps(t *testing.T) {
	busy := []TimeInterval{
		mustInterval(t, "2026-09-15T09:00:00Z", "2026-09-15T10:00:00Z"),
		mustInterval(t, "2026-09-15T13:00:00Z", "2026-09-15T14:30:00Z"),
	}

	assert.True(t, AnyOverlaps(busy, mustInterval(t, "2026-09-15T09:30:00Z", "2026-09-15T10:30:00Z")))
	assert.False(t, AnyOverlaps(busy, mustInterval(t, "2026-09-15T10:00:00Z", "2026-09-15T11:00:00Z")))
	assert.False(t, AnyOverlaps(nil, mustInterval(t, "2026-09-15T09:00:00Z", "2026-09-15T10:00:00Z")))
}

func TestAnyContains(t *testing.T) {
	busy := []TimeInterval{
		mustInterval(t, "2026-09-15T09:00:00Z", "2026-09-15T10:00:00Z"),
	}

	at := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)
	assert.True(t, AnyContains(busy, at))

	boundary := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	assert.False(t, AnyContains(busy, boundary))
}
