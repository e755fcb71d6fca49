package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkInterval(t *testing.T, startHour, endHour int) TimeInterval {
	t.Helper()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	iv, err := NewTimeInterval(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour), "")
	require.NoError(t, err)
	return iv
}

func TestNewTimeIntervalRejectsReversedBounds(t *testing.T) {
	now := time.Now()

	_, err := NewTimeInterval(now, now, "busy")
	assert.Error(t, err)

	_, err = NewTimeInterval(now.Add(time.Hour), now, "busy")
	assert.Error(t, err)

	iv, err := NewTimeInterval(now, now.Add(time.Hour), "busy")
	require.NoError(t, err)
	assert.Equal(t, "busy", iv.Label)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeInterval
		want bool
	}{
		{"disjoint", mkInterval(t, 9, 10), mkInterval(t, 11, 12), false},
		{"touching edges do not overlap", mkInterval(t, 9, 10), mkInterval(t, 10, 11), false},
		{"partial overlap", mkInterval(t, 9, 11), mkInterval(t, 10, 12), true},
		{"containment", mkInterval(t, 9, 18), mkInterval(t, 12, 13), true},
		{"identical", mkInterval(t, 9, 10), mkInterval(t, 9, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	iv := mkInterval(t, 14, 16)
	assert.True(t, iv.Overlaps(iv))
}

func TestDurationHours(t *testing.T) {
	assert.InDelta(t, 2.0, mkInterval(t, 9, 11).DurationHours(), 1e-9)

	half, err := NewTimeInterval(
		time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		"")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half.DurationHours(), 1e-9)
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2026-03-10", mkInterval(t, 9, 10).Date())
}
