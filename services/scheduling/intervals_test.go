package scheduling

import (
	"testing"
	"time"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyOn(t *testing.T, day time.Time, startHour, endHour int, label string) models.TimeInterval {
	t.Helper()
	iv, err := models.NewTimeInterval(
		time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC),
		time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, time.UTC),
		label)
	require.NoError(t, err)
	return iv
}

func TestDeriveFreeIntervalsAroundBusyBlocks(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC) // Tuesday
	busy := []models.TimeInterval{
		busyOn(t, day, 10, 12, "standup"),
		busyOn(t, day, 14, 15, "review"),
	}

	free := DeriveFreeIntervals(busy, day, day.AddDate(0, 0, 1), CalendarDayStartHour, CalendarDayEndHour)
	require.Len(t, free, 3)

	assert.Equal(t, "morning", free[0].Label)
	assert.Equal(t, 9, free[0].Start.Hour())
	assert.Equal(t, 10, free[0].End.Hour())

	assert.Equal(t, "between_events", free[1].Label)
	assert.Equal(t, 12, free[1].Start.Hour())
	assert.Equal(t, 14, free[1].End.Hour())

	assert.Equal(t, "evening", free[2].Label)
	assert.Equal(t, 15, free[2].Start.Hour())
	assert.Equal(t, 18, free[2].End.Hour())
}

func TestDeriveFreeIntervalsNeverOverlapBusy(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	var busy []models.TimeInterval
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		busy = append(busy, busyOn(t, d, 9, 17, "work"))
		busy = append(busy, busyOn(t, d, 19, 20, "gym"))
	}

	free := DeriveFreeIntervals(busy, start, end, SimulatedDayStartHour, SimulatedDayEndHour)
	require.NotEmpty(t, free)
	for _, f := range free {
		assert.GreaterOrEqual(t, f.DurationHours(), 1.0)
		for _, b := range busy {
			assert.False(t, f.Overlaps(b), "free %v overlaps busy %v", f, b)
		}
	}
}

func TestDeriveFreeIntervalsDropsShortGaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	busy := []models.TimeInterval{
		busyOn(t, day, 9, 12, ""),
		busyOn(t, day, 12, 13, ""), // back to back, no gap
		busyOn(t, day, 13, 17, ""),
	}

	free := DeriveFreeIntervals(busy, day, day.AddDate(0, 0, 1), CalendarDayStartHour, CalendarDayEndHour)
	require.Len(t, free, 1)
	assert.Equal(t, "evening", free[0].Label)
}

func TestDeriveFreeIntervalsClampsElapsedFirstDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rangeStart := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	busy := []models.TimeInterval{busyOn(t, day, 15, 16, "call")}

	free := DeriveFreeIntervals(busy, rangeStart, day.AddDate(0, 0, 1), CalendarDayStartHour, CalendarDayEndHour)
	require.Len(t, free, 2)

	// No gap from the already-elapsed morning; the day opens at the range start.
	assert.Equal(t, rangeStart, free[0].Start)
	assert.Equal(t, 15, free[0].End.Hour())
	assert.Equal(t, 16, free[1].Start.Hour())
	assert.Equal(t, 18, free[1].End.Hour())
	for _, f := range free {
		assert.False(t, f.Start.Before(rangeStart))
	}
}

func TestDeriveFreeIntervalsOpenDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	free := DeriveFreeIntervals(nil, day, day.AddDate(0, 0, 1), CalendarDayStartHour, CalendarDayEndHour)
	require.Len(t, free, 1)
	assert.InDelta(t, 9.0, free[0].DurationHours(), 1e-9)
}

func TestWorkingHoursScoreBounds(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	// Wide open week.
	assert.Equal(t, 100, WorkingHoursScore(nil, start, end, CalendarDayStartHour, CalendarDayEndHour))

	// Degenerate range with no working hours rates 100.
	assert.Equal(t, 100, WorkingHoursScore(nil, start, start, CalendarDayStartHour, CalendarDayEndHour))

	// Fully booked week rates 0 and never goes negative.
	var solid []models.TimeInterval
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		solid = append(solid, busyOn(t, d, 8, 20, "booked"))
	}
	score := WorkingHoursScore(solid, start, end, CalendarDayStartHour, CalendarDayEndHour)
	assert.Equal(t, 0, score)
}

func TestWorkingHoursScorePartialWeek(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	// 9 working hours per day, 18 total; 9 busy leaves 50%.
	busy := []models.TimeInterval{busyOn(t, start, 9, 18, "booked")}
	score := WorkingHoursScore(busy, start, end, CalendarDayStartHour, CalendarDayEndHour)
	assert.Equal(t, 50, score)
}

func TestSimulatedAvailabilityScore(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	assert.Equal(t, 100, SimulatedAvailabilityScore(nil, start, end))
	assert.Equal(t, 50, SimulatedAvailabilityScore(nil, start, start))

	// 7 days * 12h possible = 84h; 42 busy leaves 50.
	var busy []models.TimeInterval
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		busy = append(busy, busyOn(t, d, 8, 14, "work"))
	}
	assert.Equal(t, 50, SimulatedAvailabilityScore(busy, start, end))
}

func TestAnalyzeBusy(t *testing.T) {
	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)
	busy := []models.TimeInterval{
		busyOn(t, mon, 9, 11, ""),
		busyOn(t, tue, 9, 17, ""),
	}

	analysis := AnalyzeBusy(busy)
	assert.InDelta(t, 10.0, analysis.TotalBusyHours, 1e-9)
	assert.Equal(t, "2026-03-10", analysis.BusiestDay)
}

func TestTimeOfDayFor(t *testing.T) {
	assert.Equal(t, models.TimeOfDayMorning, timeOfDayFor(6))
	assert.Equal(t, models.TimeOfDayMorning, timeOfDayFor(11))
	assert.Equal(t, models.TimeOfDayAfternoon, timeOfDayFor(12))
	assert.Equal(t, models.TimeOfDayAfternoon, timeOfDayFor(16))
	assert.Equal(t, models.TimeOfDayEvening, timeOfDayFor(17))
	assert.Equal(t, models.TimeOfDayEvening, timeOfDayFor(20))
	assert.Equal(t, models.TimeOfDayNight, timeOfDayFor(21))
	assert.Equal(t, models.TimeOfDayNight, timeOfDayFor(3))
}
