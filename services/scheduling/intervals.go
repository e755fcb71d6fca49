package scheduling

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gatherly/models"
)

// Working-hour windows used when deriving free gaps from busy intervals.
const (
	CalendarDayStartHour  = 9
	CalendarDayEndHour    = 18
	SimulatedDayStartHour = 8
	SimulatedDayEndHour   = 22
)

// minGapHours is the smallest free gap worth surfacing as plannable time.
const minGapHours = 1.0

// Free-gap position labels within a day.
const (
	gapLabelMorning = "morning"
	gapLabelBetween = "between_events"
	gapLabelEvening = "evening"
)

// DeriveFreeIntervals walks each day of [rangeStart, rangeEnd) and emits the
// working-hours gaps around the day's busy intervals: the gap before the first
// busy block, gaps of at least an hour between consecutive blocks, and the gap
// after the last block.
func DeriveFreeIntervals(busy []models.TimeInterval, rangeStart, rangeEnd time.Time, dayStartHour, dayEndHour int) []models.TimeInterval {
	var free []models.TimeInterval

	for d := dayStart(rangeStart); d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
		windowStart := time.Date(d.Year(), d.Month(), d.Day(), dayStartHour, 0, 0, 0, d.Location())
		windowEnd := time.Date(d.Year(), d.Month(), d.Day(), dayEndHour, 0, 0, 0, d.Location())

		// The first day's window starts no earlier than the range itself, so
		// already-elapsed hours are never offered as free time.
		if windowStart.Before(rangeStart) {
			windowStart = rangeStart
		}

		dayBusy := clipToWindow(busy, windowStart, windowEnd)
		sort.Slice(dayBusy, func(i, j int) bool { return dayBusy[i].Start.Before(dayBusy[j].Start) })

		if len(dayBusy) == 0 {
			appendGap(&free, windowStart, windowEnd, gapLabelMorning)
			continue
		}

		appendGap(&free, windowStart, dayBusy[0].Start, gapLabelMorning)
		cursor := dayBusy[0].End
		for _, b := range dayBusy[1:] {
			appendGap(&free, cursor, b.Start, gapLabelBetween)
			if b.End.After(cursor) {
				cursor = b.End
			}
		}
		appendGap(&free, cursor, windowEnd, gapLabelEvening)
	}

	return free
}

func appendGap(free *[]models.TimeInterval, start, end time.Time, label string) {
	if end.Sub(start).Hours() < minGapHours {
		return
	}
	gap, err := models.NewTimeInterval(start, end, label)
	if err != nil {
		return
	}
	*free = append(*free, gap)
}

// clipToWindow keeps the portions of busy intervals falling inside the window.
func clipToWindow(busy []models.TimeInterval, windowStart, windowEnd time.Time) []models.TimeInterval {
	var clipped []models.TimeInterval
	for _, b := range busy {
		s, e := b.Start, b.End
		if s.Before(windowStart) {
			s = windowStart
		}
		if e.After(windowEnd) {
			e = windowEnd
		}
		if s.Before(e) {
			clipped = append(clipped, models.TimeInterval{Start: s, End: e, Label: b.Label})
		}
	}
	return clipped
}

// WorkingHoursScore rates availability 0-100 as the free share of working
// hours over the range. A degenerate range with no working hours rates 100.
func WorkingHoursScore(busy []models.TimeInterval, rangeStart, rangeEnd time.Time, dayStartHour, dayEndHour int) int {
	var workingTotal, busyTotal float64

	for d := dayStart(rangeStart); d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
		windowStart := time.Date(d.Year(), d.Month(), d.Day(), dayStartHour, 0, 0, 0, d.Location())
		windowEnd := time.Date(d.Year(), d.Month(), d.Day(), dayEndHour, 0, 0, 0, d.Location())
		workingTotal += windowEnd.Sub(windowStart).Hours()
		for _, b := range clipToWindow(busy, windowStart, windowEnd) {
			busyTotal += b.DurationHours()
		}
	}

	if workingTotal <= 0 {
		return 100
	}
	return clampScore(math.Round(100 * (workingTotal - busyTotal) / workingTotal))
}

// SimulatedAvailabilityScore applies the looser simulated-data heuristic,
// assuming 12 plannable hours per day.
func SimulatedAvailabilityScore(busy []models.TimeInterval, rangeStart, rangeEnd time.Time) int {
	days := int(dayStart(rangeEnd).Sub(dayStart(rangeStart)).Hours() / 24)
	totalPossible := float64(days) * 12
	if totalPossible <= 0 {
		return 50
	}
	var busyTotal float64
	for _, b := range busy {
		busyTotal += b.DurationHours()
	}
	return clampScore(math.Round((totalPossible - busyTotal) / totalPossible * 100))
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

// AnalyzeBusy totals busy hours and finds the busiest day of the range.
func AnalyzeBusy(busy []models.TimeInterval) models.AvailabilityAnalysis {
	perDay := make(map[string]float64)
	var total float64
	for _, b := range busy {
		perDay[b.Date()] += b.DurationHours()
		total += b.DurationHours()
	}

	var busiest string
	var busiestHours float64
	for date, hours := range perDay {
		if hours > busiestHours || (hours == busiestHours && (busiest == "" || date < busiest)) {
			busiest, busiestHours = date, hours
		}
	}

	return models.AvailabilityAnalysis{TotalBusyHours: total, BusiestDay: busiest}
}

// AvailabilitySuggestions produces short human-readable notes about a
// participant's free time.
func AvailabilitySuggestions(free []models.TimeInterval, score int) []string {
	var suggestions []string

	switch {
	case score >= 70:
		suggestions = append(suggestions, "Schedule looks mostly open across the range")
	case score >= 40:
		suggestions = append(suggestions, "Moderately busy; longer gaps are the safest picks")
	default:
		suggestions = append(suggestions, "Heavily booked; expect limited options")
	}

	var evenings, weekends int
	for _, f := range free {
		if f.Label == gapLabelEvening {
			evenings++
		}
		if wd := f.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekends++
		}
	}
	if evenings >= 3 {
		suggestions = append(suggestions, fmt.Sprintf("%d evenings are free after work hours", evenings))
	}
	if weekends > 0 {
		suggestions = append(suggestions, "Weekend time is available")
	}

	return suggestions
}

// timeOfDayFor buckets a starting hour into a time-of-day label.
func timeOfDayFor(hour int) string {
	switch {
	case hour >= 6 && hour <= 11:
		return models.TimeOfDayMorning
	case hour >= 12 && hour <= 16:
		return models.TimeOfDayAfternoon
	case hour >= 17 && hour <= 20:
		return models.TimeOfDayEvening
	default:
		return models.TimeOfDayNight
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
