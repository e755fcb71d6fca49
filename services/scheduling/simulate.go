package scheduling

import (
	"fmt"
	"math/rand"
	"time"

	"gatherly/models"
)

// simulateBusyWeek generates a plausible set of busy intervals for a
// participant without usable calendar data: weekday work blocks with slightly
// varying hours, occasional evening commitments, and occasional weekend
// activities. The rand source is injected so callers control reproducibility.
func simulateBusyWeek(rng *rand.Rand, rangeStart, rangeEnd time.Time) []models.TimeInterval {
	var busy []models.TimeInterval

	for d := dayStart(rangeStart); d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()

		if wd >= time.Monday && wd <= time.Friday {
			workStart := 8 + rng.Intn(3)  // 8-10am
			workEnd := 17 + rng.Intn(3)   // 5-7pm
			busy = append(busy, mustInterval(d, workStart, workEnd, "Work"))

			// 30% chance of an evening commitment of 1-3 hours.
			if rng.Float64() < 0.3 {
				evStart := 19
				evEnd := evStart + 1 + rng.Intn(3)
				busy = append(busy, mustInterval(d, evStart, evEnd, "Evening commitment"))
			}
			continue
		}

		// 40% chance of a weekend activity block.
		if rng.Float64() < 0.4 {
			actStart := 10 + rng.Intn(6) // 10am-3pm
			actEnd := actStart + 2 + rng.Intn(3)
			busy = append(busy, mustInterval(d, actStart, actEnd, "Weekend plans"))
		}
	}

	return busy
}

func mustInterval(day time.Time, startHour, endHour int, label string) models.TimeInterval {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location())
	iv, err := models.NewTimeInterval(start, end, label)
	if err != nil {
		panic(fmt.Sprintf("simulated interval out of order: %v", err))
	}
	return iv
}
