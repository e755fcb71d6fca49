package scheduling

import (
	"time"

	"gatherly/models"
)

// maxCandidates bounds how many windows the scorer evaluates per call.
const maxCandidates = 40

// Popular-slot catalog hours: {start, end} pairs per day type.
var (
	weekdayPopularHours = [][2]int{{12, 14}, {18, 20}, {19, 21}}
	weekendPopularHours = [][2]int{{10, 12}, {12, 14}, {14, 16}, {16, 18}, {18, 20}}
)

const popularCatalogDays = 14

// generateCandidates produces the candidate windows to score: the organizer's
// free intervals when any exist (calendar-backed or simulated), otherwise the
// popular-slot catalog. May legitimately return an empty list.
func (s *DefaultSchedulingService) generateCandidates(group *models.GroupAvailability, maxDays int) []models.CandidateSlot {
	org := group.Organizer()
	if org != nil && len(org.FreeIntervals) > 0 {
		candidates := make([]models.CandidateSlot, 0, len(org.FreeIntervals))
		for _, free := range org.FreeIntervals {
			if len(candidates) >= maxCandidates {
				break
			}
			candidates = append(candidates, models.CandidateSlot{
				TimeInterval: free,
				TimeOfDay:    timeOfDayFor(free.Start.Hour()),
			})
		}
		return candidates
	}

	return s.popularSlotCatalog(maxDays)
}

// popularSlotCatalog generates the fixed fallback catalog: slots over the next
// two weeks, skipping Mondays, with more options on weekends.
func (s *DefaultSchedulingService) popularSlotCatalog(maxDays int) []models.CandidateSlot {
	days := popularCatalogDays
	if maxDays > 0 && maxDays < days {
		days = maxDays
	}

	var catalog []models.CandidateSlot
	now := s.now()

	for offset := 1; offset <= days; offset++ {
		day := dayStart(now).AddDate(0, 0, offset)
		wd := day.Weekday()
		if wd == time.Monday {
			continue
		}

		hours := weekdayPopularHours
		if wd == time.Saturday || wd == time.Sunday {
			hours = weekendPopularHours
		}

		for _, h := range hours {
			if len(catalog) >= maxCandidates {
				return catalog
			}
			iv, err := models.NewTimeInterval(
				time.Date(day.Year(), day.Month(), day.Day(), h[0], 0, 0, 0, day.Location()),
				time.Date(day.Year(), day.Month(), day.Day(), h[1], 0, 0, 0, day.Location()),
				"popular",
			)
			if err != nil {
				continue
			}
			catalog = append(catalog, models.CandidateSlot{
				TimeInterval:  iv,
				TimeOfDay:     timeOfDayFor(h[0]),
				IsPopularSlot: true,
			})
		}
	}

	return catalog
}
