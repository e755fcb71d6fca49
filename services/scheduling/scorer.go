package scheduling

import (
	"math"
	"strings"
	"time"

	"gatherly/models"
)

// Scoring constants. The factor budget is intentionally additive and
// unnormalized (availability <=45, weather <=25, time <=20, day <=18);
// confidence derives from the raw sum as min(score/100, 1).
const (
	availabilityNoDataScore = 25.0
	availabilityWeight      = 40.0
	availabilityFullBonus   = 5.0
	weatherNeutralScore     = 15.0
	timePreferenceDefault   = 8.0
)

// timePreferenceTables maps activity type -> time of day -> points.
var timePreferenceTables = map[string]map[string]float64{
	models.ActivityDining: {
		models.TimeOfDayEvening:   15,
		models.TimeOfDayAfternoon: 10,
		models.TimeOfDayMorning:   5,
	},
	models.ActivityDrinks: {
		models.TimeOfDayEvening:   20,
		models.TimeOfDayAfternoon: 8,
		models.TimeOfDayMorning:   2,
	},
	models.ActivityOutdoor: {
		models.TimeOfDayAfternoon: 18,
		models.TimeOfDayMorning:   15,
		models.TimeOfDayEvening:   12,
	},
	models.ActivitySports: {
		models.TimeOfDayMorning:   18,
		models.TimeOfDayAfternoon: 15,
		models.TimeOfDayEvening:   10,
	},
	models.ActivityCultural: {
		models.TimeOfDayAfternoon: 15,
		models.TimeOfDayMorning:   12,
		models.TimeOfDayEvening:   8,
	},
	models.ActivitySocial: {
		models.TimeOfDayEvening:   15,
		models.TimeOfDayAfternoon: 12,
		models.TimeOfDayMorning:   8,
	},
}

var defaultTimePreference = map[string]float64{
	models.TimeOfDayMorning:   10,
	models.TimeOfDayAfternoon: 12,
	models.TimeOfDayEvening:   15,
}

var dayPreference = map[time.Weekday]float64{
	time.Monday:    8,
	time.Tuesday:   10,
	time.Wednesday: 12,
	time.Thursday:  13,
	time.Friday:    15,
	time.Saturday:  18,
	time.Sunday:    16,
}

// ScoreSlot computes the weighted multi-factor score of one candidate slot.
// It is fully deterministic for identical inputs.
func ScoreSlot(slot models.CandidateSlot, activity models.ActivityContext, group *models.GroupAvailability, forecast *models.ForecastBundle) models.ScoredSlot {
	breakdown := models.ScoreBreakdown{
		Availability:   availabilityPoints(slot, group),
		Weather:        weatherPoints(slot, activity, forecast),
		TimePreference: timePreferencePoints(slot.TimeOfDay, activity.ActivityType),
		DayPreference:  dayPreference[slot.Start.Weekday()],
	}
	score := breakdown.Availability + breakdown.Weather + breakdown.TimePreference + breakdown.DayPreference

	return models.ScoredSlot{
		CandidateSlot:   slot,
		Score:           score,
		ScoreBreakdown:  breakdown,
		ConfidenceScore: math.Min(score/100, 1.0),
	}
}

// availabilityPoints rates how many calendar-backed participants are free for
// the slot. With no calendar data at all, the factor is a flat neutral value.
func availabilityPoints(slot models.CandidateSlot, group *models.GroupAvailability) float64 {
	var withData, free int
	for _, summary := range group.Summaries {
		if !summary.HasCalendarData {
			continue
		}
		withData++
		conflict := false
		for _, busy := range summary.BusyIntervals {
			if slot.Overlaps(busy) {
				conflict = true
				break
			}
		}
		if !conflict {
			free++
		}
	}

	if withData == 0 {
		return availabilityNoDataScore
	}

	freeFraction := float64(free) / float64(withData)
	points := freeFraction * availabilityWeight
	if freeFraction == 1.0 {
		points += availabilityFullBonus
	}
	return points
}

// weatherPoints rates the slot's forecast for outdoor activities. Indoor and
// either-preference activities, and slots with no forecast, score neutral.
func weatherPoints(slot models.CandidateSlot, activity models.ActivityContext, forecast *models.ForecastBundle) float64 {
	if activity.WeatherPreference != models.WeatherPreferenceOutdoor {
		return weatherNeutralScore
	}
	daily, ok := forecast.ForDate(slot.Date())
	if !ok {
		return weatherNeutralScore
	}
	return temperaturePoints(daily.TemperatureMax) +
		precipitationPoints(daily.PrecipitationProbability) +
		descriptionPoints(daily.WeatherDescription)
}

func temperaturePoints(tempMax float64) float64 {
	switch {
	case tempMax >= 18 && tempMax <= 24:
		return 10
	case tempMax >= 15 && tempMax <= 27:
		return 8
	case tempMax >= 10 && tempMax <= 30:
		return 5
	default:
		return 2
	}
}

func precipitationPoints(probability int) float64 {
	switch {
	case probability <= 10:
		return 10
	case probability <= 30:
		return 8
	case probability <= 50:
		return 5
	case probability <= 70:
		return 2
	default:
		return 0
	}
}

func descriptionPoints(description string) float64 {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "clear") || strings.Contains(desc, "sunny"):
		return 5
	case strings.Contains(desc, "partly cloudy"):
		return 4
	case strings.Contains(desc, "cloudy") || strings.Contains(desc, "overcast"):
		return 2
	case strings.Contains(desc, "light rain") || strings.Contains(desc, "drizzle"):
		return 1
	default:
		return 0
	}
}

func timePreferencePoints(timeOfDay, activityType string) float64 {
	table, known := timePreferenceTables[strings.ToLower(activityType)]
	if !known {
		table = defaultTimePreference
	}
	if points, ok := table[timeOfDay]; ok {
		return points
	}
	return timePreferenceDefault
}
