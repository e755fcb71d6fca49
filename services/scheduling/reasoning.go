package scheduling

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"gatherly/models"
)

// Score thresholds framing the recommendation strength.
const (
	scoreHighlyRecommended = 80.0
	scoreGoodOption        = 60.0
)

// RuleReasoner is the deterministic reasoning path. It synthesizes the
// justification for each slot from rule-based fragments and needs no external
// collaborator; the AI-assisted path falls back to it on any failure.
type RuleReasoner struct{}

func (r *RuleReasoner) Mode() string { return "rule" }

// Explain annotates every slot with reasoning, key factors, considerations
// and confidence.
func (r *RuleReasoner) Explain(_ context.Context, slots []models.ScoredSlot, activity models.ActivityContext,
	group *models.GroupAvailability, forecast *models.ForecastBundle) []models.ScoredSlot {
	out := make([]models.ScoredSlot, len(slots))
	for i, slot := range slots {
		out[i] = r.explainSlot(slot, activity, group, forecast)
	}
	return out
}

func (r *RuleReasoner) explainSlot(slot models.ScoredSlot, activity models.ActivityContext,
	group *models.GroupAvailability, forecast *models.ForecastBundle) models.ScoredSlot {
	var fragments, factors []string
	var considerations []string

	if group != nil && group.CalendarDataAvailable {
		fragments = append(fragments, "it fits the organizer's open calendar time")
		factors = append(factors, "calendar_availability")
	} else if slot.IsPopularSlot {
		fragments = append(fragments, "it falls in a generally popular time window")
		factors = append(factors, "popular_time")
	} else {
		fragments = append(fragments, "it matches the organizer's projected free time")
		factors = append(factors, "projected_availability")
	}

	if daily, ok := forecast.ForDate(slot.Date()); ok {
		if daily.PrecipitationProbability <= 30 && daily.TemperatureMax >= 15 {
			fragments = append(fragments, fmt.Sprintf("the forecast looks favorable (%s, %.0f°C)",
				daily.WeatherDescription, daily.TemperatureMax))
			factors = append(factors, "good_weather")
		}
		if daily.PrecipitationProbability > 60 {
			considerations = append(considerations, fmt.Sprintf("%d%% chance of rain that day",
				daily.PrecipitationProbability))
			factors = append(factors, "weather_risk")
		}
	}

	fragments = append(fragments, timeOfDayFragment(slot.TimeOfDay, activity.ActivityType))
	factors = append(factors, "time_of_day")

	switch slot.Start.Weekday() {
	case time.Saturday, time.Sunday:
		fragments = append(fragments, "it lands on the weekend")
		factors = append(factors, "weekend")
	case time.Friday:
		fragments = append(fragments, "the end-of-week timing suits social plans")
		factors = append(factors, "friday")
	}

	slot.Reasoning = fmt.Sprintf("%s %s is %s: %s.",
		slot.Start.Weekday(), slot.TimeOfDay, framing(slot.Score), strings.Join(fragments, ", and "))
	slot.KeyFactors = factors
	slot.Considerations = strings.Join(considerations, "; ")
	slot.ConfidenceScore = math.Min(slot.Score/100, 1.0)
	return slot
}

func framing(score float64) string {
	switch {
	case score >= scoreHighlyRecommended:
		return "highly recommended"
	case score >= scoreGoodOption:
		return "a good option"
	default:
		return "a workable choice"
	}
}

func timeOfDayFragment(timeOfDay, activityType string) string {
	switch timeOfDay {
	case models.TimeOfDayMorning:
		if activityType == models.ActivitySports || activityType == models.ActivityOutdoor {
			return "the morning start leaves the whole day open"
		}
		return "the morning slot keeps the rest of the day free"
	case models.TimeOfDayAfternoon:
		return "the afternoon window is easy for most people to make"
	case models.TimeOfDayEvening:
		if activityType == models.ActivityDining || activityType == models.ActivityDrinks {
			return fmt.Sprintf("evenings are prime time for %s", activityType)
		}
		return "the evening hour works around typical workdays"
	default:
		return "the late hour suits night owls"
	}
}
