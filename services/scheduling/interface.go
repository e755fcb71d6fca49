package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"gatherly/models"
)

// SchedulingService computes ranked meeting-time suggestions for an activity.
type SchedulingService interface {
	SuggestOptimalTimes(ctx context.Context, activity models.ActivityContext,
		participants []models.Participant, dateRangeDays, maxSuggestions int) *models.SuggestionResponse
}

// CalendarService is the calendar collaborator. Failures and disabled state
// are downgraded by the availability engine, never propagated.
type CalendarService interface {
	IsEnabled() bool
	GetDetailedAvailability(ctx context.Context, credentials json.RawMessage,
		start, end time.Time) (*models.DetailedAvailability, error)
}

// WeatherService is the weather collaborator, consulted only for outdoor
// activities with a known location.
type WeatherService interface {
	GetWeatherForecast(ctx context.Context, lat, lon float64, days int) (*models.ForecastBundle, error)
}

// TextGenerator is the optional text-generation collaborator backing
// AI-assisted reasoning.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ReasoningStrategy attaches reasoning, key factors and considerations to a
// scored slot list. Implementations must annotate every slot.
type ReasoningStrategy interface {
	Explain(ctx context.Context, slots []models.ScoredSlot, activity models.ActivityContext,
		group *models.GroupAvailability, forecast *models.ForecastBundle) []models.ScoredSlot
	Mode() string
}
