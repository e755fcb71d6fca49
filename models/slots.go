package models

import "time"

// Time-of-day buckets derived from a slot's starting hour.
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
	TimeOfDayNight     = "night"
)

// CandidateSlot is one meeting-time window under evaluation.
type CandidateSlot struct {
	TimeInterval

	TimeOfDay string `json:"time_of_day"`

	// IsPopularSlot marks catalog-generated fallback slots, as opposed to
	// windows derived from the organizer's actual free time.
	IsPopularSlot bool `json:"is_popular_slot"`
}

// ScoreBreakdown records the per-factor contributions to a slot's score.
type ScoreBreakdown struct {
	Availability   float64 `json:"availability"`
	Weather        float64 `json:"weather"`
	TimePreference float64 `json:"time_preference"`
	DayPreference  float64 `json:"day_preference"`
}

// ScoredSlot is a candidate slot with its score and explanation. Score is the
// raw additive sum of the factor points and is intentionally not normalized;
// confidence derives from it as min(score/100, 1).
type ScoredSlot struct {
	CandidateSlot

	Score           float64        `json:"score"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
	Reasoning       string         `json:"reasoning"`
	KeyFactors      []string       `json:"key_factors"`
	Considerations  string         `json:"considerations,omitempty"`
	ConfidenceScore float64        `json:"confidence_score"`
}

// SuggestionMetadata describes how a suggestion set was produced.
type SuggestionMetadata struct {
	RequestID           string    `json:"request_id"`
	GeneratedAt         time.Time `json:"generated_at"`
	DateRangeDays       int       `json:"date_range_days"`
	CandidatesEvaluated int       `json:"candidates_evaluated"`
	ReasoningMode       string    `json:"reasoning_mode"`
}

// SuggestionResponse is the scheduling service's response envelope, returned
// verbatim as JSON by the route layer.
type SuggestionResponse struct {
	Success               bool                `json:"success"`
	Suggestions           []ScoredSlot        `json:"suggestions"`
	ParticipantsAnalyzed  int                 `json:"participants_analyzed"`
	CalendarDataAvailable bool                `json:"calendar_data_available"`
	WeatherConsidered     bool                `json:"weather_considered"`
	Metadata              *SuggestionMetadata `json:"metadata,omitempty"`
	Error                 string              `json:"error,omitempty"`
	Fallback              bool                `json:"fallback,omitempty"`
}
