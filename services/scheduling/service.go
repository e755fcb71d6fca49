package scheduling

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"gatherly/models"
	"gatherly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Defaults applied when the caller leaves the knobs unset.
const (
	DefaultDateRangeDays  = 14
	DefaultMaxSuggestions = 5
)

// DefaultSchedulingService is the production scheduler. Collaborators are
// injected; a nil Calendar or Weather simply disables that data source, and a
// nil Reasoner means rule-based reasoning.
type DefaultSchedulingService struct {
	Calendar CalendarService
	Weather  WeatherService
	Reasoner ReasoningStrategy

	// Rand seeds the per-call simulation sources. Nil means time-seeded;
	// tests inject a fixed seed for reproducible simulation.
	Rand *rand.Rand

	// Clock overrides time.Now for tests.
	Clock func() time.Time

	mu sync.Mutex
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// rng returns a fresh source for one simulation, seeded from the shared
// source under the lock. The shared source is never drawn from outside the
// lock, so concurrent calls simulate independently.
func (s *DefaultSchedulingService) rng() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(s.Rand.Int63()))
}

func (s *DefaultSchedulingService) reasoner() ReasoningStrategy {
	if s.Reasoner != nil {
		return s.Reasoner
	}
	return &RuleReasoner{}
}

// SuggestOptimalTimes computes ranked meeting-time suggestions: gather
// availability, optionally fetch weather, generate candidates, score, rank,
// explain, truncate to maxSuggestions. It is the error boundary for the whole
// subsystem and never panics through to the caller.
func (s *DefaultSchedulingService) SuggestOptimalTimes(ctx context.Context, activity models.ActivityContext,
	participants []models.Participant, dateRangeDays, maxSuggestions int) (resp *models.SuggestionResponse) {
	logger := utils.GetLogger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("suggestion pipeline failed", zap.Any("recover", r))
			resp = &models.SuggestionResponse{
				Success:     false,
				Error:       fmt.Sprintf("%v", r),
				Suggestions: []models.ScoredSlot{},
				Fallback:    true,
			}
		}
	}()

	if dateRangeDays <= 0 {
		dateRangeDays = DefaultDateRangeDays
	}
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}

	start := s.now()
	end := start.AddDate(0, 0, dateRangeDays)

	group := s.gatherAvailability(ctx, participants, start, end)

	var forecast *models.ForecastBundle
	if activity.WeatherPreference == models.WeatherPreferenceOutdoor && s.Weather != nil && activity.Location != nil {
		fb, err := s.Weather.GetWeatherForecast(ctx, activity.Location.Latitude, activity.Location.Longitude, dateRangeDays)
		if err != nil {
			logger.Warn("weather forecast unavailable, scoring weather as neutral", zap.Error(err))
		} else {
			forecast = fb
		}
	}

	candidates := s.generateCandidates(group, dateRangeDays)

	scored := make([]models.ScoredSlot, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, ScoreSlot(candidate, activity, group, forecast))
	}

	// Stable sort keeps generation order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}

	reasoner := s.reasoner()
	scored = reasoner.Explain(ctx, scored, activity, group, forecast)

	return &models.SuggestionResponse{
		Success:               true,
		Suggestions:           scored,
		ParticipantsAnalyzed:  len(participants),
		CalendarDataAvailable: group.CalendarDataAvailable,
		WeatherConsidered:     forecast != nil,
		Metadata: &models.SuggestionMetadata{
			RequestID:           uuid.New().String(),
			GeneratedAt:         s.now(),
			DateRangeDays:       dateRangeDays,
			CandidatesEvaluated: len(candidates),
			ReasoningMode:       reasoner.Mode(),
		},
	}
}
