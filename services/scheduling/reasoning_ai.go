package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gatherly/models"
	"gatherly/utils"

	"go.uber.org/zap"
)

// AIReasoner asks the text-generation collaborator to justify the ranked
// slots. Any failure, from the network call to JSON parsing, falls back hard
// to the deterministic rule path so every slot is still annotated.
type AIReasoner struct {
	Gen      TextGenerator
	Fallback *RuleReasoner
}

func (r *AIReasoner) Mode() string { return "ai" }

type aiSlotReasoning struct {
	SlotIndex      int      `json:"slot_index"`
	Reasoning      string   `json:"reasoning"`
	KeyFactors     []string `json:"key_factors"`
	Considerations string   `json:"considerations"`
}

func (r *AIReasoner) Explain(ctx context.Context, slots []models.ScoredSlot, activity models.ActivityContext,
	group *models.GroupAvailability, forecast *models.ForecastBundle) []models.ScoredSlot {
	logger := utils.GetLogger()
	fallback := r.fallback()

	if r.Gen == nil || len(slots) == 0 {
		return fallback.Explain(ctx, slots, activity, group, forecast)
	}

	raw, err := r.Gen.GenerateContent(ctx, buildReasoningPrompt(slots, activity, group, forecast))
	if err != nil {
		logger.Warn("reasoning generation failed, using rule-based reasoning", zap.Error(err))
		return fallback.Explain(ctx, slots, activity, group, forecast)
	}

	parsed, err := parseReasoningArray(raw)
	if err != nil {
		logger.Warn("reasoning response not parseable, using rule-based reasoning", zap.Error(err))
		return fallback.Explain(ctx, slots, activity, group, forecast)
	}

	// Start from the rule path so slots the model skipped still carry a full
	// annotation, then merge AI output by slot index.
	out := fallback.Explain(ctx, slots, activity, group, forecast)
	for _, item := range parsed {
		if item.SlotIndex < 0 || item.SlotIndex >= len(out) || item.Reasoning == "" {
			continue
		}
		out[item.SlotIndex].Reasoning = item.Reasoning
		if len(item.KeyFactors) > 0 {
			out[item.SlotIndex].KeyFactors = item.KeyFactors
		}
		if item.Considerations != "" {
			out[item.SlotIndex].Considerations = item.Considerations
		}
	}
	return out
}

func (r *AIReasoner) fallback() *RuleReasoner {
	if r.Fallback != nil {
		return r.Fallback
	}
	return &RuleReasoner{}
}

func buildReasoningPrompt(slots []models.ScoredSlot, activity models.ActivityContext,
	group *models.GroupAvailability, forecast *models.ForecastBundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You help plan group activities. Activity: %q (type: %s, weather preference: %s).\n",
		activity.Title, activity.ActivityType, activity.WeatherPreference)
	if group != nil {
		fmt.Fprintf(&sb, "Participants: %d (calendar data available: %t).\n",
			len(group.Summaries), group.CalendarDataAvailable)
	}
	if forecast != nil && len(forecast.Forecasts) > 0 {
		sb.WriteString("Forecast by date:\n")
		for _, f := range forecast.Forecasts {
			fmt.Fprintf(&sb, "- %s: %s, max %.0f°C, %d%% precipitation\n",
				f.Date, f.WeatherDescription, f.TemperatureMax, f.PrecipitationProbability)
		}
	}

	sb.WriteString("Candidate slots, ranked:\n")
	for i, s := range slots {
		fmt.Fprintf(&sb, "%d. %s %s (%s, score %.1f)\n",
			i, s.Start.Format("Mon Jan 2 15:04"), s.End.Format("15:04"), s.TimeOfDay, s.Score)
	}

	sb.WriteString("\nRespond with only a JSON array, one object per slot: " +
		`[{"slot_index": 0, "reasoning": "...", "key_factors": ["..."], "considerations": "..."}]`)
	return sb.String()
}

// parseReasoningArray extracts the first JSON array from the model's output.
func parseReasoningArray(raw string) ([]aiSlotReasoning, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var parsed []aiSlotReasoning
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("decode reasoning array: %w", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("empty reasoning array")
	}
	return parsed, nil
}
