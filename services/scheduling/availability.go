package scheduling

import (
	"context"
	"time"

	"gatherly/models"
	"gatherly/utils"

	"go.uber.org/zap"
)

// gatherAvailability builds the per-participant availability picture for one
// scheduling call. Only the organizer (first participant) is ever queried
// against a live calendar; everyone else contributes headcount only. This is
// the single-participant availability model: a known limitation carried over
// deliberately rather than a fan-out across all attendees.
//
// Calendar failures are downgraded, never returned: an organizer whose
// connected calendar cannot be queried gets a simulated week instead.
func (s *DefaultSchedulingService) gatherAvailability(ctx context.Context, participants []models.Participant, start, end time.Time) *models.GroupAvailability {
	logger := utils.GetLogger()
	group := &models.GroupAvailability{}

	for i, p := range participants {
		if i > 0 {
			group.Summaries = append(group.Summaries, models.AvailabilitySummary{
				ParticipantName:   p.Name,
				ParticipantEmail:  p.Email,
				AvailabilityScore: 50,
				Suggestions:       []string{"No calendar connected; counted toward group size only"},
			})
			continue
		}
		group.Summaries = append(group.Summaries, s.organizerSummary(ctx, p, start, end, logger))
	}

	if org := group.Organizer(); org != nil {
		group.CombinedBusy = append(group.CombinedBusy, org.BusyIntervals...)
		group.CalendarDataAvailable = org.HasCalendarData && !org.Simulated
	}

	return group
}

func (s *DefaultSchedulingService) organizerSummary(ctx context.Context, p models.Participant, start, end time.Time, logger *zap.Logger) models.AvailabilitySummary {
	summary := models.AvailabilitySummary{
		ParticipantName:  p.Name,
		ParticipantEmail: p.Email,
	}

	if !p.HasCalendar() {
		summary.AvailabilityScore = 50
		summary.Suggestions = []string{"No calendar connected; popular times will be suggested"}
		return summary
	}

	if s.Calendar != nil && s.Calendar.IsEnabled() {
		detailed, err := s.Calendar.GetDetailedAvailability(ctx, p.CalendarCredentials, start, end)
		if err == nil {
			summary.HasCalendarData = true
			summary.BusyIntervals = detailed.BusySlots
			summary.FreeIntervals = detailed.FreeSlots
			summary.Suggestions = detailed.Suggestions
			summary.AvailabilityScore = detailed.AvailabilityScore
			summary.Analysis = detailed.Analysis
			return summary
		}
		logger.Warn("calendar lookup failed, using simulated availability",
			zap.String("participant", p.Email), zap.Error(err))
	} else {
		logger.Warn("calendar collaborator disabled, using simulated availability",
			zap.String("participant", p.Email))
	}

	busy := simulateBusyWeek(s.rng(), start, end)
	summary.HasCalendarData = true
	summary.Simulated = true
	summary.BusyIntervals = busy
	summary.FreeIntervals = DeriveFreeIntervals(busy, start, end, SimulatedDayStartHour, SimulatedDayEndHour)
	summary.AvailabilityScore = SimulatedAvailabilityScore(busy, start, end)
	summary.Suggestions = AvailabilitySuggestions(summary.FreeIntervals, summary.AvailabilityScore)
	summary.Analysis = AnalyzeBusy(busy)
	return summary
}
