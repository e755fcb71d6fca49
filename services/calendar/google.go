package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gatherly/models"
	"gatherly/services/scheduling"
	"gatherly/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService implements the scheduler's calendar collaborator on
// top of the Google Calendar FreeBusy API. Participant credentials are stored
// OAuth tokens; the app credentials come from a service config file.
type GoogleCalendarService struct {
	credentialsFile string
	oauthConfig     *oauth2.Config
}

var _ scheduling.CalendarService = (*GoogleCalendarService)(nil)

// NewGoogleCalendarService loads the OAuth app config. An empty path returns
// a disabled service rather than an error.
func NewGoogleCalendarService(credentialsFile string) *GoogleCalendarService {
	svc := &GoogleCalendarService{credentialsFile: credentialsFile}
	if credentialsFile == "" {
		return svc
	}

	logger := utils.GetLogger()
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		logger.Warn("calendar credentials unreadable, calendar lookups disabled",
			zap.String("path", credentialsFile), zap.Error(err))
		return &GoogleCalendarService{}
	}
	cfg, err := google.ConfigFromJSON(raw, gcal.CalendarReadonlyScope)
	if err != nil {
		logger.Warn("calendar credentials invalid, calendar lookups disabled", zap.Error(err))
		return &GoogleCalendarService{}
	}
	svc.oauthConfig = cfg
	return svc
}

func (s *GoogleCalendarService) IsEnabled() bool {
	return s.oauthConfig != nil
}

// GetDetailedAvailability queries the organizer's primary calendar for busy
// periods and derives the working-hours free picture from them.
func (s *GoogleCalendarService) GetDetailedAvailability(ctx context.Context, credentials json.RawMessage,
	start, end time.Time) (*models.DetailedAvailability, error) {
	if !s.IsEnabled() {
		return nil, fmt.Errorf("calendar service is disabled")
	}

	var token oauth2.Token
	if err := json.Unmarshal(credentials, &token); err != nil {
		return nil, fmt.Errorf("decode calendar credentials: %w", err)
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(s.oauthConfig.Client(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}

	resp, err := svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: "primary"}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query: %w", err)
	}

	var busy []models.TimeInterval
	for _, cal := range resp.Calendars {
		for _, period := range cal.Busy {
			iv, err := parseBusyPeriod(period)
			if err != nil {
				utils.GetLogger().Warn("skipping malformed busy period", zap.Error(err))
				continue
			}
			busy = append(busy, iv)
		}
	}

	free := scheduling.DeriveFreeIntervals(busy, start, end,
		scheduling.CalendarDayStartHour, scheduling.CalendarDayEndHour)
	score := scheduling.WorkingHoursScore(busy, start, end,
		scheduling.CalendarDayStartHour, scheduling.CalendarDayEndHour)

	return &models.DetailedAvailability{
		BusySlots:         busy,
		FreeSlots:         free,
		Suggestions:       scheduling.AvailabilitySuggestions(free, score),
		AvailabilityScore: score,
		Analysis:          scheduling.AnalyzeBusy(busy),
	}, nil
}

func parseBusyPeriod(period *gcal.TimePeriod) (models.TimeInterval, error) {
	start, err := time.Parse(time.RFC3339, period.Start)
	if err != nil {
		return models.TimeInterval{}, fmt.Errorf("busy period start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, period.End)
	if err != nil {
		return models.TimeInterval{}, fmt.Errorf("busy period end: %w", err)
	}
	return models.NewTimeInterval(start, end, "busy")
}
