package models

// AvailabilityAnalysis summarizes a participant's busy load over the range.
type AvailabilityAnalysis struct {
	TotalBusyHours float64 `json:"total_busy_hours"`
	BusiestDay     string  `json:"busiest_day"`
}

// DetailedAvailability is what the calendar collaborator returns for one
// connected calendar over a date range.
type DetailedAvailability struct {
	BusySlots         []TimeInterval       `json:"busy_slots"`
	FreeSlots         []TimeInterval       `json:"free_slots"`
	Suggestions       []string             `json:"suggestions"`
	AvailabilityScore int                  `json:"availability_score"`
	Analysis          AvailabilityAnalysis `json:"analysis"`
}

// AvailabilitySummary is the per-participant availability picture built fresh
// on each scheduling call. Simulated summaries carry plausible generated data
// and are treated identically to calendar-backed ones downstream.
type AvailabilitySummary struct {
	ParticipantName   string               `json:"participant_name"`
	ParticipantEmail  string               `json:"participant_email"`
	HasCalendarData   bool                 `json:"has_calendar_data"`
	Simulated         bool                 `json:"simulated"`
	BusyIntervals     []TimeInterval       `json:"busy_intervals"`
	FreeIntervals     []TimeInterval       `json:"free_intervals"`
	AvailabilityScore int                  `json:"availability_score"`
	Suggestions       []string             `json:"suggestions"`
	Analysis          AvailabilityAnalysis `json:"analysis"`
}

// GroupAvailability aggregates all participant summaries for one call.
type GroupAvailability struct {
	Summaries    []AvailabilitySummary `json:"summaries"`
	CombinedBusy []TimeInterval        `json:"combined_busy"`

	// CalendarDataAvailable is true only when a live calendar query succeeded
	// for the organizer; simulated data does not set it.
	CalendarDataAvailable bool `json:"calendar_data_available"`
}

// Organizer returns the organizer's summary, or nil when no participants were
// supplied.
func (g *GroupAvailability) Organizer() *AvailabilitySummary {
	if len(g.Summaries) == 0 {
		return nil
	}
	return &g.Summaries[0]
}
