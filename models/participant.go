package models

import "encoding/json"

// Participant is one invitee of a planned activity. The first participant in a
// request is treated as the organizer and is the only one whose calendar is
// ever queried.
type Participant struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`

	// CalendarCredentials is an opaque stored OAuth token blob; nil means the
	// participant has not connected a calendar.
	CalendarCredentials json.RawMessage `bson:"google_calendar_credentials,omitempty" json:"google_calendar_credentials,omitempty"`
}

// HasCalendar reports whether the participant has connected a calendar.
func (p Participant) HasCalendar() bool {
	return len(p.CalendarCredentials) > 0
}
