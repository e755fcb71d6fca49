package models

import "time"

// Activity type values used by the slot scorer's time-of-day tables.
const (
	ActivityDining   = "dining"
	ActivityDrinks   = "drinks"
	ActivityOutdoor  = "outdoor"
	ActivitySports   = "sports"
	ActivityCultural = "cultural"
	ActivitySocial   = "social"
)

// Weather preference values.
const (
	WeatherPreferenceOutdoor = "outdoor"
	WeatherPreferenceIndoor  = "indoor"
	WeatherPreferenceEither  = "either"
)

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// ActivityContext carries the activity attributes the scheduler reads.
// It is supplied by the caller and never mutated.
type ActivityContext struct {
	Title             string    `bson:"title" json:"title"`
	ActivityType      string    `bson:"activity_type" json:"activity_type"`
	WeatherPreference string    `bson:"weather_preference" json:"weather_preference"`
	Location          *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
}

// ActivityDocument is the persisted activity record the suggest-times route can
// resolve by id when the caller does not inline the activity.
type ActivityDocument struct {
	ID           string          `bson:"id" json:"id"`
	OrganizerID  string          `bson:"organizer_id,omitempty" json:"organizer_id,omitempty"`
	Context      ActivityContext `bson:"context" json:"context"`
	Participants []Participant   `bson:"participants" json:"participants"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
}
