package models

import (
	"fmt"
	"time"
)

// TimeInterval represents a half-open [Start, End) busy or free window.
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
	Label string    `bson:"label,omitempty" json:"label,omitempty"`
}

// NewTimeInterval builds an interval, enforcing Start < End.
func NewTimeInterval(start, end time.Time, label string) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("invalid interval: start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end, Label: label}, nil
}

// Overlaps reports whether two half-open intervals intersect.
func (ti TimeInterval) Overlaps(other TimeInterval) bool {
	return ti.Start.Before(other.End) && other.Start.Before(ti.End)
}

// DurationHours returns the interval length in hours.
func (ti TimeInterval) DurationHours() float64 {
	return ti.End.Sub(ti.Start).Hours()
}

// Date returns the interval's start date formatted as "2006-01-02".
func (ti TimeInterval) Date() string {
	return ti.Start.Format("2006-01-02")
}
