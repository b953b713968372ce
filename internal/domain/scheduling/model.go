package scheduling

import (
	"time"

	"github.com/therapia/opinions/pkg/therapy"
)

// Assignment places a number of sessions on a single date.
type Assignment struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Plan is the session placement for one therapist over a referral period.
type Plan struct {
	TherapistID   string       `json:"therapist_id"`
	TherapistName string       `json:"therapist_name"`
	Therapy       therapy.Type `json:"therapy"`
	Assignments   []Assignment `json:"assignments"`
	TotalSessions int          `json:"total_sessions"`

	// Warning is set when no session could be placed; an unplaceable
	// period is reported, not treated as a failure.
	Warning string `json:"warning,omitempty"`
}

// greekWeekdays indexes Greek day names by time.Weekday.
var greekWeekdays = [7]string{
	"Κυριακή", "Δευτέρα", "Τρίτη", "Τετάρτη", "Πέμπτη", "Παρασκευή", "Σάββατο",
}

// GreekWeekday returns the Greek name of a weekday.
func GreekWeekday(d time.Weekday) string {
	return greekWeekdays[d]
}
