package roster

import (
	"time"

	"github.com/therapia/opinions/pkg/therapy"
)

// Weekdays lists the center's working days in week order. Weekend columns
// do not exist: sessions are never scheduled on them.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

var weekdayIndex = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
}

// Therapist is a member of the center's staff.
type Therapist struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Specialty therapy.Type `json:"specialty"`
}

// Roster is the whole staffing document: the therapist list plus an
// ordered assignment of therapists to each working day. A therapist may
// appear more than once on the same day.
type Roster struct {
	Therapists []Therapist         `json:"therapists"`
	Week       map[string][]string `json:"week"`
}

// NewRoster returns an empty roster with every weekday present.
func NewRoster() *Roster {
	week := make(map[string][]string, len(Weekdays))
	for _, d := range Weekdays {
		week[d] = []string{}
	}
	return &Roster{Therapists: []Therapist{}, Week: week}
}

// ValidWeekday reports whether day names one of the center's working days.
func ValidWeekday(day string) bool {
	_, ok := weekdayIndex[day]
	return ok
}

func (r *Roster) therapistByID(id string) *Therapist {
	for i := range r.Therapists {
		if r.Therapists[i].ID == id {
			return &r.Therapists[i]
		}
	}
	return nil
}
