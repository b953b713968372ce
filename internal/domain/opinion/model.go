package opinion

import (
	"time"

	"github.com/google/uuid"
)

// Opinion is one γνωμάτευση record: the child's approved therapy program
// for a validity period, plus the contact and portal details the office
// needs to renew it.
type Opinion struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	ChildAMKA  string `json:"child_amka,omitempty"`
	ParentAMKA string `json:"parent_amka,omitempty"`
	Phone      string `json:"phone"`

	OpinionCode  string `json:"opinion_code,omitempty"`
	OpinionValue string `json:"opinion_value,omitempty"`

	TaxisUsername string `json:"taxis_username,omitempty"`
	TaxisPassword string `json:"taxis_password,omitempty"`

	// Weekly session counts per therapy category.
	Logo   *int `json:"logo"`
	Ergo   *int `json:"ergo"`
	Psycho *int `json:"psycho"`
	MP     *int `json:"mp"`
	Eid    *int `json:"eid"`

	Comments string `json:"comments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the record's display name, surname first.
func (o *Opinion) FullName() string {
	return o.LastName + " " + o.FirstName
}

// SessionSum totals the weekly session counts across categories.
func (o *Opinion) SessionSum() int {
	sum := 0
	for _, v := range []*int{o.Logo, o.Ergo, o.Psycho, o.MP, o.Eid} {
		if v != nil {
			sum += *v
		}
	}
	return sum
}

// ExpiresWithin reports whether the opinion's end date falls on or before
// the cutoff. Records that have already expired count as well.
func (o *Opinion) ExpiresWithin(today time.Time, windowDays int) bool {
	cutoff := today.AddDate(0, 0, windowDays)
	return !o.EndDate.After(cutoff)
}
