package referral

import (
	"time"

	"github.com/therapia/opinions/pkg/therapy"
)

// Referral is one referral line of a document: its number, the therapy it
// was issued for and its validity window.
type Referral struct {
	Number  int          `json:"number"`
	Therapy therapy.Type `json:"therapy"`
	Start   time.Time    `json:"start"`
	End     time.Time    `json:"end"`
}

// SessionCount is the approved session total for one therapy type.
type SessionCount struct {
	Therapy therapy.Type `json:"therapy"`
	Count   int          `json:"count"`
}

// Identity is the examinee identification block of a document.
type Identity struct {
	AMKA string `json:"amka"`
	Name string `json:"name"`
}

// Extraction is everything pulled out of a single referral document.
type Extraction struct {
	Identity  *Identity      `json:"identity,omitempty"`
	Sessions  []SessionCount `json:"sessions"`
	Referrals []Referral     `json:"referrals"`
}
