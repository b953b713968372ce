package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/therapia/opinions/internal/domain/calendar"
)

// certDate is the date layout used on certificates.
const certDate = "02/01/2006"

// CertificateRequest carries the attestation header fields together with
// the plans whose sessions the certificate lists.
type CertificateRequest struct {
	ReceiptNumber string `json:"receipt_number"`
	ParentName    string `json:"parent_name"`
	ParentAMKA    string `json:"parent_amka"`
	OpinionNumber string `json:"opinion_number"`
	StudentName   string `json:"student_name"`
	StudentAMKA   string `json:"student_amka"`
	PeriodStart   string `json:"period_start"` // DD/MM/YYYY
	PeriodEnd     string `json:"period_end"`   // DD/MM/YYYY
	Plans         []Plan `json:"plans"`
}

// NonWorkingDay is a closed date inside the certificate period.
type NonWorkingDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Reason  string `json:"reason"`
}

// Certificate is the rendered attestation payload.
type Certificate struct {
	ReceiptNumber  string          `json:"receipt_number"`
	ParentName     string          `json:"parent_name"`
	ParentAMKA     string          `json:"parent_amka"`
	OpinionNumber  string          `json:"opinion_number"`
	StudentName    string          `json:"student_name"`
	StudentAMKA    string          `json:"student_amka"`
	PeriodStart    string          `json:"period_start"`
	PeriodEnd      string          `json:"period_end"`
	SessionList    string          `json:"session_list"`
	NonWorkingDays []NonWorkingDay `json:"non_working_days"`
}

// BuildCertificate assembles the attestation payload: the session list
// grouped per therapy and therapist, plus every holiday and closure that
// falls inside the period.
func (s *Service) BuildCertificate(ctx context.Context, req CertificateRequest) (*Certificate, error) {
	start, err := time.Parse(certDate, req.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("invalid period start %q: expected DD/MM/YYYY", req.PeriodStart)
	}
	end, err := time.Parse(certDate, req.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid period end %q: expected DD/MM/YYYY", req.PeriodEnd)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("period end before start")
	}

	nonWorking, err := s.nonWorkingInPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &Certificate{
		ReceiptNumber:  req.ReceiptNumber,
		ParentName:     req.ParentName,
		ParentAMKA:     req.ParentAMKA,
		OpinionNumber:  req.OpinionNumber,
		StudentName:    req.StudentName,
		StudentAMKA:    req.StudentAMKA,
		PeriodStart:    req.PeriodStart,
		PeriodEnd:      req.PeriodEnd,
		SessionList:    formatSessionList(req.Plans),
		NonWorkingDays: nonWorking,
	}, nil
}

// formatSessionList renders every plan as a block of the form
// "N Θεραπείες <therapy>" followed by the session dates, one blank line
// between groups. Dates on which more than one session is planned repeat.
func formatSessionList(plans []Plan) string {
	type group struct {
		therapy string
		dates   []string
	}
	var order []string
	groups := map[string]*group{}

	for _, p := range plans {
		key := string(p.Therapy) + " - " + p.TherapistName
		g, ok := groups[key]
		if !ok {
			g = &group{therapy: string(p.Therapy)}
			groups[key] = g
			order = append(order, key)
		}
		for _, a := range p.Assignments {
			for i := 0; i < a.Count; i++ {
				g.dates = append(g.dates, a.Date.Format(certDate))
			}
		}
	}

	blocks := make([]string, 0, len(order))
	for _, key := range order {
		g := groups[key]
		blocks = append(blocks, fmt.Sprintf("%d Θεραπείες %s\nΗμερομηνίες θεραπείας: %s",
			len(g.dates), g.therapy, strings.Join(g.dates, ", ")))
	}
	return strings.Join(blocks, "\n\n")
}

// nonWorkingInPeriod lists holidays and closures inside [start, end].
// Weekends are not reported: the certificate only explains dates that
// would otherwise look like working days.
func (s *Service) nonWorkingInPeriod(ctx context.Context, start, end time.Time) ([]NonWorkingDay, error) {
	out := []NonWorkingDay{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if calendar.IsPublicHoliday(d) {
			out = append(out, NonWorkingDay{
				Date:    d.Format(certDate),
				Weekday: GreekWeekday(d.Weekday()),
				Reason:  "Αργία",
			})
			continue
		}
		closed, err := s.calendar.IsClosure(ctx, d)
		if err != nil {
			return nil, err
		}
		if closed {
			out = append(out, NonWorkingDay{
				Date:    d.Format(certDate),
				Weekday: GreekWeekday(d.Weekday()),
				Reason:  "Μη εργάσιμη ημέρα",
			})
		}
	}
	return out, nil
}
