package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/therapia/opinions/internal/domain/calendar"
	"github.com/therapia/opinions/internal/domain/roster"
	"github.com/therapia/opinions/pkg/therapy"
)

// warnNoWorkingDates flags a plan whose period holds no eligible date.
const warnNoWorkingDates = "Δεν υπάρχουν εργάσιμες ημέρες στην περίοδο"

type Service struct {
	roster   *roster.Service
	calendar *calendar.Service
}

func NewService(rosterSvc *roster.Service, calendarSvc *calendar.Service) *Service {
	return &Service{roster: rosterSvc, calendar: calendarSvc}
}

// WorkingDates lists, in order, every date in [from, to] on which the
// therapist works and the center is open.
func (s *Service) WorkingDates(ctx context.Context, therapistID string, from, to time.Time) ([]time.Time, error) {
	days, err := s.roster.WorkingDaysFor(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	working := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		working[d] = true
	}

	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !working[d.Weekday()] {
			continue
		}
		closed, err := s.calendar.IsNonWorking(ctx, d)
		if err != nil {
			return nil, err
		}
		if !closed {
			out = append(out, d)
		}
	}
	return out, nil
}

// PlanSessions distributes a referral's sessions over the therapist's
// working dates in the referral period.
func (s *Service) PlanSessions(ctx context.Context, therapistID string, t therapy.Type, sessions int, from, to time.Time) (*Plan, error) {
	if sessions <= 0 {
		return nil, fmt.Errorf("sessions must be positive")
	}
	if to.Before(from) {
		return nil, fmt.Errorf("period end before start")
	}

	r, err := s.roster.Roster(ctx)
	if err != nil {
		return nil, err
	}
	var name string
	for _, th := range r.Therapists {
		if th.ID == therapistID {
			name = th.Name
			break
		}
	}
	if name == "" {
		return nil, roster.ErrTherapistNotFound
	}

	dates, err := s.WorkingDates(ctx, therapistID, from, to)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		TherapistID:   therapistID,
		TherapistName: name,
		Therapy:       t,
		TotalSessions: sessions,
	}
	if len(dates) == 0 {
		plan.Warning = warnNoWorkingDates
		return plan, nil
	}
	plan.Assignments = Distribute(dates, sessions)
	return plan, nil
}
