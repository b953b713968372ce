package calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

const isoDate = "2006-01-02"

var (
	ErrClosureExists = errors.New("closure already exists")
)

type Service struct {
	closures ClosureRepository
}

func NewService(closures ClosureRepository) *Service {
	return &Service{closures: closures}
}

// Closures returns the stored closure dates sorted ascending.
func (s *Service) Closures(ctx context.Context) ([]string, error) {
	dates, err := s.closures.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(dates)
	return dates, nil
}

// AddClosure records a new closure date. Adding a date that is already
// present is rejected.
func (s *Service) AddClosure(ctx context.Context, date string) error {
	if _, err := time.Parse(isoDate, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	dates, err := s.closures.Load(ctx)
	if err != nil {
		return err
	}
	for _, d := range dates {
		if d == date {
			return ErrClosureExists
		}
	}
	dates = append(dates, date)
	sort.Strings(dates)
	return s.closures.Save(ctx, dates)
}

// RemoveClosure deletes a closure date. Removing an absent date is a no-op.
func (s *Service) RemoveClosure(ctx context.Context, date string) error {
	dates, err := s.closures.Load(ctx)
	if err != nil {
		return err
	}
	kept := dates[:0]
	for _, d := range dates {
		if d != date {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(dates) {
		return nil
	}
	return s.closures.Save(ctx, kept)
}

// IsClosure reports whether the date is a recorded closure.
func (s *Service) IsClosure(ctx context.Context, date time.Time) (bool, error) {
	dates, err := s.closures.Load(ctx)
	if err != nil {
		return false, err
	}
	key := date.Format(isoDate)
	for _, d := range dates {
		if d == key {
			return true, nil
		}
	}
	return false, nil
}

// IsNonWorking reports whether the center is closed on the date: weekends,
// public holidays and recorded closures all count.
func (s *Service) IsNonWorking(ctx context.Context, date time.Time) (bool, error) {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true, nil
	}
	if IsPublicHoliday(date) {
		return true, nil
	}
	return s.IsClosure(ctx, date)
}

// NonWorkingDaysIn lists every non-working date in the closed range [from, to].
func (s *Service) NonWorkingDaysIn(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		closed, err := s.IsNonWorking(ctx, d)
		if err != nil {
			return nil, err
		}
		if closed {
			out = append(out, d)
		}
	}
	return out, nil
}
