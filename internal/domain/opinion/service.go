package opinion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	opinions Repository
}

func NewService(opinions Repository) *Service {
	return &Service{opinions: opinions}
}

func validate(o *Opinion) error {
	if strings.TrimSpace(o.FirstName) == "" || strings.TrimSpace(o.LastName) == "" {
		return fmt.Errorf("first and last name are required")
	}
	if o.StartDate.IsZero() || o.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if o.StartDate.After(o.EndDate) {
		return fmt.Errorf("start date after end date")
	}
	if strings.TrimSpace(o.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	for name, v := range map[string]*int{
		"logo": o.Logo, "ergo": o.Ergo, "psycho": o.Psycho, "mp": o.MP, "eid": o.Eid,
	} {
		if v == nil {
			return fmt.Errorf("session count %s is required", name)
		}
		if *v < 0 {
			return fmt.Errorf("session count %s must not be negative", name)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, o *Opinion) error {
	if err := validate(o); err != nil {
		return err
	}
	return s.opinions.Create(ctx, o)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Opinion, error) {
	return s.opinions.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, o *Opinion) error {
	if err := validate(o); err != nil {
		return err
	}
	return s.opinions.Update(ctx, o)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.opinions.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Opinion, int, error) {
	return s.opinions.List(ctx, limit, offset)
}

// Expiring lists opinions whose end date falls within windowDays from
// today, already-expired records included, soonest first.
func (s *Service) Expiring(ctx context.Context, today time.Time, windowDays int) ([]*Opinion, error) {
	if windowDays < 0 {
		return nil, fmt.Errorf("window must not be negative")
	}
	return s.opinions.ListExpiringBy(ctx, today.AddDate(0, 0, windowDays))
}

// NameForAMKA resolves the stored child name for an AMKA. It satisfies the
// lookup the referral extractor performs on upload.
func (s *Service) NameForAMKA(ctx context.Context, amka string) (string, bool, error) {
	o, err := s.opinions.GetByChildAMKA(ctx, amka)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return o.FullName(), true, nil
}
