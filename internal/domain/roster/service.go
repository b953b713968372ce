package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/therapia/opinions/pkg/therapy"
)

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrInvalidWeekday    = errors.New("invalid weekday")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Roster returns the full staffing document.
func (s *Service) Roster(ctx context.Context) (*Roster, error) {
	return s.repo.Load(ctx)
}

// AddTherapist registers a new therapist and returns it with its assigned id.
func (s *Service) AddTherapist(ctx context.Context, name string, specialty therapy.Type) (*Therapist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !specialty.Valid() {
		return nil, fmt.Errorf("invalid specialty: %s", specialty)
	}

	r, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	t := Therapist{ID: uuid.New().String(), Name: name, Specialty: specialty}
	r.Therapists = append(r.Therapists, t)
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTherapist removes a therapist from the staff list and from every
// weekday in one write, so no schedule ever references a missing therapist.
func (s *Service) DeleteTherapist(ctx context.Context, id string) error {
	r, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if r.therapistByID(id) == nil {
		return ErrTherapistNotFound
	}

	kept := r.Therapists[:0]
	for _, t := range r.Therapists {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.Therapists = kept

	for _, day := range Weekdays {
		ids := r.Week[day][:0]
		for _, tid := range r.Week[day] {
			if tid != id {
				ids = append(ids, tid)
			}
		}
		r.Week[day] = ids
	}

	return s.repo.Save(ctx, r)
}

// AddToDay appends a therapist to a weekday's ordered list. The same
// therapist may be added to a day more than once.
func (s *Service) AddToDay(ctx context.Context, day, therapistID string) error {
	if !ValidWeekday(day) {
		return ErrInvalidWeekday
	}
	r, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if r.therapistByID(therapistID) == nil {
		return ErrTherapistNotFound
	}
	r.Week[day] = append(r.Week[day], therapistID)
	return s.repo.Save(ctx, r)
}

// RemoveFromDay deletes the entry at the given position of a weekday's
// list. An out-of-range index leaves the roster untouched.
func (s *Service) RemoveFromDay(ctx context.Context, day string, index int) error {
	if !ValidWeekday(day) {
		return ErrInvalidWeekday
	}
	r, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	ids := r.Week[day]
	if index < 0 || index >= len(ids) {
		return nil
	}
	r.Week[day] = append(ids[:index], ids[index+1:]...)
	return s.repo.Save(ctx, r)
}

// WorkingDaysFor lists the weekdays on which the therapist is scheduled,
// in week order and without repeats.
func (s *Service) WorkingDaysFor(ctx context.Context, therapistID string) ([]time.Weekday, error) {
	r, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if r.therapistByID(therapistID) == nil {
		return nil, ErrTherapistNotFound
	}

	var days []time.Weekday
	for _, day := range Weekdays {
		for _, tid := range r.Week[day] {
			if tid == therapistID {
				days = append(days, weekdayIndex[day])
				break
			}
		}
	}
	return days, nil
}

// TherapistsBySpecialty returns the staff members qualified for the therapy type.
func (s *Service) TherapistsBySpecialty(ctx context.Context, specialty therapy.Type) ([]Therapist, error) {
	r, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []Therapist
	for _, t := range r.Therapists {
		if t.Specialty == specialty {
			out = append(out, t)
		}
	}
	return out, nil
}
