package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/therapia/opinions/pkg/therapy"
)

type mockRepo struct {
	roster *Roster
	saves  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{roster: NewRoster()}
}

func (m *mockRepo) Load(ctx context.Context) (*Roster, error) {
	return m.roster, nil
}

func (m *mockRepo) Save(ctx context.Context, r *Roster) error {
	m.roster = r
	m.saves++
	return nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func addTherapist(t *testing.T, svc *Service, name string, spec therapy.Type) *Therapist {
	t.Helper()
	th, err := svc.AddTherapist(context.Background(), name, spec)
	if err != nil {
		t.Fatalf("AddTherapist(%s): %v", name, err)
	}
	return th
}

func TestAddTherapist(t *testing.T) {
	svc, repo := newTestService()
	th := addTherapist(t, svc, "Μαρία Παπαδοπούλου", therapy.Speech)

	if th.ID == "" {
		t.Error("expected assigned id")
	}
	if len(repo.roster.Therapists) != 1 {
		t.Fatalf("expected 1 therapist, got %d", len(repo.roster.Therapists))
	}
}

func TestAddTherapist_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.AddTherapist(ctx, "  ", therapy.Speech); err == nil {
		t.Error("expected error for blank name")
	}
	if _, err := svc.AddTherapist(ctx, "Νίκος", therapy.Type("Βελονισμός")); err == nil {
		t.Error("expected error for unknown specialty")
	}
}

func TestAddToDay_AllowsRepeats(t *testing.T) {
	svc, repo := newTestService()
	th := addTherapist(t, svc, "Μαρία", therapy.Speech)
	ctx := context.Background()

	if err := svc.AddToDay(ctx, "monday", th.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddToDay(ctx, "monday", th.ID); err != nil {
		t.Fatal(err)
	}
	if got := len(repo.roster.Week["monday"]); got != 2 {
		t.Errorf("expected therapist twice on monday, got %d entries", got)
	}
}

func TestAddToDay_Errors(t *testing.T) {
	svc, _ := newTestService()
	th := addTherapist(t, svc, "Μαρία", therapy.Speech)
	ctx := context.Background()

	if err := svc.AddToDay(ctx, "saturday", th.ID); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("expected ErrInvalidWeekday, got %v", err)
	}
	if err := svc.AddToDay(ctx, "monday", "missing-id"); !errors.Is(err, ErrTherapistNotFound) {
		t.Errorf("expected ErrTherapistNotFound, got %v", err)
	}
}

func TestRemoveFromDay(t *testing.T) {
	svc, repo := newTestService()
	a := addTherapist(t, svc, "Μαρία", therapy.Speech)
	b := addTherapist(t, svc, "Νίκος", therapy.Occupational)
	ctx := context.Background()

	svc.AddToDay(ctx, "tuesday", a.ID)
	svc.AddToDay(ctx, "tuesday", b.ID)

	if err := svc.RemoveFromDay(ctx, "tuesday", 0); err != nil {
		t.Fatal(err)
	}
	ids := repo.roster.Week["tuesday"]
	if len(ids) != 1 || ids[0] != b.ID {
		t.Errorf("expected only second entry to remain, got %v", ids)
	}
}

func TestRemoveFromDay_OutOfRangeIsNoOp(t *testing.T) {
	svc, repo := newTestService()
	th := addTherapist(t, svc, "Μαρία", therapy.Speech)
	ctx := context.Background()
	svc.AddToDay(ctx, "monday", th.ID)
	savesBefore := repo.saves

	if err := svc.RemoveFromDay(ctx, "monday", 5); err != nil {
		t.Fatal(err)
	}
	if err := svc.RemoveFromDay(ctx, "monday", -1); err != nil {
		t.Fatal(err)
	}
	if repo.saves != savesBefore {
		t.Error("out-of-range removal must not write")
	}
	if len(repo.roster.Week["monday"]) != 1 {
		t.Errorf("expected monday untouched, got %v", repo.roster.Week["monday"])
	}
}

func TestDeleteTherapist_RemovesEverywhereAtomically(t *testing.T) {
	svc, repo := newTestService()
	a := addTherapist(t, svc, "Μαρία", therapy.Speech)
	b := addTherapist(t, svc, "Νίκος", therapy.Occupational)
	ctx := context.Background()

	svc.AddToDay(ctx, "monday", a.ID)
	svc.AddToDay(ctx, "monday", b.ID)
	svc.AddToDay(ctx, "wednesday", a.ID)
	svc.AddToDay(ctx, "wednesday", a.ID)
	savesBefore := repo.saves

	if err := svc.DeleteTherapist(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if repo.saves != savesBefore+1 {
		t.Errorf("expected a single write, got %d", repo.saves-savesBefore)
	}
	if len(repo.roster.Therapists) != 1 || repo.roster.Therapists[0].ID != b.ID {
		t.Errorf("expected only second therapist to remain, got %v", repo.roster.Therapists)
	}
	for _, day := range Weekdays {
		for _, id := range repo.roster.Week[day] {
			if id == a.ID {
				t.Errorf("deleted therapist still scheduled on %s", day)
			}
		}
	}
	if len(repo.roster.Week["monday"]) != 1 {
		t.Errorf("expected one entry left on monday, got %v", repo.roster.Week["monday"])
	}
}

func TestDeleteTherapist_NotFound(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.DeleteTherapist(context.Background(), "missing"); !errors.Is(err, ErrTherapistNotFound) {
		t.Errorf("expected ErrTherapistNotFound, got %v", err)
	}
}

func TestWorkingDaysFor(t *testing.T) {
	svc, _ := newTestService()
	th := addTherapist(t, svc, "Μαρία", therapy.Speech)
	ctx := context.Background()

	svc.AddToDay(ctx, "friday", th.ID)
	svc.AddToDay(ctx, "monday", th.ID)
	svc.AddToDay(ctx, "monday", th.ID)

	days, err := svc.WorkingDaysFor(ctx, th.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Weekday{time.Monday, time.Friday}
	if len(days) != len(want) {
		t.Fatalf("expected %v, got %v", want, days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("expected %v, got %v", want, days)
		}
	}
}

func TestTherapistsBySpecialty(t *testing.T) {
	svc, _ := newTestService()
	addTherapist(t, svc, "Μαρία", therapy.Speech)
	addTherapist(t, svc, "Νίκος", therapy.Occupational)
	addTherapist(t, svc, "Ελένη", therapy.Speech)

	got, err := svc.TherapistsBySpecialty(context.Background(), therapy.Speech)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 speech therapists, got %d", len(got))
	}
}
