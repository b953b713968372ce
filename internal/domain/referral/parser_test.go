package referral

import (
	"testing"
	"time"

	"github.com/therapia/opinions/pkg/therapy"
)

func TestParse_Identity(t *testing.T) {
	text := "Α.Μ.Κ.Α. Εξεταζόμενου   12019803344 : : ΠΑΠΑΔΟΠΟΥΛΟΣ ΓΕΩΡΓΙΟΣ Ονομ/μο Εξεταζόμενου"

	got := Parse(text)
	if got.Identity == nil {
		t.Fatal("expected identity")
	}
	if got.Identity.AMKA != "12019803344" {
		t.Errorf("amka = %q", got.Identity.AMKA)
	}
	if got.Identity.Name != "ΠΑΠΑΔΟΠΟΥΛΟΣ ΓΕΩΡΓΙΟΣ" {
		t.Errorf("name = %q", got.Identity.Name)
	}
}

func TestParse_NoIdentity(t *testing.T) {
	got := Parse("some unrelated text")
	if got.Identity != nil {
		t.Errorf("expected nil identity, got %+v", got.Identity)
	}
}

func TestParse_SessionCounts(t *testing.T) {
	text := `ΛΟΓΟΘΕΡΑΠΕΙΑ
κωδικός 0101 Συνολική Ποσότητα Είδους: 8
ΕΡΓΟΘΕΡΑΠΕΙΑ
κωδικός 0102 Συνολική Ποσότητα Είδους: 12
ΘΕΡΑΠΕΙΑ ΣΥΜΠΕΡΙΦΟΡΑΣ
κωδικός 0103 Συνολική Ποσότητα Είδους: 0`

	got := Parse(text)
	if len(got.Sessions) != 2 {
		t.Fatalf("expected 2 session counts (zero dropped), got %d: %+v", len(got.Sessions), got.Sessions)
	}
	if got.Sessions[0].Therapy != therapy.Speech || got.Sessions[0].Count != 8 {
		t.Errorf("first = %+v", got.Sessions[0])
	}
	if got.Sessions[1].Therapy != therapy.Occupational || got.Sessions[1].Count != 12 {
		t.Errorf("second = %+v", got.Sessions[1])
	}
}

func TestParse_ReferralsBindToFollowingTherapy(t *testing.T) {
	text := `Αριθμοί Μηνιαίων Παραπεμπτικών ανά Είδος Θεραπειών
1 με διάρκεια ισχύος από 01/01/2024 έως 31/01/2024
2 με διάρκεια ισχύος από 01/02/2024 έως 29/02/2024
ΛΟΓΟΘΕΡΑΠΕΙΑ
3 με διάρκεια ισχύος από 01/01/2024 έως 31/01/2024
ΕΡΓΟΘΕΡΑΠΕΙΑ`

	got := Parse(text)
	if len(got.Referrals) != 3 {
		t.Fatalf("expected 3 referrals, got %d: %+v", len(got.Referrals), got.Referrals)
	}
	if got.Referrals[0].Therapy != therapy.Speech || got.Referrals[0].Number != 1 {
		t.Errorf("first = %+v", got.Referrals[0])
	}
	if got.Referrals[1].Therapy != therapy.Speech || got.Referrals[1].Number != 2 {
		t.Errorf("second = %+v", got.Referrals[1])
	}
	if got.Referrals[2].Therapy != therapy.Occupational || got.Referrals[2].Number != 3 {
		t.Errorf("third = %+v", got.Referrals[2])
	}

	wantStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Referrals[1].Start.Equal(wantStart) {
		t.Errorf("second start = %s", got.Referrals[1].Start)
	}
	wantEnd := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Referrals[1].End.Equal(wantEnd) {
		t.Errorf("second end = %s", got.Referrals[1].End)
	}
}

func TestParse_TrailingReferralsDropped(t *testing.T) {
	text := `ΛΟΓΟΘΕΡΑΠΕΙΑ
4 με διάρκεια ισχύος από 01/03/2024 έως 31/03/2024`

	got := Parse(text)
	if len(got.Referrals) != 0 {
		t.Errorf("referrals with no following therapy heading must be dropped, got %+v", got.Referrals)
	}
}

func TestParse_SpeechTherapyAlternateHeading(t *testing.T) {
	text := `5 με διάρκεια ισχύος από 01/04/2024 έως 30/04/2024
ΑΓΩΓΗ ΛΟΓΟΥ - ΛΟΓΟΘΕΡΑΠΕΙΑ`

	got := Parse(text)
	if len(got.Referrals) != 1 {
		t.Fatalf("expected 1 referral, got %d", len(got.Referrals))
	}
	if got.Referrals[0].Therapy != therapy.Speech {
		t.Errorf("expected speech therapy, got %s", got.Referrals[0].Therapy)
	}
}

func TestParse_CombinedHeadingNotSplit(t *testing.T) {
	text := `6 με διάρκεια ισχύος από 01/05/2024 έως 31/05/2024
ΕΙΔΙΚΗ ΑΓΩΓΗ/ΦΥΣΙΚΟΘΕΡΑΠΕΙΑ`

	got := Parse(text)
	if len(got.Referrals) != 1 {
		t.Fatalf("expected 1 referral, got %d", len(got.Referrals))
	}
	if got.Referrals[0].Therapy != therapy.SpecialPhysio {
		t.Errorf("expected combined category, got %s", got.Referrals[0].Therapy)
	}
}

func TestParse_UnparsableDatesDropped(t *testing.T) {
	text := `7 με διάρκεια ισχύος από 99/99/2024 έως 31/05/2024
ΛΟΓΟΘΕΡΑΠΕΙΑ`

	got := Parse(text)
	if len(got.Referrals) != 0 {
		t.Errorf("expected malformed referral to be dropped, got %+v", got.Referrals)
	}
}

func TestParse_SingleDigitDates(t *testing.T) {
	text := `8 με διάρκεια ισχύος από 1/6/2024 έως 30/6/2024
ΕΡΓΟΘΕΡΑΠΕΙΑ`

	got := Parse(text)
	if len(got.Referrals) != 1 {
		t.Fatalf("expected 1 referral, got %d", len(got.Referrals))
	}
	want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !got.Referrals[0].Start.Equal(want) {
		t.Errorf("start = %s", got.Referrals[0].Start)
	}
}

func TestParse_EmptyText(t *testing.T) {
	got := Parse("")
	if got.Identity != nil || len(got.Sessions) != 0 || len(got.Referrals) != 0 {
		t.Errorf("expected empty extraction, got %+v", got)
	}
}
