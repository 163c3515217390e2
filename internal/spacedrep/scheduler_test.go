package spacedrep

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestReview_FirstReviewDueAtLeastOneDayOut(t *testing.T) {
	s := NewScheduler(Config{})
	for _, rating := range []Rating{Again, Hard, Good, Easy} {
		card := NewCard("u1", "loops", testNow)
		next, err := s.Review(card, rating, testNow)
		if err != nil {
			t.Fatalf("%s: %v", rating, err)
		}
		if next.Due.Before(testNow.Add(24 * time.Hour)) {
			t.Errorf("%s: due %s, want >= one day after review", rating, next.Due)
		}
		if next.Reps != 1 {
			t.Errorf("%s: reps = %d, want 1", rating, next.Reps)
		}
		if next.LastReview == nil || !next.LastReview.Equal(testNow) {
			t.Errorf("%s: last review not recorded", rating)
		}
	}
}

func TestReview_FirstRatingOrdersStability(t *testing.T) {
	s := NewScheduler(Config{})
	var prev float64
	for _, rating := range []Rating{Again, Hard, Good, Easy} {
		next, err := s.Review(NewCard("u1", "loops", testNow), rating, testNow)
		if err != nil {
			t.Fatalf("%s: %v", rating, err)
		}
		if next.Stability <= prev {
			t.Errorf("%s: stability %.2f not above previous rating's %.2f", rating, next.Stability, prev)
		}
		prev = next.Stability
	}
}

func TestReview_GoodGrowsInterval(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "recursion", testNow)

	card, err := s.Review(card, Good, testNow)
	if err != nil {
		t.Fatal(err)
	}
	first := card.ScheduledDays

	// Answer Good each time the card comes due; intervals must grow.
	now := testNow
	for i := 0; i < 5; i++ {
		now = card.Due
		card, err = s.Review(card, Good, now)
		if err != nil {
			t.Fatal(err)
		}
		if card.ScheduledDays <= first {
			t.Fatalf("review %d: interval %.2f did not grow past %.2f", i+1, card.ScheduledDays, first)
		}
		first = card.ScheduledDays
	}
	if card.State != Review {
		t.Errorf("state = %s, want review", card.State)
	}
}

func TestReview_AgainLapsesAndShrinksStability(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "dicts", testNow)

	card, _ = s.Review(card, Good, testNow)
	card, _ = s.Review(card, Good, card.Due)
	before := card.Stability

	card, err := s.Review(card, Again, card.Due)
	if err != nil {
		t.Fatal(err)
	}
	if card.Lapses != 1 {
		t.Errorf("lapses = %d, want 1", card.Lapses)
	}
	if card.State != Relearning {
		t.Errorf("state = %s, want relearning", card.State)
	}
	if card.Stability >= before {
		t.Errorf("stability %.2f did not shrink from %.2f", card.Stability, before)
	}
}

func TestReview_LapseLosesMoreAtLowRetrievability(t *testing.T) {
	s := NewScheduler(Config{})
	base := NewCard("u1", "scope", testNow)
	base, _ = s.Review(base, Good, testNow)
	base, _ = s.Review(base, Good, base.Due)

	// Fail on time versus fail long overdue: the overdue failure had
	// lower retrievability and must end with less stability.
	onTime, _ := s.Review(base, Again, base.Due)
	late, _ := s.Review(base, Again, base.Due.Add(60*24*time.Hour))
	if late.Stability >= onTime.Stability {
		t.Errorf("late lapse stability %.3f should be below on-time %.3f", late.Stability, onTime.Stability)
	}
}

func TestReview_RepeatedAgainFloorsStability(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "decorators", testNow)

	now := testNow
	var err error
	for i := 0; i < 10; i++ {
		card, err = s.Review(card, Again, now)
		if err != nil {
			t.Fatal(err)
		}
		if card.Stability < s.cfg.MinStability {
			t.Fatalf("review %d: stability %.4f fell below floor %.4f", i+1, card.Stability, s.cfg.MinStability)
		}
		if !card.Due.After(now) {
			t.Fatalf("review %d: due %s not after review time", i+1, card.Due)
		}
		now = card.Due
	}
	// The first review seeds the card; each of the nine repeat failures
	// is a lapse, whether or not the card ever graduated.
	if card.Lapses != 9 {
		t.Errorf("lapses = %d, want 9", card.Lapses)
	}
}

func TestReview_EveryAgainCountsALapse(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "closures", testNow)
	card, _ = s.Review(card, Good, testNow)
	card, _ = s.Review(card, Good, card.Due)

	var err error
	for i := 1; i <= 3; i++ {
		card, err = s.Review(card, Again, card.Due)
		if err != nil {
			t.Fatal(err)
		}
		if card.Lapses != i {
			t.Fatalf("again %d: lapses = %d, want %d", i, card.Lapses, i)
		}
	}
	if card.State != Relearning {
		t.Errorf("state = %s, want relearning", card.State)
	}
}

func TestReview_RelearningRecovers(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "generators", testNow)
	card, _ = s.Review(card, Good, testNow)
	card, _ = s.Review(card, Again, card.Due)

	card, err := s.Review(card, Good, card.Due)
	if err != nil {
		t.Fatal(err)
	}
	if card.State != Review {
		t.Errorf("state = %s, want review after recovering", card.State)
	}
}

func TestReview_EasyBeatsHard(t *testing.T) {
	s := NewScheduler(Config{})
	base := NewCard("u1", "classes", testNow)
	base, _ = s.Review(base, Good, testNow)

	easy, _ := s.Review(base, Easy, base.Due)
	hard, _ := s.Review(base, Hard, base.Due)
	if easy.ScheduledDays <= hard.ScheduledDays {
		t.Errorf("easy interval %.2f should exceed hard %.2f", easy.ScheduledDays, hard.ScheduledDays)
	}
	if easy.Difficulty >= hard.Difficulty {
		t.Errorf("easy difficulty %.2f should be below hard %.2f", easy.Difficulty, hard.Difficulty)
	}
}

func TestReview_IntervalCapped(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScheduler(cfg)
	card := NewCard("u1", "variables", testNow)

	var err error
	now := testNow
	for i := 0; i < 30; i++ {
		card, err = s.Review(card, Easy, now)
		if err != nil {
			t.Fatal(err)
		}
		if card.ScheduledDays > cfg.MaxIntervalDays {
			t.Fatalf("interval %.1f exceeds cap %.1f", card.ScheduledDays, cfg.MaxIntervalDays)
		}
		now = card.Due
	}
}

func TestReview_InvalidRating(t *testing.T) {
	s := NewScheduler(Config{})
	_, err := s.Review(NewCard("u1", "loops", testNow), Rating(9), testNow)
	if !errors.Is(err, ErrInvalidRating) {
		t.Errorf("got %v, want ErrInvalidRating", err)
	}
}

func TestReview_DoesNotMutateInput(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "loops", testNow)
	card, _ = s.Review(card, Good, testNow)
	saved := card

	if _, err := s.Review(card, Again, card.Due); err != nil {
		t.Fatal(err)
	}
	if card.Stability != saved.Stability || card.Reps != saved.Reps {
		t.Error("Review mutated its input card")
	}
}

func TestRetrievability(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "loops", testNow)
	if got := s.Retrievability(card, testNow); got != 0 {
		t.Errorf("new card retrievability = %.3f, want 0", got)
	}

	card, _ = s.Review(card, Good, testNow)
	// At exactly one stability's worth of elapsed time, recall is 90%.
	at := testNow.Add(time.Duration(card.Stability * 24 * float64(time.Hour)))
	if got := s.Retrievability(card, at); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("retrievability at stability = %.6f, want 0.9", got)
	}
	if got := s.Retrievability(card, testNow); math.Abs(got-1) > 1e-9 {
		t.Errorf("retrievability at review time = %.6f, want 1", got)
	}
}

func TestDue_FilterAndOrder(t *testing.T) {
	cards := []Card{
		{SkillID: "b", Due: testNow.Add(-2 * time.Hour)},
		{SkillID: "a", Due: testNow.Add(-2 * time.Hour)},
		{SkillID: "c", Due: testNow.Add(-48 * time.Hour)},
		{SkillID: "d", Due: testNow.Add(time.Hour)},
	}
	due := Due(cards, testNow)
	if len(due) != 3 {
		t.Fatalf("got %d due cards, want 3", len(due))
	}
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if due[i].SkillID != id {
			t.Errorf("position %d: got %q, want %q", i, due[i].SkillID, id)
		}
	}
}

func TestCard_JSONRoundTrip(t *testing.T) {
	s := NewScheduler(Config{})
	card := NewCard("u1", "recursion", testNow)
	card, _ = s.Review(card, Good, testNow)
	card, _ = s.Review(card, Hard, card.Due)

	b, err := json.Marshal(card)
	if err != nil {
		t.Fatal(err)
	}
	var back Card
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}

	if math.Abs(back.Stability-card.Stability) > 1e-9 ||
		math.Abs(back.Difficulty-card.Difficulty) > 1e-9 {
		t.Errorf("round trip drifted: %+v vs %+v", back, card)
	}
	if back.State != card.State || back.Reps != card.Reps {
		t.Errorf("round trip lost fields: %+v vs %+v", back, card)
	}
}

func TestRating_Serialization(t *testing.T) {
	b, err := json.Marshal(Good)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"good"` {
		t.Errorf("got %s, want \"good\"", b)
	}

	var r Rating
	if err := json.Unmarshal([]byte(`"again"`), &r); err != nil {
		t.Fatal(err)
	}
	if r != Again {
		t.Errorf("got %v, want Again", r)
	}

	if err := json.Unmarshal([]byte(`"perfect"`), &r); err == nil {
		t.Error("expected error for unknown rating")
	}
}
