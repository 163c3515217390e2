package bkt

import (
	"math"
	"testing"
	"time"
)

func approx(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f", msg, got, want)
	}
}

func TestUpdate_WorkedExample(t *testing.T) {
	// P(L0)=0.3, two correct answers in a row lands near 0.659 then 0.693.
	p := DefaultParams()
	rec := NewRecord("u1", "variables", p)
	now := time.Now()

	rec = Update(rec, true, now, p)
	approx(t, rec.Mastery, 0.659, 0.005, "after first correct")

	rec = Update(rec, true, now, p)
	approx(t, rec.Mastery, 0.693, 0.005, "after second correct")

	if rec.Attempts != 2 || rec.Correct != 2 {
		t.Errorf("counters = %d/%d, want 2/2", rec.Correct, rec.Attempts)
	}
}

func TestUpdate_IncorrectLowersMastery(t *testing.T) {
	p := DefaultParams()
	rec := NewRecord("u1", "loops", p)
	before := rec.Mastery

	rec = Update(rec, false, time.Now(), p)
	// P(T) is applied even after a wrong answer, so the drop is partial,
	// but the result must stay below where a correct answer would land.
	correct := Update(NewRecord("u1", "loops", p), true, time.Now(), p)
	if rec.Mastery >= correct.Mastery {
		t.Errorf("incorrect (%.3f) should score below correct (%.3f)", rec.Mastery, correct.Mastery)
	}
	if rec.Mastery >= before+p.PTransit {
		t.Errorf("incorrect raised mastery too far: %.3f from %.3f", rec.Mastery, before)
	}
}

func TestUpdate_CorrectMonotone(t *testing.T) {
	p := DefaultParams()
	rec := NewRecord("u1", "recursion", p)
	prev := rec.Mastery
	for i := 0; i < 20; i++ {
		rec = Update(rec, true, time.Now(), p)
		if rec.Mastery < prev {
			t.Fatalf("attempt %d: mastery fell from %.6f to %.6f", i+1, prev, rec.Mastery)
		}
		prev = rec.Mastery
	}
	if rec.Mastery > 1 {
		t.Errorf("mastery %.6f exceeds 1", rec.Mastery)
	}
}

func TestUpdate_StaysInUnitInterval(t *testing.T) {
	p := DefaultParams()
	rec := NewRecord("u1", "dicts", p)
	outcomes := []bool{true, false, false, true, false, true, true, false}
	for _, ok := range outcomes {
		rec = Update(rec, ok, time.Now(), p)
		if rec.Mastery < 0 || rec.Mastery > 1 {
			t.Fatalf("mastery %.6f escaped [0,1]", rec.Mastery)
		}
	}
}

func TestUpdate_ExtremePriors(t *testing.T) {
	p := DefaultParams()
	now := time.Now()

	high := Record{UserID: "u1", SkillID: "s", Mastery: 1}
	high = Update(high, false, now, p)
	if high.Mastery < 0 || high.Mastery > 1 {
		t.Errorf("from prior 1: mastery %.6f escaped [0,1]", high.Mastery)
	}

	low := Record{UserID: "u1", SkillID: "s", Mastery: 0}
	low = Update(low, true, now, p)
	if low.Mastery < 0 || low.Mastery > 1 {
		t.Errorf("from prior 0: mastery %.6f escaped [0,1]", low.Mastery)
	}
	// Transition still moves a zero prior upward.
	if low.Mastery == 0 {
		t.Error("P(T) should lift mastery off zero")
	}
}

func TestUpdate_DegenerateDenominator(t *testing.T) {
	// P(G)=0 with prior 0 makes the correct-answer denominator zero; the
	// update must fall back to the prior rather than produce NaN.
	p := Params{PInit: 0, PTransit: 0.1, PSlip: 0.1, PGuess: 0}
	rec := Record{UserID: "u1", SkillID: "s", Mastery: 0}
	rec = Update(rec, true, time.Now(), p)
	if math.IsNaN(rec.Mastery) {
		t.Fatal("mastery is NaN")
	}
}

func TestParams_Validate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := []Params{
		{PInit: -0.1, PTransit: 0.1, PSlip: 0.1, PGuess: 0.2},
		{PInit: 0.3, PTransit: 1.1, PSlip: 0.1, PGuess: 0.2},
		{PInit: 0.3, PTransit: 0.1, PSlip: 0.6, PGuess: 0.2},
		{PInit: 0.3, PTransit: 0.1, PSlip: 0.1, PGuess: 0.7},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, p)
		}
	}
}

func TestAccuracy(t *testing.T) {
	rec := Record{Attempts: 0}
	if rec.Accuracy() != 0 {
		t.Error("accuracy with no attempts should be 0")
	}
	rec = Record{Attempts: 4, Correct: 3}
	approx(t, rec.Accuracy(), 0.75, 1e-9, "accuracy")
}
