package predict

import (
	"math"
	"testing"
)

func TestPredict_PriorFromComplexity(t *testing.T) {
	p := New(Config{})

	// With no behavioral signals the probability is the complexity
	// prior itself.
	got := p.Predict(Signals{Complexity: 5, Velocity: -1})
	if math.Abs(got.Probability-0.5) > 1e-9 {
		t.Errorf("complexity 5, no signals: %.4f, want 0.5", got.Probability)
	}

	easy := p.Predict(Signals{Complexity: 1, Velocity: -1})
	hard := p.Predict(Signals{Complexity: 9, Velocity: -1})
	if easy.Probability >= hard.Probability {
		t.Errorf("complexity 1 (%.3f) should predict less struggle than 9 (%.3f)",
			easy.Probability, hard.Probability)
	}
}

func TestPredict_PriorClamped(t *testing.T) {
	p := New(Config{})
	zero := p.Predict(Signals{Complexity: 0, Velocity: -1})
	if zero.Probability < 0.04 {
		t.Errorf("complexity 0 prior %.4f fell below floor", zero.Probability)
	}
	ten := p.Predict(Signals{Complexity: 10, Velocity: -1})
	if ten.Probability > 0.96 {
		t.Errorf("complexity 10 prior %.4f exceeded ceiling", ten.Probability)
	}
}

func TestPredict_ErrorsRaiseProbability(t *testing.T) {
	p := New(Config{})
	base := p.Predict(Signals{Complexity: 5, Velocity: -1})
	errs := p.Predict(Signals{Complexity: 5, RecentErrors: 10, Velocity: -1})
	if errs.Probability <= base.Probability {
		t.Errorf("10 errors (%.3f) should predict more struggle than none (%.3f)",
			errs.Probability, base.Probability)
	}

	few := p.Predict(Signals{Complexity: 5, RecentErrors: 2, Velocity: -1})
	if few.Probability >= base.Probability {
		t.Errorf("below-baseline errors (%.3f) should lower the estimate (%.3f)",
			few.Probability, base.Probability)
	}
}

func TestPredict_SlowResponsesRaiseProbability(t *testing.T) {
	p := New(Config{})
	base := p.Predict(Signals{Complexity: 5, Velocity: -1})
	slow := p.Predict(Signals{Complexity: 5, ResponseTimeRatio: 2.0, Velocity: -1})
	if slow.Probability <= base.Probability {
		t.Errorf("slowing down (%.3f) should predict more struggle than baseline (%.3f)",
			slow.Probability, base.Probability)
	}
}

func TestPredict_SlowVelocityRaisesProbability(t *testing.T) {
	p := New(Config{})
	fast := p.Predict(Signals{Complexity: 5, Velocity: 6})
	slow := p.Predict(Signals{Complexity: 5, Velocity: 1})
	if slow.Probability <= fast.Probability {
		t.Errorf("1 skill/week (%.3f) should predict more struggle than 6 (%.3f)",
			slow.Probability, fast.Probability)
	}
}

func TestPredict_ActionThreshold(t *testing.T) {
	p := New(Config{})

	low := p.Predict(Signals{Complexity: 2, Velocity: -1})
	if low.Action != "normal" {
		t.Errorf("low probability action = %q, want normal", low.Action)
	}

	high := p.Predict(Signals{Complexity: 9, RecentErrors: 12, ResponseTimeRatio: 2, Velocity: 1})
	if high.Probability < 0.65 {
		t.Fatalf("stacked signals only reached %.3f", high.Probability)
	}
	if high.Action != "scaffold" {
		t.Errorf("high probability action = %q, want scaffold", high.Action)
	}
}

func TestPredict_Confidence(t *testing.T) {
	p := New(Config{})
	cases := []struct {
		samples int
		want    float64
	}{
		{0, 0},
		{3, 0.3},
		{10, 1},
		{50, 1},
	}
	for _, c := range cases {
		got := p.Predict(Signals{Complexity: 5, SampleSize: c.samples, Velocity: -1})
		if math.Abs(got.Confidence-c.want) > 1e-9 {
			t.Errorf("samples %d: confidence %.3f, want %.3f", c.samples, got.Confidence, c.want)
		}
	}
}

func TestPredict_OrderIndependence(t *testing.T) {
	// The odds combination must land in (0,1) whatever the mix.
	p := New(Config{})
	sig := Signals{Complexity: 10, RecentErrors: 100, ResponseTimeRatio: 10, Velocity: 0.01}
	got := p.Predict(sig)
	if got.Probability <= 0 || got.Probability >= 1 {
		t.Errorf("stacked extreme signals produced %.6f, want inside (0,1)", got.Probability)
	}
}

func TestPredict_UniqueIDs(t *testing.T) {
	p := New(Config{})
	a := p.Predict(Signals{Complexity: 5})
	b := p.Predict(Signals{Complexity: 5})
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("prediction IDs should be unique, got %q and %q", a.ID, b.ID)
	}
}
