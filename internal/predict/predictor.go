// Package predict estimates how likely a learner is to struggle with a
// skill before they attempt it, combining the skill's intrinsic
// complexity with the learner's recent behavior in odds space.
package predict

import (
	"math"

	"github.com/google/uuid"
)

// Config tunes the predictor. Zero values fall back to defaults.
type Config struct {
	// ErrorBaseline is the recent error count treated as neutral
	// evidence; more errors than this raise the struggle odds.
	ErrorBaseline float64

	// VelocityBaseline is the neutral learning pace in skills
	// practiced per week; slower raises the odds.
	VelocityBaseline float64

	// ActionThreshold is the probability at or above which the
	// predictor recommends scaffolding the material.
	ActionThreshold float64

	// FullConfidenceSamples is how many observations make the
	// confidence score saturate at 1.
	FullConfidenceSamples int
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		ErrorBaseline:         5,
		VelocityBaseline:      3,
		ActionThreshold:       0.65,
		FullConfidenceSamples: 10,
	}
}

// Signals is the behavioral evidence fed into a prediction. Zero-valued
// optional fields are treated as absent, not as evidence.
type Signals struct {
	// Complexity is the skill's intrinsic difficulty, 1..10.
	Complexity int `json:"complexity"`

	// RecentErrors counts mistakes across the learner's recent
	// practice sessions.
	RecentErrors int `json:"recent_errors"`

	// ResponseTimeRatio compares the learner's recent response times
	// to their own baseline; above 1 means slowing down. Zero means
	// no timing data.
	ResponseTimeRatio float64 `json:"response_time_ratio"`

	// Velocity is skills practiced per week. Negative means unknown.
	Velocity float64 `json:"velocity"`

	// SampleSize is how many observations back these signals.
	SampleSize int `json:"sample_size"`
}

// Prediction is the predictor's output.
type Prediction struct {
	ID string `json:"id"`

	// Probability is the estimated chance of struggling, in [0,1].
	Probability float64 `json:"probability"`

	// Confidence grows with sample size, saturating at 1.
	Confidence float64 `json:"confidence"`

	// Action is "scaffold" when probability crosses the threshold,
	// otherwise "normal".
	Action string `json:"action"`

	Signals Signals `json:"signals"`
}

// Predictor combines signals into struggle predictions.
type Predictor struct {
	cfg Config
}

// New builds a predictor, filling zero config fields with defaults.
func New(cfg Config) *Predictor {
	def := DefaultConfig()
	if cfg.ErrorBaseline <= 0 {
		cfg.ErrorBaseline = def.ErrorBaseline
	}
	if cfg.VelocityBaseline <= 0 {
		cfg.VelocityBaseline = def.VelocityBaseline
	}
	if cfg.ActionThreshold <= 0 {
		cfg.ActionThreshold = def.ActionThreshold
	}
	if cfg.FullConfidenceSamples <= 0 {
		cfg.FullConfidenceSamples = def.FullConfidenceSamples
	}
	return &Predictor{cfg: cfg}
}

// Predict starts from a complexity-based prior and multiplies in a
// likelihood ratio per available signal. Working in odds keeps the
// combination order-independent and the result inside (0,1).
func (p *Predictor) Predict(sig Signals) Prediction {
	prior := clamp(float64(sig.Complexity)/10, 0.05, 0.95)
	odds := prior / (1 - prior)

	odds *= p.errorRatio(sig.RecentErrors)
	odds *= p.responseTimeRatio(sig.ResponseTimeRatio)
	odds *= p.velocityRatio(sig.Velocity)

	prob := odds / (1 + odds)

	action := "normal"
	if prob >= p.cfg.ActionThreshold {
		action = "scaffold"
	}

	return Prediction{
		ID:          uuid.NewString(),
		Probability: prob,
		Confidence:  p.confidence(sig.SampleSize),
		Action:      action,
		Signals:     sig,
	}
}

// errorRatio maps recent errors against the baseline: at baseline the
// ratio is 1, each doubling above it doubles the odds, capped at 4x.
func (p *Predictor) errorRatio(errors int) float64 {
	if errors <= 0 {
		return 1
	}
	return clamp(float64(errors)/p.cfg.ErrorBaseline, 0.25, 4)
}

// responseTimeRatio treats slowing down as evidence of struggle.
func (p *Predictor) responseTimeRatio(ratio float64) float64 {
	if ratio <= 0 {
		return 1
	}
	return clamp(ratio, 0.5, 3)
}

// velocityRatio treats a slower-than-baseline pace as evidence of
// struggle, inverted so fewer skills per week raises the odds.
func (p *Predictor) velocityRatio(velocity float64) float64 {
	if velocity < 0 {
		return 1
	}
	if velocity == 0 {
		return 2
	}
	return clamp(p.cfg.VelocityBaseline/velocity, 0.5, 2)
}

func (p *Predictor) confidence(samples int) float64 {
	if samples <= 0 {
		return 0
	}
	if samples >= p.cfg.FullConfidenceSamples {
		return 1
	}
	return float64(samples) / float64(p.cfg.FullConfidenceSamples)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
