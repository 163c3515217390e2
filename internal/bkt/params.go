// Package bkt implements Bayesian Knowledge Tracing: a two-state hidden
// Markov model of whether a learner has acquired a skill, updated from a
// stream of correct/incorrect observations.
package bkt

import "fmt"

// Params holds the four BKT probabilities. The zero value is not usable;
// call DefaultParams or fill every field.
type Params struct {
	// PInit is P(L0), the prior probability the skill is already known.
	PInit float64
	// PTransit is P(T), the chance of learning on each practice attempt.
	PTransit float64
	// PSlip is P(S), the chance of answering wrong despite knowing.
	PSlip float64
	// PGuess is P(G), the chance of answering right without knowing.
	PGuess float64
}

// DefaultParams returns the standard parameterization used for new skills.
func DefaultParams() Params {
	return Params{
		PInit:    0.3,
		PTransit: 0.1,
		PSlip:    0.1,
		PGuess:   0.2,
	}
}

// Validate reports whether every parameter is a usable probability.
// Slip and guess are additionally kept below 0.5 so correct answers
// remain evidence of knowing.
func (p Params) Validate() error {
	check := func(name string, v, lo, hi float64) error {
		if v < lo || v > hi {
			return fmt.Errorf("bkt: %s = %g out of range [%g, %g]", name, v, lo, hi)
		}
		return nil
	}
	if err := check("P(L0)", p.PInit, 0, 1); err != nil {
		return err
	}
	if err := check("P(T)", p.PTransit, 0, 1); err != nil {
		return err
	}
	if err := check("P(S)", p.PSlip, 0, 0.5); err != nil {
		return err
	}
	return check("P(G)", p.PGuess, 0, 0.5)
}
