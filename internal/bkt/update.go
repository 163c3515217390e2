package bkt

import "time"

// Update applies one practice observation to a record and returns the
// updated copy. Bayes' rule gives the posterior probability of knowing
// the skill given the answer, then the learning transition P(T) is
// applied on top.
func Update(rec Record, correct bool, at time.Time, p Params) Record {
	prior := clamp01(rec.Mastery)

	var posterior float64
	if correct {
		num := prior * (1 - p.PSlip)
		den := num + (1-prior)*p.PGuess
		posterior = divide(num, den, prior)
	} else {
		num := prior * p.PSlip
		den := num + (1-prior)*(1-p.PGuess)
		posterior = divide(num, den, prior)
	}

	rec.Mastery = clamp01(posterior + (1-posterior)*p.PTransit)
	rec.Attempts++
	if correct {
		rec.Correct++
	}
	rec.LastPracticed = at
	return rec
}

// divide guards the degenerate denominators that extreme parameter
// choices can produce; the prior is the only sensible fallback.
func divide(num, den, fallback float64) float64 {
	if den <= 0 {
		return fallback
	}
	return num / den
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
