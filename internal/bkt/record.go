package bkt

import "time"

// Record is the per-user, per-skill mastery state.
type Record struct {
	UserID        string
	SkillID       string
	Mastery       float64
	Attempts      int
	Correct       int
	LastPracticed time.Time
}

// NewRecord starts tracking a skill at the prior.
func NewRecord(userID, skillID string, p Params) Record {
	return Record{
		UserID:  userID,
		SkillID: skillID,
		Mastery: p.PInit,
	}
}

// Accuracy is the observed fraction of correct attempts, 0 before any
// practice.
func (r Record) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}
