package spacedrep

import "time"

// Card is the scheduling state for one user/skill pair.
type Card struct {
	UserID        string     `json:"user_id"`
	SkillID       string     `json:"skill_id"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ElapsedDays   float64    `json:"elapsed_days"`
	ScheduledDays float64    `json:"scheduled_days"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	State         State      `json:"state"`
	LastReview    *time.Time `json:"last_review,omitempty"`
	Due           time.Time  `json:"due"`
}

// NewCard creates an unreviewed card, due immediately.
func NewCard(userID, skillID string, now time.Time) Card {
	return Card{
		UserID:  userID,
		SkillID: skillID,
		State:   New,
		Due:     now,
	}
}

// IsDue reports whether the card should be reviewed at the given time.
func (c Card) IsDue(now time.Time) bool {
	return !c.Due.After(now)
}

// clone returns a copy safe to mutate without touching the original.
func (c Card) clone() Card {
	if c.LastReview != nil {
		lr := *c.LastReview
		c.LastReview = &lr
	}
	return c
}
