package coach

import (
	"context"
	"time"

	"github.com/ndthanh/studycoach/internal/bkt"
	"github.com/ndthanh/studycoach/internal/predict"
	"github.com/ndthanh/studycoach/internal/spacedrep"
)

// MasteryRepo persists per-user, per-skill mastery records.
type MasteryRepo interface {
	// Get returns ErrNotFound for a never-practiced skill.
	Get(ctx context.Context, userID, skillID string) (bkt.Record, error)
	Put(ctx context.Context, rec bkt.Record) error
	ListByUser(ctx context.Context, userID string) ([]bkt.Record, error)
}

// CardRepo persists review scheduling cards.
type CardRepo interface {
	// Get returns ErrNotFound for a skill with no card yet.
	Get(ctx context.Context, userID, skillID string) (spacedrep.Card, error)
	Put(ctx context.Context, card spacedrep.Card) error
	ListByUser(ctx context.Context, userID string) ([]spacedrep.Card, error)
}

// ReviewLogEntry is one immutable line of review history.
type ReviewLogEntry struct {
	UserID        string
	SkillID       string
	Rating        spacedrep.Rating
	Stability     float64
	Difficulty    float64
	ScheduledDays float64
	State         spacedrep.State
	At            time.Time
}

// ReviewLogRepo is the append-only review history.
type ReviewLogRepo interface {
	Append(ctx context.Context, entry ReviewLogEntry) error
	// Recent returns the newest entries for a user, newest first.
	Recent(ctx context.Context, userID string, limit int) ([]ReviewLogEntry, error)
}

// PredictionRepo stores predictions and, later, their observed outcomes.
type PredictionRepo interface {
	Save(ctx context.Context, userID, skillID string, pred predict.Prediction) error
	// RecordOutcome returns ErrNotFound for an unknown prediction ID.
	RecordOutcome(ctx context.Context, predictionID string, struggled bool) error
}
