package store

import (
	"context"
	"fmt"

	"github.com/ndthanh/studycoach/ent"
	"github.com/ndthanh/studycoach/ent/reviewlog"
	"github.com/ndthanh/studycoach/internal/coach"
	"github.com/ndthanh/studycoach/internal/spacedrep"
)

// ReviewLogRepo implements coach.ReviewLogRepo backed by ent and the
// global sequence counter.
type ReviewLogRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *ReviewLogRepo) Append(ctx context.Context, entry coach.ReviewLogEntry) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewLog.Create().
		SetSequence(seqNum).
		SetTimestamp(entry.At).
		SetUserID(entry.UserID).
		SetSkillID(entry.SkillID).
		SetRating(entry.Rating.String()).
		SetStability(entry.Stability).
		SetDifficulty(entry.Difficulty).
		SetScheduledDays(entry.ScheduledDays).
		SetState(entry.State.String()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review log: %w", err)
	}
	return nil
}

func (r *ReviewLogRepo) Recent(ctx context.Context, userID string, limit int) ([]coach.ReviewLogEntry, error) {
	rows, err := r.client.ReviewLog.Query().
		Where(reviewlog.UserID(userID)).
		Order(ent.Desc(reviewlog.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list review log: %w", err)
	}

	entries := make([]coach.ReviewLogEntry, 0, len(rows))
	for _, row := range rows {
		rating, err := spacedrep.ParseRating(row.Rating)
		if err != nil {
			return nil, fmt.Errorf("review log %d: %w", row.Sequence, err)
		}
		state, err := spacedrep.ParseState(row.State)
		if err != nil {
			return nil, fmt.Errorf("review log %d: %w", row.Sequence, err)
		}
		entries = append(entries, coach.ReviewLogEntry{
			UserID:        row.UserID,
			SkillID:       row.SkillID,
			Rating:        rating,
			Stability:     row.Stability,
			Difficulty:    row.Difficulty,
			ScheduledDays: row.ScheduledDays,
			State:         state,
			At:            row.Timestamp,
		})
	}
	return entries, nil
}
