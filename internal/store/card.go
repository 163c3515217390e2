package store

import (
	"context"
	"fmt"

	"github.com/ndthanh/studycoach/ent"
	"github.com/ndthanh/studycoach/ent/reviewcard"
	"github.com/ndthanh/studycoach/internal/coach"
	"github.com/ndthanh/studycoach/internal/spacedrep"
)

// CardRepo implements coach.CardRepo backed by ent.
type CardRepo struct {
	client *ent.Client
}

func (r *CardRepo) Get(ctx context.Context, userID, skillID string) (spacedrep.Card, error) {
	row, err := r.client.ReviewCard.Query().
		Where(
			reviewcard.UserID(userID),
			reviewcard.SkillID(skillID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return spacedrep.Card{}, coach.ErrNotFound
	}
	if err != nil {
		return spacedrep.Card{}, fmt.Errorf("query review card: %w", err)
	}
	return cardFromRow(row)
}

func (r *CardRepo) Put(ctx context.Context, card spacedrep.Card) error {
	row, err := r.client.ReviewCard.Query().
		Where(
			reviewcard.UserID(card.UserID),
			reviewcard.SkillID(card.SkillID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		create := r.client.ReviewCard.Create().
			SetUserID(card.UserID).
			SetSkillID(card.SkillID).
			SetStability(card.Stability).
			SetDifficulty(card.Difficulty).
			SetElapsedDays(card.ElapsedDays).
			SetScheduledDays(card.ScheduledDays).
			SetReps(card.Reps).
			SetLapses(card.Lapses).
			SetState(card.State.String()).
			SetDue(card.Due)
		if card.LastReview != nil {
			create.SetLastReview(*card.LastReview)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create review card: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query review card: %w", err)
	}

	update := row.Update().
		SetStability(card.Stability).
		SetDifficulty(card.Difficulty).
		SetElapsedDays(card.ElapsedDays).
		SetScheduledDays(card.ScheduledDays).
		SetReps(card.Reps).
		SetLapses(card.Lapses).
		SetState(card.State.String()).
		SetDue(card.Due)
	if card.LastReview != nil {
		update.SetLastReview(*card.LastReview)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update review card: %w", err)
	}
	return nil
}

func (r *CardRepo) ListByUser(ctx context.Context, userID string) ([]spacedrep.Card, error) {
	rows, err := r.client.ReviewCard.Query().
		Where(reviewcard.UserID(userID)).
		Order(ent.Asc(reviewcard.FieldDue)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list review cards: %w", err)
	}
	cards := make([]spacedrep.Card, len(rows))
	for i, row := range rows {
		card, err := cardFromRow(row)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

func cardFromRow(row *ent.ReviewCard) (spacedrep.Card, error) {
	state, err := spacedrep.ParseState(row.State)
	if err != nil {
		return spacedrep.Card{}, fmt.Errorf("card %s/%s: %w", row.UserID, row.SkillID, err)
	}
	return spacedrep.Card{
		UserID:        row.UserID,
		SkillID:       row.SkillID,
		Stability:     row.Stability,
		Difficulty:    row.Difficulty,
		ElapsedDays:   row.ElapsedDays,
		ScheduledDays: row.ScheduledDays,
		Reps:          row.Reps,
		Lapses:        row.Lapses,
		State:         state,
		LastReview:    row.LastReview,
		Due:           row.Due,
	}, nil
}
