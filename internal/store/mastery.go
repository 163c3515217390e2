package store

import (
	"context"
	"fmt"

	"github.com/ndthanh/studycoach/ent"
	"github.com/ndthanh/studycoach/ent/masteryrecord"
	"github.com/ndthanh/studycoach/internal/bkt"
	"github.com/ndthanh/studycoach/internal/coach"
)

// MasteryRepo implements coach.MasteryRepo backed by ent.
type MasteryRepo struct {
	client *ent.Client
}

func (r *MasteryRepo) Get(ctx context.Context, userID, skillID string) (bkt.Record, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.SkillID(skillID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return bkt.Record{}, coach.ErrNotFound
	}
	if err != nil {
		return bkt.Record{}, fmt.Errorf("query mastery record: %w", err)
	}
	return masteryFromRow(row), nil
}

func (r *MasteryRepo) Put(ctx context.Context, rec bkt.Record) error {
	row, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(rec.UserID),
			masteryrecord.SkillID(rec.SkillID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.MasteryRecord.Create().
			SetUserID(rec.UserID).
			SetSkillID(rec.SkillID).
			SetMastery(rec.Mastery).
			SetAttempts(rec.Attempts).
			SetCorrect(rec.Correct).
			SetLastPracticed(rec.LastPracticed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery record: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query mastery record: %w", err)
	}

	_, err = row.Update().
		SetMastery(rec.Mastery).
		SetAttempts(rec.Attempts).
		SetCorrect(rec.Correct).
		SetLastPracticed(rec.LastPracticed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	return nil
}

func (r *MasteryRepo) ListByUser(ctx context.Context, userID string) ([]bkt.Record, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID)).
		Order(ent.Asc(masteryrecord.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}
	recs := make([]bkt.Record, len(rows))
	for i, row := range rows {
		recs[i] = masteryFromRow(row)
	}
	return recs, nil
}

func masteryFromRow(row *ent.MasteryRecord) bkt.Record {
	return bkt.Record{
		UserID:        row.UserID,
		SkillID:       row.SkillID,
		Mastery:       row.Mastery,
		Attempts:      row.Attempts,
		Correct:       row.Correct,
		LastPracticed: row.LastPracticed,
	}
}
