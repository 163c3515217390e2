package store

import (
	"context"
	"fmt"

	"github.com/ndthanh/studycoach/ent"
	"github.com/ndthanh/studycoach/ent/predictionrecord"
	"github.com/ndthanh/studycoach/internal/coach"
	"github.com/ndthanh/studycoach/internal/predict"
)

// PredictionRepo implements coach.PredictionRepo backed by ent and the
// global sequence counter. Predictions are append-only; the only
// mutation allowed is annotating the observed outcome.
type PredictionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *PredictionRepo) Save(ctx context.Context, userID, skillID string, pred predict.Prediction) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PredictionRecord.Create().
		SetSequence(seqNum).
		SetPredictionID(pred.ID).
		SetUserID(userID).
		SetSkillID(skillID).
		SetPriorDifficulty(pred.Signals.Complexity).
		SetRecentErrors(pred.Signals.RecentErrors).
		SetResponseTimeRatio(pred.Signals.ResponseTimeRatio).
		SetLearningVelocity(pred.Signals.Velocity).
		SetSampleSize(pred.Signals.SampleSize).
		SetProbability(pred.Probability).
		SetConfidence(pred.Confidence).
		SetAction(pred.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepo) RecordOutcome(ctx context.Context, predictionID string, struggled bool) error {
	row, err := r.client.PredictionRecord.Query().
		Where(predictionrecord.PredictionID(predictionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return coach.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query prediction: %w", err)
	}

	if _, err := row.Update().SetActualStruggle(struggled).Save(ctx); err != nil {
		return fmt.Errorf("record prediction outcome: %w", err)
	}
	return nil
}
