// Package coach wires the skill graph, mastery tracker, review scheduler,
// recommender, and struggle predictor into one service backed by
// persistent repos.
package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndthanh/studycoach/internal/bkt"
	"github.com/ndthanh/studycoach/internal/predict"
	"github.com/ndthanh/studycoach/internal/recommend"
	"github.com/ndthanh/studycoach/internal/skillgraph"
	"github.com/ndthanh/studycoach/internal/spacedrep"
)

// recentLogWindow is how many review log entries feed struggle signals.
const recentLogWindow = 20

// velocityWindow is the lookback for the learning-pace signal.
const velocityWindow = 7 * 24 * time.Hour

// Service is the coaching core. Construct with NewService.
type Service struct {
	graph     *skillgraph.Graph
	params    bkt.Params
	scheduler *spacedrep.Scheduler
	engine    *recommend.Engine
	predictor *predict.Predictor

	mastery     MasteryRepo
	cards       CardRepo
	logs        ReviewLogRepo
	predictions PredictionRepo

	now func() time.Time
}

// Deps carries the collaborators NewService needs. Graph and the four
// repos are required; nil tuning fields get defaults.
type Deps struct {
	Graph       *skillgraph.Graph
	Mastery     MasteryRepo
	Cards       CardRepo
	Logs        ReviewLogRepo
	Predictions PredictionRepo

	Params    *bkt.Params
	Scheduler *spacedrep.Scheduler
	Engine    *recommend.Engine
	Predictor *predict.Predictor
	Now       func() time.Time
}

// NewService validates deps and builds the service.
func NewService(d Deps) (*Service, error) {
	if d.Graph == nil {
		return nil, errors.New("coach: graph is required")
	}
	if d.Mastery == nil || d.Cards == nil || d.Logs == nil || d.Predictions == nil {
		return nil, errors.New("coach: all repos are required")
	}

	params := bkt.DefaultParams()
	if d.Params != nil {
		if err := d.Params.Validate(); err != nil {
			return nil, err
		}
		params = *d.Params
	}
	scheduler := d.Scheduler
	if scheduler == nil {
		scheduler = spacedrep.NewScheduler(spacedrep.Config{})
	}
	engine := d.Engine
	if engine == nil {
		engine = recommend.New(d.Graph, recommend.Config{})
	}
	predictor := d.Predictor
	if predictor == nil {
		predictor = predict.New(predict.Config{})
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		graph:       d.Graph,
		params:      params,
		scheduler:   scheduler,
		engine:      engine,
		predictor:   predictor,
		mastery:     d.Mastery,
		cards:       d.Cards,
		logs:        d.Logs,
		predictions: d.Predictions,
		now:         now,
	}, nil
}

// Graph exposes the skill graph for read-only use by callers.
func (s *Service) Graph() *skillgraph.Graph { return s.graph }

// UpdateMastery records one practice observation and returns the updated
// record. An unknown skill returns skillgraph.ErrUnknownSkill.
func (s *Service) UpdateMastery(ctx context.Context, userID, skillID string, correct bool) (bkt.Record, error) {
	if _, err := s.graph.Get(skillID); err != nil {
		return bkt.Record{}, err
	}

	rec, err := s.mastery.Get(ctx, userID, skillID)
	if errors.Is(err, ErrNotFound) {
		rec = bkt.NewRecord(userID, skillID, s.params)
	} else if err != nil {
		return bkt.Record{}, fmt.Errorf("load mastery: %w", err)
	}

	rec = bkt.Update(rec, correct, s.now(), s.params)
	if err := s.mastery.Put(ctx, rec); err != nil {
		return bkt.Record{}, fmt.Errorf("save mastery: %w", err)
	}

	return rec, nil
}

// GetMastery returns the record for a skill. Never-practiced skills come
// back at the prior, unpersisted.
func (s *Service) GetMastery(ctx context.Context, userID, skillID string) (bkt.Record, error) {
	if _, err := s.graph.Get(skillID); err != nil {
		return bkt.Record{}, err
	}
	rec, err := s.mastery.Get(ctx, userID, skillID)
	if errors.Is(err, ErrNotFound) {
		return bkt.NewRecord(userID, skillID, s.params), nil
	}
	if err != nil {
		return bkt.Record{}, fmt.Errorf("load mastery: %w", err)
	}
	return rec, nil
}

// SubmitReview grades a review and reschedules the card. The first
// review of a skill creates its card. The graded outcome also feeds the
// mastery tracker: Again/Hard count as incorrect practice, Good/Easy as
// correct.
func (s *Service) SubmitReview(ctx context.Context, userID, skillID string, rating spacedrep.Rating) (spacedrep.Card, error) {
	if _, err := s.graph.Get(skillID); err != nil {
		return spacedrep.Card{}, err
	}
	if !rating.IsValid() {
		return spacedrep.Card{}, fmt.Errorf("%w: %d", spacedrep.ErrInvalidRating, rating)
	}

	now := s.now()
	card, err := s.cards.Get(ctx, userID, skillID)
	if errors.Is(err, ErrNotFound) {
		card = spacedrep.NewCard(userID, skillID, now)
	} else if err != nil {
		return spacedrep.Card{}, fmt.Errorf("load card: %w", err)
	}

	card, err = s.scheduler.Review(card, rating, now)
	if err != nil {
		return spacedrep.Card{}, err
	}
	if err := s.cards.Put(ctx, card); err != nil {
		return spacedrep.Card{}, fmt.Errorf("save card: %w", err)
	}

	if err := s.logs.Append(ctx, ReviewLogEntry{
		UserID:        userID,
		SkillID:       skillID,
		Rating:        rating,
		Stability:     card.Stability,
		Difficulty:    card.Difficulty,
		ScheduledDays: card.ScheduledDays,
		State:         card.State,
		At:            now,
	}); err != nil {
		return spacedrep.Card{}, fmt.Errorf("append review log: %w", err)
	}

	if _, err := s.UpdateMastery(ctx, userID, skillID, rating >= spacedrep.Good); err != nil {
		return spacedrep.Card{}, err
	}

	return card, nil
}

// GetCard returns a skill's review card, spacedrep.ErrCardNotFound if the
// skill has never been reviewed.
func (s *Service) GetCard(ctx context.Context, userID, skillID string) (spacedrep.Card, error) {
	if _, err := s.graph.Get(skillID); err != nil {
		return spacedrep.Card{}, err
	}
	card, err := s.cards.Get(ctx, userID, skillID)
	if errors.Is(err, ErrNotFound) {
		return spacedrep.Card{}, fmt.Errorf("%w: %s", spacedrep.ErrCardNotFound, skillID)
	}
	if err != nil {
		return spacedrep.Card{}, fmt.Errorf("load card: %w", err)
	}
	return card, nil
}

// DueReviews returns the user's cards due at asOf, most overdue first.
// A zero asOf means now.
func (s *Service) DueReviews(ctx context.Context, userID string, asOf time.Time) ([]spacedrep.Card, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	cards, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return spacedrep.Due(cards, asOf), nil
}

// Recommend returns the next skill to practice toward the target.
func (s *Service) Recommend(ctx context.Context, userID, target string) (recommend.Recommendation, error) {
	records, err := s.mastery.ListByUser(ctx, userID)
	if err != nil {
		return recommend.Recommendation{}, fmt.Errorf("list mastery: %w", err)
	}
	bySkill := make(map[string]float64, len(records))
	for _, r := range records {
		bySkill[r.SkillID] = r.Mastery
	}
	// Never-practiced skills sit at the prior, same as GetMastery.
	return s.engine.Recommend(target, func(id string) float64 {
		if m, ok := bySkill[id]; ok {
			return m
		}
		return s.params.PInit
	})
}

// PredictStruggle estimates the chance the user will struggle with a
// skill, persists the prediction for later calibration, and returns it.
func (s *Service) PredictStruggle(ctx context.Context, userID, skillID string) (predict.Prediction, error) {
	skill, err := s.graph.Get(skillID)
	if err != nil {
		return predict.Prediction{}, err
	}

	sig, err := s.gatherSignals(ctx, userID, skill)
	if err != nil {
		return predict.Prediction{}, err
	}

	pred := s.predictor.Predict(sig)
	if err := s.predictions.Save(ctx, userID, skillID, pred); err != nil {
		return predict.Prediction{}, fmt.Errorf("save prediction: %w", err)
	}

	return pred, nil
}

// RecordPredictionOutcome closes the loop on an earlier prediction.
func (s *Service) RecordPredictionOutcome(ctx context.Context, predictionID string, struggled bool) error {
	if err := s.predictions.RecordOutcome(ctx, predictionID, struggled); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// gatherSignals assembles the behavioral evidence for one prediction
// from the user's mastery records and recent review history.
func (s *Service) gatherSignals(ctx context.Context, userID string, skill skillgraph.Skill) (predict.Signals, error) {
	records, err := s.mastery.ListByUser(ctx, userID)
	if err != nil {
		return predict.Signals{}, fmt.Errorf("list mastery: %w", err)
	}
	entries, err := s.logs.Recent(ctx, userID, recentLogWindow)
	if err != nil {
		return predict.Signals{}, fmt.Errorf("list review log: %w", err)
	}

	now := s.now()
	recentErrors := 0
	for _, e := range entries {
		if e.Rating <= spacedrep.Hard {
			recentErrors++
		}
	}

	practiced := 0
	samples := len(entries)
	for _, r := range records {
		samples += r.Attempts
		if !r.LastPracticed.IsZero() && now.Sub(r.LastPracticed) <= velocityWindow {
			practiced++
		}
	}

	velocity := float64(practiced)
	if len(records) == 0 {
		// A brand-new user has no pace to measure.
		velocity = -1
	}

	return predict.Signals{
		Complexity:   skill.Complexity,
		RecentErrors: recentErrors,
		Velocity:     velocity,
		SampleSize:   samples,
	}, nil
}
