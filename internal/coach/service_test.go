package coach

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/ndthanh/studycoach/internal/bkt"
	"github.com/ndthanh/studycoach/internal/predict"
	"github.com/ndthanh/studycoach/internal/recommend"
	"github.com/ndthanh/studycoach/internal/skillgraph"
	"github.com/ndthanh/studycoach/internal/spacedrep"
)

type fakeMasteryRepo struct {
	recs map[string]bkt.Record
}

func key(userID, skillID string) string { return userID + "/" + skillID }

func (f *fakeMasteryRepo) Get(_ context.Context, userID, skillID string) (bkt.Record, error) {
	rec, ok := f.recs[key(userID, skillID)]
	if !ok {
		return bkt.Record{}, ErrNotFound
	}
	return rec, nil
}

func (f *fakeMasteryRepo) Put(_ context.Context, rec bkt.Record) error {
	f.recs[key(rec.UserID, rec.SkillID)] = rec
	return nil
}

func (f *fakeMasteryRepo) ListByUser(_ context.Context, userID string) ([]bkt.Record, error) {
	var out []bkt.Record
	for _, r := range f.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCardRepo struct {
	cards map[string]spacedrep.Card
}

func (f *fakeCardRepo) Get(_ context.Context, userID, skillID string) (spacedrep.Card, error) {
	c, ok := f.cards[key(userID, skillID)]
	if !ok {
		return spacedrep.Card{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeCardRepo) Put(_ context.Context, card spacedrep.Card) error {
	f.cards[key(card.UserID, card.SkillID)] = card
	return nil
}

func (f *fakeCardRepo) ListByUser(_ context.Context, userID string) ([]spacedrep.Card, error) {
	var out []spacedrep.Card
	for _, c := range f.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	entries []ReviewLogEntry
}

func (f *fakeLogRepo) Append(_ context.Context, e ReviewLogEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeLogRepo) Recent(_ context.Context, userID string, limit int) ([]ReviewLogEntry, error) {
	var out []ReviewLogEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type savedPrediction struct {
	userID, skillID string
	pred            predict.Prediction
	outcome         *bool
}

type fakePredictionRepo struct {
	preds map[string]*savedPrediction
}

func (f *fakePredictionRepo) Save(_ context.Context, userID, skillID string, pred predict.Prediction) error {
	f.preds[pred.ID] = &savedPrediction{userID: userID, skillID: skillID, pred: pred}
	return nil
}

func (f *fakePredictionRepo) RecordOutcome(_ context.Context, id string, struggled bool) error {
	p, ok := f.preds[id]
	if !ok {
		return ErrNotFound
	}
	p.outcome = &struggled
	return nil
}

type fixture struct {
	svc   *Service
	cards *fakeCardRepo
	preds *fakePredictionRepo
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, err := skillgraph.Default()
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	f := &fixture{
		cards: &fakeCardRepo{cards: map[string]spacedrep.Card{}},
		preds: &fakePredictionRepo{preds: map[string]*savedPrediction{}},
		now:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	svc, err := NewService(Deps{
		Graph:       g,
		Mastery:     &fakeMasteryRepo{recs: map[string]bkt.Record{}},
		Cards:       f.cards,
		Logs:        &fakeLogRepo{},
		Predictions: f.preds,
		Now:         func() time.Time { return f.now },
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	f.svc = svc
	return f
}

func TestUpdateMastery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, err := f.svc.UpdateMastery(ctx, "u1", "variables", true)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Mastery <= 0.3 {
		t.Errorf("mastery %.3f should rise above the 0.3 prior", rec.Mastery)
	}
	if rec.Attempts != 1 || rec.Correct != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.Correct, rec.Attempts)
	}

	rec2, err := f.svc.GetMastery(ctx, "u1", "variables")
	if err != nil {
		t.Fatal(err)
	}
	if rec2.Mastery != rec.Mastery {
		t.Errorf("persisted mastery %.3f != returned %.3f", rec2.Mastery, rec.Mastery)
	}
}

func TestUpdateMastery_UnknownSkill(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdateMastery(context.Background(), "u1", "telekinesis", true)
	if !errors.Is(err, skillgraph.ErrUnknownSkill) {
		t.Errorf("got %v, want ErrUnknownSkill", err)
	}
}

func TestGetMastery_UnpracticedReturnsPrior(t *testing.T) {
	f := newFixture(t)
	rec, err := f.svc.GetMastery(context.Background(), "u1", "recursion")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Mastery != 0.3 || rec.Attempts != 0 {
		t.Errorf("got %+v, want prior 0.3 with no attempts", rec)
	}
}

func TestSubmitReview_CreatesCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	card, err := f.svc.SubmitReview(ctx, "u1", "loops", spacedrep.Good)
	if err != nil {
		t.Fatal(err)
	}
	if card.Reps != 1 {
		t.Errorf("reps = %d, want 1", card.Reps)
	}
	if card.Due.Before(f.now.Add(24 * time.Hour)) {
		t.Errorf("due %s, want at least a day out", card.Due)
	}

	// A Good review also counts as correct practice.
	rec, err := f.svc.GetMastery(ctx, "u1", "loops")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Attempts != 1 || rec.Correct != 1 {
		t.Errorf("mastery counters = %d/%d, want 1/1", rec.Correct, rec.Attempts)
	}
}

func TestSubmitReview_AgainCountsIncorrect(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.SubmitReview(ctx, "u1", "loops", spacedrep.Again); err != nil {
		t.Fatal(err)
	}
	rec, err := f.svc.GetMastery(ctx, "u1", "loops")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Correct != 0 || rec.Attempts != 1 {
		t.Errorf("mastery counters = %d/%d, want 0/1", rec.Correct, rec.Attempts)
	}
}

func TestSubmitReview_InvalidRating(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.SubmitReview(context.Background(), "u1", "loops", spacedrep.Rating(0))
	if !errors.Is(err, spacedrep.ErrInvalidRating) {
		t.Errorf("got %v, want ErrInvalidRating", err)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetCard(context.Background(), "u1", "loops")
	if !errors.Is(err, spacedrep.ErrCardNotFound) {
		t.Errorf("got %v, want ErrCardNotFound", err)
	}
}

func TestDueReviews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, skill := range []string{"variables", "loops", "functions"} {
		if _, err := f.svc.SubmitReview(ctx, "u1", skill, spacedrep.Good); err != nil {
			t.Fatal(err)
		}
	}

	due, err := f.svc.DueReviews(ctx, "u1", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 0 {
		t.Fatalf("nothing should be due immediately after review, got %d", len(due))
	}

	// A week later all three have come due.
	f.now = f.now.Add(7 * 24 * time.Hour)
	due, err = f.svc.DueReviews(ctx, "u1", f.now)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 3 {
		t.Fatalf("got %d due cards, want 3", len(due))
	}
	ids := []string{due[0].SkillID, due[1].SkillID, due[2].SkillID}
	if !sort.StringsAreSorted(ids) {
		// All three share a due time, so ordering falls back to skill ID.
		t.Errorf("tied due cards not ordered by skill: %v", ids)
	}
}

func TestRecommend_RedirectsToWeakPrerequisite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Solid variables, weak functions: asking for recursion should
	// point at functions.
	for i := 0; i < 10; i++ {
		if _, err := f.svc.UpdateMastery(ctx, "u1", "variables", true); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.svc.UpdateMastery(ctx, "u1", "functions", false); err != nil {
		t.Fatal(err)
	}

	rec, err := f.svc.Recommend(ctx, "u1", "recursion")
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "functions" {
		t.Errorf("got %q, want functions", rec.SkillID)
	}
	if rec.Reason != "prerequisite gap" {
		t.Errorf("reason = %q, want prerequisite gap", rec.Reason)
	}
}

func TestRecommend_UnpracticedPrerequisiteSitsAtPrior(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// comprehensions needs loops and lists at equal strength. Lists was
	// practiced and failed (≈0.15), loops never touched. Never-practiced
	// must count as the 0.3 prior, not zero, so the demonstrated gap in
	// lists outranks the unknown in loops.
	if _, err := f.svc.UpdateMastery(ctx, "u1", "lists", false); err != nil {
		t.Fatal(err)
	}

	rec, err := f.svc.Recommend(ctx, "u1", "comprehensions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Chain) < 2 || rec.Chain[1] != "lists" {
		t.Errorf("chain = %v, want descent through lists first", rec.Chain)
	}
	if rec.Reason != "prerequisite gap" {
		t.Errorf("reason = %q, want prerequisite gap", rec.Reason)
	}
}

func TestPredictStruggle_PersistsAndClosesLoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pred, err := f.svc.PredictStruggle(ctx, "u1", "dynamic-programming")
	if err != nil {
		t.Fatal(err)
	}
	if pred.Probability <= 0 || pred.Probability >= 1 {
		t.Errorf("probability %.3f outside (0,1)", pred.Probability)
	}
	if _, ok := f.preds.preds[pred.ID]; !ok {
		t.Fatal("prediction was not persisted")
	}

	if err := f.svc.RecordPredictionOutcome(ctx, pred.ID, true); err != nil {
		t.Fatal(err)
	}
	saved := f.preds.preds[pred.ID]
	if saved.outcome == nil || !*saved.outcome {
		t.Error("outcome not recorded")
	}

	err = f.svc.RecordPredictionOutcome(ctx, "no-such-id", false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestPredictStruggle_StrugglingUserScoresHigher(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	calm, err := f.svc.PredictStruggle(ctx, "fresh", "decorators")
	if err != nil {
		t.Fatal(err)
	}

	// u1 racks up failed reviews, which should raise the estimate.
	for i := 0; i < 8; i++ {
		if _, err := f.svc.SubmitReview(ctx, "u1", "scope", spacedrep.Again); err != nil {
			t.Fatal(err)
		}
	}
	struggling, err := f.svc.PredictStruggle(ctx, "u1", "decorators")
	if err != nil {
		t.Fatal(err)
	}
	if struggling.Probability <= calm.Probability {
		t.Errorf("failing user %.3f should score above fresh user %.3f",
			struggling.Probability, calm.Probability)
	}
	if struggling.Confidence <= calm.Confidence {
		t.Errorf("more history should mean more confidence: %.2f vs %.2f",
			struggling.Confidence, calm.Confidence)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := f.svc.UpdateMastery(ctx, "u1", "variables", true); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.svc.SubmitReview(ctx, "u1", "loops", spacedrep.Again); err != nil {
		t.Fatal(err)
	}

	st, err := f.svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalSkills < 10 {
		t.Errorf("total skills = %d, want full curriculum", st.TotalSkills)
	}
	if st.TrackedSkills != 2 {
		t.Errorf("tracked = %d, want 2 (variables practiced, loops via review)", st.TrackedSkills)
	}
	if st.MasteredSkills != 1 {
		t.Errorf("mastered = %d, want 1 (variables after 10 correct)", st.MasteredSkills)
	}
	if st.TotalCards != 1 || st.TotalReps != 1 {
		t.Errorf("cards/reps = %d/%d, want 1/1", st.TotalCards, st.TotalReps)
	}
}

func TestStats_MasteredTracksEngineThreshold(t *testing.T) {
	g, err := skillgraph.Default()
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	mastery := &fakeMasteryRepo{recs: map[string]bkt.Record{}}
	svc, err := NewService(Deps{
		Graph:       g,
		Mastery:     mastery,
		Cards:       &fakeCardRepo{cards: map[string]spacedrep.Card{}},
		Logs:        &fakeLogRepo{},
		Predictions: &fakePredictionRepo{preds: map[string]*savedPrediction{}},
		Engine:      recommend.New(g, recommend.Config{MasteryThreshold: 0.9}),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	ctx := context.Background()

	// Two correct answers land around 0.69: mastered at the default 0.6
	// bar, but not under this engine's stricter 0.9.
	for i := 0; i < 2; i++ {
		if _, err := svc.UpdateMastery(ctx, "u1", "variables", true); err != nil {
			t.Fatal(err)
		}
	}
	st, err := svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if st.MasteredSkills != 0 {
		t.Errorf("mastered = %d, want 0 below the 0.9 threshold", st.MasteredSkills)
	}

	for i := 0; i < 10; i++ {
		if _, err := svc.UpdateMastery(ctx, "u1", "variables", true); err != nil {
			t.Fatal(err)
		}
	}
	st, err = svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if st.MasteredSkills != 1 {
		t.Errorf("mastered = %d, want 1 once past the 0.9 threshold", st.MasteredSkills)
	}
}

func TestNewService_RequiresDeps(t *testing.T) {
	if _, err := NewService(Deps{}); err == nil {
		t.Error("expected error for missing graph")
	}

	g, _ := skillgraph.Default()
	if _, err := NewService(Deps{Graph: g}); err == nil {
		t.Error("expected error for missing repos")
	}
}
