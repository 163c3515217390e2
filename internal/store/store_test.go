package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndthanh/studycoach/internal/bkt"
	"github.com/ndthanh/studycoach/internal/coach"
	"github.com/ndthanh/studycoach/internal/predict"
	"github.com/ndthanh/studycoach/internal/skillgraph"
	"github.com/ndthanh/studycoach/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryPutGetUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	// Missing records map to coach.ErrNotFound.
	_, err := repo.Get(ctx, "alice", "recursion")
	if !errors.Is(err, coach.ErrNotFound) {
		t.Fatalf("get (missing) = %v, want coach.ErrNotFound", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	rec := bkt.Record{
		UserID:        "alice",
		SkillID:       "recursion",
		Mastery:       0.42,
		Attempts:      5,
		Correct:       3,
		LastPracticed: now,
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "alice", "recursion")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mastery != 0.42 || got.Attempts != 5 || got.Correct != 3 {
		t.Errorf("got %+v, want %+v", got, rec)
	}
	if !got.LastPracticed.Equal(now) {
		t.Errorf("last practiced = %v, want %v", got.LastPracticed, now)
	}

	// Put on an existing record updates in place rather than duplicating.
	rec.Mastery = 0.61
	rec.Attempts = 6
	rec.Correct = 4
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put (update): %v", err)
	}
	got, err = repo.Get(ctx, "alice", "recursion")
	if err != nil {
		t.Fatalf("get (after update): %v", err)
	}
	if got.Mastery != 0.61 || got.Attempts != 6 {
		t.Errorf("after update got %+v", got)
	}

	count, err := s.Client().MasteryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("record count = %d, want 1", count)
	}
}

func TestMasteryListByUserOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	for _, skillID := range []string{"recursion", "functions", "variables"} {
		err := repo.Put(ctx, bkt.Record{
			UserID: "alice", SkillID: skillID, Mastery: 0.3, LastPracticed: now,
		})
		if err != nil {
			t.Fatalf("put %s: %v", skillID, err)
		}
	}
	// A second user's records must not leak into alice's list.
	err := repo.Put(ctx, bkt.Record{
		UserID: "bob", SkillID: "loops", Mastery: 0.3, LastPracticed: now,
	})
	if err != nil {
		t.Fatalf("put bob: %v", err)
	}

	recs, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"functions", "recursion", "variables"}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i, w := range want {
		if recs[i].SkillID != w {
			t.Errorf("recs[%d].SkillID = %q, want %q", i, recs[i].SkillID, w)
		}
	}
}

func TestCardRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "alice", "recursion")
	if !errors.Is(err, coach.ErrNotFound) {
		t.Fatalf("get (missing) = %v, want coach.ErrNotFound", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	last := now.Add(-72 * time.Hour)
	card := spacedrep.Card{
		UserID:        "alice",
		SkillID:       "recursion",
		Stability:     3.0,
		Difficulty:    5.8,
		ElapsedDays:   3,
		ScheduledDays: 3,
		Reps:          4,
		Lapses:        1,
		State:         spacedrep.Review,
		LastReview:    &last,
		Due:           now.Add(96 * time.Hour),
	}
	if err := repo.Put(ctx, card); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "alice", "recursion")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != spacedrep.Review {
		t.Errorf("state = %v, want review", got.State)
	}
	if got.Reps != 4 || got.Lapses != 1 {
		t.Errorf("reps/lapses = %d/%d, want 4/1", got.Reps, got.Lapses)
	}
	if got.LastReview == nil || !got.LastReview.Equal(last) {
		t.Errorf("last review = %v, want %v", got.LastReview, last)
	}
	if !got.Due.Equal(card.Due) {
		t.Errorf("due = %v, want %v", got.Due, card.Due)
	}
}

func TestCardNewWithoutLastReview(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	card := spacedrep.NewCard("alice", "loops", now)
	if err := repo.Put(ctx, card); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "alice", "loops")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != spacedrep.New {
		t.Errorf("state = %v, want new", got.State)
	}
	if got.LastReview != nil {
		t.Errorf("last review = %v, want nil", got.LastReview)
	}
}

func TestCardListByUserOrderedByDue(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	due := map[string]time.Time{
		"recursion": now.Add(48 * time.Hour),
		"variables": now.Add(2 * time.Hour),
		"functions": now.Add(24 * time.Hour),
	}
	for skillID, d := range due {
		card := spacedrep.NewCard("alice", skillID, now)
		card.Due = d
		if err := repo.Put(ctx, card); err != nil {
			t.Fatalf("put %s: %v", skillID, err)
		}
	}

	cards, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"variables", "functions", "recursion"}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i, w := range want {
		if cards[i].SkillID != w {
			t.Errorf("cards[%d].SkillID = %q, want %q", i, cards[i].SkillID, w)
		}
	}
}

func TestReviewLogAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewLogRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	ratings := []spacedrep.Rating{spacedrep.Again, spacedrep.Good, spacedrep.Easy}
	for i, rating := range ratings {
		err := repo.Append(ctx, coach.ReviewLogEntry{
			UserID:        "alice",
			SkillID:       "recursion",
			Rating:        rating,
			Stability:     1.0 + float64(i),
			Difficulty:    5.0,
			ScheduledDays: float64(i + 1),
			State:         spacedrep.Review,
			At:            base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Recent returns newest first, honoring the limit.
	entries, err := repo.Recent(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Rating != spacedrep.Easy {
		t.Errorf("entries[0].Rating = %v, want easy", entries[0].Rating)
	}
	if entries[1].Rating != spacedrep.Good {
		t.Errorf("entries[1].Rating = %v, want good", entries[1].Rating)
	}
	if !entries[0].At.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("entries[0].At = %v, want %v", entries[0].At, base.Add(2*time.Minute))
	}
}

func TestPredictionSaveAndOutcome(t *testing.T) {
	s := openTestStore(t)
	repo := s.PredictionRepo()
	ctx := context.Background()

	pred := predict.Prediction{
		ID:          "pred-123",
		Probability: 0.71,
		Confidence:  0.5,
		Action:      "scaffold",
		Signals: predict.Signals{
			Complexity:        7,
			RecentErrors:      4,
			ResponseTimeRatio: 1.8,
			Velocity:          1.2,
			SampleSize:        5,
		},
	}
	if err := repo.Save(ctx, "alice", "recursion", pred); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.RecordOutcome(ctx, "pred-123", true); err != nil {
		t.Fatalf("record outcome: %v", err)
	}

	row, err := s.Client().PredictionRecord.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if row.Probability != 0.71 || row.Action != "scaffold" {
		t.Errorf("row = %+v", row)
	}
	if row.SampleSize != 5 {
		t.Errorf("sample size = %d, want 5", row.SampleSize)
	}
	if row.ActualStruggle == nil || !*row.ActualStruggle {
		t.Errorf("actual struggle = %v, want true", row.ActualStruggle)
	}
}

func TestPredictionOutcomeUnknownID(t *testing.T) {
	s := openTestStore(t)
	repo := s.PredictionRepo()

	err := repo.RecordOutcome(context.Background(), "nope", false)
	if !errors.Is(err, coach.ErrNotFound) {
		t.Fatalf("record outcome = %v, want coach.ErrNotFound", err)
	}
}

func TestGraphReplaceAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	seeded, err := repo.IsSeeded(ctx)
	if err != nil {
		t.Fatalf("is seeded: %v", err)
	}
	if seeded {
		t.Fatal("fresh store should not be seeded")
	}

	g, err := skillgraph.New(
		[]skillgraph.Skill{
			{ID: "variables", Name: "Variables", Category: "basics", Complexity: 1},
			{ID: "functions", Name: "Functions", Category: "basics", Complexity: 3},
		},
		[]skillgraph.Dependency{
			{SkillID: "functions", RequiresID: "variables", Strength: 0.9},
		},
	)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	if err := repo.Replace(ctx, g); err != nil {
		t.Fatalf("replace: %v", err)
	}

	seeded, err = repo.IsSeeded(ctx)
	if err != nil {
		t.Fatalf("is seeded: %v", err)
	}
	if !seeded {
		t.Fatal("store should be seeded after replace")
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("loaded %d skills, want 2", loaded.Len())
	}
	prereqs := loaded.PrerequisitesOf("functions")
	if len(prereqs) != 1 || prereqs[0].Skill.ID != "variables" {
		t.Errorf("prerequisites of functions = %+v", prereqs)
	}
	if prereqs[0].Strength != 0.9 {
		t.Errorf("strength = %v, want 0.9", prereqs[0].Strength)
	}

	// Replace again with a different graph; the old one must be gone.
	g2, err := skillgraph.New(
		[]skillgraph.Skill{{ID: "loops", Name: "Loops", Category: "basics", Complexity: 2}},
		nil,
	)
	if err != nil {
		t.Fatalf("build graph 2: %v", err)
	}
	if err := repo.Replace(ctx, g2); err != nil {
		t.Fatalf("replace 2: %v", err)
	}
	loaded, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load 2: %v", err)
	}
	if loaded.Len() != 1 {
		t.Errorf("loaded %d skills after replace, want 1", loaded.Len())
	}
	if _, err := loaded.Get("variables"); err == nil {
		t.Error("variables should be gone after replace")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"mastery_records", "review_cards", "review_logs", "prediction_records"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
