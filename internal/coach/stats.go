package coach

import (
	"context"
	"fmt"

	"github.com/ndthanh/studycoach/internal/spacedrep"
)

// Stats summarizes a user's standing across the whole curriculum.
type Stats struct {
	TotalSkills    int
	TrackedSkills  int
	MasteredSkills int
	AvgMastery     float64

	TotalCards int
	DueCards   int
	ByState    map[spacedrep.State]int
	TotalReps  int
	Lapses     int
}

// Stats computes the user's summary at the current time. "Mastered" is
// judged by the recommender's threshold so the stats view matches what
// unlocks dependent skills.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	records, err := s.mastery.ListByUser(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("list mastery: %w", err)
	}
	cards, err := s.cards.ListByUser(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("list cards: %w", err)
	}

	st := Stats{
		TotalSkills:   s.graph.Len(),
		TrackedSkills: len(records),
		TotalCards:    len(cards),
		ByState:       map[spacedrep.State]int{},
	}

	masteredAt := s.engine.MasteryThreshold()
	var sum float64
	for _, r := range records {
		sum += r.Mastery
		if r.Mastery >= masteredAt {
			st.MasteredSkills++
		}
	}
	if len(records) > 0 {
		st.AvgMastery = sum / float64(len(records))
	}

	now := s.now()
	for _, c := range cards {
		st.ByState[c.State]++
		st.TotalReps += c.Reps
		st.Lapses += c.Lapses
		if c.IsDue(now) {
			st.DueCards++
		}
	}
	return st, nil
}
