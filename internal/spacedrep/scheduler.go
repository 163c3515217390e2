package spacedrep

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Config tunes the scheduler. Zero-value fields are replaced by the
// defaults from DefaultConfig.
type Config struct {
	// DesiredRetention is the recall probability the next interval
	// targets. At 0.9 the interval equals the card's stability.
	DesiredRetention float64

	// InitStability seeds a new card's stability from its first rating.
	InitStability map[Rating]float64

	// GrowthRate scales how much a successful review multiplies
	// stability; Spacing amplifies the bonus for reviews answered well
	// after long gaps; MaxGrowth caps the multiplier.
	GrowthRate float64
	Spacing    float64
	MaxGrowth  float64

	// HardPenalty and EasyBonus modulate growth for the non-Good
	// success ratings.
	HardPenalty float64
	EasyBonus   float64

	// LapsePenalty scales post-lapse stability; a lapse at low
	// retrievability loses more than one at high retrievability.
	LapsePenalty float64
	MinStability float64

	// DifficultyStep moves difficulty per rating notch away from Good;
	// MeanReversion pulls difficulty back toward the midpoint each
	// review.
	DifficultyStep float64
	MeanReversion  float64

	MinIntervalDays float64
	MaxIntervalDays float64
}

// DefaultConfig returns the tuning used in production.
func DefaultConfig() Config {
	return Config{
		DesiredRetention: 0.9,
		InitStability: map[Rating]float64{
			Again: 0.5,
			Hard:  1.2,
			Good:  3.0,
			Easy:  7.0,
		},
		GrowthRate:      12.0,
		Spacing:         2.0,
		MaxGrowth:       15.0,
		HardPenalty:     0.6,
		EasyBonus:       1.4,
		LapsePenalty:    0.5,
		MinStability:    0.1,
		DifficultyStep:  0.8,
		MeanReversion:   0.05,
		MinIntervalDays: 1,
		MaxIntervalDays: 365,
	}
}

// Scheduler computes review outcomes. It carries no per-card state and
// is safe for concurrent use.
type Scheduler struct {
	cfg Config
}

// NewScheduler builds a scheduler, filling zero config fields with
// defaults.
func NewScheduler(cfg Config) *Scheduler {
	def := DefaultConfig()
	if cfg.DesiredRetention <= 0 || cfg.DesiredRetention >= 1 {
		cfg.DesiredRetention = def.DesiredRetention
	}
	if cfg.InitStability == nil {
		cfg.InitStability = def.InitStability
	}
	if cfg.GrowthRate <= 0 {
		cfg.GrowthRate = def.GrowthRate
	}
	if cfg.Spacing <= 0 {
		cfg.Spacing = def.Spacing
	}
	if cfg.MaxGrowth <= 0 {
		cfg.MaxGrowth = def.MaxGrowth
	}
	if cfg.HardPenalty <= 0 {
		cfg.HardPenalty = def.HardPenalty
	}
	if cfg.EasyBonus <= 0 {
		cfg.EasyBonus = def.EasyBonus
	}
	if cfg.LapsePenalty <= 0 {
		cfg.LapsePenalty = def.LapsePenalty
	}
	if cfg.MinStability <= 0 {
		cfg.MinStability = def.MinStability
	}
	if cfg.DifficultyStep <= 0 {
		cfg.DifficultyStep = def.DifficultyStep
	}
	if cfg.MeanReversion <= 0 {
		cfg.MeanReversion = def.MeanReversion
	}
	if cfg.MinIntervalDays <= 0 {
		cfg.MinIntervalDays = def.MinIntervalDays
	}
	if cfg.MaxIntervalDays <= 0 {
		cfg.MaxIntervalDays = def.MaxIntervalDays
	}
	return &Scheduler{cfg: cfg}
}

// Review applies one graded review at the given time and returns the
// rescheduled card. The input card is not modified.
func (s *Scheduler) Review(card Card, rating Rating, now time.Time) (Card, error) {
	if !rating.IsValid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRating, int8(rating))
	}

	next := card.clone()
	next.ElapsedDays = s.elapsedDays(card, now)

	if card.State == New {
		s.firstReview(&next, rating)
	} else {
		s.repeatReview(&next, rating, now)
	}

	next.Reps++
	lr := now
	next.LastReview = &lr

	interval := s.interval(next.Stability)
	next.ScheduledDays = interval
	next.Due = now.Add(time.Duration(interval * 24 * float64(time.Hour)))
	return next, nil
}

// Retrievability estimates recall probability at the given time:
// 0.9^(elapsed/stability), so a card reviewed exactly at its stability
// sits at 90%.
func (s *Scheduler) Retrievability(card Card, now time.Time) float64 {
	if card.State == New || card.LastReview == nil || card.Stability <= 0 {
		return 0
	}
	elapsed := s.elapsedDays(card, now)
	return math.Pow(0.9, elapsed/card.Stability)
}

// Due returns the cards due at the given time, most overdue first, with
// ties broken by skill ID for stable output.
func Due(cards []Card, now time.Time) []Card {
	var due []Card
	for _, c := range cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].Due.Equal(due[j].Due) {
			return due[i].Due.Before(due[j].Due)
		}
		return due[i].SkillID < due[j].SkillID
	})
	return due
}

func (s *Scheduler) firstReview(c *Card, rating Rating) {
	c.Stability = s.cfg.InitStability[rating]
	c.Difficulty = clampDifficulty(5 + float64(Good-rating))
	if rating == Again {
		c.State = Learning
	} else {
		c.State = Review
	}
}

func (s *Scheduler) repeatReview(c *Card, rating Rating, now time.Time) {
	r := s.Retrievability(*c, now)
	if c.State == Learning || c.State == Relearning {
		// Short-interval cards have no meaningful decay curve yet.
		r = 1
	}

	if rating == Again {
		c.Lapses++
		if c.State == Review {
			c.State = Relearning
		}
		// Lower retrievability at the moment of failure means the
		// memory was weaker, so more stability is forfeited.
		c.Stability = math.Max(s.cfg.MinStability, c.Stability*s.cfg.LapsePenalty*r)
	} else {
		c.Stability *= s.growth(c.Difficulty, r, rating)
		if c.State == Learning || c.State == Relearning {
			c.State = Review
		}
	}

	c.Difficulty = s.nextDifficulty(c.Difficulty, rating)
}

// growth is the stability multiplier for a successful review. Easier
// material (low difficulty) and longer gaps survived (low retrievability)
// both grow stability faster.
func (s *Scheduler) growth(difficulty, retrievability float64, rating Rating) float64 {
	mod := 1.0
	switch rating {
	case Hard:
		mod = s.cfg.HardPenalty
	case Easy:
		mod = s.cfg.EasyBonus
	}
	g := 1 + s.cfg.GrowthRate*
		((11-difficulty)/10)*
		(math.Exp(s.cfg.Spacing*(1-retrievability))-1)*
		mod
	return math.Min(g, s.cfg.MaxGrowth)
}

func (s *Scheduler) nextDifficulty(d float64, rating Rating) float64 {
	d -= s.cfg.DifficultyStep * float64(rating-Good)
	d = s.cfg.MeanReversion*5 + (1-s.cfg.MeanReversion)*d
	return clampDifficulty(d)
}

func (s *Scheduler) interval(stability float64) float64 {
	days := stability * math.Log(s.cfg.DesiredRetention) / math.Log(0.9)
	return math.Min(math.Max(days, s.cfg.MinIntervalDays), s.cfg.MaxIntervalDays)
}

func (s *Scheduler) elapsedDays(c Card, now time.Time) float64 {
	if c.LastReview == nil {
		return 0
	}
	days := now.Sub(*c.LastReview).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, 1), 10)
}
