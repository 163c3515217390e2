// Package recommend picks the next skill to practice by walking the
// prerequisite graph backwards from a target until it finds the weakest
// unmet foundation.
package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ndthanh/studycoach/internal/skillgraph"
)

// ErrMaxDepth marks a prerequisite walk that exceeded the depth bound.
// The graph is validated acyclic at load, so hitting this means the
// curriculum is deeper than any sane skill tree.
var ErrMaxDepth = errors.New("recommend: max backtracking depth exceeded")

// Config tunes the engine. Zero values fall back to defaults.
type Config struct {
	// MasteryThreshold is the mastery level at which a prerequisite is
	// considered solid enough to build on.
	MasteryThreshold float64

	// MaxDepth bounds the backtracking walk.
	MaxDepth int
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold: 0.6,
		MaxDepth:         25,
	}
}

// MasteryFunc reports current mastery for a skill. Callers decide what a
// never-practiced skill reports; the coach substitutes its default prior.
type MasteryFunc func(skillID string) float64

// Recommendation names the skill to practice next and how the engine
// got there.
type Recommendation struct {
	// SkillID is the skill to practice.
	SkillID string `json:"skill_id"`

	// Reason is "ready" when the target itself is recommended, or
	// "prerequisite gap" when a weak foundation redirects practice.
	Reason string `json:"reason"`

	// Chain is the backtracking path from the target down to the
	// recommended skill, target first.
	Chain []string `json:"chain"`
}

// Engine resolves recommendations against a skill graph.
type Engine struct {
	graph *skillgraph.Graph
	cfg   Config
}

// MasteryThreshold reports the configured threshold so callers can count
// mastered skills by the same bar the walk uses.
func (e *Engine) MasteryThreshold() float64 { return e.cfg.MasteryThreshold }

// New builds an engine, filling zero config fields with defaults.
func New(graph *skillgraph.Graph, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.MasteryThreshold <= 0 {
		cfg.MasteryThreshold = def.MasteryThreshold
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = def.MaxDepth
	}
	return &Engine{graph: graph, cfg: cfg}
}

// Recommend returns what to practice when the learner wants to work on
// target. If every prerequisite is at or above the mastery threshold the
// target itself comes back; otherwise the walk descends into the most
// urgent gap, recursively, and recommends the deepest weak skill.
func (e *Engine) Recommend(target string, masteryOf MasteryFunc) (Recommendation, error) {
	if _, err := e.graph.Get(target); err != nil {
		return Recommendation{}, err
	}

	visited := map[string]bool{}
	chain := []string{target}
	current := target

	for depth := 0; ; depth++ {
		if depth >= e.cfg.MaxDepth {
			return Recommendation{}, fmt.Errorf("%w: target %q, depth %d", ErrMaxDepth, target, e.cfg.MaxDepth)
		}
		visited[current] = true

		gap, ok := e.weakestPrerequisite(current, masteryOf, visited)
		if !ok {
			reason := "prerequisite gap"
			if current == target {
				reason = "ready"
			}
			return Recommendation{SkillID: current, Reason: reason, Chain: chain}, nil
		}
		chain = append(chain, gap)
		current = gap
	}
}

// weakestPrerequisite finds the unmet prerequisite with the highest
// urgency, skipping already-visited skills so a malformed graph cannot
// loop. Urgency weighs how far below threshold a skill is by how
// strongly it is required.
func (e *Engine) weakestPrerequisite(skillID string, masteryOf MasteryFunc, visited map[string]bool) (string, bool) {
	type gap struct {
		id      string
		urgency float64
	}
	var gaps []gap
	for _, p := range e.graph.PrerequisitesOf(skillID) {
		if visited[p.Skill.ID] {
			continue
		}
		m := masteryOf(p.Skill.ID)
		if m >= e.cfg.MasteryThreshold {
			continue
		}
		gaps = append(gaps, gap{
			id:      p.Skill.ID,
			urgency: p.Strength * (e.cfg.MasteryThreshold - m),
		})
	}
	if len(gaps) == 0 {
		return "", false
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].urgency != gaps[j].urgency {
			return gaps[i].urgency > gaps[j].urgency
		}
		return gaps[i].id < gaps[j].id
	})
	return gaps[0].id, true
}
