package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the skill DAG with precomputed indices. It is read-only
// after construction; mutations happen by rebuilding from the store.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[string][]Skill
	prereqs    map[string][]Prerequisite
	dependents map[string][]string
	roots      []Skill
	topoOrder  []Skill
	topoIndex  map[string]int
}

// New constructs a Graph from skills and dependency edges.
// It validates the input (duplicate IDs, dangling references,
// out-of-range strengths, cycles) and builds all indices including
// a deterministic topological order (Kahn's algorithm).
func New(skills []Skill, deps []Dependency) (*Graph, error) {
	if err := validate(skills, deps); err != nil {
		return nil, err
	}

	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[string][]Skill),
		prereqs:    make(map[string][]Prerequisite, len(skills)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	for i := range g.skills {
		g.byID[g.skills[i].ID] = &g.skills[i]
	}

	// Forward and reverse edges. Prerequisites are ordered by strength
	// descending so the most critical come first.
	for _, d := range deps {
		g.prereqs[d.SkillID] = append(g.prereqs[d.SkillID], Prerequisite{
			Skill:    *g.byID[d.RequiresID],
			Strength: d.Strength,
		})
		g.dependents[d.RequiresID] = append(g.dependents[d.RequiresID], d.SkillID)
	}
	for id := range g.prereqs {
		ps := g.prereqs[id]
		sort.Slice(ps, func(i, j int) bool {
			if ps[i].Strength != ps[j].Strength {
				return ps[i].Strength > ps[j].Strength
			}
			return ps[i].Skill.ID < ps[j].Skill.ID
		})
	}

	// Topological sort (Kahn's algorithm) with sorted queues for
	// deterministic ordering.
	inDegree := make(map[string]int, len(skills))
	for _, s := range g.skills {
		inDegree[s.ID] = len(g.prereqs[s.ID])
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		g.topoOrder = append(g.topoOrder, *g.byID[id])

		next := slices.Clone(g.dependents[id])
		sort.Strings(next)
		for _, depID := range next {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	for i, s := range g.topoOrder {
		g.topoIndex[s.ID] = i
	}

	for i := range g.skills {
		if len(g.prereqs[g.skills[i].ID]) == 0 {
			g.roots = append(g.roots, g.skills[i])
		}
	}

	// Group by category, ordered by topological position.
	for _, s := range g.topoOrder {
		g.byCategory[s.Category] = append(g.byCategory[s.Category], s)
	}

	return g, nil
}

// Get returns a skill by ID.
func (g *Graph) Get(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %q", ErrUnknownSkill, id)
	}
	return *s, nil
}

// Contains reports whether the graph has a skill with the given ID.
func (g *Graph) Contains(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// All returns all skills in the graph.
func (g *Graph) All() []Skill {
	return slices.Clone(g.skills)
}

// Len returns the number of skills.
func (g *Graph) Len() int {
	return len(g.skills)
}

// ByCategory returns all skills in a category, in topological order.
func (g *Graph) ByCategory(category string) []Skill {
	return slices.Clone(g.byCategory[category])
}

// Categories returns the distinct categories in sorted order.
func (g *Graph) Categories() []string {
	out := make([]string, 0, len(g.byCategory))
	for c := range g.byCategory {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// PrerequisitesOf returns the direct prerequisites of a skill with
// their strengths, most critical first.
func (g *Graph) PrerequisitesOf(id string) []Prerequisite {
	return slices.Clone(g.prereqs[id])
}

// DependentsOf returns skills that directly depend on the given skill.
func (g *Graph) DependentsOf(id string) []Skill {
	ids := slices.Clone(g.dependents[id])
	sort.Strings(ids)
	out := make([]Skill, 0, len(ids))
	for _, depID := range ids {
		out = append(out, *g.byID[depID])
	}
	return out
}

// Roots returns all skills with no prerequisites.
func (g *Graph) Roots() []Skill {
	return slices.Clone(g.roots)
}

// TopologicalOrder returns all skills in a valid topological order:
// every prerequisite appears before the skills that require it.
func (g *Graph) TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}

// Dependencies returns all edges of the graph.
func (g *Graph) Dependencies() []Dependency {
	var out []Dependency
	for _, s := range g.topoOrder {
		for _, p := range g.prereqs[s.ID] {
			out = append(out, Dependency{
				SkillID:    s.ID,
				RequiresID: p.Skill.ID,
				Strength:   p.Strength,
			})
		}
	}
	return out
}
