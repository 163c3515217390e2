package skillgraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for graph construction and lookups.
// Check with errors.Is.
var (
	ErrCycle        = errors.New("skillgraph: cycle detected")
	ErrUnknownSkill = errors.New("skillgraph: unknown skill")
)

// validate performs all structural checks on the given skill set and
// edges. Returns a combined error describing all problems found, or nil.
func validate(skills []Skill, deps []Dependency) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s.ID == "" {
			errs = append(errs, "skill with empty ID")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
		if s.Complexity < 1 || s.Complexity > 10 {
			errs = append(errs, fmt.Sprintf("skill %q: complexity must be in [1,10], got %d", s.ID, s.Complexity))
		}
	}

	for _, d := range deps {
		if !idSet[d.SkillID] {
			errs = append(errs, fmt.Sprintf("dependency references nonexistent skill %q", d.SkillID))
		}
		if !idSet[d.RequiresID] {
			errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", d.SkillID, d.RequiresID))
		}
		if d.Strength < 0 || d.Strength > 1 {
			errs = append(errs, fmt.Sprintf("dependency %q -> %q: strength must be in [0,1], got %f", d.SkillID, d.RequiresID, d.Strength))
		}
		if d.SkillID == d.RequiresID {
			errs = append(errs, fmt.Sprintf("skill %q depends on itself", d.SkillID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}

	if cycleNodes := findCycle(skills, deps); len(cycleNodes) > 0 {
		return fmt.Errorf("%w: involving skills %s", ErrCycle, strings.Join(cycleNodes, ", "))
	}

	return nil
}

// findCycle runs Kahn's algorithm and returns the IDs left with
// positive in-degree, which are exactly the cycle members and their
// downstream nodes. Empty result means the graph is acyclic.
func findCycle(skills []Skill, deps []Dependency) []string {
	inDegree := make(map[string]int, len(skills))
	adj := make(map[string][]string)
	for _, s := range skills {
		inDegree[s.ID] = 0
	}
	for _, d := range deps {
		inDegree[d.SkillID]++
		adj[d.RequiresID] = append(adj[d.RequiresID], d.SkillID)
	}

	var queue []string
	for _, s := range skills {
		if inDegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adj[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited == len(skills) {
		return nil
	}

	var cycleNodes []string
	for id, deg := range inDegree {
		if deg > 0 {
			cycleNodes = append(cycleNodes, id)
		}
	}
	sort.Strings(cycleNodes)
	return cycleNodes
}
