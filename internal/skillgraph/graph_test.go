package skillgraph

import (
	"errors"
	"testing"
)

func testSkills() []Skill {
	return []Skill{
		{ID: "variables", Name: "Variables", Category: "fundamentals", Complexity: 1},
		{ID: "functions", Name: "Functions", Category: "functions", Complexity: 3},
		{ID: "recursion", Name: "Recursion", Category: "functions", Complexity: 6},
		{ID: "loops", Name: "Loops", Category: "control-flow", Complexity: 3},
	}
}

func testDeps() []Dependency {
	return []Dependency{
		{SkillID: "functions", RequiresID: "variables", Strength: 1.0},
		{SkillID: "recursion", RequiresID: "functions", Strength: 1.0},
		{SkillID: "loops", RequiresID: "variables", Strength: 0.8},
	}
}

func mustGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New(testSkills(), testDeps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestGet_Known(t *testing.T) {
	g := mustGraph(t)
	s, err := g.Get("recursion")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Name != "Recursion" || s.Complexity != 6 {
		t.Errorf("got %+v, want Recursion/6", s)
	}
}

func TestGet_Unknown(t *testing.T) {
	g := mustGraph(t)
	_, err := g.Get("quantum-computing")
	if !errors.Is(err, ErrUnknownSkill) {
		t.Errorf("got %v, want ErrUnknownSkill", err)
	}
}

func TestPrerequisitesOf(t *testing.T) {
	g := mustGraph(t)
	ps := g.PrerequisitesOf("recursion")
	if len(ps) != 1 {
		t.Fatalf("got %d prerequisites, want 1", len(ps))
	}
	if ps[0].Skill.ID != "functions" || ps[0].Strength != 1.0 {
		t.Errorf("got %+v, want functions/1.0", ps[0])
	}
}

func TestPrerequisitesOf_StrengthOrdering(t *testing.T) {
	skills := append(testSkills(), Skill{ID: "comprehensions", Name: "Comprehensions", Category: "idioms", Complexity: 5})
	deps := append(testDeps(),
		Dependency{SkillID: "comprehensions", RequiresID: "loops", Strength: 0.5},
		Dependency{SkillID: "comprehensions", RequiresID: "functions", Strength: 0.9},
	)
	g, err := New(skills, deps)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ps := g.PrerequisitesOf("comprehensions")
	if len(ps) != 2 {
		t.Fatalf("got %d prerequisites, want 2", len(ps))
	}
	if ps[0].Skill.ID != "functions" {
		t.Errorf("strongest prerequisite first: got %q, want functions", ps[0].Skill.ID)
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := mustGraph(t)
	order := g.TopologicalOrder()
	if len(order) != 4 {
		t.Fatalf("got %d skills, want 4", len(order))
	}

	pos := make(map[string]int)
	for i, s := range order {
		pos[s.ID] = i
	}
	if pos["variables"] > pos["functions"] {
		t.Error("variables must precede functions")
	}
	if pos["functions"] > pos["recursion"] {
		t.Error("functions must precede recursion")
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	a := mustGraph(t).TopologicalOrder()
	b := mustGraph(t).TopologicalOrder()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

func TestRoots(t *testing.T) {
	g := mustGraph(t)
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "variables" {
		t.Errorf("got %+v, want [variables]", roots)
	}
}

func TestDependentsOf(t *testing.T) {
	g := mustGraph(t)
	deps := g.DependentsOf("variables")
	if len(deps) != 2 {
		t.Fatalf("got %d dependents, want 2", len(deps))
	}
	if deps[0].ID != "functions" || deps[1].ID != "loops" {
		t.Errorf("got %v, want [functions loops]", deps)
	}
}

func TestByCategory(t *testing.T) {
	g := mustGraph(t)
	fns := g.ByCategory("functions")
	if len(fns) != 2 {
		t.Fatalf("got %d skills, want 2", len(fns))
	}
	if fns[0].ID != "functions" {
		t.Errorf("topological order within category: got %q first, want functions", fns[0].ID)
	}
}

func TestDependencies_RoundTrip(t *testing.T) {
	g := mustGraph(t)
	g2, err := New(g.All(), g.Dependencies())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if g2.Len() != g.Len() {
		t.Errorf("rebuilt graph has %d skills, want %d", g2.Len(), g.Len())
	}
	if len(g2.Dependencies()) != len(g.Dependencies()) {
		t.Errorf("rebuilt graph has %d edges, want %d", len(g2.Dependencies()), len(g.Dependencies()))
	}
}
