package recommend

import (
	"errors"
	"testing"

	"github.com/ndthanh/studycoach/internal/skillgraph"
)

func buildGraph(t *testing.T, skills []skillgraph.Skill, deps []skillgraph.Dependency) *skillgraph.Graph {
	t.Helper()
	g, err := skillgraph.New(skills, deps)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	return g
}

func chainGraph(t *testing.T) *skillgraph.Graph {
	return buildGraph(t,
		[]skillgraph.Skill{
			{ID: "variables", Name: "Variables", Category: "fundamentals", Complexity: 1},
			{ID: "functions", Name: "Functions", Category: "functions", Complexity: 3},
			{ID: "recursion", Name: "Recursion", Category: "functions", Complexity: 6},
		},
		[]skillgraph.Dependency{
			{SkillID: "functions", RequiresID: "variables", Strength: 1.0},
			{SkillID: "recursion", RequiresID: "functions", Strength: 1.0},
		})
}

func masteryMap(m map[string]float64) MasteryFunc {
	return func(id string) float64 { return m[id] }
}

func TestRecommend_NoPrerequisites(t *testing.T) {
	e := New(chainGraph(t), Config{})
	rec, err := e.Recommend("variables", masteryMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "variables" || rec.Reason != "ready" {
		t.Errorf("got %+v, want variables/ready", rec)
	}
	if len(rec.Chain) != 1 || rec.Chain[0] != "variables" {
		t.Errorf("chain = %v, want [variables]", rec.Chain)
	}
}

func TestRecommend_WeakPrerequisiteRedirects(t *testing.T) {
	e := New(chainGraph(t), Config{})

	// Wants recursion, but functions sits at 0.2 against threshold 0.6.
	// Variables is solid, so the walk stops at functions.
	rec, err := e.Recommend("recursion", masteryMap(map[string]float64{
		"functions": 0.2,
		"variables": 0.9,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "functions" {
		t.Errorf("got %q, want functions", rec.SkillID)
	}
	if rec.Reason != "prerequisite gap" {
		t.Errorf("reason = %q, want prerequisite gap", rec.Reason)
	}
	want := []string{"recursion", "functions"}
	if len(rec.Chain) != 2 || rec.Chain[0] != want[0] || rec.Chain[1] != want[1] {
		t.Errorf("chain = %v, want %v", rec.Chain, want)
	}
}

func TestRecommend_DescendsToDeepestGap(t *testing.T) {
	e := New(chainGraph(t), Config{})

	// Nothing practiced: the walk goes all the way to the root.
	rec, err := e.Recommend("recursion", masteryMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "variables" {
		t.Errorf("got %q, want variables", rec.SkillID)
	}
	if len(rec.Chain) != 3 {
		t.Errorf("chain = %v, want full descent", rec.Chain)
	}
}

func TestRecommend_AllPrerequisitesMet(t *testing.T) {
	e := New(chainGraph(t), Config{})
	rec, err := e.Recommend("recursion", masteryMap(map[string]float64{
		"functions": 0.8,
		"variables": 0.7,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "recursion" || rec.Reason != "ready" {
		t.Errorf("got %+v, want recursion/ready", rec)
	}
}

func TestRecommend_ThresholdBoundary(t *testing.T) {
	e := New(chainGraph(t), Config{})
	// Mastery exactly at the threshold counts as met.
	rec, err := e.Recommend("functions", masteryMap(map[string]float64{
		"variables": 0.6,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "functions" {
		t.Errorf("got %q, want functions at exact threshold", rec.SkillID)
	}
}

func TestRecommend_UrgencyPicksStrongestWeightedGap(t *testing.T) {
	g := buildGraph(t,
		[]skillgraph.Skill{
			{ID: "a", Name: "A", Category: "c", Complexity: 1},
			{ID: "b", Name: "B", Category: "c", Complexity: 1},
			{ID: "top", Name: "Top", Category: "c", Complexity: 5},
		},
		[]skillgraph.Dependency{
			{SkillID: "top", RequiresID: "a", Strength: 1.0},
			{SkillID: "top", RequiresID: "b", Strength: 0.3},
		})
	e := New(g, Config{})

	// b is weaker in raw mastery, but a's full-strength edge makes it
	// more urgent: 1.0*(0.6-0.3)=0.30 vs 0.3*(0.6-0.1)=0.15.
	rec, err := e.Recommend("top", masteryMap(map[string]float64{
		"a": 0.3,
		"b": 0.1,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if rec.SkillID != "a" {
		t.Errorf("got %q, want a", rec.SkillID)
	}
}

func TestRecommend_UnknownTarget(t *testing.T) {
	e := New(chainGraph(t), Config{})
	_, err := e.Recommend("telepathy", masteryMap(nil))
	if !errors.Is(err, skillgraph.ErrUnknownSkill) {
		t.Errorf("got %v, want ErrUnknownSkill", err)
	}
}

func TestRecommend_MaxDepth(t *testing.T) {
	skills := make([]skillgraph.Skill, 30)
	var deps []skillgraph.Dependency
	for i := range skills {
		id := string(rune('a' + i%26))
		if i >= 26 {
			id = "z" + string(rune('a'+i-26))
		}
		skills[i] = skillgraph.Skill{ID: id, Name: id, Category: "c", Complexity: 1}
		if i > 0 {
			deps = append(deps, skillgraph.Dependency{SkillID: id, RequiresID: skills[i-1].ID, Strength: 1})
		}
	}
	g := buildGraph(t, skills, deps)

	e := New(g, Config{MaxDepth: 5})
	_, err := e.Recommend(skills[len(skills)-1].ID, masteryMap(nil))
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("got %v, want ErrMaxDepth", err)
	}
}
