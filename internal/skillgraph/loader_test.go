package skillgraph

import (
	"strings"
	"testing"
)

func TestLoad_Valid(t *testing.T) {
	doc := `{
		"version": "v1.0.0",
		"skills": [
			{"id": "variables", "name": "Variables", "category": "fundamentals", "complexity": 1},
			{"id": "functions", "name": "Functions", "category": "functions", "complexity": 3,
			 "prereqs": [{"id": "variables", "strength": 1.0}]}
		]
	}`

	g, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("got %d skills, want 2", g.Len())
	}

	ps := g.PrerequisitesOf("functions")
	if len(ps) != 1 || ps[0].Strength != 1.0 {
		t.Errorf("got %+v, want one prerequisite at strength 1.0", ps)
	}
}

func TestLoad_DefaultStrengths(t *testing.T) {
	doc := `{
		"version": "v1.0.0",
		"skills": [
			{"id": "a", "name": "A", "category": "c", "complexity": 1},
			{"id": "b", "name": "B", "category": "c", "complexity": 1},
			{"id": "single", "name": "Single", "category": "c", "complexity": 2,
			 "prereqs": [{"id": "a"}]},
			{"id": "multi", "name": "Multi", "category": "c", "complexity": 2,
			 "prereqs": [{"id": "a"}, {"id": "b"}]}
		]
	}`

	g, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A sole prerequisite defaults to 1.0, shared prerequisites to 0.8.
	if ps := g.PrerequisitesOf("single"); ps[0].Strength != 1.0 {
		t.Errorf("single prereq strength = %f, want 1.0", ps[0].Strength)
	}
	for _, p := range g.PrerequisitesOf("multi") {
		if p.Strength != 0.8 {
			t.Errorf("multi prereq strength = %f, want 0.8", p.Strength)
		}
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	doc := `{"version": "v1.0.0", "skills": [{"id": "a", "name": "A", "category": "c", "complexity": 99}]}`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Error("expected schema validation error for complexity 99")
	}
}

func TestLoad_MissingVersion(t *testing.T) {
	doc := `{"skills": [{"id": "a", "name": "A", "category": "c", "complexity": 1}]}`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Error("expected error for missing version")
	}
}

func TestLoad_IncompatibleMajorVersion(t *testing.T) {
	doc := `{"version": "v2.0.0", "skills": [{"id": "a", "name": "A", "category": "c", "complexity": 1}]}`
	_, err := Load(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "incompatible") {
		t.Errorf("got %v, want incompatible version error", err)
	}
}

func TestLoad_CompatibleMinorVersion(t *testing.T) {
	doc := `{"version": "v1.3.0", "skills": [{"id": "a", "name": "A", "category": "c", "complexity": 1}]}`
	if _, err := Load(strings.NewReader(doc)); err != nil {
		t.Errorf("minor version bump should load, got %v", err)
	}
}

func TestLoad_NotJSON(t *testing.T) {
	if _, err := Load(strings.NewReader("not json at all")); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefault_EmbeddedSeed(t *testing.T) {
	g, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if g.Len() < 10 {
		t.Errorf("embedded seed has %d skills, want a real curriculum", g.Len())
	}
	if !g.Contains("recursion") || !g.Contains("functions") {
		t.Error("embedded seed missing expected skills")
	}
}
