package skillgraph

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_CycleDetected(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Category: "c", Complexity: 1},
		{ID: "b", Name: "B", Category: "c", Complexity: 1},
		{ID: "c", Name: "C", Category: "c", Complexity: 1},
	}
	deps := []Dependency{
		{SkillID: "a", RequiresID: "b", Strength: 1},
		{SkillID: "b", RequiresID: "c", Strength: 1},
		{SkillID: "c", RequiresID: "a", Strength: 1},
	}

	_, err := New(skills, deps)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("got %v, want ErrCycle", err)
	}
	if !strings.Contains(err.Error(), "a") {
		t.Errorf("cycle error should name members, got %q", err.Error())
	}
}

func TestNew_SelfDependency(t *testing.T) {
	skills := []Skill{{ID: "a", Name: "A", Category: "c", Complexity: 1}}
	deps := []Dependency{{SkillID: "a", RequiresID: "a", Strength: 1}}

	_, err := New(skills, deps)
	if err == nil {
		t.Fatal("expected error for self-dependency")
	}
}

func TestNew_DuplicateID(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Category: "c", Complexity: 1},
		{ID: "a", Name: "A again", Category: "c", Complexity: 2},
	}
	_, err := New(skills, nil)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("got %v, want duplicate ID error", err)
	}
}

func TestNew_DanglingPrerequisite(t *testing.T) {
	skills := []Skill{{ID: "a", Name: "A", Category: "c", Complexity: 1}}
	deps := []Dependency{{SkillID: "a", RequiresID: "ghost", Strength: 1}}

	_, err := New(skills, deps)
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Errorf("got %v, want dangling prerequisite error", err)
	}
}

func TestNew_StrengthOutOfRange(t *testing.T) {
	skills := []Skill{
		{ID: "a", Name: "A", Category: "c", Complexity: 1},
		{ID: "b", Name: "B", Category: "c", Complexity: 1},
	}
	deps := []Dependency{{SkillID: "b", RequiresID: "a", Strength: 1.5}}

	_, err := New(skills, deps)
	if err == nil || !strings.Contains(err.Error(), "strength") {
		t.Errorf("got %v, want strength range error", err)
	}
}

func TestNew_ComplexityOutOfRange(t *testing.T) {
	skills := []Skill{{ID: "a", Name: "A", Category: "c", Complexity: 11}}
	_, err := New(skills, nil)
	if err == nil || !strings.Contains(err.Error(), "complexity") {
		t.Errorf("got %v, want complexity range error", err)
	}
}
