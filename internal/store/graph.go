package store

import (
	"context"
	"fmt"

	"github.com/ndthanh/studycoach/ent"
	"github.com/ndthanh/studycoach/ent/skill"
	"github.com/ndthanh/studycoach/ent/skilldependency"
	"github.com/ndthanh/studycoach/internal/skillgraph"
)

// GraphRepo persists the skill graph. The graph is write-once per seed:
// Replace swaps the whole curriculum in a single transaction so readers
// never see a half-seeded graph.
type GraphRepo struct {
	client *ent.Client
}

// Replace deletes the stored graph and writes g in its place.
func (r *GraphRepo) Replace(ctx context.Context, g *skillgraph.Graph) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.SkillDependency.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear dependencies: %w", err)
	}
	if _, err := tx.Skill.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear skills: %w", err)
	}

	for _, s := range g.All() {
		_, err := tx.Skill.Create().
			SetSkillID(s.ID).
			SetName(s.Name).
			SetCategory(s.Category).
			SetComplexity(s.Complexity).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save skill %s: %w", s.ID, err)
		}
	}
	for _, d := range g.Dependencies() {
		_, err := tx.SkillDependency.Create().
			SetSkillID(d.SkillID).
			SetRequiresID(d.RequiresID).
			SetStrength(d.Strength).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save dependency %s->%s: %w", d.SkillID, d.RequiresID, err)
		}
	}

	return tx.Commit()
}

// Load rebuilds the graph from storage. Returns coach-agnostic
// skillgraph errors if the stored data no longer validates.
func (r *GraphRepo) Load(ctx context.Context) (*skillgraph.Graph, error) {
	skillRows, err := r.client.Skill.Query().
		Order(ent.Asc(skill.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	depRows, err := r.client.SkillDependency.Query().
		Order(ent.Asc(skilldependency.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}

	skills := make([]skillgraph.Skill, len(skillRows))
	for i, row := range skillRows {
		skills[i] = skillgraph.Skill{
			ID:         row.SkillID,
			Name:       row.Name,
			Category:   row.Category,
			Complexity: row.Complexity,
		}
	}
	deps := make([]skillgraph.Dependency, len(depRows))
	for i, row := range depRows {
		deps[i] = skillgraph.Dependency{
			SkillID:    row.SkillID,
			RequiresID: row.RequiresID,
			Strength:   row.Strength,
		}
	}
	return skillgraph.New(skills, deps)
}

// IsSeeded reports whether any skills are stored.
func (r *GraphRepo) IsSeeded(ctx context.Context) (bool, error) {
	n, err := r.client.Skill.Query().Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count skills: %w", err)
	}
	return n > 0, nil
}
