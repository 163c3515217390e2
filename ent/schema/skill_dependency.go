package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillDependency is a directed edge: skill_id requires requires_id.
// Strength in [0,1] expresses how critical the prerequisite is.
type SkillDependency struct {
	ent.Schema
}

func (SkillDependency) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty().Immutable(),
		field.String("requires_id").NotEmpty().Immutable(),
		field.Float("strength").
			Range(0, 1).
			Default(1.0),
	}
}

func (SkillDependency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "requires_id").Unique(),
		index.Fields("requires_id"),
	}
}
