package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill is a node in the prerequisite graph. Immutable once seeded,
// except for complexity re-rating.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("name").NotEmpty(),
		field.String("category").NotEmpty(),
		field.Int("complexity").
			Range(1, 10).
			Comment("Static difficulty rating, used as the struggle prior"),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
