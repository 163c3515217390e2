package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord holds the BKT mastery estimate for one (user, skill) pair.
// Created lazily on first practice attempt, never deleted.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.Float("mastery").
			Range(0, 1).
			Comment("P(mastery) per Bayesian Knowledge Tracing"),
		field.Int("attempts").NonNegative().Default(0),
		field.Int("correct").NonNegative().Default(0),
		field.Time("last_practiced"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id"),
	}
}
