package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewCard holds the spaced-repetition scheduling state for one
// (user, skill) pair. Created on first review, never deleted.
type ReviewCard struct {
	ent.Schema
}

func (ReviewCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.Float("stability").
			Min(0).
			Comment("Memory stability in days; 0 before first review"),
		field.Float("difficulty").
			Comment("Bounded [1,10]; 0 before first review"),
		field.Float("elapsed_days").Min(0).Default(0),
		field.Float("scheduled_days").Min(0).Default(0),
		field.Int("reps").NonNegative().Default(0),
		field.Int("lapses").NonNegative().Default(0),
		field.String("state").
			Default("new").
			Comment("new | learning | review | relearning"),
		field.Time("last_review").Optional().Nillable(),
		field.Time("due"),
	}
}

func (ReviewCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id", "due"),
	}
}
