package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewLog records a single submitted review rating and the resulting
// card state, for history and later scheduler re-tuning.
type ReviewLog struct {
	ent.Schema
}

func (ReviewLog) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.String("rating").
			Immutable().
			Comment("again | hard | good | easy"),
		field.Float("stability"),
		field.Float("difficulty"),
		field.Float("scheduled_days"),
		field.String("state"),
	}
}

func (ReviewLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id"),
	}
}
