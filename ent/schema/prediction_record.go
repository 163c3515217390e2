package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictionRecord is the append-only audit trail for struggle
// predictions: inputs and outputs at prediction time, later annotated
// with the actual outcome for accuracy auditing.
type PredictionRecord struct {
	ent.Schema
}

func (PredictionRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PredictionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("prediction_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.Int("prior_difficulty"),
		field.Int("recent_errors"),
		field.Float("response_time_ratio"),
		field.Float("learning_velocity"),
		field.Int("sample_size").NonNegative().Default(0),
		field.Float("probability").Range(0, 1),
		field.Float("confidence").Range(0, 1),
		field.String("action").
			Comment("scaffold | normal"),
		field.Bool("actual_struggle").
			Optional().
			Nillable().
			Comment("Annotated after the fact; null until observed"),
	}
}

func (PredictionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id"),
	}
}
