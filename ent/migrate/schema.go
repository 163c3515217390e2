// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// PredictionRecordsColumns holds the columns for the "prediction_records" table.
	PredictionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "prediction_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "prior_difficulty", Type: field.TypeInt},
		{Name: "recent_errors", Type: field.TypeInt},
		{Name: "response_time_ratio", Type: field.TypeFloat64},
		{Name: "learning_velocity", Type: field.TypeFloat64},
		{Name: "sample_size", Type: field.TypeInt, Default: 0},
		{Name: "probability", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "action", Type: field.TypeString},
		{Name: "actual_struggle", Type: field.TypeBool, Nullable: true},
	}
	// PredictionRecordsTable holds the schema information for the "prediction_records" table.
	PredictionRecordsTable = &schema.Table{
		Name:       "prediction_records",
		Columns:    PredictionRecordsColumns,
		PrimaryKey: []*schema.Column{PredictionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predictionrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{PredictionRecordsColumns[1]},
			},
			{
				Name:    "predictionrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PredictionRecordsColumns[2]},
			},
			{
				Name:    "predictionrecord_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{PredictionRecordsColumns[4], PredictionRecordsColumns[5]},
			},
		},
	}
	// ReviewCardsColumns holds the columns for the "review_cards" table.
	ReviewCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "elapsed_days", Type: field.TypeFloat64, Default: 0},
		{Name: "scheduled_days", Type: field.TypeFloat64, Default: 0},
		{Name: "reps", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeString, Default: "new"},
		{Name: "last_review", Type: field.TypeTime, Nullable: true},
		{Name: "due", Type: field.TypeTime},
	}
	// ReviewCardsTable holds the schema information for the "review_cards" table.
	ReviewCardsTable = &schema.Table{
		Name:       "review_cards",
		Columns:    ReviewCardsColumns,
		PrimaryKey: []*schema.Column{ReviewCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewcard_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewCardsColumns[1], ReviewCardsColumns[2]},
			},
			{
				Name:    "reviewcard_user_id_due",
				Unique:  false,
				Columns: []*schema.Column{ReviewCardsColumns[1], ReviewCardsColumns[11]},
			},
		},
	}
	// ReviewLogsColumns holds the columns for the "review_logs" table.
	ReviewLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeString},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "scheduled_days", Type: field.TypeFloat64},
		{Name: "state", Type: field.TypeString},
	}
	// ReviewLogsTable holds the schema information for the "review_logs" table.
	ReviewLogsTable = &schema.Table{
		Name:       "review_logs",
		Columns:    ReviewLogsColumns,
		PrimaryKey: []*schema.Column{ReviewLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewlog_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewLogsColumns[1]},
			},
			{
				Name:    "reviewlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewLogsColumns[2]},
			},
			{
				Name:    "reviewlog_user_id_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewLogsColumns[3], ReviewLogsColumns[4]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "complexity", Type: field.TypeInt},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_category",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[3]},
			},
		},
	}
	// SkillDependenciesColumns holds the columns for the "skill_dependencies" table.
	SkillDependenciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "requires_id", Type: field.TypeString},
		{Name: "strength", Type: field.TypeFloat64, Default: 1},
	}
	// SkillDependenciesTable holds the schema information for the "skill_dependencies" table.
	SkillDependenciesTable = &schema.Table{
		Name:       "skill_dependencies",
		Columns:    SkillDependenciesColumns,
		PrimaryKey: []*schema.Column{SkillDependenciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skilldependency_skill_id_requires_id",
				Unique:  true,
				Columns: []*schema.Column{SkillDependenciesColumns[1], SkillDependenciesColumns[2]},
			},
			{
				Name:    "skilldependency_requires_id",
				Unique:  false,
				Columns: []*schema.Column{SkillDependenciesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MasteryRecordsTable,
		PredictionRecordsTable,
		ReviewCardsTable,
		ReviewLogsTable,
		SkillsTable,
		SkillDependenciesTable,
	}
)

func init() {
}
