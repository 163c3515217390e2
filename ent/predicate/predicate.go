// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// PredictionRecord is the predicate function for predictionrecord builders.
type PredictionRecord func(*sql.Selector)

// ReviewCard is the predicate function for reviewcard builders.
type ReviewCard func(*sql.Selector)

// ReviewLog is the predicate function for reviewlog builders.
type ReviewLog func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// SkillDependency is the predicate function for skilldependency builders.
type SkillDependency func(*sql.Selector)
