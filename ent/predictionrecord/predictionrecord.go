// Code generated by ent, DO NOT EDIT.

package predictionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the predictionrecord type in the database.
	Label = "prediction_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPredictionID holds the string denoting the prediction_id field in the database.
	FieldPredictionID = "prediction_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldPriorDifficulty holds the string denoting the prior_difficulty field in the database.
	FieldPriorDifficulty = "prior_difficulty"
	// FieldRecentErrors holds the string denoting the recent_errors field in the database.
	FieldRecentErrors = "recent_errors"
	// FieldResponseTimeRatio holds the string denoting the response_time_ratio field in the database.
	FieldResponseTimeRatio = "response_time_ratio"
	// FieldLearningVelocity holds the string denoting the learning_velocity field in the database.
	FieldLearningVelocity = "learning_velocity"
	// FieldSampleSize holds the string denoting the sample_size field in the database.
	FieldSampleSize = "sample_size"
	// FieldProbability holds the string denoting the probability field in the database.
	FieldProbability = "probability"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldActualStruggle holds the string denoting the actual_struggle field in the database.
	FieldActualStruggle = "actual_struggle"
	// Table holds the table name of the predictionrecord in the database.
	Table = "prediction_records"
)

// Columns holds all SQL columns for predictionrecord fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPredictionID,
	FieldUserID,
	FieldSkillID,
	FieldPriorDifficulty,
	FieldRecentErrors,
	FieldResponseTimeRatio,
	FieldLearningVelocity,
	FieldSampleSize,
	FieldProbability,
	FieldConfidence,
	FieldAction,
	FieldActualStruggle,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PredictionIDValidator is a validator for the "prediction_id" field. It is called by the builders before save.
	PredictionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultSampleSize holds the default value on creation for the "sample_size" field.
	DefaultSampleSize int
	// SampleSizeValidator is a validator for the "sample_size" field. It is called by the builders before save.
	SampleSizeValidator func(int) error
	// ProbabilityValidator is a validator for the "probability" field. It is called by the builders before save.
	ProbabilityValidator func(float64) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
)

// OrderOption defines the ordering options for the PredictionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPredictionID orders the results by the prediction_id field.
func ByPredictionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByPriorDifficulty orders the results by the prior_difficulty field.
func ByPriorDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorDifficulty, opts...).ToFunc()
}

// ByRecentErrors orders the results by the recent_errors field.
func ByRecentErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecentErrors, opts...).ToFunc()
}

// ByResponseTimeRatio orders the results by the response_time_ratio field.
func ByResponseTimeRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeRatio, opts...).ToFunc()
}

// ByLearningVelocity orders the results by the learning_velocity field.
func ByLearningVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningVelocity, opts...).ToFunc()
}

// BySampleSize orders the results by the sample_size field.
func BySampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleSize, opts...).ToFunc()
}

// ByProbability orders the results by the probability field.
func ByProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbability, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByActualStruggle orders the results by the actual_struggle field.
func ByActualStruggle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualStruggle, opts...).ToFunc()
}
