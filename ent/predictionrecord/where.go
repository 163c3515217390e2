// Code generated by ent, DO NOT EDIT.

package predictionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ndthanh/studycoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldTimestamp, v))
}

// PredictionID applies equality check predicate on the "prediction_id" field. It's identical to PredictionIDEQ.
func PredictionID(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldPredictionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldSkillID, v))
}

// PriorDifficulty applies equality check predicate on the "prior_difficulty" field. It's identical to PriorDifficultyEQ.
func PriorDifficulty(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldPriorDifficulty, v))
}

// RecentErrors applies equality check predicate on the "recent_errors" field. It's identical to RecentErrorsEQ.
func RecentErrors(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldRecentErrors, v))
}

// ResponseTimeRatio applies equality check predicate on the "response_time_ratio" field. It's identical to ResponseTimeRatioEQ.
func ResponseTimeRatio(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldResponseTimeRatio, v))
}

// LearningVelocity applies equality check predicate on the "learning_velocity" field. It's identical to LearningVelocityEQ.
func LearningVelocity(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldLearningVelocity, v))
}

// SampleSize applies equality check predicate on the "sample_size" field. It's identical to SampleSizeEQ.
func SampleSize(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldSampleSize, v))
}

// Probability applies equality check predicate on the "probability" field. It's identical to ProbabilityEQ.
func Probability(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldProbability, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldConfidence, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldAction, v))
}

// ActualStruggle applies equality check predicate on the "actual_struggle" field. It's identical to ActualStruggleEQ.
func ActualStruggle(v bool) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldActualStruggle, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldTimestamp, v))
}

// PredictionIDEQ applies the EQ predicate on the "prediction_id" field.
func PredictionIDEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldPredictionID, v))
}

// PredictionIDNEQ applies the NEQ predicate on the "prediction_id" field.
func PredictionIDNEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldPredictionID, v))
}

// PredictionIDIn applies the In predicate on the "prediction_id" field.
func PredictionIDIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldPredictionID, vs...))
}

// PredictionIDNotIn applies the NotIn predicate on the "prediction_id" field.
func PredictionIDNotIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldPredictionID, vs...))
}

// PredictionIDGT applies the GT predicate on the "prediction_id" field.
func PredictionIDGT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldPredictionID, v))
}

// PredictionIDGTE applies the GTE predicate on the "prediction_id" field.
func PredictionIDGTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldPredictionID, v))
}

// PredictionIDLT applies the LT predicate on the "prediction_id" field.
func PredictionIDLT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldPredictionID, v))
}

// PredictionIDLTE applies the LTE predicate on the "prediction_id" field.
func PredictionIDLTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldPredictionID, v))
}

// PredictionIDContains applies the Contains predicate on the "prediction_id" field.
func PredictionIDContains(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContains(FieldPredictionID, v))
}

// PredictionIDHasPrefix applies the HasPrefix predicate on the "prediction_id" field.
func PredictionIDHasPrefix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasPrefix(FieldPredictionID, v))
}

// PredictionIDHasSuffix applies the HasSuffix predicate on the "prediction_id" field.
func PredictionIDHasSuffix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasSuffix(FieldPredictionID, v))
}

// PredictionIDEqualFold applies the EqualFold predicate on the "prediction_id" field.
func PredictionIDEqualFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEqualFold(FieldPredictionID, v))
}

// PredictionIDContainsFold applies the ContainsFold predicate on the "prediction_id" field.
func PredictionIDContainsFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContainsFold(FieldPredictionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContainsFold(FieldSkillID, v))
}

// PriorDifficultyEQ applies the EQ predicate on the "prior_difficulty" field.
func PriorDifficultyEQ(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldPriorDifficulty, v))
}

// PriorDifficultyNEQ applies the NEQ predicate on the "prior_difficulty" field.
func PriorDifficultyNEQ(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldPriorDifficulty, v))
}

// PriorDifficultyIn applies the In predicate on the "prior_difficulty" field.
func PriorDifficultyIn(vs ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldPriorDifficulty, vs...))
}

// PriorDifficultyNotIn applies the NotIn predicate on the "prior_difficulty" field.
func PriorDifficultyNotIn(vs ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldPriorDifficulty, vs...))
}

// PriorDifficultyGT applies the GT predicate on the "prior_difficulty" field.
func PriorDifficultyGT(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldPriorDifficulty, v))
}

// PriorDifficultyGTE applies the GTE predicate on the "prior_difficulty" field.
func PriorDifficultyGTE(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldPriorDifficulty, v))
}

// PriorDifficultyLT applies the LT predicate on the "prior_difficulty" field.
func PriorDifficultyLT(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldPriorDifficulty, v))
}

// PriorDifficultyLTE applies the LTE predicate on the "prior_difficulty" field.
func PriorDifficultyLTE(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldPriorDifficulty, v))
}

// RecentErrorsEQ applies the EQ predicate on the "recent_errors" field.
func RecentErrorsEQ(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldRecentErrors, v))
}

// RecentErrorsNEQ applies the NEQ predicate on the "recent_errors" field.
func RecentErrorsNEQ(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldRecentErrors, v))
}

// RecentErrorsIn applies the In predicate on the "recent_errors" field.
func RecentErrorsIn(vs ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldRecentErrors, vs...))
}

// RecentErrorsNotIn applies the NotIn predicate on the "recent_errors" field.
func RecentErrorsNotIn(vs ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldRecentErrors, vs...))
}

// RecentErrorsGT applies the GT predicate on the "recent_errors" field.
func RecentErrorsGT(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldRecentErrors, v))
}

// RecentErrorsGTE applies the GTE predicate on the "recent_errors" field.
func RecentErrorsGTE(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldRecentErrors, v))
}

// RecentErrorsLT applies the LT predicate on the "recent_errors" field.
func RecentErrorsLT(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldRecentErrors, v))
}

// RecentErrorsLTE applies the LTE predicate on the "recent_errors" field.
func RecentErrorsLTE(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldRecentErrors, v))
}

// ResponseTimeRatioEQ applies the EQ predicate on the "response_time_ratio" field.
func ResponseTimeRatioEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldResponseTimeRatio, v))
}

// ResponseTimeRatioNEQ applies the NEQ predicate on the "response_time_ratio" field.
func ResponseTimeRatioNEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldResponseTimeRatio, v))
}

// ResponseTimeRatioIn applies the In predicate on the "response_time_ratio" field.
func ResponseTimeRatioIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldResponseTimeRatio, vs...))
}

// ResponseTimeRatioNotIn applies the NotIn predicate on the "response_time_ratio" field.
func ResponseTimeRatioNotIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldResponseTimeRatio, vs...))
}

// ResponseTimeRatioGT applies the GT predicate on the "response_time_ratio" field.
func ResponseTimeRatioGT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldResponseTimeRatio, v))
}

// ResponseTimeRatioGTE applies the GTE predicate on the "response_time_ratio" field.
func ResponseTimeRatioGTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldResponseTimeRatio, v))
}

// ResponseTimeRatioLT applies the LT predicate on the "response_time_ratio" field.
func ResponseTimeRatioLT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldResponseTimeRatio, v))
}

// ResponseTimeRatioLTE applies the LTE predicate on the "response_time_ratio" field.
func ResponseTimeRatioLTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldResponseTimeRatio, v))
}

// LearningVelocityEQ applies the EQ predicate on the "learning_velocity" field.
func LearningVelocityEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldLearningVelocity, v))
}

// LearningVelocityNEQ applies the NEQ predicate on the "learning_velocity" field.
func LearningVelocityNEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldLearningVelocity, v))
}

// LearningVelocityIn applies the In predicate on the "learning_velocity" field.
func LearningVelocityIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldLearningVelocity, vs...))
}

// LearningVelocityNotIn applies the NotIn predicate on the "learning_velocity" field.
func LearningVelocityNotIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldLearningVelocity, vs...))
}

// LearningVelocityGT applies the GT predicate on the "learning_velocity" field.
func LearningVelocityGT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldLearningVelocity, v))
}

// LearningVelocityGTE applies the GTE predicate on the "learning_velocity" field.
func LearningVelocityGTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldLearningVelocity, v))
}

// LearningVelocityLT applies the LT predicate on the "learning_velocity" field.
func LearningVelocityLT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldLearningVelocity, v))
}

// LearningVelocityLTE applies the LTE predicate on the "learning_velocity" field.
func LearningVelocityLTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldLearningVelocity, v))
}

// SampleSizeEQ applies the EQ predicate on the "sample_size" field.
func SampleSizeEQ(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldSampleSize, v))
}

// SampleSizeNEQ applies the NEQ predicate on the "sample_size" field.
func SampleSizeNEQ(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldSampleSize, v))
}

// SampleSizeIn applies the In predicate on the "sample_size" field.
func SampleSizeIn(vs ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldSampleSize, vs...))
}

// SampleSizeNotIn applies the NotIn predicate on the "sample_size" field.
func SampleSizeNotIn(vs ...int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldSampleSize, vs...))
}

// SampleSizeGT applies the GT predicate on the "sample_size" field.
func SampleSizeGT(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldSampleSize, v))
}

// SampleSizeGTE applies the GTE predicate on the "sample_size" field.
func SampleSizeGTE(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldSampleSize, v))
}

// SampleSizeLT applies the LT predicate on the "sample_size" field.
func SampleSizeLT(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldSampleSize, v))
}

// SampleSizeLTE applies the LTE predicate on the "sample_size" field.
func SampleSizeLTE(v int) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldSampleSize, v))
}

// ProbabilityEQ applies the EQ predicate on the "probability" field.
func ProbabilityEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldProbability, v))
}

// ProbabilityNEQ applies the NEQ predicate on the "probability" field.
func ProbabilityNEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldProbability, v))
}

// ProbabilityIn applies the In predicate on the "probability" field.
func ProbabilityIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldProbability, vs...))
}

// ProbabilityNotIn applies the NotIn predicate on the "probability" field.
func ProbabilityNotIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldProbability, vs...))
}

// ProbabilityGT applies the GT predicate on the "probability" field.
func ProbabilityGT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldProbability, v))
}

// ProbabilityGTE applies the GTE predicate on the "probability" field.
func ProbabilityGTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldProbability, v))
}

// ProbabilityLT applies the LT predicate on the "probability" field.
func ProbabilityLT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldProbability, v))
}

// ProbabilityLTE applies the LTE predicate on the "probability" field.
func ProbabilityLTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldProbability, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldConfidence, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldContainsFold(FieldAction, v))
}

// ActualStruggleEQ applies the EQ predicate on the "actual_struggle" field.
func ActualStruggleEQ(v bool) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldEQ(FieldActualStruggle, v))
}

// ActualStruggleNEQ applies the NEQ predicate on the "actual_struggle" field.
func ActualStruggleNEQ(v bool) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNEQ(FieldActualStruggle, v))
}

// ActualStruggleIsNil applies the IsNil predicate on the "actual_struggle" field.
func ActualStruggleIsNil() predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldIsNull(FieldActualStruggle))
}

// ActualStruggleNotNil applies the NotNil predicate on the "actual_struggle" field.
func ActualStruggleNotNil() predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.FieldNotNull(FieldActualStruggle))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PredictionRecord) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PredictionRecord) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PredictionRecord) predicate.PredictionRecord {
	return predicate.PredictionRecord(sql.NotPredicates(p))
}
