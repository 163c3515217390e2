// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ndthanh/studycoach/ent/predicate"
	"github.com/ndthanh/studycoach/ent/predictionrecord"
)

// PredictionRecordUpdate is the builder for updating PredictionRecord entities.
type PredictionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PredictionRecordMutation
}

// Where appends a list predicates to the PredictionRecordUpdate builder.
func (_u *PredictionRecordUpdate) Where(ps ...predicate.PredictionRecord) *PredictionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPriorDifficulty sets the "prior_difficulty" field.
func (_u *PredictionRecordUpdate) SetPriorDifficulty(v int) *PredictionRecordUpdate {
	_u.mutation.ResetPriorDifficulty()
	_u.mutation.SetPriorDifficulty(v)
	return _u
}

// SetNillablePriorDifficulty sets the "prior_difficulty" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillablePriorDifficulty(v *int) *PredictionRecordUpdate {
	if v != nil {
		_u.SetPriorDifficulty(*v)
	}
	return _u
}

// AddPriorDifficulty adds value to the "prior_difficulty" field.
func (_u *PredictionRecordUpdate) AddPriorDifficulty(v int) *PredictionRecordUpdate {
	_u.mutation.AddPriorDifficulty(v)
	return _u
}

// SetRecentErrors sets the "recent_errors" field.
func (_u *PredictionRecordUpdate) SetRecentErrors(v int) *PredictionRecordUpdate {
	_u.mutation.ResetRecentErrors()
	_u.mutation.SetRecentErrors(v)
	return _u
}

// SetNillableRecentErrors sets the "recent_errors" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableRecentErrors(v *int) *PredictionRecordUpdate {
	if v != nil {
		_u.SetRecentErrors(*v)
	}
	return _u
}

// AddRecentErrors adds value to the "recent_errors" field.
func (_u *PredictionRecordUpdate) AddRecentErrors(v int) *PredictionRecordUpdate {
	_u.mutation.AddRecentErrors(v)
	return _u
}

// SetResponseTimeRatio sets the "response_time_ratio" field.
func (_u *PredictionRecordUpdate) SetResponseTimeRatio(v float64) *PredictionRecordUpdate {
	_u.mutation.ResetResponseTimeRatio()
	_u.mutation.SetResponseTimeRatio(v)
	return _u
}

// SetNillableResponseTimeRatio sets the "response_time_ratio" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableResponseTimeRatio(v *float64) *PredictionRecordUpdate {
	if v != nil {
		_u.SetResponseTimeRatio(*v)
	}
	return _u
}

// AddResponseTimeRatio adds value to the "response_time_ratio" field.
func (_u *PredictionRecordUpdate) AddResponseTimeRatio(v float64) *PredictionRecordUpdate {
	_u.mutation.AddResponseTimeRatio(v)
	return _u
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_u *PredictionRecordUpdate) SetLearningVelocity(v float64) *PredictionRecordUpdate {
	_u.mutation.ResetLearningVelocity()
	_u.mutation.SetLearningVelocity(v)
	return _u
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableLearningVelocity(v *float64) *PredictionRecordUpdate {
	if v != nil {
		_u.SetLearningVelocity(*v)
	}
	return _u
}

// AddLearningVelocity adds value to the "learning_velocity" field.
func (_u *PredictionRecordUpdate) AddLearningVelocity(v float64) *PredictionRecordUpdate {
	_u.mutation.AddLearningVelocity(v)
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *PredictionRecordUpdate) SetSampleSize(v int) *PredictionRecordUpdate {
	_u.mutation.ResetSampleSize()
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableSampleSize(v *int) *PredictionRecordUpdate {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// AddSampleSize adds value to the "sample_size" field.
func (_u *PredictionRecordUpdate) AddSampleSize(v int) *PredictionRecordUpdate {
	_u.mutation.AddSampleSize(v)
	return _u
}

// SetProbability sets the "probability" field.
func (_u *PredictionRecordUpdate) SetProbability(v float64) *PredictionRecordUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableProbability(v *float64) *PredictionRecordUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *PredictionRecordUpdate) AddProbability(v float64) *PredictionRecordUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionRecordUpdate) SetConfidence(v float64) *PredictionRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableConfidence(v *float64) *PredictionRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionRecordUpdate) AddConfidence(v float64) *PredictionRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *PredictionRecordUpdate) SetAction(v string) *PredictionRecordUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableAction(v *string) *PredictionRecordUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetActualStruggle sets the "actual_struggle" field.
func (_u *PredictionRecordUpdate) SetActualStruggle(v bool) *PredictionRecordUpdate {
	_u.mutation.SetActualStruggle(v)
	return _u
}

// SetNillableActualStruggle sets the "actual_struggle" field if the given value is not nil.
func (_u *PredictionRecordUpdate) SetNillableActualStruggle(v *bool) *PredictionRecordUpdate {
	if v != nil {
		_u.SetActualStruggle(*v)
	}
	return _u
}

// ClearActualStruggle clears the value of the "actual_struggle" field.
func (_u *PredictionRecordUpdate) ClearActualStruggle() *PredictionRecordUpdate {
	_u.mutation.ClearActualStruggle()
	return _u
}

// Mutation returns the PredictionRecordMutation object of the builder.
func (_u *PredictionRecordUpdate) Mutation() *PredictionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictionRecordUpdate) check() error {
	if v, ok := _u.mutation.SampleSize(); ok {
		if err := predictionrecord.SampleSizeValidator(v); err != nil {
			return &ValidationError{Name: "sample_size", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.sample_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Probability(); ok {
		if err := predictionrecord.ProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "probability", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.probability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := predictionrecord.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *PredictionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predictionrecord.Table, predictionrecord.Columns, sqlgraph.NewFieldSpec(predictionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PriorDifficulty(); ok {
		_spec.SetField(predictionrecord.FieldPriorDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorDifficulty(); ok {
		_spec.AddField(predictionrecord.FieldPriorDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecentErrors(); ok {
		_spec.SetField(predictionrecord.FieldRecentErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecentErrors(); ok {
		_spec.AddField(predictionrecord.FieldRecentErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTimeRatio(); ok {
		_spec.SetField(predictionrecord.FieldResponseTimeRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeRatio(); ok {
		_spec.AddField(predictionrecord.FieldResponseTimeRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearningVelocity(); ok {
		_spec.SetField(predictionrecord.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningVelocity(); ok {
		_spec.AddField(predictionrecord.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(predictionrecord.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleSize(); ok {
		_spec.AddField(predictionrecord.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(predictionrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(predictionrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(predictionrecord.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualStruggle(); ok {
		_spec.SetField(predictionrecord.FieldActualStruggle, field.TypeBool, value)
	}
	if _u.mutation.ActualStruggleCleared() {
		_spec.ClearField(predictionrecord.FieldActualStruggle, field.TypeBool)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictionRecordUpdateOne is the builder for updating a single PredictionRecord entity.
type PredictionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictionRecordMutation
}

// SetPriorDifficulty sets the "prior_difficulty" field.
func (_u *PredictionRecordUpdateOne) SetPriorDifficulty(v int) *PredictionRecordUpdateOne {
	_u.mutation.ResetPriorDifficulty()
	_u.mutation.SetPriorDifficulty(v)
	return _u
}

// SetNillablePriorDifficulty sets the "prior_difficulty" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillablePriorDifficulty(v *int) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetPriorDifficulty(*v)
	}
	return _u
}

// AddPriorDifficulty adds value to the "prior_difficulty" field.
func (_u *PredictionRecordUpdateOne) AddPriorDifficulty(v int) *PredictionRecordUpdateOne {
	_u.mutation.AddPriorDifficulty(v)
	return _u
}

// SetRecentErrors sets the "recent_errors" field.
func (_u *PredictionRecordUpdateOne) SetRecentErrors(v int) *PredictionRecordUpdateOne {
	_u.mutation.ResetRecentErrors()
	_u.mutation.SetRecentErrors(v)
	return _u
}

// SetNillableRecentErrors sets the "recent_errors" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableRecentErrors(v *int) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetRecentErrors(*v)
	}
	return _u
}

// AddRecentErrors adds value to the "recent_errors" field.
func (_u *PredictionRecordUpdateOne) AddRecentErrors(v int) *PredictionRecordUpdateOne {
	_u.mutation.AddRecentErrors(v)
	return _u
}

// SetResponseTimeRatio sets the "response_time_ratio" field.
func (_u *PredictionRecordUpdateOne) SetResponseTimeRatio(v float64) *PredictionRecordUpdateOne {
	_u.mutation.ResetResponseTimeRatio()
	_u.mutation.SetResponseTimeRatio(v)
	return _u
}

// SetNillableResponseTimeRatio sets the "response_time_ratio" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableResponseTimeRatio(v *float64) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetResponseTimeRatio(*v)
	}
	return _u
}

// AddResponseTimeRatio adds value to the "response_time_ratio" field.
func (_u *PredictionRecordUpdateOne) AddResponseTimeRatio(v float64) *PredictionRecordUpdateOne {
	_u.mutation.AddResponseTimeRatio(v)
	return _u
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_u *PredictionRecordUpdateOne) SetLearningVelocity(v float64) *PredictionRecordUpdateOne {
	_u.mutation.ResetLearningVelocity()
	_u.mutation.SetLearningVelocity(v)
	return _u
}

// SetNillableLearningVelocity sets the "learning_velocity" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableLearningVelocity(v *float64) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetLearningVelocity(*v)
	}
	return _u
}

// AddLearningVelocity adds value to the "learning_velocity" field.
func (_u *PredictionRecordUpdateOne) AddLearningVelocity(v float64) *PredictionRecordUpdateOne {
	_u.mutation.AddLearningVelocity(v)
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *PredictionRecordUpdateOne) SetSampleSize(v int) *PredictionRecordUpdateOne {
	_u.mutation.ResetSampleSize()
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableSampleSize(v *int) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// AddSampleSize adds value to the "sample_size" field.
func (_u *PredictionRecordUpdateOne) AddSampleSize(v int) *PredictionRecordUpdateOne {
	_u.mutation.AddSampleSize(v)
	return _u
}

// SetProbability sets the "probability" field.
func (_u *PredictionRecordUpdateOne) SetProbability(v float64) *PredictionRecordUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableProbability(v *float64) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *PredictionRecordUpdateOne) AddProbability(v float64) *PredictionRecordUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionRecordUpdateOne) SetConfidence(v float64) *PredictionRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableConfidence(v *float64) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionRecordUpdateOne) AddConfidence(v float64) *PredictionRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *PredictionRecordUpdateOne) SetAction(v string) *PredictionRecordUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableAction(v *string) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetActualStruggle sets the "actual_struggle" field.
func (_u *PredictionRecordUpdateOne) SetActualStruggle(v bool) *PredictionRecordUpdateOne {
	_u.mutation.SetActualStruggle(v)
	return _u
}

// SetNillableActualStruggle sets the "actual_struggle" field if the given value is not nil.
func (_u *PredictionRecordUpdateOne) SetNillableActualStruggle(v *bool) *PredictionRecordUpdateOne {
	if v != nil {
		_u.SetActualStruggle(*v)
	}
	return _u
}

// ClearActualStruggle clears the value of the "actual_struggle" field.
func (_u *PredictionRecordUpdateOne) ClearActualStruggle() *PredictionRecordUpdateOne {
	_u.mutation.ClearActualStruggle()
	return _u
}

// Mutation returns the PredictionRecordMutation object of the builder.
func (_u *PredictionRecordUpdateOne) Mutation() *PredictionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PredictionRecordUpdate builder.
func (_u *PredictionRecordUpdateOne) Where(ps ...predicate.PredictionRecord) *PredictionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictionRecordUpdateOne) Select(field string, fields ...string) *PredictionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PredictionRecord entity.
func (_u *PredictionRecordUpdateOne) Save(ctx context.Context) (*PredictionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionRecordUpdateOne) SaveX(ctx context.Context) *PredictionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SampleSize(); ok {
		if err := predictionrecord.SampleSizeValidator(v); err != nil {
			return &ValidationError{Name: "sample_size", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.sample_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Probability(); ok {
		if err := predictionrecord.ProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "probability", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.probability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := predictionrecord.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *PredictionRecordUpdateOne) sqlSave(ctx context.Context) (_node *PredictionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(predictionrecord.Table, predictionrecord.Columns, sqlgraph.NewFieldSpec(predictionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PredictionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, predictionrecord.FieldID)
		for _, f := range fields {
			if !predictionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != predictionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PriorDifficulty(); ok {
		_spec.SetField(predictionrecord.FieldPriorDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorDifficulty(); ok {
		_spec.AddField(predictionrecord.FieldPriorDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecentErrors(); ok {
		_spec.SetField(predictionrecord.FieldRecentErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecentErrors(); ok {
		_spec.AddField(predictionrecord.FieldRecentErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseTimeRatio(); ok {
		_spec.SetField(predictionrecord.FieldResponseTimeRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeRatio(); ok {
		_spec.AddField(predictionrecord.FieldResponseTimeRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearningVelocity(); ok {
		_spec.SetField(predictionrecord.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningVelocity(); ok {
		_spec.AddField(predictionrecord.FieldLearningVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(predictionrecord.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSampleSize(); ok {
		_spec.AddField(predictionrecord.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(predictionrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(predictionrecord.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(predictionrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(predictionrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(predictionrecord.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualStruggle(); ok {
		_spec.SetField(predictionrecord.FieldActualStruggle, field.TypeBool, value)
	}
	if _u.mutation.ActualStruggleCleared() {
		_spec.ClearField(predictionrecord.FieldActualStruggle, field.TypeBool)
	}
	_node = &PredictionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{predictionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
