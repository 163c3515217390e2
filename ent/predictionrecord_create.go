// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ndthanh/studycoach/ent/predictionrecord"
)

// PredictionRecordCreate is the builder for creating a PredictionRecord entity.
type PredictionRecordCreate struct {
	config
	mutation *PredictionRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PredictionRecordCreate) SetSequence(v int64) *PredictionRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PredictionRecordCreate) SetTimestamp(v time.Time) *PredictionRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PredictionRecordCreate) SetNillableTimestamp(v *time.Time) *PredictionRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPredictionID sets the "prediction_id" field.
func (_c *PredictionRecordCreate) SetPredictionID(v string) *PredictionRecordCreate {
	_c.mutation.SetPredictionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PredictionRecordCreate) SetUserID(v string) *PredictionRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *PredictionRecordCreate) SetSkillID(v string) *PredictionRecordCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetPriorDifficulty sets the "prior_difficulty" field.
func (_c *PredictionRecordCreate) SetPriorDifficulty(v int) *PredictionRecordCreate {
	_c.mutation.SetPriorDifficulty(v)
	return _c
}

// SetRecentErrors sets the "recent_errors" field.
func (_c *PredictionRecordCreate) SetRecentErrors(v int) *PredictionRecordCreate {
	_c.mutation.SetRecentErrors(v)
	return _c
}

// SetResponseTimeRatio sets the "response_time_ratio" field.
func (_c *PredictionRecordCreate) SetResponseTimeRatio(v float64) *PredictionRecordCreate {
	_c.mutation.SetResponseTimeRatio(v)
	return _c
}

// SetLearningVelocity sets the "learning_velocity" field.
func (_c *PredictionRecordCreate) SetLearningVelocity(v float64) *PredictionRecordCreate {
	_c.mutation.SetLearningVelocity(v)
	return _c
}

// SetSampleSize sets the "sample_size" field.
func (_c *PredictionRecordCreate) SetSampleSize(v int) *PredictionRecordCreate {
	_c.mutation.SetSampleSize(v)
	return _c
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_c *PredictionRecordCreate) SetNillableSampleSize(v *int) *PredictionRecordCreate {
	if v != nil {
		_c.SetSampleSize(*v)
	}
	return _c
}

// SetProbability sets the "probability" field.
func (_c *PredictionRecordCreate) SetProbability(v float64) *PredictionRecordCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PredictionRecordCreate) SetConfidence(v float64) *PredictionRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PredictionRecordCreate) SetAction(v string) *PredictionRecordCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetActualStruggle sets the "actual_struggle" field.
func (_c *PredictionRecordCreate) SetActualStruggle(v bool) *PredictionRecordCreate {
	_c.mutation.SetActualStruggle(v)
	return _c
}

// SetNillableActualStruggle sets the "actual_struggle" field if the given value is not nil.
func (_c *PredictionRecordCreate) SetNillableActualStruggle(v *bool) *PredictionRecordCreate {
	if v != nil {
		_c.SetActualStruggle(*v)
	}
	return _c
}

// Mutation returns the PredictionRecordMutation object of the builder.
func (_c *PredictionRecordCreate) Mutation() *PredictionRecordMutation {
	return _c.mutation
}

// Save creates the PredictionRecord in the database.
func (_c *PredictionRecordCreate) Save(ctx context.Context) (*PredictionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredictionRecordCreate) SaveX(ctx context.Context) *PredictionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredictionRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := predictionrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SampleSize(); !ok {
		v := predictionrecord.DefaultSampleSize
		_c.mutation.SetSampleSize(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredictionRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PredictionRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PredictionRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.PredictionID(); !ok {
		return &ValidationError{Name: "prediction_id", err: errors.New(`ent: missing required field "PredictionRecord.prediction_id"`)}
	}
	if v, ok := _c.mutation.PredictionID(); ok {
		if err := predictionrecord.PredictionIDValidator(v); err != nil {
			return &ValidationError{Name: "prediction_id", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.prediction_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PredictionRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := predictionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "PredictionRecord.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := predictionrecord.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriorDifficulty(); !ok {
		return &ValidationError{Name: "prior_difficulty", err: errors.New(`ent: missing required field "PredictionRecord.prior_difficulty"`)}
	}
	if _, ok := _c.mutation.RecentErrors(); !ok {
		return &ValidationError{Name: "recent_errors", err: errors.New(`ent: missing required field "PredictionRecord.recent_errors"`)}
	}
	if _, ok := _c.mutation.ResponseTimeRatio(); !ok {
		return &ValidationError{Name: "response_time_ratio", err: errors.New(`ent: missing required field "PredictionRecord.response_time_ratio"`)}
	}
	if _, ok := _c.mutation.LearningVelocity(); !ok {
		return &ValidationError{Name: "learning_velocity", err: errors.New(`ent: missing required field "PredictionRecord.learning_velocity"`)}
	}
	if _, ok := _c.mutation.SampleSize(); !ok {
		return &ValidationError{Name: "sample_size", err: errors.New(`ent: missing required field "PredictionRecord.sample_size"`)}
	}
	if v, ok := _c.mutation.SampleSize(); ok {
		if err := predictionrecord.SampleSizeValidator(v); err != nil {
			return &ValidationError{Name: "sample_size", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.sample_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Probability(); !ok {
		return &ValidationError{Name: "probability", err: errors.New(`ent: missing required field "PredictionRecord.probability"`)}
	}
	if v, ok := _c.mutation.Probability(); ok {
		if err := predictionrecord.ProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "probability", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.probability": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "PredictionRecord.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := predictionrecord.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "PredictionRecord.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PredictionRecord.action"`)}
	}
	return nil
}

func (_c *PredictionRecordCreate) sqlSave(ctx context.Context) (*PredictionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PredictionRecordCreate) createSpec() (*PredictionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PredictionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(predictionrecord.Table, sqlgraph.NewFieldSpec(predictionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(predictionrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(predictionrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PredictionID(); ok {
		_spec.SetField(predictionrecord.FieldPredictionID, field.TypeString, value)
		_node.PredictionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(predictionrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(predictionrecord.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.PriorDifficulty(); ok {
		_spec.SetField(predictionrecord.FieldPriorDifficulty, field.TypeInt, value)
		_node.PriorDifficulty = value
	}
	if value, ok := _c.mutation.RecentErrors(); ok {
		_spec.SetField(predictionrecord.FieldRecentErrors, field.TypeInt, value)
		_node.RecentErrors = value
	}
	if value, ok := _c.mutation.ResponseTimeRatio(); ok {
		_spec.SetField(predictionrecord.FieldResponseTimeRatio, field.TypeFloat64, value)
		_node.ResponseTimeRatio = value
	}
	if value, ok := _c.mutation.LearningVelocity(); ok {
		_spec.SetField(predictionrecord.FieldLearningVelocity, field.TypeFloat64, value)
		_node.LearningVelocity = value
	}
	if value, ok := _c.mutation.SampleSize(); ok {
		_spec.SetField(predictionrecord.FieldSampleSize, field.TypeInt, value)
		_node.SampleSize = value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(predictionrecord.FieldProbability, field.TypeFloat64, value)
		_node.Probability = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(predictionrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(predictionrecord.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ActualStruggle(); ok {
		_spec.SetField(predictionrecord.FieldActualStruggle, field.TypeBool, value)
		_node.ActualStruggle = &value
	}
	return _node, _spec
}

// PredictionRecordCreateBulk is the builder for creating many PredictionRecord entities in bulk.
type PredictionRecordCreateBulk struct {
	config
	err      error
	builders []*PredictionRecordCreate
}

// Save creates the PredictionRecord entities in the database.
func (_c *PredictionRecordCreateBulk) Save(ctx context.Context) ([]*PredictionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PredictionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredictionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PredictionRecordCreateBulk) SaveX(ctx context.Context) []*PredictionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
