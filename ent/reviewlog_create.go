// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ndthanh/studycoach/ent/reviewlog"
)

// ReviewLogCreate is the builder for creating a ReviewLog entity.
type ReviewLogCreate struct {
	config
	mutation *ReviewLogMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReviewLogCreate) SetSequence(v int64) *ReviewLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewLogCreate) SetTimestamp(v time.Time) *ReviewLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableTimestamp(v *time.Time) *ReviewLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ReviewLogCreate) SetUserID(v string) *ReviewLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *ReviewLogCreate) SetSkillID(v string) *ReviewLogCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *ReviewLogCreate) SetRating(v string) *ReviewLogCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetStability sets the "stability" field.
func (_c *ReviewLogCreate) SetStability(v float64) *ReviewLogCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ReviewLogCreate) SetDifficulty(v float64) *ReviewLogCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScheduledDays sets the "scheduled_days" field.
func (_c *ReviewLogCreate) SetScheduledDays(v float64) *ReviewLogCreate {
	_c.mutation.SetScheduledDays(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ReviewLogCreate) SetState(v string) *ReviewLogCreate {
	_c.mutation.SetState(v)
	return _c
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_c *ReviewLogCreate) Mutation() *ReviewLogMutation {
	return _c.mutation
}

// Save creates the ReviewLog in the database.
func (_c *ReviewLogCreate) Save(ctx context.Context) (*ReviewLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewLogCreate) SaveX(ctx context.Context) *ReviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewLogCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewLog.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewLog.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ReviewLog.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := reviewlog.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ReviewLog.rating"`)}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "ReviewLog.stability"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ReviewLog.difficulty"`)}
	}
	if _, ok := _c.mutation.ScheduledDays(); !ok {
		return &ValidationError{Name: "scheduled_days", err: errors.New(`ent: missing required field "ReviewLog.scheduled_days"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ReviewLog.state"`)}
	}
	return nil
}

func (_c *ReviewLogCreate) sqlSave(ctx context.Context) (*ReviewLog, error) {
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

func (_c *ReviewLogCreate) createSpec() (*ReviewLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewlog.Table, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewlog.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewlog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(reviewlog.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(reviewlog.FieldRating, field.TypeString, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(reviewlog.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(reviewlog.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ScheduledDays(); ok {
		_spec.SetField(reviewlog.FieldScheduledDays, field.TypeFloat64, value)
		_node.ScheduledDays = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(reviewlog.FieldState, field.TypeString, value)
		_node.State = value
	}
	return _node, _spec
}

// ReviewLogCreateBulk is the builder for creating many ReviewLog entities in bulk.
type ReviewLogCreateBulk struct {
	config
	err      error
	builders []*ReviewLogCreate
}

// Save creates the ReviewLog entities in the database.
func (_c *ReviewLogCreateBulk) Save(ctx context.Context) ([]*ReviewLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewLogMutation)
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
func (_c *ReviewLogCreateBulk) SaveX(ctx context.Context) []*ReviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
