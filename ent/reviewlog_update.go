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
	"github.com/ndthanh/studycoach/ent/reviewlog"
)

// ReviewLogUpdate is the builder for updating ReviewLog entities.
type ReviewLogUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewLogMutation
}

// Where appends a list predicates to the ReviewLogUpdate builder.
func (_u *ReviewLogUpdate) Where(ps ...predicate.ReviewLog) *ReviewLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewLogUpdate) SetStability(v float64) *ReviewLogUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableStability(v *float64) *ReviewLogUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewLogUpdate) AddStability(v float64) *ReviewLogUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewLogUpdate) SetDifficulty(v float64) *ReviewLogUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableDifficulty(v *float64) *ReviewLogUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewLogUpdate) AddDifficulty(v float64) *ReviewLogUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetScheduledDays sets the "scheduled_days" field.
func (_u *ReviewLogUpdate) SetScheduledDays(v float64) *ReviewLogUpdate {
	_u.mutation.ResetScheduledDays()
	_u.mutation.SetScheduledDays(v)
	return _u
}

// SetNillableScheduledDays sets the "scheduled_days" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableScheduledDays(v *float64) *ReviewLogUpdate {
	if v != nil {
		_u.SetScheduledDays(*v)
	}
	return _u
}

// AddScheduledDays adds value to the "scheduled_days" field.
func (_u *ReviewLogUpdate) AddScheduledDays(v float64) *ReviewLogUpdate {
	_u.mutation.AddScheduledDays(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ReviewLogUpdate) SetState(v string) *ReviewLogUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableState(v *string) *ReviewLogUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_u *ReviewLogUpdate) Mutation() *ReviewLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReviewLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewlog.Table, reviewlog.Columns, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewlog.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewlog.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewlog.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewlog.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScheduledDays(); ok {
		_spec.SetField(reviewlog.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScheduledDays(); ok {
		_spec.AddField(reviewlog.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(reviewlog.FieldState, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewLogUpdateOne is the builder for updating a single ReviewLog entity.
type ReviewLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewLogMutation
}

// SetStability sets the "stability" field.
func (_u *ReviewLogUpdateOne) SetStability(v float64) *ReviewLogUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableStability(v *float64) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewLogUpdateOne) AddStability(v float64) *ReviewLogUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewLogUpdateOne) SetDifficulty(v float64) *ReviewLogUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableDifficulty(v *float64) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewLogUpdateOne) AddDifficulty(v float64) *ReviewLogUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetScheduledDays sets the "scheduled_days" field.
func (_u *ReviewLogUpdateOne) SetScheduledDays(v float64) *ReviewLogUpdateOne {
	_u.mutation.ResetScheduledDays()
	_u.mutation.SetScheduledDays(v)
	return _u
}

// SetNillableScheduledDays sets the "scheduled_days" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableScheduledDays(v *float64) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetScheduledDays(*v)
	}
	return _u
}

// AddScheduledDays adds value to the "scheduled_days" field.
func (_u *ReviewLogUpdateOne) AddScheduledDays(v float64) *ReviewLogUpdateOne {
	_u.mutation.AddScheduledDays(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ReviewLogUpdateOne) SetState(v string) *ReviewLogUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableState(v *string) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_u *ReviewLogUpdateOne) Mutation() *ReviewLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewLogUpdate builder.
func (_u *ReviewLogUpdateOne) Where(ps ...predicate.ReviewLog) *ReviewLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewLogUpdateOne) Select(field string, fields ...string) *ReviewLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewLog entity.
func (_u *ReviewLogUpdateOne) Save(ctx context.Context) (*ReviewLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewLogUpdateOne) SaveX(ctx context.Context) *ReviewLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReviewLogUpdateOne) sqlSave(ctx context.Context) (_node *ReviewLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewlog.Table, reviewlog.Columns, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewlog.FieldID)
		for _, f := range fields {
			if !reviewlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewlog.FieldID {
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
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewlog.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewlog.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewlog.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewlog.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScheduledDays(); ok {
		_spec.SetField(reviewlog.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScheduledDays(); ok {
		_spec.AddField(reviewlog.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(reviewlog.FieldState, field.TypeString, value)
	}
	_node = &ReviewLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
