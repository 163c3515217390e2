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
	"github.com/ndthanh/studycoach/ent/skilldependency"
)

// SkillDependencyUpdate is the builder for updating SkillDependency entities.
type SkillDependencyUpdate struct {
	config
	hooks    []Hook
	mutation *SkillDependencyMutation
}

// Where appends a list predicates to the SkillDependencyUpdate builder.
func (_u *SkillDependencyUpdate) Where(ps ...predicate.SkillDependency) *SkillDependencyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrength sets the "strength" field.
func (_u *SkillDependencyUpdate) SetStrength(v float64) *SkillDependencyUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *SkillDependencyUpdate) SetNillableStrength(v *float64) *SkillDependencyUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *SkillDependencyUpdate) AddStrength(v float64) *SkillDependencyUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// Mutation returns the SkillDependencyMutation object of the builder.
func (_u *SkillDependencyUpdate) Mutation() *SkillDependencyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillDependencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillDependencyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillDependencyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillDependencyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillDependencyUpdate) check() error {
	if v, ok := _u.mutation.Strength(); ok {
		if err := skilldependency.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "SkillDependency.strength": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillDependencyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skilldependency.Table, skilldependency.Columns, sqlgraph.NewFieldSpec(skilldependency.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(skilldependency.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(skilldependency.FieldStrength, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skilldependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillDependencyUpdateOne is the builder for updating a single SkillDependency entity.
type SkillDependencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillDependencyMutation
}

// SetStrength sets the "strength" field.
func (_u *SkillDependencyUpdateOne) SetStrength(v float64) *SkillDependencyUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *SkillDependencyUpdateOne) SetNillableStrength(v *float64) *SkillDependencyUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *SkillDependencyUpdateOne) AddStrength(v float64) *SkillDependencyUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// Mutation returns the SkillDependencyMutation object of the builder.
func (_u *SkillDependencyUpdateOne) Mutation() *SkillDependencyMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillDependencyUpdate builder.
func (_u *SkillDependencyUpdateOne) Where(ps ...predicate.SkillDependency) *SkillDependencyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillDependencyUpdateOne) Select(field string, fields ...string) *SkillDependencyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillDependency entity.
func (_u *SkillDependencyUpdateOne) Save(ctx context.Context) (*SkillDependency, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillDependencyUpdateOne) SaveX(ctx context.Context) *SkillDependency {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillDependencyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillDependencyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillDependencyUpdateOne) check() error {
	if v, ok := _u.mutation.Strength(); ok {
		if err := skilldependency.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "SkillDependency.strength": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillDependencyUpdateOne) sqlSave(ctx context.Context) (_node *SkillDependency, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skilldependency.Table, skilldependency.Columns, sqlgraph.NewFieldSpec(skilldependency.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillDependency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skilldependency.FieldID)
		for _, f := range fields {
			if !skilldependency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skilldependency.FieldID {
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
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(skilldependency.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(skilldependency.FieldStrength, field.TypeFloat64, value)
	}
	_node = &SkillDependency{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skilldependency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
