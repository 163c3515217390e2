// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ndthanh/studycoach/ent/skilldependency"
)

// SkillDependencyCreate is the builder for creating a SkillDependency entity.
type SkillDependencyCreate struct {
	config
	mutation *SkillDependencyMutation
	hooks    []Hook
}

// SetSkillID sets the "skill_id" field.
func (_c *SkillDependencyCreate) SetSkillID(v string) *SkillDependencyCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetRequiresID sets the "requires_id" field.
func (_c *SkillDependencyCreate) SetRequiresID(v string) *SkillDependencyCreate {
	_c.mutation.SetRequiresID(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *SkillDependencyCreate) SetStrength(v float64) *SkillDependencyCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_c *SkillDependencyCreate) SetNillableStrength(v *float64) *SkillDependencyCreate {
	if v != nil {
		_c.SetStrength(*v)
	}
	return _c
}

// Mutation returns the SkillDependencyMutation object of the builder.
func (_c *SkillDependencyCreate) Mutation() *SkillDependencyMutation {
	return _c.mutation
}

// Save creates the SkillDependency in the database.
func (_c *SkillDependencyCreate) Save(ctx context.Context) (*SkillDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillDependencyCreate) SaveX(ctx context.Context) *SkillDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillDependencyCreate) defaults() {
	if _, ok := _c.mutation.Strength(); !ok {
		v := skilldependency.DefaultStrength
		_c.mutation.SetStrength(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillDependencyCreate) check() error {
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "SkillDependency.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := skilldependency.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "SkillDependency.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresID(); !ok {
		return &ValidationError{Name: "requires_id", err: errors.New(`ent: missing required field "SkillDependency.requires_id"`)}
	}
	if v, ok := _c.mutation.RequiresID(); ok {
		if err := skilldependency.RequiresIDValidator(v); err != nil {
			return &ValidationError{Name: "requires_id", err: fmt.Errorf(`ent: validator failed for field "SkillDependency.requires_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "SkillDependency.strength"`)}
	}
	if v, ok := _c.mutation.Strength(); ok {
		if err := skilldependency.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "SkillDependency.strength": %w`, err)}
		}
	}
	return nil
}

func (_c *SkillDependencyCreate) sqlSave(ctx context.Context) (*SkillDependency, error) {
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

func (_c *SkillDependencyCreate) createSpec() (*SkillDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skilldependency.Table, sqlgraph.NewFieldSpec(skilldependency.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(skilldependency.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.RequiresID(); ok {
		_spec.SetField(skilldependency.FieldRequiresID, field.TypeString, value)
		_node.RequiresID = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(skilldependency.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	return _node, _spec
}

// SkillDependencyCreateBulk is the builder for creating many SkillDependency entities in bulk.
type SkillDependencyCreateBulk struct {
	config
	err      error
	builders []*SkillDependencyCreate
}

// Save creates the SkillDependency entities in the database.
func (_c *SkillDependencyCreateBulk) Save(ctx context.Context) ([]*SkillDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillDependencyMutation)
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
func (_c *SkillDependencyCreateBulk) SaveX(ctx context.Context) []*SkillDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
