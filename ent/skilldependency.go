// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ndthanh/studycoach/ent/skilldependency"
)

// SkillDependency is the model entity for the SkillDependency schema.
type SkillDependency struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// RequiresID holds the value of the "requires_id" field.
	RequiresID string `json:"requires_id,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength     float64 `json:"strength,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillDependency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skilldependency.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case skilldependency.FieldID:
			values[i] = new(sql.NullInt64)
		case skilldependency.FieldSkillID, skilldependency.FieldRequiresID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillDependency fields.
func (_m *SkillDependency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skilldependency.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skilldependency.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case skilldependency.FieldRequiresID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requires_id", values[i])
			} else if value.Valid {
				_m.RequiresID = value.String
			}
		case skilldependency.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillDependency.
// This includes values selected through modifiers, order, etc.
func (_m *SkillDependency) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillDependency.
// Note that you need to call SkillDependency.Unwrap() before calling this method if this SkillDependency
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillDependency) Update() *SkillDependencyUpdateOne {
	return NewSkillDependencyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillDependency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillDependency) Unwrap() *SkillDependency {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillDependency is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillDependency) String() string {
	var builder strings.Builder
	builder.WriteString("SkillDependency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("requires_id=")
	builder.WriteString(_m.RequiresID)
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strength))
	builder.WriteByte(')')
	return builder.String()
}

// SkillDependencies is a parsable slice of SkillDependency.
type SkillDependencies []*SkillDependency
