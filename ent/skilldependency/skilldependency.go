// Code generated by ent, DO NOT EDIT.

package skilldependency

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skilldependency type in the database.
	Label = "skill_dependency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldRequiresID holds the string denoting the requires_id field in the database.
	FieldRequiresID = "requires_id"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// Table holds the table name of the skilldependency in the database.
	Table = "skill_dependencies"
)

// Columns holds all SQL columns for skilldependency fields.
var Columns = []string{
	FieldID,
	FieldSkillID,
	FieldRequiresID,
	FieldStrength,
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
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// RequiresIDValidator is a validator for the "requires_id" field. It is called by the builders before save.
	RequiresIDValidator func(string) error
	// DefaultStrength holds the default value on creation for the "strength" field.
	DefaultStrength float64
	// StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	StrengthValidator func(float64) error
)

// OrderOption defines the ordering options for the SkillDependency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByRequiresID orders the results by the requires_id field.
func ByRequiresID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresID, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}
