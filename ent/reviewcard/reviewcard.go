// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewcard type in the database.
	Label = "review_card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldStability holds the string denoting the stability field in the database.
	FieldStability = "stability"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldElapsedDays holds the string denoting the elapsed_days field in the database.
	FieldElapsedDays = "elapsed_days"
	// FieldScheduledDays holds the string denoting the scheduled_days field in the database.
	FieldScheduledDays = "scheduled_days"
	// FieldReps holds the string denoting the reps field in the database.
	FieldReps = "reps"
	// FieldLapses holds the string denoting the lapses field in the database.
	FieldLapses = "lapses"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLastReview holds the string denoting the last_review field in the database.
	FieldLastReview = "last_review"
	// FieldDue holds the string denoting the due field in the database.
	FieldDue = "due"
	// Table holds the table name of the reviewcard in the database.
	Table = "review_cards"
)

// Columns holds all SQL columns for reviewcard fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldStability,
	FieldDifficulty,
	FieldElapsedDays,
	FieldScheduledDays,
	FieldReps,
	FieldLapses,
	FieldState,
	FieldLastReview,
	FieldDue,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// StabilityValidator is a validator for the "stability" field. It is called by the builders before save.
	StabilityValidator func(float64) error
	// DefaultElapsedDays holds the default value on creation for the "elapsed_days" field.
	DefaultElapsedDays float64
	// ElapsedDaysValidator is a validator for the "elapsed_days" field. It is called by the builders before save.
	ElapsedDaysValidator func(float64) error
	// DefaultScheduledDays holds the default value on creation for the "scheduled_days" field.
	DefaultScheduledDays float64
	// ScheduledDaysValidator is a validator for the "scheduled_days" field. It is called by the builders before save.
	ScheduledDaysValidator func(float64) error
	// DefaultReps holds the default value on creation for the "reps" field.
	DefaultReps int
	// RepsValidator is a validator for the "reps" field. It is called by the builders before save.
	RepsValidator func(int) error
	// DefaultLapses holds the default value on creation for the "lapses" field.
	DefaultLapses int
	// LapsesValidator is a validator for the "lapses" field. It is called by the builders before save.
	LapsesValidator func(int) error
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
)

// OrderOption defines the ordering options for the ReviewCard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByStability orders the results by the stability field.
func ByStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStability, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByElapsedDays orders the results by the elapsed_days field.
func ByElapsedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedDays, opts...).ToFunc()
}

// ByScheduledDays orders the results by the scheduled_days field.
func ByScheduledDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledDays, opts...).ToFunc()
}

// ByReps orders the results by the reps field.
func ByReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReps, opts...).ToFunc()
}

// ByLapses orders the results by the lapses field.
func ByLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapses, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLastReview orders the results by the last_review field.
func ByLastReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReview, opts...).ToFunc()
}

// ByDue orders the results by the due field.
func ByDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDue, opts...).ToFunc()
}
