// Code generated by ent, DO NOT EDIT.

package skilldependency

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ndthanh/studycoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLTE(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldSkillID, v))
}

// RequiresID applies equality check predicate on the "requires_id" field. It's identical to RequiresIDEQ.
func RequiresID(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldRequiresID, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldStrength, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldContainsFold(FieldSkillID, v))
}

// RequiresIDEQ applies the EQ predicate on the "requires_id" field.
func RequiresIDEQ(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldRequiresID, v))
}

// RequiresIDNEQ applies the NEQ predicate on the "requires_id" field.
func RequiresIDNEQ(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNEQ(FieldRequiresID, v))
}

// RequiresIDIn applies the In predicate on the "requires_id" field.
func RequiresIDIn(vs ...string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldIn(FieldRequiresID, vs...))
}

// RequiresIDNotIn applies the NotIn predicate on the "requires_id" field.
func RequiresIDNotIn(vs ...string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNotIn(FieldRequiresID, vs...))
}

// RequiresIDGT applies the GT predicate on the "requires_id" field.
func RequiresIDGT(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGT(FieldRequiresID, v))
}

// RequiresIDGTE applies the GTE predicate on the "requires_id" field.
func RequiresIDGTE(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGTE(FieldRequiresID, v))
}

// RequiresIDLT applies the LT predicate on the "requires_id" field.
func RequiresIDLT(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLT(FieldRequiresID, v))
}

// RequiresIDLTE applies the LTE predicate on the "requires_id" field.
func RequiresIDLTE(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLTE(FieldRequiresID, v))
}

// RequiresIDContains applies the Contains predicate on the "requires_id" field.
func RequiresIDContains(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldContains(FieldRequiresID, v))
}

// RequiresIDHasPrefix applies the HasPrefix predicate on the "requires_id" field.
func RequiresIDHasPrefix(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldHasPrefix(FieldRequiresID, v))
}

// RequiresIDHasSuffix applies the HasSuffix predicate on the "requires_id" field.
func RequiresIDHasSuffix(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldHasSuffix(FieldRequiresID, v))
}

// RequiresIDEqualFold applies the EqualFold predicate on the "requires_id" field.
func RequiresIDEqualFold(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEqualFold(FieldRequiresID, v))
}

// RequiresIDContainsFold applies the ContainsFold predicate on the "requires_id" field.
func RequiresIDContainsFold(v string) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldContainsFold(FieldRequiresID, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.SkillDependency {
	return predicate.SkillDependency(sql.FieldLTE(FieldStrength, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillDependency) predicate.SkillDependency {
	return predicate.SkillDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillDependency) predicate.SkillDependency {
	return predicate.SkillDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillDependency) predicate.SkillDependency {
	return predicate.SkillDependency(sql.NotPredicates(p))
}
