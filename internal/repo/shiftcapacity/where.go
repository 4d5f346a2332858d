// Code generated by ent, DO NOT EDIT.

package shiftcapacity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldClinicID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldDate, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldCapacity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLTE(FieldClinicID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldContainsFold(FieldDate, v))
}

// ShiftEQ applies the EQ predicate on the "shift" field.
func ShiftEQ(v Shift) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldShift, v))
}

// ShiftNEQ applies the NEQ predicate on the "shift" field.
func ShiftNEQ(v Shift) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldShift, v))
}

// ShiftIn applies the In predicate on the "shift" field.
func ShiftIn(vs ...Shift) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldShift, vs...))
}

// ShiftNotIn applies the NotIn predicate on the "shift" field.
func ShiftNotIn(vs ...Shift) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldShift, vs...))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.FieldLTE(FieldCapacity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShiftCapacity) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShiftCapacity) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShiftCapacity) predicate.ShiftCapacity {
	return predicate.ShiftCapacity(sql.NotPredicates(p))
}
