// Code generated by ent, DO NOT EDIT.

package shiftcapacity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the shiftcapacity type in the database.
	Label = "shift_capacity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldShift holds the string denoting the shift field in the database.
	FieldShift = "shift"
	// FieldCapacity holds the string denoting the capacity field in the database.
	FieldCapacity = "capacity"
	// Table holds the table name of the shiftcapacity in the database.
	Table = "shift_capacities"
)

// Columns holds all SQL columns for shiftcapacity fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldDate,
	FieldShift,
	FieldCapacity,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	CapacityValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Shift defines the type for the "shift" enum field.
type Shift string

// Shift values.
const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftEvening   Shift = "Evening"
)

func (s Shift) String() string {
	return string(s)
}

// ShiftValidator is a validator for the "shift" field enum values. It is called by the builders before save.
func ShiftValidator(s Shift) error {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return nil
	default:
		return fmt.Errorf("shiftcapacity: invalid enum value for shift field: %q", s)
	}
}

// OrderOption defines the ordering options for the ShiftCapacity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByShift orders the results by the shift field.
func ByShift(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShift, opts...).ToFunc()
}

// ByCapacity orders the results by the capacity field.
func ByCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapacity, opts...).ToFunc()
}
