// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/shiftcapacity"
)

// ShiftCapacity is the model entity for the ShiftCapacity schema.
type ShiftCapacity struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// Date holds the value of the "date" field.
	Date string `json:"date,omitempty"`
	// Shift holds the value of the "shift" field.
	Shift shiftcapacity.Shift `json:"shift,omitempty"`
	// 0 closes the shift for booking
	Capacity     int `json:"capacity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShiftCapacity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shiftcapacity.FieldCapacity:
			values[i] = new(sql.NullInt64)
		case shiftcapacity.FieldDate, shiftcapacity.FieldShift:
			values[i] = new(sql.NullString)
		case shiftcapacity.FieldCreatedAt, shiftcapacity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case shiftcapacity.FieldID, shiftcapacity.FieldClinicID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShiftCapacity fields.
func (_m *ShiftCapacity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shiftcapacity.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case shiftcapacity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case shiftcapacity.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case shiftcapacity.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case shiftcapacity.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case shiftcapacity.FieldShift:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shift", values[i])
			} else if value.Valid {
				_m.Shift = shiftcapacity.Shift(value.String)
			}
		case shiftcapacity.FieldCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShiftCapacity.
// This includes values selected through modifiers, order, etc.
func (_m *ShiftCapacity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ShiftCapacity.
// Note that you need to call ShiftCapacity.Unwrap() before calling this method if this ShiftCapacity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShiftCapacity) Update() *ShiftCapacityUpdateOne {
	return NewShiftCapacityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShiftCapacity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShiftCapacity) Unwrap() *ShiftCapacity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ShiftCapacity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShiftCapacity) String() string {
	var builder strings.Builder
	builder.WriteString("ShiftCapacity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("shift=")
	builder.WriteString(fmt.Sprintf("%v", _m.Shift))
	builder.WriteString(", ")
	builder.WriteString("capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capacity))
	builder.WriteByte(')')
	return builder.String()
}

// ShiftCapacities is a parsable slice of ShiftCapacity.
type ShiftCapacities []*ShiftCapacity
