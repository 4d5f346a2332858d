// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
)

// ServiceItem is the model entity for the ServiceItem schema.
type ServiceItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Price in VND
	Price int64 `json:"price,omitempty"`
	// DurationMin holds the value of the "duration_min" field.
	DurationMin int `json:"duration_min,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServiceItemQuery when eager-loading is set.
	Edges                ServiceItemEdges `json:"edges"`
	appointment_services *uuid.UUID
	selectValues         sql.SelectValues
}

// ServiceItemEdges holds the relations/edges for other nodes in the graph.
type ServiceItemEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ServiceItemEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case serviceitem.FieldIsActive:
			values[i] = new(sql.NullBool)
		case serviceitem.FieldPrice, serviceitem.FieldDurationMin:
			values[i] = new(sql.NullInt64)
		case serviceitem.FieldName, serviceitem.FieldDescription:
			values[i] = new(sql.NullString)
		case serviceitem.FieldCreatedAt, serviceitem.FieldUpdatedAt, serviceitem.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case serviceitem.FieldID, serviceitem.FieldClinicID:
			values[i] = new(uuid.UUID)
		case serviceitem.ForeignKeys[0]: // appointment_services
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceItem fields.
func (_m *ServiceItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case serviceitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case serviceitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case serviceitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case serviceitem.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case serviceitem.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case serviceitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case serviceitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case serviceitem.FieldPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Int64
			}
		case serviceitem.FieldDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_min", values[i])
			} else if value.Valid {
				_m.DurationMin = int(value.Int64)
			}
		case serviceitem.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case serviceitem.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_services", values[i])
			} else if value.Valid {
				_m.appointment_services = new(uuid.UUID)
				*_m.appointment_services = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceItem.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the ServiceItem entity.
func (_m *ServiceItem) QueryClinic() *ClinicQuery {
	return NewServiceItemClient(_m.config).QueryClinic(_m)
}

// Update returns a builder for updating this ServiceItem.
// Note that you need to call ServiceItem.Unwrap() before calling this method if this ServiceItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceItem) Update() *ServiceItemUpdateOne {
	return NewServiceItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceItem) Unwrap() *ServiceItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ServiceItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceItem) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMin))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceItems is a parsable slice of ServiceItem.
type ServiceItems []*ServiceItem
