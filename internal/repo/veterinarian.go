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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
)

// Veterinarian is the model entity for the Veterinarian schema.
type Veterinarian struct {
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
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Specialty holds the value of the "specialty" field.
	Specialty *string `json:"specialty,omitempty"`
	// Practice license number, AES-GCM encrypted at rest
	LicenseNumberEnc *string `json:"-"`
	// YearsExperience holds the value of the "years_experience" field.
	YearsExperience int `json:"years_experience,omitempty"`
	// AvatarKey holds the value of the "avatar_key" field.
	AvatarKey *string `json:"avatar_key,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VeterinarianQuery when eager-loading is set.
	Edges        VeterinarianEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VeterinarianEdges holds the relations/edges for other nodes in the graph.
type VeterinarianEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VeterinarianEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Veterinarian) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case veterinarian.FieldIsActive:
			values[i] = new(sql.NullBool)
		case veterinarian.FieldYearsExperience:
			values[i] = new(sql.NullInt64)
		case veterinarian.FieldFullName, veterinarian.FieldPhone, veterinarian.FieldEmail, veterinarian.FieldSpecialty, veterinarian.FieldLicenseNumberEnc, veterinarian.FieldAvatarKey:
			values[i] = new(sql.NullString)
		case veterinarian.FieldCreatedAt, veterinarian.FieldUpdatedAt, veterinarian.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case veterinarian.FieldID, veterinarian.FieldClinicID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Veterinarian fields.
func (_m *Veterinarian) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case veterinarian.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case veterinarian.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case veterinarian.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case veterinarian.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case veterinarian.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case veterinarian.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case veterinarian.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case veterinarian.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case veterinarian.FieldSpecialty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialty", values[i])
			} else if value.Valid {
				_m.Specialty = new(string)
				*_m.Specialty = value.String
			}
		case veterinarian.FieldLicenseNumberEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field license_number_enc", values[i])
			} else if value.Valid {
				_m.LicenseNumberEnc = new(string)
				*_m.LicenseNumberEnc = value.String
			}
		case veterinarian.FieldYearsExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_experience", values[i])
			} else if value.Valid {
				_m.YearsExperience = int(value.Int64)
			}
		case veterinarian.FieldAvatarKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_key", values[i])
			} else if value.Valid {
				_m.AvatarKey = new(string)
				*_m.AvatarKey = value.String
			}
		case veterinarian.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Veterinarian.
// This includes values selected through modifiers, order, etc.
func (_m *Veterinarian) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the Veterinarian entity.
func (_m *Veterinarian) QueryClinic() *ClinicQuery {
	return NewVeterinarianClient(_m.config).QueryClinic(_m)
}

// Update returns a builder for updating this Veterinarian.
// Note that you need to call Veterinarian.Unwrap() before calling this method if this Veterinarian
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Veterinarian) Update() *VeterinarianUpdateOne {
	return NewVeterinarianClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Veterinarian entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Veterinarian) Unwrap() *Veterinarian {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Veterinarian is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Veterinarian) String() string {
	var builder strings.Builder
	builder.WriteString("Veterinarian(")
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
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Specialty; v != nil {
		builder.WriteString("specialty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("license_number_enc=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("years_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsExperience))
	builder.WriteString(", ")
	if v := _m.AvatarKey; v != nil {
		builder.WriteString("avatar_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// Veterinarians is a parsable slice of Veterinarian.
type Veterinarians []*Veterinarian
