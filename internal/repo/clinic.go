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
)

// Clinic is the model entity for the Clinic schema.
type Clinic struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → users.id (role partner)
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// URL-friendly identifier for the clinic
	Slug string `json:"slug,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// S3 key for clinic logo
	LogoKey *string `json:"logo_key,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Ward holds the value of the "ward" field.
	Ward *string `json:"ward,omitempty"`
	// District holds the value of the "district" field.
	District *string `json:"district,omitempty"`
	// City holds the value of the "city" field.
	City *string `json:"city,omitempty"`
	// Business license number, AES-GCM encrypted at rest
	LicenseNumberEnc string `json:"-"`
	// Status holds the value of the "status" field.
	Status clinic.Status `json:"status,omitempty"`
	// Admin note attached on approval or rejection
	ReviewNote *string `json:"review_note,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicQuery when eager-loading is set.
	Edges        ClinicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicEdges holds the relations/edges for other nodes in the graph.
type ClinicEdges struct {
	// Veterinarians holds the value of the veterinarians edge.
	Veterinarians []*Veterinarian `json:"veterinarians,omitempty"`
	// Services holds the value of the services edge.
	Services []*ServiceItem `json:"services,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VeterinariansOrErr returns the Veterinarians value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicEdges) VeterinariansOrErr() ([]*Veterinarian, error) {
	if e.loadedTypes[0] {
		return e.Veterinarians, nil
	}
	return nil, &NotLoadedError{edge: "veterinarians"}
}

// ServicesOrErr returns the Services value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicEdges) ServicesOrErr() ([]*ServiceItem, error) {
	if e.loadedTypes[1] {
		return e.Services, nil
	}
	return nil, &NotLoadedError{edge: "services"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Clinic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinic.FieldName, clinic.FieldSlug, clinic.FieldDescription, clinic.FieldLogoKey, clinic.FieldPhone, clinic.FieldEmail, clinic.FieldAddress, clinic.FieldWard, clinic.FieldDistrict, clinic.FieldCity, clinic.FieldLicenseNumberEnc, clinic.FieldStatus, clinic.FieldReviewNote:
			values[i] = new(sql.NullString)
		case clinic.FieldCreatedAt, clinic.FieldUpdatedAt, clinic.FieldDeletedAt, clinic.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		case clinic.FieldID, clinic.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Clinic fields.
func (_m *Clinic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinic.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clinic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clinic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clinic.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case clinic.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case clinic.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case clinic.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case clinic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case clinic.FieldLogoKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_key", values[i])
			} else if value.Valid {
				_m.LogoKey = new(string)
				*_m.LogoKey = value.String
			}
		case clinic.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case clinic.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case clinic.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case clinic.FieldWard:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ward", values[i])
			} else if value.Valid {
				_m.Ward = new(string)
				*_m.Ward = value.String
			}
		case clinic.FieldDistrict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field district", values[i])
			} else if value.Valid {
				_m.District = new(string)
				*_m.District = value.String
			}
		case clinic.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = new(string)
				*_m.City = value.String
			}
		case clinic.FieldLicenseNumberEnc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field license_number_enc", values[i])
			} else if value.Valid {
				_m.LicenseNumberEnc = value.String
			}
		case clinic.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = clinic.Status(value.String)
			}
		case clinic.FieldReviewNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_note", values[i])
			} else if value.Valid {
				_m.ReviewNote = new(string)
				*_m.ReviewNote = value.String
			}
		case clinic.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Clinic.
// This includes values selected through modifiers, order, etc.
func (_m *Clinic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVeterinarians queries the "veterinarians" edge of the Clinic entity.
func (_m *Clinic) QueryVeterinarians() *VeterinarianQuery {
	return NewClinicClient(_m.config).QueryVeterinarians(_m)
}

// QueryServices queries the "services" edge of the Clinic entity.
func (_m *Clinic) QueryServices() *ServiceItemQuery {
	return NewClinicClient(_m.config).QueryServices(_m)
}

// Update returns a builder for updating this Clinic.
// Note that you need to call Clinic.Unwrap() before calling this method if this Clinic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Clinic) Update() *ClinicUpdateOne {
	return NewClinicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Clinic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Clinic) Unwrap() *Clinic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Clinic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Clinic) String() string {
	var builder strings.Builder
	builder.WriteString("Clinic(")
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
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LogoKey; v != nil {
		builder.WriteString("logo_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	if v := _m.Ward; v != nil {
		builder.WriteString("ward=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.District; v != nil {
		builder.WriteString("district=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.City; v != nil {
		builder.WriteString("city=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("license_number_enc=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ReviewNote; v != nil {
		builder.WriteString("review_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Clinics is a parsable slice of Clinic.
type Clinics []*Clinic
