// Code generated by ent, DO NOT EDIT.

package veterinarian

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the veterinarian type in the database.
	Label = "veterinarian"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldSpecialty holds the string denoting the specialty field in the database.
	FieldSpecialty = "specialty"
	// FieldLicenseNumberEnc holds the string denoting the license_number_enc field in the database.
	FieldLicenseNumberEnc = "license_number_enc"
	// FieldYearsExperience holds the string denoting the years_experience field in the database.
	FieldYearsExperience = "years_experience"
	// FieldAvatarKey holds the string denoting the avatar_key field in the database.
	FieldAvatarKey = "avatar_key"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// Table holds the table name of the veterinarian in the database.
	Table = "veterinarians"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "veterinarians"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
)

// Columns holds all SQL columns for veterinarian fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldClinicID,
	FieldFullName,
	FieldPhone,
	FieldEmail,
	FieldSpecialty,
	FieldLicenseNumberEnc,
	FieldYearsExperience,
	FieldAvatarKey,
	FieldIsActive,
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
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	SpecialtyValidator func(string) error
	// DefaultYearsExperience holds the default value on creation for the "years_experience" field.
	DefaultYearsExperience int
	// YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	YearsExperienceValidator func(int) error
	// AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	AvatarKeyValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Veterinarian queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// BySpecialty orders the results by the specialty field.
func BySpecialty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialty, opts...).ToFunc()
}

// ByLicenseNumberEnc orders the results by the license_number_enc field.
func ByLicenseNumberEnc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLicenseNumberEnc, opts...).ToFunc()
}

// ByYearsExperience orders the results by the years_experience field.
func ByYearsExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsExperience, opts...).ToFunc()
}

// ByAvatarKey orders the results by the avatar_key field.
func ByAvatarKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarKey, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
	)
}
