// Code generated by ent, DO NOT EDIT.

package pet

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pet type in the database.
	Label = "pet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSpecies holds the string denoting the species field in the database.
	FieldSpecies = "species"
	// FieldBreed holds the string denoting the breed field in the database.
	FieldBreed = "breed"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldWeightKg holds the string denoting the weight_kg field in the database.
	FieldWeightKg = "weight_kg"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldAvatarKey holds the string denoting the avatar_key field in the database.
	FieldAvatarKey = "avatar_key"
	// FieldMedicalNotesEnc holds the string denoting the medical_notes_enc field in the database.
	FieldMedicalNotesEnc = "medical_notes_enc"
	// Table holds the table name of the pet in the database.
	Table = "pets"
)

// Columns holds all SQL columns for pet fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldOwnerID,
	FieldName,
	FieldSpecies,
	FieldBreed,
	FieldGender,
	FieldWeightKg,
	FieldDateOfBirth,
	FieldAvatarKey,
	FieldMedicalNotesEnc,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "pets"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"appointment_pets",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// BreedValidator is a validator for the "breed" field. It is called by the builders before save.
	BreedValidator func(string) error
	// WeightKgValidator is a validator for the "weight_kg" field. It is called by the builders before save.
	WeightKgValidator func(float64) error
	// AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	AvatarKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Species defines the type for the "species" enum field.
type Species string

// SpeciesOther is the default value of the Species enum.
const DefaultSpecies = SpeciesOther

// Species values.
const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
	SpeciesOther   Species = "other"
)

func (s Species) String() string {
	return string(s)
}

// SpeciesValidator is a validator for the "species" field enum values. It is called by the builders before save.
func SpeciesValidator(s Species) error {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesHamster, SpeciesOther:
		return nil
	default:
		return fmt.Errorf("pet: invalid enum value for species field: %q", s)
	}
}

// Gender defines the type for the "gender" enum field.
type Gender string

// GenderUnknown is the default value of the Gender enum.
const DefaultGender = GenderUnknown

// Gender values.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (ge Gender) String() string {
	return string(ge)
}

// GenderValidator is a validator for the "gender" field enum values. It is called by the builders before save.
func GenderValidator(ge Gender) error {
	switch ge {
	case GenderMale, GenderFemale, GenderUnknown:
		return nil
	default:
		return fmt.Errorf("pet: invalid enum value for gender field: %q", ge)
	}
}

// OrderOption defines the ordering options for the Pet queries.
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

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySpecies orders the results by the species field.
func BySpecies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecies, opts...).ToFunc()
}

// ByBreed orders the results by the breed field.
func ByBreed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreed, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByWeightKg orders the results by the weight_kg field.
func ByWeightKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightKg, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByAvatarKey orders the results by the avatar_key field.
func ByAvatarKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarKey, opts...).ToFunc()
}

// ByMedicalNotesEnc orders the results by the medical_notes_enc field.
func ByMedicalNotesEnc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicalNotesEnc, opts...).ToFunc()
}
