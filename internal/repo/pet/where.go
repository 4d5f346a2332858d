// Code generated by ent, DO NOT EDIT.

package pet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldDeletedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldName, v))
}

// Breed applies equality check predicate on the "breed" field. It's identical to BreedEQ.
func Breed(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldBreed, v))
}

// WeightKg applies equality check predicate on the "weight_kg" field. It's identical to WeightKgEQ.
func WeightKg(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldWeightKg, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldDateOfBirth, v))
}

// AvatarKey applies equality check predicate on the "avatar_key" field. It's identical to AvatarKeyEQ.
func AvatarKey(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldAvatarKey, v))
}

// MedicalNotesEnc applies equality check predicate on the "medical_notes_enc" field. It's identical to MedicalNotesEncEQ.
func MedicalNotesEnc(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldMedicalNotesEnc, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Pet {
	return predicate.Pet(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Pet {
	return predicate.Pet(sql.FieldNotNull(FieldDeletedAt))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContainsFold(FieldName, v))
}

// SpeciesEQ applies the EQ predicate on the "species" field.
func SpeciesEQ(v Species) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldSpecies, v))
}

// SpeciesNEQ applies the NEQ predicate on the "species" field.
func SpeciesNEQ(v Species) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldSpecies, v))
}

// SpeciesIn applies the In predicate on the "species" field.
func SpeciesIn(vs ...Species) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldSpecies, vs...))
}

// SpeciesNotIn applies the NotIn predicate on the "species" field.
func SpeciesNotIn(vs ...Species) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldSpecies, vs...))
}

// BreedEQ applies the EQ predicate on the "breed" field.
func BreedEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldBreed, v))
}

// BreedNEQ applies the NEQ predicate on the "breed" field.
func BreedNEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldBreed, v))
}

// BreedIn applies the In predicate on the "breed" field.
func BreedIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldBreed, vs...))
}

// BreedNotIn applies the NotIn predicate on the "breed" field.
func BreedNotIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldBreed, vs...))
}

// BreedGT applies the GT predicate on the "breed" field.
func BreedGT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldBreed, v))
}

// BreedGTE applies the GTE predicate on the "breed" field.
func BreedGTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldBreed, v))
}

// BreedLT applies the LT predicate on the "breed" field.
func BreedLT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldBreed, v))
}

// BreedLTE applies the LTE predicate on the "breed" field.
func BreedLTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldBreed, v))
}

// BreedContains applies the Contains predicate on the "breed" field.
func BreedContains(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContains(FieldBreed, v))
}

// BreedHasPrefix applies the HasPrefix predicate on the "breed" field.
func BreedHasPrefix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasPrefix(FieldBreed, v))
}

// BreedHasSuffix applies the HasSuffix predicate on the "breed" field.
func BreedHasSuffix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasSuffix(FieldBreed, v))
}

// BreedIsNil applies the IsNil predicate on the "breed" field.
func BreedIsNil() predicate.Pet {
	return predicate.Pet(sql.FieldIsNull(FieldBreed))
}

// BreedNotNil applies the NotNil predicate on the "breed" field.
func BreedNotNil() predicate.Pet {
	return predicate.Pet(sql.FieldNotNull(FieldBreed))
}

// BreedEqualFold applies the EqualFold predicate on the "breed" field.
func BreedEqualFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEqualFold(FieldBreed, v))
}

// BreedContainsFold applies the ContainsFold predicate on the "breed" field.
func BreedContainsFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContainsFold(FieldBreed, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldGender, vs...))
}

// WeightKgEQ applies the EQ predicate on the "weight_kg" field.
func WeightKgEQ(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldWeightKg, v))
}

// WeightKgNEQ applies the NEQ predicate on the "weight_kg" field.
func WeightKgNEQ(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldWeightKg, v))
}

// WeightKgIn applies the In predicate on the "weight_kg" field.
func WeightKgIn(vs ...float64) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldWeightKg, vs...))
}

// WeightKgNotIn applies the NotIn predicate on the "weight_kg" field.
func WeightKgNotIn(vs ...float64) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldWeightKg, vs...))
}

// WeightKgGT applies the GT predicate on the "weight_kg" field.
func WeightKgGT(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldWeightKg, v))
}

// WeightKgGTE applies the GTE predicate on the "weight_kg" field.
func WeightKgGTE(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldWeightKg, v))
}

// WeightKgLT applies the LT predicate on the "weight_kg" field.
func WeightKgLT(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldWeightKg, v))
}

// WeightKgLTE applies the LTE predicate on the "weight_kg" field.
func WeightKgLTE(v float64) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldWeightKg, v))
}

// WeightKgIsNil applies the IsNil predicate on the "weight_kg" field.
func WeightKgIsNil() predicate.Pet {
	return predicate.Pet(sql.FieldIsNull(FieldWeightKg))
}

// WeightKgNotNil applies the NotNil predicate on the "weight_kg" field.
func WeightKgNotNil() predicate.Pet {
	return predicate.Pet(sql.FieldNotNull(FieldWeightKg))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.Pet {
	return predicate.Pet(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.Pet {
	return predicate.Pet(sql.FieldNotNull(FieldDateOfBirth))
}

// AvatarKeyEQ applies the EQ predicate on the "avatar_key" field.
func AvatarKeyEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldAvatarKey, v))
}

// AvatarKeyNEQ applies the NEQ predicate on the "avatar_key" field.
func AvatarKeyNEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldAvatarKey, v))
}

// AvatarKeyIn applies the In predicate on the "avatar_key" field.
func AvatarKeyIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldAvatarKey, vs...))
}

// AvatarKeyNotIn applies the NotIn predicate on the "avatar_key" field.
func AvatarKeyNotIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldAvatarKey, vs...))
}

// AvatarKeyGT applies the GT predicate on the "avatar_key" field.
func AvatarKeyGT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldAvatarKey, v))
}

// AvatarKeyGTE applies the GTE predicate on the "avatar_key" field.
func AvatarKeyGTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldAvatarKey, v))
}

// AvatarKeyLT applies the LT predicate on the "avatar_key" field.
func AvatarKeyLT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldAvatarKey, v))
}

// AvatarKeyLTE applies the LTE predicate on the "avatar_key" field.
func AvatarKeyLTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldAvatarKey, v))
}

// AvatarKeyContains applies the Contains predicate on the "avatar_key" field.
func AvatarKeyContains(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContains(FieldAvatarKey, v))
}

// AvatarKeyHasPrefix applies the HasPrefix predicate on the "avatar_key" field.
func AvatarKeyHasPrefix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasPrefix(FieldAvatarKey, v))
}

// AvatarKeyHasSuffix applies the HasSuffix predicate on the "avatar_key" field.
func AvatarKeyHasSuffix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasSuffix(FieldAvatarKey, v))
}

// AvatarKeyIsNil applies the IsNil predicate on the "avatar_key" field.
func AvatarKeyIsNil() predicate.Pet {
	return predicate.Pet(sql.FieldIsNull(FieldAvatarKey))
}

// AvatarKeyNotNil applies the NotNil predicate on the "avatar_key" field.
func AvatarKeyNotNil() predicate.Pet {
	return predicate.Pet(sql.FieldNotNull(FieldAvatarKey))
}

// AvatarKeyEqualFold applies the EqualFold predicate on the "avatar_key" field.
func AvatarKeyEqualFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEqualFold(FieldAvatarKey, v))
}

// AvatarKeyContainsFold applies the ContainsFold predicate on the "avatar_key" field.
func AvatarKeyContainsFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContainsFold(FieldAvatarKey, v))
}

// MedicalNotesEncEQ applies the EQ predicate on the "medical_notes_enc" field.
func MedicalNotesEncEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEQ(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncNEQ applies the NEQ predicate on the "medical_notes_enc" field.
func MedicalNotesEncNEQ(v string) predicate.Pet {
	return predicate.Pet(sql.FieldNEQ(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncIn applies the In predicate on the "medical_notes_enc" field.
func MedicalNotesEncIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldIn(FieldMedicalNotesEnc, vs...))
}

// MedicalNotesEncNotIn applies the NotIn predicate on the "medical_notes_enc" field.
func MedicalNotesEncNotIn(vs ...string) predicate.Pet {
	return predicate.Pet(sql.FieldNotIn(FieldMedicalNotesEnc, vs...))
}

// MedicalNotesEncGT applies the GT predicate on the "medical_notes_enc" field.
func MedicalNotesEncGT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGT(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncGTE applies the GTE predicate on the "medical_notes_enc" field.
func MedicalNotesEncGTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldGTE(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncLT applies the LT predicate on the "medical_notes_enc" field.
func MedicalNotesEncLT(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLT(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncLTE applies the LTE predicate on the "medical_notes_enc" field.
func MedicalNotesEncLTE(v string) predicate.Pet {
	return predicate.Pet(sql.FieldLTE(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncContains applies the Contains predicate on the "medical_notes_enc" field.
func MedicalNotesEncContains(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContains(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncHasPrefix applies the HasPrefix predicate on the "medical_notes_enc" field.
func MedicalNotesEncHasPrefix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasPrefix(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncHasSuffix applies the HasSuffix predicate on the "medical_notes_enc" field.
func MedicalNotesEncHasSuffix(v string) predicate.Pet {
	return predicate.Pet(sql.FieldHasSuffix(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncIsNil applies the IsNil predicate on the "medical_notes_enc" field.
func MedicalNotesEncIsNil() predicate.Pet {
	return predicate.Pet(sql.FieldIsNull(FieldMedicalNotesEnc))
}

// MedicalNotesEncNotNil applies the NotNil predicate on the "medical_notes_enc" field.
func MedicalNotesEncNotNil() predicate.Pet {
	return predicate.Pet(sql.FieldNotNull(FieldMedicalNotesEnc))
}

// MedicalNotesEncEqualFold applies the EqualFold predicate on the "medical_notes_enc" field.
func MedicalNotesEncEqualFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldEqualFold(FieldMedicalNotesEnc, v))
}

// MedicalNotesEncContainsFold applies the ContainsFold predicate on the "medical_notes_enc" field.
func MedicalNotesEncContainsFold(v string) predicate.Pet {
	return predicate.Pet(sql.FieldContainsFold(FieldMedicalNotesEnc, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Pet) predicate.Pet {
	return predicate.Pet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Pet) predicate.Pet {
	return predicate.Pet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Pet) predicate.Pet {
	return predicate.Pet(sql.NotPredicates(p))
}
