// Code generated by ent, DO NOT EDIT.

package veterinarian

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldDeletedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldClinicID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldFullName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldEmail, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldSpecialty, v))
}

// LicenseNumberEnc applies equality check predicate on the "license_number_enc" field. It's identical to LicenseNumberEncEQ.
func LicenseNumberEnc(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldLicenseNumberEnc, v))
}

// YearsExperience applies equality check predicate on the "years_experience" field. It's identical to YearsExperienceEQ.
func YearsExperience(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldYearsExperience, v))
}

// AvatarKey applies equality check predicate on the "avatar_key" field. It's identical to AvatarKeyEQ.
func AvatarKey(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldAvatarKey, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotNull(FieldDeletedAt))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldClinicID, vs...))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContainsFold(FieldFullName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContainsFold(FieldEmail, v))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContainsFold(FieldSpecialty, v))
}

// LicenseNumberEncEQ applies the EQ predicate on the "license_number_enc" field.
func LicenseNumberEncEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncNEQ applies the NEQ predicate on the "license_number_enc" field.
func LicenseNumberEncNEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncIn applies the In predicate on the "license_number_enc" field.
func LicenseNumberEncIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldLicenseNumberEnc, vs...))
}

// LicenseNumberEncNotIn applies the NotIn predicate on the "license_number_enc" field.
func LicenseNumberEncNotIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldLicenseNumberEnc, vs...))
}

// LicenseNumberEncGT applies the GT predicate on the "license_number_enc" field.
func LicenseNumberEncGT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncGTE applies the GTE predicate on the "license_number_enc" field.
func LicenseNumberEncGTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncLT applies the LT predicate on the "license_number_enc" field.
func LicenseNumberEncLT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncLTE applies the LTE predicate on the "license_number_enc" field.
func LicenseNumberEncLTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncContains applies the Contains predicate on the "license_number_enc" field.
func LicenseNumberEncContains(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContains(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncHasPrefix applies the HasPrefix predicate on the "license_number_enc" field.
func LicenseNumberEncHasPrefix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasPrefix(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncHasSuffix applies the HasSuffix predicate on the "license_number_enc" field.
func LicenseNumberEncHasSuffix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasSuffix(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncIsNil applies the IsNil predicate on the "license_number_enc" field.
func LicenseNumberEncIsNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIsNull(FieldLicenseNumberEnc))
}

// LicenseNumberEncNotNil applies the NotNil predicate on the "license_number_enc" field.
func LicenseNumberEncNotNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotNull(FieldLicenseNumberEnc))
}

// LicenseNumberEncEqualFold applies the EqualFold predicate on the "license_number_enc" field.
func LicenseNumberEncEqualFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEqualFold(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncContainsFold applies the ContainsFold predicate on the "license_number_enc" field.
func LicenseNumberEncContainsFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContainsFold(FieldLicenseNumberEnc, v))
}

// YearsExperienceEQ applies the EQ predicate on the "years_experience" field.
func YearsExperienceEQ(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldYearsExperience, v))
}

// YearsExperienceNEQ applies the NEQ predicate on the "years_experience" field.
func YearsExperienceNEQ(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldYearsExperience, v))
}

// YearsExperienceIn applies the In predicate on the "years_experience" field.
func YearsExperienceIn(vs ...int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldYearsExperience, vs...))
}

// YearsExperienceNotIn applies the NotIn predicate on the "years_experience" field.
func YearsExperienceNotIn(vs ...int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldYearsExperience, vs...))
}

// YearsExperienceGT applies the GT predicate on the "years_experience" field.
func YearsExperienceGT(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldYearsExperience, v))
}

// YearsExperienceGTE applies the GTE predicate on the "years_experience" field.
func YearsExperienceGTE(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldYearsExperience, v))
}

// YearsExperienceLT applies the LT predicate on the "years_experience" field.
func YearsExperienceLT(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldYearsExperience, v))
}

// YearsExperienceLTE applies the LTE predicate on the "years_experience" field.
func YearsExperienceLTE(v int) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldYearsExperience, v))
}

// AvatarKeyEQ applies the EQ predicate on the "avatar_key" field.
func AvatarKeyEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldAvatarKey, v))
}

// AvatarKeyNEQ applies the NEQ predicate on the "avatar_key" field.
func AvatarKeyNEQ(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldAvatarKey, v))
}

// AvatarKeyIn applies the In predicate on the "avatar_key" field.
func AvatarKeyIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIn(FieldAvatarKey, vs...))
}

// AvatarKeyNotIn applies the NotIn predicate on the "avatar_key" field.
func AvatarKeyNotIn(vs ...string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotIn(FieldAvatarKey, vs...))
}

// AvatarKeyGT applies the GT predicate on the "avatar_key" field.
func AvatarKeyGT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGT(FieldAvatarKey, v))
}

// AvatarKeyGTE applies the GTE predicate on the "avatar_key" field.
func AvatarKeyGTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldGTE(FieldAvatarKey, v))
}

// AvatarKeyLT applies the LT predicate on the "avatar_key" field.
func AvatarKeyLT(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLT(FieldAvatarKey, v))
}

// AvatarKeyLTE applies the LTE predicate on the "avatar_key" field.
func AvatarKeyLTE(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldLTE(FieldAvatarKey, v))
}

// AvatarKeyContains applies the Contains predicate on the "avatar_key" field.
func AvatarKeyContains(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContains(FieldAvatarKey, v))
}

// AvatarKeyHasPrefix applies the HasPrefix predicate on the "avatar_key" field.
func AvatarKeyHasPrefix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasPrefix(FieldAvatarKey, v))
}

// AvatarKeyHasSuffix applies the HasSuffix predicate on the "avatar_key" field.
func AvatarKeyHasSuffix(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldHasSuffix(FieldAvatarKey, v))
}

// AvatarKeyIsNil applies the IsNil predicate on the "avatar_key" field.
func AvatarKeyIsNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldIsNull(FieldAvatarKey))
}

// AvatarKeyNotNil applies the NotNil predicate on the "avatar_key" field.
func AvatarKeyNotNil() predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNotNull(FieldAvatarKey))
}

// AvatarKeyEqualFold applies the EqualFold predicate on the "avatar_key" field.
func AvatarKeyEqualFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEqualFold(FieldAvatarKey, v))
}

// AvatarKeyContainsFold applies the ContainsFold predicate on the "avatar_key" field.
func AvatarKeyContainsFold(v string) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldContainsFold(FieldAvatarKey, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Veterinarian {
	return predicate.Veterinarian(sql.FieldNEQ(FieldIsActive, v))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.Veterinarian {
	return predicate.Veterinarian(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.Veterinarian {
	return predicate.Veterinarian(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Veterinarian) predicate.Veterinarian {
	return predicate.Veterinarian(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Veterinarian) predicate.Veterinarian {
	return predicate.Veterinarian(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Veterinarian) predicate.Veterinarian {
	return predicate.Veterinarian(sql.NotPredicates(p))
}
