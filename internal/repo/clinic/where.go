// Code generated by ent, DO NOT EDIT.

package clinic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDeletedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldName, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldSlug, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDescription, v))
}

// LogoKey applies equality check predicate on the "logo_key" field. It's identical to LogoKeyEQ.
func LogoKey(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldLogoKey, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldEmail, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldAddress, v))
}

// Ward applies equality check predicate on the "ward" field. It's identical to WardEQ.
func Ward(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldWard, v))
}

// District applies equality check predicate on the "district" field. It's identical to DistrictEQ.
func District(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDistrict, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCity, v))
}

// LicenseNumberEnc applies equality check predicate on the "license_number_enc" field. It's identical to LicenseNumberEncEQ.
func LicenseNumberEnc(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldLicenseNumberEnc, v))
}

// ReviewNote applies equality check predicate on the "review_note" field. It's identical to ReviewNoteEQ.
func ReviewNote(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldReviewNote, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldDeletedAt))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldName, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldDescription, v))
}

// LogoKeyEQ applies the EQ predicate on the "logo_key" field.
func LogoKeyEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldLogoKey, v))
}

// LogoKeyNEQ applies the NEQ predicate on the "logo_key" field.
func LogoKeyNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldLogoKey, v))
}

// LogoKeyIn applies the In predicate on the "logo_key" field.
func LogoKeyIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldLogoKey, vs...))
}

// LogoKeyNotIn applies the NotIn predicate on the "logo_key" field.
func LogoKeyNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldLogoKey, vs...))
}

// LogoKeyGT applies the GT predicate on the "logo_key" field.
func LogoKeyGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldLogoKey, v))
}

// LogoKeyGTE applies the GTE predicate on the "logo_key" field.
func LogoKeyGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldLogoKey, v))
}

// LogoKeyLT applies the LT predicate on the "logo_key" field.
func LogoKeyLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldLogoKey, v))
}

// LogoKeyLTE applies the LTE predicate on the "logo_key" field.
func LogoKeyLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldLogoKey, v))
}

// LogoKeyContains applies the Contains predicate on the "logo_key" field.
func LogoKeyContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldLogoKey, v))
}

// LogoKeyHasPrefix applies the HasPrefix predicate on the "logo_key" field.
func LogoKeyHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldLogoKey, v))
}

// LogoKeyHasSuffix applies the HasSuffix predicate on the "logo_key" field.
func LogoKeyHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldLogoKey, v))
}

// LogoKeyIsNil applies the IsNil predicate on the "logo_key" field.
func LogoKeyIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldLogoKey))
}

// LogoKeyNotNil applies the NotNil predicate on the "logo_key" field.
func LogoKeyNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldLogoKey))
}

// LogoKeyEqualFold applies the EqualFold predicate on the "logo_key" field.
func LogoKeyEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldLogoKey, v))
}

// LogoKeyContainsFold applies the ContainsFold predicate on the "logo_key" field.
func LogoKeyContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldLogoKey, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldEmail, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldAddress, v))
}

// WardEQ applies the EQ predicate on the "ward" field.
func WardEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldWard, v))
}

// WardNEQ applies the NEQ predicate on the "ward" field.
func WardNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldWard, v))
}

// WardIn applies the In predicate on the "ward" field.
func WardIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldWard, vs...))
}

// WardNotIn applies the NotIn predicate on the "ward" field.
func WardNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldWard, vs...))
}

// WardGT applies the GT predicate on the "ward" field.
func WardGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldWard, v))
}

// WardGTE applies the GTE predicate on the "ward" field.
func WardGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldWard, v))
}

// WardLT applies the LT predicate on the "ward" field.
func WardLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldWard, v))
}

// WardLTE applies the LTE predicate on the "ward" field.
func WardLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldWard, v))
}

// WardContains applies the Contains predicate on the "ward" field.
func WardContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldWard, v))
}

// WardHasPrefix applies the HasPrefix predicate on the "ward" field.
func WardHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldWard, v))
}

// WardHasSuffix applies the HasSuffix predicate on the "ward" field.
func WardHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldWard, v))
}

// WardIsNil applies the IsNil predicate on the "ward" field.
func WardIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldWard))
}

// WardNotNil applies the NotNil predicate on the "ward" field.
func WardNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldWard))
}

// WardEqualFold applies the EqualFold predicate on the "ward" field.
func WardEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldWard, v))
}

// WardContainsFold applies the ContainsFold predicate on the "ward" field.
func WardContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldWard, v))
}

// DistrictEQ applies the EQ predicate on the "district" field.
func DistrictEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDistrict, v))
}

// DistrictNEQ applies the NEQ predicate on the "district" field.
func DistrictNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldDistrict, v))
}

// DistrictIn applies the In predicate on the "district" field.
func DistrictIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldDistrict, vs...))
}

// DistrictNotIn applies the NotIn predicate on the "district" field.
func DistrictNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldDistrict, vs...))
}

// DistrictGT applies the GT predicate on the "district" field.
func DistrictGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldDistrict, v))
}

// DistrictGTE applies the GTE predicate on the "district" field.
func DistrictGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldDistrict, v))
}

// DistrictLT applies the LT predicate on the "district" field.
func DistrictLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldDistrict, v))
}

// DistrictLTE applies the LTE predicate on the "district" field.
func DistrictLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldDistrict, v))
}

// DistrictContains applies the Contains predicate on the "district" field.
func DistrictContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldDistrict, v))
}

// DistrictHasPrefix applies the HasPrefix predicate on the "district" field.
func DistrictHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldDistrict, v))
}

// DistrictHasSuffix applies the HasSuffix predicate on the "district" field.
func DistrictHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldDistrict, v))
}

// DistrictIsNil applies the IsNil predicate on the "district" field.
func DistrictIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldDistrict))
}

// DistrictNotNil applies the NotNil predicate on the "district" field.
func DistrictNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldDistrict))
}

// DistrictEqualFold applies the EqualFold predicate on the "district" field.
func DistrictEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldDistrict, v))
}

// DistrictContainsFold applies the ContainsFold predicate on the "district" field.
func DistrictContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldDistrict, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldCity, v))
}

// LicenseNumberEncEQ applies the EQ predicate on the "license_number_enc" field.
func LicenseNumberEncEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncNEQ applies the NEQ predicate on the "license_number_enc" field.
func LicenseNumberEncNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncIn applies the In predicate on the "license_number_enc" field.
func LicenseNumberEncIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldLicenseNumberEnc, vs...))
}

// LicenseNumberEncNotIn applies the NotIn predicate on the "license_number_enc" field.
func LicenseNumberEncNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldLicenseNumberEnc, vs...))
}

// LicenseNumberEncGT applies the GT predicate on the "license_number_enc" field.
func LicenseNumberEncGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncGTE applies the GTE predicate on the "license_number_enc" field.
func LicenseNumberEncGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncLT applies the LT predicate on the "license_number_enc" field.
func LicenseNumberEncLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncLTE applies the LTE predicate on the "license_number_enc" field.
func LicenseNumberEncLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncContains applies the Contains predicate on the "license_number_enc" field.
func LicenseNumberEncContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncHasPrefix applies the HasPrefix predicate on the "license_number_enc" field.
func LicenseNumberEncHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncHasSuffix applies the HasSuffix predicate on the "license_number_enc" field.
func LicenseNumberEncHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncEqualFold applies the EqualFold predicate on the "license_number_enc" field.
func LicenseNumberEncEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldLicenseNumberEnc, v))
}

// LicenseNumberEncContainsFold applies the ContainsFold predicate on the "license_number_enc" field.
func LicenseNumberEncContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldLicenseNumberEnc, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewNoteEQ applies the EQ predicate on the "review_note" field.
func ReviewNoteEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldReviewNote, v))
}

// ReviewNoteNEQ applies the NEQ predicate on the "review_note" field.
func ReviewNoteNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldReviewNote, v))
}

// ReviewNoteIn applies the In predicate on the "review_note" field.
func ReviewNoteIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldReviewNote, vs...))
}

// ReviewNoteNotIn applies the NotIn predicate on the "review_note" field.
func ReviewNoteNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldReviewNote, vs...))
}

// ReviewNoteGT applies the GT predicate on the "review_note" field.
func ReviewNoteGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldReviewNote, v))
}

// ReviewNoteGTE applies the GTE predicate on the "review_note" field.
func ReviewNoteGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldReviewNote, v))
}

// ReviewNoteLT applies the LT predicate on the "review_note" field.
func ReviewNoteLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldReviewNote, v))
}

// ReviewNoteLTE applies the LTE predicate on the "review_note" field.
func ReviewNoteLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldReviewNote, v))
}

// ReviewNoteContains applies the Contains predicate on the "review_note" field.
func ReviewNoteContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldReviewNote, v))
}

// ReviewNoteHasPrefix applies the HasPrefix predicate on the "review_note" field.
func ReviewNoteHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldReviewNote, v))
}

// ReviewNoteHasSuffix applies the HasSuffix predicate on the "review_note" field.
func ReviewNoteHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldReviewNote, v))
}

// ReviewNoteIsNil applies the IsNil predicate on the "review_note" field.
func ReviewNoteIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldReviewNote))
}

// ReviewNoteNotNil applies the NotNil predicate on the "review_note" field.
func ReviewNoteNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldReviewNote))
}

// ReviewNoteEqualFold applies the EqualFold predicate on the "review_note" field.
func ReviewNoteEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldReviewNote, v))
}

// ReviewNoteContainsFold applies the ContainsFold predicate on the "review_note" field.
func ReviewNoteContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldReviewNote, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldReviewedAt))
}

// HasVeterinarians applies the HasEdge predicate on the "veterinarians" edge.
func HasVeterinarians() predicate.Clinic {
	return predicate.Clinic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VeterinariansTable, VeterinariansColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVeterinariansWith applies the HasEdge predicate on the "veterinarians" edge with a given conditions (other predicates).
func HasVeterinariansWith(preds ...predicate.Veterinarian) predicate.Clinic {
	return predicate.Clinic(func(s *sql.Selector) {
		step := newVeterinariansStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasServices applies the HasEdge predicate on the "services" edge.
func HasServices() predicate.Clinic {
	return predicate.Clinic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ServicesTable, ServicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasServicesWith applies the HasEdge predicate on the "services" edge with a given conditions (other predicates).
func HasServicesWith(preds ...predicate.ServiceItem) predicate.Clinic {
	return predicate.Clinic(func(s *sql.Selector) {
		step := newServicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.NotPredicates(p))
}
