// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDeletedAt, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// SenderID applies equality check predicate on the "sender_id" field. It's identical to SenderIDEQ.
func SenderID(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// FileKey applies equality check predicate on the "file_key" field. It's identical to FileKeyEQ.
func FileKey(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFileKey, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFileName, v))
}

// FileMime applies equality check predicate on the "file_mime" field. It's identical to FileMimeEQ.
func FileMime(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFileMime, v))
}

// IsRead applies equality check predicate on the "is_read" field. It's identical to IsReadEQ.
func IsRead(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsRead, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldReadAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldDeletedAt))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldConversationID, v))
}

// SenderIDEQ applies the EQ predicate on the "sender_id" field.
func SenderIDEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSenderID, v))
}

// SenderIDNEQ applies the NEQ predicate on the "sender_id" field.
func SenderIDNEQ(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSenderID, v))
}

// SenderIDIn applies the In predicate on the "sender_id" field.
func SenderIDIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSenderID, vs...))
}

// SenderIDNotIn applies the NotIn predicate on the "sender_id" field.
func SenderIDNotIn(vs ...uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSenderID, vs...))
}

// SenderIDGT applies the GT predicate on the "sender_id" field.
func SenderIDGT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSenderID, v))
}

// SenderIDGTE applies the GTE predicate on the "sender_id" field.
func SenderIDGTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSenderID, v))
}

// SenderIDLT applies the LT predicate on the "sender_id" field.
func SenderIDLT(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSenderID, v))
}

// SenderIDLTE applies the LTE predicate on the "sender_id" field.
func SenderIDLTE(v uuid.UUID) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSenderID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// FileKeyEQ applies the EQ predicate on the "file_key" field.
func FileKeyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFileKey, v))
}

// FileKeyNEQ applies the NEQ predicate on the "file_key" field.
func FileKeyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFileKey, v))
}

// FileKeyIn applies the In predicate on the "file_key" field.
func FileKeyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldFileKey, vs...))
}

// FileKeyNotIn applies the NotIn predicate on the "file_key" field.
func FileKeyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldFileKey, vs...))
}

// FileKeyGT applies the GT predicate on the "file_key" field.
func FileKeyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldFileKey, v))
}

// FileKeyGTE applies the GTE predicate on the "file_key" field.
func FileKeyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldFileKey, v))
}

// FileKeyLT applies the LT predicate on the "file_key" field.
func FileKeyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldFileKey, v))
}

// FileKeyLTE applies the LTE predicate on the "file_key" field.
func FileKeyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldFileKey, v))
}

// FileKeyContains applies the Contains predicate on the "file_key" field.
func FileKeyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldFileKey, v))
}

// FileKeyHasPrefix applies the HasPrefix predicate on the "file_key" field.
func FileKeyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldFileKey, v))
}

// FileKeyHasSuffix applies the HasSuffix predicate on the "file_key" field.
func FileKeyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldFileKey, v))
}

// FileKeyIsNil applies the IsNil predicate on the "file_key" field.
func FileKeyIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldFileKey))
}

// FileKeyNotNil applies the NotNil predicate on the "file_key" field.
func FileKeyNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldFileKey))
}

// FileKeyEqualFold applies the EqualFold predicate on the "file_key" field.
func FileKeyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldFileKey, v))
}

// FileKeyContainsFold applies the ContainsFold predicate on the "file_key" field.
func FileKeyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldFileKey, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameIsNil applies the IsNil predicate on the "file_name" field.
func FileNameIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldFileName))
}

// FileNameNotNil applies the NotNil predicate on the "file_name" field.
func FileNameNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldFileName))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldFileName, v))
}

// FileMimeEQ applies the EQ predicate on the "file_mime" field.
func FileMimeEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFileMime, v))
}

// FileMimeNEQ applies the NEQ predicate on the "file_mime" field.
func FileMimeNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFileMime, v))
}

// FileMimeIn applies the In predicate on the "file_mime" field.
func FileMimeIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldFileMime, vs...))
}

// FileMimeNotIn applies the NotIn predicate on the "file_mime" field.
func FileMimeNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldFileMime, vs...))
}

// FileMimeGT applies the GT predicate on the "file_mime" field.
func FileMimeGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldFileMime, v))
}

// FileMimeGTE applies the GTE predicate on the "file_mime" field.
func FileMimeGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldFileMime, v))
}

// FileMimeLT applies the LT predicate on the "file_mime" field.
func FileMimeLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldFileMime, v))
}

// FileMimeLTE applies the LTE predicate on the "file_mime" field.
func FileMimeLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldFileMime, v))
}

// FileMimeContains applies the Contains predicate on the "file_mime" field.
func FileMimeContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldFileMime, v))
}

// FileMimeHasPrefix applies the HasPrefix predicate on the "file_mime" field.
func FileMimeHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldFileMime, v))
}

// FileMimeHasSuffix applies the HasSuffix predicate on the "file_mime" field.
func FileMimeHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldFileMime, v))
}

// FileMimeIsNil applies the IsNil predicate on the "file_mime" field.
func FileMimeIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldFileMime))
}

// FileMimeNotNil applies the NotNil predicate on the "file_mime" field.
func FileMimeNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldFileMime))
}

// FileMimeEqualFold applies the EqualFold predicate on the "file_mime" field.
func FileMimeEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldFileMime, v))
}

// FileMimeContainsFold applies the ContainsFold predicate on the "file_mime" field.
func FileMimeContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldFileMime, v))
}

// IsReadEQ applies the EQ predicate on the "is_read" field.
func IsReadEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldIsRead, v))
}

// IsReadNEQ applies the NEQ predicate on the "is_read" field.
func IsReadNEQ(v bool) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldIsRead, v))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldReadAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
