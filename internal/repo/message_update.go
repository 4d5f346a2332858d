// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/message"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MessageUpdate) SetDeletedAt(v time.Time) *MessageUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDeletedAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MessageUpdate) ClearDeletedAt() *MessageUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageUpdate) SetConversationID(v uuid.UUID) *MessageUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableConversationID(v *uuid.UUID) *MessageUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSenderID sets the "sender_id" field.
func (_u *MessageUpdate) SetSenderID(v uuid.UUID) *MessageUpdate {
	_u.mutation.SetSenderID(v)
	return _u
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSenderID(v *uuid.UUID) *MessageUpdate {
	if v != nil {
		_u.SetSenderID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *MessageUpdate) ClearContent() *MessageUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *MessageUpdate) SetFileKey(v string) *MessageUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableFileKey(v *string) *MessageUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// ClearFileKey clears the value of the "file_key" field.
func (_u *MessageUpdate) ClearFileKey() *MessageUpdate {
	_u.mutation.ClearFileKey()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *MessageUpdate) SetFileName(v string) *MessageUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableFileName(v *string) *MessageUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *MessageUpdate) ClearFileName() *MessageUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetFileMime sets the "file_mime" field.
func (_u *MessageUpdate) SetFileMime(v string) *MessageUpdate {
	_u.mutation.SetFileMime(v)
	return _u
}

// SetNillableFileMime sets the "file_mime" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableFileMime(v *string) *MessageUpdate {
	if v != nil {
		_u.SetFileMime(*v)
	}
	return _u
}

// ClearFileMime clears the value of the "file_mime" field.
func (_u *MessageUpdate) ClearFileMime() *MessageUpdate {
	_u.mutation.ClearFileMime()
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *MessageUpdate) SetIsRead(v bool) *MessageUpdate {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableIsRead(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *MessageUpdate) SetReadAt(v time.Time) *MessageUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableReadAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *MessageUpdate) ClearReadAt() *MessageUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(message.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(message.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(message.FieldConversationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SenderID(); ok {
		_spec.SetField(message.FieldSenderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(message.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(message.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.FileKeyCleared() {
		_spec.ClearField(message.FieldFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(message.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(message.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.FileMime(); ok {
		_spec.SetField(message.FieldFileMime, field.TypeString, value)
	}
	if _u.mutation.FileMimeCleared() {
		_spec.ClearField(message.FieldFileMime, field.TypeString)
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(message.FieldIsRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(message.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(message.FieldReadAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MessageUpdateOne) SetDeletedAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDeletedAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MessageUpdateOne) ClearDeletedAt() *MessageUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageUpdateOne) SetConversationID(v uuid.UUID) *MessageUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableConversationID(v *uuid.UUID) *MessageUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSenderID sets the "sender_id" field.
func (_u *MessageUpdateOne) SetSenderID(v uuid.UUID) *MessageUpdateOne {
	_u.mutation.SetSenderID(v)
	return _u
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSenderID(v *uuid.UUID) *MessageUpdateOne {
	if v != nil {
		_u.SetSenderID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *MessageUpdateOne) ClearContent() *MessageUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *MessageUpdateOne) SetFileKey(v string) *MessageUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableFileKey(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// ClearFileKey clears the value of the "file_key" field.
func (_u *MessageUpdateOne) ClearFileKey() *MessageUpdateOne {
	_u.mutation.ClearFileKey()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *MessageUpdateOne) SetFileName(v string) *MessageUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableFileName(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *MessageUpdateOne) ClearFileName() *MessageUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetFileMime sets the "file_mime" field.
func (_u *MessageUpdateOne) SetFileMime(v string) *MessageUpdateOne {
	_u.mutation.SetFileMime(v)
	return _u
}

// SetNillableFileMime sets the "file_mime" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableFileMime(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetFileMime(*v)
	}
	return _u
}

// ClearFileMime clears the value of the "file_mime" field.
func (_u *MessageUpdateOne) ClearFileMime() *MessageUpdateOne {
	_u.mutation.ClearFileMime()
	return _u
}

// SetIsRead sets the "is_read" field.
func (_u *MessageUpdateOne) SetIsRead(v bool) *MessageUpdateOne {
	_u.mutation.SetIsRead(v)
	return _u
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableIsRead(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetIsRead(*v)
	}
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *MessageUpdateOne) SetReadAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableReadAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *MessageUpdateOne) ClearReadAt() *MessageUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != message.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(message.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(message.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(message.FieldConversationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SenderID(); ok {
		_spec.SetField(message.FieldSenderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(message.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(message.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.FileKeyCleared() {
		_spec.ClearField(message.FieldFileKey, field.TypeString)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(message.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(message.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.FileMime(); ok {
		_spec.SetField(message.FieldFileMime, field.TypeString, value)
	}
	if _u.mutation.FileMimeCleared() {
		_spec.ClearField(message.FieldFileMime, field.TypeString)
	}
	if value, ok := _u.mutation.IsRead(); ok {
		_spec.SetField(message.FieldIsRead, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(message.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(message.FieldReadAt, field.TypeTime)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
