// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MessageCreate) SetDeletedAt(v time.Time) *MessageCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableDeletedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *MessageCreate) SetConversationID(v uuid.UUID) *MessageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSenderID sets the "sender_id" field.
func (_c *MessageCreate) SetSenderID(v uuid.UUID) *MessageCreate {
	_c.mutation.SetSenderID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *MessageCreate) SetNillableContent(v *string) *MessageCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetFileKey sets the "file_key" field.
func (_c *MessageCreate) SetFileKey(v string) *MessageCreate {
	_c.mutation.SetFileKey(v)
	return _c
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_c *MessageCreate) SetNillableFileKey(v *string) *MessageCreate {
	if v != nil {
		_c.SetFileKey(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *MessageCreate) SetFileName(v string) *MessageCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *MessageCreate) SetNillableFileName(v *string) *MessageCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetFileMime sets the "file_mime" field.
func (_c *MessageCreate) SetFileMime(v string) *MessageCreate {
	_c.mutation.SetFileMime(v)
	return _c
}

// SetNillableFileMime sets the "file_mime" field if the given value is not nil.
func (_c *MessageCreate) SetNillableFileMime(v *string) *MessageCreate {
	if v != nil {
		_c.SetFileMime(*v)
	}
	return _c
}

// SetIsRead sets the "is_read" field.
func (_c *MessageCreate) SetIsRead(v bool) *MessageCreate {
	_c.mutation.SetIsRead(v)
	return _c
}

// SetNillableIsRead sets the "is_read" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIsRead(v *bool) *MessageCreate {
	if v != nil {
		_c.SetIsRead(*v)
	}
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *MessageCreate) SetReadAt(v time.Time) *MessageCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableReadAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v uuid.UUID) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableID(v *uuid.UUID) *MessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsRead(); !ok {
		v := message.DefaultIsRead
		_c.mutation.SetIsRead(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := message.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Message.created_at"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`repo: missing required field "Message.conversation_id"`)}
	}
	if _, ok := _c.mutation.SenderID(); !ok {
		return &ValidationError{Name: "sender_id", err: errors.New(`repo: missing required field "Message.sender_id"`)}
	}
	if _, ok := _c.mutation.IsRead(); !ok {
		return &ValidationError{Name: "is_read", err: errors.New(`repo: missing required field "Message.is_read"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(message.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(message.FieldConversationID, field.TypeUUID, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.SenderID(); ok {
		_spec.SetField(message.FieldSenderID, field.TypeUUID, value)
		_node.SenderID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.FileKey(); ok {
		_spec.SetField(message.FieldFileKey, field.TypeString, value)
		_node.FileKey = &value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(message.FieldFileName, field.TypeString, value)
		_node.FileName = &value
	}
	if value, ok := _c.mutation.FileMime(); ok {
		_spec.SetField(message.FieldFileMime, field.TypeString, value)
		_node.FileMime = &value
	}
	if value, ok := _c.mutation.IsRead(); ok {
		_spec.SetField(message.FieldIsRead, field.TypeBool, value)
		_node.IsRead = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(message.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeletedAt sets the "deleted_at" field.
func (u *MessageUpsert) SetDeletedAt(v time.Time) *MessageUpsert {
	u.Set(message.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MessageUpsert) UpdateDeletedAt() *MessageUpsert {
	u.SetExcluded(message.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MessageUpsert) ClearDeletedAt() *MessageUpsert {
	u.SetNull(message.FieldDeletedAt)
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *MessageUpsert) SetConversationID(v uuid.UUID) *MessageUpsert {
	u.Set(message.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateConversationID() *MessageUpsert {
	u.SetExcluded(message.FieldConversationID)
	return u
}

// SetSenderID sets the "sender_id" field.
func (u *MessageUpsert) SetSenderID(v uuid.UUID) *MessageUpsert {
	u.Set(message.FieldSenderID, v)
	return u
}

// UpdateSenderID sets the "sender_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSenderID() *MessageUpsert {
	u.SetExcluded(message.FieldSenderID)
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *MessageUpsert) ClearContent() *MessageUpsert {
	u.SetNull(message.FieldContent)
	return u
}

// SetFileKey sets the "file_key" field.
func (u *MessageUpsert) SetFileKey(v string) *MessageUpsert {
	u.Set(message.FieldFileKey, v)
	return u
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *MessageUpsert) UpdateFileKey() *MessageUpsert {
	u.SetExcluded(message.FieldFileKey)
	return u
}

// ClearFileKey clears the value of the "file_key" field.
func (u *MessageUpsert) ClearFileKey() *MessageUpsert {
	u.SetNull(message.FieldFileKey)
	return u
}

// SetFileName sets the "file_name" field.
func (u *MessageUpsert) SetFileName(v string) *MessageUpsert {
	u.Set(message.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *MessageUpsert) UpdateFileName() *MessageUpsert {
	u.SetExcluded(message.FieldFileName)
	return u
}

// ClearFileName clears the value of the "file_name" field.
func (u *MessageUpsert) ClearFileName() *MessageUpsert {
	u.SetNull(message.FieldFileName)
	return u
}

// SetFileMime sets the "file_mime" field.
func (u *MessageUpsert) SetFileMime(v string) *MessageUpsert {
	u.Set(message.FieldFileMime, v)
	return u
}

// UpdateFileMime sets the "file_mime" field to the value that was provided on create.
func (u *MessageUpsert) UpdateFileMime() *MessageUpsert {
	u.SetExcluded(message.FieldFileMime)
	return u
}

// ClearFileMime clears the value of the "file_mime" field.
func (u *MessageUpsert) ClearFileMime() *MessageUpsert {
	u.SetNull(message.FieldFileMime)
	return u
}

// SetIsRead sets the "is_read" field.
func (u *MessageUpsert) SetIsRead(v bool) *MessageUpsert {
	u.Set(message.FieldIsRead, v)
	return u
}

// UpdateIsRead sets the "is_read" field to the value that was provided on create.
func (u *MessageUpsert) UpdateIsRead() *MessageUpsert {
	u.SetExcluded(message.FieldIsRead)
	return u
}

// SetReadAt sets the "read_at" field.
func (u *MessageUpsert) SetReadAt(v time.Time) *MessageUpsert {
	u.Set(message.FieldReadAt, v)
	return u
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *MessageUpsert) UpdateReadAt() *MessageUpsert {
	u.SetExcluded(message.FieldReadAt)
	return u
}

// ClearReadAt clears the value of the "read_at" field.
func (u *MessageUpsert) ClearReadAt() *MessageUpsert {
	u.SetNull(message.FieldReadAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MessageUpsertOne) SetDeletedAt(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateDeletedAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MessageUpsertOne) ClearDeletedAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearDeletedAt()
	})
}

// SetConversationID sets the "conversation_id" field.
func (u *MessageUpsertOne) SetConversationID(v uuid.UUID) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateConversationID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateConversationID()
	})
}

// SetSenderID sets the "sender_id" field.
func (u *MessageUpsertOne) SetSenderID(v uuid.UUID) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderID(v)
	})
}

// UpdateSenderID sets the "sender_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSenderID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderID()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *MessageUpsertOne) ClearContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearContent()
	})
}

// SetFileKey sets the "file_key" field.
func (u *MessageUpsertOne) SetFileKey(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateFileKey() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFileKey()
	})
}

// ClearFileKey clears the value of the "file_key" field.
func (u *MessageUpsertOne) ClearFileKey() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFileKey()
	})
}

// SetFileName sets the "file_name" field.
func (u *MessageUpsertOne) SetFileName(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateFileName() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *MessageUpsertOne) ClearFileName() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFileName()
	})
}

// SetFileMime sets the "file_mime" field.
func (u *MessageUpsertOne) SetFileMime(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetFileMime(v)
	})
}

// UpdateFileMime sets the "file_mime" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateFileMime() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFileMime()
	})
}

// ClearFileMime clears the value of the "file_mime" field.
func (u *MessageUpsertOne) ClearFileMime() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFileMime()
	})
}

// SetIsRead sets the "is_read" field.
func (u *MessageUpsertOne) SetIsRead(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsRead(v)
	})
}

// UpdateIsRead sets the "is_read" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateIsRead() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsRead()
	})
}

// SetReadAt sets the "read_at" field.
func (u *MessageUpsertOne) SetReadAt(v time.Time) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetReadAt(v)
	})
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateReadAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReadAt()
	})
}

// ClearReadAt clears the value of the "read_at" field.
func (u *MessageUpsertOne) ClearReadAt() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReadAt()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MessageUpsertBulk) SetDeletedAt(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateDeletedAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MessageUpsertBulk) ClearDeletedAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearDeletedAt()
	})
}

// SetConversationID sets the "conversation_id" field.
func (u *MessageUpsertBulk) SetConversationID(v uuid.UUID) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateConversationID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateConversationID()
	})
}

// SetSenderID sets the "sender_id" field.
func (u *MessageUpsertBulk) SetSenderID(v uuid.UUID) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSenderID(v)
	})
}

// UpdateSenderID sets the "sender_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSenderID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSenderID()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *MessageUpsertBulk) ClearContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearContent()
	})
}

// SetFileKey sets the "file_key" field.
func (u *MessageUpsertBulk) SetFileKey(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateFileKey() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFileKey()
	})
}

// ClearFileKey clears the value of the "file_key" field.
func (u *MessageUpsertBulk) ClearFileKey() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFileKey()
	})
}

// SetFileName sets the "file_name" field.
func (u *MessageUpsertBulk) SetFileName(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateFileName() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFileName()
	})
}

// ClearFileName clears the value of the "file_name" field.
func (u *MessageUpsertBulk) ClearFileName() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFileName()
	})
}

// SetFileMime sets the "file_mime" field.
func (u *MessageUpsertBulk) SetFileMime(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetFileMime(v)
	})
}

// UpdateFileMime sets the "file_mime" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateFileMime() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFileMime()
	})
}

// ClearFileMime clears the value of the "file_mime" field.
func (u *MessageUpsertBulk) ClearFileMime() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFileMime()
	})
}

// SetIsRead sets the "is_read" field.
func (u *MessageUpsertBulk) SetIsRead(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetIsRead(v)
	})
}

// UpdateIsRead sets the "is_read" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateIsRead() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateIsRead()
	})
}

// SetReadAt sets the "read_at" field.
func (u *MessageUpsertBulk) SetReadAt(v time.Time) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetReadAt(v)
	})
}

// UpdateReadAt sets the "read_at" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateReadAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReadAt()
	})
}

// ClearReadAt clears the value of the "read_at" field.
func (u *MessageUpsertBulk) ClearReadAt() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReadAt()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
