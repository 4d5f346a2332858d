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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/user"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/usersession"
)

// UserSessionCreate is the builder for creating a UserSession entity.
type UserSessionCreate struct {
	config
	mutation *UserSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserSessionCreate) SetCreatedAt(v time.Time) *UserSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableCreatedAt(v *time.Time) *UserSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserSessionCreate) SetUpdatedAt(v time.Time) *UserSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableUpdatedAt(v *time.Time) *UserSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserSessionCreate) SetUserID(v uuid.UUID) *UserSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *UserSessionCreate) SetSessionID(v string) *UserSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (_c *UserSessionCreate) SetRefreshTokenHash(v string) *UserSessionCreate {
	_c.mutation.SetRefreshTokenHash(v)
	return _c
}

// SetNillableRefreshTokenHash sets the "refresh_token_hash" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableRefreshTokenHash(v *string) *UserSessionCreate {
	if v != nil {
		_c.SetRefreshTokenHash(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *UserSessionCreate) SetUserAgent(v string) *UserSessionCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableUserAgent(v *string) *UserSessionCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *UserSessionCreate) SetIPAddress(v string) *UserSessionCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableIPAddress(v *string) *UserSessionCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *UserSessionCreate) SetExpiresAt(v time.Time) *UserSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *UserSessionCreate) SetLastUsedAt(v time.Time) *UserSessionCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableLastUsedAt(v *time.Time) *UserSessionCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *UserSessionCreate) SetRevokedAt(v time.Time) *UserSessionCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableRevokedAt(v *time.Time) *UserSessionCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserSessionCreate) SetID(v uuid.UUID) *UserSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserSessionCreate) SetNillableID(v *uuid.UUID) *UserSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserSessionCreate) SetUser(v *User) *UserSessionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the UserSessionMutation object of the builder.
func (_c *UserSessionCreate) Mutation() *UserSessionMutation {
	return _c.mutation
}

// Save creates the UserSession in the database.
func (_c *UserSessionCreate) Save(ctx context.Context) (*UserSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSessionCreate) SaveX(ctx context.Context) *UserSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usersession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usersession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usersession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "UserSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "UserSession.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "UserSession.user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "UserSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := usersession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`repo: validator failed for field "UserSession.session_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RefreshTokenHash(); ok {
		if err := usersession.RefreshTokenHashValidator(v); err != nil {
			return &ValidationError{Name: "refresh_token_hash", err: fmt.Errorf(`repo: validator failed for field "UserSession.refresh_token_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IPAddress(); ok {
		if err := usersession.IPAddressValidator(v); err != nil {
			return &ValidationError{Name: "ip_address", err: fmt.Errorf(`repo: validator failed for field "UserSession.ip_address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`repo: missing required field "UserSession.expires_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "UserSession.user"`)}
	}
	return nil
}

func (_c *UserSessionCreate) sqlSave(ctx context.Context) (*UserSession, error) {
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

func (_c *UserSessionCreate) createSpec() (*UserSession, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usersession.Table, sqlgraph.NewFieldSpec(usersession.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usersession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usersession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(usersession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.RefreshTokenHash(); ok {
		_spec.SetField(usersession.FieldRefreshTokenHash, field.TypeString, value)
		_node.RefreshTokenHash = &value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(usersession.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = &value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(usersession.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(usersession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(usersession.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(usersession.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   usersession.UserTable,
			Columns: []string{usersession.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSession.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSessionCreate) OnConflict(opts ...sql.ConflictOption) *UserSessionUpsertOne {
	_c.conflict = opts
	return &UserSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSessionCreate) OnConflictColumns(columns ...string) *UserSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSessionUpsertOne{
		create: _c,
	}
}

type (
	// UserSessionUpsertOne is the builder for "upsert"-ing
	//  one UserSession node.
	UserSessionUpsertOne struct {
		create *UserSessionCreate
	}

	// UserSessionUpsert is the "OnConflict" setter.
	UserSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UserSessionUpsert) SetUpdatedAt(v time.Time) *UserSessionUpsert {
	u.Set(usersession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateUpdatedAt() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserSessionUpsert) SetUserID(v uuid.UUID) *UserSessionUpsert {
	u.Set(usersession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateUserID() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldUserID)
	return u
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (u *UserSessionUpsert) SetRefreshTokenHash(v string) *UserSessionUpsert {
	u.Set(usersession.FieldRefreshTokenHash, v)
	return u
}

// UpdateRefreshTokenHash sets the "refresh_token_hash" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateRefreshTokenHash() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldRefreshTokenHash)
	return u
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (u *UserSessionUpsert) ClearRefreshTokenHash() *UserSessionUpsert {
	u.SetNull(usersession.FieldRefreshTokenHash)
	return u
}

// SetUserAgent sets the "user_agent" field.
func (u *UserSessionUpsert) SetUserAgent(v string) *UserSessionUpsert {
	u.Set(usersession.FieldUserAgent, v)
	return u
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateUserAgent() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldUserAgent)
	return u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *UserSessionUpsert) ClearUserAgent() *UserSessionUpsert {
	u.SetNull(usersession.FieldUserAgent)
	return u
}

// SetIPAddress sets the "ip_address" field.
func (u *UserSessionUpsert) SetIPAddress(v string) *UserSessionUpsert {
	u.Set(usersession.FieldIPAddress, v)
	return u
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateIPAddress() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldIPAddress)
	return u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *UserSessionUpsert) ClearIPAddress() *UserSessionUpsert {
	u.SetNull(usersession.FieldIPAddress)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *UserSessionUpsert) SetExpiresAt(v time.Time) *UserSessionUpsert {
	u.Set(usersession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateExpiresAt() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldExpiresAt)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UserSessionUpsert) SetLastUsedAt(v time.Time) *UserSessionUpsert {
	u.Set(usersession.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateLastUsedAt() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldLastUsedAt)
	return u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *UserSessionUpsert) ClearLastUsedAt() *UserSessionUpsert {
	u.SetNull(usersession.FieldLastUsedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *UserSessionUpsert) SetRevokedAt(v time.Time) *UserSessionUpsert {
	u.Set(usersession.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *UserSessionUpsert) UpdateRevokedAt() *UserSessionUpsert {
	u.SetExcluded(usersession.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *UserSessionUpsert) ClearRevokedAt() *UserSessionUpsert {
	u.SetNull(usersession.FieldRevokedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usersession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserSessionUpsertOne) UpdateNewValues() *UserSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(usersession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(usersession.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(usersession.FieldSessionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserSessionUpsertOne) Ignore() *UserSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSessionUpsertOne) DoNothing() *UserSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSessionCreate.OnConflict
// documentation for more info.
func (u *UserSessionUpsertOne) Update(set func(*UserSessionUpsert)) *UserSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserSessionUpsertOne) SetUpdatedAt(v time.Time) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateUpdatedAt() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *UserSessionUpsertOne) SetUserID(v uuid.UUID) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateUserID() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (u *UserSessionUpsertOne) SetRefreshTokenHash(v string) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetRefreshTokenHash(v)
	})
}

// UpdateRefreshTokenHash sets the "refresh_token_hash" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateRefreshTokenHash() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateRefreshTokenHash()
	})
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (u *UserSessionUpsertOne) ClearRefreshTokenHash() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearRefreshTokenHash()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *UserSessionUpsertOne) SetUserAgent(v string) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateUserAgent() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *UserSessionUpsertOne) ClearUserAgent() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearUserAgent()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *UserSessionUpsertOne) SetIPAddress(v string) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateIPAddress() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *UserSessionUpsertOne) ClearIPAddress() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearIPAddress()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *UserSessionUpsertOne) SetExpiresAt(v time.Time) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateExpiresAt() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UserSessionUpsertOne) SetLastUsedAt(v time.Time) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateLastUsedAt() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *UserSessionUpsertOne) ClearLastUsedAt() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearLastUsedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *UserSessionUpsertOne) SetRevokedAt(v time.Time) *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *UserSessionUpsertOne) UpdateRevokedAt() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *UserSessionUpsertOne) ClearRevokedAt() *UserSessionUpsertOne {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *UserSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserSessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: UserSessionUpsertOne.ID is not supported by MySQL driver. Use UserSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserSessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserSessionCreateBulk is the builder for creating many UserSession entities in bulk.
type UserSessionCreateBulk struct {
	config
	err      error
	builders []*UserSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the UserSession entities in the database.
func (_c *UserSessionCreateBulk) Save(ctx context.Context) ([]*UserSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSessionMutation)
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
func (_c *UserSessionCreateBulk) SaveX(ctx context.Context) []*UserSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserSessionUpsertBulk {
	_c.conflict = opts
	return &UserSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserSessionCreateBulk) OnConflictColumns(columns ...string) *UserSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserSessionUpsertBulk{
		create: _c,
	}
}

// UserSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of UserSession nodes.
type UserSessionUpsertBulk struct {
	create *UserSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usersession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserSessionUpsertBulk) UpdateNewValues() *UserSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(usersession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(usersession.FieldCreatedAt)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(usersession.FieldSessionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserSessionUpsertBulk) Ignore() *UserSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserSessionUpsertBulk) DoNothing() *UserSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserSessionCreateBulk.OnConflict
// documentation for more info.
func (u *UserSessionUpsertBulk) Update(set func(*UserSessionUpsert)) *UserSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserSessionUpsertBulk) SetUpdatedAt(v time.Time) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateUpdatedAt() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *UserSessionUpsertBulk) SetUserID(v uuid.UUID) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateUserID() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (u *UserSessionUpsertBulk) SetRefreshTokenHash(v string) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetRefreshTokenHash(v)
	})
}

// UpdateRefreshTokenHash sets the "refresh_token_hash" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateRefreshTokenHash() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateRefreshTokenHash()
	})
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (u *UserSessionUpsertBulk) ClearRefreshTokenHash() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearRefreshTokenHash()
	})
}

// SetUserAgent sets the "user_agent" field.
func (u *UserSessionUpsertBulk) SetUserAgent(v string) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetUserAgent(v)
	})
}

// UpdateUserAgent sets the "user_agent" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateUserAgent() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateUserAgent()
	})
}

// ClearUserAgent clears the value of the "user_agent" field.
func (u *UserSessionUpsertBulk) ClearUserAgent() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearUserAgent()
	})
}

// SetIPAddress sets the "ip_address" field.
func (u *UserSessionUpsertBulk) SetIPAddress(v string) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetIPAddress(v)
	})
}

// UpdateIPAddress sets the "ip_address" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateIPAddress() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateIPAddress()
	})
}

// ClearIPAddress clears the value of the "ip_address" field.
func (u *UserSessionUpsertBulk) ClearIPAddress() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearIPAddress()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *UserSessionUpsertBulk) SetExpiresAt(v time.Time) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateExpiresAt() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UserSessionUpsertBulk) SetLastUsedAt(v time.Time) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateLastUsedAt() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateLastUsedAt()
	})
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (u *UserSessionUpsertBulk) ClearLastUsedAt() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearLastUsedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *UserSessionUpsertBulk) SetRevokedAt(v time.Time) *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *UserSessionUpsertBulk) UpdateRevokedAt() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *UserSessionUpsertBulk) ClearRevokedAt() *UserSessionUpsertBulk {
	return u.Update(func(s *UserSessionUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *UserSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the UserSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
