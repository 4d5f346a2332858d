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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/shiftcapacity"
)

// ShiftCapacityCreate is the builder for creating a ShiftCapacity entity.
type ShiftCapacityCreate struct {
	config
	mutation *ShiftCapacityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ShiftCapacityCreate) SetCreatedAt(v time.Time) *ShiftCapacityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ShiftCapacityCreate) SetNillableCreatedAt(v *time.Time) *ShiftCapacityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ShiftCapacityCreate) SetUpdatedAt(v time.Time) *ShiftCapacityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ShiftCapacityCreate) SetNillableUpdatedAt(v *time.Time) *ShiftCapacityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ShiftCapacityCreate) SetClinicID(v uuid.UUID) *ShiftCapacityCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *ShiftCapacityCreate) SetDate(v string) *ShiftCapacityCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetShift sets the "shift" field.
func (_c *ShiftCapacityCreate) SetShift(v shiftcapacity.Shift) *ShiftCapacityCreate {
	_c.mutation.SetShift(v)
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *ShiftCapacityCreate) SetCapacity(v int) *ShiftCapacityCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ShiftCapacityCreate) SetID(v uuid.UUID) *ShiftCapacityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ShiftCapacityCreate) SetNillableID(v *uuid.UUID) *ShiftCapacityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ShiftCapacityMutation object of the builder.
func (_c *ShiftCapacityCreate) Mutation() *ShiftCapacityMutation {
	return _c.mutation
}

// Save creates the ShiftCapacity in the database.
func (_c *ShiftCapacityCreate) Save(ctx context.Context) (*ShiftCapacity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShiftCapacityCreate) SaveX(ctx context.Context) *ShiftCapacity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShiftCapacityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShiftCapacityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShiftCapacityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := shiftcapacity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := shiftcapacity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := shiftcapacity.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShiftCapacityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ShiftCapacity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ShiftCapacity.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ShiftCapacity.clinic_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "ShiftCapacity.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := shiftcapacity.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Shift(); !ok {
		return &ValidationError{Name: "shift", err: errors.New(`repo: missing required field "ShiftCapacity.shift"`)}
	}
	if v, ok := _c.mutation.Shift(); ok {
		if err := shiftcapacity.ShiftValidator(v); err != nil {
			return &ValidationError{Name: "shift", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.shift": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capacity(); !ok {
		return &ValidationError{Name: "capacity", err: errors.New(`repo: missing required field "ShiftCapacity.capacity"`)}
	}
	if v, ok := _c.mutation.Capacity(); ok {
		if err := shiftcapacity.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.capacity": %w`, err)}
		}
	}
	return nil
}

func (_c *ShiftCapacityCreate) sqlSave(ctx context.Context) (*ShiftCapacity, error) {
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

func (_c *ShiftCapacityCreate) createSpec() (*ShiftCapacity, *sqlgraph.CreateSpec) {
	var (
		_node = &ShiftCapacity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shiftcapacity.Table, sqlgraph.NewFieldSpec(shiftcapacity.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(shiftcapacity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftcapacity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(shiftcapacity.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(shiftcapacity.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Shift(); ok {
		_spec.SetField(shiftcapacity.FieldShift, field.TypeEnum, value)
		_node.Shift = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(shiftcapacity.FieldCapacity, field.TypeInt, value)
		_node.Capacity = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ShiftCapacity.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ShiftCapacityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ShiftCapacityCreate) OnConflict(opts ...sql.ConflictOption) *ShiftCapacityUpsertOne {
	_c.conflict = opts
	return &ShiftCapacityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ShiftCapacity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ShiftCapacityCreate) OnConflictColumns(columns ...string) *ShiftCapacityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ShiftCapacityUpsertOne{
		create: _c,
	}
}

type (
	// ShiftCapacityUpsertOne is the builder for "upsert"-ing
	//  one ShiftCapacity node.
	ShiftCapacityUpsertOne struct {
		create *ShiftCapacityCreate
	}

	// ShiftCapacityUpsert is the "OnConflict" setter.
	ShiftCapacityUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ShiftCapacityUpsert) SetUpdatedAt(v time.Time) *ShiftCapacityUpsert {
	u.Set(shiftcapacity.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ShiftCapacityUpsert) UpdateUpdatedAt() *ShiftCapacityUpsert {
	u.SetExcluded(shiftcapacity.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ShiftCapacityUpsert) SetClinicID(v uuid.UUID) *ShiftCapacityUpsert {
	u.Set(shiftcapacity.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ShiftCapacityUpsert) UpdateClinicID() *ShiftCapacityUpsert {
	u.SetExcluded(shiftcapacity.FieldClinicID)
	return u
}

// SetDate sets the "date" field.
func (u *ShiftCapacityUpsert) SetDate(v string) *ShiftCapacityUpsert {
	u.Set(shiftcapacity.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ShiftCapacityUpsert) UpdateDate() *ShiftCapacityUpsert {
	u.SetExcluded(shiftcapacity.FieldDate)
	return u
}

// SetShift sets the "shift" field.
func (u *ShiftCapacityUpsert) SetShift(v shiftcapacity.Shift) *ShiftCapacityUpsert {
	u.Set(shiftcapacity.FieldShift, v)
	return u
}

// UpdateShift sets the "shift" field to the value that was provided on create.
func (u *ShiftCapacityUpsert) UpdateShift() *ShiftCapacityUpsert {
	u.SetExcluded(shiftcapacity.FieldShift)
	return u
}

// SetCapacity sets the "capacity" field.
func (u *ShiftCapacityUpsert) SetCapacity(v int) *ShiftCapacityUpsert {
	u.Set(shiftcapacity.FieldCapacity, v)
	return u
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *ShiftCapacityUpsert) UpdateCapacity() *ShiftCapacityUpsert {
	u.SetExcluded(shiftcapacity.FieldCapacity)
	return u
}

// AddCapacity adds v to the "capacity" field.
func (u *ShiftCapacityUpsert) AddCapacity(v int) *ShiftCapacityUpsert {
	u.Add(shiftcapacity.FieldCapacity, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ShiftCapacity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(shiftcapacity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ShiftCapacityUpsertOne) UpdateNewValues() *ShiftCapacityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(shiftcapacity.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(shiftcapacity.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ShiftCapacity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ShiftCapacityUpsertOne) Ignore() *ShiftCapacityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ShiftCapacityUpsertOne) DoNothing() *ShiftCapacityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ShiftCapacityCreate.OnConflict
// documentation for more info.
func (u *ShiftCapacityUpsertOne) Update(set func(*ShiftCapacityUpsert)) *ShiftCapacityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ShiftCapacityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ShiftCapacityUpsertOne) SetUpdatedAt(v time.Time) *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ShiftCapacityUpsertOne) UpdateUpdatedAt() *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ShiftCapacityUpsertOne) SetClinicID(v uuid.UUID) *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ShiftCapacityUpsertOne) UpdateClinicID() *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateClinicID()
	})
}

// SetDate sets the "date" field.
func (u *ShiftCapacityUpsertOne) SetDate(v string) *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ShiftCapacityUpsertOne) UpdateDate() *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateDate()
	})
}

// SetShift sets the "shift" field.
func (u *ShiftCapacityUpsertOne) SetShift(v shiftcapacity.Shift) *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetShift(v)
	})
}

// UpdateShift sets the "shift" field to the value that was provided on create.
func (u *ShiftCapacityUpsertOne) UpdateShift() *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateShift()
	})
}

// SetCapacity sets the "capacity" field.
func (u *ShiftCapacityUpsertOne) SetCapacity(v int) *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *ShiftCapacityUpsertOne) AddCapacity(v int) *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *ShiftCapacityUpsertOne) UpdateCapacity() *ShiftCapacityUpsertOne {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateCapacity()
	})
}

// Exec executes the query.
func (u *ShiftCapacityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ShiftCapacityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ShiftCapacityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ShiftCapacityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ShiftCapacityUpsertOne.ID is not supported by MySQL driver. Use ShiftCapacityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ShiftCapacityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ShiftCapacityCreateBulk is the builder for creating many ShiftCapacity entities in bulk.
type ShiftCapacityCreateBulk struct {
	config
	err      error
	builders []*ShiftCapacityCreate
	conflict []sql.ConflictOption
}

// Save creates the ShiftCapacity entities in the database.
func (_c *ShiftCapacityCreateBulk) Save(ctx context.Context) ([]*ShiftCapacity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShiftCapacity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShiftCapacityMutation)
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
func (_c *ShiftCapacityCreateBulk) SaveX(ctx context.Context) []*ShiftCapacity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShiftCapacityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShiftCapacityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ShiftCapacity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ShiftCapacityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ShiftCapacityCreateBulk) OnConflict(opts ...sql.ConflictOption) *ShiftCapacityUpsertBulk {
	_c.conflict = opts
	return &ShiftCapacityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ShiftCapacity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ShiftCapacityCreateBulk) OnConflictColumns(columns ...string) *ShiftCapacityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ShiftCapacityUpsertBulk{
		create: _c,
	}
}

// ShiftCapacityUpsertBulk is the builder for "upsert"-ing
// a bulk of ShiftCapacity nodes.
type ShiftCapacityUpsertBulk struct {
	create *ShiftCapacityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ShiftCapacity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(shiftcapacity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ShiftCapacityUpsertBulk) UpdateNewValues() *ShiftCapacityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(shiftcapacity.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(shiftcapacity.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ShiftCapacity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ShiftCapacityUpsertBulk) Ignore() *ShiftCapacityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ShiftCapacityUpsertBulk) DoNothing() *ShiftCapacityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ShiftCapacityCreateBulk.OnConflict
// documentation for more info.
func (u *ShiftCapacityUpsertBulk) Update(set func(*ShiftCapacityUpsert)) *ShiftCapacityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ShiftCapacityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ShiftCapacityUpsertBulk) SetUpdatedAt(v time.Time) *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ShiftCapacityUpsertBulk) UpdateUpdatedAt() *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ShiftCapacityUpsertBulk) SetClinicID(v uuid.UUID) *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ShiftCapacityUpsertBulk) UpdateClinicID() *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateClinicID()
	})
}

// SetDate sets the "date" field.
func (u *ShiftCapacityUpsertBulk) SetDate(v string) *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ShiftCapacityUpsertBulk) UpdateDate() *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateDate()
	})
}

// SetShift sets the "shift" field.
func (u *ShiftCapacityUpsertBulk) SetShift(v shiftcapacity.Shift) *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetShift(v)
	})
}

// UpdateShift sets the "shift" field to the value that was provided on create.
func (u *ShiftCapacityUpsertBulk) UpdateShift() *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateShift()
	})
}

// SetCapacity sets the "capacity" field.
func (u *ShiftCapacityUpsertBulk) SetCapacity(v int) *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.SetCapacity(v)
	})
}

// AddCapacity adds v to the "capacity" field.
func (u *ShiftCapacityUpsertBulk) AddCapacity(v int) *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.AddCapacity(v)
	})
}

// UpdateCapacity sets the "capacity" field to the value that was provided on create.
func (u *ShiftCapacityUpsertBulk) UpdateCapacity() *ShiftCapacityUpsertBulk {
	return u.Update(func(s *ShiftCapacityUpsert) {
		s.UpdateCapacity()
	})
}

// Exec executes the query.
func (u *ShiftCapacityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ShiftCapacityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ShiftCapacityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ShiftCapacityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
