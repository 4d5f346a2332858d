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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
)

// ServiceItemCreate is the builder for creating a ServiceItem entity.
type ServiceItemCreate struct {
	config
	mutation *ServiceItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServiceItemCreate) SetCreatedAt(v time.Time) *ServiceItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableCreatedAt(v *time.Time) *ServiceItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServiceItemCreate) SetUpdatedAt(v time.Time) *ServiceItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableUpdatedAt(v *time.Time) *ServiceItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ServiceItemCreate) SetDeletedAt(v time.Time) *ServiceItemCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableDeletedAt(v *time.Time) *ServiceItemCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ServiceItemCreate) SetClinicID(v uuid.UUID) *ServiceItemCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ServiceItemCreate) SetName(v string) *ServiceItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ServiceItemCreate) SetDescription(v string) *ServiceItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableDescription(v *string) *ServiceItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ServiceItemCreate) SetPrice(v int64) *ServiceItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *ServiceItemCreate) SetDurationMin(v int) *ServiceItemCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableDurationMin(v *int) *ServiceItemCreate {
	if v != nil {
		_c.SetDurationMin(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ServiceItemCreate) SetIsActive(v bool) *ServiceItemCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableIsActive(v *bool) *ServiceItemCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceItemCreate) SetID(v uuid.UUID) *ServiceItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceItemCreate) SetNillableID(v *uuid.UUID) *ServiceItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ServiceItemCreate) SetClinic(v *Clinic) *ServiceItemCreate {
	return _c.SetClinicID(v.ID)
}

// Mutation returns the ServiceItemMutation object of the builder.
func (_c *ServiceItemCreate) Mutation() *ServiceItemMutation {
	return _c.mutation
}

// Save creates the ServiceItem in the database.
func (_c *ServiceItemCreate) Save(ctx context.Context) (*ServiceItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceItemCreate) SaveX(ctx context.Context) *ServiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := serviceitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := serviceitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		v := serviceitem.DefaultDurationMin
		_c.mutation.SetDurationMin(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := serviceitem.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := serviceitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ServiceItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ServiceItem.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ServiceItem.clinic_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "ServiceItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := serviceitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "ServiceItem.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := serviceitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "ServiceItem.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := serviceitem.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ServiceItem.is_active"`)}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "ServiceItem.clinic"`)}
	}
	return nil
}

func (_c *ServiceItemCreate) sqlSave(ctx context.Context) (*ServiceItem, error) {
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

func (_c *ServiceItemCreate) createSpec() (*ServiceItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceitem.Table, sqlgraph.NewFieldSpec(serviceitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(serviceitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(serviceitem.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(serviceitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(serviceitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(serviceitem.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(serviceitem.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(serviceitem.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   serviceitem.ClinicTable,
			Columns: []string{serviceitem.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ServiceItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ServiceItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ServiceItemCreate) OnConflict(opts ...sql.ConflictOption) *ServiceItemUpsertOne {
	_c.conflict = opts
	return &ServiceItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ServiceItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ServiceItemCreate) OnConflictColumns(columns ...string) *ServiceItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ServiceItemUpsertOne{
		create: _c,
	}
}

type (
	// ServiceItemUpsertOne is the builder for "upsert"-ing
	//  one ServiceItem node.
	ServiceItemUpsertOne struct {
		create *ServiceItemCreate
	}

	// ServiceItemUpsert is the "OnConflict" setter.
	ServiceItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ServiceItemUpsert) SetUpdatedAt(v time.Time) *ServiceItemUpsert {
	u.Set(serviceitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateUpdatedAt() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ServiceItemUpsert) SetDeletedAt(v time.Time) *ServiceItemUpsert {
	u.Set(serviceitem.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateDeletedAt() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ServiceItemUpsert) ClearDeletedAt() *ServiceItemUpsert {
	u.SetNull(serviceitem.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ServiceItemUpsert) SetClinicID(v uuid.UUID) *ServiceItemUpsert {
	u.Set(serviceitem.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateClinicID() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldClinicID)
	return u
}

// SetName sets the "name" field.
func (u *ServiceItemUpsert) SetName(v string) *ServiceItemUpsert {
	u.Set(serviceitem.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateName() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ServiceItemUpsert) SetDescription(v string) *ServiceItemUpsert {
	u.Set(serviceitem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateDescription() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ServiceItemUpsert) ClearDescription() *ServiceItemUpsert {
	u.SetNull(serviceitem.FieldDescription)
	return u
}

// SetPrice sets the "price" field.
func (u *ServiceItemUpsert) SetPrice(v int64) *ServiceItemUpsert {
	u.Set(serviceitem.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdatePrice() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *ServiceItemUpsert) AddPrice(v int64) *ServiceItemUpsert {
	u.Add(serviceitem.FieldPrice, v)
	return u
}

// SetDurationMin sets the "duration_min" field.
func (u *ServiceItemUpsert) SetDurationMin(v int) *ServiceItemUpsert {
	u.Set(serviceitem.FieldDurationMin, v)
	return u
}

// UpdateDurationMin sets the "duration_min" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateDurationMin() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldDurationMin)
	return u
}

// AddDurationMin adds v to the "duration_min" field.
func (u *ServiceItemUpsert) AddDurationMin(v int) *ServiceItemUpsert {
	u.Add(serviceitem.FieldDurationMin, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ServiceItemUpsert) SetIsActive(v bool) *ServiceItemUpsert {
	u.Set(serviceitem.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ServiceItemUpsert) UpdateIsActive() *ServiceItemUpsert {
	u.SetExcluded(serviceitem.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ServiceItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(serviceitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ServiceItemUpsertOne) UpdateNewValues() *ServiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(serviceitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(serviceitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ServiceItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ServiceItemUpsertOne) Ignore() *ServiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ServiceItemUpsertOne) DoNothing() *ServiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ServiceItemCreate.OnConflict
// documentation for more info.
func (u *ServiceItemUpsertOne) Update(set func(*ServiceItemUpsert)) *ServiceItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ServiceItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServiceItemUpsertOne) SetUpdatedAt(v time.Time) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateUpdatedAt() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ServiceItemUpsertOne) SetDeletedAt(v time.Time) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateDeletedAt() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ServiceItemUpsertOne) ClearDeletedAt() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ServiceItemUpsertOne) SetClinicID(v uuid.UUID) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateClinicID() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateClinicID()
	})
}

// SetName sets the "name" field.
func (u *ServiceItemUpsertOne) SetName(v string) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateName() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ServiceItemUpsertOne) SetDescription(v string) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateDescription() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ServiceItemUpsertOne) ClearDescription() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.ClearDescription()
	})
}

// SetPrice sets the "price" field.
func (u *ServiceItemUpsertOne) SetPrice(v int64) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *ServiceItemUpsertOne) AddPrice(v int64) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdatePrice() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdatePrice()
	})
}

// SetDurationMin sets the "duration_min" field.
func (u *ServiceItemUpsertOne) SetDurationMin(v int) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetDurationMin(v)
	})
}

// AddDurationMin adds v to the "duration_min" field.
func (u *ServiceItemUpsertOne) AddDurationMin(v int) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.AddDurationMin(v)
	})
}

// UpdateDurationMin sets the "duration_min" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateDurationMin() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateDurationMin()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ServiceItemUpsertOne) SetIsActive(v bool) *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ServiceItemUpsertOne) UpdateIsActive() *ServiceItemUpsertOne {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ServiceItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ServiceItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ServiceItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ServiceItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ServiceItemUpsertOne.ID is not supported by MySQL driver. Use ServiceItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ServiceItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ServiceItemCreateBulk is the builder for creating many ServiceItem entities in bulk.
type ServiceItemCreateBulk struct {
	config
	err      error
	builders []*ServiceItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ServiceItem entities in the database.
func (_c *ServiceItemCreateBulk) Save(ctx context.Context) ([]*ServiceItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceItemMutation)
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
func (_c *ServiceItemCreateBulk) SaveX(ctx context.Context) []*ServiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ServiceItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ServiceItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ServiceItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ServiceItemUpsertBulk {
	_c.conflict = opts
	return &ServiceItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ServiceItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ServiceItemCreateBulk) OnConflictColumns(columns ...string) *ServiceItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ServiceItemUpsertBulk{
		create: _c,
	}
}

// ServiceItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ServiceItem nodes.
type ServiceItemUpsertBulk struct {
	create *ServiceItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ServiceItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(serviceitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ServiceItemUpsertBulk) UpdateNewValues() *ServiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(serviceitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(serviceitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ServiceItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ServiceItemUpsertBulk) Ignore() *ServiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ServiceItemUpsertBulk) DoNothing() *ServiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ServiceItemCreateBulk.OnConflict
// documentation for more info.
func (u *ServiceItemUpsertBulk) Update(set func(*ServiceItemUpsert)) *ServiceItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ServiceItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ServiceItemUpsertBulk) SetUpdatedAt(v time.Time) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateUpdatedAt() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ServiceItemUpsertBulk) SetDeletedAt(v time.Time) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateDeletedAt() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ServiceItemUpsertBulk) ClearDeletedAt() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ServiceItemUpsertBulk) SetClinicID(v uuid.UUID) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateClinicID() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateClinicID()
	})
}

// SetName sets the "name" field.
func (u *ServiceItemUpsertBulk) SetName(v string) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateName() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ServiceItemUpsertBulk) SetDescription(v string) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateDescription() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ServiceItemUpsertBulk) ClearDescription() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.ClearDescription()
	})
}

// SetPrice sets the "price" field.
func (u *ServiceItemUpsertBulk) SetPrice(v int64) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *ServiceItemUpsertBulk) AddPrice(v int64) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdatePrice() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdatePrice()
	})
}

// SetDurationMin sets the "duration_min" field.
func (u *ServiceItemUpsertBulk) SetDurationMin(v int) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetDurationMin(v)
	})
}

// AddDurationMin adds v to the "duration_min" field.
func (u *ServiceItemUpsertBulk) AddDurationMin(v int) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.AddDurationMin(v)
	})
}

// UpdateDurationMin sets the "duration_min" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateDurationMin() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateDurationMin()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ServiceItemUpsertBulk) SetIsActive(v bool) *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ServiceItemUpsertBulk) UpdateIsActive() *ServiceItemUpsertBulk {
	return u.Update(func(s *ServiceItemUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ServiceItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ServiceItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ServiceItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ServiceItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
