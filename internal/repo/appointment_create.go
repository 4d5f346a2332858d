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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AppointmentCreate) SetClinicID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *AppointmentCreate) SetCustomerID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *AppointmentCreate) SetDate(v string) *AppointmentCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetShift sets the "shift" field.
func (_c *AppointmentCreate) SetShift(v appointment.Shift) *AppointmentCreate {
	_c.mutation.SetShift(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AppointmentCreate) SetCreatedBy(v appointment.CreatedBy) *AppointmentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedBy(v *appointment.CreatedBy) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *AppointmentCreate) SetNote(v string) *AppointmentCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableNote(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetCancelReason sets the "cancel_reason" field.
func (_c *AppointmentCreate) SetCancelReason(v string) *AppointmentCreate {
	_c.mutation.SetCancelReason(v)
	return _c
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCancelReason(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *AppointmentCreate) SetConfirmedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableConfirmedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AppointmentCreate) SetCompletedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCompletedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPetIDs adds the "pets" edge to the Pet entity by IDs.
func (_c *AppointmentCreate) AddPetIDs(ids ...uuid.UUID) *AppointmentCreate {
	_c.mutation.AddPetIDs(ids...)
	return _c
}

// AddPets adds the "pets" edges to the Pet entity.
func (_c *AppointmentCreate) AddPets(v ...*Pet) *AppointmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPetIDs(ids...)
}

// AddServiceIDs adds the "services" edge to the ServiceItem entity by IDs.
func (_c *AppointmentCreate) AddServiceIDs(ids ...uuid.UUID) *AppointmentCreate {
	_c.mutation.AddServiceIDs(ids...)
	return _c
}

// AddServices adds the "services" edges to the ServiceItem entity.
func (_c *AppointmentCreate) AddServices(v ...*ServiceItem) *AppointmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServiceIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		v := appointment.DefaultCreatedBy
		_c.mutation.SetCreatedBy(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Appointment.clinic_id"`)}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`repo: missing required field "Appointment.customer_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "Appointment.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Shift(); !ok {
		return &ValidationError{Name: "shift", err: errors.New(`repo: missing required field "Appointment.shift"`)}
	}
	if v, ok := _c.mutation.Shift(); ok {
		if err := appointment.ShiftValidator(v); err != nil {
			return &ValidationError{Name: "shift", err: fmt.Errorf(`repo: validator failed for field "Appointment.shift": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "Appointment.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := appointment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`repo: validator failed for field "Appointment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
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

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(appointment.FieldCustomerID, field.TypeUUID, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Shift(); ok {
		_spec.SetField(appointment.FieldShift, field.TypeEnum, value)
		_node.Shift = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(appointment.FieldCreatedBy, field.TypeEnum, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(appointment.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.CancelReason(); ok {
		_spec.SetField(appointment.FieldCancelReason, field.TypeString, value)
		_node.CancelReason = &value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointment.PetsTable,
			Columns: []string{appointment.PetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pet.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appointment.ServicesTable,
			Columns: []string{appointment.ServicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(serviceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertOne {
	_c.conflict = opts
	return &AppointmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflictColumns(columns ...string) *AppointmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertOne{
		create: _c,
	}
}

type (
	// AppointmentUpsertOne is the builder for "upsert"-ing
	//  one Appointment node.
	AppointmentUpsertOne struct {
		create *AppointmentCreate
	}

	// AppointmentUpsert is the "OnConflict" setter.
	AppointmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsert) SetUpdatedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateUpdatedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *AppointmentUpsert) SetClinicID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateClinicID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldClinicID)
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *AppointmentUpsert) SetCustomerID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldCustomerID, v)
	return u
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCustomerID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCustomerID)
	return u
}

// SetDate sets the "date" field.
func (u *AppointmentUpsert) SetDate(v string) *AppointmentUpsert {
	u.Set(appointment.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateDate() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldDate)
	return u
}

// SetShift sets the "shift" field.
func (u *AppointmentUpsert) SetShift(v appointment.Shift) *AppointmentUpsert {
	u.Set(appointment.FieldShift, v)
	return u
}

// UpdateShift sets the "shift" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateShift() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldShift)
	return u
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsert) SetStatus(v appointment.Status) *AppointmentUpsert {
	u.Set(appointment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStatus() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStatus)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *AppointmentUpsert) SetCreatedBy(v appointment.CreatedBy) *AppointmentUpsert {
	u.Set(appointment.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCreatedBy() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCreatedBy)
	return u
}

// SetNote sets the "note" field.
func (u *AppointmentUpsert) SetNote(v string) *AppointmentUpsert {
	u.Set(appointment.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateNote() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldNote)
	return u
}

// ClearNote clears the value of the "note" field.
func (u *AppointmentUpsert) ClearNote() *AppointmentUpsert {
	u.SetNull(appointment.FieldNote)
	return u
}

// SetCancelReason sets the "cancel_reason" field.
func (u *AppointmentUpsert) SetCancelReason(v string) *AppointmentUpsert {
	u.Set(appointment.FieldCancelReason, v)
	return u
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancelReason() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancelReason)
	return u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *AppointmentUpsert) ClearCancelReason() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancelReason)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *AppointmentUpsert) SetConfirmedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateConfirmedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *AppointmentUpsert) ClearConfirmedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldConfirmedAt)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsert) SetCancelledAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancelledAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsert) ClearCancelledAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancelledAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsert) SetCompletedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCompletedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsert) ClearCompletedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertOne) UpdateNewValues() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appointment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appointment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppointmentUpsertOne) Ignore() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertOne) DoNothing() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreate.OnConflict
// documentation for more info.
func (u *AppointmentUpsertOne) Update(set func(*AppointmentUpsert)) *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertOne) SetUpdatedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AppointmentUpsertOne) SetClinicID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateClinicID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateClinicID()
	})
}

// SetCustomerID sets the "customer_id" field.
func (u *AppointmentUpsertOne) SetCustomerID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCustomerID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCustomerID()
	})
}

// SetDate sets the "date" field.
func (u *AppointmentUpsertOne) SetDate(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateDate() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDate()
	})
}

// SetShift sets the "shift" field.
func (u *AppointmentUpsertOne) SetShift(v appointment.Shift) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetShift(v)
	})
}

// UpdateShift sets the "shift" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateShift() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateShift()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertOne) SetStatus(v appointment.Status) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStatus() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AppointmentUpsertOne) SetCreatedBy(v appointment.CreatedBy) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCreatedBy() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetNote sets the "note" field.
func (u *AppointmentUpsertOne) SetNote(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateNote() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *AppointmentUpsertOne) ClearNote() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearNote()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *AppointmentUpsertOne) SetCancelReason(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancelReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *AppointmentUpsertOne) ClearCancelReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelReason()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *AppointmentUpsertOne) SetConfirmedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateConfirmedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *AppointmentUpsertOne) ClearConfirmedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertOne) SetCancelledAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertOne) ClearCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsertOne) SetCompletedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCompletedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsertOne) ClearCompletedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppointmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AppointmentUpsertOne.ID is not supported by MySQL driver. Use AppointmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppointmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
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
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertBulk {
	_c.conflict = opts
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflictColumns(columns ...string) *AppointmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// AppointmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Appointment nodes.
type AppointmentUpsertBulk struct {
	create *AppointmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) UpdateNewValues() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appointment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appointment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) Ignore() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertBulk) DoNothing() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreateBulk.OnConflict
// documentation for more info.
func (u *AppointmentUpsertBulk) Update(set func(*AppointmentUpsert)) *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertBulk) SetUpdatedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AppointmentUpsertBulk) SetClinicID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateClinicID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateClinicID()
	})
}

// SetCustomerID sets the "customer_id" field.
func (u *AppointmentUpsertBulk) SetCustomerID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCustomerID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCustomerID()
	})
}

// SetDate sets the "date" field.
func (u *AppointmentUpsertBulk) SetDate(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateDate() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDate()
	})
}

// SetShift sets the "shift" field.
func (u *AppointmentUpsertBulk) SetShift(v appointment.Shift) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetShift(v)
	})
}

// UpdateShift sets the "shift" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateShift() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateShift()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertBulk) SetStatus(v appointment.Status) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStatus() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AppointmentUpsertBulk) SetCreatedBy(v appointment.CreatedBy) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCreatedBy() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetNote sets the "note" field.
func (u *AppointmentUpsertBulk) SetNote(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateNote() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *AppointmentUpsertBulk) ClearNote() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearNote()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *AppointmentUpsertBulk) SetCancelReason(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancelReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *AppointmentUpsertBulk) ClearCancelReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelReason()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *AppointmentUpsertBulk) SetConfirmedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateConfirmedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *AppointmentUpsertBulk) ClearConfirmedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertBulk) SetCancelledAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertBulk) ClearCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsertBulk) SetCompletedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCompletedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsertBulk) ClearCompletedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AppointmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
