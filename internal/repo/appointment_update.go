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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentUpdate) SetClinicID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableClinicID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *AppointmentUpdate) SetCustomerID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCustomerID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdate) SetDate(v string) *AppointmentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDate(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetShift sets the "shift" field.
func (_u *AppointmentUpdate) SetShift(v appointment.Shift) *AppointmentUpdate {
	_u.mutation.SetShift(v)
	return _u
}

// SetNillableShift sets the "shift" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableShift(v *appointment.Shift) *AppointmentUpdate {
	if v != nil {
		_u.SetShift(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AppointmentUpdate) SetCreatedBy(v appointment.CreatedBy) *AppointmentUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCreatedBy(v *appointment.CreatedBy) *AppointmentUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AppointmentUpdate) SetNote(v string) *AppointmentUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNote(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *AppointmentUpdate) ClearNote() *AppointmentUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *AppointmentUpdate) SetCancelReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *AppointmentUpdate) ClearCancelReason() *AppointmentUpdate {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AppointmentUpdate) SetConfirmedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableConfirmedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AppointmentUpdate) ClearConfirmedAt() *AppointmentUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdate) SetCompletedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCompletedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdate) ClearCompletedAt() *AppointmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPetIDs adds the "pets" edge to the Pet entity by IDs.
func (_u *AppointmentUpdate) AddPetIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.AddPetIDs(ids...)
	return _u
}

// AddPets adds the "pets" edges to the Pet entity.
func (_u *AppointmentUpdate) AddPets(v ...*Pet) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPetIDs(ids...)
}

// AddServiceIDs adds the "services" edge to the ServiceItem entity by IDs.
func (_u *AppointmentUpdate) AddServiceIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the ServiceItem entity.
func (_u *AppointmentUpdate) AddServices(v ...*ServiceItem) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPets clears all "pets" edges to the Pet entity.
func (_u *AppointmentUpdate) ClearPets() *AppointmentUpdate {
	_u.mutation.ClearPets()
	return _u
}

// RemovePetIDs removes the "pets" edge to Pet entities by IDs.
func (_u *AppointmentUpdate) RemovePetIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.RemovePetIDs(ids...)
	return _u
}

// RemovePets removes "pets" edges to Pet entities.
func (_u *AppointmentUpdate) RemovePets(v ...*Pet) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePetIDs(ids...)
}

// ClearServices clears all "services" edges to the ServiceItem entity.
func (_u *AppointmentUpdate) ClearServices() *AppointmentUpdate {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to ServiceItem entities by IDs.
func (_u *AppointmentUpdate) RemoveServiceIDs(ids ...uuid.UUID) *AppointmentUpdate {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to ServiceItem entities.
func (_u *AppointmentUpdate) RemoveServices(v ...*ServiceItem) *AppointmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Shift(); ok {
		if err := appointment.ShiftValidator(v); err != nil {
			return &ValidationError{Name: "shift", err: fmt.Errorf(`repo: validator failed for field "Appointment.shift": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := appointment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`repo: validator failed for field "Appointment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(appointment.FieldCustomerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Shift(); ok {
		_spec.SetField(appointment.FieldShift, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(appointment.FieldCreatedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(appointment.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(appointment.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(appointment.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(appointment.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(appointment.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPetsIDs(); len(nodes) > 0 && !_u.mutation.PetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentUpdateOne) SetClinicID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableClinicID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *AppointmentUpdateOne) SetCustomerID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCustomerID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdateOne) SetDate(v string) *AppointmentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDate(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetShift sets the "shift" field.
func (_u *AppointmentUpdateOne) SetShift(v appointment.Shift) *AppointmentUpdateOne {
	_u.mutation.SetShift(v)
	return _u
}

// SetNillableShift sets the "shift" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableShift(v *appointment.Shift) *AppointmentUpdateOne {
	if v != nil {
		_u.SetShift(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AppointmentUpdateOne) SetCreatedBy(v appointment.CreatedBy) *AppointmentUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCreatedBy(v *appointment.CreatedBy) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AppointmentUpdateOne) SetNote(v string) *AppointmentUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNote(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *AppointmentUpdateOne) ClearNote() *AppointmentUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *AppointmentUpdateOne) SetCancelReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *AppointmentUpdateOne) ClearCancelReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AppointmentUpdateOne) SetConfirmedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableConfirmedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AppointmentUpdateOne) ClearConfirmedAt() *AppointmentUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdateOne) SetCompletedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdateOne) ClearCompletedAt() *AppointmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPetIDs adds the "pets" edge to the Pet entity by IDs.
func (_u *AppointmentUpdateOne) AddPetIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.AddPetIDs(ids...)
	return _u
}

// AddPets adds the "pets" edges to the Pet entity.
func (_u *AppointmentUpdateOne) AddPets(v ...*Pet) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPetIDs(ids...)
}

// AddServiceIDs adds the "services" edge to the ServiceItem entity by IDs.
func (_u *AppointmentUpdateOne) AddServiceIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the ServiceItem entity.
func (_u *AppointmentUpdateOne) AddServices(v ...*ServiceItem) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearPets clears all "pets" edges to the Pet entity.
func (_u *AppointmentUpdateOne) ClearPets() *AppointmentUpdateOne {
	_u.mutation.ClearPets()
	return _u
}

// RemovePetIDs removes the "pets" edge to Pet entities by IDs.
func (_u *AppointmentUpdateOne) RemovePetIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.RemovePetIDs(ids...)
	return _u
}

// RemovePets removes "pets" edges to Pet entities.
func (_u *AppointmentUpdateOne) RemovePets(v ...*Pet) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePetIDs(ids...)
}

// ClearServices clears all "services" edges to the ServiceItem entity.
func (_u *AppointmentUpdateOne) ClearServices() *AppointmentUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to ServiceItem entities by IDs.
func (_u *AppointmentUpdateOne) RemoveServiceIDs(ids ...uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to ServiceItem entities.
func (_u *AppointmentUpdateOne) RemoveServices(v ...*ServiceItem) *AppointmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Shift(); ok {
		if err := appointment.ShiftValidator(v); err != nil {
			return &ValidationError{Name: "shift", err: fmt.Errorf(`repo: validator failed for field "Appointment.shift": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := appointment.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`repo: validator failed for field "Appointment.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(appointment.FieldCustomerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Shift(); ok {
		_spec.SetField(appointment.FieldShift, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(appointment.FieldCreatedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(appointment.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(appointment.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(appointment.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(appointment.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(appointment.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPetsIDs(); len(nodes) > 0 && !_u.mutation.PetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedServicesIDs(); len(nodes) > 0 && !_u.mutation.ServicesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
