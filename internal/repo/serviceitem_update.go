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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
)

// ServiceItemUpdate is the builder for updating ServiceItem entities.
type ServiceItemUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceItemMutation
}

// Where appends a list predicates to the ServiceItemUpdate builder.
func (_u *ServiceItemUpdate) Where(ps ...predicate.ServiceItem) *ServiceItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceItemUpdate) SetUpdatedAt(v time.Time) *ServiceItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ServiceItemUpdate) SetDeletedAt(v time.Time) *ServiceItemUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillableDeletedAt(v *time.Time) *ServiceItemUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ServiceItemUpdate) ClearDeletedAt() *ServiceItemUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ServiceItemUpdate) SetClinicID(v uuid.UUID) *ServiceItemUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillableClinicID(v *uuid.UUID) *ServiceItemUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceItemUpdate) SetName(v string) *ServiceItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillableName(v *string) *ServiceItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceItemUpdate) SetDescription(v string) *ServiceItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillableDescription(v *string) *ServiceItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceItemUpdate) ClearDescription() *ServiceItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceItemUpdate) SetPrice(v int64) *ServiceItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillablePrice(v *int64) *ServiceItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceItemUpdate) AddPrice(v int64) *ServiceItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *ServiceItemUpdate) SetDurationMin(v int) *ServiceItemUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillableDurationMin(v *int) *ServiceItemUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *ServiceItemUpdate) AddDurationMin(v int) *ServiceItemUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceItemUpdate) SetIsActive(v bool) *ServiceItemUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceItemUpdate) SetNillableIsActive(v *bool) *ServiceItemUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ServiceItemUpdate) SetClinic(v *Clinic) *ServiceItemUpdate {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the ServiceItemMutation object of the builder.
func (_u *ServiceItemUpdate) Mutation() *ServiceItemMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ServiceItemUpdate) ClearClinic() *ServiceItemUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := serviceitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := serviceitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := serviceitem.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.duration_min": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ServiceItem.clinic"`)
	}
	return nil
}

func (_u *ServiceItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceitem.Table, serviceitem.Columns, sqlgraph.NewFieldSpec(serviceitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(serviceitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(serviceitem.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(serviceitem.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(serviceitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(serviceitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(serviceitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(serviceitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(serviceitem.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(serviceitem.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(serviceitem.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceItemUpdateOne is the builder for updating a single ServiceItem entity.
type ServiceItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServiceItemUpdateOne) SetUpdatedAt(v time.Time) *ServiceItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ServiceItemUpdateOne) SetDeletedAt(v time.Time) *ServiceItemUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillableDeletedAt(v *time.Time) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ServiceItemUpdateOne) ClearDeletedAt() *ServiceItemUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ServiceItemUpdateOne) SetClinicID(v uuid.UUID) *ServiceItemUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillableClinicID(v *uuid.UUID) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceItemUpdateOne) SetName(v string) *ServiceItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillableName(v *string) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ServiceItemUpdateOne) SetDescription(v string) *ServiceItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillableDescription(v *string) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ServiceItemUpdateOne) ClearDescription() *ServiceItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ServiceItemUpdateOne) SetPrice(v int64) *ServiceItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillablePrice(v *int64) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ServiceItemUpdateOne) AddPrice(v int64) *ServiceItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *ServiceItemUpdateOne) SetDurationMin(v int) *ServiceItemUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillableDurationMin(v *int) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *ServiceItemUpdateOne) AddDurationMin(v int) *ServiceItemUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ServiceItemUpdateOne) SetIsActive(v bool) *ServiceItemUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ServiceItemUpdateOne) SetNillableIsActive(v *bool) *ServiceItemUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ServiceItemUpdateOne) SetClinic(v *Clinic) *ServiceItemUpdateOne {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the ServiceItemMutation object of the builder.
func (_u *ServiceItemUpdateOne) Mutation() *ServiceItemMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ServiceItemUpdateOne) ClearClinic() *ServiceItemUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// Where appends a list predicates to the ServiceItemUpdate builder.
func (_u *ServiceItemUpdateOne) Where(ps ...predicate.ServiceItem) *ServiceItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceItemUpdateOne) Select(field string, fields ...string) *ServiceItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceItem entity.
func (_u *ServiceItemUpdateOne) Save(ctx context.Context) (*ServiceItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceItemUpdateOne) SaveX(ctx context.Context) *ServiceItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := serviceitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := serviceitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := serviceitem.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := serviceitem.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "ServiceItem.duration_min": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ServiceItem.clinic"`)
	}
	return nil
}

func (_u *ServiceItemUpdateOne) sqlSave(ctx context.Context) (_node *ServiceItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceitem.Table, serviceitem.Columns, sqlgraph.NewFieldSpec(serviceitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ServiceItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceitem.FieldID)
		for _, f := range fields {
			if !serviceitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != serviceitem.FieldID {
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
		_spec.SetField(serviceitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(serviceitem.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(serviceitem.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(serviceitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(serviceitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(serviceitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(serviceitem.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(serviceitem.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(serviceitem.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(serviceitem.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServiceItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
