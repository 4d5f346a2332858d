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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/shiftcapacity"
)

// ShiftCapacityUpdate is the builder for updating ShiftCapacity entities.
type ShiftCapacityUpdate struct {
	config
	hooks    []Hook
	mutation *ShiftCapacityMutation
}

// Where appends a list predicates to the ShiftCapacityUpdate builder.
func (_u *ShiftCapacityUpdate) Where(ps ...predicate.ShiftCapacity) *ShiftCapacityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShiftCapacityUpdate) SetUpdatedAt(v time.Time) *ShiftCapacityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ShiftCapacityUpdate) SetClinicID(v uuid.UUID) *ShiftCapacityUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ShiftCapacityUpdate) SetNillableClinicID(v *uuid.UUID) *ShiftCapacityUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ShiftCapacityUpdate) SetDate(v string) *ShiftCapacityUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ShiftCapacityUpdate) SetNillableDate(v *string) *ShiftCapacityUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetShift sets the "shift" field.
func (_u *ShiftCapacityUpdate) SetShift(v shiftcapacity.Shift) *ShiftCapacityUpdate {
	_u.mutation.SetShift(v)
	return _u
}

// SetNillableShift sets the "shift" field if the given value is not nil.
func (_u *ShiftCapacityUpdate) SetNillableShift(v *shiftcapacity.Shift) *ShiftCapacityUpdate {
	if v != nil {
		_u.SetShift(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *ShiftCapacityUpdate) SetCapacity(v int) *ShiftCapacityUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *ShiftCapacityUpdate) SetNillableCapacity(v *int) *ShiftCapacityUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *ShiftCapacityUpdate) AddCapacity(v int) *ShiftCapacityUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// Mutation returns the ShiftCapacityMutation object of the builder.
func (_u *ShiftCapacityUpdate) Mutation() *ShiftCapacityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShiftCapacityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftCapacityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShiftCapacityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftCapacityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShiftCapacityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shiftcapacity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftCapacityUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := shiftcapacity.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Shift(); ok {
		if err := shiftcapacity.ShiftValidator(v); err != nil {
			return &ValidationError{Name: "shift", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.shift": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := shiftcapacity.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.capacity": %w`, err)}
		}
	}
	return nil
}

func (_u *ShiftCapacityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftcapacity.Table, shiftcapacity.Columns, sqlgraph.NewFieldSpec(shiftcapacity.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftcapacity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(shiftcapacity.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(shiftcapacity.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Shift(); ok {
		_spec.SetField(shiftcapacity.FieldShift, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(shiftcapacity.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(shiftcapacity.FieldCapacity, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftcapacity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShiftCapacityUpdateOne is the builder for updating a single ShiftCapacity entity.
type ShiftCapacityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShiftCapacityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShiftCapacityUpdateOne) SetUpdatedAt(v time.Time) *ShiftCapacityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ShiftCapacityUpdateOne) SetClinicID(v uuid.UUID) *ShiftCapacityUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ShiftCapacityUpdateOne) SetNillableClinicID(v *uuid.UUID) *ShiftCapacityUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ShiftCapacityUpdateOne) SetDate(v string) *ShiftCapacityUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ShiftCapacityUpdateOne) SetNillableDate(v *string) *ShiftCapacityUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetShift sets the "shift" field.
func (_u *ShiftCapacityUpdateOne) SetShift(v shiftcapacity.Shift) *ShiftCapacityUpdateOne {
	_u.mutation.SetShift(v)
	return _u
}

// SetNillableShift sets the "shift" field if the given value is not nil.
func (_u *ShiftCapacityUpdateOne) SetNillableShift(v *shiftcapacity.Shift) *ShiftCapacityUpdateOne {
	if v != nil {
		_u.SetShift(*v)
	}
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *ShiftCapacityUpdateOne) SetCapacity(v int) *ShiftCapacityUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *ShiftCapacityUpdateOne) SetNillableCapacity(v *int) *ShiftCapacityUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *ShiftCapacityUpdateOne) AddCapacity(v int) *ShiftCapacityUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// Mutation returns the ShiftCapacityMutation object of the builder.
func (_u *ShiftCapacityUpdateOne) Mutation() *ShiftCapacityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ShiftCapacityUpdate builder.
func (_u *ShiftCapacityUpdateOne) Where(ps ...predicate.ShiftCapacity) *ShiftCapacityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShiftCapacityUpdateOne) Select(field string, fields ...string) *ShiftCapacityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShiftCapacity entity.
func (_u *ShiftCapacityUpdateOne) Save(ctx context.Context) (*ShiftCapacity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftCapacityUpdateOne) SaveX(ctx context.Context) *ShiftCapacity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShiftCapacityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftCapacityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShiftCapacityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shiftcapacity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftCapacityUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := shiftcapacity.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Shift(); ok {
		if err := shiftcapacity.ShiftValidator(v); err != nil {
			return &ValidationError{Name: "shift", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.shift": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Capacity(); ok {
		if err := shiftcapacity.CapacityValidator(v); err != nil {
			return &ValidationError{Name: "capacity", err: fmt.Errorf(`repo: validator failed for field "ShiftCapacity.capacity": %w`, err)}
		}
	}
	return nil
}

func (_u *ShiftCapacityUpdateOne) sqlSave(ctx context.Context) (_node *ShiftCapacity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftcapacity.Table, shiftcapacity.Columns, sqlgraph.NewFieldSpec(shiftcapacity.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ShiftCapacity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftcapacity.FieldID)
		for _, f := range fields {
			if !shiftcapacity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != shiftcapacity.FieldID {
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
		_spec.SetField(shiftcapacity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(shiftcapacity.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(shiftcapacity.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Shift(); ok {
		_spec.SetField(shiftcapacity.FieldShift, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(shiftcapacity.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(shiftcapacity.FieldCapacity, field.TypeInt, value)
	}
	_node = &ShiftCapacity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftcapacity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
