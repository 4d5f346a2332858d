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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/predicate"
)

// PetUpdate is the builder for updating Pet entities.
type PetUpdate struct {
	config
	hooks    []Hook
	mutation *PetMutation
}

// Where appends a list predicates to the PetUpdate builder.
func (_u *PetUpdate) Where(ps ...predicate.Pet) *PetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PetUpdate) SetUpdatedAt(v time.Time) *PetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PetUpdate) SetDeletedAt(v time.Time) *PetUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PetUpdate) SetNillableDeletedAt(v *time.Time) *PetUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PetUpdate) ClearDeletedAt() *PetUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *PetUpdate) SetOwnerID(v uuid.UUID) *PetUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *PetUpdate) SetNillableOwnerID(v *uuid.UUID) *PetUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PetUpdate) SetName(v string) *PetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PetUpdate) SetNillableName(v *string) *PetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecies sets the "species" field.
func (_u *PetUpdate) SetSpecies(v pet.Species) *PetUpdate {
	_u.mutation.SetSpecies(v)
	return _u
}

// SetNillableSpecies sets the "species" field if the given value is not nil.
func (_u *PetUpdate) SetNillableSpecies(v *pet.Species) *PetUpdate {
	if v != nil {
		_u.SetSpecies(*v)
	}
	return _u
}

// SetBreed sets the "breed" field.
func (_u *PetUpdate) SetBreed(v string) *PetUpdate {
	_u.mutation.SetBreed(v)
	return _u
}

// SetNillableBreed sets the "breed" field if the given value is not nil.
func (_u *PetUpdate) SetNillableBreed(v *string) *PetUpdate {
	if v != nil {
		_u.SetBreed(*v)
	}
	return _u
}

// ClearBreed clears the value of the "breed" field.
func (_u *PetUpdate) ClearBreed() *PetUpdate {
	_u.mutation.ClearBreed()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PetUpdate) SetGender(v pet.Gender) *PetUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PetUpdate) SetNillableGender(v *pet.Gender) *PetUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *PetUpdate) SetWeightKg(v float64) *PetUpdate {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *PetUpdate) SetNillableWeightKg(v *float64) *PetUpdate {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *PetUpdate) AddWeightKg(v float64) *PetUpdate {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *PetUpdate) ClearWeightKg() *PetUpdate {
	_u.mutation.ClearWeightKg()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PetUpdate) SetDateOfBirth(v time.Time) *PetUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PetUpdate) SetNillableDateOfBirth(v *time.Time) *PetUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PetUpdate) ClearDateOfBirth() *PetUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *PetUpdate) SetAvatarKey(v string) *PetUpdate {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *PetUpdate) SetNillableAvatarKey(v *string) *PetUpdate {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *PetUpdate) ClearAvatarKey() *PetUpdate {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetMedicalNotesEnc sets the "medical_notes_enc" field.
func (_u *PetUpdate) SetMedicalNotesEnc(v string) *PetUpdate {
	_u.mutation.SetMedicalNotesEnc(v)
	return _u
}

// SetNillableMedicalNotesEnc sets the "medical_notes_enc" field if the given value is not nil.
func (_u *PetUpdate) SetNillableMedicalNotesEnc(v *string) *PetUpdate {
	if v != nil {
		_u.SetMedicalNotesEnc(*v)
	}
	return _u
}

// ClearMedicalNotesEnc clears the value of the "medical_notes_enc" field.
func (_u *PetUpdate) ClearMedicalNotesEnc() *PetUpdate {
	_u.mutation.ClearMedicalNotesEnc()
	return _u
}

// Mutation returns the PetMutation object of the builder.
func (_u *PetUpdate) Mutation() *PetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pet.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Pet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Species(); ok {
		if err := pet.SpeciesValidator(v); err != nil {
			return &ValidationError{Name: "species", err: fmt.Errorf(`repo: validator failed for field "Pet.species": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Breed(); ok {
		if err := pet.BreedValidator(v); err != nil {
			return &ValidationError{Name: "breed", err: fmt.Errorf(`repo: validator failed for field "Pet.breed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := pet.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Pet.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightKg(); ok {
		if err := pet.WeightKgValidator(v); err != nil {
			return &ValidationError{Name: "weight_kg", err: fmt.Errorf(`repo: validator failed for field "Pet.weight_kg": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := pet.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Pet.avatar_key": %w`, err)}
		}
	}
	return nil
}

func (_u *PetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pet.Table, pet.Columns, sqlgraph.NewFieldSpec(pet.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pet.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(pet.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(pet.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(pet.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pet.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Species(); ok {
		_spec.SetField(pet.FieldSpecies, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Breed(); ok {
		_spec.SetField(pet.FieldBreed, field.TypeString, value)
	}
	if _u.mutation.BreedCleared() {
		_spec.ClearField(pet.FieldBreed, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(pet.FieldGender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(pet.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(pet.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(pet.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(pet.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(pet.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(pet.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(pet.FieldAvatarKey, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalNotesEnc(); ok {
		_spec.SetField(pet.FieldMedicalNotesEnc, field.TypeString, value)
	}
	if _u.mutation.MedicalNotesEncCleared() {
		_spec.ClearField(pet.FieldMedicalNotesEnc, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PetUpdateOne is the builder for updating a single Pet entity.
type PetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PetUpdateOne) SetUpdatedAt(v time.Time) *PetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PetUpdateOne) SetDeletedAt(v time.Time) *PetUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableDeletedAt(v *time.Time) *PetUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PetUpdateOne) ClearDeletedAt() *PetUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *PetUpdateOne) SetOwnerID(v uuid.UUID) *PetUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableOwnerID(v *uuid.UUID) *PetUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PetUpdateOne) SetName(v string) *PetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableName(v *string) *PetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecies sets the "species" field.
func (_u *PetUpdateOne) SetSpecies(v pet.Species) *PetUpdateOne {
	_u.mutation.SetSpecies(v)
	return _u
}

// SetNillableSpecies sets the "species" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableSpecies(v *pet.Species) *PetUpdateOne {
	if v != nil {
		_u.SetSpecies(*v)
	}
	return _u
}

// SetBreed sets the "breed" field.
func (_u *PetUpdateOne) SetBreed(v string) *PetUpdateOne {
	_u.mutation.SetBreed(v)
	return _u
}

// SetNillableBreed sets the "breed" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableBreed(v *string) *PetUpdateOne {
	if v != nil {
		_u.SetBreed(*v)
	}
	return _u
}

// ClearBreed clears the value of the "breed" field.
func (_u *PetUpdateOne) ClearBreed() *PetUpdateOne {
	_u.mutation.ClearBreed()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PetUpdateOne) SetGender(v pet.Gender) *PetUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableGender(v *pet.Gender) *PetUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *PetUpdateOne) SetWeightKg(v float64) *PetUpdateOne {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableWeightKg(v *float64) *PetUpdateOne {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *PetUpdateOne) AddWeightKg(v float64) *PetUpdateOne {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *PetUpdateOne) ClearWeightKg() *PetUpdateOne {
	_u.mutation.ClearWeightKg()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PetUpdateOne) SetDateOfBirth(v time.Time) *PetUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableDateOfBirth(v *time.Time) *PetUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PetUpdateOne) ClearDateOfBirth() *PetUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *PetUpdateOne) SetAvatarKey(v string) *PetUpdateOne {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableAvatarKey(v *string) *PetUpdateOne {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *PetUpdateOne) ClearAvatarKey() *PetUpdateOne {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetMedicalNotesEnc sets the "medical_notes_enc" field.
func (_u *PetUpdateOne) SetMedicalNotesEnc(v string) *PetUpdateOne {
	_u.mutation.SetMedicalNotesEnc(v)
	return _u
}

// SetNillableMedicalNotesEnc sets the "medical_notes_enc" field if the given value is not nil.
func (_u *PetUpdateOne) SetNillableMedicalNotesEnc(v *string) *PetUpdateOne {
	if v != nil {
		_u.SetMedicalNotesEnc(*v)
	}
	return _u
}

// ClearMedicalNotesEnc clears the value of the "medical_notes_enc" field.
func (_u *PetUpdateOne) ClearMedicalNotesEnc() *PetUpdateOne {
	_u.mutation.ClearMedicalNotesEnc()
	return _u
}

// Mutation returns the PetMutation object of the builder.
func (_u *PetUpdateOne) Mutation() *PetMutation {
	return _u.mutation
}

// Where appends a list predicates to the PetUpdate builder.
func (_u *PetUpdateOne) Where(ps ...predicate.Pet) *PetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PetUpdateOne) Select(field string, fields ...string) *PetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pet entity.
func (_u *PetUpdateOne) Save(ctx context.Context) (*Pet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PetUpdateOne) SaveX(ctx context.Context) *Pet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := pet.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Pet.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Species(); ok {
		if err := pet.SpeciesValidator(v); err != nil {
			return &ValidationError{Name: "species", err: fmt.Errorf(`repo: validator failed for field "Pet.species": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Breed(); ok {
		if err := pet.BreedValidator(v); err != nil {
			return &ValidationError{Name: "breed", err: fmt.Errorf(`repo: validator failed for field "Pet.breed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := pet.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Pet.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightKg(); ok {
		if err := pet.WeightKgValidator(v); err != nil {
			return &ValidationError{Name: "weight_kg", err: fmt.Errorf(`repo: validator failed for field "Pet.weight_kg": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := pet.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Pet.avatar_key": %w`, err)}
		}
	}
	return nil
}

func (_u *PetUpdateOne) sqlSave(ctx context.Context) (_node *Pet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pet.Table, pet.Columns, sqlgraph.NewFieldSpec(pet.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Pet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pet.FieldID)
		for _, f := range fields {
			if !pet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != pet.FieldID {
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
		_spec.SetField(pet.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(pet.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(pet.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(pet.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pet.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Species(); ok {
		_spec.SetField(pet.FieldSpecies, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Breed(); ok {
		_spec.SetField(pet.FieldBreed, field.TypeString, value)
	}
	if _u.mutation.BreedCleared() {
		_spec.ClearField(pet.FieldBreed, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(pet.FieldGender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(pet.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(pet.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(pet.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(pet.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(pet.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(pet.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(pet.FieldAvatarKey, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalNotesEnc(); ok {
		_spec.SetField(pet.FieldMedicalNotesEnc, field.TypeString, value)
	}
	if _u.mutation.MedicalNotesEncCleared() {
		_spec.ClearField(pet.FieldMedicalNotesEnc, field.TypeString)
	}
	_node = &Pet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
