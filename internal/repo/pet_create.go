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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
)

// PetCreate is the builder for creating a Pet entity.
type PetCreate struct {
	config
	mutation *PetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PetCreate) SetCreatedAt(v time.Time) *PetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PetCreate) SetNillableCreatedAt(v *time.Time) *PetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PetCreate) SetUpdatedAt(v time.Time) *PetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PetCreate) SetNillableUpdatedAt(v *time.Time) *PetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PetCreate) SetDeletedAt(v time.Time) *PetCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PetCreate) SetNillableDeletedAt(v *time.Time) *PetCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *PetCreate) SetOwnerID(v uuid.UUID) *PetCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PetCreate) SetName(v string) *PetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSpecies sets the "species" field.
func (_c *PetCreate) SetSpecies(v pet.Species) *PetCreate {
	_c.mutation.SetSpecies(v)
	return _c
}

// SetNillableSpecies sets the "species" field if the given value is not nil.
func (_c *PetCreate) SetNillableSpecies(v *pet.Species) *PetCreate {
	if v != nil {
		_c.SetSpecies(*v)
	}
	return _c
}

// SetBreed sets the "breed" field.
func (_c *PetCreate) SetBreed(v string) *PetCreate {
	_c.mutation.SetBreed(v)
	return _c
}

// SetNillableBreed sets the "breed" field if the given value is not nil.
func (_c *PetCreate) SetNillableBreed(v *string) *PetCreate {
	if v != nil {
		_c.SetBreed(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *PetCreate) SetGender(v pet.Gender) *PetCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PetCreate) SetNillableGender(v *pet.Gender) *PetCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetWeightKg sets the "weight_kg" field.
func (_c *PetCreate) SetWeightKg(v float64) *PetCreate {
	_c.mutation.SetWeightKg(v)
	return _c
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_c *PetCreate) SetNillableWeightKg(v *float64) *PetCreate {
	if v != nil {
		_c.SetWeightKg(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *PetCreate) SetDateOfBirth(v time.Time) *PetCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *PetCreate) SetNillableDateOfBirth(v *time.Time) *PetCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetAvatarKey sets the "avatar_key" field.
func (_c *PetCreate) SetAvatarKey(v string) *PetCreate {
	_c.mutation.SetAvatarKey(v)
	return _c
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_c *PetCreate) SetNillableAvatarKey(v *string) *PetCreate {
	if v != nil {
		_c.SetAvatarKey(*v)
	}
	return _c
}

// SetMedicalNotesEnc sets the "medical_notes_enc" field.
func (_c *PetCreate) SetMedicalNotesEnc(v string) *PetCreate {
	_c.mutation.SetMedicalNotesEnc(v)
	return _c
}

// SetNillableMedicalNotesEnc sets the "medical_notes_enc" field if the given value is not nil.
func (_c *PetCreate) SetNillableMedicalNotesEnc(v *string) *PetCreate {
	if v != nil {
		_c.SetMedicalNotesEnc(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PetCreate) SetID(v uuid.UUID) *PetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PetCreate) SetNillableID(v *uuid.UUID) *PetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PetMutation object of the builder.
func (_c *PetCreate) Mutation() *PetMutation {
	return _c.mutation
}

// Save creates the Pet in the database.
func (_c *PetCreate) Save(ctx context.Context) (*Pet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PetCreate) SaveX(ctx context.Context) *Pet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Species(); !ok {
		v := pet.DefaultSpecies
		_c.mutation.SetSpecies(v)
	}
	if _, ok := _c.mutation.Gender(); !ok {
		v := pet.DefaultGender
		_c.mutation.SetGender(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pet.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PetCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Pet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Pet.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`repo: missing required field "Pet.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Pet.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := pet.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Pet.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Species(); !ok {
		return &ValidationError{Name: "species", err: errors.New(`repo: missing required field "Pet.species"`)}
	}
	if v, ok := _c.mutation.Species(); ok {
		if err := pet.SpeciesValidator(v); err != nil {
			return &ValidationError{Name: "species", err: fmt.Errorf(`repo: validator failed for field "Pet.species": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Breed(); ok {
		if err := pet.BreedValidator(v); err != nil {
			return &ValidationError{Name: "breed", err: fmt.Errorf(`repo: validator failed for field "Pet.breed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`repo: missing required field "Pet.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := pet.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "Pet.gender": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WeightKg(); ok {
		if err := pet.WeightKgValidator(v); err != nil {
			return &ValidationError{Name: "weight_kg", err: fmt.Errorf(`repo: validator failed for field "Pet.weight_kg": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AvatarKey(); ok {
		if err := pet.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Pet.avatar_key": %w`, err)}
		}
	}
	return nil
}

func (_c *PetCreate) sqlSave(ctx context.Context) (*Pet, error) {
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

func (_c *PetCreate) createSpec() (*Pet, *sqlgraph.CreateSpec) {
	var (
		_node = &Pet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pet.Table, sqlgraph.NewFieldSpec(pet.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(pet.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(pet.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pet.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Species(); ok {
		_spec.SetField(pet.FieldSpecies, field.TypeEnum, value)
		_node.Species = value
	}
	if value, ok := _c.mutation.Breed(); ok {
		_spec.SetField(pet.FieldBreed, field.TypeString, value)
		_node.Breed = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(pet.FieldGender, field.TypeEnum, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.WeightKg(); ok {
		_spec.SetField(pet.FieldWeightKg, field.TypeFloat64, value)
		_node.WeightKg = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(pet.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.AvatarKey(); ok {
		_spec.SetField(pet.FieldAvatarKey, field.TypeString, value)
		_node.AvatarKey = &value
	}
	if value, ok := _c.mutation.MedicalNotesEnc(); ok {
		_spec.SetField(pet.FieldMedicalNotesEnc, field.TypeString, value)
		_node.MedicalNotesEnc = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pet.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PetCreate) OnConflict(opts ...sql.ConflictOption) *PetUpsertOne {
	_c.conflict = opts
	return &PetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PetCreate) OnConflictColumns(columns ...string) *PetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PetUpsertOne{
		create: _c,
	}
}

type (
	// PetUpsertOne is the builder for "upsert"-ing
	//  one Pet node.
	PetUpsertOne struct {
		create *PetCreate
	}

	// PetUpsert is the "OnConflict" setter.
	PetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PetUpsert) SetUpdatedAt(v time.Time) *PetUpsert {
	u.Set(pet.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PetUpsert) UpdateUpdatedAt() *PetUpsert {
	u.SetExcluded(pet.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PetUpsert) SetDeletedAt(v time.Time) *PetUpsert {
	u.Set(pet.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PetUpsert) UpdateDeletedAt() *PetUpsert {
	u.SetExcluded(pet.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PetUpsert) ClearDeletedAt() *PetUpsert {
	u.SetNull(pet.FieldDeletedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *PetUpsert) SetOwnerID(v uuid.UUID) *PetUpsert {
	u.Set(pet.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *PetUpsert) UpdateOwnerID() *PetUpsert {
	u.SetExcluded(pet.FieldOwnerID)
	return u
}

// SetName sets the "name" field.
func (u *PetUpsert) SetName(v string) *PetUpsert {
	u.Set(pet.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PetUpsert) UpdateName() *PetUpsert {
	u.SetExcluded(pet.FieldName)
	return u
}

// SetSpecies sets the "species" field.
func (u *PetUpsert) SetSpecies(v pet.Species) *PetUpsert {
	u.Set(pet.FieldSpecies, v)
	return u
}

// UpdateSpecies sets the "species" field to the value that was provided on create.
func (u *PetUpsert) UpdateSpecies() *PetUpsert {
	u.SetExcluded(pet.FieldSpecies)
	return u
}

// SetBreed sets the "breed" field.
func (u *PetUpsert) SetBreed(v string) *PetUpsert {
	u.Set(pet.FieldBreed, v)
	return u
}

// UpdateBreed sets the "breed" field to the value that was provided on create.
func (u *PetUpsert) UpdateBreed() *PetUpsert {
	u.SetExcluded(pet.FieldBreed)
	return u
}

// ClearBreed clears the value of the "breed" field.
func (u *PetUpsert) ClearBreed() *PetUpsert {
	u.SetNull(pet.FieldBreed)
	return u
}

// SetGender sets the "gender" field.
func (u *PetUpsert) SetGender(v pet.Gender) *PetUpsert {
	u.Set(pet.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PetUpsert) UpdateGender() *PetUpsert {
	u.SetExcluded(pet.FieldGender)
	return u
}

// SetWeightKg sets the "weight_kg" field.
func (u *PetUpsert) SetWeightKg(v float64) *PetUpsert {
	u.Set(pet.FieldWeightKg, v)
	return u
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *PetUpsert) UpdateWeightKg() *PetUpsert {
	u.SetExcluded(pet.FieldWeightKg)
	return u
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *PetUpsert) AddWeightKg(v float64) *PetUpsert {
	u.Add(pet.FieldWeightKg, v)
	return u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *PetUpsert) ClearWeightKg() *PetUpsert {
	u.SetNull(pet.FieldWeightKg)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PetUpsert) SetDateOfBirth(v time.Time) *PetUpsert {
	u.Set(pet.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PetUpsert) UpdateDateOfBirth() *PetUpsert {
	u.SetExcluded(pet.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PetUpsert) ClearDateOfBirth() *PetUpsert {
	u.SetNull(pet.FieldDateOfBirth)
	return u
}

// SetAvatarKey sets the "avatar_key" field.
func (u *PetUpsert) SetAvatarKey(v string) *PetUpsert {
	u.Set(pet.FieldAvatarKey, v)
	return u
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *PetUpsert) UpdateAvatarKey() *PetUpsert {
	u.SetExcluded(pet.FieldAvatarKey)
	return u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *PetUpsert) ClearAvatarKey() *PetUpsert {
	u.SetNull(pet.FieldAvatarKey)
	return u
}

// SetMedicalNotesEnc sets the "medical_notes_enc" field.
func (u *PetUpsert) SetMedicalNotesEnc(v string) *PetUpsert {
	u.Set(pet.FieldMedicalNotesEnc, v)
	return u
}

// UpdateMedicalNotesEnc sets the "medical_notes_enc" field to the value that was provided on create.
func (u *PetUpsert) UpdateMedicalNotesEnc() *PetUpsert {
	u.SetExcluded(pet.FieldMedicalNotesEnc)
	return u
}

// ClearMedicalNotesEnc clears the value of the "medical_notes_enc" field.
func (u *PetUpsert) ClearMedicalNotesEnc() *PetUpsert {
	u.SetNull(pet.FieldMedicalNotesEnc)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Pet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PetUpsertOne) UpdateNewValues() *PetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pet.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pet.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pet.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PetUpsertOne) Ignore() *PetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PetUpsertOne) DoNothing() *PetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PetCreate.OnConflict
// documentation for more info.
func (u *PetUpsertOne) Update(set func(*PetUpsert)) *PetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PetUpsertOne) SetUpdatedAt(v time.Time) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateUpdatedAt() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PetUpsertOne) SetDeletedAt(v time.Time) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateDeletedAt() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PetUpsertOne) ClearDeletedAt() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *PetUpsertOne) SetOwnerID(v uuid.UUID) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateOwnerID() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *PetUpsertOne) SetName(v string) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateName() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateName()
	})
}

// SetSpecies sets the "species" field.
func (u *PetUpsertOne) SetSpecies(v pet.Species) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetSpecies(v)
	})
}

// UpdateSpecies sets the "species" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateSpecies() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateSpecies()
	})
}

// SetBreed sets the "breed" field.
func (u *PetUpsertOne) SetBreed(v string) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetBreed(v)
	})
}

// UpdateBreed sets the "breed" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateBreed() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateBreed()
	})
}

// ClearBreed clears the value of the "breed" field.
func (u *PetUpsertOne) ClearBreed() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.ClearBreed()
	})
}

// SetGender sets the "gender" field.
func (u *PetUpsertOne) SetGender(v pet.Gender) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateGender() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateGender()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *PetUpsertOne) SetWeightKg(v float64) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *PetUpsertOne) AddWeightKg(v float64) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateWeightKg() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *PetUpsertOne) ClearWeightKg() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.ClearWeightKg()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PetUpsertOne) SetDateOfBirth(v time.Time) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateDateOfBirth() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PetUpsertOne) ClearDateOfBirth() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *PetUpsertOne) SetAvatarKey(v string) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateAvatarKey() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *PetUpsertOne) ClearAvatarKey() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.ClearAvatarKey()
	})
}

// SetMedicalNotesEnc sets the "medical_notes_enc" field.
func (u *PetUpsertOne) SetMedicalNotesEnc(v string) *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.SetMedicalNotesEnc(v)
	})
}

// UpdateMedicalNotesEnc sets the "medical_notes_enc" field to the value that was provided on create.
func (u *PetUpsertOne) UpdateMedicalNotesEnc() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.UpdateMedicalNotesEnc()
	})
}

// ClearMedicalNotesEnc clears the value of the "medical_notes_enc" field.
func (u *PetUpsertOne) ClearMedicalNotesEnc() *PetUpsertOne {
	return u.Update(func(s *PetUpsert) {
		s.ClearMedicalNotesEnc()
	})
}

// Exec executes the query.
func (u *PetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PetUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PetUpsertOne.ID is not supported by MySQL driver. Use PetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PetUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PetCreateBulk is the builder for creating many Pet entities in bulk.
type PetCreateBulk struct {
	config
	err      error
	builders []*PetCreate
	conflict []sql.ConflictOption
}

// Save creates the Pet entities in the database.
func (_c *PetCreateBulk) Save(ctx context.Context) ([]*Pet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PetMutation)
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
func (_c *PetCreateBulk) SaveX(ctx context.Context) []*Pet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pet.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PetCreateBulk) OnConflict(opts ...sql.ConflictOption) *PetUpsertBulk {
	_c.conflict = opts
	return &PetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PetCreateBulk) OnConflictColumns(columns ...string) *PetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PetUpsertBulk{
		create: _c,
	}
}

// PetUpsertBulk is the builder for "upsert"-ing
// a bulk of Pet nodes.
type PetUpsertBulk struct {
	create *PetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Pet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PetUpsertBulk) UpdateNewValues() *PetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pet.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pet.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pet.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PetUpsertBulk) Ignore() *PetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PetUpsertBulk) DoNothing() *PetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PetCreateBulk.OnConflict
// documentation for more info.
func (u *PetUpsertBulk) Update(set func(*PetUpsert)) *PetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PetUpsertBulk) SetUpdatedAt(v time.Time) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateUpdatedAt() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PetUpsertBulk) SetDeletedAt(v time.Time) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateDeletedAt() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PetUpsertBulk) ClearDeletedAt() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *PetUpsertBulk) SetOwnerID(v uuid.UUID) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateOwnerID() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *PetUpsertBulk) SetName(v string) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateName() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateName()
	})
}

// SetSpecies sets the "species" field.
func (u *PetUpsertBulk) SetSpecies(v pet.Species) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetSpecies(v)
	})
}

// UpdateSpecies sets the "species" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateSpecies() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateSpecies()
	})
}

// SetBreed sets the "breed" field.
func (u *PetUpsertBulk) SetBreed(v string) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetBreed(v)
	})
}

// UpdateBreed sets the "breed" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateBreed() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateBreed()
	})
}

// ClearBreed clears the value of the "breed" field.
func (u *PetUpsertBulk) ClearBreed() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.ClearBreed()
	})
}

// SetGender sets the "gender" field.
func (u *PetUpsertBulk) SetGender(v pet.Gender) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateGender() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateGender()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *PetUpsertBulk) SetWeightKg(v float64) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *PetUpsertBulk) AddWeightKg(v float64) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateWeightKg() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *PetUpsertBulk) ClearWeightKg() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.ClearWeightKg()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *PetUpsertBulk) SetDateOfBirth(v time.Time) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateDateOfBirth() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *PetUpsertBulk) ClearDateOfBirth() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *PetUpsertBulk) SetAvatarKey(v string) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateAvatarKey() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *PetUpsertBulk) ClearAvatarKey() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.ClearAvatarKey()
	})
}

// SetMedicalNotesEnc sets the "medical_notes_enc" field.
func (u *PetUpsertBulk) SetMedicalNotesEnc(v string) *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.SetMedicalNotesEnc(v)
	})
}

// UpdateMedicalNotesEnc sets the "medical_notes_enc" field to the value that was provided on create.
func (u *PetUpsertBulk) UpdateMedicalNotesEnc() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.UpdateMedicalNotesEnc()
	})
}

// ClearMedicalNotesEnc clears the value of the "medical_notes_enc" field.
func (u *PetUpsertBulk) ClearMedicalNotesEnc() *PetUpsertBulk {
	return u.Update(func(s *PetUpsert) {
		s.ClearMedicalNotesEnc()
	})
}

// Exec executes the query.
func (u *PetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
