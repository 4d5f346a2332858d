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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
)

// VeterinarianCreate is the builder for creating a Veterinarian entity.
type VeterinarianCreate struct {
	config
	mutation *VeterinarianMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VeterinarianCreate) SetCreatedAt(v time.Time) *VeterinarianCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableCreatedAt(v *time.Time) *VeterinarianCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VeterinarianCreate) SetUpdatedAt(v time.Time) *VeterinarianCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableUpdatedAt(v *time.Time) *VeterinarianCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *VeterinarianCreate) SetDeletedAt(v time.Time) *VeterinarianCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableDeletedAt(v *time.Time) *VeterinarianCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *VeterinarianCreate) SetClinicID(v uuid.UUID) *VeterinarianCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *VeterinarianCreate) SetFullName(v string) *VeterinarianCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *VeterinarianCreate) SetPhone(v string) *VeterinarianCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillablePhone(v *string) *VeterinarianCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *VeterinarianCreate) SetEmail(v string) *VeterinarianCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableEmail(v *string) *VeterinarianCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *VeterinarianCreate) SetSpecialty(v string) *VeterinarianCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableSpecialty(v *string) *VeterinarianCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (_c *VeterinarianCreate) SetLicenseNumberEnc(v string) *VeterinarianCreate {
	_c.mutation.SetLicenseNumberEnc(v)
	return _c
}

// SetNillableLicenseNumberEnc sets the "license_number_enc" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableLicenseNumberEnc(v *string) *VeterinarianCreate {
	if v != nil {
		_c.SetLicenseNumberEnc(*v)
	}
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *VeterinarianCreate) SetYearsExperience(v int) *VeterinarianCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableYearsExperience(v *int) *VeterinarianCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetAvatarKey sets the "avatar_key" field.
func (_c *VeterinarianCreate) SetAvatarKey(v string) *VeterinarianCreate {
	_c.mutation.SetAvatarKey(v)
	return _c
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableAvatarKey(v *string) *VeterinarianCreate {
	if v != nil {
		_c.SetAvatarKey(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *VeterinarianCreate) SetIsActive(v bool) *VeterinarianCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableIsActive(v *bool) *VeterinarianCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VeterinarianCreate) SetID(v uuid.UUID) *VeterinarianCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VeterinarianCreate) SetNillableID(v *uuid.UUID) *VeterinarianCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *VeterinarianCreate) SetClinic(v *Clinic) *VeterinarianCreate {
	return _c.SetClinicID(v.ID)
}

// Mutation returns the VeterinarianMutation object of the builder.
func (_c *VeterinarianCreate) Mutation() *VeterinarianMutation {
	return _c.mutation
}

// Save creates the Veterinarian in the database.
func (_c *VeterinarianCreate) Save(ctx context.Context) (*Veterinarian, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VeterinarianCreate) SaveX(ctx context.Context) *Veterinarian {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VeterinarianCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VeterinarianCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VeterinarianCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := veterinarian.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := veterinarian.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		v := veterinarian.DefaultYearsExperience
		_c.mutation.SetYearsExperience(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := veterinarian.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := veterinarian.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VeterinarianCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Veterinarian.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Veterinarian.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Veterinarian.clinic_id"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Veterinarian.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := veterinarian.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.full_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := veterinarian.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := veterinarian.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Specialty(); ok {
		if err := veterinarian.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.specialty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		return &ValidationError{Name: "years_experience", err: errors.New(`repo: missing required field "Veterinarian.years_experience"`)}
	}
	if v, ok := _c.mutation.YearsExperience(); ok {
		if err := veterinarian.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.years_experience": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AvatarKey(); ok {
		if err := veterinarian.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.avatar_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Veterinarian.is_active"`)}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "Veterinarian.clinic"`)}
	}
	return nil
}

func (_c *VeterinarianCreate) sqlSave(ctx context.Context) (*Veterinarian, error) {
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

func (_c *VeterinarianCreate) createSpec() (*Veterinarian, *sqlgraph.CreateSpec) {
	var (
		_node = &Veterinarian{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(veterinarian.Table, sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(veterinarian.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(veterinarian.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(veterinarian.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(veterinarian.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(veterinarian.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(veterinarian.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(veterinarian.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.LicenseNumberEnc(); ok {
		_spec.SetField(veterinarian.FieldLicenseNumberEnc, field.TypeString, value)
		_node.LicenseNumberEnc = &value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(veterinarian.FieldYearsExperience, field.TypeInt, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.AvatarKey(); ok {
		_spec.SetField(veterinarian.FieldAvatarKey, field.TypeString, value)
		_node.AvatarKey = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(veterinarian.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   veterinarian.ClinicTable,
			Columns: []string{veterinarian.ClinicColumn},
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
//	client.Veterinarian.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VeterinarianUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VeterinarianCreate) OnConflict(opts ...sql.ConflictOption) *VeterinarianUpsertOne {
	_c.conflict = opts
	return &VeterinarianUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Veterinarian.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VeterinarianCreate) OnConflictColumns(columns ...string) *VeterinarianUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VeterinarianUpsertOne{
		create: _c,
	}
}

type (
	// VeterinarianUpsertOne is the builder for "upsert"-ing
	//  one Veterinarian node.
	VeterinarianUpsertOne struct {
		create *VeterinarianCreate
	}

	// VeterinarianUpsert is the "OnConflict" setter.
	VeterinarianUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VeterinarianUpsert) SetUpdatedAt(v time.Time) *VeterinarianUpsert {
	u.Set(veterinarian.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateUpdatedAt() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *VeterinarianUpsert) SetDeletedAt(v time.Time) *VeterinarianUpsert {
	u.Set(veterinarian.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateDeletedAt() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *VeterinarianUpsert) ClearDeletedAt() *VeterinarianUpsert {
	u.SetNull(veterinarian.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *VeterinarianUpsert) SetClinicID(v uuid.UUID) *VeterinarianUpsert {
	u.Set(veterinarian.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateClinicID() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldClinicID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *VeterinarianUpsert) SetFullName(v string) *VeterinarianUpsert {
	u.Set(veterinarian.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateFullName() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldFullName)
	return u
}

// SetPhone sets the "phone" field.
func (u *VeterinarianUpsert) SetPhone(v string) *VeterinarianUpsert {
	u.Set(veterinarian.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdatePhone() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *VeterinarianUpsert) ClearPhone() *VeterinarianUpsert {
	u.SetNull(veterinarian.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *VeterinarianUpsert) SetEmail(v string) *VeterinarianUpsert {
	u.Set(veterinarian.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateEmail() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *VeterinarianUpsert) ClearEmail() *VeterinarianUpsert {
	u.SetNull(veterinarian.FieldEmail)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *VeterinarianUpsert) SetSpecialty(v string) *VeterinarianUpsert {
	u.Set(veterinarian.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateSpecialty() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldSpecialty)
	return u
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *VeterinarianUpsert) ClearSpecialty() *VeterinarianUpsert {
	u.SetNull(veterinarian.FieldSpecialty)
	return u
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (u *VeterinarianUpsert) SetLicenseNumberEnc(v string) *VeterinarianUpsert {
	u.Set(veterinarian.FieldLicenseNumberEnc, v)
	return u
}

// UpdateLicenseNumberEnc sets the "license_number_enc" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateLicenseNumberEnc() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldLicenseNumberEnc)
	return u
}

// ClearLicenseNumberEnc clears the value of the "license_number_enc" field.
func (u *VeterinarianUpsert) ClearLicenseNumberEnc() *VeterinarianUpsert {
	u.SetNull(veterinarian.FieldLicenseNumberEnc)
	return u
}

// SetYearsExperience sets the "years_experience" field.
func (u *VeterinarianUpsert) SetYearsExperience(v int) *VeterinarianUpsert {
	u.Set(veterinarian.FieldYearsExperience, v)
	return u
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateYearsExperience() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldYearsExperience)
	return u
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *VeterinarianUpsert) AddYearsExperience(v int) *VeterinarianUpsert {
	u.Add(veterinarian.FieldYearsExperience, v)
	return u
}

// SetAvatarKey sets the "avatar_key" field.
func (u *VeterinarianUpsert) SetAvatarKey(v string) *VeterinarianUpsert {
	u.Set(veterinarian.FieldAvatarKey, v)
	return u
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateAvatarKey() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldAvatarKey)
	return u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *VeterinarianUpsert) ClearAvatarKey() *VeterinarianUpsert {
	u.SetNull(veterinarian.FieldAvatarKey)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *VeterinarianUpsert) SetIsActive(v bool) *VeterinarianUpsert {
	u.Set(veterinarian.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *VeterinarianUpsert) UpdateIsActive() *VeterinarianUpsert {
	u.SetExcluded(veterinarian.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Veterinarian.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(veterinarian.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VeterinarianUpsertOne) UpdateNewValues() *VeterinarianUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(veterinarian.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(veterinarian.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Veterinarian.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VeterinarianUpsertOne) Ignore() *VeterinarianUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VeterinarianUpsertOne) DoNothing() *VeterinarianUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VeterinarianCreate.OnConflict
// documentation for more info.
func (u *VeterinarianUpsertOne) Update(set func(*VeterinarianUpsert)) *VeterinarianUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VeterinarianUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VeterinarianUpsertOne) SetUpdatedAt(v time.Time) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateUpdatedAt() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *VeterinarianUpsertOne) SetDeletedAt(v time.Time) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateDeletedAt() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *VeterinarianUpsertOne) ClearDeletedAt() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *VeterinarianUpsertOne) SetClinicID(v uuid.UUID) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateClinicID() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateClinicID()
	})
}

// SetFullName sets the "full_name" field.
func (u *VeterinarianUpsertOne) SetFullName(v string) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateFullName() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateFullName()
	})
}

// SetPhone sets the "phone" field.
func (u *VeterinarianUpsertOne) SetPhone(v string) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdatePhone() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *VeterinarianUpsertOne) ClearPhone() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *VeterinarianUpsertOne) SetEmail(v string) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateEmail() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *VeterinarianUpsertOne) ClearEmail() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearEmail()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *VeterinarianUpsertOne) SetSpecialty(v string) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateSpecialty() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *VeterinarianUpsertOne) ClearSpecialty() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearSpecialty()
	})
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (u *VeterinarianUpsertOne) SetLicenseNumberEnc(v string) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetLicenseNumberEnc(v)
	})
}

// UpdateLicenseNumberEnc sets the "license_number_enc" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateLicenseNumberEnc() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateLicenseNumberEnc()
	})
}

// ClearLicenseNumberEnc clears the value of the "license_number_enc" field.
func (u *VeterinarianUpsertOne) ClearLicenseNumberEnc() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearLicenseNumberEnc()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *VeterinarianUpsertOne) SetYearsExperience(v int) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *VeterinarianUpsertOne) AddYearsExperience(v int) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateYearsExperience() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateYearsExperience()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *VeterinarianUpsertOne) SetAvatarKey(v string) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateAvatarKey() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *VeterinarianUpsertOne) ClearAvatarKey() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearAvatarKey()
	})
}

// SetIsActive sets the "is_active" field.
func (u *VeterinarianUpsertOne) SetIsActive(v bool) *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *VeterinarianUpsertOne) UpdateIsActive() *VeterinarianUpsertOne {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *VeterinarianUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VeterinarianCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VeterinarianUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VeterinarianUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: VeterinarianUpsertOne.ID is not supported by MySQL driver. Use VeterinarianUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VeterinarianUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VeterinarianCreateBulk is the builder for creating many Veterinarian entities in bulk.
type VeterinarianCreateBulk struct {
	config
	err      error
	builders []*VeterinarianCreate
	conflict []sql.ConflictOption
}

// Save creates the Veterinarian entities in the database.
func (_c *VeterinarianCreateBulk) Save(ctx context.Context) ([]*Veterinarian, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Veterinarian, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VeterinarianMutation)
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
func (_c *VeterinarianCreateBulk) SaveX(ctx context.Context) []*Veterinarian {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VeterinarianCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VeterinarianCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Veterinarian.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VeterinarianUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VeterinarianCreateBulk) OnConflict(opts ...sql.ConflictOption) *VeterinarianUpsertBulk {
	_c.conflict = opts
	return &VeterinarianUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Veterinarian.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VeterinarianCreateBulk) OnConflictColumns(columns ...string) *VeterinarianUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VeterinarianUpsertBulk{
		create: _c,
	}
}

// VeterinarianUpsertBulk is the builder for "upsert"-ing
// a bulk of Veterinarian nodes.
type VeterinarianUpsertBulk struct {
	create *VeterinarianCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Veterinarian.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(veterinarian.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VeterinarianUpsertBulk) UpdateNewValues() *VeterinarianUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(veterinarian.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(veterinarian.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Veterinarian.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VeterinarianUpsertBulk) Ignore() *VeterinarianUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VeterinarianUpsertBulk) DoNothing() *VeterinarianUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VeterinarianCreateBulk.OnConflict
// documentation for more info.
func (u *VeterinarianUpsertBulk) Update(set func(*VeterinarianUpsert)) *VeterinarianUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VeterinarianUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VeterinarianUpsertBulk) SetUpdatedAt(v time.Time) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateUpdatedAt() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *VeterinarianUpsertBulk) SetDeletedAt(v time.Time) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateDeletedAt() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *VeterinarianUpsertBulk) ClearDeletedAt() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *VeterinarianUpsertBulk) SetClinicID(v uuid.UUID) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateClinicID() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateClinicID()
	})
}

// SetFullName sets the "full_name" field.
func (u *VeterinarianUpsertBulk) SetFullName(v string) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateFullName() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateFullName()
	})
}

// SetPhone sets the "phone" field.
func (u *VeterinarianUpsertBulk) SetPhone(v string) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdatePhone() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *VeterinarianUpsertBulk) ClearPhone() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *VeterinarianUpsertBulk) SetEmail(v string) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateEmail() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *VeterinarianUpsertBulk) ClearEmail() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearEmail()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *VeterinarianUpsertBulk) SetSpecialty(v string) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateSpecialty() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *VeterinarianUpsertBulk) ClearSpecialty() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearSpecialty()
	})
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (u *VeterinarianUpsertBulk) SetLicenseNumberEnc(v string) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetLicenseNumberEnc(v)
	})
}

// UpdateLicenseNumberEnc sets the "license_number_enc" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateLicenseNumberEnc() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateLicenseNumberEnc()
	})
}

// ClearLicenseNumberEnc clears the value of the "license_number_enc" field.
func (u *VeterinarianUpsertBulk) ClearLicenseNumberEnc() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearLicenseNumberEnc()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *VeterinarianUpsertBulk) SetYearsExperience(v int) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *VeterinarianUpsertBulk) AddYearsExperience(v int) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateYearsExperience() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateYearsExperience()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *VeterinarianUpsertBulk) SetAvatarKey(v string) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateAvatarKey() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *VeterinarianUpsertBulk) ClearAvatarKey() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.ClearAvatarKey()
	})
}

// SetIsActive sets the "is_active" field.
func (u *VeterinarianUpsertBulk) SetIsActive(v bool) *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *VeterinarianUpsertBulk) UpdateIsActive() *VeterinarianUpsertBulk {
	return u.Update(func(s *VeterinarianUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *VeterinarianUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the VeterinarianCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VeterinarianCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VeterinarianUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
