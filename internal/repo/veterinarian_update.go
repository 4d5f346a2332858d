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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
)

// VeterinarianUpdate is the builder for updating Veterinarian entities.
type VeterinarianUpdate struct {
	config
	hooks    []Hook
	mutation *VeterinarianMutation
}

// Where appends a list predicates to the VeterinarianUpdate builder.
func (_u *VeterinarianUpdate) Where(ps ...predicate.Veterinarian) *VeterinarianUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VeterinarianUpdate) SetUpdatedAt(v time.Time) *VeterinarianUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *VeterinarianUpdate) SetDeletedAt(v time.Time) *VeterinarianUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableDeletedAt(v *time.Time) *VeterinarianUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *VeterinarianUpdate) ClearDeletedAt() *VeterinarianUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *VeterinarianUpdate) SetClinicID(v uuid.UUID) *VeterinarianUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableClinicID(v *uuid.UUID) *VeterinarianUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *VeterinarianUpdate) SetFullName(v string) *VeterinarianUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableFullName(v *string) *VeterinarianUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *VeterinarianUpdate) SetPhone(v string) *VeterinarianUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillablePhone(v *string) *VeterinarianUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *VeterinarianUpdate) ClearPhone() *VeterinarianUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *VeterinarianUpdate) SetEmail(v string) *VeterinarianUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableEmail(v *string) *VeterinarianUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *VeterinarianUpdate) ClearEmail() *VeterinarianUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *VeterinarianUpdate) SetSpecialty(v string) *VeterinarianUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableSpecialty(v *string) *VeterinarianUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *VeterinarianUpdate) ClearSpecialty() *VeterinarianUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (_u *VeterinarianUpdate) SetLicenseNumberEnc(v string) *VeterinarianUpdate {
	_u.mutation.SetLicenseNumberEnc(v)
	return _u
}

// SetNillableLicenseNumberEnc sets the "license_number_enc" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableLicenseNumberEnc(v *string) *VeterinarianUpdate {
	if v != nil {
		_u.SetLicenseNumberEnc(*v)
	}
	return _u
}

// ClearLicenseNumberEnc clears the value of the "license_number_enc" field.
func (_u *VeterinarianUpdate) ClearLicenseNumberEnc() *VeterinarianUpdate {
	_u.mutation.ClearLicenseNumberEnc()
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *VeterinarianUpdate) SetYearsExperience(v int) *VeterinarianUpdate {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableYearsExperience(v *int) *VeterinarianUpdate {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *VeterinarianUpdate) AddYearsExperience(v int) *VeterinarianUpdate {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *VeterinarianUpdate) SetAvatarKey(v string) *VeterinarianUpdate {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableAvatarKey(v *string) *VeterinarianUpdate {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *VeterinarianUpdate) ClearAvatarKey() *VeterinarianUpdate {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *VeterinarianUpdate) SetIsActive(v bool) *VeterinarianUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *VeterinarianUpdate) SetNillableIsActive(v *bool) *VeterinarianUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *VeterinarianUpdate) SetClinic(v *Clinic) *VeterinarianUpdate {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the VeterinarianMutation object of the builder.
func (_u *VeterinarianUpdate) Mutation() *VeterinarianMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *VeterinarianUpdate) ClearClinic() *VeterinarianUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VeterinarianUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VeterinarianUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VeterinarianUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VeterinarianUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VeterinarianUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := veterinarian.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VeterinarianUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := veterinarian.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := veterinarian.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := veterinarian.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := veterinarian.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsExperience(); ok {
		if err := veterinarian.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.years_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := veterinarian.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.avatar_key": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Veterinarian.clinic"`)
	}
	return nil
}

func (_u *VeterinarianUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(veterinarian.Table, veterinarian.Columns, sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(veterinarian.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(veterinarian.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(veterinarian.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(veterinarian.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(veterinarian.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(veterinarian.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(veterinarian.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(veterinarian.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(veterinarian.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(veterinarian.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNumberEnc(); ok {
		_spec.SetField(veterinarian.FieldLicenseNumberEnc, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberEncCleared() {
		_spec.ClearField(veterinarian.FieldLicenseNumberEnc, field.TypeString)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(veterinarian.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(veterinarian.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(veterinarian.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(veterinarian.FieldAvatarKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(veterinarian.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{veterinarian.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VeterinarianUpdateOne is the builder for updating a single Veterinarian entity.
type VeterinarianUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VeterinarianMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VeterinarianUpdateOne) SetUpdatedAt(v time.Time) *VeterinarianUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *VeterinarianUpdateOne) SetDeletedAt(v time.Time) *VeterinarianUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableDeletedAt(v *time.Time) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *VeterinarianUpdateOne) ClearDeletedAt() *VeterinarianUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *VeterinarianUpdateOne) SetClinicID(v uuid.UUID) *VeterinarianUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableClinicID(v *uuid.UUID) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *VeterinarianUpdateOne) SetFullName(v string) *VeterinarianUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableFullName(v *string) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *VeterinarianUpdateOne) SetPhone(v string) *VeterinarianUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillablePhone(v *string) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *VeterinarianUpdateOne) ClearPhone() *VeterinarianUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *VeterinarianUpdateOne) SetEmail(v string) *VeterinarianUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableEmail(v *string) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *VeterinarianUpdateOne) ClearEmail() *VeterinarianUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *VeterinarianUpdateOne) SetSpecialty(v string) *VeterinarianUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableSpecialty(v *string) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *VeterinarianUpdateOne) ClearSpecialty() *VeterinarianUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (_u *VeterinarianUpdateOne) SetLicenseNumberEnc(v string) *VeterinarianUpdateOne {
	_u.mutation.SetLicenseNumberEnc(v)
	return _u
}

// SetNillableLicenseNumberEnc sets the "license_number_enc" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableLicenseNumberEnc(v *string) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetLicenseNumberEnc(*v)
	}
	return _u
}

// ClearLicenseNumberEnc clears the value of the "license_number_enc" field.
func (_u *VeterinarianUpdateOne) ClearLicenseNumberEnc() *VeterinarianUpdateOne {
	_u.mutation.ClearLicenseNumberEnc()
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *VeterinarianUpdateOne) SetYearsExperience(v int) *VeterinarianUpdateOne {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableYearsExperience(v *int) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *VeterinarianUpdateOne) AddYearsExperience(v int) *VeterinarianUpdateOne {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *VeterinarianUpdateOne) SetAvatarKey(v string) *VeterinarianUpdateOne {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableAvatarKey(v *string) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *VeterinarianUpdateOne) ClearAvatarKey() *VeterinarianUpdateOne {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *VeterinarianUpdateOne) SetIsActive(v bool) *VeterinarianUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *VeterinarianUpdateOne) SetNillableIsActive(v *bool) *VeterinarianUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *VeterinarianUpdateOne) SetClinic(v *Clinic) *VeterinarianUpdateOne {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the VeterinarianMutation object of the builder.
func (_u *VeterinarianUpdateOne) Mutation() *VeterinarianMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *VeterinarianUpdateOne) ClearClinic() *VeterinarianUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// Where appends a list predicates to the VeterinarianUpdate builder.
func (_u *VeterinarianUpdateOne) Where(ps ...predicate.Veterinarian) *VeterinarianUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VeterinarianUpdateOne) Select(field string, fields ...string) *VeterinarianUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Veterinarian entity.
func (_u *VeterinarianUpdateOne) Save(ctx context.Context) (*Veterinarian, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VeterinarianUpdateOne) SaveX(ctx context.Context) *Veterinarian {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VeterinarianUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VeterinarianUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VeterinarianUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := veterinarian.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VeterinarianUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := veterinarian.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := veterinarian.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := veterinarian.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := veterinarian.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsExperience(); ok {
		if err := veterinarian.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.years_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := veterinarian.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Veterinarian.avatar_key": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Veterinarian.clinic"`)
	}
	return nil
}

func (_u *VeterinarianUpdateOne) sqlSave(ctx context.Context) (_node *Veterinarian, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(veterinarian.Table, veterinarian.Columns, sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Veterinarian.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, veterinarian.FieldID)
		for _, f := range fields {
			if !veterinarian.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != veterinarian.FieldID {
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
		_spec.SetField(veterinarian.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(veterinarian.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(veterinarian.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(veterinarian.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(veterinarian.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(veterinarian.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(veterinarian.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(veterinarian.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(veterinarian.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(veterinarian.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNumberEnc(); ok {
		_spec.SetField(veterinarian.FieldLicenseNumberEnc, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberEncCleared() {
		_spec.ClearField(veterinarian.FieldLicenseNumberEnc, field.TypeString)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(veterinarian.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(veterinarian.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(veterinarian.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(veterinarian.FieldAvatarKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(veterinarian.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Veterinarian{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{veterinarian.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
