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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
)

// ClinicUpdate is the builder for updating Clinic entities.
type ClinicUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdate) Where(ps ...predicate.Clinic) *ClinicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdate) SetUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicUpdate) SetDeletedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDeletedAt(v *time.Time) *ClinicUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicUpdate) ClearDeletedAt() *ClinicUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ClinicUpdate) SetOwnerID(v uuid.UUID) *ClinicUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableOwnerID(v *uuid.UUID) *ClinicUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdate) SetName(v string) *ClinicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdate) SetSlug(v string) *ClinicUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableSlug(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicUpdate) SetDescription(v string) *ClinicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDescription(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicUpdate) ClearDescription() *ClinicUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *ClinicUpdate) SetLogoKey(v string) *ClinicUpdate {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableLogoKey(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *ClinicUpdate) ClearLogoKey() *ClinicUpdate {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicUpdate) SetPhone(v string) *ClinicUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePhone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClinicUpdate) SetEmail(v string) *ClinicUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableEmail(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClinicUpdate) ClearEmail() *ClinicUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClinicUpdate) SetAddress(v string) *ClinicUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableAddress(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetWard sets the "ward" field.
func (_u *ClinicUpdate) SetWard(v string) *ClinicUpdate {
	_u.mutation.SetWard(v)
	return _u
}

// SetNillableWard sets the "ward" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableWard(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetWard(*v)
	}
	return _u
}

// ClearWard clears the value of the "ward" field.
func (_u *ClinicUpdate) ClearWard() *ClinicUpdate {
	_u.mutation.ClearWard()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *ClinicUpdate) SetDistrict(v string) *ClinicUpdate {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDistrict(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *ClinicUpdate) ClearDistrict() *ClinicUpdate {
	_u.mutation.ClearDistrict()
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicUpdate) SetCity(v string) *ClinicUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableCity(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ClinicUpdate) ClearCity() *ClinicUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (_u *ClinicUpdate) SetLicenseNumberEnc(v string) *ClinicUpdate {
	_u.mutation.SetLicenseNumberEnc(v)
	return _u
}

// SetNillableLicenseNumberEnc sets the "license_number_enc" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableLicenseNumberEnc(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetLicenseNumberEnc(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClinicUpdate) SetStatus(v clinic.Status) *ClinicUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableStatus(v *clinic.Status) *ClinicUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewNote sets the "review_note" field.
func (_u *ClinicUpdate) SetReviewNote(v string) *ClinicUpdate {
	_u.mutation.SetReviewNote(v)
	return _u
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableReviewNote(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetReviewNote(*v)
	}
	return _u
}

// ClearReviewNote clears the value of the "review_note" field.
func (_u *ClinicUpdate) ClearReviewNote() *ClinicUpdate {
	_u.mutation.ClearReviewNote()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ClinicUpdate) SetReviewedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableReviewedAt(v *time.Time) *ClinicUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ClinicUpdate) ClearReviewedAt() *ClinicUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// AddVeterinarianIDs adds the "veterinarians" edge to the Veterinarian entity by IDs.
func (_u *ClinicUpdate) AddVeterinarianIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.AddVeterinarianIDs(ids...)
	return _u
}

// AddVeterinarians adds the "veterinarians" edges to the Veterinarian entity.
func (_u *ClinicUpdate) AddVeterinarians(v ...*Veterinarian) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVeterinarianIDs(ids...)
}

// AddServiceIDs adds the "services" edge to the ServiceItem entity by IDs.
func (_u *ClinicUpdate) AddServiceIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the ServiceItem entity.
func (_u *ClinicUpdate) AddServices(v ...*ServiceItem) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdate) Mutation() *ClinicMutation {
	return _u.mutation
}

// ClearVeterinarians clears all "veterinarians" edges to the Veterinarian entity.
func (_u *ClinicUpdate) ClearVeterinarians() *ClinicUpdate {
	_u.mutation.ClearVeterinarians()
	return _u
}

// RemoveVeterinarianIDs removes the "veterinarians" edge to Veterinarian entities by IDs.
func (_u *ClinicUpdate) RemoveVeterinarianIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.RemoveVeterinarianIDs(ids...)
	return _u
}

// RemoveVeterinarians removes "veterinarians" edges to Veterinarian entities.
func (_u *ClinicUpdate) RemoveVeterinarians(v ...*Veterinarian) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVeterinarianIDs(ids...)
}

// ClearServices clears all "services" edges to the ServiceItem entity.
func (_u *ClinicUpdate) ClearServices() *ClinicUpdate {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to ServiceItem entities by IDs.
func (_u *ClinicUpdate) RemoveServiceIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to ServiceItem entities.
func (_u *ClinicUpdate) RemoveServices(v ...*ServiceItem) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogoKey(); ok {
		if err := clinic.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "Clinic.logo_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Clinic.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clinic.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Clinic.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := clinic.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "Clinic.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ward(); ok {
		if err := clinic.WardValidator(v); err != nil {
			return &ValidationError{Name: "ward", err: fmt.Errorf(`repo: validator failed for field "Clinic.ward": %w`, err)}
		}
	}
	if v, ok := _u.mutation.District(); ok {
		if err := clinic.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`repo: validator failed for field "Clinic.district": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumberEnc(); ok {
		if err := clinic.LicenseNumberEncValidator(v); err != nil {
			return &ValidationError{Name: "license_number_enc", err: fmt.Errorf(`repo: validator failed for field "Clinic.license_number_enc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clinic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Clinic.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(clinic.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(clinic.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(clinic.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clinic.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clinic.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ward(); ok {
		_spec.SetField(clinic.FieldWard, field.TypeString, value)
	}
	if _u.mutation.WardCleared() {
		_spec.ClearField(clinic.FieldWard, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(clinic.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(clinic.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(clinic.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNumberEnc(); ok {
		_spec.SetField(clinic.FieldLicenseNumberEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clinic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewNote(); ok {
		_spec.SetField(clinic.FieldReviewNote, field.TypeString, value)
	}
	if _u.mutation.ReviewNoteCleared() {
		_spec.ClearField(clinic.FieldReviewNote, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(clinic.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(clinic.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.VeterinariansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.VeterinariansTable,
			Columns: []string{clinic.VeterinariansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVeterinariansIDs(); len(nodes) > 0 && !_u.mutation.VeterinariansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.VeterinariansTable,
			Columns: []string{clinic.VeterinariansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VeterinariansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.VeterinariansTable,
			Columns: []string{clinic.VeterinariansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID),
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
			Table:   clinic.ServicesTable,
			Columns: []string{clinic.ServicesColumn},
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
			Table:   clinic.ServicesTable,
			Columns: []string{clinic.ServicesColumn},
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
			Table:   clinic.ServicesTable,
			Columns: []string{clinic.ServicesColumn},
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
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicUpdateOne is the builder for updating a single Clinic entity.
type ClinicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdateOne) SetUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicUpdateOne) SetDeletedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDeletedAt(v *time.Time) *ClinicUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicUpdateOne) ClearDeletedAt() *ClinicUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ClinicUpdateOne) SetOwnerID(v uuid.UUID) *ClinicUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ClinicUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdateOne) SetName(v string) *ClinicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdateOne) SetSlug(v string) *ClinicUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableSlug(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicUpdateOne) SetDescription(v string) *ClinicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDescription(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicUpdateOne) ClearDescription() *ClinicUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetLogoKey sets the "logo_key" field.
func (_u *ClinicUpdateOne) SetLogoKey(v string) *ClinicUpdateOne {
	_u.mutation.SetLogoKey(v)
	return _u
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableLogoKey(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetLogoKey(*v)
	}
	return _u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (_u *ClinicUpdateOne) ClearLogoKey() *ClinicUpdateOne {
	_u.mutation.ClearLogoKey()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicUpdateOne) SetPhone(v string) *ClinicUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePhone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClinicUpdateOne) SetEmail(v string) *ClinicUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableEmail(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClinicUpdateOne) ClearEmail() *ClinicUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClinicUpdateOne) SetAddress(v string) *ClinicUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableAddress(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetWard sets the "ward" field.
func (_u *ClinicUpdateOne) SetWard(v string) *ClinicUpdateOne {
	_u.mutation.SetWard(v)
	return _u
}

// SetNillableWard sets the "ward" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableWard(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetWard(*v)
	}
	return _u
}

// ClearWard clears the value of the "ward" field.
func (_u *ClinicUpdateOne) ClearWard() *ClinicUpdateOne {
	_u.mutation.ClearWard()
	return _u
}

// SetDistrict sets the "district" field.
func (_u *ClinicUpdateOne) SetDistrict(v string) *ClinicUpdateOne {
	_u.mutation.SetDistrict(v)
	return _u
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDistrict(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetDistrict(*v)
	}
	return _u
}

// ClearDistrict clears the value of the "district" field.
func (_u *ClinicUpdateOne) ClearDistrict() *ClinicUpdateOne {
	_u.mutation.ClearDistrict()
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicUpdateOne) SetCity(v string) *ClinicUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableCity(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ClinicUpdateOne) ClearCity() *ClinicUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (_u *ClinicUpdateOne) SetLicenseNumberEnc(v string) *ClinicUpdateOne {
	_u.mutation.SetLicenseNumberEnc(v)
	return _u
}

// SetNillableLicenseNumberEnc sets the "license_number_enc" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableLicenseNumberEnc(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetLicenseNumberEnc(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClinicUpdateOne) SetStatus(v clinic.Status) *ClinicUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableStatus(v *clinic.Status) *ClinicUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewNote sets the "review_note" field.
func (_u *ClinicUpdateOne) SetReviewNote(v string) *ClinicUpdateOne {
	_u.mutation.SetReviewNote(v)
	return _u
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableReviewNote(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetReviewNote(*v)
	}
	return _u
}

// ClearReviewNote clears the value of the "review_note" field.
func (_u *ClinicUpdateOne) ClearReviewNote() *ClinicUpdateOne {
	_u.mutation.ClearReviewNote()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ClinicUpdateOne) SetReviewedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableReviewedAt(v *time.Time) *ClinicUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ClinicUpdateOne) ClearReviewedAt() *ClinicUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// AddVeterinarianIDs adds the "veterinarians" edge to the Veterinarian entity by IDs.
func (_u *ClinicUpdateOne) AddVeterinarianIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.AddVeterinarianIDs(ids...)
	return _u
}

// AddVeterinarians adds the "veterinarians" edges to the Veterinarian entity.
func (_u *ClinicUpdateOne) AddVeterinarians(v ...*Veterinarian) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVeterinarianIDs(ids...)
}

// AddServiceIDs adds the "services" edge to the ServiceItem entity by IDs.
func (_u *ClinicUpdateOne) AddServiceIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.AddServiceIDs(ids...)
	return _u
}

// AddServices adds the "services" edges to the ServiceItem entity.
func (_u *ClinicUpdateOne) AddServices(v ...*ServiceItem) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddServiceIDs(ids...)
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdateOne) Mutation() *ClinicMutation {
	return _u.mutation
}

// ClearVeterinarians clears all "veterinarians" edges to the Veterinarian entity.
func (_u *ClinicUpdateOne) ClearVeterinarians() *ClinicUpdateOne {
	_u.mutation.ClearVeterinarians()
	return _u
}

// RemoveVeterinarianIDs removes the "veterinarians" edge to Veterinarian entities by IDs.
func (_u *ClinicUpdateOne) RemoveVeterinarianIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.RemoveVeterinarianIDs(ids...)
	return _u
}

// RemoveVeterinarians removes "veterinarians" edges to Veterinarian entities.
func (_u *ClinicUpdateOne) RemoveVeterinarians(v ...*Veterinarian) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVeterinarianIDs(ids...)
}

// ClearServices clears all "services" edges to the ServiceItem entity.
func (_u *ClinicUpdateOne) ClearServices() *ClinicUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// RemoveServiceIDs removes the "services" edge to ServiceItem entities by IDs.
func (_u *ClinicUpdateOne) RemoveServiceIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.RemoveServiceIDs(ids...)
	return _u
}

// RemoveServices removes "services" edges to ServiceItem entities.
func (_u *ClinicUpdateOne) RemoveServices(v ...*ServiceItem) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveServiceIDs(ids...)
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdateOne) Where(ps ...predicate.Clinic) *ClinicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicUpdateOne) Select(field string, fields ...string) *ClinicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clinic entity.
func (_u *ClinicUpdateOne) Save(ctx context.Context) (*Clinic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdateOne) SaveX(ctx context.Context) *Clinic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LogoKey(); ok {
		if err := clinic.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "Clinic.logo_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Clinic.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clinic.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Clinic.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := clinic.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "Clinic.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ward(); ok {
		if err := clinic.WardValidator(v); err != nil {
			return &ValidationError{Name: "ward", err: fmt.Errorf(`repo: validator failed for field "Clinic.ward": %w`, err)}
		}
	}
	if v, ok := _u.mutation.District(); ok {
		if err := clinic.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`repo: validator failed for field "Clinic.district": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumberEnc(); ok {
		if err := clinic.LicenseNumberEncValidator(v); err != nil {
			return &ValidationError{Name: "license_number_enc", err: fmt.Errorf(`repo: validator failed for field "Clinic.license_number_enc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clinic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Clinic.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdateOne) sqlSave(ctx context.Context) (_node *Clinic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Clinic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinic.FieldID)
		for _, f := range fields {
			if !clinic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinic.FieldID {
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
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(clinic.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.LogoKey(); ok {
		_spec.SetField(clinic.FieldLogoKey, field.TypeString, value)
	}
	if _u.mutation.LogoKeyCleared() {
		_spec.ClearField(clinic.FieldLogoKey, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clinic.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clinic.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ward(); ok {
		_spec.SetField(clinic.FieldWard, field.TypeString, value)
	}
	if _u.mutation.WardCleared() {
		_spec.ClearField(clinic.FieldWard, field.TypeString)
	}
	if value, ok := _u.mutation.District(); ok {
		_spec.SetField(clinic.FieldDistrict, field.TypeString, value)
	}
	if _u.mutation.DistrictCleared() {
		_spec.ClearField(clinic.FieldDistrict, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(clinic.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNumberEnc(); ok {
		_spec.SetField(clinic.FieldLicenseNumberEnc, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clinic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewNote(); ok {
		_spec.SetField(clinic.FieldReviewNote, field.TypeString, value)
	}
	if _u.mutation.ReviewNoteCleared() {
		_spec.ClearField(clinic.FieldReviewNote, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(clinic.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(clinic.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.VeterinariansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.VeterinariansTable,
			Columns: []string{clinic.VeterinariansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVeterinariansIDs(); len(nodes) > 0 && !_u.mutation.VeterinariansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.VeterinariansTable,
			Columns: []string{clinic.VeterinariansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VeterinariansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.VeterinariansTable,
			Columns: []string{clinic.VeterinariansColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(veterinarian.FieldID, field.TypeUUID),
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
			Table:   clinic.ServicesTable,
			Columns: []string{clinic.ServicesColumn},
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
			Table:   clinic.ServicesTable,
			Columns: []string{clinic.ServicesColumn},
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
			Table:   clinic.ServicesTable,
			Columns: []string{clinic.ServicesColumn},
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
	_node = &Clinic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
