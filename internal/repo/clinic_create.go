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
	"github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
)

// ClinicCreate is the builder for creating a Clinic entity.
type ClinicCreate struct {
	config
	mutation *ClinicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCreate) SetCreatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCreatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCreate) SetUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClinicCreate) SetDeletedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDeletedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ClinicCreate) SetOwnerID(v uuid.UUID) *ClinicCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ClinicCreate) SetName(v string) *ClinicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ClinicCreate) SetSlug(v string) *ClinicCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicCreate) SetDescription(v string) *ClinicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDescription(v *string) *ClinicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLogoKey sets the "logo_key" field.
func (_c *ClinicCreate) SetLogoKey(v string) *ClinicCreate {
	_c.mutation.SetLogoKey(v)
	return _c
}

// SetNillableLogoKey sets the "logo_key" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableLogoKey(v *string) *ClinicCreate {
	if v != nil {
		_c.SetLogoKey(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClinicCreate) SetPhone(v string) *ClinicCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClinicCreate) SetEmail(v string) *ClinicCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableEmail(v *string) *ClinicCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ClinicCreate) SetAddress(v string) *ClinicCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetWard sets the "ward" field.
func (_c *ClinicCreate) SetWard(v string) *ClinicCreate {
	_c.mutation.SetWard(v)
	return _c
}

// SetNillableWard sets the "ward" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableWard(v *string) *ClinicCreate {
	if v != nil {
		_c.SetWard(*v)
	}
	return _c
}

// SetDistrict sets the "district" field.
func (_c *ClinicCreate) SetDistrict(v string) *ClinicCreate {
	_c.mutation.SetDistrict(v)
	return _c
}

// SetNillableDistrict sets the "district" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDistrict(v *string) *ClinicCreate {
	if v != nil {
		_c.SetDistrict(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ClinicCreate) SetCity(v string) *ClinicCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCity(v *string) *ClinicCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (_c *ClinicCreate) SetLicenseNumberEnc(v string) *ClinicCreate {
	_c.mutation.SetLicenseNumberEnc(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClinicCreate) SetStatus(v clinic.Status) *ClinicCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableStatus(v *clinic.Status) *ClinicCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewNote sets the "review_note" field.
func (_c *ClinicCreate) SetReviewNote(v string) *ClinicCreate {
	_c.mutation.SetReviewNote(v)
	return _c
}

// SetNillableReviewNote sets the "review_note" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableReviewNote(v *string) *ClinicCreate {
	if v != nil {
		_c.SetReviewNote(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ClinicCreate) SetReviewedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableReviewedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicCreate) SetID(v uuid.UUID) *ClinicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableID(v *uuid.UUID) *ClinicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVeterinarianIDs adds the "veterinarians" edge to the Veterinarian entity by IDs.
func (_c *ClinicCreate) AddVeterinarianIDs(ids ...uuid.UUID) *ClinicCreate {
	_c.mutation.AddVeterinarianIDs(ids...)
	return _c
}

// AddVeterinarians adds the "veterinarians" edges to the Veterinarian entity.
func (_c *ClinicCreate) AddVeterinarians(v ...*Veterinarian) *ClinicCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVeterinarianIDs(ids...)
}

// AddServiceIDs adds the "services" edge to the ServiceItem entity by IDs.
func (_c *ClinicCreate) AddServiceIDs(ids ...uuid.UUID) *ClinicCreate {
	_c.mutation.AddServiceIDs(ids...)
	return _c
}

// AddServices adds the "services" edges to the ServiceItem entity.
func (_c *ClinicCreate) AddServices(v ...*ServiceItem) *ClinicCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddServiceIDs(ids...)
}

// Mutation returns the ClinicMutation object of the builder.
func (_c *ClinicCreate) Mutation() *ClinicMutation {
	return _c.mutation
}

// Save creates the Clinic in the database.
func (_c *ClinicCreate) Save(ctx context.Context) (*Clinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCreate) SaveX(ctx context.Context) *Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := clinic.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Clinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Clinic.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`repo: missing required field "Clinic.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Clinic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Clinic.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LogoKey(); ok {
		if err := clinic.LogoKeyValidator(v); err != nil {
			return &ValidationError{Name: "logo_key", err: fmt.Errorf(`repo: validator failed for field "Clinic.logo_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "Clinic.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := clinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Clinic.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := clinic.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Clinic.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`repo: missing required field "Clinic.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := clinic.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "Clinic.address": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Ward(); ok {
		if err := clinic.WardValidator(v); err != nil {
			return &ValidationError{Name: "ward", err: fmt.Errorf(`repo: validator failed for field "Clinic.ward": %w`, err)}
		}
	}
	if v, ok := _c.mutation.District(); ok {
		if err := clinic.DistrictValidator(v); err != nil {
			return &ValidationError{Name: "district", err: fmt.Errorf(`repo: validator failed for field "Clinic.district": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LicenseNumberEnc(); !ok {
		return &ValidationError{Name: "license_number_enc", err: errors.New(`repo: missing required field "Clinic.license_number_enc"`)}
	}
	if v, ok := _c.mutation.LicenseNumberEnc(); ok {
		if err := clinic.LicenseNumberEncValidator(v); err != nil {
			return &ValidationError{Name: "license_number_enc", err: fmt.Errorf(`repo: validator failed for field "Clinic.license_number_enc": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Clinic.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clinic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Clinic.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ClinicCreate) sqlSave(ctx context.Context) (*Clinic, error) {
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

func (_c *ClinicCreate) createSpec() (*Clinic, *sqlgraph.CreateSpec) {
	var (
		_node = &Clinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinic.Table, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(clinic.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.LogoKey(); ok {
		_spec.SetField(clinic.FieldLogoKey, field.TypeString, value)
		_node.LogoKey = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(clinic.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Ward(); ok {
		_spec.SetField(clinic.FieldWard, field.TypeString, value)
		_node.Ward = &value
	}
	if value, ok := _c.mutation.District(); ok {
		_spec.SetField(clinic.FieldDistrict, field.TypeString, value)
		_node.District = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.LicenseNumberEnc(); ok {
		_spec.SetField(clinic.FieldLicenseNumberEnc, field.TypeString, value)
		_node.LicenseNumberEnc = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clinic.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewNote(); ok {
		_spec.SetField(clinic.FieldReviewNote, field.TypeString, value)
		_node.ReviewNote = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(clinic.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if nodes := _c.mutation.VeterinariansIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ServicesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Clinic.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCreate) OnConflict(opts ...sql.ConflictOption) *ClinicUpsertOne {
	_c.conflict = opts
	return &ClinicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCreate) OnConflictColumns(columns ...string) *ClinicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicUpsertOne{
		create: _c,
	}
}

type (
	// ClinicUpsertOne is the builder for "upsert"-ing
	//  one Clinic node.
	ClinicUpsertOne struct {
		create *ClinicCreate
	}

	// ClinicUpsert is the "OnConflict" setter.
	ClinicUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsert) SetUpdatedAt(v time.Time) *ClinicUpsert {
	u.Set(clinic.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateUpdatedAt() *ClinicUpsert {
	u.SetExcluded(clinic.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicUpsert) SetDeletedAt(v time.Time) *ClinicUpsert {
	u.Set(clinic.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateDeletedAt() *ClinicUpsert {
	u.SetExcluded(clinic.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicUpsert) ClearDeletedAt() *ClinicUpsert {
	u.SetNull(clinic.FieldDeletedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *ClinicUpsert) SetOwnerID(v uuid.UUID) *ClinicUpsert {
	u.Set(clinic.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateOwnerID() *ClinicUpsert {
	u.SetExcluded(clinic.FieldOwnerID)
	return u
}

// SetName sets the "name" field.
func (u *ClinicUpsert) SetName(v string) *ClinicUpsert {
	u.Set(clinic.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateName() *ClinicUpsert {
	u.SetExcluded(clinic.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsert) SetSlug(v string) *ClinicUpsert {
	u.Set(clinic.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateSlug() *ClinicUpsert {
	u.SetExcluded(clinic.FieldSlug)
	return u
}

// SetDescription sets the "description" field.
func (u *ClinicUpsert) SetDescription(v string) *ClinicUpsert {
	u.Set(clinic.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateDescription() *ClinicUpsert {
	u.SetExcluded(clinic.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicUpsert) ClearDescription() *ClinicUpsert {
	u.SetNull(clinic.FieldDescription)
	return u
}

// SetLogoKey sets the "logo_key" field.
func (u *ClinicUpsert) SetLogoKey(v string) *ClinicUpsert {
	u.Set(clinic.FieldLogoKey, v)
	return u
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateLogoKey() *ClinicUpsert {
	u.SetExcluded(clinic.FieldLogoKey)
	return u
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *ClinicUpsert) ClearLogoKey() *ClinicUpsert {
	u.SetNull(clinic.FieldLogoKey)
	return u
}

// SetPhone sets the "phone" field.
func (u *ClinicUpsert) SetPhone(v string) *ClinicUpsert {
	u.Set(clinic.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClinicUpsert) UpdatePhone() *ClinicUpsert {
	u.SetExcluded(clinic.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *ClinicUpsert) SetEmail(v string) *ClinicUpsert {
	u.Set(clinic.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateEmail() *ClinicUpsert {
	u.SetExcluded(clinic.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *ClinicUpsert) ClearEmail() *ClinicUpsert {
	u.SetNull(clinic.FieldEmail)
	return u
}

// SetAddress sets the "address" field.
func (u *ClinicUpsert) SetAddress(v string) *ClinicUpsert {
	u.Set(clinic.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateAddress() *ClinicUpsert {
	u.SetExcluded(clinic.FieldAddress)
	return u
}

// SetWard sets the "ward" field.
func (u *ClinicUpsert) SetWard(v string) *ClinicUpsert {
	u.Set(clinic.FieldWard, v)
	return u
}

// UpdateWard sets the "ward" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateWard() *ClinicUpsert {
	u.SetExcluded(clinic.FieldWard)
	return u
}

// ClearWard clears the value of the "ward" field.
func (u *ClinicUpsert) ClearWard() *ClinicUpsert {
	u.SetNull(clinic.FieldWard)
	return u
}

// SetDistrict sets the "district" field.
func (u *ClinicUpsert) SetDistrict(v string) *ClinicUpsert {
	u.Set(clinic.FieldDistrict, v)
	return u
}

// UpdateDistrict sets the "district" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateDistrict() *ClinicUpsert {
	u.SetExcluded(clinic.FieldDistrict)
	return u
}

// ClearDistrict clears the value of the "district" field.
func (u *ClinicUpsert) ClearDistrict() *ClinicUpsert {
	u.SetNull(clinic.FieldDistrict)
	return u
}

// SetCity sets the "city" field.
func (u *ClinicUpsert) SetCity(v string) *ClinicUpsert {
	u.Set(clinic.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateCity() *ClinicUpsert {
	u.SetExcluded(clinic.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *ClinicUpsert) ClearCity() *ClinicUpsert {
	u.SetNull(clinic.FieldCity)
	return u
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (u *ClinicUpsert) SetLicenseNumberEnc(v string) *ClinicUpsert {
	u.Set(clinic.FieldLicenseNumberEnc, v)
	return u
}

// UpdateLicenseNumberEnc sets the "license_number_enc" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateLicenseNumberEnc() *ClinicUpsert {
	u.SetExcluded(clinic.FieldLicenseNumberEnc)
	return u
}

// SetStatus sets the "status" field.
func (u *ClinicUpsert) SetStatus(v clinic.Status) *ClinicUpsert {
	u.Set(clinic.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateStatus() *ClinicUpsert {
	u.SetExcluded(clinic.FieldStatus)
	return u
}

// SetReviewNote sets the "review_note" field.
func (u *ClinicUpsert) SetReviewNote(v string) *ClinicUpsert {
	u.Set(clinic.FieldReviewNote, v)
	return u
}

// UpdateReviewNote sets the "review_note" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateReviewNote() *ClinicUpsert {
	u.SetExcluded(clinic.FieldReviewNote)
	return u
}

// ClearReviewNote clears the value of the "review_note" field.
func (u *ClinicUpsert) ClearReviewNote() *ClinicUpsert {
	u.SetNull(clinic.FieldReviewNote)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ClinicUpsert) SetReviewedAt(v time.Time) *ClinicUpsert {
	u.Set(clinic.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateReviewedAt() *ClinicUpsert {
	u.SetExcluded(clinic.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ClinicUpsert) ClearReviewedAt() *ClinicUpsert {
	u.SetNull(clinic.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicUpsertOne) UpdateNewValues() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinic.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinic.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicUpsertOne) Ignore() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicUpsertOne) DoNothing() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCreate.OnConflict
// documentation for more info.
func (u *ClinicUpsertOne) Update(set func(*ClinicUpsert)) *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsertOne) SetUpdatedAt(v time.Time) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateUpdatedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicUpsertOne) SetDeletedAt(v time.Time) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateDeletedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicUpsertOne) ClearDeletedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *ClinicUpsertOne) SetOwnerID(v uuid.UUID) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateOwnerID() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *ClinicUpsertOne) SetName(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateName() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsertOne) SetSlug(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateSlug() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateSlug()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicUpsertOne) SetDescription(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateDescription() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicUpsertOne) ClearDescription() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDescription()
	})
}

// SetLogoKey sets the "logo_key" field.
func (u *ClinicUpsertOne) SetLogoKey(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetLogoKey(v)
	})
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateLogoKey() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateLogoKey()
	})
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *ClinicUpsertOne) ClearLogoKey() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearLogoKey()
	})
}

// SetPhone sets the "phone" field.
func (u *ClinicUpsertOne) SetPhone(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdatePhone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *ClinicUpsertOne) SetEmail(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateEmail() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ClinicUpsertOne) ClearEmail() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearEmail()
	})
}

// SetAddress sets the "address" field.
func (u *ClinicUpsertOne) SetAddress(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateAddress() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateAddress()
	})
}

// SetWard sets the "ward" field.
func (u *ClinicUpsertOne) SetWard(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetWard(v)
	})
}

// UpdateWard sets the "ward" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateWard() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateWard()
	})
}

// ClearWard clears the value of the "ward" field.
func (u *ClinicUpsertOne) ClearWard() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearWard()
	})
}

// SetDistrict sets the "district" field.
func (u *ClinicUpsertOne) SetDistrict(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDistrict(v)
	})
}

// UpdateDistrict sets the "district" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateDistrict() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDistrict()
	})
}

// ClearDistrict clears the value of the "district" field.
func (u *ClinicUpsertOne) ClearDistrict() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDistrict()
	})
}

// SetCity sets the "city" field.
func (u *ClinicUpsertOne) SetCity(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateCity() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ClinicUpsertOne) ClearCity() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearCity()
	})
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (u *ClinicUpsertOne) SetLicenseNumberEnc(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetLicenseNumberEnc(v)
	})
}

// UpdateLicenseNumberEnc sets the "license_number_enc" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateLicenseNumberEnc() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateLicenseNumberEnc()
	})
}

// SetStatus sets the "status" field.
func (u *ClinicUpsertOne) SetStatus(v clinic.Status) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateStatus() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewNote sets the "review_note" field.
func (u *ClinicUpsertOne) SetReviewNote(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetReviewNote(v)
	})
}

// UpdateReviewNote sets the "review_note" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateReviewNote() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateReviewNote()
	})
}

// ClearReviewNote clears the value of the "review_note" field.
func (u *ClinicUpsertOne) ClearReviewNote() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearReviewNote()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ClinicUpsertOne) SetReviewedAt(v time.Time) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateReviewedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ClinicUpsertOne) ClearReviewedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *ClinicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicUpsertOne.ID is not supported by MySQL driver. Use ClinicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicCreateBulk is the builder for creating many Clinic entities in bulk.
type ClinicCreateBulk struct {
	config
	err      error
	builders []*ClinicCreate
	conflict []sql.ConflictOption
}

// Save creates the Clinic entities in the database.
func (_c *ClinicCreateBulk) Save(ctx context.Context) ([]*Clinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMutation)
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
func (_c *ClinicCreateBulk) SaveX(ctx context.Context) []*Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Clinic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicUpsertBulk {
	_c.conflict = opts
	return &ClinicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCreateBulk) OnConflictColumns(columns ...string) *ClinicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicUpsertBulk{
		create: _c,
	}
}

// ClinicUpsertBulk is the builder for "upsert"-ing
// a bulk of Clinic nodes.
type ClinicUpsertBulk struct {
	create *ClinicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicUpsertBulk) UpdateNewValues() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinic.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinic.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicUpsertBulk) Ignore() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicUpsertBulk) DoNothing() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicUpsertBulk) Update(set func(*ClinicUpsert)) *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsertBulk) SetUpdatedAt(v time.Time) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateUpdatedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicUpsertBulk) SetDeletedAt(v time.Time) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateDeletedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicUpsertBulk) ClearDeletedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDeletedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *ClinicUpsertBulk) SetOwnerID(v uuid.UUID) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateOwnerID() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateOwnerID()
	})
}

// SetName sets the "name" field.
func (u *ClinicUpsertBulk) SetName(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateName() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsertBulk) SetSlug(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateSlug() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateSlug()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicUpsertBulk) SetDescription(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateDescription() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicUpsertBulk) ClearDescription() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDescription()
	})
}

// SetLogoKey sets the "logo_key" field.
func (u *ClinicUpsertBulk) SetLogoKey(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetLogoKey(v)
	})
}

// UpdateLogoKey sets the "logo_key" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateLogoKey() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateLogoKey()
	})
}

// ClearLogoKey clears the value of the "logo_key" field.
func (u *ClinicUpsertBulk) ClearLogoKey() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearLogoKey()
	})
}

// SetPhone sets the "phone" field.
func (u *ClinicUpsertBulk) SetPhone(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdatePhone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *ClinicUpsertBulk) SetEmail(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateEmail() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ClinicUpsertBulk) ClearEmail() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearEmail()
	})
}

// SetAddress sets the "address" field.
func (u *ClinicUpsertBulk) SetAddress(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateAddress() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateAddress()
	})
}

// SetWard sets the "ward" field.
func (u *ClinicUpsertBulk) SetWard(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetWard(v)
	})
}

// UpdateWard sets the "ward" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateWard() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateWard()
	})
}

// ClearWard clears the value of the "ward" field.
func (u *ClinicUpsertBulk) ClearWard() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearWard()
	})
}

// SetDistrict sets the "district" field.
func (u *ClinicUpsertBulk) SetDistrict(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDistrict(v)
	})
}

// UpdateDistrict sets the "district" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateDistrict() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDistrict()
	})
}

// ClearDistrict clears the value of the "district" field.
func (u *ClinicUpsertBulk) ClearDistrict() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDistrict()
	})
}

// SetCity sets the "city" field.
func (u *ClinicUpsertBulk) SetCity(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateCity() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ClinicUpsertBulk) ClearCity() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearCity()
	})
}

// SetLicenseNumberEnc sets the "license_number_enc" field.
func (u *ClinicUpsertBulk) SetLicenseNumberEnc(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetLicenseNumberEnc(v)
	})
}

// UpdateLicenseNumberEnc sets the "license_number_enc" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateLicenseNumberEnc() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateLicenseNumberEnc()
	})
}

// SetStatus sets the "status" field.
func (u *ClinicUpsertBulk) SetStatus(v clinic.Status) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateStatus() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewNote sets the "review_note" field.
func (u *ClinicUpsertBulk) SetReviewNote(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetReviewNote(v)
	})
}

// UpdateReviewNote sets the "review_note" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateReviewNote() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateReviewNote()
	})
}

// ClearReviewNote clears the value of the "review_note" field.
func (u *ClinicUpsertBulk) ClearReviewNote() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearReviewNote()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ClinicUpsertBulk) SetReviewedAt(v time.Time) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateReviewedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ClinicUpsertBulk) ClearReviewedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearReviewedAt()
	})
}

// Exec executes the query.
func (u *ClinicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
