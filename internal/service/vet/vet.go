package vet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entclinic "github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	entvet "github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
	"github.com/pawcare-vn/pawcare_backend/pkg/crypto"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FullName        string
	Phone           *string
	Email           *string
	Specialty       *string
	LicenseNumber   *string
	YearsExperience int
	AvatarKey       *string
}

type UpdateRequest struct {
	FullName        *string
	Phone           *string
	Email           *string
	Specialty       *string
	LicenseNumber   *string
	YearsExperience *int
	AvatarKey       *string
	IsActive        *bool
}

// Veterinarian pairs the stored row with its decrypted license number.
type Veterinarian struct {
	*repo.Veterinarian
	LicenseNumber *string `json:"license_number,omitempty"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*Veterinarian, error)
	List(ctx context.Context, clinicID uuid.UUID) ([]*Veterinarian, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*Veterinarian, error)
	Update(ctx context.Context, ownerID, vetID uuid.UUID, req UpdateRequest) (*Veterinarian, error)
	Delete(ctx context.Context, ownerID, vetID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type vetService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("vet service: invalid encryption key: %w", err)
	}
	return &vetService{db: db, encKey: encKey}, nil
}

func (s *vetService) Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*Veterinarian, error) {
	c, err := s.ownedClinic(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	fields := validation.FieldErrors{}
	validation.Required(fields, "fullName", req.FullName)
	validation.StringLen(fields, "fullName", req.FullName, 1, 100)
	if req.Phone != nil && *req.Phone != "" {
		validation.Phone(fields, "phone", *req.Phone)
	}
	if req.Email != nil && *req.Email != "" {
		validation.Email(fields, "email", *req.Email)
	}
	if req.YearsExperience < 0 || req.YearsExperience > 80 {
		fields.Add("yearsExperience", "Số năm kinh nghiệm không hợp lệ")
	}
	if err := validation.ErrorIf(fields); err != nil {
		return nil, err
	}

	create := s.db.Veterinarian.Create().
		SetClinicID(c.ID).
		SetFullName(strings.TrimSpace(req.FullName)).
		SetYearsExperience(req.YearsExperience)

	if req.Phone != nil && *req.Phone != "" {
		create = create.SetPhone(validation.FormatPhone(*req.Phone))
	}
	if req.Email != nil && *req.Email != "" {
		create = create.SetNillableEmail(req.Email)
	}
	if req.Specialty != nil {
		create = create.SetNillableSpecialty(req.Specialty)
	}
	if req.AvatarKey != nil {
		create = create.SetNillableAvatarKey(req.AvatarKey)
	}
	if req.LicenseNumber != nil && *req.LicenseNumber != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.LicenseNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt license: %w", err)
		}
		create = create.SetLicenseNumberEnc(enc)
	}

	v, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create veterinarian: %w", err)
	}
	return s.decrypt(v)
}

func (s *vetService) List(ctx context.Context, clinicID uuid.UUID) ([]*Veterinarian, error) {
	vets, err := s.db.Veterinarian.Query().
		Where(
			entvet.ClinicID(clinicID),
			entvet.IsActive(true),
			entvet.DeletedAtIsNil(),
		).
		Order(entvet.ByFullName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list veterinarians: %w", err)
	}
	return s.decryptAll(vets)
}

func (s *vetService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*Veterinarian, error) {
	c, err := s.ownedClinic(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	vets, err := s.db.Veterinarian.Query().
		Where(entvet.ClinicID(c.ID), entvet.DeletedAtIsNil()).
		Order(entvet.ByFullName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list veterinarians: %w", err)
	}
	return s.decryptAll(vets)
}

func (s *vetService) Update(ctx context.Context, ownerID, vetID uuid.UUID, req UpdateRequest) (*Veterinarian, error) {
	v, err := s.ownedVet(ctx, ownerID, vetID)
	if err != nil {
		return nil, err
	}

	fields := validation.FieldErrors{}
	if req.FullName != nil {
		validation.StringLen(fields, "fullName", *req.FullName, 1, 100)
	}
	if req.Phone != nil && *req.Phone != "" {
		validation.Phone(fields, "phone", *req.Phone)
	}
	if req.Email != nil && *req.Email != "" {
		validation.Email(fields, "email", *req.Email)
	}
	if err := validation.ErrorIf(fields); err != nil {
		return nil, err
	}

	u := s.db.Veterinarian.UpdateOne(v)
	if req.FullName != nil {
		u = u.SetFullName(strings.TrimSpace(*req.FullName))
	}
	if req.Phone != nil && *req.Phone != "" {
		u = u.SetPhone(validation.FormatPhone(*req.Phone))
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
	}
	if req.Specialty != nil {
		u = u.SetNillableSpecialty(req.Specialty)
	}
	if req.YearsExperience != nil {
		u = u.SetYearsExperience(*req.YearsExperience)
	}
	if req.AvatarKey != nil {
		u = u.SetNillableAvatarKey(req.AvatarKey)
	}
	if req.IsActive != nil {
		u = u.SetIsActive(*req.IsActive)
	}
	if req.LicenseNumber != nil {
		if *req.LicenseNumber == "" {
			u = u.ClearLicenseNumberEnc()
		} else {
			enc, err := crypto.Encrypt(s.encKey, *req.LicenseNumber)
			if err != nil {
				return nil, fmt.Errorf("encrypt license: %w", err)
			}
			u = u.SetLicenseNumberEnc(enc)
		}
	}

	saved, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update veterinarian: %w", err)
	}
	return s.decrypt(saved)
}

func (s *vetService) Delete(ctx context.Context, ownerID, vetID uuid.UUID) error {
	v, err := s.ownedVet(ctx, ownerID, vetID)
	if err != nil {
		return err
	}

	return s.db.Veterinarian.UpdateOne(v).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *vetService) ownedClinic(ctx context.Context, ownerID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.OwnerID(ownerID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *vetService) ownedVet(ctx context.Context, ownerID, vetID uuid.UUID) (*repo.Veterinarian, error) {
	c, err := s.ownedClinic(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	v, err := s.db.Veterinarian.Query().
		Where(entvet.ID(vetID), entvet.ClinicID(c.ID), entvet.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get veterinarian: %w", err)
	}
	return v, nil
}

func (s *vetService) decrypt(v *repo.Veterinarian) (*Veterinarian, error) {
	out := &Veterinarian{Veterinarian: v}
	if v.LicenseNumberEnc != nil && *v.LicenseNumberEnc != "" {
		plain, err := crypto.Decrypt(s.encKey, *v.LicenseNumberEnc)
		if err != nil {
			return nil, fmt.Errorf("decrypt license: %w", err)
		}
		out.LicenseNumber = &plain
	}
	return out, nil
}

func (s *vetService) decryptAll(vets []*repo.Veterinarian) ([]*Veterinarian, error) {
	out := make([]*Veterinarian, 0, len(vets))
	for _, v := range vets {
		dv, err := s.decrypt(v)
		if err != nil {
			return nil, err
		}
		out = append(out, dv)
	}
	return out, nil
}
