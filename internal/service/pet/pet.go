package pet

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/agenda"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entappt "github.com/pawcare-vn/pawcare_backend/internal/repo/appointment"
	entpet "github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
	"github.com/pawcare-vn/pawcare_backend/pkg/crypto"
)

const (
	nameMinRunes = 2
	nameMaxRunes = 15
	weightMaxKg  = 200
	maxAgeYears  = 50
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name         string
	Species      string
	Breed        *string
	Gender       string
	WeightKg     *float64
	DateOfBirth  *time.Time
	AvatarKey    *string
	MedicalNotes *string
}

type UpdateRequest struct {
	Name         *string
	Breed        *string
	Gender       *string
	WeightKg     *float64
	DateOfBirth  *time.Time
	AvatarKey    *string
	MedicalNotes *string
}

// Pet pairs the stored row with its decrypted medical notes so the
// ciphertext never leaks through handlers.
type Pet struct {
	*repo.Pet
	MedicalNotes *string `json:"medical_notes,omitempty"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*Pet, error)
	GetByID(ctx context.Context, ownerID, petID uuid.UUID) (*Pet, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*Pet, error)
	Update(ctx context.Context, ownerID, petID uuid.UUID, req UpdateRequest) (*Pet, error)
	Delete(ctx context.Context, ownerID, petID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type petService struct {
	db     *repo.Client
	encKey []byte
}

func New(db *repo.Client, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("pet service: invalid encryption key: %w", err)
	}
	return &petService{db: db, encKey: encKey}, nil
}

func validateCreate(req CreateRequest) error {
	fields := validation.FieldErrors{}
	validation.Required(fields, "name", req.Name)
	validation.StringLen(fields, "name", req.Name, nameMinRunes, nameMaxRunes)
	if req.WeightKg != nil {
		validation.FloatRange(fields, "weightKg", *req.WeightKg, 0, weightMaxKg)
	}
	if req.DateOfBirth != nil {
		validation.BirthDate(fields, "dateOfBirth", *req.DateOfBirth, maxAgeYears)
	}
	return validation.ErrorIf(fields)
}

func (s *petService) Create(ctx context.Context, ownerID uuid.UUID, req CreateRequest) (*Pet, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	c := s.db.Pet.Create().
		SetOwnerID(ownerID).
		SetName(req.Name).
		SetSpecies(entpet.Species(req.Species)).
		SetGender(entpet.Gender(req.Gender))

	if req.Breed != nil {
		c = c.SetNillableBreed(req.Breed)
	}
	if req.WeightKg != nil {
		c = c.SetWeightKg(*req.WeightKg)
	}
	if req.DateOfBirth != nil {
		c = c.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.AvatarKey != nil {
		c = c.SetNillableAvatarKey(req.AvatarKey)
	}
	if req.MedicalNotes != nil && *req.MedicalNotes != "" {
		enc, err := crypto.Encrypt(s.encKey, *req.MedicalNotes)
		if err != nil {
			return nil, fmt.Errorf("encrypt medical notes: %w", err)
		}
		c = c.SetMedicalNotesEnc(enc)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	return s.decrypt(p)
}

func (s *petService) GetByID(ctx context.Context, ownerID, petID uuid.UUID) (*Pet, error) {
	p, err := s.db.Pet.Query().
		Where(entpet.ID(petID), entpet.OwnerID(ownerID), entpet.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return s.decrypt(p)
}

func (s *petService) List(ctx context.Context, ownerID uuid.UUID) ([]*Pet, error) {
	pets, err := s.db.Pet.Query().
		Where(entpet.OwnerID(ownerID), entpet.DeletedAtIsNil()).
		Order(entpet.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	out := make([]*Pet, 0, len(pets))
	for _, p := range pets {
		dp, err := s.decrypt(p)
		if err != nil {
			return nil, err
		}
		out = append(out, dp)
	}
	return out, nil
}

func (s *petService) Update(ctx context.Context, ownerID, petID uuid.UUID, req UpdateRequest) (*Pet, error) {
	p, err := s.db.Pet.Query().
		Where(entpet.ID(petID), entpet.OwnerID(ownerID), entpet.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}

	fields := validation.FieldErrors{}
	if req.Name != nil {
		validation.StringLen(fields, "name", *req.Name, nameMinRunes, nameMaxRunes)
	}
	if req.WeightKg != nil {
		validation.FloatRange(fields, "weightKg", *req.WeightKg, 0, weightMaxKg)
	}
	if req.DateOfBirth != nil {
		validation.BirthDate(fields, "dateOfBirth", *req.DateOfBirth, maxAgeYears)
	}
	if err := validation.ErrorIf(fields); err != nil {
		return nil, err
	}

	u := s.db.Pet.UpdateOne(p)
	if req.Name != nil {
		u = u.SetName(*req.Name)
	}
	if req.Breed != nil {
		u = u.SetNillableBreed(req.Breed)
	}
	if req.Gender != nil {
		u = u.SetGender(entpet.Gender(*req.Gender))
	}
	if req.WeightKg != nil {
		u = u.SetWeightKg(*req.WeightKg)
	}
	if req.DateOfBirth != nil {
		u = u.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.AvatarKey != nil {
		u = u.SetNillableAvatarKey(req.AvatarKey)
	}
	if req.MedicalNotes != nil {
		if *req.MedicalNotes == "" {
			u = u.ClearMedicalNotesEnc()
		} else {
			enc, err := crypto.Encrypt(s.encKey, *req.MedicalNotes)
			if err != nil {
				return nil, fmt.Errorf("encrypt medical notes: %w", err)
			}
			u = u.SetMedicalNotesEnc(enc)
		}
	}

	out, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update pet: %w", err)
	}
	return s.decrypt(out)
}

func (s *petService) Delete(ctx context.Context, ownerID, petID uuid.UUID) error {
	p, err := s.db.Pet.Query().
		Where(entpet.ID(petID), entpet.OwnerID(ownerID), entpet.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get pet: %w", err)
	}

	// Refuse while the pet is attached to an appointment that is still open.
	today := agenda.DateKey(time.Now())
	open, err := s.db.Appointment.Query().
		Where(
			entappt.HasPetsWith(entpet.ID(petID)),
			entappt.DateGTE(today),
			entappt.StatusIn(
				entappt.Status(string(agenda.StatusPending)),
				entappt.Status(string(agenda.StatusConfirmed)),
			),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check open appointments: %w", err)
	}
	if open {
		return ErrHasUpcoming
	}

	return s.db.Pet.UpdateOne(p).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

func (s *petService) decrypt(p *repo.Pet) (*Pet, error) {
	out := &Pet{Pet: p}
	if p.MedicalNotesEnc != nil && *p.MedicalNotesEnc != "" {
		plain, err := crypto.Decrypt(s.encKey, *p.MedicalNotesEnc)
		if err != nil {
			return nil, fmt.Errorf("decrypt medical notes: %w", err)
		}
		out.MedicalNotes = &plain
	}
	return out, nil
}
