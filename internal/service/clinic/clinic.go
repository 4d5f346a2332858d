package clinic

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entclinic "github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	entsvc "github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
	"github.com/pawcare-vn/pawcare_backend/pkg/crypto"
)

var reSlugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type RegisterRequest struct {
	Name          string
	Description   *string
	Phone         string
	Email         *string
	Address       string
	Ward          *string
	District      *string
	City          *string
	LicenseNumber string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Phone       *string
	Email       *string
	Address     *string
	Ward        *string
	District    *string
	City        *string
	LogoKey     *string
}

type ReviewRequest struct {
	Approve bool
	Note    *string
}

type ListRequest struct {
	City    *string
	Query   string
	Page    int
	PerPage int
}

type ServiceItemRequest struct {
	Name        string
	Description *string
	Price       int64
	DurationMin int
}

// Clinic pairs the stored row with its decrypted license number. Only the
// owner and admins ever see the plaintext.
type Clinic struct {
	*repo.Clinic
	LicenseNumber string `json:"license_number"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, ownerID uuid.UUID, req RegisterRequest) (*Clinic, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (*Clinic, error)
	Update(ctx context.Context, ownerID uuid.UUID, req UpdateRequest) (*Clinic, error)
	GetByID(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error)
	ListApproved(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Clinic], error)

	// Admin review
	ListPending(ctx context.Context, page, perPage int) (*PaginatedResult[*repo.Clinic], error)
	Review(ctx context.Context, clinicID uuid.UUID, req ReviewRequest) (*repo.Clinic, error)

	// Service catalog
	ListServices(ctx context.Context, clinicID uuid.UUID) ([]*repo.ServiceItem, error)
	CreateService(ctx context.Context, ownerID uuid.UUID, req ServiceItemRequest) (*repo.ServiceItem, error)
	UpdateService(ctx context.Context, ownerID, serviceID uuid.UUID, req ServiceItemRequest) (*repo.ServiceItem, error)
	DeleteService(ctx context.Context, ownerID, serviceID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type clinicService struct {
	db     *repo.Client
	nc     *nats.Conn
	authz  authorize.IAuthorization
	encKey []byte
}

func New(db *repo.Client, nc *nats.Conn, authz authorize.IAuthorization, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("clinic service: invalid encryption key: %w", err)
	}
	return &clinicService{db: db, nc: nc, authz: authz, encKey: encKey}, nil
}

func validateRegister(req RegisterRequest) error {
	fields := validation.FieldErrors{}
	validation.Required(fields, "name", req.Name)
	validation.Required(fields, "address", req.Address)
	validation.Required(fields, "licenseNumber", req.LicenseNumber)
	validation.Phone(fields, "phone", req.Phone)
	if req.Email != nil && *req.Email != "" {
		validation.Email(fields, "email", *req.Email)
	}
	return validation.ErrorIf(fields)
}

func (s *clinicService) Register(ctx context.Context, ownerID uuid.UUID, req RegisterRequest) (*Clinic, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	exists, err := s.db.Clinic.Query().
		Where(entclinic.OwnerID(ownerID), entclinic.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check clinic: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	slug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	encLicense, err := crypto.Encrypt(s.encKey, strings.TrimSpace(req.LicenseNumber))
	if err != nil {
		return nil, fmt.Errorf("encrypt license: %w", err)
	}

	c := s.db.Clinic.Create().
		SetOwnerID(ownerID).
		SetName(req.Name).
		SetSlug(slug).
		SetPhone(validation.FormatPhone(req.Phone)).
		SetAddress(strings.TrimSpace(req.Address)).
		SetLicenseNumberEnc(encLicense)

	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.Email != nil && *req.Email != "" {
		c = c.SetNillableEmail(req.Email)
	}
	if req.Ward != nil {
		c = c.SetNillableWard(req.Ward)
	}
	if req.District != nil {
		c = c.SetNillableDistrict(req.District)
	}
	if req.City != nil {
		c = c.SetNillableCity(req.City)
	}

	saved, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create clinic: %w", err)
	}

	if err := authorize.AssignClinicOwnerRole(ctx, s.authz, ownerID.String(), saved.ID.String()); err != nil {
		return nil, fmt.Errorf("assign clinic owner role: %w", err)
	}

	if s.nc != nil {
		_ = s.nc.Publish("pawcare.clinic.registered", []byte(saved.ID.String()))
	}

	return s.withLicense(saved)
}

func (s *clinicService) GetMine(ctx context.Context, ownerID uuid.UUID) (*Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.OwnerID(ownerID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return s.withLicense(c)
}

func (s *clinicService) Update(ctx context.Context, ownerID uuid.UUID, req UpdateRequest) (*Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.OwnerID(ownerID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}

	fields := validation.FieldErrors{}
	if req.Phone != nil {
		validation.Phone(fields, "phone", *req.Phone)
	}
	if req.Email != nil && *req.Email != "" {
		validation.Email(fields, "email", *req.Email)
	}
	if err := validation.ErrorIf(fields); err != nil {
		return nil, err
	}

	u := s.db.Clinic.UpdateOne(c)
	if req.Name != nil {
		u = u.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.Phone != nil {
		u = u.SetPhone(validation.FormatPhone(*req.Phone))
	}
	if req.Email != nil {
		u = u.SetNillableEmail(req.Email)
	}
	if req.Address != nil {
		u = u.SetAddress(strings.TrimSpace(*req.Address))
	}
	if req.Ward != nil {
		u = u.SetNillableWard(req.Ward)
	}
	if req.District != nil {
		u = u.SetNillableDistrict(req.District)
	}
	if req.City != nil {
		u = u.SetNillableCity(req.City)
	}
	if req.LogoKey != nil {
		u = u.SetNillableLogoKey(req.LogoKey)
	}

	saved, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update clinic: %w", err)
	}
	return s.withLicense(saved)
}

func (s *clinicService) GetByID(ctx context.Context, clinicID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.ID(clinicID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) ListApproved(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Clinic], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Clinic.Query().
		Where(
			entclinic.StatusEQ(entclinic.StatusApproved),
			entclinic.DeletedAtIsNil(),
		)

	if req.City != nil && *req.City != "" {
		q = q.Where(entclinic.CityEqualFold(*req.City))
	}
	if query := strings.TrimSpace(req.Query); query != "" {
		q = q.Where(entclinic.Or(
			entclinic.NameContainsFold(query),
			entclinic.AddressContainsFold(query),
		))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clinics: %w", err)
	}

	clinics, err := q.
		Order(entclinic.ByName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Clinic]{
		Data:       clinics,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *clinicService) ListPending(ctx context.Context, page, perPage int) (*PaginatedResult[*repo.Clinic], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.Clinic.Query().
		Where(entclinic.StatusEQ(entclinic.StatusPending), entclinic.DeletedAtIsNil())

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending clinics: %w", err)
	}

	clinics, err := q.
		Order(entclinic.ByCreatedAt(sql.OrderAsc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending clinics: %w", err)
	}

	totalPages := (total + perPage - 1) / perPage
	return &PaginatedResult[*repo.Clinic]{
		Data:       clinics,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *clinicService) Review(ctx context.Context, clinicID uuid.UUID, req ReviewRequest) (*repo.Clinic, error) {
	c, err := s.GetByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if c.Status != entclinic.StatusPending {
		return nil, ErrNotPending
	}

	status := entclinic.StatusRejected
	if req.Approve {
		status = entclinic.StatusApproved
	}

	u := s.db.Clinic.UpdateOne(c).
		SetStatus(status).
		SetReviewedAt(time.Now())
	if req.Note != nil {
		u = u.SetReviewNote(*req.Note)
	}

	saved, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("review clinic: %w", err)
	}

	if s.nc != nil {
		_ = s.nc.Publish("pawcare.clinic.reviewed", []byte(saved.ID.String()))
	}
	return saved, nil
}

// ---------------------------------------------------------------------------
// Service catalog
// ---------------------------------------------------------------------------

func (s *clinicService) ListServices(ctx context.Context, clinicID uuid.UUID) ([]*repo.ServiceItem, error) {
	items, err := s.db.ServiceItem.Query().
		Where(
			entsvc.ClinicID(clinicID),
			entsvc.IsActive(true),
			entsvc.DeletedAtIsNil(),
		).
		Order(entsvc.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return items, nil
}

func (s *clinicService) CreateService(ctx context.Context, ownerID uuid.UUID, req ServiceItemRequest) (*repo.ServiceItem, error) {
	c, err := s.ownedClinic(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	fields := validation.FieldErrors{}
	validation.Required(fields, "name", req.Name)
	if req.Price < 0 {
		fields.Add("price", "Giá dịch vụ không hợp lệ")
	}
	if err := validation.ErrorIf(fields); err != nil {
		return nil, err
	}

	create := s.db.ServiceItem.Create().
		SetClinicID(c.ID).
		SetName(strings.TrimSpace(req.Name)).
		SetPrice(req.Price)
	if req.Description != nil {
		create = create.SetNillableDescription(req.Description)
	}
	if req.DurationMin > 0 {
		create = create.SetDurationMin(req.DurationMin)
	}

	item, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return item, nil
}

func (s *clinicService) UpdateService(ctx context.Context, ownerID, serviceID uuid.UUID, req ServiceItemRequest) (*repo.ServiceItem, error) {
	c, err := s.ownedClinic(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	item, err := s.db.ServiceItem.Query().
		Where(entsvc.ID(serviceID), entsvc.ClinicID(c.ID), entsvc.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	u := s.db.ServiceItem.UpdateOne(item)
	if name := strings.TrimSpace(req.Name); name != "" {
		u = u.SetName(name)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.Price >= 0 {
		u = u.SetPrice(req.Price)
	}
	if req.DurationMin > 0 {
		u = u.SetDurationMin(req.DurationMin)
	}

	saved, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return saved, nil
}

func (s *clinicService) DeleteService(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	c, err := s.ownedClinic(ctx, ownerID)
	if err != nil {
		return err
	}

	item, err := s.db.ServiceItem.Query().
		Where(entsvc.ID(serviceID), entsvc.ClinicID(c.ID), entsvc.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("get service: %w", err)
	}

	return s.db.ServiceItem.UpdateOne(item).
		SetIsActive(false).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *clinicService) ownedClinic(ctx context.Context, ownerID uuid.UUID) (*repo.Clinic, error) {
	c, err := s.db.Clinic.Query().
		Where(entclinic.OwnerID(ownerID), entclinic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) withLicense(c *repo.Clinic) (*Clinic, error) {
	plain, err := crypto.Decrypt(s.encKey, c.LicenseNumberEnc)
	if err != nil {
		return nil, fmt.Errorf("decrypt license: %w", err)
	}
	return &Clinic{Clinic: c, LicenseNumber: plain}, nil
}

// uniqueSlug derives an ascii slug from the clinic name and appends a short
// suffix until it is free. Vietnamese diacritics fold to plain letters.
func (s *clinicService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = "clinic"
	}

	slug := base
	for i := 0; i < 10; i++ {
		taken, err := s.db.Clinic.Query().Where(entclinic.Slug(slug)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%s", base, strings.Split(uuid.NewString(), "-")[0])
	}
	return "", ErrSlugTaken
}

var vnFold = strings.NewReplacer(
	"à", "a", "á", "a", "ả", "a", "ã", "a", "ạ", "a",
	"ă", "a", "ằ", "a", "ắ", "a", "ẳ", "a", "ẵ", "a", "ặ", "a",
	"â", "a", "ầ", "a", "ấ", "a", "ẩ", "a", "ẫ", "a", "ậ", "a",
	"è", "e", "é", "e", "ẻ", "e", "ẽ", "e", "ẹ", "e",
	"ê", "e", "ề", "e", "ế", "e", "ể", "e", "ễ", "e", "ệ", "e",
	"ì", "i", "í", "i", "ỉ", "i", "ĩ", "i", "ị", "i",
	"ò", "o", "ó", "o", "ỏ", "o", "õ", "o", "ọ", "o",
	"ô", "o", "ồ", "o", "ố", "o", "ổ", "o", "ỗ", "o", "ộ", "o",
	"ơ", "o", "ờ", "o", "ớ", "o", "ở", "o", "ỡ", "o", "ợ", "o",
	"ù", "u", "ú", "u", "ủ", "u", "ũ", "u", "ụ", "u",
	"ư", "u", "ừ", "u", "ứ", "u", "ử", "u", "ữ", "u", "ự", "u",
	"ỳ", "y", "ý", "y", "ỷ", "y", "ỹ", "y", "ỵ", "y",
	"đ", "d",
)

func slugify(name string) string {
	out := vnFold.Replace(strings.ToLower(strings.TrimSpace(name)))
	out = reSlugStrip.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
