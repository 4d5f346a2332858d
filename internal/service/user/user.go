package user

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entuser "github.com/pawcare-vn/pawcare_backend/internal/repo/user"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
)

type UpdateProfileRequest struct {
	FullName  *string
	Phone     *string
	AvatarKey *string
}

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
	// SearchCustomers finds customers by name or phone fragment. Partners
	// use it when booking walk-ins on a customer's behalf.
	SearchCustomers(ctx context.Context, query string, limit int) ([]*repo.User, error)
}

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" || utf8.RuneCountInString(name) > 100 {
			return nil, ErrInvalidFullName
		}
		upd = upd.SetFullName(name)
	}

	if req.Phone != nil {
		fe := validation.FieldErrors{}
		validation.Phone(fe, "phone", *req.Phone)
		if len(fe) > 0 {
			return nil, ErrInvalidPhone
		}
		phone := validation.FormatPhone(*req.Phone)
		taken, err := s.db.User.Query().
			Where(entuser.Phone(phone), entuser.IDNEQ(id), entuser.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if taken {
			return nil, ErrPhoneAlreadyExists
		}
		upd = upd.SetPhone(phone)
	}

	if req.AvatarKey != nil {
		upd = upd.SetAvatarKey(*req.AvatarKey)
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return out, nil
}

func (s *userService) SearchCustomers(ctx context.Context, query string, limit int) ([]*repo.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*repo.User{}, nil
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	users, err := s.db.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleCustomer),
			entuser.DeletedAtIsNil(),
			entuser.Or(
				entuser.FullNameContainsFold(query),
				entuser.PhoneContains(query),
				entuser.EmailContainsFold(query),
			),
		).
		Order(entuser.ByFullName(sql.OrderAsc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return users, nil
}
