package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, "Không tìm thấy người dùng")
	case errors.Is(err, user.ErrInvalidFullName):
		return fieldErrors(c, map[string]string{"full_name": "Họ tên phải từ 1 đến 100 ký tự"})
	case errors.Is(err, user.ErrInvalidPhone):
		return fieldErrors(c, map[string]string{"phone": "Số điện thoại không hợp lệ"})
	case errors.Is(err, user.ErrPhoneAlreadyExists):
		return conflict(c, "Số điện thoại đã được sử dụng")
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FullName  *string `json:"full_name"`
		Phone     *string `json:"phone"`
		AvatarKey *string `json:"avatar_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	u, err := h.svc.UpdateProfile(c.Context(), userID, user.UpdateProfileRequest{
		FullName:  body.FullName,
		Phone:     body.Phone,
		AvatarKey: body.AvatarKey,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /users/search
func (h *UserHandler) SearchCustomers(c fiber.Ctx) error {
	var q struct {
		Query string `query:"q"`
		Limit int    `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	if q.Query == "" {
		return ok(c, []any{})
	}

	users, err := h.svc.SearchCustomers(c.Context(), q.Query, q.Limit)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, users)
}
