package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/vet"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
)

type VetHandler struct {
	svc vet.Service
}

func NewVetHandler(svc vet.Service) *VetHandler {
	return &VetHandler{svc: svc}
}

func mapVetError(c fiber.Ctx, err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return fieldErrors(c, ve.Fields)
	case errors.Is(err, vet.ErrNotFound):
		return notFound(c, "Không tìm thấy bác sĩ thú y")
	case errors.Is(err, vet.ErrClinicNotFound):
		return notFound(c, "Bạn chưa đăng ký phòng khám")
	default:
		return internalError(c)
	}
}

// GET /clinics/:id/vets
func (h *VetHandler) ListByClinic(c fiber.Ctx) error {
	clinicID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã phòng khám không hợp lệ")
	}

	vets, err := h.svc.List(c.Context(), clinicID)
	if err != nil {
		return mapVetError(c, err)
	}

	return ok(c, vets)
}

// GET /clinics/me/vets
func (h *VetHandler) ListMine(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	vets, err := h.svc.ListMine(c.Context(), ownerID)
	if err != nil {
		return mapVetError(c, err)
	}

	return ok(c, vets)
}

// POST /clinics/me/vets
func (h *VetHandler) Create(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FullName        string  `json:"full_name"`
		Phone           *string `json:"phone"`
		Email           *string `json:"email"`
		Specialty       *string `json:"specialty"`
		LicenseNumber   *string `json:"license_number"`
		YearsExperience int     `json:"years_experience"`
		AvatarKey       *string `json:"avatar_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	v, err := h.svc.Create(c.Context(), ownerID, vet.CreateRequest{
		FullName:        body.FullName,
		Phone:           body.Phone,
		Email:           body.Email,
		Specialty:       body.Specialty,
		LicenseNumber:   body.LicenseNumber,
		YearsExperience: body.YearsExperience,
		AvatarKey:       body.AvatarKey,
	})
	if err != nil {
		return mapVetError(c, err)
	}

	return created(c, v)
}

// PATCH /clinics/me/vets/:vetId
func (h *VetHandler) Update(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	vetID, err := parseUUIDParam(c, "vetId")
	if err != nil {
		return badRequest(c, "Mã bác sĩ không hợp lệ")
	}

	var body struct {
		FullName        *string `json:"full_name"`
		Phone           *string `json:"phone"`
		Email           *string `json:"email"`
		Specialty       *string `json:"specialty"`
		LicenseNumber   *string `json:"license_number"`
		YearsExperience *int    `json:"years_experience"`
		AvatarKey       *string `json:"avatar_key"`
		IsActive        *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	v, err := h.svc.Update(c.Context(), ownerID, vetID, vet.UpdateRequest{
		FullName:        body.FullName,
		Phone:           body.Phone,
		Email:           body.Email,
		Specialty:       body.Specialty,
		LicenseNumber:   body.LicenseNumber,
		YearsExperience: body.YearsExperience,
		AvatarKey:       body.AvatarKey,
		IsActive:        body.IsActive,
	})
	if err != nil {
		return mapVetError(c, err)
	}

	return ok(c, v)
}

// DELETE /clinics/me/vets/:vetId
func (h *VetHandler) Delete(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	vetID, err := parseUUIDParam(c, "vetId")
	if err != nil {
		return badRequest(c, "Mã bác sĩ không hợp lệ")
	}

	if err := h.svc.Delete(c.Context(), ownerID, vetID); err != nil {
		return mapVetError(c, err)
	}

	return noContent(c)
}
