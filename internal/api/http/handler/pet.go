package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
)

type PetHandler struct {
	svc pet.Service
}

func NewPetHandler(svc pet.Service) *PetHandler {
	return &PetHandler{svc: svc}
}

func mapPetError(c fiber.Ctx, err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return fieldErrors(c, ve.Fields)
	case errors.Is(err, pet.ErrNotFound):
		return notFound(c, "Không tìm thấy thú cưng")
	case errors.Is(err, pet.ErrUnauthorized):
		return forbidden(c)
	case errors.Is(err, pet.ErrHasUpcoming):
		return conflict(c, "Thú cưng đang có lịch hẹn sắp tới nên không thể xóa")
	default:
		return internalError(c)
	}
}

// parseBirthDate accepts YYYY-MM-DD, empty string means unset.
func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /pets
func (h *PetHandler) Create(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name         string   `json:"name"`
		Species      string   `json:"species"`
		Breed        *string  `json:"breed"`
		Gender       string   `json:"gender"`
		WeightKg     *float64 `json:"weight_kg"`
		DateOfBirth  *string  `json:"date_of_birth"`
		AvatarKey    *string  `json:"avatar_key"`
		MedicalNotes *string  `json:"medical_notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	dob, err := parseBirthDate(body.DateOfBirth)
	if err != nil {
		return fieldErrors(c, map[string]string{"date_of_birth": "Ngày sinh phải có dạng YYYY-MM-DD"})
	}

	p, err := h.svc.Create(c.Context(), userID, pet.CreateRequest{
		Name:         body.Name,
		Species:      body.Species,
		Breed:        body.Breed,
		Gender:       body.Gender,
		WeightKg:     body.WeightKg,
		DateOfBirth:  dob,
		AvatarKey:    body.AvatarKey,
		MedicalNotes: body.MedicalNotes,
	})
	if err != nil {
		return mapPetError(c, err)
	}

	return created(c, p)
}

// GET /pets
func (h *PetHandler) List(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	pets, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return mapPetError(c, err)
	}

	return ok(c, pets)
}

// GET /pets/:id
func (h *PetHandler) GetByID(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	petID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã thú cưng không hợp lệ")
	}

	p, err := h.svc.GetByID(c.Context(), userID, petID)
	if err != nil {
		return mapPetError(c, err)
	}

	return ok(c, p)
}

// PATCH /pets/:id
func (h *PetHandler) Update(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	petID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã thú cưng không hợp lệ")
	}

	var body struct {
		Name         *string  `json:"name"`
		Breed        *string  `json:"breed"`
		Gender       *string  `json:"gender"`
		WeightKg     *float64 `json:"weight_kg"`
		DateOfBirth  *string  `json:"date_of_birth"`
		AvatarKey    *string  `json:"avatar_key"`
		MedicalNotes *string  `json:"medical_notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	dob, err := parseBirthDate(body.DateOfBirth)
	if err != nil {
		return fieldErrors(c, map[string]string{"date_of_birth": "Ngày sinh phải có dạng YYYY-MM-DD"})
	}

	p, err := h.svc.Update(c.Context(), userID, petID, pet.UpdateRequest{
		Name:         body.Name,
		Breed:        body.Breed,
		Gender:       body.Gender,
		WeightKg:     body.WeightKg,
		DateOfBirth:  dob,
		AvatarKey:    body.AvatarKey,
		MedicalNotes: body.MedicalNotes,
	})
	if err != nil {
		return mapPetError(c, err)
	}

	return ok(c, p)
}

// DELETE /pets/:id
func (h *PetHandler) Delete(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	petID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã thú cưng không hợp lệ")
	}

	if err := h.svc.Delete(c.Context(), userID, petID); err != nil {
		return mapPetError(c, err)
	}

	return noContent(c)
}
