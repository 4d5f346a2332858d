package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/internal/service/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/service/schedule"
)

type ScheduleHandler struct {
	svc     schedule.Service
	clinics clinic.Service
}

func NewScheduleHandler(svc schedule.Service, clinics clinic.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, clinics: clinics}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate):
		return fieldErrors(c, map[string]string{"date": "Ngày phải có dạng YYYY-MM-DD"})
	case errors.Is(err, schedule.ErrInvalidShift):
		return fieldErrors(c, map[string]string{"shift": "Ca khám không hợp lệ"})
	case errors.Is(err, schedule.ErrInvalidRange):
		return badRequest(c, "Khoảng ngày không hợp lệ")
	case errors.Is(err, schedule.ErrClinicNotFound):
		return notFound(c, "Không tìm thấy phòng khám")
	default:
		return internalError(c)
	}
}

func (h *ScheduleHandler) myClinicID(c fiber.Ctx, ownerID uuid.UUID) (uuid.UUID, error) {
	cl, err := h.clinics.GetMine(c.Context(), ownerID)
	if err != nil {
		if errors.Is(err, clinic.ErrNotFound) {
			return uuid.Nil, notFound(c, "Bạn chưa đăng ký phòng khám")
		}
		return uuid.Nil, internalError(c)
	}
	return cl.ID, nil
}

// PUT /schedule/capacity
func (h *ScheduleHandler) SetCapacity(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, ferr := h.myClinicID(c, userID)
	if ferr != nil {
		return ferr
	}

	var body struct {
		Date     string `json:"date"`
		Shift    string `json:"shift"`
		Capacity int    `json:"capacity"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	row, err := h.svc.SetCapacity(c.Context(), clinicID, schedule.SetCapacityRequest{
		Date:     body.Date,
		Shift:    body.Shift,
		Capacity: body.Capacity,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, row)
}

// GET /schedule/capacity?from=&to=
func (h *ScheduleHandler) ListCapacities(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, ferr := h.myClinicID(c, userID)
	if ferr != nil {
		return ferr
	}

	rows, err := h.svc.ListCapacities(c.Context(), clinicID, c.Query("from"), c.Query("to"))
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, rows)
}

// GET /clinics/:id/availability?from=&to=
func (h *ScheduleHandler) Availability(c fiber.Ctx) error {
	clinicID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã phòng khám không hợp lệ")
	}

	slots, err := h.svc.Availability(c.Context(), clinicID, c.Query("from"), c.Query("to"))
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, slots)
}
