package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/internal/agenda"
	"github.com/pawcare-vn/pawcare_backend/internal/service/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/service/clinic"
)

type AppointmentHandler struct {
	svc     appointment.Service
	clinics clinic.Service
}

func NewAppointmentHandler(svc appointment.Service, clinics clinic.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, clinics: clinics}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, "Không tìm thấy lịch hẹn")
	case errors.Is(err, appointment.ErrClinicNotApproved):
		return conflict(c, "Phòng khám chưa được phê duyệt để nhận lịch hẹn")
	case errors.Is(err, appointment.ErrInvalidDate):
		return fieldErrors(c, map[string]string{"date": "Ngày hẹn phải có dạng YYYY-MM-DD"})
	case errors.Is(err, appointment.ErrInvalidShift):
		return fieldErrors(c, map[string]string{"shift": "Ca khám không hợp lệ"})
	case errors.Is(err, appointment.ErrNoPets):
		return fieldErrors(c, map[string]string{"pet_ids": "Vui lòng chọn ít nhất một thú cưng"})
	case errors.Is(err, appointment.ErrTooManyPets):
		return fieldErrors(c, map[string]string{"pet_ids": "Số thú cưng trong một lịch hẹn vượt quá giới hạn"})
	case errors.Is(err, appointment.ErrPetNotOwned):
		return fieldErrors(c, map[string]string{"pet_ids": "Thú cưng không thuộc về khách hàng này"})
	case errors.Is(err, appointment.ErrShiftFull):
		return conflict(c, "Ca khám đã kín chỗ, vui lòng chọn ca khác")
	case errors.Is(err, appointment.ErrBadTransition):
		return conflict(c, "Không thể chuyển lịch hẹn sang trạng thái này")
	case errors.Is(err, appointment.ErrReasonRequired):
		return fieldErrors(c, map[string]string{"reason": "Vui lòng nhập lý do hủy lịch"})
	case errors.Is(err, appointment.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// myClinicID resolves the partner's clinic or fails the request.
func (h *AppointmentHandler) myClinicID(c fiber.Ctx, ownerID uuid.UUID) (uuid.UUID, error) {
	cl, err := h.clinics.GetMine(c.Context(), ownerID)
	if err != nil {
		if errors.Is(err, clinic.ErrNotFound) {
			return uuid.Nil, notFound(c, "Bạn chưa đăng ký phòng khám")
		}
		return uuid.Nil, internalError(c)
	}
	return cl.ID, nil
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		ClinicID   string `query:"clinic_id"`
		CustomerID string `query:"customer_id"`
		Status     string `query:"status"`
		From       string `query:"from"`
		To         string `query:"to"`
		CreatedBy  string `query:"created_by"`
		Query      string `query:"q"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Query:   q.Query,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		req.DateFrom = &q.From
	}
	if q.To != "" {
		req.DateTo = &q.To
	}
	if q.CreatedBy != "" {
		req.CreatedBy = &q.CreatedBy
	}

	// Scope by role: customers see their own bookings, partners their
	// clinic's, admins whatever the query asks for.
	switch currentRole(c) {
	case "customer":
		req.CustomerID = &userID
	case "partner":
		clinicID, ferr := h.myClinicID(c, userID)
		if ferr != nil {
			return ferr
		}
		req.ClinicID = &clinicID
	default:
		if q.ClinicID != "" {
			id, err := uuid.Parse(q.ClinicID)
			if err != nil {
				return badRequest(c, "Mã phòng khám không hợp lệ")
			}
			req.ClinicID = &id
		}
		if q.CustomerID != "" {
			id, err := uuid.Parse(q.CustomerID)
			if err != nil {
				return badRequest(c, "Mã khách hàng không hợp lệ")
			}
			req.CustomerID = &id
		}
	}

	res, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return okPaged(c, res.Data, res.Total, res.Page, res.PerPage)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã lịch hẹn không hợp lệ")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	switch currentRole(c) {
	case "customer":
		if appt.CustomerID != userID {
			return forbidden(c)
		}
	case "partner":
		clinicID, ferr := h.myClinicID(c, userID)
		if ferr != nil {
			return ferr
		}
		if appt.ClinicID != clinicID {
			return forbidden(c)
		}
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ClinicID   string   `json:"clinic_id"`
		CustomerID string   `json:"customer_id"`
		Date       string   `json:"date"`
		Shift      string   `json:"shift"`
		PetIDs     []string `json:"pet_ids"`
		ServiceIDs []string `json:"service_ids"`
		Note       *string  `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	req := appointment.BookRequest{
		Date:  body.Date,
		Shift: body.Shift,
		Note:  body.Note,
	}

	for _, s := range body.PetIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return fieldErrors(c, map[string]string{"pet_ids": "Mã thú cưng không hợp lệ"})
		}
		req.PetIDs = append(req.PetIDs, id)
	}
	for _, s := range body.ServiceIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return fieldErrors(c, map[string]string{"service_ids": "Mã dịch vụ không hợp lệ"})
		}
		req.ServiceIDs = append(req.ServiceIDs, id)
	}

	switch currentRole(c) {
	case "partner":
		// Walk-in booked by the clinic on a customer's behalf.
		clinicID, ferr := h.myClinicID(c, userID)
		if ferr != nil {
			return ferr
		}
		customerID, err := uuid.Parse(body.CustomerID)
		if err != nil {
			return fieldErrors(c, map[string]string{"customer_id": "Vui lòng chọn khách hàng"})
		}
		req.ClinicID = clinicID
		req.CustomerID = customerID
		req.CreatedBy = string(agenda.CreatedByPartner)
	default:
		clinicID, err := uuid.Parse(body.ClinicID)
		if err != nil {
			return fieldErrors(c, map[string]string{"clinic_id": "Vui lòng chọn phòng khám"})
		}
		req.ClinicID = clinicID
		req.CustomerID = userID
		req.CreatedBy = string(agenda.CreatedByCustomer)
	}

	appt, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã lịch hẹn không hợp lệ")
	}

	clinicID, ferr := h.myClinicID(c, userID)
	if ferr != nil {
		return ferr
	}

	appt, err := h.svc.Confirm(c.Context(), clinicID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã lịch hẹn không hợp lệ")
	}

	clinicID, ferr := h.myClinicID(c, userID)
	if ferr != nil {
		return ferr
	}

	appt, err := h.svc.Complete(c.Context(), clinicID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã lịch hẹn không hợp lệ")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	appt, err := h.svc.Cancel(c.Context(), apptID, appointment.CancelRequest{
		ActorID: userID,
		Reason:  body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// parseCalendarRef accepts YYYY-MM-DD, defaulting to today.
func parseCalendarRef(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// GET /appointments/calendar/month
func (h *AppointmentHandler) MonthCalendar(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, ferr := h.myClinicID(c, userID)
	if ferr != nil {
		return ferr
	}

	ref, err := parseCalendarRef(c.Query("ref"))
	if err != nil {
		return badRequest(c, "Tham số ref phải có dạng YYYY-MM-DD")
	}

	view, err := h.svc.MonthCalendar(c.Context(), clinicID, ref)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, view)
}

// GET /appointments/calendar/week
func (h *AppointmentHandler) WeekCalendar(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	clinicID, ferr := h.myClinicID(c, userID)
	if ferr != nil {
		return ferr
	}

	ref, err := parseCalendarRef(c.Query("ref"))
	if err != nil {
		return badRequest(c, "Tham số ref phải có dạng YYYY-MM-DD")
	}

	view, err := h.svc.WeekCalendar(c.Context(), clinicID, ref)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, view)
}
