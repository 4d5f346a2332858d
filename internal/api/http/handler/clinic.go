package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return fieldErrors(c, ve.Fields)
	case errors.Is(err, clinic.ErrNotFound):
		return notFound(c, "Không tìm thấy phòng khám")
	case errors.Is(err, clinic.ErrAlreadyExists):
		return conflict(c, "Bạn đã đăng ký một phòng khám")
	case errors.Is(err, clinic.ErrSlugTaken):
		return conflict(c, "Tên phòng khám đã được sử dụng")
	case errors.Is(err, clinic.ErrNotPending):
		return conflict(c, "Hồ sơ phòng khám không ở trạng thái chờ duyệt")
	case errors.Is(err, clinic.ErrNotApproved):
		return forbidden(c)
	case errors.Is(err, clinic.ErrServiceNotFound):
		return notFound(c, "Không tìm thấy dịch vụ")
	default:
		return internalError(c)
	}
}

type clinicBody struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email"`
	Address       string  `json:"address"`
	Ward          *string `json:"ward"`
	District      *string `json:"district"`
	City          *string `json:"city"`
	LicenseNumber string  `json:"license_number"`
}

// POST /clinics
func (h *ClinicHandler) Register(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body clinicBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	cl, err := h.svc.Register(c.Context(), ownerID, clinic.RegisterRequest{
		Name:          body.Name,
		Description:   body.Description,
		Phone:         body.Phone,
		Email:         body.Email,
		Address:       body.Address,
		Ward:          body.Ward,
		District:      body.District,
		City:          body.City,
		LicenseNumber: body.LicenseNumber,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return created(c, cl)
}

// GET /clinics/me
func (h *ClinicHandler) GetMine(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	cl, err := h.svc.GetMine(c.Context(), ownerID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// PATCH /clinics/me
func (h *ClinicHandler) UpdateMine(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email"`
		Address     *string `json:"address"`
		Ward        *string `json:"ward"`
		District    *string `json:"district"`
		City        *string `json:"city"`
		LogoKey     *string `json:"logo_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	cl, err := h.svc.Update(c.Context(), ownerID, clinic.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Phone:       body.Phone,
		Email:       body.Email,
		Address:     body.Address,
		Ward:        body.Ward,
		District:    body.District,
		City:        body.City,
		LogoKey:     body.LogoKey,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// GET /clinics
func (h *ClinicHandler) ListApproved(c fiber.Ctx) error {
	var q struct {
		City    string `query:"city"`
		Query   string `query:"q"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := clinic.ListRequest{Query: q.Query, Page: q.Page, PerPage: q.PerPage}
	if q.City != "" {
		req.City = &q.City
	}

	res, err := h.svc.ListApproved(c.Context(), req)
	if err != nil {
		return mapClinicError(c, err)
	}

	return okPaged(c, res.Data, res.Total, res.Page, res.PerPage)
}

// GET /clinics/:id
func (h *ClinicHandler) GetByID(c fiber.Ctx) error {
	clinicID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã phòng khám không hợp lệ")
	}

	cl, err := h.svc.GetByID(c.Context(), clinicID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// GET /admin/clinics/pending
func (h *ClinicHandler) ListPending(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	res, err := h.svc.ListPending(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapClinicError(c, err)
	}

	return okPaged(c, res.Data, res.Total, res.Page, res.PerPage)
}

// PATCH /admin/clinics/:id/review
func (h *ClinicHandler) Review(c fiber.Ctx) error {
	clinicID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã phòng khám không hợp lệ")
	}

	var body struct {
		Approve bool    `json:"approve"`
		Note    *string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	cl, err := h.svc.Review(c.Context(), clinicID, clinic.ReviewRequest{
		Approve: body.Approve,
		Note:    body.Note,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, cl)
}

// GET /clinics/:id/services
func (h *ClinicHandler) ListServices(c fiber.Ctx) error {
	clinicID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã phòng khám không hợp lệ")
	}

	items, err := h.svc.ListServices(c.Context(), clinicID)
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, items)
}

type serviceItemBody struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       int64   `json:"price"`
	DurationMin int     `json:"duration_min"`
}

// POST /clinics/me/services
func (h *ClinicHandler) CreateService(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body serviceItemBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	item, err := h.svc.CreateService(c.Context(), ownerID, clinic.ServiceItemRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		DurationMin: body.DurationMin,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return created(c, item)
}

// PATCH /clinics/me/services/:serviceId
func (h *ClinicHandler) UpdateService(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	serviceID, err := parseUUIDParam(c, "serviceId")
	if err != nil {
		return badRequest(c, "Mã dịch vụ không hợp lệ")
	}

	var body serviceItemBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	item, err := h.svc.UpdateService(c.Context(), ownerID, serviceID, clinic.ServiceItemRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		DurationMin: body.DurationMin,
	})
	if err != nil {
		return mapClinicError(c, err)
	}

	return ok(c, item)
}

// DELETE /clinics/me/services/:serviceId
func (h *ClinicHandler) DeleteService(c fiber.Ctx) error {
	ownerID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	serviceID, err := parseUUIDParam(c, "serviceId")
	if err != nil {
		return badRequest(c, "Mã dịch vụ không hợp lệ")
	}

	if err := h.svc.DeleteService(c.Context(), ownerID, serviceID); err != nil {
		return mapClinicError(c, err)
	}

	return noContent(c)
}
