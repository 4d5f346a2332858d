package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/pawcare-vn/pawcare_backend/internal/service/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/service/conversation"
)

type ConversationHandler struct {
	svc     conversation.Service
	clinics clinic.Service
}

func NewConversationHandler(svc conversation.Service, clinics clinic.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc, clinics: clinics}
}

func mapConversationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conversation.ErrNotFound):
		return notFound(c, "Không tìm thấy cuộc trò chuyện")
	case errors.Is(err, conversation.ErrMessageNotFound):
		return notFound(c, "Không tìm thấy tin nhắn")
	case errors.Is(err, conversation.ErrUnauthorized):
		return forbidden(c)
	case errors.Is(err, conversation.ErrEmptyMessage):
		return fieldErrors(c, map[string]string{"content": "Tin nhắn phải có nội dung hoặc tệp đính kèm"})
	default:
		return internalError(c)
	}
}

func (h *ConversationHandler) myClinicID(c fiber.Ctx, ownerID uuid.UUID) (uuid.UUID, error) {
	cl, err := h.clinics.GetMine(c.Context(), ownerID)
	if err != nil {
		if errors.Is(err, clinic.ErrNotFound) {
			return uuid.Nil, notFound(c, "Bạn chưa đăng ký phòng khám")
		}
		return uuid.Nil, internalError(c)
	}
	return cl.ID, nil
}

// POST /conversations
//
// Idempotent from the widget's point of view: reopening an existing
// thread returns the same conversation.
func (h *ConversationHandler) Open(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ClinicID string `json:"clinic_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	clinicID, err := uuid.Parse(body.ClinicID)
	if err != nil {
		return fieldErrors(c, map[string]string{"clinic_id": "Vui lòng chọn phòng khám"})
	}

	conv, err := h.svc.Open(c.Context(), userID, clinicID)
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, conv)
}

// GET /conversations?page=&per_page=
func (h *ConversationHandler) List(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	if currentRole(c) == "partner" {
		clinicID, ferr := h.myClinicID(c, userID)
		if ferr != nil {
			return ferr
		}
		rows, err := h.svc.ListForClinic(c.Context(), clinicID, q.Page, q.PerPage)
		if err != nil {
			return mapConversationError(c, err)
		}
		return ok(c, rows)
	}

	rows, err := h.svc.ListForCustomer(c.Context(), userID, q.Page, q.PerPage)
	if err != nil {
		return mapConversationError(c, err)
	}
	return ok(c, rows)
}

// GET /conversations/:id/messages?page=&per_page=
func (h *ConversationHandler) ListMessages(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã cuộc trò chuyện không hợp lệ")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	msgs, err := h.svc.ListMessages(c.Context(), convID, userID, conversation.ListMessagesRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, msgs)
}

// POST /conversations/:id/messages
func (h *ConversationHandler) SendMessage(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã cuộc trò chuyện không hợp lệ")
	}

	var body struct {
		Content  *string `json:"content"`
		FileKey  *string `json:"file_key"`
		FileName *string `json:"file_name"`
		FileMime *string `json:"file_mime"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	msg, err := h.svc.SendMessage(c.Context(), convID, conversation.SendMessageRequest{
		SenderID: userID,
		Content:  body.Content,
		FileKey:  body.FileKey,
		FileName: body.FileName,
		FileMime: body.FileMime,
	})
	if err != nil {
		return mapConversationError(c, err)
	}

	return created(c, msg)
}

// PATCH /conversations/:id/read
func (h *ConversationHandler) MarkRead(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã cuộc trò chuyện không hợp lệ")
	}

	if err := h.svc.MarkRead(c.Context(), convID, userID); err != nil {
		return mapConversationError(c, err)
	}

	return noContent(c)
}

// GET /conversations/:id/unread-count
func (h *ConversationHandler) UnreadCount(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã cuộc trò chuyện không hợp lệ")
	}

	n, err := h.svc.UnreadCount(c.Context(), convID, userID)
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, fiber.Map{"count": n})
}

// DELETE /conversations/:id/messages/:messageId
func (h *ConversationHandler) DeleteMessage(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã cuộc trò chuyện không hợp lệ")
	}
	msgID, err := parseUUIDParam(c, "messageId")
	if err != nil {
		return badRequest(c, "Mã tin nhắn không hợp lệ")
	}

	if err := h.svc.DeleteMessage(c.Context(), convID, msgID, userID); err != nil {
		return mapConversationError(c, err)
	}

	return noContent(c)
}
