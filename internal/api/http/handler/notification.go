package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, "Không tìm thấy thông báo")
	default:
		return internalError(c)
	}
}

// GET /notifications?unread=&page=&per_page=
func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Unread  bool `query:"unread"`
		Page    int  `query:"page"`
		PerPage int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	rows, err := h.svc.List(c.Context(), userID, q.Unread, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, rows)
}

// GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	n, err := h.svc.UnreadCount(c.Context(), userID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"count": n})
}

// GET /notifications/signal
//
// Cheap polling target for the badge: clients compare last_signal with
// the timestamp they saw last and only refetch the list when it moved.
func (h *NotificationHandler) LastSignal(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	ts, err := h.svc.LastSignal(c.Context(), userID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	var last *int64
	if !ts.IsZero() {
		v := ts.Unix()
		last = &v
	}

	return ok(c, fiber.Map{"last_signal": last})
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	notifID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Mã thông báo không hợp lệ")
	}

	if err := h.svc.MarkRead(c.Context(), notifID, userID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, valid := currentUserID(c)
	if !valid {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), userID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}
