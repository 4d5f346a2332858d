package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerConversationRoutes(
	api fiber.Router,
	ch *handler.ConversationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	convs := api.Group("/conversations", authRequired)

	convs.Get("/", requirePerm(authorize.ResourceConversation, authorize.ActionRead), ch.List)
	convs.Post("/", requirePerm(authorize.ResourceConversation, authorize.ActionCreate), ch.Open)

	cv := convs.Group("/:id")
	cv.Get("/messages", requirePerm(authorize.ResourceMessage, authorize.ActionRead), ch.ListMessages)
	cv.Post("/messages", requirePerm(authorize.ResourceMessage, authorize.ActionCreate), ch.SendMessage)
	cv.Delete("/messages/:messageId", requirePerm(authorize.ResourceMessage, authorize.ActionDelete), ch.DeleteMessage)
	cv.Patch("/read", requirePerm(authorize.ResourceMessage, authorize.ActionRead), ch.MarkRead)
	cv.Get("/unread-count", requirePerm(authorize.ResourceMessage, authorize.ActionRead), ch.UnreadCount)
}
