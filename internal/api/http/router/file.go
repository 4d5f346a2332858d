package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerFileRoutes(
	api fiber.Router,
	fh *handler.FileHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	files := api.Group("/files", authRequired)

	files.Post("/avatar", requirePerm(authorize.ResourceFile, authorize.ActionCreate), fh.UploadAvatar)
	files.Post("/clinic-logo", requirePerm(authorize.ResourceFile, authorize.ActionCreate), fh.UploadClinicLogo)
	files.Post("/chat/:conversationId", requirePerm(authorize.ResourceFile, authorize.ActionCreate), fh.UploadChatAttachment)
	files.Get("/download", requirePerm(authorize.ResourceFile, authorize.ActionRead), fh.Download)
}
