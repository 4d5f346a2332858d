package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerPetRoutes(
	api fiber.Router,
	h *handler.PetHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	pets := api.Group("/pets", authRequired)

	pets.Get("/", requirePerm(authorize.ResourcePet, authorize.ActionList), h.List)
	pets.Post("/", requirePerm(authorize.ResourcePet, authorize.ActionCreate), h.Create)

	p := pets.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePet, authorize.ActionRead), h.GetByID)
	p.Patch("/", requirePerm(authorize.ResourcePet, authorize.ActionUpdate), h.Update)
	p.Delete("/", requirePerm(authorize.ResourcePet, authorize.ActionDelete), h.Delete)
}
