package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/me", h.Me)
	users.Patch("/me", h.UpdateMe)

	// Customer picker for walk-in bookings, partners only
	users.Get("/search", requirePerm(authorize.ResourceUser, authorize.ActionList), h.SearchCustomers)
}
