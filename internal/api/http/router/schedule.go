package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	sched := api.Group("/schedule", authRequired)

	sched.Get("/capacity", requirePerm(authorize.ResourceShiftCapacity, authorize.ActionList), sh.ListCapacities)
	sched.Put("/capacity", requirePerm(authorize.ResourceShiftCapacity, authorize.ActionUpdate), sh.SetCapacity)

	// Booking picker data, no auth so the public clinic page can render it
	api.Get("/clinics/:id/availability", sh.Availability)
}
