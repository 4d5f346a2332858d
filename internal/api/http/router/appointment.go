package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Book)

	// Partner agenda grids
	appts.Get("/calendar/month", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.MonthCalendar)
	appts.Get("/calendar/week", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.WeekCalendar)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Patch("/confirm", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Confirm)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Cancel)
	a.Patch("/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Complete)
}
