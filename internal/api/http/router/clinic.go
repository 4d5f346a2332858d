package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	ch *handler.ClinicHandler,
	vh *handler.VetHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	clinics := api.Group("/clinics")

	// Public directory of approved clinics
	clinics.Get("/", ch.ListApproved)

	// Partner self-service. Registered before /:id so "me" is not
	// swallowed by the param route.
	me := clinics.Group("/me", authRequired)
	me.Get("/", requirePerm(authorize.ResourceClinic, authorize.ActionRead), ch.GetMine)
	me.Patch("/", requirePerm(authorize.ResourceClinic, authorize.ActionUpdate), ch.UpdateMine)

	me.Get("/vets", requirePerm(authorize.ResourceVeterinarian, authorize.ActionList), vh.ListMine)
	me.Post("/vets", requirePerm(authorize.ResourceVeterinarian, authorize.ActionCreate), vh.Create)
	me.Patch("/vets/:vetId", requirePerm(authorize.ResourceVeterinarian, authorize.ActionUpdate), vh.Update)
	me.Delete("/vets/:vetId", requirePerm(authorize.ResourceVeterinarian, authorize.ActionDelete), vh.Delete)

	me.Post("/services", requirePerm(authorize.ResourceServiceItem, authorize.ActionCreate), ch.CreateService)
	me.Patch("/services/:serviceId", requirePerm(authorize.ResourceServiceItem, authorize.ActionUpdate), ch.UpdateService)
	me.Delete("/services/:serviceId", requirePerm(authorize.ResourceServiceItem, authorize.ActionDelete), ch.DeleteService)

	clinics.Post("/", authRequired, requirePerm(authorize.ResourceClinic, authorize.ActionCreate), ch.Register)

	clinics.Get("/:id", ch.GetByID)
	clinics.Get("/:id/services", ch.ListServices)
	clinics.Get("/:id/vets", vh.ListByClinic)

	// Moderation queue
	admin := api.Group("/admin/clinics", authRequired, requirePerm(authorize.ResourceClinic, authorize.ActionManage))
	admin.Get("/pending", ch.ListPending)
	admin.Patch("/:id/review", ch.Review)
}
