package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
	"github.com/pawcare-vn/pawcare_backend/internal/api/http/middleware"
	"github.com/pawcare-vn/pawcare_backend/internal/service/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/service/auth"
	"github.com/pawcare-vn/pawcare_backend/internal/service/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/service/conversation"
	"github.com/pawcare-vn/pawcare_backend/internal/service/file"
	"github.com/pawcare-vn/pawcare_backend/internal/service/notification"
	"github.com/pawcare-vn/pawcare_backend/internal/service/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/service/schedule"
	"github.com/pawcare-vn/pawcare_backend/internal/service/user"
	"github.com/pawcare-vn/pawcare_backend/internal/service/vet"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
	pasetotoken "github.com/pawcare-vn/pawcare_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	UserSvc         user.Service
	AuthSvc         auth.Service
	ClinicSvc       clinic.Service
	VetSvc          vet.Service
	PetSvc          pet.Service
	AppointmentSvc  appointment.Service
	ScheduleSvc     schedule.Service
	ConversationSvc conversation.Service
	NotificationSvc notification.Service
	FileSvc         file.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	vetH := handler.NewVetHandler(r.p.VetSvc)
	petH := handler.NewPetHandler(r.p.PetSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.ClinicSvc)
	scheduleH := handler.NewScheduleHandler(r.p.ScheduleSvc, r.p.ClinicSvc)
	conversationH := handler.NewConversationHandler(r.p.ConversationSvc, r.p.ClinicSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	fileH := handler.NewFileHandler(r.p.FileSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerPetRoutes(api, petH, authRequired, requirePerm)
	r.registerClinicRoutes(api, clinicH, vetH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, requirePerm)
	r.registerConversationRoutes(api, conversationH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
	r.registerFileRoutes(api, fileH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
