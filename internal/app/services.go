package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	"github.com/pawcare-vn/pawcare_backend/internal/service/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/service/auth"
	"github.com/pawcare-vn/pawcare_backend/internal/service/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/service/conversation"
	svcfile "github.com/pawcare-vn/pawcare_backend/internal/service/file"
	"github.com/pawcare-vn/pawcare_backend/internal/service/notification"
	"github.com/pawcare-vn/pawcare_backend/internal/service/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/service/schedule"
	"github.com/pawcare-vn/pawcare_backend/internal/service/user"
	"github.com/pawcare-vn/pawcare_backend/internal/service/vet"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
	"github.com/pawcare-vn/pawcare_backend/pkg/email"
	pasetotoken "github.com/pawcare-vn/pawcare_backend/pkg/paseto"
	s3pkg "github.com/pawcare-vn/pawcare_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideClinicService,
		ProvideVetService,
		ProvidePetService,
		ProvideAppointmentService,
		ProvideScheduleService,
		ProvideConversationService,
		ProvideNotificationService,
		ProvideFileService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mailer, paseto, authz, cfg)
}

func ProvideClinicService(db *repo.Client, nc *nats.Conn, authz authorize.IAuthorization, cfg *config.Config) (clinic.Service, error) {
	return clinic.New(db, nc, authz, cfg)
}

func ProvideVetService(db *repo.Client, cfg *config.Config) (vet.Service, error) {
	return vet.New(db, cfg)
}

func ProvidePetService(db *repo.Client, cfg *config.Config) (pet.Service, error) {
	return pet.New(db, cfg)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, cfg *config.Config) appointment.Service {
	return appointment.New(db, nc, cfg)
}

func ProvideScheduleService(db *repo.Client, cfg *config.Config) schedule.Service {
	return schedule.New(db, cfg)
}

func ProvideConversationService(db *repo.Client, nc *nats.Conn) conversation.Service {
	return conversation.New(db, nc)
}

func ProvideNotificationService(db *repo.Client, rdb *redis.Client) notification.Service {
	return notification.New(db, rdb)
}

func ProvideFileService(db *repo.Client, s3 *s3pkg.Client) svcfile.Service {
	return svcfile.New(db, s3)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
