package cmd

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	httpin "zapshift/internal/adapters/in/http"
	"zapshift/internal/adapters/out/postgres"
	"zapshift/internal/adapters/out/stripeapi"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/ports"
	"zapshift/internal/jobs"
	"zapshift/internal/pkg/auth"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateTokenManager() *auth.TokenManager {
	return auth.NewTokenManager([]byte(c.config.JWTSecret), c.config.JWTValidity)
}

func (c *CompositionRoot) CreatePaymentGateway() ports.PaymentGateway {
	client := stripeapi.NewClient(
		c.config.PaymentAPIBaseURL,
		c.config.PaymentAPISecretKey,
		c.config.PaymentAPITimeout,
	)
	return stripeapi.NewRetryingGateway(client, c.logger, stripeapi.DefaultRetryConfig())
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.ParcelPaymentUoWFactory = FuncParcelPaymentUoWFactory(func() commands.ParcelPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.ParcelRiderUoWFactory = FuncParcelRiderUoWFactory(func() commands.ParcelRiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCashOutParcelCommandHandler() commands.CashOutParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCashOutParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRiderStatusCommandHandler() commands.SetRiderStatusCommandHandler {
	var f commands.RiderUserUoWFactory = FuncRiderUserUoWFactory(func() commands.RiderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.CreatePaymentGateway())
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestParcelQueryHandler() queries.GetLatestParcelQueryHandler {
	return queries.NewGetLatestParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRidersQueryHandler() queries.GetRidersQueryHandler {
	return queries.NewGetRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentHistoryQueryHandler() queries.GetPaymentHistoryQueryHandler {
	return queries.NewGetPaymentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStuckParcelsQueryHandler() queries.GetStuckParcelsQueryHandler {
	return queries.NewGetStuckParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateTokenManager(),
		c.CreateCreateParcelCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateAssignRiderCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateCashOutParcelCommandHandler(),
		c.CreateCreateRiderCommandHandler(),
		c.CreateSetRiderStatusCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateUpdateUserRoleCommandHandler(),
		c.CreateCreatePaymentIntentCommandHandler(),
		c.CreateGetParcelQueryHandler(),
		c.CreateGetParcelsQueryHandler(),
		c.CreateGetLatestParcelQueryHandler(),
		c.CreateTrackParcelQueryHandler(),
		c.CreateGetRidersQueryHandler(),
		c.CreateGetPaymentHistoryQueryHandler(),
		c.CreateGetUserRoleQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	lister := c.CreateGetStuckParcelsQueryHandler()
	return jobs.NewJobManager(lister, c.config.StuckParcelMaxAge, c.logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncParcelPaymentUoWFactory func() commands.ParcelPaymentUoW

func (f FuncParcelPaymentUoWFactory) Create() commands.ParcelPaymentUoW {
	return f()
}

type FuncParcelRiderUoWFactory func() commands.ParcelRiderUoW

func (f FuncParcelRiderUoWFactory) Create() commands.ParcelRiderUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncRiderUserUoWFactory func() commands.RiderUserUoW

func (f FuncRiderUserUoWFactory) Create() commands.RiderUserUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
