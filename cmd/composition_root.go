package cmd

import (
	"fmt"

	apihttp "hospitalfood/internal/adapters/in/http"
	"hospitalfood/internal/adapters/out/auth"
	"hospitalfood/internal/adapters/out/postgres"
	"hospitalfood/internal/adapters/out/rabbitmq"
	rediscache "hospitalfood/internal/adapters/out/redis"
	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/services"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/jobs"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.LocationCache
	publisher  ports.OrderEventPublisher
	hasher     auth.BcryptHasher
	tokens     *auth.TokenService
	logger     *zap.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	rabbitConn rabbitmq.Connection,
	logger *zap.Logger,
) (CompositionRoot, error) {
	tokens, err := auth.NewTokenService(config.JWTSecret, config.TokenTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("JWT_SECRET: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      rediscache.NewLocationCache(redisClient, config.LocationTTL),
		publisher:  rabbitmq.NewOrderEventPublisher(rabbitConn, config.RabbitExchange),
		hasher:     auth.NewBcryptHasher(config.BcryptCost),
		tokens:     tokens,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) TokenParser() ports.TokenParser {
	return c.tokens
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.staffUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	return commands.NewRegisterStaffCommandHandler(c.staffUoWFactory(), c.hasher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateEnsureManagerCommandHandler() commands.EnsureManagerCommandHandler {
	return commands.NewEnsureManagerCommandHandler(c.staffUoWFactory(), c.CreateRegisterStaffCommandHandler())
}

func (c *CompositionRoot) CreateCreatePatientCommandHandler() commands.CreatePatientCommandHandler {
	return commands.NewCreatePatientCommandHandler(c.patientUoWFactory())
}

func (c *CompositionRoot) CreateSaveMealPlanCommandHandler() commands.SaveMealPlanCommandHandler {
	return commands.NewSaveMealPlanCommandHandler(c.patientUoWFactory())
}

func (c *CompositionRoot) CreatePlaceMealOrderCommandHandler() commands.PlaceMealOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceMealOrderCommandHandler(f, services.NewMealOrderPlanner())
}

func (c *CompositionRoot) CreateUpdateOrdersCommandHandler() commands.UpdateOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrdersCommandHandler(f, services.NewDeliveryAssigner(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersByFiltersQueryHandler() queries.GetOrdersByFiltersQueryHandler {
	return queries.NewGetOrdersByFiltersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionDigestQueryHandler() queries.GetSessionDigestQueryHandler {
	return queries.NewGetSessionDigestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPatientsQueryHandler() queries.GetPatientsQueryHandler {
	return queries.NewGetPatientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPatientsWithMealQueryHandler() queries.GetPatientsWithMealQueryHandler {
	return queries.NewGetPatientsWithMealQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMealPlanQueryHandler() queries.GetMealPlanQueryHandler {
	return queries.NewGetMealPlanQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffQueryHandler() queries.GetStaffQueryHandler {
	return queries.NewGetStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUniqueLocationsByRoleQueryHandler() queries.GetUniqueLocationsByRoleQueryHandler {
	return queries.NewGetUniqueLocationsByRoleQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetUsersByLocationAndRoleQueryHandler() queries.GetUsersByLocationAndRoleQueryHandler {
	return queries.NewGetUsersByLocationAndRoleQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case the API serves.
func (c *CompositionRoot) CreateHTTPHandlers() apihttp.Handlers {
	login := c.CreateLoginCommandHandler()
	register := c.CreateRegisterStaffCommandHandler()
	createPatient := c.CreateCreatePatientCommandHandler()
	saveMealPlan := c.CreateSaveMealPlanCommandHandler()
	placeMealOrder := c.CreatePlaceMealOrderCommandHandler()
	updateOrders := c.CreateUpdateOrdersCommandHandler()

	return apihttp.Handlers{
		Login:          &login,
		RegisterStaff:  &register,
		CreatePatient:  &createPatient,
		SaveMealPlan:   &saveMealPlan,
		PlaceMealOrder: &placeMealOrder,
		UpdateOrders:   &updateOrders,

		GetOrdersByFilters:        c.CreateGetOrdersByFiltersQueryHandler(),
		GetPatients:               c.CreateGetPatientsQueryHandler(),
		GetPatientsWithMeal:       c.CreateGetPatientsWithMealQueryHandler(),
		GetMealPlan:               c.CreateGetMealPlanQueryHandler(),
		GetStaff:                  c.CreateGetStaffQueryHandler(),
		GetUniqueLocationsByRole:  c.CreateGetUniqueLocationsByRoleQueryHandler(),
		GetUsersByLocationAndRole: c.CreateGetUsersByLocationAndRoleQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetSessionDigestQueryHandler(), c.config.DigestSchedule, c.logger)
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) patientUoWFactory() commands.PatientUoWFactory {
	return FuncPatientUoWFactory(func() commands.PatientUoW {
		return c.uowFactory.Create()
	})
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncPatientUoWFactory func() commands.PatientUoW

func (f FuncPatientUoWFactory) Create() commands.PatientUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
