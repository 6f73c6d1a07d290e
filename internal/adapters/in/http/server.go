package http

import (
	"context"
	"net/http"

	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type (
	LoginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (commands.LoginResult, error)
	}
	RegisterStaffHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterStaffCommand) (kernel.UUID, error)
	}
	CreatePatientHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePatientCommand) (kernel.UUID, error)
	}
	SaveMealPlanHandler interface {
		Handle(ctx context.Context, cmd commands.SaveMealPlanCommand) error
	}
	PlaceMealOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceMealOrderCommand) ([]kernel.UUID, error)
	}
	UpdateOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrdersCommand) (int, error)
	}

	GetOrdersByFiltersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByFiltersQuery) (queries.OrderPage, error)
	}
	GetPatientsHandler interface {
		Handle(ctx context.Context, query queries.GetPatientsQuery) ([]queries.PatientView, error)
	}
	GetPatientsWithMealHandler interface {
		Handle(ctx context.Context, query queries.GetPatientsWithMealQuery) ([]queries.PatientMeal, error)
	}
	GetMealPlanHandler interface {
		Handle(ctx context.Context, query queries.GetMealPlanQuery) (queries.MealPlanView, error)
	}
	GetStaffHandler interface {
		Handle(ctx context.Context, query queries.GetStaffQuery) ([]queries.StaffView, error)
	}
	GetUniqueLocationsByRoleHandler interface {
		Handle(ctx context.Context, query queries.GetUniqueLocationsByRoleQuery) ([]string, error)
	}
	GetUsersByLocationAndRoleHandler interface {
		Handle(ctx context.Context, query queries.GetUsersByLocationAndRoleQuery) ([]queries.StaffView, error)
	}
)

// Handlers bundles the use cases the API exposes.
type Handlers struct {
	Login          LoginHandler
	RegisterStaff  RegisterStaffHandler
	CreatePatient  CreatePatientHandler
	SaveMealPlan   SaveMealPlanHandler
	PlaceMealOrder PlaceMealOrderHandler
	UpdateOrders   UpdateOrdersHandler

	GetOrdersByFilters        GetOrdersByFiltersHandler
	GetPatients               GetPatientsHandler
	GetPatientsWithMeal       GetPatientsWithMealHandler
	GetMealPlan               GetMealPlanHandler
	GetStaff                  GetStaffHandler
	GetUniqueLocationsByRole  GetUniqueLocationsByRoleHandler
	GetUsersByLocationAndRole GetUsersByLocationAndRoleHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	tokens   ports.TokenParser
	openAPI  []byte
	logger   *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, tokens ports.TokenParser, openAPI []byte, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		openAPI:  openAPI,
		logger:   logger,
	}
}

// NewEcho builds the echo instance with every route registered.
func (s *Server) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(s.logger))

	s.Register(e)
	return e
}

// Register adds every API route to e behind the access rules of routeAccess.
func (s *Server) Register(e *echo.Echo) {
	servers.RegisterHandlers(newGuardedRouter(e, s.tokens, s.logger), s)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetOpenApi serves the validated API description.
func (s *Server) GetOpenApi(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, s.openAPI)
}

// bind decodes and validates a request body.
func bind[T any](c echo.Context) (T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func actorOf(c echo.Context) (commands.Actor, error) {
	principal, ok := principalFrom(c)
	if !ok {
		return commands.Actor{}, ports.ErrInvalidToken
	}
	return commands.Actor{ID: principal.StaffID, Role: principal.Role}, nil
}
