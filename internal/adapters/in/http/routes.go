package http

import (
	"fmt"
	"net/http"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// access lists who may call a route. A nil roles slice means any signed-in caller.
type access struct {
	public bool
	roles  []staff.Role
}

var (
	public   = access{public: true}
	anyone   = access{}
	kitchen  = access{roles: []staff.Role{staff.RoleManager, staff.RolePantryStaff}}
	managers = access{roles: []staff.Role{staff.RoleManager}}
)

// routeAccess is keyed by method and echo path. Every generated route must appear here.
var routeAccess = map[string]access{
	"GET /health":           public,
	"GET /api/openapi.json": public,
	"POST /api/auth/login":  public,

	"POST /api/users/locations":   anyone,
	"POST /api/users/by-location": anyone,
	"POST /api/orders/filter":     anyone,
	"PUT /api/orders/status":      anyone,

	"POST /api/orders/export": kitchen,
	"POST /api/staff":         kitchen,
	"GET /api/staff":          kitchen,

	"POST /api/orders":             managers,
	"GET /api/patients":            managers,
	"POST /api/patients":           managers,
	"POST /api/patients/with-meal": managers,
	"GET /api/meals/:patientId":    managers,
	"POST /api/meals":              managers,
}

// guardedRouter registers the generated routes on echo and puts authentication and
// role checks in front of every route that is not public.
type guardedRouter struct {
	echo   *echo.Echo
	tokens ports.TokenParser
	logger *zap.Logger
}

var _ servers.EchoRouter = (*guardedRouter)(nil)

func newGuardedRouter(e *echo.Echo, tokens ports.TokenParser, logger *zap.Logger) *guardedRouter {
	return &guardedRouter{echo: e, tokens: tokens, logger: logger}
}

func (r *guardedRouter) add(method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	rule, ok := routeAccess[method+" "+path]
	if !ok {
		panic(fmt.Sprintf("no access rule for %s %s", method, path))
	}
	if !rule.public {
		guards := []echo.MiddlewareFunc{Authenticate(r.tokens, r.logger)}
		if len(rule.roles) > 0 {
			guards = append(guards, RequireRoles(rule.roles...))
		}
		m = append(guards, m...)
	}
	return r.echo.Add(method, path, h, m...)
}

func (r *guardedRouter) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodConnect, path, h, m...)
}

func (r *guardedRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodDelete, path, h, m...)
}

func (r *guardedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodGet, path, h, m...)
}

func (r *guardedRouter) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodHead, path, h, m...)
}

func (r *guardedRouter) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodOptions, path, h, m...)
}

func (r *guardedRouter) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPatch, path, h, m...)
}

func (r *guardedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPost, path, h, m...)
}

func (r *guardedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPut, path, h, m...)
}

func (r *guardedRouter) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodTrace, path, h, m...)
}
