package http

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const principalKey = "principal"

// Authenticate requires a valid "Bearer <token>" Authorization header and stores
// the caller's ports.Principal in the echo context.
func Authenticate(parser ports.TokenParser, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return fmt.Errorf("%w: missing bearer token", ports.ErrInvalidToken)
			}

			principal, err := parser.Parse(strings.TrimSpace(token))
			if err != nil {
				logger.Debug("rejected token", zap.Error(err))
				return ports.ErrInvalidToken
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireRoles lets only the listed roles through. It must run after Authenticate.
func RequireRoles(roles ...staff.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return ports.ErrInvalidToken
			}
			if !slices.Contains(roles, principal.Role) {
				return fmt.Errorf("%w: %s may not call %s %s",
					ports.ErrAccessDenied, principal.Role, c.Request().Method, c.Path())
			}
			return next(c)
		}
	}
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}

func principalFrom(c echo.Context) (ports.Principal, bool) {
	principal, ok := c.Get(principalKey).(ports.Principal)
	return principal, ok
}
