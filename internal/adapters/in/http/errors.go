package http

import (
	"errors"
	"net/http"
	"strings"

	"hospitalfood/internal/core/ports"
	"hospitalfood/internal/generated/servers"
	"hospitalfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps application errors to HTTP status codes. Unknown errors are 500.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, ports.ErrInvalidCredentials), errors.Is(err, ports.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ports.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler replaces echo's default so that every failure, including routing
// and binding errors, uses the servers.Error body.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := statusOf(err)
		message := publicMessage(err, code)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if writeErr := c.JSON(code, servers.Error{Code: code, Message: message}); writeErr != nil {
			logger.Warn("failed to write error response", zap.Error(writeErr))
		}
	}
}

func publicMessage(err error, code int) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	if code >= http.StatusInternalServerError {
		return "internal server error"
	}
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
