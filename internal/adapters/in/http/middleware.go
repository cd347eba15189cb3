package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pos/internal/core/domain/model/business"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Headers carrying the business context selected by the client.
const (
	HeaderBusinessID   = "X-Business-ID"
	HeaderBusinessName = "X-Business-Name"
	HeaderRole         = "X-Role"
)

const businessContextKey = "business"

// BusinessContext stores the business named by the request headers on the echo context.
// A missing business is not rejected here; every use case reports it as ErrNoActiveBusiness.
func BusinessContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header
		ctx.Set(businessContextKey, business.Context{
			ID:   business.ID(strings.TrimSpace(header.Get(HeaderBusinessID))),
			Name: strings.TrimSpace(header.Get(HeaderBusinessName)),
			Role: business.Role(strings.TrimSpace(header.Get(HeaderRole))),
		})
		return next(ctx)
	}
}

func businessFrom(ctx echo.Context) business.Context {
	bc, _ := ctx.Get(businessContextKey).(business.Context)
	return bc
}

// RequestLogger logs one line per request through logger.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"business_id", businessFrom(ctx).ID.String(),
			}
			if v.Error != nil {
				logger.ErrorContext(ctx.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

// ErrorHandler renders every error as an Error body.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := statusOf(err)
		if code == http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "internal error", "error", err, "uri", ctx.Request().RequestURI)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func statusOf(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	switch {
	case errors.Is(err, business.ErrNoActiveBusiness):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
