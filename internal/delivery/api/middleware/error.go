// Package middleware contains the echo middleware specific to the JSON API.
package middleware

import (
	"log/slog"
	"net/http"

	"inventory/config"
	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	domainerrors "inventory/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error returned by a handler.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, validationErr.HTTPCode(), validationErr.Message(), validationErr.Fields, "")

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), nil, m.detail(err))

			return
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), nil, "")

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, httpMessage(httpErr), nil, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message(), nil, m.detail(err))
}

// detail exposes the error text outside production only.
func (m *ErrorMiddleware) detail(err error) string {
	if m.production {
		return ""
	}

	return err.Error()
}

func httpMessage(httpErr *echo.HTTPError) string {
	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return domainerrors.ErrMethodNotAllowed.Message()
	}

	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
