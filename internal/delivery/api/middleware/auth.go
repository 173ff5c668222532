package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware rejects requests without a live bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate resolves the bearer token to a principal before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		principal, err := m.authUC.Authenticate(ctx, BearerToken(c.Request()))
		if err != nil {
			return err
		}

		deliverycontext.SetPrincipal(c, principal)
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Any("user_id", principal.UserID()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// BearerToken extracts the credential from "Authorization: Bearer <token>", or "".
func BearerToken(req *http.Request) string {
	header := req.Header.Get(echo.HeaderAuthorization)
	if len(header) < len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerScheme):])
}
