package context

import (
	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal records the authenticated caller on the echo context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(echoKeyPrincipal, principal)
}

// GetPrincipal returns the caller recorded by the auth middleware.
// ok is false on routes that are not behind it.
func GetPrincipal(c echo.Context) (principal entity.Principal, ok bool) {
	principal, ok = c.Get(echoKeyPrincipal).(entity.Principal)

	return principal, ok && principal.User != nil
}
