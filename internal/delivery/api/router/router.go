// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// apiPrefix mounts a second copy of every route for clients built against /api.
const apiPrefix = "/api"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	r.mount(e.Group(""))
	r.mount(e.Group(apiPrefix))
}

func (r *router) mount(g *echo.Group) {
	g.POST("/register", r.authHandler.Register)
	g.POST("/login", r.authHandler.Login)

	// Route-level so unknown paths under the prefix stay 404 instead of 401.
	g.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	g.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	devicesGroup := g.Group("/devices", r.authMiddleware.Authenticate)
	{
		devicesGroup.GET("", r.deviceHandler.List)
		devicesGroup.POST("", r.deviceHandler.Create)
		devicesGroup.PUT("/:id", r.deviceHandler.Update)
		devicesGroup.DELETE("/:id", r.deviceHandler.Delete)
		devicesGroup.PATCH("/:id/use", r.deviceHandler.ToggleUse)
	}
}
