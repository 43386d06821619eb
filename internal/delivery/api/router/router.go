// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"saferoute/internal/delivery/api/middleware"
	"saferoute/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NavigationHandler *handler.NavigationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	navigationHandler *handler.NavigationHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		navigationHandler: params.NavigationHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// API v1 routes, authenticated when auth is enabled
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	sessionsGroup := apiV1.Group("/navigation/sessions")
	{
		sessionsGroup.POST("", r.navigationHandler.CreateSession)
		sessionsGroup.GET("/:id", r.navigationHandler.GetProgress)
		sessionsGroup.DELETE("/:id", r.navigationHandler.EndSession)
		sessionsGroup.PUT("/:id/route", r.navigationHandler.SelectRoute)
		sessionsGroup.DELETE("/:id/route", r.navigationHandler.ClearRoute)
		sessionsGroup.POST("/:id/positions", r.navigationHandler.UpdatePosition)
		sessionsGroup.POST("/:id/mute", r.navigationHandler.ToggleMute)
	}
}
