// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Registration (POST /user/) is public; the guard is attached per route
// rather than on the group so the two surfaces can share a prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.GET("/verify", r.authHandler.Verify, r.authMiddleware.Authenticate)
	}

	userGroup := e.Group("/user")
	{
		userGroup.POST("/", r.userHandler.Create)
		userGroup.GET("/", r.userHandler.Get, r.authMiddleware.Authenticate)
		userGroup.DELETE("/", r.userHandler.Delete, r.authMiddleware.Authenticate)
	}
}
