// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential endpoints
	e.POST("/signup", r.accountHandler.Signup)
	e.POST("/login", r.accountHandler.Login)

	// Routes behind the access gate
	protected := e.Group("")
	protected.Use(r.authMiddleware.Authenticate)
	{
		protected.GET("/validate-token", r.accountHandler.ValidateToken)
		protected.GET("/profile", r.accountHandler.Profile)
	}
}
