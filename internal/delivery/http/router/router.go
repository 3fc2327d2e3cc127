// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"keystone/internal/delivery/http/middleware"
	"keystone/internal/delivery/http/router/handler"
	"keystone/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Administrator management requires a valid session with an admin role.
	adminGate := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}

	adminGroup := e.Group("/admins", adminGate...)
	{
		adminGroup.POST("", r.adminHandler.CreateAdmin)
		adminGroup.GET("", r.adminHandler.ListAdmins)
		adminGroup.GET("/:id", r.adminHandler.GetAdmin)
		adminGroup.PUT("/:id", r.adminHandler.UpdateAdmin)
		adminGroup.DELETE("/:id", r.adminHandler.DeleteAdmin)
	}

	// The user listing sits behind the same gate.
	userGroup := e.Group("/users", adminGate...)
	{
		userGroup.GET("", r.adminHandler.ListUsers)
	}
}
