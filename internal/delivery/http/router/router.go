// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecoconnect/internal/delivery/http/middleware"
	"ecoconnect/internal/delivery/http/router/handler"
	"ecoconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PickupHandler  *handler.PickupHandler
	CenterHandler  *handler.CenterHandler
	WasteHandler   *handler.WasteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	pickupHandler  *handler.PickupHandler
	centerHandler  *handler.CenterHandler
	wasteHandler   *handler.WasteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		pickupHandler:  params.PickupHandler,
		centerHandler:  params.CenterHandler,
		wasteHandler:   params.WasteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Pickup request routes require authentication
	pickupGroup := e.Group("/pickups")
	pickupGroup.Use(r.authMiddleware.Authenticate)
	{
		pickupGroup.POST("", r.pickupHandler.Create)
		pickupGroup.GET("", r.pickupHandler.List)
		pickupGroup.GET("/:id", r.pickupHandler.Get)
		pickupGroup.POST("/:id/accept", r.pickupHandler.Accept,
			r.authMiddleware.RequireRole(entity.RoleWastepicker.String()))
		pickupGroup.PUT("/:id/status", r.pickupHandler.UpdateStatus)
		pickupGroup.DELETE("/:id", r.pickupHandler.Cancel)
	}

	e.GET("/wastepickers/:id/stats", r.pickupHandler.Stats, r.authMiddleware.Authenticate)

	// Center discovery is public; management requires the admin role
	centerGroup := e.Group("/centers")
	{
		centerGroup.GET("", r.centerHandler.List)
		centerGroup.GET("/recommend", r.centerHandler.Recommend)
		centerGroup.GET("/:id", r.centerHandler.Get)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()),
		}
		centerGroup.POST("", r.centerHandler.Create, adminOnly...)
		centerGroup.PUT("/:id", r.centerHandler.Update, adminOnly...)
		centerGroup.DELETE("/:id", r.centerHandler.Delete, adminOnly...)
	}

	// Waste classification: identify accepts anonymous uploads, history and
	// stats belong to an account
	wasteGroup := e.Group("/waste")
	{
		wasteGroup.POST("/identify", r.wasteHandler.Identify, r.authMiddleware.OptionalAuthenticate)
		wasteGroup.GET("/categories", r.wasteHandler.Categories)
		wasteGroup.GET("/history/:userID", r.wasteHandler.History, r.authMiddleware.Authenticate)
		wasteGroup.GET("/stats/:userID", r.wasteHandler.Stats, r.authMiddleware.Authenticate)
	}
}
