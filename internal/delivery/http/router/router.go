// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voyage/internal/delivery/http/middleware"
	"voyage/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TripHandler    *handler.TripHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	tripHandler    *handler.TripHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		tripHandler:    params.TripHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	// Auth routes that require a valid access token
	authProtected := api.Group("/auth")
	authProtected.Use(r.authMiddleware.Authenticate)
	{
		authProtected.GET("/me", r.authHandler.Me)
		authProtected.PATCH("/password", r.authHandler.ChangePassword)
	}

	// Trip routes are owner-scoped and always authenticated
	tripGroup := api.Group("/trips")
	tripGroup.Use(r.authMiddleware.Authenticate)
	{
		tripGroup.POST("", r.tripHandler.CreateTrip)
		tripGroup.GET("", r.tripHandler.ListTrips)
		tripGroup.GET("/:id", r.tripHandler.GetTrip)
		tripGroup.PATCH("/:id", r.tripHandler.UpdateTrip)
		tripGroup.DELETE("/:id", r.tripHandler.DeleteTrip)
	}
}
