// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"padron/internal/delivery/http/middleware"
	"padron/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/users")
	{
		users.POST("/register", r.accountHandler.Register)
		users.POST("/login", r.accountHandler.Login)

		users.GET("", r.accountHandler.List)
		users.GET("/filter", r.accountHandler.Filter)
		users.GET("/:id", r.accountHandler.GetByID)

		// Mutations require a valid session token.
		users.PUT("/:id", r.accountHandler.Update, r.authMiddleware.Authenticate)
		users.DELETE("/:id", r.accountHandler.Delete, r.authMiddleware.Authenticate)
	}
}
