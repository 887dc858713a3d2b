// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	apiV1 := e.Group("/api/v1")
	apiV1.GET("/healthcheck", handler.HealthCheck)

	// Credential endpoints share one per-IP limiter.
	limiter := middleware.NewRateLimiter(r.config.HTTP.RateLimit)

	users := apiV1.Group("/users")
	{
		users.POST("/register", r.accountHandler.Register, limiter)
		users.POST("/login", r.accountHandler.Login, limiter)
		users.POST("/refresh-token", r.accountHandler.RefreshToken, limiter)
		users.GET("/verify-email/:token", r.accountHandler.VerifyEmail)
	}

	authed := users.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/logout", r.accountHandler.Logout)
		authed.POST("/logout", r.accountHandler.Logout)
		authed.GET("/current-user", r.accountHandler.CurrentUser)
		authed.POST("/resend-email-verification", r.accountHandler.ResendEmailVerification, limiter)
	}
}
