// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"healthvault/internal/delivery/http/middleware"
	"healthvault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	SessionHandler      *handler.SessionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	sessionHandler      *handler.SessionHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		sessionHandler:      params.SessionHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes, throttled per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.Limit)
	{
		authGroup.POST("/send-otp", r.authHandler.SendOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Routes that require a valid access token
	protectedGroup := e.Group("/auth")
	protectedGroup.Use(r.authMiddleware.Authenticate)
	{
		protectedGroup.GET("/profile", r.authHandler.GetProfile)
		protectedGroup.GET("/sessions", r.sessionHandler.ListSessions)
		protectedGroup.POST("/revoke-session", r.sessionHandler.RevokeSession)
		protectedGroup.GET("/activity", r.sessionHandler.GetActivity)
	}
}
