// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wallet-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	walletController      *controller.WalletController
	transactionController *controller.TransactionController
	statisticsController  *controller.StatisticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	walletController *controller.WalletController,
	transactionController *controller.TransactionController,
	statisticsController *controller.StatisticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		walletController:      walletController,
		transactionController: transactionController,
		statisticsController:  statisticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Wallet routes (require authentication)
		if r.walletController != nil && r.authMiddleware != nil {
			wallets := v1.Group("/wallets")
			wallets.Use(r.authMiddleware.Authenticate())
			{
				wallets.GET("", r.walletController.List)
				wallets.POST("", r.walletController.Create)
				wallets.GET("/:id", r.walletController.Get)
				wallets.PATCH("/:id", r.walletController.Update)
				wallets.DELETE("/:id", r.walletController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Statistics routes (require authentication)
		if r.statisticsController != nil && r.authMiddleware != nil {
			stats := v1.Group("/statistics")
			stats.Use(r.authMiddleware.Authenticate())
			{
				stats.GET("", r.statisticsController.Summary)
				stats.GET("/categories", r.statisticsController.CategoryBreakdown)
				stats.GET("/wallets", r.statisticsController.WalletBreakdown)
			}
		}

		// User profile routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetMe)
				users.PATCH("/me", r.userController.UpdateMe)
			}
		}
	}
}
