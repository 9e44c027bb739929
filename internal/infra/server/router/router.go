// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khata-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	customerController    *controller.CustomerController
	transactionController *controller.TransactionController
	expenseController     *controller.ExpenseController
	analyticsController   *controller.AnalyticsController
	backupController      *controller.BackupController
	portalController      *controller.PortalController
	publicRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	customerController *controller.CustomerController,
	transactionController *controller.TransactionController,
	expenseController *controller.ExpenseController,
	analyticsController *controller.AnalyticsController,
	backupController *controller.BackupController,
	portalController *controller.PortalController,
	publicRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		customerController:    customerController,
		transactionController: transactionController,
		expenseController:     expenseController,
		analyticsController:   analyticsController,
		backupController:      backupController,
		portalController:      portalController,
		publicRateLimiter:     publicRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupPublicRoutes()
	r.setupAdminRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupPublicRoutes configures the endpoints reachable without a session:
// the PIN gate itself and the read-only customer portal. Both sit behind
// the rate limiter since they are the brute-forceable surface.
func (r *Router) setupPublicRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.GET("/status", r.authController.Status)
		auth.POST("/unlock", r.publicRateLimiter.Middleware(), r.authController.Unlock)
	}

	portal := v1.Group("/portal")
	portal.Use(r.publicRateLimiter.Middleware())
	{
		portal.GET("/:accessKey", r.portalController.Statement)
	}
}

// setupAdminRoutes configures the endpoints behind the PIN session.
func (r *Router) setupAdminRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	v1.POST("/auth/pin", r.authController.SetPin)

	customers := v1.Group("/customers")
	{
		customers.GET("", r.customerController.List)
		customers.POST("", r.customerController.Create)
		customers.GET("/deleted", r.customerController.ListDeleted)
		customers.GET("/:id", r.customerController.Get)
		customers.PUT("/:id", r.customerController.Update)
		customers.DELETE("/:id", r.customerController.Delete)
		customers.POST("/:id/restore", r.customerController.Restore)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	expenses := v1.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.PUT("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	analytics := v1.Group("/analytics")
	{
		analytics.GET("/overview", r.analyticsController.Overview)
		analytics.GET("/crops", r.analyticsController.Crops)
		analytics.GET("/recent", r.analyticsController.RecentActivity)
	}

	backup := v1.Group("/backup")
	{
		backup.GET("/export", r.backupController.Export)
		backup.POST("/import", r.backupController.Import)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
