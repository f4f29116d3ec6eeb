// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/simrs-budget/backend/internal/integration/entrypoint/controller"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                    *gin.Engine
	healthController          *controller.HealthController
	authController            *controller.AuthController
	realizationController     *controller.RealizationController
	transactionController     *controller.TransactionController
	problemDocumentController *controller.ProblemDocumentController
	datasetController         *controller.DatasetController
	loginRateLimiter          *middleware.RateLimiter
	authMiddleware            *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	realizationController *controller.RealizationController,
	transactionController *controller.TransactionController,
	problemDocumentController *controller.ProblemDocumentController,
	datasetController *controller.DatasetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:          healthController,
		authController:            authController,
		realizationController:     realizationController,
		transactionController:     transactionController,
		problemDocumentController: problemDocumentController,
		datasetController:         datasetController,
		loginRateLimiter:          loginRateLimiter,
		authMiddleware:            authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
			}
		}

		if r.realizationController != nil && r.authMiddleware != nil {
			realization := v1.Group("/realization")
			realization.Use(r.authMiddleware.Authenticate())
			{
				realization.GET("", r.realizationController.Report)
				realization.GET("/rollup", r.realizationController.Rollup)
				realization.GET("/detail", r.realizationController.Detail)
				realization.GET("/export", r.realizationController.Export)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/export", r.transactionController.Export)
			}
		}

		if r.problemDocumentController != nil && r.authMiddleware != nil {
			problemDocs := v1.Group("/problem-documents")
			problemDocs.Use(r.authMiddleware.Authenticate())
			{
				problemDocs.GET("", r.problemDocumentController.List)
				problemDocs.POST("", r.problemDocumentController.Create)
				problemDocs.PATCH("/:id/status", r.problemDocumentController.UpdateStatus)
				problemDocs.DELETE("/:id", r.problemDocumentController.Delete)
			}
		}

		if r.datasetController != nil && r.authMiddleware != nil {
			dataset := v1.Group("/dataset")
			dataset.Use(r.authMiddleware.Authenticate())
			{
				dataset.GET("", r.datasetController.Status)
				dataset.POST("/reload", r.datasetController.Reload)
				dataset.POST("/upload", r.datasetController.Upload)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
