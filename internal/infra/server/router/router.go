// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/credential-forms/backend/internal/integration/entrypoint/controller"
	"github.com/credential-forms/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	formsController  *controller.FormsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	formsController *controller.FormsController,
) *Router {
	return &Router{
		healthController: healthController,
		formsController:  formsController,
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

	// Request logging is handled by middleware.RequestID through slog.
	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID())

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
		// Form routes (only setup if the forms controller is available)
		if r.formsController != nil {
			forms := v1.Group("/forms")
			{
				forms.POST("/signup/validate", r.formsController.ValidateSignup)
				forms.POST("/login/validate", r.formsController.ValidateLogin)
			}
		}
	}
}
