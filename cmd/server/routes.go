package main

import (
	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/internal/handlers"
	"github.com/skillmatch/backend/internal/middleware"
	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/pkg/logger"
)

// registerRoutes wires all HTTP routes and their middleware.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger())
	r.Use(logger.GinRecovery())
	r.Use(middleware.CORS())
	r.Use(middleware.AuditLog())

	db := models.GetDB()

	healthHandler := handlers.NewHealthHandler()
	userHandler := handlers.NewUserHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	applicationHandler := handlers.NewApplicationHandler(db)
	systemLogHandler := handlers.NewSystemLogHandler(db)

	r.GET("/health", healthHandler.CheckHealth)

	// Public auth endpoints, rate limited per client IP.
	authLimiter := middleware.NewRateLimiter(5, 10)
	auth := r.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", svc.authHandler.Register)
		auth.POST("/login", svc.authHandler.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.GET("/me", svc.authHandler.GetCurrentUser)

		users := api.Group("/users")
		{
			users.GET("", middleware.AdminRequired(), userHandler.List)
			users.POST("", middleware.AdminRequired(), userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/:id", projectHandler.GetByID)
			projects.POST("", projectHandler.Create)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)
		}

		applications := api.Group("/applications")
		{
			applications.GET("", applicationHandler.List)
			applications.POST("", applicationHandler.Create)
			applications.PUT("/:id", applicationHandler.Update)
			applications.DELETE("/:id", applicationHandler.Delete)
		}

		api.GET("/system-logs", middleware.AdminRequired(), systemLogHandler.List)
	}
}
