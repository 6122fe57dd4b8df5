package main

import (
	"github.com/skillmatch/backend/internal/config"
	"github.com/skillmatch/backend/internal/handlers"
	"github.com/skillmatch/backend/internal/models"
	"github.com/skillmatch/backend/internal/services"
	"github.com/skillmatch/backend/internal/utils"
	"github.com/skillmatch/backend/pkg/logger"
)

// appServices holds the initialized handlers shared across route groups.
type appServices struct {
	authHandler *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, audit
// logging, seeds.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	services.InitSystemLogger(models.GetDB())
	services.StartLogCleanupScheduler(models.GetDB())

	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		authHandler: authHandler,
	}
}

// shutdown stops background schedulers.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()
	logger.Info().Msg("schedulers stopped")
}
