package main

import (
	"fmt"

	"github.com/projectboard/backend/internal/config"
	"github.com/projectboard/backend/internal/handlers"
	"github.com/projectboard/backend/internal/middleware"
	"github.com/projectboard/backend/internal/models"
	"github.com/projectboard/backend/internal/services"
	"github.com/projectboard/backend/pkg/logger"
	"gorm.io/gorm"
)

// appServices owns every long-lived dependency. The database handle is
// opened once here and released in shutdown.
type appServices struct {
	db            *gorm.DB
	activityQueue services.ActivityQueue
	worker        *services.Worker
	cleanup       *services.CleanupScheduler
	searchLimiter *middleware.RateLimiter

	searchHandler  *handlers.SearchHandler
	taskHandler    *handlers.TaskHandler
	projectHandler *handlers.ProjectHandler
	userHandler    *handlers.UserHandler
	teamHandler    *handlers.TeamHandler
	healthHandler  *handlers.HealthHandler
}

// bootstrap opens and migrates the store, then builds services and handlers.
func bootstrap(cfg *config.Config) (*appServices, error) {
	db, err := models.Open(&cfg.Database, models.GormLogLevel(cfg.Log.Level))
	if err != nil {
		return nil, err
	}

	if err := models.AutoMigrate(db); err != nil {
		_ = models.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return newAppServices(cfg, db)
}

// newAppServices wires everything on top of an already open store.
func newAppServices(cfg *config.Config, db *gorm.DB) (*appServices, error) {
	activityService := services.NewActivityService(db)
	activityQueue := services.NewActivityQueue(&cfg.Redis, activityService.Record)

	var worker *services.Worker
	if activityQueue.IsAsync() {
		worker = services.NewWorker(&cfg.Redis, activityService.Record)
		worker.Start()
	}

	cleanup, err := services.NewCleanupScheduler(activityService, cfg.Activity.CleanupCron, cfg.Activity.RetentionDays)
	if err != nil {
		logger.Warn().Err(err).Msg("Activity cleanup disabled")
		cleanup = nil
	} else {
		cleanup.Start()
	}

	var limiter *middleware.RateLimiter
	if cfg.Search.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Search.RateLimit, cfg.Search.RateBurst)
	}

	return &appServices{
		db:            db,
		activityQueue: activityQueue,
		worker:        worker,
		cleanup:       cleanup,
		searchLimiter: limiter,

		searchHandler:  handlers.NewSearchHandler(services.NewSearchService(db, &cfg.Search)),
		taskHandler:    handlers.NewTaskHandler(services.NewTaskService(db, activityQueue), activityService),
		projectHandler: handlers.NewProjectHandler(services.NewProjectService(db)),
		userHandler:    handlers.NewUserHandler(services.NewUserService(db)),
		teamHandler:    handlers.NewTeamHandler(services.NewTeamService(db)),
		healthHandler:  handlers.NewHealthHandler(db, activityQueue),
	}, nil
}

// shutdown stops background work before closing the store it writes to.
func (s *appServices) shutdown() {
	if s.cleanup != nil {
		s.cleanup.Stop()
	}
	if s.searchLimiter != nil {
		s.searchLimiter.Stop()
	}
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.activityQueue != nil {
		if err := s.activityQueue.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close activity queue")
		}
	}
	if err := models.Close(s.db); err != nil {
		logger.Warn().Err(err).Msg("Failed to close database")
	}
	logger.Info().Msg("All services stopped")
}
