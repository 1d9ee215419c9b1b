package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/middleware"
	"github.com/projectboard/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "This is home route")
	})
	r.GET("/health", svc.healthHandler.CheckHealth)

	search := r.Group("/search")
	if svc.searchLimiter != nil {
		search.Use(svc.searchLimiter.Middleware())
	}
	search.GET("", svc.searchHandler.Search)
	search.GET("/", svc.searchHandler.Search)

	projects := r.Group("/projects")
	{
		projects.GET("", svc.projectHandler.List)
		projects.POST("", svc.projectHandler.Create)
	}

	tasks := r.Group("/tasks")
	{
		tasks.GET("", svc.taskHandler.List)
		tasks.POST("", svc.taskHandler.Create)
		tasks.PATCH("/:taskId/status", svc.taskHandler.UpdateStatus)
		tasks.GET("/:taskId/activity", svc.taskHandler.Activity)
	}

	r.GET("/users", svc.userHandler.List)
	r.GET("/teams", svc.teamHandler.List)
}
