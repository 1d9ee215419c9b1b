package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/models"
	"github.com/projectboard/backend/internal/services"
	"gorm.io/gorm"
)

// HealthHandler reports store reachability and queue mode.
type HealthHandler struct {
	db    *gorm.DB
	queue services.ActivityQueue
}

func NewHealthHandler(db *gorm.DB, queue services.ActivityQueue) *HealthHandler {
	return &HealthHandler{db: db, queue: queue}
}

// CheckHealth returns 503 when the store cannot be pinged.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := http.StatusOK
	overall := "healthy"

	dbStatus := "ok"
	if err := models.Ping(h.db); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	queueMode := "sync"
	if h.queue != nil && h.queue.IsAsync() {
		queueMode = "async (Redis)"
	}

	c.JSON(status, gin.H{
		"status":  overall,
		"service": "projectboard",
		"components": gin.H{
			"database":   dbStatus,
			"queue_mode": queueMode,
		},
	})
}
