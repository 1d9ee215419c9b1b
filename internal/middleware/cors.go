package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/pkg/logger"
)

// CORS allows the browser frontend, served from another origin, to call the API.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Requested-With", logger.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", logger.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}
