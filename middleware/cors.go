package middleware

import (
	"time"

	"studyhub/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware configures CORS for the application
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
			"Accept",
			"Accept-Encoding",
			"Accept-Language",
			"Connection",
			"Host",
			"Referer",
			"User-Agent",
			"X-Requested-With",
			"X-CSRF-Token",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// Use either AllowAllOrigins OR AllowOrigins, not both
	if gin.Mode() == gin.DebugMode {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowWildcard = true
	} else {
		corsConfig.AllowOrigins = config.AppConfig.CORSAllowedOrigins
		corsConfig.AllowWildcard = false
	}

	return cors.New(corsConfig)
}
