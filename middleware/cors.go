package middleware

import (
	"led-admin-api/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware builds the CORS policy from the configured origins.
// The public API is consumed by the static marketing pages, so a permissive
// default ("*") is acceptable; the admin front-end should pin its origin.
func CORSMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	origins := config.App.AllowedOrigins
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

	return cors.New(corsConfig)
}
