package main

import (
	"log"
	"os"

	"led-admin-api/config"
	"led-admin-api/middleware"
	"led-admin-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database (connect, migrate, seed)
	if err := config.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add logging middleware
	router.Use(gin.LoggerWithWriter(config.LogWriter))

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Log viewer, guarded by an env token
	router.GET("/logs", func(c *gin.Context) {
		if cfg.LogToken == "" || c.Query("token") != cfg.LogToken {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(500, gin.H{"error": "Unable to read log"})
			return
		}

		c.Data(200, "text/plain; charset=utf-8", logData)
	})

	// Setup routes
	routes.SetupRoutes(router)

	// Create upload and public asset directories if not exists
	for _, dir := range []string{cfg.Media.UploadPath, cfg.Media.PublicPath} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dir, err)
		}
	}

	// Serve the mirrored public assets so the static site can reference them
	router.Static("/assets", cfg.Media.PublicPath)

	log.Printf("Server starting on port %s", cfg.Port)
	if cfg.IsProduction() {
		log.Printf("Running in production mode")
	} else {
		log.Printf("Running in development mode")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
