package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyhub/config"
	"studyhub/database"
	"studyhub/routes"
	"studyhub/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize application
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Start the application
	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// Application represents the main application structure
type Application struct {
	config         *config.Config
	server         *http.Server
	dbManager      *config.DatabaseManager
	storageManager *config.StorageManager
	router         *gin.Engine
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	dbManager := config.NewDatabaseManager(cfg)
	router := setupRouter(cfg)

	app := &Application{
		config:    cfg,
		dbManager: dbManager,
		router:    router,
		server: &http.Server{
			Addr:         cfg.GetServerAddress(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	return app, nil
}

// Start initializes all components and starts the HTTP server
func (app *Application) Start() error {
	log.Printf("Starting %s v%s in %s mode",
		app.config.AppName,
		app.config.AppVersion,
		app.config.Environment)

	app.logStartupInfo()

	// Initialize database
	if err := app.initializeDatabase(); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	// Initialize storage (after database is ready)
	if err := app.initializeStorage(); err != nil {
		log.Fatalf("Storage initialization failed: %v", err)
	}

	// Setup routes
	app.setupRoutes()

	// Start background jobs
	app.startBackgroundJobs()

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	app.waitForShutdown()

	return nil
}

// initializeDatabase sets up database connection, indexes and seed documents
func (app *Application) initializeDatabase() error {
	log.Println("Initializing database...")

	if err := app.dbManager.Initialize(); err != nil {
		return err
	}

	if err := app.dbManager.SetupDatabase(); err != nil {
		return err
	}

	log.Println("Database initialization completed successfully")
	return nil
}

// initializeStorage sets up the object storage client and hands it to the
// service layer
func (app *Application) initializeStorage() error {
	app.storageManager = config.NewStorageManager(app.config)

	if err := app.storageManager.Initialize(); err != nil {
		return err
	}

	services.SetStorageClient(app.storageManager.Client())
	return nil
}

// setupRoutes configures all application routes and middleware
func (app *Application) setupRoutes() {
	routes.SetupRoutes(app.router)
	log.Println("Routes configured successfully")
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Trust proxies for proper client IP detection
	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	router.Use(gin.Recovery())

	// Health check endpoints (before other middleware)
	router.GET("/health", healthCheckHandler())
	router.GET("/version", versionHandler())

	// Local storage serves uploads directly
	if cfg.StorageProvider == "local" {
		router.Static("/uploads", cfg.UploadPath)
	}

	return router
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutdown signal received...")

	app.shutdown()
}

// shutdown gracefully shuts down the application
func (app *Application) shutdown() {
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := app.dbManager.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server shutdown complete")
}

// Health check handler for monitoring
func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"service":   "studyhub",
			"version":   config.AppConfig.AppVersion,
			"timestamp": time.Now().Unix(),
		}

		if err := database.Ping(); err != nil {
			health["status"] = "degraded"
			health["database"] = "unhealthy"
		} else {
			health["database"] = "healthy"
		}

		c.JSON(http.StatusOK, health)
	}
}

// Version handler
func versionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        config.AppConfig.AppName,
			"version":     config.AppConfig.AppVersion,
			"environment": config.AppConfig.Environment,
		})
	}
}

func (app *Application) startBackgroundJobs() {
	// Storage health monitoring
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if err := app.storageManager.HealthCheck(); err != nil {
				log.Printf("Storage backend unhealthy: %v", err)
			}
		}
	}()

	log.Println("Background jobs started successfully")
}

// logStartupInfo logs important startup information
func (app *Application) logStartupInfo() {
	log.Printf("=== %s v%s ===", app.config.AppName, app.config.AppVersion)
	log.Printf("Environment: %s", app.config.Environment)
	log.Printf("Database: %s", app.config.DBName)
	log.Printf("Storage Provider: %s", app.config.StorageProvider)
	log.Printf("Upload Path: %s", app.config.UploadPath)
	log.Printf("Max Upload Size: %d bytes", app.config.MaxUploadSize)
	log.Printf("Rate Limiting: %t", app.config.RateLimitEnabled)
	if app.config.Debug {
		log.Println("Debug mode enabled")
	}
	log.Println("=========================")
}
