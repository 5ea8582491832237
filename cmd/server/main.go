package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/seekline/jobtrack/internal/config"
	"github.com/seekline/jobtrack/internal/database"
	"github.com/seekline/jobtrack/internal/handlers"
	"github.com/seekline/jobtrack/internal/middleware"
	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
	"github.com/seekline/jobtrack/internal/types"
	"gorm.io/gorm"

	_ "github.com/seekline/jobtrack/docs/api" // Swagger docs
)

// @title Job Application Tracker API
// @version 1.0.0
// @description Personal job-application tracker with session-cookie authentication

// @host localhost:8000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name tracker_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Select the record store backend
	var recordStore store.RecordStore
	var db *gorm.DB
	if cfg.DBType == config.DBTypeMemory {
		log.Println("Using in-memory record store (no persistence across restarts)")
		recordStore = store.NewMemory()
	} else {
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db, cfg.DBType); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		recordStore = store.NewGorm(db)
	}

	// Server-side sessions
	services.InitSessions(cfg.SessionExpiration)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(corsMiddleware(cfg))
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("jobtrack")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	authHandler := &handlers.AuthHandler{Store: recordStore}
	appsHandler := &handlers.ApplicationsHandler{Store: recordStore}
	statsHandler := &handlers.StatisticsHandler{Store: recordStore}

	// Open routes
	app.Get("/", welcome)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// Auth routes
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/me", middleware.RequireUser(recordStore), authHandler.Me)

	// Application routes, session-gated unless AUTH_REQUIRED=false
	apps := app.Group("/applications")
	stats := app.Group("/statistics")
	if cfg.AuthRequired {
		gate := middleware.RequireUser(recordStore)
		apps.Use(gate)
		stats.Use(gate)
	} else {
		log.Println("AUTH_REQUIRED=false: application routes are open and unscoped")
	}

	apps.Post("/", appsHandler.Create)
	apps.Get("/", appsHandler.List)
	apps.Get("/:id", appsHandler.Get)
	apps.Put("/:id", appsHandler.Update)
	apps.Delete("/:id", appsHandler.Delete)

	stats.Get("/", statsHandler.Summary)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// welcome handles GET /
// @Summary Welcome message
// @Tags Root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func welcome(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to Job Application Tracker API",
	})
}

// corsMiddleware builds the CORS layer. The browser client sends the session
// cookie cross-origin, so credentials are always allowed. A wildcard origin
// cannot be combined with credentials in the CORS spec; the dev-only "*"
// setting therefore reflects every caller's origin instead.
func corsMiddleware(cfg *config.Config) fiber.Handler {
	if cfg.CORSOrigins == "*" {
		return cors.New(cors.Config{
			AllowOriginsFunc: func(origin string) bool { return true },
			AllowCredentials: true,
		})
	}
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	})
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	switch e := err.(type) {
	case *types.AppError:
		code = e.Code
		message = e.Message
		errorType = e.Type
	case *fiber.Error:
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
