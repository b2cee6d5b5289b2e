package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/interfaces/api/handlers"
	"github.com/Kimnjuki/faceless-sub001/interfaces/api/middleware"
	"github.com/Kimnjuki/faceless-sub001/interfaces/api/routes"
	"github.com/Kimnjuki/faceless-sub001/pkg/di"
	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init("logs", true); err != nil {
		fmt.Printf("Warning: Failed to initialize logger: %v\n", err)
	}
	logger.Startup("logger_init", "Logger initialized - logs will be written to ./logs/", nil)

	// Initialize DI container
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		logger.StartupError("container_init_failed", "Failed to initialize container", err, nil)
		os.Exit(1)
	}

	// Setup graceful shutdown
	setupGracefulShutdown(container)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.GetConfig().App.Name,
	})

	// Setup middleware
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())
	app.Use(middleware.RateLimiter(&container.GetConfig().RateLimit))

	// Create handlers from services
	services := container.GetHandlerServices()
	repos := container.GetHandlerRepositories()
	h := handlers.NewHandlers(services, repos, container.GetConfig(), container.DB, container.RedisClient, container.IngestWorker)

	// Setup routes
	routes.SetupRoutes(app, h, container.GetConfig())

	// Start server
	port := container.GetConfig().App.Port
	logger.Startup("server_starting", "Server starting", map[string]interface{}{
		"port":        port,
		"environment": container.GetConfig().App.Env,
		"health":      fmt.Sprintf("http://localhost:%s/api/health", port),
		"api":         fmt.Sprintf("http://localhost:%s/api/v1", port),
		"sitemap":     fmt.Sprintf("http://localhost:%s/api/sitemap-data", port),
	})

	if err := app.Listen(":" + port); err != nil {
		logger.StartupError("server_failed", "Server failed to start", err, nil)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Startup("shutdown_started", "Gracefully shutting down", nil)

		if err := container.Cleanup(); err != nil {
			logger.StartupError("cleanup_failed", "Error during cleanup", err, nil)
		}

		logger.Startup("shutdown_complete", "Shutdown complete", nil)
		os.Exit(0)
	}()
}
