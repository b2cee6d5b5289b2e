package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/api/health", h.Health.Health)
	app.Get("/api/health/detailed", h.Health.DetailedHealth)
	app.Get("/api/sitemap-data", h.Sitemap.SitemapData)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to ContentAnonymity API",
			"version": "1.0.0",
			"docs":    "/api/v1",
			"health":  "/api/health",
		})
	})
}
