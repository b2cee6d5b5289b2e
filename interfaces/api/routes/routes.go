package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/interfaces/api/handlers"
	"github.com/Kimnjuki/faceless-sub001/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	// Health and sitemap live directly under /api, outside the versioned
	// group; load balancers and the sitemap generator call them unversioned.
	SetupHealthRoutes(app, h)

	// API version group
	api := app.Group("/api/v1")

	SetupArticleRoutes(api, h)
	SetupAdminRoutes(api, h, cfg)
}
