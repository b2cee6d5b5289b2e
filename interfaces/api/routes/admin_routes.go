package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/interfaces/api/handlers"
	"github.com/Kimnjuki/faceless-sub001/interfaces/api/middleware"
	"github.com/Kimnjuki/faceless-sub001/pkg/config"
)

func SetupAdminRoutes(router fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	admin := router.Group("/admin")

	// All admin routes require the admin token or an admin JWT
	admin.Use(middleware.AdminOnly(cfg))

	admin.Post("/articles/import", h.Admin.ImportArticles)
	admin.Post("/articles/repair-published", h.Admin.RepairPublished)
	admin.Delete("/articles", h.Admin.ClearArticles)

	admin.Post("/ingest/run", h.Admin.TriggerIngest)
	admin.Get("/ingest/status", h.Admin.IngestStatus)
	admin.Get("/news", h.Admin.ListNews)
}
