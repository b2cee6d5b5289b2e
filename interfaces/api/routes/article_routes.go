package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/interfaces/api/handlers"
)

func SetupArticleRoutes(router fiber.Router, h *handlers.Handlers) {
	articles := router.Group("/articles")

	articles.Get("/", h.Article.List)
	articles.Get("/paged", h.Article.ListPaginated)

	// Slug routes last so /paged is not swallowed by the param route.
	articles.Get("/:slug", h.Article.Get)
	articles.Get("/:slug/related", h.Article.Related)
	articles.Post("/:slug/view", h.Article.View)
}
