package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/domain/services"
)

// SitemapHandler serves the sitemap-data payload consumed by the frontend's
// sitemap generator.
type SitemapHandler struct {
	sitemapService services.SitemapService
}

func NewSitemapHandler(sitemapService services.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemapService: sitemapService}
}

// SitemapData handles GET /api/sitemap-data. Always 200; failed sections
// come back as empty arrays and the error stays in the server logs.
func (h *SitemapHandler) SitemapData(c *fiber.Ctx) error {
	return c.JSON(h.sitemapService.Build(c.Context()))
}
