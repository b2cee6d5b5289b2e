package services

import (
	"context"

	"github.com/Kimnjuki/faceless-sub001/domain/dto"
)

// SitemapService assembles the sitemap-data payload from the listing queries.
// A section that fails to build degrades to an empty slice; Build never
// returns an error to the HTTP layer.
type SitemapService interface {
	Build(ctx context.Context) *dto.SitemapData
}
