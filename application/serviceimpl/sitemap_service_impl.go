package serviceimpl

import (
	"context"
	"time"

	"github.com/Kimnjuki/faceless-sub001/domain/dto"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
)

// guidesCategorySlug selects the articles surfaced in the sitemap's guides
// section.
const guidesCategorySlug = "guides"

type SitemapServiceImpl struct {
	articleService services.ArticleService
	categoryRepo   repositories.CategoryRepository
}

func NewSitemapService(
	articleService services.ArticleService,
	categoryRepo repositories.CategoryRepository,
) services.SitemapService {
	return &SitemapServiceImpl{
		articleService: articleService,
		categoryRepo:   categoryRepo,
	}
}

// Build assembles the sitemap payload section by section. A section that
// fails degrades to an empty slice; the error is logged server-side only and
// the caller still gets a 200.
func (s *SitemapServiceImpl) Build(ctx context.Context) *dto.SitemapData {
	data := &dto.SitemapData{
		Articles: []dto.SitemapEntry{},
		Paths:    []dto.SitemapEntry{},
		Guides:   []dto.SitemapEntry{},
	}

	articles, err := s.articleService.List(ctx, services.ListOptions{Limit: 200})
	if err != nil {
		logger.APIError("sitemap_articles", "Failed to build sitemap articles section", err, nil)
	} else {
		for _, article := range articles {
			data.Articles = append(data.Articles, dto.SitemapEntry{
				Path:    "/articles/" + article.Slug,
				LastMod: article.UpdatedAt.Format(time.RFC3339),
			})
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.APIError("sitemap_paths", "Failed to build sitemap paths section", err, nil)
	} else {
		for _, category := range categories {
			data.Paths = append(data.Paths, dto.SitemapEntry{
				Path:    "/paths/" + category.Slug,
				LastMod: category.UpdatedAt.Format(time.RFC3339),
			})
		}
	}

	guides, err := s.guidesSection(ctx)
	if err != nil {
		logger.APIError("sitemap_guides", "Failed to build sitemap guides section", err, nil)
	} else {
		data.Guides = guides
	}

	return data
}

func (s *SitemapServiceImpl) guidesSection(ctx context.Context) ([]dto.SitemapEntry, error) {
	entries := []dto.SitemapEntry{}

	category, err := s.categoryRepo.GetBySlug(ctx, guidesCategorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return entries, nil
	}

	guides, err := s.articleService.List(ctx, services.ListOptions{
		Category: category.ID.String(),
		Limit:    200,
	})
	if err != nil {
		return nil, err
	}

	for _, guide := range guides {
		entries = append(entries, dto.SitemapEntry{
			Path:    "/guides/" + guide.Slug,
			LastMod: guide.UpdatedAt.Format(time.RFC3339),
		})
	}
	return entries, nil
}
