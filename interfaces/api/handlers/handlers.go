package handlers

import (
	"gorm.io/gorm"

	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/redis"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/worker"
	"github.com/Kimnjuki/faceless-sub001/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	ArticleService services.ArticleService
	IngestService  services.IngestService
	SitemapService services.SitemapService
}

// Repositories contains repositories needed for some handlers
type Repositories struct {
	NewsItemRepository repositories.NewsItemRepository
}

// Handlers contains all HTTP handlers
type Handlers struct {
	ArticleHandler *ArticleHandler
	AdminHandler   *AdminHandler
	HealthHandler  *HealthHandler
	SitemapHandler *SitemapHandler

	// Short accessors for routes
	Article *ArticleHandler
	Admin   *AdminHandler
	Health  *HealthHandler
	Sitemap *SitemapHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(
	services *Services,
	repos *Repositories,
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.RedisClient,
	ingestWorker *worker.IngestWorker,
) *Handlers {
	articleHandler := NewArticleHandler(services.ArticleService)
	adminHandler := NewAdminHandler(services.ArticleService, repos.NewsItemRepository, ingestWorker)
	healthHandler := NewHealthHandler(db, redisClient)
	sitemapHandler := NewSitemapHandler(services.SitemapService)

	return &Handlers{
		ArticleHandler: articleHandler,
		AdminHandler:   adminHandler,
		HealthHandler:  healthHandler,
		SitemapHandler: sitemapHandler,

		// Short accessors
		Article: articleHandler,
		Admin:   adminHandler,
		Health:  healthHandler,
		Sitemap: sitemapHandler,
	}
}
