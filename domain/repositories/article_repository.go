package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
)

// ArticleRepository is the persistence surface for articles. Lookup methods
// signal a missing row with (nil, nil); only infrastructure failures return
// an error.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	CreateBatch(ctx context.Context, articles []*models.Article) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)

	// GetBySlug returns every row with the exact slug in persisted order.
	// Duplicates are possible and are the caller's problem to disambiguate.
	GetBySlug(ctx context.Context, slug string) ([]models.Article, error)
	GetByLegacyID(ctx context.Context, legacyID string) ([]models.Article, error)

	// ListByStatus reads the full set for a status in persisted order. The
	// composite publish-time index is never used on its own because it skips
	// rows with a null publish time.
	ListByStatus(ctx context.Context, status models.ArticleStatus) ([]models.Article, error)
	ListAll(ctx context.Context) ([]models.Article, error)

	Update(ctx context.Context, article *models.Article) error
	DeleteAll(ctx context.Context) (int64, error)
}
