package repositories

import (
	"context"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
)

type NewsItemRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.NewsItem, error)

	// Upsert creates the row if the external id is unseen, otherwise updates
	// the existing row's mutable fields in place. Returns true when a new row
	// was created.
	Upsert(ctx context.Context, item *models.NewsItem) (bool, error)

	List(ctx context.Context, offset, limit int) ([]models.NewsItem, int64, error)
}
