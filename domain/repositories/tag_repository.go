package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
)

type TagRepository interface {
	CreateBatch(ctx context.Context, tags []*models.ArticleTag) error

	// ListByArticle returns the tag strings of one article. An article with
	// no tags yields an empty slice.
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]string, error)

	DeleteByArticle(ctx context.Context, articleID uuid.UUID) (int64, error)
}
