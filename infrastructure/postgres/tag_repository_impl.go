package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
)

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) CreateBatch(ctx context.Context, tags []*models.ArticleTag) error {
	if len(tags) == 0 {
		return nil
	}
	for _, tag := range tags {
		if tag.ID == uuid.Nil {
			tag.ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).CreateInBatches(tags, 100).Error
}

func (r *TagRepositoryImpl) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]string, error) {
	var tags []string
	err := r.db.WithContext(ctx).
		Model(&models.ArticleTag{}).
		Where("article_id = ?", articleID).
		Pluck("tag", &tags).Error
	return tags, err
}

func (r *TagRepositoryImpl) DeleteByArticle(ctx context.Context, articleID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&models.ArticleTag{})
	return result.RowsAffected, result.Error
}
