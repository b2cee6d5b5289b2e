package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
)

type NewsItemRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsItemRepository(db *gorm.DB) repositories.NewsItemRepository {
	return &NewsItemRepositoryImpl{db: db}
}

func (r *NewsItemRepositoryImpl) GetByExternalID(ctx context.Context, externalID string) (*models.NewsItem, error) {
	var item models.NewsItem
	err := r.db.WithContext(ctx).First(&item, "external_id = ?", externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert is a lookup-or-insert-then-update keyed by external id. The
// scheduler serializes ingestion runs, so no conflict handling beyond the
// unique index is needed.
func (r *NewsItemRepositoryImpl) Upsert(ctx context.Context, item *models.NewsItem) (bool, error) {
	existing, err := r.GetByExternalID(ctx, item.ExternalID)
	if err != nil {
		return false, err
	}

	if existing == nil {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	existing.Source = item.Source
	existing.IsAutomated = item.IsAutomated
	existing.OriginalURL = item.OriginalURL
	existing.Title = item.Title
	existing.Description = item.Description
	existing.PublishedAt = item.PublishedAt
	existing.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (r *NewsItemRepositoryImpl) List(ctx context.Context, offset, limit int) ([]models.NewsItem, int64, error) {
	var items []models.NewsItem
	var total int64

	query := r.db.WithContext(ctx).Model(&models.NewsItem{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("published_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error

	return items, total, err
}
