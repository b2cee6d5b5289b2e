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

type ArticleRepositoryImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) repositories.ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *models.Article) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *ArticleRepositoryImpl) CreateBatch(ctx context.Context, articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	for _, article := range articles {
		if article.ID == uuid.Nil {
			article.ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).CreateInBatches(articles, 100).Error
}

func (r *ArticleRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) GetBySlug(ctx context.Context, slug string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("created_at ASC").
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepositoryImpl) GetByLegacyID(ctx context.Context, legacyID string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("legacy_id = ?", legacyID).
		Order("created_at ASC").
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepositoryImpl) ListByStatus(ctx context.Context, status models.ArticleStatus) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepositoryImpl) ListAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&articles).Error
	return articles, err
}

func (r *ArticleRepositoryImpl) Update(ctx context.Context, article *models.Article) error {
	article.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *ArticleRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Article{})
	return result.RowsAffected, result.Error
}
