package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
)

// CategoryResponse is the category fragment embedded in article responses.
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// AuthorResponse is the author fragment embedded in article responses.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	UserID    string    `json:"user_id"`
}

// ArticleResponse is an article enriched with its category, author and tags.
// Absent references are null, never an error.
type ArticleResponse struct {
	ID          uuid.UUID         `json:"id"`
	LegacyID    string            `json:"legacy_id,omitempty"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Excerpt     string            `json:"excerpt,omitempty"`
	Status      string            `json:"status"`
	PublishedAt *time.Time        `json:"published_at"`
	ViewCount   int64             `json:"view_count"`
	ShareCount  int64             `json:"share_count"`
	Category    *CategoryResponse `json:"category"`
	Author      *AuthorResponse   `json:"author"`
	Tags        []string          `json:"tags"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ArticlePage is one page of a cursor-paginated listing. ContinueCursor is a
// decimal offset into the filtered-and-sorted set, not a database cursor.
type ArticlePage struct {
	Page           []ArticleResponse `json:"page"`
	IsDone         bool              `json:"isDone"`
	ContinueCursor string            `json:"continueCursor"`
}

// NewsItemResponse is the admin view of an ingested news row.
type NewsItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ExternalID  string    `json:"external_id"`
	Source      string    `json:"source"`
	IsAutomated bool      `json:"is_automated"`
	OriginalURL string    `json:"original_url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// SitemapEntry is one URL in the sitemap-data payload.
type SitemapEntry struct {
	Path    string `json:"path"`
	LastMod string `json:"lastmod"`
}

// SitemapData is the payload of GET /api/sitemap-data. Sections that failed
// to build are empty slices, never missing and never an error.
type SitemapData struct {
	Articles []SitemapEntry `json:"articles"`
	Paths    []SitemapEntry `json:"paths"`
	Guides   []SitemapEntry `json:"guides"`
}

func CategoryToResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

func ProfileToAuthorResponse(profile *models.Profile) *AuthorResponse {
	if profile == nil {
		return nil
	}
	return &AuthorResponse{
		ID:        profile.ID,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		UserID:    profile.UserID,
	}
}

// ArticleToResponse assembles the enriched view. Tags is normalized so the
// JSON field is always an array, never null.
func ArticleToResponse(article *models.Article, category *models.Category, author *models.Profile, tags []string) *ArticleResponse {
	if article == nil {
		return nil
	}
	if tags == nil {
		tags = []string{}
	}
	return &ArticleResponse{
		ID:          article.ID,
		LegacyID:    article.LegacyID,
		Slug:        article.Slug,
		Title:       article.Title,
		Content:     article.Content,
		Excerpt:     article.Excerpt,
		Status:      string(article.Status),
		PublishedAt: article.PublishedAt,
		ViewCount:   article.ViewCount,
		ShareCount:  article.ShareCount,
		Category:    CategoryToResponse(category),
		Author:      ProfileToAuthorResponse(author),
		Tags:        tags,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

func NewsItemToResponse(item *models.NewsItem) *NewsItemResponse {
	if item == nil {
		return nil
	}
	return &NewsItemResponse{
		ID:          item.ID,
		ExternalID:  item.ExternalID,
		Source:      item.Source,
		IsAutomated: item.IsAutomated,
		OriginalURL: item.OriginalURL,
		Title:       item.Title,
		Description: item.Description,
		PublishedAt: item.PublishedAt,
		CreatedAt:   item.CreatedAt,
	}
}
