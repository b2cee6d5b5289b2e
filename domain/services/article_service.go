package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/dto"
)

// Sort orders accepted by the listing queries.
const (
	SortNewest = "newest"
	SortViews  = "views"
	SortShares = "shares"
	SortTitle  = "title"
)

// CategoryUncategorized is the sentinel category filter matching articles
// with no category reference.
const CategoryUncategorized = "uncategorized"

// ListOptions filters and orders a listing query.
type ListOptions struct {
	Status   string `validate:"omitempty,oneof=draft published archived"`
	Category string // category id, or CategoryUncategorized
	SortBy   string `validate:"omitempty,oneof=newest views shares title"`
	Limit    int    `validate:"omitempty,gte=1,lte=200"`
}

// PaginationOptions is the cursor-paginated variant of a listing request.
type PaginationOptions struct {
	NumItems int    `validate:"gte=1,lte=200"`
	Cursor   string // decimal offset from the previous page, empty for the first
}

// RelatedOptions selects related content for a source article.
type RelatedOptions struct {
	Slug       string
	Tags       []string
	CategoryID *uuid.UUID
	Limit      int
}

// ArticleInput is one article supplied to the import operations.
type ArticleInput struct {
	LegacyID    string     `json:"legacy_id"`
	Slug        string     `json:"slug" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt *int64     `json:"published_at"` // ms since epoch
	CategoryID  *uuid.UUID `json:"category_id"`
	AuthorID    *uuid.UUID `json:"author_id"`
	Tags        []string   `json:"tags"`
}

// ArticleService owns article resolution, listing, ranking and the article
// lifecycle mutations.
type ArticleService interface {
	// Resolve maps a caller-supplied slug-like string to at most one enriched
	// article. Absence is (nil, nil), never an error.
	Resolve(ctx context.Context, slug string) (*dto.ArticleResponse, error)

	List(ctx context.Context, opts ListOptions) ([]dto.ArticleResponse, error)
	ListPaginated(ctx context.Context, opts ListOptions, page PaginationOptions) (*dto.ArticlePage, error)
	ListRelated(ctx context.Context, opts RelatedOptions) ([]dto.ArticleResponse, error)

	// IncrementView bumps the view counter of the article resolving from the
	// slug. A miss is a silent no-op.
	IncrementView(ctx context.Context, slug string) error

	Import(ctx context.Context, inputs []ArticleInput) (int, error)

	// RepairPublishedAt advances a missing or future-stuck publish time to now
	// for already-published rows; returns the number repaired.
	RepairPublishedAt(ctx context.Context) (int, error)

	// ClearAll removes every article. Administrative only.
	ClearAll(ctx context.Context) (int64, error)
}
