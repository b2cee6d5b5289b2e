package models

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

type Article struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// LegacyID carries the identifier of a pre-migration row (usually a UUID)
	// and is only consulted when resolving old inbound URLs.
	LegacyID string `gorm:"index"`

	// Slug is intended to be unique but duplicates can arrive from faulty
	// imports, so it is indexed without a uniqueness constraint.
	Slug    string `gorm:"index;not null"`
	Title   string `gorm:"not null"`
	Content string `gorm:"type:text"`
	Excerpt string

	Status      ArticleStatus `gorm:"default:'draft';index"`
	PublishedAt *time.Time    `gorm:"index:idx_articles_status_published,priority:2"`

	ViewCount  int64 `gorm:"default:0"`
	ShareCount int64 `gorm:"default:0"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	AuthorID   *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Article) TableName() string {
	return "articles"
}

// VisibleAt reports whether the article may be shown to anonymous readers at
// the given instant. A published article with no publish time is visible
// immediately; a future-dated one becomes visible exactly when its publish
// time passes.
func (a *Article) VisibleAt(now time.Time) bool {
	if a.Status != ArticleStatusPublished {
		return false
	}
	if a.PublishedAt == nil {
		return true
	}
	return !a.PublishedAt.After(now)
}

// SortTime is the timestamp used for recency ordering: the publish time when
// set, otherwise the creation time.
func (a *Article) SortTime() time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

// ArticleTag is a many-to-one join row attaching a free-form tag string to an
// article. Tags have no ordering; callers render them as an unordered set.
type ArticleTag struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ArticleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tag       string    `gorm:"not null"`

	CreatedAt time.Time
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
