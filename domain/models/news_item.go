package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsItem is a row ingested from the external news API. Identity is the
// ExternalID (the source URL, or a synthesized string when the URL is
// absent); repeated ingestion of the same id updates the row in place.
type NewsItem struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExternalID string    `gorm:"uniqueIndex;not null"`

	Source      string
	IsAutomated bool `gorm:"default:true"`
	OriginalURL string
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`

	PublishedAt time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (NewsItem) TableName() string {
	return "news_items"
}
