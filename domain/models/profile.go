package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public author identity attached to articles. The account it
// belongs to lives in an external auth system; UserID is its opaque handle.
type Profile struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FullName  string    `gorm:"not null"`
	AvatarURL string
	UserID    string `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
