package video

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	URL             string    `gorm:"type:text;not null" json:"url"`
	ThumbnailURL    string    `gorm:"type:text" json:"thumbnail_url,omitempty"`
	DurationSeconds int       `gorm:"not null;default:0" json:"duration_seconds"`
	Category        *string   `gorm:"type:text;index" json:"category,omitempty"`
	SortOrder       int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
