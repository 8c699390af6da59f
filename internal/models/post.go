package models

import (
	"time"

	"gorm.io/gorm"
)

// Post statuses. Status is stored as plain text; anything other than
// "published" is simply excluded from the public listing.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post represents a board post authored by a user.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Status    string         `gorm:"size:20;not null;default:draft" json:"status"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author"`
	ViewCount int            `gorm:"not null;default:0" json:"view_count"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
