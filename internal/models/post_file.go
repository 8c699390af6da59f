package models

import "time"

// PostFile is the metadata row for a file uploaded alongside a post.
// Rows are written once, in the same transaction as their post, and are
// never updated afterwards.
type PostFile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	FileName  string    `gorm:"not null" json:"file_name"`
	FileSize  int64     `gorm:"not null;default:0" json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}
