package repository

import (
	"context"

	"crudboard/internal/models"

	"gorm.io/gorm"
)

// FileRepository defines the interface for post attachment metadata.
type FileRepository interface {
	ListByPost(ctx context.Context, postID uint) ([]*models.PostFile, error)
}

type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

// ListByPost returns a post's attachments in upload order.
func (r *fileRepository) ListByPost(ctx context.Context, postID uint) ([]*models.PostFile, error) {
	var files []*models.PostFile
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&files).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return files, nil
}
