// Package service provides application business logic.
package service

import (
	"bytes"
	"context"
	"image"
	"mime"
	"path/filepath"
	"strings"

	"crudboard/internal/models"
	"crudboard/internal/repository"
	"crudboard/internal/storage"

	"github.com/google/uuid"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// decodableImageExts are extensions we can sanity-check by decoding the
// image header. SVG is accepted but not decodable by the image package.
var decodableImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// UploadInput carries an uploaded file alongside the post being created.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// AttachmentService handles post creation with file uploads. The object is
// stored first, then the post and file rows are written in one transaction;
// a failed write removes the stored object again.
type AttachmentService struct {
	posts   repository.PostRepository
	storage storage.Storage
}

// NewAttachmentService returns a new AttachmentService.
func NewAttachmentService(posts repository.PostRepository, store storage.Storage) *AttachmentService {
	return &AttachmentService{posts: posts, storage: store}
}

// CreatePostWithImage uploads the attachment to object storage and creates
// the post together with its file metadata.
func (s *AttachmentService) CreatePostWithImage(ctx context.Context, post *models.Post, upload *UploadInput) error {
	ext := strings.ToLower(filepath.Ext(upload.Filename))

	if decodableImageExts[ext] {
		if _, _, err := image.DecodeConfig(bytes.NewReader(upload.Content)); err != nil {
			return models.NewValidationError("File is not a valid image")
		}
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := uuid.New().String() + ext
	if err := s.storage.Save(ctx, objectKey, bytes.NewReader(upload.Content), contentType); err != nil {
		return models.NewInternalError(err)
	}

	file := &models.PostFile{
		FileURL:  s.storage.URL(objectKey),
		FileName: upload.Filename,
		FileSize: int64(len(upload.Content)),
		MimeType: contentType,
	}

	if err := s.posts.CreateWithFile(ctx, post, file); err != nil {
		// The object is orphaned if the DB write failed; remove it again.
		// A failed cleanup only leaks an unreferenced object.
		_ = s.storage.Delete(ctx, objectKey)
		return err
	}

	return nil
}
