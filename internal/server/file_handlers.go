package server

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"crudboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// imageExts classifies attachments for the file listing. Anything else is
// tagged as a document.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".svg":  true,
}

// fileSummary is the per-attachment shape returned by GET /posts/:id/files.
type fileSummary struct {
	ID                uint      `json:"id"`
	FileName          string    `json:"file_name"`
	FileURL           string    `json:"file_url"`
	FileSize          int64     `json:"file_size"`
	FileSizeFormatted string    `json:"file_size_formatted"`
	FileType          string    `json:"file_type"`
	MimeType          string    `json:"mime_type"`
	CreatedAt         time.Time `json:"created_at"`
}

// FormatFileSize renders a byte count for display: bytes below 1 KB,
// one decimal of KB below 1 MB, one decimal of MB above.
func FormatFileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

func fileTypeTag(fileName string) string {
	if imageExts[strings.ToLower(filepath.Ext(fileName))] {
		return "image"
	}
	return "document"
}

// GetPostFiles handles GET /posts/:id/files
// @Summary List a post's attachments
// @Tags files
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{data=[]object{id=int,file_name=string,file_url=string,file_size=int,file_size_formatted=string,file_type=string,mime_type=string,created_at=string}}
// @Router /posts/{id}/files [get]
func (s *Server) GetPostFiles(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	files, err := s.fileRepo.ListByPost(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	summaries := make([]fileSummary, 0, len(files))
	for _, f := range files {
		mimeType := f.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		summaries = append(summaries, fileSummary{
			ID:                f.ID,
			FileName:          f.FileName,
			FileURL:           f.FileURL,
			FileSize:          f.FileSize,
			FileSizeFormatted: FormatFileSize(f.FileSize),
			FileType:          fileTypeTag(f.FileName),
			MimeType:          mimeType,
			CreatedAt:         f.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"data": summaries})
}
