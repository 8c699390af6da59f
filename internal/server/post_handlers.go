package server

import (
	"io"

	"crudboard/internal/models"
	"crudboard/internal/service"
	"crudboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /write
// @Summary Create a post
// @Description Create a post from a multipart form, optionally with an image attachment
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param title formData string true "Post title"
// @Param content formData string true "Post content"
// @Param status formData string false "draft or published"
// @Param image formData file false "Image attachment"
// @Success 201 {object} object{message=string,data=models.Post}
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /write [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	req := validation.WriteRequest{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
		Status:  c.FormValue("status"),
	}
	if req.Status == "" {
		req.Status = models.PostStatusDraft
	}

	if err := validation.ValidateWrite(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Status:   req.Status,
		AuthorID: userID,
	}

	fileHeader, fileErr := c.FormFile("image")
	if fileErr != nil || fileHeader == nil {
		if err := s.postRepo.Create(ctx, post); err != nil {
			return models.RespondWithError(c, err)
		}
	} else {
		f, err := fileHeader.Open()
		if err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}

		upload := &service.UploadInput{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     content,
		}
		if err := s.attachments.CreatePostWithImage(ctx, post, upload); err != nil {
			return models.RespondWithError(c, err)
		}
	}

	// Load author data for the response
	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"data":    created,
	})
}

// GetPosts handles GET /posts
// @Summary List published posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} object{data=[]models.Post,page=int,limit=int,total=int,totalPages=int}
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c)

	posts, total, err := s.postRepo.ListPublished(ctx, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":       posts,
		"page":       page.Page,
		"limit":      page.Limit,
		"total":      total,
		"totalPages": totalPages(total, page.Limit),
	})
}

// GetPost handles GET /posts/:id
// @Summary Get a single post
// @Description Returns the post with its author and bumps the view counter
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{data=models.Post}
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Count the view before reading so the response reflects it
	if err := s.postRepo.IncrementViewCount(ctx, id); err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"data": post})
}

// UpdatePost handles PUT /posts/:id
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body validation.WriteRequest true "Updated fields"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req validation.WriteRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateWrite(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError(err.Error()))
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if post.AuthorID != userID {
		return models.RespondWithError(c,
			models.NewForbiddenError("You can only edit your own posts"))
	}

	post.Title = req.Title
	post.Content = req.Content
	if req.Status != "" {
		post.Status = req.Status
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post updated successfully"})
}

// DeletePost handles DELETE /posts/:id
// @Summary Delete a post
// @Description Soft-deletes the post; it disappears from all reads
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if post.AuthorID != userID {
		return models.RespondWithError(c,
			models.NewForbiddenError("You can only delete your own posts"))
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
