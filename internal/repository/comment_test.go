package repository

import (
	"context"
	"testing"
	"time"

	"crudboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "commenter")
	post := &models.Post{Title: "t", Content: "c", Status: models.PostStatusPublished, AuthorID: author.ID}
	require.NoError(t, db.Create(post).Error)

	t.Run("Create", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "first"}
		err := repo.Create(ctx, comment)
		assert.NoError(t, err)
		assert.NotZero(t, comment.ID)
		assert.Equal(t, "commenter", comment.Author.UserName)
	})

	t.Run("ListByPostNewestFirst", func(t *testing.T) {
		base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		older := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "older", CreatedAt: base}
		newer := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "newer", CreatedAt: base.Add(time.Minute)}
		require.NoError(t, db.Create(older).Error)
		require.NoError(t, db.Create(newer).Error)

		comments, err := repo.ListByPost(ctx, post.ID)
		assert.NoError(t, err)
		require.NotEmpty(t, comments)
		assert.Equal(t, "newer", comments[0].Content)
	})

	t.Run("SoftDelete", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "temp"}
		require.NoError(t, repo.Create(ctx, comment))

		before, err := repo.ListByPost(ctx, post.ID)
		require.NoError(t, err)

		assert.NoError(t, repo.Delete(ctx, comment.ID))

		_, err = repo.GetByID(ctx, comment.ID)
		assert.Error(t, err)

		after, err := repo.ListByPost(ctx, post.ID)
		assert.NoError(t, err)
		assert.Len(t, after, len(before)-1)
	})
}

func TestFileRepository_ListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFileRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "uploader")
	post := &models.Post{Title: "t", Content: "c", Status: models.PostStatusPublished, AuthorID: author.ID}
	require.NoError(t, db.Create(post).Error)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	second := &models.PostFile{PostID: post.ID, FileURL: "u2", FileName: "b.png", FileSize: 2, MimeType: "image/png", CreatedAt: base.Add(time.Minute)}
	first := &models.PostFile{PostID: post.ID, FileURL: "u1", FileName: "a.png", FileSize: 1, MimeType: "image/png", CreatedAt: base}
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(first).Error)

	files, err := repo.ListByPost(ctx, post.ID)
	assert.NoError(t, err)
	if assert.Len(t, files, 2) {
		assert.Equal(t, "a.png", files[0].FileName)
		assert.Equal(t, "b.png", files[1].FileName)
	}

	files, err = repo.ListByPost(ctx, 9999)
	assert.NoError(t, err)
	assert.Empty(t, files)
}
