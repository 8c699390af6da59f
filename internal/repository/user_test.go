package repository

import (
	"context"
	"errors"
	"testing"

	"crudboard/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostFile{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("CreateAndGetByUserID", func(t *testing.T) {
		user := &models.User{UserID: "alice", UserName: "Alice", Password: "hashed"}
		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)

		fetched, err := repo.GetByUserID(ctx, "alice")
		assert.NoError(t, err)
		if assert.NotNil(t, fetched) {
			assert.Equal(t, "Alice", fetched.UserName)
		}
	})

	t.Run("DuplicateUserID", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{UserID: "alice", UserName: "Other", Password: "hashed"})
		assert.Error(t, err)

		var appErr *models.AppError
		if assert.True(t, errors.As(err, &appErr)) {
			assert.Equal(t, models.CodeConflict, appErr.Code)
		}

		var count int64
		db.Model(&models.User{}).Where("user_id = ?", "alice").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("GetByUserIDAbsent", func(t *testing.T) {
		fetched, err := repo.GetByUserID(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.Error(t, err)

		var appErr *models.AppError
		if assert.True(t, errors.As(err, &appErr)) {
			assert.Equal(t, models.CodeNotFound, appErr.Code)
		}
	})
}
