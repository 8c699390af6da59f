// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"crudboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data. Every seeded user logs in with
// the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, post_files, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include a well-known test account
	if count >= 1 {
		users = append(users, models.User{
			UserID:   "testuser",
			UserName: "Test User",
			Password: string(hashedPassword),
		})
	}

	for i := len(users); i < count; i++ {
		userID := strings.ToLower(gofakeit.Username())
		if len(userID) > 20 {
			userID = userID[:20]
		}
		if len(userID) < 4 {
			userID = fmt.Sprintf("%s%04d", userID, i)
		}

		userName := gofakeit.FirstName()
		if len(userName) > 20 {
			userName = userName[:20]
		}

		users = append(users, models.User{
			UserID:   userID,
			UserName: userName,
			Password: string(hashedPassword),
		})
	}

	for i := range users {
		if err := db.Where("user_id = ?", users[i].UserID).
			FirstOrCreate(&users[i]).Error; err != nil {
			return nil, err
		}
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]

		status := models.PostStatusPublished
		if r.Intn(10) == 0 {
			status = models.PostStatusDraft
		}

		// realistic created_at spread over the last 90 days
		createdAt := time.Now().
			Add(-time.Duration(r.Intn(90)) * 24 * time.Hour).
			Add(-time.Duration(r.Intn(24)) * time.Hour)

		post := models.Post{
			Title:     gofakeit.Sentence(5),
			Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
			Status:    status,
			AuthorID:  author.ID,
			ViewCount: r.Intn(500),
			CreatedAt: createdAt,
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []models.User, posts []models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	total := 0
	for _, post := range posts {
		for i := 0; i < r.Intn(5); i++ {
			comment := models.Comment{
				PostID:    post.ID,
				AuthorID:  users[r.Intn(len(users))].ID,
				Content:   gofakeit.Sentence(8),
				CreatedAt: post.CreatedAt.Add(time.Duration(i+1) * time.Hour),
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("%d comments created", total)
	return nil
}
