package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crudboard/internal/auth"
	"crudboard/internal/config"
	"crudboard/internal/models"
	"crudboard/internal/repository"
	"crudboard/internal/service"
	"crudboard/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "handler-test-secret"

// memoryStorage is an in-memory storage.Storage for handler tests.
type memoryStorage struct {
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (m *memoryStorage) Save(_ context.Context, path string, body io.Reader, _ string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[path] = data
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, path string) error {
	delete(m.objects, path)
	return nil
}

func (m *memoryStorage) URL(path string) string {
	return "https://files.test/" + path
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostFile{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// newTestServer builds a Server over an in-memory DB and storage, plus a
// Fiber app with the real route table mounted.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB, *memoryStorage) {
	t.Helper()

	db := setupHandlerTestDB(t)
	store := newMemoryStorage()

	cfg := &config.Config{
		JWTSecret: testJWTSecret,
		Port:      "0",
		Env:       "test",
	}

	postRepo := repository.NewPostRepository(db)
	s := &Server{
		config:      cfg,
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		postRepo:    postRepo,
		commentRepo: repository.NewCommentRepository(db),
		fileRepo:    repository.NewFileRepository(db),
		attachments: service.NewAttachmentService(postRepo, store),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, err)
		},
	})
	s.SetupRoutes(app)

	return s, app, db, store
}

// createUser inserts a user with a real password hash and returns it with a
// valid bearer token.
func createUser(t *testing.T, db *gorm.DB, userID, password string) (*models.User, string) {
	t.Helper()

	hash, err := validation.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{UserID: userID, UserName: userID, Password: hash}
	require.NoError(t, db.Create(user).Error)

	token, err := auth.Issue(testJWTSecret, user.ID, user.UserName, false)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRootEndpoint(t *testing.T) {
	_, app, _, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "CRUD Board API", body["message"])
}

func TestAuthRequiredRejectsMissingAndBadTokens(t *testing.T) {
	_, app, _, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodDelete, "/posts/1", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/posts/1", "not-a-token", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
