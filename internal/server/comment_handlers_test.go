package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"crudboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComments(t *testing.T) {
	_, app, db, _ := newTestServer(t)
	author, authorToken := createUser(t, db, "poster1", "secret")
	_, otherToken := createUser(t, db, "lurker1", "secret")

	post := &models.Post{Title: "t", Content: "c", Status: models.PostStatusPublished, AuthorID: author.ID}
	require.NoError(t, db.Create(post).Error)

	commentsPath := fmt.Sprintf("/posts/%d/comments", post.ID)

	t.Run("CreateRequiresAuth", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsPath, "", `{"content":"hi"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Create", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsPath, otherToken,
			`{"content":"nice post"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "nice post", data["content"])

		commentAuthor, ok := data["author"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "lurker1", commentAuthor["userName"])
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsPath, otherToken,
			`{"content":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		resp.Body.Close()

		tooLong := fmt.Sprintf(`{"content":%q}`, strings.Repeat("a", 2001))
		resp = doJSON(t, app, http.MethodPost, commentsPath, otherToken, tooLong)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsPath, authorToken,
			`{"content":"followup"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = doJSON(t, app, http.MethodGet, commentsPath, "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 2)

		first := data[0].(map[string]any)
		assert.Equal(t, "followup", first["content"])
	})

	t.Run("DeleteNonAuthorForbidden", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "mine"}
		require.NoError(t, db.Create(comment).Error)

		resp := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/comments/%d", comment.ID), otherToken, "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("DeleteByAuthor", func(t *testing.T) {
		comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: "temp"}
		require.NoError(t, db.Create(comment).Error)

		resp := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/comments/%d", comment.ID), authorToken, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		// Gone from the listing, 404 on re-delete
		resp = doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/comments/%d", comment.ID), authorToken, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
