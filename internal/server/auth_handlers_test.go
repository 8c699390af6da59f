package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	_, app, _, _ := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/signup", "",
			`{"userId":"alice123","password":"secret","userName":"Alice"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "alice123", body["userId"])
		assert.Equal(t, "Alice", body["userName"])
		assert.NotContains(t, body, "password")
	})

	t.Run("DuplicateUserID", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/signup", "",
			`{"userId":"alice123","password":"other","userName":"Imposter"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "CONFLICT", body["code"])
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		cases := []string{
			`{"userId":"ab","password":"secret","userName":"Alice"}`,    // userId too short
			`{"userId":"bob12345","password":"pw","userName":"Bob"}`,    // password too short
			`{"userId":"bob12345","password":"secret","userName":"B"}`,  // userName too short
			`{"userId":"","password":"secret","userName":"NoLoginID"}`,  // missing userId
		}
		for _, payload := range cases {
			resp := doJSON(t, app, http.MethodPost, "/signup", "", payload)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			resp.Body.Close()
		}
	})
}

func TestLogin(t *testing.T) {
	_, app, db, _ := newTestServer(t)
	createUser(t, db, "frank42", "hunter22")

	t.Run("Success", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/login", "",
			`{"userId":"frank42","password":"hunter22"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Login successful", body["message"])
		assert.NotEmpty(t, body["access_token"])
		assert.Equal(t, "bearer", body["token_type"])
		assert.Equal(t, false, body["remember_me"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "frank42", user["userName"])
	})

	t.Run("RememberMe", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/login", "",
			`{"userId":"frank42","password":"hunter22","rememberMe":true}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["remember_me"])
	})

	t.Run("WrongPasswordAndUnknownUserAreIndistinguishable", func(t *testing.T) {
		respWrongPw := doJSON(t, app, http.MethodPost, "/login", "",
			`{"userId":"frank42","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, respWrongPw.StatusCode)
		bodyWrongPw := decodeBody(t, respWrongPw)

		respUnknown := doJSON(t, app, http.MethodPost, "/login", "",
			`{"userId":"stranger","password":"hunter22"}`)
		require.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
		bodyUnknown := decodeBody(t, respUnknown)

		assert.Equal(t, bodyWrongPw, bodyUnknown)
	})

	t.Run("MissingFields", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/login", "",
			`{"userId":"frank42"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("TokenGrantsAccessToProtectedRoutes", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/login", "",
			`{"userId":"frank42","password":"hunter22"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		token, _ := decodeBody(t, resp)["access_token"].(string)
		require.NotEmpty(t, token)

		// Deleting a nonexistent post with a valid token gets past auth (404, not 401)
		resp = doJSON(t, app, http.MethodDelete, "/posts/99999", token, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}
