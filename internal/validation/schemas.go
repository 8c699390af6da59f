// Package validation provides input validation utilities.
package validation

import (
	"fmt"
)

// SignUpRequest is the payload for POST /signup.
type SignUpRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	UserID     string `json:"userId"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// WriteRequest is the payload for PUT /posts/:id and the field set of the
// multipart POST /write form. Status is expected to be draft or published
// but is deliberately not enum-enforced.
type WriteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// CommentRequest is the payload for POST /posts/:id/comments.
type CommentRequest struct {
	Content string `json:"content"`
}

const maxCommentLength = 2000

// ValidateSignUp enforces the signup field constraints: login ID 4-20
// characters, password at least 4, display name 2-20.
func ValidateSignUp(req *SignUpRequest) error {
	if req.UserID == "" || req.Password == "" || req.UserName == "" {
		return fmt.Errorf("userId, password, and userName are required")
	}
	if len(req.UserID) < 4 || len(req.UserID) > 20 {
		return fmt.Errorf("userId must be between 4 and 20 characters")
	}
	if len(req.Password) < 4 {
		return fmt.Errorf("password must be at least 4 characters")
	}
	if len(req.UserName) < 2 || len(req.UserName) > 20 {
		return fmt.Errorf("userName must be between 2 and 20 characters")
	}
	return nil
}

// ValidateLogin checks that both credentials are present. No length
// constraints apply at login; the stored hash decides.
func ValidateLogin(req *LoginRequest) error {
	if req.UserID == "" || req.Password == "" {
		return fmt.Errorf("userId and password are required")
	}
	return nil
}

// ValidateWrite checks the structural constraints of a post write.
func ValidateWrite(req *WriteRequest) error {
	if req.Title == "" || req.Content == "" {
		return fmt.Errorf("title and content are required")
	}
	return nil
}

// ValidateComment checks the structural constraints of a comment write.
func ValidateComment(req *CommentRequest) error {
	if req.Content == "" {
		return fmt.Errorf("content is required")
	}
	if len(req.Content) > maxCommentLength {
		return fmt.Errorf("content must not exceed %d characters", maxCommentLength)
	}
	return nil
}
