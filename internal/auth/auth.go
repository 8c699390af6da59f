// Package auth issues and verifies the signed bearer tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Remember-me logins get the extended window; there is no
// refresh or revocation mechanism, a token simply expires.
const (
	AccessTokenTTL = 24 * time.Hour
	RememberMeTTL  = 10 * 24 * time.Hour
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, malformed, or missing the subject claim.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity carried by a verified token.
type Claims struct {
	UserIdx  uint
	UserName string
}

// Issue creates a signed HS256 token embedding the user identity.
// The expiry is now+24h, or now+10d when rememberMe is set.
func Issue(secret string, userIdx uint, userName string, rememberMe bool) (string, error) {
	return issueAt(secret, userIdx, userName, rememberMe, time.Now())
}

func issueAt(secret string, userIdx uint, userName string, rememberMe bool, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	ttl := AccessTokenTTL
	if rememberMe {
		ttl = RememberMeTTL
	}

	claims := jwt.MapClaims{
		"sub":       strconv.FormatUint(uint64(userIdx), 10),
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify checks signature and expiry and extracts the identity claims.
// It is a pure function of the token and the process-wide secret.
func Verify(secret, tokenString string) (*Claims, error) {
	return verifyAt(secret, tokenString, time.Now())
}

func verifyAt(secret, tokenString string, now time.Time) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	userIdx, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userName, _ := claims["user_name"].(string)

	return &Claims{UserIdx: uint(userIdx), UserName: userName}, nil
}
