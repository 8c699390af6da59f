package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-codec-tests"

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := Issue(testSecret, 42, "alice", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Verify(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserIdx)
	assert.Equal(t, "alice", claims.UserName)
}

func TestVerifyExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rememberMe bool
		checkAt    time.Time
		wantValid  bool
	}{
		{"default just under 24h", false, issued.Add(24*time.Hour - time.Minute), true},
		{"default at 24h", false, issued.Add(24 * time.Hour), false},
		{"default past 24h", false, issued.Add(25 * time.Hour), false},
		{"remember-me just under 10d", true, issued.Add(10*24*time.Hour - time.Minute), true},
		{"remember-me at 10d", true, issued.Add(10 * 24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := issueAt(testSecret, 7, "bob", tt.rememberMe, issued)
			require.NoError(t, err)

			claims, err := verifyAt(testSecret, token, tt.checkAt)
			if tt.wantValid {
				require.NoError(t, err)
				assert.Equal(t, uint(7), claims.UserIdx)
			} else {
				assert.ErrorIs(t, err, ErrInvalidToken)
			}
		})
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Issue(testSecret, 1, "alice", false)
	require.NoError(t, err)

	_, err = Verify("a-different-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	_, err := Verify(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	// Well-formed and correctly signed, but no user identifier.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_name": "ghost",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never verify.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Verify(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSecret(t *testing.T) {
	_, err := Issue("", 1, "alice", false)
	assert.Error(t, err)
}
