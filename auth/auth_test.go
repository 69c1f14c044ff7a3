// auth_test.go - Tests for password hashing and session tokens
// Run with: go test ./...

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash) // Never stored as plaintext

	// Correct password verifies
	ok, err := CheckPassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	// Wrong password is a mismatch, not an error
	ok, err = CheckPassword("other", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second) // Per-call random salt
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	_, err := CheckPassword("secret1", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(42, "ann@x.com", "test-secret")
	require.NoError(t, err)

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ann@x.com", claims.Email)
}

func TestParseTokenWrongKey(t *testing.T) {
	token, err := IssueToken(42, "ann@x.com", "test-secret")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "test-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWrongAlgorithm(t *testing.T) {
	// Tokens must be HS256; the same secret under another method is refused
	other := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 42,
		Email:  "ann@x.com",
	})
	tokenString, err := other.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(tokenString, "test-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	// Craft a token that expired an hour ago with the same claims shape
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: 42,
		Email:  "ann@x.com",
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(tokenString, "test-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
