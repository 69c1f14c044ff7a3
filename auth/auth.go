// auth.go - Credential service: password hashing and session tokens
//
// Passwords are stored as bcrypt hashes with a per-call random salt and are
// never logged. Session tokens are stateless HS256 JWTs carrying only the
// user ID and email, valid for 7 days; there is no revocation list.

package auth // Declares the package name

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

// TokenValidity is how long an issued session token is accepted.
const TokenValidity = 7 * 24 * time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// malformed, expired, or signed with the wrong key.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the session token payload: the registered claims plus the
// bound user identifier and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// HashPassword hashes a plaintext password with bcrypt. Each call salts
// independently, so the result is never deterministic.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored hash.
// A wrong password returns (false, nil); an error is returned only when the
// stored hash itself is malformed.
func CheckPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// IssueToken signs a session token for the given user, expiring after
// TokenValidity.
func IssueToken(userID uint, email, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		UserID: userID,
		Email:  email,
	})

	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
