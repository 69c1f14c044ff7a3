// auth.go - JWT authentication middleware
// This file implements the access guard for the API
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Load the full user record for the token's user ID
// 4. Store the user in context for handlers
//
// Authorization Flow (Admin):
// 1. Run after RequireSignIn on the route
// 2. Read the authenticated user from context
// 3. Allow/deny access based on the admin flag
//
// A request moves Unauthenticated -> Authenticated -> Authorized -> Handled;
// any failed transition aborts with an error envelope and there are no retries.

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (401, 403, etc.)
	"strings"  // String operations (for header parsing)

	"go-notes-backend/auth"   // Token parsing
	"go-notes-backend/models" // User model (for identity loading)

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
	"gorm.io/gorm"             // GORM ORM (for user queries)
)

// identityKey is the gin context key holding the authenticated user.
const identityKey = "identity"

// RequireSignIn - Returns a Gin middleware function for JWT authentication
// The signing secret and the database handle are injected at wiring time;
// the middleware holds no package state.
//
// The full user record is loaded from storage on every call. That is an
// avoidable per-request lookup, kept because role and ownership decisions
// must see current user state, not what the token was issued with.
func RequireSignIn(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			abortWithError(c, http.StatusUnauthorized, "Authentication failed. Please sign in.")
			return
		}

		// STEP 2: Parse and verify the token
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		claims, err := auth.ParseToken(tokenStr, jwtSecret)
		if err != nil { // Malformed, expired or signature-invalid
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		// STEP 3: Resolve the identity behind the token
		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			abortWithError(c, http.StatusUnauthorized, "Could not find a user for the provided token.")
			return
		}

		c.Set(identityKey, user) // Store identity in Gin context
		c.Next()                 // Continue to next handler (authentication successful)
	}
}

// RequireAdmin - Returns a Gin middleware function for admin access control
// Must run after RequireSignIn on the same route.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok { // RequireSignIn did not run or was aborted
			abortWithError(c, http.StatusUnauthorized, "Authentication failed. Please sign in.")
			return
		}

		if !user.IsAdmin { // Role mismatch is Forbidden, not Unauthorized
			abortWithError(c, http.StatusForbidden, "Admin access required.")
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}

// CurrentUser returns the authenticated user stored by RequireSignIn.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// abortWithError writes the standard error envelope and stops the chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
		"status":  status,
	})
}
