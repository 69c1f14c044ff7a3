// handlers.go - Shared handler state and response envelope helpers

package handlers // Declares the package name

import (
	"go-notes-backend/config"  // Project config
	"go-notes-backend/models"  // User model
	"go-notes-backend/storage" // Image hosting client

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM
)

// Handler carries the process-wide collaborators. Everything is injected
// once at startup; handlers keep no other state between requests.
type Handler struct {
	DB     *gorm.DB          // Database connection pool
	Config *config.Config    // Read-only configuration
	Images storage.ImageStore // External image hosting service
}

func New(db *gorm.DB, cfg *config.Config, images storage.ImageStore) *Handler {
	return &Handler{DB: db, Config: cfg, Images: images}
}

// respondError writes the standard failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"status":  status,
	})
}

// userPayload shapes a user for API responses. The password hash never
// leaves the process.
func userPayload(user models.User) gin.H {
	return gin.H{
		"userId":          user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"isAdmin":         user.IsAdmin,
		"prefersGridView": user.PrefersGridView,
	}
}
