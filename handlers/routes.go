// routes.go - Maps the HTTP surface onto the handlers
//
// gin's router does not allow a static segment and a parameter segment as
// siblings, so the credential endpoints live at /api/signup and /api/login
// rather than under /api/user, and per-user note listings are subresources
// of /api/user/:userId.

package handlers // Declares the package name

import (
	"net/http"

	"go-notes-backend/middleware" // Authentication, authorization, rate limiting

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRoutes wires every endpoint onto the router. main and the tests
// share this so they exercise the same middleware chain.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := r.Group("/api")

	// Public routes (no authentication required)
	limited := middleware.RateLimit(h.Config.RateLimitRPS, h.Config.RateLimitBurst)
	api.POST("/signup", limited, h.Signup)      // Create account, returns token
	api.POST("/login", limited, h.Login)        // Verify credentials, returns token
	api.GET("/user", h.ValidatePassword)        // Check an email/password pair
	api.GET("/notes/:noteId", h.GetNoteByID)    // Fetch a single note

	// Protected routes (require a valid session token)
	signed := api.Group("", middleware.RequireSignIn(h.DB, h.Config.JWTSecret))
	{
		// Admin-only listings
		signed.GET("/users", middleware.RequireAdmin(), h.GetUsers)
		signed.GET("/notes", middleware.RequireAdmin(), h.GetAllNotes)

		// Account resource (ownership enforced in the handlers)
		signed.GET("/user/:userId", h.GetUserByID)
		signed.PATCH("/user/:userId", h.UpdateUser)
		signed.DELETE("/user/:userId", h.DeleteUser)
		signed.GET("/user/:userId/notes", h.GetNotesByUser)
		signed.GET("/user/:userId/archive", h.GetArchivedNotesByUser)

		// Note resource (ownership enforced in the handlers)
		signed.POST("/notes", h.CreateNote)
		signed.PATCH("/notes/:noteId", h.UpdateNote)
		signed.PATCH("/notes/:noteId/delete-image", h.DeleteNoteImage)
		signed.DELETE("/notes/:noteId", h.DeleteNote)

		// Image hosting
		signed.POST("/images/upload-url", h.GetUploadURL)
	}
}
