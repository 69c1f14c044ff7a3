// user.go - Handles user signup, login, profile and account management

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For gorm.ErrRecordNotFound checks
	"net/http" // HTTP status codes
	"strings"  // For trimming input fields

	"go-notes-backend/auth"       // Credential service
	"go-notes-backend/middleware" // For the authenticated identity
	"go-notes-backend/models"     // User and Note models

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SignupInput struct { // Struct for signup input
	Name     string `json:"name"`     // Display name
	Email    string `json:"email"`    // Email address
	Password string `json:"password"` // Plaintext password (hashed before storage)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email"`    // Email address
	Password string `json:"password"` // Plaintext password
}

type UpdateUserInput struct { // Struct for profile updates, discriminated by UpdateType
	UpdateType      string `json:"updateType"`      // "CHANGE PREFERENCES" or "CHANGE PASSWORD"
	PrefersGridView *bool  `json:"prefersGridView"` // New view preference (present = apply)
	OldPassword     string `json:"oldPassword"`     // Current password, verified before a change
	NewPassword     string `json:"newPassword"`     // Replacement password
}

// Signup - Handler for user registration. Returns 201 with a session token.
func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Required fields must be present and non-blank
	if strings.TrimSpace(input.Name) == "" {
		respondError(c, http.StatusBadRequest, "Name cannot be empty.")
		return
	}
	if strings.TrimSpace(input.Email) == "" {
		respondError(c, http.StatusBadRequest, "Email cannot be empty.")
		return
	}
	if strings.TrimSpace(input.Password) == "" {
		respondError(c, http.StatusBadRequest, "Password cannot be empty.")
		return
	}

	// Reject duplicate accounts before hashing
	var existing models.User
	err := h.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		respondError(c, http.StatusBadRequest, "A user already exists with the provided email id. Try logging in.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Unable to signup, please try again.")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Unable to signup, please try again.")
		return
	}

	user := models.User{
		Name:            input.Name,
		Email:           input.Email,
		Password:        hash,
		Image:           models.DefaultAvatarURL,
		PrefersGridView: true, // Grid view is the default preference
	}
	if err := h.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Unable to signup, please try again.")
		return
	}

	token, err := auth.IssueToken(user.ID, user.Email, h.Config.JWTSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Unable to signup, please try again.")
		return
	}

	payload := userPayload(user)
	payload["token"] = token
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "New user created successfully!",
		"user":    payload,
	})
}

// Login - Handler for user login. Wrong credentials are a client error (400),
// never an authentication error: no token was presented.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Email == "" {
		respondError(c, http.StatusBadRequest, "Email cannot be empty.")
		return
	}
	if input.Password == "" {
		respondError(c, http.StatusBadRequest, "Password cannot be empty.")
		return
	}

	var user models.User
	err := h.DB.Where("email = ?", input.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusBadRequest, "Cannot find a user with provided email id. Provide valid credentials or maybe try signing up instead.")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Unable to login. Please try again later.")
		return
	}

	ok, err := auth.CheckPassword(input.Password, user.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Unable to login. Please try again later.")
		return
	}
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid credentials. Please try again with correct credentials.")
		return
	}

	token, err := auth.IssueToken(user.ID, user.Email, h.Config.JWTSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Unable to login. Please try again later.")
		return
	}

	payload := userPayload(user)
	payload["token"] = token
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully!",
		"user":    payload,
	})
}

// ValidatePassword - Handler to check an email/password pair without issuing
// a token. Used by the client before destructive account actions.
func (h *Handler) ValidatePassword(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	err := h.DB.Where("email = ?", input.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusBadRequest, "Could not find a user with provided email id")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Couldn't validate password")
		return
	}

	ok, err := auth.CheckPassword(input.Password, user.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Couldn't validate password")
		return
	}
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password is correct.",
	})
}

// GetUsers - Admin-only listing of all accounts.
func (h *Handler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Couldn't fetch users from the database.")
		return
	}

	userData := make([]gin.H, 0, len(users))
	for _, user := range users {
		userData = append(userData, gin.H{
			"userId":  user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"isAdmin": user.IsAdmin,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Users fetched successfully!",
		"users":   userData,
	})
}

// GetUserByID - Fetch a single profile.
func (h *Handler) GetUserByID(c *gin.Context) {
	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Could not find a user with provided user id.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User found.",
		"user":    userPayload(user),
	})
}

// UpdateUser - Profile updates: view preference or password change.
// Only the account owner may modify the account.
func (h *Handler) UpdateUser(c *gin.Context) {
	identity, _ := middleware.CurrentUser(c)

	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Couldn't find a user with provided user id.")
		return
	}

	// Ownership check: identity must be the account owner
	if user.ID != identity.ID {
		respondError(c, http.StatusForbidden, "Only the owner of an account can modify or delete it.")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	switch input.UpdateType {
	case "CHANGE PREFERENCES":
		if input.PrefersGridView == nil { // Field must be present, false is a valid value
			respondError(c, http.StatusBadRequest, "prefersGridView is required to change preferences.")
			return
		}

		user.PrefersGridView = *input.PrefersGridView
		if err := h.DB.Save(&user).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Couldn't update user, please try again later.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"message":         "Preferences changed successfully!",
			"prefersGridView": user.PrefersGridView,
		})

	case "CHANGE PASSWORD":
		ok, err := auth.CheckPassword(input.OldPassword, user.Password)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Couldn't update user, please try again later.")
			return
		}
		if !ok {
			respondError(c, http.StatusBadRequest, "Invalid password.")
			return
		}
		if strings.TrimSpace(input.NewPassword) == "" {
			respondError(c, http.StatusBadRequest, "New password cannot be empty.")
			return
		}

		hash, err := auth.HashPassword(input.NewPassword)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Couldn't update user, please try again later.")
			return
		}

		user.Password = hash
		if err := h.DB.Save(&user).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Couldn't update user, please try again later.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Password changed successfully!",
		})

	default:
		respondError(c, http.StatusBadRequest, "Unknown update type.")
	}
}

// DeleteUser - Deletes an account and cascades to all owned notes and their
// hosted images. The user row goes first, then each note; the writes are
// sequential and independently committed, so notes are orphaned only
// transiently while the cascade runs.
func (h *Handler) DeleteUser(c *gin.Context) {
	identity, _ := middleware.CurrentUser(c)

	// STEP 1: Load the account with its notes and their image references
	var user models.User
	if err := h.DB.Preload("Notes.Images").First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Could not find a user with provided user id.")
		return
	}

	// STEP 2: Ownership check
	if user.ID != identity.ID {
		respondError(c, http.StatusForbidden, "Only the owner of an account can modify or delete it.")
		return
	}

	// STEP 3: Delete the user row
	if err := h.DB.Delete(&models.User{}, user.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Couldn't delete user. Please try again later.")
		return
	}

	// STEP 4: Cascade to every owned note
	for _, note := range user.Notes {
		h.destroyNoteImages(c, note)
		if err := h.DB.Where("note_id = ?", note.ID).Delete(&models.NoteImage{}).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Couldn't delete user. Please try again later.")
			return
		}
		if err := h.DB.Delete(&models.Note{}, note.ID).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Couldn't delete user. Please try again later.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully!",
	})
}

// destroyNoteImages removes a note's hosted images from the external store.
// Failures are logged and swallowed: the hosting service is best-effort and
// must not block a deletion that already started.
func (h *Handler) destroyNoteImages(c *gin.Context, note models.Note) {
	for _, image := range note.Images {
		if err := h.Images.Destroy(c.Request.Context(), image.PublicID); err != nil {
			log.Warn().Err(err).
				Str("public_id", image.PublicID).
				Uint("note_id", note.ID).
				Msg("failed to delete hosted image")
		}
	}
}
