// note.go - Handles note CRUD, listings, images and cascading deletes

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strings"  // For trimming input fields

	"go-notes-backend/middleware" // For the authenticated identity
	"go-notes-backend/models"     // Note models

	"github.com/gin-gonic/gin" // Gin web framework
)

type ImageInput struct { // Struct for one hosted image reference
	ImageURL string `json:"image_url"` // Public URL on the hosting service
	PublicID string `json:"public_id"` // Opaque hosting identifier
}

type CreateNoteInput struct { // Struct for note creation
	Title       string       `json:"title"`       // Note title
	Description string       `json:"description"` // Note body
	Images      []ImageInput `json:"images"`      // Already-uploaded images
}

// UpdateNoteInput uses pointer fields so that "absent" and "present with a
// zero value" are distinguishable: a field is updated if and only if it
// appears in the payload. Unpinning (isPinned=false) and unarchiving work
// because of this.
type UpdateNoteInput struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Images      *[]ImageInput `json:"images"`
	IsPinned    *bool         `json:"isPinned"`
	Archive     *bool         `json:"archive"`
}

type DeleteImageInput struct { // Struct for removing one image from a note
	ImageData ImageInput `json:"imageData"`
}

// GetAllNotes - Admin-only listing of every note in the store.
func (h *Handler) GetAllNotes(c *gin.Context) {
	var notes []models.Note
	if err := h.DB.Preload("Images").Find(&notes).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Could not get notes.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notes fetched successfully!",
		"notes":   notes,
	})
}

// GetNotesByUser - Active (non-archived) notes for a user, newest first.
func (h *Handler) GetNotesByUser(c *gin.Context) {
	var notes []models.Note
	err := h.DB.Preload("Images").
		Where("creator_id = ? AND archive = ?", c.Param("userId"), false).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not get notes for the provided user id.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notes fetched successfully!",
		"notes":   notes,
	})
}

// GetArchivedNotesByUser - Archived notes for a user, newest first.
func (h *Handler) GetArchivedNotesByUser(c *gin.Context) {
	var archivedNotes []models.Note
	err := h.DB.Preload("Images").
		Where("creator_id = ? AND archive = ?", c.Param("userId"), true).
		Order("created_at DESC").
		Find(&archivedNotes).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not get notes for the provided user id.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Notes fetched successfully!",
		"archivedNotes": archivedNotes,
	})
}

// GetNoteByID - Fetch a single note.
func (h *Handler) GetNoteByID(c *gin.Context) {
	var note models.Note
	if err := h.DB.Preload("Images").First(&note, "id = ?", c.Param("noteId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Could not find any note with the provided id.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note fetched successfully!",
		"note":    note,
	})
}

// CreateNote - Creates a note owned by the authenticated user. The note is
// attached to the owner's collection through its creator reference.
func (h *Handler) CreateNote(c *gin.Context) {
	identity, _ := middleware.CurrentUser(c)

	var input CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(input.Title) == "" {
		respondError(c, http.StatusBadRequest, "Title cannot be empty.")
		return
	}
	if strings.TrimSpace(input.Description) == "" {
		respondError(c, http.StatusBadRequest, "Description cannot be empty.")
		return
	}

	note := models.Note{
		Title:       input.Title,
		Description: input.Description,
		Images:      toNoteImages(input.Images),
		CreatorID:   identity.ID,
	}
	if err := h.DB.Create(&note).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create note. Please try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note created successfully!",
		"note":    note,
	})
}

// UpdateNote - Partial update with explicit field-presence semantics.
// Only the creator of a note can update it.
func (h *Handler) UpdateNote(c *gin.Context) {
	identity, _ := middleware.CurrentUser(c)

	var note models.Note
	if err := h.DB.Preload("Images").First(&note, "id = ?", c.Param("noteId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Could not find any note with the provided id.")
		return
	}

	if note.CreatorID != identity.ID {
		respondError(c, http.StatusForbidden, "Only the creator of a note can update or delete it.")
		return
	}

	var input UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Title and description stay required: present-but-blank is invalid
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			respondError(c, http.StatusBadRequest, "Title cannot be empty.")
			return
		}
		note.Title = *input.Title
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			respondError(c, http.StatusBadRequest, "Description cannot be empty.")
			return
		}
		note.Description = *input.Description
	}
	if input.IsPinned != nil {
		note.IsPinned = *input.IsPinned
	}
	if input.Archive != nil {
		note.Archive = *input.Archive
	}
	if input.Images != nil { // Replace the full image set
		if err := h.DB.Where("note_id = ?", note.ID).Delete(&models.NoteImage{}).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Something went wrong, could not update note.")
			return
		}
		note.Images = toNoteImages(*input.Images)
	}

	if err := h.DB.Save(&note).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not update note.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note updated successfully!",
		"note":    note,
	})
}

// DeleteNoteImage - Destroys one hosted image and pulls its reference from
// the note. A hosting-service failure is reported in the envelope but does
// not fail the request.
func (h *Handler) DeleteNoteImage(c *gin.Context) {
	identity, _ := middleware.CurrentUser(c)

	var note models.Note
	if err := h.DB.Preload("Images").First(&note, "id = ?", c.Param("noteId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Could not find any note with the provided id.")
		return
	}

	if note.CreatorID != identity.ID {
		respondError(c, http.StatusForbidden, "Only the creator of a note can update or delete it.")
		return
	}

	var input DeleteImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Destroy on the hosting service first, then drop the reference
	if err := h.Images.Destroy(c.Request.Context(), input.ImageData.PublicID); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Something went wrong, failed to delete image.",
		})
		return
	}

	err := h.DB.Where("note_id = ? AND public_id = ?", note.ID, input.ImageData.PublicID).
		Delete(&models.NoteImage{}).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not delete image.")
		return
	}

	// Reload so the response reflects the updated image set
	if err := h.DB.Preload("Images").First(&note, note.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not delete image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image removed!",
		"note":    note,
	})
}

// DeleteNote - Destroys the note's hosted images (best-effort), then deletes
// the note, detaching it from its owner. No transaction wraps the steps; the
// writes commit independently.
func (h *Handler) DeleteNote(c *gin.Context) {
	identity, _ := middleware.CurrentUser(c)

	var note models.Note
	if err := h.DB.Preload("Images").First(&note, "id = ?", c.Param("noteId")).Error; err != nil {
		respondError(c, http.StatusBadRequest, "Could not find any note with the provided id.")
		return
	}

	if note.CreatorID != identity.ID {
		respondError(c, http.StatusForbidden, "Only the creator of a note can update or delete it.")
		return
	}

	h.destroyNoteImages(c, note)

	if err := h.DB.Where("note_id = ?", note.ID).Delete(&models.NoteImage{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not delete note.")
		return
	}
	if err := h.DB.Delete(&models.Note{}, note.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Something went wrong, could not delete note.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note deleted successfully!",
	})
}

// GetUploadURL - Issues a presigned PUT URL so the client can upload an
// image straight to the hosting service. The returned public id is what the
// client stores on the note afterwards.
func (h *Handler) GetUploadURL(c *gin.Context) {
	publicID, uploadURL, err := h.Images.PresignUpload(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not create an upload URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Upload URL created.",
		"public_id":  publicID,
		"upload_url": uploadURL,
	})
}

func toNoteImages(inputs []ImageInput) []models.NoteImage {
	images := make([]models.NoteImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, models.NoteImage{
			ImageURL: in.ImageURL,
			PublicID: in.PublicID,
		})
	}
	return images
}
