// note.go - Defines the Note and NoteImage models for the database

package models // Declares the package name

import "time"

type Note struct { // Note struct represents a single note owned by a user
	ID          uint        `gorm:"primaryKey" json:"id"`                   // Unique note ID (primary key)
	Title       string      `gorm:"not null" json:"title"`                  // Note title (cannot be null)
	Description string      `gorm:"not null" json:"description"`            // Note body text (cannot be null)
	Images      []NoteImage `gorm:"foreignKey:NoteID" json:"images"`        // Hosted images attached to the note
	CreatorID   uint        `gorm:"not null;index" json:"creator"`          // Owning user ID, immutable after creation
	IsPinned    bool        `gorm:"not null;default:false" json:"isPinned"` // Pin flag
	Archive     bool        `gorm:"not null;default:false" json:"archive"`  // Archive flag
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type NoteImage struct { // NoteImage references one image on the external hosting service
	ID       uint   `gorm:"primaryKey" json:"-"`       // Row ID (not exposed)
	NoteID   uint   `gorm:"not null;index" json:"-"`   // Foreign key to notes table
	ImageURL string `gorm:"not null" json:"image_url"` // Public URL of the hosted image
	PublicID string `gorm:"not null" json:"public_id"` // Opaque identifier on the hosting service
}
