// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

// DefaultAvatarURL is assigned to new accounts that did not pick a profile image.
const DefaultAvatarURL = "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2c/Default_pfp.svg/2048px-Default_pfp.svg.png"

type User struct { // User struct represents a user in the database
	ID              uint      `gorm:"primaryKey" json:"id"`                 // Unique user ID (primary key)
	Name            string    `gorm:"not null" json:"name"`                 // Display name (cannot be null)
	Email           string    `gorm:"unique;not null" json:"email"`         // User's email (must be unique, cannot be null)
	Password        string    `gorm:"not null" json:"-"`                    // Hashed password (never serialized)
	Image           string    `gorm:"not null" json:"image"`                // Profile image URL
	IsAdmin         bool      `gorm:"not null;default:false" json:"isAdmin"` // Administrator flag
	PrefersGridView bool      `gorm:"not null;default:true" json:"prefersGridView"` // Frontend view preference
	Notes           []Note    `gorm:"foreignKey:CreatorID" json:"notes,omitempty"`  // Notes owned by this user
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
