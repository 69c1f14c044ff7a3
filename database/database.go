// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-notes-backend/auth"   // Password hashing for the default admin
	"go-notes-backend/config" // Project config
	"go-notes-backend/models" // User and Note models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the database, runs migrations and returns the connection.
// The returned handle is created once at startup and passed explicitly to
// everything that needs it.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                               // If error, return it
		return nil, err
	}

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.Note{}, &models.NoteImage{}); err != nil {
		return nil, err
	}

	// Create default admin user if configured
	if err := createDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// createDefaultAdmin - Creates a default admin user if configured and none exists
// Credentials come from the environment instead of hardcoded values
func createDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	// Only create admin if explicitly configured
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	// Check if any admin user exists
	var count int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return err
		}

		adminUser := models.User{
			Name:     "Administrator",
			Email:    cfg.AdminEmail,
			Password: hash,
			Image:    models.DefaultAvatarURL,
			IsAdmin:  true,
		}

		if err := db.Create(&adminUser).Error; err != nil {
			return err
		}
	}

	return nil
}
