// main.go - Entry point for the notes backend server

package main // Declares the package name

import ( // Import required packages
	"go-notes-backend/config"   // Project config management
	"go-notes-backend/database" // Database connection and setup
	"go-notes-backend/handlers" // HTTP handlers for API endpoints
	"go-notes-backend/storage"  // External image hosting client

	"github.com/gin-gonic/gin"  // Gin web framework
	"github.com/rs/zerolog/log" // Structured logging
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB path, JWT secret, image hosting)

	db, err := database.Connect(cfg) // Connect to the database and migrate
	if err != nil {                  // A failed initial connection is fatal
		log.Fatal().Err(err).Msg("DB connection error")
	}

	images, err := storage.New(cfg) // Image hosting client (Noop when unconfigured)
	if err != nil {
		log.Fatal().Err(err).Msg("image store error")
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	h := handlers.New(db, cfg, images) // Handlers share the injected collaborators
	h.RegisterRoutes(r)                // Wire the full HTTP surface

	// STEP 3: Start the web server
	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
