// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For parsing numeric/boolean env values

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string // Port the HTTP server listens on
	DBPath        string // Path to the SQLite database file
	JWTSecret     string // Secret key for signing session tokens
	CreateAdmin   bool   // Whether to bootstrap a default admin user
	AdminEmail    string // Email of the default admin user
	AdminPassword string // Password of the default admin user

	// Image hosting (S3-compatible object storage)
	S3Region    string // Storage region
	S3Bucket    string // Bucket for hosted note images (empty = hosting disabled)
	S3Endpoint  string // Custom endpoint (e.g. MinIO), empty for AWS default
	S3AccessKey string // Static access key
	S3SecretKey string // Static secret key

	// Brute-force damping on the credential endpoints
	RateLimitRPS   int // Sustained requests per second per client
	RateLimitBurst int // Burst allowance per client
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present, ignore when missing

	return &Config{
		Port:          getEnv("PORT", "8080"),             // HTTP port or default
		DBPath:        getEnv("DB_PATH", "notes.db"),      // DB path or default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"), // JWT secret or default
		CreateAdmin:   getEnvBool("CREATE_ADMIN", false),  // Admin bootstrap disabled by default
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getEnvBool(key string, fallback bool) bool { // Helper for boolean env vars
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int { // Helper for integer env vars
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
