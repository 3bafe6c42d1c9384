// Package config loads server configuration from the environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to run.
type Config struct {
	Port        string
	MongoURI    string
	Database    string
	JWTSecret   string
	TokenExpiry time.Duration
	UploadDir   string
	DevMode     bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over .env values.
func Load() Config {
	// Missing .env is fine; env vars may be set directly.
	_ = godotenv.Load()

	return Config{
		Port:        envOrDefault("PORT", "5000"),
		MongoURI:    envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		Database:    envOrDefault("MONGODB_DB", "realty"),
		JWTSecret:   envOrDefault("JWT_SECRET", "your-secret-key"),
		TokenExpiry: 30 * 24 * time.Hour,
		UploadDir:   envOrDefault("UPLOAD_DIR", "public/uploads"),
		DevMode:     os.Getenv("DEV_MODE") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
