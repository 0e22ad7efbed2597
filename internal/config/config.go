package config

import "os"

const (
	defaultDatabaseURL = "tripchat.db"
	defaultPort        = "8080"
	defaultUploadDir   = "./uploads"
)

// Config holds the process configuration, read once at startup. The
// upload directory is handed to the file service explicitly — nothing
// reads it from the environment after Load.
type Config struct {
	DatabaseURL string
	Port        string
	UploadDir   string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		Port:        getEnv("PORT", defaultPort),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
