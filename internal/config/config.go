// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Photo bucket (S3-compatible: MinIO locally, R2 in production).
	// An empty StorageEndpoint leaves the bucket unbound.
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageRegion    string
	StorageUseSSL    bool

	// Video hosting (Cloudflare Stream)
	StreamAccountID string
	StreamAPIToken  string
	StreamAPIBase   string

	// Google Drive video path
	DriveFolderID    string
	DriveCredentials string // service account JSON
	DriveAPIBase     string
	DriveTokenURL    string

	// RSVP email relay (Resend)
	ResendAPIKey  string
	ResendAPIBase string
	RSVPFrom      string
	RSVPTo        string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", "event-photos"),
		StorageRegion:    getEnv("STORAGE_REGION", ""),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",

		StreamAccountID: getEnv("STREAM_ACCOUNT_ID", ""),
		StreamAPIToken:  getEnv("STREAM_API_TOKEN", ""),
		StreamAPIBase:   getEnv("STREAM_API_BASE", "https://api.cloudflare.com/client/v4"),

		DriveFolderID:    getEnv("DRIVE_FOLDER_ID", ""),
		DriveCredentials: getEnv("DRIVE_CREDENTIALS", ""),
		DriveAPIBase:     getEnv("DRIVE_API_BASE", "https://www.googleapis.com"),
		DriveTokenURL:    getEnv("DRIVE_TOKEN_URL", "https://oauth2.googleapis.com/token"),

		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		ResendAPIBase: getEnv("RESEND_API_BASE", "https://api.resend.com"),
		RSVPFrom:      getEnv("RSVP_FROM", "onboarding@resend.dev"),
		RSVPTo:        getEnv("RSVP_TO", ""),
	}
}

// HasStorage reports whether the photo bucket is bound.
func (c *Config) HasStorage() bool {
	return c.StorageEndpoint != "" && c.StorageBucket != ""
}

// HasStream reports whether the video hosting account is configured.
func (c *Config) HasStream() bool {
	return c.StreamAccountID != "" && c.StreamAPIToken != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
