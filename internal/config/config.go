package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageBackendLocal    = "local"
	StorageBackendS3       = "s3"
	StorageBackendSupabase = "supabase"
)

type Config struct {
	// Gemini image generation API
	GeminiAPIKey         string
	GeminiAPIBaseURL     string
	GeminiModel          string
	GeminiTimeoutSeconds int

	// Source image fetching
	FetchTimeoutSeconds int

	// Degraded-mode placeholder. Empty disables the fallback entirely.
	TryonPlaceholderURL string

	// Storage
	StorageBackend        string
	LocalStoragePath      string
	AWSRegion             string
	S3Bucket              string
	S3BaseURL             string
	SupabaseURL           string
	SupabaseKey           string
	SupabaseStorageBucket string
	MaxUploadBytes        int64

	// Admin auth
	AdminJWTSecret string

	// Database
	DatabaseURL    string
	SeedSampleData bool

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	// Optional .env for local development. Real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiAPIBaseURL:     getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.5-flash-image-preview"),
		GeminiTimeoutSeconds: getEnvInt("GEMINI_TIMEOUT_SECONDS", 60),

		FetchTimeoutSeconds: getEnvInt("FETCH_TIMEOUT_SECONDS", 30),

		TryonPlaceholderURL: getEnv("TRYON_PLACEHOLDER_URL", ""),

		StorageBackend:        getEnv("STORAGE_BACKEND", StorageBackendLocal),
		LocalStoragePath:      getEnv("LOCAL_STORAGE_PATH", "uploads"),
		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:              getEnv("S3_BUCKET", ""),
		S3BaseURL:             getEnv("S3_BASE_URL", ""),
		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseKey:           getEnv("SUPABASE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "tryon-images"),
		MaxUploadBytes:        int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", false),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.StorageBackend {
	case StorageBackendLocal:
		if c.LocalStoragePath == "" {
			return fmt.Errorf("LOCAL_STORAGE_PATH is required for local storage")
		}
	case StorageBackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for s3 storage")
		}
		if c.S3BaseURL == "" {
			return fmt.Errorf("S3_BASE_URL is required for s3 storage")
		}
	case StorageBackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for supabase storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND: %s", c.StorageBackend)
	}
	if c.GeminiTimeoutSeconds <= 0 || c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
