package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"textile-tryon-backend/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		GeminiAPIKey:         "test-key",
		GeminiTimeoutSeconds: 60,
		FetchTimeoutSeconds:  30,
		StorageBackend:       config.StorageBackendLocal,
		LocalStoragePath:     "uploads",
		DatabaseURL:          "postgres://localhost/tryon",
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.GeminiAPIKey = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestConfig_Validate_MissingDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestConfig_Validate_S3RequiresBucket(t *testing.T) {
	cfg := validConfig()
	cfg.StorageBackend = config.StorageBackendS3

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")

	cfg.S3Bucket = "tryon-images"
	cfg.S3BaseURL = "https://tryon-images.s3.amazonaws.com"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_SupabaseRequiresCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.StorageBackend = config.StorageBackendSupabase

	err := cfg.Validate()
	assert.Error(t, err)

	cfg.SupabaseURL = "https://example.supabase.co"
	cfg.SupabaseKey = "service-key"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_UnknownBackend(t *testing.T) {
	cfg := validConfig()
	cfg.StorageBackend = "ftp"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown STORAGE_BACKEND")
}

func TestConfig_Validate_NonPositiveTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.FetchTimeoutSeconds = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeouts")
}
