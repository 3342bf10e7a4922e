package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"textile-tryon-backend/internal/config"
)

// Folder layout shared by every backend.
const (
	garmentFolder     = "garments"
	userPhotosFolder  = "user-photos"
	tryonResultFolder = "tryon-results"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Service stores image bytes and hands back a publicly resolvable URL.
type Service interface {
	UploadGarmentImage(data []byte, filename string, garmentID int64) (string, error)
	UploadUserPhoto(data []byte, filename string, profileID int64) (string, error)
	UploadTryonResult(data []byte, contentType string, profileID, garmentID int64) (string, error)
	Delete(fileURL string) error
}

// New selects the backend from configuration.
func New(cfg *config.Config) (Service, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendLocal:
		return NewLocalStorage(cfg.LocalStoragePath, cfg.BaseURL, cfg.MaxUploadBytes)
	case config.StorageBackendS3:
		return NewS3Storage(cfg.AWSRegion, cfg.S3Bucket, cfg.S3BaseURL, cfg.MaxUploadBytes)
	case config.StorageBackendSupabase:
		return NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket, cfg.MaxUploadBytes)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

func validateUpload(data []byte, filename string, maxBytes int64) error {
	if len(data) == 0 {
		return fmt.Errorf("file is empty")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return fmt.Errorf("file exceeds maximum size of %d bytes", maxBytes)
	}
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("file extension %q is not allowed", ext)
	}
	return nil
}

// uniqueName keeps the original extension and replaces the rest with a uuid.
func uniqueName(filename string) string {
	return uuid.New().String() + strings.ToLower(path.Ext(filename))
}

// tryonResultKey builds the result object path namespaced by profile and
// garment with a random unique suffix.
func tryonResultKey(profileID, garmentID int64, contentType string) string {
	return fmt.Sprintf("%s/%d/%d_%s%s",
		tryonResultFolder, profileID, garmentID, uuid.New().String(), extensionForContentType(contentType))
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func contentTypeForName(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
