package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes files under basePath and serves them from the
// /uploads static route registered by the server.
type LocalStorage struct {
	basePath string
	baseURL  string
	maxBytes int64
}

func NewLocalStorage(basePath, baseURL string, maxBytes int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

func (s *LocalStorage) UploadGarmentImage(data []byte, filename string, garmentID int64) (string, error) {
	if err := validateUpload(data, filename, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%s", garmentFolder, garmentID, uniqueName(filename))
	return s.write(key, data)
}

func (s *LocalStorage) UploadUserPhoto(data []byte, filename string, profileID int64) (string, error) {
	if err := validateUpload(data, filename, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%s", userPhotosFolder, profileID, uniqueName(filename))
	return s.write(key, data)
}

func (s *LocalStorage) UploadTryonResult(data []byte, contentType string, profileID, garmentID int64) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("result image is empty")
	}
	return s.write(tryonResultKey(profileID, garmentID, contentType), data)
}

func (s *LocalStorage) write(key string, data []byte) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/uploads/" + key, nil
}

func (s *LocalStorage) Delete(fileURL string) error {
	key, ok := s.keyFromURL(fileURL)
	if !ok {
		return fmt.Errorf("not a local storage url: %s", fileURL)
	}

	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) keyFromURL(fileURL string) (string, bool) {
	prefix := s.baseURL + "/uploads/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(fileURL, prefix)
	// Reject anything that would escape the storage root.
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
