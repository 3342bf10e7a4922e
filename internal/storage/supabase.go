package storage

import (
	"bytes"
	"fmt"
	"strings"

	supabasestorage "github.com/supabase-community/storage-go"
)

// SupabaseStorage stores objects in a Supabase Storage bucket and serves
// them through the public object URL.
type SupabaseStorage struct {
	client   *supabasestorage.Client
	bucket   string
	baseURL  string
	maxBytes int64
}

func NewSupabaseStorage(supabaseURL, serviceKey, bucket string, maxBytes int64) (*SupabaseStorage, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := supabasestorage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &SupabaseStorage{
		client:   client,
		bucket:   bucket,
		baseURL:  baseURL,
		maxBytes: maxBytes,
	}, nil
}

func (s *SupabaseStorage) UploadGarmentImage(data []byte, filename string, garmentID int64) (string, error) {
	if err := validateUpload(data, filename, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%s", garmentFolder, garmentID, uniqueName(filename))
	return s.put(key, data, contentTypeForName(filename))
}

func (s *SupabaseStorage) UploadUserPhoto(data []byte, filename string, profileID int64) (string, error) {
	if err := validateUpload(data, filename, s.maxBytes); err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%s", userPhotosFolder, profileID, uniqueName(filename))
	return s.put(key, data, contentTypeForName(filename))
}

func (s *SupabaseStorage) UploadTryonResult(data []byte, contentType string, profileID, garmentID int64) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("result image is empty")
	}
	return s.put(tryonResultKey(profileID, garmentID, contentType), data, contentType)
}

func (s *SupabaseStorage) put(key string, data []byte, contentType string) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), supabasestorage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase storage: %w", err)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key), nil
}

func (s *SupabaseStorage) Delete(fileURL string) error {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("not a supabase storage url: %s", fileURL)
	}
	key := strings.TrimPrefix(fileURL, prefix)

	if _, err := s.client.RemoveFile(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("failed to delete from supabase storage: %w", err)
	}
	return nil
}
