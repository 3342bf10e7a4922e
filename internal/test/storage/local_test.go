package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textile-tryon-backend/internal/storage"
)

func newLocal(t *testing.T) *storage.LocalStorage {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080", 1<<20)
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadUserPhoto(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStorage(dir, "http://localhost:8080/", 1<<20)
	require.NoError(t, err)

	url, err := s.UploadUserPhoto([]byte("photo-bytes"), "me.jpg", 5)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/user-photos/5/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	key := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("photo-bytes"), data)
}

func TestLocalStorage_UploadGarmentImage(t *testing.T) {
	s := newLocal(t)

	url, err := s.UploadGarmentImage([]byte("image-bytes"), "front.webp", 3)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/garments/3/")
	assert.True(t, strings.HasSuffix(url, ".webp"))
}

func TestLocalStorage_UploadTryonResult(t *testing.T) {
	s := newLocal(t)

	url, err := s.UploadTryonResult([]byte("result-bytes"), "image/png", 5, 3)
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/tryon-results/5/3_")
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestLocalStorage_RejectsBadExtension(t *testing.T) {
	s := newLocal(t)

	_, err := s.UploadUserPhoto([]byte("x"), "malware.exe", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestLocalStorage_RejectsEmptyFile(t *testing.T) {
	s := newLocal(t)

	_, err := s.UploadUserPhoto(nil, "me.jpg", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLocalStorage_RejectsOversizedFile(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080", 4)
	require.NoError(t, err)

	_, err = s.UploadUserPhoto([]byte("too large"), "me.jpg", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestLocalStorage_Delete(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStorage(dir, "http://localhost:8080", 1<<20)
	require.NoError(t, err)

	url, err := s.UploadUserPhoto([]byte("photo-bytes"), "me.jpg", 5)
	require.NoError(t, err)

	require.NoError(t, s.Delete(url))

	key := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalStorage_DeleteRejectsForeignURL(t *testing.T) {
	s := newLocal(t)

	err := s.Delete("https://elsewhere.example.com/uploads/user-photos/5/x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a local storage url")
}

func TestLocalStorage_DeleteRejectsPathEscape(t *testing.T) {
	s := newLocal(t)

	err := s.Delete("http://localhost:8080/uploads/../../../etc/passwd")
	require.Error(t, err)
}
