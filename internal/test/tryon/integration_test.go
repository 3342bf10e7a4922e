package tryon_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textile-tryon-backend/internal/gemini"
	"textile-tryon-backend/internal/storage"
	"textile-tryon-backend/internal/tryon"
)

// Full pipeline with a real gemini client, fetcher and local storage; only
// the database is faked.
func TestService_Generate_EndToEnd(t *testing.T) {
	images := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("source-bytes-" + r.URL.Path))
	}))
	defer images.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inline_data":{"data":"` +
			base64.StdEncoding.EncodeToString([]byte("PNGBYTES")) + `"}}]}}]}`))
	}))
	defer api.Close()

	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir, "http://localhost:8080", 1<<20)
	require.NoError(t, err)

	store := populatedStore()
	store.imageURL = images.URL + "/garments/3/front.jpg"
	store.photo.PhotoURL = images.URL + "/user-photos/1/saree.jpg"

	service := tryon.NewService(
		store,
		gemini.NewClient(api.URL, "test-key", "test-model", 5*time.Second),
		tryon.NewImageFetcher(5*time.Second),
		local,
		"",
	)

	result, err := service.Generate("sess-1", 3, 7, "")
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, int64(42), result.ResultID)
	assert.True(t, strings.HasPrefix(result.ResultImageURL, "http://localhost:8080/uploads/tryon-results/1/3_"))
	assert.Equal(t, result.ResultImageURL, store.createdURL)

	key := strings.TrimPrefix(result.ResultImageURL, "http://localhost:8080/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("PNGBYTES"), data)
}
