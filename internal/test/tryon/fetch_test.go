package tryon_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textile-tryon-backend/internal/tryon"
)

func TestImageFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	fetcher := tryon.NewImageFetcher(5 * time.Second)

	data, contentType, err := fetcher.Fetch(server.URL + "/garments/3/front.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestImageFetcher_DefaultsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.Write([]byte("bytes"))
	}))
	defer server.Close()

	fetcher := tryon.NewImageFetcher(5 * time.Second)

	_, contentType, err := fetcher.Fetch(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestImageFetcher_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := tryon.NewImageFetcher(5 * time.Second)

	_, _, err := fetcher.Fetch(server.URL + "/missing.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
