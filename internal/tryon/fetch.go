package tryon

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// ImageFetcher downloads source images from their stored URLs.
type ImageFetcher struct {
	httpClient *http.Client
}

func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	return &ImageFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch returns the image bytes and the content type reported by the
// server, defaulting to image/jpeg when none is sent.
func (f *ImageFetcher) Fetch(url string) ([]byte, string, error) {
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch image %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return data, contentType, nil
}
