package gemini

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Image is a raw image payload with its mime type.
type Image struct {
	Data     []byte
	MimeType string
}

func (i Image) mimeType() string {
	if i.MimeType == "" {
		return "image/jpeg"
	}
	return i.MimeType
}

// Request/response shapes for the generateContent endpoint. The part order
// in a try-on request is fixed: garment image, user photo, then the text
// prompt.
type GenerateContentRequest struct {
	Contents []RequestContent `json:"contents"`
}

type RequestContent struct {
	Parts []RequestPart `json:"parts"`
}

type RequestPart struct {
	InlineData *RequestInlineData `json:"inline_data,omitempty"`
	Text       string             `json:"text,omitempty"`
}

type RequestInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type GenerateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []ResponsePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ResponsePart tolerates both field spellings the API has been observed to
// use for inline image data.
type ResponsePart struct {
	InlineDataCamel *ResponseInlineData `json:"inlineData"`
	InlineDataSnake *ResponseInlineData `json:"inline_data"`
	Text            string              `json:"text,omitempty"`
}

func (p ResponsePart) InlineData() *ResponseInlineData {
	if p.InlineDataCamel != nil {
		return p.InlineDataCamel
	}
	return p.InlineDataSnake
}

type ResponseInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

// NewTryOnRequest assembles the generation request body. The ordering of
// the parts is part of the wire contract and must not change.
func NewTryOnRequest(garment, photo Image, prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []RequestContent{
			{
				Parts: []RequestPart{
					{InlineData: &RequestInlineData{
						MimeType: garment.mimeType(),
						Data:     base64.StdEncoding.EncodeToString(garment.Data),
					}},
					{InlineData: &RequestInlineData{
						MimeType: photo.mimeType(),
						Data:     base64.StdEncoding.EncodeToString(photo.Data),
					}},
					{Text: prompt},
				},
			},
		},
	}
}

// ExtractImage returns the decoded bytes of the first response part
// carrying non-empty inline data.
func (r *GenerateContentResponse) ExtractImage() ([]byte, error) {
	if len(r.Candidates) == 0 {
		return nil, fmt.Errorf("response contains no candidates")
	}

	for _, part := range r.Candidates[0].Content.Parts {
		inline := part.InlineData()
		if inline == nil || inline.Data == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(inline.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image data: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("response contains no inline image data")
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateTryOnImage posts a try-on request and returns the generated
// image bytes.
func (c *Client) GenerateTryOnImage(garment, photo Image, prompt string) ([]byte, error) {
	jsonData, err := json.Marshal(NewTryOnRequest(garment, photo, prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generateContent failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result GenerateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.ExtractImage()
}
