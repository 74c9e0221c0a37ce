package recognize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"checkmaster/internal/config"
)

// Result is the recognition service's best-effort structured guess. Every
// member is optional; absent members mean the image gave nothing usable.
type Result struct {
	Plate   string   `json:"plate,omitempty"`
	Brand   string   `json:"brand,omitempty"`
	Model   string   `json:"model,omitempty"`
	Serials []string `json:"serials,omitempty"`
}

// Client talks to the external image recognition service. The timeout
// lives here, at the collaborator boundary; callers never wait forever but
// the session core knows nothing about it.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(cfg config.Recognition) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Recognize uploads the image and decodes the structured guess. Any
// failure here is transient from the caller's point of view: the run keeps
// going, the targeted field just stays unset.
func (c *Client) Recognize(ctx context.Context, image []byte) (*Result, error) {
	const op = "service.recognize.Recognize"

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("token", c.token); err != nil {
		return nil, fmt.Errorf("%s: write token field: %w", op, err)
	}

	part, err := writer.CreateFormFile("image", "capture.jpg")
	if err != nil {
		return nil, fmt.Errorf("%s: create image part: %w", op, err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("%s: write image: %w", op, err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: close form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &requestBody)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s: service returned %d: %s", op, resp.StatusCode, body)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	return &result, nil
}
