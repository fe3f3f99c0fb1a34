package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "pedidozap/1.0"

// Client fetches the product catalog from the back-office HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a catalog client for the given endpoint URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// Fetch downloads and validates the product list. The endpoint must return
// the same JSON shape as catalog files: {"products": [...]}.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.baseURL)
	}

	var file File
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding response: trailing JSON content")
	}

	if err := Validate(file.Products); err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	return file.Products, nil
}
