package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client fetches and parses a single JSON document. Sources are either
// http(s) URLs or local file paths; either way the outcome is "parsed
// JSON or an error".
type Client struct {
	httpClient *http.Client
}

// NewClient creates a fetch client. A zero timeout means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// FetchJSON retrieves source and unmarshals the body into v.
// Non-200 responses and unparseable bodies are errors.
func (c *Client) FetchJSON(ctx context.Context, source string, v any) error {
	data, err := c.fetch(ctx, source)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, source)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(source)
}
