// Package store talks to the audit backend's navigation API and keeps a
// local snapshot of the tree between invocations.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/auditworks/navedit/internal/nav"
)

// DefaultTimeout bounds a single API call when the config does not say
// otherwise.
const DefaultTimeout = 30 * time.Second

// Navigation is the document stored by the audit backend: the site's base
// URL plus the captured navigation tree.
type Navigation struct {
	BaseURL string   `json:"baseUrl"`
	Tree    nav.Tree `json:"tree"`
}

// Client communicates with the navigation persistence API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. A non-positive timeout
// falls back to DefaultTimeout. The token may be empty for unauthenticated
// backends.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the stored navigation document.
func (c *Client) Fetch(ctx context.Context) (Navigation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/navigation", nil)
	if err != nil {
		return Navigation{}, fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Navigation{}, fmt.Errorf("fetch navigation: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Navigation{}, fmt.Errorf("fetch navigation: status %d: %s", resp.StatusCode, errorBody(resp))
	}

	var doc Navigation
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Navigation{}, fmt.Errorf("decode navigation: %w", err)
	}
	return doc, nil
}

// Replace overwrites the stored navigation tree. The call is not retried and
// not queued; on failure the caller keeps its in-memory tree and may retry
// the save action explicitly.
func (c *Client) Replace(ctx context.Context, tree nav.Tree) error {
	body, err := json.Marshal(struct {
		Tree nav.Tree `json:"tree"`
	}{Tree: tree})
	if err != nil {
		return fmt.Errorf("marshal navigation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/api/navigation", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("replace navigation: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("replace navigation: status %d: %s", resp.StatusCode, errorBody(resp))
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// errorBody reads a truncated error body for diagnostics.
func errorBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return string(b)
}
