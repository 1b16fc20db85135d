// Package spotify implements the music provider port over the Spotify Web
// API. The HTTP client is injected already authenticated (an oauth2 client
// bound to one listener account); this package never touches credentials.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	defaultMarket  = "US"
)

// Client is the HTTP client for the Spotify adapter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	market      string
	maxRetries  int
	baseBackoff time.Duration
}

// compile-time interface assertion
var _ ports.MusicProvider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithMarket sets the market scope applied to catalog searches.
func WithMarket(market string) Option {
	return func(c *Client) {
		if market != "" {
			c.market = market
		}
	}
}

// WithRetry overrides the retry attempt count and base backoff.
func WithRetry(maxRetries int, baseBackoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseBackoff = baseBackoff
	}
}

// NewClient constructs a new Spotify client. httpClient must carry the
// listener's credentials; baseURL may be empty for the production API.
func NewClient(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		market:      defaultMarket,
		maxRetries:  defaultMaxRetries,
		baseBackoff: time.Duration(defaultBackoffMs) * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues a GET against path (with query already encoded) and decodes
// the response body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: build request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify adapter: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: decode response: %w", err)
	}

	return nil
}

// postJSON issues a POST with a JSON body and decodes the response into out
// when out is non-nil.
func (c *Client) postJSON(ctx context.Context, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("spotify adapter: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return fmt.Errorf("spotify adapter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("spotify adapter: status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: decode response: %w", err)
	}

	return nil
}
