// Package gemini provides the text generator adapter for the Google Gemini
// API. It sends a single free-text prompt and returns the raw completion
// text; JSON extraction and fallback policy live in the service layer.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cadenza-labs/cadenza/internal/core/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"
)

// Client is the HTTP client for the Gemini adapter.
type Client struct {
	rest   *resty.Client
	apiKey string
	model  string
}

// compile-time interface assertion
var _ ports.TextGenerator = (*Client)(nil)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient constructs a Gemini client. baseURL may be empty for the
// production API; model may be empty for the default model.
func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	rest := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second)

	return &Client{rest: rest, apiKey: apiKey, model: model}
}

// Complete sends one prompt and returns the completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var parsed generateResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		SetResult(&parsed).
		SetError(&parsed).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}

	if resp.IsError() {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("gemini: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode())
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: empty response")
	}

	return text, nil
}
