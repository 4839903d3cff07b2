// Package gen wraps the Gemini API behind a single Complete call.
package gen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Generator produces text from a prompt. Handlers depend on this
// interface so tests can substitute a canned implementation.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client calls the Gemini generateContent endpoint. There is no retry or
// backoff; failures are returned to the caller as-is.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Gemini client from an API key. model defaults to
// gemini-2.5-flash when empty.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Complete sends prompt and returns the response text. The call is
// bounded by the configured timeout.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("generate content: empty response")
	}
	return text, nil
}
