// Package provider implements a minimal client for OpenAI-compatible
// chat-completions endpoints, including the tool-calling surface.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.openai.com/v1"

const defaultTimeout = 60 * time.Second

// Client talks to one chat-completions endpoint with a fixed API key.
type Client struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

// NewClient returns a client for the default endpoint, honouring the
// OPENAI_BASE_URL environment variable when set.
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithBaseURL(apiKey, "")
}

// NewClientWithBaseURL returns a client for an OpenAI-compatible endpoint.
// An empty baseURL falls back to OPENAI_BASE_URL, then the default.
func NewClientWithBaseURL(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("provider: missing API key")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
		if envURL := os.Getenv("OPENAI_BASE_URL"); envURL != "" {
			baseURL = envURL
		}
	}

	hc := resty.New()
	hc.SetTimeout(defaultTimeout)
	hc.SetRetryCount(1)
	hc.SetRetryWaitTime(500 * time.Millisecond)
	hc.SetRetryMaxWaitTime(2 * time.Second)
	// Retry transport failures only; HTTP error statuses are final.
	hc.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil
	})

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
	}, nil
}

// SetTimeout adjusts the per-request deadline.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.SetTimeout(d)
}

// SetTransport swaps the underlying HTTP transport. Intended for tests.
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.http.SetTransport(rt)
}

// CreateChatCompletion posts the request and decodes the first-choice shape.
// It guarantees that a nil error implies at least one choice.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(req).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("provider: chat completion request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("provider: chat completion returned %d: %s",
			resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var out ChatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("provider: decode chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("provider: chat completion returned no choices")
	}
	return &out, nil
}
