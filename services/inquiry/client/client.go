// Package client is a Go client for the inquiry endpoint. It runs the same
// pre-submission checks the storefront form runs, so obviously invalid
// inquiries are rejected locally before any network call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ghuser/cardboard/services/inquiry/domain/models"
	domainsvcs "github.com/ghuser/cardboard/services/inquiry/domain/services"
)

const defaultTimeout = 15 * time.Second

// Client submits inquiries to a running API instance.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New returns a Client for the API at baseURL, e.g. "https://shop.example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the server's confirmation of a relayed inquiry.
type Result struct {
	Message string `json:"message"`
	Data    struct {
		ID string `json:"id"`
	} `json:"data"`
}

// apiError mirrors the server's error body.
type apiError struct {
	Message string `json:"message"`
}

// Submit validates the inquiry locally, then POSTs it to /api/inquiry.
// Local failures return the field's user-facing message; server rejections
// surface the server's message.
func (c *Client) Submit(ctx context.Context, in models.Inquiry) (Result, error) {
	if err := domainsvcs.ValidateClient(in); err != nil {
		return Result{}, err
	}

	body, err := json.Marshal(in)
	if err != nil {
		return Result{}, fmt.Errorf("encode inquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/inquiry", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send inquiry: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return Result{}, fmt.Errorf("inquiry rejected: status %d", resp.StatusCode)
		}
		return Result{}, fmt.Errorf("inquiry rejected: %s", apiErr.Message)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
