// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inference provides the HTTP client for the remote prompt
// processing endpoint.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bhasha-ai/bhasha-tui/internal/locale"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors. The session treats every kind the
// same way (fallback response); the distinction exists for logging only.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeTimeout
	ErrTypeConnection
	ErrTypeInvalidResponse
)

// String returns a short label for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeConnection:
		return "connection"
	case ErrTypeInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// ClientError represents an error from the inference client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Sentinel errors for easy checking.
var (
	ErrTimeout       = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrEmptyResponse = &ClientError{Type: ErrTypeInvalidResponse, Message: "response field missing or empty"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the inference client.
type ClientConfig struct {
	// BaseURL of the prompt processing service (default: http://127.0.0.1:8000)
	BaseURL string

	// Timeout per request (default: 10s)
	Timeout time.Duration

	// UserAgent sent with each request
	UserAgent string

	// MaxRequestsPerSecond throttles outbound calls. Zero disables
	// throttling. The session already serializes submits, so this only
	// matters when multiple sessions share a client.
	MaxRequestsPerSecond float64
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   "http://127.0.0.1:8000",
		Timeout:   10 * time.Second,
		UserAgent: "bhasha-tui",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Request is a single prompt for the remote endpoint.
type Request struct {
	Prompt  string          `json:"prompt"`
	Lang    locale.Language `json:"lang"`
	Persona locale.Persona  `json:"persona,omitempty"`
}

// processResponse is the wire shape of the endpoint's reply. The response
// field is optional; an absent or empty value is an invalid response.
type processResponse struct {
	Response string `json:"response"`
}

// Client sends prompts to the remote prompt processing endpoint.
// Each call is a single attempt: no retry, no backoff. It is safe for
// concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "bhasha-tui"
	}

	var limiter *rate.Limiter
	if config.MaxRequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.MaxRequestsPerSecond), 1)
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    limiter,
	}
}

// BaseURL returns the configured endpoint base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// SEND
// =============================================================================

// Send posts a prompt and returns the response text. All failure modes
// (timeout, transport, bad status, missing/empty response field) return a
// *ClientError; callers that only care about success can ignore the type.
func (c *Client) Send(ctx context.Context, req Request) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &ClientError{Type: ErrTypeTimeout, Message: "rate limit wait cancelled", Cause: err}
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/process_prompt"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &ClientError{
			Type:    ErrTypeConnection,
			Message: "unexpected status: " + resp.Status,
		}
	}

	var result processResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	if strings.TrimSpace(result.Response) == "" {
		return "", ErrEmptyResponse
	}

	return result.Response, nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
