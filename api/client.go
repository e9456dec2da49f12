// Package api implements the typed HTTP client for the Homecircle backend.
//
// The client is constructed explicitly and passed to every view-model, so
// tests can point it at a fake server instead of the real backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the Homecircle backend. All requests carry the session
// bearer token and a generated request ID for log correlation.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for request logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New returns a Client for the API at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

// Do performs the request for an endpoint. A non-nil body is sent as JSON;
// a non-nil out has the response body decoded into it. A backend-reported
// failure is returned as *Error, anything else as an opaque error.
func (c *Client) Do(ctx context.Context, endpoint Endpoint, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + endpoint.Path

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, u.String(), reader)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().
			Str("method", endpoint.Method).
			Str("path", endpoint.Path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", endpoint.Method).
		Str("path", endpoint.Path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// decodeError turns a non-2xx response into a *Error when the backend sent
// its error shape, or an opaque error otherwise.
func decodeError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var apiErr Error
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.Status = resp.StatusCode
		return &apiErr
	}

	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// Request performs the request for an endpoint and decodes the response
// into a value of type T.
func Request[T any](ctx context.Context, c *Client, endpoint Endpoint, body any) (T, error) {
	var out T
	err := c.Do(ctx, endpoint, body, &out)
	return out, err
}
