// Package client provides an HTTP client for the typing-monitor API.
//
// It mirrors the server's typing endpoints and is used by the CLI query
// commands.
//
// Example usage:
//
//	c := client.New(client.Config{
//	    ServerURL: "http://localhost:8080",
//	})
//
//	stat, err := c.Stats(ctx, "my-session")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wpm: %.1f\n", stat.WPM)
package client

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

	"github.com/wpmlab/typing-monitor/pkg/server"
	"github.com/wpmlab/typing-monitor/pkg/store"
)

// Client talks to a typing-monitor server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config contains client configuration.
type Config struct {
	// ServerURL is the base URL of the typing-monitor server.
	ServerURL string

	// Timeout is the per-request timeout (default: 10 seconds).
	Timeout time.Duration
}

// New creates a new API client.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// CreateSession creates a session, or returns an existing one unchanged.
// A nil sessionID requests a server-generated id.
func (c *Client) CreateSession(ctx context.Context, sessionID *string) (string, error) {
	req := server.CreateSessionRequest{SessionID: sessionID}

	var resp server.CreateSessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/typing/session", req, &resp); err != nil {
		return "", err
	}

	return resp.SessionID, nil
}

// Submit appends a batch of samples to a session and returns the updated
// summary.
func (c *Client) Submit(ctx context.Context, sessionID string, samples []store.Sample) (store.Summary, error) {
	req := server.SubmitRequest{
		SessionID: sessionID,
		Samples:   make([]server.SampleRequest, len(samples)),
	}
	for i, s := range samples {
		req.Samples[i] = server.SampleRequest{
			SessionID:  s.SessionID,
			Timestamp:  s.Timestamp,
			CharsTyped: s.CharsTyped,
			DurationMS: s.DurationMS,
		}
	}

	var summary store.Summary
	if err := c.do(ctx, http.MethodPost, "/api/typing/submit", req, &summary); err != nil {
		return store.Summary{}, err
	}

	return summary, nil
}

// Summary fetches the aggregate summary for a session.
func (c *Client) Summary(ctx context.Context, sessionID string) (store.Summary, error) {
	var summary store.Summary
	path := "/api/typing/summary/" + url.PathEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return store.Summary{}, err
	}

	return summary, nil
}

// Stats fetches the computed speed statistic for a session.
func (c *Client) Stats(ctx context.Context, sessionID string) (store.SpeedStat, error) {
	var stat store.SpeedStat
	path := "/api/typing/stats/" + url.PathEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &stat); err != nil {
		return store.SpeedStat{}, err
	}

	return stat, nil
}

// ListSessions fetches summaries for all registered sessions.
func (c *Client) ListSessions(ctx context.Context) ([]store.Summary, error) {
	var summaries []store.Summary
	if err := c.do(ctx, http.MethodGet, "/api/typing/sessions", nil, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// DeleteSession deletes a session.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	path := "/api/typing/session/" + url.PathEscape(sessionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Health checks the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do performs one API request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorFromResponse converts a non-2xx response into a typed error,
// preserving the server's message.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var body server.ErrorResponse
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	default:
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, message)
	}
}
