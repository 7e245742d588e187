// Package server provides the HTTP transport adapter for the typing store.
package server

import "time"

// CreateSessionRequest is the request body for POST /api/typing/session.
type CreateSessionRequest struct {
	// UserID is carried for client-side correlation only; the store
	// does not use it.
	UserID *string `json:"user_id,omitempty"`

	// SessionID optionally reuses an existing session. A fresh id is
	// generated when absent.
	SessionID *string `json:"session_id,omitempty"`
}

// CreateSessionResponse is the response body for POST /api/typing/session.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// SampleRequest is one typing sample in a submission.
type SampleRequest struct {
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	CharsTyped int64     `json:"chars_typed"`
	DurationMS int64     `json:"duration_ms"`
}

// SubmitRequest is the request body for POST /api/typing/submit.
type SubmitRequest struct {
	SessionID string          `json:"session_id"`
	Samples   []SampleRequest `json:"samples"`
}

// DeleteSessionResponse is the response body for DELETE /api/typing/session/{id}.
type DeleteSessionResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the response body for the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
