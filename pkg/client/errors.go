package client

import "errors"

// Common errors returned by the client.
var (
	// ErrNotFound is returned when the server reports a missing session.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is returned when the server rejects the request as
	// invalid.
	ErrBadRequest = errors.New("bad request")
)
