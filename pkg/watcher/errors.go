package watcher

import "errors"

// Common errors returned by the watcher.
var (
	// ErrNoPath is returned when no file path is configured.
	ErrNoPath = errors.New("no watch path specified")

	// ErrWatcherClosed is returned when operating on a closed watcher.
	ErrWatcherClosed = errors.New("watcher is closed")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("watcher already started")

	// ErrNotStarted is returned when Stop is called before Start.
	ErrNotStarted = errors.New("watcher not started")
)
