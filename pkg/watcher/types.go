// Package watcher provides change notification for the configuration file.
//
// It uses fsnotify to watch the directory containing the config file and
// debounces rapid event bursts, so an editor's write-rename-chmod sequence
// surfaces as a single reload event.
//
// Example usage:
//
//	w, err := watcher.New(watcher.Config{
//	    Path: "~/.config/typing-monitor/config.yaml",
//	}, logger.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	for event := range w.Events() {
//	    fmt.Printf("config changed at %s\n", event.Timestamp)
//	}
package watcher

import (
	"context"
	"time"
)

// Op describes a file operation type.
type Op uint32

// File operation types.
const (
	OpCreate Op = 1 << iota // File created
	OpWrite                 // File modified
	OpRemove                // File deleted
	OpRename                // File renamed/moved
)

// String returns a human-readable operation name.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is the operation that triggered the event.
	Op Op

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Watcher monitors a single file for changes.
type Watcher interface {
	// Start begins watching the configured file.
	//
	// Watching continues until the context is cancelled or the watcher
	// is stopped. Start does not block; events are delivered on the
	// Events channel.
	Start(ctx context.Context) error

	// Stop gracefully shuts down event delivery.
	Stop() error

	// Events returns the channel for receiving debounced change events.
	// The channel is closed when the watcher is closed.
	Events() <-chan Event

	// Errors returns the channel for receiving non-fatal watcher errors.
	// The channel is closed when the watcher is closed.
	Errors() <-chan error

	// Close closes the watcher and releases resources.
	Close() error
}

// Config contains watcher configuration.
type Config struct {
	// Path is the file to watch. Required.
	Path string

	// DebounceInterval is the time to wait before emitting an event.
	// Multiple events within this interval are coalesced.
	// Default: 250ms.
	DebounceInterval time.Duration
}
