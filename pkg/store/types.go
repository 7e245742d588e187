// Package store provides the concurrency-safe typing session registry.
//
// It owns session lifecycle, accumulates per-session aggregate totals under
// concurrent writers, and derives words-per-minute (WPM) from those totals.
// Samples are consumed into running aggregates and never retained
// individually. All state is volatile and process-lifetime only.
//
// Example usage:
//
//	s := store.New(logger.Default())
//
//	id := s.CreateOrGet("")
//	summary, err := s.AppendSamples(id, []store.Sample{{
//	    SessionID:  id,
//	    Timestamp:  time.Now(),
//	    CharsTyped: 50,
//	    DurationMS: 60000,
//	}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("avg wpm: %.1f\n", summary.AvgWPM)
package store

import "time"

// Sample is one reported interval of typing activity. Samples are consumed
// into a session's running totals on submission.
type Sample struct {
	// SessionID is the session the sample belongs to. Must match the
	// target session of the submission.
	SessionID string `json:"session_id"`

	// Timestamp is when the sample was recorded. Normalized to UTC
	// before it is compared against the session's last-updated time.
	Timestamp time.Time `json:"timestamp"`

	// CharsTyped is the number of characters typed in the interval (>= 0).
	CharsTyped int64 `json:"chars_typed"`

	// DurationMS is the interval length in milliseconds (>= 0).
	DurationMS int64 `json:"duration_ms"`
}

// Summary is the read-only projection of a session's cumulative totals
// plus the derived average WPM.
type Summary struct {
	// SessionID is the session identifier.
	SessionID string `json:"session_id"`

	// TotalChars is the total characters typed across all samples.
	TotalChars int64 `json:"total_chars"`

	// TotalDurationMS is the total sampled duration in milliseconds.
	TotalDurationMS int64 `json:"total_duration_ms"`

	// AvgWPM is the average words per minute over the session's whole
	// history, derived from the cumulative totals.
	AvgWPM float64 `json:"avg_wpm"`

	// SamplesCount is the number of samples consumed into the session.
	SamplesCount int64 `json:"samples_count"`

	// LastUpdated is the last time the session was created or appended to.
	LastUpdated time.Time `json:"last_updated"`
}

// SpeedStat is the computed speed statistic for a session.
type SpeedStat struct {
	// SessionID is the session identifier.
	SessionID string `json:"session_id"`

	// WPM is the words per minute derived from the session's cumulative
	// totals: (total_chars / 5) / (total_duration_ms / 60000).
	WPM float64 `json:"wpm"`

	// Accuracy is reserved for future use and is never computed.
	Accuracy *float64 `json:"accuracy"`

	// LastUpdated is the last time the session was created or appended to.
	LastUpdated time.Time `json:"last_updated"`
}

// Store is the typing session registry.
//
// All methods are safe for concurrent use. Each method is one logical
// operation with respect to every other: readers observe either the
// pre-batch or post-batch state of a session, never a partial batch.
type Store interface {
	// CreateOrGet returns the id of an existing session, or creates a
	// zero-initialized session under the supplied id. An empty sessionID
	// requests a freshly generated unique id.
	//
	// Calling CreateOrGet with an existing id is an idempotent get: the
	// session's aggregates are left untouched.
	CreateOrGet(sessionID string) string

	// AppendSamples applies a batch of samples to an existing session.
	//
	// The batch is validated before any state changes: it must be
	// non-empty, every sample's SessionID must equal sessionID, and
	// every CharsTyped and DurationMS must be >= 0. A batch containing
	// any invalid sample is rejected whole; the session is unchanged.
	//
	// Returns:
	//   - The post-batch Summary on success
	//   - ErrSessionNotFound if the session does not exist (the batch
	//     never creates it)
	//   - A validation error (see IsValidation) for an invalid batch
	AppendSamples(sessionID string, samples []Sample) (Summary, error)

	// Summary returns the aggregate summary for a session.
	//
	// Returns ErrSessionNotFound if the session does not exist.
	Summary(sessionID string) (Summary, error)

	// Stats returns the computed speed statistic for a session.
	//
	// Numerically equivalent to Summary's AvgWPM: both derive from the
	// same cumulative totals.
	//
	// Returns ErrSessionNotFound if the session does not exist.
	Stats(sessionID string) (SpeedStat, error)

	// List returns a summary for every registered session, in no
	// particular order. An empty registry yields an empty slice.
	List() []Summary

	// Delete removes a session entirely. A session recreated under the
	// same id starts from zero totals.
	//
	// Returns ErrSessionNotFound if the session does not exist.
	Delete(sessionID string) error
}
