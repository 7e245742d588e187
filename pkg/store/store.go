package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wpmlab/typing-monitor/pkg/logger"
)

// charsPerWord is the conventional character-to-word ratio for typing speed.
const charsPerWord = 5.0

// memoryStore implements the Store interface with an in-memory registry.
type memoryStore struct {
	logger logger.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionData
}

// sessionData holds a session's running aggregates. Every numeric field is
// monotonically non-decreasing for the lifetime of the session.
type sessionData struct {
	id              string
	totalChars      int64
	totalDurationMS int64
	samplesCount    int64
	lastUpdated     time.Time
}

// summary projects the current aggregates into a Summary.
func (s *sessionData) summary() Summary {
	return Summary{
		SessionID:       s.id,
		TotalChars:      s.totalChars,
		TotalDurationMS: s.totalDurationMS,
		AvgWPM:          computeWPM(s.totalChars, s.totalDurationMS),
		SamplesCount:    s.samplesCount,
		LastUpdated:     s.lastUpdated,
	}
}

// New creates an empty typing session store.
//
// Parameters:
//   - log: Logger instance
//
// Returns a ready-to-use Store.
func New(log logger.Logger) Store {
	return &memoryStore{
		logger:   log,
		sessions: make(map[string]*sessionData),
	}
}

// CreateOrGet implements Store.CreateOrGet.
func (m *memoryStore) CreateOrGet(sessionID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	sid := sessionID
	if sid == "" {
		sid = m.newSessionID()
	}

	if _, exists := m.sessions[sid]; !exists {
		m.sessions[sid] = &sessionData{
			id:          sid,
			lastUpdated: time.Now().UTC(),
		}
		m.logger.Info("session created", "session_id", sid)
	}

	return sid
}

// AppendSamples implements Store.AppendSamples.
func (m *memoryStore) AppendSamples(sessionID string, samples []Sample) (Summary, error) {
	// Validate the whole batch before touching any state so a batch
	// containing an invalid sample is rejected all-or-nothing.
	if err := validateBatch(sessionID, samples); err != nil {
		return Summary{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.sessions[sessionID]
	if !exists {
		return Summary{}, ErrSessionNotFound
	}

	latest := sess.lastUpdated
	for _, s := range samples {
		sess.totalChars += s.CharsTyped
		sess.totalDurationMS += s.DurationMS
		sess.samplesCount++

		if ts := s.Timestamp.UTC(); ts.After(latest) {
			latest = ts
		}
	}

	// last_updated never moves backward: take the max of the previous
	// value, the newest sample timestamp, and the current wall clock.
	if now := time.Now().UTC(); now.After(latest) {
		latest = now
	}
	sess.lastUpdated = latest

	m.logger.Debug("samples appended",
		"session_id", sessionID,
		"batch_size", len(samples),
		"total_chars", sess.totalChars,
		"total_duration_ms", sess.totalDurationMS)

	return sess.summary(), nil
}

// Summary implements Store.Summary.
func (m *memoryStore) Summary(sessionID string) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[sessionID]
	if !exists {
		return Summary{}, ErrSessionNotFound
	}

	return sess.summary(), nil
}

// Stats implements Store.Stats.
func (m *memoryStore) Stats(sessionID string) (SpeedStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, exists := m.sessions[sessionID]
	if !exists {
		return SpeedStat{}, ErrSessionNotFound
	}

	return SpeedStat{
		SessionID:   sessionID,
		WPM:         computeWPM(sess.totalChars, sess.totalDurationMS),
		Accuracy:    nil, // Reserved, never computed.
		LastUpdated: sess.lastUpdated,
	}, nil
}

// List implements Store.List.
func (m *memoryStore) List() []Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]Summary, 0, len(m.sessions))
	for _, sess := range m.sessions {
		summaries = append(summaries, sess.summary())
	}

	return summaries
}

// Delete implements Store.Delete.
func (m *memoryStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[sessionID]; !exists {
		return ErrSessionNotFound
	}

	delete(m.sessions, sessionID)
	m.logger.Info("session deleted", "session_id", sessionID)

	return nil
}

// newSessionID generates a fresh session id that is not currently
// registered. Caller must hold m.mu.
func (m *memoryStore) newSessionID() string {
	for {
		sid := uuid.NewString()
		if _, exists := m.sessions[sid]; !exists {
			return sid
		}
	}
}

// validateBatch checks a batch against the submission preconditions.
func validateBatch(sessionID string, samples []Sample) error {
	if len(samples) == 0 {
		return ErrEmptyBatch
	}

	for i, s := range samples {
		if s.SessionID != sessionID {
			return fmt.Errorf("sample %d: %w", i, ErrSessionIDMismatch)
		}
		if s.CharsTyped < 0 || s.DurationMS < 0 {
			return fmt.Errorf("sample %d: %w", i, ErrNegativeSample)
		}
	}

	return nil
}

// computeWPM derives words per minute from cumulative totals.
//
// WPM = (total_chars / 5) / (total_duration_ms / 60000). A zero duration
// yields 0.0 by policy rather than dividing by zero.
func computeWPM(totalChars, totalDurationMS int64) float64 {
	if totalDurationMS <= 0 {
		return 0.0
	}

	words := float64(totalChars) / charsPerWord
	minutes := float64(totalDurationMS) / 60000.0
	return words / minutes
}
