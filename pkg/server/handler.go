package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wpmlab/typing-monitor/pkg/logger"
	"github.com/wpmlab/typing-monitor/pkg/store"
)

// Handler routes typing API requests to the store.
//
// The handler is a thin adapter: it parses and validates inbound payloads
// into store values, normalizes timestamps to UTC at the boundary, and maps
// store outcomes to HTTP responses. All aggregation logic lives in the store.
type Handler struct {
	store  store.Store
	logger logger.Logger
	mux    *http.ServeMux
}

// NewHandler creates the typing API handler.
func NewHandler(s store.Store, log logger.Logger) *Handler {
	h := &Handler{
		store:  s,
		logger: log,
		mux:    http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints.
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Typing API.
	h.mux.HandleFunc("POST /api/typing/session", h.handleCreateSession)
	h.mux.HandleFunc("POST /api/typing/submit", h.handleSubmit)
	h.mux.HandleFunc("GET /api/typing/summary/{session_id}", h.handleSummary)
	h.mux.HandleFunc("GET /api/typing/stats/{session_id}", h.handleStats)
	h.mux.HandleFunc("GET /api/typing/sessions", h.handleListSessions)
	h.mux.HandleFunc("DELETE /api/typing/session/{session_id}", h.handleDeleteSession)
}

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReady handles GET /ready.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ready",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleCreateSession handles POST /api/typing/session.
//
// Returns the existing session id unchanged when one is supplied and
// registered; otherwise creates the session (generating an id if needed).
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var requested string
	if req.SessionID != nil {
		requested = *req.SessionID
	}

	sessionID := h.store.CreateOrGet(requested)

	h.writeJSON(w, http.StatusOK, CreateSessionResponse{SessionID: sessionID})
}

// handleSubmit handles POST /api/typing/submit.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SessionID == "" {
		h.writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	samples := make([]store.Sample, len(req.Samples))
	for i, s := range req.Samples {
		if s.Timestamp.IsZero() {
			h.writeError(w, http.StatusBadRequest, "sample timestamp is required")
			return
		}
		samples[i] = store.Sample{
			SessionID: s.SessionID,
			// Offsets are accepted on the wire; the store only ever
			// sees UTC.
			Timestamp:  s.Timestamp.UTC(),
			CharsTyped: s.CharsTyped,
			DurationMS: s.DurationMS,
		}
	}

	summary, err := h.store.AppendSamples(req.SessionID, samples)
	if err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}

// handleSummary handles GET /api/typing/summary/{session_id}.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	summary, err := h.store.Summary(sessionID)
	if err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}

// handleStats handles GET /api/typing/stats/{session_id}.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	stat, err := h.store.Stats(sessionID)
	if err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stat)
}

// handleListSessions handles GET /api/typing/sessions.
func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.List())
}

// handleDeleteSession handles DELETE /api/typing/session/{session_id}.
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	if err := h.store.Delete(sessionID); err != nil {
		h.handleStoreError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, DeleteSessionResponse{Status: "deleted"})
}

// handleStoreError maps store outcomes to HTTP responses: NotFound to 404,
// validation failures to 400 with the store's message preserved.
func (h *Handler) handleStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		h.writeError(w, http.StatusNotFound, "session not found")
	case store.IsValidation(err):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("unexpected store error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}
