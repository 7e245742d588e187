package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wpmlab/typing-monitor/pkg/logger"
	"github.com/wpmlab/typing-monitor/pkg/store"
)

func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()

	s := store.New(logger.Noop())
	ts := httptest.NewServer(NewHandler(s, logger.Noop()))
	t.Cleanup(ts.Close)

	return ts, s
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func submitBody(sessionID string, ts time.Time, chars, durationMS int64) SubmitRequest {
	return SubmitRequest{
		SessionID: sessionID,
		Samples: []SampleRequest{{
			SessionID:  sessionID,
			Timestamp:  ts,
			CharsTyped: chars,
			DurationMS: durationMS,
		}},
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[HealthResponse](t, resp)
		assert.NotEmpty(t, body.Status)
		assert.NotEmpty(t, body.Time)
	}
}

func TestCreateSession_GeneratesID(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/typing/session", CreateSessionRequest{})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[CreateSessionResponse](t, resp)
	assert.NotEmpty(t, body.SessionID)
}

func TestCreateSession_ExplicitIDIsIdempotent(t *testing.T) {
	ts, st := newTestServer(t)

	sid := "s1"
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/typing/session", CreateSessionRequest{SessionID: &sid})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "s1", decodeBody[CreateSessionResponse](t, resp).SessionID)

	_, err := st.AppendSamples("s1", []store.Sample{{
		SessionID: "s1", Timestamp: time.Now(), CharsTyped: 50, DurationMS: 60000,
	}})
	require.NoError(t, err)

	// Re-creating must return the same id and leave the totals alone.
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/typing/session", CreateSessionRequest{SessionID: &sid})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "s1", decodeBody[CreateSessionResponse](t, resp).SessionID)

	summary, err := st.Summary("s1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), summary.TotalChars)
}

func TestCreateSession_InvalidBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/typing/session", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[ErrorResponse](t, resp)
	assert.Contains(t, body.Error, "invalid request body")
}

func TestSubmit_ReturnsUpdatedSummary(t *testing.T) {
	ts, st := newTestServer(t)
	st.CreateOrGet("s1")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/typing/submit", submitBody("s1", time.Now(), 50, 60000))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	summary := decodeBody[store.Summary](t, resp)
	assert.Equal(t, "s1", summary.SessionID)
	assert.Equal(t, int64(50), summary.TotalChars)
	assert.Equal(t, int64(60000), summary.TotalDurationMS)
	assert.Equal(t, int64(1), summary.SamplesCount)
	assert.Equal(t, 10.0, summary.AvgWPM)
}

func TestSubmit_SessionNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/typing/submit", submitBody("ghost", time.Now(), 5, 1000))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[ErrorResponse](t, resp)
	assert.Contains(t, body.Error, "session not found")
}

func TestSubmit_ValidationFailures(t *testing.T) {
	ts, st := newTestServer(t)
	st.CreateOrGet("s1")

	now := time.Now()

	tests := []struct {
		name        string
		body        SubmitRequest
		wantMessage string
	}{
		{
			name:        "empty batch",
			body:        SubmitRequest{SessionID: "s1"},
			wantMessage: "non-empty",
		},
		{
			name: "mismatched session id",
			body: SubmitRequest{
				SessionID: "s1",
				Samples: []SampleRequest{
					{SessionID: "other", Timestamp: now, CharsTyped: 5, DurationMS: 1000},
				},
			},
			wantMessage: "does not match",
		},
		{
			name: "negative chars",
			body: SubmitRequest{
				SessionID: "s1",
				Samples: []SampleRequest{
					{SessionID: "s1", Timestamp: now, CharsTyped: -5, DurationMS: 1000},
				},
			},
			wantMessage: "non-negative",
		},
		{
			name: "missing timestamp",
			body: SubmitRequest{
				SessionID: "s1",
				Samples: []SampleRequest{
					{SessionID: "s1", CharsTyped: 5, DurationMS: 1000},
				},
			},
			wantMessage: "timestamp",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, ts.URL+"/api/typing/submit", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeBody[ErrorResponse](t, resp)
			assert.Contains(t, body.Error, tc.wantMessage)

			// Rejected batches leave the session untouched.
			summary, err := st.Summary("s1")
			require.NoError(t, err)
			assert.Zero(t, summary.TotalChars)
			assert.Zero(t, summary.SamplesCount)
		})
	}
}

func TestSubmit_NormalizesTimestampToUTC(t *testing.T) {
	ts, st := newTestServer(t)
	st.CreateOrGet("s1")

	// A future timestamp in a non-UTC offset wins the last_updated max,
	// so the stored value proves boundary normalization.
	offset := time.FixedZone("UTC+9", 9*3600)
	future := time.Now().Add(time.Hour).In(offset)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/typing/submit", submitBody("s1", future, 5, 1000))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	summary := decodeBody[store.Summary](t, resp)
	assert.Equal(t, time.UTC, summary.LastUpdated.Location())
	assert.True(t, summary.LastUpdated.Equal(future))
}

func TestSummaryAndStats(t *testing.T) {
	ts, st := newTestServer(t)
	st.CreateOrGet("s1")
	_, err := st.AppendSamples("s1", []store.Sample{{
		SessionID: "s1", Timestamp: time.Now(), CharsTyped: 100, DurationMS: 60000,
	}})
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/typing/summary/s1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeBody[store.Summary](t, resp)
	assert.Equal(t, 20.0, summary.AvgWPM)

	resp, err = http.Get(ts.URL + "/api/typing/stats/s1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stat := decodeBody[store.SpeedStat](t, resp)
	assert.Equal(t, 20.0, stat.WPM)
	assert.Nil(t, stat.Accuracy)
}

func TestSummaryAndStats_NotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/api/typing/summary/nonexistent", "/api/typing/stats/nonexistent"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestListSessions(t *testing.T) {
	ts, st := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/typing/sessions")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]store.Summary](t, resp))

	st.CreateOrGet("s1")
	st.CreateOrGet("s2")

	resp, err = http.Get(ts.URL + "/api/typing/sessions")
	require.NoError(t, err)
	summaries := decodeBody[[]store.Summary](t, resp)
	assert.Len(t, summaries, 2)
}

func TestDeleteSession(t *testing.T) {
	ts, st := newTestServer(t)
	st.CreateOrGet("s1")

	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/typing/session/s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "deleted", decodeBody[DeleteSessionResponse](t, resp).Status)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/typing/session/s1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestMiddleware_Recover(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	ts := httptest.NewServer(Chain(panicking, Recover(logger.Noop())))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMiddleware_CORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{"allow all", nil, "http://example.com", "*"},
		{"allowed origin", []string{"http://example.com"}, "http://example.com", "http://example.com"},
		{"blocked origin", []string{"http://example.com"}, "http://evil.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(Chain(ok, CORS(tc.allowed)))
			defer ts.Close()

			req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
			require.NoError(t, err)
			req.Header.Set("Origin", tc.origin)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantHeader, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestMiddleware_CORSPreflight(t *testing.T) {
	notReached := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached the handler")
	})

	ts := httptest.NewServer(Chain(notReached, CORS(nil)))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/typing/submit", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestConcurrentSubmits(t *testing.T) {
	ts, st := newTestServer(t)
	st.CreateOrGet("s1")

	const n = 50

	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			resp := doJSONNoHelper(ts.URL+"/api/typing/submit", submitBody("s1", time.Now(), 5, 60000))
			if resp == nil {
				done <- fmt.Errorf("request failed")
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				done <- fmt.Errorf("status = %d", resp.StatusCode)
				return
			}
			done <- nil
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	summary, err := st.Summary("s1")
	require.NoError(t, err)
	assert.Equal(t, int64(n), summary.SamplesCount)
	assert.Equal(t, int64(5*n), summary.TotalChars)
}

// doJSONNoHelper is a goroutine-safe variant of doJSON that avoids calling
// testing helpers off the test goroutine.
func doJSONNoHelper(url string, body any) *http.Response {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil
	}

	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		return nil
	}
	return resp
}
