package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wpmlab/typing-monitor/pkg/logger"
	"github.com/wpmlab/typing-monitor/pkg/server"
	"github.com/wpmlab/typing-monitor/pkg/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	st := store.New(logger.Noop())
	ts := httptest.NewServer(server.NewHandler(st, logger.Noop()))
	t.Cleanup(ts.Close)

	return New(Config{ServerURL: ts.URL})
}

func TestClient_RoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	// Create with server-generated id.
	generated, err := c.CreateSession(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, generated)

	// Create with explicit id.
	sid := "s1"
	created, err := c.CreateSession(ctx, &sid)
	require.NoError(t, err)
	assert.Equal(t, "s1", created)

	// Submit a batch and check the returned summary.
	summary, err := c.Submit(ctx, "s1", []store.Sample{{
		SessionID:  "s1",
		Timestamp:  time.Now(),
		CharsTyped: 50,
		DurationMS: 60000,
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(50), summary.TotalChars)
	assert.Equal(t, 10.0, summary.AvgWPM)

	// Read paths.
	summary, err = c.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.SamplesCount)

	stat, err := c.Stats(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, stat.WPM)
	assert.Nil(t, stat.Accuracy)

	summaries, err := c.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	// Delete and verify it is gone.
	require.NoError(t, c.DeleteSession(ctx, "s1"))
	_, err = c.Summary(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_NotFound(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Summary(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Stats(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	err = c.DeleteSession(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Submit(ctx, "ghost", []store.Sample{{
		SessionID: "ghost", Timestamp: time.Now(), CharsTyped: 1, DurationMS: 1,
	}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_BadRequestPreservesMessage(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	sid := "s1"
	_, err := c.CreateSession(ctx, &sid)
	require.NoError(t, err)

	_, err = c.Submit(ctx, "s1", []store.Sample{{
		SessionID: "other", Timestamp: time.Now(), CharsTyped: 1, DurationMS: 1,
	}})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "does not match")
}

func TestClient_Health(t *testing.T) {
	c := newTestClient(t)

	assert.NoError(t, c.Health(context.Background()))
}

func TestClient_ContextCancellation(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListSessions(ctx)
	assert.Error(t, err)
}
