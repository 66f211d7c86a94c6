package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rudism/pushover-to-gotify/internal/logger"
	"github.com/rudism/pushover-to-gotify/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	status stream.Status
}

func (f *fakeSession) Status() stream.Status { return f.status }

type fakeCursor struct {
	current int64
}

func (f *fakeCursor) Current() int64 { return f.current }

// ── GET /api/status ──────────────────────────────────────────────────────────

func TestHandler_Status(t *testing.T) {
	connectedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	session := &fakeSession{status: stream.Status{
		State:       stream.StateLoggedIn,
		SessionID:   "f2f9c3f1-1111-2222-3333-444455556666",
		ConnectedAt: connectedAt,
	}}
	h := NewHandler(session, &fakeCursor{current: 1042}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, stream.StateLoggedIn, got.Stream.State)
	assert.Equal(t, session.status.SessionID, got.Stream.SessionID)
	assert.True(t, connectedAt.Equal(got.Stream.ConnectedAt))
	assert.Equal(t, int64(1042), got.Cursor)
}

func TestHandler_Status_Disconnected(t *testing.T) {
	session := &fakeSession{status: stream.Status{State: stream.StateDisconnected}}
	h := NewHandler(session, &fakeCursor{}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, stream.StateDisconnected, got.Stream.State)
	assert.Empty(t, got.Stream.SessionID)
}

func TestHandler_UnknownRoute(t *testing.T) {
	h := NewHandler(&fakeSession{}, &fakeCursor{}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/nope")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
