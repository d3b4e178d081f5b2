package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarsy-project/tarsy/pkg/events"
)

// fakeController records cancel/pause deliveries for dispatch tests.
type fakeController struct {
	cancelled []string
	paused    []string
	known     map[string]bool
}

func (f *fakeController) CancelSession(sessionID string) bool {
	f.cancelled = append(f.cancelled, sessionID)
	return f.known[sessionID]
}

func (f *fakeController) PauseSession(sessionID string) bool {
	f.paused = append(f.paused, sessionID)
	return f.known[sessionID]
}

func TestCancelListenerDispatch(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		wantCancelled []string
		wantPaused    []string
	}{
		{
			name:          "cancel action",
			payload:       `{"action":"cancel","session_id":"sess-1"}`,
			wantCancelled: []string{"sess-1"},
		},
		{
			name:       "pause action",
			payload:    `{"action":"pause","session_id":"sess-2"}`,
			wantPaused: []string{"sess-2"},
		},
		{
			name:    "unknown action ignored",
			payload: `{"action":"resume","session_id":"sess-3"}`,
		},
		{
			name:    "empty session id ignored",
			payload: `{"action":"cancel","session_id":""}`,
		},
		{
			name:    "malformed json ignored",
			payload: `{not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &fakeController{known: map[string]bool{"sess-1": true, "sess-2": true}}
			l := NewCancelListener("", pool)

			l.dispatch(tt.payload)

			assert.Equal(t, tt.wantCancelled, pool.cancelled)
			assert.Equal(t, tt.wantPaused, pool.paused)
		})
	}
}

// The worker pool itself must satisfy the controller contract.
var _ sessionController = (*WorkerPool)(nil)

func TestCancelRequestPayloadRoundTrip(t *testing.T) {
	// Wire format consumed by every pod: keys must stay stable.
	assert.Equal(t, "cancellations", events.CancellationsChannel)
	assert.Equal(t, "cancel", events.CancelActionCancel)
	assert.Equal(t, "pause", events.CancelActionPause)
}
