package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tarsy-project/tarsy/pkg/events"
)

// sessionController is the subset of WorkerPool the cancel listener needs.
type sessionController interface {
	CancelSession(sessionID string) bool
	PauseSession(sessionID string) bool
}

// CancelListener receives cross-pod cancel/pause requests on the
// cancellations NOTIFY channel and delivers them to the local worker pool.
// Requests for sessions running on other pods are ignored; the DB status
// transition remains the source of truth, so a missed notification is
// caught at the executor's next boundary check or by the orphan detector.
type CancelListener struct {
	connString string
	pool       sessionController

	conn   *pgx.Conn
	connMu sync.Mutex

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewCancelListener creates a listener bound to the given pool.
func NewCancelListener(connString string, pool sessionController) *CancelListener {
	return &CancelListener{
		connString: connString,
		pool:       pool,
	}
}

// Start opens a dedicated LISTEN connection and begins receiving requests.
func (l *CancelListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for cancel LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{events.CancellationsChannel}.Sanitize()); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("LISTEN %s failed: %w", events.CancellationsChannel, err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("CancelListener started")
	return nil
}

func (l *CancelListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return // shutting down
			}
			slog.Error("Cancel NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.dispatch(notification.Payload)
	}
}

// dispatch parses one request and applies it to the local pool.
func (l *CancelListener) dispatch(payload string) {
	var req events.CancelRequestPayload
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		slog.Warn("Ignoring malformed cancel request", "error", err)
		return
	}
	if req.SessionID == "" {
		return
	}

	switch req.Action {
	case events.CancelActionCancel:
		if l.pool.CancelSession(req.SessionID) {
			slog.Info("Cancelled session via cancellations channel", "session_id", req.SessionID)
		}
	case events.CancelActionPause:
		if l.pool.PauseSession(req.SessionID) {
			slog.Info("Paused session via cancellations channel", "session_id", req.SessionID)
		}
	default:
		slog.Warn("Ignoring cancel request with unknown action", "action", req.Action)
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff.
func (l *CancelListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("Cancel LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{events.CancellationsChannel}.Sanitize()); err != nil {
			slog.Error("Re-LISTEN cancellations failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn
		slog.Info("CancelListener reconnected")
		return
	}
}

// Stop signals the receive loop to exit and closes the connection.
func (l *CancelListener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
