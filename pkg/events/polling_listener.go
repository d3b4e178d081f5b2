package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tarsy-project/tarsy/ent"
)

// Polling loop tuning. The interval trades delivery latency against DB load;
// the error backoff keeps a broken store from being hammered.
const (
	defaultPollInterval = 500 * time.Millisecond
	pollErrorBackoff    = 5 * time.Second
	pollBatchLimit      = 200
	idleChannelTimeout  = 60 * time.Second
)

// pollQuerier is the slice of services.EventService the polling loop needs.
type pollQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
	GetLatestEventID(ctx context.Context, channel string) (int, error)
}

// pollCursor tracks per-channel polling state.
type pollCursor struct {
	lastEventID  int
	lastActivity time.Time
}

// PollingListener is the cursor-polling ChannelListener backend. It serves
// the same role as NotifyListener for stores without LISTEN/NOTIFY: one loop
// queries each subscribed channel for events past its cursor and hands them
// to the ConnectionManager.
//
// Only persisted events are delivered — transient stream.chunk events never
// hit the events table, so live token streaming degrades to the final
// timeline_event.completed content on this backend.
type PollingListener struct {
	querier  pollQuerier
	manager  *ConnectionManager
	interval time.Duration

	cursors   map[string]*pollCursor
	cursorsMu sync.Mutex

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewPollingListener creates a polling listener. A zero interval selects the
// 500 ms default.
func NewPollingListener(querier pollQuerier, manager *ConnectionManager, interval time.Duration) *PollingListener {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &PollingListener{
		querier:  querier,
		manager:  manager,
		interval: interval,
		cursors:  make(map[string]*pollCursor),
	}
}

// Start begins the poll loop.
func (l *PollingListener) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.pollLoop(loopCtx)
	}()
	slog.Info("PollingListener started", "interval", l.interval)
	return nil
}

// Stop signals the poll loop to exit and waits for it to finish.
func (l *PollingListener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		select {
		case <-l.loopDone:
		case <-ctx.Done():
		}
	}
}

// Subscribe starts polling a channel. The cursor is seeded with the latest
// stored event id so the loop only delivers events published after this
// call — history is the catchup mechanism's job, and seeding at "now" keeps
// the two paths from double-delivering.
func (l *PollingListener) Subscribe(ctx context.Context, channel string) error {
	l.cursorsMu.Lock()
	if _, exists := l.cursors[channel]; exists {
		l.cursorsMu.Unlock()
		return nil // Already polling
	}
	l.cursorsMu.Unlock()

	latest, err := l.querier.GetLatestEventID(ctx, channel)
	if err != nil {
		return fmt.Errorf("failed to seed polling cursor for %s: %w", channel, err)
	}

	l.cursorsMu.Lock()
	// Re-check under the lock — a concurrent Subscribe may have won.
	if _, exists := l.cursors[channel]; !exists {
		l.cursors[channel] = &pollCursor{lastEventID: latest, lastActivity: time.Now()}
	}
	l.cursorsMu.Unlock()

	slog.Debug("Subscribed to polling channel", "channel", channel, "cursor", latest)
	return nil
}

// Unsubscribe stops polling a channel and drops its cursor.
func (l *PollingListener) Unsubscribe(_ context.Context, channel string) error {
	l.cursorsMu.Lock()
	delete(l.cursors, channel)
	l.cursorsMu.Unlock()
	return nil
}

// pollLoop queries every subscribed channel once per interval and dispatches
// new events in id order. Any query error backs the whole loop off.
func (l *PollingListener) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := l.pollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("Event poll failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(pollErrorBackoff):
			}
		}

		l.collectIdleChannels()
	}
}

// pollOnce runs one pass over all subscribed channels. Returns the first
// query error; dispatch continues for the remaining channels regardless.
func (l *PollingListener) pollOnce(ctx context.Context) error {
	l.cursorsMu.Lock()
	channels := make([]string, 0, len(l.cursors))
	for ch := range l.cursors {
		channels = append(channels, ch)
	}
	l.cursorsMu.Unlock()

	var firstErr error
	for _, channel := range channels {
		l.cursorsMu.Lock()
		cursor, ok := l.cursors[channel]
		if !ok {
			l.cursorsMu.Unlock()
			continue // Unsubscribed since the snapshot
		}
		sinceID := cursor.lastEventID
		l.cursorsMu.Unlock()

		events, err := l.querier.GetEventsSince(ctx, channel, sinceID, pollBatchLimit)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("poll of channel %s: %w", channel, err)
			}
			continue
		}
		if len(events) == 0 {
			continue
		}

		for _, evt := range events {
			l.dispatch(channel, evt.ID, evt.Payload)
		}

		l.cursorsMu.Lock()
		// Advance only if the channel survived the dispatch window and no
		// newer cursor was installed by a re-subscribe.
		if cursor, ok := l.cursors[channel]; ok && events[len(events)-1].ID > cursor.lastEventID {
			cursor.lastEventID = events[len(events)-1].ID
			cursor.lastActivity = time.Now()
		}
		l.cursorsMu.Unlock()
	}
	return firstErr
}

// dispatch injects db_event_id (matching the NOTIFY payload shape, so clients
// track position identically on both backends) and broadcasts.
func (l *PollingListener) dispatch(channel string, eventID int, payload map[string]interface{}) {
	enriched := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		enriched[k] = v
	}
	enriched["db_event_id"] = eventID

	data, err := json.Marshal(enriched)
	if err != nil {
		slog.Warn("Failed to marshal polled event", "channel", channel, "event_id", eventID, "error", err)
		return
	}
	l.manager.Broadcast(channel, data)
}

// collectIdleChannels drops cursors for channels that have seen no events for
// idleChannelTimeout and no longer have subscribers. Normally Unsubscribe
// removes the cursor; this sweep is the backstop for channels orphaned by a
// connection that died without unsubscribing cleanly.
func (l *PollingListener) collectIdleChannels() {
	l.cursorsMu.Lock()
	defer l.cursorsMu.Unlock()
	for channel, cursor := range l.cursors {
		if time.Since(cursor.lastActivity) < idleChannelTimeout {
			continue
		}
		if l.manager != nil && l.manager.subscriberCount(channel) > 0 {
			continue
		}
		delete(l.cursors, channel)
		slog.Debug("Garbage-collected idle polling channel", "channel", channel)
	}
}
