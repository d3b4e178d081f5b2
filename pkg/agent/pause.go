package agent

import (
	"context"
	"sync"
)

// PauseSignal is a one-shot pause request shared between the worker pool and
// the controllers running a session. The API fires it; controllers observe it
// at iteration boundaries and return with ExecutionStatusPaused. A nil signal
// never reports a pause, so callers can pass it through without guarding.
type PauseSignal struct {
	once sync.Once
	ch   chan struct{}
}

// NewPauseSignal creates an unfired pause signal.
func NewPauseSignal() *PauseSignal {
	return &PauseSignal{ch: make(chan struct{})}
}

// Request fires the signal. Safe to call multiple times and on nil.
func (s *PauseSignal) Request() {
	if s == nil {
		return
	}
	s.once.Do(func() { close(s.ch) })
}

// Requested reports whether a pause has been requested. Nil-safe.
func (s *PauseSignal) Requested() bool {
	if s == nil {
		return false
	}
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

type pauseSignalKey struct{}

// WithPauseSignal attaches a pause signal to the context so layers between
// the worker and the controllers don't need explicit plumbing.
func WithPauseSignal(ctx context.Context, s *PauseSignal) context.Context {
	return context.WithValue(ctx, pauseSignalKey{}, s)
}

// PauseSignalFrom extracts the pause signal from the context, or nil.
func PauseSignalFrom(ctx context.Context) *PauseSignal {
	s, _ := ctx.Value(pauseSignalKey{}).(*PauseSignal)
	return s
}
