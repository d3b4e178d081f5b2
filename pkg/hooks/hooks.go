// Package hooks implements the typed interaction pipeline: every LLM call and
// tool invocation is captured as a Record and dispatched to the hooks
// registered for its kind after the underlying call has finished. Hook
// failures are logged and never propagated to the caller, and a hook that
// fails repeatedly is disabled so a broken consumer cannot slow down
// execution indefinitely.
package hooks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the interaction type a hook subscribes to.
type Kind string

const (
	KindLLM      Kind = "llm"
	KindToolCall Kind = "tool_call"
	KindToolList Kind = "tool_list"
)

// maxConsecutiveFailures is the failure budget per hook. A hook that fails
// this many times in a row is disabled until a later manual re-enable; a
// single success resets the counter.
const maxConsecutiveFailures = 3

// Record is the finalized view of one interaction, handed to every enabled
// hook of the matching kind. Payload carries the kind-specific request that
// downstream consumers persist or inspect:
//
//	KindLLM                  models.CreateLLMInteractionRequest
//	KindToolCall, KindToolList  models.CreateMCPInteractionRequest
type Record struct {
	RequestID   string
	Kind        Kind
	SessionID   string
	StageID     string
	ExecutionID string
	StartedAt   time.Time
	Duration    time.Duration
	Success     bool
	Err         error
	Payload     any
}

// Hook consumes finalized interaction records. OnFinalized runs after the
// underlying call completed; returning an error counts against the hook's
// failure budget but never affects the caller.
type Hook interface {
	Name() string
	OnFinalized(ctx context.Context, rec *Record) error
}

type hookState struct {
	hook     Hook
	failures int
	disabled bool
}

// Pipeline dispatches finalized interaction records to registered hooks.
// Safe for concurrent use.
type Pipeline struct {
	mu    sync.Mutex
	hooks map[Kind][]*hookState
}

func NewPipeline() *Pipeline {
	return &Pipeline{hooks: make(map[Kind][]*hookState)}
}

// Register adds a hook for the given kind. Hooks run in registration order.
func (p *Pipeline) Register(kind Kind, h Hook) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hooks[kind] = append(p.hooks[kind], &hookState{hook: h})
}

// SetDisabled enables or disables a hook by name. Re-enabling resets its
// failure counter.
func (p *Pipeline) SetDisabled(kind Kind, name string, disabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, st := range p.hooks[kind] {
		if st.hook.Name() == name {
			st.disabled = disabled
			if !disabled {
				st.failures = 0
			}
		}
	}
}

// Disabled reports whether the named hook is currently disabled.
func (p *Pipeline) Disabled(kind Kind, name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, st := range p.hooks[kind] {
		if st.hook.Name() == name {
			return st.disabled
		}
	}
	return false
}

// Interaction is one in-flight interaction scope. Obtain it with Open before
// (or during) the underlying call and Finalize it exactly once afterwards.
type Interaction struct {
	pipeline *Pipeline
	rec      Record
	done     bool
}

// Open starts an interaction scope for the given kind. The returned
// Interaction carries a fresh request ID and the start timestamp.
func (p *Pipeline) Open(kind Kind, sessionID, stageID, executionID string) *Interaction {
	return &Interaction{
		pipeline: p,
		rec: Record{
			RequestID:   uuid.New().String(),
			Kind:        kind,
			SessionID:   sessionID,
			StageID:     stageID,
			ExecutionID: executionID,
			StartedAt:   time.Now(),
		},
	}
}

// SetStart overrides the scope's start time for callers that timed the
// underlying call themselves.
func (in *Interaction) SetStart(t time.Time) {
	in.rec.StartedAt = t
}

// RequestID returns the scope's request ID.
func (in *Interaction) RequestID() string {
	return in.rec.RequestID
}

// Finalize closes the scope and dispatches the record to the kind's hooks.
// callErr is the outcome of the underlying call; it is recorded but the
// dispatch itself never surfaces an error. Finalize is idempotent.
func (in *Interaction) Finalize(ctx context.Context, payload any, callErr error) {
	if in.done {
		return
	}
	in.done = true
	in.rec.Duration = time.Since(in.rec.StartedAt)
	in.rec.Success = callErr == nil
	in.rec.Err = callErr
	in.rec.Payload = payload
	in.pipeline.dispatch(ctx, &in.rec)
}

func (p *Pipeline) dispatch(ctx context.Context, rec *Record) {
	p.mu.Lock()
	states := p.hooks[rec.Kind]
	p.mu.Unlock()

	for _, st := range states {
		p.mu.Lock()
		skip := st.disabled
		p.mu.Unlock()
		if skip {
			continue
		}

		err := st.hook.OnFinalized(ctx, rec)

		p.mu.Lock()
		if err != nil {
			st.failures++
			if st.failures >= maxConsecutiveFailures && !st.disabled {
				st.disabled = true
				slog.Warn("Interaction hook disabled after repeated failures",
					"hook", st.hook.Name(), "kind", rec.Kind, "failures", st.failures)
			}
			p.mu.Unlock()
			slog.Error("Interaction hook failed",
				"hook", st.hook.Name(), "kind", rec.Kind,
				"request_id", rec.RequestID, "session_id", rec.SessionID, "error", err)
			continue
		}
		st.failures = 0
		p.mu.Unlock()
	}
}
