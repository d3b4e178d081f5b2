package hooks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHook struct {
	name    string
	records []*Record
	err     error
}

func (h *captureHook) Name() string { return h.name }

func (h *captureHook) OnFinalized(_ context.Context, rec *Record) error {
	h.records = append(h.records, rec)
	return h.err
}

func TestPipeline_DispatchesToMatchingKind(t *testing.T) {
	p := NewPipeline()
	llmHook := &captureHook{name: "llm-capture"}
	toolHook := &captureHook{name: "tool-capture"}
	p.Register(KindLLM, llmHook)
	p.Register(KindToolCall, toolHook)

	in := p.Open(KindLLM, "sess-1", "stage-1", "exec-1")
	in.Finalize(context.Background(), "payload", nil)

	require.Len(t, llmHook.records, 1)
	assert.Empty(t, toolHook.records)

	rec := llmHook.records[0]
	assert.Equal(t, KindLLM, rec.Kind)
	assert.Equal(t, "sess-1", rec.SessionID)
	assert.Equal(t, "stage-1", rec.StageID)
	assert.Equal(t, "exec-1", rec.ExecutionID)
	assert.Equal(t, "payload", rec.Payload)
	assert.True(t, rec.Success)
	assert.NoError(t, rec.Err)
	assert.NotEmpty(t, rec.RequestID)
}

func TestPipeline_RecordsCallError(t *testing.T) {
	p := NewPipeline()
	hook := &captureHook{name: "capture"}
	p.Register(KindToolCall, hook)

	callErr := errors.New("tool exploded")
	in := p.Open(KindToolCall, "sess-1", "stage-1", "exec-1")
	in.Finalize(context.Background(), nil, callErr)

	require.Len(t, hook.records, 1)
	assert.False(t, hook.records[0].Success)
	assert.Equal(t, callErr, hook.records[0].Err)
}

func TestPipeline_FinalizeIsIdempotent(t *testing.T) {
	p := NewPipeline()
	hook := &captureHook{name: "capture"}
	p.Register(KindLLM, hook)

	in := p.Open(KindLLM, "sess-1", "", "")
	in.Finalize(context.Background(), nil, nil)
	in.Finalize(context.Background(), nil, nil)

	assert.Len(t, hook.records, 1)
}

func TestPipeline_HookErrorNeverPropagates(t *testing.T) {
	p := NewPipeline()
	failing := &captureHook{name: "failing", err: errors.New("db down")}
	after := &captureHook{name: "after"}
	p.Register(KindLLM, failing)
	p.Register(KindLLM, after)

	// Finalize has no error return; the failing hook must not stop later hooks.
	in := p.Open(KindLLM, "sess-1", "", "")
	in.Finalize(context.Background(), nil, nil)

	assert.Len(t, failing.records, 1)
	assert.Len(t, after.records, 1)
}

func TestPipeline_AutoDisableAfterConsecutiveFailures(t *testing.T) {
	p := NewPipeline()
	failing := &captureHook{name: "failing", err: errors.New("db down")}
	p.Register(KindLLM, failing)

	for i := 0; i < maxConsecutiveFailures; i++ {
		assert.False(t, p.Disabled(KindLLM, "failing"))
		in := p.Open(KindLLM, "sess-1", "", "")
		in.Finalize(context.Background(), nil, nil)
	}

	assert.True(t, p.Disabled(KindLLM, "failing"))
	require.Len(t, failing.records, maxConsecutiveFailures)

	// Disabled hooks are skipped entirely.
	in := p.Open(KindLLM, "sess-1", "", "")
	in.Finalize(context.Background(), nil, nil)
	assert.Len(t, failing.records, maxConsecutiveFailures)
}

func TestPipeline_SuccessResetsFailureCounter(t *testing.T) {
	p := NewPipeline()
	flaky := &captureHook{name: "flaky", err: errors.New("transient")}
	p.Register(KindLLM, flaky)

	// Two failures, then a success, then two more failures: never disabled.
	for i := 0; i < 2; i++ {
		p.Open(KindLLM, "s", "", "").Finalize(context.Background(), nil, nil)
	}
	flaky.err = nil
	p.Open(KindLLM, "s", "", "").Finalize(context.Background(), nil, nil)
	flaky.err = errors.New("transient")
	for i := 0; i < 2; i++ {
		p.Open(KindLLM, "s", "", "").Finalize(context.Background(), nil, nil)
	}

	assert.False(t, p.Disabled(KindLLM, "flaky"))
	assert.Len(t, flaky.records, 5)
}

func TestPipeline_ManualDisableAndReEnable(t *testing.T) {
	p := NewPipeline()
	hook := &captureHook{name: "capture"}
	p.Register(KindToolList, hook)

	p.SetDisabled(KindToolList, "capture", true)
	p.Open(KindToolList, "s", "", "").Finalize(context.Background(), nil, nil)
	assert.Empty(t, hook.records)

	p.SetDisabled(KindToolList, "capture", false)
	p.Open(KindToolList, "s", "", "").Finalize(context.Background(), nil, nil)
	assert.Len(t, hook.records, 1)
}

func TestInteraction_SetStartOverridesTiming(t *testing.T) {
	p := NewPipeline()
	hook := &captureHook{name: "capture"}
	p.Register(KindLLM, hook)

	start := time.Now().Add(-500 * time.Millisecond)
	in := p.Open(KindLLM, "sess-1", "", "")
	in.SetStart(start)
	in.Finalize(context.Background(), nil, nil)

	require.Len(t, hook.records, 1)
	assert.Equal(t, start, hook.records[0].StartedAt)
	assert.GreaterOrEqual(t, hook.records[0].Duration, 500*time.Millisecond)
}
