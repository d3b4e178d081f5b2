package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/hooks"
)

// brokenHook always fails, simulating a consumer whose backend is down.
type brokenHook struct {
	mu    sync.Mutex
	calls int
}

func (h *brokenHook) Name() string { return "broken-consumer" }

func (h *brokenHook) OnFinalized(_ context.Context, _ *hooks.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	return errors.New("consumer backend unavailable")
}

func (h *brokenHook) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// TestFunctionCallingController_BrokenHookDisabledRunUnaffected verifies the
// interaction pipeline's failure isolation end to end: a hook that fails on
// every record is disabled after exhausting its failure budget, while the
// investigation completes normally and the persistence hook keeps recording
// every interaction.
func TestFunctionCallingController_BrokenHookDisabledRunUnaffected(t *testing.T) {
	// LLM calls: three tool-call iterations, then a final answer. Four LLM
	// interactions total — enough for the broken hook to burn its budget of
	// three consecutive failures before the last record is dispatched.
	toolCallResponse := mockLLMResponse{chunks: []agent.Chunk{
		&agent.TextChunk{Content: "Checking the pods."},
		&agent.ToolCallChunk{CallID: "call-1", Name: "k8s.get_pods", Arguments: "{}"},
	}}
	llm := &mockLLMClient{
		responses: []mockLLMResponse{
			toolCallResponse,
			toolCallResponse,
			toolCallResponse,
			{chunks: []agent.Chunk{
				&agent.TextChunk{Content: "All pods are healthy."},
			}},
		},
	}

	tools := []agent.ToolDefinition{{Name: "k8s.get_pods", Description: "Get pods"}}
	executor := &mockToolExecutor{
		tools: tools,
		results: map[string]*agent.ToolResult{
			"k8s.get_pods": {Content: "pod-1 Running", IsError: false},
		},
	}

	execCtx := newTestExecCtx(t, llm, executor)

	broken := &brokenHook{}
	pipeline := hooks.NewPersistencePipeline(execCtx.Services.Interaction)
	pipeline.Register(hooks.KindLLM, broken)
	execCtx.Hooks = pipeline

	ctrl := NewIteratingController()
	result, err := ctrl.Run(context.Background(), execCtx, "")
	require.NoError(t, err)

	// The run is completely unaffected by the misbehaving hook.
	require.Equal(t, agent.ExecutionStatusCompleted, result.Status)
	assert.Equal(t, "All pods are healthy.", result.FinalAnalysis)

	// The broken hook saw exactly three records: disabled after the third
	// consecutive failure, so the fourth LLM record skipped it.
	assert.Equal(t, 3, broken.callCount())
	assert.True(t, pipeline.Disabled(hooks.KindLLM, "broken-consumer"))

	// The healthy persistence hook kept recording: all four LLM interactions
	// landed in the DB despite its broken neighbor.
	llmInteractions, qErr := execCtx.Services.Interaction.GetLLMInteractionsList(context.Background(), execCtx.SessionID)
	require.NoError(t, qErr)
	assert.Len(t, llmInteractions, 4)

	// Tool interactions flow through their own kinds and are untouched by the
	// LLM-kind hook: one tool list plus three tool calls.
	mcpInteractions, qErr := execCtx.Services.Interaction.GetMCPInteractionsList(context.Background(), execCtx.SessionID)
	require.NoError(t, qErr)
	assert.Len(t, mcpInteractions, 4)
}
