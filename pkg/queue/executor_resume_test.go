package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
	util "github.com/tarsy-project/tarsy/test/util"
)

func TestConversationSnapshotRoundTrip(t *testing.T) {
	conversation := []agent.ConversationMessage{
		{Role: "system", Content: "You are an SRE agent."},
		{Role: "user", Content: "Investigate the alert."},
		{
			Role:    "assistant",
			Content: "Checking pods.",
			ToolCalls: []agent.ToolCall{
				{ID: "call-1", Name: "test-mcp__get_pods", Arguments: `{"namespace":"default"}`},
				{ID: "call-2", Name: "test-mcp__get_events", Arguments: `{}`},
			},
		},
		{Role: "tool", Content: `[{"name":"pod-1"}]`, ToolCallID: "call-1", ToolName: "test-mcp__get_pods"},
		{Role: "assistant", Content: "Pod-1 is OOMKilled."},
	}

	snapshot := snapshotFromConversation(conversation)
	restored := conversationFromSnapshot(snapshot)

	assert.Equal(t, conversation, restored)
}

func TestSnapshotFromConversation_OmitsEmptyFields(t *testing.T) {
	snapshot := snapshotFromConversation([]agent.ConversationMessage{
		{Role: "user", Content: "hello"},
	})

	require.Len(t, snapshot, 1)
	assert.Equal(t, "user", snapshot[0]["role"])
	assert.Equal(t, "hello", snapshot[0]["content"])
	_, hasToolCallID := snapshot[0]["tool_call_id"]
	assert.False(t, hasToolCallID)
	_, hasToolName := snapshot[0]["tool_name"]
	assert.False(t, hasToolName)
	_, hasToolCalls := snapshot[0]["tool_calls"]
	assert.False(t, hasToolCalls)
}

func TestConversationFromSnapshot_SkipsMalformed(t *testing.T) {
	snapshot := []map[string]interface{}{
		{"content": "no role — skipped"},
		{"role": "user", "content": "kept"},
		{
			"role":    "assistant",
			"content": "mixed tool calls",
			"tool_calls": []interface{}{
				"not-a-map",
				map[string]interface{}{"id": "call-1", "name": "get_pods", "arguments": "{}"},
			},
		},
	}

	conversation := conversationFromSnapshot(snapshot)

	require.Len(t, conversation, 2)
	assert.Equal(t, "kept", conversation[0].Content)
	require.Len(t, conversation[1].ToolCalls, 1)
	assert.Equal(t, "call-1", conversation[1].ToolCalls[0].ID)
	assert.Equal(t, "get_pods", conversation[1].ToolCalls[0].Name)
}

func TestStageResultFromRecord(t *testing.T) {
	t.Run("completed stage with output", func(t *testing.T) {
		sr := stageResultFromRecord(&ent.Stage{
			ID:        "stage-1",
			StageName: "investigation",
			Status:    stage.StatusCompleted,
			StageOutput: map[string]interface{}{
				"final_analysis": "Root cause: OOM",
				"status":         "completed",
			},
		})

		assert.Equal(t, "stage-1", sr.stageID)
		assert.Equal(t, "investigation", sr.stageName)
		assert.Equal(t, alertsession.StatusCompleted, sr.status)
		assert.Equal(t, "Root cause: OOM", sr.finalAnalysis)
	})

	t.Run("partial stage status", func(t *testing.T) {
		sr := stageResultFromRecord(&ent.Stage{
			ID:        "stage-2",
			StageName: "parallel-check",
			Status:    stage.StatusPartial,
			StageOutput: map[string]interface{}{
				"final_analysis": "Only one checker finished",
			},
		})

		assert.Equal(t, alertsession.StatusPartial, sr.status)
		assert.Equal(t, "Only one checker finished", sr.finalAnalysis)
	})

	t.Run("partial recorded in output only", func(t *testing.T) {
		sr := stageResultFromRecord(&ent.Stage{
			ID:        "stage-3",
			StageName: "analysis",
			Status:    stage.StatusCompleted,
			StageOutput: map[string]interface{}{
				"final_analysis": "some output",
				"status":         "partial",
			},
		})

		assert.Equal(t, alertsession.StatusPartial, sr.status)
	})

	t.Run("missing output fields", func(t *testing.T) {
		sr := stageResultFromRecord(&ent.Stage{
			ID:        "stage-4",
			StageName: "final",
			Status:    stage.StatusCompleted,
		})

		assert.Equal(t, alertsession.StatusCompleted, sr.status)
		assert.Empty(t, sr.finalAnalysis)
	})
}

func TestMapEntStatusToAgentStatus(t *testing.T) {
	tests := []struct {
		name   string
		input  agentexecution.Status
		expect agent.ExecutionStatus
	}{
		{"completed", agentexecution.StatusCompleted, agent.ExecutionStatusCompleted},
		{"partial", agentexecution.StatusPartial, agent.ExecutionStatusPartial},
		{"paused", agentexecution.StatusPaused, agent.ExecutionStatusPaused},
		{"cancelled", agentexecution.StatusCancelled, agent.ExecutionStatusCancelled},
		{"pending", agentexecution.StatusPending, agent.ExecutionStatusPending},
		{"active", agentexecution.StatusActive, agent.ExecutionStatusActive},
		{"failed", agentexecution.StatusFailed, agent.ExecutionStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, mapEntStatusToAgentStatus(tt.input))
		})
	}
}

func TestFindExecutionByIndex(t *testing.T) {
	stg := &ent.Stage{}
	stg.Edges.AgentExecutions = []*ent.AgentExecution{
		{ID: "exec-1", AgentIndex: 1},
		{ID: "exec-2", AgentIndex: 2},
	}

	found := findExecutionByIndex(stg, 2)
	require.NotNil(t, found)
	assert.Equal(t, "exec-2", found.ID)

	assert.Nil(t, findExecutionByIndex(stg, 3))
}

// TestExecutor_ResumePausedParallelStage re-executes a session whose
// two-agent stage was paused after one child finished. The completed child's
// result must be replayed from its records without another LLM call, and the
// paused child must pick up from its conversation snapshot.
func TestExecutor_ResumePausedParallelStage(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	chain := &config.ChainConfig{
		AlertTypes: []string{"test-alert"},
		Stages: []config.StageConfig{
			{
				Name:          "parallel-stage",
				SuccessPolicy: config.SuccessPolicyAll,
				Agents: []config.StageAgentConfig{
					{Name: "TestAgent", LLMProvider: "flaky-provider"},
					{Name: "TestAgent"},
				},
			},
		},
	}
	cfg := parallelTestConfig("test-chain", chain)
	session := createExecutorTestSession(t, entClient, "test-chain")

	// State left behind by a pause: child 1 finished before the pause was
	// observed, child 2 stopped at an iteration boundary with its
	// conversation snapshotted.
	stg, err := entClient.Stage.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetStageName("parallel-stage").
		SetStageIndex(1).
		SetExpectedAgentCount(2).
		SetParallelType(stage.ParallelTypeMultiAgent).
		SetSuccessPolicy(stage.SuccessPolicyAll).
		SetStatus(stage.StatusPaused).
		Save(ctx)
	require.NoError(t, err)

	doneExec, err := entClient.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetStageID(stg.ID).
		SetAgentName("TestAgent").
		SetAgentIndex(1).
		SetIterationStrategy("react").
		SetLlmBackend("langchain").
		SetLlmProvider("flaky-provider").
		SetStatus(agentexecution.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	_, err = entClient.TimelineEvent.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetStageID(stg.ID).
		SetExecutionID(doneExec.ID).
		SetSequenceNumber(1).
		SetEventType(timelineevent.EventTypeFinalAnalysis).
		SetStatus(timelineevent.StatusCompleted).
		SetContent("Network partition identified.").
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	snapshot := snapshotFromConversation([]agent.ConversationMessage{
		{Role: "system", Content: "You are an SRE agent."},
		{Role: "user", Content: "Investigate the alert."},
		{Role: "assistant", Content: "Thought: Need more data before concluding."},
	})
	pausedExec, err := entClient.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID(session.ID).
		SetStageID(stg.ID).
		SetAgentName("TestAgent").
		SetAgentIndex(2).
		SetIterationStrategy("react").
		SetLlmBackend("langchain").
		SetLlmProvider("test-provider").
		SetStatus(agentexecution.StatusPaused).
		SetConversationSnapshot(snapshot).
		Save(ctx)
	require.NoError(t, err)

	// The completed child's provider has no canned response: if the executor
	// wrongly re-ran it, that child would fail and sink the "all" policy.
	llm := &modelRoutedLLMClient{
		responses: map[string]mockLLMResponse{
			"test-model": {chunks: []agent.Chunk{
				&agent.TextChunk{Content: "Thought: Done.\nFinal Answer: Replica recovered after failover."},
			}},
		},
	}

	executor := NewRealSessionExecutor(cfg, entClient, llm, nil, nil)
	result := executor.Execute(context.Background(), session)

	require.NotNil(t, result)
	assert.Equal(t, alertsession.StatusCompleted, result.Status)
	// Multi-agent stage analysis comes from the first child with output —
	// the replayed one.
	assert.Equal(t, "Network partition identified.", result.FinalAnalysis)

	// The completed child was replayed, not re-run.
	assert.Equal(t, 0, llm.callsFor("flaky-model"))
	reloadedDone, err := entClient.AgentExecution.Get(ctx, doneExec.ID)
	require.NoError(t, err)
	assert.Equal(t, agentexecution.StatusCompleted, reloadedDone.Status)

	// The paused child resumed from its snapshot: its first LLM call carries
	// the restored conversation instead of a freshly built prompt.
	var resumedInput *agent.GenerateInput
	for _, in := range llm.captured {
		if in.ExecutionID == pausedExec.ID {
			resumedInput = in
			break
		}
	}
	require.NotNil(t, resumedInput, "paused child should have called the LLM")
	require.Len(t, resumedInput.Messages, 3)
	assert.Equal(t, "You are an SRE agent.", resumedInput.Messages[0].Content)
	assert.Equal(t, "Thought: Need more data before concluding.", resumedInput.Messages[2].Content)

	// Reactivation ran the paused child to completion and the stage with it.
	reloadedPaused, err := entClient.AgentExecution.Get(ctx, pausedExec.ID)
	require.NoError(t, err)
	assert.Equal(t, agentexecution.StatusCompleted, reloadedPaused.Status)
	assert.Empty(t, reloadedPaused.ConversationSnapshot)
	reloadedStage, err := entClient.Stage.Get(ctx, stg.ID)
	require.NoError(t, err)
	assert.Equal(t, stage.StatusCompleted, reloadedStage.Status)
}
