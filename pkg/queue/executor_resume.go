package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// Resume support: converters between in-memory conversation state and the
// JSON snapshots persisted on agent executions, plus reconstruction of
// stage/agent results from DB records when a paused session is re-claimed.

// snapshotFromConversation flattens the conversation into the JSON shape
// stored in agent_execution.conversation_snapshot.
func snapshotFromConversation(conversation []agent.ConversationMessage) []map[string]interface{} {
	snapshot := make([]map[string]interface{}, 0, len(conversation))
	for _, msg := range conversation {
		entry := map[string]interface{}{
			"role":    msg.Role,
			"content": msg.Content,
		}
		if msg.ToolCallID != "" {
			entry["tool_call_id"] = msg.ToolCallID
		}
		if msg.ToolName != "" {
			entry["tool_name"] = msg.ToolName
		}
		if len(msg.ToolCalls) > 0 {
			calls := make([]map[string]interface{}, 0, len(msg.ToolCalls))
			for _, tc := range msg.ToolCalls {
				calls = append(calls, map[string]interface{}{
					"id":        tc.ID,
					"name":      tc.Name,
					"arguments": tc.Arguments,
				})
			}
			entry["tool_calls"] = calls
		}
		snapshot = append(snapshot, entry)
	}
	return snapshot
}

// conversationFromSnapshot is the inverse of snapshotFromConversation.
// Unknown or malformed entries are skipped rather than failing the resume.
func conversationFromSnapshot(snapshot []map[string]interface{}) []agent.ConversationMessage {
	conversation := make([]agent.ConversationMessage, 0, len(snapshot))
	for _, entry := range snapshot {
		role, _ := entry["role"].(string)
		if role == "" {
			continue
		}
		msg := agent.ConversationMessage{Role: role}
		msg.Content, _ = entry["content"].(string)
		msg.ToolCallID, _ = entry["tool_call_id"].(string)
		msg.ToolName, _ = entry["tool_name"].(string)
		if rawCalls, ok := entry["tool_calls"].([]interface{}); ok {
			for _, rawCall := range rawCalls {
				call, ok := rawCall.(map[string]interface{})
				if !ok {
					continue
				}
				tc := agent.ToolCall{}
				tc.ID, _ = call["id"].(string)
				tc.Name, _ = call["name"].(string)
				tc.Arguments, _ = call["arguments"].(string)
				msg.ToolCalls = append(msg.ToolCalls, tc)
			}
		}
		conversation = append(conversation, msg)
	}
	return conversation
}

// findExecutionByIndex returns the stage's execution with the given 1-based
// agent index, or nil. Requires the agent_executions edge to be loaded.
func findExecutionByIndex(stg *ent.Stage, agentIndex int) *ent.AgentExecution {
	for _, exec := range stg.Edges.AgentExecutions {
		if exec.AgentIndex == agentIndex {
			return exec
		}
	}
	return nil
}

// mapEntStatusToAgentStatus maps a persisted execution status back to the
// in-memory status used for stage aggregation.
func mapEntStatusToAgentStatus(status agentexecution.Status) agent.ExecutionStatus {
	switch status {
	case agentexecution.StatusCompleted:
		return agent.ExecutionStatusCompleted
	case agentexecution.StatusPartial:
		return agent.ExecutionStatusPartial
	case agentexecution.StatusPaused:
		return agent.ExecutionStatusPaused
	case agentexecution.StatusCancelled:
		return agent.ExecutionStatusCancelled
	case agentexecution.StatusPending:
		return agent.ExecutionStatusPending
	case agentexecution.StatusActive:
		return agent.ExecutionStatusActive
	default:
		return agent.ExecutionStatusFailed
	}
}

// finalAnalysisFromTimeline recovers an execution's final analysis from its
// persisted timeline. Returns "" when no final_analysis event exists.
func finalAnalysisFromTimeline(ctx context.Context, timeline *services.TimelineService, executionID string) string {
	events, err := timeline.GetAgentTimeline(ctx, executionID)
	if err != nil {
		slog.Warn("Failed to load timeline for resumed execution",
			"execution_id", executionID, "error", err)
		return ""
	}
	// Events are sequence-ordered; the last final_analysis wins.
	analysis := ""
	for _, ev := range events {
		if ev.EventType == timelineevent.EventTypeFinalAnalysis {
			analysis = ev.Content
		}
	}
	return analysis
}

// agentResultFromRecord reconstructs an agentResult for a child execution that
// already reached a terminal status before the stage was paused.
func agentResultFromRecord(ctx context.Context, exec *ent.AgentExecution, timeline *services.TimelineService) agentResult {
	ar := agentResult{
		executionID:     exec.ID,
		status:          mapEntStatusToAgentStatus(exec.Status),
		llmBackend:      exec.LlmBackend,
		llmProviderName: exec.LlmProvider,
	}
	if exec.ErrorMessage != nil && *exec.ErrorMessage != "" {
		ar.err = fmt.Errorf("%s", *exec.ErrorMessage)
	}
	if ar.status == agent.ExecutionStatusCompleted || ar.status == agent.ExecutionStatusPartial {
		ar.finalAnalysis = finalAnalysisFromTimeline(ctx, timeline, exec.ID)
	}
	return ar
}

// stageResultFromRecord rebuilds the stageResult for a stage that finished in
// an earlier run, using the persisted stage_output instead of re-running it.
func stageResultFromRecord(stg *ent.Stage) stageResult {
	sr := stageResult{
		stageID:   stg.ID,
		stageName: stg.StageName,
	}
	switch stg.Status {
	case stage.StatusPartial:
		sr.status = alertsession.StatusPartial
	default:
		sr.status = alertsession.StatusCompleted
	}
	if v, ok := stg.StageOutput["final_analysis"].(string); ok {
		sr.finalAnalysis = v
	}
	if s, ok := stg.StageOutput["status"].(string); ok && s == string(alertsession.StatusPartial) {
		sr.status = alertsession.StatusPartial
	}
	return sr
}
