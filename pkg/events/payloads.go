package events

import (
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// BasePayload carries the fields every WebSocket payload must have.
// The frontend routes incoming events by `type` and `session_id`, so every
// payload struct embeds this — see the contract test in
// payloads_contract_test.go.
type BasePayload struct {
	Type      string `json:"type"`       // one of the EventType* constants
	SessionID string `json:"session_id"` // owning session UUID
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}

// TimelineCreatedPayload is the payload for timeline_event.created events.
// Published when a new timeline event is created (streaming or completed).
type TimelineCreatedPayload struct {
	BasePayload
	EventID        string                  `json:"event_id"`               // timeline event UUID
	StageID        string                  `json:"stage_id,omitempty"`     // owning stage (empty for session-level events)
	ExecutionID    string                  `json:"execution_id,omitempty"` // owning agent execution (empty for session-level events)
	EventType      timelineevent.EventType `json:"event_type"`             // llm_thinking, llm_response, llm_tool_call, mcp_tool_summary, etc.
	Status         timelineevent.Status    `json:"status"`                 // streaming, completed, failed, cancelled, timed_out
	Content        string                  `json:"content"`                // event content (may be empty for streaming)
	Metadata       map[string]any          `json:"metadata,omitempty"`
	SequenceNumber int                     `json:"sequence_number"` // order in timeline
}

// TimelineCompletedPayload is the payload for timeline_event.completed events.
// Published when a streaming timeline event transitions to a terminal status.
type TimelineCompletedPayload struct {
	BasePayload
	EventID   string                  `json:"event_id"`   // timeline event UUID
	EventType timelineevent.EventType `json:"event_type"` // llm_thinking, llm_response, llm_tool_call, etc.
	Content   string                  `json:"content"`    // final content
	Status    timelineevent.Status    `json:"status"`     // completed, failed, cancelled, timed_out
	Metadata  map[string]any          `json:"metadata,omitempty"`
}

// StreamChunkPayload is the payload for stream.chunk transient events.
// Published for each LLM streaming token — high frequency, ephemeral.
type StreamChunkPayload struct {
	BasePayload
	EventID string `json:"event_id"` // parent timeline event UUID
	Delta   string `json:"delta"`    // incremental text chunk
}

// SessionStatusPayload is the payload for session.status events.
// Published when a session transitions between lifecycle states.
type SessionStatusPayload struct {
	BasePayload
	Status alertsession.Status `json:"status"` // pending, in_progress, canceling, completed, partial, failed, cancelled, paused
}

// StageStatusPayload is the payload for stage.status events.
// Single event type for all stage lifecycle transitions (started, completed, failed, etc.).
type StageStatusPayload struct {
	BasePayload
	StageID    string `json:"stage_id,omitempty"` // may be empty on "started" if stage creation hasn't happened yet
	StageName  string `json:"stage_name"`         // human-readable stage name from config
	StageIndex int    `json:"stage_index"`        // 1-based
	Status     string `json:"status"`             // started, completed, failed, timed_out, cancelled
}

// InteractionCreatedPayload is the payload for interaction.created events.
// Published when an LLM or MCP interaction record is saved, so the debug
// view can refresh incrementally instead of polling.
type InteractionCreatedPayload struct {
	BasePayload
	StageID         string `json:"stage_id,omitempty"`
	ExecutionID     string `json:"execution_id,omitempty"`
	InteractionID   string `json:"interaction_id"`
	InteractionType string `json:"interaction_type"` // InteractionTypeLLM or InteractionTypeMCP
}

// SessionProgressPayload is the payload for session.progress transient events.
// Broadcast on the global sessions channel for the active alerts panel.
type SessionProgressPayload struct {
	BasePayload
	CurrentStageName  string `json:"current_stage_name"`
	CurrentStageIndex int    `json:"current_stage_index"` // 1-based, clamped to TotalStages
	TotalStages       int    `json:"total_stages"`
	ActiveExecutions  int    `json:"active_executions"`
	StatusText        string `json:"status_text"` // human-readable, e.g. "Starting stage: investigation"
}

// ExecutionProgressPayload is the payload for execution.progress transient events.
// Fine-grained per-agent progress for the session detail page.
type ExecutionProgressPayload struct {
	BasePayload
	StageID     string `json:"stage_id"`
	ExecutionID string `json:"execution_id"`
	Phase       string `json:"phase"`   // one of the ProgressPhase* constants
	Message     string `json:"message"` // e.g. "Iteration 2/5"
}

// ExecutionStatusPayload is the payload for execution.status transient events.
// Published when an agent execution starts or reaches a terminal state.
type ExecutionStatusPayload struct {
	BasePayload
	StageID      string `json:"stage_id"`
	ExecutionID  string `json:"execution_id"`
	AgentIndex   int    `json:"agent_index"` // 1-based, chain config ordering
	Status       string `json:"status"`      // started, completed, failed, cancelled, timed_out
	ErrorMessage string `json:"error_message,omitempty"`
}

// ChatCreatedPayload is the payload for chat.created events.
// Published when the first message creates a new chat for a session.
type ChatCreatedPayload struct {
	BasePayload
	ChatID    string `json:"chat_id"`    // new chat UUID
	CreatedBy string `json:"created_by"` // author who initiated the chat
}

// ChatUserMessagePayload is the payload for chat.user_message events.
// Published when a user sends a chat message.
type ChatUserMessagePayload struct {
	BasePayload
	ChatID    string `json:"chat_id"`    // owning chat UUID
	MessageID string `json:"message_id"` // new message UUID
	Content   string `json:"content"`    // message text
	Author    string `json:"author"`     // who sent the message
	StageID   string `json:"stage_id"`   // response stage (for tracking)
}
