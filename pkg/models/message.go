package models

import (
	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/message"
)

// ToolCallData describes one tool call attached to an assistant message.
// Mirrors ent/schema.MessageToolCall.
type ToolCallData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// CreateMessageRequest contains fields for creating a message.
// ToolCalls is set for assistant messages produced via native function
// calling; ToolCallID and ToolName are set for tool result messages.
type CreateMessageRequest struct {
	SessionID      string         `json:"session_id"`
	StageID        string         `json:"stage_id"`
	ExecutionID    string         `json:"execution_id"`
	SequenceNumber int            `json:"sequence_number"`
	Role           message.Role   `json:"role"`
	Content        string         `json:"content"`
	ToolCalls      []ToolCallData `json:"tool_calls,omitempty"`
	ToolCallID     string         `json:"tool_call_id,omitempty"`
	ToolName       string         `json:"tool_name,omitempty"`
}

// MessageResponse wraps a Message
type MessageResponse struct {
	*ent.Message
}
