// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/chat"
	"github.com/tarsy-project/tarsy/ent/chatusermessage"
	"github.com/tarsy-project/tarsy/ent/stage"
)

// Stage is the model entity for the Stage schema.
type Stage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// e.g., 'Initial Analysis', 'Deep Dive'
	StageName string `json:"stage_name,omitempty"`
	// Position in chain: 0, 1, 2...
	StageIndex int `json:"stage_index,omitempty"`
	// How many agents (1 for single, N for parallel)
	ExpectedAgentCount int `json:"expected_agent_count,omitempty"`
	// null if count=1, 'multi_agent'/'replica' if count>1
	ParallelType *stage.ParallelType `json:"parallel_type,omitempty"`
	// null if count=1, 'all'/'any' if count>1
	SuccessPolicy *stage.SuccessPolicy `json:"success_policy,omitempty"`
	// Status holds the value of the "status" field.
	Status stage.Status `json:"status,omitempty"`
	// When first agent started
	StartedAt *time.Time `json:"started_at,omitempty"`
	// PausedAt holds the value of the "paused_at" field.
	PausedAt *time.Time `json:"paused_at,omitempty"`
	// When stage finished (any terminal state)
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Total stage duration
	DurationMs *int `json:"duration_ms,omitempty"`
	// Aggregated error if stage failed/cancelled
	ErrorMessage *string `json:"error_message,omitempty"`
	// Representative output handed to downstream stages
	StageOutput map[string]interface{} `json:"stage_output,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID *string `json:"chat_id,omitempty"`
	// ChatUserMessageID holds the value of the "chat_user_message_id" field.
	ChatUserMessageID *string `json:"chat_user_message_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageQuery when eager-loading is set.
	Edges        StageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageEdges holds the relations/edges for other nodes in the graph.
type StageEdges struct {
	// Session holds the value of the session edge.
	Session *AlertSession `json:"session,omitempty"`
	// AgentExecutions holds the value of the agent_executions edge.
	AgentExecutions []*AgentExecution `json:"agent_executions,omitempty"`
	// TimelineEvents holds the value of the timeline_events edge.
	TimelineEvents []*TimelineEvent `json:"timeline_events,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// LlmInteractions holds the value of the llm_interactions edge.
	LlmInteractions []*LLMInteraction `json:"llm_interactions,omitempty"`
	// McpInteractions holds the value of the mcp_interactions edge.
	McpInteractions []*MCPInteraction `json:"mcp_interactions,omitempty"`
	// Chat holds the value of the chat edge.
	Chat *Chat `json:"chat,omitempty"`
	// ChatUserMessage holds the value of the chat_user_message edge.
	ChatUserMessage *ChatUserMessage `json:"chat_user_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEdges) SessionOrErr() (*AlertSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// AgentExecutionsOrErr returns the AgentExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) AgentExecutionsOrErr() ([]*AgentExecution, error) {
	if e.loadedTypes[1] {
		return e.AgentExecutions, nil
	}
	return nil, &NotLoadedError{edge: "agent_executions"}
}

// TimelineEventsOrErr returns the TimelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) TimelineEventsOrErr() ([]*TimelineEvent, error) {
	if e.loadedTypes[2] {
		return e.TimelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "timeline_events"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[3] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// LlmInteractionsOrErr returns the LlmInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) LlmInteractionsOrErr() ([]*LLMInteraction, error) {
	if e.loadedTypes[4] {
		return e.LlmInteractions, nil
	}
	return nil, &NotLoadedError{edge: "llm_interactions"}
}

// McpInteractionsOrErr returns the McpInteractions value or an error if the edge
// was not loaded in eager-loading.
func (e StageEdges) McpInteractionsOrErr() ([]*MCPInteraction, error) {
	if e.loadedTypes[5] {
		return e.McpInteractions, nil
	}
	return nil, &NotLoadedError{edge: "mcp_interactions"}
}

// ChatOrErr returns the Chat value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEdges) ChatOrErr() (*Chat, error) {
	if e.Chat != nil {
		return e.Chat, nil
	} else if e.loadedTypes[6] {
		return nil, &NotFoundError{label: chat.Label}
	}
	return nil, &NotLoadedError{edge: "chat"}
}

// ChatUserMessageOrErr returns the ChatUserMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageEdges) ChatUserMessageOrErr() (*ChatUserMessage, error) {
	if e.ChatUserMessage != nil {
		return e.ChatUserMessage, nil
	} else if e.loadedTypes[7] {
		return nil, &NotFoundError{label: chatusermessage.Label}
	}
	return nil, &NotLoadedError{edge: "chat_user_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stage.FieldStageOutput:
			values[i] = new([]byte)
		case stage.FieldStageIndex, stage.FieldExpectedAgentCount, stage.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case stage.FieldID, stage.FieldSessionID, stage.FieldStageName, stage.FieldParallelType, stage.FieldSuccessPolicy, stage.FieldStatus, stage.FieldErrorMessage, stage.FieldChatID, stage.FieldChatUserMessageID:
			values[i] = new(sql.NullString)
		case stage.FieldStartedAt, stage.FieldPausedAt, stage.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stage fields.
func (_m *Stage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case stage.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case stage.FieldStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_index", values[i])
			} else if value.Valid {
				_m.StageIndex = int(value.Int64)
			}
		case stage.FieldExpectedAgentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_agent_count", values[i])
			} else if value.Valid {
				_m.ExpectedAgentCount = int(value.Int64)
			}
		case stage.FieldParallelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parallel_type", values[i])
			} else if value.Valid {
				_m.ParallelType = new(stage.ParallelType)
				*_m.ParallelType = stage.ParallelType(value.String)
			}
		case stage.FieldSuccessPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field success_policy", values[i])
			} else if value.Valid {
				_m.SuccessPolicy = new(stage.SuccessPolicy)
				*_m.SuccessPolicy = stage.SuccessPolicy(value.String)
			}
		case stage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stage.Status(value.String)
			}
		case stage.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case stage.FieldPausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paused_at", values[i])
			} else if value.Valid {
				_m.PausedAt = new(time.Time)
				*_m.PausedAt = value.Time
			}
		case stage.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case stage.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case stage.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case stage.FieldStageOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stage_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StageOutput); err != nil {
					return fmt.Errorf("unmarshal field stage_output: %w", err)
				}
			}
		case stage.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = new(string)
				*_m.ChatID = value.String
			}
		case stage.FieldChatUserMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_user_message_id", values[i])
			} else if value.Valid {
				_m.ChatUserMessageID = new(string)
				*_m.ChatUserMessageID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stage.
// This includes values selected through modifiers, order, etc.
func (_m *Stage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Stage entity.
func (_m *Stage) QuerySession() *AlertSessionQuery {
	return NewStageClient(_m.config).QuerySession(_m)
}

// QueryAgentExecutions queries the "agent_executions" edge of the Stage entity.
func (_m *Stage) QueryAgentExecutions() *AgentExecutionQuery {
	return NewStageClient(_m.config).QueryAgentExecutions(_m)
}

// QueryTimelineEvents queries the "timeline_events" edge of the Stage entity.
func (_m *Stage) QueryTimelineEvents() *TimelineEventQuery {
	return NewStageClient(_m.config).QueryTimelineEvents(_m)
}

// QueryMessages queries the "messages" edge of the Stage entity.
func (_m *Stage) QueryMessages() *MessageQuery {
	return NewStageClient(_m.config).QueryMessages(_m)
}

// QueryLlmInteractions queries the "llm_interactions" edge of the Stage entity.
func (_m *Stage) QueryLlmInteractions() *LLMInteractionQuery {
	return NewStageClient(_m.config).QueryLlmInteractions(_m)
}

// QueryMcpInteractions queries the "mcp_interactions" edge of the Stage entity.
func (_m *Stage) QueryMcpInteractions() *MCPInteractionQuery {
	return NewStageClient(_m.config).QueryMcpInteractions(_m)
}

// QueryChat queries the "chat" edge of the Stage entity.
func (_m *Stage) QueryChat() *ChatQuery {
	return NewStageClient(_m.config).QueryChat(_m)
}

// QueryChatUserMessage queries the "chat_user_message" edge of the Stage entity.
func (_m *Stage) QueryChatUserMessage() *ChatUserMessageQuery {
	return NewStageClient(_m.config).QueryChatUserMessage(_m)
}

// Update returns a builder for updating this Stage.
// Note that you need to call Stage.Unwrap() before calling this method if this Stage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stage) Update() *StageUpdateOne {
	return NewStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stage) Unwrap() *Stage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stage) String() string {
	var builder strings.Builder
	builder.WriteString("Stage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(_m.StageName)
	builder.WriteString(", ")
	builder.WriteString("stage_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageIndex))
	builder.WriteString(", ")
	builder.WriteString("expected_agent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedAgentCount))
	builder.WriteString(", ")
	if v := _m.ParallelType; v != nil {
		builder.WriteString("parallel_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SuccessPolicy; v != nil {
		builder.WriteString("success_policy=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PausedAt; v != nil {
		builder.WriteString("paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stage_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageOutput))
	builder.WriteString(", ")
	if v := _m.ChatID; v != nil {
		builder.WriteString("chat_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChatUserMessageID; v != nil {
		builder.WriteString("chat_user_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Stages is a parsable slice of Stage.
type Stages []*Stage
