// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/stage"
)

// LLMInteraction is the model entity for the LLMInteraction schema.
type LLMInteraction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// nil for session-level interactions (e.g. executive_summary)
	StageID *string `json:"stage_id,omitempty"`
	// Which agent — nil for session-level interactions
	ExecutionID *string `json:"execution_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// InteractionType holds the value of the "interaction_type" field.
	InteractionType llminteraction.InteractionType `json:"interaction_type,omitempty"`
	// e.g., 'gemini-2.0-flash-thinking-exp'
	ModelName string `json:"model_name,omitempty"`
	// Last message sent to LLM
	LastMessageID *string `json:"last_message_id,omitempty"`
	// Full API request payload
	LlmRequest map[string]interface{} `json:"llm_request,omitempty"`
	// Full API response payload
	LlmResponse map[string]interface{} `json:"llm_response,omitempty"`
	// Native thinking (Gemini)
	ThinkingContent *string `json:"thinking_content,omitempty"`
	// Grounding, tool usage, etc.
	ResponseMetadata map[string]interface{} `json:"response_metadata,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens *int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens *int `json:"output_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens *int `json:"total_tokens,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// null = success, not-null = failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LLMInteractionQuery when eager-loading is set.
	Edges        LLMInteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LLMInteractionEdges holds the relations/edges for other nodes in the graph.
type LLMInteractionEdges struct {
	// Session holds the value of the session edge.
	Session *AlertSession `json:"session,omitempty"`
	// Stage holds the value of the stage edge.
	Stage *Stage `json:"stage,omitempty"`
	// AgentExecution holds the value of the agent_execution edge.
	AgentExecution *AgentExecution `json:"agent_execution,omitempty"`
	// LastMessage holds the value of the last_message edge.
	LastMessage *Message `json:"last_message,omitempty"`
	// TimelineEvents holds the value of the timeline_events edge.
	TimelineEvents []*TimelineEvent `json:"timeline_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMInteractionEdges) SessionOrErr() (*AlertSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alertsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// StageOrErr returns the Stage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMInteractionEdges) StageOrErr() (*Stage, error) {
	if e.Stage != nil {
		return e.Stage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stage.Label}
	}
	return nil, &NotLoadedError{edge: "stage"}
}

// AgentExecutionOrErr returns the AgentExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMInteractionEdges) AgentExecutionOrErr() (*AgentExecution, error) {
	if e.AgentExecution != nil {
		return e.AgentExecution, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "agent_execution"}
}

// LastMessageOrErr returns the LastMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LLMInteractionEdges) LastMessageOrErr() (*Message, error) {
	if e.LastMessage != nil {
		return e.LastMessage, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "last_message"}
}

// TimelineEventsOrErr returns the TimelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e LLMInteractionEdges) TimelineEventsOrErr() ([]*TimelineEvent, error) {
	if e.loadedTypes[4] {
		return e.TimelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "timeline_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMInteraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llminteraction.FieldLlmRequest, llminteraction.FieldLlmResponse, llminteraction.FieldResponseMetadata:
			values[i] = new([]byte)
		case llminteraction.FieldInputTokens, llminteraction.FieldOutputTokens, llminteraction.FieldTotalTokens, llminteraction.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case llminteraction.FieldID, llminteraction.FieldSessionID, llminteraction.FieldStageID, llminteraction.FieldExecutionID, llminteraction.FieldInteractionType, llminteraction.FieldModelName, llminteraction.FieldLastMessageID, llminteraction.FieldThinkingContent, llminteraction.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case llminteraction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMInteraction fields.
func (_m *LLMInteraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llminteraction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case llminteraction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case llminteraction.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = new(string)
				*_m.StageID = value.String
			}
		case llminteraction.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = new(string)
				*_m.ExecutionID = value.String
			}
		case llminteraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case llminteraction.FieldInteractionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_type", values[i])
			} else if value.Valid {
				_m.InteractionType = llminteraction.InteractionType(value.String)
			}
		case llminteraction.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case llminteraction.FieldLastMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_id", values[i])
			} else if value.Valid {
				_m.LastMessageID = new(string)
				*_m.LastMessageID = value.String
			}
		case llminteraction.FieldLlmRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_request", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmRequest); err != nil {
					return fmt.Errorf("unmarshal field llm_request: %w", err)
				}
			}
		case llminteraction.FieldLlmResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field llm_response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LlmResponse); err != nil {
					return fmt.Errorf("unmarshal field llm_response: %w", err)
				}
			}
		case llminteraction.FieldThinkingContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thinking_content", values[i])
			} else if value.Valid {
				_m.ThinkingContent = new(string)
				*_m.ThinkingContent = value.String
			}
		case llminteraction.FieldResponseMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseMetadata); err != nil {
					return fmt.Errorf("unmarshal field response_metadata: %w", err)
				}
			}
		case llminteraction.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = new(int)
				*_m.InputTokens = int(value.Int64)
			}
		case llminteraction.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = new(int)
				*_m.OutputTokens = int(value.Int64)
			}
		case llminteraction.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = new(int)
				*_m.TotalTokens = int(value.Int64)
			}
		case llminteraction.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case llminteraction.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMInteraction.
// This includes values selected through modifiers, order, etc.
func (_m *LLMInteraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the LLMInteraction entity.
func (_m *LLMInteraction) QuerySession() *AlertSessionQuery {
	return NewLLMInteractionClient(_m.config).QuerySession(_m)
}

// QueryStage queries the "stage" edge of the LLMInteraction entity.
func (_m *LLMInteraction) QueryStage() *StageQuery {
	return NewLLMInteractionClient(_m.config).QueryStage(_m)
}

// QueryAgentExecution queries the "agent_execution" edge of the LLMInteraction entity.
func (_m *LLMInteraction) QueryAgentExecution() *AgentExecutionQuery {
	return NewLLMInteractionClient(_m.config).QueryAgentExecution(_m)
}

// QueryLastMessage queries the "last_message" edge of the LLMInteraction entity.
func (_m *LLMInteraction) QueryLastMessage() *MessageQuery {
	return NewLLMInteractionClient(_m.config).QueryLastMessage(_m)
}

// QueryTimelineEvents queries the "timeline_events" edge of the LLMInteraction entity.
func (_m *LLMInteraction) QueryTimelineEvents() *TimelineEventQuery {
	return NewLLMInteractionClient(_m.config).QueryTimelineEvents(_m)
}

// Update returns a builder for updating this LLMInteraction.
// Note that you need to call LLMInteraction.Unwrap() before calling this method if this LLMInteraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMInteraction) Update() *LLMInteractionUpdateOne {
	return NewLLMInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMInteraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMInteraction) Unwrap() *LLMInteraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMInteraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMInteraction) String() string {
	var builder strings.Builder
	builder.WriteString("LLMInteraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.StageID; v != nil {
		builder.WriteString("stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutionID; v != nil {
		builder.WriteString("execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("interaction_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.InteractionType))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	if v := _m.LastMessageID; v != nil {
		builder.WriteString("last_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("llm_request=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmRequest))
	builder.WriteString(", ")
	builder.WriteString("llm_response=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmResponse))
	builder.WriteString(", ")
	if v := _m.ThinkingContent; v != nil {
		builder.WriteString("thinking_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseMetadata))
	builder.WriteString(", ")
	if v := _m.InputTokens; v != nil {
		builder.WriteString("input_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OutputTokens; v != nil {
		builder.WriteString("output_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTokens; v != nil {
		builder.WriteString("total_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
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
	builder.WriteByte(')')
	return builder.String()
}

// LLMInteractions is a parsable slice of LLMInteraction.
type LLMInteractions []*LLMInteraction
