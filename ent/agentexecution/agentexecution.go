// Code generated by ent, DO NOT EDIT.

package agentexecution

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentexecution type in the database.
	Label = "agent_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldParentExecutionID holds the string denoting the parent_execution_id field in the database.
	FieldParentExecutionID = "parent_execution_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldAgentIndex holds the string denoting the agent_index field in the database.
	FieldAgentIndex = "agent_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldPausedAt holds the string denoting the paused_at field in the database.
	FieldPausedAt = "paused_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldIterationStrategy holds the string denoting the iteration_strategy field in the database.
	FieldIterationStrategy = "iteration_strategy"
	// FieldLlmBackend holds the string denoting the llm_backend field in the database.
	FieldLlmBackend = "llm_backend"
	// FieldLlmProvider holds the string denoting the llm_provider field in the database.
	FieldLlmProvider = "llm_provider"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldConversationSnapshot holds the string denoting the conversation_snapshot field in the database.
	FieldConversationSnapshot = "conversation_snapshot"
	// EdgeStage holds the string denoting the stage edge name in mutations.
	EdgeStage = "stage"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeTimelineEvents holds the string denoting the timeline_events edge name in mutations.
	EdgeTimelineEvents = "timeline_events"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeLlmInteractions holds the string denoting the llm_interactions edge name in mutations.
	EdgeLlmInteractions = "llm_interactions"
	// EdgeMcpInteractions holds the string denoting the mcp_interactions edge name in mutations.
	EdgeMcpInteractions = "mcp_interactions"
	// EdgeSubAgentTimelineEvents holds the string denoting the sub_agent_timeline_events edge name in mutations.
	EdgeSubAgentTimelineEvents = "sub_agent_timeline_events"
	// StageFieldID holds the string denoting the ID field of the Stage.
	StageFieldID = "stage_id"
	// AlertSessionFieldID holds the string denoting the ID field of the AlertSession.
	AlertSessionFieldID = "session_id"
	// TimelineEventFieldID holds the string denoting the ID field of the TimelineEvent.
	TimelineEventFieldID = "event_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// LLMInteractionFieldID holds the string denoting the ID field of the LLMInteraction.
	LLMInteractionFieldID = "interaction_id"
	// MCPInteractionFieldID holds the string denoting the ID field of the MCPInteraction.
	MCPInteractionFieldID = "interaction_id"
	// Table holds the table name of the agentexecution in the database.
	Table = "agent_executions"
	// StageTable is the table that holds the stage relation/edge.
	StageTable = "agent_executions"
	// StageInverseTable is the table name for the Stage entity.
	// It exists in this package in order to avoid circular dependency with the "stage" package.
	StageInverseTable = "stages"
	// StageColumn is the table column denoting the stage relation/edge.
	StageColumn = "stage_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "agent_executions"
	// SessionInverseTable is the table name for the AlertSession entity.
	// It exists in this package in order to avoid circular dependency with the "alertsession" package.
	SessionInverseTable = "alert_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// TimelineEventsTable is the table that holds the timeline_events relation/edge.
	TimelineEventsTable = "timeline_events"
	// TimelineEventsInverseTable is the table name for the TimelineEvent entity.
	// It exists in this package in order to avoid circular dependency with the "timelineevent" package.
	TimelineEventsInverseTable = "timeline_events"
	// TimelineEventsColumn is the table column denoting the timeline_events relation/edge.
	TimelineEventsColumn = "execution_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "execution_id"
	// LlmInteractionsTable is the table that holds the llm_interactions relation/edge.
	LlmInteractionsTable = "llm_interactions"
	// LlmInteractionsInverseTable is the table name for the LLMInteraction entity.
	// It exists in this package in order to avoid circular dependency with the "llminteraction" package.
	LlmInteractionsInverseTable = "llm_interactions"
	// LlmInteractionsColumn is the table column denoting the llm_interactions relation/edge.
	LlmInteractionsColumn = "execution_id"
	// McpInteractionsTable is the table that holds the mcp_interactions relation/edge.
	McpInteractionsTable = "mcp_interactions"
	// McpInteractionsInverseTable is the table name for the MCPInteraction entity.
	// It exists in this package in order to avoid circular dependency with the "mcpinteraction" package.
	McpInteractionsInverseTable = "mcp_interactions"
	// McpInteractionsColumn is the table column denoting the mcp_interactions relation/edge.
	McpInteractionsColumn = "execution_id"
	// SubAgentTimelineEventsTable is the table that holds the sub_agent_timeline_events relation/edge.
	SubAgentTimelineEventsTable = "timeline_events"
	// SubAgentTimelineEventsInverseTable is the table name for the TimelineEvent entity.
	// It exists in this package in order to avoid circular dependency with the "timelineevent" package.
	SubAgentTimelineEventsInverseTable = "timeline_events"
	// SubAgentTimelineEventsColumn is the table column denoting the sub_agent_timeline_events relation/edge.
	SubAgentTimelineEventsColumn = "parent_execution_id"
)

// Columns holds all SQL columns for agentexecution fields.
var Columns = []string{
	FieldID,
	FieldStageID,
	FieldSessionID,
	FieldParentExecutionID,
	FieldAgentName,
	FieldAgentIndex,
	FieldStatus,
	FieldStartedAt,
	FieldPausedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldErrorMessage,
	FieldIterationStrategy,
	FieldLlmBackend,
	FieldLlmProvider,
	FieldTask,
	FieldConversationSnapshot,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
	StatusFailed    Status = "failed"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusPartial, StatusFailed, StatusPaused, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("agentexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByParentExecutionID orders the results by the parent_execution_id field.
func ByParentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentExecutionID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByAgentIndex orders the results by the agent_index field.
func ByAgentIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByPausedAt orders the results by the paused_at field.
func ByPausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByIterationStrategy orders the results by the iteration_strategy field.
func ByIterationStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationStrategy, opts...).ToFunc()
}

// ByLlmBackend orders the results by the llm_backend field.
func ByLlmBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmBackend, opts...).ToFunc()
}

// ByLlmProvider orders the results by the llm_provider field.
func ByLlmProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProvider, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByStageField orders the results by stage field.
func ByStageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStageStep(), sql.OrderByField(field, opts...))
	}
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByTimelineEventsCount orders the results by timeline_events count.
func ByTimelineEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTimelineEventsStep(), opts...)
	}
}

// ByTimelineEvents orders the results by timeline_events terms.
func ByTimelineEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTimelineEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLlmInteractionsCount orders the results by llm_interactions count.
func ByLlmInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLlmInteractionsStep(), opts...)
	}
}

// ByLlmInteractions orders the results by llm_interactions terms.
func ByLlmInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLlmInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMcpInteractionsCount orders the results by mcp_interactions count.
func ByMcpInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMcpInteractionsStep(), opts...)
	}
}

// ByMcpInteractions orders the results by mcp_interactions terms.
func ByMcpInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMcpInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySubAgentTimelineEventsCount orders the results by sub_agent_timeline_events count.
func BySubAgentTimelineEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubAgentTimelineEventsStep(), opts...)
	}
}

// BySubAgentTimelineEvents orders the results by sub_agent_timeline_events terms.
func BySubAgentTimelineEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubAgentTimelineEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StageInverseTable, StageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StageTable, StageColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, AlertSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newTimelineEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TimelineEventsInverseTable, TimelineEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newLlmInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LlmInteractionsInverseTable, LLMInteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
	)
}
func newMcpInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(McpInteractionsInverseTable, MCPInteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
	)
}
func newSubAgentTimelineEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubAgentTimelineEventsInverseTable, TimelineEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubAgentTimelineEventsTable, SubAgentTimelineEventsColumn),
	)
}
