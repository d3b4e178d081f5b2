// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/chat"
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/sessionscore"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// AlertSessionUpdate is the builder for updating AlertSession entities.
type AlertSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AlertSessionMutation
}

// Where appends a list predicates to the AlertSessionUpdate builder.
func (_u *AlertSessionUpdate) Where(ps ...predicate.AlertSession) *AlertSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlertData sets the "alert_data" field.
func (_u *AlertSessionUpdate) SetAlertData(v string) *AlertSessionUpdate {
	_u.mutation.SetAlertData(v)
	return _u
}

// SetNillableAlertData sets the "alert_data" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAlertData(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAlertData(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AlertSessionUpdate) SetAgentType(v string) *AlertSessionUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAgentType(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *AlertSessionUpdate) SetAlertType(v string) *AlertSessionUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAlertType(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// ClearAlertType clears the value of the "alert_type" field.
func (_u *AlertSessionUpdate) ClearAlertType() *AlertSessionUpdate {
	_u.mutation.ClearAlertType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertSessionUpdate) SetStatus(v alertsession.Status) *AlertSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableStatus(v *alertsession.Status) *AlertSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AlertSessionUpdate) SetCreatedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCreatedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AlertSessionUpdate) SetStartedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableStartedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AlertSessionUpdate) ClearStartedAt() *AlertSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AlertSessionUpdate) SetCompletedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCompletedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AlertSessionUpdate) ClearCompletedAt() *AlertSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *AlertSessionUpdate) SetPausedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillablePausedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *AlertSessionUpdate) ClearPausedAt() *AlertSessionUpdate {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AlertSessionUpdate) SetErrorMessage(v string) *AlertSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableErrorMessage(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AlertSessionUpdate) ClearErrorMessage() *AlertSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *AlertSessionUpdate) SetFinalAnalysis(v string) *AlertSessionUpdate {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableFinalAnalysis(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetFinalAnalysis(*v)
	}
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *AlertSessionUpdate) ClearFinalAnalysis() *AlertSessionUpdate {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *AlertSessionUpdate) SetExecutiveSummary(v string) *AlertSessionUpdate {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableExecutiveSummary(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *AlertSessionUpdate) ClearExecutiveSummary() *AlertSessionUpdate {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// SetExecutiveSummaryError sets the "executive_summary_error" field.
func (_u *AlertSessionUpdate) SetExecutiveSummaryError(v string) *AlertSessionUpdate {
	_u.mutation.SetExecutiveSummaryError(v)
	return _u
}

// SetNillableExecutiveSummaryError sets the "executive_summary_error" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableExecutiveSummaryError(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetExecutiveSummaryError(*v)
	}
	return _u
}

// ClearExecutiveSummaryError clears the value of the "executive_summary_error" field.
func (_u *AlertSessionUpdate) ClearExecutiveSummaryError() *AlertSessionUpdate {
	_u.mutation.ClearExecutiveSummaryError()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *AlertSessionUpdate) SetSessionMetadata(v map[string]interface{}) *AlertSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *AlertSessionUpdate) ClearSessionMetadata() *AlertSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *AlertSessionUpdate) SetAuthor(v string) *AlertSessionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableAuthor(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *AlertSessionUpdate) ClearAuthor() *AlertSessionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetRunbookURL sets the "runbook_url" field.
func (_u *AlertSessionUpdate) SetRunbookURL(v string) *AlertSessionUpdate {
	_u.mutation.SetRunbookURL(v)
	return _u
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableRunbookURL(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetRunbookURL(*v)
	}
	return _u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (_u *AlertSessionUpdate) ClearRunbookURL() *AlertSessionUpdate {
	_u.mutation.ClearRunbookURL()
	return _u
}

// SetMcpSelection sets the "mcp_selection" field.
func (_u *AlertSessionUpdate) SetMcpSelection(v map[string]interface{}) *AlertSessionUpdate {
	_u.mutation.SetMcpSelection(v)
	return _u
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (_u *AlertSessionUpdate) ClearMcpSelection() *AlertSessionUpdate {
	_u.mutation.ClearMcpSelection()
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AlertSessionUpdate) SetChainID(v string) *AlertSessionUpdate {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableChainID(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *AlertSessionUpdate) SetCurrentStageIndex(v int) *AlertSessionUpdate {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCurrentStageIndex(v *int) *AlertSessionUpdate {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *AlertSessionUpdate) AddCurrentStageIndex(v int) *AlertSessionUpdate {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (_u *AlertSessionUpdate) ClearCurrentStageIndex() *AlertSessionUpdate {
	_u.mutation.ClearCurrentStageIndex()
	return _u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_u *AlertSessionUpdate) SetCurrentStageID(v string) *AlertSessionUpdate {
	_u.mutation.SetCurrentStageID(v)
	return _u
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableCurrentStageID(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetCurrentStageID(*v)
	}
	return _u
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (_u *AlertSessionUpdate) ClearCurrentStageID() *AlertSessionUpdate {
	_u.mutation.ClearCurrentStageID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AlertSessionUpdate) SetPodID(v string) *AlertSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillablePodID(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AlertSessionUpdate) ClearPodID() *AlertSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AlertSessionUpdate) SetLastInteractionAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableLastInteractionAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AlertSessionUpdate) ClearLastInteractionAt() *AlertSessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetSlackMessageFingerprint sets the "slack_message_fingerprint" field.
func (_u *AlertSessionUpdate) SetSlackMessageFingerprint(v string) *AlertSessionUpdate {
	_u.mutation.SetSlackMessageFingerprint(v)
	return _u
}

// SetNillableSlackMessageFingerprint sets the "slack_message_fingerprint" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableSlackMessageFingerprint(v *string) *AlertSessionUpdate {
	if v != nil {
		_u.SetSlackMessageFingerprint(*v)
	}
	return _u
}

// ClearSlackMessageFingerprint clears the value of the "slack_message_fingerprint" field.
func (_u *AlertSessionUpdate) ClearSlackMessageFingerprint() *AlertSessionUpdate {
	_u.mutation.ClearSlackMessageFingerprint()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AlertSessionUpdate) SetDeletedAt(v time.Time) *AlertSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableDeletedAt(v *time.Time) *AlertSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AlertSessionUpdate) ClearDeletedAt() *AlertSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *AlertSessionUpdate) AddStageIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *AlertSessionUpdate) AddStages(v ...*Stage) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *AlertSessionUpdate) AddAgentExecutionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *AlertSessionUpdate) AddAgentExecutions(v ...*AgentExecution) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AlertSessionUpdate) AddTimelineEventIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdate) AddTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *AlertSessionUpdate) AddMessageIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *AlertSessionUpdate) AddMessages(v ...*Message) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *AlertSessionUpdate) AddLlmInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdate) AddLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *AlertSessionUpdate) AddMcpInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdate) AddMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AlertSessionUpdate) AddEventIDs(ids ...int) *AlertSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AlertSessionUpdate) AddEvents(v ...*Event) *AlertSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetChatID sets the "chat" edge to the Chat entity by ID.
func (_u *AlertSessionUpdate) SetChatID(id string) *AlertSessionUpdate {
	_u.mutation.SetChatID(id)
	return _u
}

// SetNillableChatID sets the "chat" edge to the Chat entity by ID if the given value is not nil.
func (_u *AlertSessionUpdate) SetNillableChatID(id *string) *AlertSessionUpdate {
	if id != nil {
		_u = _u.SetChatID(*id)
	}
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *AlertSessionUpdate) SetChat(v *Chat) *AlertSessionUpdate {
	return _u.SetChatID(v.ID)
}

// AddSessionScoreIDs adds the "session_scores" edge to the SessionScore entity by IDs.
func (_u *AlertSessionUpdate) AddSessionScoreIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.AddSessionScoreIDs(ids...)
	return _u
}

// AddSessionScores adds the "session_scores" edges to the SessionScore entity.
func (_u *AlertSessionUpdate) AddSessionScores(v ...*SessionScore) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionScoreIDs(ids...)
}

// Mutation returns the AlertSessionMutation object of the builder.
func (_u *AlertSessionUpdate) Mutation() *AlertSessionMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *AlertSessionUpdate) ClearStages() *AlertSessionUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *AlertSessionUpdate) RemoveStageIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *AlertSessionUpdate) RemoveStages(v ...*Stage) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *AlertSessionUpdate) ClearAgentExecutions() *AlertSessionUpdate {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *AlertSessionUpdate) RemoveAgentExecutionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *AlertSessionUpdate) RemoveAgentExecutions(v ...*AgentExecution) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdate) ClearTimelineEvents() *AlertSessionUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AlertSessionUpdate) RemoveTimelineEventIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *AlertSessionUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *AlertSessionUpdate) ClearMessages() *AlertSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *AlertSessionUpdate) RemoveMessageIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *AlertSessionUpdate) RemoveMessages(v ...*Message) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdate) ClearLlmInteractions() *AlertSessionUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *AlertSessionUpdate) RemoveLlmInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *AlertSessionUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdate) ClearMcpInteractions() *AlertSessionUpdate {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *AlertSessionUpdate) RemoveMcpInteractionIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *AlertSessionUpdate) RemoveMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AlertSessionUpdate) ClearEvents() *AlertSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AlertSessionUpdate) RemoveEventIDs(ids ...int) *AlertSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AlertSessionUpdate) RemoveEvents(v ...*Event) *AlertSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *AlertSessionUpdate) ClearChat() *AlertSessionUpdate {
	_u.mutation.ClearChat()
	return _u
}

// ClearSessionScores clears all "session_scores" edges to the SessionScore entity.
func (_u *AlertSessionUpdate) ClearSessionScores() *AlertSessionUpdate {
	_u.mutation.ClearSessionScores()
	return _u
}

// RemoveSessionScoreIDs removes the "session_scores" edge to SessionScore entities by IDs.
func (_u *AlertSessionUpdate) RemoveSessionScoreIDs(ids ...string) *AlertSessionUpdate {
	_u.mutation.RemoveSessionScoreIDs(ids...)
	return _u
}

// RemoveSessionScores removes "session_scores" edges to SessionScore entities.
func (_u *AlertSessionUpdate) RemoveSessionScores(v ...*SessionScore) *AlertSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionScoreIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alertsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertsession.Table, alertsession.Columns, sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertData(); ok {
		_spec.SetField(alertsession.FieldAlertData, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(alertsession.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(alertsession.FieldAlertType, field.TypeString, value)
	}
	if _u.mutation.AlertTypeCleared() {
		_spec.ClearField(alertsession.FieldAlertType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(alertsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(alertsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(alertsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(alertsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(alertsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(alertsession.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(alertsession.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(alertsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(alertsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(alertsession.FieldFinalAnalysis, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(alertsession.FieldFinalAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(alertsession.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(alertsession.FieldExecutiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutiveSummaryError(); ok {
		_spec.SetField(alertsession.FieldExecutiveSummaryError, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryErrorCleared() {
		_spec.ClearField(alertsession.FieldExecutiveSummaryError, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(alertsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(alertsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(alertsession.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(alertsession.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.RunbookURL(); ok {
		_spec.SetField(alertsession.FieldRunbookURL, field.TypeString, value)
	}
	if _u.mutation.RunbookURLCleared() {
		_spec.ClearField(alertsession.FieldRunbookURL, field.TypeString)
	}
	if value, ok := _u.mutation.McpSelection(); ok {
		_spec.SetField(alertsession.FieldMcpSelection, field.TypeJSON, value)
	}
	if _u.mutation.McpSelectionCleared() {
		_spec.ClearField(alertsession.FieldMcpSelection, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(alertsession.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageIndexCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStageID(); ok {
		_spec.SetField(alertsession.FieldCurrentStageID, field.TypeString, value)
	}
	if _u.mutation.CurrentStageIDCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(alertsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(alertsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(alertsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(alertsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SlackMessageFingerprint(); ok {
		_spec.SetField(alertsession.FieldSlackMessageFingerprint, field.TypeString, value)
	}
	if _u.mutation.SlackMessageFingerprintCleared() {
		_spec.ClearField(alertsession.FieldSlackMessageFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(alertsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(alertsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StagesTable,
			Columns: []string{alertsession.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StagesTable,
			Columns: []string{alertsession.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StagesTable,
			Columns: []string{alertsession.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.AgentExecutionsTable,
			Columns: []string{alertsession.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.AgentExecutionsTable,
			Columns: []string{alertsession.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.AgentExecutionsTable,
			Columns: []string{alertsession.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.MessagesTable,
			Columns: []string{alertsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.MessagesTable,
			Columns: []string{alertsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.MessagesTable,
			Columns: []string{alertsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpInteractionsIDs(); len(nodes) > 0 && !_u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   alertsession.ChatTable,
			Columns: []string{alertsession.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   alertsession.ChatTable,
			Columns: []string{alertsession.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.SessionScoresTable,
			Columns: []string{alertsession.SessionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscore.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionScoresIDs(); len(nodes) > 0 && !_u.mutation.SessionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.SessionScoresTable,
			Columns: []string{alertsession.SessionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.SessionScoresTable,
			Columns: []string{alertsession.SessionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertSessionUpdateOne is the builder for updating a single AlertSession entity.
type AlertSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertSessionMutation
}

// SetAlertData sets the "alert_data" field.
func (_u *AlertSessionUpdateOne) SetAlertData(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAlertData(v)
	return _u
}

// SetNillableAlertData sets the "alert_data" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAlertData(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAlertData(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AlertSessionUpdateOne) SetAgentType(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAgentType(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *AlertSessionUpdateOne) SetAlertType(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAlertType(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// ClearAlertType clears the value of the "alert_type" field.
func (_u *AlertSessionUpdateOne) ClearAlertType() *AlertSessionUpdateOne {
	_u.mutation.ClearAlertType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertSessionUpdateOne) SetStatus(v alertsession.Status) *AlertSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableStatus(v *alertsession.Status) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AlertSessionUpdateOne) SetCreatedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AlertSessionUpdateOne) SetStartedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AlertSessionUpdateOne) ClearStartedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AlertSessionUpdateOne) SetCompletedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AlertSessionUpdateOne) ClearCompletedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *AlertSessionUpdateOne) SetPausedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillablePausedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *AlertSessionUpdateOne) ClearPausedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AlertSessionUpdateOne) SetErrorMessage(v string) *AlertSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableErrorMessage(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AlertSessionUpdateOne) ClearErrorMessage() *AlertSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinalAnalysis sets the "final_analysis" field.
func (_u *AlertSessionUpdateOne) SetFinalAnalysis(v string) *AlertSessionUpdateOne {
	_u.mutation.SetFinalAnalysis(v)
	return _u
}

// SetNillableFinalAnalysis sets the "final_analysis" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableFinalAnalysis(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetFinalAnalysis(*v)
	}
	return _u
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (_u *AlertSessionUpdateOne) ClearFinalAnalysis() *AlertSessionUpdateOne {
	_u.mutation.ClearFinalAnalysis()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *AlertSessionUpdateOne) SetExecutiveSummary(v string) *AlertSessionUpdateOne {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableExecutiveSummary(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *AlertSessionUpdateOne) ClearExecutiveSummary() *AlertSessionUpdateOne {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// SetExecutiveSummaryError sets the "executive_summary_error" field.
func (_u *AlertSessionUpdateOne) SetExecutiveSummaryError(v string) *AlertSessionUpdateOne {
	_u.mutation.SetExecutiveSummaryError(v)
	return _u
}

// SetNillableExecutiveSummaryError sets the "executive_summary_error" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableExecutiveSummaryError(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetExecutiveSummaryError(*v)
	}
	return _u
}

// ClearExecutiveSummaryError clears the value of the "executive_summary_error" field.
func (_u *AlertSessionUpdateOne) ClearExecutiveSummaryError() *AlertSessionUpdateOne {
	_u.mutation.ClearExecutiveSummaryError()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *AlertSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *AlertSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *AlertSessionUpdateOne) ClearSessionMetadata() *AlertSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *AlertSessionUpdateOne) SetAuthor(v string) *AlertSessionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableAuthor(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *AlertSessionUpdateOne) ClearAuthor() *AlertSessionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetRunbookURL sets the "runbook_url" field.
func (_u *AlertSessionUpdateOne) SetRunbookURL(v string) *AlertSessionUpdateOne {
	_u.mutation.SetRunbookURL(v)
	return _u
}

// SetNillableRunbookURL sets the "runbook_url" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableRunbookURL(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetRunbookURL(*v)
	}
	return _u
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (_u *AlertSessionUpdateOne) ClearRunbookURL() *AlertSessionUpdateOne {
	_u.mutation.ClearRunbookURL()
	return _u
}

// SetMcpSelection sets the "mcp_selection" field.
func (_u *AlertSessionUpdateOne) SetMcpSelection(v map[string]interface{}) *AlertSessionUpdateOne {
	_u.mutation.SetMcpSelection(v)
	return _u
}

// ClearMcpSelection clears the value of the "mcp_selection" field.
func (_u *AlertSessionUpdateOne) ClearMcpSelection() *AlertSessionUpdateOne {
	_u.mutation.ClearMcpSelection()
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AlertSessionUpdateOne) SetChainID(v string) *AlertSessionUpdateOne {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableChainID(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (_u *AlertSessionUpdateOne) SetCurrentStageIndex(v int) *AlertSessionUpdateOne {
	_u.mutation.ResetCurrentStageIndex()
	_u.mutation.SetCurrentStageIndex(v)
	return _u
}

// SetNillableCurrentStageIndex sets the "current_stage_index" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCurrentStageIndex(v *int) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageIndex(*v)
	}
	return _u
}

// AddCurrentStageIndex adds value to the "current_stage_index" field.
func (_u *AlertSessionUpdateOne) AddCurrentStageIndex(v int) *AlertSessionUpdateOne {
	_u.mutation.AddCurrentStageIndex(v)
	return _u
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (_u *AlertSessionUpdateOne) ClearCurrentStageIndex() *AlertSessionUpdateOne {
	_u.mutation.ClearCurrentStageIndex()
	return _u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_u *AlertSessionUpdateOne) SetCurrentStageID(v string) *AlertSessionUpdateOne {
	_u.mutation.SetCurrentStageID(v)
	return _u
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableCurrentStageID(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStageID(*v)
	}
	return _u
}

// ClearCurrentStageID clears the value of the "current_stage_id" field.
func (_u *AlertSessionUpdateOne) ClearCurrentStageID() *AlertSessionUpdateOne {
	_u.mutation.ClearCurrentStageID()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AlertSessionUpdateOne) SetPodID(v string) *AlertSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillablePodID(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AlertSessionUpdateOne) ClearPodID() *AlertSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AlertSessionUpdateOne) SetLastInteractionAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AlertSessionUpdateOne) ClearLastInteractionAt() *AlertSessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetSlackMessageFingerprint sets the "slack_message_fingerprint" field.
func (_u *AlertSessionUpdateOne) SetSlackMessageFingerprint(v string) *AlertSessionUpdateOne {
	_u.mutation.SetSlackMessageFingerprint(v)
	return _u
}

// SetNillableSlackMessageFingerprint sets the "slack_message_fingerprint" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableSlackMessageFingerprint(v *string) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetSlackMessageFingerprint(*v)
	}
	return _u
}

// ClearSlackMessageFingerprint clears the value of the "slack_message_fingerprint" field.
func (_u *AlertSessionUpdateOne) ClearSlackMessageFingerprint() *AlertSessionUpdateOne {
	_u.mutation.ClearSlackMessageFingerprint()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AlertSessionUpdateOne) SetDeletedAt(v time.Time) *AlertSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *AlertSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AlertSessionUpdateOne) ClearDeletedAt() *AlertSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStageIDs adds the "stages" edge to the Stage entity by IDs.
func (_u *AlertSessionUpdateOne) AddStageIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the Stage entity.
func (_u *AlertSessionUpdateOne) AddStages(v ...*Stage) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *AlertSessionUpdateOne) AddAgentExecutionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *AlertSessionUpdateOne) AddAgentExecutions(v ...*AgentExecution) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AlertSessionUpdateOne) AddTimelineEventIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *AlertSessionUpdateOne) AddMessageIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *AlertSessionUpdateOne) AddMessages(v ...*Message) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *AlertSessionUpdateOne) AddLlmInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *AlertSessionUpdateOne) AddMcpInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdateOne) AddMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AlertSessionUpdateOne) AddEventIDs(ids ...int) *AlertSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AlertSessionUpdateOne) AddEvents(v ...*Event) *AlertSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetChatID sets the "chat" edge to the Chat entity by ID.
func (_u *AlertSessionUpdateOne) SetChatID(id string) *AlertSessionUpdateOne {
	_u.mutation.SetChatID(id)
	return _u
}

// SetNillableChatID sets the "chat" edge to the Chat entity by ID if the given value is not nil.
func (_u *AlertSessionUpdateOne) SetNillableChatID(id *string) *AlertSessionUpdateOne {
	if id != nil {
		_u = _u.SetChatID(*id)
	}
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *AlertSessionUpdateOne) SetChat(v *Chat) *AlertSessionUpdateOne {
	return _u.SetChatID(v.ID)
}

// AddSessionScoreIDs adds the "session_scores" edge to the SessionScore entity by IDs.
func (_u *AlertSessionUpdateOne) AddSessionScoreIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.AddSessionScoreIDs(ids...)
	return _u
}

// AddSessionScores adds the "session_scores" edges to the SessionScore entity.
func (_u *AlertSessionUpdateOne) AddSessionScores(v ...*SessionScore) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionScoreIDs(ids...)
}

// Mutation returns the AlertSessionMutation object of the builder.
func (_u *AlertSessionUpdateOne) Mutation() *AlertSessionMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the Stage entity.
func (_u *AlertSessionUpdateOne) ClearStages() *AlertSessionUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to Stage entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveStageIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to Stage entities.
func (_u *AlertSessionUpdateOne) RemoveStages(v ...*Stage) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *AlertSessionUpdateOne) ClearAgentExecutions() *AlertSessionUpdateOne {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveAgentExecutionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *AlertSessionUpdateOne) RemoveAgentExecutions(v ...*AgentExecution) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *AlertSessionUpdateOne) ClearTimelineEvents() *AlertSessionUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveTimelineEventIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *AlertSessionUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *AlertSessionUpdateOne) ClearMessages() *AlertSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveMessageIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *AlertSessionUpdateOne) RemoveMessages(v ...*Message) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *AlertSessionUpdateOne) ClearLlmInteractions() *AlertSessionUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveLlmInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *AlertSessionUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AlertSessionUpdateOne) ClearMcpInteractions() *AlertSessionUpdateOne {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveMcpInteractionIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *AlertSessionUpdateOne) RemoveMcpInteractions(v ...*MCPInteraction) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AlertSessionUpdateOne) ClearEvents() *AlertSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveEventIDs(ids ...int) *AlertSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AlertSessionUpdateOne) RemoveEvents(v ...*Event) *AlertSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *AlertSessionUpdateOne) ClearChat() *AlertSessionUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// ClearSessionScores clears all "session_scores" edges to the SessionScore entity.
func (_u *AlertSessionUpdateOne) ClearSessionScores() *AlertSessionUpdateOne {
	_u.mutation.ClearSessionScores()
	return _u
}

// RemoveSessionScoreIDs removes the "session_scores" edge to SessionScore entities by IDs.
func (_u *AlertSessionUpdateOne) RemoveSessionScoreIDs(ids ...string) *AlertSessionUpdateOne {
	_u.mutation.RemoveSessionScoreIDs(ids...)
	return _u
}

// RemoveSessionScores removes "session_scores" edges to SessionScore entities.
func (_u *AlertSessionUpdateOne) RemoveSessionScores(v ...*SessionScore) *AlertSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionScoreIDs(ids...)
}

// Where appends a list predicates to the AlertSessionUpdate builder.
func (_u *AlertSessionUpdateOne) Where(ps ...predicate.AlertSession) *AlertSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertSessionUpdateOne) Select(field string, fields ...string) *AlertSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertSession entity.
func (_u *AlertSessionUpdateOne) Save(ctx context.Context) (*AlertSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertSessionUpdateOne) SaveX(ctx context.Context) *AlertSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alertsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertSessionUpdateOne) sqlSave(ctx context.Context) (_node *AlertSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertsession.Table, alertsession.Columns, sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertsession.FieldID)
		for _, f := range fields {
			if !alertsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertData(); ok {
		_spec.SetField(alertsession.FieldAlertData, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(alertsession.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(alertsession.FieldAlertType, field.TypeString, value)
	}
	if _u.mutation.AlertTypeCleared() {
		_spec.ClearField(alertsession.FieldAlertType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alertsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(alertsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(alertsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(alertsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(alertsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(alertsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(alertsession.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(alertsession.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(alertsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(alertsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinalAnalysis(); ok {
		_spec.SetField(alertsession.FieldFinalAnalysis, field.TypeString, value)
	}
	if _u.mutation.FinalAnalysisCleared() {
		_spec.ClearField(alertsession.FieldFinalAnalysis, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(alertsession.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(alertsession.FieldExecutiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutiveSummaryError(); ok {
		_spec.SetField(alertsession.FieldExecutiveSummaryError, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryErrorCleared() {
		_spec.ClearField(alertsession.FieldExecutiveSummaryError, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(alertsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(alertsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(alertsession.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(alertsession.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.RunbookURL(); ok {
		_spec.SetField(alertsession.FieldRunbookURL, field.TypeString, value)
	}
	if _u.mutation.RunbookURLCleared() {
		_spec.ClearField(alertsession.FieldRunbookURL, field.TypeString)
	}
	if value, ok := _u.mutation.McpSelection(); ok {
		_spec.SetField(alertsession.FieldMcpSelection, field.TypeJSON, value)
	}
	if _u.mutation.McpSelectionCleared() {
		_spec.ClearField(alertsession.FieldMcpSelection, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(alertsession.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStageIndex(); ok {
		_spec.SetField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStageIndex(); ok {
		_spec.AddField(alertsession.FieldCurrentStageIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStageIndexCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentStageID(); ok {
		_spec.SetField(alertsession.FieldCurrentStageID, field.TypeString, value)
	}
	if _u.mutation.CurrentStageIDCleared() {
		_spec.ClearField(alertsession.FieldCurrentStageID, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(alertsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(alertsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(alertsession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(alertsession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SlackMessageFingerprint(); ok {
		_spec.SetField(alertsession.FieldSlackMessageFingerprint, field.TypeString, value)
	}
	if _u.mutation.SlackMessageFingerprintCleared() {
		_spec.ClearField(alertsession.FieldSlackMessageFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(alertsession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(alertsession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StagesTable,
			Columns: []string{alertsession.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StagesTable,
			Columns: []string{alertsession.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.StagesTable,
			Columns: []string{alertsession.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.AgentExecutionsTable,
			Columns: []string{alertsession.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.AgentExecutionsTable,
			Columns: []string{alertsession.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.AgentExecutionsTable,
			Columns: []string{alertsession.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.TimelineEventsTable,
			Columns: []string{alertsession.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.MessagesTable,
			Columns: []string{alertsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.MessagesTable,
			Columns: []string{alertsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.MessagesTable,
			Columns: []string{alertsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLlmInteractionsIDs(); len(nodes) > 0 && !_u.mutation.LlmInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.LlmInteractionsTable,
			Columns: []string{alertsession.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpInteractionsIDs(); len(nodes) > 0 && !_u.mutation.McpInteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.McpInteractionsTable,
			Columns: []string{alertsession.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.EventsTable,
			Columns: []string{alertsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   alertsession.ChatTable,
			Columns: []string{alertsession.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   alertsession.ChatTable,
			Columns: []string{alertsession.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.SessionScoresTable,
			Columns: []string{alertsession.SessionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscore.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionScoresIDs(); len(nodes) > 0 && !_u.mutation.SessionScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.SessionScoresTable,
			Columns: []string{alertsession.SessionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alertsession.SessionScoresTable,
			Columns: []string{alertsession.SessionScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AlertSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
