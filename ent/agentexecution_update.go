// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// AgentExecutionUpdate is the builder for updating AgentExecution entities.
type AgentExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdate) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentExecutionUpdate) SetAgentName(v string) *AgentExecutionUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableAgentName(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentIndex sets the "agent_index" field.
func (_u *AgentExecutionUpdate) SetAgentIndex(v int) *AgentExecutionUpdate {
	_u.mutation.ResetAgentIndex()
	_u.mutation.SetAgentIndex(v)
	return _u
}

// SetNillableAgentIndex sets the "agent_index" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableAgentIndex(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetAgentIndex(*v)
	}
	return _u
}

// AddAgentIndex adds value to the "agent_index" field.
func (_u *AgentExecutionUpdate) AddAgentIndex(v int) *AgentExecutionUpdate {
	_u.mutation.AddAgentIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdate) SetStatus(v agentexecution.Status) *AgentExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentExecutionUpdate) SetStartedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStartedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentExecutionUpdate) ClearStartedAt() *AgentExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *AgentExecutionUpdate) SetPausedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillablePausedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *AgentExecutionUpdate) ClearPausedAt() *AgentExecutionUpdate {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdate) SetCompletedAt(v time.Time) *AgentExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdate) ClearCompletedAt() *AgentExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentExecutionUpdate) SetDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableDurationMs(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentExecutionUpdate) AddDurationMs(v int) *AgentExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentExecutionUpdate) ClearDurationMs() *AgentExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdate) SetErrorMessage(v string) *AgentExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableErrorMessage(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdate) ClearErrorMessage() *AgentExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (_u *AgentExecutionUpdate) SetIterationStrategy(v string) *AgentExecutionUpdate {
	_u.mutation.SetIterationStrategy(v)
	return _u
}

// SetNillableIterationStrategy sets the "iteration_strategy" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableIterationStrategy(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetIterationStrategy(*v)
	}
	return _u
}

// SetLlmBackend sets the "llm_backend" field.
func (_u *AgentExecutionUpdate) SetLlmBackend(v string) *AgentExecutionUpdate {
	_u.mutation.SetLlmBackend(v)
	return _u
}

// SetNillableLlmBackend sets the "llm_backend" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableLlmBackend(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetLlmBackend(*v)
	}
	return _u
}

// ClearLlmBackend clears the value of the "llm_backend" field.
func (_u *AgentExecutionUpdate) ClearLlmBackend() *AgentExecutionUpdate {
	_u.mutation.ClearLlmBackend()
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *AgentExecutionUpdate) SetLlmProvider(v string) *AgentExecutionUpdate {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableLlmProvider(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *AgentExecutionUpdate) ClearLlmProvider() *AgentExecutionUpdate {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetTask sets the "task" field.
func (_u *AgentExecutionUpdate) SetTask(v string) *AgentExecutionUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableTask(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// ClearTask clears the value of the "task" field.
func (_u *AgentExecutionUpdate) ClearTask() *AgentExecutionUpdate {
	_u.mutation.ClearTask()
	return _u
}

// SetConversationSnapshot sets the "conversation_snapshot" field.
func (_u *AgentExecutionUpdate) SetConversationSnapshot(v []map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.SetConversationSnapshot(v)
	return _u
}

// AppendConversationSnapshot appends value to the "conversation_snapshot" field.
func (_u *AgentExecutionUpdate) AppendConversationSnapshot(v []map[string]interface{}) *AgentExecutionUpdate {
	_u.mutation.AppendConversationSnapshot(v)
	return _u
}

// ClearConversationSnapshot clears the value of the "conversation_snapshot" field.
func (_u *AgentExecutionUpdate) ClearConversationSnapshot() *AgentExecutionUpdate {
	_u.mutation.ClearConversationSnapshot()
	return _u
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AgentExecutionUpdate) AddTimelineEventIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdate) AddTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *AgentExecutionUpdate) AddMessageIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *AgentExecutionUpdate) AddMessages(v ...*Message) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *AgentExecutionUpdate) AddLlmInteractionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *AgentExecutionUpdate) AddLlmInteractions(v ...*LLMInteraction) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *AgentExecutionUpdate) AddMcpInteractionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AgentExecutionUpdate) AddMcpInteractions(v ...*MCPInteraction) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// AddSubAgentTimelineEventIDs adds the "sub_agent_timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AgentExecutionUpdate) AddSubAgentTimelineEventIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.AddSubAgentTimelineEventIDs(ids...)
	return _u
}

// AddSubAgentTimelineEvents adds the "sub_agent_timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdate) AddSubAgentTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubAgentTimelineEventIDs(ids...)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdate) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdate) ClearTimelineEvents() *AgentExecutionUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AgentExecutionUpdate) RemoveTimelineEventIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *AgentExecutionUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *AgentExecutionUpdate) ClearMessages() *AgentExecutionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *AgentExecutionUpdate) RemoveMessageIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *AgentExecutionUpdate) RemoveMessages(v ...*Message) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *AgentExecutionUpdate) ClearLlmInteractions() *AgentExecutionUpdate {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *AgentExecutionUpdate) RemoveLlmInteractionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *AgentExecutionUpdate) RemoveLlmInteractions(v ...*LLMInteraction) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AgentExecutionUpdate) ClearMcpInteractions() *AgentExecutionUpdate {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *AgentExecutionUpdate) RemoveMcpInteractionIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *AgentExecutionUpdate) RemoveMcpInteractions(v ...*MCPInteraction) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// ClearSubAgentTimelineEvents clears all "sub_agent_timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdate) ClearSubAgentTimelineEvents() *AgentExecutionUpdate {
	_u.mutation.ClearSubAgentTimelineEvents()
	return _u
}

// RemoveSubAgentTimelineEventIDs removes the "sub_agent_timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AgentExecutionUpdate) RemoveSubAgentTimelineEventIDs(ids ...string) *AgentExecutionUpdate {
	_u.mutation.RemoveSubAgentTimelineEventIDs(ids...)
	return _u
}

// RemoveSubAgentTimelineEvents removes "sub_agent_timeline_events" edges to TimelineEvent entities.
func (_u *AgentExecutionUpdate) RemoveSubAgentTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubAgentTimelineEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.stage"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.session"`)
	}
	return nil
}

func (_u *AgentExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentExecutionIDCleared() {
		_spec.ClearField(agentexecution.FieldParentExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentexecution.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentIndex(); ok {
		_spec.SetField(agentexecution.FieldAgentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgentIndex(); ok {
		_spec.AddField(agentexecution.FieldAgentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(agentexecution.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(agentexecution.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IterationStrategy(); ok {
		_spec.SetField(agentexecution.FieldIterationStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmBackend(); ok {
		_spec.SetField(agentexecution.FieldLlmBackend, field.TypeString, value)
	}
	if _u.mutation.LlmBackendCleared() {
		_spec.ClearField(agentexecution.FieldLlmBackend, field.TypeString)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(agentexecution.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(agentexecution.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(agentexecution.FieldTask, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		_spec.ClearField(agentexecution.FieldTask, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationSnapshot(); ok {
		_spec.SetField(agentexecution.FieldConversationSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentexecution.FieldConversationSnapshot, value)
		})
	}
	if _u.mutation.ConversationSnapshotCleared() {
		_spec.ClearField(agentexecution.FieldConversationSnapshot, field.TypeJSON)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.TimelineEventsTable,
			Columns: []string{agentexecution.TimelineEventsColumn},
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
			Table:   agentexecution.TimelineEventsTable,
			Columns: []string{agentexecution.TimelineEventsColumn},
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
			Table:   agentexecution.TimelineEventsTable,
			Columns: []string{agentexecution.TimelineEventsColumn},
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
			Table:   agentexecution.MessagesTable,
			Columns: []string{agentexecution.MessagesColumn},
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
			Table:   agentexecution.MessagesTable,
			Columns: []string{agentexecution.MessagesColumn},
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
			Table:   agentexecution.MessagesTable,
			Columns: []string{agentexecution.MessagesColumn},
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
			Table:   agentexecution.LlmInteractionsTable,
			Columns: []string{agentexecution.LlmInteractionsColumn},
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
			Table:   agentexecution.LlmInteractionsTable,
			Columns: []string{agentexecution.LlmInteractionsColumn},
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
			Table:   agentexecution.LlmInteractionsTable,
			Columns: []string{agentexecution.LlmInteractionsColumn},
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
			Table:   agentexecution.McpInteractionsTable,
			Columns: []string{agentexecution.McpInteractionsColumn},
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
			Table:   agentexecution.McpInteractionsTable,
			Columns: []string{agentexecution.McpInteractionsColumn},
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
			Table:   agentexecution.McpInteractionsTable,
			Columns: []string{agentexecution.McpInteractionsColumn},
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
	if _u.mutation.SubAgentTimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SubAgentTimelineEventsTable,
			Columns: []string{agentexecution.SubAgentTimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubAgentTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.SubAgentTimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SubAgentTimelineEventsTable,
			Columns: []string{agentexecution.SubAgentTimelineEventsColumn},
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
	if nodes := _u.mutation.SubAgentTimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SubAgentTimelineEventsTable,
			Columns: []string{agentexecution.SubAgentTimelineEventsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentExecutionUpdateOne is the builder for updating a single AgentExecution entity.
type AgentExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentExecutionUpdateOne) SetAgentName(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableAgentName(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentIndex sets the "agent_index" field.
func (_u *AgentExecutionUpdateOne) SetAgentIndex(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetAgentIndex()
	_u.mutation.SetAgentIndex(v)
	return _u
}

// SetNillableAgentIndex sets the "agent_index" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableAgentIndex(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetAgentIndex(*v)
	}
	return _u
}

// AddAgentIndex adds value to the "agent_index" field.
func (_u *AgentExecutionUpdateOne) AddAgentIndex(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddAgentIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdateOne) SetStatus(v agentexecution.Status) *AgentExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentExecutionUpdateOne) SetStartedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentExecutionUpdateOne) ClearStartedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *AgentExecutionUpdateOne) SetPausedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillablePausedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *AgentExecutionUpdateOne) ClearPausedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearPausedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdateOne) SetCompletedAt(v time.Time) *AgentExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdateOne) ClearCompletedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) SetDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableDurationMs(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) AddDurationMs(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentExecutionUpdateOne) ClearDurationMs() *AgentExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentExecutionUpdateOne) SetErrorMessage(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableErrorMessage(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentExecutionUpdateOne) ClearErrorMessage() *AgentExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetIterationStrategy sets the "iteration_strategy" field.
func (_u *AgentExecutionUpdateOne) SetIterationStrategy(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetIterationStrategy(v)
	return _u
}

// SetNillableIterationStrategy sets the "iteration_strategy" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableIterationStrategy(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetIterationStrategy(*v)
	}
	return _u
}

// SetLlmBackend sets the "llm_backend" field.
func (_u *AgentExecutionUpdateOne) SetLlmBackend(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetLlmBackend(v)
	return _u
}

// SetNillableLlmBackend sets the "llm_backend" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableLlmBackend(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetLlmBackend(*v)
	}
	return _u
}

// ClearLlmBackend clears the value of the "llm_backend" field.
func (_u *AgentExecutionUpdateOne) ClearLlmBackend() *AgentExecutionUpdateOne {
	_u.mutation.ClearLlmBackend()
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *AgentExecutionUpdateOne) SetLlmProvider(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableLlmProvider(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *AgentExecutionUpdateOne) ClearLlmProvider() *AgentExecutionUpdateOne {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetTask sets the "task" field.
func (_u *AgentExecutionUpdateOne) SetTask(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableTask(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// ClearTask clears the value of the "task" field.
func (_u *AgentExecutionUpdateOne) ClearTask() *AgentExecutionUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// SetConversationSnapshot sets the "conversation_snapshot" field.
func (_u *AgentExecutionUpdateOne) SetConversationSnapshot(v []map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.SetConversationSnapshot(v)
	return _u
}

// AppendConversationSnapshot appends value to the "conversation_snapshot" field.
func (_u *AgentExecutionUpdateOne) AppendConversationSnapshot(v []map[string]interface{}) *AgentExecutionUpdateOne {
	_u.mutation.AppendConversationSnapshot(v)
	return _u
}

// ClearConversationSnapshot clears the value of the "conversation_snapshot" field.
func (_u *AgentExecutionUpdateOne) ClearConversationSnapshot() *AgentExecutionUpdateOne {
	_u.mutation.ClearConversationSnapshot()
	return _u
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AgentExecutionUpdateOne) AddTimelineEventIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *AgentExecutionUpdateOne) AddMessageIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *AgentExecutionUpdateOne) AddMessages(v ...*Message) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_u *AgentExecutionUpdateOne) AddLlmInteractionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddLlmInteractionIDs(ids...)
	return _u
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_u *AgentExecutionUpdateOne) AddLlmInteractions(v ...*LLMInteraction) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_u *AgentExecutionUpdateOne) AddMcpInteractionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddMcpInteractionIDs(ids...)
	return _u
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AgentExecutionUpdateOne) AddMcpInteractions(v ...*MCPInteraction) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpInteractionIDs(ids...)
}

// AddSubAgentTimelineEventIDs adds the "sub_agent_timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *AgentExecutionUpdateOne) AddSubAgentTimelineEventIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.AddSubAgentTimelineEventIDs(ids...)
	return _u
}

// AddSubAgentTimelineEvents adds the "sub_agent_timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdateOne) AddSubAgentTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubAgentTimelineEventIDs(ids...)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdateOne) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdateOne) ClearTimelineEvents() *AgentExecutionUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveTimelineEventIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *AgentExecutionUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *AgentExecutionUpdateOne) ClearMessages() *AgentExecutionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveMessageIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *AgentExecutionUpdateOne) RemoveMessages(v ...*Message) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearLlmInteractions clears all "llm_interactions" edges to the LLMInteraction entity.
func (_u *AgentExecutionUpdateOne) ClearLlmInteractions() *AgentExecutionUpdateOne {
	_u.mutation.ClearLlmInteractions()
	return _u
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to LLMInteraction entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveLlmInteractionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveLlmInteractionIDs(ids...)
	return _u
}

// RemoveLlmInteractions removes "llm_interactions" edges to LLMInteraction entities.
func (_u *AgentExecutionUpdateOne) RemoveLlmInteractions(v ...*LLMInteraction) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLlmInteractionIDs(ids...)
}

// ClearMcpInteractions clears all "mcp_interactions" edges to the MCPInteraction entity.
func (_u *AgentExecutionUpdateOne) ClearMcpInteractions() *AgentExecutionUpdateOne {
	_u.mutation.ClearMcpInteractions()
	return _u
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to MCPInteraction entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveMcpInteractionIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveMcpInteractionIDs(ids...)
	return _u
}

// RemoveMcpInteractions removes "mcp_interactions" edges to MCPInteraction entities.
func (_u *AgentExecutionUpdateOne) RemoveMcpInteractions(v ...*MCPInteraction) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpInteractionIDs(ids...)
}

// ClearSubAgentTimelineEvents clears all "sub_agent_timeline_events" edges to the TimelineEvent entity.
func (_u *AgentExecutionUpdateOne) ClearSubAgentTimelineEvents() *AgentExecutionUpdateOne {
	_u.mutation.ClearSubAgentTimelineEvents()
	return _u
}

// RemoveSubAgentTimelineEventIDs removes the "sub_agent_timeline_events" edge to TimelineEvent entities by IDs.
func (_u *AgentExecutionUpdateOne) RemoveSubAgentTimelineEventIDs(ids ...string) *AgentExecutionUpdateOne {
	_u.mutation.RemoveSubAgentTimelineEventIDs(ids...)
	return _u
}

// RemoveSubAgentTimelineEvents removes "sub_agent_timeline_events" edges to TimelineEvent entities.
func (_u *AgentExecutionUpdateOne) RemoveSubAgentTimelineEvents(v ...*TimelineEvent) *AgentExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubAgentTimelineEventIDs(ids...)
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdateOne) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentExecutionUpdateOne) Select(field string, fields ...string) *AgentExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentExecution entity.
func (_u *AgentExecutionUpdateOne) Save(ctx context.Context) (*AgentExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) SaveX(ctx context.Context) *AgentExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.stage"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.session"`)
	}
	return nil
}

func (_u *AgentExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AgentExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for _, f := range fields {
			if !agentexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentexecution.FieldID {
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
	if _u.mutation.ParentExecutionIDCleared() {
		_spec.ClearField(agentexecution.FieldParentExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentexecution.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentIndex(); ok {
		_spec.SetField(agentexecution.FieldAgentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgentIndex(); ok {
		_spec.AddField(agentexecution.FieldAgentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(agentexecution.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(agentexecution.FieldPausedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IterationStrategy(); ok {
		_spec.SetField(agentexecution.FieldIterationStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmBackend(); ok {
		_spec.SetField(agentexecution.FieldLlmBackend, field.TypeString, value)
	}
	if _u.mutation.LlmBackendCleared() {
		_spec.ClearField(agentexecution.FieldLlmBackend, field.TypeString)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(agentexecution.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(agentexecution.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(agentexecution.FieldTask, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		_spec.ClearField(agentexecution.FieldTask, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationSnapshot(); ok {
		_spec.SetField(agentexecution.FieldConversationSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentexecution.FieldConversationSnapshot, value)
		})
	}
	if _u.mutation.ConversationSnapshotCleared() {
		_spec.ClearField(agentexecution.FieldConversationSnapshot, field.TypeJSON)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.TimelineEventsTable,
			Columns: []string{agentexecution.TimelineEventsColumn},
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
			Table:   agentexecution.TimelineEventsTable,
			Columns: []string{agentexecution.TimelineEventsColumn},
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
			Table:   agentexecution.TimelineEventsTable,
			Columns: []string{agentexecution.TimelineEventsColumn},
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
			Table:   agentexecution.MessagesTable,
			Columns: []string{agentexecution.MessagesColumn},
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
			Table:   agentexecution.MessagesTable,
			Columns: []string{agentexecution.MessagesColumn},
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
			Table:   agentexecution.MessagesTable,
			Columns: []string{agentexecution.MessagesColumn},
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
			Table:   agentexecution.LlmInteractionsTable,
			Columns: []string{agentexecution.LlmInteractionsColumn},
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
			Table:   agentexecution.LlmInteractionsTable,
			Columns: []string{agentexecution.LlmInteractionsColumn},
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
			Table:   agentexecution.LlmInteractionsTable,
			Columns: []string{agentexecution.LlmInteractionsColumn},
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
			Table:   agentexecution.McpInteractionsTable,
			Columns: []string{agentexecution.McpInteractionsColumn},
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
			Table:   agentexecution.McpInteractionsTable,
			Columns: []string{agentexecution.McpInteractionsColumn},
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
			Table:   agentexecution.McpInteractionsTable,
			Columns: []string{agentexecution.McpInteractionsColumn},
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
	if _u.mutation.SubAgentTimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SubAgentTimelineEventsTable,
			Columns: []string{agentexecution.SubAgentTimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubAgentTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.SubAgentTimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SubAgentTimelineEventsTable,
			Columns: []string{agentexecution.SubAgentTimelineEventsColumn},
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
	if nodes := _u.mutation.SubAgentTimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentexecution.SubAgentTimelineEventsTable,
			Columns: []string{agentexecution.SubAgentTimelineEventsColumn},
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
	_node = &AgentExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
