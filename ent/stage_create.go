// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/chat"
	"github.com/tarsy-project/tarsy/ent/chatusermessage"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// StageCreate is the builder for creating a Stage entity.
type StageCreate struct {
	config
	mutation *StageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *StageCreate) SetSessionID(v string) *StageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageCreate) SetStageName(v string) *StageCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *StageCreate) SetStageIndex(v int) *StageCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetExpectedAgentCount sets the "expected_agent_count" field.
func (_c *StageCreate) SetExpectedAgentCount(v int) *StageCreate {
	_c.mutation.SetExpectedAgentCount(v)
	return _c
}

// SetParallelType sets the "parallel_type" field.
func (_c *StageCreate) SetParallelType(v stage.ParallelType) *StageCreate {
	_c.mutation.SetParallelType(v)
	return _c
}

// SetNillableParallelType sets the "parallel_type" field if the given value is not nil.
func (_c *StageCreate) SetNillableParallelType(v *stage.ParallelType) *StageCreate {
	if v != nil {
		_c.SetParallelType(*v)
	}
	return _c
}

// SetSuccessPolicy sets the "success_policy" field.
func (_c *StageCreate) SetSuccessPolicy(v stage.SuccessPolicy) *StageCreate {
	_c.mutation.SetSuccessPolicy(v)
	return _c
}

// SetNillableSuccessPolicy sets the "success_policy" field if the given value is not nil.
func (_c *StageCreate) SetNillableSuccessPolicy(v *stage.SuccessPolicy) *StageCreate {
	if v != nil {
		_c.SetSuccessPolicy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageCreate) SetStatus(v stage.Status) *StageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageCreate) SetNillableStatus(v *stage.Status) *StageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageCreate) SetStartedAt(v time.Time) *StageCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageCreate) SetNillableStartedAt(v *time.Time) *StageCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetPausedAt sets the "paused_at" field.
func (_c *StageCreate) SetPausedAt(v time.Time) *StageCreate {
	_c.mutation.SetPausedAt(v)
	return _c
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_c *StageCreate) SetNillablePausedAt(v *time.Time) *StageCreate {
	if v != nil {
		_c.SetPausedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageCreate) SetCompletedAt(v time.Time) *StageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageCreate) SetNillableCompletedAt(v *time.Time) *StageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageCreate) SetDurationMs(v int) *StageCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StageCreate) SetNillableDurationMs(v *int) *StageCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageCreate) SetErrorMessage(v string) *StageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageCreate) SetNillableErrorMessage(v *string) *StageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStageOutput sets the "stage_output" field.
func (_c *StageCreate) SetStageOutput(v map[string]interface{}) *StageCreate {
	_c.mutation.SetStageOutput(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *StageCreate) SetChatID(v string) *StageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *StageCreate) SetNillableChatID(v *string) *StageCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetChatUserMessageID sets the "chat_user_message_id" field.
func (_c *StageCreate) SetChatUserMessageID(v string) *StageCreate {
	_c.mutation.SetChatUserMessageID(v)
	return _c
}

// SetNillableChatUserMessageID sets the "chat_user_message_id" field if the given value is not nil.
func (_c *StageCreate) SetNillableChatUserMessageID(v *string) *StageCreate {
	if v != nil {
		_c.SetChatUserMessageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageCreate) SetID(v string) *StageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AlertSession entity.
func (_c *StageCreate) SetSession(v *AlertSession) *StageCreate {
	return _c.SetSessionID(v.ID)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_c *StageCreate) AddAgentExecutionIDs(ids ...string) *StageCreate {
	_c.mutation.AddAgentExecutionIDs(ids...)
	return _c
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_c *StageCreate) AddAgentExecutions(v ...*AgentExecution) *StageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentExecutionIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *StageCreate) AddTimelineEventIDs(ids ...string) *StageCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *StageCreate) AddTimelineEvents(v ...*TimelineEvent) *StageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *StageCreate) AddMessageIDs(ids ...string) *StageCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *StageCreate) AddMessages(v ...*Message) *StageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (_c *StageCreate) AddLlmInteractionIDs(ids ...string) *StageCreate {
	_c.mutation.AddLlmInteractionIDs(ids...)
	return _c
}

// AddLlmInteractions adds the "llm_interactions" edges to the LLMInteraction entity.
func (_c *StageCreate) AddLlmInteractions(v ...*LLMInteraction) *StageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLlmInteractionIDs(ids...)
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (_c *StageCreate) AddMcpInteractionIDs(ids ...string) *StageCreate {
	_c.mutation.AddMcpInteractionIDs(ids...)
	return _c
}

// AddMcpInteractions adds the "mcp_interactions" edges to the MCPInteraction entity.
func (_c *StageCreate) AddMcpInteractions(v ...*MCPInteraction) *StageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMcpInteractionIDs(ids...)
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *StageCreate) SetChat(v *Chat) *StageCreate {
	return _c.SetChatID(v.ID)
}

// SetChatUserMessage sets the "chat_user_message" edge to the ChatUserMessage entity.
func (_c *StageCreate) SetChatUserMessage(v *ChatUserMessage) *StageCreate {
	return _c.SetChatUserMessageID(v.ID)
}

// Mutation returns the StageMutation object of the builder.
func (_c *StageCreate) Mutation() *StageMutation {
	return _c.mutation
}

// Save creates the Stage in the database.
func (_c *StageCreate) Save(ctx context.Context) (*Stage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageCreate) SaveX(ctx context.Context) *Stage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Stage.session_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "Stage.stage_name"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "Stage.stage_index"`)}
	}
	if _, ok := _c.mutation.ExpectedAgentCount(); !ok {
		return &ValidationError{Name: "expected_agent_count", err: errors.New(`ent: missing required field "Stage.expected_agent_count"`)}
	}
	if v, ok := _c.mutation.ParallelType(); ok {
		if err := stage.ParallelTypeValidator(v); err != nil {
			return &ValidationError{Name: "parallel_type", err: fmt.Errorf(`ent: validator failed for field "Stage.parallel_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SuccessPolicy(); ok {
		if err := stage.SuccessPolicyValidator(v); err != nil {
			return &ValidationError{Name: "success_policy", err: fmt.Errorf(`ent: validator failed for field "Stage.success_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Stage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Stage.status": %w`, err)}
		}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Stage.session"`)}
	}
	return nil
}

func (_c *StageCreate) sqlSave(ctx context.Context) (*Stage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Stage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageCreate) createSpec() (*Stage, *sqlgraph.CreateSpec) {
	var (
		_node = &Stage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stage.Table, sqlgraph.NewFieldSpec(stage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stage.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(stage.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.ExpectedAgentCount(); ok {
		_spec.SetField(stage.FieldExpectedAgentCount, field.TypeInt, value)
		_node.ExpectedAgentCount = value
	}
	if value, ok := _c.mutation.ParallelType(); ok {
		_spec.SetField(stage.FieldParallelType, field.TypeEnum, value)
		_node.ParallelType = &value
	}
	if value, ok := _c.mutation.SuccessPolicy(); ok {
		_spec.SetField(stage.FieldSuccessPolicy, field.TypeEnum, value)
		_node.SuccessPolicy = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stage.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.PausedAt(); ok {
		_spec.SetField(stage.FieldPausedAt, field.TypeTime, value)
		_node.PausedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stage.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StageOutput(); ok {
		_spec.SetField(stage.FieldStageOutput, field.TypeJSON, value)
		_node.StageOutput = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.SessionTable,
			Columns: []string{stage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.AgentExecutionsTable,
			Columns: []string{stage.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.TimelineEventsTable,
			Columns: []string{stage.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.MessagesTable,
			Columns: []string{stage.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LlmInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.LlmInteractionsTable,
			Columns: []string{stage.LlmInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpInteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stage.McpInteractionsTable,
			Columns: []string{stage.McpInteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpinteraction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stage.ChatTable,
			Columns: []string{stage.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatUserMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   stage.ChatUserMessageTable,
			Columns: []string{stage.ChatUserMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatusermessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatUserMessageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageCreateBulk is the builder for creating many Stage entities in bulk.
type StageCreateBulk struct {
	config
	err      error
	builders []*StageCreate
}

// Save creates the Stage entities in the database.
func (_c *StageCreateBulk) Save(ctx context.Context) ([]*Stage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StageCreateBulk) SaveX(ctx context.Context) []*Stage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
