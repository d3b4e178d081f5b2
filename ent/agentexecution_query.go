// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// AgentExecutionQuery is the builder for querying AgentExecution entities.
type AgentExecutionQuery struct {
	config
	ctx                        *QueryContext
	order                      []agentexecution.OrderOption
	inters                     []Interceptor
	predicates                 []predicate.AgentExecution
	withStage                  *StageQuery
	withSession                *AlertSessionQuery
	withTimelineEvents         *TimelineEventQuery
	withMessages               *MessageQuery
	withLlmInteractions        *LLMInteractionQuery
	withMcpInteractions        *MCPInteractionQuery
	withSubAgentTimelineEvents *TimelineEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgentExecutionQuery builder.
func (_q *AgentExecutionQuery) Where(ps ...predicate.AgentExecution) *AgentExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AgentExecutionQuery) Limit(limit int) *AgentExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AgentExecutionQuery) Offset(offset int) *AgentExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AgentExecutionQuery) Unique(unique bool) *AgentExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AgentExecutionQuery) Order(o ...agentexecution.OrderOption) *AgentExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStage chains the current query on the "stage" edge.
func (_q *AgentExecutionQuery) QueryStage() *StageQuery {
	query := (&StageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.StageTable, agentexecution.StageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySession chains the current query on the "session" edge.
func (_q *AgentExecutionQuery) QuerySession() *AlertSessionQuery {
	query := (&AlertSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.SessionTable, agentexecution.SessionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTimelineEvents chains the current query on the "timeline_events" edge.
func (_q *AgentExecutionQuery) QueryTimelineEvents() *TimelineEventQuery {
	query := (&TimelineEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.TimelineEventsTable, agentexecution.TimelineEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *AgentExecutionQuery) QueryMessages() *MessageQuery {
	query := (&MessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.MessagesTable, agentexecution.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLlmInteractions chains the current query on the "llm_interactions" edge.
func (_q *AgentExecutionQuery) QueryLlmInteractions() *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.LlmInteractionsTable, agentexecution.LlmInteractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMcpInteractions chains the current query on the "mcp_interactions" edge.
func (_q *AgentExecutionQuery) QueryMcpInteractions() *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.McpInteractionsTable, agentexecution.McpInteractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubAgentTimelineEvents chains the current query on the "sub_agent_timeline_events" edge.
func (_q *AgentExecutionQuery) QuerySubAgentTimelineEvents() *TimelineEventQuery {
	query := (&TimelineEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, selector),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.SubAgentTimelineEventsTable, agentexecution.SubAgentTimelineEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AgentExecution entity from the query.
// Returns a *NotFoundError when no AgentExecution was found.
func (_q *AgentExecutionQuery) First(ctx context.Context) (*AgentExecution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agentexecution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AgentExecutionQuery) FirstX(ctx context.Context) *AgentExecution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AgentExecution ID from the query.
// Returns a *NotFoundError when no AgentExecution ID was found.
func (_q *AgentExecutionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agentexecution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AgentExecutionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AgentExecution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AgentExecution entity is found.
// Returns a *NotFoundError when no AgentExecution entities are found.
func (_q *AgentExecutionQuery) Only(ctx context.Context) (*AgentExecution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agentexecution.Label}
	default:
		return nil, &NotSingularError{agentexecution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AgentExecutionQuery) OnlyX(ctx context.Context) *AgentExecution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AgentExecution ID in the query.
// Returns a *NotSingularError when more than one AgentExecution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AgentExecutionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agentexecution.Label}
	default:
		err = &NotSingularError{agentexecution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AgentExecutionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AgentExecutions.
func (_q *AgentExecutionQuery) All(ctx context.Context) ([]*AgentExecution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AgentExecution, *AgentExecutionQuery]()
	return withInterceptors[[]*AgentExecution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AgentExecutionQuery) AllX(ctx context.Context) []*AgentExecution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AgentExecution IDs.
func (_q *AgentExecutionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(agentexecution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AgentExecutionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AgentExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AgentExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AgentExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AgentExecutionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AgentExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgentExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AgentExecutionQuery) Clone() *AgentExecutionQuery {
	if _q == nil {
		return nil
	}
	return &AgentExecutionQuery{
		config:                     _q.config,
		ctx:                        _q.ctx.Clone(),
		order:                      append([]agentexecution.OrderOption{}, _q.order...),
		inters:                     append([]Interceptor{}, _q.inters...),
		predicates:                 append([]predicate.AgentExecution{}, _q.predicates...),
		withStage:                  _q.withStage.Clone(),
		withSession:                _q.withSession.Clone(),
		withTimelineEvents:         _q.withTimelineEvents.Clone(),
		withMessages:               _q.withMessages.Clone(),
		withLlmInteractions:        _q.withLlmInteractions.Clone(),
		withMcpInteractions:        _q.withMcpInteractions.Clone(),
		withSubAgentTimelineEvents: _q.withSubAgentTimelineEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStage tells the query-builder to eager-load the nodes that are connected to
// the "stage" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithStage(opts ...func(*StageQuery)) *AgentExecutionQuery {
	query := (&StageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStage = query
	return _q
}

// WithSession tells the query-builder to eager-load the nodes that are connected to
// the "session" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithSession(opts ...func(*AlertSessionQuery)) *AgentExecutionQuery {
	query := (&AlertSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSession = query
	return _q
}

// WithTimelineEvents tells the query-builder to eager-load the nodes that are connected to
// the "timeline_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithTimelineEvents(opts ...func(*TimelineEventQuery)) *AgentExecutionQuery {
	query := (&TimelineEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTimelineEvents = query
	return _q
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithMessages(opts ...func(*MessageQuery)) *AgentExecutionQuery {
	query := (&MessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithLlmInteractions tells the query-builder to eager-load the nodes that are connected to
// the "llm_interactions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithLlmInteractions(opts ...func(*LLMInteractionQuery)) *AgentExecutionQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLlmInteractions = query
	return _q
}

// WithMcpInteractions tells the query-builder to eager-load the nodes that are connected to
// the "mcp_interactions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithMcpInteractions(opts ...func(*MCPInteractionQuery)) *AgentExecutionQuery {
	query := (&MCPInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMcpInteractions = query
	return _q
}

// WithSubAgentTimelineEvents tells the query-builder to eager-load the nodes that are connected to
// the "sub_agent_timeline_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AgentExecutionQuery) WithSubAgentTimelineEvents(opts ...func(*TimelineEventQuery)) *AgentExecutionQuery {
	query := (&TimelineEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubAgentTimelineEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StageID string `json:"stage_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AgentExecution.Query().
//		GroupBy(agentexecution.FieldStageID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AgentExecutionQuery) GroupBy(field string, fields ...string) *AgentExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgentExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = agentexecution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StageID string `json:"stage_id,omitempty"`
//	}
//
//	client.AgentExecution.Query().
//		Select(agentexecution.FieldStageID).
//		Scan(ctx, &v)
func (_q *AgentExecutionQuery) Select(fields ...string) *AgentExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AgentExecutionSelect{AgentExecutionQuery: _q}
	sbuild.label = agentexecution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgentExecutionSelect configured with the given aggregations.
func (_q *AgentExecutionQuery) Aggregate(fns ...AggregateFunc) *AgentExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AgentExecutionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !agentexecution.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AgentExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AgentExecution, error) {
	var (
		nodes       = []*AgentExecution{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withStage != nil,
			_q.withSession != nil,
			_q.withTimelineEvents != nil,
			_q.withMessages != nil,
			_q.withLlmInteractions != nil,
			_q.withMcpInteractions != nil,
			_q.withSubAgentTimelineEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AgentExecution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AgentExecution{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withStage; query != nil {
		if err := _q.loadStage(ctx, query, nodes, nil,
			func(n *AgentExecution, e *Stage) { n.Edges.Stage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSession; query != nil {
		if err := _q.loadSession(ctx, query, nodes, nil,
			func(n *AgentExecution, e *AlertSession) { n.Edges.Session = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTimelineEvents; query != nil {
		if err := _q.loadTimelineEvents(ctx, query, nodes,
			func(n *AgentExecution) { n.Edges.TimelineEvents = []*TimelineEvent{} },
			func(n *AgentExecution, e *TimelineEvent) { n.Edges.TimelineEvents = append(n.Edges.TimelineEvents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *AgentExecution) { n.Edges.Messages = []*Message{} },
			func(n *AgentExecution, e *Message) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLlmInteractions; query != nil {
		if err := _q.loadLlmInteractions(ctx, query, nodes,
			func(n *AgentExecution) { n.Edges.LlmInteractions = []*LLMInteraction{} },
			func(n *AgentExecution, e *LLMInteraction) {
				n.Edges.LlmInteractions = append(n.Edges.LlmInteractions, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withMcpInteractions; query != nil {
		if err := _q.loadMcpInteractions(ctx, query, nodes,
			func(n *AgentExecution) { n.Edges.McpInteractions = []*MCPInteraction{} },
			func(n *AgentExecution, e *MCPInteraction) {
				n.Edges.McpInteractions = append(n.Edges.McpInteractions, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withSubAgentTimelineEvents; query != nil {
		if err := _q.loadSubAgentTimelineEvents(ctx, query, nodes,
			func(n *AgentExecution) { n.Edges.SubAgentTimelineEvents = []*TimelineEvent{} },
			func(n *AgentExecution, e *TimelineEvent) {
				n.Edges.SubAgentTimelineEvents = append(n.Edges.SubAgentTimelineEvents, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AgentExecutionQuery) loadStage(ctx context.Context, query *StageQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *Stage)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentExecution)
	for i := range nodes {
		fk := nodes[i].StageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(stage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "stage_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentExecutionQuery) loadSession(ctx context.Context, query *AlertSessionQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *AlertSession)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AgentExecution)
	for i := range nodes {
		fk := nodes[i].SessionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(alertsession.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "session_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AgentExecutionQuery) loadTimelineEvents(ctx context.Context, query *TimelineEventQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *TimelineEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(timelineevent.FieldExecutionID)
	}
	query.Where(predicate.TimelineEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentexecution.TimelineEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "execution_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentExecutionQuery) loadMessages(ctx context.Context, query *MessageQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *Message)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(message.FieldExecutionID)
	}
	query.Where(predicate.Message(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentexecution.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentExecutionQuery) loadLlmInteractions(ctx context.Context, query *LLMInteractionQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *LLMInteraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(llminteraction.FieldExecutionID)
	}
	query.Where(predicate.LLMInteraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentexecution.LlmInteractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "execution_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentExecutionQuery) loadMcpInteractions(ctx context.Context, query *MCPInteractionQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *MCPInteraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(mcpinteraction.FieldExecutionID)
	}
	query.Where(predicate.MCPInteraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentexecution.McpInteractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AgentExecutionQuery) loadSubAgentTimelineEvents(ctx context.Context, query *TimelineEventQuery, nodes []*AgentExecution, init func(*AgentExecution), assign func(*AgentExecution, *TimelineEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AgentExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(timelineevent.FieldParentExecutionID)
	}
	query.Where(predicate.TimelineEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(agentexecution.SubAgentTimelineEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParentExecutionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "parent_execution_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parent_execution_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AgentExecutionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AgentExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for i := range fields {
			if fields[i] != agentexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withStage != nil {
			_spec.Node.AddColumnOnce(agentexecution.FieldStageID)
		}
		if _q.withSession != nil {
			_spec.Node.AddColumnOnce(agentexecution.FieldSessionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AgentExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(agentexecution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = agentexecution.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AgentExecutionGroupBy is the group-by builder for AgentExecution entities.
type AgentExecutionGroupBy struct {
	selector
	build *AgentExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AgentExecutionGroupBy) Aggregate(fns ...AggregateFunc) *AgentExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AgentExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentExecutionQuery, *AgentExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AgentExecutionGroupBy) sqlScan(ctx context.Context, root *AgentExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgentExecutionSelect is the builder for selecting fields of AgentExecution entities.
type AgentExecutionSelect struct {
	*AgentExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AgentExecutionSelect) Aggregate(fns ...AggregateFunc) *AgentExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AgentExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgentExecutionQuery, *AgentExecutionSelect](ctx, _s.AgentExecutionQuery, _s, _s.inters, v)
}

func (_s *AgentExecutionSelect) sqlScan(ctx context.Context, root *AgentExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
