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
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// LLMInteractionQuery is the builder for querying LLMInteraction entities.
type LLMInteractionQuery struct {
	config
	ctx                *QueryContext
	order              []llminteraction.OrderOption
	inters             []Interceptor
	predicates         []predicate.LLMInteraction
	withSession        *AlertSessionQuery
	withStage          *StageQuery
	withAgentExecution *AgentExecutionQuery
	withLastMessage    *MessageQuery
	withTimelineEvents *TimelineEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LLMInteractionQuery builder.
func (_q *LLMInteractionQuery) Where(ps ...predicate.LLMInteraction) *LLMInteractionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LLMInteractionQuery) Limit(limit int) *LLMInteractionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LLMInteractionQuery) Offset(offset int) *LLMInteractionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LLMInteractionQuery) Unique(unique bool) *LLMInteractionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LLMInteractionQuery) Order(o ...llminteraction.OrderOption) *LLMInteractionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySession chains the current query on the "session" edge.
func (_q *LLMInteractionQuery) QuerySession() *AlertSessionQuery {
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
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, selector),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.SessionTable, llminteraction.SessionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStage chains the current query on the "stage" edge.
func (_q *LLMInteractionQuery) QueryStage() *StageQuery {
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
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, selector),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.StageTable, llminteraction.StageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgentExecution chains the current query on the "agent_execution" edge.
func (_q *LLMInteractionQuery) QueryAgentExecution() *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, selector),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.AgentExecutionTable, llminteraction.AgentExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLastMessage chains the current query on the "last_message" edge.
func (_q *LLMInteractionQuery) QueryLastMessage() *MessageQuery {
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
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, selector),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.LastMessageTable, llminteraction.LastMessageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTimelineEvents chains the current query on the "timeline_events" edge.
func (_q *LLMInteractionQuery) QueryTimelineEvents() *TimelineEventQuery {
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
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, selector),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, llminteraction.TimelineEventsTable, llminteraction.TimelineEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LLMInteraction entity from the query.
// Returns a *NotFoundError when no LLMInteraction was found.
func (_q *LLMInteractionQuery) First(ctx context.Context) (*LLMInteraction, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{llminteraction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LLMInteractionQuery) FirstX(ctx context.Context) *LLMInteraction {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LLMInteraction ID from the query.
// Returns a *NotFoundError when no LLMInteraction ID was found.
func (_q *LLMInteractionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{llminteraction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LLMInteractionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LLMInteraction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LLMInteraction entity is found.
// Returns a *NotFoundError when no LLMInteraction entities are found.
func (_q *LLMInteractionQuery) Only(ctx context.Context) (*LLMInteraction, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{llminteraction.Label}
	default:
		return nil, &NotSingularError{llminteraction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LLMInteractionQuery) OnlyX(ctx context.Context) *LLMInteraction {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LLMInteraction ID in the query.
// Returns a *NotSingularError when more than one LLMInteraction ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LLMInteractionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{llminteraction.Label}
	default:
		err = &NotSingularError{llminteraction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LLMInteractionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LLMInteractions.
func (_q *LLMInteractionQuery) All(ctx context.Context) ([]*LLMInteraction, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LLMInteraction, *LLMInteractionQuery]()
	return withInterceptors[[]*LLMInteraction](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LLMInteractionQuery) AllX(ctx context.Context) []*LLMInteraction {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LLMInteraction IDs.
func (_q *LLMInteractionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(llminteraction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LLMInteractionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LLMInteractionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LLMInteractionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LLMInteractionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LLMInteractionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LLMInteractionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LLMInteractionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LLMInteractionQuery) Clone() *LLMInteractionQuery {
	if _q == nil {
		return nil
	}
	return &LLMInteractionQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]llminteraction.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.LLMInteraction{}, _q.predicates...),
		withSession:        _q.withSession.Clone(),
		withStage:          _q.withStage.Clone(),
		withAgentExecution: _q.withAgentExecution.Clone(),
		withLastMessage:    _q.withLastMessage.Clone(),
		withTimelineEvents: _q.withTimelineEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSession tells the query-builder to eager-load the nodes that are connected to
// the "session" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LLMInteractionQuery) WithSession(opts ...func(*AlertSessionQuery)) *LLMInteractionQuery {
	query := (&AlertSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSession = query
	return _q
}

// WithStage tells the query-builder to eager-load the nodes that are connected to
// the "stage" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LLMInteractionQuery) WithStage(opts ...func(*StageQuery)) *LLMInteractionQuery {
	query := (&StageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStage = query
	return _q
}

// WithAgentExecution tells the query-builder to eager-load the nodes that are connected to
// the "agent_execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LLMInteractionQuery) WithAgentExecution(opts ...func(*AgentExecutionQuery)) *LLMInteractionQuery {
	query := (&AgentExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentExecution = query
	return _q
}

// WithLastMessage tells the query-builder to eager-load the nodes that are connected to
// the "last_message" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LLMInteractionQuery) WithLastMessage(opts ...func(*MessageQuery)) *LLMInteractionQuery {
	query := (&MessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLastMessage = query
	return _q
}

// WithTimelineEvents tells the query-builder to eager-load the nodes that are connected to
// the "timeline_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LLMInteractionQuery) WithTimelineEvents(opts ...func(*TimelineEventQuery)) *LLMInteractionQuery {
	query := (&TimelineEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTimelineEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LLMInteraction.Query().
//		GroupBy(llminteraction.FieldSessionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LLMInteractionQuery) GroupBy(field string, fields ...string) *LLMInteractionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LLMInteractionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = llminteraction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//	}
//
//	client.LLMInteraction.Query().
//		Select(llminteraction.FieldSessionID).
//		Scan(ctx, &v)
func (_q *LLMInteractionQuery) Select(fields ...string) *LLMInteractionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LLMInteractionSelect{LLMInteractionQuery: _q}
	sbuild.label = llminteraction.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LLMInteractionSelect configured with the given aggregations.
func (_q *LLMInteractionQuery) Aggregate(fns ...AggregateFunc) *LLMInteractionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LLMInteractionQuery) prepareQuery(ctx context.Context) error {
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
		if !llminteraction.ValidColumn(f) {
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

func (_q *LLMInteractionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LLMInteraction, error) {
	var (
		nodes       = []*LLMInteraction{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withSession != nil,
			_q.withStage != nil,
			_q.withAgentExecution != nil,
			_q.withLastMessage != nil,
			_q.withTimelineEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LLMInteraction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LLMInteraction{config: _q.config}
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
	if query := _q.withSession; query != nil {
		if err := _q.loadSession(ctx, query, nodes, nil,
			func(n *LLMInteraction, e *AlertSession) { n.Edges.Session = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStage; query != nil {
		if err := _q.loadStage(ctx, query, nodes, nil,
			func(n *LLMInteraction, e *Stage) { n.Edges.Stage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgentExecution; query != nil {
		if err := _q.loadAgentExecution(ctx, query, nodes, nil,
			func(n *LLMInteraction, e *AgentExecution) { n.Edges.AgentExecution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLastMessage; query != nil {
		if err := _q.loadLastMessage(ctx, query, nodes, nil,
			func(n *LLMInteraction, e *Message) { n.Edges.LastMessage = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTimelineEvents; query != nil {
		if err := _q.loadTimelineEvents(ctx, query, nodes,
			func(n *LLMInteraction) { n.Edges.TimelineEvents = []*TimelineEvent{} },
			func(n *LLMInteraction, e *TimelineEvent) { n.Edges.TimelineEvents = append(n.Edges.TimelineEvents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LLMInteractionQuery) loadSession(ctx context.Context, query *AlertSessionQuery, nodes []*LLMInteraction, init func(*LLMInteraction), assign func(*LLMInteraction, *AlertSession)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LLMInteraction)
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
func (_q *LLMInteractionQuery) loadStage(ctx context.Context, query *StageQuery, nodes []*LLMInteraction, init func(*LLMInteraction), assign func(*LLMInteraction, *Stage)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LLMInteraction)
	for i := range nodes {
		if nodes[i].StageID == nil {
			continue
		}
		fk := *nodes[i].StageID
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
func (_q *LLMInteractionQuery) loadAgentExecution(ctx context.Context, query *AgentExecutionQuery, nodes []*LLMInteraction, init func(*LLMInteraction), assign func(*LLMInteraction, *AgentExecution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LLMInteraction)
	for i := range nodes {
		if nodes[i].ExecutionID == nil {
			continue
		}
		fk := *nodes[i].ExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LLMInteractionQuery) loadLastMessage(ctx context.Context, query *MessageQuery, nodes []*LLMInteraction, init func(*LLMInteraction), assign func(*LLMInteraction, *Message)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*LLMInteraction)
	for i := range nodes {
		if nodes[i].LastMessageID == nil {
			continue
		}
		fk := *nodes[i].LastMessageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(message.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "last_message_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *LLMInteractionQuery) loadTimelineEvents(ctx context.Context, query *TimelineEventQuery, nodes []*LLMInteraction, init func(*LLMInteraction), assign func(*LLMInteraction, *TimelineEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*LLMInteraction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(timelineevent.FieldLlmInteractionID)
	}
	query.Where(predicate.TimelineEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(llminteraction.TimelineEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.LlmInteractionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "llm_interaction_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "llm_interaction_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LLMInteractionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LLMInteractionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(llminteraction.Table, llminteraction.Columns, sqlgraph.NewFieldSpec(llminteraction.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llminteraction.FieldID)
		for i := range fields {
			if fields[i] != llminteraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSession != nil {
			_spec.Node.AddColumnOnce(llminteraction.FieldSessionID)
		}
		if _q.withStage != nil {
			_spec.Node.AddColumnOnce(llminteraction.FieldStageID)
		}
		if _q.withAgentExecution != nil {
			_spec.Node.AddColumnOnce(llminteraction.FieldExecutionID)
		}
		if _q.withLastMessage != nil {
			_spec.Node.AddColumnOnce(llminteraction.FieldLastMessageID)
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

func (_q *LLMInteractionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(llminteraction.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = llminteraction.Columns
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

// LLMInteractionGroupBy is the group-by builder for LLMInteraction entities.
type LLMInteractionGroupBy struct {
	selector
	build *LLMInteractionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LLMInteractionGroupBy) Aggregate(fns ...AggregateFunc) *LLMInteractionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LLMInteractionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LLMInteractionQuery, *LLMInteractionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LLMInteractionGroupBy) sqlScan(ctx context.Context, root *LLMInteractionQuery, v any) error {
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

// LLMInteractionSelect is the builder for selecting fields of LLMInteraction entities.
type LLMInteractionSelect struct {
	*LLMInteractionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LLMInteractionSelect) Aggregate(fns ...AggregateFunc) *LLMInteractionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LLMInteractionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LLMInteractionQuery, *LLMInteractionSelect](ctx, _s.LLMInteractionQuery, _s, _s.inters, v)
}

func (_s *LLMInteractionSelect) sqlScan(ctx context.Context, root *LLMInteractionQuery, v any) error {
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
