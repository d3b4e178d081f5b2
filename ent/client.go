// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tarsy-project/tarsy/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-project/tarsy/ent/agentexecution"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/chat"
	"github.com/tarsy-project/tarsy/ent/chatusermessage"
	"github.com/tarsy-project/tarsy/ent/event"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/message"
	"github.com/tarsy-project/tarsy/ent/sessionscore"
	"github.com/tarsy-project/tarsy/ent/stage"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentExecution is the client for interacting with the AgentExecution builders.
	AgentExecution *AgentExecutionClient
	// AlertSession is the client for interacting with the AlertSession builders.
	AlertSession *AlertSessionClient
	// Chat is the client for interacting with the Chat builders.
	Chat *ChatClient
	// ChatUserMessage is the client for interacting with the ChatUserMessage builders.
	ChatUserMessage *ChatUserMessageClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// LLMInteraction is the client for interacting with the LLMInteraction builders.
	LLMInteraction *LLMInteractionClient
	// MCPInteraction is the client for interacting with the MCPInteraction builders.
	MCPInteraction *MCPInteractionClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// SessionScore is the client for interacting with the SessionScore builders.
	SessionScore *SessionScoreClient
	// Stage is the client for interacting with the Stage builders.
	Stage *StageClient
	// TimelineEvent is the client for interacting with the TimelineEvent builders.
	TimelineEvent *TimelineEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentExecution = NewAgentExecutionClient(c.config)
	c.AlertSession = NewAlertSessionClient(c.config)
	c.Chat = NewChatClient(c.config)
	c.ChatUserMessage = NewChatUserMessageClient(c.config)
	c.Event = NewEventClient(c.config)
	c.LLMInteraction = NewLLMInteractionClient(c.config)
	c.MCPInteraction = NewMCPInteractionClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.SessionScore = NewSessionScoreClient(c.config)
	c.Stage = NewStageClient(c.config)
	c.TimelineEvent = NewTimelineEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentExecution:  NewAgentExecutionClient(cfg),
		AlertSession:    NewAlertSessionClient(cfg),
		Chat:            NewChatClient(cfg),
		ChatUserMessage: NewChatUserMessageClient(cfg),
		Event:           NewEventClient(cfg),
		LLMInteraction:  NewLLMInteractionClient(cfg),
		MCPInteraction:  NewMCPInteractionClient(cfg),
		Message:         NewMessageClient(cfg),
		SessionScore:    NewSessionScoreClient(cfg),
		Stage:           NewStageClient(cfg),
		TimelineEvent:   NewTimelineEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentExecution:  NewAgentExecutionClient(cfg),
		AlertSession:    NewAlertSessionClient(cfg),
		Chat:            NewChatClient(cfg),
		ChatUserMessage: NewChatUserMessageClient(cfg),
		Event:           NewEventClient(cfg),
		LLMInteraction:  NewLLMInteractionClient(cfg),
		MCPInteraction:  NewMCPInteractionClient(cfg),
		Message:         NewMessageClient(cfg),
		SessionScore:    NewSessionScoreClient(cfg),
		Stage:           NewStageClient(cfg),
		TimelineEvent:   NewTimelineEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentExecution.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentExecution, c.AlertSession, c.Chat, c.ChatUserMessage, c.Event,
		c.LLMInteraction, c.MCPInteraction, c.Message, c.SessionScore, c.Stage,
		c.TimelineEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentExecution, c.AlertSession, c.Chat, c.ChatUserMessage, c.Event,
		c.LLMInteraction, c.MCPInteraction, c.Message, c.SessionScore, c.Stage,
		c.TimelineEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentExecutionMutation:
		return c.AgentExecution.mutate(ctx, m)
	case *AlertSessionMutation:
		return c.AlertSession.mutate(ctx, m)
	case *ChatMutation:
		return c.Chat.mutate(ctx, m)
	case *ChatUserMessageMutation:
		return c.ChatUserMessage.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LLMInteractionMutation:
		return c.LLMInteraction.mutate(ctx, m)
	case *MCPInteractionMutation:
		return c.MCPInteraction.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *SessionScoreMutation:
		return c.SessionScore.mutate(ctx, m)
	case *StageMutation:
		return c.Stage.mutate(ctx, m)
	case *TimelineEventMutation:
		return c.TimelineEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentExecutionClient is a client for the AgentExecution schema.
type AgentExecutionClient struct {
	config
}

// NewAgentExecutionClient returns a client for the AgentExecution from the given config.
func NewAgentExecutionClient(c config) *AgentExecutionClient {
	return &AgentExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentexecution.Hooks(f(g(h())))`.
func (c *AgentExecutionClient) Use(hooks ...Hook) {
	c.hooks.AgentExecution = append(c.hooks.AgentExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentexecution.Intercept(f(g(h())))`.
func (c *AgentExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentExecution = append(c.inters.AgentExecution, interceptors...)
}

// Create returns a builder for creating a AgentExecution entity.
func (c *AgentExecutionClient) Create() *AgentExecutionCreate {
	mutation := newAgentExecutionMutation(c.config, OpCreate)
	return &AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentExecution entities.
func (c *AgentExecutionClient) CreateBulk(builders ...*AgentExecutionCreate) *AgentExecutionCreateBulk {
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentExecutionClient) MapCreateBulk(slice any, setFunc func(*AgentExecutionCreate, int)) *AgentExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentExecutionCreateBulk{err: fmt.Errorf("calling to AgentExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentExecution.
func (c *AgentExecutionClient) Update() *AgentExecutionUpdate {
	mutation := newAgentExecutionMutation(c.config, OpUpdate)
	return &AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentExecutionClient) UpdateOne(_m *AgentExecution) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecution(_m))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentExecutionClient) UpdateOneID(id string) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecutionID(id))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentExecution.
func (c *AgentExecutionClient) Delete() *AgentExecutionDelete {
	mutation := newAgentExecutionMutation(c.config, OpDelete)
	return &AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentExecutionClient) DeleteOne(_m *AgentExecution) *AgentExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentExecutionClient) DeleteOneID(id string) *AgentExecutionDeleteOne {
	builder := c.Delete().Where(agentexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentExecutionDeleteOne{builder}
}

// Query returns a query builder for AgentExecution.
func (c *AgentExecutionClient) Query() *AgentExecutionQuery {
	return &AgentExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentExecution entity by its id.
func (c *AgentExecutionClient) Get(ctx context.Context, id string) (*AgentExecution, error) {
	return c.Query().Where(agentexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentExecutionClient) GetX(ctx context.Context, id string) *AgentExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStage queries the stage edge of a AgentExecution.
func (c *AgentExecutionClient) QueryStage(_m *AgentExecution) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.StageTable, agentexecution.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySession queries the session edge of a AgentExecution.
func (c *AgentExecutionClient) QuerySession(_m *AgentExecution) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.SessionTable, agentexecution.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a AgentExecution.
func (c *AgentExecutionClient) QueryTimelineEvents(_m *AgentExecution) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.TimelineEventsTable, agentexecution.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a AgentExecution.
func (c *AgentExecutionClient) QueryMessages(_m *AgentExecution) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.MessagesTable, agentexecution.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmInteractions queries the llm_interactions edge of a AgentExecution.
func (c *AgentExecutionClient) QueryLlmInteractions(_m *AgentExecution) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.LlmInteractionsTable, agentexecution.LlmInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMcpInteractions queries the mcp_interactions edge of a AgentExecution.
func (c *AgentExecutionClient) QueryMcpInteractions(_m *AgentExecution) *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.McpInteractionsTable, agentexecution.McpInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubAgentTimelineEvents queries the sub_agent_timeline_events edge of a AgentExecution.
func (c *AgentExecutionClient) QuerySubAgentTimelineEvents(_m *AgentExecution) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.SubAgentTimelineEventsTable, agentexecution.SubAgentTimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentExecutionClient) Hooks() []Hook {
	return c.hooks.AgentExecution
}

// Interceptors returns the client interceptors.
func (c *AgentExecutionClient) Interceptors() []Interceptor {
	return c.inters.AgentExecution
}

func (c *AgentExecutionClient) mutate(ctx context.Context, m *AgentExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentExecution mutation op: %q", m.Op())
	}
}

// AlertSessionClient is a client for the AlertSession schema.
type AlertSessionClient struct {
	config
}

// NewAlertSessionClient returns a client for the AlertSession from the given config.
func NewAlertSessionClient(c config) *AlertSessionClient {
	return &AlertSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertsession.Hooks(f(g(h())))`.
func (c *AlertSessionClient) Use(hooks ...Hook) {
	c.hooks.AlertSession = append(c.hooks.AlertSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertsession.Intercept(f(g(h())))`.
func (c *AlertSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertSession = append(c.inters.AlertSession, interceptors...)
}

// Create returns a builder for creating a AlertSession entity.
func (c *AlertSessionClient) Create() *AlertSessionCreate {
	mutation := newAlertSessionMutation(c.config, OpCreate)
	return &AlertSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertSession entities.
func (c *AlertSessionClient) CreateBulk(builders ...*AlertSessionCreate) *AlertSessionCreateBulk {
	return &AlertSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertSessionClient) MapCreateBulk(slice any, setFunc func(*AlertSessionCreate, int)) *AlertSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertSessionCreateBulk{err: fmt.Errorf("calling to AlertSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertSession.
func (c *AlertSessionClient) Update() *AlertSessionUpdate {
	mutation := newAlertSessionMutation(c.config, OpUpdate)
	return &AlertSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertSessionClient) UpdateOne(_m *AlertSession) *AlertSessionUpdateOne {
	mutation := newAlertSessionMutation(c.config, OpUpdateOne, withAlertSession(_m))
	return &AlertSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertSessionClient) UpdateOneID(id string) *AlertSessionUpdateOne {
	mutation := newAlertSessionMutation(c.config, OpUpdateOne, withAlertSessionID(id))
	return &AlertSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertSession.
func (c *AlertSessionClient) Delete() *AlertSessionDelete {
	mutation := newAlertSessionMutation(c.config, OpDelete)
	return &AlertSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertSessionClient) DeleteOne(_m *AlertSession) *AlertSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertSessionClient) DeleteOneID(id string) *AlertSessionDeleteOne {
	builder := c.Delete().Where(alertsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertSessionDeleteOne{builder}
}

// Query returns a query builder for AlertSession.
func (c *AlertSessionClient) Query() *AlertSessionQuery {
	return &AlertSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertSession entity by its id.
func (c *AlertSessionClient) Get(ctx context.Context, id string) (*AlertSession, error) {
	return c.Query().Where(alertsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertSessionClient) GetX(ctx context.Context, id string) *AlertSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a AlertSession.
func (c *AlertSessionClient) QueryStages(_m *AlertSession) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.StagesTable, alertsession.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecutions queries the agent_executions edge of a AlertSession.
func (c *AlertSessionClient) QueryAgentExecutions(_m *AlertSession) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.AgentExecutionsTable, alertsession.AgentExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a AlertSession.
func (c *AlertSessionClient) QueryTimelineEvents(_m *AlertSession) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.TimelineEventsTable, alertsession.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a AlertSession.
func (c *AlertSessionClient) QueryMessages(_m *AlertSession) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.MessagesTable, alertsession.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmInteractions queries the llm_interactions edge of a AlertSession.
func (c *AlertSessionClient) QueryLlmInteractions(_m *AlertSession) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.LlmInteractionsTable, alertsession.LlmInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMcpInteractions queries the mcp_interactions edge of a AlertSession.
func (c *AlertSessionClient) QueryMcpInteractions(_m *AlertSession) *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.McpInteractionsTable, alertsession.McpInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a AlertSession.
func (c *AlertSessionClient) QueryEvents(_m *AlertSession) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.EventsTable, alertsession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChat queries the chat edge of a AlertSession.
func (c *AlertSessionClient) QueryChat(_m *AlertSession) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, alertsession.ChatTable, alertsession.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessionScores queries the session_scores edge of a AlertSession.
func (c *AlertSessionClient) QuerySessionScores(_m *AlertSession) *SessionScoreQuery {
	query := (&SessionScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertsession.Table, alertsession.FieldID, id),
			sqlgraph.To(sessionscore.Table, sessionscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, alertsession.SessionScoresTable, alertsession.SessionScoresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertSessionClient) Hooks() []Hook {
	return c.hooks.AlertSession
}

// Interceptors returns the client interceptors.
func (c *AlertSessionClient) Interceptors() []Interceptor {
	return c.inters.AlertSession
}

func (c *AlertSessionClient) mutate(ctx context.Context, m *AlertSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertSession mutation op: %q", m.Op())
	}
}

// ChatClient is a client for the Chat schema.
type ChatClient struct {
	config
}

// NewChatClient returns a client for the Chat from the given config.
func NewChatClient(c config) *ChatClient {
	return &ChatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chat.Hooks(f(g(h())))`.
func (c *ChatClient) Use(hooks ...Hook) {
	c.hooks.Chat = append(c.hooks.Chat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chat.Intercept(f(g(h())))`.
func (c *ChatClient) Intercept(interceptors ...Interceptor) {
	c.inters.Chat = append(c.inters.Chat, interceptors...)
}

// Create returns a builder for creating a Chat entity.
func (c *ChatClient) Create() *ChatCreate {
	mutation := newChatMutation(c.config, OpCreate)
	return &ChatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Chat entities.
func (c *ChatClient) CreateBulk(builders ...*ChatCreate) *ChatCreateBulk {
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatClient) MapCreateBulk(slice any, setFunc func(*ChatCreate, int)) *ChatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatCreateBulk{err: fmt.Errorf("calling to ChatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Chat.
func (c *ChatClient) Update() *ChatUpdate {
	mutation := newChatMutation(c.config, OpUpdate)
	return &ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatClient) UpdateOne(_m *Chat) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChat(_m))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatClient) UpdateOneID(id string) *ChatUpdateOne {
	mutation := newChatMutation(c.config, OpUpdateOne, withChatID(id))
	return &ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Chat.
func (c *ChatClient) Delete() *ChatDelete {
	mutation := newChatMutation(c.config, OpDelete)
	return &ChatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatClient) DeleteOne(_m *Chat) *ChatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatClient) DeleteOneID(id string) *ChatDeleteOne {
	builder := c.Delete().Where(chat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatDeleteOne{builder}
}

// Query returns a query builder for Chat.
func (c *ChatClient) Query() *ChatQuery {
	return &ChatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChat},
		inters: c.Interceptors(),
	}
}

// Get returns a Chat entity by its id.
func (c *ChatClient) Get(ctx context.Context, id string) (*Chat, error) {
	return c.Query().Where(chat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatClient) GetX(ctx context.Context, id string) *Chat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Chat.
func (c *ChatClient) QuerySession(_m *Chat) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, chat.SessionTable, chat.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUserMessages queries the user_messages edge of a Chat.
func (c *ChatClient) QueryUserMessages(_m *Chat) *ChatUserMessageQuery {
	query := (&ChatUserMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(chatusermessage.Table, chatusermessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.UserMessagesTable, chat.UserMessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStages queries the stages edge of a Chat.
func (c *ChatClient) QueryStages(_m *Chat) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chat.Table, chat.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, chat.StagesTable, chat.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatClient) Hooks() []Hook {
	return c.hooks.Chat
}

// Interceptors returns the client interceptors.
func (c *ChatClient) Interceptors() []Interceptor {
	return c.inters.Chat
}

func (c *ChatClient) mutate(ctx context.Context, m *ChatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Chat mutation op: %q", m.Op())
	}
}

// ChatUserMessageClient is a client for the ChatUserMessage schema.
type ChatUserMessageClient struct {
	config
}

// NewChatUserMessageClient returns a client for the ChatUserMessage from the given config.
func NewChatUserMessageClient(c config) *ChatUserMessageClient {
	return &ChatUserMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatusermessage.Hooks(f(g(h())))`.
func (c *ChatUserMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatUserMessage = append(c.hooks.ChatUserMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatusermessage.Intercept(f(g(h())))`.
func (c *ChatUserMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatUserMessage = append(c.inters.ChatUserMessage, interceptors...)
}

// Create returns a builder for creating a ChatUserMessage entity.
func (c *ChatUserMessageClient) Create() *ChatUserMessageCreate {
	mutation := newChatUserMessageMutation(c.config, OpCreate)
	return &ChatUserMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatUserMessage entities.
func (c *ChatUserMessageClient) CreateBulk(builders ...*ChatUserMessageCreate) *ChatUserMessageCreateBulk {
	return &ChatUserMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatUserMessageClient) MapCreateBulk(slice any, setFunc func(*ChatUserMessageCreate, int)) *ChatUserMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatUserMessageCreateBulk{err: fmt.Errorf("calling to ChatUserMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatUserMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatUserMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatUserMessage.
func (c *ChatUserMessageClient) Update() *ChatUserMessageUpdate {
	mutation := newChatUserMessageMutation(c.config, OpUpdate)
	return &ChatUserMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatUserMessageClient) UpdateOne(_m *ChatUserMessage) *ChatUserMessageUpdateOne {
	mutation := newChatUserMessageMutation(c.config, OpUpdateOne, withChatUserMessage(_m))
	return &ChatUserMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatUserMessageClient) UpdateOneID(id string) *ChatUserMessageUpdateOne {
	mutation := newChatUserMessageMutation(c.config, OpUpdateOne, withChatUserMessageID(id))
	return &ChatUserMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatUserMessage.
func (c *ChatUserMessageClient) Delete() *ChatUserMessageDelete {
	mutation := newChatUserMessageMutation(c.config, OpDelete)
	return &ChatUserMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatUserMessageClient) DeleteOne(_m *ChatUserMessage) *ChatUserMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatUserMessageClient) DeleteOneID(id string) *ChatUserMessageDeleteOne {
	builder := c.Delete().Where(chatusermessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatUserMessageDeleteOne{builder}
}

// Query returns a query builder for ChatUserMessage.
func (c *ChatUserMessageClient) Query() *ChatUserMessageQuery {
	return &ChatUserMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatUserMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatUserMessage entity by its id.
func (c *ChatUserMessageClient) Get(ctx context.Context, id string) (*ChatUserMessage, error) {
	return c.Query().Where(chatusermessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatUserMessageClient) GetX(ctx context.Context, id string) *ChatUserMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChat queries the chat edge of a ChatUserMessage.
func (c *ChatUserMessageClient) QueryChat(_m *ChatUserMessage) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatusermessage.Table, chatusermessage.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatusermessage.ChatTable, chatusermessage.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStage queries the stage edge of a ChatUserMessage.
func (c *ChatUserMessageClient) QueryStage(_m *ChatUserMessage) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatusermessage.Table, chatusermessage.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, chatusermessage.StageTable, chatusermessage.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatUserMessageClient) Hooks() []Hook {
	return c.hooks.ChatUserMessage
}

// Interceptors returns the client interceptors.
func (c *ChatUserMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatUserMessage
}

func (c *ChatUserMessageClient) mutate(ctx context.Context, m *ChatUserMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatUserMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatUserMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatUserMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatUserMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatUserMessage mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Event.
func (c *EventClient) QuerySession(_m *Event) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.SessionTable, event.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// LLMInteractionClient is a client for the LLMInteraction schema.
type LLMInteractionClient struct {
	config
}

// NewLLMInteractionClient returns a client for the LLMInteraction from the given config.
func NewLLMInteractionClient(c config) *LLMInteractionClient {
	return &LLMInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llminteraction.Hooks(f(g(h())))`.
func (c *LLMInteractionClient) Use(hooks ...Hook) {
	c.hooks.LLMInteraction = append(c.hooks.LLMInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llminteraction.Intercept(f(g(h())))`.
func (c *LLMInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMInteraction = append(c.inters.LLMInteraction, interceptors...)
}

// Create returns a builder for creating a LLMInteraction entity.
func (c *LLMInteractionClient) Create() *LLMInteractionCreate {
	mutation := newLLMInteractionMutation(c.config, OpCreate)
	return &LLMInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMInteraction entities.
func (c *LLMInteractionClient) CreateBulk(builders ...*LLMInteractionCreate) *LLMInteractionCreateBulk {
	return &LLMInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMInteractionClient) MapCreateBulk(slice any, setFunc func(*LLMInteractionCreate, int)) *LLMInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMInteractionCreateBulk{err: fmt.Errorf("calling to LLMInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMInteraction.
func (c *LLMInteractionClient) Update() *LLMInteractionUpdate {
	mutation := newLLMInteractionMutation(c.config, OpUpdate)
	return &LLMInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMInteractionClient) UpdateOne(_m *LLMInteraction) *LLMInteractionUpdateOne {
	mutation := newLLMInteractionMutation(c.config, OpUpdateOne, withLLMInteraction(_m))
	return &LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMInteractionClient) UpdateOneID(id string) *LLMInteractionUpdateOne {
	mutation := newLLMInteractionMutation(c.config, OpUpdateOne, withLLMInteractionID(id))
	return &LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMInteraction.
func (c *LLMInteractionClient) Delete() *LLMInteractionDelete {
	mutation := newLLMInteractionMutation(c.config, OpDelete)
	return &LLMInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMInteractionClient) DeleteOne(_m *LLMInteraction) *LLMInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMInteractionClient) DeleteOneID(id string) *LLMInteractionDeleteOne {
	builder := c.Delete().Where(llminteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMInteractionDeleteOne{builder}
}

// Query returns a query builder for LLMInteraction.
func (c *LLMInteractionClient) Query() *LLMInteractionQuery {
	return &LLMInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMInteraction entity by its id.
func (c *LLMInteractionClient) Get(ctx context.Context, id string) (*LLMInteraction, error) {
	return c.Query().Where(llminteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMInteractionClient) GetX(ctx context.Context, id string) *LLMInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a LLMInteraction.
func (c *LLMInteractionClient) QuerySession(_m *LLMInteraction) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.SessionTable, llminteraction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStage queries the stage edge of a LLMInteraction.
func (c *LLMInteractionClient) QueryStage(_m *LLMInteraction) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.StageTable, llminteraction.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecution queries the agent_execution edge of a LLMInteraction.
func (c *LLMInteractionClient) QueryAgentExecution(_m *LLMInteraction) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.AgentExecutionTable, llminteraction.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLastMessage queries the last_message edge of a LLMInteraction.
func (c *LLMInteractionClient) QueryLastMessage(_m *LLMInteraction) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.LastMessageTable, llminteraction.LastMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a LLMInteraction.
func (c *LLMInteractionClient) QueryTimelineEvents(_m *LLMInteraction) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, llminteraction.TimelineEventsTable, llminteraction.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LLMInteractionClient) Hooks() []Hook {
	return c.hooks.LLMInteraction
}

// Interceptors returns the client interceptors.
func (c *LLMInteractionClient) Interceptors() []Interceptor {
	return c.inters.LLMInteraction
}

func (c *LLMInteractionClient) mutate(ctx context.Context, m *LLMInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMInteraction mutation op: %q", m.Op())
	}
}

// MCPInteractionClient is a client for the MCPInteraction schema.
type MCPInteractionClient struct {
	config
}

// NewMCPInteractionClient returns a client for the MCPInteraction from the given config.
func NewMCPInteractionClient(c config) *MCPInteractionClient {
	return &MCPInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mcpinteraction.Hooks(f(g(h())))`.
func (c *MCPInteractionClient) Use(hooks ...Hook) {
	c.hooks.MCPInteraction = append(c.hooks.MCPInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mcpinteraction.Intercept(f(g(h())))`.
func (c *MCPInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MCPInteraction = append(c.inters.MCPInteraction, interceptors...)
}

// Create returns a builder for creating a MCPInteraction entity.
func (c *MCPInteractionClient) Create() *MCPInteractionCreate {
	mutation := newMCPInteractionMutation(c.config, OpCreate)
	return &MCPInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MCPInteraction entities.
func (c *MCPInteractionClient) CreateBulk(builders ...*MCPInteractionCreate) *MCPInteractionCreateBulk {
	return &MCPInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MCPInteractionClient) MapCreateBulk(slice any, setFunc func(*MCPInteractionCreate, int)) *MCPInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MCPInteractionCreateBulk{err: fmt.Errorf("calling to MCPInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MCPInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MCPInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MCPInteraction.
func (c *MCPInteractionClient) Update() *MCPInteractionUpdate {
	mutation := newMCPInteractionMutation(c.config, OpUpdate)
	return &MCPInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MCPInteractionClient) UpdateOne(_m *MCPInteraction) *MCPInteractionUpdateOne {
	mutation := newMCPInteractionMutation(c.config, OpUpdateOne, withMCPInteraction(_m))
	return &MCPInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MCPInteractionClient) UpdateOneID(id string) *MCPInteractionUpdateOne {
	mutation := newMCPInteractionMutation(c.config, OpUpdateOne, withMCPInteractionID(id))
	return &MCPInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MCPInteraction.
func (c *MCPInteractionClient) Delete() *MCPInteractionDelete {
	mutation := newMCPInteractionMutation(c.config, OpDelete)
	return &MCPInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MCPInteractionClient) DeleteOne(_m *MCPInteraction) *MCPInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MCPInteractionClient) DeleteOneID(id string) *MCPInteractionDeleteOne {
	builder := c.Delete().Where(mcpinteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MCPInteractionDeleteOne{builder}
}

// Query returns a query builder for MCPInteraction.
func (c *MCPInteractionClient) Query() *MCPInteractionQuery {
	return &MCPInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMCPInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a MCPInteraction entity by its id.
func (c *MCPInteractionClient) Get(ctx context.Context, id string) (*MCPInteraction, error) {
	return c.Query().Where(mcpinteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MCPInteractionClient) GetX(ctx context.Context, id string) *MCPInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a MCPInteraction.
func (c *MCPInteractionClient) QuerySession(_m *MCPInteraction) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mcpinteraction.Table, mcpinteraction.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mcpinteraction.SessionTable, mcpinteraction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStage queries the stage edge of a MCPInteraction.
func (c *MCPInteractionClient) QueryStage(_m *MCPInteraction) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mcpinteraction.Table, mcpinteraction.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mcpinteraction.StageTable, mcpinteraction.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecution queries the agent_execution edge of a MCPInteraction.
func (c *MCPInteractionClient) QueryAgentExecution(_m *MCPInteraction) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mcpinteraction.Table, mcpinteraction.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mcpinteraction.AgentExecutionTable, mcpinteraction.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a MCPInteraction.
func (c *MCPInteractionClient) QueryTimelineEvents(_m *MCPInteraction) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mcpinteraction.Table, mcpinteraction.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, mcpinteraction.TimelineEventsTable, mcpinteraction.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MCPInteractionClient) Hooks() []Hook {
	return c.hooks.MCPInteraction
}

// Interceptors returns the client interceptors.
func (c *MCPInteractionClient) Interceptors() []Interceptor {
	return c.inters.MCPInteraction
}

func (c *MCPInteractionClient) mutate(ctx context.Context, m *MCPInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MCPInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MCPInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MCPInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MCPInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MCPInteraction mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Message.
func (c *MessageClient) QuerySession(_m *Message) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.SessionTable, message.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStage queries the stage edge of a Message.
func (c *MessageClient) QueryStage(_m *Message) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.StageTable, message.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecution queries the agent_execution edge of a Message.
func (c *MessageClient) QueryAgentExecution(_m *Message) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.AgentExecutionTable, message.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmInteractions queries the llm_interactions edge of a Message.
func (c *MessageClient) QueryLlmInteractions(_m *Message) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, message.LlmInteractionsTable, message.LlmInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// SessionScoreClient is a client for the SessionScore schema.
type SessionScoreClient struct {
	config
}

// NewSessionScoreClient returns a client for the SessionScore from the given config.
func NewSessionScoreClient(c config) *SessionScoreClient {
	return &SessionScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionscore.Hooks(f(g(h())))`.
func (c *SessionScoreClient) Use(hooks ...Hook) {
	c.hooks.SessionScore = append(c.hooks.SessionScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionscore.Intercept(f(g(h())))`.
func (c *SessionScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionScore = append(c.inters.SessionScore, interceptors...)
}

// Create returns a builder for creating a SessionScore entity.
func (c *SessionScoreClient) Create() *SessionScoreCreate {
	mutation := newSessionScoreMutation(c.config, OpCreate)
	return &SessionScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionScore entities.
func (c *SessionScoreClient) CreateBulk(builders ...*SessionScoreCreate) *SessionScoreCreateBulk {
	return &SessionScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionScoreClient) MapCreateBulk(slice any, setFunc func(*SessionScoreCreate, int)) *SessionScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionScoreCreateBulk{err: fmt.Errorf("calling to SessionScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionScore.
func (c *SessionScoreClient) Update() *SessionScoreUpdate {
	mutation := newSessionScoreMutation(c.config, OpUpdate)
	return &SessionScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionScoreClient) UpdateOne(_m *SessionScore) *SessionScoreUpdateOne {
	mutation := newSessionScoreMutation(c.config, OpUpdateOne, withSessionScore(_m))
	return &SessionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionScoreClient) UpdateOneID(id string) *SessionScoreUpdateOne {
	mutation := newSessionScoreMutation(c.config, OpUpdateOne, withSessionScoreID(id))
	return &SessionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionScore.
func (c *SessionScoreClient) Delete() *SessionScoreDelete {
	mutation := newSessionScoreMutation(c.config, OpDelete)
	return &SessionScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionScoreClient) DeleteOne(_m *SessionScore) *SessionScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionScoreClient) DeleteOneID(id string) *SessionScoreDeleteOne {
	builder := c.Delete().Where(sessionscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionScoreDeleteOne{builder}
}

// Query returns a query builder for SessionScore.
func (c *SessionScoreClient) Query() *SessionScoreQuery {
	return &SessionScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionScore},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionScore entity by its id.
func (c *SessionScoreClient) Get(ctx context.Context, id string) (*SessionScore, error) {
	return c.Query().Where(sessionscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionScoreClient) GetX(ctx context.Context, id string) *SessionScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionScore.
func (c *SessionScoreClient) QuerySession(_m *SessionScore) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionscore.Table, sessionscore.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessionscore.SessionTable, sessionscore.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionScoreClient) Hooks() []Hook {
	return c.hooks.SessionScore
}

// Interceptors returns the client interceptors.
func (c *SessionScoreClient) Interceptors() []Interceptor {
	return c.inters.SessionScore
}

func (c *SessionScoreClient) mutate(ctx context.Context, m *SessionScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionScore mutation op: %q", m.Op())
	}
}

// StageClient is a client for the Stage schema.
type StageClient struct {
	config
}

// NewStageClient returns a client for the Stage from the given config.
func NewStageClient(c config) *StageClient {
	return &StageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stage.Hooks(f(g(h())))`.
func (c *StageClient) Use(hooks ...Hook) {
	c.hooks.Stage = append(c.hooks.Stage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stage.Intercept(f(g(h())))`.
func (c *StageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stage = append(c.inters.Stage, interceptors...)
}

// Create returns a builder for creating a Stage entity.
func (c *StageClient) Create() *StageCreate {
	mutation := newStageMutation(c.config, OpCreate)
	return &StageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stage entities.
func (c *StageClient) CreateBulk(builders ...*StageCreate) *StageCreateBulk {
	return &StageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageClient) MapCreateBulk(slice any, setFunc func(*StageCreate, int)) *StageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageCreateBulk{err: fmt.Errorf("calling to StageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stage.
func (c *StageClient) Update() *StageUpdate {
	mutation := newStageMutation(c.config, OpUpdate)
	return &StageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageClient) UpdateOne(_m *Stage) *StageUpdateOne {
	mutation := newStageMutation(c.config, OpUpdateOne, withStage(_m))
	return &StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageClient) UpdateOneID(id string) *StageUpdateOne {
	mutation := newStageMutation(c.config, OpUpdateOne, withStageID(id))
	return &StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stage.
func (c *StageClient) Delete() *StageDelete {
	mutation := newStageMutation(c.config, OpDelete)
	return &StageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageClient) DeleteOne(_m *Stage) *StageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageClient) DeleteOneID(id string) *StageDeleteOne {
	builder := c.Delete().Where(stage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageDeleteOne{builder}
}

// Query returns a query builder for Stage.
func (c *StageClient) Query() *StageQuery {
	return &StageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStage},
		inters: c.Interceptors(),
	}
}

// Get returns a Stage entity by its id.
func (c *StageClient) Get(ctx context.Context, id string) (*Stage, error) {
	return c.Query().Where(stage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageClient) GetX(ctx context.Context, id string) *Stage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Stage.
func (c *StageClient) QuerySession(_m *Stage) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stage.SessionTable, stage.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecutions queries the agent_executions edge of a Stage.
func (c *StageClient) QueryAgentExecutions(_m *Stage) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.AgentExecutionsTable, stage.AgentExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTimelineEvents queries the timeline_events edge of a Stage.
func (c *StageClient) QueryTimelineEvents(_m *Stage) *TimelineEventQuery {
	query := (&TimelineEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(timelineevent.Table, timelineevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.TimelineEventsTable, stage.TimelineEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Stage.
func (c *StageClient) QueryMessages(_m *Stage) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.MessagesTable, stage.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmInteractions queries the llm_interactions edge of a Stage.
func (c *StageClient) QueryLlmInteractions(_m *Stage) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.LlmInteractionsTable, stage.LlmInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMcpInteractions queries the mcp_interactions edge of a Stage.
func (c *StageClient) QueryMcpInteractions(_m *Stage) *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.McpInteractionsTable, stage.McpInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChat queries the chat edge of a Stage.
func (c *StageClient) QueryChat(_m *Stage) *ChatQuery {
	query := (&ChatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stage.ChatTable, stage.ChatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChatUserMessage queries the chat_user_message edge of a Stage.
func (c *StageClient) QueryChatUserMessage(_m *Stage) *ChatUserMessageQuery {
	query := (&ChatUserMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(chatusermessage.Table, chatusermessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, stage.ChatUserMessageTable, stage.ChatUserMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageClient) Hooks() []Hook {
	return c.hooks.Stage
}

// Interceptors returns the client interceptors.
func (c *StageClient) Interceptors() []Interceptor {
	return c.inters.Stage
}

func (c *StageClient) mutate(ctx context.Context, m *StageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stage mutation op: %q", m.Op())
	}
}

// TimelineEventClient is a client for the TimelineEvent schema.
type TimelineEventClient struct {
	config
}

// NewTimelineEventClient returns a client for the TimelineEvent from the given config.
func NewTimelineEventClient(c config) *TimelineEventClient {
	return &TimelineEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timelineevent.Hooks(f(g(h())))`.
func (c *TimelineEventClient) Use(hooks ...Hook) {
	c.hooks.TimelineEvent = append(c.hooks.TimelineEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timelineevent.Intercept(f(g(h())))`.
func (c *TimelineEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimelineEvent = append(c.inters.TimelineEvent, interceptors...)
}

// Create returns a builder for creating a TimelineEvent entity.
func (c *TimelineEventClient) Create() *TimelineEventCreate {
	mutation := newTimelineEventMutation(c.config, OpCreate)
	return &TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimelineEvent entities.
func (c *TimelineEventClient) CreateBulk(builders ...*TimelineEventCreate) *TimelineEventCreateBulk {
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimelineEventClient) MapCreateBulk(slice any, setFunc func(*TimelineEventCreate, int)) *TimelineEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimelineEventCreateBulk{err: fmt.Errorf("calling to TimelineEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimelineEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimelineEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimelineEvent.
func (c *TimelineEventClient) Update() *TimelineEventUpdate {
	mutation := newTimelineEventMutation(c.config, OpUpdate)
	return &TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimelineEventClient) UpdateOne(_m *TimelineEvent) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEvent(_m))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimelineEventClient) UpdateOneID(id string) *TimelineEventUpdateOne {
	mutation := newTimelineEventMutation(c.config, OpUpdateOne, withTimelineEventID(id))
	return &TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimelineEvent.
func (c *TimelineEventClient) Delete() *TimelineEventDelete {
	mutation := newTimelineEventMutation(c.config, OpDelete)
	return &TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimelineEventClient) DeleteOne(_m *TimelineEvent) *TimelineEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimelineEventClient) DeleteOneID(id string) *TimelineEventDeleteOne {
	builder := c.Delete().Where(timelineevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimelineEventDeleteOne{builder}
}

// Query returns a query builder for TimelineEvent.
func (c *TimelineEventClient) Query() *TimelineEventQuery {
	return &TimelineEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimelineEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TimelineEvent entity by its id.
func (c *TimelineEventClient) Get(ctx context.Context, id string) (*TimelineEvent, error) {
	return c.Query().Where(timelineevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimelineEventClient) GetX(ctx context.Context, id string) *TimelineEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a TimelineEvent.
func (c *TimelineEventClient) QuerySession(_m *TimelineEvent) *AlertSessionQuery {
	query := (&AlertSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.SessionTable, timelineevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStage queries the stage edge of a TimelineEvent.
func (c *TimelineEventClient) QueryStage(_m *TimelineEvent) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.StageTable, timelineevent.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecution queries the agent_execution edge of a TimelineEvent.
func (c *TimelineEventClient) QueryAgentExecution(_m *TimelineEvent) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.AgentExecutionTable, timelineevent.AgentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParentExecution queries the parent_execution edge of a TimelineEvent.
func (c *TimelineEventClient) QueryParentExecution(_m *TimelineEvent) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.ParentExecutionTable, timelineevent.ParentExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmInteraction queries the llm_interaction edge of a TimelineEvent.
func (c *TimelineEventClient) QueryLlmInteraction(_m *TimelineEvent) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.LlmInteractionTable, timelineevent.LlmInteractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMcpInteraction queries the mcp_interaction edge of a TimelineEvent.
func (c *TimelineEventClient) QueryMcpInteraction(_m *TimelineEvent) *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, id),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.McpInteractionTable, timelineevent.McpInteractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TimelineEventClient) Hooks() []Hook {
	return c.hooks.TimelineEvent
}

// Interceptors returns the client interceptors.
func (c *TimelineEventClient) Interceptors() []Interceptor {
	return c.inters.TimelineEvent
}

func (c *TimelineEventClient) mutate(ctx context.Context, m *TimelineEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimelineEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimelineEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimelineEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimelineEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimelineEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentExecution, AlertSession, Chat, ChatUserMessage, Event, LLMInteraction,
		MCPInteraction, Message, SessionScore, Stage, TimelineEvent []ent.Hook
	}
	inters struct {
		AgentExecution, AlertSession, Chat, ChatUserMessage, Event, LLMInteraction,
		MCPInteraction, Message, SessionScore, Stage, TimelineEvent []ent.Interceptor
	}
)
