// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/voxroute/voxroute/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/callevent"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/tenant"
	"github.com/voxroute/voxroute/ent/trunk"
	"github.com/voxroute/voxroute/ent/voiceagent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentGroup is the client for interacting with the AgentGroup builders.
	AgentGroup *AgentGroupClient
	// CallEvent is the client for interacting with the CallEvent builders.
	CallEvent *CallEventClient
	// CallRecord is the client for interacting with the CallRecord builders.
	CallRecord *CallRecordClient
	// CallSession is the client for interacting with the CallSession builders.
	CallSession *CallSessionClient
	// GroupMember is the client for interacting with the GroupMember builders.
	GroupMember *GroupMemberClient
	// InboundRule is the client for interacting with the InboundRule builders.
	InboundRule *InboundRuleClient
	// OutboundRule is the client for interacting with the OutboundRule builders.
	OutboundRule *OutboundRuleClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// Trunk is the client for interacting with the Trunk builders.
	Trunk *TrunkClient
	// VoiceAgent is the client for interacting with the VoiceAgent builders.
	VoiceAgent *VoiceAgentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentGroup = NewAgentGroupClient(c.config)
	c.CallEvent = NewCallEventClient(c.config)
	c.CallRecord = NewCallRecordClient(c.config)
	c.CallSession = NewCallSessionClient(c.config)
	c.GroupMember = NewGroupMemberClient(c.config)
	c.InboundRule = NewInboundRuleClient(c.config)
	c.OutboundRule = NewOutboundRuleClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.Trunk = NewTrunkClient(c.config)
	c.VoiceAgent = NewVoiceAgentClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		AgentGroup:   NewAgentGroupClient(cfg),
		CallEvent:    NewCallEventClient(cfg),
		CallRecord:   NewCallRecordClient(cfg),
		CallSession:  NewCallSessionClient(cfg),
		GroupMember:  NewGroupMemberClient(cfg),
		InboundRule:  NewInboundRuleClient(cfg),
		OutboundRule: NewOutboundRuleClient(cfg),
		Tenant:       NewTenantClient(cfg),
		Trunk:        NewTrunkClient(cfg),
		VoiceAgent:   NewVoiceAgentClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		AgentGroup:   NewAgentGroupClient(cfg),
		CallEvent:    NewCallEventClient(cfg),
		CallRecord:   NewCallRecordClient(cfg),
		CallSession:  NewCallSessionClient(cfg),
		GroupMember:  NewGroupMemberClient(cfg),
		InboundRule:  NewInboundRuleClient(cfg),
		OutboundRule: NewOutboundRuleClient(cfg),
		Tenant:       NewTenantClient(cfg),
		Trunk:        NewTrunkClient(cfg),
		VoiceAgent:   NewVoiceAgentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentGroup.
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
		c.AgentGroup, c.CallEvent, c.CallRecord, c.CallSession, c.GroupMember,
		c.InboundRule, c.OutboundRule, c.Tenant, c.Trunk, c.VoiceAgent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentGroup, c.CallEvent, c.CallRecord, c.CallSession, c.GroupMember,
		c.InboundRule, c.OutboundRule, c.Tenant, c.Trunk, c.VoiceAgent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentGroupMutation:
		return c.AgentGroup.mutate(ctx, m)
	case *CallEventMutation:
		return c.CallEvent.mutate(ctx, m)
	case *CallRecordMutation:
		return c.CallRecord.mutate(ctx, m)
	case *CallSessionMutation:
		return c.CallSession.mutate(ctx, m)
	case *GroupMemberMutation:
		return c.GroupMember.mutate(ctx, m)
	case *InboundRuleMutation:
		return c.InboundRule.mutate(ctx, m)
	case *OutboundRuleMutation:
		return c.OutboundRule.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *TrunkMutation:
		return c.Trunk.mutate(ctx, m)
	case *VoiceAgentMutation:
		return c.VoiceAgent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentGroupClient is a client for the AgentGroup schema.
type AgentGroupClient struct {
	config
}

// NewAgentGroupClient returns a client for the AgentGroup from the given config.
func NewAgentGroupClient(c config) *AgentGroupClient {
	return &AgentGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentgroup.Hooks(f(g(h())))`.
func (c *AgentGroupClient) Use(hooks ...Hook) {
	c.hooks.AgentGroup = append(c.hooks.AgentGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentgroup.Intercept(f(g(h())))`.
func (c *AgentGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentGroup = append(c.inters.AgentGroup, interceptors...)
}

// Create returns a builder for creating a AgentGroup entity.
func (c *AgentGroupClient) Create() *AgentGroupCreate {
	mutation := newAgentGroupMutation(c.config, OpCreate)
	return &AgentGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentGroup entities.
func (c *AgentGroupClient) CreateBulk(builders ...*AgentGroupCreate) *AgentGroupCreateBulk {
	return &AgentGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentGroupClient) MapCreateBulk(slice any, setFunc func(*AgentGroupCreate, int)) *AgentGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentGroupCreateBulk{err: fmt.Errorf("calling to AgentGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentGroup.
func (c *AgentGroupClient) Update() *AgentGroupUpdate {
	mutation := newAgentGroupMutation(c.config, OpUpdate)
	return &AgentGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentGroupClient) UpdateOne(_m *AgentGroup) *AgentGroupUpdateOne {
	mutation := newAgentGroupMutation(c.config, OpUpdateOne, withAgentGroup(_m))
	return &AgentGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentGroupClient) UpdateOneID(id string) *AgentGroupUpdateOne {
	mutation := newAgentGroupMutation(c.config, OpUpdateOne, withAgentGroupID(id))
	return &AgentGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentGroup.
func (c *AgentGroupClient) Delete() *AgentGroupDelete {
	mutation := newAgentGroupMutation(c.config, OpDelete)
	return &AgentGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentGroupClient) DeleteOne(_m *AgentGroup) *AgentGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentGroupClient) DeleteOneID(id string) *AgentGroupDeleteOne {
	builder := c.Delete().Where(agentgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentGroupDeleteOne{builder}
}

// Query returns a query builder for AgentGroup.
func (c *AgentGroupClient) Query() *AgentGroupQuery {
	return &AgentGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentGroup entity by its id.
func (c *AgentGroupClient) Get(ctx context.Context, id string) (*AgentGroup, error) {
	return c.Query().Where(agentgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentGroupClient) GetX(ctx context.Context, id string) *AgentGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a AgentGroup.
func (c *AgentGroupClient) QueryTenant(_m *AgentGroup) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentgroup.Table, agentgroup.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentgroup.TenantTable, agentgroup.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMembers queries the members edge of a AgentGroup.
func (c *AgentGroupClient) QueryMembers(_m *AgentGroup) *GroupMemberQuery {
	query := (&GroupMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentgroup.Table, agentgroup.FieldID, id),
			sqlgraph.To(groupmember.Table, groupmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentgroup.MembersTable, agentgroup.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentGroupClient) Hooks() []Hook {
	return c.hooks.AgentGroup
}

// Interceptors returns the client interceptors.
func (c *AgentGroupClient) Interceptors() []Interceptor {
	return c.inters.AgentGroup
}

func (c *AgentGroupClient) mutate(ctx context.Context, m *AgentGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentGroup mutation op: %q", m.Op())
	}
}

// CallEventClient is a client for the CallEvent schema.
type CallEventClient struct {
	config
}

// NewCallEventClient returns a client for the CallEvent from the given config.
func NewCallEventClient(c config) *CallEventClient {
	return &CallEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `callevent.Hooks(f(g(h())))`.
func (c *CallEventClient) Use(hooks ...Hook) {
	c.hooks.CallEvent = append(c.hooks.CallEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `callevent.Intercept(f(g(h())))`.
func (c *CallEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallEvent = append(c.inters.CallEvent, interceptors...)
}

// Create returns a builder for creating a CallEvent entity.
func (c *CallEventClient) Create() *CallEventCreate {
	mutation := newCallEventMutation(c.config, OpCreate)
	return &CallEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallEvent entities.
func (c *CallEventClient) CreateBulk(builders ...*CallEventCreate) *CallEventCreateBulk {
	return &CallEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallEventClient) MapCreateBulk(slice any, setFunc func(*CallEventCreate, int)) *CallEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallEventCreateBulk{err: fmt.Errorf("calling to CallEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallEvent.
func (c *CallEventClient) Update() *CallEventUpdate {
	mutation := newCallEventMutation(c.config, OpUpdate)
	return &CallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallEventClient) UpdateOne(_m *CallEvent) *CallEventUpdateOne {
	mutation := newCallEventMutation(c.config, OpUpdateOne, withCallEvent(_m))
	return &CallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallEventClient) UpdateOneID(id string) *CallEventUpdateOne {
	mutation := newCallEventMutation(c.config, OpUpdateOne, withCallEventID(id))
	return &CallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallEvent.
func (c *CallEventClient) Delete() *CallEventDelete {
	mutation := newCallEventMutation(c.config, OpDelete)
	return &CallEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallEventClient) DeleteOne(_m *CallEvent) *CallEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallEventClient) DeleteOneID(id string) *CallEventDeleteOne {
	builder := c.Delete().Where(callevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallEventDeleteOne{builder}
}

// Query returns a query builder for CallEvent.
func (c *CallEventClient) Query() *CallEventQuery {
	return &CallEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CallEvent entity by its id.
func (c *CallEventClient) Get(ctx context.Context, id string) (*CallEvent, error) {
	return c.Query().Where(callevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallEventClient) GetX(ctx context.Context, id string) *CallEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a CallEvent.
func (c *CallEventClient) QuerySession(_m *CallEvent) *CallSessionQuery {
	query := (&CallSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callevent.Table, callevent.FieldID, id),
			sqlgraph.To(callsession.Table, callsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callevent.SessionTable, callevent.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CallEventClient) Hooks() []Hook {
	return c.hooks.CallEvent
}

// Interceptors returns the client interceptors.
func (c *CallEventClient) Interceptors() []Interceptor {
	return c.inters.CallEvent
}

func (c *CallEventClient) mutate(ctx context.Context, m *CallEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallEvent mutation op: %q", m.Op())
	}
}

// CallRecordClient is a client for the CallRecord schema.
type CallRecordClient struct {
	config
}

// NewCallRecordClient returns a client for the CallRecord from the given config.
func NewCallRecordClient(c config) *CallRecordClient {
	return &CallRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `callrecord.Hooks(f(g(h())))`.
func (c *CallRecordClient) Use(hooks ...Hook) {
	c.hooks.CallRecord = append(c.hooks.CallRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `callrecord.Intercept(f(g(h())))`.
func (c *CallRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallRecord = append(c.inters.CallRecord, interceptors...)
}

// Create returns a builder for creating a CallRecord entity.
func (c *CallRecordClient) Create() *CallRecordCreate {
	mutation := newCallRecordMutation(c.config, OpCreate)
	return &CallRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallRecord entities.
func (c *CallRecordClient) CreateBulk(builders ...*CallRecordCreate) *CallRecordCreateBulk {
	return &CallRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallRecordClient) MapCreateBulk(slice any, setFunc func(*CallRecordCreate, int)) *CallRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallRecordCreateBulk{err: fmt.Errorf("calling to CallRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallRecord.
func (c *CallRecordClient) Update() *CallRecordUpdate {
	mutation := newCallRecordMutation(c.config, OpUpdate)
	return &CallRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallRecordClient) UpdateOne(_m *CallRecord) *CallRecordUpdateOne {
	mutation := newCallRecordMutation(c.config, OpUpdateOne, withCallRecord(_m))
	return &CallRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallRecordClient) UpdateOneID(id string) *CallRecordUpdateOne {
	mutation := newCallRecordMutation(c.config, OpUpdateOne, withCallRecordID(id))
	return &CallRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallRecord.
func (c *CallRecordClient) Delete() *CallRecordDelete {
	mutation := newCallRecordMutation(c.config, OpDelete)
	return &CallRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallRecordClient) DeleteOne(_m *CallRecord) *CallRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallRecordClient) DeleteOneID(id string) *CallRecordDeleteOne {
	builder := c.Delete().Where(callrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallRecordDeleteOne{builder}
}

// Query returns a query builder for CallRecord.
func (c *CallRecordClient) Query() *CallRecordQuery {
	return &CallRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CallRecord entity by its id.
func (c *CallRecordClient) Get(ctx context.Context, id string) (*CallRecord, error) {
	return c.Query().Where(callrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallRecordClient) GetX(ctx context.Context, id string) *CallRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a CallRecord.
func (c *CallRecordClient) QueryTenant(_m *CallRecord) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callrecord.TenantTable, callrecord.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySession queries the session edge of a CallRecord.
func (c *CallRecordClient) QuerySession(_m *CallRecord) *CallSessionQuery {
	query := (&CallSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callrecord.Table, callrecord.FieldID, id),
			sqlgraph.To(callsession.Table, callsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, callrecord.SessionTable, callrecord.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CallRecordClient) Hooks() []Hook {
	return c.hooks.CallRecord
}

// Interceptors returns the client interceptors.
func (c *CallRecordClient) Interceptors() []Interceptor {
	return c.inters.CallRecord
}

func (c *CallRecordClient) mutate(ctx context.Context, m *CallRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallRecord mutation op: %q", m.Op())
	}
}

// CallSessionClient is a client for the CallSession schema.
type CallSessionClient struct {
	config
}

// NewCallSessionClient returns a client for the CallSession from the given config.
func NewCallSessionClient(c config) *CallSessionClient {
	return &CallSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `callsession.Hooks(f(g(h())))`.
func (c *CallSessionClient) Use(hooks ...Hook) {
	c.hooks.CallSession = append(c.hooks.CallSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `callsession.Intercept(f(g(h())))`.
func (c *CallSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CallSession = append(c.inters.CallSession, interceptors...)
}

// Create returns a builder for creating a CallSession entity.
func (c *CallSessionClient) Create() *CallSessionCreate {
	mutation := newCallSessionMutation(c.config, OpCreate)
	return &CallSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CallSession entities.
func (c *CallSessionClient) CreateBulk(builders ...*CallSessionCreate) *CallSessionCreateBulk {
	return &CallSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CallSessionClient) MapCreateBulk(slice any, setFunc func(*CallSessionCreate, int)) *CallSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CallSessionCreateBulk{err: fmt.Errorf("calling to CallSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CallSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CallSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CallSession.
func (c *CallSessionClient) Update() *CallSessionUpdate {
	mutation := newCallSessionMutation(c.config, OpUpdate)
	return &CallSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CallSessionClient) UpdateOne(_m *CallSession) *CallSessionUpdateOne {
	mutation := newCallSessionMutation(c.config, OpUpdateOne, withCallSession(_m))
	return &CallSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CallSessionClient) UpdateOneID(id string) *CallSessionUpdateOne {
	mutation := newCallSessionMutation(c.config, OpUpdateOne, withCallSessionID(id))
	return &CallSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CallSession.
func (c *CallSessionClient) Delete() *CallSessionDelete {
	mutation := newCallSessionMutation(c.config, OpDelete)
	return &CallSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CallSessionClient) DeleteOne(_m *CallSession) *CallSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CallSessionClient) DeleteOneID(id string) *CallSessionDeleteOne {
	builder := c.Delete().Where(callsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CallSessionDeleteOne{builder}
}

// Query returns a query builder for CallSession.
func (c *CallSessionClient) Query() *CallSessionQuery {
	return &CallSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCallSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CallSession entity by its id.
func (c *CallSessionClient) Get(ctx context.Context, id string) (*CallSession, error) {
	return c.Query().Where(callsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CallSessionClient) GetX(ctx context.Context, id string) *CallSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a CallSession.
func (c *CallSessionClient) QueryTenant(_m *CallSession) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callsession.Table, callsession.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, callsession.TenantTable, callsession.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a CallSession.
func (c *CallSessionClient) QueryEvents(_m *CallSession) *CallEventQuery {
	query := (&CallEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callsession.Table, callsession.FieldID, id),
			sqlgraph.To(callevent.Table, callevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, callsession.EventsTable, callsession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecord queries the record edge of a CallSession.
func (c *CallSessionClient) QueryRecord(_m *CallSession) *CallRecordQuery {
	query := (&CallRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(callsession.Table, callsession.FieldID, id),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, callsession.RecordTable, callsession.RecordColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CallSessionClient) Hooks() []Hook {
	return c.hooks.CallSession
}

// Interceptors returns the client interceptors.
func (c *CallSessionClient) Interceptors() []Interceptor {
	return c.inters.CallSession
}

func (c *CallSessionClient) mutate(ctx context.Context, m *CallSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CallSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CallSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CallSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CallSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CallSession mutation op: %q", m.Op())
	}
}

// GroupMemberClient is a client for the GroupMember schema.
type GroupMemberClient struct {
	config
}

// NewGroupMemberClient returns a client for the GroupMember from the given config.
func NewGroupMemberClient(c config) *GroupMemberClient {
	return &GroupMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupmember.Hooks(f(g(h())))`.
func (c *GroupMemberClient) Use(hooks ...Hook) {
	c.hooks.GroupMember = append(c.hooks.GroupMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupmember.Intercept(f(g(h())))`.
func (c *GroupMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupMember = append(c.inters.GroupMember, interceptors...)
}

// Create returns a builder for creating a GroupMember entity.
func (c *GroupMemberClient) Create() *GroupMemberCreate {
	mutation := newGroupMemberMutation(c.config, OpCreate)
	return &GroupMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupMember entities.
func (c *GroupMemberClient) CreateBulk(builders ...*GroupMemberCreate) *GroupMemberCreateBulk {
	return &GroupMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupMemberClient) MapCreateBulk(slice any, setFunc func(*GroupMemberCreate, int)) *GroupMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupMemberCreateBulk{err: fmt.Errorf("calling to GroupMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupMember.
func (c *GroupMemberClient) Update() *GroupMemberUpdate {
	mutation := newGroupMemberMutation(c.config, OpUpdate)
	return &GroupMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupMemberClient) UpdateOne(_m *GroupMember) *GroupMemberUpdateOne {
	mutation := newGroupMemberMutation(c.config, OpUpdateOne, withGroupMember(_m))
	return &GroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupMemberClient) UpdateOneID(id string) *GroupMemberUpdateOne {
	mutation := newGroupMemberMutation(c.config, OpUpdateOne, withGroupMemberID(id))
	return &GroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupMember.
func (c *GroupMemberClient) Delete() *GroupMemberDelete {
	mutation := newGroupMemberMutation(c.config, OpDelete)
	return &GroupMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupMemberClient) DeleteOne(_m *GroupMember) *GroupMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupMemberClient) DeleteOneID(id string) *GroupMemberDeleteOne {
	builder := c.Delete().Where(groupmember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupMemberDeleteOne{builder}
}

// Query returns a query builder for GroupMember.
func (c *GroupMemberClient) Query() *GroupMemberQuery {
	return &GroupMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupMember},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupMember entity by its id.
func (c *GroupMemberClient) Get(ctx context.Context, id string) (*GroupMember, error) {
	return c.Query().Where(groupmember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupMemberClient) GetX(ctx context.Context, id string) *GroupMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a GroupMember.
func (c *GroupMemberClient) QueryGroup(_m *GroupMember) *AgentGroupQuery {
	query := (&AgentGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(groupmember.Table, groupmember.FieldID, id),
			sqlgraph.To(agentgroup.Table, agentgroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, groupmember.GroupTable, groupmember.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a GroupMember.
func (c *GroupMemberClient) QueryAgent(_m *GroupMember) *VoiceAgentQuery {
	query := (&VoiceAgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(groupmember.Table, groupmember.FieldID, id),
			sqlgraph.To(voiceagent.Table, voiceagent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, groupmember.AgentTable, groupmember.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupMemberClient) Hooks() []Hook {
	return c.hooks.GroupMember
}

// Interceptors returns the client interceptors.
func (c *GroupMemberClient) Interceptors() []Interceptor {
	return c.inters.GroupMember
}

func (c *GroupMemberClient) mutate(ctx context.Context, m *GroupMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupMember mutation op: %q", m.Op())
	}
}

// InboundRuleClient is a client for the InboundRule schema.
type InboundRuleClient struct {
	config
}

// NewInboundRuleClient returns a client for the InboundRule from the given config.
func NewInboundRuleClient(c config) *InboundRuleClient {
	return &InboundRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboundrule.Hooks(f(g(h())))`.
func (c *InboundRuleClient) Use(hooks ...Hook) {
	c.hooks.InboundRule = append(c.hooks.InboundRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboundrule.Intercept(f(g(h())))`.
func (c *InboundRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboundRule = append(c.inters.InboundRule, interceptors...)
}

// Create returns a builder for creating a InboundRule entity.
func (c *InboundRuleClient) Create() *InboundRuleCreate {
	mutation := newInboundRuleMutation(c.config, OpCreate)
	return &InboundRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboundRule entities.
func (c *InboundRuleClient) CreateBulk(builders ...*InboundRuleCreate) *InboundRuleCreateBulk {
	return &InboundRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboundRuleClient) MapCreateBulk(slice any, setFunc func(*InboundRuleCreate, int)) *InboundRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboundRuleCreateBulk{err: fmt.Errorf("calling to InboundRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboundRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboundRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboundRule.
func (c *InboundRuleClient) Update() *InboundRuleUpdate {
	mutation := newInboundRuleMutation(c.config, OpUpdate)
	return &InboundRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboundRuleClient) UpdateOne(_m *InboundRule) *InboundRuleUpdateOne {
	mutation := newInboundRuleMutation(c.config, OpUpdateOne, withInboundRule(_m))
	return &InboundRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboundRuleClient) UpdateOneID(id string) *InboundRuleUpdateOne {
	mutation := newInboundRuleMutation(c.config, OpUpdateOne, withInboundRuleID(id))
	return &InboundRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboundRule.
func (c *InboundRuleClient) Delete() *InboundRuleDelete {
	mutation := newInboundRuleMutation(c.config, OpDelete)
	return &InboundRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboundRuleClient) DeleteOne(_m *InboundRule) *InboundRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboundRuleClient) DeleteOneID(id string) *InboundRuleDeleteOne {
	builder := c.Delete().Where(inboundrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboundRuleDeleteOne{builder}
}

// Query returns a query builder for InboundRule.
func (c *InboundRuleClient) Query() *InboundRuleQuery {
	return &InboundRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboundRule},
		inters: c.Interceptors(),
	}
}

// Get returns a InboundRule entity by its id.
func (c *InboundRuleClient) Get(ctx context.Context, id string) (*InboundRule, error) {
	return c.Query().Where(inboundrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboundRuleClient) GetX(ctx context.Context, id string) *InboundRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a InboundRule.
func (c *InboundRuleClient) QueryTenant(_m *InboundRule) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(inboundrule.Table, inboundrule.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, inboundrule.TenantTable, inboundrule.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InboundRuleClient) Hooks() []Hook {
	return c.hooks.InboundRule
}

// Interceptors returns the client interceptors.
func (c *InboundRuleClient) Interceptors() []Interceptor {
	return c.inters.InboundRule
}

func (c *InboundRuleClient) mutate(ctx context.Context, m *InboundRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboundRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboundRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboundRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboundRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboundRule mutation op: %q", m.Op())
	}
}

// OutboundRuleClient is a client for the OutboundRule schema.
type OutboundRuleClient struct {
	config
}

// NewOutboundRuleClient returns a client for the OutboundRule from the given config.
func NewOutboundRuleClient(c config) *OutboundRuleClient {
	return &OutboundRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboundrule.Hooks(f(g(h())))`.
func (c *OutboundRuleClient) Use(hooks ...Hook) {
	c.hooks.OutboundRule = append(c.hooks.OutboundRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboundrule.Intercept(f(g(h())))`.
func (c *OutboundRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboundRule = append(c.inters.OutboundRule, interceptors...)
}

// Create returns a builder for creating a OutboundRule entity.
func (c *OutboundRuleClient) Create() *OutboundRuleCreate {
	mutation := newOutboundRuleMutation(c.config, OpCreate)
	return &OutboundRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboundRule entities.
func (c *OutboundRuleClient) CreateBulk(builders ...*OutboundRuleCreate) *OutboundRuleCreateBulk {
	return &OutboundRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboundRuleClient) MapCreateBulk(slice any, setFunc func(*OutboundRuleCreate, int)) *OutboundRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboundRuleCreateBulk{err: fmt.Errorf("calling to OutboundRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboundRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboundRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboundRule.
func (c *OutboundRuleClient) Update() *OutboundRuleUpdate {
	mutation := newOutboundRuleMutation(c.config, OpUpdate)
	return &OutboundRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboundRuleClient) UpdateOne(_m *OutboundRule) *OutboundRuleUpdateOne {
	mutation := newOutboundRuleMutation(c.config, OpUpdateOne, withOutboundRule(_m))
	return &OutboundRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboundRuleClient) UpdateOneID(id string) *OutboundRuleUpdateOne {
	mutation := newOutboundRuleMutation(c.config, OpUpdateOne, withOutboundRuleID(id))
	return &OutboundRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboundRule.
func (c *OutboundRuleClient) Delete() *OutboundRuleDelete {
	mutation := newOutboundRuleMutation(c.config, OpDelete)
	return &OutboundRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboundRuleClient) DeleteOne(_m *OutboundRule) *OutboundRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboundRuleClient) DeleteOneID(id string) *OutboundRuleDeleteOne {
	builder := c.Delete().Where(outboundrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboundRuleDeleteOne{builder}
}

// Query returns a query builder for OutboundRule.
func (c *OutboundRuleClient) Query() *OutboundRuleQuery {
	return &OutboundRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboundRule},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboundRule entity by its id.
func (c *OutboundRuleClient) Get(ctx context.Context, id string) (*OutboundRule, error) {
	return c.Query().Where(outboundrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboundRuleClient) GetX(ctx context.Context, id string) *OutboundRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a OutboundRule.
func (c *OutboundRuleClient) QueryTenant(_m *OutboundRule) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outboundrule.Table, outboundrule.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outboundrule.TenantTable, outboundrule.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutboundRuleClient) Hooks() []Hook {
	return c.hooks.OutboundRule
}

// Interceptors returns the client interceptors.
func (c *OutboundRuleClient) Interceptors() []Interceptor {
	return c.inters.OutboundRule
}

func (c *OutboundRuleClient) mutate(ctx context.Context, m *OutboundRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboundRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboundRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboundRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboundRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutboundRule mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id string) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id string) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id string) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id string) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgents queries the agents edge of a Tenant.
func (c *TenantClient) QueryAgents(_m *Tenant) *VoiceAgentQuery {
	query := (&VoiceAgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(voiceagent.Table, voiceagent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.AgentsTable, tenant.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroups queries the groups edge of a Tenant.
func (c *TenantClient) QueryGroups(_m *Tenant) *AgentGroupQuery {
	query := (&AgentGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(agentgroup.Table, agentgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.GroupsTable, tenant.GroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInboundRules queries the inbound_rules edge of a Tenant.
func (c *TenantClient) QueryInboundRules(_m *Tenant) *InboundRuleQuery {
	query := (&InboundRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(inboundrule.Table, inboundrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.InboundRulesTable, tenant.InboundRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutboundRules queries the outbound_rules edge of a Tenant.
func (c *TenantClient) QueryOutboundRules(_m *Tenant) *OutboundRuleQuery {
	query := (&OutboundRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(outboundrule.Table, outboundrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.OutboundRulesTable, tenant.OutboundRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrunks queries the trunks edge of a Tenant.
func (c *TenantClient) QueryTrunks(_m *Tenant) *TrunkQuery {
	query := (&TrunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(trunk.Table, trunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.TrunksTable, tenant.TrunksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Tenant.
func (c *TenantClient) QuerySessions(_m *Tenant) *CallSessionQuery {
	query := (&CallSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(callsession.Table, callsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.SessionsTable, tenant.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecords queries the records edge of a Tenant.
func (c *TenantClient) QueryRecords(_m *Tenant) *CallRecordQuery {
	query := (&CallRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(callrecord.Table, callrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.RecordsTable, tenant.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// TrunkClient is a client for the Trunk schema.
type TrunkClient struct {
	config
}

// NewTrunkClient returns a client for the Trunk from the given config.
func NewTrunkClient(c config) *TrunkClient {
	return &TrunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trunk.Hooks(f(g(h())))`.
func (c *TrunkClient) Use(hooks ...Hook) {
	c.hooks.Trunk = append(c.hooks.Trunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trunk.Intercept(f(g(h())))`.
func (c *TrunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Trunk = append(c.inters.Trunk, interceptors...)
}

// Create returns a builder for creating a Trunk entity.
func (c *TrunkClient) Create() *TrunkCreate {
	mutation := newTrunkMutation(c.config, OpCreate)
	return &TrunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Trunk entities.
func (c *TrunkClient) CreateBulk(builders ...*TrunkCreate) *TrunkCreateBulk {
	return &TrunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrunkClient) MapCreateBulk(slice any, setFunc func(*TrunkCreate, int)) *TrunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrunkCreateBulk{err: fmt.Errorf("calling to TrunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Trunk.
func (c *TrunkClient) Update() *TrunkUpdate {
	mutation := newTrunkMutation(c.config, OpUpdate)
	return &TrunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrunkClient) UpdateOne(_m *Trunk) *TrunkUpdateOne {
	mutation := newTrunkMutation(c.config, OpUpdateOne, withTrunk(_m))
	return &TrunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrunkClient) UpdateOneID(id string) *TrunkUpdateOne {
	mutation := newTrunkMutation(c.config, OpUpdateOne, withTrunkID(id))
	return &TrunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Trunk.
func (c *TrunkClient) Delete() *TrunkDelete {
	mutation := newTrunkMutation(c.config, OpDelete)
	return &TrunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrunkClient) DeleteOne(_m *Trunk) *TrunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrunkClient) DeleteOneID(id string) *TrunkDeleteOne {
	builder := c.Delete().Where(trunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrunkDeleteOne{builder}
}

// Query returns a query builder for Trunk.
func (c *TrunkClient) Query() *TrunkQuery {
	return &TrunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrunk},
		inters: c.Interceptors(),
	}
}

// Get returns a Trunk entity by its id.
func (c *TrunkClient) Get(ctx context.Context, id string) (*Trunk, error) {
	return c.Query().Where(trunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrunkClient) GetX(ctx context.Context, id string) *Trunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Trunk.
func (c *TrunkClient) QueryTenant(_m *Trunk) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trunk.Table, trunk.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trunk.TenantTable, trunk.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrunkClient) Hooks() []Hook {
	return c.hooks.Trunk
}

// Interceptors returns the client interceptors.
func (c *TrunkClient) Interceptors() []Interceptor {
	return c.inters.Trunk
}

func (c *TrunkClient) mutate(ctx context.Context, m *TrunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Trunk mutation op: %q", m.Op())
	}
}

// VoiceAgentClient is a client for the VoiceAgent schema.
type VoiceAgentClient struct {
	config
}

// NewVoiceAgentClient returns a client for the VoiceAgent from the given config.
func NewVoiceAgentClient(c config) *VoiceAgentClient {
	return &VoiceAgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `voiceagent.Hooks(f(g(h())))`.
func (c *VoiceAgentClient) Use(hooks ...Hook) {
	c.hooks.VoiceAgent = append(c.hooks.VoiceAgent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `voiceagent.Intercept(f(g(h())))`.
func (c *VoiceAgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.VoiceAgent = append(c.inters.VoiceAgent, interceptors...)
}

// Create returns a builder for creating a VoiceAgent entity.
func (c *VoiceAgentClient) Create() *VoiceAgentCreate {
	mutation := newVoiceAgentMutation(c.config, OpCreate)
	return &VoiceAgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VoiceAgent entities.
func (c *VoiceAgentClient) CreateBulk(builders ...*VoiceAgentCreate) *VoiceAgentCreateBulk {
	return &VoiceAgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoiceAgentClient) MapCreateBulk(slice any, setFunc func(*VoiceAgentCreate, int)) *VoiceAgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoiceAgentCreateBulk{err: fmt.Errorf("calling to VoiceAgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoiceAgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoiceAgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VoiceAgent.
func (c *VoiceAgentClient) Update() *VoiceAgentUpdate {
	mutation := newVoiceAgentMutation(c.config, OpUpdate)
	return &VoiceAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoiceAgentClient) UpdateOne(_m *VoiceAgent) *VoiceAgentUpdateOne {
	mutation := newVoiceAgentMutation(c.config, OpUpdateOne, withVoiceAgent(_m))
	return &VoiceAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoiceAgentClient) UpdateOneID(id string) *VoiceAgentUpdateOne {
	mutation := newVoiceAgentMutation(c.config, OpUpdateOne, withVoiceAgentID(id))
	return &VoiceAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VoiceAgent.
func (c *VoiceAgentClient) Delete() *VoiceAgentDelete {
	mutation := newVoiceAgentMutation(c.config, OpDelete)
	return &VoiceAgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoiceAgentClient) DeleteOne(_m *VoiceAgent) *VoiceAgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoiceAgentClient) DeleteOneID(id string) *VoiceAgentDeleteOne {
	builder := c.Delete().Where(voiceagent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoiceAgentDeleteOne{builder}
}

// Query returns a query builder for VoiceAgent.
func (c *VoiceAgentClient) Query() *VoiceAgentQuery {
	return &VoiceAgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVoiceAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a VoiceAgent entity by its id.
func (c *VoiceAgentClient) Get(ctx context.Context, id string) (*VoiceAgent, error) {
	return c.Query().Where(voiceagent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoiceAgentClient) GetX(ctx context.Context, id string) *VoiceAgent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a VoiceAgent.
func (c *VoiceAgentClient) QueryTenant(_m *VoiceAgent) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voiceagent.Table, voiceagent.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voiceagent.TenantTable, voiceagent.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemberships queries the memberships edge of a VoiceAgent.
func (c *VoiceAgentClient) QueryMemberships(_m *VoiceAgent) *GroupMemberQuery {
	query := (&GroupMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voiceagent.Table, voiceagent.FieldID, id),
			sqlgraph.To(groupmember.Table, groupmember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, voiceagent.MembershipsTable, voiceagent.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VoiceAgentClient) Hooks() []Hook {
	return c.hooks.VoiceAgent
}

// Interceptors returns the client interceptors.
func (c *VoiceAgentClient) Interceptors() []Interceptor {
	return c.inters.VoiceAgent
}

func (c *VoiceAgentClient) mutate(ctx context.Context, m *VoiceAgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoiceAgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoiceAgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoiceAgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoiceAgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VoiceAgent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentGroup, CallEvent, CallRecord, CallSession, GroupMember, InboundRule,
		OutboundRule, Tenant, Trunk, VoiceAgent []ent.Hook
	}
	inters struct {
		AgentGroup, CallEvent, CallRecord, CallSession, GroupMember, InboundRule,
		OutboundRule, Tenant, Trunk, VoiceAgent []ent.Interceptor
	}
)
