// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/callevent"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/predicate"
	"github.com/voxroute/voxroute/ent/tenant"
	"github.com/voxroute/voxroute/ent/trunk"
	"github.com/voxroute/voxroute/ent/voiceagent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentGroup   = "AgentGroup"
	TypeCallEvent    = "CallEvent"
	TypeCallRecord   = "CallRecord"
	TypeCallSession  = "CallSession"
	TypeGroupMember  = "GroupMember"
	TypeInboundRule  = "InboundRule"
	TypeOutboundRule = "OutboundRule"
	TypeTenant       = "Tenant"
	TypeTrunk        = "Trunk"
	TypeVoiceAgent   = "VoiceAgent"
)

// AgentGroupMutation represents an operation that mutates the AgentGroup nodes in the graph.
type AgentGroupMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	strategy          *agentgroup.Strategy
	strategy_settings *map[string]interface{}
	enabled           *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	tenant            *string
	clearedtenant     bool
	members           map[string]struct{}
	removedmembers    map[string]struct{}
	clearedmembers    bool
	done              bool
	oldValue          func(context.Context) (*AgentGroup, error)
	predicates        []predicate.AgentGroup
}

var _ ent.Mutation = (*AgentGroupMutation)(nil)

// agentgroupOption allows management of the mutation configuration using functional options.
type agentgroupOption func(*AgentGroupMutation)

// newAgentGroupMutation creates new mutation for the AgentGroup entity.
func newAgentGroupMutation(c config, op Op, opts ...agentgroupOption) *AgentGroupMutation {
	m := &AgentGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentGroupID sets the ID field of the mutation.
func withAgentGroupID(id string) agentgroupOption {
	return func(m *AgentGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentGroup
		)
		m.oldValue = func(ctx context.Context) (*AgentGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentGroup sets the old AgentGroup of the mutation.
func withAgentGroup(node *AgentGroup) agentgroupOption {
	return func(m *AgentGroupMutation) {
		m.oldValue = func(context.Context) (*AgentGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentGroup entities.
func (m *AgentGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentGroupMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentGroupMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentGroupMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *AgentGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentGroupMutation) ResetName() {
	m.name = nil
}

// SetStrategy sets the "strategy" field.
func (m *AgentGroupMutation) SetStrategy(a agentgroup.Strategy) {
	m.strategy = &a
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *AgentGroupMutation) Strategy() (r agentgroup.Strategy, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldStrategy(ctx context.Context) (v agentgroup.Strategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *AgentGroupMutation) ResetStrategy() {
	m.strategy = nil
}

// SetStrategySettings sets the "strategy_settings" field.
func (m *AgentGroupMutation) SetStrategySettings(value map[string]interface{}) {
	m.strategy_settings = &value
}

// StrategySettings returns the value of the "strategy_settings" field in the mutation.
func (m *AgentGroupMutation) StrategySettings() (r map[string]interface{}, exists bool) {
	v := m.strategy_settings
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategySettings returns the old "strategy_settings" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldStrategySettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategySettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategySettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategySettings: %w", err)
	}
	return oldValue.StrategySettings, nil
}

// ClearStrategySettings clears the value of the "strategy_settings" field.
func (m *AgentGroupMutation) ClearStrategySettings() {
	m.strategy_settings = nil
	m.clearedFields[agentgroup.FieldStrategySettings] = struct{}{}
}

// StrategySettingsCleared returns if the "strategy_settings" field was cleared in this mutation.
func (m *AgentGroupMutation) StrategySettingsCleared() bool {
	_, ok := m.clearedFields[agentgroup.FieldStrategySettings]
	return ok
}

// ResetStrategySettings resets all changes to the "strategy_settings" field.
func (m *AgentGroupMutation) ResetStrategySettings() {
	m.strategy_settings = nil
	delete(m.clearedFields, agentgroup.FieldStrategySettings)
}

// SetEnabled sets the "enabled" field.
func (m *AgentGroupMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AgentGroupMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AgentGroupMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentGroup entity.
// If the AgentGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *AgentGroupMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[agentgroup.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *AgentGroupMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *AgentGroupMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *AgentGroupMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddMemberIDs adds the "members" edge to the GroupMember entity by ids.
func (m *AgentGroupMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the GroupMember entity.
func (m *AgentGroupMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the GroupMember entity was cleared.
func (m *AgentGroupMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the GroupMember entity by IDs.
func (m *AgentGroupMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the GroupMember entity.
func (m *AgentGroupMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *AgentGroupMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *AgentGroupMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the AgentGroupMutation builder.
func (m *AgentGroupMutation) Where(ps ...predicate.AgentGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentGroup).
func (m *AgentGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentGroupMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, agentgroup.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, agentgroup.FieldName)
	}
	if m.strategy != nil {
		fields = append(fields, agentgroup.FieldStrategy)
	}
	if m.strategy_settings != nil {
		fields = append(fields, agentgroup.FieldStrategySettings)
	}
	if m.enabled != nil {
		fields = append(fields, agentgroup.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, agentgroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentgroup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentgroup.FieldTenantID:
		return m.TenantID()
	case agentgroup.FieldName:
		return m.Name()
	case agentgroup.FieldStrategy:
		return m.Strategy()
	case agentgroup.FieldStrategySettings:
		return m.StrategySettings()
	case agentgroup.FieldEnabled:
		return m.Enabled()
	case agentgroup.FieldCreatedAt:
		return m.CreatedAt()
	case agentgroup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentgroup.FieldTenantID:
		return m.OldTenantID(ctx)
	case agentgroup.FieldName:
		return m.OldName(ctx)
	case agentgroup.FieldStrategy:
		return m.OldStrategy(ctx)
	case agentgroup.FieldStrategySettings:
		return m.OldStrategySettings(ctx)
	case agentgroup.FieldEnabled:
		return m.OldEnabled(ctx)
	case agentgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentgroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentgroup.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agentgroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentgroup.FieldStrategy:
		v, ok := value.(agentgroup.Strategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case agentgroup.FieldStrategySettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategySettings(v)
		return nil
	case agentgroup.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case agentgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentgroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentgroup.FieldStrategySettings) {
		fields = append(fields, agentgroup.FieldStrategySettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentGroupMutation) ClearField(name string) error {
	switch name {
	case agentgroup.FieldStrategySettings:
		m.ClearStrategySettings()
		return nil
	}
	return fmt.Errorf("unknown AgentGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentGroupMutation) ResetField(name string) error {
	switch name {
	case agentgroup.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agentgroup.FieldName:
		m.ResetName()
		return nil
	case agentgroup.FieldStrategy:
		m.ResetStrategy()
		return nil
	case agentgroup.FieldStrategySettings:
		m.ResetStrategySettings()
		return nil
	case agentgroup.FieldEnabled:
		m.ResetEnabled()
		return nil
	case agentgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentgroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, agentgroup.EdgeTenant)
	}
	if m.members != nil {
		edges = append(edges, agentgroup.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentgroup.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case agentgroup.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmembers != nil {
		edges = append(edges, agentgroup.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentgroup.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, agentgroup.EdgeTenant)
	}
	if m.clearedmembers {
		edges = append(edges, agentgroup.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case agentgroup.EdgeTenant:
		return m.clearedtenant
	case agentgroup.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentGroupMutation) ClearEdge(name string) error {
	switch name {
	case agentgroup.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown AgentGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentGroupMutation) ResetEdge(name string) error {
	switch name {
	case agentgroup.EdgeTenant:
		m.ResetTenant()
		return nil
	case agentgroup.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown AgentGroup edge %s", name)
}

// CallEventMutation represents an operation that mutates the CallEvent nodes in the graph.
type CallEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	event_kind     *string
	payload        *map[string]interface{}
	headers        *map[string]string
	outcome        *string
	occurred_at    *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*CallEvent, error)
	predicates     []predicate.CallEvent
}

var _ ent.Mutation = (*CallEventMutation)(nil)

// calleventOption allows management of the mutation configuration using functional options.
type calleventOption func(*CallEventMutation)

// newCallEventMutation creates new mutation for the CallEvent entity.
func newCallEventMutation(c config, op Op, opts ...calleventOption) *CallEventMutation {
	m := &CallEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCallEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallEventID sets the ID field of the mutation.
func withCallEventID(id string) calleventOption {
	return func(m *CallEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CallEvent
		)
		m.oldValue = func(ctx context.Context) (*CallEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallEvent sets the old CallEvent of the mutation.
func withCallEvent(node *CallEvent) calleventOption {
	return func(m *CallEventMutation) {
		m.oldValue = func(context.Context) (*CallEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CallEvent entities.
func (m *CallEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CallEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CallEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CallEvent entity.
// If the CallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CallEventMutation) ResetSessionID() {
	m.session = nil
}

// SetEventKind sets the "event_kind" field.
func (m *CallEventMutation) SetEventKind(s string) {
	m.event_kind = &s
}

// EventKind returns the value of the "event_kind" field in the mutation.
func (m *CallEventMutation) EventKind() (r string, exists bool) {
	v := m.event_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKind returns the old "event_kind" field's value of the CallEvent entity.
// If the CallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallEventMutation) OldEventKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKind: %w", err)
	}
	return oldValue.EventKind, nil
}

// ResetEventKind resets all changes to the "event_kind" field.
func (m *CallEventMutation) ResetEventKind() {
	m.event_kind = nil
}

// SetPayload sets the "payload" field.
func (m *CallEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *CallEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the CallEvent entity.
// If the CallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *CallEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[callevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *CallEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[callevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *CallEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, callevent.FieldPayload)
}

// SetHeaders sets the "headers" field.
func (m *CallEventMutation) SetHeaders(value map[string]string) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *CallEventMutation) Headers() (r map[string]string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the CallEvent entity.
// If the CallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallEventMutation) OldHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *CallEventMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[callevent.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *CallEventMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[callevent.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *CallEventMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, callevent.FieldHeaders)
}

// SetOutcome sets the "outcome" field.
func (m *CallEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *CallEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the CallEvent entity.
// If the CallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ClearOutcome clears the value of the "outcome" field.
func (m *CallEventMutation) ClearOutcome() {
	m.outcome = nil
	m.clearedFields[callevent.FieldOutcome] = struct{}{}
}

// OutcomeCleared returns if the "outcome" field was cleared in this mutation.
func (m *CallEventMutation) OutcomeCleared() bool {
	_, ok := m.clearedFields[callevent.FieldOutcome]
	return ok
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *CallEventMutation) ResetOutcome() {
	m.outcome = nil
	delete(m.clearedFields, callevent.FieldOutcome)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *CallEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *CallEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the CallEvent entity.
// If the CallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *CallEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearSession clears the "session" edge to the CallSession entity.
func (m *CallEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[callevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the CallSession entity was cleared.
func (m *CallEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CallEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CallEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CallEventMutation builder.
func (m *CallEventMutation) Where(ps ...predicate.CallEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallEvent).
func (m *CallEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, callevent.FieldSessionID)
	}
	if m.event_kind != nil {
		fields = append(fields, callevent.FieldEventKind)
	}
	if m.payload != nil {
		fields = append(fields, callevent.FieldPayload)
	}
	if m.headers != nil {
		fields = append(fields, callevent.FieldHeaders)
	}
	if m.outcome != nil {
		fields = append(fields, callevent.FieldOutcome)
	}
	if m.occurred_at != nil {
		fields = append(fields, callevent.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callevent.FieldSessionID:
		return m.SessionID()
	case callevent.FieldEventKind:
		return m.EventKind()
	case callevent.FieldPayload:
		return m.Payload()
	case callevent.FieldHeaders:
		return m.Headers()
	case callevent.FieldOutcome:
		return m.Outcome()
	case callevent.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case callevent.FieldEventKind:
		return m.OldEventKind(ctx)
	case callevent.FieldPayload:
		return m.OldPayload(ctx)
	case callevent.FieldHeaders:
		return m.OldHeaders(ctx)
	case callevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case callevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case callevent.FieldEventKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKind(v)
		return nil
	case callevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case callevent.FieldHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case callevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case callevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CallEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callevent.FieldPayload) {
		fields = append(fields, callevent.FieldPayload)
	}
	if m.FieldCleared(callevent.FieldHeaders) {
		fields = append(fields, callevent.FieldHeaders)
	}
	if m.FieldCleared(callevent.FieldOutcome) {
		fields = append(fields, callevent.FieldOutcome)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallEventMutation) ClearField(name string) error {
	switch name {
	case callevent.FieldPayload:
		m.ClearPayload()
		return nil
	case callevent.FieldHeaders:
		m.ClearHeaders()
		return nil
	case callevent.FieldOutcome:
		m.ClearOutcome()
		return nil
	}
	return fmt.Errorf("unknown CallEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallEventMutation) ResetField(name string) error {
	switch name {
	case callevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case callevent.FieldEventKind:
		m.ResetEventKind()
		return nil
	case callevent.FieldPayload:
		m.ResetPayload()
		return nil
	case callevent.FieldHeaders:
		m.ResetHeaders()
		return nil
	case callevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case callevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown CallEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, callevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case callevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, callevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallEventMutation) EdgeCleared(name string) bool {
	switch name {
	case callevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallEventMutation) ClearEdge(name string) error {
	switch name {
	case callevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown CallEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallEventMutation) ResetEdge(name string) error {
	switch name {
	case callevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown CallEvent edge %s", name)
}

// CallRecordMutation represents an operation that mutates the CallRecord nodes in the graph.
type CallRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	call_id             *string
	session_token       *string
	from_number         *string
	to_number           *string
	direction           *string
	disposition         *string
	call_start_time     *time.Time
	answer_time         *time.Time
	end_time            *time.Time
	duration_seconds    *int
	addduration_seconds *int
	billed_seconds      *int
	addbilled_seconds   *int
	raw_payload         *map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *string
	clearedtenant       bool
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*CallRecord, error)
	predicates          []predicate.CallRecord
}

var _ ent.Mutation = (*CallRecordMutation)(nil)

// callrecordOption allows management of the mutation configuration using functional options.
type callrecordOption func(*CallRecordMutation)

// newCallRecordMutation creates new mutation for the CallRecord entity.
func newCallRecordMutation(c config, op Op, opts ...callrecordOption) *CallRecordMutation {
	m := &CallRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCallRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallRecordID sets the ID field of the mutation.
func withCallRecordID(id string) callrecordOption {
	return func(m *CallRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CallRecord
		)
		m.oldValue = func(ctx context.Context) (*CallRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallRecord sets the old CallRecord of the mutation.
func withCallRecord(node *CallRecord) callrecordOption {
	return func(m *CallRecordMutation) {
		m.oldValue = func(context.Context) (*CallRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CallRecord entities.
func (m *CallRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CallRecordMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CallRecordMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CallRecordMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCallID sets the "call_id" field.
func (m *CallRecordMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *CallRecordMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *CallRecordMutation) ResetCallID() {
	m.call_id = nil
}

// SetSessionToken sets the "session_token" field.
func (m *CallRecordMutation) SetSessionToken(s string) {
	m.session_token = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *CallRecordMutation) SessionToken() (r string, exists bool) {
	v := m.session_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ClearSessionToken clears the value of the "session_token" field.
func (m *CallRecordMutation) ClearSessionToken() {
	m.session_token = nil
	m.clearedFields[callrecord.FieldSessionToken] = struct{}{}
}

// SessionTokenCleared returns if the "session_token" field was cleared in this mutation.
func (m *CallRecordMutation) SessionTokenCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldSessionToken]
	return ok
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *CallRecordMutation) ResetSessionToken() {
	m.session_token = nil
	delete(m.clearedFields, callrecord.FieldSessionToken)
}

// SetFromNumber sets the "from_number" field.
func (m *CallRecordMutation) SetFromNumber(s string) {
	m.from_number = &s
}

// FromNumber returns the value of the "from_number" field in the mutation.
func (m *CallRecordMutation) FromNumber() (r string, exists bool) {
	v := m.from_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFromNumber returns the old "from_number" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldFromNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromNumber: %w", err)
	}
	return oldValue.FromNumber, nil
}

// ClearFromNumber clears the value of the "from_number" field.
func (m *CallRecordMutation) ClearFromNumber() {
	m.from_number = nil
	m.clearedFields[callrecord.FieldFromNumber] = struct{}{}
}

// FromNumberCleared returns if the "from_number" field was cleared in this mutation.
func (m *CallRecordMutation) FromNumberCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldFromNumber]
	return ok
}

// ResetFromNumber resets all changes to the "from_number" field.
func (m *CallRecordMutation) ResetFromNumber() {
	m.from_number = nil
	delete(m.clearedFields, callrecord.FieldFromNumber)
}

// SetToNumber sets the "to_number" field.
func (m *CallRecordMutation) SetToNumber(s string) {
	m.to_number = &s
}

// ToNumber returns the value of the "to_number" field in the mutation.
func (m *CallRecordMutation) ToNumber() (r string, exists bool) {
	v := m.to_number
	if v == nil {
		return
	}
	return *v, true
}

// OldToNumber returns the old "to_number" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldToNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToNumber: %w", err)
	}
	return oldValue.ToNumber, nil
}

// ClearToNumber clears the value of the "to_number" field.
func (m *CallRecordMutation) ClearToNumber() {
	m.to_number = nil
	m.clearedFields[callrecord.FieldToNumber] = struct{}{}
}

// ToNumberCleared returns if the "to_number" field was cleared in this mutation.
func (m *CallRecordMutation) ToNumberCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldToNumber]
	return ok
}

// ResetToNumber resets all changes to the "to_number" field.
func (m *CallRecordMutation) ResetToNumber() {
	m.to_number = nil
	delete(m.clearedFields, callrecord.FieldToNumber)
}

// SetDirection sets the "direction" field.
func (m *CallRecordMutation) SetDirection(s string) {
	m.direction = &s
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CallRecordMutation) Direction() (r string, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldDirection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ClearDirection clears the value of the "direction" field.
func (m *CallRecordMutation) ClearDirection() {
	m.direction = nil
	m.clearedFields[callrecord.FieldDirection] = struct{}{}
}

// DirectionCleared returns if the "direction" field was cleared in this mutation.
func (m *CallRecordMutation) DirectionCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldDirection]
	return ok
}

// ResetDirection resets all changes to the "direction" field.
func (m *CallRecordMutation) ResetDirection() {
	m.direction = nil
	delete(m.clearedFields, callrecord.FieldDirection)
}

// SetDisposition sets the "disposition" field.
func (m *CallRecordMutation) SetDisposition(s string) {
	m.disposition = &s
}

// Disposition returns the value of the "disposition" field in the mutation.
func (m *CallRecordMutation) Disposition() (r string, exists bool) {
	v := m.disposition
	if v == nil {
		return
	}
	return *v, true
}

// OldDisposition returns the old "disposition" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldDisposition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisposition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisposition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisposition: %w", err)
	}
	return oldValue.Disposition, nil
}

// ResetDisposition resets all changes to the "disposition" field.
func (m *CallRecordMutation) ResetDisposition() {
	m.disposition = nil
}

// SetCallStartTime sets the "call_start_time" field.
func (m *CallRecordMutation) SetCallStartTime(t time.Time) {
	m.call_start_time = &t
}

// CallStartTime returns the value of the "call_start_time" field in the mutation.
func (m *CallRecordMutation) CallStartTime() (r time.Time, exists bool) {
	v := m.call_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCallStartTime returns the old "call_start_time" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCallStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallStartTime: %w", err)
	}
	return oldValue.CallStartTime, nil
}

// ClearCallStartTime clears the value of the "call_start_time" field.
func (m *CallRecordMutation) ClearCallStartTime() {
	m.call_start_time = nil
	m.clearedFields[callrecord.FieldCallStartTime] = struct{}{}
}

// CallStartTimeCleared returns if the "call_start_time" field was cleared in this mutation.
func (m *CallRecordMutation) CallStartTimeCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldCallStartTime]
	return ok
}

// ResetCallStartTime resets all changes to the "call_start_time" field.
func (m *CallRecordMutation) ResetCallStartTime() {
	m.call_start_time = nil
	delete(m.clearedFields, callrecord.FieldCallStartTime)
}

// SetAnswerTime sets the "answer_time" field.
func (m *CallRecordMutation) SetAnswerTime(t time.Time) {
	m.answer_time = &t
}

// AnswerTime returns the value of the "answer_time" field in the mutation.
func (m *CallRecordMutation) AnswerTime() (r time.Time, exists bool) {
	v := m.answer_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerTime returns the old "answer_time" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldAnswerTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerTime: %w", err)
	}
	return oldValue.AnswerTime, nil
}

// ClearAnswerTime clears the value of the "answer_time" field.
func (m *CallRecordMutation) ClearAnswerTime() {
	m.answer_time = nil
	m.clearedFields[callrecord.FieldAnswerTime] = struct{}{}
}

// AnswerTimeCleared returns if the "answer_time" field was cleared in this mutation.
func (m *CallRecordMutation) AnswerTimeCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldAnswerTime]
	return ok
}

// ResetAnswerTime resets all changes to the "answer_time" field.
func (m *CallRecordMutation) ResetAnswerTime() {
	m.answer_time = nil
	delete(m.clearedFields, callrecord.FieldAnswerTime)
}

// SetEndTime sets the "end_time" field.
func (m *CallRecordMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *CallRecordMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *CallRecordMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[callrecord.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *CallRecordMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *CallRecordMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, callrecord.FieldEndTime)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *CallRecordMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *CallRecordMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *CallRecordMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *CallRecordMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *CallRecordMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetBilledSeconds sets the "billed_seconds" field.
func (m *CallRecordMutation) SetBilledSeconds(i int) {
	m.billed_seconds = &i
	m.addbilled_seconds = nil
}

// BilledSeconds returns the value of the "billed_seconds" field in the mutation.
func (m *CallRecordMutation) BilledSeconds() (r int, exists bool) {
	v := m.billed_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldBilledSeconds returns the old "billed_seconds" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldBilledSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBilledSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBilledSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBilledSeconds: %w", err)
	}
	return oldValue.BilledSeconds, nil
}

// AddBilledSeconds adds i to the "billed_seconds" field.
func (m *CallRecordMutation) AddBilledSeconds(i int) {
	if m.addbilled_seconds != nil {
		*m.addbilled_seconds += i
	} else {
		m.addbilled_seconds = &i
	}
}

// AddedBilledSeconds returns the value that was added to the "billed_seconds" field in this mutation.
func (m *CallRecordMutation) AddedBilledSeconds() (r int, exists bool) {
	v := m.addbilled_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetBilledSeconds resets all changes to the "billed_seconds" field.
func (m *CallRecordMutation) ResetBilledSeconds() {
	m.billed_seconds = nil
	m.addbilled_seconds = nil
}

// SetRawPayload sets the "raw_payload" field.
func (m *CallRecordMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *CallRecordMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *CallRecordMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[callrecord.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *CallRecordMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[callrecord.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *CallRecordMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, callrecord.FieldRawPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *CallRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CallRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CallRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CallRecord entity.
// If the CallRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CallRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *CallRecordMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[callrecord.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *CallRecordMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *CallRecordMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *CallRecordMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// SetSessionID sets the "session" edge to the CallSession entity by id.
func (m *CallRecordMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the CallSession entity.
func (m *CallRecordMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the CallSession entity was cleared.
func (m *CallRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *CallRecordMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CallRecordMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CallRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CallRecordMutation builder.
func (m *CallRecordMutation) Where(ps ...predicate.CallRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallRecord).
func (m *CallRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.tenant != nil {
		fields = append(fields, callrecord.FieldTenantID)
	}
	if m.call_id != nil {
		fields = append(fields, callrecord.FieldCallID)
	}
	if m.session_token != nil {
		fields = append(fields, callrecord.FieldSessionToken)
	}
	if m.from_number != nil {
		fields = append(fields, callrecord.FieldFromNumber)
	}
	if m.to_number != nil {
		fields = append(fields, callrecord.FieldToNumber)
	}
	if m.direction != nil {
		fields = append(fields, callrecord.FieldDirection)
	}
	if m.disposition != nil {
		fields = append(fields, callrecord.FieldDisposition)
	}
	if m.call_start_time != nil {
		fields = append(fields, callrecord.FieldCallStartTime)
	}
	if m.answer_time != nil {
		fields = append(fields, callrecord.FieldAnswerTime)
	}
	if m.end_time != nil {
		fields = append(fields, callrecord.FieldEndTime)
	}
	if m.duration_seconds != nil {
		fields = append(fields, callrecord.FieldDurationSeconds)
	}
	if m.billed_seconds != nil {
		fields = append(fields, callrecord.FieldBilledSeconds)
	}
	if m.raw_payload != nil {
		fields = append(fields, callrecord.FieldRawPayload)
	}
	if m.created_at != nil {
		fields = append(fields, callrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, callrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callrecord.FieldTenantID:
		return m.TenantID()
	case callrecord.FieldCallID:
		return m.CallID()
	case callrecord.FieldSessionToken:
		return m.SessionToken()
	case callrecord.FieldFromNumber:
		return m.FromNumber()
	case callrecord.FieldToNumber:
		return m.ToNumber()
	case callrecord.FieldDirection:
		return m.Direction()
	case callrecord.FieldDisposition:
		return m.Disposition()
	case callrecord.FieldCallStartTime:
		return m.CallStartTime()
	case callrecord.FieldAnswerTime:
		return m.AnswerTime()
	case callrecord.FieldEndTime:
		return m.EndTime()
	case callrecord.FieldDurationSeconds:
		return m.DurationSeconds()
	case callrecord.FieldBilledSeconds:
		return m.BilledSeconds()
	case callrecord.FieldRawPayload:
		return m.RawPayload()
	case callrecord.FieldCreatedAt:
		return m.CreatedAt()
	case callrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callrecord.FieldTenantID:
		return m.OldTenantID(ctx)
	case callrecord.FieldCallID:
		return m.OldCallID(ctx)
	case callrecord.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case callrecord.FieldFromNumber:
		return m.OldFromNumber(ctx)
	case callrecord.FieldToNumber:
		return m.OldToNumber(ctx)
	case callrecord.FieldDirection:
		return m.OldDirection(ctx)
	case callrecord.FieldDisposition:
		return m.OldDisposition(ctx)
	case callrecord.FieldCallStartTime:
		return m.OldCallStartTime(ctx)
	case callrecord.FieldAnswerTime:
		return m.OldAnswerTime(ctx)
	case callrecord.FieldEndTime:
		return m.OldEndTime(ctx)
	case callrecord.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case callrecord.FieldBilledSeconds:
		return m.OldBilledSeconds(ctx)
	case callrecord.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case callrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case callrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callrecord.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case callrecord.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case callrecord.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case callrecord.FieldFromNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromNumber(v)
		return nil
	case callrecord.FieldToNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToNumber(v)
		return nil
	case callrecord.FieldDirection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case callrecord.FieldDisposition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisposition(v)
		return nil
	case callrecord.FieldCallStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallStartTime(v)
		return nil
	case callrecord.FieldAnswerTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerTime(v)
		return nil
	case callrecord.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case callrecord.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case callrecord.FieldBilledSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBilledSeconds(v)
		return nil
	case callrecord.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case callrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case callrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallRecordMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, callrecord.FieldDurationSeconds)
	}
	if m.addbilled_seconds != nil {
		fields = append(fields, callrecord.FieldBilledSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case callrecord.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case callrecord.FieldBilledSeconds:
		return m.AddedBilledSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case callrecord.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case callrecord.FieldBilledSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBilledSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown CallRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callrecord.FieldSessionToken) {
		fields = append(fields, callrecord.FieldSessionToken)
	}
	if m.FieldCleared(callrecord.FieldFromNumber) {
		fields = append(fields, callrecord.FieldFromNumber)
	}
	if m.FieldCleared(callrecord.FieldToNumber) {
		fields = append(fields, callrecord.FieldToNumber)
	}
	if m.FieldCleared(callrecord.FieldDirection) {
		fields = append(fields, callrecord.FieldDirection)
	}
	if m.FieldCleared(callrecord.FieldCallStartTime) {
		fields = append(fields, callrecord.FieldCallStartTime)
	}
	if m.FieldCleared(callrecord.FieldAnswerTime) {
		fields = append(fields, callrecord.FieldAnswerTime)
	}
	if m.FieldCleared(callrecord.FieldEndTime) {
		fields = append(fields, callrecord.FieldEndTime)
	}
	if m.FieldCleared(callrecord.FieldRawPayload) {
		fields = append(fields, callrecord.FieldRawPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallRecordMutation) ClearField(name string) error {
	switch name {
	case callrecord.FieldSessionToken:
		m.ClearSessionToken()
		return nil
	case callrecord.FieldFromNumber:
		m.ClearFromNumber()
		return nil
	case callrecord.FieldToNumber:
		m.ClearToNumber()
		return nil
	case callrecord.FieldDirection:
		m.ClearDirection()
		return nil
	case callrecord.FieldCallStartTime:
		m.ClearCallStartTime()
		return nil
	case callrecord.FieldAnswerTime:
		m.ClearAnswerTime()
		return nil
	case callrecord.FieldEndTime:
		m.ClearEndTime()
		return nil
	case callrecord.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	}
	return fmt.Errorf("unknown CallRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallRecordMutation) ResetField(name string) error {
	switch name {
	case callrecord.FieldTenantID:
		m.ResetTenantID()
		return nil
	case callrecord.FieldCallID:
		m.ResetCallID()
		return nil
	case callrecord.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case callrecord.FieldFromNumber:
		m.ResetFromNumber()
		return nil
	case callrecord.FieldToNumber:
		m.ResetToNumber()
		return nil
	case callrecord.FieldDirection:
		m.ResetDirection()
		return nil
	case callrecord.FieldDisposition:
		m.ResetDisposition()
		return nil
	case callrecord.FieldCallStartTime:
		m.ResetCallStartTime()
		return nil
	case callrecord.FieldAnswerTime:
		m.ResetAnswerTime()
		return nil
	case callrecord.FieldEndTime:
		m.ResetEndTime()
		return nil
	case callrecord.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case callrecord.FieldBilledSeconds:
		m.ResetBilledSeconds()
		return nil
	case callrecord.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case callrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case callrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CallRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, callrecord.EdgeTenant)
	}
	if m.session != nil {
		edges = append(edges, callrecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case callrecord.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case callrecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, callrecord.EdgeTenant)
	}
	if m.clearedsession {
		edges = append(edges, callrecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case callrecord.EdgeTenant:
		return m.clearedtenant
	case callrecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallRecordMutation) ClearEdge(name string) error {
	switch name {
	case callrecord.EdgeTenant:
		m.ClearTenant()
		return nil
	case callrecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown CallRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallRecordMutation) ResetEdge(name string) error {
	switch name {
	case callrecord.EdgeTenant:
		m.ResetTenant()
		return nil
	case callrecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown CallRecord edge %s", name)
}

// CallSessionMutation represents an operation that mutates the CallSession nodes in the graph.
type CallSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	session_token       *string
	call_sid            *string
	direction           *callsession.Direction
	caller_id           *string
	destination         *string
	state               *callsession.State
	started_at          *time.Time
	answered_at         *time.Time
	ended_at            *time.Time
	duration_seconds    *int
	addduration_seconds *int
	agent_id            *string
	group_id            *string
	history             *[]map[string]interface{}
	appendhistory       []map[string]interface{}
	metadata            *map[string]interface{}
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *string
	clearedtenant       bool
	events              map[string]struct{}
	removedevents       map[string]struct{}
	clearedevents       bool
	record              *string
	clearedrecord       bool
	done                bool
	oldValue            func(context.Context) (*CallSession, error)
	predicates          []predicate.CallSession
}

var _ ent.Mutation = (*CallSessionMutation)(nil)

// callsessionOption allows management of the mutation configuration using functional options.
type callsessionOption func(*CallSessionMutation)

// newCallSessionMutation creates new mutation for the CallSession entity.
func newCallSessionMutation(c config, op Op, opts ...callsessionOption) *CallSessionMutation {
	m := &CallSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeCallSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallSessionID sets the ID field of the mutation.
func withCallSessionID(id string) callsessionOption {
	return func(m *CallSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *CallSession
		)
		m.oldValue = func(ctx context.Context) (*CallSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CallSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCallSession sets the old CallSession of the mutation.
func withCallSession(node *CallSession) callsessionOption {
	return func(m *CallSessionMutation) {
		m.oldValue = func(context.Context) (*CallSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CallSession entities.
func (m *CallSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CallSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CallSessionMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CallSessionMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CallSessionMutation) ResetTenantID() {
	m.tenant = nil
}

// SetSessionToken sets the "session_token" field.
func (m *CallSessionMutation) SetSessionToken(s string) {
	m.session_token = &s
}

// SessionToken returns the value of the "session_token" field in the mutation.
func (m *CallSessionMutation) SessionToken() (r string, exists bool) {
	v := m.session_token
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionToken returns the old "session_token" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldSessionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionToken: %w", err)
	}
	return oldValue.SessionToken, nil
}

// ResetSessionToken resets all changes to the "session_token" field.
func (m *CallSessionMutation) ResetSessionToken() {
	m.session_token = nil
}

// SetCallSid sets the "call_sid" field.
func (m *CallSessionMutation) SetCallSid(s string) {
	m.call_sid = &s
}

// CallSid returns the value of the "call_sid" field in the mutation.
func (m *CallSessionMutation) CallSid() (r string, exists bool) {
	v := m.call_sid
	if v == nil {
		return
	}
	return *v, true
}

// OldCallSid returns the old "call_sid" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldCallSid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallSid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallSid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallSid: %w", err)
	}
	return oldValue.CallSid, nil
}

// ClearCallSid clears the value of the "call_sid" field.
func (m *CallSessionMutation) ClearCallSid() {
	m.call_sid = nil
	m.clearedFields[callsession.FieldCallSid] = struct{}{}
}

// CallSidCleared returns if the "call_sid" field was cleared in this mutation.
func (m *CallSessionMutation) CallSidCleared() bool {
	_, ok := m.clearedFields[callsession.FieldCallSid]
	return ok
}

// ResetCallSid resets all changes to the "call_sid" field.
func (m *CallSessionMutation) ResetCallSid() {
	m.call_sid = nil
	delete(m.clearedFields, callsession.FieldCallSid)
}

// SetDirection sets the "direction" field.
func (m *CallSessionMutation) SetDirection(c callsession.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CallSessionMutation) Direction() (r callsession.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldDirection(ctx context.Context) (v callsession.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CallSessionMutation) ResetDirection() {
	m.direction = nil
}

// SetCallerID sets the "caller_id" field.
func (m *CallSessionMutation) SetCallerID(s string) {
	m.caller_id = &s
}

// CallerID returns the value of the "caller_id" field in the mutation.
func (m *CallSessionMutation) CallerID() (r string, exists bool) {
	v := m.caller_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerID returns the old "caller_id" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldCallerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerID: %w", err)
	}
	return oldValue.CallerID, nil
}

// ClearCallerID clears the value of the "caller_id" field.
func (m *CallSessionMutation) ClearCallerID() {
	m.caller_id = nil
	m.clearedFields[callsession.FieldCallerID] = struct{}{}
}

// CallerIDCleared returns if the "caller_id" field was cleared in this mutation.
func (m *CallSessionMutation) CallerIDCleared() bool {
	_, ok := m.clearedFields[callsession.FieldCallerID]
	return ok
}

// ResetCallerID resets all changes to the "caller_id" field.
func (m *CallSessionMutation) ResetCallerID() {
	m.caller_id = nil
	delete(m.clearedFields, callsession.FieldCallerID)
}

// SetDestination sets the "destination" field.
func (m *CallSessionMutation) SetDestination(s string) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *CallSessionMutation) Destination() (r string, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldDestination(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ClearDestination clears the value of the "destination" field.
func (m *CallSessionMutation) ClearDestination() {
	m.destination = nil
	m.clearedFields[callsession.FieldDestination] = struct{}{}
}

// DestinationCleared returns if the "destination" field was cleared in this mutation.
func (m *CallSessionMutation) DestinationCleared() bool {
	_, ok := m.clearedFields[callsession.FieldDestination]
	return ok
}

// ResetDestination resets all changes to the "destination" field.
func (m *CallSessionMutation) ResetDestination() {
	m.destination = nil
	delete(m.clearedFields, callsession.FieldDestination)
}

// SetState sets the "state" field.
func (m *CallSessionMutation) SetState(c callsession.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CallSessionMutation) State() (r callsession.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldState(ctx context.Context) (v callsession.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CallSessionMutation) ResetState() {
	m.state = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CallSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CallSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CallSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *CallSessionMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *CallSessionMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldAnsweredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (m *CallSessionMutation) ClearAnsweredAt() {
	m.answered_at = nil
	m.clearedFields[callsession.FieldAnsweredAt] = struct{}{}
}

// AnsweredAtCleared returns if the "answered_at" field was cleared in this mutation.
func (m *CallSessionMutation) AnsweredAtCleared() bool {
	_, ok := m.clearedFields[callsession.FieldAnsweredAt]
	return ok
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *CallSessionMutation) ResetAnsweredAt() {
	m.answered_at = nil
	delete(m.clearedFields, callsession.FieldAnsweredAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *CallSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *CallSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *CallSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[callsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *CallSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[callsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *CallSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, callsession.FieldEndedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *CallSessionMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *CallSessionMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *CallSessionMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *CallSessionMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *CallSessionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CallSessionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CallSessionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *CallSessionMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[callsession.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *CallSessionMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[callsession.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CallSessionMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, callsession.FieldAgentID)
}

// SetGroupID sets the "group_id" field.
func (m *CallSessionMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *CallSessionMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *CallSessionMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[callsession.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *CallSessionMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[callsession.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *CallSessionMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, callsession.FieldGroupID)
}

// SetHistory sets the "history" field.
func (m *CallSessionMutation) SetHistory(value []map[string]interface{}) {
	m.history = &value
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *CallSessionMutation) History() (r []map[string]interface{}, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds value to the "history" field.
func (m *CallSessionMutation) AppendHistory(value []map[string]interface{}) {
	m.appendhistory = append(m.appendhistory, value...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *CallSessionMutation) AppendedHistory() ([]map[string]interface{}, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *CallSessionMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[callsession.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *CallSessionMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[callsession.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *CallSessionMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, callsession.FieldHistory)
}

// SetMetadata sets the "metadata" field.
func (m *CallSessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CallSessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CallSessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[callsession.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CallSessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[callsession.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CallSessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, callsession.FieldMetadata)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CallSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CallSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CallSession entity.
// If the CallSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CallSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *CallSessionMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[callsession.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *CallSessionMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *CallSessionMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *CallSessionMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddEventIDs adds the "events" edge to the CallEvent entity by ids.
func (m *CallSessionMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the CallEvent entity.
func (m *CallSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the CallEvent entity was cleared.
func (m *CallSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the CallEvent entity by IDs.
func (m *CallSessionMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the CallEvent entity.
func (m *CallSessionMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CallSessionMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CallSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetRecordID sets the "record" edge to the CallRecord entity by id.
func (m *CallSessionMutation) SetRecordID(id string) {
	m.record = &id
}

// ClearRecord clears the "record" edge to the CallRecord entity.
func (m *CallSessionMutation) ClearRecord() {
	m.clearedrecord = true
}

// RecordCleared reports if the "record" edge to the CallRecord entity was cleared.
func (m *CallSessionMutation) RecordCleared() bool {
	return m.clearedrecord
}

// RecordID returns the "record" edge ID in the mutation.
func (m *CallSessionMutation) RecordID() (id string, exists bool) {
	if m.record != nil {
		return *m.record, true
	}
	return
}

// RecordIDs returns the "record" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordID instead. It exists only for internal usage by the builders.
func (m *CallSessionMutation) RecordIDs() (ids []string) {
	if id := m.record; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecord resets all changes to the "record" edge.
func (m *CallSessionMutation) ResetRecord() {
	m.record = nil
	m.clearedrecord = false
}

// Where appends a list predicates to the CallSessionMutation builder.
func (m *CallSessionMutation) Where(ps ...predicate.CallSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CallSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CallSession).
func (m *CallSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.tenant != nil {
		fields = append(fields, callsession.FieldTenantID)
	}
	if m.session_token != nil {
		fields = append(fields, callsession.FieldSessionToken)
	}
	if m.call_sid != nil {
		fields = append(fields, callsession.FieldCallSid)
	}
	if m.direction != nil {
		fields = append(fields, callsession.FieldDirection)
	}
	if m.caller_id != nil {
		fields = append(fields, callsession.FieldCallerID)
	}
	if m.destination != nil {
		fields = append(fields, callsession.FieldDestination)
	}
	if m.state != nil {
		fields = append(fields, callsession.FieldState)
	}
	if m.started_at != nil {
		fields = append(fields, callsession.FieldStartedAt)
	}
	if m.answered_at != nil {
		fields = append(fields, callsession.FieldAnsweredAt)
	}
	if m.ended_at != nil {
		fields = append(fields, callsession.FieldEndedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, callsession.FieldDurationSeconds)
	}
	if m.agent_id != nil {
		fields = append(fields, callsession.FieldAgentID)
	}
	if m.group_id != nil {
		fields = append(fields, callsession.FieldGroupID)
	}
	if m.history != nil {
		fields = append(fields, callsession.FieldHistory)
	}
	if m.metadata != nil {
		fields = append(fields, callsession.FieldMetadata)
	}
	if m.updated_at != nil {
		fields = append(fields, callsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case callsession.FieldTenantID:
		return m.TenantID()
	case callsession.FieldSessionToken:
		return m.SessionToken()
	case callsession.FieldCallSid:
		return m.CallSid()
	case callsession.FieldDirection:
		return m.Direction()
	case callsession.FieldCallerID:
		return m.CallerID()
	case callsession.FieldDestination:
		return m.Destination()
	case callsession.FieldState:
		return m.State()
	case callsession.FieldStartedAt:
		return m.StartedAt()
	case callsession.FieldAnsweredAt:
		return m.AnsweredAt()
	case callsession.FieldEndedAt:
		return m.EndedAt()
	case callsession.FieldDurationSeconds:
		return m.DurationSeconds()
	case callsession.FieldAgentID:
		return m.AgentID()
	case callsession.FieldGroupID:
		return m.GroupID()
	case callsession.FieldHistory:
		return m.History()
	case callsession.FieldMetadata:
		return m.Metadata()
	case callsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case callsession.FieldTenantID:
		return m.OldTenantID(ctx)
	case callsession.FieldSessionToken:
		return m.OldSessionToken(ctx)
	case callsession.FieldCallSid:
		return m.OldCallSid(ctx)
	case callsession.FieldDirection:
		return m.OldDirection(ctx)
	case callsession.FieldCallerID:
		return m.OldCallerID(ctx)
	case callsession.FieldDestination:
		return m.OldDestination(ctx)
	case callsession.FieldState:
		return m.OldState(ctx)
	case callsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case callsession.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	case callsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case callsession.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case callsession.FieldAgentID:
		return m.OldAgentID(ctx)
	case callsession.FieldGroupID:
		return m.OldGroupID(ctx)
	case callsession.FieldHistory:
		return m.OldHistory(ctx)
	case callsession.FieldMetadata:
		return m.OldMetadata(ctx)
	case callsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CallSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case callsession.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case callsession.FieldSessionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionToken(v)
		return nil
	case callsession.FieldCallSid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallSid(v)
		return nil
	case callsession.FieldDirection:
		v, ok := value.(callsession.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case callsession.FieldCallerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerID(v)
		return nil
	case callsession.FieldDestination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case callsession.FieldState:
		v, ok := value.(callsession.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case callsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case callsession.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	case callsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case callsession.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case callsession.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case callsession.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case callsession.FieldHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case callsession.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case callsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CallSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallSessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, callsession.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case callsession.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case callsession.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown CallSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(callsession.FieldCallSid) {
		fields = append(fields, callsession.FieldCallSid)
	}
	if m.FieldCleared(callsession.FieldCallerID) {
		fields = append(fields, callsession.FieldCallerID)
	}
	if m.FieldCleared(callsession.FieldDestination) {
		fields = append(fields, callsession.FieldDestination)
	}
	if m.FieldCleared(callsession.FieldAnsweredAt) {
		fields = append(fields, callsession.FieldAnsweredAt)
	}
	if m.FieldCleared(callsession.FieldEndedAt) {
		fields = append(fields, callsession.FieldEndedAt)
	}
	if m.FieldCleared(callsession.FieldAgentID) {
		fields = append(fields, callsession.FieldAgentID)
	}
	if m.FieldCleared(callsession.FieldGroupID) {
		fields = append(fields, callsession.FieldGroupID)
	}
	if m.FieldCleared(callsession.FieldHistory) {
		fields = append(fields, callsession.FieldHistory)
	}
	if m.FieldCleared(callsession.FieldMetadata) {
		fields = append(fields, callsession.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallSessionMutation) ClearField(name string) error {
	switch name {
	case callsession.FieldCallSid:
		m.ClearCallSid()
		return nil
	case callsession.FieldCallerID:
		m.ClearCallerID()
		return nil
	case callsession.FieldDestination:
		m.ClearDestination()
		return nil
	case callsession.FieldAnsweredAt:
		m.ClearAnsweredAt()
		return nil
	case callsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case callsession.FieldAgentID:
		m.ClearAgentID()
		return nil
	case callsession.FieldGroupID:
		m.ClearGroupID()
		return nil
	case callsession.FieldHistory:
		m.ClearHistory()
		return nil
	case callsession.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown CallSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallSessionMutation) ResetField(name string) error {
	switch name {
	case callsession.FieldTenantID:
		m.ResetTenantID()
		return nil
	case callsession.FieldSessionToken:
		m.ResetSessionToken()
		return nil
	case callsession.FieldCallSid:
		m.ResetCallSid()
		return nil
	case callsession.FieldDirection:
		m.ResetDirection()
		return nil
	case callsession.FieldCallerID:
		m.ResetCallerID()
		return nil
	case callsession.FieldDestination:
		m.ResetDestination()
		return nil
	case callsession.FieldState:
		m.ResetState()
		return nil
	case callsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case callsession.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	case callsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case callsession.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case callsession.FieldAgentID:
		m.ResetAgentID()
		return nil
	case callsession.FieldGroupID:
		m.ResetGroupID()
		return nil
	case callsession.FieldHistory:
		m.ResetHistory()
		return nil
	case callsession.FieldMetadata:
		m.ResetMetadata()
		return nil
	case callsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CallSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tenant != nil {
		edges = append(edges, callsession.EdgeTenant)
	}
	if m.events != nil {
		edges = append(edges, callsession.EdgeEvents)
	}
	if m.record != nil {
		edges = append(edges, callsession.EdgeRecord)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case callsession.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case callsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case callsession.EdgeRecord:
		if id := m.record; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevents != nil {
		edges = append(edges, callsession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case callsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtenant {
		edges = append(edges, callsession.EdgeTenant)
	}
	if m.clearedevents {
		edges = append(edges, callsession.EdgeEvents)
	}
	if m.clearedrecord {
		edges = append(edges, callsession.EdgeRecord)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case callsession.EdgeTenant:
		return m.clearedtenant
	case callsession.EdgeEvents:
		return m.clearedevents
	case callsession.EdgeRecord:
		return m.clearedrecord
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallSessionMutation) ClearEdge(name string) error {
	switch name {
	case callsession.EdgeTenant:
		m.ClearTenant()
		return nil
	case callsession.EdgeRecord:
		m.ClearRecord()
		return nil
	}
	return fmt.Errorf("unknown CallSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallSessionMutation) ResetEdge(name string) error {
	switch name {
	case callsession.EdgeTenant:
		m.ResetTenant()
		return nil
	case callsession.EdgeEvents:
		m.ResetEvents()
		return nil
	case callsession.EdgeRecord:
		m.ResetRecord()
		return nil
	}
	return fmt.Errorf("unknown CallSession edge %s", name)
}

// GroupMemberMutation represents an operation that mutates the GroupMember nodes in the graph.
type GroupMemberMutation struct {
	config
	op            Op
	typ           string
	id            *string
	priority      *int
	addpriority   *int
	capacity      *int
	addcapacity   *int
	clearedFields map[string]struct{}
	group         *string
	clearedgroup  bool
	agent         *string
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*GroupMember, error)
	predicates    []predicate.GroupMember
}

var _ ent.Mutation = (*GroupMemberMutation)(nil)

// groupmemberOption allows management of the mutation configuration using functional options.
type groupmemberOption func(*GroupMemberMutation)

// newGroupMemberMutation creates new mutation for the GroupMember entity.
func newGroupMemberMutation(c config, op Op, opts ...groupmemberOption) *GroupMemberMutation {
	m := &GroupMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupMemberID sets the ID field of the mutation.
func withGroupMemberID(id string) groupmemberOption {
	return func(m *GroupMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupMember
		)
		m.oldValue = func(ctx context.Context) (*GroupMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupMember sets the old GroupMember of the mutation.
func withGroupMember(node *GroupMember) groupmemberOption {
	return func(m *GroupMemberMutation) {
		m.oldValue = func(context.Context) (*GroupMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GroupMember entities.
func (m *GroupMemberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMemberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMemberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *GroupMemberMutation) SetGroupID(s string) {
	m.group = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupMemberMutation) GroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupMemberMutation) ResetGroupID() {
	m.group = nil
}

// SetAgentID sets the "agent_id" field.
func (m *GroupMemberMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *GroupMemberMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *GroupMemberMutation) ResetAgentID() {
	m.agent = nil
}

// SetPriority sets the "priority" field.
func (m *GroupMemberMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *GroupMemberMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *GroupMemberMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *GroupMemberMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *GroupMemberMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCapacity sets the "capacity" field.
func (m *GroupMemberMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *GroupMemberMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the GroupMember entity.
// If the GroupMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMemberMutation) OldCapacity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *GroupMemberMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *GroupMemberMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ClearCapacity clears the value of the "capacity" field.
func (m *GroupMemberMutation) ClearCapacity() {
	m.capacity = nil
	m.addcapacity = nil
	m.clearedFields[groupmember.FieldCapacity] = struct{}{}
}

// CapacityCleared returns if the "capacity" field was cleared in this mutation.
func (m *GroupMemberMutation) CapacityCleared() bool {
	_, ok := m.clearedFields[groupmember.FieldCapacity]
	return ok
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *GroupMemberMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
	delete(m.clearedFields, groupmember.FieldCapacity)
}

// ClearGroup clears the "group" edge to the AgentGroup entity.
func (m *GroupMemberMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[groupmember.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the AgentGroup entity was cleared.
func (m *GroupMemberMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *GroupMemberMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *GroupMemberMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// ClearAgent clears the "agent" edge to the VoiceAgent entity.
func (m *GroupMemberMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[groupmember.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the VoiceAgent entity was cleared.
func (m *GroupMemberMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *GroupMemberMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *GroupMemberMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the GroupMemberMutation builder.
func (m *GroupMemberMutation) Where(ps ...predicate.GroupMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupMember).
func (m *GroupMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMemberMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.group != nil {
		fields = append(fields, groupmember.FieldGroupID)
	}
	if m.agent != nil {
		fields = append(fields, groupmember.FieldAgentID)
	}
	if m.priority != nil {
		fields = append(fields, groupmember.FieldPriority)
	}
	if m.capacity != nil {
		fields = append(fields, groupmember.FieldCapacity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupmember.FieldGroupID:
		return m.GroupID()
	case groupmember.FieldAgentID:
		return m.AgentID()
	case groupmember.FieldPriority:
		return m.Priority()
	case groupmember.FieldCapacity:
		return m.Capacity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupmember.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupmember.FieldAgentID:
		return m.OldAgentID(ctx)
	case groupmember.FieldPriority:
		return m.OldPriority(ctx)
	case groupmember.FieldCapacity:
		return m.OldCapacity(ctx)
	}
	return nil, fmt.Errorf("unknown GroupMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupmember.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupmember.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case groupmember.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case groupmember.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown GroupMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMemberMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, groupmember.FieldPriority)
	}
	if m.addcapacity != nil {
		fields = append(fields, groupmember.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case groupmember.FieldPriority:
		return m.AddedPriority()
	case groupmember.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case groupmember.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case groupmember.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown GroupMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(groupmember.FieldCapacity) {
		fields = append(fields, groupmember.FieldCapacity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMemberMutation) ClearField(name string) error {
	switch name {
	case groupmember.FieldCapacity:
		m.ClearCapacity()
		return nil
	}
	return fmt.Errorf("unknown GroupMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMemberMutation) ResetField(name string) error {
	switch name {
	case groupmember.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupmember.FieldAgentID:
		m.ResetAgentID()
		return nil
	case groupmember.FieldPriority:
		m.ResetPriority()
		return nil
	case groupmember.FieldCapacity:
		m.ResetCapacity()
		return nil
	}
	return fmt.Errorf("unknown GroupMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.group != nil {
		edges = append(edges, groupmember.EdgeGroup)
	}
	if m.agent != nil {
		edges = append(edges, groupmember.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case groupmember.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case groupmember.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgroup {
		edges = append(edges, groupmember.EdgeGroup)
	}
	if m.clearedagent {
		edges = append(edges, groupmember.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case groupmember.EdgeGroup:
		return m.clearedgroup
	case groupmember.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMemberMutation) ClearEdge(name string) error {
	switch name {
	case groupmember.EdgeGroup:
		m.ClearGroup()
		return nil
	case groupmember.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown GroupMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMemberMutation) ResetEdge(name string) error {
	switch name {
	case groupmember.EdgeGroup:
		m.ResetGroup()
		return nil
	case groupmember.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown GroupMember edge %s", name)
}

// InboundRuleMutation represents an operation that mutates the InboundRule nodes in the graph.
type InboundRuleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	pattern       *string
	target_kind   *inboundrule.TargetKind
	target_id     *string
	priority      *int
	addpriority   *int
	enabled       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	tenant        *string
	clearedtenant bool
	done          bool
	oldValue      func(context.Context) (*InboundRule, error)
	predicates    []predicate.InboundRule
}

var _ ent.Mutation = (*InboundRuleMutation)(nil)

// inboundruleOption allows management of the mutation configuration using functional options.
type inboundruleOption func(*InboundRuleMutation)

// newInboundRuleMutation creates new mutation for the InboundRule entity.
func newInboundRuleMutation(c config, op Op, opts ...inboundruleOption) *InboundRuleMutation {
	m := &InboundRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeInboundRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInboundRuleID sets the ID field of the mutation.
func withInboundRuleID(id string) inboundruleOption {
	return func(m *InboundRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *InboundRule
		)
		m.oldValue = func(ctx context.Context) (*InboundRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InboundRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInboundRule sets the old InboundRule of the mutation.
func withInboundRule(node *InboundRule) inboundruleOption {
	return func(m *InboundRuleMutation) {
		m.oldValue = func(context.Context) (*InboundRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InboundRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InboundRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InboundRule entities.
func (m *InboundRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InboundRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InboundRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InboundRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *InboundRuleMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InboundRuleMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InboundRuleMutation) ResetTenantID() {
	m.tenant = nil
}

// SetPattern sets the "pattern" field.
func (m *InboundRuleMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *InboundRuleMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *InboundRuleMutation) ResetPattern() {
	m.pattern = nil
}

// SetTargetKind sets the "target_kind" field.
func (m *InboundRuleMutation) SetTargetKind(ik inboundrule.TargetKind) {
	m.target_kind = &ik
}

// TargetKind returns the value of the "target_kind" field in the mutation.
func (m *InboundRuleMutation) TargetKind() (r inboundrule.TargetKind, exists bool) {
	v := m.target_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetKind returns the old "target_kind" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldTargetKind(ctx context.Context) (v inboundrule.TargetKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetKind: %w", err)
	}
	return oldValue.TargetKind, nil
}

// ResetTargetKind resets all changes to the "target_kind" field.
func (m *InboundRuleMutation) ResetTargetKind() {
	m.target_kind = nil
}

// SetTargetID sets the "target_id" field.
func (m *InboundRuleMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *InboundRuleMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *InboundRuleMutation) ResetTargetID() {
	m.target_id = nil
}

// SetPriority sets the "priority" field.
func (m *InboundRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *InboundRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *InboundRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *InboundRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *InboundRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *InboundRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *InboundRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *InboundRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InboundRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InboundRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InboundRule entity.
// If the InboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InboundRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InboundRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *InboundRuleMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[inboundrule.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *InboundRuleMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *InboundRuleMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *InboundRuleMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the InboundRuleMutation builder.
func (m *InboundRuleMutation) Where(ps ...predicate.InboundRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InboundRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InboundRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InboundRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InboundRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InboundRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InboundRule).
func (m *InboundRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InboundRuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, inboundrule.FieldTenantID)
	}
	if m.pattern != nil {
		fields = append(fields, inboundrule.FieldPattern)
	}
	if m.target_kind != nil {
		fields = append(fields, inboundrule.FieldTargetKind)
	}
	if m.target_id != nil {
		fields = append(fields, inboundrule.FieldTargetID)
	}
	if m.priority != nil {
		fields = append(fields, inboundrule.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, inboundrule.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, inboundrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InboundRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inboundrule.FieldTenantID:
		return m.TenantID()
	case inboundrule.FieldPattern:
		return m.Pattern()
	case inboundrule.FieldTargetKind:
		return m.TargetKind()
	case inboundrule.FieldTargetID:
		return m.TargetID()
	case inboundrule.FieldPriority:
		return m.Priority()
	case inboundrule.FieldEnabled:
		return m.Enabled()
	case inboundrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InboundRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inboundrule.FieldTenantID:
		return m.OldTenantID(ctx)
	case inboundrule.FieldPattern:
		return m.OldPattern(ctx)
	case inboundrule.FieldTargetKind:
		return m.OldTargetKind(ctx)
	case inboundrule.FieldTargetID:
		return m.OldTargetID(ctx)
	case inboundrule.FieldPriority:
		return m.OldPriority(ctx)
	case inboundrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case inboundrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InboundRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inboundrule.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case inboundrule.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case inboundrule.FieldTargetKind:
		v, ok := value.(inboundrule.TargetKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetKind(v)
		return nil
	case inboundrule.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case inboundrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case inboundrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case inboundrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InboundRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InboundRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, inboundrule.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InboundRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inboundrule.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InboundRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inboundrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown InboundRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InboundRuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InboundRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InboundRuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InboundRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InboundRuleMutation) ResetField(name string) error {
	switch name {
	case inboundrule.FieldTenantID:
		m.ResetTenantID()
		return nil
	case inboundrule.FieldPattern:
		m.ResetPattern()
		return nil
	case inboundrule.FieldTargetKind:
		m.ResetTargetKind()
		return nil
	case inboundrule.FieldTargetID:
		m.ResetTargetID()
		return nil
	case inboundrule.FieldPriority:
		m.ResetPriority()
		return nil
	case inboundrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case inboundrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown InboundRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InboundRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, inboundrule.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InboundRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case inboundrule.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InboundRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InboundRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InboundRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, inboundrule.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InboundRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case inboundrule.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InboundRuleMutation) ClearEdge(name string) error {
	switch name {
	case inboundrule.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown InboundRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InboundRuleMutation) ResetEdge(name string) error {
	switch name {
	case inboundrule.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown InboundRule edge %s", name)
}

// OutboundRuleMutation represents an operation that mutates the OutboundRule nodes in the graph.
type OutboundRuleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	caller_id           *string
	destination_pattern *string
	trunk_config        *map[string]interface{}
	priority            *int
	addpriority         *int
	enabled             *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	tenant              *string
	clearedtenant       bool
	done                bool
	oldValue            func(context.Context) (*OutboundRule, error)
	predicates          []predicate.OutboundRule
}

var _ ent.Mutation = (*OutboundRuleMutation)(nil)

// outboundruleOption allows management of the mutation configuration using functional options.
type outboundruleOption func(*OutboundRuleMutation)

// newOutboundRuleMutation creates new mutation for the OutboundRule entity.
func newOutboundRuleMutation(c config, op Op, opts ...outboundruleOption) *OutboundRuleMutation {
	m := &OutboundRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeOutboundRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutboundRuleID sets the ID field of the mutation.
func withOutboundRuleID(id string) outboundruleOption {
	return func(m *OutboundRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *OutboundRule
		)
		m.oldValue = func(ctx context.Context) (*OutboundRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutboundRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutboundRule sets the old OutboundRule of the mutation.
func withOutboundRule(node *OutboundRule) outboundruleOption {
	return func(m *OutboundRuleMutation) {
		m.oldValue = func(context.Context) (*OutboundRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutboundRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutboundRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutboundRule entities.
func (m *OutboundRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutboundRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutboundRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutboundRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OutboundRuleMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OutboundRuleMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OutboundRuleMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCallerID sets the "caller_id" field.
func (m *OutboundRuleMutation) SetCallerID(s string) {
	m.caller_id = &s
}

// CallerID returns the value of the "caller_id" field in the mutation.
func (m *OutboundRuleMutation) CallerID() (r string, exists bool) {
	v := m.caller_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallerID returns the old "caller_id" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldCallerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallerID: %w", err)
	}
	return oldValue.CallerID, nil
}

// ResetCallerID resets all changes to the "caller_id" field.
func (m *OutboundRuleMutation) ResetCallerID() {
	m.caller_id = nil
}

// SetDestinationPattern sets the "destination_pattern" field.
func (m *OutboundRuleMutation) SetDestinationPattern(s string) {
	m.destination_pattern = &s
}

// DestinationPattern returns the value of the "destination_pattern" field in the mutation.
func (m *OutboundRuleMutation) DestinationPattern() (r string, exists bool) {
	v := m.destination_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldDestinationPattern returns the old "destination_pattern" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldDestinationPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestinationPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestinationPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestinationPattern: %w", err)
	}
	return oldValue.DestinationPattern, nil
}

// ResetDestinationPattern resets all changes to the "destination_pattern" field.
func (m *OutboundRuleMutation) ResetDestinationPattern() {
	m.destination_pattern = nil
}

// SetTrunkConfig sets the "trunk_config" field.
func (m *OutboundRuleMutation) SetTrunkConfig(value map[string]interface{}) {
	m.trunk_config = &value
}

// TrunkConfig returns the value of the "trunk_config" field in the mutation.
func (m *OutboundRuleMutation) TrunkConfig() (r map[string]interface{}, exists bool) {
	v := m.trunk_config
	if v == nil {
		return
	}
	return *v, true
}

// OldTrunkConfig returns the old "trunk_config" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldTrunkConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrunkConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrunkConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrunkConfig: %w", err)
	}
	return oldValue.TrunkConfig, nil
}

// ClearTrunkConfig clears the value of the "trunk_config" field.
func (m *OutboundRuleMutation) ClearTrunkConfig() {
	m.trunk_config = nil
	m.clearedFields[outboundrule.FieldTrunkConfig] = struct{}{}
}

// TrunkConfigCleared returns if the "trunk_config" field was cleared in this mutation.
func (m *OutboundRuleMutation) TrunkConfigCleared() bool {
	_, ok := m.clearedFields[outboundrule.FieldTrunkConfig]
	return ok
}

// ResetTrunkConfig resets all changes to the "trunk_config" field.
func (m *OutboundRuleMutation) ResetTrunkConfig() {
	m.trunk_config = nil
	delete(m.clearedFields, outboundrule.FieldTrunkConfig)
}

// SetPriority sets the "priority" field.
func (m *OutboundRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *OutboundRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *OutboundRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *OutboundRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *OutboundRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *OutboundRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *OutboundRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *OutboundRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OutboundRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutboundRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutboundRule entity.
// If the OutboundRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutboundRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutboundRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *OutboundRuleMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[outboundrule.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *OutboundRuleMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *OutboundRuleMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *OutboundRuleMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the OutboundRuleMutation builder.
func (m *OutboundRuleMutation) Where(ps ...predicate.OutboundRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutboundRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutboundRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutboundRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutboundRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutboundRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutboundRule).
func (m *OutboundRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutboundRuleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, outboundrule.FieldTenantID)
	}
	if m.caller_id != nil {
		fields = append(fields, outboundrule.FieldCallerID)
	}
	if m.destination_pattern != nil {
		fields = append(fields, outboundrule.FieldDestinationPattern)
	}
	if m.trunk_config != nil {
		fields = append(fields, outboundrule.FieldTrunkConfig)
	}
	if m.priority != nil {
		fields = append(fields, outboundrule.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, outboundrule.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, outboundrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutboundRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outboundrule.FieldTenantID:
		return m.TenantID()
	case outboundrule.FieldCallerID:
		return m.CallerID()
	case outboundrule.FieldDestinationPattern:
		return m.DestinationPattern()
	case outboundrule.FieldTrunkConfig:
		return m.TrunkConfig()
	case outboundrule.FieldPriority:
		return m.Priority()
	case outboundrule.FieldEnabled:
		return m.Enabled()
	case outboundrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutboundRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outboundrule.FieldTenantID:
		return m.OldTenantID(ctx)
	case outboundrule.FieldCallerID:
		return m.OldCallerID(ctx)
	case outboundrule.FieldDestinationPattern:
		return m.OldDestinationPattern(ctx)
	case outboundrule.FieldTrunkConfig:
		return m.OldTrunkConfig(ctx)
	case outboundrule.FieldPriority:
		return m.OldPriority(ctx)
	case outboundrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case outboundrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutboundRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboundRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outboundrule.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case outboundrule.FieldCallerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallerID(v)
		return nil
	case outboundrule.FieldDestinationPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestinationPattern(v)
		return nil
	case outboundrule.FieldTrunkConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrunkConfig(v)
		return nil
	case outboundrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case outboundrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case outboundrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutboundRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutboundRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, outboundrule.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutboundRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case outboundrule.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutboundRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case outboundrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown OutboundRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutboundRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outboundrule.FieldTrunkConfig) {
		fields = append(fields, outboundrule.FieldTrunkConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutboundRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutboundRuleMutation) ClearField(name string) error {
	switch name {
	case outboundrule.FieldTrunkConfig:
		m.ClearTrunkConfig()
		return nil
	}
	return fmt.Errorf("unknown OutboundRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutboundRuleMutation) ResetField(name string) error {
	switch name {
	case outboundrule.FieldTenantID:
		m.ResetTenantID()
		return nil
	case outboundrule.FieldCallerID:
		m.ResetCallerID()
		return nil
	case outboundrule.FieldDestinationPattern:
		m.ResetDestinationPattern()
		return nil
	case outboundrule.FieldTrunkConfig:
		m.ResetTrunkConfig()
		return nil
	case outboundrule.FieldPriority:
		m.ResetPriority()
		return nil
	case outboundrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case outboundrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutboundRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutboundRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, outboundrule.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutboundRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outboundrule.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutboundRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutboundRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutboundRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, outboundrule.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutboundRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case outboundrule.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutboundRuleMutation) ClearEdge(name string) error {
	switch name {
	case outboundrule.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown OutboundRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutboundRuleMutation) ResetEdge(name string) error {
	switch name {
	case outboundrule.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown OutboundRule edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	domain                *string
	api_key               *string
	enabled               *bool
	metadata              *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	agents                map[string]struct{}
	removedagents         map[string]struct{}
	clearedagents         bool
	groups                map[string]struct{}
	removedgroups         map[string]struct{}
	clearedgroups         bool
	inbound_rules         map[string]struct{}
	removedinbound_rules  map[string]struct{}
	clearedinbound_rules  bool
	outbound_rules        map[string]struct{}
	removedoutbound_rules map[string]struct{}
	clearedoutbound_rules bool
	trunks                map[string]struct{}
	removedtrunks         map[string]struct{}
	clearedtrunks         bool
	sessions              map[string]struct{}
	removedsessions       map[string]struct{}
	clearedsessions       bool
	records               map[string]struct{}
	removedrecords        map[string]struct{}
	clearedrecords        bool
	done                  bool
	oldValue              func(context.Context) (*Tenant, error)
	predicates            []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetDomain sets the "domain" field.
func (m *TenantMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *TenantMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *TenantMutation) ResetDomain() {
	m.domain = nil
}

// SetAPIKey sets the "api_key" field.
func (m *TenantMutation) SetAPIKey(s string) {
	m.api_key = &s
}

// APIKey returns the value of the "api_key" field in the mutation.
func (m *TenantMutation) APIKey() (r string, exists bool) {
	v := m.api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKey returns the old "api_key" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKey: %w", err)
	}
	return oldValue.APIKey, nil
}

// ResetAPIKey resets all changes to the "api_key" field.
func (m *TenantMutation) ResetAPIKey() {
	m.api_key = nil
}

// SetEnabled sets the "enabled" field.
func (m *TenantMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TenantMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *TenantMutation) ResetEnabled() {
	m.enabled = nil
}

// SetMetadata sets the "metadata" field.
func (m *TenantMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TenantMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TenantMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[tenant.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TenantMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[tenant.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TenantMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, tenant.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentIDs adds the "agents" edge to the VoiceAgent entity by ids.
func (m *TenantMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the VoiceAgent entity.
func (m *TenantMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the VoiceAgent entity was cleared.
func (m *TenantMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the VoiceAgent entity by IDs.
func (m *TenantMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the VoiceAgent entity.
func (m *TenantMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *TenantMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *TenantMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddGroupIDs adds the "groups" edge to the AgentGroup entity by ids.
func (m *TenantMutation) AddGroupIDs(ids ...string) {
	if m.groups == nil {
		m.groups = make(map[string]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the AgentGroup entity.
func (m *TenantMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the AgentGroup entity was cleared.
func (m *TenantMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the AgentGroup entity by IDs.
func (m *TenantMutation) RemoveGroupIDs(ids ...string) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the AgentGroup entity.
func (m *TenantMutation) RemovedGroupsIDs() (ids []string) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *TenantMutation) GroupsIDs() (ids []string) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *TenantMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// AddInboundRuleIDs adds the "inbound_rules" edge to the InboundRule entity by ids.
func (m *TenantMutation) AddInboundRuleIDs(ids ...string) {
	if m.inbound_rules == nil {
		m.inbound_rules = make(map[string]struct{})
	}
	for i := range ids {
		m.inbound_rules[ids[i]] = struct{}{}
	}
}

// ClearInboundRules clears the "inbound_rules" edge to the InboundRule entity.
func (m *TenantMutation) ClearInboundRules() {
	m.clearedinbound_rules = true
}

// InboundRulesCleared reports if the "inbound_rules" edge to the InboundRule entity was cleared.
func (m *TenantMutation) InboundRulesCleared() bool {
	return m.clearedinbound_rules
}

// RemoveInboundRuleIDs removes the "inbound_rules" edge to the InboundRule entity by IDs.
func (m *TenantMutation) RemoveInboundRuleIDs(ids ...string) {
	if m.removedinbound_rules == nil {
		m.removedinbound_rules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.inbound_rules, ids[i])
		m.removedinbound_rules[ids[i]] = struct{}{}
	}
}

// RemovedInboundRules returns the removed IDs of the "inbound_rules" edge to the InboundRule entity.
func (m *TenantMutation) RemovedInboundRulesIDs() (ids []string) {
	for id := range m.removedinbound_rules {
		ids = append(ids, id)
	}
	return
}

// InboundRulesIDs returns the "inbound_rules" edge IDs in the mutation.
func (m *TenantMutation) InboundRulesIDs() (ids []string) {
	for id := range m.inbound_rules {
		ids = append(ids, id)
	}
	return
}

// ResetInboundRules resets all changes to the "inbound_rules" edge.
func (m *TenantMutation) ResetInboundRules() {
	m.inbound_rules = nil
	m.clearedinbound_rules = false
	m.removedinbound_rules = nil
}

// AddOutboundRuleIDs adds the "outbound_rules" edge to the OutboundRule entity by ids.
func (m *TenantMutation) AddOutboundRuleIDs(ids ...string) {
	if m.outbound_rules == nil {
		m.outbound_rules = make(map[string]struct{})
	}
	for i := range ids {
		m.outbound_rules[ids[i]] = struct{}{}
	}
}

// ClearOutboundRules clears the "outbound_rules" edge to the OutboundRule entity.
func (m *TenantMutation) ClearOutboundRules() {
	m.clearedoutbound_rules = true
}

// OutboundRulesCleared reports if the "outbound_rules" edge to the OutboundRule entity was cleared.
func (m *TenantMutation) OutboundRulesCleared() bool {
	return m.clearedoutbound_rules
}

// RemoveOutboundRuleIDs removes the "outbound_rules" edge to the OutboundRule entity by IDs.
func (m *TenantMutation) RemoveOutboundRuleIDs(ids ...string) {
	if m.removedoutbound_rules == nil {
		m.removedoutbound_rules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outbound_rules, ids[i])
		m.removedoutbound_rules[ids[i]] = struct{}{}
	}
}

// RemovedOutboundRules returns the removed IDs of the "outbound_rules" edge to the OutboundRule entity.
func (m *TenantMutation) RemovedOutboundRulesIDs() (ids []string) {
	for id := range m.removedoutbound_rules {
		ids = append(ids, id)
	}
	return
}

// OutboundRulesIDs returns the "outbound_rules" edge IDs in the mutation.
func (m *TenantMutation) OutboundRulesIDs() (ids []string) {
	for id := range m.outbound_rules {
		ids = append(ids, id)
	}
	return
}

// ResetOutboundRules resets all changes to the "outbound_rules" edge.
func (m *TenantMutation) ResetOutboundRules() {
	m.outbound_rules = nil
	m.clearedoutbound_rules = false
	m.removedoutbound_rules = nil
}

// AddTrunkIDs adds the "trunks" edge to the Trunk entity by ids.
func (m *TenantMutation) AddTrunkIDs(ids ...string) {
	if m.trunks == nil {
		m.trunks = make(map[string]struct{})
	}
	for i := range ids {
		m.trunks[ids[i]] = struct{}{}
	}
}

// ClearTrunks clears the "trunks" edge to the Trunk entity.
func (m *TenantMutation) ClearTrunks() {
	m.clearedtrunks = true
}

// TrunksCleared reports if the "trunks" edge to the Trunk entity was cleared.
func (m *TenantMutation) TrunksCleared() bool {
	return m.clearedtrunks
}

// RemoveTrunkIDs removes the "trunks" edge to the Trunk entity by IDs.
func (m *TenantMutation) RemoveTrunkIDs(ids ...string) {
	if m.removedtrunks == nil {
		m.removedtrunks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.trunks, ids[i])
		m.removedtrunks[ids[i]] = struct{}{}
	}
}

// RemovedTrunks returns the removed IDs of the "trunks" edge to the Trunk entity.
func (m *TenantMutation) RemovedTrunksIDs() (ids []string) {
	for id := range m.removedtrunks {
		ids = append(ids, id)
	}
	return
}

// TrunksIDs returns the "trunks" edge IDs in the mutation.
func (m *TenantMutation) TrunksIDs() (ids []string) {
	for id := range m.trunks {
		ids = append(ids, id)
	}
	return
}

// ResetTrunks resets all changes to the "trunks" edge.
func (m *TenantMutation) ResetTrunks() {
	m.trunks = nil
	m.clearedtrunks = false
	m.removedtrunks = nil
}

// AddSessionIDs adds the "sessions" edge to the CallSession entity by ids.
func (m *TenantMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the CallSession entity.
func (m *TenantMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the CallSession entity was cleared.
func (m *TenantMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the CallSession entity by IDs.
func (m *TenantMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the CallSession entity.
func (m *TenantMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TenantMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TenantMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddRecordIDs adds the "records" edge to the CallRecord entity by ids.
func (m *TenantMutation) AddRecordIDs(ids ...string) {
	if m.records == nil {
		m.records = make(map[string]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the CallRecord entity.
func (m *TenantMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the CallRecord entity was cleared.
func (m *TenantMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the CallRecord entity by IDs.
func (m *TenantMutation) RemoveRecordIDs(ids ...string) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the CallRecord entity.
func (m *TenantMutation) RemovedRecordsIDs() (ids []string) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *TenantMutation) RecordsIDs() (ids []string) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *TenantMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, tenant.FieldDomain)
	}
	if m.api_key != nil {
		fields = append(fields, tenant.FieldAPIKey)
	}
	if m.enabled != nil {
		fields = append(fields, tenant.FieldEnabled)
	}
	if m.metadata != nil {
		fields = append(fields, tenant.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldDomain:
		return m.Domain()
	case tenant.FieldAPIKey:
		return m.APIKey()
	case tenant.FieldEnabled:
		return m.Enabled()
	case tenant.FieldMetadata:
		return m.Metadata()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldDomain:
		return m.OldDomain(ctx)
	case tenant.FieldAPIKey:
		return m.OldAPIKey(ctx)
	case tenant.FieldEnabled:
		return m.OldEnabled(ctx)
	case tenant.FieldMetadata:
		return m.OldMetadata(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case tenant.FieldAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKey(v)
		return nil
	case tenant.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case tenant.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldMetadata) {
		fields = append(fields, tenant.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldDomain:
		m.ResetDomain()
		return nil
	case tenant.FieldAPIKey:
		m.ResetAPIKey()
		return nil
	case tenant.FieldEnabled:
		m.ResetEnabled()
		return nil
	case tenant.FieldMetadata:
		m.ResetMetadata()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.agents != nil {
		edges = append(edges, tenant.EdgeAgents)
	}
	if m.groups != nil {
		edges = append(edges, tenant.EdgeGroups)
	}
	if m.inbound_rules != nil {
		edges = append(edges, tenant.EdgeInboundRules)
	}
	if m.outbound_rules != nil {
		edges = append(edges, tenant.EdgeOutboundRules)
	}
	if m.trunks != nil {
		edges = append(edges, tenant.EdgeTrunks)
	}
	if m.sessions != nil {
		edges = append(edges, tenant.EdgeSessions)
	}
	if m.records != nil {
		edges = append(edges, tenant.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeInboundRules:
		ids := make([]ent.Value, 0, len(m.inbound_rules))
		for id := range m.inbound_rules {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeOutboundRules:
		ids := make([]ent.Value, 0, len(m.outbound_rules))
		for id := range m.outbound_rules {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeTrunks:
		ids := make([]ent.Value, 0, len(m.trunks))
		for id := range m.trunks {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedagents != nil {
		edges = append(edges, tenant.EdgeAgents)
	}
	if m.removedgroups != nil {
		edges = append(edges, tenant.EdgeGroups)
	}
	if m.removedinbound_rules != nil {
		edges = append(edges, tenant.EdgeInboundRules)
	}
	if m.removedoutbound_rules != nil {
		edges = append(edges, tenant.EdgeOutboundRules)
	}
	if m.removedtrunks != nil {
		edges = append(edges, tenant.EdgeTrunks)
	}
	if m.removedsessions != nil {
		edges = append(edges, tenant.EdgeSessions)
	}
	if m.removedrecords != nil {
		edges = append(edges, tenant.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeInboundRules:
		ids := make([]ent.Value, 0, len(m.removedinbound_rules))
		for id := range m.removedinbound_rules {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeOutboundRules:
		ids := make([]ent.Value, 0, len(m.removedoutbound_rules))
		for id := range m.removedoutbound_rules {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeTrunks:
		ids := make([]ent.Value, 0, len(m.removedtrunks))
		for id := range m.removedtrunks {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case tenant.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedagents {
		edges = append(edges, tenant.EdgeAgents)
	}
	if m.clearedgroups {
		edges = append(edges, tenant.EdgeGroups)
	}
	if m.clearedinbound_rules {
		edges = append(edges, tenant.EdgeInboundRules)
	}
	if m.clearedoutbound_rules {
		edges = append(edges, tenant.EdgeOutboundRules)
	}
	if m.clearedtrunks {
		edges = append(edges, tenant.EdgeTrunks)
	}
	if m.clearedsessions {
		edges = append(edges, tenant.EdgeSessions)
	}
	if m.clearedrecords {
		edges = append(edges, tenant.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeAgents:
		return m.clearedagents
	case tenant.EdgeGroups:
		return m.clearedgroups
	case tenant.EdgeInboundRules:
		return m.clearedinbound_rules
	case tenant.EdgeOutboundRules:
		return m.clearedoutbound_rules
	case tenant.EdgeTrunks:
		return m.clearedtrunks
	case tenant.EdgeSessions:
		return m.clearedsessions
	case tenant.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeAgents:
		m.ResetAgents()
		return nil
	case tenant.EdgeGroups:
		m.ResetGroups()
		return nil
	case tenant.EdgeInboundRules:
		m.ResetInboundRules()
		return nil
	case tenant.EdgeOutboundRules:
		m.ResetOutboundRules()
		return nil
	case tenant.EdgeTrunks:
		m.ResetTrunks()
		return nil
	case tenant.EdgeSessions:
		m.ResetSessions()
		return nil
	case tenant.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// TrunkMutation represents an operation that mutates the Trunk nodes in the graph.
type TrunkMutation struct {
	config
	op               Op
	typ              string
	id               *string
	carrier_trunk_id *string
	configuration    *map[string]interface{}
	priority         *int
	addpriority      *int
	capacity         *int
	addcapacity      *int
	enabled          *bool
	is_default       *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	tenant           *string
	clearedtenant    bool
	done             bool
	oldValue         func(context.Context) (*Trunk, error)
	predicates       []predicate.Trunk
}

var _ ent.Mutation = (*TrunkMutation)(nil)

// trunkOption allows management of the mutation configuration using functional options.
type trunkOption func(*TrunkMutation)

// newTrunkMutation creates new mutation for the Trunk entity.
func newTrunkMutation(c config, op Op, opts ...trunkOption) *TrunkMutation {
	m := &TrunkMutation{
		config:        c,
		op:            op,
		typ:           TypeTrunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrunkID sets the ID field of the mutation.
func withTrunkID(id string) trunkOption {
	return func(m *TrunkMutation) {
		var (
			err   error
			once  sync.Once
			value *Trunk
		)
		m.oldValue = func(ctx context.Context) (*Trunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrunk sets the old Trunk of the mutation.
func withTrunk(node *Trunk) trunkOption {
	return func(m *TrunkMutation) {
		m.oldValue = func(context.Context) (*Trunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trunk entities.
func (m *TrunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TrunkMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TrunkMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TrunkMutation) ResetTenantID() {
	m.tenant = nil
}

// SetCarrierTrunkID sets the "carrier_trunk_id" field.
func (m *TrunkMutation) SetCarrierTrunkID(s string) {
	m.carrier_trunk_id = &s
}

// CarrierTrunkID returns the value of the "carrier_trunk_id" field in the mutation.
func (m *TrunkMutation) CarrierTrunkID() (r string, exists bool) {
	v := m.carrier_trunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCarrierTrunkID returns the old "carrier_trunk_id" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldCarrierTrunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarrierTrunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarrierTrunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarrierTrunkID: %w", err)
	}
	return oldValue.CarrierTrunkID, nil
}

// ResetCarrierTrunkID resets all changes to the "carrier_trunk_id" field.
func (m *TrunkMutation) ResetCarrierTrunkID() {
	m.carrier_trunk_id = nil
}

// SetConfiguration sets the "configuration" field.
func (m *TrunkMutation) SetConfiguration(value map[string]interface{}) {
	m.configuration = &value
}

// Configuration returns the value of the "configuration" field in the mutation.
func (m *TrunkMutation) Configuration() (r map[string]interface{}, exists bool) {
	v := m.configuration
	if v == nil {
		return
	}
	return *v, true
}

// OldConfiguration returns the old "configuration" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldConfiguration(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfiguration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfiguration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfiguration: %w", err)
	}
	return oldValue.Configuration, nil
}

// ClearConfiguration clears the value of the "configuration" field.
func (m *TrunkMutation) ClearConfiguration() {
	m.configuration = nil
	m.clearedFields[trunk.FieldConfiguration] = struct{}{}
}

// ConfigurationCleared returns if the "configuration" field was cleared in this mutation.
func (m *TrunkMutation) ConfigurationCleared() bool {
	_, ok := m.clearedFields[trunk.FieldConfiguration]
	return ok
}

// ResetConfiguration resets all changes to the "configuration" field.
func (m *TrunkMutation) ResetConfiguration() {
	m.configuration = nil
	delete(m.clearedFields, trunk.FieldConfiguration)
}

// SetPriority sets the "priority" field.
func (m *TrunkMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TrunkMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TrunkMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TrunkMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TrunkMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetCapacity sets the "capacity" field.
func (m *TrunkMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *TrunkMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldCapacity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *TrunkMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *TrunkMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ClearCapacity clears the value of the "capacity" field.
func (m *TrunkMutation) ClearCapacity() {
	m.capacity = nil
	m.addcapacity = nil
	m.clearedFields[trunk.FieldCapacity] = struct{}{}
}

// CapacityCleared returns if the "capacity" field was cleared in this mutation.
func (m *TrunkMutation) CapacityCleared() bool {
	_, ok := m.clearedFields[trunk.FieldCapacity]
	return ok
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *TrunkMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
	delete(m.clearedFields, trunk.FieldCapacity)
}

// SetEnabled sets the "enabled" field.
func (m *TrunkMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *TrunkMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *TrunkMutation) ResetEnabled() {
	m.enabled = nil
}

// SetIsDefault sets the "is_default" field.
func (m *TrunkMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *TrunkMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *TrunkMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trunk entity.
// If the Trunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *TrunkMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[trunk.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *TrunkMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *TrunkMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *TrunkMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the TrunkMutation builder.
func (m *TrunkMutation) Where(ps ...predicate.Trunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trunk).
func (m *TrunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrunkMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, trunk.FieldTenantID)
	}
	if m.carrier_trunk_id != nil {
		fields = append(fields, trunk.FieldCarrierTrunkID)
	}
	if m.configuration != nil {
		fields = append(fields, trunk.FieldConfiguration)
	}
	if m.priority != nil {
		fields = append(fields, trunk.FieldPriority)
	}
	if m.capacity != nil {
		fields = append(fields, trunk.FieldCapacity)
	}
	if m.enabled != nil {
		fields = append(fields, trunk.FieldEnabled)
	}
	if m.is_default != nil {
		fields = append(fields, trunk.FieldIsDefault)
	}
	if m.created_at != nil {
		fields = append(fields, trunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trunk.FieldTenantID:
		return m.TenantID()
	case trunk.FieldCarrierTrunkID:
		return m.CarrierTrunkID()
	case trunk.FieldConfiguration:
		return m.Configuration()
	case trunk.FieldPriority:
		return m.Priority()
	case trunk.FieldCapacity:
		return m.Capacity()
	case trunk.FieldEnabled:
		return m.Enabled()
	case trunk.FieldIsDefault:
		return m.IsDefault()
	case trunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trunk.FieldTenantID:
		return m.OldTenantID(ctx)
	case trunk.FieldCarrierTrunkID:
		return m.OldCarrierTrunkID(ctx)
	case trunk.FieldConfiguration:
		return m.OldConfiguration(ctx)
	case trunk.FieldPriority:
		return m.OldPriority(ctx)
	case trunk.FieldCapacity:
		return m.OldCapacity(ctx)
	case trunk.FieldEnabled:
		return m.OldEnabled(ctx)
	case trunk.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case trunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trunk.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case trunk.FieldCarrierTrunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarrierTrunkID(v)
		return nil
	case trunk.FieldConfiguration:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfiguration(v)
		return nil
	case trunk.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case trunk.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case trunk.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case trunk.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case trunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrunkMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, trunk.FieldPriority)
	}
	if m.addcapacity != nil {
		fields = append(fields, trunk.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trunk.FieldPriority:
		return m.AddedPriority()
	case trunk.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trunk.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case trunk.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Trunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trunk.FieldConfiguration) {
		fields = append(fields, trunk.FieldConfiguration)
	}
	if m.FieldCleared(trunk.FieldCapacity) {
		fields = append(fields, trunk.FieldCapacity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrunkMutation) ClearField(name string) error {
	switch name {
	case trunk.FieldConfiguration:
		m.ClearConfiguration()
		return nil
	case trunk.FieldCapacity:
		m.ClearCapacity()
		return nil
	}
	return fmt.Errorf("unknown Trunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrunkMutation) ResetField(name string) error {
	switch name {
	case trunk.FieldTenantID:
		m.ResetTenantID()
		return nil
	case trunk.FieldCarrierTrunkID:
		m.ResetCarrierTrunkID()
		return nil
	case trunk.FieldConfiguration:
		m.ResetConfiguration()
		return nil
	case trunk.FieldPriority:
		m.ResetPriority()
		return nil
	case trunk.FieldCapacity:
		m.ResetCapacity()
		return nil
	case trunk.FieldEnabled:
		m.ResetEnabled()
		return nil
	case trunk.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case trunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, trunk.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trunk.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, trunk.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrunkMutation) EdgeCleared(name string) bool {
	switch name {
	case trunk.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrunkMutation) ClearEdge(name string) error {
	switch name {
	case trunk.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Trunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrunkMutation) ResetEdge(name string) error {
	switch name {
	case trunk.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown Trunk edge %s", name)
}

// VoiceAgentMutation represents an operation that mutates the VoiceAgent nodes in the graph.
type VoiceAgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	provider           *string
	service_value      *string
	username_cipher    *string
	password_cipher    *string
	enabled            *bool
	metadata           *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	tenant             *string
	clearedtenant      bool
	memberships        map[string]struct{}
	removedmemberships map[string]struct{}
	clearedmemberships bool
	done               bool
	oldValue           func(context.Context) (*VoiceAgent, error)
	predicates         []predicate.VoiceAgent
}

var _ ent.Mutation = (*VoiceAgentMutation)(nil)

// voiceagentOption allows management of the mutation configuration using functional options.
type voiceagentOption func(*VoiceAgentMutation)

// newVoiceAgentMutation creates new mutation for the VoiceAgent entity.
func newVoiceAgentMutation(c config, op Op, opts ...voiceagentOption) *VoiceAgentMutation {
	m := &VoiceAgentMutation{
		config:        c,
		op:            op,
		typ:           TypeVoiceAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoiceAgentID sets the ID field of the mutation.
func withVoiceAgentID(id string) voiceagentOption {
	return func(m *VoiceAgentMutation) {
		var (
			err   error
			once  sync.Once
			value *VoiceAgent
		)
		m.oldValue = func(ctx context.Context) (*VoiceAgent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VoiceAgent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVoiceAgent sets the old VoiceAgent of the mutation.
func withVoiceAgent(node *VoiceAgent) voiceagentOption {
	return func(m *VoiceAgentMutation) {
		m.oldValue = func(context.Context) (*VoiceAgent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoiceAgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoiceAgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VoiceAgent entities.
func (m *VoiceAgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoiceAgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoiceAgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VoiceAgent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *VoiceAgentMutation) SetTenantID(s string) {
	m.tenant = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *VoiceAgentMutation) TenantID() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *VoiceAgentMutation) ResetTenantID() {
	m.tenant = nil
}

// SetName sets the "name" field.
func (m *VoiceAgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VoiceAgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VoiceAgentMutation) ResetName() {
	m.name = nil
}

// SetProvider sets the "provider" field.
func (m *VoiceAgentMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *VoiceAgentMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *VoiceAgentMutation) ResetProvider() {
	m.provider = nil
}

// SetServiceValue sets the "service_value" field.
func (m *VoiceAgentMutation) SetServiceValue(s string) {
	m.service_value = &s
}

// ServiceValue returns the value of the "service_value" field in the mutation.
func (m *VoiceAgentMutation) ServiceValue() (r string, exists bool) {
	v := m.service_value
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceValue returns the old "service_value" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldServiceValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceValue: %w", err)
	}
	return oldValue.ServiceValue, nil
}

// ResetServiceValue resets all changes to the "service_value" field.
func (m *VoiceAgentMutation) ResetServiceValue() {
	m.service_value = nil
}

// SetUsernameCipher sets the "username_cipher" field.
func (m *VoiceAgentMutation) SetUsernameCipher(s string) {
	m.username_cipher = &s
}

// UsernameCipher returns the value of the "username_cipher" field in the mutation.
func (m *VoiceAgentMutation) UsernameCipher() (r string, exists bool) {
	v := m.username_cipher
	if v == nil {
		return
	}
	return *v, true
}

// OldUsernameCipher returns the old "username_cipher" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldUsernameCipher(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsernameCipher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsernameCipher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsernameCipher: %w", err)
	}
	return oldValue.UsernameCipher, nil
}

// ClearUsernameCipher clears the value of the "username_cipher" field.
func (m *VoiceAgentMutation) ClearUsernameCipher() {
	m.username_cipher = nil
	m.clearedFields[voiceagent.FieldUsernameCipher] = struct{}{}
}

// UsernameCipherCleared returns if the "username_cipher" field was cleared in this mutation.
func (m *VoiceAgentMutation) UsernameCipherCleared() bool {
	_, ok := m.clearedFields[voiceagent.FieldUsernameCipher]
	return ok
}

// ResetUsernameCipher resets all changes to the "username_cipher" field.
func (m *VoiceAgentMutation) ResetUsernameCipher() {
	m.username_cipher = nil
	delete(m.clearedFields, voiceagent.FieldUsernameCipher)
}

// SetPasswordCipher sets the "password_cipher" field.
func (m *VoiceAgentMutation) SetPasswordCipher(s string) {
	m.password_cipher = &s
}

// PasswordCipher returns the value of the "password_cipher" field in the mutation.
func (m *VoiceAgentMutation) PasswordCipher() (r string, exists bool) {
	v := m.password_cipher
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordCipher returns the old "password_cipher" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldPasswordCipher(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordCipher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordCipher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordCipher: %w", err)
	}
	return oldValue.PasswordCipher, nil
}

// ClearPasswordCipher clears the value of the "password_cipher" field.
func (m *VoiceAgentMutation) ClearPasswordCipher() {
	m.password_cipher = nil
	m.clearedFields[voiceagent.FieldPasswordCipher] = struct{}{}
}

// PasswordCipherCleared returns if the "password_cipher" field was cleared in this mutation.
func (m *VoiceAgentMutation) PasswordCipherCleared() bool {
	_, ok := m.clearedFields[voiceagent.FieldPasswordCipher]
	return ok
}

// ResetPasswordCipher resets all changes to the "password_cipher" field.
func (m *VoiceAgentMutation) ResetPasswordCipher() {
	m.password_cipher = nil
	delete(m.clearedFields, voiceagent.FieldPasswordCipher)
}

// SetEnabled sets the "enabled" field.
func (m *VoiceAgentMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *VoiceAgentMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *VoiceAgentMutation) ResetEnabled() {
	m.enabled = nil
}

// SetMetadata sets the "metadata" field.
func (m *VoiceAgentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *VoiceAgentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *VoiceAgentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[voiceagent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *VoiceAgentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[voiceagent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *VoiceAgentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, voiceagent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *VoiceAgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoiceAgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoiceAgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VoiceAgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VoiceAgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VoiceAgent entity.
// If the VoiceAgent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceAgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VoiceAgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *VoiceAgentMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[voiceagent.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *VoiceAgentMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *VoiceAgentMutation) TenantIDs() (ids []string) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *VoiceAgentMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// AddMembershipIDs adds the "memberships" edge to the GroupMember entity by ids.
func (m *VoiceAgentMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the GroupMember entity.
func (m *VoiceAgentMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the GroupMember entity was cleared.
func (m *VoiceAgentMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the GroupMember entity by IDs.
func (m *VoiceAgentMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the GroupMember entity.
func (m *VoiceAgentMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *VoiceAgentMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *VoiceAgentMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// Where appends a list predicates to the VoiceAgentMutation builder.
func (m *VoiceAgentMutation) Where(ps ...predicate.VoiceAgent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoiceAgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoiceAgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VoiceAgent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoiceAgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoiceAgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VoiceAgent).
func (m *VoiceAgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoiceAgentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant != nil {
		fields = append(fields, voiceagent.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, voiceagent.FieldName)
	}
	if m.provider != nil {
		fields = append(fields, voiceagent.FieldProvider)
	}
	if m.service_value != nil {
		fields = append(fields, voiceagent.FieldServiceValue)
	}
	if m.username_cipher != nil {
		fields = append(fields, voiceagent.FieldUsernameCipher)
	}
	if m.password_cipher != nil {
		fields = append(fields, voiceagent.FieldPasswordCipher)
	}
	if m.enabled != nil {
		fields = append(fields, voiceagent.FieldEnabled)
	}
	if m.metadata != nil {
		fields = append(fields, voiceagent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, voiceagent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, voiceagent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoiceAgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case voiceagent.FieldTenantID:
		return m.TenantID()
	case voiceagent.FieldName:
		return m.Name()
	case voiceagent.FieldProvider:
		return m.Provider()
	case voiceagent.FieldServiceValue:
		return m.ServiceValue()
	case voiceagent.FieldUsernameCipher:
		return m.UsernameCipher()
	case voiceagent.FieldPasswordCipher:
		return m.PasswordCipher()
	case voiceagent.FieldEnabled:
		return m.Enabled()
	case voiceagent.FieldMetadata:
		return m.Metadata()
	case voiceagent.FieldCreatedAt:
		return m.CreatedAt()
	case voiceagent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoiceAgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case voiceagent.FieldTenantID:
		return m.OldTenantID(ctx)
	case voiceagent.FieldName:
		return m.OldName(ctx)
	case voiceagent.FieldProvider:
		return m.OldProvider(ctx)
	case voiceagent.FieldServiceValue:
		return m.OldServiceValue(ctx)
	case voiceagent.FieldUsernameCipher:
		return m.OldUsernameCipher(ctx)
	case voiceagent.FieldPasswordCipher:
		return m.OldPasswordCipher(ctx)
	case voiceagent.FieldEnabled:
		return m.OldEnabled(ctx)
	case voiceagent.FieldMetadata:
		return m.OldMetadata(ctx)
	case voiceagent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case voiceagent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VoiceAgent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoiceAgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case voiceagent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case voiceagent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case voiceagent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case voiceagent.FieldServiceValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceValue(v)
		return nil
	case voiceagent.FieldUsernameCipher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsernameCipher(v)
		return nil
	case voiceagent.FieldPasswordCipher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordCipher(v)
		return nil
	case voiceagent.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case voiceagent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case voiceagent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case voiceagent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VoiceAgent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoiceAgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoiceAgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoiceAgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VoiceAgent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoiceAgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(voiceagent.FieldUsernameCipher) {
		fields = append(fields, voiceagent.FieldUsernameCipher)
	}
	if m.FieldCleared(voiceagent.FieldPasswordCipher) {
		fields = append(fields, voiceagent.FieldPasswordCipher)
	}
	if m.FieldCleared(voiceagent.FieldMetadata) {
		fields = append(fields, voiceagent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoiceAgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoiceAgentMutation) ClearField(name string) error {
	switch name {
	case voiceagent.FieldUsernameCipher:
		m.ClearUsernameCipher()
		return nil
	case voiceagent.FieldPasswordCipher:
		m.ClearPasswordCipher()
		return nil
	case voiceagent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown VoiceAgent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoiceAgentMutation) ResetField(name string) error {
	switch name {
	case voiceagent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case voiceagent.FieldName:
		m.ResetName()
		return nil
	case voiceagent.FieldProvider:
		m.ResetProvider()
		return nil
	case voiceagent.FieldServiceValue:
		m.ResetServiceValue()
		return nil
	case voiceagent.FieldUsernameCipher:
		m.ResetUsernameCipher()
		return nil
	case voiceagent.FieldPasswordCipher:
		m.ResetPasswordCipher()
		return nil
	case voiceagent.FieldEnabled:
		m.ResetEnabled()
		return nil
	case voiceagent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case voiceagent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case voiceagent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VoiceAgent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoiceAgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.tenant != nil {
		edges = append(edges, voiceagent.EdgeTenant)
	}
	if m.memberships != nil {
		edges = append(edges, voiceagent.EdgeMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoiceAgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case voiceagent.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	case voiceagent.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoiceAgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmemberships != nil {
		edges = append(edges, voiceagent.EdgeMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoiceAgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case voiceagent.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoiceAgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtenant {
		edges = append(edges, voiceagent.EdgeTenant)
	}
	if m.clearedmemberships {
		edges = append(edges, voiceagent.EdgeMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoiceAgentMutation) EdgeCleared(name string) bool {
	switch name {
	case voiceagent.EdgeTenant:
		return m.clearedtenant
	case voiceagent.EdgeMemberships:
		return m.clearedmemberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoiceAgentMutation) ClearEdge(name string) error {
	switch name {
	case voiceagent.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown VoiceAgent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoiceAgentMutation) ResetEdge(name string) error {
	switch name {
	case voiceagent.EdgeTenant:
		m.ResetTenant()
		return nil
	case voiceagent.EdgeMemberships:
		m.ResetMemberships()
		return nil
	}
	return fmt.Errorf("unknown VoiceAgent edge %s", name)
}
