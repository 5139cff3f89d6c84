// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldAPIKey holds the string denoting the api_key field in the database.
	FieldAPIKey = "api_key"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgeGroups holds the string denoting the groups edge name in mutations.
	EdgeGroups = "groups"
	// EdgeInboundRules holds the string denoting the inbound_rules edge name in mutations.
	EdgeInboundRules = "inbound_rules"
	// EdgeOutboundRules holds the string denoting the outbound_rules edge name in mutations.
	EdgeOutboundRules = "outbound_rules"
	// EdgeTrunks holds the string denoting the trunks edge name in mutations.
	EdgeTrunks = "trunks"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeRecords holds the string denoting the records edge name in mutations.
	EdgeRecords = "records"
	// VoiceAgentFieldID holds the string denoting the ID field of the VoiceAgent.
	VoiceAgentFieldID = "agent_id"
	// AgentGroupFieldID holds the string denoting the ID field of the AgentGroup.
	AgentGroupFieldID = "group_id"
	// InboundRuleFieldID holds the string denoting the ID field of the InboundRule.
	InboundRuleFieldID = "rule_id"
	// OutboundRuleFieldID holds the string denoting the ID field of the OutboundRule.
	OutboundRuleFieldID = "rule_id"
	// TrunkFieldID holds the string denoting the ID field of the Trunk.
	TrunkFieldID = "trunk_id"
	// CallSessionFieldID holds the string denoting the ID field of the CallSession.
	CallSessionFieldID = "session_id"
	// CallRecordFieldID holds the string denoting the ID field of the CallRecord.
	CallRecordFieldID = "record_id"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "voice_agents"
	// AgentsInverseTable is the table name for the VoiceAgent entity.
	// It exists in this package in order to avoid circular dependency with the "voiceagent" package.
	AgentsInverseTable = "voice_agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "tenant_id"
	// GroupsTable is the table that holds the groups relation/edge.
	GroupsTable = "agent_groups"
	// GroupsInverseTable is the table name for the AgentGroup entity.
	// It exists in this package in order to avoid circular dependency with the "agentgroup" package.
	GroupsInverseTable = "agent_groups"
	// GroupsColumn is the table column denoting the groups relation/edge.
	GroupsColumn = "tenant_id"
	// InboundRulesTable is the table that holds the inbound_rules relation/edge.
	InboundRulesTable = "inbound_rules"
	// InboundRulesInverseTable is the table name for the InboundRule entity.
	// It exists in this package in order to avoid circular dependency with the "inboundrule" package.
	InboundRulesInverseTable = "inbound_rules"
	// InboundRulesColumn is the table column denoting the inbound_rules relation/edge.
	InboundRulesColumn = "tenant_id"
	// OutboundRulesTable is the table that holds the outbound_rules relation/edge.
	OutboundRulesTable = "outbound_rules"
	// OutboundRulesInverseTable is the table name for the OutboundRule entity.
	// It exists in this package in order to avoid circular dependency with the "outboundrule" package.
	OutboundRulesInverseTable = "outbound_rules"
	// OutboundRulesColumn is the table column denoting the outbound_rules relation/edge.
	OutboundRulesColumn = "tenant_id"
	// TrunksTable is the table that holds the trunks relation/edge.
	TrunksTable = "trunks"
	// TrunksInverseTable is the table name for the Trunk entity.
	// It exists in this package in order to avoid circular dependency with the "trunk" package.
	TrunksInverseTable = "trunks"
	// TrunksColumn is the table column denoting the trunks relation/edge.
	TrunksColumn = "tenant_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "call_sessions"
	// SessionsInverseTable is the table name for the CallSession entity.
	// It exists in this package in order to avoid circular dependency with the "callsession" package.
	SessionsInverseTable = "call_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "tenant_id"
	// RecordsTable is the table that holds the records relation/edge.
	RecordsTable = "call_records"
	// RecordsInverseTable is the table name for the CallRecord entity.
	// It exists in this package in order to avoid circular dependency with the "callrecord" package.
	RecordsInverseTable = "call_records"
	// RecordsColumn is the table column denoting the records relation/edge.
	RecordsColumn = "tenant_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDomain,
	FieldAPIKey,
	FieldEnabled,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
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

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByAPIKey orders the results by the api_key field.
func ByAPIKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKey, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGroupsCount orders the results by groups count.
func ByGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupsStep(), opts...)
	}
}

// ByGroups orders the results by groups terms.
func ByGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInboundRulesCount orders the results by inbound_rules count.
func ByInboundRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInboundRulesStep(), opts...)
	}
}

// ByInboundRules orders the results by inbound_rules terms.
func ByInboundRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInboundRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutboundRulesCount orders the results by outbound_rules count.
func ByOutboundRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutboundRulesStep(), opts...)
	}
}

// ByOutboundRules orders the results by outbound_rules terms.
func ByOutboundRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutboundRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrunksCount orders the results by trunks count.
func ByTrunksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrunksStep(), opts...)
	}
}

// ByTrunks orders the results by trunks terms.
func ByTrunks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrunksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecordsCount orders the results by records count.
func ByRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecordsStep(), opts...)
	}
}

// ByRecords orders the results by records terms.
func ByRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, VoiceAgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupsInverseTable, AgentGroupFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
	)
}
func newInboundRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InboundRulesInverseTable, InboundRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InboundRulesTable, InboundRulesColumn),
	)
}
func newOutboundRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutboundRulesInverseTable, OutboundRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutboundRulesTable, OutboundRulesColumn),
	)
}
func newTrunksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrunksInverseTable, TrunkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrunksTable, TrunksColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, CallSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordsInverseTable, CallRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
	)
}
