// Code generated by ent, DO NOT EDIT.

package callsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the callsession type in the database.
	Label = "call_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldSessionToken holds the string denoting the session_token field in the database.
	FieldSessionToken = "session_token"
	// FieldCallSid holds the string denoting the call_sid field in the database.
	FieldCallSid = "call_sid"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldCallerID holds the string denoting the caller_id field in the database.
	FieldCallerID = "caller_id"
	// FieldDestination holds the string denoting the destination field in the database.
	FieldDestination = "destination"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeRecord holds the string denoting the record edge name in mutations.
	EdgeRecord = "record"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// CallEventFieldID holds the string denoting the ID field of the CallEvent.
	CallEventFieldID = "event_id"
	// CallRecordFieldID holds the string denoting the ID field of the CallRecord.
	CallRecordFieldID = "record_id"
	// Table holds the table name of the callsession in the database.
	Table = "call_sessions"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "call_sessions"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "call_events"
	// EventsInverseTable is the table name for the CallEvent entity.
	// It exists in this package in order to avoid circular dependency with the "callevent" package.
	EventsInverseTable = "call_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
	// RecordTable is the table that holds the record relation/edge.
	RecordTable = "call_records"
	// RecordInverseTable is the table name for the CallRecord entity.
	// It exists in this package in order to avoid circular dependency with the "callrecord" package.
	RecordInverseTable = "call_records"
	// RecordColumn is the table column denoting the record relation/edge.
	RecordColumn = "call_session_record"
)

// Columns holds all SQL columns for callsession fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldSessionToken,
	FieldCallSid,
	FieldDirection,
	FieldCallerID,
	FieldDestination,
	FieldState,
	FieldStartedAt,
	FieldAnsweredAt,
	FieldEndedAt,
	FieldDurationSeconds,
	FieldAgentID,
	FieldGroupID,
	FieldHistory,
	FieldMetadata,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Direction defines the type for the "direction" enum field.
type Direction string

// DirectionInbound is the default value of the Direction enum.
const DefaultDirection = DirectionInbound

// Direction values.
const (
	DirectionInbound    Direction = "inbound"
	DirectionOutbound   Direction = "outbound"
	DirectionSubscriber Direction = "subscriber"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionInbound, DirectionOutbound, DirectionSubscriber:
		return nil
	default:
		return fmt.Errorf("callsession: invalid enum value for direction field: %q", d)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateReceived is the default value of the State enum.
const DefaultState = StateReceived

// State values.
const (
	StateReceived   State = "received"
	StateQueued     State = "queued"
	StateRouting    State = "routing"
	StateConnecting State = "connecting"
	StateConnected  State = "connected"
	StateCompleted  State = "completed"
	StateBusy       State = "busy"
	StateFailed     State = "failed"
	StateNoAnswer   State = "no_answer"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateReceived, StateQueued, StateRouting, StateConnecting, StateConnected, StateCompleted, StateBusy, StateFailed, StateNoAnswer:
		return nil
	default:
		return fmt.Errorf("callsession: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the CallSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// BySessionToken orders the results by the session_token field.
func BySessionToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionToken, opts...).ToFunc()
}

// ByCallSid orders the results by the call_sid field.
func ByCallSid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallSid, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByCallerID orders the results by the caller_id field.
func ByCallerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallerID, opts...).ToFunc()
}

// ByDestination orders the results by the destination field.
func ByDestination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestination, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecordField orders the results by record field.
func ByRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, CallEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordInverseTable, CallRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, RecordTable, RecordColumn),
	)
}
