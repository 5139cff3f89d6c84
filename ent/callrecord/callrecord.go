// Code generated by ent, DO NOT EDIT.

package callrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the callrecord type in the database.
	Label = "call_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCallID holds the string denoting the call_id field in the database.
	FieldCallID = "call_id"
	// FieldSessionToken holds the string denoting the session_token field in the database.
	FieldSessionToken = "session_token"
	// FieldFromNumber holds the string denoting the from_number field in the database.
	FieldFromNumber = "from_number"
	// FieldToNumber holds the string denoting the to_number field in the database.
	FieldToNumber = "to_number"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldDisposition holds the string denoting the disposition field in the database.
	FieldDisposition = "disposition"
	// FieldCallStartTime holds the string denoting the call_start_time field in the database.
	FieldCallStartTime = "call_start_time"
	// FieldAnswerTime holds the string denoting the answer_time field in the database.
	FieldAnswerTime = "answer_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldBilledSeconds holds the string denoting the billed_seconds field in the database.
	FieldBilledSeconds = "billed_seconds"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// CallSessionFieldID holds the string denoting the ID field of the CallSession.
	CallSessionFieldID = "session_id"
	// Table holds the table name of the callrecord in the database.
	Table = "call_records"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "call_records"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "call_records"
	// SessionInverseTable is the table name for the CallSession entity.
	// It exists in this package in order to avoid circular dependency with the "callsession" package.
	SessionInverseTable = "call_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "call_session_record"
)

// Columns holds all SQL columns for callrecord fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCallID,
	FieldSessionToken,
	FieldFromNumber,
	FieldToNumber,
	FieldDirection,
	FieldDisposition,
	FieldCallStartTime,
	FieldAnswerTime,
	FieldEndTime,
	FieldDurationSeconds,
	FieldBilledSeconds,
	FieldRawPayload,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "call_records"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"call_session_record",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds int
	// DefaultBilledSeconds holds the default value on creation for the "billed_seconds" field.
	DefaultBilledSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CallRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCallID orders the results by the call_id field.
func ByCallID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallID, opts...).ToFunc()
}

// BySessionToken orders the results by the session_token field.
func BySessionToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionToken, opts...).ToFunc()
}

// ByFromNumber orders the results by the from_number field.
func ByFromNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromNumber, opts...).ToFunc()
}

// ByToNumber orders the results by the to_number field.
func ByToNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToNumber, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByDisposition orders the results by the disposition field.
func ByDisposition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisposition, opts...).ToFunc()
}

// ByCallStartTime orders the results by the call_start_time field.
func ByCallStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallStartTime, opts...).ToFunc()
}

// ByAnswerTime orders the results by the answer_time field.
func ByAnswerTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByBilledSeconds orders the results by the billed_seconds field.
func ByBilledSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBilledSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, CallSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
