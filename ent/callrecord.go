// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/tenant"
)

// CallRecord is the model entity for the CallRecord schema.
type CallRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CallID holds the value of the "call_id" field.
	CallID string `json:"call_id,omitempty"`
	// SessionToken holds the value of the "session_token" field.
	SessionToken string `json:"session_token,omitempty"`
	// FromNumber holds the value of the "from_number" field.
	FromNumber string `json:"from_number,omitempty"`
	// ToNumber holds the value of the "to_number" field.
	ToNumber string `json:"to_number,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction string `json:"direction,omitempty"`
	// Mapped carrier disposition: ANSWER, BUSY, CANCEL, CONGESTION, NOANSWER, FAILED
	Disposition string `json:"disposition,omitempty"`
	// CallStartTime holds the value of the "call_start_time" field.
	CallStartTime *time.Time `json:"call_start_time,omitempty"`
	// AnswerTime holds the value of the "answer_time" field.
	AnswerTime *time.Time `json:"answer_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime *time.Time `json:"end_time,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// BilledSeconds holds the value of the "billed_seconds" field.
	BilledSeconds int `json:"billed_seconds,omitempty"`
	// RawPayload holds the value of the "raw_payload" field.
	RawPayload map[string]interface{} `json:"raw_payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CallRecordQuery when eager-loading is set.
	Edges               CallRecordEdges `json:"edges"`
	call_session_record *string
	selectValues        sql.SelectValues
}

// CallRecordEdges holds the relations/edges for other nodes in the graph.
type CallRecordEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Session holds the value of the session edge.
	Session *CallSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallRecordEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CallRecordEdges) SessionOrErr() (*CallSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: callsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CallRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case callrecord.FieldRawPayload:
			values[i] = new([]byte)
		case callrecord.FieldDurationSeconds, callrecord.FieldBilledSeconds:
			values[i] = new(sql.NullInt64)
		case callrecord.FieldID, callrecord.FieldTenantID, callrecord.FieldCallID, callrecord.FieldSessionToken, callrecord.FieldFromNumber, callrecord.FieldToNumber, callrecord.FieldDirection, callrecord.FieldDisposition:
			values[i] = new(sql.NullString)
		case callrecord.FieldCallStartTime, callrecord.FieldAnswerTime, callrecord.FieldEndTime, callrecord.FieldCreatedAt, callrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case callrecord.ForeignKeys[0]: // call_session_record
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CallRecord fields.
func (_m *CallRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case callrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case callrecord.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case callrecord.FieldCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_id", values[i])
			} else if value.Valid {
				_m.CallID = value.String
			}
		case callrecord.FieldSessionToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_token", values[i])
			} else if value.Valid {
				_m.SessionToken = value.String
			}
		case callrecord.FieldFromNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_number", values[i])
			} else if value.Valid {
				_m.FromNumber = value.String
			}
		case callrecord.FieldToNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_number", values[i])
			} else if value.Valid {
				_m.ToNumber = value.String
			}
		case callrecord.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = value.String
			}
		case callrecord.FieldDisposition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disposition", values[i])
			} else if value.Valid {
				_m.Disposition = value.String
			}
		case callrecord.FieldCallStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field call_start_time", values[i])
			} else if value.Valid {
				_m.CallStartTime = new(time.Time)
				*_m.CallStartTime = value.Time
			}
		case callrecord.FieldAnswerTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answer_time", values[i])
			} else if value.Valid {
				_m.AnswerTime = new(time.Time)
				*_m.AnswerTime = value.Time
			}
		case callrecord.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case callrecord.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case callrecord.FieldBilledSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field billed_seconds", values[i])
			} else if value.Valid {
				_m.BilledSeconds = int(value.Int64)
			}
		case callrecord.FieldRawPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawPayload); err != nil {
					return fmt.Errorf("unmarshal field raw_payload: %w", err)
				}
			}
		case callrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case callrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case callrecord.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field call_session_record", values[i])
			} else if value.Valid {
				_m.call_session_record = new(string)
				*_m.call_session_record = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CallRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CallRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the CallRecord entity.
func (_m *CallRecord) QueryTenant() *TenantQuery {
	return NewCallRecordClient(_m.config).QueryTenant(_m)
}

// QuerySession queries the "session" edge of the CallRecord entity.
func (_m *CallRecord) QuerySession() *CallSessionQuery {
	return NewCallRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this CallRecord.
// Note that you need to call CallRecord.Unwrap() before calling this method if this CallRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CallRecord) Update() *CallRecordUpdateOne {
	return NewCallRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CallRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CallRecord) Unwrap() *CallRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CallRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CallRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CallRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("call_id=")
	builder.WriteString(_m.CallID)
	builder.WriteString(", ")
	builder.WriteString("session_token=")
	builder.WriteString(_m.SessionToken)
	builder.WriteString(", ")
	builder.WriteString("from_number=")
	builder.WriteString(_m.FromNumber)
	builder.WriteString(", ")
	builder.WriteString("to_number=")
	builder.WriteString(_m.ToNumber)
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(_m.Direction)
	builder.WriteString(", ")
	builder.WriteString("disposition=")
	builder.WriteString(_m.Disposition)
	builder.WriteString(", ")
	if v := _m.CallStartTime; v != nil {
		builder.WriteString("call_start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AnswerTime; v != nil {
		builder.WriteString("answer_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("billed_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.BilledSeconds))
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPayload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CallRecords is a parsable slice of CallRecord.
type CallRecords []*CallRecord
