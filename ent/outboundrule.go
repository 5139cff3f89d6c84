// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/tenant"
)

// OutboundRule is the model entity for the OutboundRule schema.
type OutboundRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CallerID holds the value of the "caller_id" field.
	CallerID string `json:"caller_id,omitempty"`
	// DestinationPattern holds the value of the "destination_pattern" field.
	DestinationPattern string `json:"destination_pattern,omitempty"`
	// trunk_ids[], ring_timeout?, max_duration?, priority?
	TrunkConfig map[string]interface{} `json:"trunk_config,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OutboundRuleQuery when eager-loading is set.
	Edges        OutboundRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OutboundRuleEdges holds the relations/edges for other nodes in the graph.
type OutboundRuleEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OutboundRuleEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutboundRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outboundrule.FieldTrunkConfig:
			values[i] = new([]byte)
		case outboundrule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case outboundrule.FieldPriority:
			values[i] = new(sql.NullInt64)
		case outboundrule.FieldID, outboundrule.FieldTenantID, outboundrule.FieldCallerID, outboundrule.FieldDestinationPattern:
			values[i] = new(sql.NullString)
		case outboundrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutboundRule fields.
func (_m *OutboundRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outboundrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outboundrule.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case outboundrule.FieldCallerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caller_id", values[i])
			} else if value.Valid {
				_m.CallerID = value.String
			}
		case outboundrule.FieldDestinationPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination_pattern", values[i])
			} else if value.Valid {
				_m.DestinationPattern = value.String
			}
		case outboundrule.FieldTrunkConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trunk_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TrunkConfig); err != nil {
					return fmt.Errorf("unmarshal field trunk_config: %w", err)
				}
			}
		case outboundrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case outboundrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case outboundrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutboundRule.
// This includes values selected through modifiers, order, etc.
func (_m *OutboundRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the OutboundRule entity.
func (_m *OutboundRule) QueryTenant() *TenantQuery {
	return NewOutboundRuleClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this OutboundRule.
// Note that you need to call OutboundRule.Unwrap() before calling this method if this OutboundRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutboundRule) Update() *OutboundRuleUpdateOne {
	return NewOutboundRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutboundRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutboundRule) Unwrap() *OutboundRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutboundRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutboundRule) String() string {
	var builder strings.Builder
	builder.WriteString("OutboundRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("caller_id=")
	builder.WriteString(_m.CallerID)
	builder.WriteString(", ")
	builder.WriteString("destination_pattern=")
	builder.WriteString(_m.DestinationPattern)
	builder.WriteString(", ")
	builder.WriteString("trunk_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrunkConfig))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OutboundRules is a parsable slice of OutboundRule.
type OutboundRules []*OutboundRule
