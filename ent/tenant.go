// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voxroute/voxroute/ent/tenant"
)

// Tenant is the model entity for the Tenant schema.
type Tenant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Carrier-facing domain; path segment of the webhook URLs
	Domain string `json:"domain,omitempty"`
	// Validated against the X-CX-APIKey header
	APIKey string `json:"-"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantQuery when eager-loading is set.
	Edges        TenantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantEdges holds the relations/edges for other nodes in the graph.
type TenantEdges struct {
	// Agents holds the value of the agents edge.
	Agents []*VoiceAgent `json:"agents,omitempty"`
	// Groups holds the value of the groups edge.
	Groups []*AgentGroup `json:"groups,omitempty"`
	// InboundRules holds the value of the inbound_rules edge.
	InboundRules []*InboundRule `json:"inbound_rules,omitempty"`
	// OutboundRules holds the value of the outbound_rules edge.
	OutboundRules []*OutboundRule `json:"outbound_rules,omitempty"`
	// Trunks holds the value of the trunks edge.
	Trunks []*Trunk `json:"trunks,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*CallSession `json:"sessions,omitempty"`
	// Records holds the value of the records edge.
	Records []*CallRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [7]bool
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) AgentsOrErr() ([]*VoiceAgent, error) {
	if e.loadedTypes[0] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// GroupsOrErr returns the Groups value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) GroupsOrErr() ([]*AgentGroup, error) {
	if e.loadedTypes[1] {
		return e.Groups, nil
	}
	return nil, &NotLoadedError{edge: "groups"}
}

// InboundRulesOrErr returns the InboundRules value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) InboundRulesOrErr() ([]*InboundRule, error) {
	if e.loadedTypes[2] {
		return e.InboundRules, nil
	}
	return nil, &NotLoadedError{edge: "inbound_rules"}
}

// OutboundRulesOrErr returns the OutboundRules value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) OutboundRulesOrErr() ([]*OutboundRule, error) {
	if e.loadedTypes[3] {
		return e.OutboundRules, nil
	}
	return nil, &NotLoadedError{edge: "outbound_rules"}
}

// TrunksOrErr returns the Trunks value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) TrunksOrErr() ([]*Trunk, error) {
	if e.loadedTypes[4] {
		return e.Trunks, nil
	}
	return nil, &NotLoadedError{edge: "trunks"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) SessionsOrErr() ([]*CallSession, error) {
	if e.loadedTypes[5] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) RecordsOrErr() ([]*CallRecord, error) {
	if e.loadedTypes[6] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tenant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenant.FieldMetadata:
			values[i] = new([]byte)
		case tenant.FieldEnabled:
			values[i] = new(sql.NullBool)
		case tenant.FieldID, tenant.FieldName, tenant.FieldDomain, tenant.FieldAPIKey:
			values[i] = new(sql.NullString)
		case tenant.FieldCreatedAt, tenant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tenant fields.
func (_m *Tenant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tenant.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case tenant.FieldAPIKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key", values[i])
			} else if value.Valid {
				_m.APIKey = value.String
			}
		case tenant.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case tenant.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case tenant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tenant.
// This includes values selected through modifiers, order, etc.
func (_m *Tenant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgents queries the "agents" edge of the Tenant entity.
func (_m *Tenant) QueryAgents() *VoiceAgentQuery {
	return NewTenantClient(_m.config).QueryAgents(_m)
}

// QueryGroups queries the "groups" edge of the Tenant entity.
func (_m *Tenant) QueryGroups() *AgentGroupQuery {
	return NewTenantClient(_m.config).QueryGroups(_m)
}

// QueryInboundRules queries the "inbound_rules" edge of the Tenant entity.
func (_m *Tenant) QueryInboundRules() *InboundRuleQuery {
	return NewTenantClient(_m.config).QueryInboundRules(_m)
}

// QueryOutboundRules queries the "outbound_rules" edge of the Tenant entity.
func (_m *Tenant) QueryOutboundRules() *OutboundRuleQuery {
	return NewTenantClient(_m.config).QueryOutboundRules(_m)
}

// QueryTrunks queries the "trunks" edge of the Tenant entity.
func (_m *Tenant) QueryTrunks() *TrunkQuery {
	return NewTenantClient(_m.config).QueryTrunks(_m)
}

// QuerySessions queries the "sessions" edge of the Tenant entity.
func (_m *Tenant) QuerySessions() *CallSessionQuery {
	return NewTenantClient(_m.config).QuerySessions(_m)
}

// QueryRecords queries the "records" edge of the Tenant entity.
func (_m *Tenant) QueryRecords() *CallRecordQuery {
	return NewTenantClient(_m.config).QueryRecords(_m)
}

// Update returns a builder for updating this Tenant.
// Note that you need to call Tenant.Unwrap() before calling this method if this Tenant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tenant) Update() *TenantUpdateOne {
	return NewTenantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tenant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tenant) Unwrap() *Tenant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tenant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tenant) String() string {
	var builder strings.Builder
	builder.WriteString("Tenant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("api_key=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tenants is a parsable slice of Tenant.
type Tenants []*Tenant
