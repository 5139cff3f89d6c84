// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/tenant"
)

// AgentGroup is the model entity for the AgentGroup schema.
type AgentGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy agentgroup.Strategy `json:"strategy,omitempty"`
	// Per-strategy knobs: window_hours, max_calls_per_agent, round_robin_same_priority, weighted_by_capacity
	StrategySettings map[string]interface{} `json:"strategy_settings,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentGroupQuery when eager-loading is set.
	Edges        AgentGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentGroupEdges holds the relations/edges for other nodes in the graph.
type AgentGroupEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Members holds the value of the members edge.
	Members []*GroupMember `json:"members,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentGroupEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e AgentGroupEdges) MembersOrErr() ([]*GroupMember, error) {
	if e.loadedTypes[1] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentgroup.FieldStrategySettings:
			values[i] = new([]byte)
		case agentgroup.FieldEnabled:
			values[i] = new(sql.NullBool)
		case agentgroup.FieldID, agentgroup.FieldTenantID, agentgroup.FieldName, agentgroup.FieldStrategy:
			values[i] = new(sql.NullString)
		case agentgroup.FieldCreatedAt, agentgroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentGroup fields.
func (_m *AgentGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentgroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentgroup.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case agentgroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agentgroup.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = agentgroup.Strategy(value.String)
			}
		case agentgroup.FieldStrategySettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrategySettings); err != nil {
					return fmt.Errorf("unmarshal field strategy_settings: %w", err)
				}
			}
		case agentgroup.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case agentgroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentgroup.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentGroup.
// This includes values selected through modifiers, order, etc.
func (_m *AgentGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the AgentGroup entity.
func (_m *AgentGroup) QueryTenant() *TenantQuery {
	return NewAgentGroupClient(_m.config).QueryTenant(_m)
}

// QueryMembers queries the "members" edge of the AgentGroup entity.
func (_m *AgentGroup) QueryMembers() *GroupMemberQuery {
	return NewAgentGroupClient(_m.config).QueryMembers(_m)
}

// Update returns a builder for updating this AgentGroup.
// Note that you need to call AgentGroup.Unwrap() before calling this method if this AgentGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentGroup) Update() *AgentGroupUpdateOne {
	return NewAgentGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentGroup) Unwrap() *AgentGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentGroup) String() string {
	var builder strings.Builder
	builder.WriteString("AgentGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("strategy_settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrategySettings))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentGroups is a parsable slice of AgentGroup.
type AgentGroups []*AgentGroup
