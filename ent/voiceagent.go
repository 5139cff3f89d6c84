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
	"github.com/voxroute/voxroute/ent/voiceagent"
)

// VoiceAgent is the model entity for the VoiceAgent schema.
type VoiceAgent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Human name, unique within tenant
	Name string `json:"name,omitempty"`
	// Provider tag — validated against ccml.Providers
	Provider string `json:"provider,omitempty"`
	// Opaque provider-specific routing value
	ServiceValue string `json:"service_value,omitempty"`
	// Encrypted at rest; decrypted only for CCML synthesis
	UsernameCipher *string `json:"-"`
	// PasswordCipher holds the value of the "password_cipher" field.
	PasswordCipher *string `json:"-"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VoiceAgentQuery when eager-loading is set.
	Edges        VoiceAgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VoiceAgentEdges holds the relations/edges for other nodes in the graph.
type VoiceAgentEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Memberships holds the value of the memberships edge.
	Memberships []*GroupMember `json:"memberships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VoiceAgentEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// MembershipsOrErr returns the Memberships value or an error if the edge
// was not loaded in eager-loading.
func (e VoiceAgentEdges) MembershipsOrErr() ([]*GroupMember, error) {
	if e.loadedTypes[1] {
		return e.Memberships, nil
	}
	return nil, &NotLoadedError{edge: "memberships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VoiceAgent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case voiceagent.FieldMetadata:
			values[i] = new([]byte)
		case voiceagent.FieldEnabled:
			values[i] = new(sql.NullBool)
		case voiceagent.FieldID, voiceagent.FieldTenantID, voiceagent.FieldName, voiceagent.FieldProvider, voiceagent.FieldServiceValue, voiceagent.FieldUsernameCipher, voiceagent.FieldPasswordCipher:
			values[i] = new(sql.NullString)
		case voiceagent.FieldCreatedAt, voiceagent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VoiceAgent fields.
func (_m *VoiceAgent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case voiceagent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case voiceagent.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case voiceagent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case voiceagent.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case voiceagent.FieldServiceValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_value", values[i])
			} else if value.Valid {
				_m.ServiceValue = value.String
			}
		case voiceagent.FieldUsernameCipher:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username_cipher", values[i])
			} else if value.Valid {
				_m.UsernameCipher = new(string)
				*_m.UsernameCipher = value.String
			}
		case voiceagent.FieldPasswordCipher:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_cipher", values[i])
			} else if value.Valid {
				_m.PasswordCipher = new(string)
				*_m.PasswordCipher = value.String
			}
		case voiceagent.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case voiceagent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case voiceagent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case voiceagent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VoiceAgent.
// This includes values selected through modifiers, order, etc.
func (_m *VoiceAgent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the VoiceAgent entity.
func (_m *VoiceAgent) QueryTenant() *TenantQuery {
	return NewVoiceAgentClient(_m.config).QueryTenant(_m)
}

// QueryMemberships queries the "memberships" edge of the VoiceAgent entity.
func (_m *VoiceAgent) QueryMemberships() *GroupMemberQuery {
	return NewVoiceAgentClient(_m.config).QueryMemberships(_m)
}

// Update returns a builder for updating this VoiceAgent.
// Note that you need to call VoiceAgent.Unwrap() before calling this method if this VoiceAgent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VoiceAgent) Update() *VoiceAgentUpdateOne {
	return NewVoiceAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VoiceAgent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VoiceAgent) Unwrap() *VoiceAgent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VoiceAgent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VoiceAgent) String() string {
	var builder strings.Builder
	builder.WriteString("VoiceAgent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("service_value=")
	builder.WriteString(_m.ServiceValue)
	builder.WriteString(", ")
	builder.WriteString("username_cipher=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("password_cipher=<sensitive>")
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

// VoiceAgents is a parsable slice of VoiceAgent.
type VoiceAgents []*VoiceAgent
