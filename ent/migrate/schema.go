// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentGroupsColumns holds the columns for the "agent_groups" table.
	AgentGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeEnum, Enums: []string{"load_balanced", "priority", "round_robin"}, Default: "round_robin"},
		{Name: "strategy_settings", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// AgentGroupsTable holds the schema information for the "agent_groups" table.
	AgentGroupsTable = &schema.Table{
		Name:       "agent_groups",
		Columns:    AgentGroupsColumns,
		PrimaryKey: []*schema.Column{AgentGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_groups_tenants_groups",
				Columns:    []*schema.Column{AgentGroupsColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentgroup_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{AgentGroupsColumns[7], AgentGroupsColumns[1]},
			},
		},
	}
	// CallEventsColumns holds the columns for the "call_events" table.
	CallEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// CallEventsTable holds the schema information for the "call_events" table.
	CallEventsTable = &schema.Table{
		Name:       "call_events",
		Columns:    CallEventsColumns,
		PrimaryKey: []*schema.Column{CallEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "call_events_call_sessions_events",
				Columns:    []*schema.Column{CallEventsColumns[6]},
				RefColumns: []*schema.Column{CallSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "callevent_session_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{CallEventsColumns[6], CallEventsColumns[5]},
			},
		},
	}
	// CallRecordsColumns holds the columns for the "call_records" table.
	CallRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "call_id", Type: field.TypeString},
		{Name: "session_token", Type: field.TypeString, Nullable: true},
		{Name: "from_number", Type: field.TypeString, Nullable: true},
		{Name: "to_number", Type: field.TypeString, Nullable: true},
		{Name: "direction", Type: field.TypeString, Nullable: true},
		{Name: "disposition", Type: field.TypeString},
		{Name: "call_start_time", Type: field.TypeTime, Nullable: true},
		{Name: "answer_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "billed_seconds", Type: field.TypeInt, Default: 0},
		{Name: "raw_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "call_session_record", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// CallRecordsTable holds the schema information for the "call_records" table.
	CallRecordsTable = &schema.Table{
		Name:       "call_records",
		Columns:    CallRecordsColumns,
		PrimaryKey: []*schema.Column{CallRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "call_records_call_sessions_record",
				Columns:    []*schema.Column{CallRecordsColumns[15]},
				RefColumns: []*schema.Column{CallSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "call_records_tenants_records",
				Columns:    []*schema.Column{CallRecordsColumns[16]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "callrecord_tenant_id_call_id",
				Unique:  true,
				Columns: []*schema.Column{CallRecordsColumns[16], CallRecordsColumns[1]},
			},
		},
	}
	// CallSessionsColumns holds the columns for the "call_sessions" table.
	CallSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_token", Type: field.TypeString},
		{Name: "call_sid", Type: field.TypeString, Nullable: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound", "subscriber"}, Default: "inbound"},
		{Name: "caller_id", Type: field.TypeString, Nullable: true},
		{Name: "destination", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"received", "queued", "routing", "connecting", "connected", "completed", "busy", "failed", "no_answer"}, Default: "received"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// CallSessionsTable holds the schema information for the "call_sessions" table.
	CallSessionsTable = &schema.Table{
		Name:       "call_sessions",
		Columns:    CallSessionsColumns,
		PrimaryKey: []*schema.Column{CallSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "call_sessions_tenants_sessions",
				Columns:    []*schema.Column{CallSessionsColumns[16]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "callsession_tenant_id_session_token",
				Unique:  true,
				Columns: []*schema.Column{CallSessionsColumns[16], CallSessionsColumns[1]},
			},
			{
				Name:    "callsession_tenant_id_state",
				Unique:  false,
				Columns: []*schema.Column{CallSessionsColumns[16], CallSessionsColumns[6]},
			},
			{
				Name:    "callsession_tenant_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{CallSessionsColumns[16], CallSessionsColumns[7]},
			},
		},
	}
	// GroupMembersColumns holds the columns for the "group_members" table.
	GroupMembersColumns = []*schema.Column{
		{Name: "member_id", Type: field.TypeString, Unique: true},
		{Name: "priority", Type: field.TypeInt, Default: 50},
		{Name: "capacity", Type: field.TypeInt, Nullable: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
	}
	// GroupMembersTable holds the schema information for the "group_members" table.
	GroupMembersTable = &schema.Table{
		Name:       "group_members",
		Columns:    GroupMembersColumns,
		PrimaryKey: []*schema.Column{GroupMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_members_agent_groups_members",
				Columns:    []*schema.Column{GroupMembersColumns[3]},
				RefColumns: []*schema.Column{AgentGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_members_voice_agents_memberships",
				Columns:    []*schema.Column{GroupMembersColumns[4]},
				RefColumns: []*schema.Column{VoiceAgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "groupmember_group_id_agent_id",
				Unique:  true,
				Columns: []*schema.Column{GroupMembersColumns[3], GroupMembersColumns[4]},
			},
		},
	}
	// InboundRulesColumns holds the columns for the "inbound_rules" table.
	InboundRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "pattern", Type: field.TypeString, Size: 24},
		{Name: "target_kind", Type: field.TypeEnum, Enums: []string{"agent", "group"}},
		{Name: "target_id", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// InboundRulesTable holds the schema information for the "inbound_rules" table.
	InboundRulesTable = &schema.Table{
		Name:       "inbound_rules",
		Columns:    InboundRulesColumns,
		PrimaryKey: []*schema.Column{InboundRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inbound_rules_tenants_inbound_rules",
				Columns:    []*schema.Column{InboundRulesColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inboundrule_tenant_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{InboundRulesColumns[7], InboundRulesColumns[5]},
			},
		},
	}
	// OutboundRulesColumns holds the columns for the "outbound_rules" table.
	OutboundRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "caller_id", Type: field.TypeString, Size: 24},
		{Name: "destination_pattern", Type: field.TypeString, Size: 24},
		{Name: "trunk_config", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// OutboundRulesTable holds the schema information for the "outbound_rules" table.
	OutboundRulesTable = &schema.Table{
		Name:       "outbound_rules",
		Columns:    OutboundRulesColumns,
		PrimaryKey: []*schema.Column{OutboundRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outbound_rules_tenants_outbound_rules",
				Columns:    []*schema.Column{OutboundRulesColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outboundrule_tenant_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{OutboundRulesColumns[7], OutboundRulesColumns[5]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString, Unique: true},
		{Name: "api_key", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_domain",
				Unique:  true,
				Columns: []*schema.Column{TenantsColumns[2]},
			},
		},
	}
	// TrunksColumns holds the columns for the "trunks" table.
	TrunksColumns = []*schema.Column{
		{Name: "trunk_id", Type: field.TypeString, Unique: true},
		{Name: "carrier_trunk_id", Type: field.TypeString},
		{Name: "configuration", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "capacity", Type: field.TypeInt, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// TrunksTable holds the schema information for the "trunks" table.
	TrunksTable = &schema.Table{
		Name:       "trunks",
		Columns:    TrunksColumns,
		PrimaryKey: []*schema.Column{TrunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "trunks_tenants_trunks",
				Columns:    []*schema.Column{TrunksColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trunk_tenant_id_is_default",
				Unique:  false,
				Columns: []*schema.Column{TrunksColumns[8], TrunksColumns[6]},
			},
		},
	}
	// VoiceAgentsColumns holds the columns for the "voice_agents" table.
	VoiceAgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "service_value", Type: field.TypeString},
		{Name: "username_cipher", Type: field.TypeString, Nullable: true},
		{Name: "password_cipher", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// VoiceAgentsTable holds the schema information for the "voice_agents" table.
	VoiceAgentsTable = &schema.Table{
		Name:       "voice_agents",
		Columns:    VoiceAgentsColumns,
		PrimaryKey: []*schema.Column{VoiceAgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "voice_agents_tenants_agents",
				Columns:    []*schema.Column{VoiceAgentsColumns[10]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "voiceagent_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{VoiceAgentsColumns[10], VoiceAgentsColumns[1]},
			},
			{
				Name:    "voiceagent_tenant_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{VoiceAgentsColumns[10], VoiceAgentsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentGroupsTable,
		CallEventsTable,
		CallRecordsTable,
		CallSessionsTable,
		GroupMembersTable,
		InboundRulesTable,
		OutboundRulesTable,
		TenantsTable,
		TrunksTable,
		VoiceAgentsTable,
	}
)

func init() {
	AgentGroupsTable.ForeignKeys[0].RefTable = TenantsTable
	CallEventsTable.ForeignKeys[0].RefTable = CallSessionsTable
	CallRecordsTable.ForeignKeys[0].RefTable = CallSessionsTable
	CallRecordsTable.ForeignKeys[1].RefTable = TenantsTable
	CallSessionsTable.ForeignKeys[0].RefTable = TenantsTable
	GroupMembersTable.ForeignKeys[0].RefTable = AgentGroupsTable
	GroupMembersTable.ForeignKeys[1].RefTable = VoiceAgentsTable
	InboundRulesTable.ForeignKeys[0].RefTable = TenantsTable
	OutboundRulesTable.ForeignKeys[0].RefTable = TenantsTable
	TrunksTable.ForeignKeys[0].RefTable = TenantsTable
	VoiceAgentsTable.ForeignKeys[0].RefTable = TenantsTable
}
