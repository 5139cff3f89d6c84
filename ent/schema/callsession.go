package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallSession holds the schema definition for the CallSession entity.
// The root entity of call lifecycle. Created on the first webhook for a
// session token, mutated only through state-machine transitions, never
// deleted by the engine (retention purges outside the core).
type CallSession struct {
	ent.Schema
}

// Fields of the CallSession.
func (CallSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("session_token").
			Immutable().
			Comment("Carrier-issued, stable; primary idempotency key for updates"),
		field.String("call_sid").
			Optional().
			Comment("Carrier call id (CallSid)"),
		field.Enum("direction").
			Values("inbound", "outbound", "subscriber").
			Default("inbound"),
		field.String("caller_id").
			Optional(),
		field.String("destination").
			Optional(),
		field.Enum("state").
			Values(
				"received",
				"queued",
				"routing",
				"connecting",
				"connected",
				"completed",
				"busy",
				"failed",
				"no_answer",
			).
			Default("received"),
		field.Time("started_at").
			Default(time.Now).
			Comment("When the first webhook for the token arrived"),
		field.Time("answered_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("duration_seconds").
			Default(0),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Assigned agent after routing"),
		field.String("group_id").
			Optional().
			Nillable().
			Comment("Group the agent was selected from, if any"),
		field.JSON("history", []map[string]interface{}{}).
			Optional().
			Comment("State transition history: from, to, at, metadata"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CallSession.
func (CallSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("sessions").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", CallEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("record", CallRecord.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CallSession.
func (CallSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "session_token").Unique(),
		index.Fields("tenant_id", "state"),
		index.Fields("tenant_id", "started_at"),
	}
}
