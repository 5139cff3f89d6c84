package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity.
// A tenant is the isolation boundary: every other entity carries a tenant
// reference and every lookup is parameterized by it.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("domain").
			Unique().
			Comment("Carrier-facing domain; path segment of the webhook URLs"),
		field.String("api_key").
			Sensitive().
			Comment("Validated against the X-CX-APIKey header"),
		field.Bool("enabled").
			Default(true),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", VoiceAgent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("groups", AgentGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("inbound_rules", InboundRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outbound_rules", OutboundRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("trunks", Trunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", CallSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("records", CallRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain").Unique(),
	}
}
