package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VoiceAgent holds the schema definition for the VoiceAgent entity.
// One AI voice-agent endpoint. The service_value semantics depend on the
// provider (assistant id, URL, or UUID) — the engine treats it as opaque and
// hands it to the carrier inside the CCML <Service> element.
type VoiceAgent struct {
	ent.Schema
}

// Fields of the VoiceAgent.
func (VoiceAgent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name").
			Comment("Human name, unique within tenant"),
		field.String("provider").
			Comment("Provider tag — validated against ccml.Providers"),
		field.String("service_value").
			Comment("Opaque provider-specific routing value"),
		field.String("username_cipher").
			Optional().
			Nillable().
			Sensitive().
			Comment("Encrypted at rest; decrypted only for CCML synthesis"),
		field.String("password_cipher").
			Optional().
			Nillable().
			Sensitive(),
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

// Edges of the VoiceAgent.
func (VoiceAgent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("agents").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		// Memberships are a relation with attributes, not ownership: deleting
		// an agent deletes its memberships but never the groups.
		edge.To("memberships", GroupMember.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the VoiceAgent.
func (VoiceAgent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name").Unique(),
		index.Fields("tenant_id", "enabled"),
	}
}
