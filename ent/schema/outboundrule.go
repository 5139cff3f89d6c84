package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboundRule holds the schema definition for the OutboundRule entity.
// A call is classified outbound iff an enabled outbound rule matches the
// incoming caller id; the rule's trunk config then picks the egress trunk.
type OutboundRule struct {
	ent.Schema
}

// Fields of the OutboundRule.
func (OutboundRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("caller_id").
			MaxLen(24),
		field.String("destination_pattern").
			MaxLen(24),
		field.JSON("trunk_config", map[string]interface{}{}).
			Optional().
			Comment("trunk_ids[], ring_timeout?, max_duration?, priority?"),
		field.Int("priority").
			Default(0),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the OutboundRule.
func (OutboundRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("outbound_rules").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OutboundRule.
func (OutboundRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "enabled"),
	}
}
