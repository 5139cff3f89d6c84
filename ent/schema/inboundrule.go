package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboundRule holds the schema definition for the InboundRule entity.
// Matches the destination number of an inbound call against a pattern and
// routes to a single agent or a group. Evaluation order: priority descending,
// ties broken by insertion order (id ascending).
type InboundRule struct {
	ent.Schema
}

// Fields of the InboundRule.
func (InboundRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("pattern").
			MaxLen(24).
			Comment("Full E.164 number (leading +) for exact match, otherwise a prefix"),
		field.Enum("target_kind").
			Values("agent", "group"),
		field.String("target_id"),
		field.Int("priority").
			Default(0),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the InboundRule.
func (InboundRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("inbound_rules").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the InboundRule.
func (InboundRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "enabled"),
	}
}
