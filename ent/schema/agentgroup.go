package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentGroup holds the schema definition for the AgentGroup entity.
// A named collection of agents with a distribution strategy. A group may only
// route when enabled and at least one enabled member exists.
type AgentGroup struct {
	ent.Schema
}

// Fields of the AgentGroup.
func (AgentGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.Enum("strategy").
			Values("load_balanced", "priority", "round_robin").
			Default("round_robin"),
		field.JSON("strategy_settings", map[string]interface{}{}).
			Optional().
			Comment("Per-strategy knobs: window_hours, max_calls_per_agent, round_robin_same_priority, weighted_by_capacity"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentGroup.
func (AgentGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("groups").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("members", GroupMember.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentGroup.
func (AgentGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name").Unique(),
	}
}
