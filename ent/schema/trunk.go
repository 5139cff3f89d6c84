package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Trunk holds the schema definition for the Trunk entity.
// An outbound trunk on the carrier side. Multiple defaults per tenant are
// tolerated; priority descending then id ascending wins.
type Trunk struct {
	ent.Schema
}

// Fields of the Trunk.
func (Trunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trunk_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("carrier_trunk_id").
			Comment("The carrier's identifier, emitted in the Dial trunks attribute"),
		field.JSON("configuration", map[string]interface{}{}).
			Optional(),
		field.Int("priority").
			Default(0),
		field.Int("capacity").
			Optional().
			Nillable(),
		field.Bool("enabled").
			Default(true),
		field.Bool("is_default").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Trunk.
func (Trunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("trunks").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Trunk.
func (Trunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "is_default"),
	}
}
