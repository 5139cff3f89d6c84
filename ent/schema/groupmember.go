package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GroupMember holds the schema definition for the GroupMember entity.
// The (group, agent) relation with attributes. Priority is 1..100, capacity
// nil means unlimited. Both sides must belong to the same tenant — enforced
// by the services, not by the schema, since the tenant id is denormalized on
// both endpoints.
type GroupMember struct {
	ent.Schema
}

// Fields of the GroupMember.
func (GroupMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("member_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Int("priority").
			Default(50).
			Min(1).
			Max(100),
		field.Int("capacity").
			Optional().
			Nillable().
			Min(1).
			Max(1000).
			Comment("nil = unlimited; 0 is rejected at configuration time"),
	}
}

// Edges of the GroupMember.
func (GroupMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", AgentGroup.Type).
			Ref("members").
			Field("group_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent", VoiceAgent.Type).
			Ref("memberships").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GroupMember.
func (GroupMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "agent_id").Unique(),
	}
}
