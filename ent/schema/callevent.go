package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallEvent holds the schema definition for the CallEvent entity.
// Append-only audit of every webhook applied to a session.
type CallEvent struct {
	ent.Schema
}

// Fields of the CallEvent.
func (CallEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("event_kind").
			Immutable().
			Comment("application_request, session_update, cdr_callback"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("headers", map[string]string{}).
			Optional().
			Immutable(),
		field.String("outcome").
			Optional().
			Comment("processed, skipped, rejected"),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CallEvent.
func (CallEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", CallSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CallEvent.
func (CallEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "occurred_at"),
	}
}
