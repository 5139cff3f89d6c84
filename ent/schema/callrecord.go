package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallRecord holds the schema definition for the CallRecord entity.
// The finalized CDR, upserted once per (tenant, call id) when the carrier
// posts the CDR callback. The raw payload is stored verbatim.
type CallRecord struct {
	ent.Schema
}

// Fields of the CallRecord.
func (CallRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("call_id").
			Immutable(),
		field.String("session_token").
			Optional(),
		field.String("from_number").
			Optional(),
		field.String("to_number").
			Optional(),
		field.String("direction").
			Optional(),
		field.String("disposition").
			Comment("Mapped carrier disposition: ANSWER, BUSY, CANCEL, CONGESTION, NOANSWER, FAILED"),
		field.Time("call_start_time").
			Optional().
			Nillable(),
		field.Time("answer_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Int("duration_seconds").
			Default(0),
		field.Int("billed_seconds").
			Default(0),
		field.JSON("raw_payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CallRecord.
func (CallRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("records").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", CallSession.Type).
			Ref("record").
			Unique(),
	}
}

// Indexes of the CallRecord.
func (CallRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "call_id").Unique(),
	}
}
