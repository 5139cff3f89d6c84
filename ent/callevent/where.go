// Code generated by ent, DO NOT EDIT.

package callevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldSessionID, v))
}

// EventKind applies equality check predicate on the "event_kind" field. It's identical to EventKindEQ.
func EventKind(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldEventKind, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldOutcome, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// EventKindEQ applies the EQ predicate on the "event_kind" field.
func EventKindEQ(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldEventKind, v))
}

// EventKindNEQ applies the NEQ predicate on the "event_kind" field.
func EventKindNEQ(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNEQ(FieldEventKind, v))
}

// EventKindIn applies the In predicate on the "event_kind" field.
func EventKindIn(vs ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIn(FieldEventKind, vs...))
}

// EventKindNotIn applies the NotIn predicate on the "event_kind" field.
func EventKindNotIn(vs ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotIn(FieldEventKind, vs...))
}

// EventKindGT applies the GT predicate on the "event_kind" field.
func EventKindGT(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGT(FieldEventKind, v))
}

// EventKindGTE applies the GTE predicate on the "event_kind" field.
func EventKindGTE(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGTE(FieldEventKind, v))
}

// EventKindLT applies the LT predicate on the "event_kind" field.
func EventKindLT(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLT(FieldEventKind, v))
}

// EventKindLTE applies the LTE predicate on the "event_kind" field.
func EventKindLTE(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLTE(FieldEventKind, v))
}

// EventKindContains applies the Contains predicate on the "event_kind" field.
func EventKindContains(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContains(FieldEventKind, v))
}

// EventKindHasPrefix applies the HasPrefix predicate on the "event_kind" field.
func EventKindHasPrefix(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldHasPrefix(FieldEventKind, v))
}

// EventKindHasSuffix applies the HasSuffix predicate on the "event_kind" field.
func EventKindHasSuffix(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldHasSuffix(FieldEventKind, v))
}

// EventKindEqualFold applies the EqualFold predicate on the "event_kind" field.
func EventKindEqualFold(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEqualFold(FieldEventKind, v))
}

// EventKindContainsFold applies the ContainsFold predicate on the "event_kind" field.
func EventKindContainsFold(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContainsFold(FieldEventKind, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotNull(FieldPayload))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotNull(FieldHeaders))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeIsNil applies the IsNil predicate on the "outcome" field.
func OutcomeIsNil() predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIsNull(FieldOutcome))
}

// OutcomeNotNil applies the NotNil predicate on the "outcome" field.
func OutcomeNotNil() predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotNull(FieldOutcome))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.CallEvent {
	return predicate.CallEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.CallEvent {
	return predicate.CallEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.CallSession) predicate.CallEvent {
	return predicate.CallEvent(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallEvent) predicate.CallEvent {
	return predicate.CallEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallEvent) predicate.CallEvent {
	return predicate.CallEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallEvent) predicate.CallEvent {
	return predicate.CallEvent(sql.NotPredicates(p))
}
