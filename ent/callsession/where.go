// Code generated by ent, DO NOT EDIT.

package callsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldTenantID, v))
}

// SessionToken applies equality check predicate on the "session_token" field. It's identical to SessionTokenEQ.
func SessionToken(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldSessionToken, v))
}

// CallSid applies equality check predicate on the "call_sid" field. It's identical to CallSidEQ.
func CallSid(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldCallSid, v))
}

// CallerID applies equality check predicate on the "caller_id" field. It's identical to CallerIDEQ.
func CallerID(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldCallerID, v))
}

// Destination applies equality check predicate on the "destination" field. It's identical to DestinationEQ.
func Destination(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldDestination, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldStartedAt, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldAnsweredAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldEndedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldDurationSeconds, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldAgentID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldGroupID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldTenantID, v))
}

// SessionTokenEQ applies the EQ predicate on the "session_token" field.
func SessionTokenEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldSessionToken, v))
}

// SessionTokenNEQ applies the NEQ predicate on the "session_token" field.
func SessionTokenNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldSessionToken, v))
}

// SessionTokenIn applies the In predicate on the "session_token" field.
func SessionTokenIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldSessionToken, vs...))
}

// SessionTokenNotIn applies the NotIn predicate on the "session_token" field.
func SessionTokenNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldSessionToken, vs...))
}

// SessionTokenGT applies the GT predicate on the "session_token" field.
func SessionTokenGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldSessionToken, v))
}

// SessionTokenGTE applies the GTE predicate on the "session_token" field.
func SessionTokenGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldSessionToken, v))
}

// SessionTokenLT applies the LT predicate on the "session_token" field.
func SessionTokenLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldSessionToken, v))
}

// SessionTokenLTE applies the LTE predicate on the "session_token" field.
func SessionTokenLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldSessionToken, v))
}

// SessionTokenContains applies the Contains predicate on the "session_token" field.
func SessionTokenContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldSessionToken, v))
}

// SessionTokenHasPrefix applies the HasPrefix predicate on the "session_token" field.
func SessionTokenHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldSessionToken, v))
}

// SessionTokenHasSuffix applies the HasSuffix predicate on the "session_token" field.
func SessionTokenHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldSessionToken, v))
}

// SessionTokenEqualFold applies the EqualFold predicate on the "session_token" field.
func SessionTokenEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldSessionToken, v))
}

// SessionTokenContainsFold applies the ContainsFold predicate on the "session_token" field.
func SessionTokenContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldSessionToken, v))
}

// CallSidEQ applies the EQ predicate on the "call_sid" field.
func CallSidEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldCallSid, v))
}

// CallSidNEQ applies the NEQ predicate on the "call_sid" field.
func CallSidNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldCallSid, v))
}

// CallSidIn applies the In predicate on the "call_sid" field.
func CallSidIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldCallSid, vs...))
}

// CallSidNotIn applies the NotIn predicate on the "call_sid" field.
func CallSidNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldCallSid, vs...))
}

// CallSidGT applies the GT predicate on the "call_sid" field.
func CallSidGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldCallSid, v))
}

// CallSidGTE applies the GTE predicate on the "call_sid" field.
func CallSidGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldCallSid, v))
}

// CallSidLT applies the LT predicate on the "call_sid" field.
func CallSidLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldCallSid, v))
}

// CallSidLTE applies the LTE predicate on the "call_sid" field.
func CallSidLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldCallSid, v))
}

// CallSidContains applies the Contains predicate on the "call_sid" field.
func CallSidContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldCallSid, v))
}

// CallSidHasPrefix applies the HasPrefix predicate on the "call_sid" field.
func CallSidHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldCallSid, v))
}

// CallSidHasSuffix applies the HasSuffix predicate on the "call_sid" field.
func CallSidHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldCallSid, v))
}

// CallSidIsNil applies the IsNil predicate on the "call_sid" field.
func CallSidIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldCallSid))
}

// CallSidNotNil applies the NotNil predicate on the "call_sid" field.
func CallSidNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldCallSid))
}

// CallSidEqualFold applies the EqualFold predicate on the "call_sid" field.
func CallSidEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldCallSid, v))
}

// CallSidContainsFold applies the ContainsFold predicate on the "call_sid" field.
func CallSidContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldCallSid, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldDirection, vs...))
}

// CallerIDEQ applies the EQ predicate on the "caller_id" field.
func CallerIDEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldCallerID, v))
}

// CallerIDNEQ applies the NEQ predicate on the "caller_id" field.
func CallerIDNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldCallerID, v))
}

// CallerIDIn applies the In predicate on the "caller_id" field.
func CallerIDIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldCallerID, vs...))
}

// CallerIDNotIn applies the NotIn predicate on the "caller_id" field.
func CallerIDNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldCallerID, vs...))
}

// CallerIDGT applies the GT predicate on the "caller_id" field.
func CallerIDGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldCallerID, v))
}

// CallerIDGTE applies the GTE predicate on the "caller_id" field.
func CallerIDGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldCallerID, v))
}

// CallerIDLT applies the LT predicate on the "caller_id" field.
func CallerIDLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldCallerID, v))
}

// CallerIDLTE applies the LTE predicate on the "caller_id" field.
func CallerIDLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldCallerID, v))
}

// CallerIDContains applies the Contains predicate on the "caller_id" field.
func CallerIDContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldCallerID, v))
}

// CallerIDHasPrefix applies the HasPrefix predicate on the "caller_id" field.
func CallerIDHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldCallerID, v))
}

// CallerIDHasSuffix applies the HasSuffix predicate on the "caller_id" field.
func CallerIDHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldCallerID, v))
}

// CallerIDIsNil applies the IsNil predicate on the "caller_id" field.
func CallerIDIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldCallerID))
}

// CallerIDNotNil applies the NotNil predicate on the "caller_id" field.
func CallerIDNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldCallerID))
}

// CallerIDEqualFold applies the EqualFold predicate on the "caller_id" field.
func CallerIDEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldCallerID, v))
}

// CallerIDContainsFold applies the ContainsFold predicate on the "caller_id" field.
func CallerIDContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldCallerID, v))
}

// DestinationEQ applies the EQ predicate on the "destination" field.
func DestinationEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldDestination, v))
}

// DestinationNEQ applies the NEQ predicate on the "destination" field.
func DestinationNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldDestination, v))
}

// DestinationIn applies the In predicate on the "destination" field.
func DestinationIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldDestination, vs...))
}

// DestinationNotIn applies the NotIn predicate on the "destination" field.
func DestinationNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldDestination, vs...))
}

// DestinationGT applies the GT predicate on the "destination" field.
func DestinationGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldDestination, v))
}

// DestinationGTE applies the GTE predicate on the "destination" field.
func DestinationGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldDestination, v))
}

// DestinationLT applies the LT predicate on the "destination" field.
func DestinationLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldDestination, v))
}

// DestinationLTE applies the LTE predicate on the "destination" field.
func DestinationLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldDestination, v))
}

// DestinationContains applies the Contains predicate on the "destination" field.
func DestinationContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldDestination, v))
}

// DestinationHasPrefix applies the HasPrefix predicate on the "destination" field.
func DestinationHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldDestination, v))
}

// DestinationHasSuffix applies the HasSuffix predicate on the "destination" field.
func DestinationHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldDestination, v))
}

// DestinationIsNil applies the IsNil predicate on the "destination" field.
func DestinationIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldDestination))
}

// DestinationNotNil applies the NotNil predicate on the "destination" field.
func DestinationNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldDestination))
}

// DestinationEqualFold applies the EqualFold predicate on the "destination" field.
func DestinationEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldDestination, v))
}

// DestinationContainsFold applies the ContainsFold predicate on the "destination" field.
func DestinationContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldDestination, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldState, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldStartedAt, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldAnsweredAt, v))
}

// AnsweredAtIsNil applies the IsNil predicate on the "answered_at" field.
func AnsweredAtIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldAnsweredAt))
}

// AnsweredAtNotNil applies the NotNil predicate on the "answered_at" field.
func AnsweredAtNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldAnsweredAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldEndedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldDurationSeconds, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldAgentID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldGroupID))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.CallSession {
	return predicate.CallSession(sql.FieldContainsFold(FieldGroupID, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldHistory))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CallSession {
	return predicate.CallSession(sql.FieldNotNull(FieldMetadata))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CallSession {
	return predicate.CallSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.CallSession {
	return predicate.CallSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.CallSession {
	return predicate.CallSession(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.CallSession {
	return predicate.CallSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.CallEvent) predicate.CallSession {
	return predicate.CallSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecord applies the HasEdge predicate on the "record" edge.
func HasRecord() predicate.CallSession {
	return predicate.CallSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, RecordTable, RecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordWith applies the HasEdge predicate on the "record" edge with a given conditions (other predicates).
func HasRecordWith(preds ...predicate.CallRecord) predicate.CallSession {
	return predicate.CallSession(func(s *sql.Selector) {
		step := newRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallSession) predicate.CallSession {
	return predicate.CallSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallSession) predicate.CallSession {
	return predicate.CallSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallSession) predicate.CallSession {
	return predicate.CallSession(sql.NotPredicates(p))
}
