// Code generated by ent, DO NOT EDIT.

package callrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTenantID, v))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallID, v))
}

// SessionToken applies equality check predicate on the "session_token" field. It's identical to SessionTokenEQ.
func SessionToken(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldSessionToken, v))
}

// FromNumber applies equality check predicate on the "from_number" field. It's identical to FromNumberEQ.
func FromNumber(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldFromNumber, v))
}

// ToNumber applies equality check predicate on the "to_number" field. It's identical to ToNumberEQ.
func ToNumber(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldToNumber, v))
}

// Direction applies equality check predicate on the "direction" field. It's identical to DirectionEQ.
func Direction(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDirection, v))
}

// Disposition applies equality check predicate on the "disposition" field. It's identical to DispositionEQ.
func Disposition(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDisposition, v))
}

// CallStartTime applies equality check predicate on the "call_start_time" field. It's identical to CallStartTimeEQ.
func CallStartTime(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallStartTime, v))
}

// AnswerTime applies equality check predicate on the "answer_time" field. It's identical to AnswerTimeEQ.
func AnswerTime(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldAnswerTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldEndTime, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDurationSeconds, v))
}

// BilledSeconds applies equality check predicate on the "billed_seconds" field. It's identical to BilledSecondsEQ.
func BilledSeconds(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldBilledSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldTenantID, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldCallID, v))
}

// SessionTokenEQ applies the EQ predicate on the "session_token" field.
func SessionTokenEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldSessionToken, v))
}

// SessionTokenNEQ applies the NEQ predicate on the "session_token" field.
func SessionTokenNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldSessionToken, v))
}

// SessionTokenIn applies the In predicate on the "session_token" field.
func SessionTokenIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldSessionToken, vs...))
}

// SessionTokenNotIn applies the NotIn predicate on the "session_token" field.
func SessionTokenNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldSessionToken, vs...))
}

// SessionTokenGT applies the GT predicate on the "session_token" field.
func SessionTokenGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldSessionToken, v))
}

// SessionTokenGTE applies the GTE predicate on the "session_token" field.
func SessionTokenGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldSessionToken, v))
}

// SessionTokenLT applies the LT predicate on the "session_token" field.
func SessionTokenLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldSessionToken, v))
}

// SessionTokenLTE applies the LTE predicate on the "session_token" field.
func SessionTokenLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldSessionToken, v))
}

// SessionTokenContains applies the Contains predicate on the "session_token" field.
func SessionTokenContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldSessionToken, v))
}

// SessionTokenHasPrefix applies the HasPrefix predicate on the "session_token" field.
func SessionTokenHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldSessionToken, v))
}

// SessionTokenHasSuffix applies the HasSuffix predicate on the "session_token" field.
func SessionTokenHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldSessionToken, v))
}

// SessionTokenIsNil applies the IsNil predicate on the "session_token" field.
func SessionTokenIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldSessionToken))
}

// SessionTokenNotNil applies the NotNil predicate on the "session_token" field.
func SessionTokenNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldSessionToken))
}

// SessionTokenEqualFold applies the EqualFold predicate on the "session_token" field.
func SessionTokenEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldSessionToken, v))
}

// SessionTokenContainsFold applies the ContainsFold predicate on the "session_token" field.
func SessionTokenContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldSessionToken, v))
}

// FromNumberEQ applies the EQ predicate on the "from_number" field.
func FromNumberEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldFromNumber, v))
}

// FromNumberNEQ applies the NEQ predicate on the "from_number" field.
func FromNumberNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldFromNumber, v))
}

// FromNumberIn applies the In predicate on the "from_number" field.
func FromNumberIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldFromNumber, vs...))
}

// FromNumberNotIn applies the NotIn predicate on the "from_number" field.
func FromNumberNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldFromNumber, vs...))
}

// FromNumberGT applies the GT predicate on the "from_number" field.
func FromNumberGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldFromNumber, v))
}

// FromNumberGTE applies the GTE predicate on the "from_number" field.
func FromNumberGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldFromNumber, v))
}

// FromNumberLT applies the LT predicate on the "from_number" field.
func FromNumberLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldFromNumber, v))
}

// FromNumberLTE applies the LTE predicate on the "from_number" field.
func FromNumberLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldFromNumber, v))
}

// FromNumberContains applies the Contains predicate on the "from_number" field.
func FromNumberContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldFromNumber, v))
}

// FromNumberHasPrefix applies the HasPrefix predicate on the "from_number" field.
func FromNumberHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldFromNumber, v))
}

// FromNumberHasSuffix applies the HasSuffix predicate on the "from_number" field.
func FromNumberHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldFromNumber, v))
}

// FromNumberIsNil applies the IsNil predicate on the "from_number" field.
func FromNumberIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldFromNumber))
}

// FromNumberNotNil applies the NotNil predicate on the "from_number" field.
func FromNumberNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldFromNumber))
}

// FromNumberEqualFold applies the EqualFold predicate on the "from_number" field.
func FromNumberEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldFromNumber, v))
}

// FromNumberContainsFold applies the ContainsFold predicate on the "from_number" field.
func FromNumberContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldFromNumber, v))
}

// ToNumberEQ applies the EQ predicate on the "to_number" field.
func ToNumberEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldToNumber, v))
}

// ToNumberNEQ applies the NEQ predicate on the "to_number" field.
func ToNumberNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldToNumber, v))
}

// ToNumberIn applies the In predicate on the "to_number" field.
func ToNumberIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldToNumber, vs...))
}

// ToNumberNotIn applies the NotIn predicate on the "to_number" field.
func ToNumberNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldToNumber, vs...))
}

// ToNumberGT applies the GT predicate on the "to_number" field.
func ToNumberGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldToNumber, v))
}

// ToNumberGTE applies the GTE predicate on the "to_number" field.
func ToNumberGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldToNumber, v))
}

// ToNumberLT applies the LT predicate on the "to_number" field.
func ToNumberLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldToNumber, v))
}

// ToNumberLTE applies the LTE predicate on the "to_number" field.
func ToNumberLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldToNumber, v))
}

// ToNumberContains applies the Contains predicate on the "to_number" field.
func ToNumberContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldToNumber, v))
}

// ToNumberHasPrefix applies the HasPrefix predicate on the "to_number" field.
func ToNumberHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldToNumber, v))
}

// ToNumberHasSuffix applies the HasSuffix predicate on the "to_number" field.
func ToNumberHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldToNumber, v))
}

// ToNumberIsNil applies the IsNil predicate on the "to_number" field.
func ToNumberIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldToNumber))
}

// ToNumberNotNil applies the NotNil predicate on the "to_number" field.
func ToNumberNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldToNumber))
}

// ToNumberEqualFold applies the EqualFold predicate on the "to_number" field.
func ToNumberEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldToNumber, v))
}

// ToNumberContainsFold applies the ContainsFold predicate on the "to_number" field.
func ToNumberContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldToNumber, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldDirection, vs...))
}

// DirectionGT applies the GT predicate on the "direction" field.
func DirectionGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldDirection, v))
}

// DirectionGTE applies the GTE predicate on the "direction" field.
func DirectionGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldDirection, v))
}

// DirectionLT applies the LT predicate on the "direction" field.
func DirectionLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldDirection, v))
}

// DirectionLTE applies the LTE predicate on the "direction" field.
func DirectionLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldDirection, v))
}

// DirectionContains applies the Contains predicate on the "direction" field.
func DirectionContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldDirection, v))
}

// DirectionHasPrefix applies the HasPrefix predicate on the "direction" field.
func DirectionHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldDirection, v))
}

// DirectionHasSuffix applies the HasSuffix predicate on the "direction" field.
func DirectionHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldDirection, v))
}

// DirectionIsNil applies the IsNil predicate on the "direction" field.
func DirectionIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldDirection))
}

// DirectionNotNil applies the NotNil predicate on the "direction" field.
func DirectionNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldDirection))
}

// DirectionEqualFold applies the EqualFold predicate on the "direction" field.
func DirectionEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldDirection, v))
}

// DirectionContainsFold applies the ContainsFold predicate on the "direction" field.
func DirectionContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldDirection, v))
}

// DispositionEQ applies the EQ predicate on the "disposition" field.
func DispositionEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDisposition, v))
}

// DispositionNEQ applies the NEQ predicate on the "disposition" field.
func DispositionNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldDisposition, v))
}

// DispositionIn applies the In predicate on the "disposition" field.
func DispositionIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldDisposition, vs...))
}

// DispositionNotIn applies the NotIn predicate on the "disposition" field.
func DispositionNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldDisposition, vs...))
}

// DispositionGT applies the GT predicate on the "disposition" field.
func DispositionGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldDisposition, v))
}

// DispositionGTE applies the GTE predicate on the "disposition" field.
func DispositionGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldDisposition, v))
}

// DispositionLT applies the LT predicate on the "disposition" field.
func DispositionLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldDisposition, v))
}

// DispositionLTE applies the LTE predicate on the "disposition" field.
func DispositionLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldDisposition, v))
}

// DispositionContains applies the Contains predicate on the "disposition" field.
func DispositionContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldDisposition, v))
}

// DispositionHasPrefix applies the HasPrefix predicate on the "disposition" field.
func DispositionHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldDisposition, v))
}

// DispositionHasSuffix applies the HasSuffix predicate on the "disposition" field.
func DispositionHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldDisposition, v))
}

// DispositionEqualFold applies the EqualFold predicate on the "disposition" field.
func DispositionEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldDisposition, v))
}

// DispositionContainsFold applies the ContainsFold predicate on the "disposition" field.
func DispositionContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldDisposition, v))
}

// CallStartTimeEQ applies the EQ predicate on the "call_start_time" field.
func CallStartTimeEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallStartTime, v))
}

// CallStartTimeNEQ applies the NEQ predicate on the "call_start_time" field.
func CallStartTimeNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCallStartTime, v))
}

// CallStartTimeIn applies the In predicate on the "call_start_time" field.
func CallStartTimeIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCallStartTime, vs...))
}

// CallStartTimeNotIn applies the NotIn predicate on the "call_start_time" field.
func CallStartTimeNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCallStartTime, vs...))
}

// CallStartTimeGT applies the GT predicate on the "call_start_time" field.
func CallStartTimeGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCallStartTime, v))
}

// CallStartTimeGTE applies the GTE predicate on the "call_start_time" field.
func CallStartTimeGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCallStartTime, v))
}

// CallStartTimeLT applies the LT predicate on the "call_start_time" field.
func CallStartTimeLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCallStartTime, v))
}

// CallStartTimeLTE applies the LTE predicate on the "call_start_time" field.
func CallStartTimeLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCallStartTime, v))
}

// CallStartTimeIsNil applies the IsNil predicate on the "call_start_time" field.
func CallStartTimeIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldCallStartTime))
}

// CallStartTimeNotNil applies the NotNil predicate on the "call_start_time" field.
func CallStartTimeNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldCallStartTime))
}

// AnswerTimeEQ applies the EQ predicate on the "answer_time" field.
func AnswerTimeEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldAnswerTime, v))
}

// AnswerTimeNEQ applies the NEQ predicate on the "answer_time" field.
func AnswerTimeNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldAnswerTime, v))
}

// AnswerTimeIn applies the In predicate on the "answer_time" field.
func AnswerTimeIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldAnswerTime, vs...))
}

// AnswerTimeNotIn applies the NotIn predicate on the "answer_time" field.
func AnswerTimeNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldAnswerTime, vs...))
}

// AnswerTimeGT applies the GT predicate on the "answer_time" field.
func AnswerTimeGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldAnswerTime, v))
}

// AnswerTimeGTE applies the GTE predicate on the "answer_time" field.
func AnswerTimeGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldAnswerTime, v))
}

// AnswerTimeLT applies the LT predicate on the "answer_time" field.
func AnswerTimeLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldAnswerTime, v))
}

// AnswerTimeLTE applies the LTE predicate on the "answer_time" field.
func AnswerTimeLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldAnswerTime, v))
}

// AnswerTimeIsNil applies the IsNil predicate on the "answer_time" field.
func AnswerTimeIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldAnswerTime))
}

// AnswerTimeNotNil applies the NotNil predicate on the "answer_time" field.
func AnswerTimeNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldAnswerTime))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldEndTime))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldDurationSeconds, v))
}

// BilledSecondsEQ applies the EQ predicate on the "billed_seconds" field.
func BilledSecondsEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldBilledSeconds, v))
}

// BilledSecondsNEQ applies the NEQ predicate on the "billed_seconds" field.
func BilledSecondsNEQ(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldBilledSeconds, v))
}

// BilledSecondsIn applies the In predicate on the "billed_seconds" field.
func BilledSecondsIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldBilledSeconds, vs...))
}

// BilledSecondsNotIn applies the NotIn predicate on the "billed_seconds" field.
func BilledSecondsNotIn(vs ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldBilledSeconds, vs...))
}

// BilledSecondsGT applies the GT predicate on the "billed_seconds" field.
func BilledSecondsGT(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldBilledSeconds, v))
}

// BilledSecondsGTE applies the GTE predicate on the "billed_seconds" field.
func BilledSecondsGTE(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldBilledSeconds, v))
}

// BilledSecondsLT applies the LT predicate on the "billed_seconds" field.
func BilledSecondsLT(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldBilledSeconds, v))
}

// BilledSecondsLTE applies the LTE predicate on the "billed_seconds" field.
func BilledSecondsLTE(v int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldBilledSeconds, v))
}

// RawPayloadIsNil applies the IsNil predicate on the "raw_payload" field.
func RawPayloadIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldRawPayload))
}

// RawPayloadNotNil applies the NotNil predicate on the "raw_payload" field.
func RawPayloadNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldRawPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.CallSession) predicate.CallRecord {
	return predicate.CallRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.NotPredicates(p))
}
