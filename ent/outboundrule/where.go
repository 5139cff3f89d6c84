// Code generated by ent, DO NOT EDIT.

package outboundrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldTenantID, v))
}

// CallerID applies equality check predicate on the "caller_id" field. It's identical to CallerIDEQ.
func CallerID(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldCallerID, v))
}

// DestinationPattern applies equality check predicate on the "destination_pattern" field. It's identical to DestinationPatternEQ.
func DestinationPattern(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldDestinationPattern, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldPriority, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContainsFold(FieldTenantID, v))
}

// CallerIDEQ applies the EQ predicate on the "caller_id" field.
func CallerIDEQ(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldCallerID, v))
}

// CallerIDNEQ applies the NEQ predicate on the "caller_id" field.
func CallerIDNEQ(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldCallerID, v))
}

// CallerIDIn applies the In predicate on the "caller_id" field.
func CallerIDIn(vs ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIn(FieldCallerID, vs...))
}

// CallerIDNotIn applies the NotIn predicate on the "caller_id" field.
func CallerIDNotIn(vs ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotIn(FieldCallerID, vs...))
}

// CallerIDGT applies the GT predicate on the "caller_id" field.
func CallerIDGT(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGT(FieldCallerID, v))
}

// CallerIDGTE applies the GTE predicate on the "caller_id" field.
func CallerIDGTE(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGTE(FieldCallerID, v))
}

// CallerIDLT applies the LT predicate on the "caller_id" field.
func CallerIDLT(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLT(FieldCallerID, v))
}

// CallerIDLTE applies the LTE predicate on the "caller_id" field.
func CallerIDLTE(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLTE(FieldCallerID, v))
}

// CallerIDContains applies the Contains predicate on the "caller_id" field.
func CallerIDContains(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContains(FieldCallerID, v))
}

// CallerIDHasPrefix applies the HasPrefix predicate on the "caller_id" field.
func CallerIDHasPrefix(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldHasPrefix(FieldCallerID, v))
}

// CallerIDHasSuffix applies the HasSuffix predicate on the "caller_id" field.
func CallerIDHasSuffix(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldHasSuffix(FieldCallerID, v))
}

// CallerIDEqualFold applies the EqualFold predicate on the "caller_id" field.
func CallerIDEqualFold(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEqualFold(FieldCallerID, v))
}

// CallerIDContainsFold applies the ContainsFold predicate on the "caller_id" field.
func CallerIDContainsFold(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContainsFold(FieldCallerID, v))
}

// DestinationPatternEQ applies the EQ predicate on the "destination_pattern" field.
func DestinationPatternEQ(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldDestinationPattern, v))
}

// DestinationPatternNEQ applies the NEQ predicate on the "destination_pattern" field.
func DestinationPatternNEQ(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldDestinationPattern, v))
}

// DestinationPatternIn applies the In predicate on the "destination_pattern" field.
func DestinationPatternIn(vs ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIn(FieldDestinationPattern, vs...))
}

// DestinationPatternNotIn applies the NotIn predicate on the "destination_pattern" field.
func DestinationPatternNotIn(vs ...string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotIn(FieldDestinationPattern, vs...))
}

// DestinationPatternGT applies the GT predicate on the "destination_pattern" field.
func DestinationPatternGT(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGT(FieldDestinationPattern, v))
}

// DestinationPatternGTE applies the GTE predicate on the "destination_pattern" field.
func DestinationPatternGTE(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGTE(FieldDestinationPattern, v))
}

// DestinationPatternLT applies the LT predicate on the "destination_pattern" field.
func DestinationPatternLT(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLT(FieldDestinationPattern, v))
}

// DestinationPatternLTE applies the LTE predicate on the "destination_pattern" field.
func DestinationPatternLTE(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLTE(FieldDestinationPattern, v))
}

// DestinationPatternContains applies the Contains predicate on the "destination_pattern" field.
func DestinationPatternContains(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContains(FieldDestinationPattern, v))
}

// DestinationPatternHasPrefix applies the HasPrefix predicate on the "destination_pattern" field.
func DestinationPatternHasPrefix(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldHasPrefix(FieldDestinationPattern, v))
}

// DestinationPatternHasSuffix applies the HasSuffix predicate on the "destination_pattern" field.
func DestinationPatternHasSuffix(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldHasSuffix(FieldDestinationPattern, v))
}

// DestinationPatternEqualFold applies the EqualFold predicate on the "destination_pattern" field.
func DestinationPatternEqualFold(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEqualFold(FieldDestinationPattern, v))
}

// DestinationPatternContainsFold applies the ContainsFold predicate on the "destination_pattern" field.
func DestinationPatternContainsFold(v string) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldContainsFold(FieldDestinationPattern, v))
}

// TrunkConfigIsNil applies the IsNil predicate on the "trunk_config" field.
func TrunkConfigIsNil() predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIsNull(FieldTrunkConfig))
}

// TrunkConfigNotNil applies the NotNil predicate on the "trunk_config" field.
func TrunkConfigNotNil() predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotNull(FieldTrunkConfig))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLTE(FieldPriority, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutboundRule {
	return predicate.OutboundRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.OutboundRule {
	return predicate.OutboundRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.OutboundRule {
	return predicate.OutboundRule(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboundRule) predicate.OutboundRule {
	return predicate.OutboundRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboundRule) predicate.OutboundRule {
	return predicate.OutboundRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboundRule) predicate.OutboundRule {
	return predicate.OutboundRule(sql.NotPredicates(p))
}
