// Code generated by ent, DO NOT EDIT.

package trunk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voxroute/voxroute/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trunk {
	return predicate.Trunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trunk {
	return predicate.Trunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trunk {
	return predicate.Trunk(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldTenantID, v))
}

// CarrierTrunkID applies equality check predicate on the "carrier_trunk_id" field. It's identical to CarrierTrunkIDEQ.
func CarrierTrunkID(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldCarrierTrunkID, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldPriority, v))
}

// Capacity applies equality check predicate on the "capacity" field. It's identical to CapacityEQ.
func Capacity(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldCapacity, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldEnabled, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Trunk {
	return predicate.Trunk(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Trunk {
	return predicate.Trunk(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldContainsFold(FieldTenantID, v))
}

// CarrierTrunkIDEQ applies the EQ predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDEQ(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDNEQ applies the NEQ predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDNEQ(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDIn applies the In predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDIn(vs ...string) predicate.Trunk {
	return predicate.Trunk(sql.FieldIn(FieldCarrierTrunkID, vs...))
}

// CarrierTrunkIDNotIn applies the NotIn predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDNotIn(vs ...string) predicate.Trunk {
	return predicate.Trunk(sql.FieldNotIn(FieldCarrierTrunkID, vs...))
}

// CarrierTrunkIDGT applies the GT predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDGT(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldGT(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDGTE applies the GTE predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDGTE(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldGTE(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDLT applies the LT predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDLT(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldLT(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDLTE applies the LTE predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDLTE(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldLTE(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDContains applies the Contains predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDContains(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldContains(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDHasPrefix applies the HasPrefix predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDHasPrefix(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldHasPrefix(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDHasSuffix applies the HasSuffix predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDHasSuffix(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldHasSuffix(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDEqualFold applies the EqualFold predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDEqualFold(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldEqualFold(FieldCarrierTrunkID, v))
}

// CarrierTrunkIDContainsFold applies the ContainsFold predicate on the "carrier_trunk_id" field.
func CarrierTrunkIDContainsFold(v string) predicate.Trunk {
	return predicate.Trunk(sql.FieldContainsFold(FieldCarrierTrunkID, v))
}

// ConfigurationIsNil applies the IsNil predicate on the "configuration" field.
func ConfigurationIsNil() predicate.Trunk {
	return predicate.Trunk(sql.FieldIsNull(FieldConfiguration))
}

// ConfigurationNotNil applies the NotNil predicate on the "configuration" field.
func ConfigurationNotNil() predicate.Trunk {
	return predicate.Trunk(sql.FieldNotNull(FieldConfiguration))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Trunk {
	return predicate.Trunk(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Trunk {
	return predicate.Trunk(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldLTE(FieldPriority, v))
}

// CapacityEQ applies the EQ predicate on the "capacity" field.
func CapacityEQ(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldCapacity, v))
}

// CapacityNEQ applies the NEQ predicate on the "capacity" field.
func CapacityNEQ(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldCapacity, v))
}

// CapacityIn applies the In predicate on the "capacity" field.
func CapacityIn(vs ...int) predicate.Trunk {
	return predicate.Trunk(sql.FieldIn(FieldCapacity, vs...))
}

// CapacityNotIn applies the NotIn predicate on the "capacity" field.
func CapacityNotIn(vs ...int) predicate.Trunk {
	return predicate.Trunk(sql.FieldNotIn(FieldCapacity, vs...))
}

// CapacityGT applies the GT predicate on the "capacity" field.
func CapacityGT(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldGT(FieldCapacity, v))
}

// CapacityGTE applies the GTE predicate on the "capacity" field.
func CapacityGTE(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldGTE(FieldCapacity, v))
}

// CapacityLT applies the LT predicate on the "capacity" field.
func CapacityLT(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldLT(FieldCapacity, v))
}

// CapacityLTE applies the LTE predicate on the "capacity" field.
func CapacityLTE(v int) predicate.Trunk {
	return predicate.Trunk(sql.FieldLTE(FieldCapacity, v))
}

// CapacityIsNil applies the IsNil predicate on the "capacity" field.
func CapacityIsNil() predicate.Trunk {
	return predicate.Trunk(sql.FieldIsNull(FieldCapacity))
}

// CapacityNotNil applies the NotNil predicate on the "capacity" field.
func CapacityNotNil() predicate.Trunk {
	return predicate.Trunk(sql.FieldNotNull(FieldCapacity))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldEnabled, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trunk {
	return predicate.Trunk(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.Trunk {
	return predicate.Trunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.Trunk {
	return predicate.Trunk(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trunk) predicate.Trunk {
	return predicate.Trunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trunk) predicate.Trunk {
	return predicate.Trunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trunk) predicate.Trunk {
	return predicate.Trunk(sql.NotPredicates(p))
}
