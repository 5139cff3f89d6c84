// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/predicate"
	"github.com/voxroute/voxroute/ent/trunk"
)

// TrunkUpdate is the builder for updating Trunk entities.
type TrunkUpdate struct {
	config
	hooks    []Hook
	mutation *TrunkMutation
}

// Where appends a list predicates to the TrunkUpdate builder.
func (_u *TrunkUpdate) Where(ps ...predicate.Trunk) *TrunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCarrierTrunkID sets the "carrier_trunk_id" field.
func (_u *TrunkUpdate) SetCarrierTrunkID(v string) *TrunkUpdate {
	_u.mutation.SetCarrierTrunkID(v)
	return _u
}

// SetNillableCarrierTrunkID sets the "carrier_trunk_id" field if the given value is not nil.
func (_u *TrunkUpdate) SetNillableCarrierTrunkID(v *string) *TrunkUpdate {
	if v != nil {
		_u.SetCarrierTrunkID(*v)
	}
	return _u
}

// SetConfiguration sets the "configuration" field.
func (_u *TrunkUpdate) SetConfiguration(v map[string]interface{}) *TrunkUpdate {
	_u.mutation.SetConfiguration(v)
	return _u
}

// ClearConfiguration clears the value of the "configuration" field.
func (_u *TrunkUpdate) ClearConfiguration() *TrunkUpdate {
	_u.mutation.ClearConfiguration()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TrunkUpdate) SetPriority(v int) *TrunkUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TrunkUpdate) SetNillablePriority(v *int) *TrunkUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TrunkUpdate) AddPriority(v int) *TrunkUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *TrunkUpdate) SetCapacity(v int) *TrunkUpdate {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *TrunkUpdate) SetNillableCapacity(v *int) *TrunkUpdate {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *TrunkUpdate) AddCapacity(v int) *TrunkUpdate {
	_u.mutation.AddCapacity(v)
	return _u
}

// ClearCapacity clears the value of the "capacity" field.
func (_u *TrunkUpdate) ClearCapacity() *TrunkUpdate {
	_u.mutation.ClearCapacity()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TrunkUpdate) SetEnabled(v bool) *TrunkUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TrunkUpdate) SetNillableEnabled(v *bool) *TrunkUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *TrunkUpdate) SetIsDefault(v bool) *TrunkUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *TrunkUpdate) SetNillableIsDefault(v *bool) *TrunkUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the TrunkMutation object of the builder.
func (_u *TrunkUpdate) Mutation() *TrunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrunkUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trunk.tenant"`)
	}
	return nil
}

func (_u *TrunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trunk.Table, trunk.Columns, sqlgraph.NewFieldSpec(trunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CarrierTrunkID(); ok {
		_spec.SetField(trunk.FieldCarrierTrunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Configuration(); ok {
		_spec.SetField(trunk.FieldConfiguration, field.TypeJSON, value)
	}
	if _u.mutation.ConfigurationCleared() {
		_spec.ClearField(trunk.FieldConfiguration, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(trunk.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(trunk.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(trunk.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(trunk.FieldCapacity, field.TypeInt, value)
	}
	if _u.mutation.CapacityCleared() {
		_spec.ClearField(trunk.FieldCapacity, field.TypeInt)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(trunk.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(trunk.FieldIsDefault, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrunkUpdateOne is the builder for updating a single Trunk entity.
type TrunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrunkMutation
}

// SetCarrierTrunkID sets the "carrier_trunk_id" field.
func (_u *TrunkUpdateOne) SetCarrierTrunkID(v string) *TrunkUpdateOne {
	_u.mutation.SetCarrierTrunkID(v)
	return _u
}

// SetNillableCarrierTrunkID sets the "carrier_trunk_id" field if the given value is not nil.
func (_u *TrunkUpdateOne) SetNillableCarrierTrunkID(v *string) *TrunkUpdateOne {
	if v != nil {
		_u.SetCarrierTrunkID(*v)
	}
	return _u
}

// SetConfiguration sets the "configuration" field.
func (_u *TrunkUpdateOne) SetConfiguration(v map[string]interface{}) *TrunkUpdateOne {
	_u.mutation.SetConfiguration(v)
	return _u
}

// ClearConfiguration clears the value of the "configuration" field.
func (_u *TrunkUpdateOne) ClearConfiguration() *TrunkUpdateOne {
	_u.mutation.ClearConfiguration()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TrunkUpdateOne) SetPriority(v int) *TrunkUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TrunkUpdateOne) SetNillablePriority(v *int) *TrunkUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TrunkUpdateOne) AddPriority(v int) *TrunkUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetCapacity sets the "capacity" field.
func (_u *TrunkUpdateOne) SetCapacity(v int) *TrunkUpdateOne {
	_u.mutation.ResetCapacity()
	_u.mutation.SetCapacity(v)
	return _u
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_u *TrunkUpdateOne) SetNillableCapacity(v *int) *TrunkUpdateOne {
	if v != nil {
		_u.SetCapacity(*v)
	}
	return _u
}

// AddCapacity adds value to the "capacity" field.
func (_u *TrunkUpdateOne) AddCapacity(v int) *TrunkUpdateOne {
	_u.mutation.AddCapacity(v)
	return _u
}

// ClearCapacity clears the value of the "capacity" field.
func (_u *TrunkUpdateOne) ClearCapacity() *TrunkUpdateOne {
	_u.mutation.ClearCapacity()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TrunkUpdateOne) SetEnabled(v bool) *TrunkUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TrunkUpdateOne) SetNillableEnabled(v *bool) *TrunkUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *TrunkUpdateOne) SetIsDefault(v bool) *TrunkUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *TrunkUpdateOne) SetNillableIsDefault(v *bool) *TrunkUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the TrunkMutation object of the builder.
func (_u *TrunkUpdateOne) Mutation() *TrunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrunkUpdate builder.
func (_u *TrunkUpdateOne) Where(ps ...predicate.Trunk) *TrunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrunkUpdateOne) Select(field string, fields ...string) *TrunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trunk entity.
func (_u *TrunkUpdateOne) Save(ctx context.Context) (*Trunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrunkUpdateOne) SaveX(ctx context.Context) *Trunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrunkUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trunk.tenant"`)
	}
	return nil
}

func (_u *TrunkUpdateOne) sqlSave(ctx context.Context) (_node *Trunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trunk.Table, trunk.Columns, sqlgraph.NewFieldSpec(trunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trunk.FieldID)
		for _, f := range fields {
			if !trunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CarrierTrunkID(); ok {
		_spec.SetField(trunk.FieldCarrierTrunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Configuration(); ok {
		_spec.SetField(trunk.FieldConfiguration, field.TypeJSON, value)
	}
	if _u.mutation.ConfigurationCleared() {
		_spec.ClearField(trunk.FieldConfiguration, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(trunk.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(trunk.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Capacity(); ok {
		_spec.SetField(trunk.FieldCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCapacity(); ok {
		_spec.AddField(trunk.FieldCapacity, field.TypeInt, value)
	}
	if _u.mutation.CapacityCleared() {
		_spec.ClearField(trunk.FieldCapacity, field.TypeInt)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(trunk.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(trunk.FieldIsDefault, field.TypeBool, value)
	}
	_node = &Trunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
