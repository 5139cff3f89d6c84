// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/predicate"
)

// OutboundRuleUpdate is the builder for updating OutboundRule entities.
type OutboundRuleUpdate struct {
	config
	hooks    []Hook
	mutation *OutboundRuleMutation
}

// Where appends a list predicates to the OutboundRuleUpdate builder.
func (_u *OutboundRuleUpdate) Where(ps ...predicate.OutboundRule) *OutboundRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallerID sets the "caller_id" field.
func (_u *OutboundRuleUpdate) SetCallerID(v string) *OutboundRuleUpdate {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *OutboundRuleUpdate) SetNillableCallerID(v *string) *OutboundRuleUpdate {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// SetDestinationPattern sets the "destination_pattern" field.
func (_u *OutboundRuleUpdate) SetDestinationPattern(v string) *OutboundRuleUpdate {
	_u.mutation.SetDestinationPattern(v)
	return _u
}

// SetNillableDestinationPattern sets the "destination_pattern" field if the given value is not nil.
func (_u *OutboundRuleUpdate) SetNillableDestinationPattern(v *string) *OutboundRuleUpdate {
	if v != nil {
		_u.SetDestinationPattern(*v)
	}
	return _u
}

// SetTrunkConfig sets the "trunk_config" field.
func (_u *OutboundRuleUpdate) SetTrunkConfig(v map[string]interface{}) *OutboundRuleUpdate {
	_u.mutation.SetTrunkConfig(v)
	return _u
}

// ClearTrunkConfig clears the value of the "trunk_config" field.
func (_u *OutboundRuleUpdate) ClearTrunkConfig() *OutboundRuleUpdate {
	_u.mutation.ClearTrunkConfig()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *OutboundRuleUpdate) SetPriority(v int) *OutboundRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *OutboundRuleUpdate) SetNillablePriority(v *int) *OutboundRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *OutboundRuleUpdate) AddPriority(v int) *OutboundRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *OutboundRuleUpdate) SetEnabled(v bool) *OutboundRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *OutboundRuleUpdate) SetNillableEnabled(v *bool) *OutboundRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the OutboundRuleMutation object of the builder.
func (_u *OutboundRuleUpdate) Mutation() *OutboundRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboundRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboundRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboundRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboundRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboundRuleUpdate) check() error {
	if v, ok := _u.mutation.CallerID(); ok {
		if err := outboundrule.CallerIDValidator(v); err != nil {
			return &ValidationError{Name: "caller_id", err: fmt.Errorf(`ent: validator failed for field "OutboundRule.caller_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DestinationPattern(); ok {
		if err := outboundrule.DestinationPatternValidator(v); err != nil {
			return &ValidationError{Name: "destination_pattern", err: fmt.Errorf(`ent: validator failed for field "OutboundRule.destination_pattern": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboundRule.tenant"`)
	}
	return nil
}

func (_u *OutboundRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboundrule.Table, outboundrule.Columns, sqlgraph.NewFieldSpec(outboundrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(outboundrule.FieldCallerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DestinationPattern(); ok {
		_spec.SetField(outboundrule.FieldDestinationPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrunkConfig(); ok {
		_spec.SetField(outboundrule.FieldTrunkConfig, field.TypeJSON, value)
	}
	if _u.mutation.TrunkConfigCleared() {
		_spec.ClearField(outboundrule.FieldTrunkConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(outboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(outboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(outboundrule.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboundrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboundRuleUpdateOne is the builder for updating a single OutboundRule entity.
type OutboundRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboundRuleMutation
}

// SetCallerID sets the "caller_id" field.
func (_u *OutboundRuleUpdateOne) SetCallerID(v string) *OutboundRuleUpdateOne {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *OutboundRuleUpdateOne) SetNillableCallerID(v *string) *OutboundRuleUpdateOne {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// SetDestinationPattern sets the "destination_pattern" field.
func (_u *OutboundRuleUpdateOne) SetDestinationPattern(v string) *OutboundRuleUpdateOne {
	_u.mutation.SetDestinationPattern(v)
	return _u
}

// SetNillableDestinationPattern sets the "destination_pattern" field if the given value is not nil.
func (_u *OutboundRuleUpdateOne) SetNillableDestinationPattern(v *string) *OutboundRuleUpdateOne {
	if v != nil {
		_u.SetDestinationPattern(*v)
	}
	return _u
}

// SetTrunkConfig sets the "trunk_config" field.
func (_u *OutboundRuleUpdateOne) SetTrunkConfig(v map[string]interface{}) *OutboundRuleUpdateOne {
	_u.mutation.SetTrunkConfig(v)
	return _u
}

// ClearTrunkConfig clears the value of the "trunk_config" field.
func (_u *OutboundRuleUpdateOne) ClearTrunkConfig() *OutboundRuleUpdateOne {
	_u.mutation.ClearTrunkConfig()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *OutboundRuleUpdateOne) SetPriority(v int) *OutboundRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *OutboundRuleUpdateOne) SetNillablePriority(v *int) *OutboundRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *OutboundRuleUpdateOne) AddPriority(v int) *OutboundRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *OutboundRuleUpdateOne) SetEnabled(v bool) *OutboundRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *OutboundRuleUpdateOne) SetNillableEnabled(v *bool) *OutboundRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the OutboundRuleMutation object of the builder.
func (_u *OutboundRuleUpdateOne) Mutation() *OutboundRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboundRuleUpdate builder.
func (_u *OutboundRuleUpdateOne) Where(ps ...predicate.OutboundRule) *OutboundRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboundRuleUpdateOne) Select(field string, fields ...string) *OutboundRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboundRule entity.
func (_u *OutboundRuleUpdateOne) Save(ctx context.Context) (*OutboundRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboundRuleUpdateOne) SaveX(ctx context.Context) *OutboundRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboundRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboundRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutboundRuleUpdateOne) check() error {
	if v, ok := _u.mutation.CallerID(); ok {
		if err := outboundrule.CallerIDValidator(v); err != nil {
			return &ValidationError{Name: "caller_id", err: fmt.Errorf(`ent: validator failed for field "OutboundRule.caller_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DestinationPattern(); ok {
		if err := outboundrule.DestinationPatternValidator(v); err != nil {
			return &ValidationError{Name: "destination_pattern", err: fmt.Errorf(`ent: validator failed for field "OutboundRule.destination_pattern": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutboundRule.tenant"`)
	}
	return nil
}

func (_u *OutboundRuleUpdateOne) sqlSave(ctx context.Context) (_node *OutboundRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outboundrule.Table, outboundrule.Columns, sqlgraph.NewFieldSpec(outboundrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboundRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboundrule.FieldID)
		for _, f := range fields {
			if !outboundrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboundrule.FieldID {
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
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(outboundrule.FieldCallerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DestinationPattern(); ok {
		_spec.SetField(outboundrule.FieldDestinationPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrunkConfig(); ok {
		_spec.SetField(outboundrule.FieldTrunkConfig, field.TypeJSON, value)
	}
	if _u.mutation.TrunkConfigCleared() {
		_spec.ClearField(outboundrule.FieldTrunkConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(outboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(outboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(outboundrule.FieldEnabled, field.TypeBool, value)
	}
	_node = &OutboundRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboundrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
