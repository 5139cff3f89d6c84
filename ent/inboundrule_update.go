// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/ent/predicate"
)

// InboundRuleUpdate is the builder for updating InboundRule entities.
type InboundRuleUpdate struct {
	config
	hooks    []Hook
	mutation *InboundRuleMutation
}

// Where appends a list predicates to the InboundRuleUpdate builder.
func (_u *InboundRuleUpdate) Where(ps ...predicate.InboundRule) *InboundRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *InboundRuleUpdate) SetPattern(v string) *InboundRuleUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *InboundRuleUpdate) SetNillablePattern(v *string) *InboundRuleUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetTargetKind sets the "target_kind" field.
func (_u *InboundRuleUpdate) SetTargetKind(v inboundrule.TargetKind) *InboundRuleUpdate {
	_u.mutation.SetTargetKind(v)
	return _u
}

// SetNillableTargetKind sets the "target_kind" field if the given value is not nil.
func (_u *InboundRuleUpdate) SetNillableTargetKind(v *inboundrule.TargetKind) *InboundRuleUpdate {
	if v != nil {
		_u.SetTargetKind(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *InboundRuleUpdate) SetTargetID(v string) *InboundRuleUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *InboundRuleUpdate) SetNillableTargetID(v *string) *InboundRuleUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InboundRuleUpdate) SetPriority(v int) *InboundRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InboundRuleUpdate) SetNillablePriority(v *int) *InboundRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *InboundRuleUpdate) AddPriority(v int) *InboundRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *InboundRuleUpdate) SetEnabled(v bool) *InboundRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *InboundRuleUpdate) SetNillableEnabled(v *bool) *InboundRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the InboundRuleMutation object of the builder.
func (_u *InboundRuleUpdate) Mutation() *InboundRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboundRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboundRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboundRuleUpdate) check() error {
	if v, ok := _u.mutation.Pattern(); ok {
		if err := inboundrule.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "InboundRule.pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetKind(); ok {
		if err := inboundrule.TargetKindValidator(v); err != nil {
			return &ValidationError{Name: "target_kind", err: fmt.Errorf(`ent: validator failed for field "InboundRule.target_kind": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboundRule.tenant"`)
	}
	return nil
}

func (_u *InboundRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboundrule.Table, inboundrule.Columns, sqlgraph.NewFieldSpec(inboundrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(inboundrule.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetKind(); ok {
		_spec.SetField(inboundrule.FieldTargetKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(inboundrule.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(inboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(inboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(inboundrule.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboundRuleUpdateOne is the builder for updating a single InboundRule entity.
type InboundRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboundRuleMutation
}

// SetPattern sets the "pattern" field.
func (_u *InboundRuleUpdateOne) SetPattern(v string) *InboundRuleUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *InboundRuleUpdateOne) SetNillablePattern(v *string) *InboundRuleUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetTargetKind sets the "target_kind" field.
func (_u *InboundRuleUpdateOne) SetTargetKind(v inboundrule.TargetKind) *InboundRuleUpdateOne {
	_u.mutation.SetTargetKind(v)
	return _u
}

// SetNillableTargetKind sets the "target_kind" field if the given value is not nil.
func (_u *InboundRuleUpdateOne) SetNillableTargetKind(v *inboundrule.TargetKind) *InboundRuleUpdateOne {
	if v != nil {
		_u.SetTargetKind(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *InboundRuleUpdateOne) SetTargetID(v string) *InboundRuleUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *InboundRuleUpdateOne) SetNillableTargetID(v *string) *InboundRuleUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InboundRuleUpdateOne) SetPriority(v int) *InboundRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InboundRuleUpdateOne) SetNillablePriority(v *int) *InboundRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *InboundRuleUpdateOne) AddPriority(v int) *InboundRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *InboundRuleUpdateOne) SetEnabled(v bool) *InboundRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *InboundRuleUpdateOne) SetNillableEnabled(v *bool) *InboundRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the InboundRuleMutation object of the builder.
func (_u *InboundRuleUpdateOne) Mutation() *InboundRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the InboundRuleUpdate builder.
func (_u *InboundRuleUpdateOne) Where(ps ...predicate.InboundRule) *InboundRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboundRuleUpdateOne) Select(field string, fields ...string) *InboundRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboundRule entity.
func (_u *InboundRuleUpdateOne) Save(ctx context.Context) (*InboundRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundRuleUpdateOne) SaveX(ctx context.Context) *InboundRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboundRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboundRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Pattern(); ok {
		if err := inboundrule.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "InboundRule.pattern": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetKind(); ok {
		if err := inboundrule.TargetKindValidator(v); err != nil {
			return &ValidationError{Name: "target_kind", err: fmt.Errorf(`ent: validator failed for field "InboundRule.target_kind": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboundRule.tenant"`)
	}
	return nil
}

func (_u *InboundRuleUpdateOne) sqlSave(ctx context.Context) (_node *InboundRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboundrule.Table, inboundrule.Columns, sqlgraph.NewFieldSpec(inboundrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboundRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboundrule.FieldID)
		for _, f := range fields {
			if !inboundrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboundrule.FieldID {
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
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(inboundrule.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetKind(); ok {
		_spec.SetField(inboundrule.FieldTargetKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(inboundrule.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(inboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(inboundrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(inboundrule.FieldEnabled, field.TypeBool, value)
	}
	_node = &InboundRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
