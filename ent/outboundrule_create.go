// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/tenant"
)

// OutboundRuleCreate is the builder for creating a OutboundRule entity.
type OutboundRuleCreate struct {
	config
	mutation *OutboundRuleMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *OutboundRuleCreate) SetTenantID(v string) *OutboundRuleCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCallerID sets the "caller_id" field.
func (_c *OutboundRuleCreate) SetCallerID(v string) *OutboundRuleCreate {
	_c.mutation.SetCallerID(v)
	return _c
}

// SetDestinationPattern sets the "destination_pattern" field.
func (_c *OutboundRuleCreate) SetDestinationPattern(v string) *OutboundRuleCreate {
	_c.mutation.SetDestinationPattern(v)
	return _c
}

// SetTrunkConfig sets the "trunk_config" field.
func (_c *OutboundRuleCreate) SetTrunkConfig(v map[string]interface{}) *OutboundRuleCreate {
	_c.mutation.SetTrunkConfig(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *OutboundRuleCreate) SetPriority(v int) *OutboundRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *OutboundRuleCreate) SetNillablePriority(v *int) *OutboundRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *OutboundRuleCreate) SetEnabled(v bool) *OutboundRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *OutboundRuleCreate) SetNillableEnabled(v *bool) *OutboundRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutboundRuleCreate) SetCreatedAt(v time.Time) *OutboundRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutboundRuleCreate) SetNillableCreatedAt(v *time.Time) *OutboundRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboundRuleCreate) SetID(v string) *OutboundRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *OutboundRuleCreate) SetTenant(v *Tenant) *OutboundRuleCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the OutboundRuleMutation object of the builder.
func (_c *OutboundRuleCreate) Mutation() *OutboundRuleMutation {
	return _c.mutation
}

// Save creates the OutboundRule in the database.
func (_c *OutboundRuleCreate) Save(ctx context.Context) (*OutboundRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboundRuleCreate) SaveX(ctx context.Context) *OutboundRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboundRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboundRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboundRuleCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := outboundrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := outboundrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outboundrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboundRuleCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "OutboundRule.tenant_id"`)}
	}
	if _, ok := _c.mutation.CallerID(); !ok {
		return &ValidationError{Name: "caller_id", err: errors.New(`ent: missing required field "OutboundRule.caller_id"`)}
	}
	if v, ok := _c.mutation.CallerID(); ok {
		if err := outboundrule.CallerIDValidator(v); err != nil {
			return &ValidationError{Name: "caller_id", err: fmt.Errorf(`ent: validator failed for field "OutboundRule.caller_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DestinationPattern(); !ok {
		return &ValidationError{Name: "destination_pattern", err: errors.New(`ent: missing required field "OutboundRule.destination_pattern"`)}
	}
	if v, ok := _c.mutation.DestinationPattern(); ok {
		if err := outboundrule.DestinationPatternValidator(v); err != nil {
			return &ValidationError{Name: "destination_pattern", err: fmt.Errorf(`ent: validator failed for field "OutboundRule.destination_pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "OutboundRule.priority"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "OutboundRule.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutboundRule.created_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "OutboundRule.tenant"`)}
	}
	return nil
}

func (_c *OutboundRuleCreate) sqlSave(ctx context.Context) (*OutboundRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected OutboundRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutboundRuleCreate) createSpec() (*OutboundRule, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboundRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboundrule.Table, sqlgraph.NewFieldSpec(outboundrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallerID(); ok {
		_spec.SetField(outboundrule.FieldCallerID, field.TypeString, value)
		_node.CallerID = value
	}
	if value, ok := _c.mutation.DestinationPattern(); ok {
		_spec.SetField(outboundrule.FieldDestinationPattern, field.TypeString, value)
		_node.DestinationPattern = value
	}
	if value, ok := _c.mutation.TrunkConfig(); ok {
		_spec.SetField(outboundrule.FieldTrunkConfig, field.TypeJSON, value)
		_node.TrunkConfig = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(outboundrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(outboundrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outboundrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outboundrule.TenantTable,
			Columns: []string{outboundrule.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OutboundRuleCreateBulk is the builder for creating many OutboundRule entities in bulk.
type OutboundRuleCreateBulk struct {
	config
	err      error
	builders []*OutboundRuleCreate
}

// Save creates the OutboundRule entities in the database.
func (_c *OutboundRuleCreateBulk) Save(ctx context.Context) ([]*OutboundRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboundRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboundRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OutboundRuleCreateBulk) SaveX(ctx context.Context) []*OutboundRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboundRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboundRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
