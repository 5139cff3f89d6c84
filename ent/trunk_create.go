// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/tenant"
	"github.com/voxroute/voxroute/ent/trunk"
)

// TrunkCreate is the builder for creating a Trunk entity.
type TrunkCreate struct {
	config
	mutation *TrunkMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TrunkCreate) SetTenantID(v string) *TrunkCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCarrierTrunkID sets the "carrier_trunk_id" field.
func (_c *TrunkCreate) SetCarrierTrunkID(v string) *TrunkCreate {
	_c.mutation.SetCarrierTrunkID(v)
	return _c
}

// SetConfiguration sets the "configuration" field.
func (_c *TrunkCreate) SetConfiguration(v map[string]interface{}) *TrunkCreate {
	_c.mutation.SetConfiguration(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TrunkCreate) SetPriority(v int) *TrunkCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TrunkCreate) SetNillablePriority(v *int) *TrunkCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCapacity sets the "capacity" field.
func (_c *TrunkCreate) SetCapacity(v int) *TrunkCreate {
	_c.mutation.SetCapacity(v)
	return _c
}

// SetNillableCapacity sets the "capacity" field if the given value is not nil.
func (_c *TrunkCreate) SetNillableCapacity(v *int) *TrunkCreate {
	if v != nil {
		_c.SetCapacity(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *TrunkCreate) SetEnabled(v bool) *TrunkCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *TrunkCreate) SetNillableEnabled(v *bool) *TrunkCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *TrunkCreate) SetIsDefault(v bool) *TrunkCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *TrunkCreate) SetNillableIsDefault(v *bool) *TrunkCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrunkCreate) SetCreatedAt(v time.Time) *TrunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrunkCreate) SetNillableCreatedAt(v *time.Time) *TrunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrunkCreate) SetID(v string) *TrunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *TrunkCreate) SetTenant(v *Tenant) *TrunkCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the TrunkMutation object of the builder.
func (_c *TrunkCreate) Mutation() *TrunkMutation {
	return _c.mutation
}

// Save creates the Trunk in the database.
func (_c *TrunkCreate) Save(ctx context.Context) (*Trunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrunkCreate) SaveX(ctx context.Context) *Trunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrunkCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := trunk.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := trunk.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := trunk.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrunkCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Trunk.tenant_id"`)}
	}
	if _, ok := _c.mutation.CarrierTrunkID(); !ok {
		return &ValidationError{Name: "carrier_trunk_id", err: errors.New(`ent: missing required field "Trunk.carrier_trunk_id"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Trunk.priority"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Trunk.enabled"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "Trunk.is_default"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trunk.created_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Trunk.tenant"`)}
	}
	return nil
}

func (_c *TrunkCreate) sqlSave(ctx context.Context) (*Trunk, error) {
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
			return nil, fmt.Errorf("unexpected Trunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrunkCreate) createSpec() (*Trunk, *sqlgraph.CreateSpec) {
	var (
		_node = &Trunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trunk.Table, sqlgraph.NewFieldSpec(trunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CarrierTrunkID(); ok {
		_spec.SetField(trunk.FieldCarrierTrunkID, field.TypeString, value)
		_node.CarrierTrunkID = value
	}
	if value, ok := _c.mutation.Configuration(); ok {
		_spec.SetField(trunk.FieldConfiguration, field.TypeJSON, value)
		_node.Configuration = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(trunk.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Capacity(); ok {
		_spec.SetField(trunk.FieldCapacity, field.TypeInt, value)
		_node.Capacity = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(trunk.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(trunk.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trunk.TenantTable,
			Columns: []string{trunk.TenantColumn},
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

// TrunkCreateBulk is the builder for creating many Trunk entities in bulk.
type TrunkCreateBulk struct {
	config
	err      error
	builders []*TrunkCreate
}

// Save creates the Trunk entities in the database.
func (_c *TrunkCreateBulk) Save(ctx context.Context) ([]*Trunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrunkMutation)
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
func (_c *TrunkCreateBulk) SaveX(ctx context.Context) []*Trunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
