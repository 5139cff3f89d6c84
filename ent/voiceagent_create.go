// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/tenant"
	"github.com/voxroute/voxroute/ent/voiceagent"
)

// VoiceAgentCreate is the builder for creating a VoiceAgent entity.
type VoiceAgentCreate struct {
	config
	mutation *VoiceAgentMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *VoiceAgentCreate) SetTenantID(v string) *VoiceAgentCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *VoiceAgentCreate) SetName(v string) *VoiceAgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *VoiceAgentCreate) SetProvider(v string) *VoiceAgentCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetServiceValue sets the "service_value" field.
func (_c *VoiceAgentCreate) SetServiceValue(v string) *VoiceAgentCreate {
	_c.mutation.SetServiceValue(v)
	return _c
}

// SetUsernameCipher sets the "username_cipher" field.
func (_c *VoiceAgentCreate) SetUsernameCipher(v string) *VoiceAgentCreate {
	_c.mutation.SetUsernameCipher(v)
	return _c
}

// SetNillableUsernameCipher sets the "username_cipher" field if the given value is not nil.
func (_c *VoiceAgentCreate) SetNillableUsernameCipher(v *string) *VoiceAgentCreate {
	if v != nil {
		_c.SetUsernameCipher(*v)
	}
	return _c
}

// SetPasswordCipher sets the "password_cipher" field.
func (_c *VoiceAgentCreate) SetPasswordCipher(v string) *VoiceAgentCreate {
	_c.mutation.SetPasswordCipher(v)
	return _c
}

// SetNillablePasswordCipher sets the "password_cipher" field if the given value is not nil.
func (_c *VoiceAgentCreate) SetNillablePasswordCipher(v *string) *VoiceAgentCreate {
	if v != nil {
		_c.SetPasswordCipher(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *VoiceAgentCreate) SetEnabled(v bool) *VoiceAgentCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *VoiceAgentCreate) SetNillableEnabled(v *bool) *VoiceAgentCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *VoiceAgentCreate) SetMetadata(v map[string]interface{}) *VoiceAgentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VoiceAgentCreate) SetCreatedAt(v time.Time) *VoiceAgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VoiceAgentCreate) SetNillableCreatedAt(v *time.Time) *VoiceAgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VoiceAgentCreate) SetUpdatedAt(v time.Time) *VoiceAgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VoiceAgentCreate) SetNillableUpdatedAt(v *time.Time) *VoiceAgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VoiceAgentCreate) SetID(v string) *VoiceAgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *VoiceAgentCreate) SetTenant(v *Tenant) *VoiceAgentCreate {
	return _c.SetTenantID(v.ID)
}

// AddMembershipIDs adds the "memberships" edge to the GroupMember entity by IDs.
func (_c *VoiceAgentCreate) AddMembershipIDs(ids ...string) *VoiceAgentCreate {
	_c.mutation.AddMembershipIDs(ids...)
	return _c
}

// AddMemberships adds the "memberships" edges to the GroupMember entity.
func (_c *VoiceAgentCreate) AddMemberships(v ...*GroupMember) *VoiceAgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMembershipIDs(ids...)
}

// Mutation returns the VoiceAgentMutation object of the builder.
func (_c *VoiceAgentCreate) Mutation() *VoiceAgentMutation {
	return _c.mutation
}

// Save creates the VoiceAgent in the database.
func (_c *VoiceAgentCreate) Save(ctx context.Context) (*VoiceAgent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoiceAgentCreate) SaveX(ctx context.Context) *VoiceAgent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoiceAgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoiceAgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoiceAgentCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := voiceagent.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := voiceagent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := voiceagent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoiceAgentCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "VoiceAgent.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "VoiceAgent.name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "VoiceAgent.provider"`)}
	}
	if _, ok := _c.mutation.ServiceValue(); !ok {
		return &ValidationError{Name: "service_value", err: errors.New(`ent: missing required field "VoiceAgent.service_value"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "VoiceAgent.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VoiceAgent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VoiceAgent.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "VoiceAgent.tenant"`)}
	}
	return nil
}

func (_c *VoiceAgentCreate) sqlSave(ctx context.Context) (*VoiceAgent, error) {
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
			return nil, fmt.Errorf("unexpected VoiceAgent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VoiceAgentCreate) createSpec() (*VoiceAgent, *sqlgraph.CreateSpec) {
	var (
		_node = &VoiceAgent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(voiceagent.Table, sqlgraph.NewFieldSpec(voiceagent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(voiceagent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(voiceagent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ServiceValue(); ok {
		_spec.SetField(voiceagent.FieldServiceValue, field.TypeString, value)
		_node.ServiceValue = value
	}
	if value, ok := _c.mutation.UsernameCipher(); ok {
		_spec.SetField(voiceagent.FieldUsernameCipher, field.TypeString, value)
		_node.UsernameCipher = &value
	}
	if value, ok := _c.mutation.PasswordCipher(); ok {
		_spec.SetField(voiceagent.FieldPasswordCipher, field.TypeString, value)
		_node.PasswordCipher = &value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(voiceagent.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(voiceagent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(voiceagent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(voiceagent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voiceagent.TenantTable,
			Columns: []string{voiceagent.TenantColumn},
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
	if nodes := _c.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   voiceagent.MembershipsTable,
			Columns: []string{voiceagent.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupmember.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VoiceAgentCreateBulk is the builder for creating many VoiceAgent entities in bulk.
type VoiceAgentCreateBulk struct {
	config
	err      error
	builders []*VoiceAgentCreate
}

// Save creates the VoiceAgent entities in the database.
func (_c *VoiceAgentCreateBulk) Save(ctx context.Context) ([]*VoiceAgent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VoiceAgent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoiceAgentMutation)
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
func (_c *VoiceAgentCreateBulk) SaveX(ctx context.Context) []*VoiceAgent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoiceAgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoiceAgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
