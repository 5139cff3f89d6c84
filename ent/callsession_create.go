// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/callevent"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/tenant"
)

// CallSessionCreate is the builder for creating a CallSession entity.
type CallSessionCreate struct {
	config
	mutation *CallSessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CallSessionCreate) SetTenantID(v string) *CallSessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSessionToken sets the "session_token" field.
func (_c *CallSessionCreate) SetSessionToken(v string) *CallSessionCreate {
	_c.mutation.SetSessionToken(v)
	return _c
}

// SetCallSid sets the "call_sid" field.
func (_c *CallSessionCreate) SetCallSid(v string) *CallSessionCreate {
	_c.mutation.SetCallSid(v)
	return _c
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableCallSid(v *string) *CallSessionCreate {
	if v != nil {
		_c.SetCallSid(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CallSessionCreate) SetDirection(v callsession.Direction) *CallSessionCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableDirection(v *callsession.Direction) *CallSessionCreate {
	if v != nil {
		_c.SetDirection(*v)
	}
	return _c
}

// SetCallerID sets the "caller_id" field.
func (_c *CallSessionCreate) SetCallerID(v string) *CallSessionCreate {
	_c.mutation.SetCallerID(v)
	return _c
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableCallerID(v *string) *CallSessionCreate {
	if v != nil {
		_c.SetCallerID(*v)
	}
	return _c
}

// SetDestination sets the "destination" field.
func (_c *CallSessionCreate) SetDestination(v string) *CallSessionCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableDestination(v *string) *CallSessionCreate {
	if v != nil {
		_c.SetDestination(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *CallSessionCreate) SetState(v callsession.State) *CallSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableState(v *callsession.State) *CallSessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CallSessionCreate) SetStartedAt(v time.Time) *CallSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableStartedAt(v *time.Time) *CallSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *CallSessionCreate) SetAnsweredAt(v time.Time) *CallSessionCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableAnsweredAt(v *time.Time) *CallSessionCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *CallSessionCreate) SetEndedAt(v time.Time) *CallSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableEndedAt(v *time.Time) *CallSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *CallSessionCreate) SetDurationSeconds(v int) *CallSessionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableDurationSeconds(v *int) *CallSessionCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CallSessionCreate) SetAgentID(v string) *CallSessionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableAgentID(v *string) *CallSessionCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *CallSessionCreate) SetGroupID(v string) *CallSessionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableGroupID(v *string) *CallSessionCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *CallSessionCreate) SetHistory(v []map[string]interface{}) *CallSessionCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CallSessionCreate) SetMetadata(v map[string]interface{}) *CallSessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CallSessionCreate) SetUpdatedAt(v time.Time) *CallSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CallSessionCreate) SetNillableUpdatedAt(v *time.Time) *CallSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallSessionCreate) SetID(v string) *CallSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *CallSessionCreate) SetTenant(v *Tenant) *CallSessionCreate {
	return _c.SetTenantID(v.ID)
}

// AddEventIDs adds the "events" edge to the CallEvent entity by IDs.
func (_c *CallSessionCreate) AddEventIDs(ids ...string) *CallSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the CallEvent entity.
func (_c *CallSessionCreate) AddEvents(v ...*CallEvent) *CallSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// SetRecordID sets the "record" edge to the CallRecord entity by ID.
func (_c *CallSessionCreate) SetRecordID(id string) *CallSessionCreate {
	_c.mutation.SetRecordID(id)
	return _c
}

// SetNillableRecordID sets the "record" edge to the CallRecord entity by ID if the given value is not nil.
func (_c *CallSessionCreate) SetNillableRecordID(id *string) *CallSessionCreate {
	if id != nil {
		_c = _c.SetRecordID(*id)
	}
	return _c
}

// SetRecord sets the "record" edge to the CallRecord entity.
func (_c *CallSessionCreate) SetRecord(v *CallRecord) *CallSessionCreate {
	return _c.SetRecordID(v.ID)
}

// Mutation returns the CallSessionMutation object of the builder.
func (_c *CallSessionCreate) Mutation() *CallSessionMutation {
	return _c.mutation
}

// Save creates the CallSession in the database.
func (_c *CallSessionCreate) Save(ctx context.Context) (*CallSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallSessionCreate) SaveX(ctx context.Context) *CallSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallSessionCreate) defaults() {
	if _, ok := _c.mutation.Direction(); !ok {
		v := callsession.DefaultDirection
		_c.mutation.SetDirection(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := callsession.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := callsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := callsession.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := callsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallSessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CallSession.tenant_id"`)}
	}
	if _, ok := _c.mutation.SessionToken(); !ok {
		return &ValidationError{Name: "session_token", err: errors.New(`ent: missing required field "CallSession.session_token"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "CallSession.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := callsession.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CallSession.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CallSession.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := callsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CallSession.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "CallSession.started_at"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "CallSession.duration_seconds"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CallSession.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "CallSession.tenant"`)}
	}
	return nil
}

func (_c *CallSessionCreate) sqlSave(ctx context.Context) (*CallSession, error) {
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
			return nil, fmt.Errorf("unexpected CallSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallSessionCreate) createSpec() (*CallSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CallSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callsession.Table, sqlgraph.NewFieldSpec(callsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionToken(); ok {
		_spec.SetField(callsession.FieldSessionToken, field.TypeString, value)
		_node.SessionToken = value
	}
	if value, ok := _c.mutation.CallSid(); ok {
		_spec.SetField(callsession.FieldCallSid, field.TypeString, value)
		_node.CallSid = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(callsession.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.CallerID(); ok {
		_spec.SetField(callsession.FieldCallerID, field.TypeString, value)
		_node.CallerID = value
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(callsession.FieldDestination, field.TypeString, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(callsession.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(callsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(callsession.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(callsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(callsession.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(callsession.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(callsession.FieldGroupID, field.TypeString, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(callsession.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(callsession.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(callsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callsession.TenantTable,
			Columns: []string{callsession.TenantColumn},
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
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   callsession.EventsTable,
			Columns: []string{callsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   callsession.RecordTable,
			Columns: []string{callsession.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CallSessionCreateBulk is the builder for creating many CallSession entities in bulk.
type CallSessionCreateBulk struct {
	config
	err      error
	builders []*CallSessionCreate
}

// Save creates the CallSession entities in the database.
func (_c *CallSessionCreateBulk) Save(ctx context.Context) ([]*CallSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallSessionMutation)
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
func (_c *CallSessionCreateBulk) SaveX(ctx context.Context) []*CallSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
