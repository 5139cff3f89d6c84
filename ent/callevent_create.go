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
	"github.com/voxroute/voxroute/ent/callsession"
)

// CallEventCreate is the builder for creating a CallEvent entity.
type CallEventCreate struct {
	config
	mutation *CallEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CallEventCreate) SetSessionID(v string) *CallEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEventKind sets the "event_kind" field.
func (_c *CallEventCreate) SetEventKind(v string) *CallEventCreate {
	_c.mutation.SetEventKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CallEventCreate) SetPayload(v map[string]interface{}) *CallEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *CallEventCreate) SetHeaders(v map[string]string) *CallEventCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *CallEventCreate) SetOutcome(v string) *CallEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *CallEventCreate) SetNillableOutcome(v *string) *CallEventCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *CallEventCreate) SetOccurredAt(v time.Time) *CallEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *CallEventCreate) SetNillableOccurredAt(v *time.Time) *CallEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallEventCreate) SetID(v string) *CallEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the CallSession entity.
func (_c *CallEventCreate) SetSession(v *CallSession) *CallEventCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CallEventMutation object of the builder.
func (_c *CallEventCreate) Mutation() *CallEventMutation {
	return _c.mutation
}

// Save creates the CallEvent in the database.
func (_c *CallEventCreate) Save(ctx context.Context) (*CallEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallEventCreate) SaveX(ctx context.Context) *CallEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallEventCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := callevent.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CallEvent.session_id"`)}
	}
	if _, ok := _c.mutation.EventKind(); !ok {
		return &ValidationError{Name: "event_kind", err: errors.New(`ent: missing required field "CallEvent.event_kind"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "CallEvent.occurred_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "CallEvent.session"`)}
	}
	return nil
}

func (_c *CallEventCreate) sqlSave(ctx context.Context) (*CallEvent, error) {
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
			return nil, fmt.Errorf("unexpected CallEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallEventCreate) createSpec() (*CallEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CallEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callevent.Table, sqlgraph.NewFieldSpec(callevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventKind(); ok {
		_spec.SetField(callevent.FieldEventKind, field.TypeString, value)
		_node.EventKind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(callevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(callevent.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(callevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(callevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callevent.SessionTable,
			Columns: []string{callevent.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CallEventCreateBulk is the builder for creating many CallEvent entities in bulk.
type CallEventCreateBulk struct {
	config
	err      error
	builders []*CallEventCreate
}

// Save creates the CallEvent entities in the database.
func (_c *CallEventCreateBulk) Save(ctx context.Context) ([]*CallEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallEventMutation)
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
func (_c *CallEventCreateBulk) SaveX(ctx context.Context) []*CallEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
