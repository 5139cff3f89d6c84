// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/tenant"
)

// CallRecordCreate is the builder for creating a CallRecord entity.
type CallRecordCreate struct {
	config
	mutation *CallRecordMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CallRecordCreate) SetTenantID(v string) *CallRecordCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *CallRecordCreate) SetCallID(v string) *CallRecordCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetSessionToken sets the "session_token" field.
func (_c *CallRecordCreate) SetSessionToken(v string) *CallRecordCreate {
	_c.mutation.SetSessionToken(v)
	return _c
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableSessionToken(v *string) *CallRecordCreate {
	if v != nil {
		_c.SetSessionToken(*v)
	}
	return _c
}

// SetFromNumber sets the "from_number" field.
func (_c *CallRecordCreate) SetFromNumber(v string) *CallRecordCreate {
	_c.mutation.SetFromNumber(v)
	return _c
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableFromNumber(v *string) *CallRecordCreate {
	if v != nil {
		_c.SetFromNumber(*v)
	}
	return _c
}

// SetToNumber sets the "to_number" field.
func (_c *CallRecordCreate) SetToNumber(v string) *CallRecordCreate {
	_c.mutation.SetToNumber(v)
	return _c
}

// SetNillableToNumber sets the "to_number" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableToNumber(v *string) *CallRecordCreate {
	if v != nil {
		_c.SetToNumber(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CallRecordCreate) SetDirection(v string) *CallRecordCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableDirection(v *string) *CallRecordCreate {
	if v != nil {
		_c.SetDirection(*v)
	}
	return _c
}

// SetDisposition sets the "disposition" field.
func (_c *CallRecordCreate) SetDisposition(v string) *CallRecordCreate {
	_c.mutation.SetDisposition(v)
	return _c
}

// SetCallStartTime sets the "call_start_time" field.
func (_c *CallRecordCreate) SetCallStartTime(v time.Time) *CallRecordCreate {
	_c.mutation.SetCallStartTime(v)
	return _c
}

// SetNillableCallStartTime sets the "call_start_time" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableCallStartTime(v *time.Time) *CallRecordCreate {
	if v != nil {
		_c.SetCallStartTime(*v)
	}
	return _c
}

// SetAnswerTime sets the "answer_time" field.
func (_c *CallRecordCreate) SetAnswerTime(v time.Time) *CallRecordCreate {
	_c.mutation.SetAnswerTime(v)
	return _c
}

// SetNillableAnswerTime sets the "answer_time" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableAnswerTime(v *time.Time) *CallRecordCreate {
	if v != nil {
		_c.SetAnswerTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *CallRecordCreate) SetEndTime(v time.Time) *CallRecordCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableEndTime(v *time.Time) *CallRecordCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *CallRecordCreate) SetDurationSeconds(v int) *CallRecordCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableDurationSeconds(v *int) *CallRecordCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetBilledSeconds sets the "billed_seconds" field.
func (_c *CallRecordCreate) SetBilledSeconds(v int) *CallRecordCreate {
	_c.mutation.SetBilledSeconds(v)
	return _c
}

// SetNillableBilledSeconds sets the "billed_seconds" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableBilledSeconds(v *int) *CallRecordCreate {
	if v != nil {
		_c.SetBilledSeconds(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *CallRecordCreate) SetRawPayload(v map[string]interface{}) *CallRecordCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallRecordCreate) SetCreatedAt(v time.Time) *CallRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableCreatedAt(v *time.Time) *CallRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CallRecordCreate) SetUpdatedAt(v time.Time) *CallRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CallRecordCreate) SetNillableUpdatedAt(v *time.Time) *CallRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallRecordCreate) SetID(v string) *CallRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *CallRecordCreate) SetTenant(v *Tenant) *CallRecordCreate {
	return _c.SetTenantID(v.ID)
}

// SetSessionID sets the "session" edge to the CallSession entity by ID.
func (_c *CallRecordCreate) SetSessionID(id string) *CallRecordCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetNillableSessionID sets the "session" edge to the CallSession entity by ID if the given value is not nil.
func (_c *CallRecordCreate) SetNillableSessionID(id *string) *CallRecordCreate {
	if id != nil {
		_c = _c.SetSessionID(*id)
	}
	return _c
}

// SetSession sets the "session" edge to the CallSession entity.
func (_c *CallRecordCreate) SetSession(v *CallSession) *CallRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CallRecordMutation object of the builder.
func (_c *CallRecordCreate) Mutation() *CallRecordMutation {
	return _c.mutation
}

// Save creates the CallRecord in the database.
func (_c *CallRecordCreate) Save(ctx context.Context) (*CallRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallRecordCreate) SaveX(ctx context.Context) *CallRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallRecordCreate) defaults() {
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := callrecord.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.BilledSeconds(); !ok {
		v := callrecord.DefaultBilledSeconds
		_c.mutation.SetBilledSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := callrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := callrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallRecordCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CallRecord.tenant_id"`)}
	}
	if _, ok := _c.mutation.CallID(); !ok {
		return &ValidationError{Name: "call_id", err: errors.New(`ent: missing required field "CallRecord.call_id"`)}
	}
	if _, ok := _c.mutation.Disposition(); !ok {
		return &ValidationError{Name: "disposition", err: errors.New(`ent: missing required field "CallRecord.disposition"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "CallRecord.duration_seconds"`)}
	}
	if _, ok := _c.mutation.BilledSeconds(); !ok {
		return &ValidationError{Name: "billed_seconds", err: errors.New(`ent: missing required field "CallRecord.billed_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CallRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CallRecord.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "CallRecord.tenant"`)}
	}
	return nil
}

func (_c *CallRecordCreate) sqlSave(ctx context.Context) (*CallRecord, error) {
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
			return nil, fmt.Errorf("unexpected CallRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallRecordCreate) createSpec() (*CallRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CallRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(callrecord.Table, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(callrecord.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.SessionToken(); ok {
		_spec.SetField(callrecord.FieldSessionToken, field.TypeString, value)
		_node.SessionToken = value
	}
	if value, ok := _c.mutation.FromNumber(); ok {
		_spec.SetField(callrecord.FieldFromNumber, field.TypeString, value)
		_node.FromNumber = value
	}
	if value, ok := _c.mutation.ToNumber(); ok {
		_spec.SetField(callrecord.FieldToNumber, field.TypeString, value)
		_node.ToNumber = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(callrecord.FieldDirection, field.TypeString, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Disposition(); ok {
		_spec.SetField(callrecord.FieldDisposition, field.TypeString, value)
		_node.Disposition = value
	}
	if value, ok := _c.mutation.CallStartTime(); ok {
		_spec.SetField(callrecord.FieldCallStartTime, field.TypeTime, value)
		_node.CallStartTime = &value
	}
	if value, ok := _c.mutation.AnswerTime(); ok {
		_spec.SetField(callrecord.FieldAnswerTime, field.TypeTime, value)
		_node.AnswerTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(callrecord.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(callrecord.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.BilledSeconds(); ok {
		_spec.SetField(callrecord.FieldBilledSeconds, field.TypeInt, value)
		_node.BilledSeconds = value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(callrecord.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(callrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(callrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   callrecord.TenantTable,
			Columns: []string{callrecord.TenantColumn},
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
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   callrecord.SessionTable,
			Columns: []string{callrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(callsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.call_session_record = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CallRecordCreateBulk is the builder for creating many CallRecord entities in bulk.
type CallRecordCreateBulk struct {
	config
	err      error
	builders []*CallRecordCreate
}

// Save creates the CallRecord entities in the database.
func (_c *CallRecordCreateBulk) Save(ctx context.Context) ([]*CallRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CallRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallRecordMutation)
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
func (_c *CallRecordCreateBulk) SaveX(ctx context.Context) []*CallRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
