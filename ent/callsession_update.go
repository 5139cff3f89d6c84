// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/callevent"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/predicate"
)

// CallSessionUpdate is the builder for updating CallSession entities.
type CallSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CallSessionMutation
}

// Where appends a list predicates to the CallSessionUpdate builder.
func (_u *CallSessionUpdate) Where(ps ...predicate.CallSession) *CallSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallSid sets the "call_sid" field.
func (_u *CallSessionUpdate) SetCallSid(v string) *CallSessionUpdate {
	_u.mutation.SetCallSid(v)
	return _u
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableCallSid(v *string) *CallSessionUpdate {
	if v != nil {
		_u.SetCallSid(*v)
	}
	return _u
}

// ClearCallSid clears the value of the "call_sid" field.
func (_u *CallSessionUpdate) ClearCallSid() *CallSessionUpdate {
	_u.mutation.ClearCallSid()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CallSessionUpdate) SetDirection(v callsession.Direction) *CallSessionUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableDirection(v *callsession.Direction) *CallSessionUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetCallerID sets the "caller_id" field.
func (_u *CallSessionUpdate) SetCallerID(v string) *CallSessionUpdate {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableCallerID(v *string) *CallSessionUpdate {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// ClearCallerID clears the value of the "caller_id" field.
func (_u *CallSessionUpdate) ClearCallerID() *CallSessionUpdate {
	_u.mutation.ClearCallerID()
	return _u
}

// SetDestination sets the "destination" field.
func (_u *CallSessionUpdate) SetDestination(v string) *CallSessionUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableDestination(v *string) *CallSessionUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// ClearDestination clears the value of the "destination" field.
func (_u *CallSessionUpdate) ClearDestination() *CallSessionUpdate {
	_u.mutation.ClearDestination()
	return _u
}

// SetState sets the "state" field.
func (_u *CallSessionUpdate) SetState(v callsession.State) *CallSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableState(v *callsession.State) *CallSessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CallSessionUpdate) SetStartedAt(v time.Time) *CallSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableStartedAt(v *time.Time) *CallSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *CallSessionUpdate) SetAnsweredAt(v time.Time) *CallSessionUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableAnsweredAt(v *time.Time) *CallSessionUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *CallSessionUpdate) ClearAnsweredAt() *CallSessionUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallSessionUpdate) SetEndedAt(v time.Time) *CallSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableEndedAt(v *time.Time) *CallSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *CallSessionUpdate) ClearEndedAt() *CallSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallSessionUpdate) SetDurationSeconds(v int) *CallSessionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableDurationSeconds(v *int) *CallSessionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallSessionUpdate) AddDurationSeconds(v int) *CallSessionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CallSessionUpdate) SetAgentID(v string) *CallSessionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableAgentID(v *string) *CallSessionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CallSessionUpdate) ClearAgentID() *CallSessionUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *CallSessionUpdate) SetGroupID(v string) *CallSessionUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableGroupID(v *string) *CallSessionUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *CallSessionUpdate) ClearGroupID() *CallSessionUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetHistory sets the "history" field.
func (_u *CallSessionUpdate) SetHistory(v []map[string]interface{}) *CallSessionUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *CallSessionUpdate) AppendHistory(v []map[string]interface{}) *CallSessionUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *CallSessionUpdate) ClearHistory() *CallSessionUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CallSessionUpdate) SetMetadata(v map[string]interface{}) *CallSessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CallSessionUpdate) ClearMetadata() *CallSessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallSessionUpdate) SetUpdatedAt(v time.Time) *CallSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the CallEvent entity by IDs.
func (_u *CallSessionUpdate) AddEventIDs(ids ...string) *CallSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CallEvent entity.
func (_u *CallSessionUpdate) AddEvents(v ...*CallEvent) *CallSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetRecordID sets the "record" edge to the CallRecord entity by ID.
func (_u *CallSessionUpdate) SetRecordID(id string) *CallSessionUpdate {
	_u.mutation.SetRecordID(id)
	return _u
}

// SetNillableRecordID sets the "record" edge to the CallRecord entity by ID if the given value is not nil.
func (_u *CallSessionUpdate) SetNillableRecordID(id *string) *CallSessionUpdate {
	if id != nil {
		_u = _u.SetRecordID(*id)
	}
	return _u
}

// SetRecord sets the "record" edge to the CallRecord entity.
func (_u *CallSessionUpdate) SetRecord(v *CallRecord) *CallSessionUpdate {
	return _u.SetRecordID(v.ID)
}

// Mutation returns the CallSessionMutation object of the builder.
func (_u *CallSessionUpdate) Mutation() *CallSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the CallEvent entity.
func (_u *CallSessionUpdate) ClearEvents() *CallSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CallEvent entities by IDs.
func (_u *CallSessionUpdate) RemoveEventIDs(ids ...string) *CallSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CallEvent entities.
func (_u *CallSessionUpdate) RemoveEvents(v ...*CallEvent) *CallSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearRecord clears the "record" edge to the CallRecord entity.
func (_u *CallSessionUpdate) ClearRecord() *CallSessionUpdate {
	_u.mutation.ClearRecord()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := callsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallSessionUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := callsession.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CallSession.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := callsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CallSession.state": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallSession.tenant"`)
	}
	return nil
}

func (_u *CallSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callsession.Table, callsession.Columns, sqlgraph.NewFieldSpec(callsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallSid(); ok {
		_spec.SetField(callsession.FieldCallSid, field.TypeString, value)
	}
	if _u.mutation.CallSidCleared() {
		_spec.ClearField(callsession.FieldCallSid, field.TypeString)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(callsession.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(callsession.FieldCallerID, field.TypeString, value)
	}
	if _u.mutation.CallerIDCleared() {
		_spec.ClearField(callsession.FieldCallerID, field.TypeString)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(callsession.FieldDestination, field.TypeString, value)
	}
	if _u.mutation.DestinationCleared() {
		_spec.ClearField(callsession.FieldDestination, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(callsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(callsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(callsession.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(callsession.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(callsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(callsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(callsession.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(callsession.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(callsession.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(callsession.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(callsession.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(callsession.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(callsession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, callsession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(callsession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(callsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(callsession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(callsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallSessionUpdateOne is the builder for updating a single CallSession entity.
type CallSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallSessionMutation
}

// SetCallSid sets the "call_sid" field.
func (_u *CallSessionUpdateOne) SetCallSid(v string) *CallSessionUpdateOne {
	_u.mutation.SetCallSid(v)
	return _u
}

// SetNillableCallSid sets the "call_sid" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableCallSid(v *string) *CallSessionUpdateOne {
	if v != nil {
		_u.SetCallSid(*v)
	}
	return _u
}

// ClearCallSid clears the value of the "call_sid" field.
func (_u *CallSessionUpdateOne) ClearCallSid() *CallSessionUpdateOne {
	_u.mutation.ClearCallSid()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CallSessionUpdateOne) SetDirection(v callsession.Direction) *CallSessionUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableDirection(v *callsession.Direction) *CallSessionUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetCallerID sets the "caller_id" field.
func (_u *CallSessionUpdateOne) SetCallerID(v string) *CallSessionUpdateOne {
	_u.mutation.SetCallerID(v)
	return _u
}

// SetNillableCallerID sets the "caller_id" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableCallerID(v *string) *CallSessionUpdateOne {
	if v != nil {
		_u.SetCallerID(*v)
	}
	return _u
}

// ClearCallerID clears the value of the "caller_id" field.
func (_u *CallSessionUpdateOne) ClearCallerID() *CallSessionUpdateOne {
	_u.mutation.ClearCallerID()
	return _u
}

// SetDestination sets the "destination" field.
func (_u *CallSessionUpdateOne) SetDestination(v string) *CallSessionUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableDestination(v *string) *CallSessionUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// ClearDestination clears the value of the "destination" field.
func (_u *CallSessionUpdateOne) ClearDestination() *CallSessionUpdateOne {
	_u.mutation.ClearDestination()
	return _u
}

// SetState sets the "state" field.
func (_u *CallSessionUpdateOne) SetState(v callsession.State) *CallSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableState(v *callsession.State) *CallSessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CallSessionUpdateOne) SetStartedAt(v time.Time) *CallSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableStartedAt(v *time.Time) *CallSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *CallSessionUpdateOne) SetAnsweredAt(v time.Time) *CallSessionUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableAnsweredAt(v *time.Time) *CallSessionUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *CallSessionUpdateOne) ClearAnsweredAt() *CallSessionUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CallSessionUpdateOne) SetEndedAt(v time.Time) *CallSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableEndedAt(v *time.Time) *CallSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *CallSessionUpdateOne) ClearEndedAt() *CallSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallSessionUpdateOne) SetDurationSeconds(v int) *CallSessionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableDurationSeconds(v *int) *CallSessionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallSessionUpdateOne) AddDurationSeconds(v int) *CallSessionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CallSessionUpdateOne) SetAgentID(v string) *CallSessionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableAgentID(v *string) *CallSessionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *CallSessionUpdateOne) ClearAgentID() *CallSessionUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *CallSessionUpdateOne) SetGroupID(v string) *CallSessionUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableGroupID(v *string) *CallSessionUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *CallSessionUpdateOne) ClearGroupID() *CallSessionUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetHistory sets the "history" field.
func (_u *CallSessionUpdateOne) SetHistory(v []map[string]interface{}) *CallSessionUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *CallSessionUpdateOne) AppendHistory(v []map[string]interface{}) *CallSessionUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *CallSessionUpdateOne) ClearHistory() *CallSessionUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CallSessionUpdateOne) SetMetadata(v map[string]interface{}) *CallSessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CallSessionUpdateOne) ClearMetadata() *CallSessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallSessionUpdateOne) SetUpdatedAt(v time.Time) *CallSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the CallEvent entity by IDs.
func (_u *CallSessionUpdateOne) AddEventIDs(ids ...string) *CallSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CallEvent entity.
func (_u *CallSessionUpdateOne) AddEvents(v ...*CallEvent) *CallSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetRecordID sets the "record" edge to the CallRecord entity by ID.
func (_u *CallSessionUpdateOne) SetRecordID(id string) *CallSessionUpdateOne {
	_u.mutation.SetRecordID(id)
	return _u
}

// SetNillableRecordID sets the "record" edge to the CallRecord entity by ID if the given value is not nil.
func (_u *CallSessionUpdateOne) SetNillableRecordID(id *string) *CallSessionUpdateOne {
	if id != nil {
		_u = _u.SetRecordID(*id)
	}
	return _u
}

// SetRecord sets the "record" edge to the CallRecord entity.
func (_u *CallSessionUpdateOne) SetRecord(v *CallRecord) *CallSessionUpdateOne {
	return _u.SetRecordID(v.ID)
}

// Mutation returns the CallSessionMutation object of the builder.
func (_u *CallSessionUpdateOne) Mutation() *CallSessionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the CallEvent entity.
func (_u *CallSessionUpdateOne) ClearEvents() *CallSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CallEvent entities by IDs.
func (_u *CallSessionUpdateOne) RemoveEventIDs(ids ...string) *CallSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CallEvent entities.
func (_u *CallSessionUpdateOne) RemoveEvents(v ...*CallEvent) *CallSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearRecord clears the "record" edge to the CallRecord entity.
func (_u *CallSessionUpdateOne) ClearRecord() *CallSessionUpdateOne {
	_u.mutation.ClearRecord()
	return _u
}

// Where appends a list predicates to the CallSessionUpdate builder.
func (_u *CallSessionUpdateOne) Where(ps ...predicate.CallSession) *CallSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallSessionUpdateOne) Select(field string, fields ...string) *CallSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallSession entity.
func (_u *CallSessionUpdateOne) Save(ctx context.Context) (*CallSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallSessionUpdateOne) SaveX(ctx context.Context) *CallSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := callsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := callsession.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CallSession.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := callsession.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CallSession.state": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallSession.tenant"`)
	}
	return nil
}

func (_u *CallSessionUpdateOne) sqlSave(ctx context.Context) (_node *CallSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callsession.Table, callsession.Columns, sqlgraph.NewFieldSpec(callsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callsession.FieldID)
		for _, f := range fields {
			if !callsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callsession.FieldID {
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
	if value, ok := _u.mutation.CallSid(); ok {
		_spec.SetField(callsession.FieldCallSid, field.TypeString, value)
	}
	if _u.mutation.CallSidCleared() {
		_spec.ClearField(callsession.FieldCallSid, field.TypeString)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(callsession.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CallerID(); ok {
		_spec.SetField(callsession.FieldCallerID, field.TypeString, value)
	}
	if _u.mutation.CallerIDCleared() {
		_spec.ClearField(callsession.FieldCallerID, field.TypeString)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(callsession.FieldDestination, field.TypeString, value)
	}
	if _u.mutation.DestinationCleared() {
		_spec.ClearField(callsession.FieldDestination, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(callsession.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(callsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(callsession.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(callsession.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(callsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(callsession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(callsession.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(callsession.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(callsession.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(callsession.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(callsession.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(callsession.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(callsession.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, callsession.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(callsession.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(callsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(callsession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(callsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CallSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
