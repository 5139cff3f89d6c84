// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voxroute/voxroute/ent/callrecord"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/predicate"
)

// CallRecordUpdate is the builder for updating CallRecord entities.
type CallRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CallRecordMutation
}

// Where appends a list predicates to the CallRecordUpdate builder.
func (_u *CallRecordUpdate) Where(ps ...predicate.CallRecord) *CallRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionToken sets the "session_token" field.
func (_u *CallRecordUpdate) SetSessionToken(v string) *CallRecordUpdate {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableSessionToken(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// ClearSessionToken clears the value of the "session_token" field.
func (_u *CallRecordUpdate) ClearSessionToken() *CallRecordUpdate {
	_u.mutation.ClearSessionToken()
	return _u
}

// SetFromNumber sets the "from_number" field.
func (_u *CallRecordUpdate) SetFromNumber(v string) *CallRecordUpdate {
	_u.mutation.SetFromNumber(v)
	return _u
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableFromNumber(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetFromNumber(*v)
	}
	return _u
}

// ClearFromNumber clears the value of the "from_number" field.
func (_u *CallRecordUpdate) ClearFromNumber() *CallRecordUpdate {
	_u.mutation.ClearFromNumber()
	return _u
}

// SetToNumber sets the "to_number" field.
func (_u *CallRecordUpdate) SetToNumber(v string) *CallRecordUpdate {
	_u.mutation.SetToNumber(v)
	return _u
}

// SetNillableToNumber sets the "to_number" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableToNumber(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetToNumber(*v)
	}
	return _u
}

// ClearToNumber clears the value of the "to_number" field.
func (_u *CallRecordUpdate) ClearToNumber() *CallRecordUpdate {
	_u.mutation.ClearToNumber()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CallRecordUpdate) SetDirection(v string) *CallRecordUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableDirection(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// ClearDirection clears the value of the "direction" field.
func (_u *CallRecordUpdate) ClearDirection() *CallRecordUpdate {
	_u.mutation.ClearDirection()
	return _u
}

// SetDisposition sets the "disposition" field.
func (_u *CallRecordUpdate) SetDisposition(v string) *CallRecordUpdate {
	_u.mutation.SetDisposition(v)
	return _u
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableDisposition(v *string) *CallRecordUpdate {
	if v != nil {
		_u.SetDisposition(*v)
	}
	return _u
}

// SetCallStartTime sets the "call_start_time" field.
func (_u *CallRecordUpdate) SetCallStartTime(v time.Time) *CallRecordUpdate {
	_u.mutation.SetCallStartTime(v)
	return _u
}

// SetNillableCallStartTime sets the "call_start_time" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableCallStartTime(v *time.Time) *CallRecordUpdate {
	if v != nil {
		_u.SetCallStartTime(*v)
	}
	return _u
}

// ClearCallStartTime clears the value of the "call_start_time" field.
func (_u *CallRecordUpdate) ClearCallStartTime() *CallRecordUpdate {
	_u.mutation.ClearCallStartTime()
	return _u
}

// SetAnswerTime sets the "answer_time" field.
func (_u *CallRecordUpdate) SetAnswerTime(v time.Time) *CallRecordUpdate {
	_u.mutation.SetAnswerTime(v)
	return _u
}

// SetNillableAnswerTime sets the "answer_time" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableAnswerTime(v *time.Time) *CallRecordUpdate {
	if v != nil {
		_u.SetAnswerTime(*v)
	}
	return _u
}

// ClearAnswerTime clears the value of the "answer_time" field.
func (_u *CallRecordUpdate) ClearAnswerTime() *CallRecordUpdate {
	_u.mutation.ClearAnswerTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *CallRecordUpdate) SetEndTime(v time.Time) *CallRecordUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableEndTime(v *time.Time) *CallRecordUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *CallRecordUpdate) ClearEndTime() *CallRecordUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallRecordUpdate) SetDurationSeconds(v int) *CallRecordUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableDurationSeconds(v *int) *CallRecordUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallRecordUpdate) AddDurationSeconds(v int) *CallRecordUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetBilledSeconds sets the "billed_seconds" field.
func (_u *CallRecordUpdate) SetBilledSeconds(v int) *CallRecordUpdate {
	_u.mutation.ResetBilledSeconds()
	_u.mutation.SetBilledSeconds(v)
	return _u
}

// SetNillableBilledSeconds sets the "billed_seconds" field if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableBilledSeconds(v *int) *CallRecordUpdate {
	if v != nil {
		_u.SetBilledSeconds(*v)
	}
	return _u
}

// AddBilledSeconds adds value to the "billed_seconds" field.
func (_u *CallRecordUpdate) AddBilledSeconds(v int) *CallRecordUpdate {
	_u.mutation.AddBilledSeconds(v)
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *CallRecordUpdate) SetRawPayload(v map[string]interface{}) *CallRecordUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *CallRecordUpdate) ClearRawPayload() *CallRecordUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallRecordUpdate) SetUpdatedAt(v time.Time) *CallRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session" edge to the CallSession entity by ID.
func (_u *CallRecordUpdate) SetSessionID(id string) *CallRecordUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the CallSession entity by ID if the given value is not nil.
func (_u *CallRecordUpdate) SetNillableSessionID(id *string) *CallRecordUpdate {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the CallSession entity.
func (_u *CallRecordUpdate) SetSession(v *CallSession) *CallRecordUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the CallRecordMutation object of the builder.
func (_u *CallRecordUpdate) Mutation() *CallRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the CallSession entity.
func (_u *CallRecordUpdate) ClearSession() *CallRecordUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CallRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CallRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := callrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallRecordUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallRecord.tenant"`)
	}
	return nil
}

func (_u *CallRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(callrecord.FieldSessionToken, field.TypeString, value)
	}
	if _u.mutation.SessionTokenCleared() {
		_spec.ClearField(callrecord.FieldSessionToken, field.TypeString)
	}
	if value, ok := _u.mutation.FromNumber(); ok {
		_spec.SetField(callrecord.FieldFromNumber, field.TypeString, value)
	}
	if _u.mutation.FromNumberCleared() {
		_spec.ClearField(callrecord.FieldFromNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ToNumber(); ok {
		_spec.SetField(callrecord.FieldToNumber, field.TypeString, value)
	}
	if _u.mutation.ToNumberCleared() {
		_spec.ClearField(callrecord.FieldToNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(callrecord.FieldDirection, field.TypeString, value)
	}
	if _u.mutation.DirectionCleared() {
		_spec.ClearField(callrecord.FieldDirection, field.TypeString)
	}
	if value, ok := _u.mutation.Disposition(); ok {
		_spec.SetField(callrecord.FieldDisposition, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallStartTime(); ok {
		_spec.SetField(callrecord.FieldCallStartTime, field.TypeTime, value)
	}
	if _u.mutation.CallStartTimeCleared() {
		_spec.ClearField(callrecord.FieldCallStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.AnswerTime(); ok {
		_spec.SetField(callrecord.FieldAnswerTime, field.TypeTime, value)
	}
	if _u.mutation.AnswerTimeCleared() {
		_spec.ClearField(callrecord.FieldAnswerTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(callrecord.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(callrecord.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(callrecord.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(callrecord.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BilledSeconds(); ok {
		_spec.SetField(callrecord.FieldBilledSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBilledSeconds(); ok {
		_spec.AddField(callrecord.FieldBilledSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(callrecord.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(callrecord.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(callrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CallRecordUpdateOne is the builder for updating a single CallRecord entity.
type CallRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CallRecordMutation
}

// SetSessionToken sets the "session_token" field.
func (_u *CallRecordUpdateOne) SetSessionToken(v string) *CallRecordUpdateOne {
	_u.mutation.SetSessionToken(v)
	return _u
}

// SetNillableSessionToken sets the "session_token" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableSessionToken(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetSessionToken(*v)
	}
	return _u
}

// ClearSessionToken clears the value of the "session_token" field.
func (_u *CallRecordUpdateOne) ClearSessionToken() *CallRecordUpdateOne {
	_u.mutation.ClearSessionToken()
	return _u
}

// SetFromNumber sets the "from_number" field.
func (_u *CallRecordUpdateOne) SetFromNumber(v string) *CallRecordUpdateOne {
	_u.mutation.SetFromNumber(v)
	return _u
}

// SetNillableFromNumber sets the "from_number" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableFromNumber(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetFromNumber(*v)
	}
	return _u
}

// ClearFromNumber clears the value of the "from_number" field.
func (_u *CallRecordUpdateOne) ClearFromNumber() *CallRecordUpdateOne {
	_u.mutation.ClearFromNumber()
	return _u
}

// SetToNumber sets the "to_number" field.
func (_u *CallRecordUpdateOne) SetToNumber(v string) *CallRecordUpdateOne {
	_u.mutation.SetToNumber(v)
	return _u
}

// SetNillableToNumber sets the "to_number" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableToNumber(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetToNumber(*v)
	}
	return _u
}

// ClearToNumber clears the value of the "to_number" field.
func (_u *CallRecordUpdateOne) ClearToNumber() *CallRecordUpdateOne {
	_u.mutation.ClearToNumber()
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CallRecordUpdateOne) SetDirection(v string) *CallRecordUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableDirection(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// ClearDirection clears the value of the "direction" field.
func (_u *CallRecordUpdateOne) ClearDirection() *CallRecordUpdateOne {
	_u.mutation.ClearDirection()
	return _u
}

// SetDisposition sets the "disposition" field.
func (_u *CallRecordUpdateOne) SetDisposition(v string) *CallRecordUpdateOne {
	_u.mutation.SetDisposition(v)
	return _u
}

// SetNillableDisposition sets the "disposition" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableDisposition(v *string) *CallRecordUpdateOne {
	if v != nil {
		_u.SetDisposition(*v)
	}
	return _u
}

// SetCallStartTime sets the "call_start_time" field.
func (_u *CallRecordUpdateOne) SetCallStartTime(v time.Time) *CallRecordUpdateOne {
	_u.mutation.SetCallStartTime(v)
	return _u
}

// SetNillableCallStartTime sets the "call_start_time" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableCallStartTime(v *time.Time) *CallRecordUpdateOne {
	if v != nil {
		_u.SetCallStartTime(*v)
	}
	return _u
}

// ClearCallStartTime clears the value of the "call_start_time" field.
func (_u *CallRecordUpdateOne) ClearCallStartTime() *CallRecordUpdateOne {
	_u.mutation.ClearCallStartTime()
	return _u
}

// SetAnswerTime sets the "answer_time" field.
func (_u *CallRecordUpdateOne) SetAnswerTime(v time.Time) *CallRecordUpdateOne {
	_u.mutation.SetAnswerTime(v)
	return _u
}

// SetNillableAnswerTime sets the "answer_time" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableAnswerTime(v *time.Time) *CallRecordUpdateOne {
	if v != nil {
		_u.SetAnswerTime(*v)
	}
	return _u
}

// ClearAnswerTime clears the value of the "answer_time" field.
func (_u *CallRecordUpdateOne) ClearAnswerTime() *CallRecordUpdateOne {
	_u.mutation.ClearAnswerTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *CallRecordUpdateOne) SetEndTime(v time.Time) *CallRecordUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableEndTime(v *time.Time) *CallRecordUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *CallRecordUpdateOne) ClearEndTime() *CallRecordUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *CallRecordUpdateOne) SetDurationSeconds(v int) *CallRecordUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableDurationSeconds(v *int) *CallRecordUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *CallRecordUpdateOne) AddDurationSeconds(v int) *CallRecordUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetBilledSeconds sets the "billed_seconds" field.
func (_u *CallRecordUpdateOne) SetBilledSeconds(v int) *CallRecordUpdateOne {
	_u.mutation.ResetBilledSeconds()
	_u.mutation.SetBilledSeconds(v)
	return _u
}

// SetNillableBilledSeconds sets the "billed_seconds" field if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableBilledSeconds(v *int) *CallRecordUpdateOne {
	if v != nil {
		_u.SetBilledSeconds(*v)
	}
	return _u
}

// AddBilledSeconds adds value to the "billed_seconds" field.
func (_u *CallRecordUpdateOne) AddBilledSeconds(v int) *CallRecordUpdateOne {
	_u.mutation.AddBilledSeconds(v)
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *CallRecordUpdateOne) SetRawPayload(v map[string]interface{}) *CallRecordUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *CallRecordUpdateOne) ClearRawPayload() *CallRecordUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CallRecordUpdateOne) SetUpdatedAt(v time.Time) *CallRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSessionID sets the "session" edge to the CallSession entity by ID.
func (_u *CallRecordUpdateOne) SetSessionID(id string) *CallRecordUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the CallSession entity by ID if the given value is not nil.
func (_u *CallRecordUpdateOne) SetNillableSessionID(id *string) *CallRecordUpdateOne {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the CallSession entity.
func (_u *CallRecordUpdateOne) SetSession(v *CallSession) *CallRecordUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the CallRecordMutation object of the builder.
func (_u *CallRecordUpdateOne) Mutation() *CallRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the CallSession entity.
func (_u *CallRecordUpdateOne) ClearSession() *CallRecordUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the CallRecordUpdate builder.
func (_u *CallRecordUpdateOne) Where(ps ...predicate.CallRecord) *CallRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CallRecordUpdateOne) Select(field string, fields ...string) *CallRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CallRecord entity.
func (_u *CallRecordUpdateOne) Save(ctx context.Context) (*CallRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CallRecordUpdateOne) SaveX(ctx context.Context) *CallRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CallRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CallRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CallRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := callrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CallRecordUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CallRecord.tenant"`)
	}
	return nil
}

func (_u *CallRecordUpdateOne) sqlSave(ctx context.Context) (_node *CallRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(callrecord.Table, callrecord.Columns, sqlgraph.NewFieldSpec(callrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CallRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, callrecord.FieldID)
		for _, f := range fields {
			if !callrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != callrecord.FieldID {
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
	if value, ok := _u.mutation.SessionToken(); ok {
		_spec.SetField(callrecord.FieldSessionToken, field.TypeString, value)
	}
	if _u.mutation.SessionTokenCleared() {
		_spec.ClearField(callrecord.FieldSessionToken, field.TypeString)
	}
	if value, ok := _u.mutation.FromNumber(); ok {
		_spec.SetField(callrecord.FieldFromNumber, field.TypeString, value)
	}
	if _u.mutation.FromNumberCleared() {
		_spec.ClearField(callrecord.FieldFromNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ToNumber(); ok {
		_spec.SetField(callrecord.FieldToNumber, field.TypeString, value)
	}
	if _u.mutation.ToNumberCleared() {
		_spec.ClearField(callrecord.FieldToNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(callrecord.FieldDirection, field.TypeString, value)
	}
	if _u.mutation.DirectionCleared() {
		_spec.ClearField(callrecord.FieldDirection, field.TypeString)
	}
	if value, ok := _u.mutation.Disposition(); ok {
		_spec.SetField(callrecord.FieldDisposition, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallStartTime(); ok {
		_spec.SetField(callrecord.FieldCallStartTime, field.TypeTime, value)
	}
	if _u.mutation.CallStartTimeCleared() {
		_spec.ClearField(callrecord.FieldCallStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.AnswerTime(); ok {
		_spec.SetField(callrecord.FieldAnswerTime, field.TypeTime, value)
	}
	if _u.mutation.AnswerTimeCleared() {
		_spec.ClearField(callrecord.FieldAnswerTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(callrecord.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(callrecord.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(callrecord.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(callrecord.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BilledSeconds(); ok {
		_spec.SetField(callrecord.FieldBilledSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBilledSeconds(); ok {
		_spec.AddField(callrecord.FieldBilledSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(callrecord.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(callrecord.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(callrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CallRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{callrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
