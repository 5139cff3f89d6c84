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
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/predicate"
	"github.com/voxroute/voxroute/ent/voiceagent"
)

// VoiceAgentUpdate is the builder for updating VoiceAgent entities.
type VoiceAgentUpdate struct {
	config
	hooks    []Hook
	mutation *VoiceAgentMutation
}

// Where appends a list predicates to the VoiceAgentUpdate builder.
func (_u *VoiceAgentUpdate) Where(ps ...predicate.VoiceAgent) *VoiceAgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VoiceAgentUpdate) SetName(v string) *VoiceAgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VoiceAgentUpdate) SetNillableName(v *string) *VoiceAgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VoiceAgentUpdate) SetProvider(v string) *VoiceAgentUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VoiceAgentUpdate) SetNillableProvider(v *string) *VoiceAgentUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetServiceValue sets the "service_value" field.
func (_u *VoiceAgentUpdate) SetServiceValue(v string) *VoiceAgentUpdate {
	_u.mutation.SetServiceValue(v)
	return _u
}

// SetNillableServiceValue sets the "service_value" field if the given value is not nil.
func (_u *VoiceAgentUpdate) SetNillableServiceValue(v *string) *VoiceAgentUpdate {
	if v != nil {
		_u.SetServiceValue(*v)
	}
	return _u
}

// SetUsernameCipher sets the "username_cipher" field.
func (_u *VoiceAgentUpdate) SetUsernameCipher(v string) *VoiceAgentUpdate {
	_u.mutation.SetUsernameCipher(v)
	return _u
}

// SetNillableUsernameCipher sets the "username_cipher" field if the given value is not nil.
func (_u *VoiceAgentUpdate) SetNillableUsernameCipher(v *string) *VoiceAgentUpdate {
	if v != nil {
		_u.SetUsernameCipher(*v)
	}
	return _u
}

// ClearUsernameCipher clears the value of the "username_cipher" field.
func (_u *VoiceAgentUpdate) ClearUsernameCipher() *VoiceAgentUpdate {
	_u.mutation.ClearUsernameCipher()
	return _u
}

// SetPasswordCipher sets the "password_cipher" field.
func (_u *VoiceAgentUpdate) SetPasswordCipher(v string) *VoiceAgentUpdate {
	_u.mutation.SetPasswordCipher(v)
	return _u
}

// SetNillablePasswordCipher sets the "password_cipher" field if the given value is not nil.
func (_u *VoiceAgentUpdate) SetNillablePasswordCipher(v *string) *VoiceAgentUpdate {
	if v != nil {
		_u.SetPasswordCipher(*v)
	}
	return _u
}

// ClearPasswordCipher clears the value of the "password_cipher" field.
func (_u *VoiceAgentUpdate) ClearPasswordCipher() *VoiceAgentUpdate {
	_u.mutation.ClearPasswordCipher()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *VoiceAgentUpdate) SetEnabled(v bool) *VoiceAgentUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *VoiceAgentUpdate) SetNillableEnabled(v *bool) *VoiceAgentUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *VoiceAgentUpdate) SetMetadata(v map[string]interface{}) *VoiceAgentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *VoiceAgentUpdate) ClearMetadata() *VoiceAgentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoiceAgentUpdate) SetUpdatedAt(v time.Time) *VoiceAgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMembershipIDs adds the "memberships" edge to the GroupMember entity by IDs.
func (_u *VoiceAgentUpdate) AddMembershipIDs(ids ...string) *VoiceAgentUpdate {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the GroupMember entity.
func (_u *VoiceAgentUpdate) AddMemberships(v ...*GroupMember) *VoiceAgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the VoiceAgentMutation object of the builder.
func (_u *VoiceAgentUpdate) Mutation() *VoiceAgentMutation {
	return _u.mutation
}

// ClearMemberships clears all "memberships" edges to the GroupMember entity.
func (_u *VoiceAgentUpdate) ClearMemberships() *VoiceAgentUpdate {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to GroupMember entities by IDs.
func (_u *VoiceAgentUpdate) RemoveMembershipIDs(ids ...string) *VoiceAgentUpdate {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to GroupMember entities.
func (_u *VoiceAgentUpdate) RemoveMemberships(v ...*GroupMember) *VoiceAgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoiceAgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoiceAgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoiceAgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoiceAgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoiceAgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := voiceagent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoiceAgentUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VoiceAgent.tenant"`)
	}
	return nil
}

func (_u *VoiceAgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voiceagent.Table, voiceagent.Columns, sqlgraph.NewFieldSpec(voiceagent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(voiceagent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(voiceagent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceValue(); ok {
		_spec.SetField(voiceagent.FieldServiceValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsernameCipher(); ok {
		_spec.SetField(voiceagent.FieldUsernameCipher, field.TypeString, value)
	}
	if _u.mutation.UsernameCipherCleared() {
		_spec.ClearField(voiceagent.FieldUsernameCipher, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordCipher(); ok {
		_spec.SetField(voiceagent.FieldPasswordCipher, field.TypeString, value)
	}
	if _u.mutation.PasswordCipherCleared() {
		_spec.ClearField(voiceagent.FieldPasswordCipher, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(voiceagent.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(voiceagent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(voiceagent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(voiceagent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voiceagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoiceAgentUpdateOne is the builder for updating a single VoiceAgent entity.
type VoiceAgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoiceAgentMutation
}

// SetName sets the "name" field.
func (_u *VoiceAgentUpdateOne) SetName(v string) *VoiceAgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VoiceAgentUpdateOne) SetNillableName(v *string) *VoiceAgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VoiceAgentUpdateOne) SetProvider(v string) *VoiceAgentUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VoiceAgentUpdateOne) SetNillableProvider(v *string) *VoiceAgentUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetServiceValue sets the "service_value" field.
func (_u *VoiceAgentUpdateOne) SetServiceValue(v string) *VoiceAgentUpdateOne {
	_u.mutation.SetServiceValue(v)
	return _u
}

// SetNillableServiceValue sets the "service_value" field if the given value is not nil.
func (_u *VoiceAgentUpdateOne) SetNillableServiceValue(v *string) *VoiceAgentUpdateOne {
	if v != nil {
		_u.SetServiceValue(*v)
	}
	return _u
}

// SetUsernameCipher sets the "username_cipher" field.
func (_u *VoiceAgentUpdateOne) SetUsernameCipher(v string) *VoiceAgentUpdateOne {
	_u.mutation.SetUsernameCipher(v)
	return _u
}

// SetNillableUsernameCipher sets the "username_cipher" field if the given value is not nil.
func (_u *VoiceAgentUpdateOne) SetNillableUsernameCipher(v *string) *VoiceAgentUpdateOne {
	if v != nil {
		_u.SetUsernameCipher(*v)
	}
	return _u
}

// ClearUsernameCipher clears the value of the "username_cipher" field.
func (_u *VoiceAgentUpdateOne) ClearUsernameCipher() *VoiceAgentUpdateOne {
	_u.mutation.ClearUsernameCipher()
	return _u
}

// SetPasswordCipher sets the "password_cipher" field.
func (_u *VoiceAgentUpdateOne) SetPasswordCipher(v string) *VoiceAgentUpdateOne {
	_u.mutation.SetPasswordCipher(v)
	return _u
}

// SetNillablePasswordCipher sets the "password_cipher" field if the given value is not nil.
func (_u *VoiceAgentUpdateOne) SetNillablePasswordCipher(v *string) *VoiceAgentUpdateOne {
	if v != nil {
		_u.SetPasswordCipher(*v)
	}
	return _u
}

// ClearPasswordCipher clears the value of the "password_cipher" field.
func (_u *VoiceAgentUpdateOne) ClearPasswordCipher() *VoiceAgentUpdateOne {
	_u.mutation.ClearPasswordCipher()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *VoiceAgentUpdateOne) SetEnabled(v bool) *VoiceAgentUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *VoiceAgentUpdateOne) SetNillableEnabled(v *bool) *VoiceAgentUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *VoiceAgentUpdateOne) SetMetadata(v map[string]interface{}) *VoiceAgentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *VoiceAgentUpdateOne) ClearMetadata() *VoiceAgentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoiceAgentUpdateOne) SetUpdatedAt(v time.Time) *VoiceAgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMembershipIDs adds the "memberships" edge to the GroupMember entity by IDs.
func (_u *VoiceAgentUpdateOne) AddMembershipIDs(ids ...string) *VoiceAgentUpdateOne {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the GroupMember entity.
func (_u *VoiceAgentUpdateOne) AddMemberships(v ...*GroupMember) *VoiceAgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the VoiceAgentMutation object of the builder.
func (_u *VoiceAgentUpdateOne) Mutation() *VoiceAgentMutation {
	return _u.mutation
}

// ClearMemberships clears all "memberships" edges to the GroupMember entity.
func (_u *VoiceAgentUpdateOne) ClearMemberships() *VoiceAgentUpdateOne {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to GroupMember entities by IDs.
func (_u *VoiceAgentUpdateOne) RemoveMembershipIDs(ids ...string) *VoiceAgentUpdateOne {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to GroupMember entities.
func (_u *VoiceAgentUpdateOne) RemoveMemberships(v ...*GroupMember) *VoiceAgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Where appends a list predicates to the VoiceAgentUpdate builder.
func (_u *VoiceAgentUpdateOne) Where(ps ...predicate.VoiceAgent) *VoiceAgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoiceAgentUpdateOne) Select(field string, fields ...string) *VoiceAgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VoiceAgent entity.
func (_u *VoiceAgentUpdateOne) Save(ctx context.Context) (*VoiceAgent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoiceAgentUpdateOne) SaveX(ctx context.Context) *VoiceAgent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoiceAgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoiceAgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoiceAgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := voiceagent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoiceAgentUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VoiceAgent.tenant"`)
	}
	return nil
}

func (_u *VoiceAgentUpdateOne) sqlSave(ctx context.Context) (_node *VoiceAgent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voiceagent.Table, voiceagent.Columns, sqlgraph.NewFieldSpec(voiceagent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VoiceAgent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voiceagent.FieldID)
		for _, f := range fields {
			if !voiceagent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != voiceagent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(voiceagent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(voiceagent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceValue(); ok {
		_spec.SetField(voiceagent.FieldServiceValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsernameCipher(); ok {
		_spec.SetField(voiceagent.FieldUsernameCipher, field.TypeString, value)
	}
	if _u.mutation.UsernameCipherCleared() {
		_spec.ClearField(voiceagent.FieldUsernameCipher, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordCipher(); ok {
		_spec.SetField(voiceagent.FieldPasswordCipher, field.TypeString, value)
	}
	if _u.mutation.PasswordCipherCleared() {
		_spec.ClearField(voiceagent.FieldPasswordCipher, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(voiceagent.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(voiceagent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(voiceagent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(voiceagent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VoiceAgent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voiceagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
