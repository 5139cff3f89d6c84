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
	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/predicate"
)

// AgentGroupUpdate is the builder for updating AgentGroup entities.
type AgentGroupUpdate struct {
	config
	hooks    []Hook
	mutation *AgentGroupMutation
}

// Where appends a list predicates to the AgentGroupUpdate builder.
func (_u *AgentGroupUpdate) Where(ps ...predicate.AgentGroup) *AgentGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentGroupUpdate) SetName(v string) *AgentGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentGroupUpdate) SetNillableName(v *string) *AgentGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AgentGroupUpdate) SetStrategy(v agentgroup.Strategy) *AgentGroupUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AgentGroupUpdate) SetNillableStrategy(v *agentgroup.Strategy) *AgentGroupUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetStrategySettings sets the "strategy_settings" field.
func (_u *AgentGroupUpdate) SetStrategySettings(v map[string]interface{}) *AgentGroupUpdate {
	_u.mutation.SetStrategySettings(v)
	return _u
}

// ClearStrategySettings clears the value of the "strategy_settings" field.
func (_u *AgentGroupUpdate) ClearStrategySettings() *AgentGroupUpdate {
	_u.mutation.ClearStrategySettings()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentGroupUpdate) SetEnabled(v bool) *AgentGroupUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentGroupUpdate) SetNillableEnabled(v *bool) *AgentGroupUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentGroupUpdate) SetUpdatedAt(v time.Time) *AgentGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the GroupMember entity by IDs.
func (_u *AgentGroupUpdate) AddMemberIDs(ids ...string) *AgentGroupUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the GroupMember entity.
func (_u *AgentGroupUpdate) AddMembers(v ...*GroupMember) *AgentGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the AgentGroupMutation object of the builder.
func (_u *AgentGroupUpdate) Mutation() *AgentGroupMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the GroupMember entity.
func (_u *AgentGroupUpdate) ClearMembers() *AgentGroupUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to GroupMember entities by IDs.
func (_u *AgentGroupUpdate) RemoveMemberIDs(ids ...string) *AgentGroupUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to GroupMember entities.
func (_u *AgentGroupUpdate) RemoveMembers(v ...*GroupMember) *AgentGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentGroupUpdate) check() error {
	if v, ok := _u.mutation.Strategy(); ok {
		if err := agentgroup.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AgentGroup.strategy": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentGroup.tenant"`)
	}
	return nil
}

func (_u *AgentGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentgroup.Table, agentgroup.Columns, sqlgraph.NewFieldSpec(agentgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(agentgroup.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StrategySettings(); ok {
		_spec.SetField(agentgroup.FieldStrategySettings, field.TypeJSON, value)
	}
	if _u.mutation.StrategySettingsCleared() {
		_spec.ClearField(agentgroup.FieldStrategySettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentgroup.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentgroup.MembersTable,
			Columns: []string{agentgroup.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupmember.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentgroup.MembersTable,
			Columns: []string{agentgroup.MembersColumn},
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
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentgroup.MembersTable,
			Columns: []string{agentgroup.MembersColumn},
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
			err = &NotFoundError{agentgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentGroupUpdateOne is the builder for updating a single AgentGroup entity.
type AgentGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentGroupMutation
}

// SetName sets the "name" field.
func (_u *AgentGroupUpdateOne) SetName(v string) *AgentGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentGroupUpdateOne) SetNillableName(v *string) *AgentGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *AgentGroupUpdateOne) SetStrategy(v agentgroup.Strategy) *AgentGroupUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *AgentGroupUpdateOne) SetNillableStrategy(v *agentgroup.Strategy) *AgentGroupUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetStrategySettings sets the "strategy_settings" field.
func (_u *AgentGroupUpdateOne) SetStrategySettings(v map[string]interface{}) *AgentGroupUpdateOne {
	_u.mutation.SetStrategySettings(v)
	return _u
}

// ClearStrategySettings clears the value of the "strategy_settings" field.
func (_u *AgentGroupUpdateOne) ClearStrategySettings() *AgentGroupUpdateOne {
	_u.mutation.ClearStrategySettings()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AgentGroupUpdateOne) SetEnabled(v bool) *AgentGroupUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AgentGroupUpdateOne) SetNillableEnabled(v *bool) *AgentGroupUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentGroupUpdateOne) SetUpdatedAt(v time.Time) *AgentGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the GroupMember entity by IDs.
func (_u *AgentGroupUpdateOne) AddMemberIDs(ids ...string) *AgentGroupUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the GroupMember entity.
func (_u *AgentGroupUpdateOne) AddMembers(v ...*GroupMember) *AgentGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the AgentGroupMutation object of the builder.
func (_u *AgentGroupUpdateOne) Mutation() *AgentGroupMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the GroupMember entity.
func (_u *AgentGroupUpdateOne) ClearMembers() *AgentGroupUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to GroupMember entities by IDs.
func (_u *AgentGroupUpdateOne) RemoveMemberIDs(ids ...string) *AgentGroupUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to GroupMember entities.
func (_u *AgentGroupUpdateOne) RemoveMembers(v ...*GroupMember) *AgentGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Where appends a list predicates to the AgentGroupUpdate builder.
func (_u *AgentGroupUpdateOne) Where(ps ...predicate.AgentGroup) *AgentGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentGroupUpdateOne) Select(field string, fields ...string) *AgentGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentGroup entity.
func (_u *AgentGroupUpdateOne) Save(ctx context.Context) (*AgentGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentGroupUpdateOne) SaveX(ctx context.Context) *AgentGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Strategy(); ok {
		if err := agentgroup.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "AgentGroup.strategy": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentGroup.tenant"`)
	}
	return nil
}

func (_u *AgentGroupUpdateOne) sqlSave(ctx context.Context) (_node *AgentGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentgroup.Table, agentgroup.Columns, sqlgraph.NewFieldSpec(agentgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentgroup.FieldID)
		for _, f := range fields {
			if !agentgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentgroup.FieldID {
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
		_spec.SetField(agentgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(agentgroup.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StrategySettings(); ok {
		_spec.SetField(agentgroup.FieldStrategySettings, field.TypeJSON, value)
	}
	if _u.mutation.StrategySettingsCleared() {
		_spec.ClearField(agentgroup.FieldStrategySettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(agentgroup.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentgroup.MembersTable,
			Columns: []string{agentgroup.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(groupmember.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentgroup.MembersTable,
			Columns: []string{agentgroup.MembersColumn},
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
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentgroup.MembersTable,
			Columns: []string{agentgroup.MembersColumn},
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
	_node = &AgentGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
