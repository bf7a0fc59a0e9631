// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oriolmontal/lingodrill/ent/heartevent"
	"github.com/oriolmontal/lingodrill/ent/predicate"
)

// HeartEventUpdate is the builder for updating HeartEvent entities.
type HeartEventUpdate struct {
	config
	hooks    []Hook
	mutation *HeartEventMutation
}

// Where appends a list predicates to the HeartEventUpdate builder.
func (_u *HeartEventUpdate) Where(ps ...predicate.HeartEvent) *HeartEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *HeartEventUpdate) SetChallengeType(v string) *HeartEventUpdate {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableChallengeType(v *string) *HeartEventUpdate {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *HeartEventUpdate) SetAction(v string) *HeartEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableAction(v *string) *HeartEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRemaining sets the "remaining" field.
func (_u *HeartEventUpdate) SetRemaining(v int) *HeartEventUpdate {
	_u.mutation.ResetRemaining()
	_u.mutation.SetRemaining(v)
	return _u
}

// SetNillableRemaining sets the "remaining" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableRemaining(v *int) *HeartEventUpdate {
	if v != nil {
		_u.SetRemaining(*v)
	}
	return _u
}

// AddRemaining adds value to the "remaining" field.
func (_u *HeartEventUpdate) AddRemaining(v int) *HeartEventUpdate {
	_u.mutation.AddRemaining(v)
	return _u
}

// SetOutOfHearts sets the "out_of_hearts" field.
func (_u *HeartEventUpdate) SetOutOfHearts(v bool) *HeartEventUpdate {
	_u.mutation.SetOutOfHearts(v)
	return _u
}

// SetNillableOutOfHearts sets the "out_of_hearts" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableOutOfHearts(v *bool) *HeartEventUpdate {
	if v != nil {
		_u.SetOutOfHearts(*v)
	}
	return _u
}

// SetAuthoritative sets the "authoritative" field.
func (_u *HeartEventUpdate) SetAuthoritative(v bool) *HeartEventUpdate {
	_u.mutation.SetAuthoritative(v)
	return _u
}

// SetNillableAuthoritative sets the "authoritative" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableAuthoritative(v *bool) *HeartEventUpdate {
	if v != nil {
		_u.SetAuthoritative(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HeartEventUpdate) SetSessionID(v string) *HeartEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HeartEventUpdate) SetNillableSessionID(v *string) *HeartEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the HeartEventMutation object of the builder.
func (_u *HeartEventUpdate) Mutation() *HeartEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HeartEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HeartEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartEventUpdate) check() error {
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := heartevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := heartevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *HeartEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartevent.Table, heartevent.Columns, sqlgraph.NewFieldSpec(heartevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(heartevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(heartevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remaining(); ok {
		_spec.SetField(heartevent.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemaining(); ok {
		_spec.AddField(heartevent.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutOfHearts(); ok {
		_spec.SetField(heartevent.FieldOutOfHearts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Authoritative(); ok {
		_spec.SetField(heartevent.FieldAuthoritative, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(heartevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HeartEventUpdateOne is the builder for updating a single HeartEvent entity.
type HeartEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HeartEventMutation
}

// SetChallengeType sets the "challenge_type" field.
func (_u *HeartEventUpdateOne) SetChallengeType(v string) *HeartEventUpdateOne {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableChallengeType(v *string) *HeartEventUpdateOne {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *HeartEventUpdateOne) SetAction(v string) *HeartEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableAction(v *string) *HeartEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRemaining sets the "remaining" field.
func (_u *HeartEventUpdateOne) SetRemaining(v int) *HeartEventUpdateOne {
	_u.mutation.ResetRemaining()
	_u.mutation.SetRemaining(v)
	return _u
}

// SetNillableRemaining sets the "remaining" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableRemaining(v *int) *HeartEventUpdateOne {
	if v != nil {
		_u.SetRemaining(*v)
	}
	return _u
}

// AddRemaining adds value to the "remaining" field.
func (_u *HeartEventUpdateOne) AddRemaining(v int) *HeartEventUpdateOne {
	_u.mutation.AddRemaining(v)
	return _u
}

// SetOutOfHearts sets the "out_of_hearts" field.
func (_u *HeartEventUpdateOne) SetOutOfHearts(v bool) *HeartEventUpdateOne {
	_u.mutation.SetOutOfHearts(v)
	return _u
}

// SetNillableOutOfHearts sets the "out_of_hearts" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableOutOfHearts(v *bool) *HeartEventUpdateOne {
	if v != nil {
		_u.SetOutOfHearts(*v)
	}
	return _u
}

// SetAuthoritative sets the "authoritative" field.
func (_u *HeartEventUpdateOne) SetAuthoritative(v bool) *HeartEventUpdateOne {
	_u.mutation.SetAuthoritative(v)
	return _u
}

// SetNillableAuthoritative sets the "authoritative" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableAuthoritative(v *bool) *HeartEventUpdateOne {
	if v != nil {
		_u.SetAuthoritative(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HeartEventUpdateOne) SetSessionID(v string) *HeartEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HeartEventUpdateOne) SetNillableSessionID(v *string) *HeartEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the HeartEventMutation object of the builder.
func (_u *HeartEventUpdateOne) Mutation() *HeartEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HeartEventUpdate builder.
func (_u *HeartEventUpdateOne) Where(ps ...predicate.HeartEvent) *HeartEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HeartEventUpdateOne) Select(field string, fields ...string) *HeartEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HeartEvent entity.
func (_u *HeartEventUpdateOne) Save(ctx context.Context) (*HeartEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HeartEventUpdateOne) SaveX(ctx context.Context) *HeartEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HeartEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HeartEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HeartEventUpdateOne) check() error {
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := heartevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := heartevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *HeartEventUpdateOne) sqlSave(ctx context.Context) (_node *HeartEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(heartevent.Table, heartevent.Columns, sqlgraph.NewFieldSpec(heartevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HeartEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, heartevent.FieldID)
		for _, f := range fields {
			if !heartevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != heartevent.FieldID {
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
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(heartevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(heartevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remaining(); ok {
		_spec.SetField(heartevent.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemaining(); ok {
		_spec.AddField(heartevent.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutOfHearts(); ok {
		_spec.SetField(heartevent.FieldOutOfHearts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Authoritative(); ok {
		_spec.SetField(heartevent.FieldAuthoritative, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(heartevent.FieldSessionID, field.TypeString, value)
	}
	_node = &HeartEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{heartevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
