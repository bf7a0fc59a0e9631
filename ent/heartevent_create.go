// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oriolmontal/lingodrill/ent/heartevent"
)

// HeartEventCreate is the builder for creating a HeartEvent entity.
type HeartEventCreate struct {
	config
	mutation *HeartEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *HeartEventCreate) SetSequence(v int64) *HeartEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HeartEventCreate) SetTimestamp(v time.Time) *HeartEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HeartEventCreate) SetNillableTimestamp(v *time.Time) *HeartEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetChallengeType sets the "challenge_type" field.
func (_c *HeartEventCreate) SetChallengeType(v string) *HeartEventCreate {
	_c.mutation.SetChallengeType(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *HeartEventCreate) SetAction(v string) *HeartEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetRemaining sets the "remaining" field.
func (_c *HeartEventCreate) SetRemaining(v int) *HeartEventCreate {
	_c.mutation.SetRemaining(v)
	return _c
}

// SetOutOfHearts sets the "out_of_hearts" field.
func (_c *HeartEventCreate) SetOutOfHearts(v bool) *HeartEventCreate {
	_c.mutation.SetOutOfHearts(v)
	return _c
}

// SetNillableOutOfHearts sets the "out_of_hearts" field if the given value is not nil.
func (_c *HeartEventCreate) SetNillableOutOfHearts(v *bool) *HeartEventCreate {
	if v != nil {
		_c.SetOutOfHearts(*v)
	}
	return _c
}

// SetAuthoritative sets the "authoritative" field.
func (_c *HeartEventCreate) SetAuthoritative(v bool) *HeartEventCreate {
	_c.mutation.SetAuthoritative(v)
	return _c
}

// SetNillableAuthoritative sets the "authoritative" field if the given value is not nil.
func (_c *HeartEventCreate) SetNillableAuthoritative(v *bool) *HeartEventCreate {
	if v != nil {
		_c.SetAuthoritative(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *HeartEventCreate) SetSessionID(v string) *HeartEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *HeartEventCreate) SetNillableSessionID(v *string) *HeartEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the HeartEventMutation object of the builder.
func (_c *HeartEventCreate) Mutation() *HeartEventMutation {
	return _c.mutation
}

// Save creates the HeartEvent in the database.
func (_c *HeartEventCreate) Save(ctx context.Context) (*HeartEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HeartEventCreate) SaveX(ctx context.Context) *HeartEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HeartEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := heartevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.OutOfHearts(); !ok {
		v := heartevent.DefaultOutOfHearts
		_c.mutation.SetOutOfHearts(v)
	}
	if _, ok := _c.mutation.Authoritative(); !ok {
		v := heartevent.DefaultAuthoritative
		_c.mutation.SetAuthoritative(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := heartevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HeartEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "HeartEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HeartEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ChallengeType(); !ok {
		return &ValidationError{Name: "challenge_type", err: errors.New(`ent: missing required field "HeartEvent.challenge_type"`)}
	}
	if v, ok := _c.mutation.ChallengeType(); ok {
		if err := heartevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.challenge_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "HeartEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := heartevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "HeartEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Remaining(); !ok {
		return &ValidationError{Name: "remaining", err: errors.New(`ent: missing required field "HeartEvent.remaining"`)}
	}
	if _, ok := _c.mutation.OutOfHearts(); !ok {
		return &ValidationError{Name: "out_of_hearts", err: errors.New(`ent: missing required field "HeartEvent.out_of_hearts"`)}
	}
	if _, ok := _c.mutation.Authoritative(); !ok {
		return &ValidationError{Name: "authoritative", err: errors.New(`ent: missing required field "HeartEvent.authoritative"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "HeartEvent.session_id"`)}
	}
	return nil
}

func (_c *HeartEventCreate) sqlSave(ctx context.Context) (*HeartEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HeartEventCreate) createSpec() (*HeartEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HeartEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(heartevent.Table, sqlgraph.NewFieldSpec(heartevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(heartevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(heartevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ChallengeType(); ok {
		_spec.SetField(heartevent.FieldChallengeType, field.TypeString, value)
		_node.ChallengeType = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(heartevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Remaining(); ok {
		_spec.SetField(heartevent.FieldRemaining, field.TypeInt, value)
		_node.Remaining = value
	}
	if value, ok := _c.mutation.OutOfHearts(); ok {
		_spec.SetField(heartevent.FieldOutOfHearts, field.TypeBool, value)
		_node.OutOfHearts = value
	}
	if value, ok := _c.mutation.Authoritative(); ok {
		_spec.SetField(heartevent.FieldAuthoritative, field.TypeBool, value)
		_node.Authoritative = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(heartevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// HeartEventCreateBulk is the builder for creating many HeartEvent entities in bulk.
type HeartEventCreateBulk struct {
	config
	err      error
	builders []*HeartEventCreate
}

// Save creates the HeartEvent entities in the database.
func (_c *HeartEventCreateBulk) Save(ctx context.Context) ([]*HeartEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HeartEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HeartEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *HeartEventCreateBulk) SaveX(ctx context.Context) []*HeartEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HeartEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HeartEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
