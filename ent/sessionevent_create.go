// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oriolmontal/lingodrill/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetChallengeType sets the "challenge_type" field.
func (_c *SessionEventCreate) SetChallengeType(v string) *SessionEventCreate {
	_c.mutation.SetChallengeType(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SessionEventCreate) SetLanguage(v string) *SessionEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *SessionEventCreate) SetLevel(v string) *SessionEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SessionEventCreate) SetSource(v string) *SessionEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableSource(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetStudyMode sets the "study_mode" field.
func (_c *SessionEventCreate) SetStudyMode(v bool) *SessionEventCreate {
	_c.mutation.SetStudyMode(v)
	return _c
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableStudyMode(v *bool) *SessionEventCreate {
	if v != nil {
		_c.SetStudyMode(*v)
	}
	return _c
}

// SetChallengesTotal sets the "challenges_total" field.
func (_c *SessionEventCreate) SetChallengesTotal(v int) *SessionEventCreate {
	_c.mutation.SetChallengesTotal(v)
	return _c
}

// SetNillableChallengesTotal sets the "challenges_total" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableChallengesTotal(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetChallengesTotal(*v)
	}
	return _c
}

// SetChallengesCompleted sets the "challenges_completed" field.
func (_c *SessionEventCreate) SetChallengesCompleted(v int) *SessionEventCreate {
	_c.mutation.SetChallengesCompleted(v)
	return _c
}

// SetNillableChallengesCompleted sets the "challenges_completed" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableChallengesCompleted(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetChallengesCompleted(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *SessionEventCreate) SetCorrectAnswers(v int) *SessionEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableCorrectAnswers(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetXpTotal sets the "xp_total" field.
func (_c *SessionEventCreate) SetXpTotal(v int) *SessionEventCreate {
	_c.mutation.SetXpTotal(v)
	return _c
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableXpTotal(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetXpTotal(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetEndedEarly sets the "ended_early" field.
func (_c *SessionEventCreate) SetEndedEarly(v bool) *SessionEventCreate {
	_c.mutation.SetEndedEarly(v)
	return _c
}

// SetNillableEndedEarly sets the "ended_early" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableEndedEarly(v *bool) *SessionEventCreate {
	if v != nil {
		_c.SetEndedEarly(*v)
	}
	return _c
}

// SetEndReason sets the "end_reason" field.
func (_c *SessionEventCreate) SetEndReason(v string) *SessionEventCreate {
	_c.mutation.SetEndReason(v)
	return _c
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableEndReason(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetEndReason(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := sessionevent.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.StudyMode(); !ok {
		v := sessionevent.DefaultStudyMode
		_c.mutation.SetStudyMode(v)
	}
	if _, ok := _c.mutation.ChallengesTotal(); !ok {
		v := sessionevent.DefaultChallengesTotal
		_c.mutation.SetChallengesTotal(v)
	}
	if _, ok := _c.mutation.ChallengesCompleted(); !ok {
		v := sessionevent.DefaultChallengesCompleted
		_c.mutation.SetChallengesCompleted(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := sessionevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.XpTotal(); !ok {
		v := sessionevent.DefaultXpTotal
		_c.mutation.SetXpTotal(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.EndedEarly(); !ok {
		v := sessionevent.DefaultEndedEarly
		_c.mutation.SetEndedEarly(v)
	}
	if _, ok := _c.mutation.EndReason(); !ok {
		v := sessionevent.DefaultEndReason
		_c.mutation.SetEndReason(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeType(); !ok {
		return &ValidationError{Name: "challenge_type", err: errors.New(`ent: missing required field "SessionEvent.challenge_type"`)}
	}
	if v, ok := _c.mutation.ChallengeType(); ok {
		if err := sessionevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.challenge_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "SessionEvent.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := sessionevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SessionEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := sessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SessionEvent.source"`)}
	}
	if _, ok := _c.mutation.StudyMode(); !ok {
		return &ValidationError{Name: "study_mode", err: errors.New(`ent: missing required field "SessionEvent.study_mode"`)}
	}
	if _, ok := _c.mutation.ChallengesTotal(); !ok {
		return &ValidationError{Name: "challenges_total", err: errors.New(`ent: missing required field "SessionEvent.challenges_total"`)}
	}
	if _, ok := _c.mutation.ChallengesCompleted(); !ok {
		return &ValidationError{Name: "challenges_completed", err: errors.New(`ent: missing required field "SessionEvent.challenges_completed"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "SessionEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.XpTotal(); !ok {
		return &ValidationError{Name: "xp_total", err: errors.New(`ent: missing required field "SessionEvent.xp_total"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.EndedEarly(); !ok {
		return &ValidationError{Name: "ended_early", err: errors.New(`ent: missing required field "SessionEvent.ended_early"`)}
	}
	if _, ok := _c.mutation.EndReason(); !ok {
		return &ValidationError{Name: "end_reason", err: errors.New(`ent: missing required field "SessionEvent.end_reason"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ChallengeType(); ok {
		_spec.SetField(sessionevent.FieldChallengeType, field.TypeString, value)
		_node.ChallengeType = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(sessionevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(sessionevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.StudyMode(); ok {
		_spec.SetField(sessionevent.FieldStudyMode, field.TypeBool, value)
		_node.StudyMode = value
	}
	if value, ok := _c.mutation.ChallengesTotal(); ok {
		_spec.SetField(sessionevent.FieldChallengesTotal, field.TypeInt, value)
		_node.ChallengesTotal = value
	}
	if value, ok := _c.mutation.ChallengesCompleted(); ok {
		_spec.SetField(sessionevent.FieldChallengesCompleted, field.TypeInt, value)
		_node.ChallengesCompleted = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.XpTotal(); ok {
		_spec.SetField(sessionevent.FieldXpTotal, field.TypeInt, value)
		_node.XpTotal = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.EndedEarly(); ok {
		_spec.SetField(sessionevent.FieldEndedEarly, field.TypeBool, value)
		_node.EndedEarly = value
	}
	if value, ok := _c.mutation.EndReason(); ok {
		_spec.SetField(sessionevent.FieldEndReason, field.TypeString, value)
		_node.EndReason = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
