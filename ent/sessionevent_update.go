// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oriolmontal/lingodrill/ent/predicate"
	"github.com/oriolmontal/lingodrill/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *SessionEventUpdate) SetChallengeType(v string) *SessionEventUpdate {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableChallengeType(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SessionEventUpdate) SetLanguage(v string) *SessionEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLanguage(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionEventUpdate) SetLevel(v string) *SessionEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLevel(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SessionEventUpdate) SetSource(v string) *SessionEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSource(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStudyMode sets the "study_mode" field.
func (_u *SessionEventUpdate) SetStudyMode(v bool) *SessionEventUpdate {
	_u.mutation.SetStudyMode(v)
	return _u
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStudyMode(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetStudyMode(*v)
	}
	return _u
}

// SetChallengesTotal sets the "challenges_total" field.
func (_u *SessionEventUpdate) SetChallengesTotal(v int) *SessionEventUpdate {
	_u.mutation.ResetChallengesTotal()
	_u.mutation.SetChallengesTotal(v)
	return _u
}

// SetNillableChallengesTotal sets the "challenges_total" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableChallengesTotal(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetChallengesTotal(*v)
	}
	return _u
}

// AddChallengesTotal adds value to the "challenges_total" field.
func (_u *SessionEventUpdate) AddChallengesTotal(v int) *SessionEventUpdate {
	_u.mutation.AddChallengesTotal(v)
	return _u
}

// SetChallengesCompleted sets the "challenges_completed" field.
func (_u *SessionEventUpdate) SetChallengesCompleted(v int) *SessionEventUpdate {
	_u.mutation.ResetChallengesCompleted()
	_u.mutation.SetChallengesCompleted(v)
	return _u
}

// SetNillableChallengesCompleted sets the "challenges_completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableChallengesCompleted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetChallengesCompleted(*v)
	}
	return _u
}

// AddChallengesCompleted adds value to the "challenges_completed" field.
func (_u *SessionEventUpdate) AddChallengesCompleted(v int) *SessionEventUpdate {
	_u.mutation.AddChallengesCompleted(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdate) SetCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCorrectAnswers(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdate) AddCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *SessionEventUpdate) SetXpTotal(v int) *SessionEventUpdate {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableXpTotal(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *SessionEventUpdate) AddXpTotal(v int) *SessionEventUpdate {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetEndedEarly sets the "ended_early" field.
func (_u *SessionEventUpdate) SetEndedEarly(v bool) *SessionEventUpdate {
	_u.mutation.SetEndedEarly(v)
	return _u
}

// SetNillableEndedEarly sets the "ended_early" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableEndedEarly(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetEndedEarly(*v)
	}
	return _u
}

// SetEndReason sets the "end_reason" field.
func (_u *SessionEventUpdate) SetEndReason(v string) *SessionEventUpdate {
	_u.mutation.SetEndReason(v)
	return _u
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableEndReason(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetEndReason(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := sessionevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := sessionevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := sessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(sessionevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(sessionevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(sessionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyMode(); ok {
		_spec.SetField(sessionevent.FieldStudyMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChallengesTotal(); ok {
		_spec.SetField(sessionevent.FieldChallengesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChallengesTotal(); ok {
		_spec.AddField(sessionevent.FieldChallengesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChallengesCompleted(); ok {
		_spec.SetField(sessionevent.FieldChallengesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChallengesCompleted(); ok {
		_spec.AddField(sessionevent.FieldChallengesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(sessionevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(sessionevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndedEarly(); ok {
		_spec.SetField(sessionevent.FieldEndedEarly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EndReason(); ok {
		_spec.SetField(sessionevent.FieldEndReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *SessionEventUpdateOne) SetChallengeType(v string) *SessionEventUpdateOne {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableChallengeType(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SessionEventUpdateOne) SetLanguage(v string) *SessionEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLanguage(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionEventUpdateOne) SetLevel(v string) *SessionEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLevel(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SessionEventUpdateOne) SetSource(v string) *SessionEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSource(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStudyMode sets the "study_mode" field.
func (_u *SessionEventUpdateOne) SetStudyMode(v bool) *SessionEventUpdateOne {
	_u.mutation.SetStudyMode(v)
	return _u
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStudyMode(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStudyMode(*v)
	}
	return _u
}

// SetChallengesTotal sets the "challenges_total" field.
func (_u *SessionEventUpdateOne) SetChallengesTotal(v int) *SessionEventUpdateOne {
	_u.mutation.ResetChallengesTotal()
	_u.mutation.SetChallengesTotal(v)
	return _u
}

// SetNillableChallengesTotal sets the "challenges_total" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableChallengesTotal(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetChallengesTotal(*v)
	}
	return _u
}

// AddChallengesTotal adds value to the "challenges_total" field.
func (_u *SessionEventUpdateOne) AddChallengesTotal(v int) *SessionEventUpdateOne {
	_u.mutation.AddChallengesTotal(v)
	return _u
}

// SetChallengesCompleted sets the "challenges_completed" field.
func (_u *SessionEventUpdateOne) SetChallengesCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetChallengesCompleted()
	_u.mutation.SetChallengesCompleted(v)
	return _u
}

// SetNillableChallengesCompleted sets the "challenges_completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableChallengesCompleted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetChallengesCompleted(*v)
	}
	return _u
}

// AddChallengesCompleted adds value to the "challenges_completed" field.
func (_u *SessionEventUpdateOne) AddChallengesCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.AddChallengesCompleted(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdateOne) SetCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCorrectAnswers(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdateOne) AddCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetXpTotal sets the "xp_total" field.
func (_u *SessionEventUpdateOne) SetXpTotal(v int) *SessionEventUpdateOne {
	_u.mutation.ResetXpTotal()
	_u.mutation.SetXpTotal(v)
	return _u
}

// SetNillableXpTotal sets the "xp_total" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableXpTotal(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetXpTotal(*v)
	}
	return _u
}

// AddXpTotal adds value to the "xp_total" field.
func (_u *SessionEventUpdateOne) AddXpTotal(v int) *SessionEventUpdateOne {
	_u.mutation.AddXpTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetEndedEarly sets the "ended_early" field.
func (_u *SessionEventUpdateOne) SetEndedEarly(v bool) *SessionEventUpdateOne {
	_u.mutation.SetEndedEarly(v)
	return _u
}

// SetNillableEndedEarly sets the "ended_early" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableEndedEarly(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetEndedEarly(*v)
	}
	return _u
}

// SetEndReason sets the "end_reason" field.
func (_u *SessionEventUpdateOne) SetEndReason(v string) *SessionEventUpdateOne {
	_u.mutation.SetEndReason(v)
	return _u
}

// SetNillableEndReason sets the "end_reason" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableEndReason(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetEndReason(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := sessionevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := sessionevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := sessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(sessionevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(sessionevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(sessionevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudyMode(); ok {
		_spec.SetField(sessionevent.FieldStudyMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChallengesTotal(); ok {
		_spec.SetField(sessionevent.FieldChallengesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChallengesTotal(); ok {
		_spec.AddField(sessionevent.FieldChallengesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChallengesCompleted(); ok {
		_spec.SetField(sessionevent.FieldChallengesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChallengesCompleted(); ok {
		_spec.AddField(sessionevent.FieldChallengesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpTotal(); ok {
		_spec.SetField(sessionevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpTotal(); ok {
		_spec.AddField(sessionevent.FieldXpTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndedEarly(); ok {
		_spec.SetField(sessionevent.FieldEndedEarly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EndReason(); ok {
		_spec.SetField(sessionevent.FieldEndReason, field.TypeString, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
