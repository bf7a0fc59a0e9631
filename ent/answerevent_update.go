// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/oriolmontal/lingodrill/ent/answerevent"
	"github.com/oriolmontal/lingodrill/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *AnswerEventUpdate) SetChallengeID(v string) *AnswerEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableChallengeID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *AnswerEventUpdate) SetChallengeType(v string) *AnswerEventUpdate {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableChallengeType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AnswerEventUpdate) SetLanguage(v string) *AnswerEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLanguage(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AnswerEventUpdate) SetLevel(v string) *AnswerEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLevel(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCombo sets the "combo" field.
func (_u *AnswerEventUpdate) SetCombo(v int) *AnswerEventUpdate {
	_u.mutation.ResetCombo()
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCombo(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// AddCombo adds value to the "combo" field.
func (_u *AnswerEventUpdate) AddCombo(v int) *AnswerEventUpdate {
	_u.mutation.AddCombo(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *AnswerEventUpdate) SetXpAwarded(v int) *AnswerEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableXpAwarded(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *AnswerEventUpdate) AddXpAwarded(v int) *AnswerEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetSpeedBonus sets the "speed_bonus" field.
func (_u *AnswerEventUpdate) SetSpeedBonus(v int) *AnswerEventUpdate {
	_u.mutation.ResetSpeedBonus()
	_u.mutation.SetSpeedBonus(v)
	return _u
}

// SetNillableSpeedBonus sets the "speed_bonus" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSpeedBonus(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSpeedBonus(*v)
	}
	return _u
}

// AddSpeedBonus adds value to the "speed_bonus" field.
func (_u *AnswerEventUpdate) AddSpeedBonus(v int) *AnswerEventUpdate {
	_u.mutation.AddSpeedBonus(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStudyMode sets the "study_mode" field.
func (_u *AnswerEventUpdate) SetStudyMode(v bool) *AnswerEventUpdate {
	_u.mutation.SetStudyMode(v)
	return _u
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStudyMode(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetStudyMode(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := answerevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := answerevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := answerevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := answerevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(answerevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(answerevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(answerevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(answerevent.FieldCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCombo(); ok {
		_spec.AddField(answerevent.FieldCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(answerevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(answerevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeedBonus(); ok {
		_spec.SetField(answerevent.FieldSpeedBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeedBonus(); ok {
		_spec.AddField(answerevent.FieldSpeedBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyMode(); ok {
		_spec.SetField(answerevent.FieldStudyMode, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *AnswerEventUpdateOne) SetChallengeID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableChallengeID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *AnswerEventUpdateOne) SetChallengeType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableChallengeType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AnswerEventUpdateOne) SetLanguage(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLanguage(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AnswerEventUpdateOne) SetLevel(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLevel(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCombo sets the "combo" field.
func (_u *AnswerEventUpdateOne) SetCombo(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetCombo()
	_u.mutation.SetCombo(v)
	return _u
}

// SetNillableCombo sets the "combo" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCombo(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCombo(*v)
	}
	return _u
}

// AddCombo adds value to the "combo" field.
func (_u *AnswerEventUpdateOne) AddCombo(v int) *AnswerEventUpdateOne {
	_u.mutation.AddCombo(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *AnswerEventUpdateOne) SetXpAwarded(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableXpAwarded(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *AnswerEventUpdateOne) AddXpAwarded(v int) *AnswerEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetSpeedBonus sets the "speed_bonus" field.
func (_u *AnswerEventUpdateOne) SetSpeedBonus(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSpeedBonus()
	_u.mutation.SetSpeedBonus(v)
	return _u
}

// SetNillableSpeedBonus sets the "speed_bonus" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSpeedBonus(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSpeedBonus(*v)
	}
	return _u
}

// AddSpeedBonus adds value to the "speed_bonus" field.
func (_u *AnswerEventUpdateOne) AddSpeedBonus(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSpeedBonus(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStudyMode sets the "study_mode" field.
func (_u *AnswerEventUpdateOne) SetStudyMode(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetStudyMode(v)
	return _u
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStudyMode(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStudyMode(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := answerevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := answerevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := answerevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := answerevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(answerevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(answerevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(answerevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Combo(); ok {
		_spec.SetField(answerevent.FieldCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCombo(); ok {
		_spec.AddField(answerevent.FieldCombo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(answerevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(answerevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeedBonus(); ok {
		_spec.SetField(answerevent.FieldSpeedBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeedBonus(); ok {
		_spec.AddField(answerevent.FieldSpeedBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyMode(); ok {
		_spec.SetField(answerevent.FieldStudyMode, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
