// Code generated by ent, DO NOT EDIT.

package heartevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/oriolmontal/lingodrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ChallengeType applies equality check predicate on the "challenge_type" field. It's identical to ChallengeTypeEQ.
func ChallengeType(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldChallengeType, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldAction, v))
}

// Remaining applies equality check predicate on the "remaining" field. It's identical to RemainingEQ.
func Remaining(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldRemaining, v))
}

// OutOfHearts applies equality check predicate on the "out_of_hearts" field. It's identical to OutOfHeartsEQ.
func OutOfHearts(v bool) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldOutOfHearts, v))
}

// Authoritative applies equality check predicate on the "authoritative" field. It's identical to AuthoritativeEQ.
func Authoritative(v bool) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldAuthoritative, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ChallengeTypeEQ applies the EQ predicate on the "challenge_type" field.
func ChallengeTypeEQ(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldChallengeType, v))
}

// ChallengeTypeNEQ applies the NEQ predicate on the "challenge_type" field.
func ChallengeTypeNEQ(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldChallengeType, v))
}

// ChallengeTypeIn applies the In predicate on the "challenge_type" field.
func ChallengeTypeIn(vs ...string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldChallengeType, vs...))
}

// ChallengeTypeNotIn applies the NotIn predicate on the "challenge_type" field.
func ChallengeTypeNotIn(vs ...string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldChallengeType, vs...))
}

// ChallengeTypeGT applies the GT predicate on the "challenge_type" field.
func ChallengeTypeGT(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldChallengeType, v))
}

// ChallengeTypeGTE applies the GTE predicate on the "challenge_type" field.
func ChallengeTypeGTE(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldChallengeType, v))
}

// ChallengeTypeLT applies the LT predicate on the "challenge_type" field.
func ChallengeTypeLT(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldChallengeType, v))
}

// ChallengeTypeLTE applies the LTE predicate on the "challenge_type" field.
func ChallengeTypeLTE(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldChallengeType, v))
}

// ChallengeTypeContains applies the Contains predicate on the "challenge_type" field.
func ChallengeTypeContains(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldContains(FieldChallengeType, v))
}

// ChallengeTypeHasPrefix applies the HasPrefix predicate on the "challenge_type" field.
func ChallengeTypeHasPrefix(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldHasPrefix(FieldChallengeType, v))
}

// ChallengeTypeHasSuffix applies the HasSuffix predicate on the "challenge_type" field.
func ChallengeTypeHasSuffix(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldHasSuffix(FieldChallengeType, v))
}

// ChallengeTypeEqualFold applies the EqualFold predicate on the "challenge_type" field.
func ChallengeTypeEqualFold(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEqualFold(FieldChallengeType, v))
}

// ChallengeTypeContainsFold applies the ContainsFold predicate on the "challenge_type" field.
func ChallengeTypeContainsFold(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldContainsFold(FieldChallengeType, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldContainsFold(FieldAction, v))
}

// RemainingEQ applies the EQ predicate on the "remaining" field.
func RemainingEQ(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldRemaining, v))
}

// RemainingNEQ applies the NEQ predicate on the "remaining" field.
func RemainingNEQ(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldRemaining, v))
}

// RemainingIn applies the In predicate on the "remaining" field.
func RemainingIn(vs ...int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldRemaining, vs...))
}

// RemainingNotIn applies the NotIn predicate on the "remaining" field.
func RemainingNotIn(vs ...int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldRemaining, vs...))
}

// RemainingGT applies the GT predicate on the "remaining" field.
func RemainingGT(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldRemaining, v))
}

// RemainingGTE applies the GTE predicate on the "remaining" field.
func RemainingGTE(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldRemaining, v))
}

// RemainingLT applies the LT predicate on the "remaining" field.
func RemainingLT(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldRemaining, v))
}

// RemainingLTE applies the LTE predicate on the "remaining" field.
func RemainingLTE(v int) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldRemaining, v))
}

// OutOfHeartsEQ applies the EQ predicate on the "out_of_hearts" field.
func OutOfHeartsEQ(v bool) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldOutOfHearts, v))
}

// OutOfHeartsNEQ applies the NEQ predicate on the "out_of_hearts" field.
func OutOfHeartsNEQ(v bool) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldOutOfHearts, v))
}

// AuthoritativeEQ applies the EQ predicate on the "authoritative" field.
func AuthoritativeEQ(v bool) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldAuthoritative, v))
}

// AuthoritativeNEQ applies the NEQ predicate on the "authoritative" field.
func AuthoritativeNEQ(v bool) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldAuthoritative, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.HeartEvent {
	return predicate.HeartEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HeartEvent) predicate.HeartEvent {
	return predicate.HeartEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HeartEvent) predicate.HeartEvent {
	return predicate.HeartEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HeartEvent) predicate.HeartEvent {
	return predicate.HeartEvent(sql.NotPredicates(p))
}
