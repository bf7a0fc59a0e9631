// Code generated by ent, DO NOT EDIT.

package heartevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the heartevent type in the database.
	Label = "heart_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldChallengeType holds the string denoting the challenge_type field in the database.
	FieldChallengeType = "challenge_type"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldRemaining holds the string denoting the remaining field in the database.
	FieldRemaining = "remaining"
	// FieldOutOfHearts holds the string denoting the out_of_hearts field in the database.
	FieldOutOfHearts = "out_of_hearts"
	// FieldAuthoritative holds the string denoting the authoritative field in the database.
	FieldAuthoritative = "authoritative"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the heartevent in the database.
	Table = "heart_events"
)

// Columns holds all SQL columns for heartevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldChallengeType,
	FieldAction,
	FieldRemaining,
	FieldOutOfHearts,
	FieldAuthoritative,
	FieldSessionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	ChallengeTypeValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultOutOfHearts holds the default value on creation for the "out_of_hearts" field.
	DefaultOutOfHearts bool
	// DefaultAuthoritative holds the default value on creation for the "authoritative" field.
	DefaultAuthoritative bool
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
)

// OrderOption defines the ordering options for the HeartEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByChallengeType orders the results by the challenge_type field.
func ByChallengeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeType, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByRemaining orders the results by the remaining field.
func ByRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemaining, opts...).ToFunc()
}

// ByOutOfHearts orders the results by the out_of_hearts field.
func ByOutOfHearts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutOfHearts, opts...).ToFunc()
}

// ByAuthoritative orders the results by the authoritative field.
func ByAuthoritative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthoritative, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
