// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/oriolmontal/lingodrill/ent/heartevent"
)

// HeartEvent is the model entity for the HeartEvent schema.
type HeartEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Pool the event applies to; pools are per challenge type
	ChallengeType string `json:"challenge_type,omitempty"`
	// consume, grant, or refill
	Action string `json:"action,omitempty"`
	// Hearts remaining after the event
	Remaining int `json:"remaining,omitempty"`
	// True when the pool was exhausted by or during this event
	OutOfHearts bool `json:"out_of_hearts,omitempty"`
	// False when the remote authority was unreachable and the local cache decided
	Authoritative bool `json:"authoritative,omitempty"`
	// Session that triggered the event, empty for grants/refills
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HeartEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case heartevent.FieldOutOfHearts, heartevent.FieldAuthoritative:
			values[i] = new(sql.NullBool)
		case heartevent.FieldID, heartevent.FieldSequence, heartevent.FieldRemaining:
			values[i] = new(sql.NullInt64)
		case heartevent.FieldChallengeType, heartevent.FieldAction, heartevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case heartevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HeartEvent fields.
func (_m *HeartEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case heartevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case heartevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case heartevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case heartevent.FieldChallengeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_type", values[i])
			} else if value.Valid {
				_m.ChallengeType = value.String
			}
		case heartevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case heartevent.FieldRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining", values[i])
			} else if value.Valid {
				_m.Remaining = int(value.Int64)
			}
		case heartevent.FieldOutOfHearts:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field out_of_hearts", values[i])
			} else if value.Valid {
				_m.OutOfHearts = value.Bool
			}
		case heartevent.FieldAuthoritative:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field authoritative", values[i])
			} else if value.Valid {
				_m.Authoritative = value.Bool
			}
		case heartevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HeartEvent.
// This includes values selected through modifiers, order, etc.
func (_m *HeartEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HeartEvent.
// Note that you need to call HeartEvent.Unwrap() before calling this method if this HeartEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HeartEvent) Update() *HeartEventUpdateOne {
	return NewHeartEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HeartEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HeartEvent) Unwrap() *HeartEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HeartEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HeartEvent) String() string {
	var builder strings.Builder
	builder.WriteString("HeartEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("challenge_type=")
	builder.WriteString(_m.ChallengeType)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.Remaining))
	builder.WriteString(", ")
	builder.WriteString("out_of_hearts=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutOfHearts))
	builder.WriteString(", ")
	builder.WriteString("authoritative=")
	builder.WriteString(fmt.Sprintf("%v", _m.Authoritative))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// HeartEvents is a parsable slice of HeartEvent.
type HeartEvents []*HeartEvent
