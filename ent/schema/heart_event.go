package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HeartEvent records a heart pool mutation: a consume, an external grant,
// or a lazy refill applied on access.
type HeartEvent struct {
	ent.Schema
}

func (HeartEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HeartEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("challenge_type").
			NotEmpty().
			Comment("Pool the event applies to; pools are per challenge type"),
		field.String("action").
			NotEmpty().
			Comment("consume, grant, or refill"),
		field.Int("remaining").
			Comment("Hearts remaining after the event"),
		field.Bool("out_of_hearts").
			Default(false).
			Comment("True when the pool was exhausted by or during this event"),
		field.Bool("authoritative").
			Default(true).
			Comment("False when the remote authority was unreachable and the local cache decided"),
		field.String("session_id").
			Default("").
			Comment("Session that triggered the event, empty for grants/refills"),
	}
}

func (HeartEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("challenge_type"),
		index.Fields("action"),
	}
}
