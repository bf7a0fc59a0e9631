package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("challenge_type").
			NotEmpty().
			Comment("Challenge type the session drills"),
		field.String("language").
			NotEmpty().
			Comment("Target language code"),
		field.String("level").
			NotEmpty().
			Comment("CEFR level"),
		field.String("source").
			Default("reference").
			Comment("reference or learning_plan"),
		field.Bool("study_mode").
			Default(false).
			Comment("True for mistake-review sessions"),
		field.Int("challenges_total").
			Default(0).
			Comment("Queue length at start"),
		field.Int("challenges_completed").
			Default(0).
			Comment("Answered challenges (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("xp_total").
			Default(0).
			Comment("Total XP earned (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Bool("ended_early").
			Default(false).
			Comment("True when hearts ran out before the queue finished"),
		field.String("end_reason").
			Default("").
			Comment("completed, quit, or out_of_hearts (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
