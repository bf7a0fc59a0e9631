package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered challenge within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("challenge_id").
			NotEmpty().
			Comment("The challenge that was answered"),
		field.String("challenge_type").
			NotEmpty().
			Comment("error_spotting, micro_quiz, ..."),
		field.String("language").
			NotEmpty().
			Comment("Target language code"),
		field.String("level").
			NotEmpty().
			Comment("CEFR level"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("combo").
			Default(0).
			Comment("Consecutive-correct count including this answer"),
		field.Int("xp_awarded").
			Default(0).
			Comment("Combo-scaled base XP"),
		field.Int("speed_bonus").
			Default(0).
			Comment("Flat speed bonus XP"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Bool("study_mode").
			Default(false).
			Comment("True when the answer was given in a study (review) session"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("challenge_id"),
		index.Fields("correct"),
	}
}
