// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oriolmontal/lingodrill/ent/answerevent"
	"github.com/oriolmontal/lingodrill/ent/heartevent"
	"github.com/oriolmontal/lingodrill/ent/kventry"
	"github.com/oriolmontal/lingodrill/ent/llmrequestevent"
	"github.com/oriolmontal/lingodrill/ent/schema"
	"github.com/oriolmontal/lingodrill/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescChallengeID is the schema descriptor for challenge_id field.
	answereventDescChallengeID := answereventFields[1].Descriptor()
	// answerevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	answerevent.ChallengeIDValidator = answereventDescChallengeID.Validators[0].(func(string) error)
	// answereventDescChallengeType is the schema descriptor for challenge_type field.
	answereventDescChallengeType := answereventFields[2].Descriptor()
	// answerevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	answerevent.ChallengeTypeValidator = answereventDescChallengeType.Validators[0].(func(string) error)
	// answereventDescLanguage is the schema descriptor for language field.
	answereventDescLanguage := answereventFields[3].Descriptor()
	// answerevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	answerevent.LanguageValidator = answereventDescLanguage.Validators[0].(func(string) error)
	// answereventDescLevel is the schema descriptor for level field.
	answereventDescLevel := answereventFields[4].Descriptor()
	// answerevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	answerevent.LevelValidator = answereventDescLevel.Validators[0].(func(string) error)
	// answereventDescCombo is the schema descriptor for combo field.
	answereventDescCombo := answereventFields[6].Descriptor()
	// answerevent.DefaultCombo holds the default value on creation for the combo field.
	answerevent.DefaultCombo = answereventDescCombo.Default.(int)
	// answereventDescXpAwarded is the schema descriptor for xp_awarded field.
	answereventDescXpAwarded := answereventFields[7].Descriptor()
	// answerevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	answerevent.DefaultXpAwarded = answereventDescXpAwarded.Default.(int)
	// answereventDescSpeedBonus is the schema descriptor for speed_bonus field.
	answereventDescSpeedBonus := answereventFields[8].Descriptor()
	// answerevent.DefaultSpeedBonus holds the default value on creation for the speed_bonus field.
	answerevent.DefaultSpeedBonus = answereventDescSpeedBonus.Default.(int)
	// answereventDescStudyMode is the schema descriptor for study_mode field.
	answereventDescStudyMode := answereventFields[10].Descriptor()
	// answerevent.DefaultStudyMode holds the default value on creation for the study_mode field.
	answerevent.DefaultStudyMode = answereventDescStudyMode.Default.(bool)
	hearteventMixin := schema.HeartEvent{}.Mixin()
	hearteventMixinFields0 := hearteventMixin[0].Fields()
	_ = hearteventMixinFields0
	hearteventFields := schema.HeartEvent{}.Fields()
	_ = hearteventFields
	// hearteventDescTimestamp is the schema descriptor for timestamp field.
	hearteventDescTimestamp := hearteventMixinFields0[1].Descriptor()
	// heartevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	heartevent.DefaultTimestamp = hearteventDescTimestamp.Default.(func() time.Time)
	// hearteventDescChallengeType is the schema descriptor for challenge_type field.
	hearteventDescChallengeType := hearteventFields[0].Descriptor()
	// heartevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	heartevent.ChallengeTypeValidator = hearteventDescChallengeType.Validators[0].(func(string) error)
	// hearteventDescAction is the schema descriptor for action field.
	hearteventDescAction := hearteventFields[1].Descriptor()
	// heartevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	heartevent.ActionValidator = hearteventDescAction.Validators[0].(func(string) error)
	// hearteventDescOutOfHearts is the schema descriptor for out_of_hearts field.
	hearteventDescOutOfHearts := hearteventFields[3].Descriptor()
	// heartevent.DefaultOutOfHearts holds the default value on creation for the out_of_hearts field.
	heartevent.DefaultOutOfHearts = hearteventDescOutOfHearts.Default.(bool)
	// hearteventDescAuthoritative is the schema descriptor for authoritative field.
	hearteventDescAuthoritative := hearteventFields[4].Descriptor()
	// heartevent.DefaultAuthoritative holds the default value on creation for the authoritative field.
	heartevent.DefaultAuthoritative = hearteventDescAuthoritative.Default.(bool)
	// hearteventDescSessionID is the schema descriptor for session_id field.
	hearteventDescSessionID := hearteventFields[5].Descriptor()
	// heartevent.DefaultSessionID holds the default value on creation for the session_id field.
	heartevent.DefaultSessionID = hearteventDescSessionID.Default.(string)
	kventryFields := schema.KVEntry{}.Fields()
	_ = kventryFields
	// kventryDescKey is the schema descriptor for key field.
	kventryDescKey := kventryFields[0].Descriptor()
	// kventry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	kventry.KeyValidator = kventryDescKey.Validators[0].(func(string) error)
	// kventryDescUpdatedAt is the schema descriptor for updated_at field.
	kventryDescUpdatedAt := kventryFields[2].Descriptor()
	// kventry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	kventry.DefaultUpdatedAt = kventryDescUpdatedAt.Default.(func() time.Time)
	// kventry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	kventry.UpdateDefaultUpdatedAt = kventryDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescChallengeType is the schema descriptor for challenge_type field.
	sessioneventDescChallengeType := sessioneventFields[2].Descriptor()
	// sessionevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	sessionevent.ChallengeTypeValidator = sessioneventDescChallengeType.Validators[0].(func(string) error)
	// sessioneventDescLanguage is the schema descriptor for language field.
	sessioneventDescLanguage := sessioneventFields[3].Descriptor()
	// sessionevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	sessionevent.LanguageValidator = sessioneventDescLanguage.Validators[0].(func(string) error)
	// sessioneventDescLevel is the schema descriptor for level field.
	sessioneventDescLevel := sessioneventFields[4].Descriptor()
	// sessionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	sessionevent.LevelValidator = sessioneventDescLevel.Validators[0].(func(string) error)
	// sessioneventDescSource is the schema descriptor for source field.
	sessioneventDescSource := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultSource holds the default value on creation for the source field.
	sessionevent.DefaultSource = sessioneventDescSource.Default.(string)
	// sessioneventDescStudyMode is the schema descriptor for study_mode field.
	sessioneventDescStudyMode := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultStudyMode holds the default value on creation for the study_mode field.
	sessionevent.DefaultStudyMode = sessioneventDescStudyMode.Default.(bool)
	// sessioneventDescChallengesTotal is the schema descriptor for challenges_total field.
	sessioneventDescChallengesTotal := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultChallengesTotal holds the default value on creation for the challenges_total field.
	sessionevent.DefaultChallengesTotal = sessioneventDescChallengesTotal.Default.(int)
	// sessioneventDescChallengesCompleted is the schema descriptor for challenges_completed field.
	sessioneventDescChallengesCompleted := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultChallengesCompleted holds the default value on creation for the challenges_completed field.
	sessionevent.DefaultChallengesCompleted = sessioneventDescChallengesCompleted.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescXpTotal is the schema descriptor for xp_total field.
	sessioneventDescXpTotal := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultXpTotal holds the default value on creation for the xp_total field.
	sessionevent.DefaultXpTotal = sessioneventDescXpTotal.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescEndedEarly is the schema descriptor for ended_early field.
	sessioneventDescEndedEarly := sessioneventFields[12].Descriptor()
	// sessionevent.DefaultEndedEarly holds the default value on creation for the ended_early field.
	sessionevent.DefaultEndedEarly = sessioneventDescEndedEarly.Default.(bool)
	// sessioneventDescEndReason is the schema descriptor for end_reason field.
	sessioneventDescEndReason := sessioneventFields[13].Descriptor()
	// sessionevent.DefaultEndReason holds the default value on creation for the end_reason field.
	sessionevent.DefaultEndReason = sessioneventDescEndReason.Default.(string)
}
