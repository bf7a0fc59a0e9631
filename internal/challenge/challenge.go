// Package challenge defines the immutable practice-content unit shared by
// the session engine, the content providers, and the statistics layer.
package challenge

import "encoding/json"

// Type identifies the kind of challenge. The engine only ever dispatches on
// this discriminator; the payload shape belongs to the renderer.
type Type string

const (
	TypeErrorSpotting  Type = "error_spotting"
	TypeMicroQuiz      Type = "micro_quiz"
	TypeSmartFlashcard Type = "smart_flashcard"
	TypeNativeCheck    Type = "native_check"
	TypeBrainTickler   Type = "brain_tickler"
	TypeStoryBuilder   Type = "story_builder"
	TypeSwipeFix       Type = "swipe_fix"
)

// AllTypes returns every challenge type in display order.
func AllTypes() []Type {
	return []Type{
		TypeErrorSpotting,
		TypeMicroQuiz,
		TypeSmartFlashcard,
		TypeNativeCheck,
		TypeBrainTickler,
		TypeStoryBuilder,
		TypeSwipeFix,
	}
}

// Valid reports whether t is one of the fixed challenge types.
func (t Type) Valid() bool {
	switch t {
	case TypeErrorSpotting, TypeMicroQuiz, TypeSmartFlashcard,
		TypeNativeCheck, TypeBrainTickler, TypeStoryBuilder, TypeSwipeFix:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the challenge type.
func (t Type) DisplayName() string {
	switch t {
	case TypeErrorSpotting:
		return "Error Spotting"
	case TypeMicroQuiz:
		return "Micro Quiz"
	case TypeSmartFlashcard:
		return "Smart Flashcard"
	case TypeNativeCheck:
		return "Native Check"
	case TypeBrainTickler:
		return "Brain Tickler"
	case TypeStoryBuilder:
		return "Story Builder"
	case TypeSwipeFix:
		return "Swipe Fix"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the challenge type.
func (t Type) Icon() string {
	switch t {
	case TypeErrorSpotting:
		return "🔍"
	case TypeMicroQuiz:
		return "❓"
	case TypeSmartFlashcard:
		return "🃏"
	case TypeNativeCheck:
		return "🗣️"
	case TypeBrainTickler:
		return "🧠"
	case TypeStoryBuilder:
		return "📖"
	case TypeSwipeFix:
		return "👆"
	default:
		return "✦"
	}
}

// Source records where a session's challenges came from.
type Source string

const (
	SourceReference    Source = "reference"
	SourceLearningPlan Source = "learning_plan"
)

// Challenge is a single unit of practice content. Instances are fetched from
// a content provider before the session starts and are immutable thereafter.
type Challenge struct {
	// ID uniquely identifies the challenge across sessions and days.
	ID string `json:"id"`

	// Type is the challenge kind discriminator.
	Type Type `json:"type"`

	// Language is the target language code, e.g. "es", "fr", "de".
	Language string `json:"language"`

	// Level is the CEFR level the content targets, e.g. "A1" through "C2".
	Level string `json:"cefr_level"`

	// Payload carries the type-specific content. Opaque to the session
	// engine; only the presentation layer decodes it.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CEFRLevels lists the supported proficiency levels from lowest to highest.
func CEFRLevels() []string {
	return []string{"A1", "A2", "B1", "B2", "C1", "C2"}
}

// ValidLevel reports whether level is a recognized CEFR level.
func ValidLevel(level string) bool {
	for _, l := range CEFRLevels() {
		if l == level {
			return true
		}
	}
	return false
}
