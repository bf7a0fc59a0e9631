package content

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a language tutor creating short practice challenges for adult learners.

Rules:
- Generate exactly the requested number of challenges for the given language, CEFR level, and challenge type.
- Keep every prompt short: one sentence or phrase, solvable in under fifteen seconds.
- Match the CEFR level: vocabulary and grammar must not exceed it.
- For choice-based types, provide exactly 4 options where exactly one is correct. Distractors should reflect common learner mistakes, not random words.
- For free-input types, leave the options array empty and put the expected input in answer.
- The answer must be exactly one of the options when options are present.
- Explanations are one or two sentences, in English, naming the rule involved.
- Never repeat a prompt within the batch.`

// typeInstructions describes each challenge type to the model.
var typeInstructions = map[string]string{
	"error_spotting":  "Show a sentence containing exactly one grammatical error. Options are the sentence's words or phrases; the correct option is the erroneous one.",
	"micro_quiz":      "A single multiple-choice question about vocabulary or grammar.",
	"smart_flashcard": "Show a word or phrase in the target language. The learner types the translation; answer holds it. No options.",
	"native_check":    "Show two phrasings of the same idea. The learner picks the one a native speaker would use.",
	"brain_tickler":   "A short riddle or wordplay puzzle in the target language with 4 options.",
	"story_builder":   "Show a two-sentence story fragment with a gap. Options are candidate continuations; exactly one fits grammatically and logically.",
	"swipe_fix":       "Show a sentence. Options are 'correct' and a corrected version; the learner decides whether the sentence was right as written.",
}

// buildUserMessage constructs the generation request from the fetch params.
func buildUserMessage(params FetchParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s\n", params.Language)
	fmt.Fprintf(&b, "CEFR level: %s\n", params.Level)
	fmt.Fprintf(&b, "Challenge type: %s\n", params.Type)
	fmt.Fprintf(&b, "Count: %d\n", params.Count)

	if instr, ok := typeInstructions[string(params.Type)]; ok {
		b.WriteString("\nType instructions: ")
		b.WriteString(instr)
		b.WriteString("\n")
	}

	return b.String()
}
