package content

import (
	"encoding/json"
	"fmt"

	"github.com/oriolmontal/lingodrill/internal/challenge"
)

// Payload is the renderable body of a challenge. The engine never looks
// inside it; only content providers and the play loop do.
type Payload struct {
	// Prompt is the text shown to the learner.
	Prompt string `json:"prompt"`

	// Options are the choices for choice-based challenge types. Empty for
	// free-input types.
	Options []string `json:"options,omitempty"`

	// Answer is the correct option text or expected input.
	Answer string `json:"answer"`

	// Explanation is shown after answering.
	Explanation string `json:"explanation,omitempty"`
}

// DecodePayload extracts the payload from a challenge.
func DecodePayload(ch challenge.Challenge) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(ch.Payload, &p); err != nil {
		return Payload{}, fmt.Errorf("decode payload of %s: %w", ch.ID, err)
	}
	return p, nil
}

func encodePayload(p Payload) (json.RawMessage, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return raw, nil
}
