package content

import (
	"fmt"
	"strings"
)

// Validator checks a generated batch before it reaches a session.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the batch passes.
	Validate(batch []Payload, params FetchParams) *ValidationError
}

// ValidationError describes why a batch failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// CountValidator rejects batches of the wrong size.
type CountValidator struct{}

func (CountValidator) Name() string { return "count" }

func (CountValidator) Validate(batch []Payload, params FetchParams) *ValidationError {
	if len(batch) != params.Count {
		return &ValidationError{
			Validator: "count",
			Message:   fmt.Sprintf("expected %d challenges, got %d", params.Count, len(batch)),
			Retryable: true,
		}
	}
	return nil
}

// StructuralValidator rejects empty prompts, empty answers, and option
// lists that do not contain the answer.
type StructuralValidator struct{}

func (StructuralValidator) Name() string { return "structural" }

func (StructuralValidator) Validate(batch []Payload, params FetchParams) *ValidationError {
	for i, p := range batch {
		if strings.TrimSpace(p.Prompt) == "" {
			return &ValidationError{
				Validator: "structural",
				Message:   fmt.Sprintf("challenge %d has an empty prompt", i+1),
				Retryable: true,
			}
		}
		if strings.TrimSpace(p.Answer) == "" {
			return &ValidationError{
				Validator: "structural",
				Message:   fmt.Sprintf("challenge %d has an empty answer", i+1),
				Retryable: true,
			}
		}
		if len(p.Options) > 0 {
			found := false
			for _, opt := range p.Options {
				if opt == p.Answer {
					found = true
					break
				}
			}
			if !found {
				return &ValidationError{
					Validator: "structural",
					Message:   fmt.Sprintf("challenge %d: answer is not among the options", i+1),
					Retryable: true,
				}
			}
		}
	}
	return nil
}

// DedupValidator rejects batches with repeated prompts.
type DedupValidator struct{}

func (DedupValidator) Name() string { return "dedup" }

func (DedupValidator) Validate(batch []Payload, params FetchParams) *ValidationError {
	seen := make(map[string]bool, len(batch))
	for i, p := range batch {
		key := strings.ToLower(strings.TrimSpace(p.Prompt))
		if seen[key] {
			return &ValidationError{
				Validator: "dedup",
				Message:   fmt.Sprintf("challenge %d repeats an earlier prompt", i+1),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}
