package session

import "fmt"

// InvalidSessionError reports an operation attempted in a state that does
// not permit it, such as answering after finalization or starting with an
// empty queue. It indicates a caller bug and is raised loudly, never
// swallowed.
type InvalidSessionError struct {
	Op     string
	Reason string
}

func (e *InvalidSessionError) Error() string {
	return fmt.Sprintf("invalid session operation %q: %s", e.Op, e.Reason)
}

// StaleAnswerError reports an answer for a challenge that is not the
// current one. It guards against out-of-order completion races: a late
// callback for an already-passed challenge must be rejected, not applied.
type StaleAnswerError struct {
	Expected string
	Got      string
}

func (e *StaleAnswerError) Error() string {
	return fmt.Sprintf("stale answer: current challenge is %q, got %q", e.Expected, e.Got)
}
