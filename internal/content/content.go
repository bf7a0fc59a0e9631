// Package content supplies the challenges a session runs on, either
// generated through the LLM provider or served from the built-in bank.
package content

import (
	"context"
	"fmt"

	"github.com/oriolmontal/lingodrill/internal/challenge"
)

// FetchParams describes the content a session needs.
type FetchParams struct {
	Language string
	Level    string
	Type     challenge.Type
	Count    int
	Source   challenge.Source
}

// Provider fetches an ordered list of challenges. A failure surfaces as
// *ErrContentUnavailable, never as an empty session.
type Provider interface {
	Fetch(ctx context.Context, params FetchParams) ([]challenge.Challenge, error)
}

// ErrContentUnavailable indicates the content source could not produce a
// usable challenge list. This is one of the few errors shown to the user
// directly.
type ErrContentUnavailable struct {
	Params FetchParams
	Err    error
}

func (e *ErrContentUnavailable) Error() string {
	return fmt.Sprintf("content unavailable for %s %s/%s: %v",
		e.Params.Type, e.Params.Language, e.Params.Level, e.Err)
}

func (e *ErrContentUnavailable) Unwrap() error { return e.Err }
