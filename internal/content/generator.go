package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/llm"
)

// Config controls the Generator.
type Config struct {
	// Validators run in order on every generated batch; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			CountValidator{},
			StructuralValidator{},
			DedupValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Generator produces challenges through the LLM provider with
// schema-constrained output.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Challenges []Payload `json:"challenges"`
}

func (g *Generator) Fetch(ctx context.Context, params FetchParams) ([]challenge.Challenge, error) {
	if params.Count <= 0 {
		return nil, &ErrContentUnavailable{Params: params, Err: fmt.Errorf("invalid count %d", params.Count)}
	}
	if !params.Type.Valid() {
		return nil, &ErrContentUnavailable{Params: params, Err: fmt.Errorf("unknown challenge type %q", params.Type)}
	}

	ctx = llm.WithPurpose(ctx, "challenge-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(params)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrContentUnavailable{Params: params, Err: err}
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ErrContentUnavailable{Params: params, Err: fmt.Errorf("parse response: %w", err)}
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(raw.Challenges, params); verr != nil {
			return nil, &ErrContentUnavailable{Params: params, Err: verr}
		}
	}

	out := make([]challenge.Challenge, 0, len(raw.Challenges))
	for _, p := range raw.Challenges {
		payload, err := encodePayload(p)
		if err != nil {
			return nil, &ErrContentUnavailable{Params: params, Err: err}
		}
		out = append(out, challenge.Challenge{
			ID:       uuid.NewString(),
			Type:     params.Type,
			Language: params.Language,
			Level:    params.Level,
			Payload:  payload,
		})
	}
	return out, nil
}
