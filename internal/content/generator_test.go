package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/llm"
)

func testParams(count int) FetchParams {
	return FetchParams{
		Language: "es",
		Level:    "A2",
		Type:     challenge.TypeMicroQuiz,
		Count:    count,
		Source:   challenge.SourceReference,
	}
}

func batchJSON(t *testing.T, payloads []Payload) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"challenges": payloads})
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return raw
}

func goodBatch(n int) []Payload {
	out := make([]Payload, n)
	for i := range out {
		out[i] = Payload{
			Prompt:      "Prompt " + string(rune('A'+i)),
			Options:     []string{"right", "wrong", "worse", "worst"},
			Answer:      "right",
			Explanation: "Because.",
		}
	}
	return out
}

func TestGenerator_Fetch(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(batchJSON(t, goodBatch(3)))
	g := NewGenerator(mock, DefaultConfig())

	challenges, err := g.Fetch(context.Background(), testParams(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(challenges) != 3 {
		t.Fatalf("expected 3 challenges, got %d", len(challenges))
	}
	for i, ch := range challenges {
		if ch.ID == "" {
			t.Fatalf("challenge %d has no ID", i)
		}
		if ch.Type != challenge.TypeMicroQuiz {
			t.Fatalf("challenge %d has type %q", i, ch.Type)
		}
		if ch.Language != "es" || ch.Level != "A2" {
			t.Fatalf("challenge %d carries wrong params: %+v", i, ch)
		}
		p, err := DecodePayload(ch)
		if err != nil {
			t.Fatalf("challenge %d payload: %v", i, err)
		}
		if p.Answer != "right" {
			t.Fatalf("challenge %d lost its answer: %+v", i, p)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls()[0]
	if req.Schema != BatchSchema {
		t.Fatal("request must carry the batch schema")
	}
}

func TestGenerator_WrongCountRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(batchJSON(t, goodBatch(2)))
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Fetch(context.Background(), testParams(3))
	var unavailable *ErrContentUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrContentUnavailable, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Validator != "count" {
		t.Fatalf("expected count validation failure, got %v", err)
	}
}

func TestGenerator_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddError(&llm.ErrProviderUnavailable{})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Fetch(context.Background(), testParams(2))
	var unavailable *ErrContentUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrContentUnavailable, got %v", err)
	}
	var provErr *llm.ErrProviderUnavailable
	if !errors.As(err, &provErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestGenerator_InvalidParams(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider(), DefaultConfig())

	if _, err := g.Fetch(context.Background(), testParams(0)); err == nil {
		t.Fatal("zero count must be rejected")
	}

	params := testParams(2)
	params.Type = "karaoke"
	if _, err := g.Fetch(context.Background(), params); err == nil {
		t.Fatal("unknown type must be rejected")
	}
}

func TestValidators(t *testing.T) {
	params := testParams(2)

	tests := []struct {
		name      string
		validator Validator
		batch     []Payload
		wantErr   bool
	}{
		{"count ok", CountValidator{}, goodBatch(2), false},
		{"count short", CountValidator{}, goodBatch(1), true},
		{"structural ok", StructuralValidator{}, goodBatch(2), false},
		{
			"empty prompt",
			StructuralValidator{},
			[]Payload{{Prompt: "  ", Answer: "x"}, goodBatch(1)[0]},
			true,
		},
		{
			"empty answer",
			StructuralValidator{},
			[]Payload{{Prompt: "p", Answer: ""}, goodBatch(1)[0]},
			true,
		},
		{
			"answer not in options",
			StructuralValidator{},
			[]Payload{{Prompt: "p", Options: []string{"a", "b"}, Answer: "c"}},
			true,
		},
		{"dedup ok", DedupValidator{}, goodBatch(2), false},
		{
			"duplicate prompt",
			DedupValidator{},
			[]Payload{{Prompt: "Same", Answer: "x"}, {Prompt: "same ", Answer: "y"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator.Validate(tt.batch, params)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation failure")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected failure: %v", err)
			}
		})
	}
}

func TestStatic_Fetch(t *testing.T) {
	s := NewStatic()

	challenges, err := s.Fetch(context.Background(), testParams(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(challenges) != 5 {
		t.Fatalf("expected 5 challenges, got %d", len(challenges))
	}
	for i, ch := range challenges {
		if _, err := DecodePayload(ch); err != nil {
			t.Fatalf("challenge %d payload: %v", i, err)
		}
	}
	// The bank cycles, but IDs stay stable per entry.
	if challenges[0].ID != challenges[3].ID {
		t.Fatal("cycled entries must reuse stable IDs")
	}
}

func TestStatic_CoversEveryChallengeType(t *testing.T) {
	s := NewStatic()

	for _, typ := range challenge.AllTypes() {
		params := testParams(2)
		params.Type = typ

		challenges, err := s.Fetch(context.Background(), params)
		if err != nil {
			t.Fatalf("type %s must be playable offline: %v", typ, err)
		}
		for i, ch := range challenges {
			p, err := DecodePayload(ch)
			if err != nil {
				t.Fatalf("type %s challenge %d payload: %v", typ, i, err)
			}
			if p.Prompt == "" || p.Answer == "" {
				t.Fatalf("type %s challenge %d missing prompt or answer", typ, i)
			}
		}
	}
}

func TestStatic_UnknownType(t *testing.T) {
	s := NewStatic()

	params := testParams(2)
	params.Type = challenge.Type("made_up")

	_, err := s.Fetch(context.Background(), params)
	var unavailable *ErrContentUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrContentUnavailable, got %v", err)
	}
}
