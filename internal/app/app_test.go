package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/content"
	"github.com/oriolmontal/lingodrill/internal/scoring"
	"github.com/oriolmontal/lingodrill/internal/session"
	"github.com/oriolmontal/lingodrill/internal/stats"
	"github.com/oriolmontal/lingodrill/internal/store"
)

func testOptions(input string) (Options, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return Options{
		Engine:  session.NewEngine(scoring.DefaultConfig(), "user-1", session.Deps{}),
		Content: content.NewStatic(),
		Params: content.FetchParams{
			Language: "es",
			Level:    "A2",
			Type:     challenge.TypeMicroQuiz,
			Count:    3,
			Source:   challenge.SourceReference,
		},
		In:  strings.NewReader(input),
		Out: out,
	}, out
}

func TestRun_FullSession(t *testing.T) {
	// The first three bank entries all have the correct option first.
	opts, out := testOptions("1\n1\n1\n")
	agg := stats.NewAggregator(stats.DefaultConfig(), store.NewMemKV())
	opts.Engine = session.NewEngine(scoring.DefaultConfig(), "user-1", session.Deps{Stats: agg})

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Session complete!") {
		t.Fatalf("expected completion summary, got:\n%s", got)
	}
	if !strings.Contains(got, "3/3") {
		t.Fatalf("expected 3/3 challenges, got:\n%s", got)
	}

	// The fetched challenge count doubles as the category size.
	cats, err := agg.Categories(context.Background(), "es")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 1 || cats[0].TotalInCategory != 3 {
		t.Fatalf("expected category size 3, got %+v", cats)
	}
}

func TestRun_QuitMidSession(t *testing.T) {
	opts, out := testOptions("1\nq\n")

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Session ended.") {
		t.Fatalf("expected quit summary, got:\n%s", got)
	}
}

func TestRun_WrongAnswerOffersReview(t *testing.T) {
	// One wrong answer, then decline the review offer.
	opts, out := testOptions("2\n1\n1\nn\n")

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Review your mistakes?") {
		t.Fatalf("expected review offer, got:\n%s", got)
	}
}

func TestRun_FetchFailureIsContentError(t *testing.T) {
	opts, _ := testOptions("")
	opts.Params.Type = challenge.Type("made_up")

	err := Run(context.Background(), opts)
	if err == nil {
		t.Fatal("expected an error for an unknown content type")
	}
	unavailable, ok := UnwrapContentError(err)
	if !ok {
		t.Fatalf("expected a content availability error, got %v", err)
	}
	if unavailable.Params.Type != challenge.Type("made_up") {
		t.Fatalf("error should carry the failing params, got %+v", unavailable.Params)
	}
}

func TestCheckAnswer(t *testing.T) {
	choice := content.Payload{
		Prompt:  "pick",
		Options: []string{"a", "b", "c", "d"},
		Answer:  "b",
	}
	free := content.Payload{Prompt: "translate", Answer: "the apple"}

	tests := []struct {
		name    string
		payload content.Payload
		input   string
		want    bool
	}{
		{"option number correct", choice, "2", true},
		{"option number wrong", choice, "1", false},
		{"option text correct", choice, "b", true},
		{"out of range number", choice, "9", false},
		{"free input correct", free, "The Apple", true},
		{"free input padded", free, "  the apple ", true},
		{"free input wrong", free, "the pear", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkAnswer(tt.payload, tt.input); got != tt.want {
				t.Fatalf("checkAnswer(%q) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}
