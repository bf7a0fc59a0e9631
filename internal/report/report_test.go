package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPReporter_DeliversReport(t *testing.T) {
	received := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode report body: %v", err)
		}
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	rep := NewHTTPReporter(srv.URL)
	rep.ReportAnswer(context.Background(), AnswerReport{
		ChallengeID: "ch-1",
		Correct:     true,
		TimeSpent:   1500 * time.Millisecond,
	})
	rep.Close()

	select {
	case body := <-received:
		if body["challenge_id"] != "ch-1" {
			t.Fatalf("unexpected challenge id: %v", body["challenge_id"])
		}
		if body["correct"] != true {
			t.Fatalf("unexpected correct flag: %v", body["correct"])
		}
		if body["time_spent_ms"] != float64(1500) {
			t.Fatalf("unexpected time spent: %v", body["time_spent_ms"])
		}
	case <-time.After(5 * time.Second):
		t.Fatal("report never arrived")
	}
}

func TestHTTPReporter_FailureNeverPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rep := NewHTTPReporter(srv.URL)
	// Must not panic; the failure is logged and swallowed.
	rep.ReportAnswer(context.Background(), AnswerReport{ChallengeID: "ch-1"})
	rep.Close()
}

func TestHTTPReporter_SurvivesCancelledCaller(t *testing.T) {
	received := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rep := NewHTTPReporter(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	rep.ReportAnswer(ctx, AnswerReport{ChallengeID: "ch-1"})
	cancel() // the caller moves on; delivery continues

	rep.Close()

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("report should outlive the caller's context")
	}
}

func TestNopReporter(t *testing.T) {
	var r Reporter = NopReporter{}
	r.ReportAnswer(context.Background(), AnswerReport{ChallengeID: "ch-1"})
	r.Close()
}
