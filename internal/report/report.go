// Package report delivers answer outcomes to the backend. Reporting is
// fire-and-forget: a failed delivery is logged and never reaches the
// session engine.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// AnswerReport is one answered challenge as sent to the backend.
type AnswerReport struct {
	ChallengeID string
	Correct     bool
	TimeSpent   time.Duration
}

// Reporter delivers answer reports.
type Reporter interface {
	// ReportAnswer queues a report for delivery. It never blocks on the
	// network and never returns an error to the caller.
	ReportAnswer(ctx context.Context, r AnswerReport)

	// Close waits for in-flight deliveries to finish.
	Close()
}

// NopReporter discards every report. Used when no endpoint is configured.
type NopReporter struct{}

func (NopReporter) ReportAnswer(context.Context, AnswerReport) {}
func (NopReporter) Close()                                     {}

// HTTPReporter posts reports to a backend endpoint, one goroutine per
// report with a bounded delivery timeout.
type HTTPReporter struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewHTTPReporter creates a reporter posting to endpoint.
func NewHTTPReporter(endpoint string) *HTTPReporter {
	return &HTTPReporter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default(),
		timeout:  10 * time.Second,
	}
}

func (h *HTTPReporter) ReportAnswer(ctx context.Context, r AnswerReport) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		// Delivery outlives the caller's context but not the timeout.
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
		defer cancel()

		if err := h.send(sendCtx, r); err != nil {
			h.logger.Warn("failed to report answer",
				"challenge_id", r.ChallengeID, "error", err)
		}
	}()
}

// Close waits for in-flight reports. Called once at shutdown.
func (h *HTTPReporter) Close() {
	h.wg.Wait()
}

func (h *HTTPReporter) send(ctx context.Context, r AnswerReport) error {
	payload := struct {
		ChallengeID string `json:"challenge_id"`
		Correct     bool   `json:"correct"`
		TimeSpentMs int64  `json:"time_spent_ms"`
	}{
		ChallengeID: r.ChallengeID,
		Correct:     r.Correct,
		TimeSpentMs: r.TimeSpent.Milliseconds(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("post report: unexpected status %d", resp.StatusCode)
	}
	return nil
}
