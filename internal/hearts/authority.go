package hearts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
)

// Authority is the remote source of truth for heart pools. Consume is an
// idempotent read-through: it must be callable even when a previous call
// already reported out-of-hearts.
type Authority interface {
	Consume(ctx context.Context, userID string, challengeType challenge.Type) (*Response, error)
}

// HTTPAuthority consumes hearts against a remote backend.
type HTTPAuthority struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAuthority creates an authority for the given base URL.
func NewHTTPAuthority(baseURL string) *HTTPAuthority {
	return &HTTPAuthority{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type consumeRequest struct {
	UserID        string `json:"user_id"`
	ChallengeType string `json:"challenge_type"`
}

func (a *HTTPAuthority) Consume(ctx context.Context, userID string, challengeType challenge.Type) (*Response, error) {
	body, err := json.Marshal(consumeRequest{
		UserID:        userID,
		ChallengeType: string(challengeType),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal consume request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/hearts/consume", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build consume request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consume hearts: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consume hearts: unexpected status %d", httpResp.StatusCode)
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode consume response: %w", err)
	}
	return &resp, nil
}

// StubAuthority is an in-memory authority for tests and offline use.
type StubAuthority struct {
	mu    sync.Mutex
	pools map[challenge.Type]*Pool
	cfg   Config

	// Err, when set, makes every call fail. Simulates an unreachable backend.
	Err error

	// Calls counts Consume invocations.
	Calls int
}

// NewStubAuthority creates a stub with every pool at capacity.
func NewStubAuthority(cfg Config) *StubAuthority {
	return &StubAuthority{
		pools: make(map[challenge.Type]*Pool),
		cfg:   cfg,
	}
}

// SetPool overrides the pool for a challenge type.
func (s *StubAuthority) SetPool(challengeType challenge.Type, pool Pool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[challengeType] = &pool
}

func (s *StubAuthority) Consume(ctx context.Context, userID string, challengeType challenge.Type) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	pool, ok := s.pools[challengeType]
	if !ok {
		pool = &Pool{Remaining: s.cfg.Capacity, Capacity: s.cfg.Capacity}
		s.pools[challengeType] = pool
	}

	if pool.Remaining > 0 {
		pool.Remaining--
	}

	resp := &Response{HeartsRemaining: pool.Remaining}
	if pool.Remaining == 0 {
		next := time.Now().Add(s.cfg.RefillInterval)
		pool.NextRefillAt = &next
		resp.OutOfHearts = true
		resp.RefillInfo = &RefillInfo{
			NextRefillAt: next,
			WaitSeconds:  int(s.cfg.RefillInterval.Seconds()),
		}
	}
	return resp, nil
}
