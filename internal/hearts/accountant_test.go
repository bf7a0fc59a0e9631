package hearts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/store"
)

func testConfig() Config {
	return Config{
		Capacity:       3,
		RefillPolicy:   RefillPerHeart,
		RefillInterval: 30 * time.Minute,
	}
}

func newTestAccountant(t *testing.T, authority Authority) (*Accountant, *time.Time) {
	t.Helper()
	a := NewAccountant(testConfig(), authority, store.NewMemKV(), nil)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }
	return a, &now
}

func TestConsume_DecrementsLocalPool(t *testing.T) {
	a, _ := newTestAccountant(t, nil)
	ctx := context.Background()

	resp, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.HeartsRemaining != 2 {
		t.Fatalf("expected 2 remaining, got %d", resp.HeartsRemaining)
	}
	if resp.OutOfHearts {
		t.Fatal("should not be out of hearts")
	}
	if resp.RefillInfo != nil {
		t.Fatal("refill info should only accompany out-of-hearts")
	}
}

func TestConsume_DecrementToZeroSetsOutOfHearts(t *testing.T) {
	a, _ := newTestAccountant(t, nil)
	ctx := context.Background()

	var resp *Response
	for i := 0; i < 3; i++ {
		var err error
		resp, err = a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1")
		if err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	// The call that drains the last heart must already report exhaustion.
	if !resp.OutOfHearts {
		t.Fatal("expected out of hearts on the draining call")
	}
	if resp.HeartsRemaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", resp.HeartsRemaining)
	}
	if resp.RefillInfo == nil {
		t.Fatal("out-of-hearts response must carry refill info")
	}
}

func TestConsume_EmptyPoolNeverGoesNegative(t *testing.T) {
	a, _ := newTestAccountant(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1"); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	resp, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.HeartsRemaining != 0 {
		t.Fatalf("remaining went negative: %d", resp.HeartsRemaining)
	}
	if !resp.OutOfHearts {
		t.Fatal("expected out of hearts")
	}
	if resp.RefillInfo == nil || resp.RefillInfo.WaitSeconds <= 0 {
		t.Fatal("expected a positive refill wait")
	}
}

func TestConsume_PoolsIndependentPerType(t *testing.T) {
	a, _ := newTestAccountant(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1"); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	resp, err := a.Consume(ctx, "user-1", challenge.TypeErrorSpotting, "sess-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OutOfHearts {
		t.Fatal("exhausting one type must not drain another")
	}
	if resp.HeartsRemaining != 2 {
		t.Fatalf("expected 2 remaining, got %d", resp.HeartsRemaining)
	}
}

func TestConsume_PerHeartLazyRefill(t *testing.T) {
	a, now := newTestAccountant(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1"); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	// Two intervals elapse: the first heart was scheduled at the first
	// consume, so two hearts come back.
	*now = now.Add(65 * time.Minute)

	pool, err := a.Peek(ctx, challenge.TypeMicroQuiz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Remaining != 2 {
		t.Fatalf("expected 2 hearts after two intervals, got %d", pool.Remaining)
	}
	if pool.NextRefillAt == nil {
		t.Fatal("pool below capacity must keep a refill scheduled")
	}
}

func TestConsume_FullResetRefill(t *testing.T) {
	cfg := testConfig()
	cfg.RefillPolicy = RefillFullReset
	a := NewAccountant(cfg, nil, store.NewMemKV(), nil)
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1"); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	now = now.Add(31 * time.Minute)

	pool, err := a.Peek(ctx, challenge.TypeMicroQuiz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Remaining != 3 {
		t.Fatalf("expected full pool after reset, got %d", pool.Remaining)
	}
	if pool.NextRefillAt != nil {
		t.Fatal("full pool must not keep a refill scheduled")
	}
}

func TestConsume_AuthorityIsGroundTruth(t *testing.T) {
	stub := NewStubAuthority(testConfig())
	stub.SetPool(challenge.TypeMicroQuiz, Pool{Remaining: 1, Capacity: 3})
	a, _ := newTestAccountant(t, stub)
	ctx := context.Background()

	resp, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.OutOfHearts {
		t.Fatal("authority said the pool drained to zero")
	}
	if stub.Calls != 1 {
		t.Fatalf("expected 1 authority call, got %d", stub.Calls)
	}
}

func TestConsume_FallsBackWhenAuthorityUnreachable(t *testing.T) {
	stub := NewStubAuthority(testConfig())
	stub.Err = errors.New("connection refused")
	a, _ := newTestAccountant(t, stub)
	ctx := context.Background()

	resp, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1")
	if err != nil {
		t.Fatalf("fallback must not surface the authority error: %v", err)
	}
	if resp.HeartsRemaining != 2 {
		t.Fatalf("expected local pool decrement, got %d remaining", resp.HeartsRemaining)
	}
}

func TestConsume_ReconcilesOnAuthorityRecovery(t *testing.T) {
	stub := NewStubAuthority(testConfig())
	stub.Err = errors.New("connection refused")
	a, _ := newTestAccountant(t, stub)
	ctx := context.Background()

	// Two local consumes while the authority is down.
	for i := 0; i < 2; i++ {
		if _, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1"); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	// Authority comes back holding a full pool.
	stub.Err = nil
	stub.SetPool(challenge.TypeMicroQuiz, Pool{Remaining: 3, Capacity: 3})

	resp, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.HeartsRemaining != 2 {
		t.Fatalf("expected authoritative count 2, got %d", resp.HeartsRemaining)
	}

	// The authoritative view replaced the stale local cache.
	pool, err := a.Peek(ctx, challenge.TypeMicroQuiz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Remaining != 2 {
		t.Fatalf("expected reconciled pool 2, got %d", pool.Remaining)
	}
}

func TestGrant_ReplenishesUpToCapacity(t *testing.T) {
	a, _ := newTestAccountant(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.Consume(ctx, "user-1", challenge.TypeMicroQuiz, "sess-1"); err != nil {
			t.Fatalf("consume %d: %v", i, err)
		}
	}

	pool, err := a.Grant(ctx, challenge.TypeMicroQuiz, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Remaining != 3 {
		t.Fatalf("grant must cap at capacity, got %d", pool.Remaining)
	}
	if pool.NextRefillAt != nil {
		t.Fatal("full pool must clear the refill schedule")
	}
}

func TestConsume_SurvivesFailingKV(t *testing.T) {
	kv := store.NewMemKV()
	kv.FailWrites = true
	kv.Err = errors.New("disk full")
	a := NewAccountant(testConfig(), nil, kv, nil)
	a.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

	resp, err := a.Consume(context.Background(), "user-1", challenge.TypeMicroQuiz, "sess-1")
	if err != nil {
		t.Fatalf("persistence failure must not break consumption: %v", err)
	}
	if resp.HeartsRemaining != 2 {
		t.Fatalf("expected 2 remaining, got %d", resp.HeartsRemaining)
	}
}
