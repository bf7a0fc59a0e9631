package hearts

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/store"
)

const poolKeyPrefix = "hearts:"

// Accountant meters the per-challenge-type heart pools. It consults the
// remote authority for ground truth and falls back to a locally cached
// pool when the authority is unreachable. The cache is overwritten on the
// next successful authority contact.
type Accountant struct {
	cfg       Config
	authority Authority
	kv        store.KV
	eventRepo store.EventRepo
	logger    *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewAccountant creates an Accountant. authority may be nil for a fully
// local setup; eventRepo may be nil to skip event logging.
func NewAccountant(cfg Config, authority Authority, kv store.KV, eventRepo store.EventRepo) *Accountant {
	return &Accountant{
		cfg:       cfg,
		authority: authority,
		kv:        kv,
		eventRepo: eventRepo,
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// Consume spends one heart for challengeType. The decrement never goes
// below zero: a call against an empty pool returns OutOfHearts without
// mutating anything. OutOfHearts is true exactly when the pool holds zero
// hearts after this call, including the decrement-to-zero case.
func (a *Accountant) Consume(ctx context.Context, userID string, challengeType challenge.Type, sessionID string) (*Response, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()

	if a.authority != nil {
		resp, err := a.authority.Consume(ctx, userID, challengeType)
		if err == nil {
			a.cacheAuthoritative(ctx, challengeType, resp)
			a.logEvent(ctx, challengeType, "consume", resp.HeartsRemaining, resp.OutOfHearts, true, sessionID)
			return resp, nil
		}
		a.logger.Warn("heart authority unreachable, falling back to local pool",
			"challenge_type", challengeType, "error", err)
	}

	pool := a.loadPool(ctx, challengeType)
	a.applyRefill(ctx, challengeType, pool, now)

	var resp *Response
	if pool.Remaining == 0 {
		a.ensureRefillScheduled(pool, now)
		resp = &Response{
			HeartsRemaining: 0,
			OutOfHearts:     true,
			RefillInfo:      refillInfo(pool, now),
		}
	} else {
		pool.Remaining--
		if pool.NextRefillAt == nil {
			next := now.Add(a.cfg.RefillInterval)
			pool.NextRefillAt = &next
		}
		resp = &Response{HeartsRemaining: pool.Remaining}
		if pool.Remaining == 0 {
			resp.OutOfHearts = true
			resp.RefillInfo = refillInfo(pool, now)
		}
	}

	a.savePool(ctx, challengeType, pool)
	a.logEvent(ctx, challengeType, "consume", resp.HeartsRemaining, resp.OutOfHearts, false, sessionID)
	return resp, nil
}

// Grant adds n hearts to the pool, capped at capacity. Used for external
// replenishment such as a purchase.
func (a *Accountant) Grant(ctx context.Context, challengeType challenge.Type, n int) (*Pool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	pool := a.loadPool(ctx, challengeType)
	a.applyRefill(ctx, challengeType, pool, now)

	pool.Remaining += n
	if pool.Remaining >= pool.Capacity {
		pool.Remaining = pool.Capacity
		pool.NextRefillAt = nil
	}

	a.savePool(ctx, challengeType, pool)
	a.logEvent(ctx, challengeType, "grant", pool.Remaining, pool.Remaining == 0, false, "")

	out := *pool
	return &out, nil
}

// Peek returns the current pool state after applying any elapsed refills.
// It never consumes a heart.
func (a *Accountant) Peek(ctx context.Context, challengeType challenge.Type) (*Pool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	pool := a.loadPool(ctx, challengeType)
	if a.applyRefill(ctx, challengeType, pool, a.now()) {
		a.savePool(ctx, challengeType, pool)
	}

	out := *pool
	return &out, nil
}

// applyRefill grants hearts for elapsed refill intervals. Reports whether
// the pool changed.
func (a *Accountant) applyRefill(ctx context.Context, challengeType challenge.Type, pool *Pool, now time.Time) bool {
	if pool.NextRefillAt == nil || pool.Full() {
		return false
	}

	changed := false
	switch a.cfg.RefillPolicy {
	case RefillFullReset:
		if !now.Before(*pool.NextRefillAt) {
			pool.Remaining = pool.Capacity
			pool.NextRefillAt = nil
			changed = true
		}
	default:
		for pool.NextRefillAt != nil && !now.Before(*pool.NextRefillAt) {
			pool.Remaining++
			changed = true
			if pool.Full() {
				pool.NextRefillAt = nil
			} else {
				next := pool.NextRefillAt.Add(a.cfg.RefillInterval)
				pool.NextRefillAt = &next
			}
		}
	}

	if changed {
		a.logEvent(ctx, challengeType, "refill", pool.Remaining, pool.Remaining == 0, false, "")
	}
	return changed
}

func (a *Accountant) ensureRefillScheduled(pool *Pool, now time.Time) {
	if pool.NextRefillAt == nil {
		next := now.Add(a.cfg.RefillInterval)
		pool.NextRefillAt = &next
	}
}

func refillInfo(pool *Pool, now time.Time) *RefillInfo {
	wait := pool.NextRefillAt.Sub(now)
	if wait < 0 {
		wait = 0
	}
	return &RefillInfo{
		NextRefillAt: *pool.NextRefillAt,
		WaitSeconds:  int((wait + time.Second - 1) / time.Second),
	}
}

// cacheAuthoritative overwrites the local pool with the authority's view.
func (a *Accountant) cacheAuthoritative(ctx context.Context, challengeType challenge.Type, resp *Response) {
	pool := &Pool{
		Remaining: resp.HeartsRemaining,
		Capacity:  a.cfg.Capacity,
	}
	if resp.RefillInfo != nil {
		next := resp.RefillInfo.NextRefillAt
		pool.NextRefillAt = &next
	}
	a.savePool(ctx, challengeType, pool)
}

func (a *Accountant) loadPool(ctx context.Context, challengeType challenge.Type) *Pool {
	fresh := &Pool{Remaining: a.cfg.Capacity, Capacity: a.cfg.Capacity}

	value, ok, err := a.kv.Get(ctx, poolKeyPrefix+string(challengeType))
	if err != nil {
		a.logger.Warn("failed to read heart pool, assuming full",
			"challenge_type", challengeType, "error", err)
		return fresh
	}
	if !ok {
		return fresh
	}

	var pool Pool
	if err := json.Unmarshal([]byte(value), &pool); err != nil {
		a.logger.Warn("corrupt heart pool record, assuming full",
			"challenge_type", challengeType, "error", err)
		return fresh
	}
	return &pool
}

func (a *Accountant) savePool(ctx context.Context, challengeType challenge.Type, pool *Pool) {
	value, err := json.Marshal(pool)
	if err != nil {
		a.logger.Warn("failed to encode heart pool", "challenge_type", challengeType, "error", err)
		return
	}
	if err := a.kv.Set(ctx, poolKeyPrefix+string(challengeType), string(value)); err != nil {
		a.logger.Warn("failed to persist heart pool", "challenge_type", challengeType, "error", err)
	}
}

func (a *Accountant) logEvent(ctx context.Context, challengeType challenge.Type, action string, remaining int, outOfHearts, authoritative bool, sessionID string) {
	if a.eventRepo == nil {
		return
	}
	_ = a.eventRepo.AppendHeart(ctx, store.HeartEventData{
		ChallengeType: string(challengeType),
		Action:        action,
		Remaining:     remaining,
		OutOfHearts:   outOfHearts,
		Authoritative: authoritative,
		SessionID:     sessionID,
	})
}
