package hearts

import "time"

// Pool is the per-challenge-type heart state. Pools are independent:
// exhausting one type never borrows from another.
type Pool struct {
	Remaining    int        `json:"remaining"`
	Capacity     int        `json:"capacity"`
	NextRefillAt *time.Time `json:"next_refill_at,omitempty"`
}

// Full reports whether the pool is at capacity.
func (p *Pool) Full() bool {
	return p.Remaining >= p.Capacity
}

// RefillInfo tells the caller when the next heart becomes available.
type RefillInfo struct {
	NextRefillAt time.Time `json:"next_refill_at"`
	WaitSeconds  int       `json:"wait_seconds"`
}

// Response is the result of a consume call. RefillInfo is always set
// when OutOfHearts is true.
type Response struct {
	HeartsRemaining int         `json:"hearts_remaining"`
	OutOfHearts     bool        `json:"out_of_hearts"`
	RefillInfo      *RefillInfo `json:"refill_info,omitempty"`
}
