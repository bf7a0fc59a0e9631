package hearts

import "time"

// RefillPolicy selects how an exhausted pool recovers.
type RefillPolicy string

const (
	// RefillPerHeart grants one heart per elapsed interval.
	RefillPerHeart RefillPolicy = "per-heart"

	// RefillFullReset restores the pool to capacity after one interval.
	RefillFullReset RefillPolicy = "full-reset"
)

// Config controls heart pool capacity and the refill schedule.
type Config struct {
	// Capacity is the maximum hearts per challenge type.
	Capacity int

	// RefillPolicy picks per-heart or full-reset recovery.
	RefillPolicy RefillPolicy

	// RefillInterval is the time to recover one heart (per-heart) or the
	// whole pool (full-reset).
	RefillInterval time.Duration
}

// DefaultConfig returns the standard heart configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:       5,
		RefillPolicy:   RefillPerHeart,
		RefillInterval: 30 * time.Minute,
	}
}
