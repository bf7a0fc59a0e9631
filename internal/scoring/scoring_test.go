package scoring

import (
	"testing"
	"time"
)

func TestComputeIncorrectIsZero(t *testing.T) {
	cfg := DefaultConfig()
	for combo := 0; combo <= 25; combo++ {
		got := Compute(cfg, false, 2*time.Second, combo)
		if got.BaseXP != 0 || got.SpeedBonus != 0 {
			t.Fatalf("Compute(incorrect, combo=%d) = %+v, want zero", combo, got)
		}
	}
}

func TestComputeComboTiers(t *testing.T) {
	cfg := DefaultConfig()
	slow := 30 * time.Second // past every speed tier

	tests := []struct {
		combo    int
		wantBase int
	}{
		{0, 10},
		{1, 10},
		{4, 10},
		{5, 15},
		{9, 15},
		{10, 20},
		{50, 20}, // capped
	}
	for _, tt := range tests {
		got := Compute(cfg, true, slow, tt.combo)
		if got.BaseXP != tt.wantBase {
			t.Errorf("Compute(combo=%d).BaseXP = %d, want %d", tt.combo, got.BaseXP, tt.wantBase)
		}
		if got.SpeedBonus != 0 {
			t.Errorf("Compute(combo=%d, slow).SpeedBonus = %d, want 0", tt.combo, got.SpeedBonus)
		}
	}
}

func TestComputeSpeedTiers(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		elapsed   time.Duration
		wantBonus int
	}{
		{1 * time.Second, 5},
		{4999 * time.Millisecond, 5},
		{5 * time.Second, 3},
		{9 * time.Second, 3},
		{10 * time.Second, 1},
		{14 * time.Second, 1},
		{15 * time.Second, 0},
		{2 * time.Minute, 0},
	}
	for _, tt := range tests {
		got := Compute(cfg, true, tt.elapsed, 0)
		if got.SpeedBonus != tt.wantBonus {
			t.Errorf("Compute(elapsed=%s).SpeedBonus = %d, want %d", tt.elapsed, got.SpeedBonus, tt.wantBonus)
		}
	}
}

// Re-invoking with identical arguments must always yield identical output.
func TestComputeDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	for combo := 0; combo <= 30; combo++ {
		for _, elapsed := range []time.Duration{0, 3 * time.Second, 7 * time.Second, 12 * time.Second, time.Minute} {
			first := Compute(cfg, true, elapsed, combo)
			for i := 0; i < 3; i++ {
				again := Compute(cfg, true, elapsed, combo)
				if again != first {
					t.Fatalf("Compute(combo=%d, elapsed=%s) not deterministic: %+v then %+v",
						combo, elapsed, first, again)
				}
			}
		}
	}
}

func TestScoreTotal(t *testing.T) {
	s := Score{BaseXP: 15, SpeedBonus: 3}
	if s.Total() != 18 {
		t.Errorf("Total() = %d, want 18", s.Total())
	}
}
