// Package scoring computes XP awards for answered challenges. Compute is a
// pure function: identical inputs always produce identical output, and all
// arithmetic is integer-only so results never drift across platforms.
package scoring

import "time"

// Score is the XP breakdown for a single answered challenge.
type Score struct {
	// BaseXP is the combo-scaled base award. Zero for incorrect answers.
	BaseXP int

	// SpeedBonus is the flat bonus for a fast correct answer.
	SpeedBonus int
}

// Total returns the full XP value of the score.
func (s Score) Total() int {
	return s.BaseXP + s.SpeedBonus
}

// ComboTier maps a minimum combo length to a base-XP multiplier.
// The multiplier is expressed in percent to keep scoring exact.
type ComboTier struct {
	MinCombo      int
	MultiplierPct int
}

// SpeedTier maps a maximum elapsed time to a flat bonus.
type SpeedTier struct {
	MaxElapsed time.Duration
	Bonus      int
}

// Config holds the scoring tier tables.
type Config struct {
	// BaseXP is the unscaled award for any correct answer.
	BaseXP int

	// ComboTiers must be ordered by MinCombo descending. The first tier
	// whose MinCombo the current combo reaches wins.
	ComboTiers []ComboTier

	// MaxMultiplierPct caps the combo multiplier.
	MaxMultiplierPct int

	// SpeedTiers must be ordered by MaxElapsed ascending. The first tier
	// the elapsed time fits under wins; slower answers earn nothing.
	SpeedTiers []SpeedTier
}

// DefaultConfig returns the standard scoring tiers.
func DefaultConfig() Config {
	return Config{
		BaseXP: 10,
		ComboTiers: []ComboTier{
			{MinCombo: 10, MultiplierPct: 200},
			{MinCombo: 5, MultiplierPct: 150},
		},
		MaxMultiplierPct: 200,
		SpeedTiers: []SpeedTier{
			{MaxElapsed: 5 * time.Second, Bonus: 5},
			{MaxElapsed: 10 * time.Second, Bonus: 3},
			{MaxElapsed: 15 * time.Second, Bonus: 1},
		},
	}
}

// Compute returns the score for one answer. combo is the consecutive-correct
// count including this answer. Incorrect answers always score zero.
func Compute(cfg Config, isCorrect bool, elapsed time.Duration, combo int) Score {
	if !isCorrect {
		return Score{}
	}

	pct := 100
	for _, tier := range cfg.ComboTiers {
		if combo >= tier.MinCombo {
			pct = tier.MultiplierPct
			break
		}
	}
	if cfg.MaxMultiplierPct > 0 && pct > cfg.MaxMultiplierPct {
		pct = cfg.MaxMultiplierPct
	}

	bonus := 0
	for _, tier := range cfg.SpeedTiers {
		if elapsed < tier.MaxElapsed {
			bonus = tier.Bonus
			break
		}
	}

	return Score{
		BaseXP:     cfg.BaseXP * pct / 100,
		SpeedBonus: bonus,
	}
}
