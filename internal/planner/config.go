// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import (
	"fmt"
	"time"
)

// Config holds all tunable parameters of the planning engine. Every rule
// constant that is a number lives here so operators can retune scoring
// without a rebuild. Zero values are not usable; start from DefaultConfig.
type Config struct {
	// Weights are the destination scoring parameters.
	Weights ScoringWeights `json:"weights" koanf:"weights"`

	// Pacing controls destinations per day by travel style.
	Pacing PacingConfig `json:"pacing" koanf:"pacing"`

	// Budget controls the daily expense component of the budget estimate.
	Budget BudgetConfig `json:"budget" koanf:"budget"`

	// Travel controls the placeholder transfer-time estimates.
	Travel TravelConfig `json:"travel" koanf:"travel"`

	// Cache controls the in-memory itinerary cache.
	Cache CacheConfig `json:"cache" koanf:"cache"`

	// Limits bounds request parameters.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Seed seeds the transfer-time randomness. Zero means a time-based seed;
	// any other value makes generation fully deterministic.
	Seed int64 `json:"seed" koanf:"seed"`
}

// ScoringWeights are the additive scoring-rule parameters. All bonuses are
// added to a base score of zero; the crowd-avoidance high penalty is the only
// negative weight.
type ScoringWeights struct {
	// InterestBonus is added when the destination category is an interest.
	InterestBonus float64 `json:"interest_bonus" koanf:"interest_bonus"`

	// CrowdAvoidLow, CrowdAvoidMedium and CrowdAvoidHigh apply only when the
	// crowd preference is avoid, keyed by the morning-slot crowd estimate on
	// the trip start date.
	CrowdAvoidLow    float64 `json:"crowd_avoid_low" koanf:"crowd_avoid_low"`
	CrowdAvoidMedium float64 `json:"crowd_avoid_medium" koanf:"crowd_avoid_medium"`
	CrowdAvoidHigh   float64 `json:"crowd_avoid_high" koanf:"crowd_avoid_high"`

	// BudgetLowBonus applies when the budget is low and the entry fee is at
	// most BudgetLowMaxFee. BudgetMediumBonus applies when the budget is
	// medium and the fee is at most BudgetMediumMaxFee. BudgetHighBonus
	// applies unconditionally for high budgets.
	BudgetLowBonus     float64 `json:"budget_low_bonus" koanf:"budget_low_bonus"`
	BudgetLowMaxFee    float64 `json:"budget_low_max_fee" koanf:"budget_low_max_fee"`
	BudgetMediumBonus  float64 `json:"budget_medium_bonus" koanf:"budget_medium_bonus"`
	BudgetMediumMaxFee float64 `json:"budget_medium_max_fee" koanf:"budget_medium_max_fee"`
	BudgetHighBonus    float64 `json:"budget_high_bonus" koanf:"budget_high_bonus"`

	// RatingMultiplier scales the destination rating into the score.
	RatingMultiplier float64 `json:"rating_multiplier" koanf:"rating_multiplier"`

	// SeasonBonus is added when the trip starts in the destination's best
	// season (or the destination is good year-round).
	SeasonBonus float64 `json:"season_bonus" koanf:"season_bonus"`
}

// PacingConfig maps travel styles to destinations per day.
type PacingConfig struct {
	RelaxedPerDay int `json:"relaxed_per_day" koanf:"relaxed_per_day"`
	PackedPerDay  int `json:"packed_per_day" koanf:"packed_per_day"`
}

// PerDay returns the destinations per day for the given style.
func (p PacingConfig) PerDay(style TravelStyle) int {
	if style == StylePacked {
		return p.PackedPerDay
	}
	return p.RelaxedPerDay
}

// BudgetConfig holds the flat daily expense estimates in rupees per budget
// tier. These cover food, transport and lodging on top of entry fees.
type BudgetConfig struct {
	DailyExpenseLow    float64 `json:"daily_expense_low" koanf:"daily_expense_low"`
	DailyExpenseMedium float64 `json:"daily_expense_medium" koanf:"daily_expense_medium"`
	DailyExpenseHigh   float64 `json:"daily_expense_high" koanf:"daily_expense_high"`
}

// DailyExpense returns the daily expense estimate for the given tier.
func (b BudgetConfig) DailyExpense(tier BudgetTier) float64 {
	switch tier {
	case BudgetLow:
		return b.DailyExpenseLow
	case BudgetHigh:
		return b.DailyExpenseHigh
	default:
		return b.DailyExpenseMedium
	}
}

// TravelConfig controls the placeholder inter-stop transfer estimates.
// Estimates are uniform random in [MinTransferMinutes, MaxTransferMinutes)
// unless FixedTransferMinutes is positive, in which case every transfer uses
// that fixed value (useful for deterministic output).
type TravelConfig struct {
	MinTransferMinutes   int `json:"min_transfer_minutes" koanf:"min_transfer_minutes"`
	MaxTransferMinutes   int `json:"max_transfer_minutes" koanf:"max_transfer_minutes"`
	FixedTransferMinutes int `json:"fixed_transfer_minutes" koanf:"fixed_transfer_minutes"`
}

// CacheConfig controls the in-memory itinerary cache.
type CacheConfig struct {
	Enabled    bool          `json:"enabled" koanf:"enabled"`
	TTL        time.Duration `json:"ttl" koanf:"ttl"`
	MaxEntries int           `json:"max_entries" koanf:"max_entries"`
}

// LimitsConfig bounds request parameters.
type LimitsConfig struct {
	// DefaultQuickLimit is used when a quick request omits its limit.
	DefaultQuickLimit int `json:"default_quick_limit" koanf:"default_quick_limit"`

	// MaxQuickLimit caps the quick request limit.
	MaxQuickLimit int `json:"max_quick_limit" koanf:"max_quick_limit"`

	// MaxTripDays is the longest accepted trip length in inclusive days.
	// Longer date ranges are rejected with ErrTripTooLong.
	MaxTripDays int `json:"max_trip_days" koanf:"max_trip_days"`
}

// DefaultConfig returns the production rule constants.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoringWeights{
			InterestBonus:      50,
			CrowdAvoidLow:      30,
			CrowdAvoidMedium:   15,
			CrowdAvoidHigh:     -10,
			BudgetLowBonus:     20,
			BudgetLowMaxFee:    50,
			BudgetMediumBonus:  15,
			BudgetMediumMaxFee: 150,
			BudgetHighBonus:    10,
			RatingMultiplier:   5,
			SeasonBonus:        15,
		},
		Pacing: PacingConfig{
			RelaxedPerDay: 2,
			PackedPerDay:  3,
		},
		Budget: BudgetConfig{
			DailyExpenseLow:    1000,
			DailyExpenseMedium: 2500,
			DailyExpenseHigh:   5000,
		},
		Travel: TravelConfig{
			MinTransferMinutes: 30,
			MaxTransferMinutes: 90,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1000,
		},
		Limits: LimitsConfig{
			DefaultQuickLimit: 5,
			MaxQuickLimit:     50,
			MaxTripDays:       30,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Pacing.RelaxedPerDay < 1 {
		return fmt.Errorf("pacing.relaxed_per_day must be at least 1, got %d", c.Pacing.RelaxedPerDay)
	}
	if c.Pacing.PackedPerDay < c.Pacing.RelaxedPerDay {
		return fmt.Errorf("pacing.packed_per_day must be at least relaxed_per_day (%d), got %d",
			c.Pacing.RelaxedPerDay, c.Pacing.PackedPerDay)
	}
	if c.Budget.DailyExpenseLow < 0 || c.Budget.DailyExpenseMedium < 0 || c.Budget.DailyExpenseHigh < 0 {
		return fmt.Errorf("budget daily expenses must be non-negative")
	}
	if c.Travel.MinTransferMinutes < 0 {
		return fmt.Errorf("travel.min_transfer_minutes must be non-negative, got %d", c.Travel.MinTransferMinutes)
	}
	if c.Travel.MaxTransferMinutes <= c.Travel.MinTransferMinutes {
		return fmt.Errorf("travel.max_transfer_minutes must exceed min_transfer_minutes (%d), got %d",
			c.Travel.MinTransferMinutes, c.Travel.MaxTransferMinutes)
	}
	if c.Travel.FixedTransferMinutes < 0 {
		return fmt.Errorf("travel.fixed_transfer_minutes must be non-negative, got %d", c.Travel.FixedTransferMinutes)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when the cache is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be at least 1 when the cache is enabled, got %d", c.Cache.MaxEntries)
		}
	}
	if c.Limits.DefaultQuickLimit < 1 {
		return fmt.Errorf("limits.default_quick_limit must be at least 1, got %d", c.Limits.DefaultQuickLimit)
	}
	if c.Limits.MaxQuickLimit < c.Limits.DefaultQuickLimit {
		return fmt.Errorf("limits.max_quick_limit must be at least default_quick_limit (%d), got %d",
			c.Limits.DefaultQuickLimit, c.Limits.MaxQuickLimit)
	}
	if c.Limits.MaxTripDays < 1 {
		return fmt.Errorf("limits.max_trip_days must be at least 1, got %d", c.Limits.MaxTripDays)
	}
	return nil
}

// Clone returns a deep copy. All fields are value types, so a struct copy is
// sufficient today; keep callers going through Clone so that stays true.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
