// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

// stubCatalog is a fixed in-memory CatalogProvider for tests.
type stubCatalog struct {
	dests []Destination
	err   error
}

func (s *stubCatalog) Destinations(_ context.Context) ([]Destination, error) {
	return s.dests, s.err
}

// newTestEngine builds an engine with deterministic transfer times.
func newTestEngine(t *testing.T, cfg *Config, dests []Destination) *Engine {
	t.Helper()
	if cfg == nil {
		cfg = DefaultConfig()
		cfg.Travel.FixedTransferMinutes = 45
	}
	e, err := New(cfg, &stubCatalog{dests: dests}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// heritageDest builds a plain heritage destination with the given rating.
// Heritage has no crowd rules, so estimates always fall back to the base.
func heritageDest(id string, rating, fee float64) Destination {
	return Destination{
		ID:         id,
		Name:       id,
		Category:   CategoryHeritage,
		BaseCrowd:  CrowdLow,
		EntryFee:   fee,
		Rating:     rating,
		BestSeason: SeasonAll,
	}
}

func TestNewValidates(t *testing.T) {
	t.Parallel()

	bad := DefaultConfig()
	bad.Pacing.RelaxedPerDay = 0
	if _, err := New(bad, &stubCatalog{}, zerolog.Nop()); err == nil {
		t.Error("New accepted a config with zero destinations per day")
	}

	if _, err := New(DefaultConfig(), nil, zerolog.Nop()); err == nil {
		t.Error("New accepted a nil catalog provider")
	}
}

func TestGeneratePlanSchedulesDaysAndSlots(t *testing.T) {
	t.Parallel()

	dests := []Destination{
		heritageDest("a", 5.0, 100),
		heritageDest("b", 4.8, 100),
		heritageDest("c", 4.6, 100),
		heritageDest("d", 4.4, 100),
		heritageDest("e", 4.2, 100),
		heritageDest("f", 4.0, 100),
	}
	e := newTestEngine(t, nil, dests)

	it, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate:   date(t, "2024-04-15"), // Monday
			EndDate:     date(t, "2024-04-17"),
			Budget:      BudgetMedium,
			TravelStyle: StyleRelaxed,
		},
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if it.TotalDays != 3 {
		t.Errorf("TotalDays = %d, want 3", it.TotalDays)
	}
	if len(it.Items) != 6 {
		t.Fatalf("items = %d, want 6", len(it.Items))
	}

	wantDays := []int{1, 1, 2, 2, 3, 3}
	wantSlots := []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotMorning, SlotAfternoon, SlotEvening}
	wantOrder := []string{"a", "b", "c", "d", "e", "f"}
	for i, item := range it.Items {
		if item.Day != wantDays[i] {
			t.Errorf("item %d day = %d, want %d", i, item.Day, wantDays[i])
		}
		if item.Slot != wantSlots[i] {
			t.Errorf("item %d slot = %s, want %s", i, item.Slot, wantSlots[i])
		}
		if item.Destination.ID != wantOrder[i] {
			t.Errorf("item %d destination = %s, want %s", i, item.Destination.ID, wantOrder[i])
		}
	}

	if it.Items[0].TravelMinutesFromPrevious != 0 {
		t.Errorf("first item travel = %d, want 0", it.Items[0].TravelMinutesFromPrevious)
	}
	for i, item := range it.Items[1:] {
		if item.TravelMinutesFromPrevious != 45 {
			t.Errorf("item %d travel = %d, want fixed 45", i+1, item.TravelMinutesFromPrevious)
		}
	}

	// 6 entry fees of 100 plus three medium days at 2500.
	if it.TotalBudget != 600+3*2500 {
		t.Errorf("TotalBudget = %v, want %v", it.TotalBudget, 600.0+3*2500)
	}
}

func TestGeneratePlanRanksByScore(t *testing.T) {
	t.Parallel()

	beach := Destination{
		ID: "marina", Category: CategoryBeach, BaseCrowd: CrowdMedium,
		Rating: 3.0, BestSeason: SeasonAll,
	}
	dests := []Destination{
		heritageDest("fort", 5.0, 100),
		beach,
	}
	e := newTestEngine(t, nil, dests)

	// The interest bonus (50) outweighs the fort's rating edge (10).
	it, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-15"),
			EndDate:   date(t, "2024-04-15"),
			Interests: []PlaceCategory{CategoryBeach},
			Budget:    BudgetMedium,
		},
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(it.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(it.Items))
	}
	if it.Items[0].Destination.ID != "marina" {
		t.Errorf("top item = %s, want marina", it.Items[0].Destination.ID)
	}
}

func TestGeneratePlanWeatherFiltering(t *testing.T) {
	t.Parallel()

	museum := heritageDest("museum", 4.0, 50)
	museum.Indoor = true
	dests := []Destination{
		heritageDest("fort", 5.0, 100),
		museum,
		{ID: "beach", Category: CategoryBeach, BaseCrowd: CrowdMedium, Rating: 4.5, BestSeason: SeasonAll},
	}
	e := newTestEngine(t, nil, dests)

	it, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-15"),
			EndDate:   date(t, "2024-04-16"),
			Budget:    BudgetMedium,
		},
		Weather: &Weather{IsRaining: true, TemperatureC: 26},
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if len(it.Items) != 1 || it.Items[0].Destination.ID != "museum" {
		t.Fatalf("rainy-day items = %v, want only the indoor museum", itemIDs(it))
	}
	if it.WeatherAdvisory == "" {
		t.Error("WeatherAdvisory not set under rain")
	}
}

func TestGeneratePlanEmptyPool(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, nil)

	it, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-15"),
			EndDate:   date(t, "2024-04-17"),
			Budget:    BudgetLow,
		},
	})
	if err != nil {
		t.Fatalf("GeneratePlan with empty catalog: %v", err)
	}
	if len(it.Items) != 0 {
		t.Errorf("items = %d, want 0", len(it.Items))
	}
	if it.TotalDays != 3 {
		t.Errorf("TotalDays = %d, want 3", it.TotalDays)
	}
	// Daily expenses still accrue even with nothing scheduled.
	if it.TotalBudget != 3*1000 {
		t.Errorf("TotalBudget = %v, want %v", it.TotalBudget, 3*1000.0)
	}
}

func TestGeneratePlanDateNormalization(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, []Destination{heritageDest("a", 4.0, 0)})

	tests := []struct {
		name     string
		start    string
		end      string
		wantDays int
	}{
		{"end before start collapses to one day", "2024-04-15", "2024-04-10", 1},
		{"same day trip", "2024-04-15", "2024-04-15", 1},
		{"inclusive day count", "2024-04-15", "2024-04-19", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			it, err := e.GeneratePlan(context.Background(), PlanRequest{
				Preferences: TripPreferences{
					StartDate: date(t, tt.start),
					EndDate:   date(t, tt.end),
				},
			})
			if err != nil {
				t.Fatalf("GeneratePlan: %v", err)
			}
			if it.TotalDays != tt.wantDays {
				t.Errorf("TotalDays = %d, want %d", it.TotalDays, tt.wantDays)
			}
		})
	}
}

func TestGeneratePlanCrowdAdvisory(t *testing.T) {
	t.Parallel()

	temples := []Destination{
		{ID: "t1", Category: CategoryTemple, BaseCrowd: CrowdMedium, Rating: 4.8, BestSeason: SeasonAll},
		{ID: "t2", Category: CategoryTemple, BaseCrowd: CrowdMedium, Rating: 4.5, BestSeason: SeasonAll},
	}
	e := newTestEngine(t, nil, temples)

	// Saturday: t1 lands the morning slot (HIGH), t2 the afternoon (MEDIUM).
	// One HIGH item out of a one-day trip crosses the majority threshold.
	saturday, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-13"),
			EndDate:   date(t, "2024-04-13"),
		},
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if saturday.CrowdAdvisory == "" {
		t.Error("CrowdAdvisory not set for a HIGH-heavy Saturday")
	}
	if saturday.WeatherAdvisory != "" {
		t.Error("WeatherAdvisory set without weather input")
	}

	// Tuesday: morning is MEDIUM, afternoon falls back to base. No HIGH.
	tuesday, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-16"),
			EndDate:   date(t, "2024-04-16"),
		},
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if tuesday.CrowdAdvisory != "" {
		t.Errorf("CrowdAdvisory set on a calm weekday: %q", tuesday.CrowdAdvisory)
	}
}

func TestGeneratePlanCaching(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, []Destination{heritageDest("a", 4.0, 100)})
	req := PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-15"),
			EndDate:   date(t, "2024-04-16"),
			Budget:    BudgetMedium,
		},
	}

	first, err := e.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("first GeneratePlan: %v", err)
	}
	second, err := e.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("second GeneratePlan: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("cached itinerary differs from the original")
	}

	m := e.GetMetrics()
	if m.CacheHits != 1 || m.CacheMisses != 1 {
		t.Errorf("cache hits/misses = %d/%d, want 1/1", m.CacheHits, m.CacheMisses)
	}
	if m.PlansGenerated != 1 {
		t.Errorf("PlansGenerated = %d, want 1 (cache hit must not count)", m.PlansGenerated)
	}
}

func TestGeneratePlanCachedCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, []Destination{heritageDest("a", 4.0, 100)})
	req := PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-15"),
			EndDate:   date(t, "2024-04-16"),
			Budget:    BudgetMedium,
		},
	}

	first, err := e.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("first GeneratePlan: %v", err)
	}

	// Vandalize the first response; the cache must not see it.
	first.TotalBudget = -1
	first.Items[0].Tips[0] = "mutated"
	first.Items = first.Items[:0]

	second, err := e.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("second GeneratePlan: %v", err)
	}
	if second.TotalBudget < 0 {
		t.Error("cached itinerary shares TotalBudget with the caller's copy")
	}
	if len(second.Items) == 0 {
		t.Fatal("cached itinerary shares the Items slice with the caller's copy")
	}
	if second.Items[0].Tips[0] == "mutated" {
		t.Error("cached itinerary shares tip strings with the caller's copy")
	}

	// And mutating one cache hit must not leak into the next.
	second.Items[0].Tips[0] = "mutated"
	third, err := e.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("third GeneratePlan: %v", err)
	}
	if third.Items[0].Tips[0] == "mutated" {
		t.Error("cache hits share tip strings with each other")
	}
}

func TestGeneratePlanRejectsOverlongTrip(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, []Destination{heritageDest("a", 4.0, 1000)})

	// 61 inclusive days against the default 30-day limit.
	_, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-01-01"),
			EndDate:   date(t, "2024-03-01"),
			Budget:    BudgetLow,
		},
	})
	if !errors.Is(err, ErrTripTooLong) {
		t.Fatalf("GeneratePlan error = %v, want ErrTripTooLong", err)
	}
	if m := e.GetMetrics(); m.Errors != 1 {
		t.Errorf("Errors = %d, want 1", m.Errors)
	}

	// A trip of exactly the limit still succeeds in full.
	it, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-01-01"),
			EndDate:   date(t, "2024-01-30"),
			Budget:    BudgetLow,
		},
	})
	if err != nil {
		t.Fatalf("GeneratePlan at the limit: %v", err)
	}
	if it.TotalDays != 30 {
		t.Errorf("TotalDays = %d, want 30", it.TotalDays)
	}
}

func TestGeneratePlanDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	dests := []Destination{
		heritageDest("a", 5.0, 100),
		heritageDest("b", 4.5, 100),
		heritageDest("c", 4.0, 100),
	}
	req := PlanRequest{
		Preferences: TripPreferences{
			StartDate: date(t, "2024-04-15"),
			EndDate:   date(t, "2024-04-16"),
			Budget:    BudgetMedium,
		},
	}

	build := func() *GeneratedItinerary {
		cfg := DefaultConfig()
		cfg.Seed = 42
		e, err := New(cfg, &stubCatalog{dests: dests}, zerolog.Nop())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		it, err := e.GeneratePlan(context.Background(), req)
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		return it
	}

	if first, second := build(), build(); !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different itineraries")
	}
}

func TestGeneratePlanCatalogError(t *testing.T) {
	t.Parallel()

	boom := errors.New("catalog unavailable")
	e, err := New(DefaultConfig(), &stubCatalog{err: boom}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := e.GeneratePlan(context.Background(), PlanRequest{
		Preferences: TripPreferences{StartDate: date(t, "2024-04-15"), EndDate: date(t, "2024-04-15")},
	}); !errors.Is(err, boom) {
		t.Errorf("GeneratePlan error = %v, want wrapped catalog error", err)
	}
	if m := e.GetMetrics(); m.Errors != 1 {
		t.Errorf("Errors = %d, want 1", m.Errors)
	}
}

func TestQuickRecommend(t *testing.T) {
	t.Parallel()

	dests := []Destination{
		{ID: "temple-a", Category: CategoryTemple, BaseCrowd: CrowdLow, Rating: 4.2, BestSeason: SeasonAll},
		{ID: "temple-b", Category: CategoryTemple, BaseCrowd: CrowdLow, Rating: 4.9, BestSeason: SeasonAll},
		{ID: "beach-a", Category: CategoryBeach, BaseCrowd: CrowdLow, Rating: 5.0, BestSeason: SeasonAll},
		{ID: "temple-c", Category: CategoryTemple, BaseCrowd: CrowdLow, Rating: 4.5, BestSeason: SeasonAll},
	}
	e := newTestEngine(t, nil, dests)

	got, err := e.QuickRecommend(context.Background(), QuickRequest{
		Category: CategoryTemple,
		Limit:    2,
		Today:    date(t, "2024-04-16"), // Tuesday
	})
	if err != nil {
		t.Fatalf("QuickRecommend: %v", err)
	}
	if len(got) != 2 || got[0].ID != "temple-b" || got[1].ID != "temple-c" {
		t.Errorf("QuickRecommend = %v, want [temple-b temple-c]", ids(got))
	}
}

func TestQuickRecommendAvoidExcludesHighCrowd(t *testing.T) {
	t.Parallel()

	dests := []Destination{
		{ID: "temple-a", Category: CategoryTemple, BaseCrowd: CrowdLow, Rating: 4.9, BestSeason: SeasonAll},
		{ID: "museum", Category: CategoryHeritage, Indoor: true, BaseCrowd: CrowdLow, Rating: 4.0, BestSeason: SeasonAll},
	}
	e := newTestEngine(t, nil, dests)

	// Saturday morning estimates HIGH for temples; avoid drops them.
	got, err := e.QuickRecommend(context.Background(), QuickRequest{
		Category:        CategoryTemple,
		CrowdPreference: CrowdAvoid,
		Today:           date(t, "2024-04-13"),
	})
	if err != nil {
		t.Fatalf("QuickRecommend: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("QuickRecommend = %v, want empty (all HIGH excluded)", ids(got))
	}

	// Same request without avoidance keeps the temple.
	got, err = e.QuickRecommend(context.Background(), QuickRequest{
		Category: CategoryTemple,
		Today:    date(t, "2024-04-13"),
	})
	if err != nil {
		t.Fatalf("QuickRecommend: %v", err)
	}
	if len(got) != 1 || got[0].ID != "temple-a" {
		t.Errorf("QuickRecommend = %v, want [temple-a]", ids(got))
	}
}

func TestQuickRecommendLimitDefaults(t *testing.T) {
	t.Parallel()

	var dests []Destination
	for i := 0; i < 10; i++ {
		dests = append(dests, Destination{
			ID: string(rune('a' + i)), Category: CategoryBeach,
			BaseCrowd: CrowdLow, Rating: 4.0, BestSeason: SeasonAll,
		})
	}
	e := newTestEngine(t, nil, dests)

	got, err := e.QuickRecommend(context.Background(), QuickRequest{
		Category: CategoryBeach,
		Today:    date(t, "2024-04-16"),
	})
	if err != nil {
		t.Fatalf("QuickRecommend: %v", err)
	}
	if len(got) != DefaultConfig().Limits.DefaultQuickLimit {
		t.Errorf("default limit = %d results, want %d", len(got), DefaultConfig().Limits.DefaultQuickLimit)
	}

	got, err = e.QuickRecommend(context.Background(), QuickRequest{
		Category: CategoryBeach,
		Limit:    10_000,
		Today:    date(t, "2024-04-16"),
	})
	if err != nil {
		t.Fatalf("QuickRecommend: %v", err)
	}
	if len(got) > DefaultConfig().Limits.MaxQuickLimit {
		t.Errorf("limit cap ignored: got %d results", len(got))
	}
}

func TestUpdateConfig(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil, []Destination{heritageDest("a", 4.0, 0)})

	bad := DefaultConfig()
	bad.Travel.MaxTransferMinutes = 10
	if err := e.UpdateConfig(bad); err == nil {
		t.Error("UpdateConfig accepted max transfer below min")
	}

	updated := DefaultConfig()
	updated.Weights.InterestBonus = 75
	if err := e.UpdateConfig(updated); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if got := e.GetConfig().Weights.InterestBonus; got != 75 {
		t.Errorf("InterestBonus after update = %v, want 75", got)
	}

	// GetConfig hands out a copy; mutating it must not reach the engine.
	cfg := e.GetConfig()
	cfg.Weights.InterestBonus = 1
	if got := e.GetConfig().Weights.InterestBonus; got != 75 {
		t.Errorf("engine config mutated through GetConfig copy: %v", got)
	}
}

func itemIDs(it *GeneratedItinerary) []string {
	out := make([]string, len(it.Items))
	for i, item := range it.Items {
		out[i] = item.Destination.ID
	}
	return out
}
