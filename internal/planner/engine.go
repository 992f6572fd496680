// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

// Package planner implements the rule-based trip planning engine.
//
// The engine composes five pure rule stages - crowd estimation, weather
// filtering, destination scoring, slot selection and tip generation - into
// two operations: full multi-day itinerary generation and single-category
// quick recommendations. Every rule is a deterministic table lookup; the
// only randomness is the placeholder transfer-time estimate, which is
// seedable for reproducible output.
//
// The engine holds no destination data of its own. Candidates come from a
// CatalogProvider on every call, so catalog reloads are picked up without
// engine restarts.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Advisory copy, part of the API surface like the tip strings.
const (
	advisoryCrowd   = "Several destinations may be crowded during your visit. Consider adjusting timing or visiting alternative spots."
	advisoryWeather = "Rain expected. Indoor attractions have been prioritized. Carry umbrellas."
)

// ErrTripTooLong is returned when the requested date range exceeds
// Limits.MaxTripDays. Callers should treat it as a validation failure.
var ErrTripTooLong = errors.New("trip exceeds the maximum length")

// CatalogProvider supplies the destination candidate pool. Implementations
// must return destinations in a stable order; ties in scoring are broken by
// this order.
type CatalogProvider interface {
	// Destinations returns the full catalog. The returned slice and its
	// contents must not be mutated by callers.
	Destinations(ctx context.Context) ([]Destination, error)
}

// Engine generates itineraries and quick recommendations. Safe for
// concurrent use.
type Engine struct {
	configMu sync.RWMutex
	config   *Config

	catalog CatalogProvider
	logger  zerolog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	cacheMu sync.RWMutex
	cache   map[string]*cacheEntry

	startTime time.Time

	plansGenerated atomic.Int64
	quickRequests  atomic.Int64
	errors         atomic.Int64
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	requestSeq     atomic.Int64
}

type cacheEntry struct {
	itinerary *GeneratedItinerary
	expiresAt time.Time
}

// Status is a point-in-time health snapshot of the engine.
type Status struct {
	Ready         bool    `json:"ready"`
	CacheSize     int     `json:"cache_size"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Metrics are the engine's cumulative counters since start.
type Metrics struct {
	PlansGenerated int64 `json:"plans_generated"`
	QuickRequests  int64 `json:"quick_requests"`
	Errors         int64 `json:"errors"`
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
	CacheSize      int   `json:"cache_size"`
}

// New creates an engine with the given configuration and catalog.
// A nil config uses DefaultConfig.
//
//nolint:gocritic // hugeParam: zerolog loggers are passed by value by convention
func New(config *Config, catalog CatalogProvider, logger zerolog.Logger) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog provider is required")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		config:    config.Clone(),
		catalog:   catalog,
		logger:    logger.With().Str("component", "planner").Logger(),
		rng:       rand.New(rand.NewSource(seed)), //nolint:gosec // transfer estimates are not security sensitive
		cache:     make(map[string]*cacheEntry),
		startTime: time.Now(),
	}, nil
}

// GeneratePlan builds a complete multi-day itinerary for the request.
// An empty candidate pool (including one emptied by the weather filter)
// yields an itinerary with no items, not an error.
func (e *Engine) GeneratePlan(ctx context.Context, req PlanRequest) (*GeneratedItinerary, error) {
	start := time.Now()
	if req.RequestID == "" {
		req.RequestID = e.nextRequestID("plan")
	}

	cfg := e.snapshotConfig()
	prefs := normalizePreferences(req.Preferences)

	if days := tripDays(&prefs); days > cfg.Limits.MaxTripDays {
		e.errors.Add(1)
		return nil, fmt.Errorf("%w: %d days requested, limit is %d",
			ErrTripTooLong, days, cfg.Limits.MaxTripDays)
	}

	cacheKey := planCacheKey(&prefs, req.Weather)
	if cached := e.cacheGet(cfg, cacheKey); cached != nil {
		e.cacheHits.Add(1)
		e.logger.Debug().
			Str("request_id", req.RequestID).
			Str("cache_key", cacheKey).
			Msg("itinerary served from cache")
		return cached, nil
	}
	e.cacheMisses.Add(1)

	dests, err := e.catalog.Destinations(ctx)
	if err != nil {
		e.errors.Add(1)
		return nil, fmt.Errorf("loading destinations: %w", err)
	}

	candidates := FilterByWeather(dests, req.Weather)
	itinerary := e.assemble(cfg, &prefs, candidates, req.Weather)

	e.cachePut(cfg, cacheKey, itinerary)
	e.plansGenerated.Add(1)

	e.logger.Info().
		Str("request_id", req.RequestID).
		Int("candidates", len(candidates)).
		Int("items", len(itinerary.Items)).
		Int("total_days", itinerary.TotalDays).
		Float64("total_budget", itinerary.TotalBudget).
		Dur("duration", time.Since(start)).
		Msg("itinerary generated")

	return itinerary, nil
}

// assemble runs the ranking and day/slot assignment over an already
// weather-filtered candidate pool.
func (e *Engine) assemble(cfg *Config, prefs *TripPreferences, candidates []Destination, weather *Weather) *GeneratedItinerary {
	totalDays := tripDays(prefs)
	perDay := cfg.Pacing.PerDay(prefs.TravelStyle)

	type scoredDest struct {
		dest  *Destination
		score float64
	}
	ranked := make([]scoredDest, len(candidates))
	weights := cfg.Weights
	for i := range candidates {
		ranked[i] = scoredDest{
			dest:  &candidates[i],
			score: ScoreDestination(&candidates[i], prefs, weights),
		}
	}
	// Stable so catalog order breaks score ties deterministically.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	total := totalDays * perDay
	if total > len(ranked) {
		total = len(ranked)
	}

	items := make([]ItineraryItem, 0, total)
	var entryFees float64
	highCrowdCount := 0

	for i := 0; i < total; i++ {
		day := i/perDay + 1
		date := prefs.StartDate.AddDate(0, 0, day-1)
		dest := ranked[i].dest

		var slot TimeSlot
		if prefs.CrowdPreference == CrowdAvoid {
			slot = SelectSlot(dest, prefs, date)
		} else {
			slot = slotOrder[i%len(slotOrder)]
		}

		crowd := EstimateCrowd(dest, date, slot)
		if crowd == CrowdHigh {
			highCrowdCount++
		}

		travelMinutes := 0
		if i > 0 {
			travelMinutes = e.transferMinutes(cfg)
		}

		items = append(items, ItineraryItem{
			Destination:               dest,
			Day:                       day,
			Slot:                      slot,
			EstimatedCrowd:            crowd,
			TravelMinutesFromPrevious: travelMinutes,
			Tips:                      GenerateTips(dest, crowd, slot),
		})
		entryFees += dest.EntryFee
	}

	itinerary := &GeneratedItinerary{
		Items:       items,
		TotalDays:   totalDays,
		TotalBudget: entryFees + cfg.Budget.DailyExpense(prefs.Budget)*float64(totalDays),
	}
	if highCrowdCount > totalDays/2 {
		itinerary.CrowdAdvisory = advisoryCrowd
	}
	if weather != nil && weather.IsRaining {
		itinerary.WeatherAdvisory = advisoryWeather
	}
	return itinerary
}

// normalizePreferences pins dates to UTC midnight so weekday and month rules
// evaluate on the calendar day the caller named.
func normalizePreferences(prefs TripPreferences) TripPreferences {
	prefs.StartDate = midnightUTC(prefs.StartDate)
	prefs.EndDate = midnightUTC(prefs.EndDate)
	return prefs
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// tripDays returns the inclusive day count. An end date before the start
// collapses to a one-day trip; the upper bound is enforced by GeneratePlan.
func tripDays(prefs *TripPreferences) int {
	diff := prefs.EndDate.Sub(prefs.StartDate)
	days := int(math.Ceil(diff.Hours()/24)) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// transferMinutes returns the placeholder travel estimate between stops.
func (e *Engine) transferMinutes(cfg *Config) int {
	if cfg.Travel.FixedTransferMinutes > 0 {
		return cfg.Travel.FixedTransferMinutes
	}
	span := cfg.Travel.MaxTransferMinutes - cfg.Travel.MinTransferMinutes
	e.rngMu.Lock()
	n := e.rng.Intn(span)
	e.rngMu.Unlock()
	return cfg.Travel.MinTransferMinutes + n
}

// planCacheKey builds a deterministic cache key from every request field
// that affects the output, except the random transfer estimates.
func planCacheKey(prefs *TripPreferences, weather *Weather) string {
	var b strings.Builder
	b.WriteString(prefs.StartDate.Format("2006-01-02"))
	b.WriteByte('|')
	b.WriteString(prefs.EndDate.Format("2006-01-02"))
	b.WriteByte('|')

	interests := make([]string, len(prefs.Interests))
	for i, c := range prefs.Interests {
		interests[i] = c.String()
	}
	sort.Strings(interests)
	b.WriteString(strings.Join(interests, ","))

	fmt.Fprintf(&b, "|%s|%s|%s", prefs.Budget, prefs.CrowdPreference, prefs.TravelStyle)
	if weather != nil {
		fmt.Fprintf(&b, "|rain=%t|temp=%.1f", weather.IsRaining, weather.TemperatureC)
	}
	return b.String()
}

func (e *Engine) cacheGet(cfg *Config, key string) *GeneratedItinerary {
	if !cfg.Cache.Enabled {
		return nil
	}
	e.cacheMu.RLock()
	entry, ok := e.cache[key]
	e.cacheMu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	// Copies keep callers from mutating the cached itinerary.
	return entry.itinerary.clone()
}

func (e *Engine) cachePut(cfg *Config, key string, itinerary *GeneratedItinerary) {
	if !cfg.Cache.Enabled {
		return
	}
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if len(e.cache) >= cfg.Cache.MaxEntries {
		now := time.Now()
		for k, entry := range e.cache {
			if now.After(entry.expiresAt) {
				delete(e.cache, k)
			}
		}
		// Still full after expiry sweep: drop one arbitrary entry.
		if len(e.cache) >= cfg.Cache.MaxEntries {
			for k := range e.cache {
				delete(e.cache, k)
				break
			}
		}
	}

	// The stored copy is independent of the value handed to the caller.
	e.cache[key] = &cacheEntry{
		itinerary: itinerary.clone(),
		expiresAt: time.Now().Add(cfg.Cache.TTL),
	}
}

// ClearCache drops every cached itinerary.
func (e *Engine) ClearCache() {
	e.cacheMu.Lock()
	e.cache = make(map[string]*cacheEntry)
	e.cacheMu.Unlock()
}

func (e *Engine) cacheSize() int {
	e.cacheMu.RLock()
	defer e.cacheMu.RUnlock()
	return len(e.cache)
}

// GetStatus returns a health snapshot.
func (e *Engine) GetStatus() Status {
	return Status{
		Ready:         true,
		CacheSize:     e.cacheSize(),
		UptimeSeconds: time.Since(e.startTime).Seconds(),
	}
}

// GetMetrics returns the cumulative engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		PlansGenerated: e.plansGenerated.Load(),
		QuickRequests:  e.quickRequests.Load(),
		Errors:         e.errors.Load(),
		CacheHits:      e.cacheHits.Load(),
		CacheMisses:    e.cacheMisses.Load(),
		CacheSize:      e.cacheSize(),
	}
}

// GetConfig returns a copy of the active configuration.
func (e *Engine) GetConfig() *Config {
	return e.snapshotConfig().Clone()
}

// UpdateConfig atomically swaps the active configuration after validation.
// The itinerary cache is flushed because cached results were built with the
// old rule constants.
func (e *Engine) UpdateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid planner config: %w", err)
	}

	e.configMu.Lock()
	e.config = config.Clone()
	e.configMu.Unlock()

	e.ClearCache()
	e.logger.Info().Msg("planner configuration updated")
	return nil
}

func (e *Engine) snapshotConfig() *Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.config
}

func (e *Engine) nextRequestID(kind string) string {
	return fmt.Sprintf("%s-%d-%d", kind, time.Now().UnixMilli(), e.requestSeq.Add(1))
}
