// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

// Package catalog owns the destination data the planner draws from.
//
// The store loads a JSON catalog file (or the built-in Tamil Nadu sample
// set) into memory at startup and serves read-only views of it. Reload
// swaps the whole set atomically, so in-flight planning requests keep a
// consistent snapshot.
package catalog

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/kavinvel/yatra/internal/planner"
)

// Store is an in-memory destination catalog. Safe for concurrent use.
// It implements planner.CatalogProvider.
type Store struct {
	mu     sync.RWMutex
	dests  []planner.Destination
	byID   map[string]int
	logger zerolog.Logger
}

// NewStore creates an empty store. Call LoadFile or LoadSample before
// serving requests.
//
//nolint:gocritic // hugeParam: zerolog loggers are passed by value by convention
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		byID:   make(map[string]int),
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// LoadSample installs the built-in Tamil Nadu destination set.
func (s *Store) LoadSample() {
	s.install(sampleDestinations())
	s.logger.Info().Int("destinations", s.Count()).Msg("sample catalog loaded")
}

// LoadFile reads and validates a JSON catalog file, replacing the current
// set on success. On failure the previous set is kept.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	var dests []planner.Destination
	if err := json.Unmarshal(data, &dests); err != nil {
		return fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	if err := validate(dests); err != nil {
		return fmt.Errorf("invalid catalog file %s: %w", path, err)
	}

	s.install(dests)
	s.logger.Info().
		Str("path", path).
		Int("destinations", len(dests)).
		Msg("catalog file loaded")
	return nil
}

// install swaps in a new destination set.
func (s *Store) install(dests []planner.Destination) {
	byID := make(map[string]int, len(dests))
	for i := range dests {
		byID[dests[i].ID] = i
	}

	s.mu.Lock()
	s.dests = dests
	s.byID = byID
	s.mu.Unlock()
}

// validate applies the catalog-boundary checks. Enum fields are already
// validated during JSON decoding by the planner types themselves.
func validate(dests []planner.Destination) error {
	seen := make(map[string]struct{}, len(dests))
	for i := range dests {
		d := &dests[i]
		if d.ID == "" {
			return fmt.Errorf("destination %d: missing id", i)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("destination %d: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = struct{}{}
		if d.Name == "" {
			return fmt.Errorf("destination %q: missing name", d.ID)
		}
		if d.Rating < 0 || d.Rating > 5 {
			return fmt.Errorf("destination %q: rating %v out of range [0, 5]", d.ID, d.Rating)
		}
		if d.EntryFee < 0 {
			return fmt.Errorf("destination %q: negative entry fee %v", d.ID, d.EntryFee)
		}
		if d.VisitDurationHours < 0 {
			return fmt.Errorf("destination %q: negative visit duration %v", d.ID, d.VisitDurationHours)
		}
		for _, fd := range d.FestivalDates {
			if !isISODate(fd) {
				return fmt.Errorf("destination %q: festival date %q is not YYYY-MM-DD", d.ID, fd)
			}
		}
	}
	return nil
}

func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Destinations returns the full catalog in stable order. The returned slice
// must not be mutated; it is shared across callers until the next reload.
func (s *Store) Destinations(_ context.Context) ([]planner.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dests, nil
}

// ByID returns the destination with the given ID.
func (s *Store) ByID(id string) (*planner.Destination, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.dests[i], true
}

// Filter returns destinations matching the optional category and district
// filters, preserving catalog order. District matching is case-insensitive.
func (s *Store) Filter(category *planner.PlaceCategory, district string) []planner.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]planner.Destination, 0, len(s.dests))
	for _, d := range s.dests {
		if category != nil && d.Category != *category {
			continue
		}
		if district != "" && !strings.EqualFold(d.District, district) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Districts returns the sorted set of distinct districts in the catalog.
func (s *Store) Districts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, d := range s.dests {
		seen[d.District] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for district := range seen {
		out = append(out, district)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of destinations currently loaded.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dests)
}
