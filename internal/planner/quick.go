// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// QuickRecommend returns up to Limit destinations of one category, best
// rated first. Crowd is estimated for the reference date's morning slot;
// with an avoid preference, HIGH-crowd destinations are excluded entirely.
// No weather filtering or scoring applies on this path.
func (e *Engine) QuickRecommend(ctx context.Context, req QuickRequest) ([]Destination, error) {
	cfg := e.snapshotConfig()

	limit := req.Limit
	if limit <= 0 {
		limit = cfg.Limits.DefaultQuickLimit
	}
	if limit > cfg.Limits.MaxQuickLimit {
		limit = cfg.Limits.MaxQuickLimit
	}

	today := req.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	dests, err := e.catalog.Destinations(ctx)
	if err != nil {
		e.errors.Add(1)
		return nil, fmt.Errorf("loading destinations: %w", err)
	}

	matches := make([]Destination, 0, limit)
	for _, d := range dests {
		if d.Category != req.Category {
			continue
		}
		if req.CrowdPreference == CrowdAvoid &&
			EstimateCrowd(&d, today, SlotMorning) == CrowdHigh {
			continue
		}
		matches = append(matches, d)
	}

	// Stable so equally rated destinations keep catalog order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Rating > matches[j].Rating
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	e.quickRequests.Add(1)
	e.logger.Debug().
		Str("category", req.Category.String()).
		Int("results", len(matches)).
		Msg("quick recommendations generated")

	return matches, nil
}
