// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package services

import (
	"context"
	"time"

	"github.com/kavinvel/yatra/internal/logging"
)

// CatalogReloader matches the catalog store's file reload method.
type CatalogReloader interface {
	LoadFile(path string) error
	Count() int
}

// CatalogReloadService periodically re-reads a JSON catalog file so edits
// land without a restart. A failed reload keeps the previous catalog and
// is retried on the next tick, so the service itself never crashes on bad
// input.
type CatalogReloadService struct {
	store    CatalogReloader
	path     string
	interval time.Duration
	name     string
}

// NewCatalogReloadService creates a reload service for the given catalog
// file. Intervals below one second are raised to the one-minute default.
func NewCatalogReloadService(store CatalogReloader, path string, interval time.Duration) *CatalogReloadService {
	if interval < time.Second {
		interval = time.Minute
	}
	return &CatalogReloadService{
		store:    store,
		path:     path,
		interval: interval,
		name:     "catalog-reload",
	}
}

// Serve implements suture.Service. It reloads the catalog file on every
// tick until the context is canceled.
func (c *CatalogReloadService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.store.LoadFile(c.path); err != nil {
				logging.Warn().
					Str("component", c.name).
					Str("path", c.path).
					Err(err).
					Msg("Catalog reload failed, keeping previous catalog")
				continue
			}
			logging.Debug().
				Str("component", c.name).
				Str("path", c.path).
				Int("destinations", c.store.Count()).
				Msg("Catalog reloaded")
		}
	}
}

// String implements fmt.Stringer; suture uses it to name the service in logs.
func (c *CatalogReloadService) String() string {
	return c.name
}
