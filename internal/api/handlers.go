// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"time"

	"github.com/kavinvel/yatra/internal/catalog"
	"github.com/kavinvel/yatra/internal/config"
	"github.com/kavinvel/yatra/internal/planner"
)

// Version is the reported service version.
const Version = "1.0.0"

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	engine    *planner.Engine
	catalog   *catalog.Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a handler with the given engine, catalog, and config.
func NewHandler(engine *planner.Engine, store *catalog.Store, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   store,
		config:    cfg,
		startTime: time.Now(),
	}
}

// defaultQuickLimit returns the configured default recommendation count.
func (h *Handler) defaultQuickLimit() int {
	if h.config != nil && h.config.API.DefaultPageSize > 0 {
		return h.config.API.DefaultPageSize
	}
	return 5
}
