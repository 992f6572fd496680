// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/kavinvel/yatra/internal/logging"
	"github.com/kavinvel/yatra/internal/models"
	"github.com/kavinvel/yatra/internal/planner"
)

// PlannerStatus handles GET /api/v1/planner/status, returning engine
// readiness plus cumulative counters.
func (h *Handler) PlannerStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"status":  h.engine.GetStatus(),
			"metrics": h.engine.GetMetrics(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// PlannerConfigGet handles GET /api/v1/planner/config.
func (h *Handler) PlannerConfigGet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.engine.GetConfig(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// PlannerConfigUpdate handles PUT /api/v1/planner/config. The submitted
// config replaces the current one entirely and flushes the plan cache.
func (h *Handler) PlannerConfigUpdate(w http.ResponseWriter, r *http.Request) {
	var cfg planner.Config
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanRequestBody))
	if err := decoder.Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON request body", err)
		return
	}

	if err := h.engine.UpdateConfig(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	logging.Ctx(r.Context()).Info().Msg("Planner configuration updated")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   h.engine.GetConfig(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
