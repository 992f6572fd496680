// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/kavinvel/yatra/internal/logging"
	"github.com/kavinvel/yatra/internal/metrics"
	"github.com/kavinvel/yatra/internal/middleware"
	"github.com/kavinvel/yatra/internal/models"
	"github.com/kavinvel/yatra/internal/planner"
)

// maxPlanRequestBody caps the POST /itinerary body size.
const maxPlanRequestBody = 64 << 10 // 64 KiB

// Itinerary handles POST /api/v1/itinerary. It validates the request body,
// runs the planning engine, and returns the generated itinerary.
func (h *Handler) Itinerary(w http.ResponseWriter, r *http.Request) {
	var dto PlanRequestDTO
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanRequestBody))
	if err := decoder.Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON request body", err)
		return
	}

	if apiErr := validateRequest(&dto); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	req, err := dto.ToPlanRequest(middleware.GetRequestID(r.Context()))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	start := time.Now()
	itinerary, err := h.engine.GeneratePlan(r.Context(), req)
	items := 0
	if itinerary != nil {
		items = len(itinerary.Items)
	}
	metrics.RecordPlanRequest(time.Since(start), items, err)

	if err != nil {
		if errors.Is(err, planner.ErrTripTooLong) {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "PLANNING_ERROR", "Failed to generate itinerary", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("items", items).
		Int("total_days", itinerary.TotalDays).
		Float64("total_budget", itinerary.TotalBudget).
		Msg("Itinerary generated")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   itinerary,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
