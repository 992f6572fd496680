// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kavinvel/yatra/internal/models"
	"github.com/kavinvel/yatra/internal/planner"
)

// Destinations handles GET /api/v1/destinations. Supports optional
// category and district query filters.
func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	var category *planner.PlaceCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := planner.ParsePlaceCategory(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		category = &parsed
	}
	district := r.URL.Query().Get("district")

	dests := h.catalog.Filter(category, district)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"destinations": dests,
			"count":        len(dests),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// DestinationByID handles GET /api/v1/destinations/{id}.
func (h *Handler) DestinationByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dest, ok := h.catalog.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown destination: "+sanitizeLogValue(id), nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   dest,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Districts handles GET /api/v1/districts, returning the sorted list of
// districts present in the catalog.
func (h *Handler) Districts(w http.ResponseWriter, r *http.Request) {
	districts := h.catalog.Districts()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"districts": districts,
			"count":     len(districts),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
