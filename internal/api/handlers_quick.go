// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"net/http"
	"time"

	"github.com/kavinvel/yatra/internal/metrics"
	"github.com/kavinvel/yatra/internal/models"
)

// Recommendations handles GET /api/v1/recommendations. It returns the
// top-rated destinations for a single category, optionally dropping
// high-crowd destinations when crowd_preference=avoid.
//
// Query parameters:
//   - category (required): destination category
//   - crowd_preference (optional): normal or avoid
//   - limit (optional): result cap, defaults from config
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	params := RecommendationsRequest{
		Category:        r.URL.Query().Get("category"),
		CrowdPreference: r.URL.Query().Get("crowd_preference"),
		Limit:           getIntParam(r, "limit", h.defaultQuickLimit()),
	}

	if apiErr := validateRequest(&params); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	req, err := params.ToQuickRequest()
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	start := time.Now()
	recommendations, err := h.engine.QuickRecommend(r.Context(), req)
	metrics.RecordQuickRequest(err)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "PLANNING_ERROR", "Failed to build recommendations", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"recommendations": recommendations,
			"count":           len(recommendations),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
