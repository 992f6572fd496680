// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"net/http"
	"time"

	"github.com/kavinvel/yatra/internal/models"
)

// Health returns comprehensive health status including catalog state,
// engine readiness, and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	count := h.catalog.Count()
	engineReady := h.engine != nil

	status := "healthy"
	if count == 0 || !engineReady {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:           status,
		Version:          Version,
		UptimeSeconds:    time.Since(h.startTime).Seconds(),
		CatalogLoaded:    count > 0,
		DestinationCount: count,
		EngineReady:      engineReady,
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive is the liveness probe. Returns 200 OK whenever the process is
// alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady is the readiness probe. Returns 200 only when the catalog is
// loaded and the engine is available, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	count := h.catalog.Count()
	ready := count > 0 && h.engine != nil

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":             ready,
			"catalog_loaded":    count > 0,
			"destination_count": count,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
