// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

// Package models holds the wire types shared by the HTTP layer.
package models

import "time"

// APIResponse is the standard envelope for every HTTP endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"items": [...], "total_days": 3},
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z", "query_time_ms": 4}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "start_date must be YYYY-MM-DD"},
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
//
// QueryTimeMS is the server-side generation time; Cached marks responses
// served from the planner's itinerary cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the structured error body.
//
// Codes used by this service:
//   - VALIDATION_ERROR: invalid request parameters
//   - NOT_FOUND: unknown resource (destination, route)
//   - PLANNING_ERROR: itinerary generation failed
//   - CATALOG_ERROR: destination data unavailable
//   - RATE_LIMIT_EXCEEDED: client sent too many requests
//   - INTERNAL_ERROR: unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
	CatalogLoaded    bool    `json:"catalog_loaded"`
	DestinationCount int     `json:"destination_count"`
	EngineReady      bool    `json:"engine_ready"`
}
