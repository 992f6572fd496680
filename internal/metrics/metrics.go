// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

// Package metrics registers the Prometheus instrumentation for the service:
// API latency and throughput, planner outcomes, itinerary cache efficiency
// and catalog size. Everything is registered on the default registry and
// exposed at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Planner metrics.
	PlanRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_plan_requests_total",
			Help: "Total number of itinerary generation requests",
		},
		[]string{"outcome"}, // "success", "error"
	)

	PlanGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_plan_generation_duration_seconds",
			Help:    "Duration of itinerary generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PlanItemsScheduled = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_plan_items_scheduled",
			Help:    "Number of destinations scheduled per generated itinerary",
			Buckets: []float64{0, 2, 4, 6, 9, 12, 18, 30, 60, 90},
		},
	)

	QuickRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_quick_requests_total",
			Help: "Total number of quick recommendation requests",
		},
		[]string{"outcome"},
	)

	// Itinerary cache metrics.
	PlanCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_cache_hits_total",
			Help: "Total number of itinerary cache hits",
		},
	)

	PlanCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "planner_cache_misses_total",
			Help: "Total number of itinerary cache misses",
		},
	)

	// Catalog metrics.
	CatalogDestinations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_destinations",
			Help: "Number of destinations currently loaded in the catalog",
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"outcome"},
	)

	// System metrics.
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPlanRequest records one itinerary generation attempt.
func RecordPlanRequest(duration time.Duration, items int, err error) {
	if err != nil {
		PlanRequestsTotal.WithLabelValues("error").Inc()
		return
	}
	PlanRequestsTotal.WithLabelValues("success").Inc()
	PlanGenerationDuration.Observe(duration.Seconds())
	PlanItemsScheduled.Observe(float64(items))
}

// RecordQuickRequest records one quick recommendation attempt.
func RecordQuickRequest(err error) {
	if err != nil {
		QuickRequestsTotal.WithLabelValues("error").Inc()
		return
	}
	QuickRequestsTotal.WithLabelValues("success").Inc()
}

// RecordCatalogLoad records a catalog load attempt and, on success, the
// resulting catalog size.
func RecordCatalogLoad(count int, err error) {
	if err != nil {
		CatalogLoads.WithLabelValues("error").Inc()
		return
	}
	CatalogLoads.WithLabelValues("success").Inc()
	CatalogDestinations.Set(float64(count))
}

// RecordRateLimitHit records a rejected request on the given endpoint group.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
