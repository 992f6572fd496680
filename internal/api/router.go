// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kavinvel/yatra/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler *Handler
	chimw   *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware factory.
// A nil middleware factory uses the defaults.
func NewRouter(handler *Handler, chimw *ChiMiddleware) *Router {
	if chimw == nil {
		chimw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chimw: chimw}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chimw.CORS())                 // CORS must be global to handle OPTIONS preflight

	// Health endpoints get permissive rate limiting so monitoring tools can
	// poll frequently.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chimw.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Core API endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chimw.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/itinerary", router.handler.Itinerary)
		r.Get("/recommendations", router.handler.Recommendations)

		r.Get("/destinations", router.handler.Destinations)
		r.Get("/destinations/{id}", router.handler.DestinationByID)
		r.Get("/districts", router.handler.Districts)

		r.Route("/planner", func(r chi.Router) {
			r.Get("/status", router.handler.PlannerStatus)
			r.Get("/config", router.handler.PlannerConfigGet)
			r.Put("/config", router.handler.PlannerConfigUpdate)
		})
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
