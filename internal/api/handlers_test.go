// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/kavinvel/yatra/internal/catalog"
	"github.com/kavinvel/yatra/internal/config"
	"github.com/kavinvel/yatra/internal/models"
	"github.com/kavinvel/yatra/internal/planner"
)

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := catalog.NewStore(zerolog.Nop())
	store.LoadSample()

	plannerCfg := planner.DefaultConfig()
	plannerCfg.Seed = 42
	plannerCfg.Travel.FixedTransferMinutes = 45

	engine, err := planner.New(plannerCfg, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}

	cfg := &config.Config{}
	cfg.API.DefaultPageSize = 5
	cfg.API.MaxPageSize = 50

	handler := NewHandler(engine, store, cfg)
	return NewRouter(handler, NewChiMiddleware(nil)).Setup()
}

func doRequest(t *testing.T, srv http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding response envelope: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", rec.Code)
	}
	var health models.HealthStatus
	if err := json.Unmarshal(env.Data, &health); err != nil {
		t.Fatalf("decoding health data: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("health status = %q, want healthy", health.Status)
	}
	if !health.CatalogLoaded || health.DestinationCount == 0 {
		t.Errorf("catalog not reported loaded: %+v", health)
	}
	if !health.EngineReady {
		t.Error("engine not reported ready")
	}

	rec, _ = doRequest(t, srv, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/live status = %d, want 200", rec.Code)
	}

	rec, _ = doRequest(t, srv, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /health/ready status = %d, want 200", rec.Code)
	}
}

func TestHealthReadyEmptyCatalog(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(zerolog.Nop())
	engine, err := planner.New(nil, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}
	handler := NewHandler(engine, store, nil)
	srv := NewRouter(handler, nil).Setup()

	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /health/ready status = %d, want 503", rec.Code)
	}
}

func TestItineraryGeneration(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	body := `{
		"start_date": "2024-04-13",
		"end_date": "2024-04-15",
		"interests": ["temple", "beach"],
		"budget": "medium",
		"crowd_preference": "normal",
		"travel_style": "relaxed"
	}`
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/itinerary", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /itinerary status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Fatalf("envelope status = %q, want success", env.Status)
	}

	var itinerary planner.GeneratedItinerary
	if err := json.Unmarshal(env.Data, &itinerary); err != nil {
		t.Fatalf("decoding itinerary: %v", err)
	}
	if itinerary.TotalDays != 3 {
		t.Errorf("TotalDays = %d, want 3", itinerary.TotalDays)
	}
	if len(itinerary.Items) == 0 {
		t.Fatal("itinerary has no items")
	}
	if itinerary.TotalBudget <= 0 {
		t.Errorf("TotalBudget = %.2f, want positive", itinerary.TotalBudget)
	}
}

func TestItineraryDefaultsApplied(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// Omitted enums default to medium/normal/relaxed.
	body := `{"start_date": "2024-04-13", "end_date": "2024-04-13"}`
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/itinerary", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /itinerary status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var itinerary planner.GeneratedItinerary
	if err := json.Unmarshal(env.Data, &itinerary); err != nil {
		t.Fatalf("decoding itinerary: %v", err)
	}
	if itinerary.TotalDays != 1 {
		t.Errorf("TotalDays = %d, want 1", itinerary.TotalDays)
	}
	// Relaxed style schedules at most two visits on a single day.
	if len(itinerary.Items) > 2 {
		t.Errorf("items = %d, want at most 2 for relaxed single-day trip", len(itinerary.Items))
	}
}

func TestItineraryValidation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing start date", `{"end_date": "2024-04-15"}`},
		{"malformed date", `{"start_date": "13-04-2024", "end_date": "2024-04-15"}`},
		{"unknown interest", `{"start_date": "2024-04-13", "end_date": "2024-04-15", "interests": ["casino"]}`},
		{"unknown budget", `{"start_date": "2024-04-13", "end_date": "2024-04-15", "budget": "luxury"}`},
		{"extreme temperature", `{"start_date": "2024-04-13", "end_date": "2024-04-15", "weather": {"temperature_c": 120}}`},
		{"not json", `planning please`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/itinerary", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400\nbody: %s", rec.Code, rec.Body.String())
			}
			if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
			}
		})
	}
}

func TestItineraryRejectsOverlongTrip(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// 61 inclusive days against the default 30-day limit.
	body := `{"start_date": "2024-01-01", "end_date": "2024-03-01", "budget": "low"}`
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/itinerary", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\nbody: %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
	if !strings.Contains(env.Error.Message, "61 days") {
		t.Errorf("error message %q does not name the requested length", env.Error.Message)
	}
}

func TestItineraryWeatherAdvisory(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	body := `{
		"start_date": "2024-04-13",
		"end_date": "2024-04-14",
		"weather": {"is_raining": true, "temperature_c": 28}
	}`
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/itinerary", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /itinerary status = %d, want 200", rec.Code)
	}

	var itinerary planner.GeneratedItinerary
	if err := json.Unmarshal(env.Data, &itinerary); err != nil {
		t.Fatalf("decoding itinerary: %v", err)
	}
	if itinerary.WeatherAdvisory == "" {
		t.Error("expected weather advisory when raining")
	}
	for _, item := range itinerary.Items {
		if !item.Destination.Indoor {
			t.Errorf("outdoor destination %s scheduled in rain", item.Destination.ID)
		}
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?category=temple", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /recommendations status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var data struct {
		Recommendations []planner.Destination `json:"recommendations"`
		Count           int                   `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding recommendations: %v", err)
	}
	if data.Count == 0 || len(data.Recommendations) != data.Count {
		t.Fatalf("count = %d with %d items", data.Count, len(data.Recommendations))
	}
	for _, dest := range data.Recommendations {
		if dest.Category != planner.CategoryTemple {
			t.Errorf("destination %s category = %s, want temple", dest.ID, dest.Category)
		}
	}
	// Rating-descending order.
	for i := 1; i < len(data.Recommendations); i++ {
		if data.Recommendations[i].Rating > data.Recommendations[i-1].Rating {
			t.Errorf("recommendations not sorted by rating at index %d", i)
		}
	}
}

func TestRecommendationsValidation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"missing category", "/api/v1/recommendations"},
		{"unknown category", "/api/v1/recommendations?category=mall"},
		{"limit above cap", "/api/v1/recommendations?category=temple&limit=500"},
		{"bad crowd preference", "/api/v1/recommendations?category=temple&crowd_preference=sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400\nbody: %s", rec.Code, rec.Body.String())
			}
			if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
			}
		})
	}
}

func TestDestinations(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/destinations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /destinations status = %d, want 200", rec.Code)
	}
	var data struct {
		Destinations []planner.Destination `json:"destinations"`
		Count        int                   `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding destinations: %v", err)
	}
	if data.Count != 12 {
		t.Errorf("count = %d, want 12", data.Count)
	}

	rec, env = doRequest(t, srv, http.MethodGet, "/api/v1/destinations?category=beach", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered status = %d, want 200", rec.Code)
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding filtered destinations: %v", err)
	}
	for _, dest := range data.Destinations {
		if dest.Category != planner.CategoryBeach {
			t.Errorf("destination %s category = %s, want beach", dest.ID, dest.Category)
		}
	}

	rec, _ = doRequest(t, srv, http.MethodGet, "/api/v1/destinations?category=volcano", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown category status = %d, want 400", rec.Code)
	}
}

func TestDestinationByID(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/destinations/marina-beach", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dest planner.Destination
	if err := json.Unmarshal(env.Data, &dest); err != nil {
		t.Fatalf("decoding destination: %v", err)
	}
	if dest.ID != "marina-beach" {
		t.Errorf("id = %q, want marina-beach", dest.ID)
	}

	rec, env = doRequest(t, srv, http.MethodGet, "/api/v1/destinations/atlantis", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}
}

func TestDistricts(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/districts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data struct {
		Districts []string `json:"districts"`
		Count     int      `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding districts: %v", err)
	}
	if data.Count == 0 {
		t.Fatal("no districts returned")
	}
	for i := 1; i < len(data.Districts); i++ {
		if data.Districts[i] < data.Districts[i-1] {
			t.Errorf("districts not sorted at index %d", i)
		}
	}
}

func TestPlannerStatusAndConfig(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/planner/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /planner/status = %d, want 200", rec.Code)
	}
	var status struct {
		Status  planner.Status  `json:"status"`
		Metrics planner.Metrics `json:"metrics"`
	}
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if !status.Status.Ready {
		t.Error("engine not reported ready")
	}

	rec, env = doRequest(t, srv, http.MethodGet, "/api/v1/planner/config", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /planner/config = %d, want 200", rec.Code)
	}
	var cfg planner.Config
	if err := json.Unmarshal(env.Data, &cfg); err != nil {
		t.Fatalf("decoding config: %v", err)
	}
	if cfg.Travel.FixedTransferMinutes != 45 {
		t.Errorf("FixedTransferMinutes = %d, want 45", cfg.Travel.FixedTransferMinutes)
	}
}

func TestPlannerConfigUpdate(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	updated := planner.DefaultConfig()
	updated.Travel.FixedTransferMinutes = 60
	body, err := json.Marshal(updated)
	if err != nil {
		t.Fatalf("marshaling config: %v", err)
	}

	rec, _ := doRequest(t, srv, http.MethodPut, "/api/v1/planner/config", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /planner/config = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/planner/config", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /planner/config = %d, want 200", rec.Code)
	}
	var cfg planner.Config
	if err := json.Unmarshal(env.Data, &cfg); err != nil {
		t.Fatalf("decoding config: %v", err)
	}
	if cfg.Travel.FixedTransferMinutes != 60 {
		t.Errorf("FixedTransferMinutes = %d, want 60 after update", cfg.Travel.FixedTransferMinutes)
	}

	// Inconsistent configs are rejected.
	broken := planner.DefaultConfig()
	broken.Pacing.RelaxedPerDay = 0
	body, err = json.Marshal(broken)
	if err != nil {
		t.Fatalf("marshaling config: %v", err)
	}
	rec, env = doRequest(t, srv, http.MethodPut, "/api/v1/planner/config", string(body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("PUT invalid config = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/districts", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/districts", nil)
	req.Header.Set("X-Request-ID", "trip-trace-7")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "trip-trace-7" {
		t.Errorf("X-Request-ID = %q, want caller-provided trip-trace-7", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_active_requests") {
		t.Error("metrics output missing api_active_requests gauge")
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/districts", "")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("response missing ETag header")
	}
}
