// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))

	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 12*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("active after inc = %v, want %v", got, base+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("active after dec = %v, want %v", got, base)
	}
}

func TestRecordPlanRequestOutcomes(t *testing.T) {
	successBefore := testutil.ToFloat64(PlanRequestsTotal.WithLabelValues("success"))
	errorBefore := testutil.ToFloat64(PlanRequestsTotal.WithLabelValues("error"))

	RecordPlanRequest(20*time.Millisecond, 6, nil)
	RecordPlanRequest(0, 0, errors.New("catalog unavailable"))

	if got := testutil.ToFloat64(PlanRequestsTotal.WithLabelValues("success")); got != successBefore+1 {
		t.Errorf("success count = %v, want %v", got, successBefore+1)
	}
	if got := testutil.ToFloat64(PlanRequestsTotal.WithLabelValues("error")); got != errorBefore+1 {
		t.Errorf("error count = %v, want %v", got, errorBefore+1)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	RecordCatalogLoad(12, nil)
	if got := testutil.ToFloat64(CatalogDestinations); got != 12 {
		t.Errorf("catalog_destinations = %v, want 12", got)
	}

	// A failed load must not disturb the size gauge.
	RecordCatalogLoad(0, errors.New("bad file"))
	if got := testutil.ToFloat64(CatalogDestinations); got != 12 {
		t.Errorf("catalog_destinations after failed load = %v, want 12", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	before := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("api"))
	RecordRateLimitHit("api")
	if got := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("api")); got != before+1 {
		t.Errorf("rate limit hits = %v, want %v", got, before+1)
	}
}
