// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package api

import (
	"fmt"
	"time"

	"github.com/kavinvel/yatra/internal/planner"
)

// isoDateLayout is the calendar date wire format for trip dates.
const isoDateLayout = "2006-01-02"

// WeatherDTO is the optional weather block of a plan request.
//
// Fields:
//   - IsRaining: rain flag; when true, outdoor destinations are excluded
//   - TemperatureC: ambient temperature in Celsius (-60 to 60)
type WeatherDTO struct {
	IsRaining    bool    `json:"is_raining"`
	TemperatureC float64 `json:"temperature_c" validate:"gte=-60,lte=60"`
}

// PlanRequestDTO is the validated request body for POST /itinerary.
//
// Enum fields accept their wire spellings and default when omitted:
// budget defaults to medium, crowd_preference to normal, and travel_style
// to relaxed.
type PlanRequestDTO struct {
	StartDate       string      `json:"start_date" validate:"required,isodate"`
	EndDate         string      `json:"end_date" validate:"required,isodate"`
	Interests       []string    `json:"interests" validate:"omitempty,dive,oneof=temple heritage nature beach hill_station food"`
	Budget          string      `json:"budget" validate:"omitempty,oneof=low medium high"`
	CrowdPreference string      `json:"crowd_preference" validate:"omitempty,oneof=normal avoid"`
	TravelStyle     string      `json:"travel_style" validate:"omitempty,oneof=relaxed packed"`
	Weather         *WeatherDTO `json:"weather,omitempty"`
}

// ToPlanRequest converts a validated DTO into the engine request type,
// applying defaults for omitted enum fields. Call only after validateRequest
// has passed.
func (dto *PlanRequestDTO) ToPlanRequest(requestID string) (planner.PlanRequest, error) {
	var req planner.PlanRequest

	start, err := time.ParseInLocation(isoDateLayout, dto.StartDate, time.UTC)
	if err != nil {
		return req, fmt.Errorf("parsing start_date: %w", err)
	}
	end, err := time.ParseInLocation(isoDateLayout, dto.EndDate, time.UTC)
	if err != nil {
		return req, fmt.Errorf("parsing end_date: %w", err)
	}

	prefs := planner.TripPreferences{
		StartDate:       start,
		EndDate:         end,
		Budget:          planner.BudgetMedium,
		CrowdPreference: planner.CrowdNormal,
		TravelStyle:     planner.StyleRelaxed,
	}

	for _, raw := range dto.Interests {
		category, err := planner.ParsePlaceCategory(raw)
		if err != nil {
			return req, fmt.Errorf("parsing interests: %w", err)
		}
		prefs.Interests = append(prefs.Interests, category)
	}

	if dto.Budget != "" {
		if prefs.Budget, err = planner.ParseBudgetTier(dto.Budget); err != nil {
			return req, fmt.Errorf("parsing budget: %w", err)
		}
	}
	if dto.CrowdPreference != "" {
		if prefs.CrowdPreference, err = planner.ParseCrowdPreference(dto.CrowdPreference); err != nil {
			return req, fmt.Errorf("parsing crowd_preference: %w", err)
		}
	}
	if dto.TravelStyle != "" {
		if prefs.TravelStyle, err = planner.ParseTravelStyle(dto.TravelStyle); err != nil {
			return req, fmt.Errorf("parsing travel_style: %w", err)
		}
	}

	req.Preferences = prefs
	req.RequestID = requestID
	if dto.Weather != nil {
		req.Weather = &planner.Weather{
			IsRaining:    dto.Weather.IsRaining,
			TemperatureC: dto.Weather.TemperatureC,
		}
	}
	return req, nil
}

// RecommendationsRequest is the validated query parameter set for
// GET /recommendations.
//
// Fields:
//   - Category: Required destination category
//   - CrowdPreference: Optional crowd preference (normal, avoid)
//   - Limit: Optional result cap (1-50, default from config)
type RecommendationsRequest struct {
	Category        string `validate:"required,oneof=temple heritage nature beach hill_station food"`
	CrowdPreference string `validate:"omitempty,oneof=normal avoid"`
	Limit           int    `validate:"omitempty,min=1,max=50"`
}

// ToQuickRequest converts validated query parameters into the engine request
// type. Call only after validateRequest has passed.
func (rr *RecommendationsRequest) ToQuickRequest() (planner.QuickRequest, error) {
	var req planner.QuickRequest

	category, err := planner.ParsePlaceCategory(rr.Category)
	if err != nil {
		return req, fmt.Errorf("parsing category: %w", err)
	}
	req.Category = category
	req.CrowdPreference = planner.CrowdNormal
	if rr.CrowdPreference != "" {
		if req.CrowdPreference, err = planner.ParseCrowdPreference(rr.CrowdPreference); err != nil {
			return req, fmt.Errorf("parsing crowd_preference: %w", err)
		}
	}
	req.Limit = rr.Limit
	return req, nil
}
