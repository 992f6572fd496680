// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

// extremeHeatThresholdC is the temperature above which exposed outdoor
// destinations are dropped unless they are naturally cooler terrain.
const extremeHeatThresholdC = 35.0

// EligibleInWeather reports whether a destination stays in the candidate
// pool under the given weather. A nil weather value disables filtering.
//
// Two independent exclusions apply:
//   - rain removes every outdoor destination;
//   - extreme heat (above 35°C) removes outdoor destinations except hill
//     stations and nature reserves, which stay tolerable in the heat.
//
// Indoor destinations always pass both checks.
func EligibleInWeather(dest *Destination, weather *Weather) bool {
	if weather == nil || dest.Indoor {
		return true
	}
	if weather.IsRaining {
		return false
	}
	if weather.TemperatureC > extremeHeatThresholdC {
		return dest.Category == CategoryHillStation || dest.Category == CategoryNature
	}
	return true
}

// FilterByWeather returns the subset of destinations eligible under the
// given weather, preserving order. The input slice is not modified.
func FilterByWeather(dests []Destination, weather *Weather) []Destination {
	if weather == nil {
		return dests
	}
	eligible := make([]Destination, 0, len(dests))
	for _, d := range dests {
		if EligibleInWeather(&d, weather) {
			eligible = append(eligible, d)
		}
	}
	return eligible
}
