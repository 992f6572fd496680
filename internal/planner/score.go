// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import "time"

// SeasonForDate returns the season a date falls in. Month boundaries follow
// the 0-indexed month arithmetic used throughout the rule tables:
// months 6-9 (Jul-Oct) are monsoon, months 10, 11, 0 and 1 (Nov-Feb) are
// winter, and everything else (Mar-Jun) is summer.
func SeasonForDate(date time.Time) Season {
	m := int(date.UTC().Month()) - 1
	switch {
	case m >= 6 && m <= 9:
		return SeasonMonsoon
	case m >= 10 || m <= 1:
		return SeasonWinter
	default:
		return SeasonSummer
	}
}

// ScoreDestination computes the additive relevance score of a destination
// for the given preferences, evaluated at the trip start date. Higher is
// better; scores are only meaningful relative to one another within a single
// candidate pool.
//
// Components, in evaluation order:
//   - interest match on the destination category;
//   - crowd-avoidance adjustment keyed by the morning-slot crowd estimate on
//     the start date (only when the preference is avoid);
//   - budget fit of the entry fee;
//   - rating scaled by the rating multiplier;
//   - season match against the start date's season.
func ScoreDestination(dest *Destination, prefs *TripPreferences, w ScoringWeights) float64 {
	var score float64

	if prefs.wantsCategory(dest.Category) {
		score += w.InterestBonus
	}

	if prefs.CrowdPreference == CrowdAvoid {
		switch EstimateCrowd(dest, prefs.StartDate, SlotMorning) {
		case CrowdLow:
			score += w.CrowdAvoidLow
		case CrowdMedium:
			score += w.CrowdAvoidMedium
		case CrowdHigh:
			score += w.CrowdAvoidHigh
		}
	}

	switch prefs.Budget {
	case BudgetLow:
		if dest.EntryFee <= w.BudgetLowMaxFee {
			score += w.BudgetLowBonus
		}
	case BudgetMedium:
		if dest.EntryFee <= w.BudgetMediumMaxFee {
			score += w.BudgetMediumBonus
		}
	case BudgetHigh:
		score += w.BudgetHighBonus
	}

	score += dest.Rating * w.RatingMultiplier

	if dest.BestSeason == SeasonAll || dest.BestSeason == SeasonForDate(prefs.StartDate) {
		score += w.SeasonBonus
	}

	return score
}
