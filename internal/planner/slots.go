// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import "time"

// SelectSlot picks the visiting time slot for a destination on a specific
// date.
//
// With a crowd-avoiding preference the slots are scanned in the fixed
// morning, afternoon, evening order: the first slot estimating LOW wins,
// then the first estimating MEDIUM, and only if every slot estimates HIGH
// does the popularity fallback apply. Avoidance can therefore still land on
// a HIGH slot when nothing better exists.
//
// Otherwise the destination's most popular slot is used, falling back to
// morning for destinations with no popularity data.
func SelectSlot(dest *Destination, prefs *TripPreferences, date time.Time) TimeSlot {
	if prefs.CrowdPreference == CrowdAvoid {
		for _, slot := range slotOrder {
			if EstimateCrowd(dest, date, slot) == CrowdLow {
				return slot
			}
		}
		for _, slot := range slotOrder {
			if EstimateCrowd(dest, date, slot) == CrowdMedium {
				return slot
			}
		}
	}
	if len(dest.PopularSlots) > 0 {
		return dest.PopularSlots[0]
	}
	return SlotMorning
}
