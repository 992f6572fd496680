// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

// Tip copy. These strings are part of the API surface; changing them changes
// what clients render, so keep them stable.
const (
	tipTempleDress    = "Dress modestly - cover shoulders and knees"
	tipTempleFootwear = "Remove footwear before entering"
	tipTempleQueue    = "Expect 30-60 min queue time"
	tipBeachSunscreen = "Carry sunscreen and stay hydrated"
	tipBeachSwimming  = "Swimming advisories may apply - check with lifeguards"
	tipHillJacket     = "Carry light jacket - temperatures drop in evenings"
	tipHillBooking    = "Book accommodation in advance during peak season"
	tipLowCrowd       = "Great time to visit! Expect minimal queues"
)

// GenerateTips builds the ordered advisory list for a scheduled visit.
// Category-specific tips come first, then the crowd-level tip, so clients
// that show only the first entry get the most destination-specific advice.
func GenerateTips(dest *Destination, crowd CrowdLevel, slot TimeSlot) []string {
	var tips []string

	switch dest.Category {
	case CategoryTemple:
		tips = append(tips, tipTempleDress, tipTempleFootwear)
		if crowd == CrowdHigh {
			tips = append(tips, tipTempleQueue)
		}
	case CategoryBeach:
		if slot == SlotAfternoon {
			tips = append(tips, tipBeachSunscreen)
		}
		tips = append(tips, tipBeachSwimming)
	case CategoryHillStation, CategoryNature:
		tips = append(tips, tipHillJacket, tipHillBooking)
	}

	if crowd == CrowdLow {
		tips = append(tips, tipLowCrowd)
	}

	return tips
}
