// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import "time"

// All calendar evaluation uses the UTC calendar. Dates arrive as bare
// YYYY-MM-DD values, which parse to UTC midnight; evaluating their weekday
// and month in any local zone would shift them across a day boundary.

// crowdFeatures are the precomputed date/slot facts the crowd rules match on.
type crowdFeatures struct {
	weekend  bool
	morning  bool
	evening  bool
	summer   bool
	festival bool
}

// EstimateCrowd returns the expected crowd level for a destination on the
// given date and time slot. Rules are evaluated per category in priority
// order; the first match wins and the destination's base level is the
// fallback. The festival override applies to temples only: a festival at a
// non-temple destination does not change its estimate.
func EstimateCrowd(dest *Destination, date time.Time, slot TimeSlot) CrowdLevel {
	date = date.UTC()
	weekday := date.Weekday()
	month := int(date.Month()) - 1 // 0-indexed, matching catalog month arithmetic

	f := crowdFeatures{
		weekend:  weekday == time.Saturday || weekday == time.Sunday,
		morning:  slot == SlotMorning,
		evening:  slot == SlotEvening,
		summer:   month >= 3 && month <= 5,
		festival: dest.HasFestivalOn(date.Format("2006-01-02")),
	}

	switch dest.Category {
	case CategoryTemple:
		return templeCrowd(dest, f)
	case CategoryBeach:
		return beachCrowd(dest, f)
	case CategoryHillStation:
		return hillStationCrowd(dest, f)
	case CategoryNature:
		return natureCrowd(dest, f)
	default:
		return dest.BaseCrowd
	}
}

func templeCrowd(dest *Destination, f crowdFeatures) CrowdLevel {
	switch {
	case f.festival:
		return CrowdHigh
	case f.weekend && f.morning:
		return CrowdHigh
	case f.weekend:
		return CrowdMedium
	case f.morning:
		return CrowdMedium
	default:
		return dest.BaseCrowd
	}
}

func beachCrowd(dest *Destination, f crowdFeatures) CrowdLevel {
	switch {
	case f.weekend && f.evening:
		return CrowdHigh
	case f.evening:
		return CrowdMedium
	default:
		return dest.BaseCrowd
	}
}

func hillStationCrowd(dest *Destination, f crowdFeatures) CrowdLevel {
	switch {
	case f.summer && f.weekend:
		return CrowdHigh
	case f.summer || f.weekend:
		return CrowdMedium
	default:
		return dest.BaseCrowd
	}
}

func natureCrowd(dest *Destination, f crowdFeatures) CrowdLevel {
	if !f.weekend {
		return CrowdLow
	}
	return dest.BaseCrowd
}
