// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Note: This package has no dependencies on other internal packages to keep
// the engine self-contained. The CatalogProvider interface allows integration
// with the catalog package without creating circular imports.

// PlaceCategory classifies a destination into one of the closed set of
// tourism categories the rule engine knows about.
type PlaceCategory int

const (
	// CategoryTemple covers active places of worship.
	CategoryTemple PlaceCategory = iota
	// CategoryHeritage covers monuments, forts and archaeological sites.
	CategoryHeritage
	// CategoryNature covers wildlife sanctuaries and national parks.
	CategoryNature
	// CategoryBeach covers coastal destinations.
	CategoryBeach
	// CategoryHillStation covers high-altitude retreats.
	CategoryHillStation
	// CategoryFood covers culinary destinations (markets, food streets).
	CategoryFood
)

// String returns the catalog wire form of the category.
func (c PlaceCategory) String() string {
	switch c {
	case CategoryTemple:
		return "temple"
	case CategoryHeritage:
		return "heritage"
	case CategoryNature:
		return "nature"
	case CategoryBeach:
		return "beach"
	case CategoryHillStation:
		return "hill_station"
	case CategoryFood:
		return "food"
	default:
		return "unknown"
	}
}

// ParsePlaceCategory converts a catalog string into a PlaceCategory.
func ParsePlaceCategory(s string) (PlaceCategory, error) {
	switch s {
	case "temple":
		return CategoryTemple, nil
	case "heritage":
		return CategoryHeritage, nil
	case "nature":
		return CategoryNature, nil
	case "beach":
		return CategoryBeach, nil
	case "hill_station":
		return CategoryHillStation, nil
	case "food":
		return CategoryFood, nil
	default:
		return 0, fmt.Errorf("unknown place category %q", s)
	}
}

// MarshalJSON encodes the category as its catalog string form.
func (c PlaceCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes the category from its catalog string form.
func (c *PlaceCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePlaceCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CrowdLevel is a categorical estimate of expected visitor density.
type CrowdLevel int

const (
	// CrowdLow indicates minimal queues and easy access.
	CrowdLow CrowdLevel = iota
	// CrowdMedium indicates moderate visitor density.
	CrowdMedium
	// CrowdHigh indicates peak-season or festival density.
	CrowdHigh
)

// String returns the catalog wire form of the crowd level.
func (l CrowdLevel) String() string {
	switch l {
	case CrowdLow:
		return "LOW"
	case CrowdMedium:
		return "MEDIUM"
	case CrowdHigh:
		return "HIGH"
	default:
		return "unknown"
	}
}

// ParseCrowdLevel converts a catalog string into a CrowdLevel.
func ParseCrowdLevel(s string) (CrowdLevel, error) {
	switch s {
	case "LOW":
		return CrowdLow, nil
	case "MEDIUM":
		return CrowdMedium, nil
	case "HIGH":
		return CrowdHigh, nil
	default:
		return 0, fmt.Errorf("unknown crowd level %q", s)
	}
}

// MarshalJSON encodes the crowd level as its catalog string form.
func (l CrowdLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes the crowd level from its catalog string form.
func (l *CrowdLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCrowdLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// TimeSlot is one of the three fixed day partitions visits are scheduled into.
type TimeSlot int

const (
	// SlotMorning is the opening-to-noon window.
	SlotMorning TimeSlot = iota
	// SlotAfternoon is the noon-to-dusk window.
	SlotAfternoon
	// SlotEvening is the dusk-to-closing window.
	SlotEvening
)

// slotOrder is the fixed evaluation and assignment order for time slots.
var slotOrder = [3]TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// String returns the catalog wire form of the time slot.
func (s TimeSlot) String() string {
	switch s {
	case SlotMorning:
		return "morning"
	case SlotAfternoon:
		return "afternoon"
	case SlotEvening:
		return "evening"
	default:
		return "unknown"
	}
}

// ParseTimeSlot converts a catalog string into a TimeSlot.
func ParseTimeSlot(s string) (TimeSlot, error) {
	switch s {
	case "morning":
		return SlotMorning, nil
	case "afternoon":
		return SlotAfternoon, nil
	case "evening":
		return SlotEvening, nil
	default:
		return 0, fmt.Errorf("unknown time slot %q", s)
	}
}

// MarshalJSON encodes the time slot as its catalog string form.
func (s TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the time slot from its catalog string form.
func (s *TimeSlot) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTimeSlot(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Season tags a destination with the part of the year it shows best in.
type Season int

const (
	// SeasonSummer is March through June.
	SeasonSummer Season = iota
	// SeasonMonsoon is July through October.
	SeasonMonsoon
	// SeasonWinter is November through February.
	SeasonWinter
	// SeasonAll marks destinations that are attractive year-round.
	SeasonAll
)

// String returns the catalog wire form of the season.
func (s Season) String() string {
	switch s {
	case SeasonSummer:
		return "summer"
	case SeasonMonsoon:
		return "monsoon"
	case SeasonWinter:
		return "winter"
	case SeasonAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseSeason converts a catalog string into a Season.
func ParseSeason(s string) (Season, error) {
	switch s {
	case "summer":
		return SeasonSummer, nil
	case "monsoon":
		return SeasonMonsoon, nil
	case "winter":
		return SeasonWinter, nil
	case "all":
		return SeasonAll, nil
	default:
		return 0, fmt.Errorf("unknown season %q", s)
	}
}

// MarshalJSON encodes the season as its catalog string form.
func (s Season) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the season from its catalog string form.
func (s *Season) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSeason(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// BudgetTier is the traveler's spending appetite.
type BudgetTier int

const (
	// BudgetLow favors free and cheap entry destinations.
	BudgetLow BudgetTier = iota
	// BudgetMedium tolerates moderate entry fees.
	BudgetMedium
	// BudgetHigh ignores entry fees entirely.
	BudgetHigh
)

// String returns the wire form of the budget tier.
func (b BudgetTier) String() string {
	switch b {
	case BudgetLow:
		return "low"
	case BudgetMedium:
		return "medium"
	case BudgetHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseBudgetTier converts a wire string into a BudgetTier.
func ParseBudgetTier(s string) (BudgetTier, error) {
	switch s {
	case "low":
		return BudgetLow, nil
	case "medium":
		return BudgetMedium, nil
	case "high":
		return BudgetHigh, nil
	default:
		return 0, fmt.Errorf("unknown budget tier %q", s)
	}
}

// MarshalJSON encodes the budget tier as its wire string form.
func (b BudgetTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes the budget tier from its wire string form.
func (b *BudgetTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBudgetTier(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// CrowdPreference is whether scheduling actively steers away from crowds.
type CrowdPreference int

const (
	// CrowdNormal ignores crowd levels when choosing slots.
	CrowdNormal CrowdPreference = iota
	// CrowdAvoid prefers low-crowd destinations and slots.
	CrowdAvoid
)

// String returns the wire form of the crowd preference.
func (p CrowdPreference) String() string {
	switch p {
	case CrowdNormal:
		return "normal"
	case CrowdAvoid:
		return "avoid"
	default:
		return "unknown"
	}
}

// ParseCrowdPreference converts a wire string into a CrowdPreference.
func ParseCrowdPreference(s string) (CrowdPreference, error) {
	switch s {
	case "normal":
		return CrowdNormal, nil
	case "avoid":
		return CrowdAvoid, nil
	default:
		return 0, fmt.Errorf("unknown crowd preference %q", s)
	}
}

// MarshalJSON encodes the crowd preference as its wire string form.
func (p CrowdPreference) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes the crowd preference from its wire string form.
func (p *CrowdPreference) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCrowdPreference(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// TravelStyle is the pacing knob controlling visits per day.
type TravelStyle int

const (
	// StyleRelaxed schedules two destinations per day.
	StyleRelaxed TravelStyle = iota
	// StylePacked schedules three destinations per day.
	StylePacked
)

// String returns the wire form of the travel style.
func (t TravelStyle) String() string {
	switch t {
	case StyleRelaxed:
		return "relaxed"
	case StylePacked:
		return "packed"
	default:
		return "unknown"
	}
}

// ParseTravelStyle converts a wire string into a TravelStyle.
func ParseTravelStyle(s string) (TravelStyle, error) {
	switch s {
	case "relaxed":
		return StyleRelaxed, nil
	case "packed":
		return StylePacked, nil
	default:
		return 0, fmt.Errorf("unknown travel style %q", s)
	}
}

// MarshalJSON encodes the travel style as its wire string form.
func (t TravelStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the travel style from its wire string form.
func (t *TravelStyle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTravelStyle(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Coordinates is a WGS84 point for map rendering.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Timings is a destination's daily opening window as HH:MM local strings.
type Timings struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Destination is one immutable catalog record. The catalog owns these values;
// the engine only reads them and attaches them by reference to itinerary items.
type Destination struct {
	// ID is the catalog-unique identifier (slug).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Category is the destination's tourism category.
	Category PlaceCategory `json:"category"`

	// District is the administrative district label.
	District string `json:"district"`

	// Description is presentation copy for UI cards.
	Description string `json:"description,omitempty"`

	// BaseCrowd is the crowd level assumed when no rule fires.
	BaseCrowd CrowdLevel `json:"base_crowd_level"`

	// Indoor marks destinations shielded from rain and heat.
	Indoor bool `json:"is_indoor"`

	// BestSeason is when the destination shows best.
	BestSeason Season `json:"best_season"`

	// EntryFee is the per-person entry fee in rupees.
	EntryFee float64 `json:"entry_fee"`

	// Rating is the aggregate visitor rating (0.0-5.0).
	Rating float64 `json:"rating"`

	// VisitDurationHours is the typical visit length.
	VisitDurationHours float64 `json:"visit_duration_hours"`

	// Coordinates is the map location, if known.
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	// Timings is the daily opening window.
	Timings Timings `json:"timings"`

	// PopularSlots lists the destination's popular time slots, most popular first.
	PopularSlots []TimeSlot `json:"popular_time_slots"`

	// FestivalDates lists ISO dates (YYYY-MM-DD) with exceptional crowds.
	FestivalDates []string `json:"festival_dates,omitempty"`

	// Amenities lists on-site facilities for UI display.
	Amenities []string `json:"amenities,omitempty"`
}

// HasFestivalOn reports whether the ISO date string is a festival date.
func (d *Destination) HasFestivalOn(isoDate string) bool {
	for _, fd := range d.FestivalDates {
		if fd == isoDate {
			return true
		}
	}
	return false
}

// Weather is the optional static weather signal supplied by the caller.
// It is never fetched by the engine.
type Weather struct {
	IsRaining    bool    `json:"is_raining"`
	TemperatureC float64 `json:"temperature_c"`
}

// TripPreferences captures one planning request's traveler inputs.
// A fresh value is supplied per request; the engine never retains it.
type TripPreferences struct {
	// StartDate is the first trip day (UTC midnight).
	StartDate time.Time `json:"start_date"`

	// EndDate is the last trip day, inclusive. An end before the start is
	// normalized to a single-day trip rather than rejected.
	EndDate time.Time `json:"end_date"`

	// Interests is the set of preferred categories. May be empty.
	Interests []PlaceCategory `json:"interests"`

	// Budget is the traveler's spending tier.
	Budget BudgetTier `json:"budget"`

	// CrowdPreference steers slot selection when set to avoid.
	CrowdPreference CrowdPreference `json:"crowd_preference"`

	// TravelStyle controls how many destinations are scheduled per day.
	TravelStyle TravelStyle `json:"travel_style"`
}

// wantsCategory reports whether the category is in the interest set.
func (p *TripPreferences) wantsCategory(c PlaceCategory) bool {
	for _, interest := range p.Interests {
		if interest == c {
			return true
		}
	}
	return false
}

// ItineraryItem is one scheduled visit inside a generated itinerary.
// Items are immutable once the itinerary is assembled; any "remove from my
// trip" editing belongs to the consuming UI's own state, not to this value.
type ItineraryItem struct {
	// Destination is a read-only reference into the shared catalog.
	Destination *Destination `json:"destination"`

	// Day is the 1-based trip day the visit is scheduled on.
	Day int `json:"day"`

	// Slot is the assigned time slot.
	Slot TimeSlot `json:"time_slot"`

	// EstimatedCrowd is the rule-engine crowd estimate for (destination,
	// date, slot).
	EstimatedCrowd CrowdLevel `json:"estimated_crowd"`

	// TravelMinutesFromPrevious is a placeholder transfer estimate.
	// Zero on the first stop of the itinerary.
	TravelMinutesFromPrevious int `json:"travel_minutes_from_previous,omitempty"`

	// Tips is the ordered advisory list; the first entry is the headline tip.
	Tips []string `json:"tips"`
}

// GeneratedItinerary is the single immutable value produced per planning run.
// A repeat call builds an entirely new value; there is no incremental update.
type GeneratedItinerary struct {
	Items       []ItineraryItem `json:"items"`
	TotalDays   int             `json:"total_days"`
	TotalBudget float64         `json:"total_budget"`

	// WeatherAdvisory is set only when the supplied weather reports rain.
	WeatherAdvisory string `json:"weather_advisory,omitempty"`

	// CrowdAdvisory is set only when more than half the trip's days worth of
	// items estimate HIGH crowd.
	CrowdAdvisory string `json:"crowd_advisory,omitempty"`
}

// clone returns an independent copy of the itinerary. Destination pointers
// still reference the shared read-only catalog entries.
func (g *GeneratedItinerary) clone() *GeneratedItinerary {
	out := *g
	out.Items = make([]ItineraryItem, len(g.Items))
	copy(out.Items, g.Items)
	for i := range out.Items {
		out.Items[i].Tips = append([]string(nil), g.Items[i].Tips...)
	}
	return &out
}

// PlanRequest is the engine-level input for one itinerary generation.
type PlanRequest struct {
	// Preferences are the traveler inputs.
	Preferences TripPreferences `json:"preferences"`

	// Weather is the optional static weather signal. Nil means no filtering.
	Weather *Weather `json:"weather,omitempty"`

	// RequestID is the caller's trace ID; generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// QuickRequest is the input for the single-category quick recommendation path.
type QuickRequest struct {
	// Category is the category to recommend within.
	Category PlaceCategory `json:"category"`

	// CrowdPreference excludes HIGH-crowd destinations when set to avoid.
	CrowdPreference CrowdPreference `json:"crowd_preference"`

	// Limit caps the result length. Zero means the configured default.
	Limit int `json:"limit"`

	// Today overrides the reference date for crowd estimation.
	// The zero value means time.Now in UTC.
	Today time.Time `json:"-"`
}
