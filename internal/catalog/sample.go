// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package catalog

import "github.com/kavinvel/yatra/internal/planner"

// sampleDestinations returns the built-in Tamil Nadu destination set used
// when no catalog file is configured. Returned fresh per call so a caller
// cannot mutate the template.
func sampleDestinations() []planner.Destination {
	return []planner.Destination{
		{
			ID:                 "meenakshi-temple",
			Name:               "Meenakshi Amman Temple",
			Category:           planner.CategoryTemple,
			District:           "Madurai",
			Description:        "An ancient and iconic Dravidian temple dedicated to Goddess Meenakshi and Lord Sundareswarar. Known for its stunning gopurams with thousands of colorful sculptures.",
			BaseCrowd:          planner.CrowdHigh,
			Indoor:             true,
			BestSeason:         planner.SeasonAll,
			EntryFee:           0,
			Rating:             4.8,
			VisitDurationHours: 3,
			Coordinates:        &planner.Coordinates{Lat: 9.9195, Lng: 78.1193},
			Timings:            planner.Timings{Open: "05:00", Close: "21:30"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotEvening},
			FestivalDates:      []string{"2024-04-14", "2024-04-15"}, // Chithirai Festival
			Amenities:          []string{"Parking", "Shoe Storage", "Guide Available", "Wheelchair Access"},
		},
		{
			ID:                 "brihadeeswarar-temple",
			Name:               "Brihadeeswarar Temple",
			Category:           planner.CategoryTemple,
			District:           "Thanjavur",
			Description:        "A UNESCO World Heritage Site and one of the largest South Indian temples. Built by Raja Raja Chola I, it showcases remarkable Chola architecture.",
			BaseCrowd:          planner.CrowdMedium,
			BestSeason:         planner.SeasonWinter,
			EntryFee:           0,
			Rating:             4.9,
			VisitDurationHours: 2.5,
			Coordinates:        &planner.Coordinates{Lat: 10.7825, Lng: 79.1314},
			Timings:            planner.Timings{Open: "06:00", Close: "20:30"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Parking", "Museum", "Guide Available", "Photography Allowed"},
		},
		{
			ID:                 "mahabalipuram",
			Name:               "Mahabalipuram Shore Temple",
			Category:           planner.CategoryHeritage,
			District:           "Chengalpattu",
			Description:        "A UNESCO World Heritage Site featuring stunning rock-cut temples and sculptures from the Pallava dynasty, overlooking the Bay of Bengal.",
			BaseCrowd:          planner.CrowdMedium,
			BestSeason:         planner.SeasonWinter,
			EntryFee:           40,
			Rating:             4.7,
			VisitDurationHours: 3,
			Coordinates:        &planner.Coordinates{Lat: 12.6172, Lng: 80.1993},
			Timings:            planner.Timings{Open: "06:00", Close: "18:00"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Parking", "Beach Access", "Restaurants Nearby", "Guide Available"},
		},
		{
			ID:                 "ooty",
			Name:               "Ooty Botanical Gardens",
			Category:           planner.CategoryHillStation,
			District:           "Nilgiris",
			Description:        "A sprawling 55-acre garden in the Queen of Hill Stations, featuring rare plants, a fossil tree, and stunning Nilgiri mountain views.",
			BaseCrowd:          planner.CrowdMedium,
			BestSeason:         planner.SeasonSummer,
			EntryFee:           50,
			Rating:             4.5,
			VisitDurationHours: 2,
			Coordinates:        &planner.Coordinates{Lat: 11.4118, Lng: 76.6956},
			Timings:            planner.Timings{Open: "07:00", Close: "18:30"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Parking", "Cafeteria", "Toy Train Nearby", "Photography Allowed"},
		},
		{
			ID:                 "kodaikanal",
			Name:               "Kodaikanal Lake",
			Category:           planner.CategoryHillStation,
			District:           "Dindigul",
			Description:        "A star-shaped man-made lake surrounded by lush forests, offering boating, cycling, and stunning sunset views.",
			BaseCrowd:          planner.CrowdMedium,
			BestSeason:         planner.SeasonSummer,
			EntryFee:           0,
			Rating:             4.6,
			VisitDurationHours: 2.5,
			Coordinates:        &planner.Coordinates{Lat: 10.2381, Lng: 77.4892},
			Timings:            planner.Timings{Open: "06:00", Close: "17:30"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Boating", "Cycling", "Restaurants", "Photography Allowed"},
		},
		{
			ID:                 "rameswaram",
			Name:               "Ramanathaswamy Temple",
			Category:           planner.CategoryTemple,
			District:           "Ramanathapuram",
			Description:        "One of the twelve Jyotirlingas, famous for its longest corridor among Hindu temples with magnificently carved pillars.",
			BaseCrowd:          planner.CrowdHigh,
			Indoor:             true,
			BestSeason:         planner.SeasonWinter,
			EntryFee:           0,
			Rating:             4.8,
			VisitDurationHours: 3,
			Coordinates:        &planner.Coordinates{Lat: 9.2885, Lng: 79.3129},
			Timings:            planner.Timings{Open: "05:00", Close: "21:00"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotEvening},
			Amenities:          []string{"Parking", "Dharamshala", "Prasadam", "Guide Available"},
		},
		{
			ID:                 "marina-beach",
			Name:               "Marina Beach",
			Category:           planner.CategoryBeach,
			District:           "Chennai",
			Description:        "The longest natural urban beach in India and second longest in the world. An iconic Chennai landmark with stunning sunrise views.",
			BaseCrowd:          planner.CrowdHigh,
			BestSeason:         planner.SeasonWinter,
			EntryFee:           0,
			Rating:             4.4,
			VisitDurationHours: 2,
			Coordinates:        &planner.Coordinates{Lat: 13.0500, Lng: 80.2824},
			Timings:            planner.Timings{Open: "00:00", Close: "23:59"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotEvening},
			Amenities:          []string{"Parking", "Street Food", "Aquarium Nearby", "Lighthouse"},
		},
		{
			ID:                 "kanyakumari",
			Name:               "Kanyakumari",
			Category:           planner.CategoryBeach,
			District:           "Kanyakumari",
			Description:        "The southernmost tip of India where three seas meet. Famous for spectacular sunrise and sunset views at the same spot.",
			BaseCrowd:          planner.CrowdMedium,
			BestSeason:         planner.SeasonWinter,
			EntryFee:           0,
			Rating:             4.7,
			VisitDurationHours: 4,
			Coordinates:        &planner.Coordinates{Lat: 8.0883, Lng: 77.5385},
			Timings:            planner.Timings{Open: "00:00", Close: "23:59"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotEvening},
			Amenities:          []string{"Vivekananda Memorial", "Thiruvalluvar Statue", "Ferries", "Hotels"},
		},
		{
			ID:                 "chettinad",
			Name:               "Chettinad Palace",
			Category:           planner.CategoryHeritage,
			District:           "Sivaganga",
			Description:        "Magnificent mansions showcasing unique Chettinad architecture with intricate carvings, antique collections, and cultural heritage.",
			BaseCrowd:          planner.CrowdLow,
			Indoor:             true,
			BestSeason:         planner.SeasonAll,
			EntryFee:           100,
			Rating:             4.5,
			VisitDurationHours: 2,
			Coordinates:        &planner.Coordinates{Lat: 10.0710, Lng: 78.7970},
			Timings:            planner.Timings{Open: "09:00", Close: "17:00"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Guided Tours", "Museum", "Traditional Cuisine", "Photography"},
		},
		{
			ID:                 "yelagiri",
			Name:               "Yelagiri Hills",
			Category:           planner.CategoryNature,
			District:           "Tirupattur",
			Description:        "A tranquil hill station with serene lakes, rose gardens, and adventure activities like paragliding and trekking.",
			BaseCrowd:          planner.CrowdLow,
			BestSeason:         planner.SeasonAll,
			EntryFee:           0,
			Rating:             4.3,
			VisitDurationHours: 5,
			Coordinates:        &planner.Coordinates{Lat: 12.5812, Lng: 78.6382},
			Timings:            planner.Timings{Open: "00:00", Close: "23:59"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Paragliding", "Boating", "Trekking", "Resorts"},
		},
		{
			ID:                 "mudumalai",
			Name:               "Mudumalai National Park",
			Category:           planner.CategoryNature,
			District:           "Nilgiris",
			Description:        "A tiger reserve and wildlife sanctuary home to elephants, tigers, leopards, and diverse bird species in the Nilgiri Biosphere.",
			BaseCrowd:          planner.CrowdLow,
			BestSeason:         planner.SeasonWinter,
			EntryFee:           150,
			Rating:             4.6,
			VisitDurationHours: 4,
			Coordinates:        &planner.Coordinates{Lat: 11.5692, Lng: 76.5556},
			Timings:            planner.Timings{Open: "06:00", Close: "18:00"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon},
			Amenities:          []string{"Safari", "Elephant Camp", "Nature Trails", "Accommodation"},
		},
		{
			ID:                 "saravana-bhavan",
			Name:               "Saravana Bhavan - Original",
			Category:           planner.CategoryFood,
			District:           "Chennai",
			Description:        "The birthplace of the world-famous vegetarian restaurant chain. Experience authentic South Indian cuisine at its origin.",
			BaseCrowd:          planner.CrowdMedium,
			Indoor:             true,
			BestSeason:         planner.SeasonAll,
			EntryFee:           0,
			Rating:             4.4,
			VisitDurationHours: 1.5,
			Coordinates:        &planner.Coordinates{Lat: 13.0569, Lng: 80.2425},
			Timings:            planner.Timings{Open: "07:00", Close: "22:00"},
			PopularSlots:       []planner.TimeSlot{planner.SlotMorning, planner.SlotAfternoon, planner.SlotEvening},
			Amenities:          []string{"AC Dining", "Takeaway", "Parking", "Vegetarian"},
		},
	}
}
