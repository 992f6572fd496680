// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

package planner

import (
	"reflect"
	"testing"
)

func TestGenerateTips(t *testing.T) {
	t.Parallel()

	temple := Destination{ID: "t", Category: CategoryTemple}
	beach := Destination{ID: "b", Category: CategoryBeach}
	hill := Destination{ID: "h", Category: CategoryHillStation}
	park := Destination{ID: "n", Category: CategoryNature}
	food := Destination{ID: "f", Category: CategoryFood}

	tests := []struct {
		name  string
		dest  *Destination
		crowd CrowdLevel
		slot  TimeSlot
		want  []string
	}{
		{
			name:  "temple base tips",
			dest:  &temple,
			crowd: CrowdMedium,
			slot:  SlotMorning,
			want:  []string{tipTempleDress, tipTempleFootwear},
		},
		{
			name:  "temple high crowd adds queue warning",
			dest:  &temple,
			crowd: CrowdHigh,
			slot:  SlotMorning,
			want:  []string{tipTempleDress, tipTempleFootwear, tipTempleQueue},
		},
		{
			name:  "beach afternoon adds sunscreen first",
			dest:  &beach,
			crowd: CrowdMedium,
			slot:  SlotAfternoon,
			want:  []string{tipBeachSunscreen, tipBeachSwimming},
		},
		{
			name:  "beach evening skips sunscreen",
			dest:  &beach,
			crowd: CrowdMedium,
			slot:  SlotEvening,
			want:  []string{tipBeachSwimming},
		},
		{
			name:  "hill station tips",
			dest:  &hill,
			crowd: CrowdMedium,
			slot:  SlotMorning,
			want:  []string{tipHillJacket, tipHillBooking},
		},
		{
			name:  "nature shares hill tips",
			dest:  &park,
			crowd: CrowdMedium,
			slot:  SlotMorning,
			want:  []string{tipHillJacket, tipHillBooking},
		},
		{
			name:  "low crowd tip appended last",
			dest:  &temple,
			crowd: CrowdLow,
			slot:  SlotAfternoon,
			want:  []string{tipTempleDress, tipTempleFootwear, tipLowCrowd},
		},
		{
			name:  "category without tips still gets low crowd tip",
			dest:  &food,
			crowd: CrowdLow,
			slot:  SlotEvening,
			want:  []string{tipLowCrowd},
		},
		{
			name:  "category without tips and normal crowd yields nothing",
			dest:  &food,
			crowd: CrowdMedium,
			slot:  SlotEvening,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GenerateTips(tt.dest, tt.crowd, tt.slot)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateTips(%s, %s, %s) = %v, want %v",
					tt.dest.ID, tt.crowd, tt.slot, got, tt.want)
			}
		})
	}
}
