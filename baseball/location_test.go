// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package baseball

import "testing"

var allLocations = []PitchLocation{
	LocationUpInside, LocationUp, LocationUpOutside,
	LocationInside, LocationMiddle, LocationOutside,
	LocationDownInside, LocationDown, LocationDownOutside,
}

func TestIsStrike(t *testing.T) {
	corners := map[PitchLocation]bool{
		LocationUpInside:    true,
		LocationUpOutside:   true,
		LocationDownInside:  true,
		LocationDownOutside: true,
	}
	for _, loc := range allLocations {
		if got, want := loc.IsStrike(), !corners[loc]; got != want {
			t.Errorf("%s.IsStrike() = %v, want %v", loc, got, want)
		}
	}
}

func TestAdjacencySymmetricAndIrreflexive(t *testing.T) {
	for _, a := range allLocations {
		if a.IsAdjacent(a) {
			t.Errorf("%s is adjacent to itself", a)
		}
		for _, b := range allLocations {
			if a.IsAdjacent(b) != b.IsAdjacent(a) {
				t.Errorf("adjacency not symmetric for %s / %s", a, b)
			}
		}
	}
}

func TestAdjacencyNeighbors(t *testing.T) {
	tests := []struct {
		loc  PitchLocation
		want int
	}{
		{LocationMiddle, 4},
		{LocationUp, 3},
		{LocationDown, 3},
		{LocationInside, 3},
		{LocationOutside, 3},
		{LocationUpInside, 2},
		{LocationUpOutside, 2},
		{LocationDownInside, 2},
		{LocationDownOutside, 2},
	}
	for _, tc := range tests {
		n := 0
		for _, other := range allLocations {
			if tc.loc.IsAdjacent(other) {
				n++
			}
		}
		if n != tc.want {
			t.Errorf("%s has %d neighbors, want %d", tc.loc, n, tc.want)
		}
	}
}

func TestLocationFromDirection(t *testing.T) {
	tests := []struct {
		name                  string
		up, down, left, right bool
		want                  PitchLocation
	}{
		{"none", false, false, false, false, LocationMiddle},
		{"up", true, false, false, false, LocationUp},
		{"down", false, true, false, false, LocationDown},
		{"left", false, false, true, false, LocationInside},
		{"right", false, false, false, true, LocationOutside},
		{"up-left", true, false, true, false, LocationUpInside},
		{"up-right", true, false, false, true, LocationUpOutside},
		{"down-left", false, true, true, false, LocationDownInside},
		{"down-right", false, true, false, true, LocationDownOutside},
		{"opposing vertical", true, true, false, false, LocationMiddle},
		{"opposing horizontal", false, false, true, true, LocationMiddle},
		{"all held", true, true, true, true, LocationMiddle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LocationFromDirection(tc.up, tc.down, tc.left, tc.right)
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLocationFromNumpad(t *testing.T) {
	tests := []struct {
		n    int
		want PitchLocation
	}{
		{7, LocationUpInside},
		{8, LocationUp},
		{9, LocationUpOutside},
		{4, LocationInside},
		{5, LocationMiddle},
		{6, LocationOutside},
		{1, LocationDownInside},
		{2, LocationDown},
		{3, LocationDownOutside},
		{0, LocationMiddle},
		{10, LocationMiddle},
		{-1, LocationMiddle},
	}
	for _, tc := range tests {
		if got := LocationFromNumpad(tc.n); got != tc.want {
			t.Errorf("LocationFromNumpad(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
}
