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

// PitchLocation is a cell on the 3x3 pitch grid, from the pitcher's view.
// The four corners are out of the strike zone.
type PitchLocation int

const (
	LocationUpInside PitchLocation = iota
	LocationUp
	LocationUpOutside
	LocationInside
	LocationMiddle
	LocationOutside
	LocationDownInside
	LocationDown
	LocationDownOutside
)

func (l PitchLocation) String() string {
	switch l {
	case LocationUpInside:
		return "Up-Inside"
	case LocationUp:
		return "Up"
	case LocationUpOutside:
		return "Up-Outside"
	case LocationInside:
		return "Inside"
	case LocationMiddle:
		return "Middle"
	case LocationOutside:
		return "Outside"
	case LocationDownInside:
		return "Down-Inside"
	case LocationDown:
		return "Down"
	case LocationDownOutside:
		return "Down-Outside"
	default:
		return "Unknown"
	}
}

// IsStrike reports whether the location is in the strike zone. The four
// corner cells are balls; everything else is a strike.
func (l PitchLocation) IsStrike() bool {
	switch l {
	case LocationUpInside, LocationUpOutside, LocationDownInside, LocationDownOutside:
		return false
	default:
		return true
	}
}

// LocationFromDirection maps held direction keys to a grid cell. Invalid
// combinations (opposing directions held together) fall back to Middle.
func LocationFromDirection(up, down, left, right bool) PitchLocation {
	switch {
	case up && !down && left && !right:
		return LocationUpInside
	case up && !down && !left && !right:
		return LocationUp
	case up && !down && !left && right:
		return LocationUpOutside
	case !up && !down && left && !right:
		return LocationInside
	case !up && !down && !left && !right:
		return LocationMiddle
	case !up && !down && !left && right:
		return LocationOutside
	case !up && down && left && !right:
		return LocationDownInside
	case !up && down && !left && !right:
		return LocationDown
	case !up && down && !left && right:
		return LocationDownOutside
	default:
		return LocationMiddle
	}
}

// LocationFromNumpad maps a numpad digit (1-9, phone layout: 7 is up-inside,
// 3 is down-outside) to a grid cell. Out-of-range digits fall back to Middle.
func LocationFromNumpad(n int) PitchLocation {
	switch n {
	case 7:
		return LocationUpInside
	case 8:
		return LocationUp
	case 9:
		return LocationUpOutside
	case 4:
		return LocationInside
	case 5:
		return LocationMiddle
	case 6:
		return LocationOutside
	case 1:
		return LocationDownInside
	case 2:
		return LocationDown
	case 3:
		return LocationDownOutside
	default:
		return LocationMiddle
	}
}

// adjacency lists the grid cells considered close enough for weak contact.
// The relation is symmetric and never includes the cell itself; exact
// matches are handled separately by the contact resolver.
var adjacency = map[PitchLocation][]PitchLocation{
	LocationUp:          {LocationUpInside, LocationUpOutside, LocationMiddle},
	LocationInside:      {LocationUpInside, LocationMiddle, LocationDownInside},
	LocationOutside:     {LocationUpOutside, LocationMiddle, LocationDownOutside},
	LocationDown:        {LocationDownInside, LocationDownOutside, LocationMiddle},
	LocationMiddle:      {LocationUp, LocationDown, LocationInside, LocationOutside},
	LocationUpInside:    {LocationUp, LocationInside},
	LocationUpOutside:   {LocationUp, LocationOutside},
	LocationDownInside:  {LocationDown, LocationInside},
	LocationDownOutside: {LocationDown, LocationOutside},
}

// IsAdjacent reports whether two distinct grid cells neighbor each other.
func (l PitchLocation) IsAdjacent(other PitchLocation) bool {
	for _, n := range adjacency[l] {
		if n == other {
			return true
		}
	}
	return false
}
