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

// PitchType describes one of the pitcher's pitches.
type PitchType struct {
	Name  string
	Speed int // mph
	Break int // movement
}

// PitchTypes is the fixed repertoire, indexed by the 1-4 selection keys.
var PitchTypes = []PitchType{
	{Name: "Fastball", Speed: 90, Break: 0},
	{Name: "Curveball", Speed: 75, Break: 5},
	{Name: "Slider", Speed: 82, Break: 3},
	{Name: "Changeup", Speed: 78, Break: 1},
}

// PitchName returns the name for a pitch index, or "Unknown" when the index
// is out of range.
func PitchName(idx int) string {
	if idx < 0 || idx >= len(PitchTypes) {
		return "Unknown"
	}
	return PitchTypes[idx].Name
}
