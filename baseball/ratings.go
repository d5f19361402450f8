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

// BatterRatings are the skill numbers the resolvers consume for the man at
// the plate. They come from the roster adapter; a nil batter means the
// neutral defaults apply.
type BatterRatings struct {
	Name              string
	BarrelPercent     float64 // quality-of-contact rate, 0-100
	GroundBallPercent float64 // share of batted balls on the ground, 0-100
	MaxDistance       float64 // longest tracked hit, feet
}

// PitcherRatings are the skill numbers for the pitcher. BarrelPercent here
// is the rate allowed: lower is better.
type PitcherRatings struct {
	Name          string
	BarrelPercent float64
}

// groundBallPercent returns the batter's groundball tendency, or the
// neutral default when the batter is unknown.
func groundBallPercent(b *BatterRatings) float64 {
	if b == nil {
		return DefaultGroundBallPercent
	}
	return b.GroundBallPercent
}
