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

// GenerateBallInPlay turns a contact quality into the physical description
// of the batted ball: trajectory, exit speed, hang time, and the lane it
// heads toward. The quality is clamped before banding.
func GenerateBallInPlay(rng RNG, quality int, batter *BatterRatings) BallInPlay {
	quality = clampQuality(quality)

	var (
		ballType BallType
		speed    float64
		hangTime int
	)

	switch {
	case quality >= ContactExcellentMin:
		if chance(rng, 0.6) {
			ballType = FlyBall
			speed = floatRange(rng, 80, 100)
			hangTime = rollRange(rng, 60, 90)
		} else {
			ballType = LineDrive
			speed = floatRange(rng, 90, 110)
			hangTime = rollRange(rng, 20, 40)
		}

	case quality >= 60:
		switch roll := rollRange(rng, 1, 10); {
		case roll <= 3:
			ballType = FlyBall
			speed = floatRange(rng, 70, 90)
			hangTime = rollRange(rng, 50, 70)
		case roll <= 6:
			ballType = LineDrive
			speed = floatRange(rng, 80, 100)
			hangTime = rollRange(rng, 25, 45)
		default:
			ballType = Grounder
			speed = floatRange(rng, 60, 90)
		}

	case quality >= 40:
		if chance(rng, 0.7) {
			ballType = Grounder
			speed = floatRange(rng, 50, 75)
		} else {
			ballType = PopFly
			speed = floatRange(rng, 40, 60)
			hangTime = rollRange(rng, 40, 60)
		}

	default:
		if floatRange(rng, 0, 100) < groundBallPercent(batter) {
			ballType = Grounder
			speed = floatRange(rng, 40, 65)
		} else {
			ballType = PopFly
			speed = floatRange(rng, 30, 50)
			hangTime = rollRange(rng, 30, 50)
		}
	}

	return BallInPlay{
		Type:           ballType,
		Direction:      drawDirection(rng, ballType),
		Speed:          speed,
		HangTime:       hangTime,
		ContactQuality: quality,
	}
}

// drawDirection picks a field lane from the ball-type-specific spray table.
// Grounders skew toward the pull-side infield, line drives spread across
// the whole field, and anything in the air sprays across the outfield.
func drawDirection(rng RNG, ballType BallType) FieldDirection {
	switch ballType {
	case Grounder:
		switch roll := rollRange(rng, 1, 9); {
		case roll == 1:
			return ThirdBase
		case roll <= 3:
			return Shortstop
		case roll <= 6:
			return SecondBase
		case roll <= 8:
			return FirstBase
		default:
			return Shortstop
		}
	case LineDrive:
		switch roll := rollRange(rng, 1, 9); {
		case roll == 1:
			return LeftField
		case roll == 2:
			return LeftCenter
		case roll <= 4:
			return CenterField
		case roll == 5:
			return RightCenter
		case roll == 6:
			return RightField
		case roll == 7:
			return ThirdBase
		case roll == 8:
			return Shortstop
		default:
			return FirstBase
		}
	default: // FlyBall, PopFly
		switch roll := rollRange(rng, 1, 7); {
		case roll == 1:
			return LeftField
		case roll == 2:
			return LeftCenter
		case roll <= 4:
			return CenterField
		case roll == 5:
			return RightCenter
		default:
			return RightField
		}
	}
}
