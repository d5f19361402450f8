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

// PerfectFieldingTiming is the elapsed frame count at which the fielder's
// attempt lines up with the ball.
func PerfectFieldingTiming(ball BallInPlay) int {
	return ball.HangTime / 2
}

// FieldingTimeout is the frame count after which an unanswered ball in play
// auto-resolves against the defense.
func FieldingTimeout(ball BallInPlay) int {
	if ball.HangTime > FieldingTimeoutMinimum {
		return ball.HangTime
	}
	return FieldingTimeoutMinimum
}

// SuccessChance computes the probability that a fielding attempt at the
// given elapsed frame converts the ball into an out. Fielders catch most
// balls; timing inside the slack window keeps the full base rate, while
// poor timing scales it down. The chance never drops below the floor.
func SuccessChance(ball BallInPlay, elapsed int) float64 {
	timingDiff := float64(elapsed - PerfectFieldingTiming(ball))
	if timingDiff < 0 {
		timingDiff = -timingDiff
	}
	accuracy := 1.0 - timingDiff/FieldingTimingWindow
	if accuracy < 0 {
		accuracy = 0
	}

	var base float64
	switch ball.Type {
	case PopFly:
		base = FieldingSuccessPopFly
	case FlyBall:
		base = FieldingSuccessFlyBall
	case LineDrive:
		base = FieldingSuccessLineDrive
	default:
		base = FieldingSuccessGrounder
	}

	var speedPenalty float64
	if ball.Speed > FieldingSpeedThreshold {
		speedPenalty = (ball.Speed - FieldingSpeedThreshold) / FieldingSpeedPenaltyDiv
	}

	var successChance float64
	if accuracy > FieldingTimingGoodAccuracy {
		successChance = base - speedPenalty
	} else {
		successChance = (base - speedPenalty) * (FieldingPoorTimingFloor + accuracy*FieldingPoorTimingFloor)
	}
	if successChance < FieldingMinSuccessRate {
		successChance = FieldingMinSuccessRate
	}
	return successChance
}

// ResolveFielding decides a fielding attempt made elapsed frames into the
// play. A successful conversion records the out matching the trajectory;
// otherwise the ball gets through for a hit.
func ResolveFielding(rng RNG, ball BallInPlay, elapsed int) (PlayResult, float64) {
	successChance := SuccessChance(ball, elapsed)

	if rng.Float64() < successChance {
		if ball.Type.InAir() {
			return NewOut(Flyout), successChance
		}
		return NewOut(Groundout), successChance
	}
	return BallGetsThrough(rng, ball), successChance
}

// BallGetsThrough maps a ball nobody converted into the hit it becomes,
// keyed off the contact quality that launched it. Also used verbatim when
// the fielding window times out.
func BallGetsThrough(rng RNG, ball BallInPlay) PlayResult {
	switch {
	case ball.ContactQuality >= ContactExcellentMin:
		if ball.Speed > FieldingSpeedThreshold {
			if chance(rng, 0.4) {
				return NewHit(HomeRun)
			}
			return NewHit(Triple)
		}
		if rollRange(rng, 1, 3) == 1 {
			return NewHit(Triple)
		}
		return NewHit(Double)

	case ball.ContactQuality >= 60:
		switch roll := rollRange(rng, 1, 10); {
		case roll <= 2:
			return NewHit(Triple)
		case roll <= 5:
			return NewHit(Double)
		default:
			return NewHit(Single)
		}

	default:
		return NewHit(Single)
	}
}
