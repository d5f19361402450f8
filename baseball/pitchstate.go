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

// StateTag identifies the active at-bat state.
type StateTag int

const (
	StateChoosePitch StateTag = iota
	StateAiming
	StatePitchClock
	StateBallApproaching
	StateSwinging
	StateFielding
	StateShowResult
)

func (t StateTag) String() string {
	switch t {
	case StateChoosePitch:
		return "ChoosePitch"
	case StateAiming:
		return "Aiming"
	case StatePitchClock:
		return "PitchClock"
	case StateBallApproaching:
		return "BallApproaching"
	case StateSwinging:
		return "Swinging"
	case StateFielding:
		return "Fielding"
	case StateShowResult:
		return "ShowResult"
	default:
		return "Unknown"
	}
}

// PitchState is the at-bat state machine's single record: a tag plus one
// payload slot per state. Only the fields belonging to the active tag are
// meaningful; the constructors below zero everything else.
type PitchState struct {
	Tag StateTag

	// PitchType: Aiming, PitchClock, BallApproaching.
	PitchType int

	// FramesLeft: PitchClock, BallApproaching, Swinging, ShowResult.
	FramesLeft int

	// BallPosition and CanSwing: BallApproaching. Position runs 0.0 at
	// the mound to 1.0 at the plate.
	BallPosition float64
	CanSwing     bool

	// Timing: Swinging.
	Timing SwingTiming

	// Ball and FramesElapsed: Fielding.
	Ball          BallInPlay
	FramesElapsed int

	// Result: ShowResult.
	Result PlayResult
}

func choosePitchState() PitchState {
	return PitchState{Tag: StateChoosePitch}
}

func aimingState(pitchType int) PitchState {
	return PitchState{Tag: StateAiming, PitchType: pitchType}
}

func pitchClockState(pitchType int) PitchState {
	return PitchState{Tag: StatePitchClock, PitchType: pitchType, FramesLeft: PitchClockFrames}
}

func ballApproachingState(pitchType int) PitchState {
	return PitchState{Tag: StateBallApproaching, PitchType: pitchType, FramesLeft: BallApproachFrames}
}

func swingingState(timing SwingTiming) PitchState {
	return PitchState{Tag: StateSwinging, FramesLeft: SwingAnimationFrames, Timing: timing}
}

func fieldingState(ball BallInPlay) PitchState {
	return PitchState{Tag: StateFielding, Ball: ball}
}

func showResultState(result PlayResult) PitchState {
	return PitchState{Tag: StateShowResult, Result: result, FramesLeft: ResultDisplayFrames}
}
