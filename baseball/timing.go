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

// SwingTiming classifies when the batter committed to the swing relative
// to the ball reaching the plate.
type SwingTiming int

const (
	TimingTooEarly SwingTiming = iota
	TimingEarly
	TimingPerfect
	TimingLate
	TimingTooLate
	TimingNoSwing
)

func (t SwingTiming) String() string {
	switch t {
	case TimingTooEarly:
		return "Too Early"
	case TimingEarly:
		return "Early"
	case TimingPerfect:
		return "Perfect"
	case TimingLate:
		return "Late"
	case TimingTooLate:
		return "Too Late"
	case TimingNoSwing:
		return "No Swing"
	default:
		return "Unknown"
	}
}

// TimingFromFrames derives the swing timing from the frames remaining until
// the ball reaches the plate. canSwing is false while the ball is still
// outside the swing window; committing then is always too early.
//
// The windows are anchored at the plate: the perfect window spans frames
// [4,9] out, late is the last 3 frames, early runs out to frame 21, and
// anything beyond that is too early.
func TimingFromFrames(framesLeft int, canSwing bool) SwingTiming {
	if !canSwing {
		return TimingTooEarly
	}

	perfectStart := PerfectWindowFrames / 2
	perfectEnd := perfectStart + PerfectWindowFrames
	earlyEnd := perfectEnd + EarlyLateWindowFrames
	lateEnd := perfectStart

	switch {
	case framesLeft <= lateEnd:
		return TimingLate
	case framesLeft <= perfectEnd:
		return TimingPerfect
	case framesLeft <= earlyEnd:
		return TimingEarly
	default:
		return TimingTooEarly
	}
}

// ContactMultiplier scales the raw contact quality draw by swing timing.
func (t SwingTiming) ContactMultiplier() float64 {
	switch t {
	case TimingPerfect:
		return TimingMultiplierPerfect
	case TimingEarly, TimingLate:
		return TimingMultiplierEarlyLate
	default:
		return 1.0
	}
}
