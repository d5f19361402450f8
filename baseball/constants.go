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

// Timing (frames at 30fps)
const (
	TargetFPS = 30

	PitchClockFrames       = 90 // 3 seconds before the wind-up
	BallApproachFrames     = 90 // 3 seconds for the ball to reach the plate
	SwingAnimationFrames   = 10
	ResultDisplayFrames    = 90
	SwingWindowFrames      = 30 // swinging allowed inside this window
	PerfectWindowFrames    = 6
	EarlyLateWindowFrames  = 12 // each side of the perfect window
	FieldingTimeoutMinimum = 45 // auto-resolve floor when hang time is short
)

// Game rules
const (
	MaxStrikes       = 3
	MaxBalls         = 4
	MaxOuts          = 3
	InningsPerGame   = 9
	BasesCount       = 3
	BattingOrderSize = 9
)

// Pitcher stamina
const (
	StartingStamina  = 100.0
	StaminaCostSwing = 1.5
	StaminaCostTake  = 0.8
)

// Stamina thresholds and the fatigue multiplier for each band.
const (
	StaminaFreshThreshold     = 70.0
	StaminaGoodThreshold      = 50.0
	StaminaTiredThreshold     = 30.0
	StaminaExhaustedThreshold = 15.0

	FatiguePenaltyFresh     = 1.0
	FatiguePenaltyGood      = 0.95
	FatiguePenaltyTired     = 0.85
	FatiguePenaltyVeryTired = 0.70
	FatiguePenaltyExhausted = 0.50
)

// Contact quality band boundaries
const (
	ContactExcellentMin = 85
	ContactGreatMin     = 75
	ContactGoodMin      = 55
	ContactWeakMin      = 35
)

// Skill adjustments
const (
	BatterSkillBonusMultiplier     = 1.5
	PitcherSkillPenaltyMultiplier  = 2.0
	AdjacentBatterSkillMultiplier  = 1.0
	AdjacentPitcherSkillMultiplier = 1.0
	TimingMultiplierPerfect        = 1.3
	TimingMultiplierEarlyLate      = 0.6
	HomeRunDistanceDivisor         = 500.0
	HomeRunChanceCapPercent        = 25
)

// Fielding
const (
	FieldingTimingWindow = 15.0 // frames of slack around perfect timing

	FieldingSuccessPopFly    = 0.98
	FieldingSuccessFlyBall   = 0.90
	FieldingSuccessLineDrive = 0.75
	FieldingSuccessGrounder  = 0.85

	FieldingSpeedThreshold     = 95.0
	FieldingSpeedPenaltyDiv    = 300.0
	FieldingTimingGoodAccuracy = 0.6
	FieldingPoorTimingFloor    = 0.5
	FieldingMinSuccessRate     = 0.1
)

// Neutral defaults used when a batter or pitcher rating is unavailable.
const (
	DefaultGroundBallPercent = 50.0
)
