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

import (
	"math"
	"testing"
)

func TestFieldingTimeout(t *testing.T) {
	tests := []struct {
		hangTime int
		want     int
	}{
		{0, 45},
		{30, 45},
		{45, 45},
		{46, 46},
		{90, 90},
	}
	for _, tc := range tests {
		ball := BallInPlay{Type: FlyBall, HangTime: tc.hangTime}
		if got := FieldingTimeout(ball); got != tc.want {
			t.Errorf("FieldingTimeout(hang %d) = %d, want %d", tc.hangTime, got, tc.want)
		}
	}
}

func TestSuccessChancePerfectTiming(t *testing.T) {
	tests := []struct {
		name string
		ball BallInPlay
		want float64
	}{
		{"pop fly", BallInPlay{Type: PopFly, Speed: 50, HangTime: 40}, 0.98},
		{"fly ball", BallInPlay{Type: FlyBall, Speed: 90, HangTime: 60}, 0.90},
		{"line drive", BallInPlay{Type: LineDrive, Speed: 95, HangTime: 30}, 0.75},
		{"grounder", BallInPlay{Type: Grounder, Speed: 70}, 0.85},
		// 110 mph is 15 over the threshold: 15/300 shaved off.
		{"hot line drive", BallInPlay{Type: LineDrive, Speed: 110, HangTime: 30}, 0.70},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SuccessChance(tc.ball, PerfectFieldingTiming(tc.ball))
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("SuccessChance = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSuccessChanceTimingDecay(t *testing.T) {
	ball := BallInPlay{Type: FlyBall, Speed: 85, HangTime: 60}
	perfect := PerfectFieldingTiming(ball)

	atPerfect := SuccessChance(ball, perfect)
	slightlyOff := SuccessChance(ball, perfect+5)
	wayOff := SuccessChance(ball, perfect+40)

	// Inside the slack window the base rate holds.
	if slightlyOff != atPerfect {
		t.Errorf("attempt inside slack window: %v, want %v", slightlyOff, atPerfect)
	}
	if wayOff >= atPerfect {
		t.Errorf("way-off attempt %v not below perfect %v", wayOff, atPerfect)
	}
	// Zero accuracy halves the base rate.
	if want := atPerfect * 0.5; math.Abs(wayOff-want) > 1e-9 {
		t.Errorf("way-off attempt = %v, want %v", wayOff, want)
	}
}

func TestSuccessChanceFloor(t *testing.T) {
	rng := NewRand(9)
	for i := 0; i < 500; i++ {
		ball := BallInPlay{
			Type:     BallType(rng.IntN(4)),
			Speed:    floatRange(rng, 30, 130),
			HangTime: rng.IntN(90),
		}
		if got := SuccessChance(ball, rng.IntN(120)); got < FieldingMinSuccessRate {
			t.Fatalf("SuccessChance = %v below floor for %+v", got, ball)
		}
	}
}

func TestResolveFielding(t *testing.T) {
	flyBall := BallInPlay{Type: FlyBall, Speed: 85, HangTime: 60, ContactQuality: 70}
	grounder := BallInPlay{Type: Grounder, Speed: 70, ContactQuality: 50}

	// A low draw converts the out.
	result, chance := ResolveFielding(&scriptRNG{floats: []float64{0.0}}, flyBall, 30)
	if result != NewOut(Flyout) {
		t.Errorf("caught fly ball = %s, want Flyout", result)
	}
	if chance != 0.90 {
		t.Errorf("success chance = %v, want 0.90", chance)
	}

	result, _ = ResolveFielding(&scriptRNG{floats: []float64{0.0}}, grounder, 0)
	if result != NewOut(Groundout) {
		t.Errorf("fielded grounder = %s, want Groundout", result)
	}

	// A high draw lets the ball through; quality 50 means a single.
	result, _ = ResolveFielding(&scriptRNG{floats: []float64{0.999}}, grounder, 0)
	if result != NewHit(Single) {
		t.Errorf("missed grounder = %s, want Single", result)
	}
}

func TestBallGetsThrough(t *testing.T) {
	tests := []struct {
		name   string
		ball   BallInPlay
		ints   []int
		floats []float64
		want   PlayResult
	}{
		{"crushed and fast home run", BallInPlay{ContactQuality: 90, Speed: 100}, nil, []float64{0.3}, NewHit(HomeRun)},
		{"crushed and fast triple", BallInPlay{ContactQuality: 90, Speed: 100}, nil, []float64{0.5}, NewHit(Triple)},
		{"crushed triple", BallInPlay{ContactQuality: 90, Speed: 90}, []int{0}, nil, NewHit(Triple)},
		{"crushed double", BallInPlay{ContactQuality: 90, Speed: 90}, []int{1}, nil, NewHit(Double)},
		{"solid triple", BallInPlay{ContactQuality: 70, Speed: 90}, []int{0}, nil, NewHit(Triple)},
		{"solid double", BallInPlay{ContactQuality: 70, Speed: 90}, []int{3}, nil, NewHit(Double)},
		{"solid single", BallInPlay{ContactQuality: 70, Speed: 90}, []int{6}, nil, NewHit(Single)},
		{"weak single", BallInPlay{ContactQuality: 40, Speed: 70}, nil, nil, NewHit(Single)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptRNG{ints: tc.ints, floats: tc.floats}
			if got := BallGetsThrough(rng, tc.ball); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
