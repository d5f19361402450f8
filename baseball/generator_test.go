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

func TestGenerateBallInPlayInvariants(t *testing.T) {
	rng := NewRand(11)
	for quality := -20; quality <= 120; quality += 5 {
		ball := GenerateBallInPlay(rng, quality, nil)

		if ball.ContactQuality < 1 || ball.ContactQuality > 100 {
			t.Fatalf("quality %d: ContactQuality %d out of [1, 100]", quality, ball.ContactQuality)
		}
		if ball.Speed <= 0 {
			t.Fatalf("quality %d: exit speed %v", quality, ball.Speed)
		}
		if ball.Type == Grounder {
			if ball.HangTime != 0 {
				t.Fatalf("quality %d: grounder with hang time %d", quality, ball.HangTime)
			}
			if ball.Type.InAir() {
				t.Fatalf("grounder reported in air")
			}
		} else {
			if ball.HangTime <= 0 {
				t.Fatalf("quality %d: %s with hang time %d", quality, ball.Type, ball.HangTime)
			}
			if !ball.Type.InAir() {
				t.Fatalf("%s not reported in air", ball.Type)
			}
		}
	}
}

func TestGenerateBallInPlayExcellentBand(t *testing.T) {
	// First float decides fly ball vs line drive.
	ball := GenerateBallInPlay(&scriptRNG{floats: []float64{0.5, 0.5}, ints: []int{10, 3}}, 90, nil)
	if ball.Type != FlyBall {
		t.Fatalf("ball type = %s, want FlyBall", ball.Type)
	}
	if ball.Speed < 80 || ball.Speed >= 100 {
		t.Errorf("fly ball speed %v outside [80, 100)", ball.Speed)
	}
	if ball.HangTime < 60 || ball.HangTime > 90 {
		t.Errorf("fly ball hang time %d outside [60, 90]", ball.HangTime)
	}

	ball = GenerateBallInPlay(&scriptRNG{floats: []float64{0.7, 0.5}, ints: []int{10, 3}}, 90, nil)
	if ball.Type != LineDrive {
		t.Fatalf("ball type = %s, want LineDrive", ball.Type)
	}
	if ball.Speed < 90 || ball.Speed >= 110 {
		t.Errorf("line drive speed %v outside [90, 110)", ball.Speed)
	}
}

func TestGenerateBallInPlayWeakContactTendency(t *testing.T) {
	groundBaller := &BatterRatings{Name: "Worm Killer", GroundBallPercent: 100}
	flyBaller := &BatterRatings{Name: "Uppercut", GroundBallPercent: 0}

	rng := NewRand(3)
	for i := 0; i < 50; i++ {
		if ball := GenerateBallInPlay(rng, 10, groundBaller); ball.Type != Grounder {
			t.Fatalf("100%% ground ball tendency produced %s", ball.Type)
		}
		if ball := GenerateBallInPlay(rng, 10, flyBaller); ball.Type != PopFly {
			t.Fatalf("0%% ground ball tendency produced %s", ball.Type)
		}
	}
}

func TestDrawDirectionLanes(t *testing.T) {
	rng := NewRand(5)
	infield := map[FieldDirection]bool{
		ThirdBase: true, Shortstop: true, SecondBase: true, FirstBase: true,
	}
	outfield := map[FieldDirection]bool{
		LeftField: true, LeftCenter: true, CenterField: true,
		RightCenter: true, RightField: true,
	}

	for i := 0; i < 200; i++ {
		if d := drawDirection(rng, Grounder); !infield[d] {
			t.Fatalf("grounder to %s", d)
		}
		if d := drawDirection(rng, FlyBall); !outfield[d] {
			t.Fatalf("fly ball to %s", d)
		}
		if d := drawDirection(rng, PopFly); !outfield[d] {
			t.Fatalf("pop fly to %s", d)
		}
		// Line drives may go anywhere.
		d := drawDirection(rng, LineDrive)
		if !infield[d] && !outfield[d] {
			t.Fatalf("line drive to unknown lane %s", d)
		}
	}
}
