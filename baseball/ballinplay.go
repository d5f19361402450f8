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

// BallType classifies the trajectory of a batted ball.
type BallType int

const (
	Grounder BallType = iota
	LineDrive
	FlyBall
	PopFly
)

func (b BallType) String() string {
	switch b {
	case Grounder:
		return "Grounder"
	case LineDrive:
		return "Line Drive"
	case FlyBall:
		return "Fly Ball"
	case PopFly:
		return "Pop Fly"
	default:
		return "Unknown"
	}
}

// InAir reports whether the ball is catchable before it lands.
func (b BallType) InAir() bool {
	return b != Grounder
}

// FieldDirection is the lane or infield position a batted ball heads toward.
type FieldDirection int

const (
	ThirdBase FieldDirection = iota
	Shortstop
	SecondBase
	FirstBase
	LeftField
	LeftCenter
	CenterField
	RightCenter
	RightField
)

func (d FieldDirection) String() string {
	switch d {
	case ThirdBase:
		return "Third Base"
	case Shortstop:
		return "Shortstop"
	case SecondBase:
		return "Second Base"
	case FirstBase:
		return "First Base"
	case LeftField:
		return "Left Field"
	case LeftCenter:
		return "Left-Center"
	case CenterField:
		return "Center Field"
	case RightCenter:
		return "Right-Center"
	case RightField:
		return "Right Field"
	default:
		return "Unknown"
	}
}

// BallInPlay is the physical description of a batted ball. It is built once
// by the generator and never modified; the fielding state owns it for the
// duration of the play.
type BallInPlay struct {
	Type           BallType
	Direction      FieldDirection
	Speed          float64 // mph off the bat
	HangTime       int     // frames until the ball lands
	ContactQuality int     // the 1-100 quality that produced this ball
}
