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

import "fmt"

// Half is the top or bottom of an inning.
type Half int

const (
	TopHalf Half = iota
	BottomHalf
)

func (h Half) String() string {
	if h == TopHalf {
		return "Top"
	}
	return "Bottom"
}

// GameState is the single mutable record for a game in progress. It is
// owned and mutated exclusively by the tick loop; resolvers read from it
// and hand results back through the machine.
//
// At rest, Outs is in [0,2], Balls in [0,3] and Strikes in [0,2]: reaching
// three outs, four balls or three strikes fires the corresponding
// transition and reset within the same step.
type GameState struct {
	Inning    int
	Half      Half
	Outs      int
	Balls     int
	Strikes   int
	HomeScore int
	AwayScore int

	// Bases holds per-base occupancy: first, second, third.
	Bases [BasesCount]bool

	CurrentBatterIdx int

	Pitch PitchState

	// PitchLocation and SwingLocation are set while a pitch is live and
	// cleared when the at-bat state returns to ChoosePitch.
	PitchLocation    *PitchLocation
	SwingLocation    *PitchLocation
	SwingTimingState SwingTiming

	Message  string
	GameOver bool
}

// NewGameState returns the state for the top of the first inning.
func NewGameState() *GameState {
	return &GameState{
		Inning:           1,
		Half:             TopHalf,
		Pitch:            PitchState{Tag: StateChoosePitch},
		SwingTimingState: TimingNoSwing,
		Message:          "Choose your pitch!",
	}
}

// BattingTeamLabel names the side currently at the plate.
func (g *GameState) BattingTeamLabel() string {
	if g.Half == TopHalf {
		return "Away"
	}
	return "Home"
}

// RunnersOn counts occupied bases.
func (g *GameState) RunnersOn() int {
	n := 0
	for _, b := range g.Bases {
		if b {
			n++
		}
	}
	return n
}

// AddRuns credits the batting half's score.
func (g *GameState) AddRuns(runs int) {
	if g.Half == TopHalf {
		g.AwayScore += runs
	} else {
		g.HomeScore += runs
	}
}

// AdvanceBatter resets the count and pitch bookkeeping for the next man up.
func (g *GameState) AdvanceBatter(battingOrderSize int) {
	if battingOrderSize > 0 {
		g.CurrentBatterIdx = (g.CurrentBatterIdx + 1) % battingOrderSize
	}
	g.Balls = 0
	g.Strikes = 0
	g.PitchLocation = nil
	g.SwingLocation = nil
	g.SwingTimingState = TimingNoSwing
}

// AddOut records an out; the third out ends the half inning.
func (g *GameState) AddOut(battingOrderSize int) {
	g.Outs++
	if g.Outs >= MaxOuts {
		g.EndHalfInning(battingOrderSize)
	} else {
		g.AdvanceBatter(battingOrderSize)
	}
}

// EndHalfInning clears the bases and outs and flips the half. Completing
// the bottom of the 9th or later with the score unlevel ends the game;
// a tie sends it to extras.
func (g *GameState) EndHalfInning(battingOrderSize int) {
	if g.Half == TopHalf {
		g.Half = BottomHalf
	} else {
		if g.Inning >= InningsPerGame && g.HomeScore != g.AwayScore {
			g.GameOver = true
			g.Message = fmt.Sprintf("Game Over! Final Score - Home: %d Away: %d", g.HomeScore, g.AwayScore)
		} else {
			g.Inning++
			g.Half = TopHalf
		}
	}
	g.Outs = 0
	g.Bases = [BasesCount]bool{}

	// Pitcher stamina deliberately carries across innings.

	g.AdvanceBatter(battingOrderSize)
}

// AdvanceRunners moves existing runners and places the batter for a play
// worth basesToAdvance bases; zero means a walk (force advances only).
// Runners are processed back to front, third base first, so nobody is
// overwritten. Returns the number of runs that scored.
func (g *GameState) AdvanceRunners(basesToAdvance int) int {
	runnersScored := 0

	if g.Bases[2] {
		if basesToAdvance > 0 {
			runnersScored++
			g.Bases[2] = false
		}
	}
	if g.Bases[1] {
		switch {
		case basesToAdvance >= 2:
			runnersScored++
			g.Bases[1] = false
		case basesToAdvance == 1:
			g.Bases[2] = true
			g.Bases[1] = false
		}
	}
	if g.Bases[0] {
		switch basesToAdvance {
		case 0:
			// Walk: force advance, bases loaded walks in a run.
			if g.Bases[1] {
				if g.Bases[2] {
					runnersScored++
				} else {
					g.Bases[2] = true
				}
			}
			g.Bases[1] = true
		case 1:
			// A single only pushes the runner the batter collides with.
			if !g.Bases[1] {
				g.Bases[1] = true
				g.Bases[0] = false
			}
		case 2:
			g.Bases[2] = true
			g.Bases[0] = false
		case 3, 4:
			runnersScored++
			g.Bases[0] = false
		}
	}

	// Place the batter.
	switch basesToAdvance {
	case 0, 1:
		g.Bases[0] = true
	case 2:
		g.Bases[1] = true
	case 3:
		g.Bases[2] = true
	case 4:
		runnersScored++
	}

	g.AddRuns(runnersScored)
	return runnersScored
}

// ApplyResult runs a resolved play through the ledger: count, walks,
// strikeouts, hits, outs, and the inning/game transitions they trigger.
func (g *GameState) ApplyResult(result PlayResult, battingOrderSize int) {
	switch result.Kind {
	case ResultStrike:
		g.Strikes++
		g.Message = fmt.Sprintf("Strike %d!", g.Strikes)
		if g.Strikes >= MaxStrikes {
			g.Message = "Strike 3! You're out!"
			g.AddOut(battingOrderSize)
		}
	case ResultBall:
		g.Balls++
		g.Message = fmt.Sprintf("Ball %d!", g.Balls)
		if g.Balls >= MaxBalls {
			g.Message = "Ball 4! Walk!"
			g.AdvanceRunners(0)
			g.AdvanceBatter(battingOrderSize)
		}
	case ResultFoul:
		// A foul never produces the third strike.
		if g.Strikes < MaxStrikes-1 {
			g.Strikes++
		}
		g.Message = "Foul ball!"
	case ResultHit:
		switch result.Hit {
		case HomeRun:
			g.Message = "HOME RUN!"
		default:
			g.Message = result.Hit.String() + "!"
		}
		g.AdvanceRunners(result.Hit.Bases())
		g.AdvanceBatter(battingOrderSize)
	case ResultOut:
		g.Message = result.Out.String() + "!"
		g.AddOut(battingOrderSize)
	}
}
