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

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/BitEU/BitBatter/baseball"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleScore    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBaseOn   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBaseOff  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleZone     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAim      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleMeter    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleMeterHot = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer draws the game onto a tcell screen once per tick.
type Renderer struct {
	screen tcell.Screen

	HomeName string
	AwayName string
}

// NewRenderer wraps an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, HomeName: "Home", AwayName: "Away"}
}

func (r *Renderer) print(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Draw renders one frame. confirmQuit shows the quit prompt instead of the
// normal message line.
func (r *Renderer) Draw(g *baseball.GameState, in *InputState, pitchCount int, confirmQuit bool) {
	r.screen.Clear()

	r.drawScoreboard(g, pitchCount)
	r.drawDiamond(g, 2, 6)
	r.drawZone(g, in, 30, 6)
	r.drawStatePanel(g, 2, 14)

	if confirmQuit {
		r.print(2, 20, styleAim, "Quit game? Press Q again to confirm, any other key to stay.")
	} else {
		r.print(2, 20, styleMessage, g.Message)
	}
	r.drawHints(g, 2, 22)

	r.screen.Show()
}

func (r *Renderer) drawScoreboard(g *baseball.GameState, pitchCount int) {
	r.print(2, 1, styleTitle, "BitBatter")
	line := fmt.Sprintf("%s %d - %d %s", r.AwayName, g.AwayScore, g.HomeScore, r.HomeName)
	r.print(2, 2, styleScore, line)
	half := fmt.Sprintf("%s %d | Outs: %d | Count: %d-%d | Pitches: %d",
		g.Half, g.Inning, g.Outs, g.Balls, g.Strikes, pitchCount)
	r.print(2, 3, styleDefault, half)
	r.print(2, 4, styleDefault, fmt.Sprintf("At bat: %s (#%d)", g.BattingTeamLabel(), g.CurrentBatterIdx+1))
}

// drawDiamond shows base occupancy as a small diamond.
func (r *Renderer) drawDiamond(g *baseball.GameState, x, y int) {
	base := func(on bool) (rune, tcell.Style) {
		if on {
			return '◆', styleBaseOn
		}
		return '◇', styleBaseOff
	}
	ch2, st2 := base(g.Bases[1])
	r.screen.SetContent(x+6, y, ch2, nil, st2)
	ch3, st3 := base(g.Bases[2])
	r.screen.SetContent(x+2, y+2, ch3, nil, st3)
	ch1, st1 := base(g.Bases[0])
	r.screen.SetContent(x+10, y+2, ch1, nil, st1)
	r.screen.SetContent(x+6, y+4, '⌂', nil, styleBaseOff)
	r.print(x, y+6, styleHint, fmt.Sprintf("Runners on: %d", g.RunnersOn()))
}

// zoneGrid lays the nine locations out as the pitcher sees them.
var zoneGrid = [3][3]baseball.PitchLocation{
	{baseball.LocationUpInside, baseball.LocationUp, baseball.LocationUpOutside},
	{baseball.LocationInside, baseball.LocationMiddle, baseball.LocationOutside},
	{baseball.LocationDownInside, baseball.LocationDown, baseball.LocationDownOutside},
}

// drawZone renders the 3x3 strike zone with the current aim highlighted.
func (r *Renderer) drawZone(g *baseball.GameState, in *InputState, x, y int) {
	r.print(x, y-1, styleHint, "Strike zone")

	var aim *baseball.PitchLocation
	switch g.Pitch.Tag {
	case baseball.StateAiming:
		loc := in.Location()
		aim = &loc
	case baseball.StateBallApproaching:
		loc := in.Location()
		aim = &loc
	case baseball.StateShowResult, baseball.StateFielding:
		aim = g.PitchLocation
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			loc := zoneGrid[row][col]
			style := styleZone
			ch := '·'
			if g.PitchLocation != nil && *g.PitchLocation == loc && g.Pitch.Tag != baseball.StateAiming {
				ch = 'o'
			}
			if aim != nil && *aim == loc {
				ch = 'X'
				style = styleAim
			}
			r.screen.SetContent(x+col*2, y+row, ch, nil, style)
		}
	}
}

// drawStatePanel renders what the active at-bat state needs: the pitch
// menu, the clock, the approach meter, or the fielding meter.
func (r *Renderer) drawStatePanel(g *baseball.GameState, x, y int) {
	switch g.Pitch.Tag {
	case baseball.StateChoosePitch:
		r.print(x, y, styleDefault, "Choose a pitch:")
		for i, pt := range baseball.PitchTypes {
			line := fmt.Sprintf("  %d. %-9s %3d mph", i+1, pt.Name, pt.Speed)
			r.print(x, y+1+i, styleDefault, line)
		}

	case baseball.StateAiming:
		r.print(x, y, styleDefault, fmt.Sprintf("Pitch: %s", baseball.PitchName(g.Pitch.PitchType)))
		r.print(x, y+1, styleDefault, "Aim with arrows or 1-9, SPACE to pitch.")

	case baseball.StatePitchClock:
		secs := (g.Pitch.FramesLeft + baseball.TargetFPS - 1) / baseball.TargetFPS
		r.print(x, y, styleDefault, fmt.Sprintf("Pitch clock: %d", secs))
		r.drawMeter(x, y+1, g.Pitch.FramesLeft, baseball.PitchClockFrames, false)

	case baseball.StateBallApproaching:
		r.print(x, y, styleDefault, fmt.Sprintf("%s incoming!", baseball.PitchName(g.Pitch.PitchType)))
		hot := g.Pitch.CanSwing
		r.drawMeter(x, y+1, baseball.BallApproachFrames-g.Pitch.FramesLeft, baseball.BallApproachFrames, hot)
		if hot {
			r.print(x, y+2, styleMeterHot, "SWING WINDOW OPEN - SPACE to swing!")
		}

	case baseball.StateSwinging:
		r.print(x, y, styleDefault, fmt.Sprintf("Swinging... (%s)", g.Pitch.Timing))

	case baseball.StateFielding:
		ball := g.Pitch.Ball
		r.print(x, y, styleDefault, fmt.Sprintf("%s to %s, %.0f mph", ball.Type, ball.Direction, ball.Speed))
		perfect := baseball.PerfectFieldingTiming(ball)
		timeout := baseball.FieldingTimeout(ball)
		hot := g.Pitch.FramesElapsed >= perfect-int(baseball.FieldingTimingWindow) &&
			g.Pitch.FramesElapsed <= perfect+int(baseball.FieldingTimingWindow)
		r.drawMeter(x, y+1, g.Pitch.FramesElapsed, timeout, hot)
		r.print(x, y+2, styleHint, "SPACE to make the play!")

	case baseball.StateShowResult:
		r.print(x, y, styleScore, g.Pitch.Result.String())
		if g.SwingTimingState != baseball.TimingNoSwing {
			r.print(x, y+1, styleHint, fmt.Sprintf("Timing: %s", g.SwingTimingState))
		}
	}
}

// drawMeter renders a 30-cell progress bar.
func (r *Renderer) drawMeter(x, y, value, max int, hot bool) {
	const width = 30
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	style := styleMeter
	if hot {
		style = styleMeterHot
	}
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawHints(g *baseball.GameState, x, y int) {
	if g.GameOver {
		r.print(x, y, styleHint, "Game over. Q to exit.")
		return
	}
	switch g.Pitch.Tag {
	case baseball.StateChoosePitch:
		r.print(x, y, styleHint, "1-4 pick a pitch | Q quit")
	case baseball.StateShowResult:
		r.print(x, y, styleHint, "C or SPACE for next pitch | Q quit")
	default:
		r.print(x, y, styleHint, "Arrows aim | SPACE act | Q quit")
	}
}
