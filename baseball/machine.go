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

// Roster supplies skills and stamina for the matchup. Methods take the
// batting half; implementations resolve which of their teams bats and
// which pitches. A nil ratings return means the player is unknown and the
// resolvers substitute neutral defaults.
type Roster interface {
	Batter(battingHalf Half, idx int) *BatterRatings
	Pitcher(battingHalf Half) *PitcherRatings
	FatiguePenalty(battingHalf Half) float64
	ChargeStamina(battingHalf Half, cost float64)
	BattingOrderSize(battingHalf Half) int
}

// PitchEvent describes one resolved pitch for the log and audio adapters.
type PitchEvent struct {
	PitchNumber    int
	Inning         int
	Half           Half
	Batter         *BatterRatings
	Pitcher        *PitcherRatings
	PitchLocation  PitchLocation
	SwingLocation  *PitchLocation
	Timing         SwingTiming
	ContactQuality int
	HasQuality     bool
	Result         PlayResult
	FatiguePenalty float64
}

// FieldingEvent describes one resolved fielding attempt. AutoResolved is
// true when the window timed out with no attempt; SuccessChance is zero in
// that case.
type FieldingEvent struct {
	Ball          BallInPlay
	Elapsed       int
	PerfectTiming int
	SuccessChance float64
	AutoResolved  bool
	Result        PlayResult
}

// HalfInningEvent summarizes a completed half inning.
type HalfInningEvent struct {
	Inning int
	Half   Half
	Runs   int
	Hits   int
}

// GameEndEvent carries the final line.
type GameEndEvent struct {
	Innings   int
	HomeScore int
	AwayScore int
}

// Sink receives resolved plays and summaries. Implementations render text,
// pick sound cues, or write the structured game log; none of them may
// mutate game state.
type Sink interface {
	PitchResolved(PitchEvent)
	FieldingResolved(FieldingEvent)
	HalfInningEnded(HalfInningEvent)
	GameEnded(GameEndEvent)
}

// InputKind discriminates player intents. Raw keyboard handling lives in
// the terminal adapter; the machine only sees intents.
type InputKind int

const (
	// InputSelectPitch picks a pitch from the repertoire (Pitch field).
	InputSelectPitch InputKind = iota
	// InputCommit is the action key: lock aim, swing, field, or continue,
	// depending on the active state. Location carries the current aim.
	InputCommit
)

// Input is one player intent delivered to the machine.
type Input struct {
	Kind     InputKind
	Pitch    int
	Location PitchLocation
}

// Machine drives the at-bat state once per fixed tick and routes resolved
// plays through the ledger and out to the sinks. It is not safe for
// concurrent use; the tick loop is its only caller.
type Machine struct {
	state  *GameState
	rng    RNG
	roster Roster
	sinks  []Sink

	pitchCount int
	halfRuns   int
	halfHits   int
}

// NewMachine wires a machine over fresh game state.
func NewMachine(roster Roster, rng RNG, sinks ...Sink) *Machine {
	return &Machine{
		state:  NewGameState(),
		rng:    rng,
		roster: roster,
		sinks:  sinks,
	}
}

// State exposes the game state for rendering. Callers must not mutate it.
func (m *Machine) State() *GameState {
	return m.state
}

// PitchCount reports how many pitches have been resolved.
func (m *Machine) PitchCount() int {
	return m.pitchCount
}

// Tick advances the at-bat state by one frame.
func (m *Machine) Tick() {
	g := m.state
	switch g.Pitch.Tag {
	case StatePitchClock:
		m.tickPitchClock()
	case StateBallApproaching:
		m.tickBallApproaching()
	case StateSwinging:
		m.tickSwinging()
	case StateFielding:
		m.tickFielding()
	case StateShowResult:
		m.tickShowResult()
	}
}

func (m *Machine) tickPitchClock() {
	g := m.state
	g.Pitch.FramesLeft--

	secondsLeft := (g.Pitch.FramesLeft + TargetFPS - 1) / TargetFPS
	if secondsLeft <= 3 {
		g.Message = fmt.Sprintf("GET READY! %d...", secondsLeft)
	} else {
		g.Message = fmt.Sprintf("Pitch clock: %ds - Get in position!", secondsLeft)
	}

	if g.Pitch.FramesLeft <= 0 {
		g.Pitch = ballApproachingState(g.Pitch.PitchType)
		g.Message = "Here comes the pitch! Watch the ball!"
	}
}

func (m *Machine) tickBallApproaching() {
	g := m.state
	g.Pitch.FramesLeft--
	g.Pitch.BallPosition = 1.0 - float64(g.Pitch.FramesLeft)/float64(BallApproachFrames)

	if g.Pitch.FramesLeft <= SwingWindowFrames && !g.Pitch.CanSwing {
		g.Pitch.CanSwing = true
		g.Message = "SWING NOW! Time your swing!"
	}
	if g.Pitch.CanSwing {
		if g.Pitch.FramesLeft <= PerfectWindowFrames {
			g.Message = "PERFECT TIMING!"
		} else if g.Pitch.FramesLeft <= PerfectWindowFrames+EarlyLateWindowFrames {
			g.Message = "Good timing zone..."
		}
	}

	if g.Pitch.FramesLeft <= 0 {
		// Ball reaches the plate untouched: a take, decided by the zone.
		g.SwingTimingState = TimingNoSwing
		m.resolvePitch(nil, TimingNoSwing)
		g.Message = "Taken! " + g.Message
	}
}

func (m *Machine) tickSwinging() {
	g := m.state
	g.Pitch.FramesLeft--
	if g.Pitch.FramesLeft <= 0 {
		swing := g.SwingLocation
		m.resolvePitch(swing, g.Pitch.Timing)
	}
}

func (m *Machine) tickFielding() {
	g := m.state
	g.Pitch.FramesElapsed++

	if g.Pitch.FramesElapsed >= FieldingTimeout(g.Pitch.Ball) {
		// Nobody made a play; the ball finds grass.
		ball := g.Pitch.Ball
		result := BallGetsThrough(m.rng, ball)
		m.emitFielding(FieldingEvent{
			Ball:          ball,
			Elapsed:       g.Pitch.FramesElapsed,
			PerfectTiming: PerfectFieldingTiming(ball),
			AutoResolved:  true,
			Result:        result,
		})
		m.applyResult(result)
		g.Pitch = showResultState(result)
	}
}

func (m *Machine) tickShowResult() {
	g := m.state
	if g.GameOver {
		return
	}
	g.Pitch.FramesLeft--
	if g.Pitch.FramesLeft <= 0 {
		m.nextPitch()
	}
}

// Handle routes a player intent into the active state. Unexpected intents
// are ignored.
func (m *Machine) Handle(in Input) {
	g := m.state
	if g.GameOver {
		return
	}

	switch g.Pitch.Tag {
	case StateChoosePitch:
		if in.Kind == InputSelectPitch && in.Pitch >= 0 && in.Pitch < len(PitchTypes) {
			g.Pitch = aimingState(in.Pitch)
			g.Message = fmt.Sprintf("Aiming %s. Arrows or 1-9 to aim, SPACE to pitch.", PitchName(in.Pitch))
		}
	case StateAiming:
		if in.Kind == InputCommit {
			loc := in.Location
			g.PitchLocation = &loc
			g.Pitch = pitchClockState(g.Pitch.PitchType)
			g.Message = "Get ready! Pitch clock started..."
		}
	case StateBallApproaching:
		if in.Kind == InputCommit {
			loc := in.Location
			timing := TimingFromFrames(g.Pitch.FramesLeft, g.Pitch.CanSwing)
			g.SwingLocation = &loc
			g.SwingTimingState = timing
			g.Pitch = swingingState(timing)
			g.Message = fmt.Sprintf("Swing! (%s)", timing)
		}
	case StateFielding:
		if in.Kind == InputCommit {
			ball := g.Pitch.Ball
			elapsed := g.Pitch.FramesElapsed
			result, successChance := ResolveFielding(m.rng, ball, elapsed)
			m.emitFielding(FieldingEvent{
				Ball:          ball,
				Elapsed:       elapsed,
				PerfectTiming: PerfectFieldingTiming(ball),
				SuccessChance: successChance,
				Result:        result,
			})
			m.applyResult(result)
			g.Pitch = showResultState(result)
		}
	case StateShowResult:
		if in.Kind == InputCommit {
			m.nextPitch()
		}
	}
}

// resolvePitch charges stamina, runs the contact resolver with everything
// accumulated during the approach, and transitions out of the live pitch.
// Called with a nil swing for takes.
func (m *Machine) resolvePitch(swing *PitchLocation, timing SwingTiming) {
	g := m.state

	pitchLoc := LocationMiddle
	if g.PitchLocation != nil {
		pitchLoc = *g.PitchLocation
	}

	batter := m.roster.Batter(g.Half, g.CurrentBatterIdx)
	pitcher := m.roster.Pitcher(g.Half)
	fatigue := m.roster.FatiguePenalty(g.Half)

	cost := StaminaCostTake
	if swing != nil {
		cost = StaminaCostSwing
	}
	m.roster.ChargeStamina(g.Half, cost)

	contact := ResolveContact(m.rng, ContactInput{
		PitchLocation:  pitchLoc,
		SwingLocation:  swing,
		Timing:         timing,
		Batter:         batter,
		Pitcher:        pitcher,
		FatiguePenalty: fatigue,
	})

	m.pitchCount++
	ev := PitchEvent{
		PitchNumber:    m.pitchCount,
		Inning:         g.Inning,
		Half:           g.Half,
		Batter:         batter,
		Pitcher:        pitcher,
		PitchLocation:  pitchLoc,
		SwingLocation:  swing,
		Timing:         timing,
		ContactQuality: contact.Quality,
		HasQuality:     contact.HasQuality,
		Result:         contact.Result,
		FatiguePenalty: fatigue,
	}
	for _, s := range m.sinks {
		s.PitchResolved(ev)
	}

	if contact.Result.IsHit() && contact.HasQuality {
		ball := GenerateBallInPlay(m.rng, contact.Quality, batter)
		g.Pitch = fieldingState(ball)
		g.Message = fmt.Sprintf("%s to %s! Press SPACE to field!", ball.Type, ball.Direction)
		return
	}

	m.applyResult(contact.Result)
	g.Pitch = showResultState(contact.Result)
}

// applyResult runs a play through the ledger and emits the half-inning and
// game-end summaries the transition may trigger.
func (m *Machine) applyResult(result PlayResult) {
	g := m.state
	prevInning, prevHalf := g.Inning, g.Half
	prevAway, prevHome := g.AwayScore, g.HomeScore

	if result.IsHit() {
		m.halfHits++
	}

	g.ApplyResult(result, m.roster.BattingOrderSize(g.Half))

	m.halfRuns += (g.AwayScore - prevAway) + (g.HomeScore - prevHome)

	if g.Half != prevHalf || g.Inning != prevInning || g.GameOver {
		ev := HalfInningEvent{Inning: prevInning, Half: prevHalf, Runs: m.halfRuns, Hits: m.halfHits}
		for _, s := range m.sinks {
			s.HalfInningEnded(ev)
		}
		m.halfRuns = 0
		m.halfHits = 0
	}

	if g.GameOver {
		ev := GameEndEvent{Innings: g.Inning, HomeScore: g.HomeScore, AwayScore: g.AwayScore}
		for _, s := range m.sinks {
			s.GameEnded(ev)
		}
	}
}

func (m *Machine) emitFielding(ev FieldingEvent) {
	for _, s := range m.sinks {
		s.FieldingResolved(ev)
	}
}

// nextPitch returns to pitch selection and clears the live-pitch fields.
func (m *Machine) nextPitch() {
	g := m.state
	g.Pitch = choosePitchState()
	g.PitchLocation = nil
	g.SwingLocation = nil
	g.SwingTimingState = TimingNoSwing
	g.Message = "Choose your pitch!"
}
