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

// Package tui renders the game in a terminal with tcell and translates
// keystrokes into the intents the game machine understands.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/BitEU/BitBatter/baseball"
)

// InputState accumulates direction keys between commits so that diagonal
// aim (e.g. up+inside) can be entered as two presses.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// aimed is set when a numpad digit picks a zone directly; it
	// overrides the held directions until the next reset.
	aimed    bool
	aimedLoc baseball.PitchLocation
}

// Reset clears all held directions and any direct aim.
func (s *InputState) Reset() {
	*s = InputState{}
}

// Location resolves the current aim. Left is inside, right is outside,
// matching the batter's view from behind the plate.
func (s *InputState) Location() baseball.PitchLocation {
	if s.aimed {
		return s.aimedLoc
	}
	return baseball.LocationFromDirection(s.Up, s.Down, s.Left, s.Right)
}

// Action is what the event loop should do with a translated key.
type Action int

const (
	// ActionNone: the key did not produce a machine input.
	ActionNone Action = iota
	// ActionInput: deliver Input to the machine.
	ActionInput
	// ActionQuit: the player asked to leave (two-press confirm is the
	// caller's job).
	ActionQuit
)

// Translated is the outcome of mapping one key event.
type Translated struct {
	Action Action
	Input  baseball.Input
}

func machineInput(in baseball.Input) Translated {
	return Translated{Action: ActionInput, Input: in}
}

// Translate maps one tcell key event to a machine intent given the active
// at-bat state. Direction keys mutate the input state and produce no
// intent; SPACE commits with the current aim.
func (s *InputState) Translate(ev *tcell.EventKey, tag baseball.StateTag) Translated {
	if ev.Key() == tcell.KeyEscape {
		return Translated{Action: ActionQuit}
	}

	switch ev.Key() {
	case tcell.KeyUp:
		s.Up, s.Down = true, false
		return Translated{}
	case tcell.KeyDown:
		s.Down, s.Up = true, false
		return Translated{}
	case tcell.KeyLeft:
		s.Left, s.Right = true, false
		return Translated{}
	case tcell.KeyRight:
		s.Right, s.Left = true, false
		return Translated{}
	}

	if ev.Key() != tcell.KeyRune {
		return Translated{}
	}

	r := ev.Rune()
	switch r {
	case 'q', 'Q':
		return Translated{Action: ActionQuit}
	case ' ':
		return machineInput(baseball.Input{Kind: baseball.InputCommit, Location: s.Location()})
	case 'c', 'C':
		// Continue is the same commit intent; only ShowResult reacts.
		if tag == baseball.StateShowResult {
			return machineInput(baseball.Input{Kind: baseball.InputCommit})
		}
		return Translated{}
	}

	if r >= '1' && r <= '9' {
		n := int(r - '0')
		// During pitch selection low digits pick from the repertoire;
		// everywhere else digits aim numpad-style.
		if tag == baseball.StateChoosePitch {
			if n <= len(baseball.PitchTypes) {
				return machineInput(baseball.Input{Kind: baseball.InputSelectPitch, Pitch: n - 1})
			}
			return Translated{}
		}
		s.aimed = true
		s.aimedLoc = baseball.LocationFromNumpad(n)
		return Translated{}
	}

	return Translated{}
}
