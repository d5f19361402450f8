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
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/BitEU/BitBatter/baseball"
)

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestTranslateQuit(t *testing.T) {
	var s InputState
	for _, ev := range []*tcell.EventKey{runeKey('q'), runeKey('Q'), key(tcell.KeyEscape)} {
		if got := s.Translate(ev, baseball.StateChoosePitch); got.Action != ActionQuit {
			t.Errorf("quit key did not translate to ActionQuit")
		}
	}
}

func TestTranslatePitchSelection(t *testing.T) {
	var s InputState

	got := s.Translate(runeKey('1'), baseball.StateChoosePitch)
	if got.Action != ActionInput || got.Input.Kind != baseball.InputSelectPitch || got.Input.Pitch != 0 {
		t.Errorf("'1' in ChoosePitch = %+v", got)
	}
	got = s.Translate(runeKey('4'), baseball.StateChoosePitch)
	if got.Action != ActionInput || got.Input.Pitch != 3 {
		t.Errorf("'4' in ChoosePitch = %+v", got)
	}
	// Beyond the repertoire: nothing.
	if got := s.Translate(runeKey('9'), baseball.StateChoosePitch); got.Action != ActionNone {
		t.Errorf("'9' in ChoosePitch = %+v, want no action", got)
	}
}

func TestTranslateArrowAim(t *testing.T) {
	var s InputState

	s.Translate(key(tcell.KeyUp), baseball.StateAiming)
	s.Translate(key(tcell.KeyLeft), baseball.StateAiming)
	got := s.Translate(runeKey(' '), baseball.StateAiming)
	if got.Action != ActionInput || got.Input.Kind != baseball.InputCommit {
		t.Fatalf("space = %+v, want a commit", got)
	}
	if got.Input.Location != baseball.LocationUpInside {
		t.Errorf("aim = %s, want Up-Inside", got.Input.Location)
	}

	// Opposing directions replace each other rather than cancel to Middle.
	s.Reset()
	s.Translate(key(tcell.KeyUp), baseball.StateAiming)
	s.Translate(key(tcell.KeyDown), baseball.StateAiming)
	if got := s.Location(); got != baseball.LocationDown {
		t.Errorf("up then down = %s, want Down", got)
	}
}

func TestTranslateNumpadAim(t *testing.T) {
	var s InputState

	s.Translate(runeKey('7'), baseball.StateAiming)
	if got := s.Location(); got != baseball.LocationUpInside {
		t.Errorf("numpad 7 aim = %s, want Up-Inside", got)
	}

	// Direct aim survives until reset.
	s.Translate(key(tcell.KeyDown), baseball.StateAiming)
	if got := s.Location(); got != baseball.LocationUpInside {
		t.Errorf("direct aim overridden by arrow: %s", got)
	}
	s.Reset()
	if got := s.Location(); got != baseball.LocationMiddle {
		t.Errorf("aim after reset = %s, want Middle", got)
	}
}

func TestTranslateContinue(t *testing.T) {
	var s InputState

	got := s.Translate(runeKey('c'), baseball.StateShowResult)
	if got.Action != ActionInput || got.Input.Kind != baseball.InputCommit {
		t.Errorf("'c' in ShowResult = %+v, want a commit", got)
	}
	if got := s.Translate(runeKey('c'), baseball.StateBallApproaching); got.Action != ActionNone {
		t.Errorf("'c' mid-pitch = %+v, want no action", got)
	}
}

func TestTranslateSwingDuringApproach(t *testing.T) {
	var s InputState

	// Digits aim instead of selecting a pitch once the ball is live.
	s.Translate(runeKey('3'), baseball.StateBallApproaching)
	got := s.Translate(runeKey(' '), baseball.StateBallApproaching)
	if got.Action != ActionInput || got.Input.Location != baseball.LocationDownOutside {
		t.Errorf("swing commit = %+v, want Down-Outside", got)
	}
}
