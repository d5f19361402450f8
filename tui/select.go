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
)

// TeamOption is one selectable team.
type TeamOption struct {
	Abbreviation string
	Name         string
}

// ErrSelectionCancelled is returned when the player backs out of the team
// selection screen.
var ErrSelectionCancelled = fmt.Errorf("team selection cancelled")

// SelectTeams runs the pre-game team picker on its own screen and returns
// the chosen away and home abbreviations. The screen is torn down before
// returning so the game loop can open a fresh one.
func SelectTeams(options []TeamOption) (away, home string, err error) {
	if len(options) == 0 {
		return "", "", fmt.Errorf("no teams to choose from")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return "", "", fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return "", "", fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	away, err = pickTeam(screen, options, "Select the AWAY team", "")
	if err != nil {
		return "", "", err
	}
	home, err = pickTeam(screen, options, "Select the HOME team", away)
	if err != nil {
		return "", "", err
	}
	return away, home, nil
}

// pickTeam runs one cursor-driven list selection. taken marks a team
// already chosen for the other side.
func pickTeam(screen tcell.Screen, options []TeamOption, title, taken string) (string, error) {
	cursor := 0
	r := NewRenderer(screen)

	for {
		screen.Clear()
		r.print(2, 1, styleTitle, title)
		r.print(2, 2, styleHint, "Arrows move, ENTER picks, ESC quits.")
		for i, opt := range options {
			style := styleDefault
			prefix := "  "
			if i == cursor {
				style = styleScore
				prefix = "> "
			}
			line := fmt.Sprintf("%s%-4s %s", prefix, opt.Abbreviation, opt.Name)
			if opt.Abbreviation == taken {
				line += "  (away)"
			}
			r.print(2, 4+i, style, line)
		}
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return "", ErrSelectionCancelled
			case tcell.KeyUp:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyDown:
				if cursor < len(options)-1 {
					cursor++
				}
			case tcell.KeyEnter:
				return options[cursor].Abbreviation, nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return "", ErrSelectionCancelled
				}
			}
		}
	}
}
