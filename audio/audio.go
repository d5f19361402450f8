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

// Package audio plays the game's sound effects. Cue selection is a pure
// mapping from resolved plays to wav file names, kept separate from
// playback so it can be tested without a sound device.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/BitEU/BitBatter/baseball"
)

// Cue is the base name of one wav file in the sounds directory.
type Cue string

const (
	CueBatContact  Cue = "bat.wav"
	CueCatch       Cue = "catch.wav"
	CueGround1     Cue = "ground_1.wav"
	CueGround2     Cue = "ground_2.wav"
	CueMiss1       Cue = "miss_1.wav"
	CueMiss2       Cue = "miss_2.wav"
	CueMiss3       Cue = "miss_3.wav"
	CueCheerSingle Cue = "cheer_single.wav"
	CueCheerDouble Cue = "cheer_double.wav"
	CueCheerBig    Cue = "cheer_triple_and_homer.wav"
)

// AllCues lists every cue the player preloads.
var AllCues = []Cue{
	CueBatContact, CueCatch,
	CueGround1, CueGround2,
	CueMiss1, CueMiss2, CueMiss3,
	CueCheerSingle, CueCheerDouble, CueCheerBig,
}

// GroundCue picks one of the ground ball sounds.
func GroundCue(rng baseball.RNG) Cue {
	if rng.IntN(2) == 0 {
		return CueGround1
	}
	return CueGround2
}

// MissCue picks one of the swing-and-miss sounds.
func MissCue(rng baseball.RNG) Cue {
	switch rng.IntN(3) {
	case 0:
		return CueMiss1
	case 1:
		return CueMiss2
	default:
		return CueMiss3
	}
}

// CheerCue maps a hit to its crowd reaction.
func CheerCue(hit baseball.HitType) Cue {
	switch hit {
	case baseball.Single:
		return CueCheerSingle
	case baseball.Double:
		return CueCheerDouble
	default:
		return CueCheerBig
	}
}

// CheerCueForQuality maps contact quality to a crowd reaction; used when a
// ball gets through before the hit type is on screen.
func CheerCueForQuality(quality int) Cue {
	switch {
	case quality >= baseball.ContactExcellentMin:
		return CueCheerBig
	case quality >= 60:
		return CueCheerDouble
	default:
		return CueCheerSingle
	}
}

// PitchCues maps one resolved pitch to the cues it triggers, in order.
func PitchCues(rng baseball.RNG, ev baseball.PitchEvent) []Cue {
	// Takes are silent; the umpire speaks through the message line.
	if ev.SwingLocation == nil {
		return nil
	}
	switch ev.Result.Kind {
	case baseball.ResultStrike:
		return []Cue{MissCue(rng)}
	case baseball.ResultFoul:
		return []Cue{CueBatContact}
	case baseball.ResultHit:
		return []Cue{CueBatContact}
	case baseball.ResultOut:
		// An out on contact, like a chased pop-up, still cracks the bat.
		if ev.HasQuality {
			return []Cue{CueBatContact}
		}
		return nil
	default:
		return nil
	}
}

// FieldingCues maps one resolved fielding play to its cues.
func FieldingCues(rng baseball.RNG, ev baseball.FieldingEvent) []Cue {
	if ev.Result.IsOut() {
		if ev.Ball.Type.InAir() {
			return []Cue{CueCatch}
		}
		return []Cue{GroundCue(rng)}
	}
	cues := []Cue{}
	if !ev.Ball.Type.InAir() {
		cues = append(cues, GroundCue(rng))
	}
	if ev.Result.IsHit() {
		cues = append(cues, CheerCue(ev.Result.Hit))
	}
	return cues
}

// Player preloads the cue files and implements baseball.Sink. A Player
// built with no sounds directory is silent but still valid.
type Player struct {
	rng     baseball.RNG
	format  beep.Format
	buffers map[Cue]*beep.Buffer
	enabled bool
}

// NewPlayer loads every cue from soundsDir and initializes the speaker.
// Missing files are skipped; a missing directory disables audio entirely.
func NewPlayer(soundsDir string, rng baseball.RNG) (*Player, error) {
	p := &Player{rng: rng, buffers: make(map[Cue]*beep.Buffer)}
	if soundsDir == "" {
		return p, nil
	}
	if _, err := os.Stat(soundsDir); err != nil {
		return p, nil
	}

	for _, cue := range AllCues {
		f, err := os.Open(filepath.Join(soundsDir, string(cue)))
		if err != nil {
			continue
		}
		streamer, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			continue
		}
		if !p.enabled {
			p.format = format
			if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
				streamer.Close()
				return nil, fmt.Errorf("init speaker: %w", err)
			}
			p.enabled = true
		}
		buf := beep.NewBuffer(p.format)
		if format.SampleRate == p.format.SampleRate {
			buf.Append(streamer)
		} else {
			buf.Append(beep.Resample(4, format.SampleRate, p.format.SampleRate, streamer))
		}
		streamer.Close()
		p.buffers[cue] = buf
	}
	return p, nil
}

// Play fires one cue without blocking. Unknown cues are dropped.
func (p *Player) Play(cue Cue) {
	if !p.enabled {
		return
	}
	buf, ok := p.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// PitchResolved plays the contact or whiff sound.
func (p *Player) PitchResolved(ev baseball.PitchEvent) {
	for _, cue := range PitchCues(p.rng, ev) {
		p.Play(cue)
	}
}

// FieldingResolved plays the catch, ground, and cheer sounds.
func (p *Player) FieldingResolved(ev baseball.FieldingEvent) {
	for _, cue := range FieldingCues(p.rng, ev) {
		p.Play(cue)
	}
}

// HalfInningEnded is part of baseball.Sink; no sound is tied to it.
func (p *Player) HalfInningEnded(baseball.HalfInningEvent) {}

// GameEnded plays the big cheer over the final line.
func (p *Player) GameEnded(baseball.GameEndEvent) {
	p.Play(CueCheerBig)
}
