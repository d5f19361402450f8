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

package audio

import (
	"testing"

	"github.com/BitEU/BitBatter/baseball"
)

func TestCheerCue(t *testing.T) {
	tests := []struct {
		hit  baseball.HitType
		want Cue
	}{
		{baseball.Single, CueCheerSingle},
		{baseball.Double, CueCheerDouble},
		{baseball.Triple, CueCheerBig},
		{baseball.HomeRun, CueCheerBig},
	}
	for _, tc := range tests {
		if got := CheerCue(tc.hit); got != tc.want {
			t.Errorf("CheerCue(%s) = %s, want %s", tc.hit, got, tc.want)
		}
	}
}

func TestCheerCueForQuality(t *testing.T) {
	tests := []struct {
		quality int
		want    Cue
	}{
		{100, CueCheerBig},
		{85, CueCheerBig},
		{84, CueCheerDouble},
		{60, CueCheerDouble},
		{59, CueCheerSingle},
		{1, CueCheerSingle},
	}
	for _, tc := range tests {
		if got := CheerCueForQuality(tc.quality); got != tc.want {
			t.Errorf("CheerCueForQuality(%d) = %s, want %s", tc.quality, got, tc.want)
		}
	}
}

func TestPitchCues(t *testing.T) {
	swing := baseball.LocationMiddle
	rng := baseball.NewRand(1)

	// Takes are silent.
	cues := PitchCues(rng, baseball.PitchEvent{Result: baseball.Strike()})
	if len(cues) != 0 {
		t.Errorf("take produced cues: %v", cues)
	}

	// A whiff plays one of the miss sounds.
	cues = PitchCues(rng, baseball.PitchEvent{SwingLocation: &swing, Result: baseball.Strike()})
	if len(cues) != 1 {
		t.Fatalf("whiff cues = %v", cues)
	}
	switch cues[0] {
	case CueMiss1, CueMiss2, CueMiss3:
	default:
		t.Errorf("whiff cue = %s, want a miss sound", cues[0])
	}

	// Contact plays the bat crack.
	for _, result := range []baseball.PlayResult{baseball.Foul(), baseball.NewHit(baseball.Single)} {
		cues = PitchCues(rng, baseball.PitchEvent{SwingLocation: &swing, Result: result})
		if len(cues) != 1 || cues[0] != CueBatContact {
			t.Errorf("%s cues = %v, want [%s]", result, cues, CueBatContact)
		}
	}

	// An out on contact cracks the bat too.
	cues = PitchCues(rng, baseball.PitchEvent{
		SwingLocation:  &swing,
		Result:         baseball.NewOut(baseball.Flyout),
		ContactQuality: 15,
		HasQuality:     true,
	})
	if len(cues) != 1 || cues[0] != CueBatContact {
		t.Errorf("contact out cues = %v, want [%s]", cues, CueBatContact)
	}
}

func TestFieldingCues(t *testing.T) {
	rng := baseball.NewRand(2)

	// A caught fly ball is a catch.
	cues := FieldingCues(rng, baseball.FieldingEvent{
		Ball:   baseball.BallInPlay{Type: baseball.FlyBall},
		Result: baseball.NewOut(baseball.Flyout),
	})
	if len(cues) != 1 || cues[0] != CueCatch {
		t.Errorf("caught fly cues = %v, want [%s]", cues, CueCatch)
	}

	// A fielded grounder rolls first.
	cues = FieldingCues(rng, baseball.FieldingEvent{
		Ball:   baseball.BallInPlay{Type: baseball.Grounder},
		Result: baseball.NewOut(baseball.Groundout),
	})
	if len(cues) != 1 || (cues[0] != CueGround1 && cues[0] != CueGround2) {
		t.Errorf("grounder out cues = %v, want a ground sound", cues)
	}

	// A grounder through the infield rolls, then the crowd reacts.
	cues = FieldingCues(rng, baseball.FieldingEvent{
		Ball:   baseball.BallInPlay{Type: baseball.Grounder},
		Result: baseball.NewHit(baseball.Single),
	})
	if len(cues) != 2 {
		t.Fatalf("grounder hit cues = %v, want 2", cues)
	}
	if cues[1] != CueCheerSingle {
		t.Errorf("grounder hit crowd cue = %s, want %s", cues[1], CueCheerSingle)
	}

	// A double off the wall only needs the cheer.
	cues = FieldingCues(rng, baseball.FieldingEvent{
		Ball:   baseball.BallInPlay{Type: baseball.LineDrive},
		Result: baseball.NewHit(baseball.Double),
	})
	if len(cues) != 1 || cues[0] != CueCheerDouble {
		t.Errorf("double cues = %v, want [%s]", cues, CueCheerDouble)
	}
}

func TestPlayerSilentWithoutSounds(t *testing.T) {
	p, err := NewPlayer("", baseball.NewRand(1))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	// Playing on a silent player must not panic.
	p.Play(CueBatContact)
	p.PitchResolved(baseball.PitchEvent{})
	p.GameEnded(baseball.GameEndEvent{})

	p, err = NewPlayer(t.TempDir()+"/missing", baseball.NewRand(1))
	if err != nil {
		t.Fatalf("NewPlayer with missing dir: %v", err)
	}
	p.Play(CueCatch)
}
