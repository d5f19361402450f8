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

package gamelog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/BitEU/BitBatter/baseball"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("log line is not JSON: %v\n%s", err, line)
		}
		out = append(out, m)
	}
	return out
}

func TestLoggerEventSequence(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test-game", &buf)

	l.Start("Home Nine", "Away Nine")
	swing := baseball.LocationMiddle
	l.PitchResolved(baseball.PitchEvent{
		PitchNumber:    1,
		Inning:         1,
		Half:           baseball.TopHalf,
		PitchLocation:  baseball.LocationMiddle,
		SwingLocation:  &swing,
		Timing:         baseball.TimingPerfect,
		ContactQuality: 88,
		HasQuality:     true,
		Result:         baseball.NewHit(baseball.Double),
		FatiguePenalty: 1.0,
	})
	l.FieldingResolved(baseball.FieldingEvent{
		Ball:          baseball.BallInPlay{Type: baseball.FlyBall, Direction: baseball.CenterField, Speed: 95, HangTime: 60, ContactQuality: 88},
		Elapsed:       31,
		PerfectTiming: 30,
		SuccessChance: 0.9,
		Result:        baseball.NewOut(baseball.Flyout),
	})
	l.HalfInningEnded(baseball.HalfInningEvent{Inning: 1, Half: baseball.TopHalf, Runs: 2, Hits: 3})
	l.GameEnded(baseball.GameEndEvent{Innings: 9, HomeScore: 4, AwayScore: 2})

	lines := decodeLines(t, &buf)
	var events []string
	for _, m := range lines {
		ev, _ := m["event"].(string)
		events = append(events, ev)
		if m["game_id"] != "test-game" {
			t.Errorf("line missing game_id: %v", m)
		}
		if ev == "pitch" && m["match"] != "exact" {
			t.Errorf("match = %v, want exact", m["match"])
		}
	}

	want := []string{"game_start", "pitch", "fielding", "half_inning", "game_end"}
	got := strings.Join(events, "\n") + "\n"
	expected := strings.Join(want, "\n") + "\n"
	if got != expected {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(got),
			FromFile: "Expected",
			ToFile:   "Actual",
			Context:  3,
		})
		t.Errorf("event sequence mismatch:\n%s", diff)
	}
}

func TestLoggerPitchFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("g", &buf)

	// A take: no swing location, no quality.
	l.PitchResolved(baseball.PitchEvent{
		PitchNumber:   3,
		Inning:        2,
		Half:          baseball.BottomHalf,
		PitchLocation: baseball.LocationUpInside,
		Timing:        baseball.TimingNoSwing,
		Result:        baseball.Ball(),
	})

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	m := lines[0]
	if m["pitch_number"] != float64(3) {
		t.Errorf("pitch_number = %v, want 3", m["pitch_number"])
	}
	if m["half"] != "Bottom" {
		t.Errorf("half = %v, want Bottom", m["half"])
	}
	if m["pitch_location"] != "Up-Inside" {
		t.Errorf("pitch_location = %v", m["pitch_location"])
	}
	if m["match"] != "take" {
		t.Errorf("match = %v, want take", m["match"])
	}
	if _, ok := m["swing_location"]; ok {
		t.Errorf("take logged a swing_location")
	}
	if _, ok := m["contact_quality"]; ok {
		t.Errorf("take logged a contact_quality")
	}
}

func TestLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.GameID() == "" {
		t.Fatalf("empty game ID")
	}
	if got := filepath.Dir(l.Path()); got != dir {
		t.Fatalf("log file in %s, want %s", got, dir)
	}
	l.GameEnded(baseball.GameEndEvent{Innings: 9, HomeScore: 1, AwayScore: 0})
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"event":"game_end"`) {
		t.Errorf("log file missing game_end event: %s", data)
	}
}
