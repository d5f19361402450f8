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

// Package gamelog writes a structured play-by-play log of a game. Each
// game gets its own ID and its own JSON lines file under the log
// directory, so a finished game can be replayed line by line.
package gamelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BitEU/BitBatter/baseball"
)

// Logger is a baseball.Sink that records every resolved play.
type Logger struct {
	gameID string
	path   string
	log    zerolog.Logger
	closer io.Closer
}

// New opens a log file in dir, creating the directory if needed. The
// file is named by start time plus a slice of the game ID so a
// directory listing reads chronologically.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	gameID := uuid.New().String()
	name := fmt.Sprintf("game_%s_%s.log", time.Now().Format("20060102_150405"), gameID[:8])
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open game log: %w", err)
	}
	l := NewWithWriter(gameID, f)
	l.path = path
	l.closer = f
	return l, nil
}

// NewWithWriter builds a logger over an arbitrary writer. Used by tests
// and by callers that manage their own files.
func NewWithWriter(gameID string, w io.Writer) *Logger {
	log := zerolog.New(w).With().
		Timestamp().
		Str("game_id", gameID).
		Logger()
	return &Logger{gameID: gameID, log: log}
}

// GameID returns the session's game ID.
func (l *Logger) GameID() string {
	return l.gameID
}

// Path returns the log file path, or "" for writer-backed loggers.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the underlying file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Start records the matchup header line.
func (l *Logger) Start(homeTeam, awayTeam string) {
	l.log.Info().
		Str("event", "game_start").
		Str("home", homeTeam).
		Str("away", awayTeam).
		Time("first_pitch", time.Now()).
		Msg("play ball")
}

// matchKind classifies how the swing lined up with the pitch.
func matchKind(ev baseball.PitchEvent) string {
	switch {
	case ev.SwingLocation == nil:
		return "take"
	case *ev.SwingLocation == ev.PitchLocation:
		return "exact"
	case ev.SwingLocation.IsAdjacent(ev.PitchLocation):
		return "adjacent"
	default:
		return "miss"
	}
}

// PitchResolved logs one resolved pitch.
func (l *Logger) PitchResolved(ev baseball.PitchEvent) {
	e := l.log.Info().
		Str("event", "pitch").
		Int("pitch_number", ev.PitchNumber).
		Int("inning", ev.Inning).
		Str("half", ev.Half.String()).
		Str("pitch_location", ev.PitchLocation.String()).
		Str("match", matchKind(ev)).
		Str("timing", ev.Timing.String()).
		Str("result", ev.Result.String()).
		Float64("fatigue_penalty", ev.FatiguePenalty)
	if ev.Batter != nil {
		e = e.Str("batter", ev.Batter.Name).Float64("batter_barrel_pct", ev.Batter.BarrelPercent)
	}
	if ev.Pitcher != nil {
		e = e.Str("pitcher", ev.Pitcher.Name).Float64("pitcher_barrel_pct", ev.Pitcher.BarrelPercent)
	}
	if ev.SwingLocation != nil {
		e = e.Str("swing_location", ev.SwingLocation.String())
	}
	if ev.HasQuality {
		e = e.Int("contact_quality", ev.ContactQuality)
	}
	e.Msg("pitch resolved")
}

// FieldingResolved logs one fielding play, attempted or timed out.
func (l *Logger) FieldingResolved(ev baseball.FieldingEvent) {
	e := l.log.Info().
		Str("event", "fielding").
		Str("ball_type", ev.Ball.Type.String()).
		Str("direction", ev.Ball.Direction.String()).
		Float64("exit_speed", ev.Ball.Speed).
		Int("elapsed_frames", ev.Elapsed).
		Int("perfect_frame", ev.PerfectTiming).
		Bool("auto_resolved", ev.AutoResolved).
		Str("result", ev.Result.String())
	if !ev.AutoResolved {
		e = e.Float64("success_chance", ev.SuccessChance)
	}
	e.Msg("fielding resolved")
}

// HalfInningEnded logs the half-inning line.
func (l *Logger) HalfInningEnded(ev baseball.HalfInningEvent) {
	l.log.Info().
		Str("event", "half_inning").
		Int("inning", ev.Inning).
		Str("half", ev.Half.String()).
		Int("runs", ev.Runs).
		Int("hits", ev.Hits).
		Msg("half inning over")
}

// GameEnded logs the final line.
func (l *Logger) GameEnded(ev baseball.GameEndEvent) {
	l.log.Info().
		Str("event", "game_end").
		Int("innings", ev.Innings).
		Int("home_score", ev.HomeScore).
		Int("away_score", ev.AwayScore).
		Msg("game over")
}
