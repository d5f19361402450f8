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

// Package boxscore persists finished games to disk. Scores go through
// c2FmZQ/storage so the on-disk files are written atomically and can be
// encrypted with a master key.
package boxscore

import (
	"fmt"
	"iter"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/c2FmZQ/storage"

	"github.com/BitEU/BitBatter/baseball"
)

// scoresSubdir is where score files live under the data directory.
const scoresSubdir = "scores"

// HalfLine is one half inning's line in the score.
type HalfLine struct {
	Inning int           `json:"inning"`
	Half   baseball.Half `json:"half"`
	Runs   int           `json:"runs"`
	Hits   int           `json:"hits"`
}

// BoxScore is the persisted record of one finished game.
type BoxScore struct {
	GameID     string     `json:"gameId"`
	PlayedAt   int64      `json:"playedAt"` // UnixNano
	HomeTeam   string     `json:"homeTeam"`
	AwayTeam   string     `json:"awayTeam"`
	HomeScore  int        `json:"homeScore"`
	AwayScore  int        `json:"awayScore"`
	Innings    int        `json:"innings"`
	PitchCount int        `json:"pitchCount"`
	Lines      []HalfLine `json:"lines,omitempty"`
}

// Winner names the winning side, or "Tie" for an unfinished save.
func (b *BoxScore) Winner() string {
	switch {
	case b.HomeScore > b.AwayScore:
		return b.HomeTeam
	case b.AwayScore > b.HomeScore:
		return b.AwayTeam
	default:
		return "Tie"
	}
}

// Store manages box score persistence to disk.
type Store struct {
	DataDir string
	storage *storage.Storage
}

// NewStore creates a box score store over an initialized storage backend.
func NewStore(dataDir string, s *storage.Storage) *Store {
	return &Store{DataDir: dataDir, storage: s}
}

// Save writes one finished game's score. The game ID keys the file.
func (s *Store) Save(score *BoxScore) error {
	if score.GameID == "" {
		return fmt.Errorf("box score has no game ID")
	}
	if score.PlayedAt == 0 {
		score.PlayedAt = time.Now().UnixNano()
	}
	filename := s.scoreFile(score.GameID)
	if err := s.storage.SaveDataFile(filename, score); err != nil {
		return fmt.Errorf("storage.SaveDataFile: %w", err)
	}
	return nil
}

// Load reads one game's score by ID.
func (s *Store) Load(gameID string) (*BoxScore, error) {
	var score BoxScore
	if err := s.storage.ReadDataFile(s.scoreFile(gameID), &score); err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("ReadDataFile: %w", err)
	}
	return &score, nil
}

// All returns an iterator over every stored box score, newest first.
func (s *Store) All() iter.Seq2[*BoxScore, error] {
	return func(yield func(*BoxScore, error) bool) {
		scoresDir := filepath.Join(s.DataDir, scoresSubdir)
		files, err := os.ReadDir(scoresDir)
		if err != nil {
			if !os.IsNotExist(err) {
				yield(nil, fmt.Errorf("could not read scores directory: %w", err))
			}
			return
		}

		var scores []*BoxScore
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			encodedID := strings.TrimSuffix(f.Name(), ".json")
			gameID, err := url.PathUnescape(encodedID)
			if err != nil {
				continue
			}
			score, err := s.Load(gameID)
			if err != nil {
				if !yield(nil, fmt.Errorf("load %s: %w", gameID, err)) {
					return
				}
				continue
			}
			scores = append(scores, score)
		}

		sort.Slice(scores, func(i, j int) bool {
			return scores[i].PlayedAt > scores[j].PlayedAt
		})
		for _, score := range scores {
			if !yield(score, nil) {
				return
			}
		}
	}
}

func (s *Store) scoreFile(gameID string) string {
	return filepath.Join(scoresSubdir, fmt.Sprintf("%s.json", url.PathEscape(gameID)))
}

// Recorder collects half-inning lines during play and assembles the final
// box score. It implements baseball.Sink.
type Recorder struct {
	store *Store

	GameID   string
	HomeTeam string
	AwayTeam string

	lines      []HalfLine
	pitchCount int
	saved      *BoxScore
	saveErr    error
}

// NewRecorder wires a recorder that saves to store when the game ends.
func NewRecorder(store *Store, gameID, homeTeam, awayTeam string) *Recorder {
	return &Recorder{
		store:    store,
		GameID:   gameID,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
	}
}

// PitchResolved counts pitches for the final line.
func (r *Recorder) PitchResolved(baseball.PitchEvent) {
	r.pitchCount++
}

// FieldingResolved is part of baseball.Sink; the recorder has no use for it.
func (r *Recorder) FieldingResolved(baseball.FieldingEvent) {}

// HalfInningEnded appends the half's line.
func (r *Recorder) HalfInningEnded(ev baseball.HalfInningEvent) {
	r.lines = append(r.lines, HalfLine{
		Inning: ev.Inning,
		Half:   ev.Half,
		Runs:   ev.Runs,
		Hits:   ev.Hits,
	})
}

// GameEnded assembles and saves the box score.
func (r *Recorder) GameEnded(ev baseball.GameEndEvent) {
	score := &BoxScore{
		GameID:     r.GameID,
		PlayedAt:   time.Now().UnixNano(),
		HomeTeam:   r.HomeTeam,
		AwayTeam:   r.AwayTeam,
		HomeScore:  ev.HomeScore,
		AwayScore:  ev.AwayScore,
		Innings:    ev.Innings,
		PitchCount: r.pitchCount,
		Lines:      r.lines,
	}
	r.saved = score
	r.saveErr = r.store.Save(score)
}

// Saved reports the score written at game end, if any, and the save error.
func (r *Recorder) Saved() (*BoxScore, error) {
	return r.saved, r.saveErr
}
