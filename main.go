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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/c2FmZQ/storage"
	"github.com/c2FmZQ/storage/crypto"
	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/BitEU/BitBatter/audio"
	"github.com/BitEU/BitBatter/baseball"
	"github.com/BitEU/BitBatter/boxscore"
	"github.com/BitEU/BitBatter/gamelog"
	"github.com/BitEU/BitBatter/roster"
	"github.com/BitEU/BitBatter/tui"
)

var (
	dataDir     = flag.String("data-dir", "data", "Directory for box scores and game logs")
	logDir      = flag.String("log-dir", "", "Directory for play-by-play logs (default <data-dir>/logs)")
	rosterDir   = flag.String("roster-dir", "players", "Directory with Statcast roster CSV files")
	soundsDir   = flag.String("sounds-dir", "audio", "Directory with wav sound effects (empty disables audio)")
	mute        = flag.Bool("mute", false, "Disable sound effects")
	homeTeam    = flag.String("home", "", "Home team abbreviation (picked interactively when unset)")
	awayTeam    = flag.String("away", "", "Away team abbreviation (picked interactively when unset)")
	seed        = flag.Int64("seed", 0, "RNG seed; 0 picks a random one")
	showHistory = flag.Bool("history", false, "Print stored box scores and exit")
	listTeams   = flag.Bool("list-teams", false, "Print teams with roster data and exit")
)

// errlog is for setup and shutdown problems; the game itself logs
// through the gamelog package.
var errlog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// envConfig overrides the flag defaults from the environment.
type envConfig struct {
	DataDir   string `env:"BITBATTER_DATA_DIR"`
	LogDir    string `env:"BITBATTER_LOG_DIR"`
	RosterDir string `env:"BITBATTER_ROSTER_DIR"`
	SoundsDir string `env:"BITBATTER_SOUNDS_DIR"`
	Mute      bool   `env:"BITBATTER_MUTE"`
	HomeTeam  string `env:"BITBATTER_HOME"`
	AwayTeam  string `env:"BITBATTER_AWAY"`
}

func applyEnv() {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		errlog.Warn().Err(err).Msg("Ignoring bad environment config")
		return
	}
	set := func(name, value string) {
		if value != "" {
			flag.Set(name, value)
		}
	}
	set("data-dir", cfg.DataDir)
	set("log-dir", cfg.LogDir)
	set("roster-dir", cfg.RosterDir)
	set("sounds-dir", cfg.SoundsDir)
	set("home", cfg.HomeTeam)
	set("away", cfg.AwayTeam)
	if cfg.Mute {
		flag.Set("mute", "true")
	}
}

// openStorage initializes the score store backend, encrypted when
// BITBATTER_MASTER_KEY is set.
func openStorage(dataDir string) *storage.Storage {
	var masterKey crypto.MasterKey
	keyFile := filepath.Join(dataDir, "master.key")
	if passphrase := os.Getenv("BITBATTER_MASTER_KEY"); passphrase != "" {
		os.MkdirAll(dataDir, 0755)

		var err error
		masterKey, err = crypto.ReadMasterKey([]byte(passphrase), keyFile)
		if err != nil {
			if os.IsNotExist(err) {
				errlog.Info().Msg("Initializing new master encryption key...")
				masterKey, err = crypto.CreateMasterKey()
				if err != nil {
					errlog.Fatal().Err(err).Msg("Failed to create master key")
				}
				if err := masterKey.Save([]byte(passphrase), keyFile); err != nil {
					errlog.Fatal().Err(err).Msg("Failed to save master key")
				}
			} else {
				errlog.Fatal().Err(err).Msg("Failed to read master key")
			}
		}
	} else if _, err := os.Stat(keyFile); err == nil {
		errlog.Fatal().Str("key_file", keyFile).Msg("Master key exists but BITBATTER_MASTER_KEY is not set. Refusing to start in unencrypted mode.")
	}

	store := storage.New(dataDir, masterKey)
	store.EnableCompression(true)
	return store
}

func printHistory(store *boxscore.Store) {
	n := 0
	for score, err := range store.All() {
		if err != nil {
			errlog.Warn().Err(err).Msg("Skipping unreadable box score")
			continue
		}
		played := time.Unix(0, score.PlayedAt).Format("2006-01-02 15:04")
		fmt.Printf("%s  %s %d - %d %s  (%d innings, %d pitches, winner: %s)\n",
			played, score.AwayTeam, score.AwayScore, score.HomeScore, score.HomeTeam,
			score.Innings, score.PitchCount, score.Winner())
		n++
	}
	if n == 0 {
		fmt.Println("No games on record.")
	}
}

func main() {
	applyEnv()
	flag.Parse()

	store := openStorage(*dataDir)
	scores := boxscore.NewStore(*dataDir, store)

	if *showHistory {
		printHistory(scores)
		return
	}

	manager := roster.NewManager(*rosterDir)
	if *listTeams {
		available := manager.Available()
		if len(available) == 0 {
			fmt.Printf("No roster files found under %s.\n", *rosterDir)
			return
		}
		for _, abbr := range available {
			fmt.Printf("%-4s %s\n", abbr, roster.TeamName(abbr))
		}
		return
	}

	homeAbbr := strings.ToUpper(*homeTeam)
	awayAbbr := strings.ToUpper(*awayTeam)
	if homeAbbr == "" || awayAbbr == "" {
		var err error
		if awayAbbr, homeAbbr, err = pickTeams(manager); err != nil {
			if errors.Is(err, tui.ErrSelectionCancelled) {
				return
			}
			errlog.Fatal().Err(err).Msg("Team selection failed")
		}
	}

	home, err := manager.LoadTeam(homeAbbr)
	if err != nil {
		errlog.Fatal().Err(err).Msg("Failed to load home team")
	}
	away, err := manager.LoadTeam(awayAbbr)
	if err != nil {
		errlog.Fatal().Err(err).Msg("Failed to load away team")
	}
	matchup := roster.NewMatchup(home, away)

	gameSeed := *seed
	if gameSeed == 0 {
		var err error
		if gameSeed, err = baseball.NewSeed(); err != nil {
			errlog.Fatal().Err(err).Msg("Failed to seed RNG")
		}
	}
	rng := baseball.NewRand(gameSeed)

	ld := *logDir
	if ld == "" {
		ld = filepath.Join(*dataDir, "logs")
	}
	logger, err := gamelog.New(ld)
	if err != nil {
		errlog.Fatal().Err(err).Msg("Failed to open game log")
	}
	defer logger.Close()
	logger.Start(home.Name, away.Name)

	recorder := boxscore.NewRecorder(scores, logger.GameID(), home.Name, away.Name)

	sounds := *soundsDir
	if *mute {
		sounds = ""
	}
	player, err := audio.NewPlayer(sounds, rng)
	if err != nil {
		errlog.Fatal().Err(err).Msg("Failed to initialize audio")
	}

	machine := baseball.NewMachine(matchup, rng, logger, recorder, player)

	if err := runGame(machine, home, away); err != nil {
		errlog.Fatal().Err(err).Msg("Game error")
	}

	if score, err := recorder.Saved(); err != nil {
		errlog.Error().Err(err).Msg("Failed to save box score")
	} else if score != nil {
		fmt.Printf("Final: %s %d - %d %s (game %s)\n",
			score.AwayTeam, score.AwayScore, score.HomeScore, score.HomeTeam, score.GameID)
	}
}

// pickTeams runs the interactive away/home picker over the teams that
// have roster data.
func pickTeams(manager *roster.Manager) (away, home string, err error) {
	available := manager.Available()
	if len(available) == 0 {
		return "", "", fmt.Errorf("no roster files found under %s", *rosterDir)
	}
	options := make([]tui.TeamOption, 0, len(available))
	for _, abbr := range available {
		options = append(options, tui.TeamOption{Abbreviation: abbr, Name: roster.TeamName(abbr)})
	}
	return tui.SelectTeams(options)
}

// runGame owns the terminal and the fixed 30fps tick loop.
func runGame(machine *baseball.Machine, home, away *roster.Team) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	renderer := tui.NewRenderer(screen)
	renderer.HomeName = home.Name
	renderer.AwayName = away.Name

	var input tui.InputState
	confirmQuit := false

	ticker := time.NewTicker(time.Second / baseball.TargetFPS)
	defer ticker.Stop()

	for {
		<-ticker.C

		// Drain pending input before advancing the frame.
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
				case *tcell.EventKey:
					if confirmQuit {
						t := input.Translate(ev, machine.State().Pitch.Tag)
						if t.Action == tui.ActionQuit {
							return nil
						}
						confirmQuit = false
						continue
					}
					t := input.Translate(ev, machine.State().Pitch.Tag)
					switch t.Action {
					case tui.ActionQuit:
						if machine.State().GameOver {
							return nil
						}
						confirmQuit = true
					case tui.ActionInput:
						prev := machine.State().Pitch.Tag
						machine.Handle(t.Input)
						if machine.State().Pitch.Tag != prev {
							input.Reset()
						}
					}
				}
			default:
				break drain
			}
		}

		if !confirmQuit {
			machine.Tick()
		}

		renderer.Draw(machine.State(), &input, machine.PitchCount(), confirmQuit)
	}
}
