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

// Package roster loads team and player data from Statcast CSV exports and
// supplies the skill ratings and pitcher stamina the game core consumes.
package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/BitEU/BitBatter/baseball"
)

// MinPlayerAttempts filters out players with too small a sample to rate.
const MinPlayerAttempts = 50

// StatcastSeason is the season year baked into the export filenames.
const StatcastSeason = 2025

// PlayerStats mirrors one row of a Statcast custom leaderboard export.
type PlayerStats struct {
	Name          string  `csv:"last_name, first_name"`
	ID            string  `csv:"player_id"`
	Attempts      int     `csv:"attempts"`
	AvgHitAngle   float64 `csv:"avg_hit_angle"`
	SweetSpotPct  float64 `csv:"anglesweetspotpercent"`
	MaxHitSpeed   float64 `csv:"max_hit_speed"`
	AvgHitSpeed   float64 `csv:"avg_hit_speed"`
	EV50          float64 `csv:"ev50"`
	FBLD          float64 `csv:"fbld"`
	GB            float64 `csv:"gb"`
	MaxDistance   float64 `csv:"max_distance"`
	AvgDistance   float64 `csv:"avg_distance"`
	AvgHRDistance float64 `csv:"avg_hr_distance"`
	EV95Plus      int     `csv:"ev95plus"`
	EV95Percent   float64 `csv:"ev95percent"`
	Barrels       int     `csv:"barrels"`
	BarrelPercent float64 `csv:"brl_percent"`
	BarrelPerPA   float64 `csv:"brl_pa"`
}

// Position is a defensive position.
type Position int

const (
	Pitcher Position = iota
	Catcher
	FirstBase
	SecondBase
	ThirdBase
	Shortstop
	LeftField
	CenterField
	RightField
)

func (p Position) String() string {
	switch p {
	case Pitcher:
		return "P"
	case Catcher:
		return "C"
	case FirstBase:
		return "1B"
	case SecondBase:
		return "2B"
	case ThirdBase:
		return "3B"
	case Shortstop:
		return "SS"
	case LeftField:
		return "LF"
	case CenterField:
		return "CF"
	case RightField:
		return "RF"
	default:
		return "?"
	}
}

// Player is a rostered player with their rated stats.
type Player struct {
	Stats     PlayerStats
	IsPitcher bool
	Position  Position
}

// Team holds a loaded roster. Stamina tracks the current pitcher and
// carries across innings; a fresh team starts at full stamina.
type Team struct {
	Name         string
	Abbreviation string
	Batters      []Player
	Pitchers     []Player

	CurrentPitcherIdx int
	Stamina           float64
}

// NewTeam returns an empty team at full stamina.
func NewTeam(name, abbreviation string) *Team {
	return &Team{
		Name:         name,
		Abbreviation: abbreviation,
		Stamina:      baseball.StartingStamina,
	}
}

// CurrentPitcher returns the active pitcher, or nil for an empty staff.
func (t *Team) CurrentPitcher() *Player {
	if t.CurrentPitcherIdx < 0 || t.CurrentPitcherIdx >= len(t.Pitchers) {
		return nil
	}
	return &t.Pitchers[t.CurrentPitcherIdx]
}

// Batter returns the batter at the given lineup slot, wrapping around the
// batting order. Returns nil for an empty lineup.
func (t *Team) Batter(idx int) *Player {
	if len(t.Batters) == 0 {
		return nil
	}
	return &t.Batters[idx%t.BattingOrderSize()]
}

// BattingOrderSize caps the lineup at the standard nine.
func (t *Team) BattingOrderSize() int {
	if len(t.Batters) < baseball.BattingOrderSize {
		return len(t.Batters)
	}
	return baseball.BattingOrderSize
}

// FatiguePenalty banding for the active pitcher's stamina.
func (t *Team) FatiguePenalty() float64 {
	return baseball.FatiguePenalty(t.Stamina)
}

// ChargeStamina drains the active pitcher for one pitch.
func (t *Team) ChargeStamina(cost float64) {
	t.Stamina = baseball.DrainStamina(t.Stamina, cost)
}

// teamNames maps the 30 MLB abbreviations to display names.
var teamNames = map[string]string{
	"ARI": "Arizona Diamondbacks",
	"ATL": "Atlanta Braves",
	"BAL": "Baltimore Orioles",
	"BOS": "Boston Red Sox",
	"CHC": "Chicago Cubs",
	"CIN": "Cincinnati Reds",
	"CLE": "Cleveland Guardians",
	"COL": "Colorado Rockies",
	"CWS": "Chicago White Sox",
	"DET": "Detroit Tigers",
	"HOU": "Houston Astros",
	"KC":  "Kansas City Royals",
	"LAA": "Los Angeles Angels",
	"LAD": "Los Angeles Dodgers",
	"MIA": "Miami Marlins",
	"MIL": "Milwaukee Brewers",
	"MIN": "Minnesota Twins",
	"NYM": "New York Mets",
	"NYY": "New York Yankees",
	"OAK": "Oakland Athletics",
	"PHI": "Philadelphia Phillies",
	"PIT": "Pittsburgh Pirates",
	"SD":  "San Diego Padres",
	"SEA": "Seattle Mariners",
	"SF":  "San Francisco Giants",
	"STL": "St. Louis Cardinals",
	"TB":  "Tampa Bay Rays",
	"TEX": "Texas Rangers",
	"TOR": "Toronto Blue Jays",
	"WSH": "Washington Nationals",
}

// Abbreviations returns the known team abbreviations in sorted order.
func Abbreviations() []string {
	out := make([]string, 0, len(teamNames))
	for abbr := range teamNames {
		out = append(out, abbr)
	}
	sort.Strings(out)
	return out
}

// TeamName returns the display name for an abbreviation, or the
// abbreviation itself when unknown.
func TeamName(abbr string) string {
	if name, ok := teamNames[abbr]; ok {
		return name
	}
	return abbr
}

// Manager loads and caches teams from a data directory laid out as
// batter_<ABBR>_<year>.csv / pitcher_<ABBR>_<year>.csv.
type Manager struct {
	DataDir string
	teams   map[string]*Team
}

// NewManager creates a manager over the given data directory.
func NewManager(dataDir string) *Manager {
	return &Manager{
		DataDir: dataDir,
		teams:   make(map[string]*Team),
	}
}

// Team returns a previously loaded team, or nil.
func (m *Manager) Team(abbr string) *Team {
	return m.teams[abbr]
}

// LoadTeam loads (or reloads) one team's batter and pitcher files. A team
// with neither file is an error; a missing side just leaves it empty.
func (m *Manager) LoadTeam(abbr string) (*Team, error) {
	team := NewTeam(TeamName(abbr), abbr)

	batters, batterErr := loadPlayers(m.playerFile("batter", abbr), false)
	if batterErr == nil {
		team.Batters = batters
	}
	pitchers, pitcherErr := loadPlayers(m.playerFile("pitcher", abbr), true)
	if pitcherErr == nil {
		team.Pitchers = pitchers
	}

	if len(team.Batters) == 0 && len(team.Pitchers) == 0 {
		if batterErr != nil {
			return nil, fmt.Errorf("load team %s: %w", abbr, batterErr)
		}
		return nil, fmt.Errorf("load team %s: no rated players", abbr)
	}

	m.teams[abbr] = team
	return team, nil
}

// Available scans the data directory and returns the abbreviations that
// have at least one roster file present.
func (m *Manager) Available() []string {
	var out []string
	for _, abbr := range Abbreviations() {
		if _, err := os.Stat(m.playerFile("batter", abbr)); err == nil {
			out = append(out, abbr)
			continue
		}
		if _, err := os.Stat(m.playerFile("pitcher", abbr)); err == nil {
			out = append(out, abbr)
		}
	}
	return out
}

func (m *Manager) playerFile(kind, abbr string) string {
	return filepath.Join(m.DataDir, fmt.Sprintf("%s_%s_%d.csv", kind, abbr, StatcastSeason))
}

// loadPlayers reads one CSV export, drops small samples, assigns positions,
// and sorts by barrel rate: batters best-first, pitchers stingiest-first.
func loadPlayers(path string, isPitcher bool) ([]Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	var rows []*PlayerStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	var players []Player
	for _, stats := range rows {
		if stats.Attempts < MinPlayerAttempts {
			continue
		}
		position := Pitcher
		if !isPitcher {
			// No position data in the export; deal out field positions.
			position = fieldPositions[len(players)%len(fieldPositions)]
		}
		players = append(players, Player{
			Stats:     *stats,
			IsPitcher: isPitcher,
			Position:  position,
		})
	}

	if isPitcher {
		// Lower barrel rate allowed is better; the ace goes first.
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Stats.BarrelPercent < players[j].Stats.BarrelPercent
		})
	} else {
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Stats.BarrelPercent > players[j].Stats.BarrelPercent
		})
	}

	return players, nil
}

var fieldPositions = []Position{
	Catcher, FirstBase, SecondBase, ThirdBase,
	Shortstop, LeftField, CenterField, RightField,
}

// Matchup pairs the two loaded teams and implements baseball.Roster: the
// away side bats in the top half, the home side in the bottom.
type Matchup struct {
	Home *Team
	Away *Team
}

// NewMatchup builds the roster view the game machine consumes.
func NewMatchup(home, away *Team) *Matchup {
	return &Matchup{Home: home, Away: away}
}

func (m *Matchup) battingTeam(h baseball.Half) *Team {
	if h == baseball.TopHalf {
		return m.Away
	}
	return m.Home
}

func (m *Matchup) pitchingTeam(h baseball.Half) *Team {
	if h == baseball.TopHalf {
		return m.Home
	}
	return m.Away
}

// Batter returns the ratings for the current lineup slot, or nil.
func (m *Matchup) Batter(battingHalf baseball.Half, idx int) *baseball.BatterRatings {
	t := m.battingTeam(battingHalf)
	if t == nil {
		return nil
	}
	p := t.Batter(idx)
	if p == nil {
		return nil
	}
	return &baseball.BatterRatings{
		Name:              p.Stats.Name,
		BarrelPercent:     p.Stats.BarrelPercent,
		GroundBallPercent: p.Stats.GB,
		MaxDistance:       p.Stats.MaxDistance,
	}
}

// Pitcher returns the ratings for the defense's active pitcher, or nil.
func (m *Matchup) Pitcher(battingHalf baseball.Half) *baseball.PitcherRatings {
	t := m.pitchingTeam(battingHalf)
	if t == nil {
		return nil
	}
	p := t.CurrentPitcher()
	if p == nil {
		return nil
	}
	return &baseball.PitcherRatings{
		Name:          p.Stats.Name,
		BarrelPercent: p.Stats.BarrelPercent,
	}
}

// FatiguePenalty for the defense's active pitcher.
func (m *Matchup) FatiguePenalty(battingHalf baseball.Half) float64 {
	t := m.pitchingTeam(battingHalf)
	if t == nil {
		return baseball.FatiguePenaltyFresh
	}
	return t.FatiguePenalty()
}

// ChargeStamina drains the defense's active pitcher.
func (m *Matchup) ChargeStamina(battingHalf baseball.Half, cost float64) {
	if t := m.pitchingTeam(battingHalf); t != nil {
		t.ChargeStamina(cost)
	}
}

// BattingOrderSize for the side at the plate. An unknown team plays the
// standard nine.
func (m *Matchup) BattingOrderSize(battingHalf baseball.Half) int {
	t := m.battingTeam(battingHalf)
	if t == nil || t.BattingOrderSize() == 0 {
		return baseball.BattingOrderSize
	}
	return t.BattingOrderSize()
}
