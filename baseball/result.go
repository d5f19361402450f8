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

package baseball

// ResultKind discriminates the PlayResult variants.
type ResultKind int

const (
	ResultStrike ResultKind = iota
	ResultBall
	ResultFoul
	ResultHit
	ResultOut
)

// HitType is the number of bases a hit is worth.
type HitType int

const (
	Single HitType = iota + 1
	Double
	Triple
	HomeRun
)

func (h HitType) String() string {
	switch h {
	case Single:
		return "Single"
	case Double:
		return "Double"
	case Triple:
		return "Triple"
	case HomeRun:
		return "Home Run"
	default:
		return "Unknown"
	}
}

// Bases returns how many bases the batter and runners advance.
func (h HitType) Bases() int {
	return int(h)
}

// OutType describes how an out was recorded.
type OutType int

const (
	Strikeout OutType = iota
	Groundout
	Flyout
	LineOut
)

func (o OutType) String() string {
	switch o {
	case Strikeout:
		return "Strikeout"
	case Groundout:
		return "Groundout"
	case Flyout:
		return "Flyout"
	case LineOut:
		return "Line Out"
	default:
		return "Unknown"
	}
}

// PlayResult is the resolved outcome of a pitch or fielding attempt.
// Exactly one variant is active: Hit is meaningful only when Kind is
// ResultHit, Out only when Kind is ResultOut. The zero value is a Strike.
type PlayResult struct {
	Kind ResultKind
	Hit  HitType
	Out  OutType
}

// Strike, Ball, Foul, NewHit and NewOut construct the five result variants.
func Strike() PlayResult          { return PlayResult{Kind: ResultStrike} }
func Ball() PlayResult            { return PlayResult{Kind: ResultBall} }
func Foul() PlayResult            { return PlayResult{Kind: ResultFoul} }
func NewHit(h HitType) PlayResult { return PlayResult{Kind: ResultHit, Hit: h} }
func NewOut(o OutType) PlayResult { return PlayResult{Kind: ResultOut, Out: o} }

func (r PlayResult) IsHit() bool { return r.Kind == ResultHit }
func (r PlayResult) IsOut() bool { return r.Kind == ResultOut }

func (r PlayResult) String() string {
	switch r.Kind {
	case ResultStrike:
		return "Strike"
	case ResultBall:
		return "Ball"
	case ResultFoul:
		return "Foul"
	case ResultHit:
		return r.Hit.String()
	case ResultOut:
		return r.Out.String()
	default:
		return "Unknown"
	}
}
