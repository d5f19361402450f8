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

// ContactInput bundles everything the contact resolver consumes for one
// pitch. SwingLocation nil means the batter took the pitch. Batter and
// Pitcher may be nil; neutral defaults substitute for missing ratings at
// the resolver boundary. A FatiguePenalty of zero normalizes to fresh.
type ContactInput struct {
	PitchLocation  PitchLocation
	SwingLocation  *PitchLocation
	Timing         SwingTiming
	Batter         *BatterRatings
	Pitcher        *PitcherRatings
	FatiguePenalty float64
}

// ContactResult is the resolver's verdict. Quality is meaningful only when
// HasQuality is true; takes and pure whiff branches produce no quality.
type ContactResult struct {
	Result     PlayResult
	Quality    int
	HasQuality bool
}

// matchKind is the location-match tier between pitch and swing.
type matchKind int

const (
	matchNone matchKind = iota
	matchAdjacent
	matchExact
)

func classifyMatch(pitch, swing PitchLocation) matchKind {
	if pitch == swing {
		return matchExact
	}
	if pitch.IsAdjacent(swing) {
		return matchAdjacent
	}
	return matchNone
}

// missChance is the whiff probability for a swing that found no part of the
// ball, looked up by zone and timing category. Unknown timing keeps the
// legacy fixed rates.
func missChance(inZone bool, timing SwingTiming) float64 {
	switch timing {
	case TimingEarly, TimingLate:
		if inZone {
			return 0.8
		}
		return 0.9
	case TimingPerfect:
		if inZone {
			return 0.6
		}
		return 0.9
	default:
		if inZone {
			return 0.6
		}
		return 0.8
	}
}

// ResolveContact decides the outcome of a single pitch. It never fails:
// missing ratings fall back to neutral defaults and every produced contact
// quality is clamped to [1, 100].
func ResolveContact(rng RNG, in ContactInput) ContactResult {
	fatigue := in.FatiguePenalty
	if fatigue <= 0 {
		fatigue = FatiguePenaltyFresh
	}

	// A take is decided by the zone alone.
	if in.SwingLocation == nil {
		if in.PitchLocation.IsStrike() {
			return ContactResult{Result: Strike()}
		}
		return ContactResult{Result: Ball()}
	}

	match := classifyMatch(in.PitchLocation, *in.SwingLocation)
	inZone := in.PitchLocation.IsStrike()

	// Way off on timing: contact is not even attempted.
	if in.Timing == TimingTooEarly || in.Timing == TimingTooLate {
		if chance(rng, 0.9) {
			return ContactResult{Result: Strike(), Quality: 5, HasQuality: true}
		}
		return ContactResult{Result: Foul(), Quality: 10, HasQuality: true}
	}

	switch {
	case match == matchExact && inZone:
		quality := drawQuality(rng, in, fatigue, BatterSkillBonusMultiplier, PitcherSkillPenaltyMultiplier)
		return ContactResult{Result: resolveExactContact(rng, quality, in.Batter), Quality: quality, HasQuality: true}

	case match == matchAdjacent && inZone:
		quality := drawQuality(rng, in, fatigue, AdjacentBatterSkillMultiplier, AdjacentPitcherSkillMultiplier)
		return ContactResult{Result: resolveAdjacentContact(rng, quality, in.Batter), Quality: quality, HasQuality: true}

	case match != matchNone:
		// Found the ball outside the zone: nothing good comes of it.
		if chance(rng, 0.7) {
			return ContactResult{Result: Foul(), Quality: 20, HasQuality: true}
		}
		return ContactResult{Result: NewOut(Flyout), Quality: 15, HasQuality: true}

	default:
		// Swung where the ball wasn't.
		if chance(rng, missChance(inZone, in.Timing)) {
			return ContactResult{Result: Strike(), Quality: 5, HasQuality: true}
		}
		return ContactResult{Result: Foul(), Quality: 10, HasQuality: true}
	}
}

// drawQuality produces the clamped 1-100 contact quality: a uniform draw,
// scaled by swing timing, boosted by the batter's barrel rate and docked by
// the pitcher's (fatigue-discounted) barrel rate allowed.
func drawQuality(rng RNG, in ContactInput, fatigue, batterMult, pitcherMult float64) int {
	quality := rollRange(rng, 1, 100)
	quality = int(float64(quality) * in.Timing.ContactMultiplier())

	if in.Batter != nil {
		quality += int(in.Batter.BarrelPercent * batterMult)
	}
	if in.Pitcher != nil {
		quality -= int(in.Pitcher.BarrelPercent * pitcherMult * fatigue)
	}

	return clampQuality(quality)
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// resolveExactContact maps quality bands to outcomes for a squared-up swing
// in the zone. Even flush contact is weighted toward outs; a .300 average
// means the fielders win most of these.
func resolveExactContact(rng RNG, quality int, batter *BatterRatings) PlayResult {
	switch {
	case quality >= 90:
		hrChance := HomeRunChanceCapPercent
		if batter != nil {
			hrChance = int(batter.MaxDistance / HomeRunDistanceDivisor * 100)
			if hrChance > HomeRunChanceCapPercent {
				hrChance = HomeRunChanceCapPercent
			}
		}
		if rollRange(rng, 1, 100) <= hrChance {
			return NewHit(HomeRun)
		}
		if chance(rng, 0.6) {
			return NewHit(Triple)
		}
		return NewHit(Double)

	case quality >= ContactGreatMin:
		switch roll := rollRange(rng, 1, 10); {
		case roll == 1:
			return NewHit(Triple)
		case roll <= 4:
			return NewHit(Double)
		case roll <= 7:
			return NewHit(Single)
		default:
			if chance(rng, 0.6) {
				return NewOut(Flyout)
			}
			return NewOut(LineOut)
		}

	case quality >= ContactGoodMin:
		switch roll := rollRange(rng, 1, 10); {
		case roll <= 3:
			return NewHit(Single)
		case roll == 4:
			return NewHit(Double)
		case roll <= 6:
			return Foul()
		default:
			return groundOrFlyOut(rng, batter)
		}

	case quality >= ContactWeakMin:
		switch roll := rollRange(rng, 1, 10); {
		case roll <= 2:
			return Foul()
		case roll == 3:
			return NewHit(Single)
		default:
			return groundOrFlyOut(rng, batter)
		}

	default:
		if chance(rng, 0.2) {
			return Foul()
		}
		return groundOrFlyOut(rng, batter)
	}
}

// resolveAdjacentContact is the weaker band table for a near-miss swing in
// the zone: singles at best.
func resolveAdjacentContact(rng RNG, quality int, batter *BatterRatings) PlayResult {
	switch {
	case quality >= ContactGreatMin:
		return NewHit(Single)
	case quality >= 50:
		if chance(rng, 0.5) {
			return NewHit(Single)
		}
		return Foul()
	case quality >= 30:
		return Foul()
	default:
		return groundOrFlyOut(rng, batter)
	}
}

// groundOrFlyOut picks the out flavor by the batter's groundball tendency.
func groundOrFlyOut(rng RNG, batter *BatterRatings) PlayResult {
	if floatRange(rng, 0, 100) < groundBallPercent(batter) {
		return NewOut(Groundout)
	}
	return NewOut(Flyout)
}
