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

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// RNG is the single source of randomness threaded through every resolver.
// Tests inject scripted implementations; production uses NewRand.
type RNG interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

type mathRNG struct {
	r *rand.Rand
}

func (m *mathRNG) IntN(n int) int   { return m.r.Intn(n) }
func (m *mathRNG) Float64() float64 { return m.r.Float64() }

// NewRand returns an RNG backed by math/rand with the given seed. The same
// seed always produces the same draw sequence.
func NewRand(seed int64) RNG {
	return &mathRNG{r: rand.New(rand.NewSource(seed))}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// rollRange returns a uniform int in [lo, hi], inclusive on both ends.
func rollRange(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// floatRange returns a uniform float64 in [lo, hi).
func floatRange(rng RNG, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// chance reports true with probability p.
func chance(rng RNG, p float64) bool {
	return rng.Float64() < p
}
