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

// FatiguePenalty maps pitcher stamina to the multiplier applied to the
// pitcher's effective skill. Fresh arms keep their full rating; a gassed
// pitcher works at half effectiveness.
func FatiguePenalty(stamina float64) float64 {
	switch {
	case stamina >= StaminaFreshThreshold:
		return FatiguePenaltyFresh
	case stamina >= StaminaGoodThreshold:
		return FatiguePenaltyGood
	case stamina >= StaminaTiredThreshold:
		return FatiguePenaltyTired
	case stamina >= StaminaExhaustedThreshold:
		return FatiguePenaltyVeryTired
	default:
		return FatiguePenaltyExhausted
	}
}

// DrainStamina subtracts a pitch's stamina cost, flooring at zero.
func DrainStamina(stamina, cost float64) float64 {
	s := stamina - cost
	if s < 0 {
		return 0
	}
	return s
}
