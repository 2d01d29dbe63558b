// Copyright 2025 go-rvv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rvv

import "github.com/holiman/uint256"

// RoundingMode is the 2-bit vxrm fixed-point rounding mode.
type RoundingMode uint8

const (
	// RoundNearestUp rounds to nearest, ties toward +inf (rnu).
	RoundNearestUp RoundingMode = 0

	// RoundNearestEven rounds to nearest, ties to even (rne).
	RoundNearestEven RoundingMode = 1

	// RoundDown truncates (rdn).
	RoundDown RoundingMode = 2

	// RoundToOdd jams any discarded bit into the LSB (rod).
	RoundToOdd RoundingMode = 3
)

// String returns the assembler mnemonic of the mode.
func (m RoundingMode) String() string {
	switch m & 3 {
	case RoundNearestUp:
		return "rnu"
	case RoundNearestEven:
		return "rne"
	case RoundDown:
		return "rdn"
	default:
		return "rod"
	}
}

// increment returns the rounding increment for discarding the low d bits of v.
func (m RoundingMode) increment(v *uint256.Int, d uint) bool {
	if d == 0 {
		return false
	}
	switch m & 3 {
	case RoundNearestUp:
		return wideBit(v, d-1)
	case RoundNearestEven:
		return wideBit(v, d-1) && (wideLowNonZero(v, d-1) || wideBit(v, d))
	case RoundDown:
		return false
	default:
		return !wideBit(v, d) && wideLowNonZero(v, d)
	}
}

// roundoff shifts v right by d bits, rounding according to m. Signed values
// shift arithmetically.
func roundoff(v *uint256.Int, d uint, m RoundingMode, signed bool) *uint256.Int {
	r := m.increment(v, d)
	out := new(uint256.Int)
	if signed {
		out.SRsh(v, d)
	} else {
		out.Rsh(v, d)
	}
	if r {
		out.Add(out, uint256.NewInt(1))
	}
	return out
}

// roundShift applies roundoff to a single element, keeping the low bits(T).
func roundShift[T Unsigned](x T, d uint, m RoundingMode, signed bool) T {
	return T(roundoff(wideOf(x, signed), d, m, signed).Uint64())
}
