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

// This file provides the fixed-point family: saturating add/sub, averaging
// add/sub, fractional multiply, scaling shifts and narrowing clips.
//
// Saturating forms set *sat (vxsat) when any written element was clamped and
// never clear it. sat may be nil.

// SatAddU writes the unsigned saturating sum (vsaddu).
func (v *Vector[T]) SatAddU(a, b Operand[T], p Policy, sat *bool) *Vector[T] {
	return v.mapSat(a, b, p, sat, saddu[T])
}

// SatAdd writes the signed saturating sum (vsadd).
func (v *Vector[T]) SatAdd(a, b Operand[T], p Policy, sat *bool) *Vector[T] {
	return v.mapSat(a, b, p, sat, sadds[T])
}

// SatSubU writes the unsigned saturating difference (vssubu).
func (v *Vector[T]) SatSubU(a, b Operand[T], p Policy, sat *bool) *Vector[T] {
	return v.mapSat(a, b, p, sat, ssubu[T])
}

// SatSub writes the signed saturating difference (vssub).
func (v *Vector[T]) SatSub(a, b Operand[T], p Policy, sat *bool) *Vector[T] {
	return v.mapSat(a, b, p, sat, ssubs[T])
}

// averaging computes (a op b) with one extra bit of precision and rounds the
// result right by one bit.
func averaging[T Unsigned](a, b T, subtract, signed bool, m RoundingMode) T {
	wa, wb := wideOf(a, signed), wideOf(b, signed)
	var r = wideAdd(wa, wb)
	if subtract {
		r = wideSub(wa, wb)
	}
	// An unsigned difference may be negative; treat it as signed so the
	// shift keeps the bits a SEW+1 bit register would hold.
	return T(roundoff(r, 1, m, signed || subtract).Uint64())
}

// AvgAddU writes roundoff_unsigned(a + b, 1) (vaaddu).
func (v *Vector[T]) AvgAddU(a, b Operand[T], m RoundingMode, p Policy) *Vector[T] {
	return v.Map2(a, b, p, func(a, b T) T { return averaging(a, b, false, false, m) })
}

// AvgAdd writes roundoff_signed(a + b, 1) (vaadd).
func (v *Vector[T]) AvgAdd(a, b Operand[T], m RoundingMode, p Policy) *Vector[T] {
	return v.Map2(a, b, p, func(a, b T) T { return averaging(a, b, false, true, m) })
}

// AvgSubU writes roundoff_unsigned(a - b, 1) (vasubu).
func (v *Vector[T]) AvgSubU(a, b Operand[T], m RoundingMode, p Policy) *Vector[T] {
	return v.Map2(a, b, p, func(a, b T) T { return averaging(a, b, true, false, m) })
}

// AvgSub writes roundoff_signed(a - b, 1) (vasub).
func (v *Vector[T]) AvgSub(a, b Operand[T], m RoundingMode, p Policy) *Vector[T] {
	return v.Map2(a, b, p, func(a, b T) T { return averaging(a, b, true, true, m) })
}

// fracMul is the signed fractional multiply of vsmul: the 2*SEW product
// rounded right by SEW-1 and clipped to SEW.
func fracMul[T Unsigned](a, b T, m RoundingMode) (T, bool) {
	prod := wideMul(wideOf(a, true), wideOf(b, true))
	return clipSigned[T](roundoff(prod, bitsOf[T]()-1, m, true))
}

// FracMul writes the saturating, rounding fractional product (vsmul).
func (v *Vector[T]) FracMul(a, b Operand[T], m RoundingMode, p Policy, sat *bool) *Vector[T] {
	return v.mapSat(a, b, p, sat, func(a, b T) (T, bool) { return fracMul(a, b, m) })
}

// ScaleShiftRightLogical writes roundoff_unsigned(a, b mod SEW) (vssrl).
func (v *Vector[T]) ScaleShiftRightLogical(a, b Operand[T], m RoundingMode, p Policy) *Vector[T] {
	return v.Map2(a, b, p, func(a, b T) T { return roundShift(a, shamt(b), m, false) })
}

// ScaleShiftRightArith writes roundoff_signed(a, b mod SEW) (vssra).
func (v *Vector[T]) ScaleShiftRightArith(a, b Operand[T], m RoundingMode, p Policy) *Vector[T] {
	return v.Map2(a, b, p, func(a, b T) T { return roundShift(a, shamt(b), m, true) })
}

// NarrowingClip writes the 2*SEW source a rounded right by b mod 2*SEW and
// clipped to SEW (vnclipu when signed is false, vnclip otherwise).
func NarrowingClip[N, W Unsigned](d *Vector[N], a Operand[W], b Operand[N], signed bool, m RoundingMode, p Policy, sat *bool) *Vector[N] {
	for i := p.VStart; i < d.Len(); i++ {
		if !p.Active(i) {
			continue
		}
		sh := shamt(W(b.Lane(i)))
		shifted := roundoff(wideOf(a.Lane(i), signed), sh, m, signed)
		var r N
		var clamped bool
		if signed {
			r, clamped = clipSigned[N](shifted)
		} else {
			r, clamped = clipUnsigned[N](shifted)
		}
		d.Set(i, r)
		if clamped && sat != nil {
			*sat = true
		}
	}
	return d
}
