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

// This file provides operations whose destination and source widths differ.
//
// Note: Go methods cannot introduce type parameters, so these are functions
// over a (narrow N, wide W) pair rather than Vector methods. The instruction
// layer instantiates (uint8, uint16), (uint16, uint32) and (uint32, uint64).
//
// Every loop runs in increasing element order. That order is what makes the
// two legal overlaps safe: a narrow source in the highest part of a widening
// destination, and a narrowing destination in the lowest part of its source.

// WideningAdd writes ext(a) + ext(b) into the 2*SEW destination d.
func WideningAdd[N, W Unsigned](d *Vector[W], a, b Operand[N], signed bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, extend[N, W](a.Lane(i), signed)+extend[N, W](b.Lane(i), signed))
		}
	}
	return d
}

// WideningSub writes ext(a) - ext(b) into d.
func WideningSub[N, W Unsigned](d *Vector[W], a, b Operand[N], signed bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, extend[N, W](a.Lane(i), signed)-extend[N, W](b.Lane(i), signed))
		}
	}
	return d
}

// WideningAddW writes a + ext(b), where a is already 2*SEW wide (.wv/.wx).
func WideningAddW[N, W Unsigned](d *Vector[W], a Operand[W], b Operand[N], signed bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, a.Lane(i)+extend[N, W](b.Lane(i), signed))
		}
	}
	return d
}

// WideningSubW writes a - ext(b), where a is already 2*SEW wide.
func WideningSubW[N, W Unsigned](d *Vector[W], a Operand[W], b Operand[N], signed bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, a.Lane(i)-extend[N, W](b.Lane(i), signed))
		}
	}
	return d
}

// WideningMul writes the full 2*SEW product of a and b. signedA and signedB
// select vwmul (true, true), vwmulu (false, false) and vwmulsu (true, false).
func WideningMul[N, W Unsigned](d *Vector[W], a, b Operand[N], signedA, signedB bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, extend[N, W](a.Lane(i), signedA)*extend[N, W](b.Lane(i), signedB))
		}
	}
	return d
}

// WideningMulAcc writes d + ext(a)*ext(b). a is vs1/rs1 and b is vs2, so
// vwmaccsu is (true, false) and vwmaccus is (false, true).
func WideningMulAcc[N, W Unsigned](d *Vector[W], a, b Operand[N], signedA, signedB bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, d.Get(i)+extend[N, W](a.Lane(i), signedA)*extend[N, W](b.Lane(i), signedB))
		}
	}
	return d
}

// Extend writes the sign or zero extension of the narrower a into d
// (vsext/vzext). N may be 1/2, 1/4 or 1/8 the width of W.
func Extend[N, W Unsigned](d *Vector[W], a Operand[N], signed bool, p Policy) *Vector[W] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			d.Set(i, extend[N, W](a.Lane(i), signed))
		}
	}
	return d
}

// NarrowingShiftRight writes a >> (b mod 2*SEW) truncated to SEW
// (vnsrl/vnsra). arith selects a sign-filling shift.
func NarrowingShiftRight[N, W Unsigned](d *Vector[N], a Operand[W], b Operand[N], arith bool, p Policy) *Vector[N] {
	for i := p.VStart; i < d.Len(); i++ {
		if p.Active(i) {
			sh := W(b.Lane(i))
			if arith {
				d.Set(i, N(sra(a.Lane(i), sh)))
			} else {
				d.Set(i, N(srl(a.Lane(i), sh)))
			}
		}
	}
	return d
}
