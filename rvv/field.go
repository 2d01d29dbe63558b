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

import "fmt"

// RegisterField is a transient view factory over the flat register file for
// one operand geometry: element width EEW and effective multiplier
// EMUL = EMULNum/EMULDen.
//
// A logical vector spans ceil(EMUL) consecutive registers and holds
// VLMAX = EMUL * VLEN / EEW elements. With EMUL >= 1 a register index is
// legal only if it is a multiple of EMUL; fractional groups live in the low
// part of a single register and any index is legal.
//
// A RegisterField holds no state of its own; views it returns borrow the
// caller's register file.
type RegisterField struct {
	vrf     []byte
	regLen  int
	vl      int
	eew     int
	emulNum int
	emulDen int
}

// NewRegisterField describes operands of eewBytes-wide elements grouped by
// emulNum/emulDen registers, in a register file whose registers are
// regLenBytes long. The fraction is reduced.
func NewRegisterField(vrf []byte, regLenBytes, vl, eewBytes, emulNum, emulDen int) RegisterField {
	g := gcd(emulNum, emulDen)
	return RegisterField{
		vrf:     vrf,
		regLen:  regLenBytes,
		vl:      vl,
		eew:     eewBytes,
		emulNum: emulNum / g,
		emulDen: emulDen / g,
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// EEW returns the element width in bytes.
func (f RegisterField) EEW() int { return f.eew }

// VL returns the logical vector length of views.
func (f RegisterField) VL() int { return f.vl }

// EMUL returns the reduced multiplier fraction.
func (f RegisterField) EMUL() (num, den int) { return f.emulNum, f.emulDen }

// Fractional reports whether EMUL < 1.
func (f RegisterField) Fractional() bool { return f.emulNum < f.emulDen }

// GroupSize returns the number of registers one vector spans: ceil(EMUL).
func (f RegisterField) GroupSize() int {
	if f.Fractional() {
		return 1
	}
	return f.emulNum / f.emulDen
}

// NumRegisters returns how many whole registers the register file holds.
func (f RegisterField) NumRegisters() int {
	if f.regLen <= 0 {
		return 0
	}
	return len(f.vrf) / f.regLen
}

// VLMax returns EMUL * VLEN / EEW.
func (f RegisterField) VLMax() int {
	return f.regLen * f.emulNum / (f.emulDen * f.eew)
}

// Legal reports whether EMUL lies in [1/8, 8], the range the ISA can encode.
func (f RegisterField) Legal() bool {
	return f.emulNum*8 >= f.emulDen && f.emulNum <= 8*f.emulDen && f.VLMax() > 0
}

// IsAligned reports whether idx may name a register group of this geometry.
func (f RegisterField) IsAligned(idx int) bool {
	g := f.GroupSize()
	return idx >= 0 && idx%g == 0 && idx+g <= f.NumRegisters()
}

// Span returns the registers [lo, hi) covered by the group at idx.
func (f RegisterField) Span(idx int) (lo, hi int) {
	return idx, idx + f.GroupSize()
}

// Bytes returns the backing bytes of the group at idx, trimmed to VLMAX
// elements.
func (f RegisterField) Bytes(idx int) []byte {
	off := idx * f.regLen
	return f.vrf[off : off+f.VLMax()*f.eew]
}

// ViewVector overlays a Vector of VL elements on the group at idx.
// It panics if idx is misaligned or T does not match EEW; callers check
// IsAligned first.
func ViewVector[T Unsigned](f RegisterField, idx int) *Vector[T] {
	if sizeOf[T]() != f.eew {
		panic(fmt.Sprintf("rvv: %d-byte view over %d-byte elements", sizeOf[T](), f.eew))
	}
	if !f.IsAligned(idx) {
		panic(fmt.Sprintf("rvv: register v%d is not aligned to a group of %d", idx, f.GroupSize()))
	}
	return NewVector[T](Borrowed(f.Bytes(idx)), f.vl, idx)
}

// ViewRegister returns register idx as a bit-addressable Register of VLEN
// bits.
func (f RegisterField) ViewRegister(idx int) *Register {
	off := idx * f.regLen
	return NewRegister(Borrowed(f.vrf[off:off+f.regLen]), f.regLen*8)
}

// spansOverlap reports whether the group at a in fa shares a register with the
// group at b in fb.
func spansOverlap(fa RegisterField, a int, fb RegisterField, b int) bool {
	alo, ahi := fa.Span(a)
	blo, bhi := fb.Span(b)
	return alo < bhi && blo < ahi
}

// WideningOverlapLegal reports whether a destination group at vd (of the wide
// geometry dst) may share registers with a narrower source group at vs.
// Overlap is legal only when the source EMUL is at least 1 and the source
// occupies exactly the highest-numbered registers of the destination group.
func WideningOverlapLegal(dst RegisterField, vd int, src RegisterField, vs int) bool {
	if !spansOverlap(dst, vd, src, vs) {
		return true
	}
	if src.Fractional() {
		return false
	}
	return vs == vd+dst.GroupSize()-src.GroupSize()
}

// NarrowingOverlapLegal reports whether a destination group at vd (of the
// narrow geometry dst) may share registers with a wider source group at vs.
// Overlap is legal only in the lowest-numbered register of the source, i.e.
// when vd == vs.
func NarrowingOverlapLegal(dst RegisterField, vd int, src RegisterField, vs int) bool {
	if !spansOverlap(dst, vd, src, vs) {
		return true
	}
	return vd == vs
}

// Overlaps reports whether two groups share any register.
func Overlaps(fa RegisterField, a int, fb RegisterField, b int) bool {
	return spansOverlap(fa, a, fb, b)
}
