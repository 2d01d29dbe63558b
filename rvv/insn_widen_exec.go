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

// This file holds the entry points whose destination and source widths
// differ: widening arithmetic, integer extension and narrowing shifts/clips.

type widenOp uint8

const (
	opWAddU widenOp = iota
	opWAdd
	opWSubU
	opWSub
	opWMulU
	opWMul
	opWMulSU
	opWMAccU
	opWMAcc
	opWMAccSU
	opWMAccUS
)

// signed returns the signedness of (vs2-side, vs1-side) operands.
func (op widenOp) signed() (a, b bool) {
	switch op {
	case opWAdd, opWSub, opWMul, opWMAcc:
		return true, true
	case opWMulSU:
		return true, false // signed vs2 * unsigned vs1
	case opWMAccSU:
		return false, true // signed vs1 * unsigned vs2
	case opWMAccUS:
		return true, false // unsigned rs1 * signed vs2
	}
	return false, false
}

// wideField returns the 2*SEW geometry, or false when 2*SEW exceeds ELEN or
// 2*LMUL exceeds 8.
func (c Config) wideField(vrf []byte) (RegisterField, bool) {
	if 2*c.SEW > MaxELEN {
		return RegisterField{}, false
	}
	return c.Field(vrf, 2*c.SEW)
}

// execWiden validates and runs a widening op. wideVS2 selects the .wv/.wx
// forms, whose vs2 already carries 2*SEW elements.
func execWiden(vrf []byte, c Config, op widenOp, vd, vs2 int, src source, wideVS2 bool) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	f := c.field(vrf)
	fw, ok := c.wideField(vrf)
	if !ok {
		return DstVecIll
	}
	fs2 := f
	if wideVS2 {
		fs2 = fw
	}
	k.source(f, src)
	k.aligned(fs2, vs2, Src2VecIll)
	k.aligned(fw, vd, DstVecIll)
	k.maskOverlap(c, vd)
	if src.kind == srcVector {
		k.require(WideningOverlapLegal(fw, vd, f, src.reg), WideningOverlapVdVs1Ill)
	}
	if !wideVS2 {
		k.require(WideningOverlapLegal(fw, vd, f, vs2), WideningOverlapVdVs2Ill)
	}
	if k.status != NoExcept {
		return k.status
	}
	switch c.SEW {
	case 1:
		widenSEW[uint8, uint16](vrf, c, f, fw, op, vd, vs2, src, wideVS2)
	case 2:
		widenSEW[uint16, uint32](vrf, c, f, fw, op, vd, vs2, src, wideVS2)
	default:
		widenSEW[uint32, uint64](vrf, c, f, fw, op, vd, vs2, src, wideVS2)
	}
	return NoExcept
}

func widenSEW[N, W Unsigned](vrf []byte, c Config, f, fw RegisterField, op widenOp, vd, vs2 int, src source, wideVS2 bool) {
	d := ViewVector[W](fw, vd)
	b := operand[N](src, f, c, immSigned)
	p := c.Policy(vrf)
	if wideVS2 {
		a := ViewVector[W](fw, vs2)
		switch op {
		case opWAddU, opWAdd:
			WideningAddW(d, a, b, op == opWAdd, p)
		case opWSubU, opWSub:
			WideningSubW(d, a, b, op == opWSub, p)
		default:
			panic("rvv: no .w form for widening op")
		}
		return
	}
	a := ViewVector[N](f, vs2)
	sa, sb := op.signed()
	switch op {
	case opWAddU, opWAdd:
		WideningAdd(d, a, b, sa, p)
	case opWSubU, opWSub:
		WideningSub(d, a, b, sa, p)
	case opWMulU, opWMul, opWMulSU:
		WideningMul(d, a, b, sa, sb, p)
	default:
		// The accumulate forms take vs1/rs1 first.
		WideningMulAcc(d, b, a, sb, sa, p)
	}
}

// execExtend runs vzext/vsext with a source of SEW/factor bits.
func execExtend(vrf []byte, c Config, factor int, signed bool, vd, vs2 int) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	if c.SEW%factor != 0 {
		return Src2VecIll
	}
	fs, ok := c.Field(vrf, c.SEW/factor)
	if !ok {
		return Src2VecIll
	}
	f := c.field(vrf)
	k.aligned(fs, vs2, Src2VecIll)
	k.aligned(f, vd, DstVecIll)
	k.maskOverlap(c, vd)
	k.require(WideningOverlapLegal(f, vd, fs, vs2), WideningOverlapVdVs2Ill)
	if k.status != NoExcept {
		return k.status
	}
	p := c.Policy(vrf)
	switch c.SEW<<4 | c.SEW/factor {
	case 2<<4 | 1:
		Extend(ViewVector[uint16](f, vd), ViewVector[uint8](fs, vs2), signed, p)
	case 4<<4 | 2:
		Extend(ViewVector[uint32](f, vd), ViewVector[uint16](fs, vs2), signed, p)
	case 4<<4 | 1:
		Extend(ViewVector[uint32](f, vd), ViewVector[uint8](fs, vs2), signed, p)
	case 8<<4 | 4:
		Extend(ViewVector[uint64](f, vd), ViewVector[uint32](fs, vs2), signed, p)
	case 8<<4 | 2:
		Extend(ViewVector[uint64](f, vd), ViewVector[uint16](fs, vs2), signed, p)
	case 8<<4 | 1:
		Extend(ViewVector[uint64](f, vd), ViewVector[uint8](fs, vs2), signed, p)
	}
	return NoExcept
}

type narrowOp uint8

const (
	opNSrl narrowOp = iota
	opNSra
	opNClipU
	opNClip
)

// execNarrow validates and runs a narrowing op: vs2 carries 2*SEW elements,
// vd and the shift operand carry SEW.
func execNarrow(vrf []byte, c Config, op narrowOp, vd, vs2 int, src source, sat *bool) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	fw, ok := c.wideField(vrf)
	if !ok {
		return Src2VecIll
	}
	f := c.field(vrf)
	k.source(f, src)
	k.aligned(fw, vs2, Src2VecIll)
	k.aligned(f, vd, DstVecIll)
	k.maskOverlap(c, vd)
	k.require(NarrowingOverlapLegal(f, vd, fw, vs2), NarrowingOverlapVdVs2Ill)
	if k.status != NoExcept {
		return k.status
	}
	switch c.SEW {
	case 1:
		narrowSEW[uint8, uint16](vrf, c, f, fw, op, vd, vs2, src, sat)
	case 2:
		narrowSEW[uint16, uint32](vrf, c, f, fw, op, vd, vs2, src, sat)
	default:
		narrowSEW[uint32, uint64](vrf, c, f, fw, op, vd, vs2, src, sat)
	}
	return NoExcept
}

func narrowSEW[N, W Unsigned](vrf []byte, c Config, f, fw RegisterField, op narrowOp, vd, vs2 int, src source, sat *bool) {
	d := ViewVector[N](f, vd)
	a := ViewVector[W](fw, vs2)
	b := operand[N](src, f, c, immUnsigned)
	p := c.Policy(vrf)
	switch op {
	case opNSrl:
		NarrowingShiftRight(d, a, b, false, p)
	case opNSra:
		NarrowingShiftRight(d, a, b, true, p)
	case opNClipU:
		NarrowingClip(d, a, b, false, c.VXRM, p, sat)
	case opNClip:
		NarrowingClip(d, a, b, true, c.VXRM, p, sat)
	}
}
