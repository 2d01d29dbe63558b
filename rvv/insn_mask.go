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

// This file holds the mask-producing entry points: integer compares,
// carry/borrow-out producers and mask-register logic. Each writes one bit per
// body element into a single destination register.

// maskDestination validates vd as a mask destination against a vs2 (or vs1)
// group of f. When the source group spans several registers, vd may overlap
// it only at its lowest register.
func (k *checker) maskDestination(c Config, vrf []byte, f RegisterField, vd, vs2 int, src source) {
	k.registerIndex(vd, DstVecIll)
	if k.status != NoExcept {
		return
	}
	mf := c.maskField(vrf)
	k.require(NarrowingOverlapLegal(mf, vd, f, vs2), NarrowingOverlapVdVs2Ill)
	if src.kind == srcVector {
		k.require(NarrowingOverlapLegal(mf, vd, f, src.reg), NarrowingOverlapVdVs1Ill)
	}
}

// execCompare writes vd.mask[i] = vs2[i] <cond> src[i].
func execCompare(vrf []byte, c Config, cond Cond, vd, vs2 int, src source) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	f := c.field(vrf)
	k.source(f, src)
	k.aligned(f, vs2, Src2VecIll)
	k.maskDestination(c, vrf, f, vd, vs2, src)
	if k.status != NoExcept {
		return k.status
	}
	switch c.SEW {
	case 1:
		compareSEW[uint8](vrf, c, f, cond, vd, vs2, src)
	case 2:
		compareSEW[uint16](vrf, c, f, cond, vd, vs2, src)
	case 4:
		compareSEW[uint32](vrf, c, f, cond, vd, vs2, src)
	default:
		compareSEW[uint64](vrf, c, f, cond, vd, vs2, src)
	}
	return NoExcept
}

func compareSEW[T Unsigned](vrf []byte, c Config, f RegisterField, cond Cond, vd, vs2 int, src source) {
	// Compare immediates are always sign-extended, even for unsigned
	// conditions.
	Compare(f.ViewRegister(vd), cond, ViewVector[T](f, vs2), operand[T](src, f, c, immSigned), c.Policy(vrf))
}

// execCarryOut writes the carry (or borrow) out of vs2 + src (+ v0 when
// withCarry) into vd. Carry producers are never masked.
func execCarryOut(vrf []byte, c Config, borrow, withCarry bool, vd, vs2 int, src source) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	f := c.field(vrf)
	k.source(f, src)
	k.aligned(f, vs2, Src2VecIll)
	k.maskDestination(c, vrf, f, vd, vs2, src)
	if k.status != NoExcept {
		return k.status
	}
	var cin *Register
	if withCarry {
		cin = c.MaskRegister(vrf)
	}
	switch c.SEW {
	case 1:
		carryOutSEW[uint8](vrf, c, f, borrow, cin, vd, vs2, src)
	case 2:
		carryOutSEW[uint16](vrf, c, f, borrow, cin, vd, vs2, src)
	case 4:
		carryOutSEW[uint32](vrf, c, f, borrow, cin, vd, vs2, src)
	default:
		carryOutSEW[uint64](vrf, c, f, borrow, cin, vd, vs2, src)
	}
	return NoExcept
}

func carryOutSEW[T Unsigned](vrf []byte, c Config, f RegisterField, borrow bool, cin *Register, vd, vs2 int, src source) {
	r := f.ViewRegister(vd)
	a := ViewVector[T](f, vs2)
	b := operand[T](src, f, c, immSigned)
	if borrow {
		BorrowOut(r, a, b, cin, c.VStart)
	} else {
		CarryOut(r, a, b, cin, c.VStart)
	}
}

// execMaskLogic writes vd.mask[i] = vs2.mask[i] <op> vs1.mask[i] for i in
// [vstart, vl).
func execMaskLogic(vrf []byte, c Config, op MaskOp, vd, vs2, vs1 int) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	k.registerIndex(vs1, Src1VecIll)
	k.registerIndex(vs2, Src2VecIll)
	k.registerIndex(vd, DstVecIll)
	if k.status != NoExcept {
		return k.status
	}
	f := c.maskField(vrf)
	f.ViewRegister(vd).Logic(op, f.ViewRegister(vs2), f.ViewRegister(vs1), c.VL, c.VStart)
	return NoExcept
}
