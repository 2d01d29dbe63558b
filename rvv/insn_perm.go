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

// This file holds add-with-carry, merge, move and slide entry points.

type permOp uint8

const (
	opAdc permOp = iota
	opSbc
	opMerge
	opMove
	opSlideUp
	opSlideDown
	opSlide1Up
	opSlide1Down
)

// execPerm validates and runs a single-width op whose semantics do not fit
// the element-wise Map shape.
func execPerm(vrf []byte, c Config, op permOp, vd, vs2 int, src source) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	f := c.field(vrf)
	k.source(f, src)
	if op != opMove {
		k.aligned(f, vs2, Src2VecIll)
	}
	k.aligned(f, vd, DstVecIll)
	switch op {
	case opAdc, opSbc, opMerge:
		// v0 supplies carries or selectors, so vd may not be v0.
		k.require(vd != 0, MaskOverlapIll)
	case opMove:
	default:
		k.maskOverlap(c, vd)
	}
	if op == opSlideUp || op == opSlide1Up {
		k.require(!Overlaps(f, vd, f, vs2), SlideOverlapIll)
	}
	if k.status != NoExcept {
		return k.status
	}
	switch c.SEW {
	case 1:
		permSEW[uint8](vrf, c, f, op, vd, vs2, src)
	case 2:
		permSEW[uint16](vrf, c, f, op, vd, vs2, src)
	case 4:
		permSEW[uint32](vrf, c, f, op, vd, vs2, src)
	default:
		permSEW[uint64](vrf, c, f, op, vd, vs2, src)
	}
	return NoExcept
}

func permSEW[T Unsigned](vrf []byte, c Config, f RegisterField, op permOp, vd, vs2 int, src source) {
	d := ViewVector[T](f, vd)
	p := c.Policy(vrf)
	switch op {
	case opAdc:
		d.AddCarry(ViewVector[T](f, vs2), operand[T](src, f, c, immSigned), c.MaskRegister(vrf), c.VStart)
	case opSbc:
		d.SubBorrow(ViewVector[T](f, vs2), operand[T](src, f, c, immSigned), c.MaskRegister(vrf), c.VStart)
	case opMerge:
		d.Merge(ViewVector[T](f, vs2), operand[T](src, f, c, immSigned), c.MaskRegister(vrf), c.VStart)
	case opMove:
		d.Move(operand[T](src, f, c, immSigned), c.VStart)
	case opSlideUp:
		d.SlideUp(ViewVector[T](f, vs2), offsetValue(src, c), p)
	case opSlideDown:
		d.SlideDown(ViewVector[T](f, vs2), offsetValue(src, c), p)
	case opSlide1Up:
		d.Slide1Up(ViewVector[T](f, vs2), scalarValue[T](src.x, c), p)
	case opSlide1Down:
		d.Slide1Down(ViewVector[T](f, vs2), scalarValue[T](src.x, c), p)
	}
}

// VAdcVVM writes vs2 + vs1 + v0.mask[i] for every body element.
func VAdcVVM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execPerm(vrf, c, opAdc, vd, vs2, vsrc(vs1))
}

// VAdcVXM writes vs2 + rs1 + v0.mask[i].
func VAdcVXM(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opAdc, vd, vs2, xsrc(rs1))
}

// VAdcVIM writes vs2 + imm + v0.mask[i].
func VAdcVIM(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execPerm(vrf, c, opAdc, vd, vs2, isrc(imm))
}

// VSbcVVM writes vs2 - vs1 - v0.mask[i].
func VSbcVVM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execPerm(vrf, c, opSbc, vd, vs2, vsrc(vs1))
}

// VSbcVXM writes vs2 - rs1 - v0.mask[i].
func VSbcVXM(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opSbc, vd, vs2, xsrc(rs1))
}

// VMergeVVM writes v0.mask[i] ? vs1[i] : vs2[i] for every body element,
// i.e. i in [vstart, vl). c.Masked is ignored: the mask always selects.
func VMergeVVM(vrf []byte, c Config, vd, vs2, vs1 int) Status {
	return execPerm(vrf, c, opMerge, vd, vs2, vsrc(vs1))
}

// VMergeVXM writes v0.mask[i] ? rs1 : vs2[i].
func VMergeVXM(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opMerge, vd, vs2, xsrc(rs1))
}

// VMergeVIM writes v0.mask[i] ? imm : vs2[i].
func VMergeVIM(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execPerm(vrf, c, opMerge, vd, vs2, isrc(imm))
}

// VMvVV copies vs1 into vd.
func VMvVV(vrf []byte, c Config, vd, vs1 int) Status {
	return execPerm(vrf, c, opMove, vd, 0, vsrc(vs1))
}

// VMvVX splats rs1 into vd.
func VMvVX(vrf []byte, c Config, vd int, rs1 []byte) Status {
	return execPerm(vrf, c, opMove, vd, 0, xsrc(rs1))
}

// VMvVI splats the sign-extended imm into vd.
func VMvVI(vrf []byte, c Config, vd int, imm uint8) Status {
	return execPerm(vrf, c, opMove, vd, 0, isrc(imm))
}

// VSlideUpVX writes vs2[i-rs1] for i >= rs1. Lower elements are untouched.
func VSlideUpVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opSlideUp, vd, vs2, xsrc(rs1))
}

// VSlideUpVI writes vs2[i-imm] for i >= imm.
func VSlideUpVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execPerm(vrf, c, opSlideUp, vd, vs2, isrc(imm))
}

// VSlideDownVX writes vs2[i+rs1], reading zero past VLMAX.
func VSlideDownVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opSlideDown, vd, vs2, xsrc(rs1))
}

// VSlideDownVI writes vs2[i+imm], reading zero past VLMAX.
func VSlideDownVI(vrf []byte, c Config, vd, vs2 int, imm uint8) Status {
	return execPerm(vrf, c, opSlideDown, vd, vs2, isrc(imm))
}

// VSlide1UpVX writes rs1 to element 0 and vs2[i-1] above it.
func VSlide1UpVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opSlide1Up, vd, vs2, xsrc(rs1))
}

// VSlide1DownVX writes vs2[i+1] below vl-1 and rs1 to element vl-1.
func VSlide1DownVX(vrf []byte, c Config, vd, vs2 int, rs1 []byte) Status {
	return execPerm(vrf, c, opSlide1Down, vd, vs2, xsrc(rs1))
}

// VMvNrRV copies nr whole registers (1, 2, 4 or 8) from vs2 to vd as SEW-wide
// elements, ignoring vl and LMUL. Elements below c.VStart are untouched.
func VMvNrRV(vrf []byte, c Config, nr, vd, vs2 int) Status {
	switch nr {
	case 1, 2, 4, 8:
	default:
		return DstVecIll
	}
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	evl := nr * c.VLenB / c.SEW
	f := NewRegisterField(vrf, c.VLenB, evl, c.SEW, nr, 1)
	k.aligned(f, vs2, Src2VecIll)
	k.aligned(f, vd, DstVecIll)
	if k.status != NoExcept {
		return k.status
	}
	switch c.SEW {
	case 1:
		ViewVector[uint8](f, vd).Move(ViewVector[uint8](f, vs2), c.VStart)
	case 2:
		ViewVector[uint16](f, vd).Move(ViewVector[uint16](f, vs2), c.VStart)
	case 4:
		ViewVector[uint32](f, vd).Move(ViewVector[uint32](f, vs2), c.VStart)
	default:
		ViewVector[uint64](f, vd).Move(ViewVector[uint64](f, vs2), c.VStart)
	}
	return NoExcept
}

// VMv1RV copies one whole register.
func VMv1RV(vrf []byte, c Config, vd, vs2 int) Status { return VMvNrRV(vrf, c, 1, vd, vs2) }

// VMv2RV copies an aligned pair of registers.
func VMv2RV(vrf []byte, c Config, vd, vs2 int) Status { return VMvNrRV(vrf, c, 2, vd, vs2) }

// VMv4RV copies an aligned group of four registers.
func VMv4RV(vrf []byte, c Config, vd, vs2 int) Status { return VMvNrRV(vrf, c, 4, vd, vs2) }

// VMv8RV copies an aligned group of eight registers.
func VMv8RV(vrf []byte, c Config, vd, vs2 int) Status { return VMvNrRV(vrf, c, 8, vd, vs2) }
