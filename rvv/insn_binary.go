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

// binaryOp names a single-width vector operation: destination, vs2 and the
// vs1/rs1/imm operand all carry SEW-wide elements.
type binaryOp uint8

const (
	opAdd binaryOp = iota
	opSub
	opRSub
	opAnd
	opOr
	opXor
	opSll
	opSrl
	opSra
	opMinU
	opMin
	opMaxU
	opMax

	opMul
	opMulH
	opMulHU
	opMulHSU
	opDivU
	opDiv
	opRemU
	opRem
	opMAcc
	opNMSac
	opMAdd
	opNMSub

	opSAddU
	opSAdd
	opSSubU
	opSSub
	opAAddU
	opAAdd
	opASubU
	opASub
	opSMul
	opSSrl
	opSSra
)

// imm returns how the op extends a 5-bit immediate. Shift amounts are
// unsigned; everything else is sign-extended, including the unsigned
// saturating add.
func (op binaryOp) imm() immKind {
	switch op {
	case opSll, opSrl, opSra, opSSrl, opSSra:
		return immUnsigned
	}
	return immSigned
}

// execBinary validates and runs a single-width operation.
func execBinary(vrf []byte, c Config, op binaryOp, vd, vs2 int, src source, sat *bool) Status {
	k := begin(vrf, c)
	if k.status != NoExcept {
		return k.status
	}
	f := c.field(vrf)
	k.source(f, src)
	k.aligned(f, vs2, Src2VecIll)
	k.aligned(f, vd, DstVecIll)
	k.maskOverlap(c, vd)
	if k.status != NoExcept {
		return k.status
	}
	switch c.SEW {
	case 1:
		binarySEW[uint8](vrf, c, f, op, vd, vs2, src, sat)
	case 2:
		binarySEW[uint16](vrf, c, f, op, vd, vs2, src, sat)
	case 4:
		binarySEW[uint32](vrf, c, f, op, vd, vs2, src, sat)
	default:
		binarySEW[uint64](vrf, c, f, op, vd, vs2, src, sat)
	}
	return NoExcept
}

func binarySEW[T Unsigned](vrf []byte, c Config, f RegisterField, op binaryOp, vd, vs2 int, src source, sat *bool) {
	d := ViewVector[T](f, vd)
	a := ViewVector[T](f, vs2)
	b := operand[T](src, f, c, op.imm())
	p := c.Policy(vrf)
	m := c.VXRM
	switch op {
	case opAdd:
		d.Add(a, b, p)
	case opSub:
		d.Sub(a, b, p)
	case opRSub:
		d.RSub(a, b, p)
	case opAnd:
		d.And(a, b, p)
	case opOr:
		d.Or(a, b, p)
	case opXor:
		d.Xor(a, b, p)
	case opSll:
		d.ShiftLeft(a, b, p)
	case opSrl:
		d.ShiftRightLogical(a, b, p)
	case opSra:
		d.ShiftRightArith(a, b, p)
	case opMinU:
		d.MinU(a, b, p)
	case opMin:
		d.Min(a, b, p)
	case opMaxU:
		d.MaxU(a, b, p)
	case opMax:
		d.Max(a, b, p)

	case opMul:
		d.Mul(a, b, p)
	case opMulH:
		d.MulHigh(a, b, p)
	case opMulHU:
		d.MulHighU(a, b, p)
	case opMulHSU:
		d.MulHighSU(a, b, p)
	case opDivU:
		d.DivU(a, b, p)
	case opDiv:
		d.Div(a, b, p)
	case opRemU:
		d.RemU(a, b, p)
	case opRem:
		d.Rem(a, b, p)
	// The accumulate forms take vs1/rs1 first.
	case opMAcc:
		d.MulAcc(b, a, p)
	case opNMSac:
		d.NegMulSubAcc(b, a, p)
	case opMAdd:
		d.MulAdd(b, a, p)
	case opNMSub:
		d.NegMulSub(b, a, p)

	case opSAddU:
		d.SatAddU(a, b, p, sat)
	case opSAdd:
		d.SatAdd(a, b, p, sat)
	case opSSubU:
		d.SatSubU(a, b, p, sat)
	case opSSub:
		d.SatSub(a, b, p, sat)
	case opAAddU:
		d.AvgAddU(a, b, m, p)
	case opAAdd:
		d.AvgAdd(a, b, m, p)
	case opASubU:
		d.AvgSubU(a, b, m, p)
	case opASub:
		d.AvgSub(a, b, m, p)
	case opSMul:
		d.FracMul(a, b, m, p, sat)
	case opSSrl:
		d.ScaleShiftRightLogical(a, b, m, p)
	case opSSra:
		d.ScaleShiftRightArith(a, b, m, p)
	default:
		panic("rvv: unknown binary op")
	}
}
