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

// Register is a bit-addressable view of one architectural register, most
// often the mask register v0 or the destination of a mask-producing
// instruction. Bit i lives in byte i/8 at position i%8.
type Register struct {
	buf  Buffer
	bits int
}

// NewRegister views buf as a register of lengthBits bits.
// It panics if buf is too short.
func NewRegister(buf Buffer, lengthBits int) *Register {
	if need := (lengthBits + 7) / 8; len(buf.Bytes()) < need {
		panic(fmt.Sprintf("rvv: register buffer is %d bytes, want at least %d", len(buf.Bytes()), need))
	}
	return &Register{buf: buf, bits: lengthBits}
}

// MakeRegister allocates an owned, zeroed register of lengthBits bits.
func MakeRegister(lengthBits int) *Register {
	return &Register{buf: Alloc((lengthBits + 7) / 8), bits: lengthBits}
}

// Len returns the register length in bits.
func (r *Register) Len() int { return r.bits }

// Bytes returns the backing bytes.
func (r *Register) Bytes() []byte { return r.buf.Bytes() }

// Buffer returns the backing storage.
func (r *Register) Buffer() Buffer { return r.buf }

// Clone returns an owned deep copy of r.
func (r *Register) Clone() *Register {
	return &Register{buf: CloneBuffer(r.buf), bits: r.bits}
}

// Bit reports whether bit i is set. Bits past the end read as zero.
func (r *Register) Bit(i int) bool {
	if i < 0 || i >= r.bits {
		return false
	}
	return r.buf.Bytes()[i>>3]&(1<<(i&7)) != 0
}

// SetBit sets bit i.
func (r *Register) SetBit(i int) {
	r.checkIndex(i)
	r.buf.Bytes()[i>>3] |= 1 << (i & 7)
}

// ResetBit clears bit i.
func (r *Register) ResetBit(i int) {
	r.checkIndex(i)
	r.buf.Bytes()[i>>3] &^= 1 << (i & 7)
}

// ToggleBit inverts bit i.
func (r *Register) ToggleBit(i int) {
	r.checkIndex(i)
	r.buf.Bytes()[i>>3] ^= 1 << (i & 7)
}

// WriteBit sets or clears bit i.
func (r *Register) WriteBit(i int, v bool) {
	if v {
		r.SetBit(i)
	} else {
		r.ResetBit(i)
	}
}

func (r *Register) checkIndex(i int) {
	if i < 0 || i >= r.bits {
		panic(fmt.Sprintf("rvv: bit index %d out of range [0, %d)", i, r.bits))
	}
}

// Assign merges in into r: every bit whose mask bit is 1 is taken from in,
// every other bit keeps its current value. A nil mask takes every bit.
func (r *Register) Assign(in, mask *Register) *Register {
	dst := r.buf.Bytes()
	src := in.buf.Bytes()
	n := min((r.bits+7)/8, (in.bits+7)/8)
	for i := range n {
		m := byte(0xff)
		if mask != nil {
			m = 0
			if i < len(mask.buf.Bytes()) {
				m = mask.buf.Bytes()[i]
			}
		}
		if tail := r.bits - i*8; tail < 8 {
			m &= byte(1<<tail) - 1
		}
		dst[i] = dst[i]&^m | src[i]&m
	}
	return r
}

// CountSet returns the number of set bits in [0, n).
func (r *Register) CountSet(n int) int {
	count := 0
	for i := range min(n, r.bits) {
		if r.Bit(i) {
			count++
		}
	}
	return count
}

// MaskOp is a mask-register logical operation.
type MaskOp uint8

const (
	MaskAnd MaskOp = iota
	MaskNand
	MaskAndNot
	MaskXor
	MaskOr
	MaskNor
	MaskOrNot
	MaskXnor
)

func (op MaskOp) apply(a, b bool) bool {
	switch op {
	case MaskAnd:
		return a && b
	case MaskNand:
		return !(a && b)
	case MaskAndNot:
		return a && !b
	case MaskXor:
		return a != b
	case MaskOr:
		return a || b
	case MaskNor:
		return !(a || b)
	case MaskOrNot:
		return a || !b
	default:
		return a == b
	}
}

// Logic computes r[i] = a[i] <op> b[i] for i in [vstart, vl). Mask
// operations are never masked; other bits are left untouched.
func (r *Register) Logic(op MaskOp, a, b *Register, vl, vstart int) *Register {
	// Operands may alias r, so snapshot them first.
	a, b = a.Clone(), b.Clone()
	for i := vstart; i < vl; i++ {
		r.WriteBit(i, op.apply(a.Bit(i), b.Bit(i)))
	}
	return r
}

// Policy decides which element indices an operation may write.
//
// Elements below VStart are never written. When Masked is set, an element at
// or above VStart is written only if its bit in Mask is 1. Unwritten
// elements keep their previous bit pattern.
type Policy struct {
	Mask   *Register
	Masked bool
	VStart int
}

// Unmasked returns a policy that writes every element from vstart on.
func Unmasked(vstart int) Policy {
	return Policy{VStart: vstart}
}

// MaskedBy returns a policy gated by the bits of mask.
func MaskedBy(mask *Register, vstart int) Policy {
	return Policy{Mask: mask, Masked: true, VStart: vstart}
}

// Active reports whether element i may be written.
func (p Policy) Active(i int) bool {
	if i < p.VStart {
		return false
	}
	return !p.Masked || p.Mask.Bit(i)
}

// Compare sets bit i of r to a[i] <c> b[i] for each active i below a.Len().
// Inactive bits are left untouched. It returns r.
func Compare[T Unsigned](r *Register, c Cond, a *Vector[T], b Operand[T], p Policy) *Register {
	f := condFunc[T](c)
	for i := p.VStart; i < a.Len(); i++ {
		if p.Active(i) {
			r.WriteBit(i, f(a.Lane(i), b.Lane(i)))
		}
	}
	return r
}

// CarryOut sets bit i of r to the carry out of a[i] + b[i] (+ carry[i] when
// carry is non-nil) for every i in [vstart, a.Len()). It never reads a mask
// as a write enable.
func CarryOut[T Unsigned](r *Register, a *Vector[T], b Operand[T], carry *Register, vstart int) *Register {
	var cin *Register
	if carry != nil {
		cin = carry.Clone()
	}
	for i := vstart; i < a.Len(); i++ {
		_, c := addCarry(a.Lane(i), b.Lane(i), cin != nil && cin.Bit(i))
		r.WriteBit(i, c)
	}
	return r
}

// BorrowOut sets bit i of r to the borrow out of a[i] - b[i] (- borrow[i]
// when borrow is non-nil) for every i in [vstart, a.Len()).
func BorrowOut[T Unsigned](r *Register, a *Vector[T], b Operand[T], borrow *Register, vstart int) *Register {
	var bin *Register
	if borrow != nil {
		bin = borrow.Clone()
	}
	for i := vstart; i < a.Len(); i++ {
		_, c := subBorrow(a.Lane(i), b.Lane(i), bin != nil && bin.Bit(i))
		r.WriteBit(i, c)
	}
	return r
}
