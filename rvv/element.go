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

// Element is one fixed-width two's-complement integer stored little-endian in
// a Buffer of exactly sizeof(T) bytes.
//
// An Element obtained from Vector.At is Borrowed: writes through it change the
// register file. Results of arithmetic methods and Clone are Owned.
// Element carries no signedness; each operation states its own.
//
// Binary operations take an Element operand; the ...Imm forms take a 64-bit
// immediate instead and truncate it to the width of T. A signed immediate is
// passed as uint64(v), which truncates to the same bits as its sign
// extension would.
type Element[T Unsigned] struct {
	buf Buffer
}

// NewElement wraps buf as an Element. It panics if buf is not exactly
// sizeof(T) bytes long.
func NewElement[T Unsigned](buf Buffer) Element[T] {
	if n := len(buf.Bytes()); n != sizeOf[T]() {
		panic(fmt.Sprintf("rvv: element buffer is %d bytes, want %d", n, sizeOf[T]()))
	}
	return Element[T]{buf: buf}
}

// ElementOf returns an owned Element holding x truncated to the width of T.
func ElementOf[T Unsigned](x uint64) Element[T] {
	e := Element[T]{buf: Alloc(sizeOf[T]())}
	e.Store(T(x))
	return e
}

// ElementOfSigned returns an owned Element holding v sign-extended (or
// truncated) to the width of T.
func ElementOfSigned[T Unsigned](v int64) Element[T] {
	return ElementOf[T](uint64(v))
}

// Buffer returns the Element's backing storage.
func (e Element[T]) Buffer() Buffer { return e.buf }

// Value returns the bit pattern.
func (e Element[T]) Value() T { return loadLE[T](e.buf.Bytes()) }

// Signed returns the value interpreted as two's complement.
func (e Element[T]) Signed() int64 { return toSigned(e.Value()) }

// Unsigned returns the value zero-extended to 64 bits.
func (e Element[T]) Unsigned() uint64 { return uint64(e.Value()) }

// Store overwrites the bit pattern in place.
func (e Element[T]) Store(v T) { storeLE(e.buf.Bytes(), v) }

// Clone returns an owned deep copy.
func (e Element[T]) Clone() Element[T] {
	return Element[T]{buf: CloneBuffer(e.buf)}
}

// Width returns the element width in bits.
func (e Element[T]) Width() int { return int(bitsOf[T]()) }

func (e Element[T]) unary(f func(T) T) Element[T] {
	out := Element[T]{buf: Alloc(sizeOf[T]())}
	out.Store(f(e.Value()))
	return out
}

func (e Element[T]) binary(o Element[T], f func(a, b T) T) Element[T] {
	out := Element[T]{buf: Alloc(sizeOf[T]())}
	out.Store(f(e.Value(), o.Value()))
	return out
}

// Add returns e + o modulo 2^width.
func (e Element[T]) Add(o Element[T]) Element[T] { return e.binary(o, add[T]) }

// Sub returns e - o modulo 2^width.
func (e Element[T]) Sub(o Element[T]) Element[T] { return e.binary(o, sub[T]) }

// RSub returns o - e modulo 2^width.
func (e Element[T]) RSub(o Element[T]) Element[T] { return e.binary(o, rsub[T]) }

// And returns the bitwise AND.
func (e Element[T]) And(o Element[T]) Element[T] { return e.binary(o, and[T]) }

// Or returns the bitwise OR.
func (e Element[T]) Or(o Element[T]) Element[T] { return e.binary(o, or[T]) }

// Xor returns the bitwise XOR.
func (e Element[T]) Xor(o Element[T]) Element[T] { return e.binary(o, xor[T]) }

// ShiftLeft shifts by the low log2(width) bits of o.
func (e Element[T]) ShiftLeft(o Element[T]) Element[T] { return e.binary(o, sll[T]) }

// ShiftRightLogical shifts by the low log2(width) bits of o, filling zeros.
func (e Element[T]) ShiftRightLogical(o Element[T]) Element[T] { return e.binary(o, srl[T]) }

// ShiftRightArith shifts by the low log2(width) bits of o, filling the sign.
func (e Element[T]) ShiftRightArith(o Element[T]) Element[T] { return e.binary(o, sra[T]) }

// Neg returns the two's complement negation.
func (e Element[T]) Neg() Element[T] { return e.unary(neg[T]) }

// Inc returns e + 1.
func (e Element[T]) Inc() Element[T] { return e.unary(func(x T) T { return x + 1 }) }

// Dec returns e - 1.
func (e Element[T]) Dec() Element[T] { return e.unary(func(x T) T { return x - 1 }) }

// Mul returns the low half of e * o.
func (e Element[T]) Mul(o Element[T]) Element[T] { return e.binary(o, mul[T]) }

// MulHigh returns the high half of e * o with the given operand signedness.
func (e Element[T]) MulHigh(o Element[T], signedE, signedO bool) Element[T] {
	switch {
	case signedE && signedO:
		return e.binary(o, mulhs[T])
	case signedE:
		return e.binary(o, mulhsu[T])
	case signedO:
		return e.binary(o, func(a, b T) T { return mulhsu(b, a) })
	default:
		return e.binary(o, mulhu[T])
	}
}

// Div returns e / o. Division by zero yields all ones and MIN/-1 yields MIN.
func (e Element[T]) Div(o Element[T], signed bool) Element[T] {
	if signed {
		return e.binary(o, divs[T])
	}
	return e.binary(o, divu[T])
}

// Rem returns e % o. A zero divisor yields e and MIN%-1 yields 0.
func (e Element[T]) Rem(o Element[T], signed bool) Element[T] {
	if signed {
		return e.binary(o, rems[T])
	}
	return e.binary(o, remu[T])
}

func (e Element[T]) binaryImm(x uint64, f func(a, b T) T) Element[T] {
	return e.binary(ElementOf[T](x), f)
}

// AddImm returns e + x modulo 2^width.
func (e Element[T]) AddImm(x uint64) Element[T] { return e.binaryImm(x, add[T]) }

// SubImm returns e - x modulo 2^width.
func (e Element[T]) SubImm(x uint64) Element[T] { return e.binaryImm(x, sub[T]) }

// RSubImm returns x - e modulo 2^width.
func (e Element[T]) RSubImm(x uint64) Element[T] { return e.binaryImm(x, rsub[T]) }

// AndImm returns e & x.
func (e Element[T]) AndImm(x uint64) Element[T] { return e.binaryImm(x, and[T]) }

// OrImm returns e | x.
func (e Element[T]) OrImm(x uint64) Element[T] { return e.binaryImm(x, or[T]) }

// XorImm returns e ^ x.
func (e Element[T]) XorImm(x uint64) Element[T] { return e.binaryImm(x, xor[T]) }

// ShiftLeftImm shifts by the low log2(width) bits of x.
func (e Element[T]) ShiftLeftImm(x uint64) Element[T] { return e.binaryImm(x, sll[T]) }

// ShiftRightLogicalImm shifts by the low log2(width) bits of x, filling zeros.
func (e Element[T]) ShiftRightLogicalImm(x uint64) Element[T] { return e.binaryImm(x, srl[T]) }

// ShiftRightArithImm shifts by the low log2(width) bits of x, filling the sign.
func (e Element[T]) ShiftRightArithImm(x uint64) Element[T] { return e.binaryImm(x, sra[T]) }

// MulImm returns the low half of e * x.
func (e Element[T]) MulImm(x uint64) Element[T] { return e.binaryImm(x, mul[T]) }

// DivImm is Div with an immediate divisor.
func (e Element[T]) DivImm(x uint64, signed bool) Element[T] {
	return e.Div(ElementOf[T](x), signed)
}

// RemImm is Rem with an immediate divisor.
func (e Element[T]) RemImm(x uint64, signed bool) Element[T] {
	return e.Rem(ElementOf[T](x), signed)
}

// Cond selects a comparison.
type Cond uint8

const (
	CondEQ Cond = iota
	CondNE
	CondLTU
	CondLT
	CondLEU
	CondLE
	CondGTU
	CondGT
	CondGEU
	CondGE
)

var condNames = [...]string{"eq", "ne", "ltu", "lt", "leu", "le", "gtu", "gt", "geu", "ge"}

// String returns the mnemonic suffix, e.g. "ltu".
func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return "unknown"
}

// Negate returns the complementary condition.
func (c Cond) Negate() Cond {
	switch c {
	case CondEQ:
		return CondNE
	case CondNE:
		return CondEQ
	case CondLTU:
		return CondGEU
	case CondLT:
		return CondGE
	case CondLEU:
		return CondGTU
	case CondLE:
		return CondGT
	case CondGTU:
		return CondLEU
	case CondGT:
		return CondLE
	case CondGEU:
		return CondLTU
	default:
		return CondLT
	}
}

// condFunc returns the predicate for c.
func condFunc[T Unsigned](c Cond) func(a, b T) bool {
	switch c {
	case CondEQ:
		return eq[T]
	case CondNE:
		return ne[T]
	case CondLTU:
		return ltu[T]
	case CondLT:
		return lts[T]
	case CondLEU:
		return leu[T]
	case CondLE:
		return les[T]
	case CondGTU:
		return gtu[T]
	case CondGT:
		return gts[T]
	case CondGEU:
		return geu[T]
	default:
		return ges[T]
	}
}

// Compare evaluates e <c> o.
func (e Element[T]) Compare(c Cond, o Element[T]) bool {
	return condFunc[T](c)(e.Value(), o.Value())
}

// CompareImm evaluates e <c> x, with x truncated to the width of T.
func (e Element[T]) CompareImm(c Cond, x uint64) bool {
	return e.Compare(c, ElementOf[T](x))
}

// WidenAdd returns ext(a) + ext(b) as a double-width Element.
func WidenAdd[N, W Unsigned](a, b Element[N], signed bool) Element[W] {
	return ElementOf[W](uint64(extend[N, W](a.Value(), signed) + extend[N, W](b.Value(), signed)))
}

// WidenSub returns ext(a) - ext(b) as a double-width Element.
func WidenSub[N, W Unsigned](a, b Element[N], signed bool) Element[W] {
	return ElementOf[W](uint64(extend[N, W](a.Value(), signed) - extend[N, W](b.Value(), signed)))
}

// WidenMul returns the full product of a and b as a double-width Element.
// signedA and signedB select the interpretation of each operand, which covers
// the signed, unsigned and mixed forms.
func WidenMul[N, W Unsigned](a, b Element[N], signedA, signedB bool) Element[W] {
	return ElementOf[W](uint64(extend[N, W](a.Value(), signedA) * extend[N, W](b.Value(), signedB)))
}
