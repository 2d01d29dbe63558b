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

// This file provides the multiply, divide and multiply-accumulate families.
// In the accumulate forms a is the vs1/rs1 operand and b is vs2, so that
// MulAcc computes vd = a*b + vd exactly as vmacc does.

// Mul writes the low half of a * b.
func (v *Vector[T]) Mul(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, mul[T]) }

// MulHigh writes the high half of signed a * signed b.
func (v *Vector[T]) MulHigh(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, mulhs[T]) }

// MulHighU writes the high half of unsigned a * unsigned b.
func (v *Vector[T]) MulHighU(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, mulhu[T]) }

// MulHighSU writes the high half of signed a * unsigned b.
func (v *Vector[T]) MulHighSU(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map2(a, b, p, mulhsu[T])
}

// Div writes signed a / b.
func (v *Vector[T]) Div(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, divs[T]) }

// DivU writes unsigned a / b.
func (v *Vector[T]) DivU(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, divu[T]) }

// Rem writes signed a % b.
func (v *Vector[T]) Rem(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, rems[T]) }

// RemU writes unsigned a % b.
func (v *Vector[T]) RemU(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, remu[T]) }

// MulAcc writes v + a*b (vmacc).
func (v *Vector[T]) MulAcc(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map3(a, b, p, func(d, a, b T) T { return a*b + d })
}

// NegMulSubAcc writes v - a*b (vnmsac).
func (v *Vector[T]) NegMulSubAcc(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map3(a, b, p, func(d, a, b T) T { return d - a*b })
}

// MulAdd writes a*v + b (vmadd).
func (v *Vector[T]) MulAdd(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map3(a, b, p, func(d, a, b T) T { return a*d + b })
}

// NegMulSub writes b - a*v (vnmsub).
func (v *Vector[T]) NegMulSub(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map3(a, b, p, func(d, a, b T) T { return b - a*d })
}
