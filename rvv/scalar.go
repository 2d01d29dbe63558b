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

// This file provides the per-element arithmetic shared by Element, Vector and
// the instruction layer. Every helper operates on the raw bit pattern T and
// wraps modulo 2^bits(T). Signed variants reinterpret the pattern through
// toSigned; nothing here can trap.

// toSigned sign-extends the bit pattern x to int64.
func toSigned[T Unsigned](x T) int64 {
	s := 64 - bitsOf[T]()
	return int64(uint64(x)<<s) >> s
}

// fromSigned truncates v to the width of T.
func fromSigned[T Unsigned](v int64) T {
	return T(uint64(v))
}

// msb reports whether the most significant bit of x is set.
func msb[T Unsigned](x T) bool {
	return x>>(bitsOf[T]()-1) != 0
}

// maxUnsigned returns the all-ones pattern of T.
func maxUnsigned[T Unsigned]() T {
	return ^T(0)
}

// maxSigned returns the largest signed value representable in T.
func maxSigned[T Unsigned]() T {
	return ^T(0) >> 1
}

// minSigned returns the most negative signed value representable in T.
func minSigned[T Unsigned]() T {
	return ^maxSigned[T]()
}

// shamt masks a shift amount to log2(bits(T)) bits.
func shamt[T Unsigned](b T) uint {
	return uint(b) & (bitsOf[T]() - 1)
}

func add[T Unsigned](a, b T) T  { return a + b }
func sub[T Unsigned](a, b T) T  { return a - b }
func rsub[T Unsigned](a, b T) T { return b - a }
func and[T Unsigned](a, b T) T  { return a & b }
func or[T Unsigned](a, b T) T   { return a | b }
func xor[T Unsigned](a, b T) T  { return a ^ b }
func mul[T Unsigned](a, b T) T  { return a * b }
func neg[T Unsigned](a T) T     { return -a }

func sll[T Unsigned](a, b T) T { return a << shamt(b) }
func srl[T Unsigned](a, b T) T { return a >> shamt(b) }

func sra[T Unsigned](a, b T) T {
	return fromSigned[T](toSigned(a) >> shamt(b))
}

func minu[T Unsigned](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxu[T Unsigned](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func mins[T Unsigned](a, b T) T {
	if toSigned(a) < toSigned(b) {
		return a
	}
	return b
}

func maxs[T Unsigned](a, b T) T {
	if toSigned(a) > toSigned(b) {
		return a
	}
	return b
}

// Division follows the RISC-V M/V conventions instead of trapping:
// x/0 is all ones, x%0 is x, and MIN/-1 is MIN with remainder 0.

func divu[T Unsigned](a, b T) T {
	if b == 0 {
		return maxUnsigned[T]()
	}
	return a / b
}

func remu[T Unsigned](a, b T) T {
	if b == 0 {
		return a
	}
	return a % b
}

func divs[T Unsigned](a, b T) T {
	if b == 0 {
		return maxUnsigned[T]()
	}
	if a == minSigned[T]() && b == maxUnsigned[T]() {
		return a
	}
	return fromSigned[T](toSigned(a) / toSigned(b))
}

func rems[T Unsigned](a, b T) T {
	if b == 0 {
		return a
	}
	if a == minSigned[T]() && b == maxUnsigned[T]() {
		return 0
	}
	return fromSigned[T](toSigned(a) % toSigned(b))
}

// High-half products. Widths below 64 bits fit a native 64-bit product;
// 64-bit operands go through the 256-bit helpers in wide.go.

func mulhu[T Unsigned](a, b T) T {
	w := bitsOf[T]()
	if w < 64 {
		return T((uint64(a) * uint64(b)) >> w)
	}
	return T(hi64(wideMul(wideOf(a, false), wideOf(b, false))))
}

func mulhs[T Unsigned](a, b T) T {
	w := bitsOf[T]()
	if w < 64 {
		return fromSigned[T]((toSigned(a) * toSigned(b)) >> w)
	}
	return T(hi64(wideMul(wideOf(a, true), wideOf(b, true))))
}

// mulhsu multiplies signed a by unsigned b.
func mulhsu[T Unsigned](a, b T) T {
	w := bitsOf[T]()
	if w < 64 {
		return fromSigned[T]((toSigned(a) * int64(b)) >> w)
	}
	return T(hi64(wideMul(wideOf(a, true), wideOf(b, false))))
}

// Comparisons.

func eq[T Unsigned](a, b T) bool  { return a == b }
func ne[T Unsigned](a, b T) bool  { return a != b }
func ltu[T Unsigned](a, b T) bool { return a < b }
func leu[T Unsigned](a, b T) bool { return a <= b }
func gtu[T Unsigned](a, b T) bool { return a > b }
func geu[T Unsigned](a, b T) bool { return a >= b }
func lts[T Unsigned](a, b T) bool { return toSigned(a) < toSigned(b) }
func les[T Unsigned](a, b T) bool { return toSigned(a) <= toSigned(b) }
func gts[T Unsigned](a, b T) bool { return toSigned(a) > toSigned(b) }
func ges[T Unsigned](a, b T) bool { return toSigned(a) >= toSigned(b) }

// addCarry returns a+b+cin and the carry out of the top bit.
func addCarry[T Unsigned](a, b T, cin bool) (T, bool) {
	sum := a + b
	if cin {
		sum++
	}
	c := (a & b) | ((a ^ b) &^ sum)
	return sum, msb(c)
}

// subBorrow returns a-b-bin and the borrow out of the top bit.
func subBorrow[T Unsigned](a, b T, bin bool) (T, bool) {
	diff := a - b
	if bin {
		diff--
	}
	c := (^a & b) | (^(a ^ b) & diff)
	return diff, msb(c)
}

// Saturating arithmetic. The bool result reports whether the exact result was
// clamped.

func saddu[T Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return maxUnsigned[T](), true
	}
	return sum, false
}

func sadds[T Unsigned](a, b T) (T, bool) {
	sum := a + b
	if msb(a) == msb(b) && msb(sum) != msb(a) {
		if msb(a) {
			return minSigned[T](), true
		}
		return maxSigned[T](), true
	}
	return sum, false
}

func ssubu[T Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, true
	}
	return a - b, false
}

func ssubs[T Unsigned](a, b T) (T, bool) {
	diff := a - b
	if msb(a) != msb(b) && msb(diff) != msb(a) {
		if msb(a) {
			return minSigned[T](), true
		}
		return maxSigned[T](), true
	}
	return diff, false
}

// extend widens a narrow pattern to W, sign- or zero-extending.
func extend[N, W Unsigned](x N, signed bool) W {
	if signed {
		return W(uint64(toSigned(x)))
	}
	return W(x)
}

// simm5 sign-extends the low 5 bits of raw.
func simm5(raw uint8) int64 {
	return int64(int8(raw<<3) >> 3)
}

// uimm5 zero-extends the low 5 bits of raw.
func uimm5(raw uint8) uint64 {
	return uint64(raw & 0x1f)
}
