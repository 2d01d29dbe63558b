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

import "github.com/holiman/uint256"

// Exact intermediates for operations whose mathematical result does not fit
// in 64 bits: 64x64 products, SEW+1 bit averaging sums and rounding shifts of
// 2*SEW sources. Values are held as 256-bit two's complement, so signed and
// unsigned inputs share one code path.

// wideOf sign- or zero-extends x to 256 bits.
func wideOf[T Unsigned](x T, signed bool) *uint256.Int {
	if signed {
		return wideInt64(toSigned(x))
	}
	return uint256.NewInt(uint64(x))
}

// wideInt64 encodes v as 256-bit two's complement.
func wideInt64(v int64) *uint256.Int {
	if v >= 0 {
		return uint256.NewInt(uint64(v))
	}
	z := uint256.NewInt(uint64(-v))
	return z.Neg(z)
}

func wideAdd(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Add(a, b)
}

func wideSub(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sub(a, b)
}

func wideMul(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Mul(a, b)
}

// hi64 returns bits [64, 128) of p.
func hi64(p *uint256.Int) uint64 {
	return new(uint256.Int).SRsh(p, 64).Uint64()
}

// wideBit returns bit n of v.
func wideBit(v *uint256.Int, n uint) bool {
	return new(uint256.Int).Rsh(v, n).Uint64()&1 != 0
}

// wideLowNonZero reports whether any of bits [0, n) of v is set.
func wideLowNonZero(v *uint256.Int, n uint) bool {
	if n == 0 {
		return false
	}
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), n)
	mask.Sub(mask, uint256.NewInt(1))
	return !mask.And(mask, v).IsZero()
}

// clipUnsigned clamps v to [0, max(T)] and reports whether it was clamped.
func clipUnsigned[T Unsigned](v *uint256.Int) (T, bool) {
	if v.Sign() < 0 {
		return 0, true
	}
	hi := uint256.NewInt(uint64(maxUnsigned[T]()))
	if v.Gt(hi) {
		return maxUnsigned[T](), true
	}
	return T(v.Uint64()), false
}

// clipSigned clamps v to the signed range of T and reports whether it was
// clamped.
func clipSigned[T Unsigned](v *uint256.Int) (T, bool) {
	lo := wideOf(minSigned[T](), true)
	hi := wideOf(maxSigned[T](), true)
	if v.Slt(lo) {
		return minSigned[T](), true
	}
	if v.Sgt(hi) {
		return maxSigned[T](), true
	}
	return T(v.Uint64()), false
}
