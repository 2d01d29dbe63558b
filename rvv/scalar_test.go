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

import (
	"math"
	"testing"
)

func TestDivisionEdgeCases(t *testing.T) {
	if got := divu[uint8](7, 0); got != 0xff {
		t.Errorf("divu(7, 0): got %#x, want 0xff", got)
	}
	if got := remu[uint8](7, 0); got != 7 {
		t.Errorf("remu(7, 0): got %d, want 7", got)
	}
	if got := divs[uint32](5, 0); got != math.MaxUint32 {
		t.Errorf("divs(5, 0): got %#x, want all ones", got)
	}
	if got := rems[uint32](5, 0); got != 5 {
		t.Errorf("rems(5, 0): got %d, want 5", got)
	}
	minI64 := uint64(1) << 63
	if got := divs[uint64](minI64, math.MaxUint64); got != minI64 {
		t.Errorf("divs(MIN, -1): got %#x, want %#x", got, minI64)
	}
	if got := rems[uint64](minI64, math.MaxUint64); got != 0 {
		t.Errorf("rems(MIN, -1): got %#x, want 0", got)
	}
	neg7 := uint16(0xfff9) // -7
	if got := toSigned(divs[uint16](neg7, 2)); got != -3 {
		t.Errorf("divs(-7, 2): got %d, want -3", got)
	}
	if got := toSigned(rems[uint16](neg7, 2)); got != -1 {
		t.Errorf("rems(-7, 2): got %d, want -1", got)
	}
}

func TestMulHigh(t *testing.T) {
	if got := mulhu[uint8](0xff, 0xff); got != 0xfe {
		t.Errorf("mulhu8: got %#x, want 0xfe", got)
	}
	// -1 * -1 = 1, high half 0.
	if got := mulhs[uint8](0xff, 0xff); got != 0 {
		t.Errorf("mulhs8(-1, -1): got %#x, want 0", got)
	}
	// -1 * 255 = -255 = 0xff01, high half 0xff.
	if got := mulhsu[uint8](0xff, 0xff); got != 0xff {
		t.Errorf("mulhsu8(-1, 255): got %#x, want 0xff", got)
	}
	if got := mulhu[uint64](math.MaxUint64, math.MaxUint64); got != math.MaxUint64-1 {
		t.Errorf("mulhu64: got %#x, want %#x", got, uint64(math.MaxUint64-1))
	}
	if got := mulhs[uint64](math.MaxUint64, 2); got != math.MaxUint64 {
		t.Errorf("mulhs64(-1, 2): got %#x, want all ones", got)
	}
	if got := mulhsu[uint64](math.MaxUint64, math.MaxUint64); got != math.MaxUint64 {
		t.Errorf("mulhsu64(-1, MAX): got %#x, want all ones", got)
	}
	if got := mulhs[uint32](0x80000000, 0x80000000); got != 0x40000000 {
		t.Errorf("mulhs32(MIN, MIN): got %#x, want 0x40000000", got)
	}
}

func TestCarryBorrow(t *testing.T) {
	tests := []struct {
		a, b   uint8
		cin    bool
		sum    uint8
		carry  bool
		diff   uint8
		borrow bool
	}{
		{0xff, 0x01, false, 0x00, true, 0xfe, false},
		{0x7f, 0x01, false, 0x80, false, 0x7e, false},
		{0x00, 0x01, false, 0x01, false, 0xff, true},
		{0xff, 0x00, true, 0x00, true, 0xfe, false},
		{0x80, 0x80, false, 0x00, true, 0x00, false},
		{0x00, 0x00, true, 0x01, false, 0xff, true},
		{0x05, 0x05, true, 0x0b, false, 0xff, true},
	}
	for _, tt := range tests {
		sum, c := addCarry(tt.a, tt.b, tt.cin)
		if sum != tt.sum || c != tt.carry {
			t.Errorf("addCarry(%#x, %#x, %v): got (%#x, %v), want (%#x, %v)", tt.a, tt.b, tt.cin, sum, c, tt.sum, tt.carry)
		}
		diff, b := subBorrow(tt.a, tt.b, tt.cin)
		if diff != tt.diff || b != tt.borrow {
			t.Errorf("subBorrow(%#x, %#x, %v): got (%#x, %v), want (%#x, %v)", tt.a, tt.b, tt.cin, diff, b, tt.diff, tt.borrow)
		}
	}
}

func TestCarryExhaustive8(t *testing.T) {
	for a := range 256 {
		for b := range 256 {
			for _, cin := range []bool{false, true} {
				in := 0
				if cin {
					in = 1
				}
				_, c := addCarry(uint8(a), uint8(b), cin)
				if want := a+b+in > 0xff; c != want {
					t.Fatalf("addCarry(%d, %d, %v): carry got %v, want %v", a, b, cin, c, want)
				}
				_, br := subBorrow(uint8(a), uint8(b), cin)
				if want := a-b-in < 0; br != want {
					t.Fatalf("subBorrow(%d, %d, %v): borrow got %v, want %v", a, b, cin, br, want)
				}
			}
		}
	}
}

func TestSaturatingScalar(t *testing.T) {
	if r, s := sadds[uint8](0x7f, 1); r != 0x7f || !s {
		t.Errorf("sadds(127, 1): got (%d, %v), want (127, true)", r, s)
	}
	if r, s := sadds[uint8](0x80, 0xff); r != 0x80 || !s {
		t.Errorf("sadds(-128, -1): got (%#x, %v), want (0x80, true)", r, s)
	}
	if r, s := sadds[uint8](0x10, 0xf0); r != 0 || s {
		t.Errorf("sadds(16, -16): got (%d, %v), want (0, false)", r, s)
	}
	if r, s := ssubs[uint16](0x8000, 1); r != 0x8000 || !s {
		t.Errorf("ssubs(MIN, 1): got (%#x, %v), want (0x8000, true)", r, s)
	}
	if r, s := ssubs[uint16](0x7fff, 0xffff); r != 0x7fff || !s {
		t.Errorf("ssubs(MAX, -1): got (%#x, %v), want (0x7fff, true)", r, s)
	}
	if r, s := ssubu[uint32](3, 4); r != 0 || !s {
		t.Errorf("ssubu(3, 4): got (%d, %v), want (0, true)", r, s)
	}
}

func TestSignedSaturationExhaustive8(t *testing.T) {
	clamp := func(v int) (int, bool) {
		switch {
		case v > 127:
			return 127, true
		case v < -128:
			return -128, true
		}
		return v, false
	}
	for a := -128; a < 128; a++ {
		for b := -128; b < 128; b++ {
			want, wantSat := clamp(a + b)
			got, sat := sadds(uint8(int8(a)), uint8(int8(b)))
			if int(int8(got)) != want || sat != wantSat {
				t.Fatalf("sadds(%d, %d): got (%d, %v), want (%d, %v)", a, b, int8(got), sat, want, wantSat)
			}
			want, wantSat = clamp(a - b)
			got, sat = ssubs(uint8(int8(a)), uint8(int8(b)))
			if int(int8(got)) != want || sat != wantSat {
				t.Fatalf("ssubs(%d, %d): got (%d, %v), want (%d, %v)", a, b, int8(got), sat, want, wantSat)
			}
		}
	}
}

func TestImmediates(t *testing.T) {
	tests := []struct {
		raw uint8
		s   int64
		u   uint64
	}{
		{0x00, 0, 0},
		{0x03, 3, 3},
		{0x0f, 15, 15},
		{0x10, -16, 16},
		{0x1f, -1, 31},
		{0xe3, 3, 3}, // upper bits ignored
	}
	for _, tt := range tests {
		if got := simm5(tt.raw); got != tt.s {
			t.Errorf("simm5(%#x): got %d, want %d", tt.raw, got, tt.s)
		}
		if got := uimm5(tt.raw); got != tt.u {
			t.Errorf("uimm5(%#x): got %d, want %d", tt.raw, got, tt.u)
		}
	}
}

func TestShiftAmountMasked(t *testing.T) {
	if got := sll[uint8](1, 9); got != 2 {
		t.Errorf("sll8(1, 9): got %d, want 2", got)
	}
	if got := sra[uint16](0x8000, 15+16); got != 0xffff {
		t.Errorf("sra16(MIN, 31): got %#x, want 0xffff", got)
	}
	if got := srl[uint64](1<<63, 64+63); got != 1 {
		t.Errorf("srl64(1<<63, 127): got %d, want 1", got)
	}
}

func TestExtend(t *testing.T) {
	if got := extend[uint8, uint32](0x80, true); got != 0xffffff80 {
		t.Errorf("sext(0x80): got %#x", got)
	}
	if got := extend[uint8, uint32](0x80, false); got != 0x80 {
		t.Errorf("zext(0x80): got %#x", got)
	}
	if got := extend[uint32, uint64](0xffffffff, true); got != math.MaxUint64 {
		t.Errorf("sext32(-1): got %#x", got)
	}
}
