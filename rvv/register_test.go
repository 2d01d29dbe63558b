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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegisterBits(t *testing.T) {
	r := MakeRegister(20)
	if r.Len() != 20 || len(r.Bytes()) != 3 {
		t.Fatalf("MakeRegister(20): got %d bits in %d bytes", r.Len(), len(r.Bytes()))
	}
	r.SetBit(0)
	r.SetBit(9)
	r.SetBit(19)
	r.ToggleBit(9)
	r.ToggleBit(10)
	r.WriteBit(3, true)
	r.ResetBit(0)
	if diff := cmp.Diff([]byte{0x08, 0x04, 0x08}, r.Bytes()); diff != "" {
		t.Errorf("bit layout (-want +got):\n%s", diff)
	}
	if !r.Bit(19) || r.Bit(9) || r.Bit(20) || r.Bit(-1) {
		t.Error("Bit: wrong value or out-of-range bit not reading as zero")
	}
	if got := r.CountSet(20); got != 3 {
		t.Errorf("CountSet: got %d, want 3", got)
	}
}

func TestRegisterSetBitOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetBit(8) on an 8-bit register: expected panic")
		}
	}()
	MakeRegister(8).SetBit(8)
}

func TestRegisterAssign(t *testing.T) {
	r := NewRegister(Borrowed([]byte{0xf0, 0x0f}), 16)
	in := NewRegister(Borrowed([]byte{0xaa, 0xaa}), 16)
	mask := NewRegister(Borrowed([]byte{0xff, 0x00}), 16)
	r.Assign(in, mask)
	if diff := cmp.Diff([]byte{0xaa, 0x0f}, r.Bytes()); diff != "" {
		t.Errorf("Assign with mask (-want +got):\n%s", diff)
	}
	r.Assign(in, nil)
	if diff := cmp.Diff([]byte{0xaa, 0xaa}, r.Bytes()); diff != "" {
		t.Errorf("Assign without mask (-want +got):\n%s", diff)
	}

	// Bits past Len are never written.
	short := NewRegister(Borrowed([]byte{0x00}), 4)
	short.Assign(NewRegister(Borrowed([]byte{0xff}), 8), nil)
	if got := short.Bytes()[0]; got != 0x0f {
		t.Errorf("Assign past Len: got %#x, want 0x0f", got)
	}
}

func TestRegisterLogic(t *testing.T) {
	a := NewRegister(Borrowed([]byte{0b1100}), 8)
	b := NewRegister(Borrowed([]byte{0b1010}), 8)
	tests := []struct {
		op   MaskOp
		want byte
	}{
		{MaskAnd, 0b1000},
		{MaskNand, 0b0111},
		{MaskAndNot, 0b0100},
		{MaskXor, 0b0110},
		{MaskOr, 0b1110},
		{MaskNor, 0b0001},
		{MaskOrNot, 0b1101},
		{MaskXnor, 0b1001},
	}
	for _, tt := range tests {
		r := NewRegister(Borrowed([]byte{0xf0}), 8)
		r.Logic(tt.op, a, b, 4, 0)
		if got := r.Bytes()[0]; got != 0xf0|tt.want {
			t.Errorf("Logic(%d): got %#08b, want %#08b", tt.op, got, 0xf0|tt.want)
		}
	}

	// In-place with vstart: only bits [1, 4) change.
	r := NewRegister(Borrowed([]byte{0b1100}), 8)
	r.Logic(MaskXor, r, b, 4, 1)
	if got := r.Bytes()[0]; got != 0b0110 {
		t.Errorf("Logic in place: got %#04b, want 0b0110", got)
	}
}

func TestRegisterCompare(t *testing.T) {
	a := VectorOf[uint16](1, 5, 0xffff, 7)
	r := MakeRegister(8)
	r.SetBit(7) // past vl, must survive
	Compare(r, CondLT, a, Splat[uint16]{Value: 5}, Unmasked(0))
	if got := r.Bytes()[0]; got != 0b1000_0101 {
		t.Errorf("Compare lt 5: got %#08b, want 0b10000101", got)
	}

	mask := NewRegister(Borrowed([]byte{0b0110}), 8)
	r = NewRegister(Borrowed([]byte{0b1001}), 8)
	Compare(r, CondEQ, a, VectorOf[uint16](1, 5, 0, 7), MaskedBy(mask, 0))
	if got := r.Bytes()[0]; got != 0b1011 {
		t.Errorf("masked Compare eq: got %#04b, want 0b1011", got)
	}
}

func TestCarryBorrowOut(t *testing.T) {
	a := VectorOf[uint8](0xff, 0xff, 0x01, 0x00)
	b := VectorOf[uint8](0x01, 0x00, 0x02, 0x00)
	cin := NewRegister(Borrowed([]byte{0b0010}), 8)

	r := MakeRegister(8)
	CarryOut(r, a, b, nil, 0)
	if got := r.Bytes()[0]; got != 0b0001 {
		t.Errorf("CarryOut: got %#04b, want 0b0001", got)
	}
	CarryOut(r, a, b, cin, 0)
	if got := r.Bytes()[0]; got != 0b0011 {
		t.Errorf("CarryOut with carry-in: got %#04b, want 0b0011", got)
	}

	BorrowOut(r, b, a, nil, 0)
	if got := r.Bytes()[0]; got != 0b0011 {
		t.Errorf("BorrowOut: got %#04b, want 0b0011", got)
	}
	BorrowOut(r, a, b, cin, 2)
	if got := r.Bytes()[0]; got != 0b0111 {
		t.Errorf("BorrowOut from vstart 2: got %#04b, want 0b0111", got)
	}
}
