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

func TestVAddVV(t *testing.T) {
	withLevel(t, func(t *testing.T) {
		vrf := newVRF()
		setLanes[uint32](vrf, 2, 1, 2, 3, 4)
		setLanes[uint32](vrf, 3, 10, 20, 30, 40)
		checkStatus(t, "vadd.vv", VAddVV(vrf, testConfig(4, 4), 1, 2, 3), NoExcept)
		checkLanes(t, "vadd.vv", lanes[uint32](vrf, 1, 4), []uint32{11, 22, 33, 44})
	})
}

func TestVSSubUSaturates(t *testing.T) {
	vrf := newVRF()
	setLanes[uint8](vrf, 2, 5)
	setLanes[uint8](vrf, 3, 10)
	var sat bool
	checkStatus(t, "vssubu.vv", VSSubUVV(vrf, testConfig(1, 1), 1, 2, 3, &sat), NoExcept)
	checkLanes(t, "vssubu.vv", lanes[uint8](vrf, 1, 1), []uint8{0})
	if !sat {
		t.Error("vssubu.vv: vxsat not set")
	}
}

func TestVRSubVI(t *testing.T) {
	vrf := newVRF()
	setLanes[uint32](vrf, 2, 10)
	checkStatus(t, "vrsub.vi", VRSubVI(vrf, testConfig(4, 1), 1, 2, 3), NoExcept)
	checkLanes(t, "vrsub.vi", lanes[uint32](vrf, 1, 1), []uint32{0xfffffff9})
}

func testWraparound[T Unsigned](t *testing.T) {
	vrf := newVRF()
	top := ^T(0)
	setLanes(vrf, 2, top, top-1, 0)
	// m2 so that three 64-bit lanes fit.
	c := testConfig(sizeOf[T](), 3)
	c.LMULNum = 2
	checkStatus(t, "vadd.vi", VAddVI(vrf, c, 4, 2, 1), NoExcept)
	checkLanes(t, "vadd.vi", lanes[T](vrf, 4, 3), []T{0, top, 1})
	checkStatus(t, "vadd.vi -1", VAddVI(vrf, c, 4, 2, 0x1f), NoExcept)
	checkLanes(t, "vadd.vi -1", lanes[T](vrf, 4, 3), []T{top - 1, top - 2, top})
}

func TestWraparound(t *testing.T) {
	t.Run("e8", testWraparound[uint8])
	t.Run("e16", testWraparound[uint16])
	t.Run("e32", testWraparound[uint32])
	t.Run("e64", testWraparound[uint64])
}

func TestMaskedUndisturbed(t *testing.T) {
	withLevel(t, func(t *testing.T) {
		vrf := newVRF()
		vrf[0] = 0b0101
		setLanes[uint16](vrf, 1, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa)
		setLanes[uint16](vrf, 2, 1, 2, 3, 4, 5)
		setLanes[uint16](vrf, 3, 100, 200, 300, 400, 500)
		c := testConfig(2, 4)
		c.Masked = true
		checkStatus(t, "vadd.vv masked", VAddVV(vrf, c, 1, 2, 3), NoExcept)
		// Lane 4 is tail.
		checkLanes(t, "vadd.vv masked", lanes[uint16](vrf, 1, 5), []uint16{101, 0xaa, 303, 0xaa, 0xaa})
	})
}

func TestVStartSkipsPrefix(t *testing.T) {
	vrf := newVRF()
	setLanes[uint8](vrf, 1, 9, 9, 9, 9)
	setLanes[uint8](vrf, 2, 1, 2, 3, 4)
	c := testConfig(1, 4)
	c.VStart = 2
	checkStatus(t, "vxor.vi", VXorVI(vrf, c, 1, 2, 0x0f), NoExcept)
	checkLanes(t, "vxor.vi", lanes[uint8](vrf, 1, 4), []uint8{9, 9, 3 ^ 15, 4 ^ 15})
}

func TestVStartEqualsVL(t *testing.T) {
	vrf := newVRF()
	setLanes[uint32](vrf, 2, 1, 2)
	before := append([]byte(nil), vrf...)
	c := testConfig(4, 2)
	c.VStart = 2
	checkStatus(t, "vadd.vi", VAddVI(vrf, c, 1, 2, 1), NoExcept)
	if diff := cmp.Diff(before, vrf); diff != "" {
		t.Errorf("vstart == vl wrote elements (-before +after):\n%s", diff)
	}
}

func TestGroupedOperands(t *testing.T) {
	vrf := newVRF()
	c := Config{VLenB: testVLenB, SEW: 4, LMULNum: 2, LMULDen: 1, VL: 6}
	setLanes[uint32](vrf, 6, 1, 2, 3, 4, 5, 6)
	setLanes[uint32](vrf, 8, 10, 10, 10, 10, 10, 10)
	checkStatus(t, "vmul.vv m2", VMulVV(vrf, c, 4, 6, 8), NoExcept)
	checkLanes(t, "vmul.vv m2", lanes[uint32](vrf, 4, 6), []uint32{10, 20, 30, 40, 50, 60})
}

func TestValidationOrder(t *testing.T) {
	c := Config{VLenB: testVLenB, SEW: 4, LMULNum: 2, LMULDen: 1, VL: 8}
	masked := c
	masked.Masked = true
	bad := c
	bad.VL = 9
	tests := []struct {
		name         string
		c            Config
		vd, vs2, vs1 int
		want         Status
	}{
		{"vtype first", bad, 1, 1, 1, VTypeIll},
		{"vs1 before vs2 and vd", c, 1, 1, 1, Src1VecIll},
		{"vs2 before vd", c, 1, 3, 2, Src2VecIll},
		{"vd", c, 1, 2, 2, DstVecIll},
		{"register past v31", c, 2, 2, 32, Src1VecIll},
		{"masked v0 destination", masked, 0, 2, 4, MaskOverlapIll},
		{"masked elsewhere", masked, 2, 2, 4, NoExcept},
		{"unmasked v0 destination", c, 0, 2, 4, NoExcept},
	}
	for _, tt := range tests {
		vrf := newVRF()
		for i := range vrf {
			vrf[i] = byte(i)
		}
		before := append([]byte(nil), vrf...)
		got := VAddVV(vrf, tt.c, tt.vd, tt.vs2, tt.vs1)
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
			continue
		}
		if got != NoExcept {
			if diff := cmp.Diff(before, vrf); diff != "" {
				t.Errorf("%s: rejected instruction modified the register file (-before +after):\n%s", tt.name, diff)
			}
		}
	}
}

func TestScalarOperandWidth(t *testing.T) {
	vrf := newVRF()
	c := testConfig(8, 1)
	setLanes[uint64](vrf, 2, 0)

	// Four bytes are sign-extended to 64 bits.
	checkStatus(t, "vadd.vx", VAddVX(vrf, c, 1, 2, []byte{0xff, 0xff, 0xff, 0xff}), NoExcept)
	checkLanes(t, "vadd.vx 32-bit", lanes[uint64](vrf, 1, 1), []uint64{^uint64(0)})

	// Eight bytes are read whole.
	x := []byte{0x01, 0x00, 0x00, 0x80, 0x02, 0x00, 0x00, 0x00}
	checkStatus(t, "vadd.vx", VAddVX(vrf, c, 1, 2, x), NoExcept)
	checkLanes(t, "vadd.vx 64-bit", lanes[uint64](vrf, 1, 1), []uint64{0x0000000280000001})

	// Raising the threshold to 8 reads the same bytes as a 32-bit value.
	c.XLenThreshold = 8
	checkStatus(t, "vadd.vx", VAddVX(vrf, c, 1, 2, x), NoExcept)
	checkLanes(t, "vadd.vx threshold 8", lanes[uint64](vrf, 1, 1), []uint64{0xffffffff80000001})

	// Short operands pad with zeros.
	c.XLenThreshold = 0
	checkStatus(t, "vadd.vx", VAddVX(vrf, c, 1, 2, []byte{0x34, 0x12}), NoExcept)
	checkLanes(t, "vadd.vx 2 bytes", lanes[uint64](vrf, 1, 1), []uint64{0x1234})
}

func TestShiftImmediateUnsigned(t *testing.T) {
	vrf := newVRF()
	c := testConfig(8, 1)
	setLanes[uint64](vrf, 2, 1)
	// As a signed immediate 16 would be -16, i.e. 48 after masking.
	checkStatus(t, "vsll.vi", VSllVI(vrf, c, 1, 2, 16), NoExcept)
	checkLanes(t, "vsll.vi", lanes[uint64](vrf, 1, 1), []uint64{1 << 16})

	setLanes[uint64](vrf, 2, 0x8000000000000000)
	checkStatus(t, "vsra.vi", VSraVI(vrf, c, 1, 2, 31), NoExcept)
	checkLanes(t, "vsra.vi", lanes[uint64](vrf, 1, 1), []uint64{0xffffffff00000000})
}

func TestMinMax(t *testing.T) {
	vrf := newVRF()
	c := testConfig(1, 2)
	setLanes[uint8](vrf, 2, 0x80, 5)
	setLanes[uint8](vrf, 3, 0x01, 0xff)
	tests := []struct {
		name string
		fn   func(vrf []byte, c Config, vd, vs2, vs1 int) Status
		want []uint8
	}{
		{"vminu", VMinUVV, []uint8{0x01, 5}},
		{"vmin", VMinVV, []uint8{0x80, 0xff}},
		{"vmaxu", VMaxUVV, []uint8{0x80, 0xff}},
		{"vmax", VMaxVV, []uint8{0x01, 5}},
	}
	for _, tt := range tests {
		checkStatus(t, tt.name, tt.fn(vrf, c, 1, 2, 3), NoExcept)
		checkLanes(t, tt.name, lanes[uint8](vrf, 1, 2), tt.want)
	}
}

func TestMulDiv(t *testing.T) {
	vrf := newVRF()
	c := testConfig(4, 4)
	setLanes[uint32](vrf, 2, 7, 0x80000000, 0xfffffff9, 9)
	setLanes[uint32](vrf, 3, 2, 0xffffffff, 0, 0xfffffffe)
	tests := []struct {
		name string
		fn   func(vrf []byte, c Config, vd, vs2, vs1 int) Status
		want []uint32
	}{
		{"vdiv", VDivVV, []uint32{3, 0x80000000, 0xffffffff, 0xfffffffc}},
		{"vrem", VRemVV, []uint32{1, 0, 0xfffffff9, 1}},
		{"vdivu", VDivUVV, []uint32{3, 0, 0xffffffff, 0}},
		{"vremu", VRemUVV, []uint32{1, 0x80000000, 0xfffffff9, 9}},
		{"vmulh", VMulHVV, []uint32{0, 0, 0, 0xffffffff}},
		{"vmulhu", VMulHUVV, []uint32{0, 0x7fffffff, 0, 8}},
	}
	for _, tt := range tests {
		checkStatus(t, tt.name, tt.fn(vrf, c, 1, 2, 3), NoExcept)
		checkLanes(t, tt.name, lanes[uint32](vrf, 1, 4), tt.want)
	}
}

func TestMulAccumulate(t *testing.T) {
	c := testConfig(2, 2)
	w := func(x int) uint16 { return uint16(x) }
	tests := []struct {
		name string
		fn   func(vrf []byte, c Config, vd, vs2, vs1 int) Status
		want []uint16
	}{
		{"vmacc", VMAccVV, []uint16{100 + 3*5, 200 + 4*6}},
		{"vnmsac", VNMSacVV, []uint16{100 - 3*5, 200 - 4*6}},
		{"vmadd", VMAddVV, []uint16{5*100 + 3, 6*200 + 4}},
		{"vnmsub", VNMSubVV, []uint16{w(3 - 5*100), w(4 - 6*200)}},
	}
	for _, tt := range tests {
		vrf := newVRF()
		setLanes[uint16](vrf, 1, 100, 200)
		setLanes[uint16](vrf, 2, 3, 4) // vs2
		setLanes[uint16](vrf, 3, 5, 6) // vs1
		checkStatus(t, tt.name, tt.fn(vrf, c, 1, 2, 3), NoExcept)
		checkLanes(t, tt.name, lanes[uint16](vrf, 1, 2), tt.want)
	}
}

func TestCompareInstructions(t *testing.T) {
	vrf := newVRF()
	c := testConfig(4, 4)
	setLanes[uint32](vrf, 2, 0, 1, 0xffffffff, 5)
	tests := []struct {
		name string
		fn   func() Status
		want byte
	}{
		{"vmseq.vi 1", func() Status { return VMSeqVI(vrf, c, 1, 2, 1) }, 0b0010},
		{"vmslt.vx 1", func() Status { return VMSltVX(vrf, c, 1, 2, []byte{1, 0, 0, 0}) }, 0b0101},
		{"vmsltu.vx 1", func() Status { return VMSltUVX(vrf, c, 1, 2, []byte{1, 0, 0, 0}) }, 0b0001},
		{"vmsleu.vi -1", func() Status { return VMSleUVI(vrf, c, 1, 2, 0x1f) }, 0b1111},
		{"vmsgtu.vi -1", func() Status { return VMSgtUVI(vrf, c, 1, 2, 0x1f) }, 0b0000},
		{"vmsgt.vi -1", func() Status { return VMSgtVI(vrf, c, 1, 2, 0x1f) }, 0b1011},
		{"vmsne.vv self", func() Status { return VMSneVV(vrf, c, 1, 2, 2) }, 0b0000},
	}
	for _, tt := range tests {
		vrf[testVLenB] = 0xf0
		checkStatus(t, tt.name, tt.fn(), NoExcept)
		// Bits past vl keep their previous value.
		if got := vrf[testVLenB]; got != 0xf0|tt.want {
			t.Errorf("%s: got mask %#08b, want %#08b", tt.name, got, 0xf0|tt.want)
		}
	}
}

func TestCompareOverlap(t *testing.T) {
	vrf := newVRF()
	c := Config{VLenB: testVLenB, SEW: 4, LMULNum: 2, LMULDen: 1, VL: 8}
	checkStatus(t, "vd == vs2", VMSeqVV(vrf, c, 2, 2, 4), NoExcept)
	checkStatus(t, "vd in upper vs2", VMSeqVV(vrf, c, 3, 2, 4), NarrowingOverlapVdVs2Ill)
	checkStatus(t, "vd in upper vs1", VMSeqVV(vrf, c, 5, 2, 4), NarrowingOverlapVdVs1Ill)
	checkStatus(t, "vd past v31", VMSeqVX(vrf, c, 32, 2, nil), DstVecIll)
}

func TestCarryOutInstructions(t *testing.T) {
	vrf := newVRF()
	c := testConfig(1, 3)
	vrf[0] = 0b100 // carry-in for lane 2
	setLanes[uint8](vrf, 2, 0xff, 0x7f, 0xff)
	setLanes[uint8](vrf, 3, 0x01, 0x01, 0x00)
	checkStatus(t, "vmadc.vv", VMAdcVV(vrf, c, 1, 2, 3), NoExcept)
	if got := vrf[testVLenB] & 0b111; got != 0b001 {
		t.Errorf("vmadc.vv: got %#03b, want 0b001", got)
	}
	checkStatus(t, "vmadc.vvm", VMAdcVVM(vrf, c, 1, 2, 3), NoExcept)
	if got := vrf[testVLenB] & 0b111; got != 0b101 {
		t.Errorf("vmadc.vvm: got %#03b, want 0b101", got)
	}
	setLanes[uint8](vrf, 2, 0, 1, 0)
	checkStatus(t, "vmsbc.vvm", VMSbcVVM(vrf, c, 1, 2, 3), NoExcept)
	if got := vrf[testVLenB] & 0b111; got != 0b101 {
		t.Errorf("vmsbc.vvm: got %#03b, want 0b101", got)
	}
}

func TestMaskLogicInstructions(t *testing.T) {
	vrf := newVRF()
	c := testConfig(1, 8)
	vrf[2*testVLenB] = 0b1100_1100
	vrf[3*testVLenB] = 0b1010_1010
	tests := []struct {
		name string
		fn   func(vrf []byte, c Config, vd, vs2, vs1 int) Status
		want byte
	}{
		{"vmand", VMAndMM, 0b1000_1000},
		{"vmnand", VMNandMM, 0b0111_0111},
		{"vmandn", VMAndNotMM, 0b0100_0100},
		{"vmxor", VMXorMM, 0b0110_0110},
		{"vmor", VMOrMM, 0b1110_1110},
		{"vmnor", VMNorMM, 0b0001_0001},
		{"vmorn", VMOrNotMM, 0b1101_1101},
		{"vmxnor", VMXnorMM, 0b1001_1001},
	}
	for _, tt := range tests {
		checkStatus(t, tt.name, tt.fn(vrf, c, 1, 2, 3), NoExcept)
		if got := vrf[testVLenB]; got != tt.want {
			t.Errorf("%s: got %#08b, want %#08b", tt.name, got, tt.want)
		}
	}
}
