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
	"errors"
	"testing"

	"github.com/ajroetker/go-rvv/rvv/vtype"
)

func TestRegisterFieldGeometry(t *testing.T) {
	vrf := newVRF()
	tests := []struct {
		name       string
		eew        int
		num, den   int
		group      int
		vlmax      int
		fractional bool
	}{
		{"e32 m1", 4, 1, 1, 1, 4, false},
		{"e8 m8", 1, 8, 1, 8, 128, false},
		{"e16 m2", 2, 4, 2, 2, 16, false},
		{"e8 mf2", 1, 1, 2, 1, 8, true},
		{"e64 mf8", 8, 2, 16, 1, 0, true},
	}
	for _, tt := range tests {
		f := NewRegisterField(vrf, testVLenB, 0, tt.eew, tt.num, tt.den)
		if got := f.GroupSize(); got != tt.group {
			t.Errorf("%s: GroupSize got %d, want %d", tt.name, got, tt.group)
		}
		if got := f.VLMax(); got != tt.vlmax {
			t.Errorf("%s: VLMax got %d, want %d", tt.name, got, tt.vlmax)
		}
		if got := f.Fractional(); got != tt.fractional {
			t.Errorf("%s: Fractional got %v, want %v", tt.name, got, tt.fractional)
		}
	}
	if num, den := NewRegisterField(vrf, testVLenB, 0, 1, 4, 2).EMUL(); num != 2 || den != 1 {
		t.Errorf("EMUL(4/2): got %d/%d, want 2/1", num, den)
	}
	if NewRegisterField(vrf, testVLenB, 0, 8, 1, 16).Legal() {
		t.Error("EMUL 1/16: Legal got true")
	}
	if NewRegisterField(vrf, testVLenB, 0, 1, 16, 1).Legal() {
		t.Error("EMUL 16: Legal got true")
	}
}

func TestRegisterFieldAlignment(t *testing.T) {
	vrf := newVRF()
	m4 := NewRegisterField(vrf, testVLenB, 4, 4, 4, 1)
	for idx, want := range map[int]bool{0: true, 4: true, 28: true, 2: false, 30: false, 32: false, -4: false} {
		if got := m4.IsAligned(idx); got != want {
			t.Errorf("m4 IsAligned(%d): got %v, want %v", idx, got, want)
		}
	}
	mf4 := NewRegisterField(vrf, testVLenB, 1, 1, 1, 4)
	for _, idx := range []int{0, 1, 7, 31} {
		if !mf4.IsAligned(idx) {
			t.Errorf("mf4 IsAligned(%d): got false, want true", idx)
		}
	}
	if lo, hi := m4.Span(8); lo != 8 || hi != 12 {
		t.Errorf("Span(8): got [%d, %d), want [8, 12)", lo, hi)
	}
}

func TestRegisterFieldViews(t *testing.T) {
	vrf := newVRF()
	setLanes[uint16](vrf, 2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	f := NewRegisterField(vrf, testVLenB, 10, 2, 2, 1)
	v := ViewVector[uint16](f, 2)
	if v.Len() != 10 || v.Cap() != 16 || v.StartReg() != 2 {
		t.Fatalf("ViewVector: got len=%d cap=%d start=%d", v.Len(), v.Cap(), v.StartReg())
	}
	checkLanes(t, "ViewVector spanning v2-v3", v.Values(), []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	v.Set(9, 99)
	if got := lanes[uint16](vrf, 3, 2)[1]; got != 99 {
		t.Errorf("write through view: got %d, want 99", got)
	}

	r := f.ViewRegister(2)
	if r.Len() != testVLenB*8 || !r.Bit(0) || r.Bit(1) {
		t.Errorf("ViewRegister: got len=%d bit0=%v bit1=%v", r.Len(), r.Bit(0), r.Bit(1))
	}
}

func TestViewVectorPanics(t *testing.T) {
	f := NewRegisterField(newVRF(), testVLenB, 4, 4, 2, 1)
	for name, fn := range map[string]func(){
		"misaligned":     func() { ViewVector[uint32](f, 3) },
		"width mismatch": func() { ViewVector[uint16](f, 2) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ViewVector %s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestWideningOverlapLegal(t *testing.T) {
	vrf := newVRF()
	src := NewRegisterField(vrf, testVLenB, 4, 4, 1, 1)  // e32 m1
	dst := NewRegisterField(vrf, testVLenB, 4, 8, 2, 1)  // e64 m2
	half := NewRegisterField(vrf, testVLenB, 2, 4, 1, 2) // e32 mf2
	tests := []struct {
		name string
		src  RegisterField
		vs   int
		want bool
	}{
		{"disjoint", src, 6, true},
		{"highest part", src, 9, true},
		{"lowest part", src, 8, false},
		{"fractional source in highest register", half, 9, false},
		{"fractional source disjoint", half, 10, true},
	}
	for _, tt := range tests {
		if got := WideningOverlapLegal(dst, 8, tt.src, tt.vs); got != tt.want {
			t.Errorf("%s: vd=v8 vs=v%d: got %v, want %v", tt.name, tt.vs, got, tt.want)
		}
	}

	// e16 m4 source widened to e32 m8 at v0: the source may sit at v4.
	src4 := NewRegisterField(vrf, testVLenB, 0, 2, 4, 1)
	dst8 := NewRegisterField(vrf, testVLenB, 0, 4, 8, 1)
	if !WideningOverlapLegal(dst8, 0, src4, 4) {
		t.Error("m4 source at v4 of m8 destination at v0: got illegal")
	}
	if WideningOverlapLegal(dst8, 0, src4, 0) {
		t.Error("m4 source at v0 of m8 destination at v0: got legal")
	}
}

func TestNarrowingOverlapLegal(t *testing.T) {
	vrf := newVRF()
	wide := NewRegisterField(vrf, testVLenB, 4, 8, 2, 1)   // e64 m2
	narrow := NewRegisterField(vrf, testVLenB, 4, 4, 1, 1) // e32 m1
	for vd, want := range map[int]bool{8: true, 9: false, 7: true, 10: true} {
		if got := NarrowingOverlapLegal(narrow, vd, wide, 8); got != want {
			t.Errorf("vd=v%d vs2=v8: got %v, want %v", vd, got, want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	vrf := newVRF()
	good := testConfig(4, 4)
	if s := good.Validate(vrf); s != NoExcept {
		t.Fatalf("Validate(good): got %v", s)
	}
	tests := []struct {
		name string
		edit func(*Config)
		vrf  []byte
	}{
		{"SEW 3", func(c *Config) { c.SEW = 3 }, vrf},
		{"LMUL 3", func(c *Config) { c.LMULNum = 3 }, vrf},
		{"LMUL 2/4", func(c *Config) { c.LMULNum, c.LMULDen = 2, 4 }, vrf},
		{"e64 mf2", func(c *Config) { c.SEW, c.VL, c.LMULDen = 8, 1, 2 }, vrf},
		{"vl > VLMAX", func(c *Config) { c.VL = 5 }, vrf},
		{"vstart > vl", func(c *Config) { c.VStart = 5 }, vrf},
		{"negative vl", func(c *Config) { c.VL = -1 }, vrf},
		{"VLENB 12", func(c *Config) { c.VLenB = 12 }, vrf},
		{"short register file", func(*Config) {}, vrf[:len(vrf)-1]},
	}
	for _, tt := range tests {
		c := good
		tt.edit(&c)
		if s := c.Validate(tt.vrf); s != VTypeIll {
			t.Errorf("Validate(%s): got %v, want VTYPE_ILL", tt.name, s)
		}
		if err := c.Check(tt.vrf); !errors.Is(err, ErrVType) {
			t.Errorf("Check(%s): got %v, want ErrVType", tt.name, err)
		}
	}

	// e8 mf8 is the smallest legal fractional configuration.
	c := Config{VLenB: testVLenB, SEW: 1, LMULNum: 1, LMULDen: 8, VL: 2}
	if s := c.Validate(vrf); s != NoExcept {
		t.Errorf("Validate(e8 mf8): got %v", s)
	}
	if got := c.VLMax(); got != 2 {
		t.Errorf("VLMax(e8 mf8): got %d, want 2", got)
	}
}

func TestConfigWithVType(t *testing.T) {
	word, err := vtype.Encode(vtype.VType{SEW: 16, LMULNum: 1, LMULDen: 2, TailAgnostic: true})
	if err != nil {
		t.Fatal(err)
	}
	c, err := Config{VLenB: testVLenB, VL: 4}.WithVType(word)
	if err != nil {
		t.Fatalf("WithVType: %v", err)
	}
	if c.SEW != 2 || c.LMULNum != 1 || c.LMULDen != 2 || !c.TailAgnostic || c.MaskAgnostic {
		t.Errorf("WithVType: got %+v", c)
	}
	if got := c.VType().String(); got != "e16,mf2,ta,mu" {
		t.Errorf("VType: got %q", got)
	}
	if _, err := (Config{}).WithVType(vtype.IllegalWord); !errors.Is(err, vtype.ErrIllegal) {
		t.Errorf("WithVType(vill): got %v, want ErrIllegal", err)
	}
}

func TestConfigField(t *testing.T) {
	vrf := newVRF()
	c := Config{VLenB: testVLenB, SEW: 2, LMULNum: 4, LMULDen: 1, VL: 8}
	tests := []struct {
		eew   int
		ok    bool
		group int
		frac  bool
	}{
		{1, true, 2, false},
		{2, true, 4, false},
		{4, true, 8, false},
		{8, false, 0, false}, // EMUL 16
	}
	for _, tt := range tests {
		f, ok := c.Field(vrf, tt.eew)
		if ok != tt.ok {
			t.Errorf("Field(e%d) at e16 m4: ok got %v, want %v", tt.eew*8, ok, tt.ok)
			continue
		}
		if ok && f.GroupSize() != tt.group {
			t.Errorf("Field(e%d) at e16 m4: GroupSize got %d, want %d", tt.eew*8, f.GroupSize(), tt.group)
		}
	}

	c = Config{VLenB: testVLenB, SEW: 8, LMULNum: 1, LMULDen: 1, VL: 2}
	f, ok := c.Field(vrf, 1)
	if !ok || !f.Fractional() || f.VLMax() != 2 {
		t.Errorf("Field(e8) at e64 m1: got ok=%v fractional=%v VLMax=%d", ok, f.Fractional(), f.VLMax())
	}
	if _, ok := c.Field(vrf, 16); ok {
		t.Error("Field(e128): got ok")
	}
}

func TestStatusErr(t *testing.T) {
	if NoExcept.Err() != nil || !NoExcept.OK() {
		t.Error("NoExcept should map to a nil error")
	}
	for s := Src1VecIll; s <= VTypeIll; s++ {
		if s.Err() == nil || s.OK() {
			t.Errorf("%v: Err got nil", s)
		}
	}
	if !errors.Is(WideningOverlapVdVs2Ill.Err(), ErrWideningOverlapVs2) {
		t.Error("WideningOverlapVdVs2Ill does not wrap ErrWideningOverlapVs2")
	}
	if got := DstVecIll.String(); got != "DST_VEC_ILL" {
		t.Errorf("String: got %q", got)
	}
	if got := Status(99).String(); got != "UNKNOWN_STATUS" {
		t.Errorf("String(99): got %q", got)
	}
}
