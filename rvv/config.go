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
	"fmt"

	"github.com/ajroetker/go-rvv/rvv/vtype"
)

// DefaultXLenThreshold is the scalar operand length, in bytes, at or below
// which a scalar register is read as 32 bits and sign-extended. Longer
// operands are read as 64 bits.
const DefaultXLenThreshold = 4

// Config carries the per-call vector unit state every instruction entry
// point consumes: register geometry, vtype, vl, vstart, vm and vxrm.
//
// The zero value is unusable; at least VLenB, SEW, LMULNum and LMULDen must
// be set.
type Config struct {
	// VLenB is the register length in bytes (VLEN/8).
	VLenB int

	// SEW is the selected element width in bytes: 1, 2, 4 or 8.
	SEW int

	// LMULNum and LMULDen give the group multiplier LMUL = LMULNum/LMULDen.
	LMULNum, LMULDen int

	// VL is the number of body elements.
	VL int

	// VStart is the first element index written. Elements below it are
	// never touched.
	VStart int

	// Masked selects masking by v0 (vm = 0 in the encoding).
	Masked bool

	// VXRM is the fixed-point rounding mode.
	VXRM RoundingMode

	// TailAgnostic and MaskAgnostic record the vtype policy bits. Tail and
	// inactive elements are always left undisturbed, which both policies
	// allow.
	TailAgnostic, MaskAgnostic bool

	// XLenThreshold overrides DefaultXLenThreshold when positive.
	XLenThreshold int
}

// WithVType returns c with SEW, LMUL and the agnostic flags taken from a
// vtype word. It fails if the word is illegal or reserved.
func (c Config) WithVType(word uint64) (Config, error) {
	v, err := vtype.Decode(word)
	if err != nil {
		return c, err
	}
	c.SEW = v.SEW / 8
	c.LMULNum, c.LMULDen = v.LMULNum, v.LMULDen
	c.TailAgnostic, c.MaskAgnostic = v.TailAgnostic, v.MaskAgnostic
	return c, nil
}

// VType returns the vtype fields of c.
func (c Config) VType() vtype.VType {
	return vtype.VType{
		SEW:          c.SEW * 8,
		LMULNum:      c.LMULNum,
		LMULDen:      c.LMULDen,
		TailAgnostic: c.TailAgnostic,
		MaskAgnostic: c.MaskAgnostic,
	}
}

// VLMax returns LMUL * VLEN / SEW.
func (c Config) VLMax() int {
	if c.SEW <= 0 || c.LMULDen <= 0 {
		return 0
	}
	return c.VLenB * c.LMULNum / (c.LMULDen * c.SEW)
}

// Validate reports VTypeIll when c cannot drive an instruction over vrf.
func (c Config) Validate(vrf []byte) Status {
	if c.check(vrf) != nil {
		return VTypeIll
	}
	return NoExcept
}

// Check is Validate with a descriptive error.
func (c Config) Check(vrf []byte) error {
	if err := c.check(vrf); err != nil {
		return fmt.Errorf("%w: %w", ErrVType, err)
	}
	return nil
}

func (c Config) check(vrf []byte) error {
	switch {
	case c.VLenB <= 0 || c.VLenB&(c.VLenB-1) != 0:
		return fmt.Errorf("VLENB %d is not a positive power of two", c.VLenB)
	case !validSEW(c.SEW):
		return fmt.Errorf("SEW of %d bytes", c.SEW)
	case !validLMUL(c.LMULNum, c.LMULDen):
		return fmt.Errorf("LMUL %d/%d", c.LMULNum, c.LMULDen)
	case c.SEW*c.LMULDen > MaxELEN*c.LMULNum:
		// Fractional LMUL must leave room for one ELEN-wide element.
		return fmt.Errorf("SEW %d exceeds LMUL*ELEN for LMUL %d/%d", c.SEW*8, c.LMULNum, c.LMULDen)
	case c.VLenB < c.SEW:
		return fmt.Errorf("VLENB %d below SEW %d", c.VLenB, c.SEW)
	case c.VL < 0 || c.VL > c.VLMax():
		return fmt.Errorf("vl %d outside [0, %d]", c.VL, c.VLMax())
	case c.VStart < 0 || c.VStart > c.VL:
		return fmt.Errorf("vstart %d outside [0, vl=%d]", c.VStart, c.VL)
	case len(vrf) < MaxRegisters*c.VLenB:
		return fmt.Errorf("register file of %d bytes, want %d", len(vrf), MaxRegisters*c.VLenB)
	}
	return nil
}

func validLMUL(num, den int) bool {
	switch {
	case den == 1:
		return num == 1 || num == 2 || num == 4 || num == 8
	case num == 1:
		return den == 2 || den == 4 || den == 8
	}
	return false
}

// xlenThreshold returns the effective scalar width threshold.
func (c Config) xlenThreshold() int {
	if c.XLenThreshold > 0 {
		return c.XLenThreshold
	}
	return DefaultXLenThreshold
}

// Field returns the RegisterField for operands of eewBytes-wide elements
// under c: EMUL = (EEW/SEW) * LMUL. The bool is false when EMUL falls outside
// [1/8, 8].
func (c Config) Field(vrf []byte, eewBytes int) (RegisterField, bool) {
	f := NewRegisterField(vrf, c.VLenB, c.VL, eewBytes, c.LMULNum*eewBytes, c.LMULDen*c.SEW)
	return f, eewBytes <= MaxELEN && f.Legal()
}

// field is Field at SEW.
func (c Config) field(vrf []byte) RegisterField {
	f, _ := c.Field(vrf, c.SEW)
	return f
}

// MaskRegister returns v0 as a Register.
func (c Config) MaskRegister(vrf []byte) *Register {
	return NewRegister(Borrowed(vrf[:c.VLenB]), c.VLenB*8)
}

// Policy returns the element write policy for c: vstart, gated by v0 when
// c.Masked is set.
func (c Config) Policy(vrf []byte) Policy {
	if !c.Masked {
		return Unmasked(c.VStart)
	}
	return MaskedBy(c.MaskRegister(vrf), c.VStart)
}
