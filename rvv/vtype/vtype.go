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

// Package vtype encodes and decodes the RISC-V vector configuration word
// (the vtype CSR) and the width fields of vector memory instructions.
//
// Layout, from bit 0:
//
//	[2:0]    vlmul
//	[5:3]    vsew
//	[6]      vta
//	[7]      vma
//	[XLEN-2:8] reserved, must be zero
//	[XLEN-1] vill
//
// Words are handled as 64-bit (XLEN = 64) throughout.
package vtype

import (
	"errors"
	"fmt"
	"strings"
)

// Bit positions and masks within the vtype word.
const (
	lmulShift = 0
	lmulMask  = 0x7
	sewShift  = 3
	sewMask   = 0x7
	taBit     = 6
	maBit     = 7

	// VillBit is the position of the vill flag for XLEN = 64.
	VillBit = 63

	reservedMask = ^uint64(0xff) &^ (1 << VillBit)
)

var (
	// ErrIllegal reports a word with vill set.
	ErrIllegal = errors.New("vtype: vill set")

	// ErrReserved reports a reserved vsew/vlmul encoding or non-zero
	// reserved bits.
	ErrReserved = errors.New("vtype: reserved encoding")
)

// VType is a decoded configuration word. SEW is in bits; LMUL is
// LMULNum/LMULDen with one of the two equal to 1.
type VType struct {
	SEW          int
	LMULNum      int
	LMULDen      int
	TailAgnostic bool
	MaskAgnostic bool
}

// lmulTable maps the 3-bit vlmul field to num/den; index 4 is reserved.
var lmulTable = [8][2]int{
	{1, 1}, {2, 1}, {4, 1}, {8, 1},
	{0, 0},
	{1, 8}, {1, 4}, {1, 2},
}

// Decode splits word into its fields. It fails with ErrIllegal when vill is
// set and with ErrReserved for any reserved encoding.
func Decode(word uint64) (VType, error) {
	if Vill(word) {
		return VType{}, ErrIllegal
	}
	if word&reservedMask != 0 {
		return VType{}, fmt.Errorf("%w: bits %#x", ErrReserved, word&reservedMask)
	}
	sew := SEW(word)
	if sew == 0 {
		return VType{}, fmt.Errorf("%w: vsew=%#b", ErrReserved, (word>>sewShift)&sewMask)
	}
	num, den, ok := LMUL(word)
	if !ok {
		return VType{}, fmt.Errorf("%w: vlmul=%#b", ErrReserved, (word>>lmulShift)&lmulMask)
	}
	return VType{
		SEW:          sew,
		LMULNum:      num,
		LMULDen:      den,
		TailAgnostic: TA(word),
		MaskAgnostic: MA(word),
	}, nil
}

// Encode packs v into a vtype word. It fails with ErrReserved when SEW or
// LMUL has no encoding.
func Encode(v VType) (uint64, error) {
	var sew uint64
	switch v.SEW {
	case 8:
		sew = 0
	case 16:
		sew = 1
	case 32:
		sew = 2
	case 64:
		sew = 3
	default:
		return 0, fmt.Errorf("%w: SEW=%d", ErrReserved, v.SEW)
	}
	lmul := -1
	for i, f := range lmulTable {
		if f[0] != 0 && f[0] == v.LMULNum && f[1] == v.LMULDen {
			lmul = i
			break
		}
	}
	if lmul < 0 {
		return 0, fmt.Errorf("%w: LMUL=%d/%d", ErrReserved, v.LMULNum, v.LMULDen)
	}
	word := uint64(lmul)<<lmulShift | sew<<sewShift
	if v.TailAgnostic {
		word |= 1 << taBit
	}
	if v.MaskAgnostic {
		word |= 1 << maBit
	}
	return word, nil
}

// SEW returns the element width in bits, or 0 for a reserved vsew.
func SEW(word uint64) int {
	vsew := (word >> sewShift) & sewMask
	if vsew > 3 {
		return 0
	}
	return 8 << vsew
}

// LMUL returns the group multiplier fraction. ok is false for the reserved
// vlmul encoding.
func LMUL(word uint64) (num, den int, ok bool) {
	f := lmulTable[(word>>lmulShift)&lmulMask]
	return f[0], f[1], f[0] != 0
}

// TA reports the tail-agnostic flag.
func TA(word uint64) bool { return word&(1<<taBit) != 0 }

// MA reports the mask-agnostic flag.
func MA(word uint64) bool { return word&(1<<maBit) != 0 }

// Vill reports the illegal-configuration flag.
func Vill(word uint64) bool { return word&(1<<VillBit) != 0 }

// IllegalWord is the value vsetvl writes for an unsupported request: vill set,
// every other bit zero.
const IllegalWord = uint64(1) << VillBit

// VLMax returns LMUL * VLEN / SEW for a register length of vlenBits.
func (v VType) VLMax(vlenBits int) int {
	if v.SEW == 0 || v.LMULDen == 0 {
		return 0
	}
	return vlenBits * v.LMULNum / (v.LMULDen * v.SEW)
}

// String formats v the way assemblers spell vsetvli operands, e.g.
// "e32,m1,ta,mu" or "e8,mf4,tu,ma".
func (v VType) String() string {
	var lmul string
	if v.LMULDen > 1 {
		lmul = fmt.Sprintf("mf%d", v.LMULDen)
	} else {
		lmul = fmt.Sprintf("m%d", v.LMULNum)
	}
	ta, ma := "tu", "mu"
	if v.TailAgnostic {
		ta = "ta"
	}
	if v.MaskAgnostic {
		ma = "ma"
	}
	return fmt.Sprintf("e%d,%s,%s,%s", v.SEW, lmul, ta, ma)
}

// Parse reads the assembler spelling produced by String. The agnostic flags
// may be omitted and default to undisturbed.
func Parse(s string) (VType, error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(parts) < 2 || len(parts) > 4 {
		return VType{}, fmt.Errorf("vtype: cannot parse %q", s)
	}
	var v VType
	if _, err := fmt.Sscanf(parts[0], "e%d", &v.SEW); err != nil {
		return VType{}, fmt.Errorf("vtype: bad element width %q: %w", parts[0], err)
	}
	switch {
	case strings.HasPrefix(parts[1], "mf"):
		v.LMULNum = 1
		if _, err := fmt.Sscanf(parts[1], "mf%d", &v.LMULDen); err != nil {
			return VType{}, fmt.Errorf("vtype: bad multiplier %q: %w", parts[1], err)
		}
	default:
		v.LMULDen = 1
		if _, err := fmt.Sscanf(parts[1], "m%d", &v.LMULNum); err != nil {
			return VType{}, fmt.Errorf("vtype: bad multiplier %q: %w", parts[1], err)
		}
	}
	for _, p := range parts[2:] {
		switch p {
		case "ta":
			v.TailAgnostic = true
		case "tu":
			v.TailAgnostic = false
		case "ma":
			v.MaskAgnostic = true
		case "mu":
			v.MaskAgnostic = false
		default:
			return VType{}, fmt.Errorf("vtype: unknown policy %q", p)
		}
	}
	if _, err := Encode(v); err != nil {
		return VType{}, err
	}
	return v, nil
}

// MemoryEEW returns the element width in bits selected by the mew and width
// fields of a vector load/store. ok is false for widths that encode scalar
// floating-point accesses.
func MemoryEEW(mew, width uint8) (eew int, ok bool) {
	switch (mew&1)<<3 | width&0x7 {
	case 0b0000:
		return 8, true
	case 0b0101:
		return 16, true
	case 0b0110:
		return 32, true
	case 0b0111:
		return 64, true
	case 0b1000:
		return 128, true
	case 0b1101:
		return 256, true
	case 0b1110:
		return 512, true
	case 0b1111:
		return 1024, true
	}
	return 0, false
}
