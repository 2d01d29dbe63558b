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

//go:generate go run ../cmd/rvvgen -output . -tables all

import "encoding/binary"

// This file holds the machinery shared by every instruction entry point:
// operand sources, scalar decoding and ordered operand validation.
//
// Every entry point follows the same transaction: validate the
// configuration, validate each operand register (vs1, then vs2, then vd),
// validate overlaps, and only then build views and write. A non-NoExcept
// return therefore guarantees the register file is unchanged.

type sourceKind uint8

const (
	srcVector sourceKind = iota
	srcScalar
	srcImm
)

// source is the vs1 / rs1 / imm operand slot.
type source struct {
	kind sourceKind
	reg  int
	x    []byte
	imm  uint8
}

func vsrc(reg int) source   { return source{kind: srcVector, reg: reg} }
func xsrc(x []byte) source  { return source{kind: srcScalar, x: x} }
func isrc(imm uint8) source { return source{kind: srcImm, imm: imm} }

// readScalar returns the bit pattern of a scalar register. Operands longer
// than threshold bytes are read as 64 bits; shorter ones as 32 bits,
// sign-extended. Missing bytes read as zero.
func readScalar(x []byte, threshold int) uint64 {
	var b [8]byte
	if len(x) > threshold {
		copy(b[:], x)
		return binary.LittleEndian.Uint64(b[:])
	}
	copy(b[:4], x)
	return uint64(int64(int32(binary.LittleEndian.Uint32(b[:4]))))
}

// readScalarUnsigned is readScalar with zero extension, for operands that
// are XLEN-wide unsigned quantities such as slide offsets.
func readScalarUnsigned(x []byte, threshold int) uint64 {
	var b [8]byte
	if len(x) > threshold {
		copy(b[:], x)
		return binary.LittleEndian.Uint64(b[:])
	}
	copy(b[:4], x)
	return uint64(binary.LittleEndian.Uint32(b[:4]))
}

// immKind selects how a 5-bit immediate is extended.
type immKind uint8

const (
	immSigned immKind = iota
	immUnsigned
)

// operand returns s as T-wide lanes. Vector sources are viewed through f.
// Scalars and immediates are extended to 64 bits, then truncated to T.
func operand[T Unsigned](s source, f RegisterField, c Config, ik immKind) Operand[T] {
	switch s.kind {
	case srcVector:
		return ViewVector[T](f, s.reg)
	case srcScalar:
		return SplatUnsigned[T](readScalar(s.x, c.xlenThreshold()))
	default:
		if ik == immUnsigned {
			return SplatUnsigned[T](uimm5(s.imm))
		}
		return SplatSigned[T](simm5(s.imm))
	}
}

// scalarValue returns the SEW-truncated scalar for forms that take rs1
// directly, like vslide1up.
func scalarValue[T Unsigned](x []byte, c Config) T {
	return T(readScalar(x, c.xlenThreshold()))
}

// offsetValue returns the slide distance of an rs1 or uimm5 source.
func offsetValue(s source, c Config) uint64 {
	if s.kind == srcScalar {
		return readScalarUnsigned(s.x, c.xlenThreshold())
	}
	return uimm5(s.imm)
}

// checker records the first failure of an ordered series of checks.
type checker struct {
	status Status
}

func (k *checker) fail(s Status) {
	if k.status == NoExcept {
		k.status = s
	}
}

// require fails with s unless ok.
func (k *checker) require(ok bool, s Status) {
	if !ok {
		k.fail(s)
	}
}

// aligned fails with s unless idx names a legal group of f.
func (k *checker) aligned(f RegisterField, idx int, s Status) {
	k.require(f.IsAligned(idx), s)
}

// source checks a vs1 operand when s is a vector.
func (k *checker) source(f RegisterField, s source) {
	if s.kind == srcVector {
		k.aligned(f, s.reg, Src1VecIll)
	}
}

// maskOverlap fails when a masked instruction writes a group starting at
// v0. Aligned groups contain v0 only if they start there.
func (k *checker) maskOverlap(c Config, vd int) {
	k.require(!c.Masked || vd != 0, MaskOverlapIll)
}

// registerIndex fails with s unless idx names one of the 32 registers.
func (k *checker) registerIndex(idx int, s Status) {
	k.require(idx >= 0 && idx < MaxRegisters, s)
}

// begin validates c against vrf and returns a checker seeded with the
// result.
func begin(vrf []byte, c Config) checker {
	return checker{status: c.Validate(vrf)}
}

// maskField is the geometry of a mask destination: one register.
func (c Config) maskField(vrf []byte) RegisterField {
	return NewRegisterField(vrf, c.VLenB, c.VL, 1, 1, 1)
}
