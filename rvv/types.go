// Package rvv models the integer datapath of a RISC-V "V" vector unit.
//
// The vector register file is a flat, caller-owned byte slice: register i
// occupies bytes [i*VLENB, (i+1)*VLENB). Every instruction entry point takes
// that slice plus an explicit Config (SEW, LMUL, vl, vstart, masking),
// validates the register operands, and only then mutates the destination.
// Nothing is retained between calls.
//
// Basic usage:
//
//	vrf := make([]byte, 32*16) // 32 registers, VLEN=128
//	cfg := rvv.Config{VLenB: 16, SEW: 4, LMULNum: 1, LMULDen: 1, VL: 4}
//	if st := rvv.VAddVV(vrf, cfg, 3, 1, 2); st != rvv.NoExcept {
//		// raise an illegal-instruction trap
//	}
//
// Element values are stored little-endian, as on RISC-V. Internally each
// call dispatches once on SEW to one of uint8, uint16, uint32, uint64, and
// all arithmetic is written once as generic code over those types. Signed
// behavior is selected per operation, never stored with the data.
package rvv

// Unsigned is the closed set of storage types for vector elements.
// Signed interpretations are computed on demand from these bit patterns.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxRegisters is the architectural number of vector registers.
const MaxRegisters = 32

// MaxELEN is the widest supported element, in bytes.
const MaxELEN = 8
