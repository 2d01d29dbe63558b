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

import "errors"

// Status is the result of an instruction entry point. Any value other than
// NoExcept means the instruction was rejected before it wrote anything; the
// caller decides which architectural exception to raise.
type Status int

const (
	// NoExcept reports success.
	NoExcept Status = iota

	// Src1VecIll reports a vs1 operand not aligned to its group size.
	Src1VecIll

	// Src2VecIll reports a vs2 operand not aligned to its group size, or a
	// source width that cannot be formed (e.g. vsext.vf8 at SEW=32).
	Src2VecIll

	// DstVecIll reports a vd operand not aligned to its group size, or a
	// destination width/multiplier that cannot be formed.
	DstVecIll

	// WideningOverlapVdVs1Ill reports an illegal vd/vs1 overlap in a
	// widening instruction.
	WideningOverlapVdVs1Ill

	// WideningOverlapVdVs2Ill reports an illegal vd/vs2 overlap in a
	// widening instruction.
	WideningOverlapVdVs2Ill

	// NarrowingOverlapVdVs2Ill reports an illegal vd/vs2 overlap in a
	// narrowing or mask-producing instruction.
	NarrowingOverlapVdVs2Ill

	// NarrowingOverlapVdVs1Ill reports an illegal vd/vs1 overlap in a
	// mask-producing instruction.
	NarrowingOverlapVdVs1Ill

	// MaskOverlapIll reports a masked instruction whose destination group
	// contains v0.
	MaskOverlapIll

	// SlideOverlapIll reports a slide-up whose destination overlaps its
	// source.
	SlideOverlapIll

	// VTypeIll reports an unusable configuration: unsupported SEW or LMUL,
	// vstart > vl, vl > VLMAX, or a register file too small for 32 registers.
	VTypeIll
)

var statusNames = [...]string{
	NoExcept:                 "NO_EXCEPT",
	Src1VecIll:               "SRC1_VEC_ILL",
	Src2VecIll:               "SRC2_VEC_ILL",
	DstVecIll:                "DST_VEC_ILL",
	WideningOverlapVdVs1Ill:  "WIDENING_OVERLAP_VD_VS1_ILL",
	WideningOverlapVdVs2Ill:  "WIDENING_OVERLAP_VD_VS2_ILL",
	NarrowingOverlapVdVs2Ill: "NARROWING_OVERLAP_VD_VS2_ILL",
	NarrowingOverlapVdVs1Ill: "NARROWING_OVERLAP_VD_VS1_ILL",
	MaskOverlapIll:           "MASK_OVERLAP_ILL",
	SlideOverlapIll:          "SLIDE_OVERLAP_ILL",
	VTypeIll:                 "VTYPE_ILL",
}

// String returns the status name, e.g. "DST_VEC_ILL".
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN_STATUS"
}

// Sentinel errors matching each non-success Status.
var (
	ErrSrc1Illegal         = errors.New("rvv: vs1 register group misaligned")
	ErrSrc2Illegal         = errors.New("rvv: vs2 register group misaligned")
	ErrDstIllegal          = errors.New("rvv: vd register group misaligned")
	ErrWideningOverlapVs1  = errors.New("rvv: widening vd overlaps vs1")
	ErrWideningOverlapVs2  = errors.New("rvv: widening vd overlaps vs2")
	ErrNarrowingOverlapVs2 = errors.New("rvv: narrowing vd overlaps vs2")
	ErrNarrowingOverlapVs1 = errors.New("rvv: mask vd overlaps vs1")
	ErrMaskOverlap         = errors.New("rvv: masked vd overlaps v0")
	ErrSlideOverlap        = errors.New("rvv: slide-up vd overlaps vs2")
	ErrVType               = errors.New("rvv: illegal vector configuration")
	errUnknownStatus       = errors.New("rvv: unknown status")
)

var statusErrors = [...]error{
	Src1VecIll:               ErrSrc1Illegal,
	Src2VecIll:               ErrSrc2Illegal,
	DstVecIll:                ErrDstIllegal,
	WideningOverlapVdVs1Ill:  ErrWideningOverlapVs1,
	WideningOverlapVdVs2Ill:  ErrWideningOverlapVs2,
	NarrowingOverlapVdVs2Ill: ErrNarrowingOverlapVs2,
	NarrowingOverlapVdVs1Ill: ErrNarrowingOverlapVs1,
	MaskOverlapIll:           ErrMaskOverlap,
	SlideOverlapIll:          ErrSlideOverlap,
	VTypeIll:                 ErrVType,
}

// Err returns nil for NoExcept and the matching sentinel error otherwise,
// so callers can use errors.Is.
func (s Status) Err() error {
	if s == NoExcept {
		return nil
	}
	if s > 0 && int(s) < len(statusErrors) {
		return statusErrors[s]
	}
	return errUnknownStatus
}

// OK reports whether s is NoExcept.
func (s Status) OK() bool { return s == NoExcept }
