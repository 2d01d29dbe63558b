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

package lsu

import (
	"encoding/binary"

	"github.com/ajroetker/go-rvv/rvv"
	"github.com/ajroetker/go-rvv/rvv/vtype"
)

// memoryEEW maps the mew/width fields to a supported element width in
// bytes. Widths above 64 bits are reserved.
func memoryEEW(mew, width uint8) (int, rvv.Status) {
	bits, ok := vtype.MemoryEEW(mew, width)
	if !ok || bits > 8*rvv.MaxELEN {
		return 0, rvv.VTypeIll
	}
	return bits / 8, rvv.NoExcept
}

// LoadMask is vlm.v: ceil(vl/8) bytes from base into register vd. It is
// never masked; vstart counts bytes.
func (u *Unit) LoadMask(vrf []byte, c rvv.Config, vd int, base uint64) rvv.Status {
	return u.maskTransfer(vrf, c, vd, base, false)
}

// StoreMask is vsm.v.
func (u *Unit) StoreMask(vrf []byte, c rvv.Config, vs3 int, base uint64) rvv.Status {
	return u.maskTransfer(vrf, c, vs3, base, true)
}

func (u *Unit) maskTransfer(vrf []byte, c rvv.Config, reg int, base uint64, store bool) rvv.Status {
	if s := c.Validate(vrf); s != rvv.NoExcept {
		return s
	}
	if reg < 0 || reg >= rvv.MaxRegisters {
		return rvv.DstVecIll
	}
	evl := (c.VL + 7) / 8
	b := vrf[reg*c.VLenB : reg*c.VLenB+evl]
	if c.VStart >= evl {
		return rvv.NoExcept
	}
	if store {
		u.write(base+uint64(c.VStart), b[c.VStart:])
	} else {
		u.read(base+uint64(c.VStart), b[c.VStart:])
	}
	return rvv.NoExcept
}

// LoadWhole is vl<nr>re<eew>.v: nr whole registers (1, 2, 4 or 8) from base,
// ignoring vl, LMUL and masking. vstart counts eewBytes-wide elements.
func (u *Unit) LoadWhole(vrf []byte, c rvv.Config, nr, vd, eewBytes int, base uint64) rvv.Status {
	return u.whole(vrf, c, nr, vd, eewBytes, base, false)
}

// StoreWhole is vs<nr>r.v.
func (u *Unit) StoreWhole(vrf []byte, c rvv.Config, nr, vs3 int, base uint64) rvv.Status {
	return u.whole(vrf, c, nr, vs3, 1, base, true)
}

func (u *Unit) whole(vrf []byte, c rvv.Config, nr, reg, eew int, base uint64, store bool) rvv.Status {
	if s := c.Validate(vrf); s != rvv.NoExcept {
		return s
	}
	switch nr {
	case 1, 2, 4, 8:
	default:
		return rvv.DstVecIll
	}
	switch eew {
	case 1, 2, 4, 8:
	default:
		return rvv.VTypeIll
	}
	evl := nr * c.VLenB / eew
	f := rvv.NewRegisterField(vrf, c.VLenB, evl, eew, nr, 1)
	if !f.IsAligned(reg) {
		return rvv.DstVecIll
	}
	b := f.Bytes(reg)
	if c.VStart >= evl {
		return rvv.NoExcept
	}
	off := c.VStart * eew
	if store {
		u.write(base+uint64(off), b[off:])
	} else {
		u.read(base+uint64(off), b[off:])
	}
	return rvv.NoExcept
}

// LoadIndexed is vluxei<eew>.v / vloxei<eew>.v: element i (SEW wide) comes
// from base + index[i], where index is the idxBytes-wide, zero-extended
// element i of vs2. Ordered and unordered forms behave the same here since
// elements are always visited in increasing order.
func (u *Unit) LoadIndexed(vrf []byte, c rvv.Config, vd, vs2, idxBytes int, base uint64) rvv.Status {
	return u.indexed(vrf, c, vd, vs2, 1, idxBytes, base, false)
}

// StoreIndexed is vsuxei<eew>.v / vsoxei<eew>.v.
func (u *Unit) StoreIndexed(vrf []byte, c rvv.Config, vs3, vs2, idxBytes int, base uint64) rvv.Status {
	return u.indexed(vrf, c, vs3, vs2, 1, idxBytes, base, true)
}

// LoadSegmentIndexed is vluxseg<nf>ei<eew>.v: record i starts at
// base + index[i].
func (u *Unit) LoadSegmentIndexed(vrf []byte, c rvv.Config, vd, vs2, nf, idxBytes int, base uint64) rvv.Status {
	return u.indexed(vrf, c, vd, vs2, nf, idxBytes, base, false)
}

// StoreSegmentIndexed is vsuxseg<nf>ei<eew>.v.
func (u *Unit) StoreSegmentIndexed(vrf []byte, c rvv.Config, vs3, vs2, nf, idxBytes int, base uint64) rvv.Status {
	return u.indexed(vrf, c, vs3, vs2, nf, idxBytes, base, true)
}

func (u *Unit) indexed(vrf []byte, c rvv.Config, reg, vs2, nf, ie int, base uint64, store bool) rvv.Status {
	fd, s := plan(vrf, c, transfer{reg: reg, eew: c.SEW, nf: nf, store: store})
	if s != rvv.NoExcept {
		return s
	}
	switch ie {
	case 1, 2, 4, 8:
	default:
		return rvv.VTypeIll
	}
	fi, ok := c.Field(vrf, ie)
	if !ok || !fi.IsAligned(vs2) {
		return rvv.Src2VecIll
	}
	if !store {
		if s := indexOverlap(fd, reg, fi, vs2, nf); s != rvv.NoExcept {
			return s
		}
	}
	p := c.Policy(vrf)
	g := fd.GroupSize()
	idx := fi.Bytes(vs2)
	for i := c.VStart; i < c.VL; i++ {
		if !p.Active(i) {
			continue
		}
		addr := base + le(idx[i*ie:(i+1)*ie])
		for k := range nf {
			elem := fd.Bytes(reg + k*g)[i*c.SEW : (i+1)*c.SEW]
			a := addr + uint64(k*c.SEW)
			if store {
				u.write(a, elem)
			} else {
				u.read(a, elem)
			}
		}
	}
	return rvv.NoExcept
}

// indexOverlap applies the mixed-width overlap rules between a load
// destination and its index group. Segment loads may not overlap the index
// group at all.
func indexOverlap(fd rvv.RegisterField, vd int, fi rvv.RegisterField, vs2, nf int) rvv.Status {
	if nf > 1 {
		for k := range nf {
			if rvv.Overlaps(fd, vd+k*fd.GroupSize(), fi, vs2) {
				return rvv.WideningOverlapVdVs2Ill
			}
		}
		return rvv.NoExcept
	}
	switch {
	case fd.EEW() > fi.EEW():
		if !rvv.WideningOverlapLegal(fd, vd, fi, vs2) {
			return rvv.WideningOverlapVdVs2Ill
		}
	case fd.EEW() < fi.EEW():
		if !rvv.NarrowingOverlapLegal(fd, vd, fi, vs2) {
			return rvv.NarrowingOverlapVdVs2Ill
		}
	}
	return rvv.NoExcept
}

// le decodes a little-endian unsigned value of up to 8 bytes.
func le(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}
