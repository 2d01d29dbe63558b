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

// Package lsu moves vector register data to and from a caller-owned memory
// image through injected callbacks.
//
// Every transfer honors the same element policy as the arithmetic entry
// points: elements below vstart and inactive elements are untouched, and
// every legality check runs before the first callback. Memory is
// little-endian, like the register file, so element bytes move unchanged.
package lsu

import "github.com/ajroetker/go-rvv/rvv"

// ReadFunc fills buf with the bytes at addr.
type ReadFunc func(addr uint64, buf []byte)

// WriteFunc stores buf at addr.
type WriteFunc func(addr uint64, buf []byte)

// MaxFields is the largest segment field count (nf).
const MaxFields = 8

// Unit is a load/store unit bound to one memory image.
type Unit struct {
	read  ReadFunc
	write WriteFunc
}

// New returns a Unit using read and write. Either may be nil if the
// corresponding direction is never used.
func New(read ReadFunc, write WriteFunc) *Unit {
	return &Unit{read: read, write: write}
}

// transfer describes one strided, possibly segmented, access.
type transfer struct {
	reg    int // vd for loads, vs3 for stores
	eew    int // bytes
	nf     int
	base   uint64
	stride int64
	store  bool
}

// plan validates t under c and returns the data field.
func plan(vrf []byte, c rvv.Config, t transfer) (rvv.RegisterField, rvv.Status) {
	if s := c.Validate(vrf); s != rvv.NoExcept {
		return rvv.RegisterField{}, s
	}
	switch t.eew {
	case 1, 2, 4, 8:
	default:
		return rvv.RegisterField{}, rvv.VTypeIll
	}
	if t.nf < 1 || t.nf > MaxFields {
		return rvv.RegisterField{}, rvv.DstVecIll
	}
	f, ok := c.Field(vrf, t.eew)
	if !ok {
		return f, rvv.DstVecIll
	}
	g := f.GroupSize()
	if g*t.nf > 8 || !f.IsAligned(t.reg) || t.reg+g*t.nf > rvv.MaxRegisters {
		return f, rvv.DstVecIll
	}
	if !t.store && c.Masked && t.reg == 0 {
		return f, rvv.MaskOverlapIll
	}
	return f, rvv.NoExcept
}

// run performs t element by element in increasing index order, fields
// innermost.
func (u *Unit) run(vrf []byte, c rvv.Config, f rvv.RegisterField, t transfer) {
	p := c.Policy(vrf)
	g := f.GroupSize()
	groups := make([][]byte, t.nf)
	for k := range groups {
		groups[k] = f.Bytes(t.reg + k*g)
	}
	for i := c.VStart; i < c.VL; i++ {
		if !p.Active(i) {
			continue
		}
		addr := t.base + uint64(int64(i)*t.stride)
		for k := range t.nf {
			elem := groups[k][i*t.eew : (i+1)*t.eew]
			a := addr + uint64(k*t.eew)
			if t.store {
				u.write(a, elem)
			} else {
				u.read(a, elem)
			}
		}
	}
}

func (u *Unit) do(vrf []byte, c rvv.Config, t transfer) rvv.Status {
	f, s := plan(vrf, c, t)
	if s != rvv.NoExcept {
		return s
	}
	u.run(vrf, c, f, t)
	return rvv.NoExcept
}

// Load is vle<eew>.v: a unit-stride load of eewBytes-wide elements
// from base into the group at vd.
func (u *Unit) Load(vrf []byte, c rvv.Config, vd, eewBytes int, base uint64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vd, eew: eewBytes, nf: 1, base: base, stride: int64(eewBytes)})
}

// Store is vse<eew>.v.
func (u *Unit) Store(vrf []byte, c rvv.Config, vs3, eewBytes int, base uint64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vs3, eew: eewBytes, nf: 1, base: base, stride: int64(eewBytes), store: true})
}

// LoadStrided is vlse<eew>.v: element i comes from base + i*stride. The
// stride may be zero or negative.
func (u *Unit) LoadStrided(vrf []byte, c rvv.Config, vd, eewBytes int, base uint64, stride int64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vd, eew: eewBytes, nf: 1, base: base, stride: stride})
}

// StoreStrided is vsse<eew>.v.
func (u *Unit) StoreStrided(vrf []byte, c rvv.Config, vs3, eewBytes int, base uint64, stride int64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vs3, eew: eewBytes, nf: 1, base: base, stride: stride, store: true})
}

// LoadSegment is vlseg<nf>e<eew>.v: nf-field records packed at base are
// deinterleaved so field k of record i lands in element i of group
// vd + k*EMUL.
func (u *Unit) LoadSegment(vrf []byte, c rvv.Config, vd, nf, eewBytes int, base uint64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vd, eew: eewBytes, nf: nf, base: base, stride: int64(nf * eewBytes)})
}

// StoreSegment is vsseg<nf>e<eew>.v.
func (u *Unit) StoreSegment(vrf []byte, c rvv.Config, vs3, nf, eewBytes int, base uint64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vs3, eew: eewBytes, nf: nf, base: base, stride: int64(nf * eewBytes), store: true})
}

// LoadSegmentStrided is vlsseg<nf>e<eew>.v: record i starts at
// base + i*stride.
func (u *Unit) LoadSegmentStrided(vrf []byte, c rvv.Config, vd, nf, eewBytes int, base uint64, stride int64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vd, eew: eewBytes, nf: nf, base: base, stride: stride})
}

// StoreSegmentStrided is vssseg<nf>e<eew>.v.
func (u *Unit) StoreSegmentStrided(vrf []byte, c rvv.Config, vs3, nf, eewBytes int, base uint64, stride int64) rvv.Status {
	return u.do(vrf, c, transfer{reg: vs3, eew: eewBytes, nf: nf, base: base, stride: stride, store: true})
}

// LoadEEW is Load with the element width taken from the mew and width
// fields of the instruction.
func (u *Unit) LoadEEW(vrf []byte, c rvv.Config, vd int, mew, width uint8, base uint64) rvv.Status {
	eew, s := memoryEEW(mew, width)
	if s != rvv.NoExcept {
		return s
	}
	return u.Load(vrf, c, vd, eew, base)
}

// StoreEEW is Store with the element width taken from mew and width.
func (u *Unit) StoreEEW(vrf []byte, c rvv.Config, vs3 int, mew, width uint8, base uint64) rvv.Status {
	eew, s := memoryEEW(mew, width)
	if s != rvv.NoExcept {
		return s
	}
	return u.Store(vrf, c, vs3, eew, base)
}
