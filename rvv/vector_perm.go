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

// Merge writes onTrue[i] where mask bit i is 1 and onFalse[i] where it is 0,
// for every i in [vstart, Len). The mask selects a source; it does not gate
// the write. Elements below vstart are left untouched, as for every other
// instruction.
func (v *Vector[T]) Merge(onFalse, onTrue Operand[T], mask *Register, vstart int) *Vector[T] {
	for i := vstart; i < v.length; i++ {
		if mask.Bit(i) {
			v.Set(i, onTrue.Lane(i))
		} else {
			v.Set(i, onFalse.Lane(i))
		}
	}
	return v
}

// Move writes src[i] for every i in [vstart, Len) (vmv.v.*).
func (v *Vector[T]) Move(src Operand[T], vstart int) *Vector[T] {
	for i := vstart; i < v.length; i++ {
		v.Set(i, src.Lane(i))
	}
	return v
}

// SlideUp writes src[i-offset] for every active i in [max(vstart, offset), Len).
// Elements below offset are left untouched. v and src must not overlap.
func (v *Vector[T]) SlideUp(src *Vector[T], offset uint64, p Policy) *Vector[T] {
	start := uint64(max(p.VStart, 0))
	if offset > start {
		start = offset
	}
	for i := start; i < uint64(v.length); i++ {
		if p.Active(int(i)) {
			v.Set(int(i), src.Get(int(i-offset)))
		}
	}
	return v
}

// SlideDown writes src[i+offset] for every active i in [vstart, Len).
// Source positions at or past src.Cap read as zero; positions between
// src.Len and src.Cap are read from the backing register group.
func (v *Vector[T]) SlideDown(src *Vector[T], offset uint64, p Policy) *Vector[T] {
	limit := uint64(src.Cap())
	for i := p.VStart; i < v.length; i++ {
		if !p.Active(i) {
			continue
		}
		var x T
		if offset < limit && uint64(i) < limit-offset {
			x = src.Get(i + int(offset))
		}
		v.Set(i, x)
	}
	return v
}

// Slide1Up writes x to element 0 and src[i-1] to every other active element.
func (v *Vector[T]) Slide1Up(src *Vector[T], x T, p Policy) *Vector[T] {
	for i := p.VStart; i < v.length; i++ {
		if !p.Active(i) {
			continue
		}
		if i == 0 {
			v.Set(0, x)
		} else {
			v.Set(i, src.Get(i-1))
		}
	}
	return v
}

// Slide1Down writes src[i+1] to every active element below Len-1 and x to
// element Len-1.
func (v *Vector[T]) Slide1Down(src *Vector[T], x T, p Policy) *Vector[T] {
	for i := p.VStart; i < v.length; i++ {
		if !p.Active(i) {
			continue
		}
		if i == v.length-1 {
			v.Set(i, x)
		} else {
			v.Set(i, src.Get(i+1))
		}
	}
	return v
}
