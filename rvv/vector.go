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

import "fmt"

// Vector is an ordered run of same-width Elements overlaying contiguous
// memory, usually one register group of the register file.
//
// Len is the logical length (vl). The backing memory may hold more elements
// than Len, up to Cap (VLMAX for register-group views); those positions are
// reachable through Peek so that slides can read past vl the way hardware
// does.
//
// StartReg is the architectural index of the first register overlaid. It is
// used only for overlap bookkeeping, never for addressing.
//
// Vector operations are in-place masked mutators: they write v and return it
// to allow chaining.
type Vector[T Unsigned] struct {
	buf      Buffer
	mem      []byte
	lanes    []T
	length   int
	startReg int
	elems    []Element[T]
}

// NewVector overlays a Vector of length elements on buf. Every element up to
// len(buf)/sizeof(T) is reachable through Peek. It panics if buf cannot hold
// length elements.
func NewVector[T Unsigned](buf Buffer, length, startReg int) *Vector[T] {
	mem := buf.Bytes()
	size := sizeOf[T]()
	if length < 0 || length*size > len(mem) {
		panic(fmt.Sprintf("rvv: vector of %d x %d bytes does not fit in %d bytes", length, size, len(mem)))
	}
	mem = mem[:len(mem)/size*size]
	return &Vector[T]{
		buf:      buf,
		mem:      mem,
		lanes:    directLanes[T](mem),
		length:   length,
		startReg: startReg,
	}
}

// MakeVector allocates an owned, zeroed Vector of length elements.
func MakeVector[T Unsigned](length int) *Vector[T] {
	return NewVector[T](Alloc(length*sizeOf[T]()), length, -1)
}

// VectorOf allocates an owned Vector holding values.
func VectorOf[T Unsigned](values ...T) *Vector[T] {
	v := MakeVector[T](len(values))
	for i, x := range values {
		v.Set(i, x)
	}
	return v
}

// Len returns the logical element count.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of elements the backing memory can hold.
func (v *Vector[T]) Cap() int { return len(v.mem) / sizeOf[T]() }

// Width returns the element width in bits.
func (v *Vector[T]) Width() int { return int(bitsOf[T]()) }

// StartReg returns the architectural index of the first overlaid register,
// or -1 for scratch vectors.
func (v *Vector[T]) StartReg() int { return v.startReg }

// Buffer returns the backing storage.
func (v *Vector[T]) Buffer() Buffer { return v.buf }

// Get returns element i. i may range up to Cap.
func (v *Vector[T]) Get(i int) T {
	if v.lanes != nil {
		return v.lanes[i]
	}
	size := sizeOf[T]()
	return loadLE[T](v.mem[i*size : (i+1)*size])
}

// Set overwrites element i. i may range up to Cap.
func (v *Vector[T]) Set(i int, x T) {
	if v.lanes != nil {
		v.lanes[i] = x
		return
	}
	size := sizeOf[T]()
	storeLE(v.mem[i*size:(i+1)*size], x)
}

// Lane implements Operand.
func (v *Vector[T]) Lane(i int) T { return v.Get(i) }

// Peek returns element i of the backing memory, or zero when i lies past
// Cap. Negative indices also read as zero.
func (v *Vector[T]) Peek(i int) T {
	if i < 0 || i >= v.Cap() {
		return 0
	}
	return v.Get(i)
}

// At returns a borrowed Element view of element i.
func (v *Vector[T]) At(i int) Element[T] {
	if v.elems != nil && i < len(v.elems) {
		return v.elems[i]
	}
	size := sizeOf[T]()
	return Element[T]{buf: Borrowed(v.mem[i*size : (i+1)*size])}
}

// Init builds the per-element views returned by Elements. Calling it again
// is a no-op.
func (v *Vector[T]) Init() {
	if v.elems != nil {
		return
	}
	size := sizeOf[T]()
	v.elems = make([]Element[T], v.length)
	for i := range v.elems {
		v.elems[i] = Element[T]{buf: Borrowed(v.mem[i*size : (i+1)*size])}
	}
}

// Elements returns borrowed views of the first Len elements, in order.
func (v *Vector[T]) Elements() []Element[T] {
	v.Init()
	return v.elems
}

// Values copies the first Len elements out.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.length)
	for i := range out {
		out[i] = v.Get(i)
	}
	return out
}

// Clone returns an owned deep copy of the whole backing memory.
func (v *Vector[T]) Clone() *Vector[T] {
	return NewVector[T](CloneBuffer(Borrowed(v.mem)), v.length, v.startReg)
}

// Map1 writes v[i] = f(a[i]) for every active i.
func (v *Vector[T]) Map1(a Operand[T], p Policy, f func(T) T) *Vector[T] {
	for i := p.VStart; i < v.length; i++ {
		if p.Active(i) {
			v.Set(i, f(a.Lane(i)))
		}
	}
	return v
}

// Map2 writes v[i] = f(a[i], b[i]) for every active i.
func (v *Vector[T]) Map2(a, b Operand[T], p Policy, f func(a, b T) T) *Vector[T] {
	for i := p.VStart; i < v.length; i++ {
		if p.Active(i) {
			v.Set(i, f(a.Lane(i), b.Lane(i)))
		}
	}
	return v
}

// Map3 writes v[i] = f(v[i], a[i], b[i]) for every active i.
func (v *Vector[T]) Map3(a, b Operand[T], p Policy, f func(d, a, b T) T) *Vector[T] {
	for i := p.VStart; i < v.length; i++ {
		if p.Active(i) {
			v.Set(i, f(v.Get(i), a.Lane(i), b.Lane(i)))
		}
	}
	return v
}

// mapSat is Map2 for saturating kernels; it sets *sat when any written
// element was clamped.
func (v *Vector[T]) mapSat(a, b Operand[T], p Policy, sat *bool, f func(a, b T) (T, bool)) *Vector[T] {
	for i := p.VStart; i < v.length; i++ {
		if p.Active(i) {
			r, clamped := f(a.Lane(i), b.Lane(i))
			v.Set(i, r)
			if clamped && sat != nil {
				*sat = true
			}
		}
	}
	return v
}

// Add writes a + b.
func (v *Vector[T]) Add(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, add[T]) }

// Sub writes a - b.
func (v *Vector[T]) Sub(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, sub[T]) }

// RSub writes b - a.
func (v *Vector[T]) RSub(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, rsub[T]) }

// And writes a & b.
func (v *Vector[T]) And(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, and[T]) }

// Or writes a | b.
func (v *Vector[T]) Or(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, or[T]) }

// Xor writes a ^ b.
func (v *Vector[T]) Xor(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, xor[T]) }

// ShiftLeft writes a << (b mod width).
func (v *Vector[T]) ShiftLeft(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, sll[T]) }

// ShiftRightLogical writes a >> (b mod width), zero filling.
func (v *Vector[T]) ShiftRightLogical(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map2(a, b, p, srl[T])
}

// ShiftRightArith writes a >> (b mod width), sign filling.
func (v *Vector[T]) ShiftRightArith(a, b Operand[T], p Policy) *Vector[T] {
	return v.Map2(a, b, p, sra[T])
}

// MinU writes the unsigned minimum.
func (v *Vector[T]) MinU(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, minu[T]) }

// Min writes the signed minimum.
func (v *Vector[T]) Min(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, mins[T]) }

// MaxU writes the unsigned maximum.
func (v *Vector[T]) MaxU(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, maxu[T]) }

// Max writes the signed maximum.
func (v *Vector[T]) Max(a, b Operand[T], p Policy) *Vector[T] { return v.Map2(a, b, p, maxs[T]) }

// AddCarry writes a + b + carry[i] for every i in [vstart, Len). It is never
// masked: the mask register supplies the carry-in instead.
func (v *Vector[T]) AddCarry(a, b Operand[T], carry *Register, vstart int) *Vector[T] {
	cin := carry.Clone()
	for i := vstart; i < v.length; i++ {
		s, _ := addCarry(a.Lane(i), b.Lane(i), cin.Bit(i))
		v.Set(i, s)
	}
	return v
}

// SubBorrow writes a - b - borrow[i] for every i in [vstart, Len).
func (v *Vector[T]) SubBorrow(a, b Operand[T], borrow *Register, vstart int) *Vector[T] {
	bin := borrow.Clone()
	for i := vstart; i < v.length; i++ {
		d, _ := subBorrow(a.Lane(i), b.Lane(i), bin.Bit(i))
		v.Set(i, d)
	}
	return v
}
