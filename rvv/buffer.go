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

// Buffer is the backing memory of an Element, Register or Vector.
//
// A Buffer is either Borrowed (a view into memory owned by someone else,
// usually the caller's register file) or Owned (scratch memory allocated by
// this package, e.g. a returned temporary). The two are distinct types so
// that a view can never be mistaken for scratch storage.
type Buffer interface {
	// Bytes returns the backing bytes. Writes through the returned slice
	// are visible to every other view of the same memory.
	Bytes() []byte

	// IsOwned reports whether the memory was allocated for this value.
	IsOwned() bool
}

// Borrowed is a non-owning view over caller memory.
type Borrowed []byte

// Bytes returns the viewed bytes.
func (b Borrowed) Bytes() []byte { return b }

// IsOwned reports false: the memory belongs to someone else.
func (Borrowed) IsOwned() bool { return false }

// Owned is memory allocated for, and exclusively referenced by, one value.
type Owned []byte

// Bytes returns the owned bytes.
func (o Owned) Bytes() []byte { return o }

// IsOwned reports true.
func (Owned) IsOwned() bool { return true }

// Alloc returns zeroed owned storage of n bytes.
func Alloc(n int) Owned {
	return make(Owned, n)
}

// CloneBuffer deep-copies any Buffer into fresh Owned storage.
func CloneBuffer(b Buffer) Owned {
	src := b.Bytes()
	dst := make(Owned, len(src))
	copy(dst, src)
	return dst
}
