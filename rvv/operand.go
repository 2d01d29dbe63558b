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

// Operand supplies the right-hand value for element i. A *Vector reads its
// own element; a Splat repeats one scalar for every index.
type Operand[T Unsigned] interface {
	Lane(i int) T
}

// Splat broadcasts one value to every lane.
type Splat[T Unsigned] struct {
	Value T
}

// Lane implements Operand.
func (s Splat[T]) Lane(int) T { return s.Value }

// SplatSigned sign-extends (or truncates) v to the width of T.
func SplatSigned[T Unsigned](v int64) Splat[T] {
	return Splat[T]{Value: T(uint64(v))}
}

// SplatUnsigned zero-extends (or truncates) v to the width of T.
func SplatUnsigned[T Unsigned](v uint64) Splat[T] {
	return Splat[T]{Value: T(v)}
}
