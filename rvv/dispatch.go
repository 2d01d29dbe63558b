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

import (
	"encoding/binary"
	"unsafe"

	"github.com/xyproto/env/v2"
	"golang.org/x/sys/cpu"
)

// DispatchLevel describes how element bytes are accessed.
type DispatchLevel int

const (
	// DispatchPortable decodes every element through a little-endian byte
	// codec. Always correct, on any host.
	DispatchPortable DispatchLevel = iota

	// DispatchDirect reinterprets aligned register-file bytes as []T in
	// place. Only possible on little-endian hosts.
	DispatchDirect
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchPortable:
		return "portable"
	case DispatchDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// currentLevel is the element access mode for this process.
// Set by init().
var currentLevel DispatchLevel

func init() {
	if NoFastPathEnv() || cpu.IsBigEndian {
		currentLevel = DispatchPortable
		return
	}
	currentLevel = DispatchDirect
}

// CurrentLevel returns the element access mode in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// NoFastPathEnv checks if the RVV_NO_FASTPATH environment variable is set.
// When set, every element goes through the portable byte codec regardless of
// host endianness. This is useful for testing the portable path.
func NoFastPathEnv() bool {
	return env.Bool("RVV_NO_FASTPATH")
}

// sizeOf returns the element width of T in bytes.
func sizeOf[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bitsOf returns the element width of T in bits.
func bitsOf[T Unsigned]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// directLanes returns mem reinterpreted as []T when the current level and the
// alignment of mem allow it, and nil otherwise.
func directLanes[T Unsigned](mem []byte) []T {
	size := sizeOf[T]()
	if currentLevel != DispatchDirect || len(mem) < size {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(mem))
	if uintptr(p)%uintptr(size) != 0 {
		return nil
	}
	return unsafe.Slice((*T)(p), len(mem)/size)
}

// loadLE decodes one little-endian element from b.
func loadLE[T Unsigned](b []byte) T {
	switch sizeOf[T]() {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.LittleEndian.Uint16(b))
	case 4:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

// storeLE encodes one little-endian element into b.
func storeLE[T Unsigned](b []byte, v T) {
	switch sizeOf[T]() {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}

// validSEW reports whether n bytes is a supported element width.
func validSEW(n int) bool {
	switch n {
	case 1, 2, 4, 8:
		return true
	}
	return false
}
