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

import "testing"

// testVLenB is VLEN = 128 bits throughout the tests: 16 bytes per register.
const testVLenB = 16

func newVRF() []byte {
	return make([]byte, MaxRegisters*testVLenB)
}

// testConfig returns an unmasked LMUL=1 configuration.
func testConfig(sew, vl int) Config {
	return Config{VLenB: testVLenB, SEW: sew, LMULNum: 1, LMULDen: 1, VL: vl}
}

// setLanes writes vals as consecutive T-wide elements starting at register
// reg, spilling into following registers.
func setLanes[T Unsigned](vrf []byte, reg int, vals ...T) {
	size := sizeOf[T]()
	base := reg * testVLenB
	for i, v := range vals {
		storeLE(vrf[base+i*size:base+(i+1)*size], v)
	}
}

// lanes reads n T-wide elements starting at register reg.
func lanes[T Unsigned](vrf []byte, reg, n int) []T {
	size := sizeOf[T]()
	base := reg * testVLenB
	out := make([]T, n)
	for i := range out {
		out[i] = loadLE[T](vrf[base+i*size : base+(i+1)*size])
	}
	return out
}

func checkLanes[T Unsigned](t *testing.T, op string, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d lanes, want %d", op, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: lane %d: got %#x, want %#x", op, i, got[i], want[i])
		}
	}
}

func checkStatus(t *testing.T, op string, got, want Status) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// withLevel runs fn once per element access mode available on this host.
func withLevel(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	saved := currentLevel
	defer func() { currentLevel = saved }()
	levels := []DispatchLevel{DispatchPortable}
	if saved == DispatchDirect {
		levels = append(levels, DispatchDirect)
	}
	for _, l := range levels {
		currentLevel = l
		t.Run(l.String(), fn)
	}
}
