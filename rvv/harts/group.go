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

package harts

import (
	"fmt"

	"github.com/ajroetker/go-rvv/rvv"
)

// Group owns one register file per hart.
type Group struct {
	vlenb    int
	vrfs     [][]byte
	pool     *Pool
	ownsPool bool
}

// NewGroup allocates n zeroed register files of 32 registers of vlenb bytes
// each. A nil pool makes the group start and own a default-sized one.
func NewGroup(n, vlenb int, pool *Pool) *Group {
	g := &Group{vlenb: vlenb, pool: pool}
	if pool == nil {
		g.pool = NewPool(0)
		g.ownsPool = true
	}
	g.vrfs = make([][]byte, n)
	for h := range g.vrfs {
		g.vrfs[h] = make([]byte, rvv.MaxRegisters*vlenb)
	}
	return g
}

// Len returns the number of harts.
func (g *Group) Len() int { return len(g.vrfs) }

// VLenB returns the register length in bytes.
func (g *Group) VLenB() int { return g.vlenb }

// RegisterFile returns hart h's register file. Callers must not touch it
// while a Run is in progress.
func (g *Group) RegisterFile(h int) []byte { return g.vrfs[h] }

// Run calls fn once per hart, concurrently across the pool, and returns each
// hart's status indexed by hart number.
func (g *Group) Run(fn func(h int, vrf []byte) rvv.Status) []rvv.Status {
	statuses := make([]rvv.Status, len(g.vrfs))
	g.pool.ForEach(len(g.vrfs), func(h int) {
		statuses[h] = fn(h, g.vrfs[h])
	})
	return statuses
}

// RunErr is Run that reports the lowest-numbered failing hart as an error
// wrapping its status sentinel.
func (g *Group) RunErr(fn func(h int, vrf []byte) rvv.Status) error {
	return FirstError(g.Run(fn))
}

// FirstError returns nil if every status is NoExcept, and otherwise an error
// naming the first failing hart.
func FirstError(statuses []rvv.Status) error {
	for h, s := range statuses {
		if !s.OK() {
			return fmt.Errorf("hart %d: %s: %w", h, s, s.Err())
		}
	}
	return nil
}

// Close releases the pool if the group created it.
func (g *Group) Close() {
	if g.ownsPool {
		g.pool.Close()
	}
}
