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

// Package harts runs vector instruction streams for many independent harts,
// each with its own register file, on a persistent worker pool.
//
// Entry points in package rvv never synchronize access to a register file.
// A Group gives every hart exclusive use of its register file for the
// duration of one Run, and harts never share one, so runs need no locks.
//
// Usage:
//
//	g := harts.NewGroup(8, 16, nil) // 8 harts, VLEN = 128
//	defer g.Close()
//
//	statuses := g.Run(func(h int, vrf []byte) rvv.Status {
//	    return rvv.VAddVV(vrf, cfg, 8, 16, 24)
//	})
package harts

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/xyproto/env/v2"
)

// WorkersEnv names the environment variable that sizes default pools.
const WorkersEnv = "RVV_HARTS_WORKERS"

// DefaultWorkers returns the worker count for a pool created with n <= 0:
// RVV_HARTS_WORKERS when it is positive, GOMAXPROCS otherwise.
func DefaultWorkers() int {
	if n := env.Int(WorkersEnv, 0); n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Pool is a persistent set of worker goroutines. Workers are spawned once
// and reused by every Run.
type Pool struct {
	numWorkers int
	work       chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// NewPool starts n workers, or DefaultWorkers() when n <= 0.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = DefaultWorkers()
	}
	p := &Pool{
		numWorkers: n,
		work:       make(chan task, n*2),
	}
	for range n {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.work {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending work drains. It is safe to call more
// than once; a closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.work)
	})
}

// ForEach calls fn(i) for every i in [0, n) and blocks until all calls
// return. Indices are handed out one at a time, so uneven per-hart work
// balances across workers.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.work <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
