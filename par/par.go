// Copyright 2016 The Gopd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements data-parallel loops and reductions over index ranges
package par

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
)

// Runner runs kernels over the index range [0,n). Implementations call the kernel
// exactly once per index. Kernels must write only to slots owned by their own index.
type Runner interface {
	For(n int, kernel func(i int))                       // calls kernel(i) for all i in [0,n)
	ReduceSum(n int, kernel func(i int) float64) float64 // returns the sum of kernel(i) for all i in [0,n)
}

// allocators holds all available runners
var allocators = make(map[string]func(nproc int) Runner)

// New returns a new runner
func New(kind string, nproc int) (Runner, error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("cannot find runner named %q", kind)
	}
	return allocator(nproc), nil
}

// add runners to factory
func init() {
	allocators["serial"] = func(nproc int) Runner { return new(Serial) }
	allocators["threads"] = func(nproc int) Runner { return &Threads{Nproc: nproc} }
}

// Serial ///////////////////////////////////////////////////////////////////////////////////////////

// Serial runs kernels in the calling goroutine
type Serial struct{}

// For runs kernel(i) for all i in [0,n)
func (o *Serial) For(n int, kernel func(i int)) {
	for i := 0; i < n; i++ {
		kernel(i)
	}
}

// ReduceSum returns the sum of kernel(i) for all i in [0,n)
func (o *Serial) ReduceSum(n int, kernel func(i int) float64) (sum float64) {
	for i := 0; i < n; i++ {
		sum += kernel(i)
	}
	return
}

// Threads //////////////////////////////////////////////////////////////////////////////////////////

// Threads runs kernels on a fixed number of goroutines, each owning a contiguous
// chunk of the index range. The last chunk takes the remainder.
type Threads struct {
	Nproc int // number of goroutines; 0 means runtime.NumCPU()
}

// For runs kernel(i) for all i in [0,n)
func (o *Threads) For(n int, kernel func(i int)) {
	nw := o.nworkers(n)
	if nw < 2 {
		for i := 0; i < n; i++ {
			kernel(i)
		}
		return
	}
	csize := n / nw
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		start := w * csize
		end := start + csize
		if w == nw-1 {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				kernel(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ReduceSum returns the sum of kernel(i) for all i in [0,n). Each chunk accumulates
// a partial sum; partials are added in chunk order, so the result is deterministic
// for a fixed Nproc.
func (o *Threads) ReduceSum(n int, kernel func(i int) float64) (sum float64) {
	nw := o.nworkers(n)
	if nw < 2 {
		for i := 0; i < n; i++ {
			sum += kernel(i)
		}
		return
	}
	partial := make([]float64, nw)
	csize := n / nw
	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		start := w * csize
		end := start + csize
		if w == nw-1 {
			end = n
		}
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				partial[w] += kernel(i)
			}
		}(w, start, end)
	}
	wg.Wait()
	for _, p := range partial {
		sum += p
	}
	return
}

func (o *Threads) nworkers(n int) int {
	nw := o.Nproc
	if nw < 1 {
		nw = runtime.NumCPU()
	}
	if nw > n {
		nw = n
	}
	return nw
}
