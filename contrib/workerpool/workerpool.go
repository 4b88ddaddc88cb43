// Copyright 2025 The go-qsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent, fallible jobs on a fixed set of
// persistent goroutines.
//
// A job owns whatever data it touches for its whole run; the pool never
// splits one job across workers. The qsort command uses it to sort several
// files at once while each file is still sorted by a single sequential call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	errs := pool.Run(ctx, len(files), func(ctx context.Context, i int) error {
//	    return sortFile(files[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job processes the i-th unit of work of a Run call.
type Job func(ctx context.Context, i int) error

// Pool is a persistent worker pool that can be reused across many Run calls.
// Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a Run call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool once in-flight Run calls finish handing
// out work. It must not race with a Run call. Calling Close multiple times
// is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes job for every index in [0, n) and blocks until all of them
// return. Workers pull the next index from a shared counter, so slow jobs do
// not hold up the rest.
//
// The returned slice has one entry per index: the job's error, or ctx.Err()
// for indexes that were not started because ctx was done. It is nil when
// n <= 0. A closed pool runs the jobs sequentially on the caller's goroutine.
func (p *Pool) Run(ctx context.Context, n int, job Job) []error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)
	var next atomic.Int64
	drain := func() {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			if err := ctx.Err(); err != nil {
				errs[i] = err
				continue
			}
			errs[i] = job(ctx, i)
		}
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		drain()
		return errs
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		p.workC <- workItem{fn: drain, barrier: &wg}
	}
	wg.Wait()

	return errs
}
