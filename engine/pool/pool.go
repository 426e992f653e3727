// Copyright 2025 go-highway Authors
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

// Package pool provides the persistent worker pool the engine partitions
// bulk cube operations across, adapted from go-highway's contrib
// workerpool to spec §5's bucket-partitioning and first-error contract.
//
// Two behaviors differ deliberately from the original workerpool:
// buckets are always rounded up to a 32-element boundary so no bucket
// splits a staging chunk, and the first error raised by any task aborts
// the remaining tasks and is returned to the caller via golang.org/x/sync/errgroup
// instead of being silently dropped.
package pool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

const bucketAlign = 32

// Pool runs ParallelFor tasks across a fixed number of persistent
// goroutines. New raises any n below 2 to 2; callers that want
// single-threaded execution do not construct a Pool at all (see engine's
// Config-driven PoolDisabled check).
type Pool struct {
	numWorkers int
	tasks      chan func()
	wg         sync.WaitGroup
	closeOnce  sync.Once
	closed     chan struct{}
}

// New starts a pool of n persistent worker goroutines; an n below 2 is
// raised to 2.
func New(n int) *Pool {
	if n < 2 {
		n = 2
	}
	p := &Pool{
		numWorkers: n,
		tasks:      make(chan func()),
		closed:     make(chan struct{}),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
		case <-p.closed:
			return
		}
	}
}

// NumWorkers reports the number of persistent goroutines backing the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops all worker goroutines and waits for them to exit. The pool
// must not be used afterward.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.closed)
	})
	p.wg.Wait()
}

// bucketSize returns the per-worker chunk size for n elements split
// across workers, rounded up to a 32-element boundary so no bucket ever
// splits a kernel's staging chunk across two goroutines.
func bucketSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	raw := (n + workers - 1) / workers
	return ((raw + bucketAlign - 1) / bucketAlign) * bucketAlign
}

// ParallelFor partitions [0, n) into contiguous, 32-element-aligned
// buckets and runs fn(start, end) for each bucket concurrently across the
// pool. It blocks until every bucket completes or one returns an error,
// in which case the first error observed is returned and any buckets
// still in flight are allowed to finish (their results are discarded by
// the caller, matching spec §5's "abort remaining buckets, re-raise
// first error" contract at the granularity Go's cooperative cancellation
// allows).
func (p *Pool) ParallelFor(ctx context.Context, n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	size := bucketSize(n, p.numWorkers)

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += size {
		start := start
		end := start + size
		if end > n {
			end = n
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			done := make(chan error, 1)
			task := func() { done <- fn(start, end) }
			select {
			case p.tasks <- task:
			case <-p.closed:
				return nil
			}
			return <-done
		})
	}
	return g.Wait()
}

// DefaultWorkerCount returns runtime.GOMAXPROCS(0), the worker count a
// caller would use when the configuration requests pool parallelism but
// leaves the exact width up to the runtime.
func DefaultWorkerCount() int {
	return runtime.GOMAXPROCS(0)
}
