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

package engine

import (
	"context"

	"go.uber.org/zap"
)

// chunkRange is the sequential half of the chunk-staged kernel shape: it
// walks [start, end) in cfg.StagingSize-sized pieces, calling fn once per
// piece. Every dtype's kernel goes through this same shape regardless of
// which lane.Elem type it is instantiated over; only the body passed as
// fn varies per operation.
func chunkRange(start, end, stagingSize int, fn func(offset, length int) error) error {
	if stagingSize < 1 {
		stagingSize = 1
	}
	for offset := start; offset < end; offset += stagingSize {
		length := stagingSize
		if offset+length > end {
			length = end - offset
		}
		if err := fn(offset, length); err != nil {
			return err
		}
	}
	return nil
}

// run is the shared "vectorized loop" shape of spec §4.2: partition
// [0, n) across the worker pool when parallelism is enabled and the
// input clears the configured threshold, then stage each partition in
// cfg.StagingSize-sized chunks via fn. The first error any chunk returns
// aborts the operation and is propagated to the caller, per spec §5's
// first-error contract.
func (e *Engine) run(n int, fn func(offset, length int) error) error {
	if n <= 0 {
		return nil
	}
	if e.pool == nil || n < e.cfg.ThreadingThreshold {
		return chunkRange(0, n, e.cfg.StagingSize, fn)
	}
	e.log.Debug("engine: dispatching to worker pool", zap.Int("elements", n), zap.Int("workers", e.pool.NumWorkers()))
	return e.pool.ParallelFor(context.Background(), n, func(start, end int) error {
		return chunkRange(start, end, e.cfg.StagingSize, fn)
	})
}
