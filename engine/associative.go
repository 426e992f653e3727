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
	"fmt"
	"sync"

	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// foldState accumulates one associative reduction's running sum, product,
// min, and max simultaneously; finalize(op) picks which field the caller
// actually asked for. This mirrors the
// teacher's ReduceSum/ReduceMin/ReduceMax split in ops_base.go, collapsed
// into one pass since spec §4.5 only ever asks for one fold per call.
type foldState[T lane.Numeric] struct {
	sum     T
	prod    T
	min     T
	max     T
	count   int64
	hasSeen bool
}

func newFoldState[T lane.Numeric]() foldState[T] {
	return foldState[T]{prod: one[T]()}
}

func one[T lane.Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(1)).(T)
	case int64:
		return any(int64(1)).(T)
	case float32:
		return any(float32(1)).(T)
	case float64:
		return any(float64(1)).(T)
	default:
		return zero
	}
}

func (s *foldState[T]) absorb(v T) {
	s.sum += v
	s.prod *= v
	if !s.hasSeen || v < s.min {
		s.min = v
	}
	if !s.hasSeen || v > s.max {
		s.max = v
	}
	s.hasSeen = true
	s.count++
}

func (s *foldState[T]) merge(other foldState[T]) {
	if other.count == 0 {
		return
	}
	s.sum += other.sum
	s.prod *= other.prod
	if !s.hasSeen || other.min < s.min {
		s.min = other.min
	}
	if !s.hasSeen || other.max > s.max {
		s.max = other.max
	}
	s.hasSeen = true
	s.count += other.count
}

func (s foldState[T]) finalize(op Associative) (T, error) {
	switch op {
	case Sum, Nansum:
		return s.sum, nil
	case Mean, Nanmean:
		if s.count == 0 {
			var zero T
			return zero, fmt.Errorf("%w: %s of zero elements", ErrUnsupportedOp, op)
		}
		return divByCount(s.sum, s.count), nil
	case Prod:
		return s.prod, nil
	case AssocMin:
		return s.min, nil
	case AssocMax:
		return s.max, nil
	default:
		var zero T
		return zero, fmt.Errorf("%w: associative op %d", ErrUnsupportedOp, op)
	}
}

func divByCount[T lane.Numeric](sum T, count int64) T {
	switch x := any(sum).(type) {
	case int32:
		return any(int32(float64(x) / float64(count))).(T)
	case int64:
		return any(int64(float64(x) / float64(count))).(T)
	case float32:
		return any(float32(float64(x) / float64(count))).(T)
	case float64:
		return any(x / float64(count)).(T)
	default:
		return sum
	}
}

// Associative folds an entire cube to a scalar, per spec §4.5. The result
// is returned boxed in an any (concretely T) since the dispatch layer
// only learns T from a's runtime dtype; typed callers should immediately
// type-assert using a.DType().
func (e *Engine) Associative(op Associative, a cube.Cube, opts *Options) (any, error) {
	if a == nil {
		return nil, ErrNullArgument
	}
	switch a.DType() {
	case dtype.Int32:
		return associativeTyped[int32](e, op, a, opts)
	case dtype.Int64:
		return associativeTyped[int64](e, op, a, opts)
	case dtype.Float32:
		return associativeTyped[float32](e, op, a, opts)
	case dtype.Float64:
		return associativeTyped[float64](e, op, a, opts)
	default:
		return nil, fmt.Errorf("%w: associative %s: %s", ErrUnsupportedDType, op, a.DType())
	}
}

func associativeTyped[T lane.Numeric](e *Engine, op Associative, a cube.Cube, opts *Options) (T, error) {
	at := a.(cube.Typed[T])
	mask := opts.mask()
	skip := op.skipsMissing()
	n := a.Size()

	if opts.deterministic() {
		return associativeDeterministic[T](e, op, at, mask, skip, n)
	}

	if e.poolDisabledFor(n) {
		state := newFoldState[T]()
		for i := 0; i < n; i++ {
			if mask != nil && !mask.GetAt(i) {
				continue
			}
			v := at.GetAt(i)
			if skip && isMissing(v) {
				continue
			}
			state.absorb(v)
		}
		return state.finalize(op)
	}

	var mu sync.Mutex
	total := newFoldState[T]()
	err := e.run(n, func(offset, length int) error {
		local := newFoldState[T]()
		for i := 0; i < length; i++ {
			idx := offset + i
			if mask != nil && !mask.GetAt(idx) {
				continue
			}
			v := at.GetAt(idx)
			if skip && isMissing(v) {
				continue
			}
			local.absorb(v)
		}
		mu.Lock()
		total.merge(local)
		mu.Unlock()
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return total.finalize(op)
}

// associativeDeterministic implements spec.md §9's "deterministic
// reduction" option (b): partition a into exactly cfg.NumThreads
// fixed-size buckets regardless of cfg.ThreadingThreshold, fold each
// bucket independently, and combine the bucket totals with a pairwise
// (tree) merge instead of a left-to-right fold. The float rounding
// schedule this produces depends only on NumThreads, never on which
// goroutine happens to finish first.
func associativeDeterministic[T lane.Numeric](e *Engine, op Associative, at cube.Typed[T], mask cube.Typed[bool], skip bool, n int) (T, error) {
	numBuckets := e.cfg.NumThreads
	if numBuckets < 1 {
		numBuckets = 1
	}
	if n == 0 {
		numBuckets = 1
	} else if numBuckets > n {
		numBuckets = n
	}
	bucketSize := (n + numBuckets - 1) / numBuckets
	if bucketSize < 1 {
		bucketSize = 1
	}

	states := make([]foldState[T], numBuckets)
	for b := range states {
		states[b] = newFoldState[T]()
	}

	err := e.run(numBuckets, func(offset, length int) error {
		for b := offset; b < offset+length; b++ {
			start := b * bucketSize
			end := start + bucketSize
			if end > n {
				end = n
			}
			local := newFoldState[T]()
			for i := start; i < end; i++ {
				if mask != nil && !mask.GetAt(i) {
					continue
				}
				v := at.GetAt(i)
				if skip && isMissing(v) {
					continue
				}
				local.absorb(v)
			}
			states[b] = local
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return pairwiseMerge(states).finalize(op)
}

// pairwiseMerge combines foldStates in a binary tree rather than
// left-to-right, so the merge order depends only on len(states).
func pairwiseMerge[T lane.Numeric](states []foldState[T]) foldState[T] {
	for len(states) > 1 {
		next := make([]foldState[T], 0, (len(states)+1)/2)
		for i := 0; i < len(states); i += 2 {
			if i+1 < len(states) {
				merged := states[i]
				merged.merge(states[i+1])
				next = append(next, merged)
			} else {
				next = append(next, states[i])
			}
		}
		states = next
	}
	if len(states) == 0 {
		return newFoldState[T]()
	}
	return states[0]
}

// poolDisabledFor reports whether n is small enough, or the pool absent,
// that a plain sequential fold already gives deterministic flat-order
// accumulation without needing Options.Deterministic.
func (e *Engine) poolDisabledFor(n int) bool {
	return e.pool == nil || n < e.cfg.ThreadingThreshold
}
