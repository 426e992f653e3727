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

	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// Extract gathers the elements of src where mask is true into a new,
// densely packed 1-D cube, per spec §4.7. Block popcounts are computed
// first so each block can then write its surviving elements straight to
// its final offset with no cross-block synchronization, the parallel
// compaction scheme spec §4.7 calls for.
func (e *Engine) Extract(src cube.Cube, mask cube.Typed[bool]) (cube.Cube, error) {
	if src == nil || mask == nil {
		return nil, ErrNullArgument
	}
	if src.Size() != mask.Size() {
		return nil, fmt.Errorf("%w: extract: src has %d elements, mask has %d", ErrShapeMismatch, src.Size(), mask.Size())
	}
	switch src.DType() {
	case dtype.Bool:
		return extractTyped[bool](e, src, mask)
	case dtype.Int32:
		return extractTyped[int32](e, src, mask)
	case dtype.Int64:
		return extractTyped[int64](e, src, mask)
	case dtype.Float32:
		return extractTyped[float32](e, src, mask)
	case dtype.Float64:
		return extractTyped[float64](e, src, mask)
	default:
		return nil, fmt.Errorf("%w: extract: %s", ErrUnsupportedDType, src.DType())
	}
}

func extractTyped[T lane.Elem](e *Engine, src cube.Cube, mask cube.Typed[bool]) (cube.Cube, error) {
	st := src.(cube.Typed[T])
	n := src.Size()
	blockSize := e.cfg.StagingSize
	if blockSize < 1 {
		blockSize = n
		if blockSize == 0 {
			blockSize = 1
		}
	}
	numBlocks := (n + blockSize - 1) / blockSize
	if numBlocks == 0 {
		return cube.NewLike[T](cube.Shape{0}), nil
	}
	counts := make([]int, numBlocks)

	if err := e.run(numBlocks, func(offset, length int) error {
		for b := offset; b < offset+length; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			c := 0
			for i := start; i < end; i++ {
				if mask.GetAt(i) {
					c++
				}
			}
			counts[b] = c
		}
		return nil
	}); err != nil {
		return nil, err
	}

	offsets := make([]int, numBlocks)
	total := 0
	for b, c := range counts {
		offsets[b] = total
		total += c
	}

	dest := cube.NewLike[T](cube.Shape{total})
	err := e.run(numBlocks, func(offset, length int) error {
		for b := offset; b < offset+length; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			w := offsets[b]
			for i := start; i < end; i++ {
				if mask.GetAt(i) {
					dest.SetAt(w, st.GetAt(i))
					w++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dest, nil
}
