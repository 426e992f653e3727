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

// Comparison dispatches a relational op across two same-shape, same-dtype
// cubes and returns a boolean cube, per spec §4.4.
func (e *Engine) Comparison(op Comparison, a, b cube.Cube, opts *Options) (cube.Typed[bool], error) {
	if a == nil || b == nil {
		return nil, ErrNullArgument
	}
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("%w: comparison %s: %v vs %v", ErrShapeMismatch, op, a.Shape(), b.Shape())
	}
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("%w: comparison %s: %s vs %s", ErrUnsupportedDType, op, a.DType(), b.DType())
	}
	switch a.DType() {
	case dtype.Bool:
		return dispatchComparison[bool](e, op, a, b, opts)
	case dtype.Int32:
		return dispatchComparison[int32](e, op, a, b, opts)
	case dtype.Int64:
		return dispatchComparison[int64](e, op, a, b, opts)
	case dtype.Float32:
		return dispatchComparison[float32](e, op, a, b, opts)
	case dtype.Float64:
		return dispatchComparison[float64](e, op, a, b, opts)
	default:
		return nil, fmt.Errorf("%w: comparison %s: %s", ErrUnsupportedDType, op, a.DType())
	}
}

func dispatchComparison[T lane.Elem](e *Engine, op Comparison, a, b cube.Cube, opts *Options) (cube.Typed[bool], error) {
	at := a.(cube.Typed[T])
	bt := b.(cube.Typed[T])

	var dest cube.Typed[bool]
	if d := opts.dest(); d != nil {
		typed, ok := d.(cube.Typed[bool])
		if !ok || !d.MatchesShape(a) {
			return nil, fmt.Errorf("%w: comparison %s: destination shape/dtype mismatch", ErrShapeMismatch, op)
		}
		dest = typed
	} else {
		dest = cube.NewLike[bool](a.Shape())
	}
	mask := opts.mask()

	n := a.Size()
	err := e.run(n, func(offset, length int) error {
		for i := 0; i < length; i++ {
			idx := offset + i
			if mask != nil && !mask.GetAt(idx) {
				continue
			}
			v, err := applyComparison(op, at.GetAt(idx), bt.GetAt(idx))
			if err != nil {
				return fmt.Errorf("comparison %s at index %d: %w", op, idx, err)
			}
			dest.SetAt(idx, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dest, nil
}
