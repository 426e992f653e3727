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
	"sort"

	"github.com/deshaw/gocube/cube"
	"github.com/deshaw/gocube/dtype"
	"github.com/deshaw/gocube/lane"
)

// AxisReduce folds a along the given axes, producing a cube whose shape
// drops those axes (no keepdims), per spec §4.5's axis-wise reductions.
// Passing every axis of a is equivalent to Associative, minus the boxing.
func (e *Engine) AxisReduce(op Associative, a cube.Cube, axes []int, opts *Options) (cube.Cube, error) {
	if a == nil {
		return nil, ErrNullArgument
	}
	normAxes, err := normalizeAxes(axes, a.NDim())
	if err != nil {
		return nil, err
	}
	switch a.DType() {
	case dtype.Int32:
		return axisReduceTyped[int32](e, op, a, normAxes, opts)
	case dtype.Int64:
		return axisReduceTyped[int64](e, op, a, normAxes, opts)
	case dtype.Float32:
		return axisReduceTyped[float32](e, op, a, normAxes, opts)
	case dtype.Float64:
		return axisReduceTyped[float64](e, op, a, normAxes, opts)
	default:
		return nil, fmt.Errorf("%w: axis-reduce %s: %s", ErrUnsupportedDType, op, a.DType())
	}
}

func normalizeAxes(axes []int, ndim int) ([]int, error) {
	seen := make(map[int]bool, len(axes))
	out := make([]int, 0, len(axes))
	for _, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("%w: axis %d out of range for %d-d cube", ErrIndexOutOfBounds, ax, ndim)
		}
		if seen[ax] {
			continue
		}
		seen[ax] = true
		out = append(out, ax)
	}
	sort.Ints(out)
	return out, nil
}

func axisReduceTyped[T lane.Numeric](e *Engine, op Associative, a cube.Cube, axes []int, opts *Options) (cube.Cube, error) {
	at := a.(cube.Typed[T])
	shape := a.Shape()
	reduced := make([]bool, len(shape))
	for _, ax := range axes {
		reduced[ax] = true
	}

	baseStride := rowMajorStrides(shape)

	var outShape cube.Shape
	var keptAxes []int
	for i, n := range shape {
		if !reduced[i] {
			outShape = append(outShape, n)
			keptAxes = append(keptAxes, i)
		}
	}
	if len(outShape) == 0 {
		outShape = cube.Shape{}
	}

	var reducedAxes []int
	reducedSize := 1
	for i, n := range shape {
		if reduced[i] {
			reducedAxes = append(reducedAxes, i)
			reducedSize *= n
		}
	}
	if reducedSize == 0 {
		reducedSize = 1
	}
	reducedStride := make([]int, len(reducedAxes))
	acc := 1
	for i := len(reducedAxes) - 1; i >= 0; i-- {
		reducedStride[i] = acc
		acc *= shape[reducedAxes[i]]
	}

	dest := cube.NewLike[T](outShape)
	mask := opts.mask()
	skip := op.skipsMissing()
	outSize := outShape.Size()
	outStride := rowMajorStrides(outShape)

	err := e.run(outSize, func(offset, length int) error {
		for o := offset; o < offset+length; o++ {
			// Decompose o into coordinates along the kept axes, and from
			// those compute the base offset contributed by kept axes.
			baseOffset := 0
			rem := o
			for ki, axis := range keptAxes {
				coord := (rem / outStride[ki]) % shape[axis]
				baseOffset += coord * baseStride[axis]
			}
			state := newFoldState[T]()
			for r := 0; r < reducedSize; r++ {
				flat := baseOffset
				rrem := r
				for ri, axis := range reducedAxes {
					coord := (rrem / reducedStride[ri]) % shape[axis]
					flat += coord * baseStride[axis]
				}
				if mask != nil && !mask.GetAt(flat) {
					continue
				}
				v := at.GetAt(flat)
				if skip && isMissing(v) {
					continue
				}
				state.absorb(v)
			}
			v, err := state.finalize(op)
			if err != nil {
				return fmt.Errorf("axis-reduce %s at output index %d: %w", op, o, err)
			}
			dest.SetAt(o, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dest, nil
}

func rowMajorStrides(shape cube.Shape) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}
