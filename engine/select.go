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

// Where is the three-operand selection entry point of spec §4.1: for each
// element, the result takes from ifTrue where cond is true and from
// ifFalse otherwise. All three operands must share a shape; ifTrue and
// ifFalse must share a dtype. Grounded on the teacher's IfThenElse mask
// selection in ops_base.go.
func (e *Engine) Where(cond cube.Typed[bool], ifTrue, ifFalse cube.Cube, opts *Options) (cube.Cube, error) {
	if cond == nil || ifTrue == nil || ifFalse == nil {
		return nil, ErrNullArgument
	}
	if !cond.Shape().Equal(ifTrue.Shape()) || !ifTrue.Shape().Equal(ifFalse.Shape()) {
		return nil, fmt.Errorf("%w: where: shapes %v, %v, %v", ErrShapeMismatch, cond.Shape(), ifTrue.Shape(), ifFalse.Shape())
	}
	if ifTrue.DType() != ifFalse.DType() {
		return nil, fmt.Errorf("%w: where: %s vs %s", ErrUnsupportedDType, ifTrue.DType(), ifFalse.DType())
	}
	switch ifTrue.DType() {
	case dtype.Bool:
		return whereTyped[bool](e, cond, ifTrue, ifFalse, opts)
	case dtype.Int32:
		return whereTyped[int32](e, cond, ifTrue, ifFalse, opts)
	case dtype.Int64:
		return whereTyped[int64](e, cond, ifTrue, ifFalse, opts)
	case dtype.Float32:
		return whereTyped[float32](e, cond, ifTrue, ifFalse, opts)
	case dtype.Float64:
		return whereTyped[float64](e, cond, ifTrue, ifFalse, opts)
	default:
		return nil, fmt.Errorf("%w: where: %s", ErrUnsupportedDType, ifTrue.DType())
	}
}

func whereTyped[T lane.Elem](e *Engine, cond cube.Typed[bool], ifTrue, ifFalse cube.Cube, opts *Options) (cube.Cube, error) {
	tt := ifTrue.(cube.Typed[T])
	ft := ifFalse.(cube.Typed[T])

	var dest cube.Typed[T]
	if d := opts.dest(); d != nil {
		typed, ok := d.(cube.Typed[T])
		if !ok || !d.MatchesShape(ifTrue) {
			return nil, fmt.Errorf("%w: where: destination shape/dtype mismatch", ErrShapeMismatch)
		}
		dest = typed
	} else {
		dest = cube.NewLike[T](ifTrue.Shape())
	}

	mask := opts.mask()

	n := ifTrue.Size()
	err := e.run(n, func(offset, length int) error {
		for i := 0; i < length; i++ {
			idx := offset + i
			if mask != nil && !mask.GetAt(idx) {
				continue
			}
			if cond.GetAt(idx) {
				dest.SetAt(idx, tt.GetAt(idx))
			} else {
				dest.SetAt(idx, ft.GetAt(idx))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dest, nil
}

// broadcastScalar lowers a scalar of type T to a cube.Broadcast matching
// shape, the standard way spec §4.1's scalar-lhs/scalar-rhs entry points
// turn a scalar-vs-cube op into a cube-vs-cube op without allocating.
func broadcastScalar[T lane.Elem](shape cube.Shape, v T) cube.Cube {
	return cube.NewBroadcast(shape, v)
}
